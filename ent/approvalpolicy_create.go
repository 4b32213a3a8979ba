// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/approvalpolicy"
)

// ApprovalPolicyCreate is the builder for creating a ApprovalPolicy entity.
type ApprovalPolicyCreate struct {
	config
	mutation *ApprovalPolicyMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalPolicyCreate) SetCreatedAt(v time.Time) *ApprovalPolicyCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalPolicyCreate) SetNillableCreatedAt(v *time.Time) *ApprovalPolicyCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ApprovalPolicyCreate) SetUpdatedAt(v time.Time) *ApprovalPolicyCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ApprovalPolicyCreate) SetNillableUpdatedAt(v *time.Time) *ApprovalPolicyCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetTitle sets the "title" field.
func (_c *ApprovalPolicyCreate) SetTitle(v string) *ApprovalPolicyCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetMinAmount sets the "min_amount" field.
func (_c *ApprovalPolicyCreate) SetMinAmount(v decimal.Decimal) *ApprovalPolicyCreate {
	_c.mutation.SetMinAmount(v)
	return _c
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_c *ApprovalPolicyCreate) SetNillableMinAmount(v *decimal.Decimal) *ApprovalPolicyCreate {
	if v != nil {
		_c.SetMinAmount(*v)
	}
	return _c
}

// SetMaxAmount sets the "max_amount" field.
func (_c *ApprovalPolicyCreate) SetMaxAmount(v decimal.Decimal) *ApprovalPolicyCreate {
	_c.mutation.SetMaxAmount(v)
	return _c
}

// SetNillableMaxAmount sets the "max_amount" field if the given value is not nil.
func (_c *ApprovalPolicyCreate) SetNillableMaxAmount(v *decimal.Decimal) *ApprovalPolicyCreate {
	if v != nil {
		_c.SetMaxAmount(*v)
	}
	return _c
}

// SetRequiredLevels sets the "required_levels" field.
func (_c *ApprovalPolicyCreate) SetRequiredLevels(v int) *ApprovalPolicyCreate {
	_c.mutation.SetRequiredLevels(v)
	return _c
}

// SetNillableRequiredLevels sets the "required_levels" field if the given value is not nil.
func (_c *ApprovalPolicyCreate) SetNillableRequiredLevels(v *int) *ApprovalPolicyCreate {
	if v != nil {
		_c.SetRequiredLevels(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *ApprovalPolicyCreate) SetActive(v bool) *ApprovalPolicyCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *ApprovalPolicyCreate) SetNillableActive(v *bool) *ApprovalPolicyCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedBy sets the "created_by" field.
func (_c *ApprovalPolicyCreate) SetCreatedBy(v string) *ApprovalPolicyCreate {
	_c.mutation.SetCreatedBy(v)
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalPolicyCreate) SetID(v string) *ApprovalPolicyCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ApprovalPolicyMutation object of the builder.
func (_c *ApprovalPolicyCreate) Mutation() *ApprovalPolicyMutation {
	return _c.mutation
}

// Save creates the ApprovalPolicy in the database.
func (_c *ApprovalPolicyCreate) Save(ctx context.Context) (*ApprovalPolicy, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalPolicyCreate) SaveX(ctx context.Context) *ApprovalPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalPolicyCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalPolicyCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalPolicyCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalpolicy.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := approvalpolicy.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.MinAmount(); !ok {
		v := approvalpolicy.DefaultMinAmount
		_c.mutation.SetMinAmount(v)
	}
	if _, ok := _c.mutation.MaxAmount(); !ok {
		v := approvalpolicy.DefaultMaxAmount
		_c.mutation.SetMaxAmount(v)
	}
	if _, ok := _c.mutation.RequiredLevels(); !ok {
		v := approvalpolicy.DefaultRequiredLevels
		_c.mutation.SetRequiredLevels(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := approvalpolicy.DefaultActive
		_c.mutation.SetActive(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalPolicyCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalPolicy.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ApprovalPolicy.updated_at"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "ApprovalPolicy.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := approvalpolicy.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MinAmount(); !ok {
		return &ValidationError{Name: "min_amount", err: errors.New(`ent: missing required field "ApprovalPolicy.min_amount"`)}
	}
	if _, ok := _c.mutation.MaxAmount(); !ok {
		return &ValidationError{Name: "max_amount", err: errors.New(`ent: missing required field "ApprovalPolicy.max_amount"`)}
	}
	if _, ok := _c.mutation.RequiredLevels(); !ok {
		return &ValidationError{Name: "required_levels", err: errors.New(`ent: missing required field "ApprovalPolicy.required_levels"`)}
	}
	if v, ok := _c.mutation.RequiredLevels(); ok {
		if err := approvalpolicy.RequiredLevelsValidator(v); err != nil {
			return &ValidationError{Name: "required_levels", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.required_levels": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "ApprovalPolicy.active"`)}
	}
	if _, ok := _c.mutation.CreatedBy(); !ok {
		return &ValidationError{Name: "created_by", err: errors.New(`ent: missing required field "ApprovalPolicy.created_by"`)}
	}
	if v, ok := _c.mutation.CreatedBy(); ok {
		if err := approvalpolicy.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.created_by": %w`, err)}
		}
	}
	return nil
}

func (_c *ApprovalPolicyCreate) sqlSave(ctx context.Context) (*ApprovalPolicy, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected ApprovalPolicy.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalPolicyCreate) createSpec() (*ApprovalPolicy, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalPolicy{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalpolicy.Table, sqlgraph.NewFieldSpec(approvalpolicy.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalpolicy.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalpolicy.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(approvalpolicy.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.MinAmount(); ok {
		_spec.SetField(approvalpolicy.FieldMinAmount, field.TypeOther, value)
		_node.MinAmount = value
	}
	if value, ok := _c.mutation.MaxAmount(); ok {
		_spec.SetField(approvalpolicy.FieldMaxAmount, field.TypeOther, value)
		_node.MaxAmount = value
	}
	if value, ok := _c.mutation.RequiredLevels(); ok {
		_spec.SetField(approvalpolicy.FieldRequiredLevels, field.TypeInt, value)
		_node.RequiredLevels = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(approvalpolicy.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedBy(); ok {
		_spec.SetField(approvalpolicy.FieldCreatedBy, field.TypeString, value)
		_node.CreatedBy = value
	}
	return _node, _spec
}

// ApprovalPolicyCreateBulk is the builder for creating many ApprovalPolicy entities in bulk.
type ApprovalPolicyCreateBulk struct {
	config
	err      error
	builders []*ApprovalPolicyCreate
}

// Save creates the ApprovalPolicy entities in the database.
func (_c *ApprovalPolicyCreateBulk) Save(ctx context.Context) ([]*ApprovalPolicy, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalPolicy, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalPolicyMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *ApprovalPolicyCreateBulk) SaveX(ctx context.Context) []*ApprovalPolicy {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalPolicyCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalPolicyCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
