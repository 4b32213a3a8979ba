// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/purchaserequest"
)

// ApprovalStepCreate is the builder for creating a ApprovalStep entity.
type ApprovalStepCreate struct {
	config
	mutation *ApprovalStepMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *ApprovalStepCreate) SetCreatedAt(v time.Time) *ApprovalStepCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ApprovalStepCreate) SetNillableCreatedAt(v *time.Time) *ApprovalStepCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *ApprovalStepCreate) SetRequestID(v string) *ApprovalStepCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetApproverID sets the "approver_id" field.
func (_c *ApprovalStepCreate) SetApproverID(v string) *ApprovalStepCreate {
	_c.mutation.SetApproverID(v)
	return _c
}

// SetLevel sets the "level" field.
func (_c *ApprovalStepCreate) SetLevel(v int) *ApprovalStepCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetDecision sets the "decision" field.
func (_c *ApprovalStepCreate) SetDecision(v approvalstep.Decision) *ApprovalStepCreate {
	_c.mutation.SetDecision(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *ApprovalStepCreate) SetComment(v string) *ApprovalStepCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *ApprovalStepCreate) SetNillableComment(v *string) *ApprovalStepCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ApprovalStepCreate) SetID(v string) *ApprovalStepCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the PurchaseRequest entity.
func (_c *ApprovalStepCreate) SetRequest(v *PurchaseRequest) *ApprovalStepCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the ApprovalStepMutation object of the builder.
func (_c *ApprovalStepCreate) Mutation() *ApprovalStepMutation {
	return _c.mutation
}

// Save creates the ApprovalStep in the database.
func (_c *ApprovalStepCreate) Save(ctx context.Context) (*ApprovalStep, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ApprovalStepCreate) SaveX(ctx context.Context) *ApprovalStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalStepCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalStepCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ApprovalStepCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := approvalstep.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ApprovalStepCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ApprovalStep.created_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "ApprovalStep.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := approvalstep.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "ApprovalStep.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ApproverID(); !ok {
		return &ValidationError{Name: "approver_id", err: errors.New(`ent: missing required field "ApprovalStep.approver_id"`)}
	}
	if v, ok := _c.mutation.ApproverID(); ok {
		if err := approvalstep.ApproverIDValidator(v); err != nil {
			return &ValidationError{Name: "approver_id", err: fmt.Errorf(`ent: validator failed for field "ApprovalStep.approver_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ApprovalStep.level"`)}
	}
	if v, ok := _c.mutation.Level(); ok {
		if err := approvalstep.LevelValidator(v); err != nil {
			return &ValidationError{Name: "level", err: fmt.Errorf(`ent: validator failed for field "ApprovalStep.level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Decision(); !ok {
		return &ValidationError{Name: "decision", err: errors.New(`ent: missing required field "ApprovalStep.decision"`)}
	}
	if v, ok := _c.mutation.Decision(); ok {
		if err := approvalstep.DecisionValidator(v); err != nil {
			return &ValidationError{Name: "decision", err: fmt.Errorf(`ent: validator failed for field "ApprovalStep.decision": %w`, err)}
		}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "ApprovalStep.request"`)}
	}
	return nil
}

func (_c *ApprovalStepCreate) sqlSave(ctx context.Context) (*ApprovalStep, error) {
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
			return nil, fmt.Errorf("unexpected ApprovalStep.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ApprovalStepCreate) createSpec() (*ApprovalStep, *sqlgraph.CreateSpec) {
	var (
		_node = &ApprovalStep{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(approvalstep.Table, sqlgraph.NewFieldSpec(approvalstep.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(approvalstep.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.ApproverID(); ok {
		_spec.SetField(approvalstep.FieldApproverID, field.TypeString, value)
		_node.ApproverID = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(approvalstep.FieldLevel, field.TypeInt, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Decision(); ok {
		_spec.SetField(approvalstep.FieldDecision, field.TypeEnum, value)
		_node.Decision = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(approvalstep.FieldComment, field.TypeString, value)
		_node.Comment = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   approvalstep.RequestTable,
			Columns: []string{approvalstep.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ApprovalStepCreateBulk is the builder for creating many ApprovalStep entities in bulk.
type ApprovalStepCreateBulk struct {
	config
	err      error
	builders []*ApprovalStepCreate
}

// Save creates the ApprovalStep entities in the database.
func (_c *ApprovalStepCreateBulk) Save(ctx context.Context) ([]*ApprovalStep, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ApprovalStep, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ApprovalStepMutation)
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
func (_c *ApprovalStepCreateBulk) SaveX(ctx context.Context) []*ApprovalStep {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ApprovalStepCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ApprovalStepCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
