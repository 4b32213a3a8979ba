// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/approvalpolicy"
	"procureflow.io/procureflow/ent/predicate"
)

// ApprovalPolicyUpdate is the builder for updating ApprovalPolicy entities.
type ApprovalPolicyUpdate struct {
	config
	hooks    []Hook
	mutation *ApprovalPolicyMutation
}

// Where appends a list predicates to the ApprovalPolicyUpdate builder.
func (_u *ApprovalPolicyUpdate) Where(ps ...predicate.ApprovalPolicy) *ApprovalPolicyUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalPolicyUpdate) SetUpdatedAt(v time.Time) *ApprovalPolicyUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalPolicyUpdate) SetTitle(v string) *ApprovalPolicyUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalPolicyUpdate) SetNillableTitle(v *string) *ApprovalPolicyUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMinAmount sets the "min_amount" field.
func (_u *ApprovalPolicyUpdate) SetMinAmount(v decimal.Decimal) *ApprovalPolicyUpdate {
	_u.mutation.SetMinAmount(v)
	return _u
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_u *ApprovalPolicyUpdate) SetNillableMinAmount(v *decimal.Decimal) *ApprovalPolicyUpdate {
	if v != nil {
		_u.SetMinAmount(*v)
	}
	return _u
}

// SetMaxAmount sets the "max_amount" field.
func (_u *ApprovalPolicyUpdate) SetMaxAmount(v decimal.Decimal) *ApprovalPolicyUpdate {
	_u.mutation.SetMaxAmount(v)
	return _u
}

// SetNillableMaxAmount sets the "max_amount" field if the given value is not nil.
func (_u *ApprovalPolicyUpdate) SetNillableMaxAmount(v *decimal.Decimal) *ApprovalPolicyUpdate {
	if v != nil {
		_u.SetMaxAmount(*v)
	}
	return _u
}

// SetRequiredLevels sets the "required_levels" field.
func (_u *ApprovalPolicyUpdate) SetRequiredLevels(v int) *ApprovalPolicyUpdate {
	_u.mutation.ResetRequiredLevels()
	_u.mutation.SetRequiredLevels(v)
	return _u
}

// SetNillableRequiredLevels sets the "required_levels" field if the given value is not nil.
func (_u *ApprovalPolicyUpdate) SetNillableRequiredLevels(v *int) *ApprovalPolicyUpdate {
	if v != nil {
		_u.SetRequiredLevels(*v)
	}
	return _u
}

// AddRequiredLevels adds value to the "required_levels" field.
func (_u *ApprovalPolicyUpdate) AddRequiredLevels(v int) *ApprovalPolicyUpdate {
	_u.mutation.AddRequiredLevels(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ApprovalPolicyUpdate) SetActive(v bool) *ApprovalPolicyUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ApprovalPolicyUpdate) SetNillableActive(v *bool) *ApprovalPolicyUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ApprovalPolicyUpdate) SetCreatedBy(v string) *ApprovalPolicyUpdate {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ApprovalPolicyUpdate) SetNillableCreatedBy(v *string) *ApprovalPolicyUpdate {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the ApprovalPolicyMutation object of the builder.
func (_u *ApprovalPolicyUpdate) Mutation() *ApprovalPolicyMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ApprovalPolicyUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalPolicyUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ApprovalPolicyUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalPolicyUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalPolicyUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalPolicyUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := approvalpolicy.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredLevels(); ok {
		if err := approvalpolicy.RequiredLevelsValidator(v); err != nil {
			return &ValidationError{Name: "required_levels", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.required_levels": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := approvalpolicy.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalPolicyUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalpolicy.Table, approvalpolicy.Columns, sqlgraph.NewFieldSpec(approvalpolicy.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalpolicy.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinAmount(); ok {
		_spec.SetField(approvalpolicy.FieldMinAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.MaxAmount(); ok {
		_spec.SetField(approvalpolicy.FieldMaxAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.RequiredLevels(); ok {
		_spec.SetField(approvalpolicy.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredLevels(); ok {
		_spec.AddField(approvalpolicy.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(approvalpolicy.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(approvalpolicy.FieldCreatedBy, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ApprovalPolicyUpdateOne is the builder for updating a single ApprovalPolicy entity.
type ApprovalPolicyUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ApprovalPolicyMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ApprovalPolicyUpdateOne) SetUpdatedAt(v time.Time) *ApprovalPolicyUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *ApprovalPolicyUpdateOne) SetTitle(v string) *ApprovalPolicyUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *ApprovalPolicyUpdateOne) SetNillableTitle(v *string) *ApprovalPolicyUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetMinAmount sets the "min_amount" field.
func (_u *ApprovalPolicyUpdateOne) SetMinAmount(v decimal.Decimal) *ApprovalPolicyUpdateOne {
	_u.mutation.SetMinAmount(v)
	return _u
}

// SetNillableMinAmount sets the "min_amount" field if the given value is not nil.
func (_u *ApprovalPolicyUpdateOne) SetNillableMinAmount(v *decimal.Decimal) *ApprovalPolicyUpdateOne {
	if v != nil {
		_u.SetMinAmount(*v)
	}
	return _u
}

// SetMaxAmount sets the "max_amount" field.
func (_u *ApprovalPolicyUpdateOne) SetMaxAmount(v decimal.Decimal) *ApprovalPolicyUpdateOne {
	_u.mutation.SetMaxAmount(v)
	return _u
}

// SetNillableMaxAmount sets the "max_amount" field if the given value is not nil.
func (_u *ApprovalPolicyUpdateOne) SetNillableMaxAmount(v *decimal.Decimal) *ApprovalPolicyUpdateOne {
	if v != nil {
		_u.SetMaxAmount(*v)
	}
	return _u
}

// SetRequiredLevels sets the "required_levels" field.
func (_u *ApprovalPolicyUpdateOne) SetRequiredLevels(v int) *ApprovalPolicyUpdateOne {
	_u.mutation.ResetRequiredLevels()
	_u.mutation.SetRequiredLevels(v)
	return _u
}

// SetNillableRequiredLevels sets the "required_levels" field if the given value is not nil.
func (_u *ApprovalPolicyUpdateOne) SetNillableRequiredLevels(v *int) *ApprovalPolicyUpdateOne {
	if v != nil {
		_u.SetRequiredLevels(*v)
	}
	return _u
}

// AddRequiredLevels adds value to the "required_levels" field.
func (_u *ApprovalPolicyUpdateOne) AddRequiredLevels(v int) *ApprovalPolicyUpdateOne {
	_u.mutation.AddRequiredLevels(v)
	return _u
}

// SetActive sets the "active" field.
func (_u *ApprovalPolicyUpdateOne) SetActive(v bool) *ApprovalPolicyUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *ApprovalPolicyUpdateOne) SetNillableActive(v *bool) *ApprovalPolicyUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetCreatedBy sets the "created_by" field.
func (_u *ApprovalPolicyUpdateOne) SetCreatedBy(v string) *ApprovalPolicyUpdateOne {
	_u.mutation.SetCreatedBy(v)
	return _u
}

// SetNillableCreatedBy sets the "created_by" field if the given value is not nil.
func (_u *ApprovalPolicyUpdateOne) SetNillableCreatedBy(v *string) *ApprovalPolicyUpdateOne {
	if v != nil {
		_u.SetCreatedBy(*v)
	}
	return _u
}

// Mutation returns the ApprovalPolicyMutation object of the builder.
func (_u *ApprovalPolicyUpdateOne) Mutation() *ApprovalPolicyMutation {
	return _u.mutation
}

// Where appends a list predicates to the ApprovalPolicyUpdate builder.
func (_u *ApprovalPolicyUpdateOne) Where(ps ...predicate.ApprovalPolicy) *ApprovalPolicyUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ApprovalPolicyUpdateOne) Select(field string, fields ...string) *ApprovalPolicyUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ApprovalPolicy entity.
func (_u *ApprovalPolicyUpdateOne) Save(ctx context.Context) (*ApprovalPolicy, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ApprovalPolicyUpdateOne) SaveX(ctx context.Context) *ApprovalPolicy {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ApprovalPolicyUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ApprovalPolicyUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ApprovalPolicyUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := approvalpolicy.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ApprovalPolicyUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := approvalpolicy.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredLevels(); ok {
		if err := approvalpolicy.RequiredLevelsValidator(v); err != nil {
			return &ValidationError{Name: "required_levels", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.required_levels": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CreatedBy(); ok {
		if err := approvalpolicy.CreatedByValidator(v); err != nil {
			return &ValidationError{Name: "created_by", err: fmt.Errorf(`ent: validator failed for field "ApprovalPolicy.created_by": %w`, err)}
		}
	}
	return nil
}

func (_u *ApprovalPolicyUpdateOne) sqlSave(ctx context.Context) (_node *ApprovalPolicy, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(approvalpolicy.Table, approvalpolicy.Columns, sqlgraph.NewFieldSpec(approvalpolicy.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ApprovalPolicy.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, approvalpolicy.FieldID)
		for _, f := range fields {
			if !approvalpolicy.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != approvalpolicy.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(approvalpolicy.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(approvalpolicy.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.MinAmount(); ok {
		_spec.SetField(approvalpolicy.FieldMinAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.MaxAmount(); ok {
		_spec.SetField(approvalpolicy.FieldMaxAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.RequiredLevels(); ok {
		_spec.SetField(approvalpolicy.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredLevels(); ok {
		_spec.AddField(approvalpolicy.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(approvalpolicy.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CreatedBy(); ok {
		_spec.SetField(approvalpolicy.FieldCreatedBy, field.TypeString, value)
	}
	_node = &ApprovalPolicy{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{approvalpolicy.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
