// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/predicate"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
)

// RequestItemUpdate is the builder for updating RequestItem entities.
type RequestItemUpdate struct {
	config
	hooks    []Hook
	mutation *RequestItemMutation
}

// Where appends a list predicates to the RequestItemUpdate builder.
func (_u *RequestItemUpdate) Where(ps ...predicate.RequestItem) *RequestItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRequestID sets the "request_id" field.
func (_u *RequestItemUpdate) SetRequestID(v string) *RequestItemUpdate {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableRequestID(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestItemUpdate) SetName(v string) *RequestItemUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableName(v *string) *RequestItemUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *RequestItemUpdate) SetQuantity(v int) *RequestItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableQuantity(v *int) *RequestItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *RequestItemUpdate) AddQuantity(v int) *RequestItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *RequestItemUpdate) SetUnitPrice(v decimal.Decimal) *RequestItemUpdate {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *RequestItemUpdate) SetNillableUnitPrice(v *decimal.Decimal) *RequestItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the PurchaseRequest entity.
func (_u *RequestItemUpdate) SetRequest(v *PurchaseRequest) *RequestItemUpdate {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestItemMutation object of the builder.
func (_u *RequestItemUpdate) Mutation() *RequestItemMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the PurchaseRequest entity.
func (_u *RequestItemUpdate) ClearRequest() *RequestItemUpdate {
	_u.mutation.ClearRequest()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RequestItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RequestItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestItemUpdate) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := requestitem.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "RequestItem.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := requestitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := requestitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "RequestItem.quantity": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestItem.request"`)
	}
	return nil
}

func (_u *RequestItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestitem.Table, requestitem.Columns, sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(requestitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(requestitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(requestitem.FieldUnitPrice, field.TypeOther, value)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestitem.RequestTable,
			Columns: []string{requestitem.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestitem.RequestTable,
			Columns: []string{requestitem.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RequestItemUpdateOne is the builder for updating a single RequestItem entity.
type RequestItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RequestItemMutation
}

// SetRequestID sets the "request_id" field.
func (_u *RequestItemUpdateOne) SetRequestID(v string) *RequestItemUpdateOne {
	_u.mutation.SetRequestID(v)
	return _u
}

// SetNillableRequestID sets the "request_id" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableRequestID(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetRequestID(*v)
	}
	return _u
}

// SetName sets the "name" field.
func (_u *RequestItemUpdateOne) SetName(v string) *RequestItemUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableName(v *string) *RequestItemUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *RequestItemUpdateOne) SetQuantity(v int) *RequestItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableQuantity(v *int) *RequestItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *RequestItemUpdateOne) AddQuantity(v int) *RequestItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *RequestItemUpdateOne) SetUnitPrice(v decimal.Decimal) *RequestItemUpdateOne {
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *RequestItemUpdateOne) SetNillableUnitPrice(v *decimal.Decimal) *RequestItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// SetRequest sets the "request" edge to the PurchaseRequest entity.
func (_u *RequestItemUpdateOne) SetRequest(v *PurchaseRequest) *RequestItemUpdateOne {
	return _u.SetRequestID(v.ID)
}

// Mutation returns the RequestItemMutation object of the builder.
func (_u *RequestItemUpdateOne) Mutation() *RequestItemMutation {
	return _u.mutation
}

// ClearRequest clears the "request" edge to the PurchaseRequest entity.
func (_u *RequestItemUpdateOne) ClearRequest() *RequestItemUpdateOne {
	_u.mutation.ClearRequest()
	return _u
}

// Where appends a list predicates to the RequestItemUpdate builder.
func (_u *RequestItemUpdateOne) Where(ps ...predicate.RequestItem) *RequestItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RequestItemUpdateOne) Select(field string, fields ...string) *RequestItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RequestItem entity.
func (_u *RequestItemUpdateOne) Save(ctx context.Context) (*RequestItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RequestItemUpdateOne) SaveX(ctx context.Context) *RequestItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RequestItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RequestItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RequestItemUpdateOne) check() error {
	if v, ok := _u.mutation.RequestID(); ok {
		if err := requestitem.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "RequestItem.request_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Name(); ok {
		if err := requestitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestItem.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Quantity(); ok {
		if err := requestitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "RequestItem.quantity": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RequestItem.request"`)
	}
	return nil
}

func (_u *RequestItemUpdateOne) sqlSave(ctx context.Context) (_node *RequestItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(requestitem.Table, requestitem.Columns, sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RequestItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, requestitem.FieldID)
		for _, f := range fields {
			if !requestitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != requestitem.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(requestitem.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(requestitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(requestitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(requestitem.FieldUnitPrice, field.TypeOther, value)
	}
	if _u.mutation.RequestCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestitem.RequestTable,
			Columns: []string{requestitem.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   requestitem.RequestTable,
			Columns: []string{requestitem.RequestColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RequestItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{requestitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
