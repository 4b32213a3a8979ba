// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
)

// RequestItemCreate is the builder for creating a RequestItem entity.
type RequestItemCreate struct {
	config
	mutation *RequestItemMutation
	hooks    []Hook
}

// SetRequestID sets the "request_id" field.
func (_c *RequestItemCreate) SetRequestID(v string) *RequestItemCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *RequestItemCreate) SetName(v string) *RequestItemCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *RequestItemCreate) SetQuantity(v int) *RequestItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableQuantity(v *int) *RequestItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *RequestItemCreate) SetUnitPrice(v decimal.Decimal) *RequestItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *RequestItemCreate) SetNillableUnitPrice(v *decimal.Decimal) *RequestItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RequestItemCreate) SetID(v string) *RequestItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the PurchaseRequest entity.
func (_c *RequestItemCreate) SetRequest(v *PurchaseRequest) *RequestItemCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the RequestItemMutation object of the builder.
func (_c *RequestItemCreate) Mutation() *RequestItemMutation {
	return _c.mutation
}

// Save creates the RequestItem in the database.
func (_c *RequestItemCreate) Save(ctx context.Context) (*RequestItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RequestItemCreate) SaveX(ctx context.Context) *RequestItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RequestItemCreate) defaults() {
	if _, ok := _c.mutation.Quantity(); !ok {
		v := requestitem.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		v := requestitem.DefaultUnitPrice
		_c.mutation.SetUnitPrice(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RequestItemCreate) check() error {
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "RequestItem.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := requestitem.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "RequestItem.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "RequestItem.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := requestitem.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "RequestItem.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`ent: missing required field "RequestItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := requestitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`ent: validator failed for field "RequestItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`ent: missing required field "RequestItem.unit_price"`)}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "RequestItem.request"`)}
	}
	return nil
}

func (_c *RequestItemCreate) sqlSave(ctx context.Context) (*RequestItem, error) {
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
			return nil, fmt.Errorf("unexpected RequestItem.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RequestItemCreate) createSpec() (*RequestItem, *sqlgraph.CreateSpec) {
	var (
		_node = &RequestItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(requestitem.Table, sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(requestitem.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(requestitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(requestitem.FieldUnitPrice, field.TypeOther, value)
		_node.UnitPrice = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
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
		_node.RequestID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RequestItemCreateBulk is the builder for creating many RequestItem entities in bulk.
type RequestItemCreateBulk struct {
	config
	err      error
	builders []*RequestItemCreate
}

// Save creates the RequestItem entities in the database.
func (_c *RequestItemCreateBulk) Save(ctx context.Context) ([]*RequestItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RequestItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RequestItemMutation)
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
func (_c *RequestItemCreateBulk) SaveX(ctx context.Context) []*RequestItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RequestItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RequestItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
