// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/purchaserequest"
)

// FinanceNoteCreate is the builder for creating a FinanceNote entity.
type FinanceNoteCreate struct {
	config
	mutation *FinanceNoteMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *FinanceNoteCreate) SetCreatedAt(v time.Time) *FinanceNoteCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *FinanceNoteCreate) SetNillableCreatedAt(v *time.Time) *FinanceNoteCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *FinanceNoteCreate) SetUpdatedAt(v time.Time) *FinanceNoteCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *FinanceNoteCreate) SetNillableUpdatedAt(v *time.Time) *FinanceNoteCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRequestID sets the "request_id" field.
func (_c *FinanceNoteCreate) SetRequestID(v string) *FinanceNoteCreate {
	_c.mutation.SetRequestID(v)
	return _c
}

// SetAuthorID sets the "author_id" field.
func (_c *FinanceNoteCreate) SetAuthorID(v string) *FinanceNoteCreate {
	_c.mutation.SetAuthorID(v)
	return _c
}

// SetNote sets the "note" field.
func (_c *FinanceNoteCreate) SetNote(v string) *FinanceNoteCreate {
	_c.mutation.SetNote(v)
	return _c
}

// SetID sets the "id" field.
func (_c *FinanceNoteCreate) SetID(v string) *FinanceNoteCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequest sets the "request" edge to the PurchaseRequest entity.
func (_c *FinanceNoteCreate) SetRequest(v *PurchaseRequest) *FinanceNoteCreate {
	return _c.SetRequestID(v.ID)
}

// Mutation returns the FinanceNoteMutation object of the builder.
func (_c *FinanceNoteCreate) Mutation() *FinanceNoteMutation {
	return _c.mutation
}

// Save creates the FinanceNote in the database.
func (_c *FinanceNoteCreate) Save(ctx context.Context) (*FinanceNote, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FinanceNoteCreate) SaveX(ctx context.Context) *FinanceNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinanceNoteCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinanceNoteCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FinanceNoteCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := financenote.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := financenote.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FinanceNoteCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "FinanceNote.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "FinanceNote.updated_at"`)}
	}
	if _, ok := _c.mutation.RequestID(); !ok {
		return &ValidationError{Name: "request_id", err: errors.New(`ent: missing required field "FinanceNote.request_id"`)}
	}
	if v, ok := _c.mutation.RequestID(); ok {
		if err := financenote.RequestIDValidator(v); err != nil {
			return &ValidationError{Name: "request_id", err: fmt.Errorf(`ent: validator failed for field "FinanceNote.request_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "FinanceNote.author_id"`)}
	}
	if v, ok := _c.mutation.AuthorID(); ok {
		if err := financenote.AuthorIDValidator(v); err != nil {
			return &ValidationError{Name: "author_id", err: fmt.Errorf(`ent: validator failed for field "FinanceNote.author_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Note(); !ok {
		return &ValidationError{Name: "note", err: errors.New(`ent: missing required field "FinanceNote.note"`)}
	}
	if v, ok := _c.mutation.Note(); ok {
		if err := financenote.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "FinanceNote.note": %w`, err)}
		}
	}
	if len(_c.mutation.RequestIDs()) == 0 {
		return &ValidationError{Name: "request", err: errors.New(`ent: missing required edge "FinanceNote.request"`)}
	}
	return nil
}

func (_c *FinanceNoteCreate) sqlSave(ctx context.Context) (*FinanceNote, error) {
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
			return nil, fmt.Errorf("unexpected FinanceNote.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *FinanceNoteCreate) createSpec() (*FinanceNote, *sqlgraph.CreateSpec) {
	var (
		_node = &FinanceNote{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(financenote.Table, sqlgraph.NewFieldSpec(financenote.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(financenote.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(financenote.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.AuthorID(); ok {
		_spec.SetField(financenote.FieldAuthorID, field.TypeString, value)
		_node.AuthorID = value
	}
	if value, ok := _c.mutation.Note(); ok {
		_spec.SetField(financenote.FieldNote, field.TypeString, value)
		_node.Note = value
	}
	if nodes := _c.mutation.RequestIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   financenote.RequestTable,
			Columns: []string{financenote.RequestColumn},
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

// FinanceNoteCreateBulk is the builder for creating many FinanceNote entities in bulk.
type FinanceNoteCreateBulk struct {
	config
	err      error
	builders []*FinanceNoteCreate
}

// Save creates the FinanceNote entities in the database.
func (_c *FinanceNoteCreateBulk) Save(ctx context.Context) ([]*FinanceNote, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FinanceNote, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FinanceNoteMutation)
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
func (_c *FinanceNoteCreateBulk) SaveX(ctx context.Context) []*FinanceNote {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FinanceNoteCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FinanceNoteCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
