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
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/predicate"
)

// FinanceNoteUpdate is the builder for updating FinanceNote entities.
type FinanceNoteUpdate struct {
	config
	hooks    []Hook
	mutation *FinanceNoteMutation
}

// Where appends a list predicates to the FinanceNoteUpdate builder.
func (_u *FinanceNoteUpdate) Where(ps ...predicate.FinanceNote) *FinanceNoteUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FinanceNoteUpdate) SetUpdatedAt(v time.Time) *FinanceNoteUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *FinanceNoteUpdate) SetNote(v string) *FinanceNoteUpdate {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *FinanceNoteUpdate) SetNillableNote(v *string) *FinanceNoteUpdate {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the FinanceNoteMutation object of the builder.
func (_u *FinanceNoteUpdate) Mutation() *FinanceNoteMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FinanceNoteUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinanceNoteUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FinanceNoteUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinanceNoteUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FinanceNoteUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := financenote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinanceNoteUpdate) check() error {
	if v, ok := _u.mutation.Note(); ok {
		if err := financenote.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "FinanceNote.note": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinanceNote.request"`)
	}
	return nil
}

func (_u *FinanceNoteUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financenote.Table, financenote.Columns, sqlgraph.NewFieldSpec(financenote.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(financenote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(financenote.FieldNote, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financenote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FinanceNoteUpdateOne is the builder for updating a single FinanceNote entity.
type FinanceNoteUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FinanceNoteMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *FinanceNoteUpdateOne) SetUpdatedAt(v time.Time) *FinanceNoteUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetNote sets the "note" field.
func (_u *FinanceNoteUpdateOne) SetNote(v string) *FinanceNoteUpdateOne {
	_u.mutation.SetNote(v)
	return _u
}

// SetNillableNote sets the "note" field if the given value is not nil.
func (_u *FinanceNoteUpdateOne) SetNillableNote(v *string) *FinanceNoteUpdateOne {
	if v != nil {
		_u.SetNote(*v)
	}
	return _u
}

// Mutation returns the FinanceNoteMutation object of the builder.
func (_u *FinanceNoteUpdateOne) Mutation() *FinanceNoteMutation {
	return _u.mutation
}

// Where appends a list predicates to the FinanceNoteUpdate builder.
func (_u *FinanceNoteUpdateOne) Where(ps ...predicate.FinanceNote) *FinanceNoteUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FinanceNoteUpdateOne) Select(field string, fields ...string) *FinanceNoteUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FinanceNote entity.
func (_u *FinanceNoteUpdateOne) Save(ctx context.Context) (*FinanceNote, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FinanceNoteUpdateOne) SaveX(ctx context.Context) *FinanceNote {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FinanceNoteUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FinanceNoteUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *FinanceNoteUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := financenote.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FinanceNoteUpdateOne) check() error {
	if v, ok := _u.mutation.Note(); ok {
		if err := financenote.NoteValidator(v); err != nil {
			return &ValidationError{Name: "note", err: fmt.Errorf(`ent: validator failed for field "FinanceNote.note": %w`, err)}
		}
	}
	if _u.mutation.RequestCleared() && len(_u.mutation.RequestIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "FinanceNote.request"`)
	}
	return nil
}

func (_u *FinanceNoteUpdateOne) sqlSave(ctx context.Context) (_node *FinanceNote, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(financenote.Table, financenote.Columns, sqlgraph.NewFieldSpec(financenote.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FinanceNote.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, financenote.FieldID)
		for _, f := range fields {
			if !financenote.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != financenote.FieldID {
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
		_spec.SetField(financenote.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Note(); ok {
		_spec.SetField(financenote.FieldNote, field.TypeString, value)
	}
	_node = &FinanceNote{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{financenote.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
