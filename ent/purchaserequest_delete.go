// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"procureflow.io/procureflow/ent/predicate"
	"procureflow.io/procureflow/ent/purchaserequest"
)

// PurchaseRequestDelete is the builder for deleting a PurchaseRequest entity.
type PurchaseRequestDelete struct {
	config
	hooks    []Hook
	mutation *PurchaseRequestMutation
}

// Where appends a list predicates to the PurchaseRequestDelete builder.
func (_d *PurchaseRequestDelete) Where(ps ...predicate.PurchaseRequest) *PurchaseRequestDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *PurchaseRequestDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PurchaseRequestDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *PurchaseRequestDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(purchaserequest.Table, sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// PurchaseRequestDeleteOne is the builder for deleting a single PurchaseRequest entity.
type PurchaseRequestDeleteOne struct {
	_d *PurchaseRequestDelete
}

// Where appends a list predicates to the PurchaseRequestDelete builder.
func (_d *PurchaseRequestDeleteOne) Where(ps ...predicate.PurchaseRequest) *PurchaseRequestDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *PurchaseRequestDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{purchaserequest.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *PurchaseRequestDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
