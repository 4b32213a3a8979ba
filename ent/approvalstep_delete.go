// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/predicate"
)

// ApprovalStepDelete is the builder for deleting a ApprovalStep entity.
type ApprovalStepDelete struct {
	config
	hooks    []Hook
	mutation *ApprovalStepMutation
}

// Where appends a list predicates to the ApprovalStepDelete builder.
func (_d *ApprovalStepDelete) Where(ps ...predicate.ApprovalStep) *ApprovalStepDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApprovalStepDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApprovalStepDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApprovalStepDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(approvalstep.Table, sqlgraph.NewFieldSpec(approvalstep.FieldID, field.TypeString))
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

// ApprovalStepDeleteOne is the builder for deleting a single ApprovalStep entity.
type ApprovalStepDeleteOne struct {
	_d *ApprovalStepDelete
}

// Where appends a list predicates to the ApprovalStepDelete builder.
func (_d *ApprovalStepDeleteOne) Where(ps ...predicate.ApprovalStep) *ApprovalStepDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApprovalStepDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{approvalstep.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApprovalStepDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
