// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"procureflow.io/procureflow/ent/approvalpolicy"
	"procureflow.io/procureflow/ent/predicate"
)

// ApprovalPolicyDelete is the builder for deleting a ApprovalPolicy entity.
type ApprovalPolicyDelete struct {
	config
	hooks    []Hook
	mutation *ApprovalPolicyMutation
}

// Where appends a list predicates to the ApprovalPolicyDelete builder.
func (_d *ApprovalPolicyDelete) Where(ps ...predicate.ApprovalPolicy) *ApprovalPolicyDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ApprovalPolicyDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApprovalPolicyDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ApprovalPolicyDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(approvalpolicy.Table, sqlgraph.NewFieldSpec(approvalpolicy.FieldID, field.TypeString))
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

// ApprovalPolicyDeleteOne is the builder for deleting a single ApprovalPolicy entity.
type ApprovalPolicyDeleteOne struct {
	_d *ApprovalPolicyDelete
}

// Where appends a list predicates to the ApprovalPolicyDelete builder.
func (_d *ApprovalPolicyDeleteOne) Where(ps ...predicate.ApprovalPolicy) *ApprovalPolicyDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ApprovalPolicyDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{approvalpolicy.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ApprovalPolicyDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
