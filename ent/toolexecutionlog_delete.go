// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// ToolExecutionLogDelete is the builder for deleting a ToolExecutionLog entity.
type ToolExecutionLogDelete struct {
	config
	hooks    []Hook
	mutation *ToolExecutionLogMutation
}

// Where appends a list predicates to the ToolExecutionLogDelete builder.
func (_d *ToolExecutionLogDelete) Where(ps ...predicate.ToolExecutionLog) *ToolExecutionLogDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *ToolExecutionLogDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ToolExecutionLogDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *ToolExecutionLogDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(toolexecutionlog.Table, sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString))
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

// ToolExecutionLogDeleteOne is the builder for deleting a single ToolExecutionLog entity.
type ToolExecutionLogDeleteOne struct {
	_d *ToolExecutionLogDelete
}

// Where appends a list predicates to the ToolExecutionLogDelete builder.
func (_d *ToolExecutionLogDeleteOne) Where(ps ...predicate.ToolExecutionLog) *ToolExecutionLogDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *ToolExecutionLogDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{toolexecutionlog.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *ToolExecutionLogDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
