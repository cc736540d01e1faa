// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// ToolExecutionLogUpdate is the builder for updating ToolExecutionLog entities.
type ToolExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ToolExecutionLogMutation
}

// Where appends a list predicates to the ToolExecutionLogUpdate builder.
func (_u *ToolExecutionLogUpdate) Where(ps ...predicate.ToolExecutionLog) *ToolExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// Mutation returns the ToolExecutionLogMutation object of the builder.
func (_u *ToolExecutionLogUpdate) Mutation() *ToolExecutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ToolExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ToolExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolExecutionLogUpdate) check() error {
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolExecutionLog.investigation"`)
	}
	return nil
}

func (_u *ToolExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolexecutionlog.Table, toolexecutionlog.Columns, sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(toolexecutionlog.FieldInputSummary, field.TypeString)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(toolexecutionlog.FieldOutputSummary, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolexecutionlog.FieldErrorMessage, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolexecutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ToolExecutionLogUpdateOne is the builder for updating a single ToolExecutionLog entity.
type ToolExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ToolExecutionLogMutation
}

// Mutation returns the ToolExecutionLogMutation object of the builder.
func (_u *ToolExecutionLogUpdateOne) Mutation() *ToolExecutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ToolExecutionLogUpdate builder.
func (_u *ToolExecutionLogUpdateOne) Where(ps ...predicate.ToolExecutionLog) *ToolExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ToolExecutionLogUpdateOne) Select(field string, fields ...string) *ToolExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ToolExecutionLog entity.
func (_u *ToolExecutionLogUpdateOne) Save(ctx context.Context) (*ToolExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ToolExecutionLogUpdateOne) SaveX(ctx context.Context) *ToolExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ToolExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ToolExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ToolExecutionLogUpdateOne) check() error {
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ToolExecutionLog.investigation"`)
	}
	return nil
}

func (_u *ToolExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ToolExecutionLog, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(toolexecutionlog.Table, toolexecutionlog.Columns, sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ToolExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, toolexecutionlog.FieldID)
		for _, f := range fields {
			if !toolexecutionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != toolexecutionlog.FieldID {
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
	if _u.mutation.InputSummaryCleared() {
		_spec.ClearField(toolexecutionlog.FieldInputSummary, field.TypeString)
	}
	if _u.mutation.OutputSummaryCleared() {
		_spec.ClearField(toolexecutionlog.FieldOutputSummary, field.TypeString)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(toolexecutionlog.FieldErrorMessage, field.TypeString)
	}
	_node = &ToolExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{toolexecutionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
