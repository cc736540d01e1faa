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
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/ruledraft"
)

// RuleDraftUpdate is the builder for updating RuleDraft entities.
type RuleDraftUpdate struct {
	config
	hooks    []Hook
	mutation *RuleDraftMutation
}

// Where appends a list predicates to the RuleDraftUpdate builder.
func (_u *RuleDraftUpdate) Where(ps ...predicate.RuleDraft) *RuleDraftUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *RuleDraftUpdate) SetStatus(v ruledraft.Status) *RuleDraftUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RuleDraftUpdate) SetNillableStatus(v *ruledraft.Status) *RuleDraftUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *RuleDraftUpdate) SetRuleName(v string) *RuleDraftUpdate {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *RuleDraftUpdate) SetNillableRuleName(v *string) *RuleDraftUpdate {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetRuleDescription sets the "rule_description" field.
func (_u *RuleDraftUpdate) SetRuleDescription(v string) *RuleDraftUpdate {
	_u.mutation.SetRuleDescription(v)
	return _u
}

// SetNillableRuleDescription sets the "rule_description" field if the given value is not nil.
func (_u *RuleDraftUpdate) SetNillableRuleDescription(v *string) *RuleDraftUpdate {
	if v != nil {
		_u.SetRuleDescription(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RuleDraftUpdate) SetPayload(v map[string]interface{}) *RuleDraftUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RuleDraftUpdate) SetUpdatedAt(v time.Time) *RuleDraftUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RuleDraftMutation object of the builder.
func (_u *RuleDraftUpdate) Mutation() *RuleDraftMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RuleDraftUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleDraftUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RuleDraftUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleDraftUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RuleDraftUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ruledraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleDraftUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ruledraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RuleDraft.status": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RuleDraft.investigation"`)
	}
	return nil
}

func (_u *RuleDraftUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ruledraft.Table, ruledraft.Columns, sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ruledraft.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(ruledraft.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleDescription(); ok {
		_spec.SetField(ruledraft.FieldRuleDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(ruledraft.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ruledraft.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruledraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RuleDraftUpdateOne is the builder for updating a single RuleDraft entity.
type RuleDraftUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RuleDraftMutation
}

// SetStatus sets the "status" field.
func (_u *RuleDraftUpdateOne) SetStatus(v ruledraft.Status) *RuleDraftUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RuleDraftUpdateOne) SetNillableStatus(v *ruledraft.Status) *RuleDraftUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRuleName sets the "rule_name" field.
func (_u *RuleDraftUpdateOne) SetRuleName(v string) *RuleDraftUpdateOne {
	_u.mutation.SetRuleName(v)
	return _u
}

// SetNillableRuleName sets the "rule_name" field if the given value is not nil.
func (_u *RuleDraftUpdateOne) SetNillableRuleName(v *string) *RuleDraftUpdateOne {
	if v != nil {
		_u.SetRuleName(*v)
	}
	return _u
}

// SetRuleDescription sets the "rule_description" field.
func (_u *RuleDraftUpdateOne) SetRuleDescription(v string) *RuleDraftUpdateOne {
	_u.mutation.SetRuleDescription(v)
	return _u
}

// SetNillableRuleDescription sets the "rule_description" field if the given value is not nil.
func (_u *RuleDraftUpdateOne) SetNillableRuleDescription(v *string) *RuleDraftUpdateOne {
	if v != nil {
		_u.SetRuleDescription(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RuleDraftUpdateOne) SetPayload(v map[string]interface{}) *RuleDraftUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RuleDraftUpdateOne) SetUpdatedAt(v time.Time) *RuleDraftUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RuleDraftMutation object of the builder.
func (_u *RuleDraftUpdateOne) Mutation() *RuleDraftMutation {
	return _u.mutation
}

// Where appends a list predicates to the RuleDraftUpdate builder.
func (_u *RuleDraftUpdateOne) Where(ps ...predicate.RuleDraft) *RuleDraftUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RuleDraftUpdateOne) Select(field string, fields ...string) *RuleDraftUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RuleDraft entity.
func (_u *RuleDraftUpdateOne) Save(ctx context.Context) (*RuleDraft, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RuleDraftUpdateOne) SaveX(ctx context.Context) *RuleDraft {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RuleDraftUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RuleDraftUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RuleDraftUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := ruledraft.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RuleDraftUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := ruledraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RuleDraft.status": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "RuleDraft.investigation"`)
	}
	return nil
}

func (_u *RuleDraftUpdateOne) sqlSave(ctx context.Context) (_node *RuleDraft, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(ruledraft.Table, ruledraft.Columns, sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RuleDraft.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, ruledraft.FieldID)
		for _, f := range fields {
			if !ruledraft.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != ruledraft.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(ruledraft.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RuleName(); ok {
		_spec.SetField(ruledraft.FieldRuleName, field.TypeString, value)
	}
	if value, ok := _u.mutation.RuleDescription(); ok {
		_spec.SetField(ruledraft.FieldRuleDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(ruledraft.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(ruledraft.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &RuleDraft{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{ruledraft.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
