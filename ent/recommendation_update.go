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
	"github.com/fraudops/opsagent/ent/recommendation"
)

// RecommendationUpdate is the builder for updating Recommendation entities.
type RecommendationUpdate struct {
	config
	hooks    []Hook
	mutation *RecommendationMutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdate) Where(ps ...predicate.Recommendation) *RecommendationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRecType sets the "rec_type" field.
func (_u *RecommendationUpdate) SetRecType(v string) *RecommendationUpdate {
	_u.mutation.SetRecType(v)
	return _u
}

// SetNillableRecType sets the "rec_type" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableRecType(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetRecType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdate) SetStatus(v recommendation.Status) *RecommendationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableStatus(v *recommendation.Status) *RecommendationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecommendationUpdate) SetPriority(v int) *RecommendationUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillablePriority(v *int) *RecommendationUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RecommendationUpdate) AddPriority(v int) *RecommendationUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdate) SetTitle(v string) *RecommendationUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableTitle(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetImpact sets the "impact" field.
func (_u *RecommendationUpdate) SetImpact(v string) *RecommendationUpdate {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableImpact(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// ClearImpact clears the value of the "impact" field.
func (_u *RecommendationUpdate) ClearImpact() *RecommendationUpdate {
	_u.mutation.ClearImpact()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RecommendationUpdate) SetPayload(v map[string]interface{}) *RecommendationUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *RecommendationUpdate) SetComment(v string) *RecommendationUpdate {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableComment(v *string) *RecommendationUpdate {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *RecommendationUpdate) ClearComment() *RecommendationUpdate {
	_u.mutation.ClearComment()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *RecommendationUpdate) SetSeverity(v recommendation.Severity) *RecommendationUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *RecommendationUpdate) SetNillableSeverity(v *recommendation.Severity) *RecommendationUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecommendationUpdate) SetUpdatedAt(v time.Time) *RecommendationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdate) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RecommendationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RecommendationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecommendationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recommendation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recommendation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := recommendation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Recommendation.severity": %w`, err)}
		}
	}
	if _u.mutation.InsightCleared() && len(_u.mutation.InsightIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recommendation.insight"`)
	}
	return nil
}

func (_u *RecommendationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(recommendation.FieldImpact, field.TypeString, value)
	}
	if _u.mutation.ImpactCleared() {
		_spec.ClearField(recommendation.FieldImpact, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(recommendation.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(recommendation.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(recommendation.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(recommendation.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RecommendationUpdateOne is the builder for updating a single Recommendation entity.
type RecommendationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecommendationMutation
}

// SetRecType sets the "rec_type" field.
func (_u *RecommendationUpdateOne) SetRecType(v string) *RecommendationUpdateOne {
	_u.mutation.SetRecType(v)
	return _u
}

// SetNillableRecType sets the "rec_type" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableRecType(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetRecType(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *RecommendationUpdateOne) SetStatus(v recommendation.Status) *RecommendationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableStatus(v *recommendation.Status) *RecommendationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *RecommendationUpdateOne) SetPriority(v int) *RecommendationUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillablePriority(v *int) *RecommendationUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *RecommendationUpdateOne) AddPriority(v int) *RecommendationUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *RecommendationUpdateOne) SetTitle(v string) *RecommendationUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableTitle(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetImpact sets the "impact" field.
func (_u *RecommendationUpdateOne) SetImpact(v string) *RecommendationUpdateOne {
	_u.mutation.SetImpact(v)
	return _u
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableImpact(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetImpact(*v)
	}
	return _u
}

// ClearImpact clears the value of the "impact" field.
func (_u *RecommendationUpdateOne) ClearImpact() *RecommendationUpdateOne {
	_u.mutation.ClearImpact()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RecommendationUpdateOne) SetPayload(v map[string]interface{}) *RecommendationUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetComment sets the "comment" field.
func (_u *RecommendationUpdateOne) SetComment(v string) *RecommendationUpdateOne {
	_u.mutation.SetComment(v)
	return _u
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableComment(v *string) *RecommendationUpdateOne {
	if v != nil {
		_u.SetComment(*v)
	}
	return _u
}

// ClearComment clears the value of the "comment" field.
func (_u *RecommendationUpdateOne) ClearComment() *RecommendationUpdateOne {
	_u.mutation.ClearComment()
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *RecommendationUpdateOne) SetSeverity(v recommendation.Severity) *RecommendationUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *RecommendationUpdateOne) SetNillableSeverity(v *recommendation.Severity) *RecommendationUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *RecommendationUpdateOne) SetUpdatedAt(v time.Time) *RecommendationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the RecommendationMutation object of the builder.
func (_u *RecommendationUpdateOne) Mutation() *RecommendationMutation {
	return _u.mutation
}

// Where appends a list predicates to the RecommendationUpdate builder.
func (_u *RecommendationUpdateOne) Where(ps ...predicate.Recommendation) *RecommendationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RecommendationUpdateOne) Select(field string, fields ...string) *RecommendationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Recommendation entity.
func (_u *RecommendationUpdateOne) Save(ctx context.Context) (*Recommendation, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RecommendationUpdateOne) SaveX(ctx context.Context) *Recommendation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RecommendationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RecommendationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *RecommendationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := recommendation.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RecommendationUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := recommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recommendation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := recommendation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Recommendation.severity": %w`, err)}
		}
	}
	if _u.mutation.InsightCleared() && len(_u.mutation.InsightIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Recommendation.insight"`)
	}
	return nil
}

func (_u *RecommendationUpdateOne) sqlSave(ctx context.Context) (_node *Recommendation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(recommendation.Table, recommendation.Columns, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Recommendation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recommendation.FieldID)
		for _, f := range fields {
			if !recommendation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recommendation.FieldID {
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
	if value, ok := _u.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(recommendation.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Impact(); ok {
		_spec.SetField(recommendation.FieldImpact, field.TypeString, value)
	}
	if _u.mutation.ImpactCleared() {
		_spec.ClearField(recommendation.FieldImpact, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(recommendation.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.Comment(); ok {
		_spec.SetField(recommendation.FieldComment, field.TypeString, value)
	}
	if _u.mutation.CommentCleared() {
		_spec.ClearField(recommendation.FieldComment, field.TypeString)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(recommendation.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &Recommendation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recommendation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
