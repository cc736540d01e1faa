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
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/recommendation"
)

// InsightUpdate is the builder for updating Insight entities.
type InsightUpdate struct {
	config
	hooks    []Hook
	mutation *InsightMutation
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdate) Where(ps ...predicate.Insight) *InsightUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTransactionID sets the "transaction_id" field.
func (_u *InsightUpdate) SetTransactionID(v string) *InsightUpdate {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableTransactionID(v *string) *InsightUpdate {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *InsightUpdate) SetIdempotencyKey(v string) *InsightUpdate {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableIdempotencyKey(v *string) *InsightUpdate {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InsightUpdate) SetSeverity(v insight.Severity) *InsightUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableSeverity(v *insight.Severity) *InsightUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InsightUpdate) SetSummary(v string) *InsightUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableSummary(v *string) *InsightUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetEvidenceKind sets the "evidence_kind" field.
func (_u *InsightUpdate) SetEvidenceKind(v string) *InsightUpdate {
	_u.mutation.SetEvidenceKind(v)
	return _u
}

// SetNillableEvidenceKind sets the "evidence_kind" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableEvidenceKind(v *string) *InsightUpdate {
	if v != nil {
		_u.SetEvidenceKind(*v)
	}
	return _u
}

// SetModelMode sets the "model_mode" field.
func (_u *InsightUpdate) SetModelMode(v string) *InsightUpdate {
	_u.mutation.SetModelMode(v)
	return _u
}

// SetNillableModelMode sets the "model_mode" field if the given value is not nil.
func (_u *InsightUpdate) SetNillableModelMode(v *string) *InsightUpdate {
	if v != nil {
		_u.SetModelMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsightUpdate) SetUpdatedAt(v time.Time) *InsightUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *InsightUpdate) AddEvidenceIDs(ids ...string) *InsightUpdate {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *InsightUpdate) AddEvidence(v ...*Evidence) *InsightUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the Recommendation entity by IDs.
func (_u *InsightUpdate) AddRecommendationIDs(ids ...string) *InsightUpdate {
	_u.mutation.AddRecommendationIDs(ids...)
	return _u
}

// AddRecommendations adds the "recommendations" edges to the Recommendation entity.
func (_u *InsightUpdate) AddRecommendations(v ...*Recommendation) *InsightUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationIDs(ids...)
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdate) Mutation() *InsightMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *InsightUpdate) ClearEvidence() *InsightUpdate {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *InsightUpdate) RemoveEvidenceIDs(ids ...string) *InsightUpdate {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *InsightUpdate) RemoveEvidence(v ...*Evidence) *InsightUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearRecommendations clears all "recommendations" edges to the Recommendation entity.
func (_u *InsightUpdate) ClearRecommendations() *InsightUpdate {
	_u.mutation.ClearRecommendations()
	return _u
}

// RemoveRecommendationIDs removes the "recommendations" edge to Recommendation entities by IDs.
func (_u *InsightUpdate) RemoveRecommendationIDs(ids ...string) *InsightUpdate {
	_u.mutation.RemoveRecommendationIDs(ids...)
	return _u
}

// RemoveRecommendations removes "recommendations" edges to Recommendation entities.
func (_u *InsightUpdate) RemoveRecommendations(v ...*Recommendation) *InsightUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InsightUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InsightUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsightUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdate) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := insight.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Insight.severity": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Insight.investigation"`)
	}
	return nil
}

func (_u *InsightUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(insight.FieldTransactionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(insight.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(insight.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(insight.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceKind(); ok {
		_spec.SetField(insight.FieldEvidenceKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelMode(); ok {
		_spec.SetField(insight.FieldModelMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.EvidenceTable,
			Columns: []string{insight.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.EvidenceTable,
			Columns: []string{insight.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.EvidenceTable,
			Columns: []string{insight.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.RecommendationsTable,
			Columns: []string{insight.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.RecommendationsTable,
			Columns: []string{insight.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.RecommendationsTable,
			Columns: []string{insight.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InsightUpdateOne is the builder for updating a single Insight entity.
type InsightUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InsightMutation
}

// SetTransactionID sets the "transaction_id" field.
func (_u *InsightUpdateOne) SetTransactionID(v string) *InsightUpdateOne {
	_u.mutation.SetTransactionID(v)
	return _u
}

// SetNillableTransactionID sets the "transaction_id" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableTransactionID(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetTransactionID(*v)
	}
	return _u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_u *InsightUpdateOne) SetIdempotencyKey(v string) *InsightUpdateOne {
	_u.mutation.SetIdempotencyKey(v)
	return _u
}

// SetNillableIdempotencyKey sets the "idempotency_key" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableIdempotencyKey(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetIdempotencyKey(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InsightUpdateOne) SetSeverity(v insight.Severity) *InsightUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableSeverity(v *insight.Severity) *InsightUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *InsightUpdateOne) SetSummary(v string) *InsightUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableSummary(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetEvidenceKind sets the "evidence_kind" field.
func (_u *InsightUpdateOne) SetEvidenceKind(v string) *InsightUpdateOne {
	_u.mutation.SetEvidenceKind(v)
	return _u
}

// SetNillableEvidenceKind sets the "evidence_kind" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableEvidenceKind(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetEvidenceKind(*v)
	}
	return _u
}

// SetModelMode sets the "model_mode" field.
func (_u *InsightUpdateOne) SetModelMode(v string) *InsightUpdateOne {
	_u.mutation.SetModelMode(v)
	return _u
}

// SetNillableModelMode sets the "model_mode" field if the given value is not nil.
func (_u *InsightUpdateOne) SetNillableModelMode(v *string) *InsightUpdateOne {
	if v != nil {
		_u.SetModelMode(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InsightUpdateOne) SetUpdatedAt(v time.Time) *InsightUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_u *InsightUpdateOne) AddEvidenceIDs(ids ...string) *InsightUpdateOne {
	_u.mutation.AddEvidenceIDs(ids...)
	return _u
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_u *InsightUpdateOne) AddEvidence(v ...*Evidence) *InsightUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEvidenceIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the Recommendation entity by IDs.
func (_u *InsightUpdateOne) AddRecommendationIDs(ids ...string) *InsightUpdateOne {
	_u.mutation.AddRecommendationIDs(ids...)
	return _u
}

// AddRecommendations adds the "recommendations" edges to the Recommendation entity.
func (_u *InsightUpdateOne) AddRecommendations(v ...*Recommendation) *InsightUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRecommendationIDs(ids...)
}

// Mutation returns the InsightMutation object of the builder.
func (_u *InsightUpdateOne) Mutation() *InsightMutation {
	return _u.mutation
}

// ClearEvidence clears all "evidence" edges to the Evidence entity.
func (_u *InsightUpdateOne) ClearEvidence() *InsightUpdateOne {
	_u.mutation.ClearEvidence()
	return _u
}

// RemoveEvidenceIDs removes the "evidence" edge to Evidence entities by IDs.
func (_u *InsightUpdateOne) RemoveEvidenceIDs(ids ...string) *InsightUpdateOne {
	_u.mutation.RemoveEvidenceIDs(ids...)
	return _u
}

// RemoveEvidence removes "evidence" edges to Evidence entities.
func (_u *InsightUpdateOne) RemoveEvidence(v ...*Evidence) *InsightUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEvidenceIDs(ids...)
}

// ClearRecommendations clears all "recommendations" edges to the Recommendation entity.
func (_u *InsightUpdateOne) ClearRecommendations() *InsightUpdateOne {
	_u.mutation.ClearRecommendations()
	return _u
}

// RemoveRecommendationIDs removes the "recommendations" edge to Recommendation entities by IDs.
func (_u *InsightUpdateOne) RemoveRecommendationIDs(ids ...string) *InsightUpdateOne {
	_u.mutation.RemoveRecommendationIDs(ids...)
	return _u
}

// RemoveRecommendations removes "recommendations" edges to Recommendation entities.
func (_u *InsightUpdateOne) RemoveRecommendations(v ...*Recommendation) *InsightUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRecommendationIDs(ids...)
}

// Where appends a list predicates to the InsightUpdate builder.
func (_u *InsightUpdateOne) Where(ps ...predicate.Insight) *InsightUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InsightUpdateOne) Select(field string, fields ...string) *InsightUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Insight entity.
func (_u *InsightUpdateOne) Save(ctx context.Context) (*Insight, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InsightUpdateOne) SaveX(ctx context.Context) *Insight {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InsightUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InsightUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InsightUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := insight.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InsightUpdateOne) check() error {
	if v, ok := _u.mutation.Severity(); ok {
		if err := insight.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Insight.severity": %w`, err)}
		}
	}
	if _u.mutation.InvestigationCleared() && len(_u.mutation.InvestigationIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Insight.investigation"`)
	}
	return nil
}

func (_u *InsightUpdateOne) sqlSave(ctx context.Context) (_node *Insight, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Insight.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for _, f := range fields {
			if !insight.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != insight.FieldID {
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
	if value, ok := _u.mutation.TransactionID(); ok {
		_spec.SetField(insight.FieldTransactionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdempotencyKey(); ok {
		_spec.SetField(insight.FieldIdempotencyKey, field.TypeString, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(insight.FieldSeverity, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(insight.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.EvidenceKind(); ok {
		_spec.SetField(insight.FieldEvidenceKind, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelMode(); ok {
		_spec.SetField(insight.FieldModelMode, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.EvidenceTable,
			Columns: []string{insight.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEvidenceIDs(); len(nodes) > 0 && !_u.mutation.EvidenceCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.EvidenceTable,
			Columns: []string{insight.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EvidenceIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.EvidenceTable,
			Columns: []string{insight.EvidenceColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.RecommendationsTable,
			Columns: []string{insight.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRecommendationsIDs(); len(nodes) > 0 && !_u.mutation.RecommendationsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.RecommendationsTable,
			Columns: []string{insight.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RecommendationsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   insight.RecommendationsTable,
			Columns: []string{insight.RecommendationsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Insight{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{insight.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
