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
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// InvestigationUpdate is the builder for updating Investigation entities.
type InvestigationUpdate struct {
	config
	hooks    []Hook
	mutation *InvestigationMutation
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdate) Where(ps ...predicate.Investigation) *InvestigationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMode sets the "mode" field.
func (_u *InvestigationUpdate) SetMode(v investigation.Mode) *InvestigationUpdate {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableMode(v *investigation.Mode) *InvestigationUpdate {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdate) SetStatus(v investigation.Status) *InvestigationUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStatus(v *investigation.Status) *InvestigationUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InvestigationUpdate) SetSeverity(v investigation.Severity) *InvestigationUpdate {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableSeverity(v *investigation.Severity) *InvestigationUpdate {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *InvestigationUpdate) ClearSeverity() *InvestigationUpdate {
	_u.mutation.ClearSeverity()
	return _u
}

// SetFinalConfidence sets the "final_confidence" field.
func (_u *InvestigationUpdate) SetFinalConfidence(v float64) *InvestigationUpdate {
	_u.mutation.ResetFinalConfidence()
	_u.mutation.SetFinalConfidence(v)
	return _u
}

// SetNillableFinalConfidence sets the "final_confidence" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableFinalConfidence(v *float64) *InvestigationUpdate {
	if v != nil {
		_u.SetFinalConfidence(*v)
	}
	return _u
}

// AddFinalConfidence adds value to the "final_confidence" field.
func (_u *InvestigationUpdate) AddFinalConfidence(v float64) *InvestigationUpdate {
	_u.mutation.AddFinalConfidence(v)
	return _u
}

// ClearFinalConfidence clears the value of the "final_confidence" field.
func (_u *InvestigationUpdate) ClearFinalConfidence() *InvestigationUpdate {
	_u.mutation.ClearFinalConfidence()
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *InvestigationUpdate) SetStepCount(v int) *InvestigationUpdate {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStepCount(v *int) *InvestigationUpdate {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *InvestigationUpdate) AddStepCount(v int) *InvestigationUpdate {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetMaxSteps sets the "max_steps" field.
func (_u *InvestigationUpdate) SetMaxSteps(v int) *InvestigationUpdate {
	_u.mutation.ResetMaxSteps()
	_u.mutation.SetMaxSteps(v)
	return _u
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableMaxSteps(v *int) *InvestigationUpdate {
	if v != nil {
		_u.SetMaxSteps(*v)
	}
	return _u
}

// AddMaxSteps adds value to the "max_steps" field.
func (_u *InvestigationUpdate) AddMaxSteps(v int) *InvestigationUpdate {
	_u.mutation.AddMaxSteps(v)
	return _u
}

// SetPlannerModel sets the "planner_model" field.
func (_u *InvestigationUpdate) SetPlannerModel(v string) *InvestigationUpdate {
	_u.mutation.SetPlannerModel(v)
	return _u
}

// SetNillablePlannerModel sets the "planner_model" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillablePlannerModel(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetPlannerModel(*v)
	}
	return _u
}

// ClearPlannerModel clears the value of the "planner_model" field.
func (_u *InvestigationUpdate) ClearPlannerModel() *InvestigationUpdate {
	_u.mutation.ClearPlannerModel()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *InvestigationUpdate) SetCaseID(v string) *InvestigationUpdate {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCaseID(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// ClearCaseID clears the value of the "case_id" field.
func (_u *InvestigationUpdate) ClearCaseID() *InvestigationUpdate {
	_u.mutation.ClearCaseID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdate) SetErrorMessage(v string) *InvestigationUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableErrorMessage(v *string) *InvestigationUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdate) ClearErrorMessage() *InvestigationUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdate) SetStartedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableStartedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdate) ClearStartedAt() *InvestigationUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdate) SetCompletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableCompletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdate) ClearCompletedAt() *InvestigationUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvestigationUpdate) SetDeletedAt(v time.Time) *InvestigationUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvestigationUpdate) SetNillableDeletedAt(v *time.Time) *InvestigationUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvestigationUpdate) ClearDeletedAt() *InvestigationUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecutionLog entity by IDs.
func (_u *InvestigationUpdate) AddToolExecutionIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecutionLog entity.
func (_u *InvestigationUpdate) AddToolExecutions(v ...*ToolExecutionLog) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *InvestigationUpdate) AddInsightIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *InvestigationUpdate) AddInsights(v ...*Insight) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddRuleDraftIDs adds the "rule_drafts" edge to the RuleDraft entity by IDs.
func (_u *InvestigationUpdate) AddRuleDraftIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.AddRuleDraftIDs(ids...)
	return _u
}

// AddRuleDrafts adds the "rule_drafts" edges to the RuleDraft entity.
func (_u *InvestigationUpdate) AddRuleDrafts(v ...*RuleDraft) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleDraftIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdate) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecutionLog entity.
func (_u *InvestigationUpdate) ClearToolExecutions() *InvestigationUpdate {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecutionLog entities by IDs.
func (_u *InvestigationUpdate) RemoveToolExecutionIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecutionLog entities.
func (_u *InvestigationUpdate) RemoveToolExecutions(v ...*ToolExecutionLog) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *InvestigationUpdate) ClearInsights() *InvestigationUpdate {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *InvestigationUpdate) RemoveInsightIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *InvestigationUpdate) RemoveInsights(v ...*Insight) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearRuleDrafts clears all "rule_drafts" edges to the RuleDraft entity.
func (_u *InvestigationUpdate) ClearRuleDrafts() *InvestigationUpdate {
	_u.mutation.ClearRuleDrafts()
	return _u
}

// RemoveRuleDraftIDs removes the "rule_drafts" edge to RuleDraft entities by IDs.
func (_u *InvestigationUpdate) RemoveRuleDraftIDs(ids ...string) *InvestigationUpdate {
	_u.mutation.RemoveRuleDraftIDs(ids...)
	return _u
}

// RemoveRuleDrafts removes "rule_drafts" edges to RuleDraft entities.
func (_u *InvestigationUpdate) RemoveRuleDrafts(v ...*RuleDraft) *InvestigationUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleDraftIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvestigationUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvestigationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdate) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := investigation.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Investigation.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := investigation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Investigation.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(investigation.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(investigation.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(investigation.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.FinalConfidence(); ok {
		_spec.SetField(investigation.FieldFinalConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalConfidence(); ok {
		_spec.AddField(investigation.FieldFinalConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.FinalConfidenceCleared() {
		_spec.ClearField(investigation.FieldFinalConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(investigation.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(investigation.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSteps(); ok {
		_spec.SetField(investigation.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSteps(); ok {
		_spec.AddField(investigation.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlannerModel(); ok {
		_spec.SetField(investigation.FieldPlannerModel, field.TypeString, value)
	}
	if _u.mutation.PlannerModelCleared() {
		_spec.ClearField(investigation.FieldPlannerModel, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(investigation.FieldCaseID, field.TypeString, value)
	}
	if _u.mutation.CaseIDCleared() {
		_spec.ClearField(investigation.FieldCaseID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(investigation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ToolExecutionsTable,
			Columns: []string{investigation.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ToolExecutionsTable,
			Columns: []string{investigation.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ToolExecutionsTable,
			Columns: []string{investigation.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.InsightsTable,
			Columns: []string{investigation.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.InsightsTable,
			Columns: []string{investigation.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.InsightsTable,
			Columns: []string{investigation.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleDraftsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RuleDraftsTable,
			Columns: []string{investigation.RuleDraftsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRuleDraftsIDs(); len(nodes) > 0 && !_u.mutation.RuleDraftsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RuleDraftsTable,
			Columns: []string{investigation.RuleDraftsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleDraftsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RuleDraftsTable,
			Columns: []string{investigation.RuleDraftsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvestigationUpdateOne is the builder for updating a single Investigation entity.
type InvestigationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvestigationMutation
}

// SetMode sets the "mode" field.
func (_u *InvestigationUpdateOne) SetMode(v investigation.Mode) *InvestigationUpdateOne {
	_u.mutation.SetMode(v)
	return _u
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableMode(v *investigation.Mode) *InvestigationUpdateOne {
	if v != nil {
		_u.SetMode(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *InvestigationUpdateOne) SetStatus(v investigation.Status) *InvestigationUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStatus(v *investigation.Status) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetSeverity sets the "severity" field.
func (_u *InvestigationUpdateOne) SetSeverity(v investigation.Severity) *InvestigationUpdateOne {
	_u.mutation.SetSeverity(v)
	return _u
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableSeverity(v *investigation.Severity) *InvestigationUpdateOne {
	if v != nil {
		_u.SetSeverity(*v)
	}
	return _u
}

// ClearSeverity clears the value of the "severity" field.
func (_u *InvestigationUpdateOne) ClearSeverity() *InvestigationUpdateOne {
	_u.mutation.ClearSeverity()
	return _u
}

// SetFinalConfidence sets the "final_confidence" field.
func (_u *InvestigationUpdateOne) SetFinalConfidence(v float64) *InvestigationUpdateOne {
	_u.mutation.ResetFinalConfidence()
	_u.mutation.SetFinalConfidence(v)
	return _u
}

// SetNillableFinalConfidence sets the "final_confidence" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableFinalConfidence(v *float64) *InvestigationUpdateOne {
	if v != nil {
		_u.SetFinalConfidence(*v)
	}
	return _u
}

// AddFinalConfidence adds value to the "final_confidence" field.
func (_u *InvestigationUpdateOne) AddFinalConfidence(v float64) *InvestigationUpdateOne {
	_u.mutation.AddFinalConfidence(v)
	return _u
}

// ClearFinalConfidence clears the value of the "final_confidence" field.
func (_u *InvestigationUpdateOne) ClearFinalConfidence() *InvestigationUpdateOne {
	_u.mutation.ClearFinalConfidence()
	return _u
}

// SetStepCount sets the "step_count" field.
func (_u *InvestigationUpdateOne) SetStepCount(v int) *InvestigationUpdateOne {
	_u.mutation.ResetStepCount()
	_u.mutation.SetStepCount(v)
	return _u
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStepCount(v *int) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStepCount(*v)
	}
	return _u
}

// AddStepCount adds value to the "step_count" field.
func (_u *InvestigationUpdateOne) AddStepCount(v int) *InvestigationUpdateOne {
	_u.mutation.AddStepCount(v)
	return _u
}

// SetMaxSteps sets the "max_steps" field.
func (_u *InvestigationUpdateOne) SetMaxSteps(v int) *InvestigationUpdateOne {
	_u.mutation.ResetMaxSteps()
	_u.mutation.SetMaxSteps(v)
	return _u
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableMaxSteps(v *int) *InvestigationUpdateOne {
	if v != nil {
		_u.SetMaxSteps(*v)
	}
	return _u
}

// AddMaxSteps adds value to the "max_steps" field.
func (_u *InvestigationUpdateOne) AddMaxSteps(v int) *InvestigationUpdateOne {
	_u.mutation.AddMaxSteps(v)
	return _u
}

// SetPlannerModel sets the "planner_model" field.
func (_u *InvestigationUpdateOne) SetPlannerModel(v string) *InvestigationUpdateOne {
	_u.mutation.SetPlannerModel(v)
	return _u
}

// SetNillablePlannerModel sets the "planner_model" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillablePlannerModel(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetPlannerModel(*v)
	}
	return _u
}

// ClearPlannerModel clears the value of the "planner_model" field.
func (_u *InvestigationUpdateOne) ClearPlannerModel() *InvestigationUpdateOne {
	_u.mutation.ClearPlannerModel()
	return _u
}

// SetCaseID sets the "case_id" field.
func (_u *InvestigationUpdateOne) SetCaseID(v string) *InvestigationUpdateOne {
	_u.mutation.SetCaseID(v)
	return _u
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCaseID(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCaseID(*v)
	}
	return _u
}

// ClearCaseID clears the value of the "case_id" field.
func (_u *InvestigationUpdateOne) ClearCaseID() *InvestigationUpdateOne {
	_u.mutation.ClearCaseID()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvestigationUpdateOne) SetErrorMessage(v string) *InvestigationUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableErrorMessage(v *string) *InvestigationUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvestigationUpdateOne) ClearErrorMessage() *InvestigationUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *InvestigationUpdateOne) SetStartedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableStartedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *InvestigationUpdateOne) ClearStartedAt() *InvestigationUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *InvestigationUpdateOne) SetCompletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableCompletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *InvestigationUpdateOne) ClearCompletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *InvestigationUpdateOne) SetDeletedAt(v time.Time) *InvestigationUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *InvestigationUpdateOne) SetNillableDeletedAt(v *time.Time) *InvestigationUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *InvestigationUpdateOne) ClearDeletedAt() *InvestigationUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecutionLog entity by IDs.
func (_u *InvestigationUpdateOne) AddToolExecutionIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddToolExecutionIDs(ids...)
	return _u
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecutionLog entity.
func (_u *InvestigationUpdateOne) AddToolExecutions(v ...*ToolExecutionLog) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddToolExecutionIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_u *InvestigationUpdateOne) AddInsightIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddInsightIDs(ids...)
	return _u
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_u *InvestigationUpdateOne) AddInsights(v ...*Insight) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInsightIDs(ids...)
}

// AddRuleDraftIDs adds the "rule_drafts" edge to the RuleDraft entity by IDs.
func (_u *InvestigationUpdateOne) AddRuleDraftIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.AddRuleDraftIDs(ids...)
	return _u
}

// AddRuleDrafts adds the "rule_drafts" edges to the RuleDraft entity.
func (_u *InvestigationUpdateOne) AddRuleDrafts(v ...*RuleDraft) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddRuleDraftIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_u *InvestigationUpdateOne) Mutation() *InvestigationMutation {
	return _u.mutation
}

// ClearToolExecutions clears all "tool_executions" edges to the ToolExecutionLog entity.
func (_u *InvestigationUpdateOne) ClearToolExecutions() *InvestigationUpdateOne {
	_u.mutation.ClearToolExecutions()
	return _u
}

// RemoveToolExecutionIDs removes the "tool_executions" edge to ToolExecutionLog entities by IDs.
func (_u *InvestigationUpdateOne) RemoveToolExecutionIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveToolExecutionIDs(ids...)
	return _u
}

// RemoveToolExecutions removes "tool_executions" edges to ToolExecutionLog entities.
func (_u *InvestigationUpdateOne) RemoveToolExecutions(v ...*ToolExecutionLog) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveToolExecutionIDs(ids...)
}

// ClearInsights clears all "insights" edges to the Insight entity.
func (_u *InvestigationUpdateOne) ClearInsights() *InvestigationUpdateOne {
	_u.mutation.ClearInsights()
	return _u
}

// RemoveInsightIDs removes the "insights" edge to Insight entities by IDs.
func (_u *InvestigationUpdateOne) RemoveInsightIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveInsightIDs(ids...)
	return _u
}

// RemoveInsights removes "insights" edges to Insight entities.
func (_u *InvestigationUpdateOne) RemoveInsights(v ...*Insight) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInsightIDs(ids...)
}

// ClearRuleDrafts clears all "rule_drafts" edges to the RuleDraft entity.
func (_u *InvestigationUpdateOne) ClearRuleDrafts() *InvestigationUpdateOne {
	_u.mutation.ClearRuleDrafts()
	return _u
}

// RemoveRuleDraftIDs removes the "rule_drafts" edge to RuleDraft entities by IDs.
func (_u *InvestigationUpdateOne) RemoveRuleDraftIDs(ids ...string) *InvestigationUpdateOne {
	_u.mutation.RemoveRuleDraftIDs(ids...)
	return _u
}

// RemoveRuleDrafts removes "rule_drafts" edges to RuleDraft entities.
func (_u *InvestigationUpdateOne) RemoveRuleDrafts(v ...*RuleDraft) *InvestigationUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveRuleDraftIDs(ids...)
}

// Where appends a list predicates to the InvestigationUpdate builder.
func (_u *InvestigationUpdateOne) Where(ps ...predicate.Investigation) *InvestigationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvestigationUpdateOne) Select(field string, fields ...string) *InvestigationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Investigation entity.
func (_u *InvestigationUpdateOne) Save(ctx context.Context) (*Investigation, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvestigationUpdateOne) SaveX(ctx context.Context) *Investigation {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvestigationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvestigationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvestigationUpdateOne) check() error {
	if v, ok := _u.mutation.Mode(); ok {
		if err := investigation.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Investigation.mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Severity(); ok {
		if err := investigation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Investigation.severity": %w`, err)}
		}
	}
	return nil
}

func (_u *InvestigationUpdateOne) sqlSave(ctx context.Context) (_node *Investigation, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Investigation.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigation.FieldID)
		for _, f := range fields {
			if !investigation.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != investigation.FieldID {
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
	if value, ok := _u.mutation.Mode(); ok {
		_spec.SetField(investigation.FieldMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Severity(); ok {
		_spec.SetField(investigation.FieldSeverity, field.TypeEnum, value)
	}
	if _u.mutation.SeverityCleared() {
		_spec.ClearField(investigation.FieldSeverity, field.TypeEnum)
	}
	if value, ok := _u.mutation.FinalConfidence(); ok {
		_spec.SetField(investigation.FieldFinalConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedFinalConfidence(); ok {
		_spec.AddField(investigation.FieldFinalConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.FinalConfidenceCleared() {
		_spec.ClearField(investigation.FieldFinalConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.StepCount(); ok {
		_spec.SetField(investigation.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedStepCount(); ok {
		_spec.AddField(investigation.FieldStepCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MaxSteps(); ok {
		_spec.SetField(investigation.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxSteps(); ok {
		_spec.AddField(investigation.FieldMaxSteps, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlannerModel(); ok {
		_spec.SetField(investigation.FieldPlannerModel, field.TypeString, value)
	}
	if _u.mutation.PlannerModelCleared() {
		_spec.ClearField(investigation.FieldPlannerModel, field.TypeString)
	}
	if value, ok := _u.mutation.CaseID(); ok {
		_spec.SetField(investigation.FieldCaseID, field.TypeString, value)
	}
	if _u.mutation.CaseIDCleared() {
		_spec.ClearField(investigation.FieldCaseID, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(investigation.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(investigation.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(investigation.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(investigation.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ToolExecutionsTable,
			Columns: []string{investigation.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedToolExecutionsIDs(); len(nodes) > 0 && !_u.mutation.ToolExecutionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ToolExecutionsTable,
			Columns: []string{investigation.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.ToolExecutionsTable,
			Columns: []string{investigation.ToolExecutionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InsightsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.InsightsTable,
			Columns: []string{investigation.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInsightsIDs(); len(nodes) > 0 && !_u.mutation.InsightsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.InsightsTable,
			Columns: []string{investigation.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InsightsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.InsightsTable,
			Columns: []string{investigation.InsightsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleDraftsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RuleDraftsTable,
			Columns: []string{investigation.RuleDraftsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedRuleDraftsIDs(); len(nodes) > 0 && !_u.mutation.RuleDraftsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RuleDraftsTable,
			Columns: []string{investigation.RuleDraftsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleDraftsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   investigation.RuleDraftsTable,
			Columns: []string{investigation.RuleDraftsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Investigation{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{investigation.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
