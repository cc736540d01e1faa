// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// InvestigationCreate is the builder for creating a Investigation entity.
type InvestigationCreate struct {
	config
	mutation *InvestigationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetTransactionID sets the "transaction_id" field.
func (_c *InvestigationCreate) SetTransactionID(v string) *InvestigationCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetMode sets the "mode" field.
func (_c *InvestigationCreate) SetMode(v investigation.Mode) *InvestigationCreate {
	_c.mutation.SetMode(v)
	return _c
}

// SetNillableMode sets the "mode" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableMode(v *investigation.Mode) *InvestigationCreate {
	if v != nil {
		_c.SetMode(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *InvestigationCreate) SetStatus(v investigation.Status) *InvestigationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStatus(v *investigation.Status) *InvestigationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *InvestigationCreate) SetSeverity(v investigation.Severity) *InvestigationCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetNillableSeverity sets the "severity" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableSeverity(v *investigation.Severity) *InvestigationCreate {
	if v != nil {
		_c.SetSeverity(*v)
	}
	return _c
}

// SetFinalConfidence sets the "final_confidence" field.
func (_c *InvestigationCreate) SetFinalConfidence(v float64) *InvestigationCreate {
	_c.mutation.SetFinalConfidence(v)
	return _c
}

// SetNillableFinalConfidence sets the "final_confidence" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableFinalConfidence(v *float64) *InvestigationCreate {
	if v != nil {
		_c.SetFinalConfidence(*v)
	}
	return _c
}

// SetStepCount sets the "step_count" field.
func (_c *InvestigationCreate) SetStepCount(v int) *InvestigationCreate {
	_c.mutation.SetStepCount(v)
	return _c
}

// SetNillableStepCount sets the "step_count" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStepCount(v *int) *InvestigationCreate {
	if v != nil {
		_c.SetStepCount(*v)
	}
	return _c
}

// SetMaxSteps sets the "max_steps" field.
func (_c *InvestigationCreate) SetMaxSteps(v int) *InvestigationCreate {
	_c.mutation.SetMaxSteps(v)
	return _c
}

// SetNillableMaxSteps sets the "max_steps" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableMaxSteps(v *int) *InvestigationCreate {
	if v != nil {
		_c.SetMaxSteps(*v)
	}
	return _c
}

// SetPlannerModel sets the "planner_model" field.
func (_c *InvestigationCreate) SetPlannerModel(v string) *InvestigationCreate {
	_c.mutation.SetPlannerModel(v)
	return _c
}

// SetNillablePlannerModel sets the "planner_model" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillablePlannerModel(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetPlannerModel(*v)
	}
	return _c
}

// SetCaseID sets the "case_id" field.
func (_c *InvestigationCreate) SetCaseID(v string) *InvestigationCreate {
	_c.mutation.SetCaseID(v)
	return _c
}

// SetNillableCaseID sets the "case_id" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCaseID(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetCaseID(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *InvestigationCreate) SetErrorMessage(v string) *InvestigationCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableErrorMessage(v *string) *InvestigationCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InvestigationCreate) SetCreatedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCreatedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *InvestigationCreate) SetStartedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableStartedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *InvestigationCreate) SetCompletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableCompletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *InvestigationCreate) SetDeletedAt(v time.Time) *InvestigationCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *InvestigationCreate) SetNillableDeletedAt(v *time.Time) *InvestigationCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InvestigationCreate) SetID(v string) *InvestigationCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddToolExecutionIDs adds the "tool_executions" edge to the ToolExecutionLog entity by IDs.
func (_c *InvestigationCreate) AddToolExecutionIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddToolExecutionIDs(ids...)
	return _c
}

// AddToolExecutions adds the "tool_executions" edges to the ToolExecutionLog entity.
func (_c *InvestigationCreate) AddToolExecutions(v ...*ToolExecutionLog) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddToolExecutionIDs(ids...)
}

// AddInsightIDs adds the "insights" edge to the Insight entity by IDs.
func (_c *InvestigationCreate) AddInsightIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddInsightIDs(ids...)
	return _c
}

// AddInsights adds the "insights" edges to the Insight entity.
func (_c *InvestigationCreate) AddInsights(v ...*Insight) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInsightIDs(ids...)
}

// AddRuleDraftIDs adds the "rule_drafts" edge to the RuleDraft entity by IDs.
func (_c *InvestigationCreate) AddRuleDraftIDs(ids ...string) *InvestigationCreate {
	_c.mutation.AddRuleDraftIDs(ids...)
	return _c
}

// AddRuleDrafts adds the "rule_drafts" edges to the RuleDraft entity.
func (_c *InvestigationCreate) AddRuleDrafts(v ...*RuleDraft) *InvestigationCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRuleDraftIDs(ids...)
}

// Mutation returns the InvestigationMutation object of the builder.
func (_c *InvestigationCreate) Mutation() *InvestigationMutation {
	return _c.mutation
}

// Save creates the Investigation in the database.
func (_c *InvestigationCreate) Save(ctx context.Context) (*Investigation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InvestigationCreate) SaveX(ctx context.Context) *Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InvestigationCreate) defaults() {
	if _, ok := _c.mutation.Mode(); !ok {
		v := investigation.DefaultMode
		_c.mutation.SetMode(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := investigation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		v := investigation.DefaultStepCount
		_c.mutation.SetStepCount(v)
	}
	if _, ok := _c.mutation.MaxSteps(); !ok {
		v := investigation.DefaultMaxSteps
		_c.mutation.SetMaxSteps(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := investigation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InvestigationCreate) check() error {
	if _, ok := _c.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "Investigation.transaction_id"`)}
	}
	if _, ok := _c.mutation.Mode(); !ok {
		return &ValidationError{Name: "mode", err: errors.New(`ent: missing required field "Investigation.mode"`)}
	}
	if v, ok := _c.mutation.Mode(); ok {
		if err := investigation.ModeValidator(v); err != nil {
			return &ValidationError{Name: "mode", err: fmt.Errorf(`ent: validator failed for field "Investigation.mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Investigation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := investigation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Investigation.status": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := investigation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Investigation.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.StepCount(); !ok {
		return &ValidationError{Name: "step_count", err: errors.New(`ent: missing required field "Investigation.step_count"`)}
	}
	if _, ok := _c.mutation.MaxSteps(); !ok {
		return &ValidationError{Name: "max_steps", err: errors.New(`ent: missing required field "Investigation.max_steps"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Investigation.created_at"`)}
	}
	return nil
}

func (_c *InvestigationCreate) sqlSave(ctx context.Context) (*Investigation, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Investigation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InvestigationCreate) createSpec() (*Investigation, *sqlgraph.CreateSpec) {
	var (
		_node = &Investigation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(investigation.Table, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(investigation.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = value
	}
	if value, ok := _c.mutation.Mode(); ok {
		_spec.SetField(investigation.FieldMode, field.TypeEnum, value)
		_node.Mode = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(investigation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(investigation.FieldSeverity, field.TypeEnum, value)
		_node.Severity = &value
	}
	if value, ok := _c.mutation.FinalConfidence(); ok {
		_spec.SetField(investigation.FieldFinalConfidence, field.TypeFloat64, value)
		_node.FinalConfidence = &value
	}
	if value, ok := _c.mutation.StepCount(); ok {
		_spec.SetField(investigation.FieldStepCount, field.TypeInt, value)
		_node.StepCount = value
	}
	if value, ok := _c.mutation.MaxSteps(); ok {
		_spec.SetField(investigation.FieldMaxSteps, field.TypeInt, value)
		_node.MaxSteps = value
	}
	if value, ok := _c.mutation.PlannerModel(); ok {
		_spec.SetField(investigation.FieldPlannerModel, field.TypeString, value)
		_node.PlannerModel = &value
	}
	if value, ok := _c.mutation.CaseID(); ok {
		_spec.SetField(investigation.FieldCaseID, field.TypeString, value)
		_node.CaseID = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(investigation.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(investigation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(investigation.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(investigation.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(investigation.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.ToolExecutionsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InsightsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RuleDraftsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Investigation.Create().
//		SetTransactionID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvestigationUpsert) {
//			SetTransactionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InvestigationCreate) OnConflict(opts ...sql.ConflictOption) *InvestigationUpsertOne {
	_c.conflict = opts
	return &InvestigationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvestigationCreate) OnConflictColumns(columns ...string) *InvestigationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvestigationUpsertOne{
		create: _c,
	}
}

type (
	// InvestigationUpsertOne is the builder for "upsert"-ing
	//  one Investigation node.
	InvestigationUpsertOne struct {
		create *InvestigationCreate
	}

	// InvestigationUpsert is the "OnConflict" setter.
	InvestigationUpsert struct {
		*sql.UpdateSet
	}
)

// SetMode sets the "mode" field.
func (u *InvestigationUpsert) SetMode(v investigation.Mode) *InvestigationUpsert {
	u.Set(investigation.FieldMode, v)
	return u
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateMode() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldMode)
	return u
}

// SetStatus sets the "status" field.
func (u *InvestigationUpsert) SetStatus(v investigation.Status) *InvestigationUpsert {
	u.Set(investigation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateStatus() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldStatus)
	return u
}

// SetSeverity sets the "severity" field.
func (u *InvestigationUpsert) SetSeverity(v investigation.Severity) *InvestigationUpsert {
	u.Set(investigation.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateSeverity() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldSeverity)
	return u
}

// ClearSeverity clears the value of the "severity" field.
func (u *InvestigationUpsert) ClearSeverity() *InvestigationUpsert {
	u.SetNull(investigation.FieldSeverity)
	return u
}

// SetFinalConfidence sets the "final_confidence" field.
func (u *InvestigationUpsert) SetFinalConfidence(v float64) *InvestigationUpsert {
	u.Set(investigation.FieldFinalConfidence, v)
	return u
}

// UpdateFinalConfidence sets the "final_confidence" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateFinalConfidence() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldFinalConfidence)
	return u
}

// AddFinalConfidence adds v to the "final_confidence" field.
func (u *InvestigationUpsert) AddFinalConfidence(v float64) *InvestigationUpsert {
	u.Add(investigation.FieldFinalConfidence, v)
	return u
}

// ClearFinalConfidence clears the value of the "final_confidence" field.
func (u *InvestigationUpsert) ClearFinalConfidence() *InvestigationUpsert {
	u.SetNull(investigation.FieldFinalConfidence)
	return u
}

// SetStepCount sets the "step_count" field.
func (u *InvestigationUpsert) SetStepCount(v int) *InvestigationUpsert {
	u.Set(investigation.FieldStepCount, v)
	return u
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateStepCount() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldStepCount)
	return u
}

// AddStepCount adds v to the "step_count" field.
func (u *InvestigationUpsert) AddStepCount(v int) *InvestigationUpsert {
	u.Add(investigation.FieldStepCount, v)
	return u
}

// SetMaxSteps sets the "max_steps" field.
func (u *InvestigationUpsert) SetMaxSteps(v int) *InvestigationUpsert {
	u.Set(investigation.FieldMaxSteps, v)
	return u
}

// UpdateMaxSteps sets the "max_steps" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateMaxSteps() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldMaxSteps)
	return u
}

// AddMaxSteps adds v to the "max_steps" field.
func (u *InvestigationUpsert) AddMaxSteps(v int) *InvestigationUpsert {
	u.Add(investigation.FieldMaxSteps, v)
	return u
}

// SetPlannerModel sets the "planner_model" field.
func (u *InvestigationUpsert) SetPlannerModel(v string) *InvestigationUpsert {
	u.Set(investigation.FieldPlannerModel, v)
	return u
}

// UpdatePlannerModel sets the "planner_model" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdatePlannerModel() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldPlannerModel)
	return u
}

// ClearPlannerModel clears the value of the "planner_model" field.
func (u *InvestigationUpsert) ClearPlannerModel() *InvestigationUpsert {
	u.SetNull(investigation.FieldPlannerModel)
	return u
}

// SetCaseID sets the "case_id" field.
func (u *InvestigationUpsert) SetCaseID(v string) *InvestigationUpsert {
	u.Set(investigation.FieldCaseID, v)
	return u
}

// UpdateCaseID sets the "case_id" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateCaseID() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldCaseID)
	return u
}

// ClearCaseID clears the value of the "case_id" field.
func (u *InvestigationUpsert) ClearCaseID() *InvestigationUpsert {
	u.SetNull(investigation.FieldCaseID)
	return u
}

// SetErrorMessage sets the "error_message" field.
func (u *InvestigationUpsert) SetErrorMessage(v string) *InvestigationUpsert {
	u.Set(investigation.FieldErrorMessage, v)
	return u
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateErrorMessage() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldErrorMessage)
	return u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *InvestigationUpsert) ClearErrorMessage() *InvestigationUpsert {
	u.SetNull(investigation.FieldErrorMessage)
	return u
}

// SetStartedAt sets the "started_at" field.
func (u *InvestigationUpsert) SetStartedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldStartedAt, v)
	return u
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateStartedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldStartedAt)
	return u
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InvestigationUpsert) ClearStartedAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldStartedAt)
	return u
}

// SetCompletedAt sets the "completed_at" field.
func (u *InvestigationUpsert) SetCompletedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldCompletedAt, v)
	return u
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateCompletedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldCompletedAt)
	return u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InvestigationUpsert) ClearCompletedAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldCompletedAt)
	return u
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InvestigationUpsert) SetDeletedAt(v time.Time) *InvestigationUpsert {
	u.Set(investigation.FieldDeletedAt, v)
	return u
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InvestigationUpsert) UpdateDeletedAt() *InvestigationUpsert {
	u.SetExcluded(investigation.FieldDeletedAt)
	return u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InvestigationUpsert) ClearDeletedAt() *InvestigationUpsert {
	u.SetNull(investigation.FieldDeletedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(investigation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvestigationUpsertOne) UpdateNewValues() *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(investigation.FieldID)
		}
		if _, exists := u.create.mutation.TransactionID(); exists {
			s.SetIgnore(investigation.FieldTransactionID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(investigation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Investigation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InvestigationUpsertOne) Ignore() *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvestigationUpsertOne) DoNothing() *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvestigationCreate.OnConflict
// documentation for more info.
func (u *InvestigationUpsertOne) Update(set func(*InvestigationUpsert)) *InvestigationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvestigationUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *InvestigationUpsertOne) SetMode(v investigation.Mode) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateMode() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateMode()
	})
}

// SetStatus sets the "status" field.
func (u *InvestigationUpsertOne) SetStatus(v investigation.Status) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateStatus() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStatus()
	})
}

// SetSeverity sets the "severity" field.
func (u *InvestigationUpsertOne) SetSeverity(v investigation.Severity) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateSeverity() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *InvestigationUpsertOne) ClearSeverity() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearSeverity()
	})
}

// SetFinalConfidence sets the "final_confidence" field.
func (u *InvestigationUpsertOne) SetFinalConfidence(v float64) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFinalConfidence(v)
	})
}

// AddFinalConfidence adds v to the "final_confidence" field.
func (u *InvestigationUpsertOne) AddFinalConfidence(v float64) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddFinalConfidence(v)
	})
}

// UpdateFinalConfidence sets the "final_confidence" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateFinalConfidence() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFinalConfidence()
	})
}

// ClearFinalConfidence clears the value of the "final_confidence" field.
func (u *InvestigationUpsertOne) ClearFinalConfidence() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearFinalConfidence()
	})
}

// SetStepCount sets the "step_count" field.
func (u *InvestigationUpsertOne) SetStepCount(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *InvestigationUpsertOne) AddStepCount(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateStepCount() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStepCount()
	})
}

// SetMaxSteps sets the "max_steps" field.
func (u *InvestigationUpsertOne) SetMaxSteps(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetMaxSteps(v)
	})
}

// AddMaxSteps adds v to the "max_steps" field.
func (u *InvestigationUpsertOne) AddMaxSteps(v int) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddMaxSteps(v)
	})
}

// UpdateMaxSteps sets the "max_steps" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateMaxSteps() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateMaxSteps()
	})
}

// SetPlannerModel sets the "planner_model" field.
func (u *InvestigationUpsertOne) SetPlannerModel(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetPlannerModel(v)
	})
}

// UpdatePlannerModel sets the "planner_model" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdatePlannerModel() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdatePlannerModel()
	})
}

// ClearPlannerModel clears the value of the "planner_model" field.
func (u *InvestigationUpsertOne) ClearPlannerModel() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearPlannerModel()
	})
}

// SetCaseID sets the "case_id" field.
func (u *InvestigationUpsertOne) SetCaseID(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCaseID(v)
	})
}

// UpdateCaseID sets the "case_id" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateCaseID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCaseID()
	})
}

// ClearCaseID clears the value of the "case_id" field.
func (u *InvestigationUpsertOne) ClearCaseID() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCaseID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *InvestigationUpsertOne) SetErrorMessage(v string) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateErrorMessage() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *InvestigationUpsertOne) ClearErrorMessage() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InvestigationUpsertOne) SetStartedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateStartedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InvestigationUpsertOne) ClearStartedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InvestigationUpsertOne) SetCompletedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateCompletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InvestigationUpsertOne) ClearCompletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InvestigationUpsertOne) SetDeletedAt(v time.Time) *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InvestigationUpsertOne) UpdateDeletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InvestigationUpsertOne) ClearDeletedAt() *InvestigationUpsertOne {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *InvestigationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvestigationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvestigationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InvestigationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InvestigationUpsertOne.ID is not supported by MySQL driver. Use InvestigationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InvestigationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InvestigationCreateBulk is the builder for creating many Investigation entities in bulk.
type InvestigationCreateBulk struct {
	config
	err      error
	builders []*InvestigationCreate
	conflict []sql.ConflictOption
}

// Save creates the Investigation entities in the database.
func (_c *InvestigationCreateBulk) Save(ctx context.Context) ([]*Investigation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Investigation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InvestigationMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InvestigationCreateBulk) SaveX(ctx context.Context) []*Investigation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InvestigationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InvestigationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Investigation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InvestigationUpsert) {
//			SetTransactionID(v+v).
//		}).
//		Exec(ctx)
func (_c *InvestigationCreateBulk) OnConflict(opts ...sql.ConflictOption) *InvestigationUpsertBulk {
	_c.conflict = opts
	return &InvestigationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InvestigationCreateBulk) OnConflictColumns(columns ...string) *InvestigationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InvestigationUpsertBulk{
		create: _c,
	}
}

// InvestigationUpsertBulk is the builder for "upsert"-ing
// a bulk of Investigation nodes.
type InvestigationUpsertBulk struct {
	create *InvestigationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(investigation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InvestigationUpsertBulk) UpdateNewValues() *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(investigation.FieldID)
			}
			if _, exists := b.mutation.TransactionID(); exists {
				s.SetIgnore(investigation.FieldTransactionID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(investigation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Investigation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InvestigationUpsertBulk) Ignore() *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InvestigationUpsertBulk) DoNothing() *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InvestigationCreateBulk.OnConflict
// documentation for more info.
func (u *InvestigationUpsertBulk) Update(set func(*InvestigationUpsert)) *InvestigationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InvestigationUpsert{UpdateSet: update})
	}))
	return u
}

// SetMode sets the "mode" field.
func (u *InvestigationUpsertBulk) SetMode(v investigation.Mode) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetMode(v)
	})
}

// UpdateMode sets the "mode" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateMode() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateMode()
	})
}

// SetStatus sets the "status" field.
func (u *InvestigationUpsertBulk) SetStatus(v investigation.Status) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateStatus() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStatus()
	})
}

// SetSeverity sets the "severity" field.
func (u *InvestigationUpsertBulk) SetSeverity(v investigation.Severity) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateSeverity() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateSeverity()
	})
}

// ClearSeverity clears the value of the "severity" field.
func (u *InvestigationUpsertBulk) ClearSeverity() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearSeverity()
	})
}

// SetFinalConfidence sets the "final_confidence" field.
func (u *InvestigationUpsertBulk) SetFinalConfidence(v float64) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetFinalConfidence(v)
	})
}

// AddFinalConfidence adds v to the "final_confidence" field.
func (u *InvestigationUpsertBulk) AddFinalConfidence(v float64) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddFinalConfidence(v)
	})
}

// UpdateFinalConfidence sets the "final_confidence" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateFinalConfidence() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateFinalConfidence()
	})
}

// ClearFinalConfidence clears the value of the "final_confidence" field.
func (u *InvestigationUpsertBulk) ClearFinalConfidence() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearFinalConfidence()
	})
}

// SetStepCount sets the "step_count" field.
func (u *InvestigationUpsertBulk) SetStepCount(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStepCount(v)
	})
}

// AddStepCount adds v to the "step_count" field.
func (u *InvestigationUpsertBulk) AddStepCount(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddStepCount(v)
	})
}

// UpdateStepCount sets the "step_count" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateStepCount() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStepCount()
	})
}

// SetMaxSteps sets the "max_steps" field.
func (u *InvestigationUpsertBulk) SetMaxSteps(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetMaxSteps(v)
	})
}

// AddMaxSteps adds v to the "max_steps" field.
func (u *InvestigationUpsertBulk) AddMaxSteps(v int) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.AddMaxSteps(v)
	})
}

// UpdateMaxSteps sets the "max_steps" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateMaxSteps() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateMaxSteps()
	})
}

// SetPlannerModel sets the "planner_model" field.
func (u *InvestigationUpsertBulk) SetPlannerModel(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetPlannerModel(v)
	})
}

// UpdatePlannerModel sets the "planner_model" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdatePlannerModel() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdatePlannerModel()
	})
}

// ClearPlannerModel clears the value of the "planner_model" field.
func (u *InvestigationUpsertBulk) ClearPlannerModel() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearPlannerModel()
	})
}

// SetCaseID sets the "case_id" field.
func (u *InvestigationUpsertBulk) SetCaseID(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCaseID(v)
	})
}

// UpdateCaseID sets the "case_id" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateCaseID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCaseID()
	})
}

// ClearCaseID clears the value of the "case_id" field.
func (u *InvestigationUpsertBulk) ClearCaseID() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCaseID()
	})
}

// SetErrorMessage sets the "error_message" field.
func (u *InvestigationUpsertBulk) SetErrorMessage(v string) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetErrorMessage(v)
	})
}

// UpdateErrorMessage sets the "error_message" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateErrorMessage() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateErrorMessage()
	})
}

// ClearErrorMessage clears the value of the "error_message" field.
func (u *InvestigationUpsertBulk) ClearErrorMessage() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearErrorMessage()
	})
}

// SetStartedAt sets the "started_at" field.
func (u *InvestigationUpsertBulk) SetStartedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetStartedAt(v)
	})
}

// UpdateStartedAt sets the "started_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateStartedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateStartedAt()
	})
}

// ClearStartedAt clears the value of the "started_at" field.
func (u *InvestigationUpsertBulk) ClearStartedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearStartedAt()
	})
}

// SetCompletedAt sets the "completed_at" field.
func (u *InvestigationUpsertBulk) SetCompletedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetCompletedAt(v)
	})
}

// UpdateCompletedAt sets the "completed_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateCompletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateCompletedAt()
	})
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (u *InvestigationUpsertBulk) ClearCompletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearCompletedAt()
	})
}

// SetDeletedAt sets the "deleted_at" field.
func (u *InvestigationUpsertBulk) SetDeletedAt(v time.Time) *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.SetDeletedAt(v)
	})
}

// UpdateDeletedAt sets the "deleted_at" field to the value that was provided on create.
func (u *InvestigationUpsertBulk) UpdateDeletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.UpdateDeletedAt()
	})
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (u *InvestigationUpsertBulk) ClearDeletedAt() *InvestigationUpsertBulk {
	return u.Update(func(s *InvestigationUpsert) {
		s.ClearDeletedAt()
	})
}

// Exec executes the query.
func (u *InvestigationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InvestigationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InvestigationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InvestigationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
