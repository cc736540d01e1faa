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
	"github.com/fraudops/opsagent/ent/recommendation"
)

// RecommendationCreate is the builder for creating a Recommendation entity.
type RecommendationCreate struct {
	config
	mutation *RecommendationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInsightID sets the "insight_id" field.
func (_c *RecommendationCreate) SetInsightID(v string) *RecommendationCreate {
	_c.mutation.SetInsightID(v)
	return _c
}

// SetRecType sets the "rec_type" field.
func (_c *RecommendationCreate) SetRecType(v string) *RecommendationCreate {
	_c.mutation.SetRecType(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RecommendationCreate) SetStatus(v recommendation.Status) *RecommendationCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableStatus(v *recommendation.Status) *RecommendationCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetPriority sets the "priority" field.
func (_c *RecommendationCreate) SetPriority(v int) *RecommendationCreate {
	_c.mutation.SetPriority(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *RecommendationCreate) SetTitle(v string) *RecommendationCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetImpact sets the "impact" field.
func (_c *RecommendationCreate) SetImpact(v string) *RecommendationCreate {
	_c.mutation.SetImpact(v)
	return _c
}

// SetNillableImpact sets the "impact" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableImpact(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetImpact(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RecommendationCreate) SetPayload(v map[string]interface{}) *RecommendationCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetComment sets the "comment" field.
func (_c *RecommendationCreate) SetComment(v string) *RecommendationCreate {
	_c.mutation.SetComment(v)
	return _c
}

// SetNillableComment sets the "comment" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableComment(v *string) *RecommendationCreate {
	if v != nil {
		_c.SetComment(*v)
	}
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *RecommendationCreate) SetSeverity(v recommendation.Severity) *RecommendationCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RecommendationCreate) SetCreatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableCreatedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RecommendationCreate) SetUpdatedAt(v time.Time) *RecommendationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RecommendationCreate) SetNillableUpdatedAt(v *time.Time) *RecommendationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RecommendationCreate) SetID(v string) *RecommendationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInsight sets the "insight" edge to the Insight entity.
func (_c *RecommendationCreate) SetInsight(v *Insight) *RecommendationCreate {
	return _c.SetInsightID(v.ID)
}

// Mutation returns the RecommendationMutation object of the builder.
func (_c *RecommendationCreate) Mutation() *RecommendationMutation {
	return _c.mutation
}

// Save creates the Recommendation in the database.
func (_c *RecommendationCreate) Save(ctx context.Context) (*Recommendation, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RecommendationCreate) SaveX(ctx context.Context) *Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RecommendationCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := recommendation.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := recommendation.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := recommendation.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RecommendationCreate) check() error {
	if _, ok := _c.mutation.InsightID(); !ok {
		return &ValidationError{Name: "insight_id", err: errors.New(`ent: missing required field "Recommendation.insight_id"`)}
	}
	if _, ok := _c.mutation.RecType(); !ok {
		return &ValidationError{Name: "rec_type", err: errors.New(`ent: missing required field "Recommendation.rec_type"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Recommendation.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := recommendation.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Recommendation.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Priority(); !ok {
		return &ValidationError{Name: "priority", err: errors.New(`ent: missing required field "Recommendation.priority"`)}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Recommendation.title"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Recommendation.payload"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Recommendation.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := recommendation.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Recommendation.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Recommendation.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Recommendation.updated_at"`)}
	}
	if len(_c.mutation.InsightIDs()) == 0 {
		return &ValidationError{Name: "insight", err: errors.New(`ent: missing required edge "Recommendation.insight"`)}
	}
	return nil
}

func (_c *RecommendationCreate) sqlSave(ctx context.Context) (*Recommendation, error) {
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
			return nil, fmt.Errorf("unexpected Recommendation.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RecommendationCreate) createSpec() (*Recommendation, *sqlgraph.CreateSpec) {
	var (
		_node = &Recommendation{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(recommendation.Table, sqlgraph.NewFieldSpec(recommendation.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RecType(); ok {
		_spec.SetField(recommendation.FieldRecType, field.TypeString, value)
		_node.RecType = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(recommendation.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Priority(); ok {
		_spec.SetField(recommendation.FieldPriority, field.TypeInt, value)
		_node.Priority = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(recommendation.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Impact(); ok {
		_spec.SetField(recommendation.FieldImpact, field.TypeString, value)
		_node.Impact = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(recommendation.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.Comment(); ok {
		_spec.SetField(recommendation.FieldComment, field.TypeString, value)
		_node.Comment = &value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(recommendation.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(recommendation.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(recommendation.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InsightIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   recommendation.InsightTable,
			Columns: []string{recommendation.InsightColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InsightID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recommendation.Create().
//		SetInsightID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendationUpsert) {
//			SetInsightID(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendationCreate) OnConflict(opts ...sql.ConflictOption) *RecommendationUpsertOne {
	_c.conflict = opts
	return &RecommendationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendationCreate) OnConflictColumns(columns ...string) *RecommendationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendationUpsertOne{
		create: _c,
	}
}

type (
	// RecommendationUpsertOne is the builder for "upsert"-ing
	//  one Recommendation node.
	RecommendationUpsertOne struct {
		create *RecommendationCreate
	}

	// RecommendationUpsert is the "OnConflict" setter.
	RecommendationUpsert struct {
		*sql.UpdateSet
	}
)

// SetRecType sets the "rec_type" field.
func (u *RecommendationUpsert) SetRecType(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldRecType, v)
	return u
}

// UpdateRecType sets the "rec_type" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateRecType() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldRecType)
	return u
}

// SetStatus sets the "status" field.
func (u *RecommendationUpsert) SetStatus(v recommendation.Status) *RecommendationUpsert {
	u.Set(recommendation.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateStatus() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldStatus)
	return u
}

// SetPriority sets the "priority" field.
func (u *RecommendationUpsert) SetPriority(v int) *RecommendationUpsert {
	u.Set(recommendation.FieldPriority, v)
	return u
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdatePriority() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldPriority)
	return u
}

// AddPriority adds v to the "priority" field.
func (u *RecommendationUpsert) AddPriority(v int) *RecommendationUpsert {
	u.Add(recommendation.FieldPriority, v)
	return u
}

// SetTitle sets the "title" field.
func (u *RecommendationUpsert) SetTitle(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldTitle, v)
	return u
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateTitle() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldTitle)
	return u
}

// SetImpact sets the "impact" field.
func (u *RecommendationUpsert) SetImpact(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldImpact, v)
	return u
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateImpact() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldImpact)
	return u
}

// ClearImpact clears the value of the "impact" field.
func (u *RecommendationUpsert) ClearImpact() *RecommendationUpsert {
	u.SetNull(recommendation.FieldImpact)
	return u
}

// SetPayload sets the "payload" field.
func (u *RecommendationUpsert) SetPayload(v map[string]interface{}) *RecommendationUpsert {
	u.Set(recommendation.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdatePayload() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldPayload)
	return u
}

// SetComment sets the "comment" field.
func (u *RecommendationUpsert) SetComment(v string) *RecommendationUpsert {
	u.Set(recommendation.FieldComment, v)
	return u
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateComment() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldComment)
	return u
}

// ClearComment clears the value of the "comment" field.
func (u *RecommendationUpsert) ClearComment() *RecommendationUpsert {
	u.SetNull(recommendation.FieldComment)
	return u
}

// SetSeverity sets the "severity" field.
func (u *RecommendationUpsert) SetSeverity(v recommendation.Severity) *RecommendationUpsert {
	u.Set(recommendation.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateSeverity() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldSeverity)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecommendationUpsert) SetUpdatedAt(v time.Time) *RecommendationUpsert {
	u.Set(recommendation.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecommendationUpsert) UpdateUpdatedAt() *RecommendationUpsert {
	u.SetExcluded(recommendation.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recommendation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecommendationUpsertOne) UpdateNewValues() *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(recommendation.FieldID)
		}
		if _, exists := u.create.mutation.InsightID(); exists {
			s.SetIgnore(recommendation.FieldInsightID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(recommendation.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecommendationUpsertOne) Ignore() *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendationUpsertOne) DoNothing() *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendationCreate.OnConflict
// documentation for more info.
func (u *RecommendationUpsertOne) Update(set func(*RecommendationUpsert)) *RecommendationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendationUpsert{UpdateSet: update})
	}))
	return u
}

// SetRecType sets the "rec_type" field.
func (u *RecommendationUpsertOne) SetRecType(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetRecType(v)
	})
}

// UpdateRecType sets the "rec_type" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateRecType() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateRecType()
	})
}

// SetStatus sets the "status" field.
func (u *RecommendationUpsertOne) SetStatus(v recommendation.Status) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateStatus() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *RecommendationUpsertOne) SetPriority(v int) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *RecommendationUpsertOne) AddPriority(v int) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdatePriority() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePriority()
	})
}

// SetTitle sets the "title" field.
func (u *RecommendationUpsertOne) SetTitle(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateTitle() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateTitle()
	})
}

// SetImpact sets the "impact" field.
func (u *RecommendationUpsertOne) SetImpact(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateImpact() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateImpact()
	})
}

// ClearImpact clears the value of the "impact" field.
func (u *RecommendationUpsertOne) ClearImpact() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearImpact()
	})
}

// SetPayload sets the "payload" field.
func (u *RecommendationUpsertOne) SetPayload(v map[string]interface{}) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdatePayload() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePayload()
	})
}

// SetComment sets the "comment" field.
func (u *RecommendationUpsertOne) SetComment(v string) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateComment() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *RecommendationUpsertOne) ClearComment() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearComment()
	})
}

// SetSeverity sets the "severity" field.
func (u *RecommendationUpsertOne) SetSeverity(v recommendation.Severity) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateSeverity() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateSeverity()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecommendationUpsertOne) SetUpdatedAt(v time.Time) *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecommendationUpsertOne) UpdateUpdatedAt() *RecommendationUpsertOne {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RecommendationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecommendationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecommendationUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RecommendationUpsertOne.ID is not supported by MySQL driver. Use RecommendationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecommendationUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecommendationCreateBulk is the builder for creating many Recommendation entities in bulk.
type RecommendationCreateBulk struct {
	config
	err      error
	builders []*RecommendationCreate
	conflict []sql.ConflictOption
}

// Save creates the Recommendation entities in the database.
func (_c *RecommendationCreateBulk) Save(ctx context.Context) ([]*Recommendation, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Recommendation, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecommendationMutation)
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
func (_c *RecommendationCreateBulk) SaveX(ctx context.Context) []*Recommendation {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RecommendationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RecommendationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Recommendation.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecommendationUpsert) {
//			SetInsightID(v+v).
//		}).
//		Exec(ctx)
func (_c *RecommendationCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecommendationUpsertBulk {
	_c.conflict = opts
	return &RecommendationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RecommendationCreateBulk) OnConflictColumns(columns ...string) *RecommendationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RecommendationUpsertBulk{
		create: _c,
	}
}

// RecommendationUpsertBulk is the builder for "upsert"-ing
// a bulk of Recommendation nodes.
type RecommendationUpsertBulk struct {
	create *RecommendationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recommendation.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecommendationUpsertBulk) UpdateNewValues() *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(recommendation.FieldID)
			}
			if _, exists := b.mutation.InsightID(); exists {
				s.SetIgnore(recommendation.FieldInsightID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(recommendation.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Recommendation.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecommendationUpsertBulk) Ignore() *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecommendationUpsertBulk) DoNothing() *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecommendationCreateBulk.OnConflict
// documentation for more info.
func (u *RecommendationUpsertBulk) Update(set func(*RecommendationUpsert)) *RecommendationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecommendationUpsert{UpdateSet: update})
	}))
	return u
}

// SetRecType sets the "rec_type" field.
func (u *RecommendationUpsertBulk) SetRecType(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetRecType(v)
	})
}

// UpdateRecType sets the "rec_type" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateRecType() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateRecType()
	})
}

// SetStatus sets the "status" field.
func (u *RecommendationUpsertBulk) SetStatus(v recommendation.Status) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateStatus() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateStatus()
	})
}

// SetPriority sets the "priority" field.
func (u *RecommendationUpsertBulk) SetPriority(v int) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPriority(v)
	})
}

// AddPriority adds v to the "priority" field.
func (u *RecommendationUpsertBulk) AddPriority(v int) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.AddPriority(v)
	})
}

// UpdatePriority sets the "priority" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdatePriority() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePriority()
	})
}

// SetTitle sets the "title" field.
func (u *RecommendationUpsertBulk) SetTitle(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetTitle(v)
	})
}

// UpdateTitle sets the "title" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateTitle() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateTitle()
	})
}

// SetImpact sets the "impact" field.
func (u *RecommendationUpsertBulk) SetImpact(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetImpact(v)
	})
}

// UpdateImpact sets the "impact" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateImpact() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateImpact()
	})
}

// ClearImpact clears the value of the "impact" field.
func (u *RecommendationUpsertBulk) ClearImpact() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearImpact()
	})
}

// SetPayload sets the "payload" field.
func (u *RecommendationUpsertBulk) SetPayload(v map[string]interface{}) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdatePayload() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdatePayload()
	})
}

// SetComment sets the "comment" field.
func (u *RecommendationUpsertBulk) SetComment(v string) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetComment(v)
	})
}

// UpdateComment sets the "comment" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateComment() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateComment()
	})
}

// ClearComment clears the value of the "comment" field.
func (u *RecommendationUpsertBulk) ClearComment() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.ClearComment()
	})
}

// SetSeverity sets the "severity" field.
func (u *RecommendationUpsertBulk) SetSeverity(v recommendation.Severity) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateSeverity() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateSeverity()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RecommendationUpsertBulk) SetUpdatedAt(v time.Time) *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RecommendationUpsertBulk) UpdateUpdatedAt() *RecommendationUpsertBulk {
	return u.Update(func(s *RecommendationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RecommendationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RecommendationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecommendationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecommendationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
