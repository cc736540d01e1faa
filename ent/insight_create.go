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
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/recommendation"
)

// InsightCreate is the builder for creating a Insight entity.
type InsightCreate struct {
	config
	mutation *InsightMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *InsightCreate) SetInvestigationID(v string) *InsightCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetTransactionID sets the "transaction_id" field.
func (_c *InsightCreate) SetTransactionID(v string) *InsightCreate {
	_c.mutation.SetTransactionID(v)
	return _c
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (_c *InsightCreate) SetIdempotencyKey(v string) *InsightCreate {
	_c.mutation.SetIdempotencyKey(v)
	return _c
}

// SetSeverity sets the "severity" field.
func (_c *InsightCreate) SetSeverity(v insight.Severity) *InsightCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *InsightCreate) SetSummary(v string) *InsightCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetEvidenceKind sets the "evidence_kind" field.
func (_c *InsightCreate) SetEvidenceKind(v string) *InsightCreate {
	_c.mutation.SetEvidenceKind(v)
	return _c
}

// SetModelMode sets the "model_mode" field.
func (_c *InsightCreate) SetModelMode(v string) *InsightCreate {
	_c.mutation.SetModelMode(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *InsightCreate) SetCreatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableCreatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InsightCreate) SetUpdatedAt(v time.Time) *InsightCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InsightCreate) SetNillableUpdatedAt(v *time.Time) *InsightCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InsightCreate) SetID(v string) *InsightCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *InsightCreate) SetInvestigation(v *Investigation) *InsightCreate {
	return _c.SetInvestigationID(v.ID)
}

// AddEvidenceIDs adds the "evidence" edge to the Evidence entity by IDs.
func (_c *InsightCreate) AddEvidenceIDs(ids ...string) *InsightCreate {
	_c.mutation.AddEvidenceIDs(ids...)
	return _c
}

// AddEvidence adds the "evidence" edges to the Evidence entity.
func (_c *InsightCreate) AddEvidence(v ...*Evidence) *InsightCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddEvidenceIDs(ids...)
}

// AddRecommendationIDs adds the "recommendations" edge to the Recommendation entity by IDs.
func (_c *InsightCreate) AddRecommendationIDs(ids ...string) *InsightCreate {
	_c.mutation.AddRecommendationIDs(ids...)
	return _c
}

// AddRecommendations adds the "recommendations" edges to the Recommendation entity.
func (_c *InsightCreate) AddRecommendations(v ...*Recommendation) *InsightCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRecommendationIDs(ids...)
}

// Mutation returns the InsightMutation object of the builder.
func (_c *InsightCreate) Mutation() *InsightMutation {
	return _c.mutation
}

// Save creates the Insight in the database.
func (_c *InsightCreate) Save(ctx context.Context) (*Insight, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InsightCreate) SaveX(ctx context.Context) *Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InsightCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := insight.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := insight.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InsightCreate) check() error {
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "Insight.investigation_id"`)}
	}
	if _, ok := _c.mutation.TransactionID(); !ok {
		return &ValidationError{Name: "transaction_id", err: errors.New(`ent: missing required field "Insight.transaction_id"`)}
	}
	if _, ok := _c.mutation.IdempotencyKey(); !ok {
		return &ValidationError{Name: "idempotency_key", err: errors.New(`ent: missing required field "Insight.idempotency_key"`)}
	}
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "Insight.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := insight.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "Insight.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "Insight.summary"`)}
	}
	if _, ok := _c.mutation.EvidenceKind(); !ok {
		return &ValidationError{Name: "evidence_kind", err: errors.New(`ent: missing required field "Insight.evidence_kind"`)}
	}
	if _, ok := _c.mutation.ModelMode(); !ok {
		return &ValidationError{Name: "model_mode", err: errors.New(`ent: missing required field "Insight.model_mode"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Insight.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Insight.updated_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "Insight.investigation"`)}
	}
	return nil
}

func (_c *InsightCreate) sqlSave(ctx context.Context) (*Insight, error) {
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
			return nil, fmt.Errorf("unexpected Insight.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InsightCreate) createSpec() (*Insight, *sqlgraph.CreateSpec) {
	var (
		_node = &Insight{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(insight.Table, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TransactionID(); ok {
		_spec.SetField(insight.FieldTransactionID, field.TypeString, value)
		_node.TransactionID = value
	}
	if value, ok := _c.mutation.IdempotencyKey(); ok {
		_spec.SetField(insight.FieldIdempotencyKey, field.TypeString, value)
		_node.IdempotencyKey = value
	}
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(insight.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(insight.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.EvidenceKind(); ok {
		_spec.SetField(insight.FieldEvidenceKind, field.TypeString, value)
		_node.EvidenceKind = value
	}
	if value, ok := _c.mutation.ModelMode(); ok {
		_spec.SetField(insight.FieldModelMode, field.TypeString, value)
		_node.ModelMode = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(insight.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(insight.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   insight.InvestigationTable,
			Columns: []string{insight.InvestigationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.InvestigationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.EvidenceIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RecommendationsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.Create().
//		SetInvestigationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetInvestigationID(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreate) OnConflict(opts ...sql.ConflictOption) *InsightUpsertOne {
	_c.conflict = opts
	return &InsightUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreate) OnConflictColumns(columns ...string) *InsightUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertOne{
		create: _c,
	}
}

type (
	// InsightUpsertOne is the builder for "upsert"-ing
	//  one Insight node.
	InsightUpsertOne struct {
		create *InsightCreate
	}

	// InsightUpsert is the "OnConflict" setter.
	InsightUpsert struct {
		*sql.UpdateSet
	}
)

// SetTransactionID sets the "transaction_id" field.
func (u *InsightUpsert) SetTransactionID(v string) *InsightUpsert {
	u.Set(insight.FieldTransactionID, v)
	return u
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *InsightUpsert) UpdateTransactionID() *InsightUpsert {
	u.SetExcluded(insight.FieldTransactionID)
	return u
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *InsightUpsert) SetIdempotencyKey(v string) *InsightUpsert {
	u.Set(insight.FieldIdempotencyKey, v)
	return u
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *InsightUpsert) UpdateIdempotencyKey() *InsightUpsert {
	u.SetExcluded(insight.FieldIdempotencyKey)
	return u
}

// SetSeverity sets the "severity" field.
func (u *InsightUpsert) SetSeverity(v insight.Severity) *InsightUpsert {
	u.Set(insight.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InsightUpsert) UpdateSeverity() *InsightUpsert {
	u.SetExcluded(insight.FieldSeverity)
	return u
}

// SetSummary sets the "summary" field.
func (u *InsightUpsert) SetSummary(v string) *InsightUpsert {
	u.Set(insight.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *InsightUpsert) UpdateSummary() *InsightUpsert {
	u.SetExcluded(insight.FieldSummary)
	return u
}

// SetEvidenceKind sets the "evidence_kind" field.
func (u *InsightUpsert) SetEvidenceKind(v string) *InsightUpsert {
	u.Set(insight.FieldEvidenceKind, v)
	return u
}

// UpdateEvidenceKind sets the "evidence_kind" field to the value that was provided on create.
func (u *InsightUpsert) UpdateEvidenceKind() *InsightUpsert {
	u.SetExcluded(insight.FieldEvidenceKind)
	return u
}

// SetModelMode sets the "model_mode" field.
func (u *InsightUpsert) SetModelMode(v string) *InsightUpsert {
	u.Set(insight.FieldModelMode, v)
	return u
}

// UpdateModelMode sets the "model_mode" field to the value that was provided on create.
func (u *InsightUpsert) UpdateModelMode() *InsightUpsert {
	u.SetExcluded(insight.FieldModelMode)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsightUpsert) SetUpdatedAt(v time.Time) *InsightUpsert {
	u.Set(insight.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsightUpsert) UpdateUpdatedAt() *InsightUpsert {
	u.SetExcluded(insight.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertOne) UpdateNewValues() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(insight.FieldID)
		}
		if _, exists := u.create.mutation.InvestigationID(); exists {
			s.SetIgnore(insight.FieldInvestigationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(insight.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InsightUpsertOne) Ignore() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertOne) DoNothing() *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreate.OnConflict
// documentation for more info.
func (u *InsightUpsertOne) Update(set func(*InsightUpsert)) *InsightUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetTransactionID sets the "transaction_id" field.
func (u *InsightUpsertOne) SetTransactionID(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateTransactionID() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateTransactionID()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *InsightUpsertOne) SetIdempotencyKey(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateIdempotencyKey() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetSeverity sets the "severity" field.
func (u *InsightUpsertOne) SetSeverity(v insight.Severity) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateSeverity() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSeverity()
	})
}

// SetSummary sets the "summary" field.
func (u *InsightUpsertOne) SetSummary(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateSummary() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSummary()
	})
}

// SetEvidenceKind sets the "evidence_kind" field.
func (u *InsightUpsertOne) SetEvidenceKind(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetEvidenceKind(v)
	})
}

// UpdateEvidenceKind sets the "evidence_kind" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateEvidenceKind() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEvidenceKind()
	})
}

// SetModelMode sets the "model_mode" field.
func (u *InsightUpsertOne) SetModelMode(v string) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetModelMode(v)
	})
}

// UpdateModelMode sets the "model_mode" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateModelMode() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateModelMode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsightUpsertOne) SetUpdatedAt(v time.Time) *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsightUpsertOne) UpdateUpdatedAt() *InsightUpsertOne {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InsightUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InsightUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: InsightUpsertOne.ID is not supported by MySQL driver. Use InsightUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InsightUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InsightCreateBulk is the builder for creating many Insight entities in bulk.
type InsightCreateBulk struct {
	config
	err      error
	builders []*InsightCreate
	conflict []sql.ConflictOption
}

// Save creates the Insight entities in the database.
func (_c *InsightCreateBulk) Save(ctx context.Context) ([]*Insight, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Insight, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InsightMutation)
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
func (_c *InsightCreateBulk) SaveX(ctx context.Context) []*Insight {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InsightCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InsightCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Insight.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InsightUpsert) {
//			SetInvestigationID(v+v).
//		}).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflict(opts ...sql.ConflictOption) *InsightUpsertBulk {
	_c.conflict = opts
	return &InsightUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InsightCreateBulk) OnConflictColumns(columns ...string) *InsightUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InsightUpsertBulk{
		create: _c,
	}
}

// InsightUpsertBulk is the builder for "upsert"-ing
// a bulk of Insight nodes.
type InsightUpsertBulk struct {
	create *InsightCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(insight.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InsightUpsertBulk) UpdateNewValues() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(insight.FieldID)
			}
			if _, exists := b.mutation.InvestigationID(); exists {
				s.SetIgnore(insight.FieldInvestigationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(insight.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Insight.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InsightUpsertBulk) Ignore() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InsightUpsertBulk) DoNothing() *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InsightCreateBulk.OnConflict
// documentation for more info.
func (u *InsightUpsertBulk) Update(set func(*InsightUpsert)) *InsightUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InsightUpsert{UpdateSet: update})
	}))
	return u
}

// SetTransactionID sets the "transaction_id" field.
func (u *InsightUpsertBulk) SetTransactionID(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetTransactionID(v)
	})
}

// UpdateTransactionID sets the "transaction_id" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateTransactionID() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateTransactionID()
	})
}

// SetIdempotencyKey sets the "idempotency_key" field.
func (u *InsightUpsertBulk) SetIdempotencyKey(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetIdempotencyKey(v)
	})
}

// UpdateIdempotencyKey sets the "idempotency_key" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateIdempotencyKey() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateIdempotencyKey()
	})
}

// SetSeverity sets the "severity" field.
func (u *InsightUpsertBulk) SetSeverity(v insight.Severity) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateSeverity() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSeverity()
	})
}

// SetSummary sets the "summary" field.
func (u *InsightUpsertBulk) SetSummary(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateSummary() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateSummary()
	})
}

// SetEvidenceKind sets the "evidence_kind" field.
func (u *InsightUpsertBulk) SetEvidenceKind(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetEvidenceKind(v)
	})
}

// UpdateEvidenceKind sets the "evidence_kind" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateEvidenceKind() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateEvidenceKind()
	})
}

// SetModelMode sets the "model_mode" field.
func (u *InsightUpsertBulk) SetModelMode(v string) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetModelMode(v)
	})
}

// UpdateModelMode sets the "model_mode" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateModelMode() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateModelMode()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InsightUpsertBulk) SetUpdatedAt(v time.Time) *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InsightUpsertBulk) UpdateUpdatedAt() *InsightUpsertBulk {
	return u.Update(func(s *InsightUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *InsightUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the InsightCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for InsightCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InsightUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
