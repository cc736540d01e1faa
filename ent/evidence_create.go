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
)

// EvidenceCreate is the builder for creating a Evidence entity.
type EvidenceCreate struct {
	config
	mutation *EvidenceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInsightID sets the "insight_id" field.
func (_c *EvidenceCreate) SetInsightID(v string) *EvidenceCreate {
	_c.mutation.SetInsightID(v)
	return _c
}

// SetCategory sets the "category" field.
func (_c *EvidenceCreate) SetCategory(v string) *EvidenceCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetSourceTool sets the "source_tool" field.
func (_c *EvidenceCreate) SetSourceTool(v string) *EvidenceCreate {
	_c.mutation.SetSourceTool(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *EvidenceCreate) SetPayload(v map[string]interface{}) *EvidenceCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *EvidenceCreate) SetCreatedAt(v time.Time) *EvidenceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *EvidenceCreate) SetNillableCreatedAt(v *time.Time) *EvidenceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *EvidenceCreate) SetID(v string) *EvidenceCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInsight sets the "insight" edge to the Insight entity.
func (_c *EvidenceCreate) SetInsight(v *Insight) *EvidenceCreate {
	return _c.SetInsightID(v.ID)
}

// Mutation returns the EvidenceMutation object of the builder.
func (_c *EvidenceCreate) Mutation() *EvidenceMutation {
	return _c.mutation
}

// Save creates the Evidence in the database.
func (_c *EvidenceCreate) Save(ctx context.Context) (*Evidence, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *EvidenceCreate) SaveX(ctx context.Context) *Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *EvidenceCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := evidence.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *EvidenceCreate) check() error {
	if _, ok := _c.mutation.InsightID(); !ok {
		return &ValidationError{Name: "insight_id", err: errors.New(`ent: missing required field "Evidence.insight_id"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Evidence.category"`)}
	}
	if _, ok := _c.mutation.SourceTool(); !ok {
		return &ValidationError{Name: "source_tool", err: errors.New(`ent: missing required field "Evidence.source_tool"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "Evidence.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Evidence.created_at"`)}
	}
	if len(_c.mutation.InsightIDs()) == 0 {
		return &ValidationError{Name: "insight", err: errors.New(`ent: missing required edge "Evidence.insight"`)}
	}
	return nil
}

func (_c *EvidenceCreate) sqlSave(ctx context.Context) (*Evidence, error) {
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
			return nil, fmt.Errorf("unexpected Evidence.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *EvidenceCreate) createSpec() (*Evidence, *sqlgraph.CreateSpec) {
	var (
		_node = &Evidence{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(evidence.Table, sqlgraph.NewFieldSpec(evidence.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(evidence.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.SourceTool(); ok {
		_spec.SetField(evidence.FieldSourceTool, field.TypeString, value)
		_node.SourceTool = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(evidence.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(evidence.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InsightIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   evidence.InsightTable,
			Columns: []string{evidence.InsightColumn},
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
//	client.Evidence.Create().
//		SetInsightID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetInsightID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertOne {
	_c.conflict = opts
	return &EvidenceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreate) OnConflictColumns(columns ...string) *EvidenceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertOne{
		create: _c,
	}
}

type (
	// EvidenceUpsertOne is the builder for "upsert"-ing
	//  one Evidence node.
	EvidenceUpsertOne struct {
		create *EvidenceCreate
	}

	// EvidenceUpsert is the "OnConflict" setter.
	EvidenceUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertOne) UpdateNewValues() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(evidence.FieldID)
		}
		if _, exists := u.create.mutation.InsightID(); exists {
			s.SetIgnore(evidence.FieldInsightID)
		}
		if _, exists := u.create.mutation.Category(); exists {
			s.SetIgnore(evidence.FieldCategory)
		}
		if _, exists := u.create.mutation.SourceTool(); exists {
			s.SetIgnore(evidence.FieldSourceTool)
		}
		if _, exists := u.create.mutation.Payload(); exists {
			s.SetIgnore(evidence.FieldPayload)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(evidence.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *EvidenceUpsertOne) Ignore() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertOne) DoNothing() *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreate.OnConflict
// documentation for more info.
func (u *EvidenceUpsertOne) Update(set func(*EvidenceUpsert)) *EvidenceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EvidenceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *EvidenceUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: EvidenceUpsertOne.ID is not supported by MySQL driver. Use EvidenceUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *EvidenceUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// EvidenceCreateBulk is the builder for creating many Evidence entities in bulk.
type EvidenceCreateBulk struct {
	config
	err      error
	builders []*EvidenceCreate
	conflict []sql.ConflictOption
}

// Save creates the Evidence entities in the database.
func (_c *EvidenceCreateBulk) Save(ctx context.Context) ([]*Evidence, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Evidence, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*EvidenceMutation)
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
func (_c *EvidenceCreateBulk) SaveX(ctx context.Context) []*Evidence {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *EvidenceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *EvidenceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Evidence.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.EvidenceUpsert) {
//			SetInsightID(v+v).
//		}).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflict(opts ...sql.ConflictOption) *EvidenceUpsertBulk {
	_c.conflict = opts
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *EvidenceCreateBulk) OnConflictColumns(columns ...string) *EvidenceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &EvidenceUpsertBulk{
		create: _c,
	}
}

// EvidenceUpsertBulk is the builder for "upsert"-ing
// a bulk of Evidence nodes.
type EvidenceUpsertBulk struct {
	create *EvidenceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(evidence.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) UpdateNewValues() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(evidence.FieldID)
			}
			if _, exists := b.mutation.InsightID(); exists {
				s.SetIgnore(evidence.FieldInsightID)
			}
			if _, exists := b.mutation.Category(); exists {
				s.SetIgnore(evidence.FieldCategory)
			}
			if _, exists := b.mutation.SourceTool(); exists {
				s.SetIgnore(evidence.FieldSourceTool)
			}
			if _, exists := b.mutation.Payload(); exists {
				s.SetIgnore(evidence.FieldPayload)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(evidence.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Evidence.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *EvidenceUpsertBulk) Ignore() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *EvidenceUpsertBulk) DoNothing() *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the EvidenceCreateBulk.OnConflict
// documentation for more info.
func (u *EvidenceUpsertBulk) Update(set func(*EvidenceUpsert)) *EvidenceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&EvidenceUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *EvidenceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the EvidenceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for EvidenceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *EvidenceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
