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
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/ruledraft"
)

// RuleDraftCreate is the builder for creating a RuleDraft entity.
type RuleDraftCreate struct {
	config
	mutation *RuleDraftMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *RuleDraftCreate) SetInvestigationID(v string) *RuleDraftCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *RuleDraftCreate) SetStatus(v ruledraft.Status) *RuleDraftCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *RuleDraftCreate) SetNillableStatus(v *ruledraft.Status) *RuleDraftCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRuleName sets the "rule_name" field.
func (_c *RuleDraftCreate) SetRuleName(v string) *RuleDraftCreate {
	_c.mutation.SetRuleName(v)
	return _c
}

// SetRuleDescription sets the "rule_description" field.
func (_c *RuleDraftCreate) SetRuleDescription(v string) *RuleDraftCreate {
	_c.mutation.SetRuleDescription(v)
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RuleDraftCreate) SetPayload(v map[string]interface{}) *RuleDraftCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RuleDraftCreate) SetCreatedAt(v time.Time) *RuleDraftCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RuleDraftCreate) SetNillableCreatedAt(v *time.Time) *RuleDraftCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *RuleDraftCreate) SetUpdatedAt(v time.Time) *RuleDraftCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *RuleDraftCreate) SetNillableUpdatedAt(v *time.Time) *RuleDraftCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RuleDraftCreate) SetID(v string) *RuleDraftCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *RuleDraftCreate) SetInvestigation(v *Investigation) *RuleDraftCreate {
	return _c.SetInvestigationID(v.ID)
}

// Mutation returns the RuleDraftMutation object of the builder.
func (_c *RuleDraftCreate) Mutation() *RuleDraftMutation {
	return _c.mutation
}

// Save creates the RuleDraft in the database.
func (_c *RuleDraftCreate) Save(ctx context.Context) (*RuleDraft, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RuleDraftCreate) SaveX(ctx context.Context) *RuleDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleDraftCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleDraftCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RuleDraftCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := ruledraft.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := ruledraft.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := ruledraft.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RuleDraftCreate) check() error {
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "RuleDraft.investigation_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "RuleDraft.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := ruledraft.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "RuleDraft.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RuleName(); !ok {
		return &ValidationError{Name: "rule_name", err: errors.New(`ent: missing required field "RuleDraft.rule_name"`)}
	}
	if _, ok := _c.mutation.RuleDescription(); !ok {
		return &ValidationError{Name: "rule_description", err: errors.New(`ent: missing required field "RuleDraft.rule_description"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "RuleDraft.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RuleDraft.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "RuleDraft.updated_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "RuleDraft.investigation"`)}
	}
	return nil
}

func (_c *RuleDraftCreate) sqlSave(ctx context.Context) (*RuleDraft, error) {
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
			return nil, fmt.Errorf("unexpected RuleDraft.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RuleDraftCreate) createSpec() (*RuleDraft, *sqlgraph.CreateSpec) {
	var (
		_node = &RuleDraft{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(ruledraft.Table, sqlgraph.NewFieldSpec(ruledraft.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(ruledraft.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RuleName(); ok {
		_spec.SetField(ruledraft.FieldRuleName, field.TypeString, value)
		_node.RuleName = value
	}
	if value, ok := _c.mutation.RuleDescription(); ok {
		_spec.SetField(ruledraft.FieldRuleDescription, field.TypeString, value)
		_node.RuleDescription = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(ruledraft.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(ruledraft.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(ruledraft.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   ruledraft.InvestigationTable,
			Columns: []string{ruledraft.InvestigationColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuleDraft.Create().
//		SetInvestigationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleDraftUpsert) {
//			SetInvestigationID(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleDraftCreate) OnConflict(opts ...sql.ConflictOption) *RuleDraftUpsertOne {
	_c.conflict = opts
	return &RuleDraftUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuleDraft.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleDraftCreate) OnConflictColumns(columns ...string) *RuleDraftUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleDraftUpsertOne{
		create: _c,
	}
}

type (
	// RuleDraftUpsertOne is the builder for "upsert"-ing
	//  one RuleDraft node.
	RuleDraftUpsertOne struct {
		create *RuleDraftCreate
	}

	// RuleDraftUpsert is the "OnConflict" setter.
	RuleDraftUpsert struct {
		*sql.UpdateSet
	}
)

// SetStatus sets the "status" field.
func (u *RuleDraftUpsert) SetStatus(v ruledraft.Status) *RuleDraftUpsert {
	u.Set(ruledraft.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RuleDraftUpsert) UpdateStatus() *RuleDraftUpsert {
	u.SetExcluded(ruledraft.FieldStatus)
	return u
}

// SetRuleName sets the "rule_name" field.
func (u *RuleDraftUpsert) SetRuleName(v string) *RuleDraftUpsert {
	u.Set(ruledraft.FieldRuleName, v)
	return u
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *RuleDraftUpsert) UpdateRuleName() *RuleDraftUpsert {
	u.SetExcluded(ruledraft.FieldRuleName)
	return u
}

// SetRuleDescription sets the "rule_description" field.
func (u *RuleDraftUpsert) SetRuleDescription(v string) *RuleDraftUpsert {
	u.Set(ruledraft.FieldRuleDescription, v)
	return u
}

// UpdateRuleDescription sets the "rule_description" field to the value that was provided on create.
func (u *RuleDraftUpsert) UpdateRuleDescription() *RuleDraftUpsert {
	u.SetExcluded(ruledraft.FieldRuleDescription)
	return u
}

// SetPayload sets the "payload" field.
func (u *RuleDraftUpsert) SetPayload(v map[string]interface{}) *RuleDraftUpsert {
	u.Set(ruledraft.FieldPayload, v)
	return u
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RuleDraftUpsert) UpdatePayload() *RuleDraftUpsert {
	u.SetExcluded(ruledraft.FieldPayload)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuleDraftUpsert) SetUpdatedAt(v time.Time) *RuleDraftUpsert {
	u.Set(ruledraft.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuleDraftUpsert) UpdateUpdatedAt() *RuleDraftUpsert {
	u.SetExcluded(ruledraft.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RuleDraft.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ruledraft.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleDraftUpsertOne) UpdateNewValues() *RuleDraftUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(ruledraft.FieldID)
		}
		if _, exists := u.create.mutation.InvestigationID(); exists {
			s.SetIgnore(ruledraft.FieldInvestigationID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(ruledraft.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuleDraft.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RuleDraftUpsertOne) Ignore() *RuleDraftUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleDraftUpsertOne) DoNothing() *RuleDraftUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleDraftCreate.OnConflict
// documentation for more info.
func (u *RuleDraftUpsertOne) Update(set func(*RuleDraftUpsert)) *RuleDraftUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleDraftUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RuleDraftUpsertOne) SetStatus(v ruledraft.Status) *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RuleDraftUpsertOne) UpdateStatus() *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateStatus()
	})
}

// SetRuleName sets the "rule_name" field.
func (u *RuleDraftUpsertOne) SetRuleName(v string) *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetRuleName(v)
	})
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *RuleDraftUpsertOne) UpdateRuleName() *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateRuleName()
	})
}

// SetRuleDescription sets the "rule_description" field.
func (u *RuleDraftUpsertOne) SetRuleDescription(v string) *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetRuleDescription(v)
	})
}

// UpdateRuleDescription sets the "rule_description" field to the value that was provided on create.
func (u *RuleDraftUpsertOne) UpdateRuleDescription() *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateRuleDescription()
	})
}

// SetPayload sets the "payload" field.
func (u *RuleDraftUpsertOne) SetPayload(v map[string]interface{}) *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RuleDraftUpsertOne) UpdatePayload() *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuleDraftUpsertOne) SetUpdatedAt(v time.Time) *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuleDraftUpsertOne) UpdateUpdatedAt() *RuleDraftUpsertOne {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RuleDraftUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleDraftCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleDraftUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RuleDraftUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RuleDraftUpsertOne.ID is not supported by MySQL driver. Use RuleDraftUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RuleDraftUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RuleDraftCreateBulk is the builder for creating many RuleDraft entities in bulk.
type RuleDraftCreateBulk struct {
	config
	err      error
	builders []*RuleDraftCreate
	conflict []sql.ConflictOption
}

// Save creates the RuleDraft entities in the database.
func (_c *RuleDraftCreateBulk) Save(ctx context.Context) ([]*RuleDraft, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RuleDraft, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RuleDraftMutation)
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
func (_c *RuleDraftCreateBulk) SaveX(ctx context.Context) []*RuleDraft {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RuleDraftCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RuleDraftCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RuleDraft.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RuleDraftUpsert) {
//			SetInvestigationID(v+v).
//		}).
//		Exec(ctx)
func (_c *RuleDraftCreateBulk) OnConflict(opts ...sql.ConflictOption) *RuleDraftUpsertBulk {
	_c.conflict = opts
	return &RuleDraftUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RuleDraft.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RuleDraftCreateBulk) OnConflictColumns(columns ...string) *RuleDraftUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RuleDraftUpsertBulk{
		create: _c,
	}
}

// RuleDraftUpsertBulk is the builder for "upsert"-ing
// a bulk of RuleDraft nodes.
type RuleDraftUpsertBulk struct {
	create *RuleDraftCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RuleDraft.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(ruledraft.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RuleDraftUpsertBulk) UpdateNewValues() *RuleDraftUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(ruledraft.FieldID)
			}
			if _, exists := b.mutation.InvestigationID(); exists {
				s.SetIgnore(ruledraft.FieldInvestigationID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(ruledraft.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RuleDraft.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RuleDraftUpsertBulk) Ignore() *RuleDraftUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RuleDraftUpsertBulk) DoNothing() *RuleDraftUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RuleDraftCreateBulk.OnConflict
// documentation for more info.
func (u *RuleDraftUpsertBulk) Update(set func(*RuleDraftUpsert)) *RuleDraftUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RuleDraftUpsert{UpdateSet: update})
	}))
	return u
}

// SetStatus sets the "status" field.
func (u *RuleDraftUpsertBulk) SetStatus(v ruledraft.Status) *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *RuleDraftUpsertBulk) UpdateStatus() *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateStatus()
	})
}

// SetRuleName sets the "rule_name" field.
func (u *RuleDraftUpsertBulk) SetRuleName(v string) *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetRuleName(v)
	})
}

// UpdateRuleName sets the "rule_name" field to the value that was provided on create.
func (u *RuleDraftUpsertBulk) UpdateRuleName() *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateRuleName()
	})
}

// SetRuleDescription sets the "rule_description" field.
func (u *RuleDraftUpsertBulk) SetRuleDescription(v string) *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetRuleDescription(v)
	})
}

// UpdateRuleDescription sets the "rule_description" field to the value that was provided on create.
func (u *RuleDraftUpsertBulk) UpdateRuleDescription() *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateRuleDescription()
	})
}

// SetPayload sets the "payload" field.
func (u *RuleDraftUpsertBulk) SetPayload(v map[string]interface{}) *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetPayload(v)
	})
}

// UpdatePayload sets the "payload" field to the value that was provided on create.
func (u *RuleDraftUpsertBulk) UpdatePayload() *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdatePayload()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *RuleDraftUpsertBulk) SetUpdatedAt(v time.Time) *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *RuleDraftUpsertBulk) UpdateUpdatedAt() *RuleDraftUpsertBulk {
	return u.Update(func(s *RuleDraftUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *RuleDraftUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RuleDraftCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RuleDraftCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RuleDraftUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
