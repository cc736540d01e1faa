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
	"github.com/fraudops/opsagent/ent/statesnapshot"
)

// StateSnapshotCreate is the builder for creating a StateSnapshot entity.
type StateSnapshotCreate struct {
	config
	mutation *StateSnapshotMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetState sets the "state" field.
func (_c *StateSnapshotCreate) SetState(v map[string]interface{}) *StateSnapshotCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *StateSnapshotCreate) SetVersion(v int) *StateSnapshotCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *StateSnapshotCreate) SetNillableVersion(v *int) *StateSnapshotCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *StateSnapshotCreate) SetCreatedAt(v time.Time) *StateSnapshotCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *StateSnapshotCreate) SetNillableCreatedAt(v *time.Time) *StateSnapshotCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *StateSnapshotCreate) SetUpdatedAt(v time.Time) *StateSnapshotCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *StateSnapshotCreate) SetNillableUpdatedAt(v *time.Time) *StateSnapshotCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *StateSnapshotCreate) SetID(v string) *StateSnapshotCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the StateSnapshotMutation object of the builder.
func (_c *StateSnapshotCreate) Mutation() *StateSnapshotMutation {
	return _c.mutation
}

// Save creates the StateSnapshot in the database.
func (_c *StateSnapshotCreate) Save(ctx context.Context) (*StateSnapshot, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *StateSnapshotCreate) SaveX(ctx context.Context) *StateSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateSnapshotCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateSnapshotCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *StateSnapshotCreate) defaults() {
	if _, ok := _c.mutation.Version(); !ok {
		v := statesnapshot.DefaultVersion
		_c.mutation.SetVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := statesnapshot.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := statesnapshot.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *StateSnapshotCreate) check() error {
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "StateSnapshot.state"`)}
	}
	if _, ok := _c.mutation.Version(); !ok {
		return &ValidationError{Name: "version", err: errors.New(`ent: missing required field "StateSnapshot.version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "StateSnapshot.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "StateSnapshot.updated_at"`)}
	}
	return nil
}

func (_c *StateSnapshotCreate) sqlSave(ctx context.Context) (*StateSnapshot, error) {
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
			return nil, fmt.Errorf("unexpected StateSnapshot.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *StateSnapshotCreate) createSpec() (*StateSnapshot, *sqlgraph.CreateSpec) {
	var (
		_node = &StateSnapshot{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(statesnapshot.Table, sqlgraph.NewFieldSpec(statesnapshot.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(statesnapshot.FieldState, field.TypeJSON, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(statesnapshot.FieldVersion, field.TypeInt, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(statesnapshot.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(statesnapshot.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StateSnapshot.Create().
//		SetState(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StateSnapshotUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *StateSnapshotCreate) OnConflict(opts ...sql.ConflictOption) *StateSnapshotUpsertOne {
	_c.conflict = opts
	return &StateSnapshotUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StateSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StateSnapshotCreate) OnConflictColumns(columns ...string) *StateSnapshotUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StateSnapshotUpsertOne{
		create: _c,
	}
}

type (
	// StateSnapshotUpsertOne is the builder for "upsert"-ing
	//  one StateSnapshot node.
	StateSnapshotUpsertOne struct {
		create *StateSnapshotCreate
	}

	// StateSnapshotUpsert is the "OnConflict" setter.
	StateSnapshotUpsert struct {
		*sql.UpdateSet
	}
)

// SetState sets the "state" field.
func (u *StateSnapshotUpsert) SetState(v map[string]interface{}) *StateSnapshotUpsert {
	u.Set(statesnapshot.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *StateSnapshotUpsert) UpdateState() *StateSnapshotUpsert {
	u.SetExcluded(statesnapshot.FieldState)
	return u
}

// SetVersion sets the "version" field.
func (u *StateSnapshotUpsert) SetVersion(v int) *StateSnapshotUpsert {
	u.Set(statesnapshot.FieldVersion, v)
	return u
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *StateSnapshotUpsert) UpdateVersion() *StateSnapshotUpsert {
	u.SetExcluded(statesnapshot.FieldVersion)
	return u
}

// AddVersion adds v to the "version" field.
func (u *StateSnapshotUpsert) AddVersion(v int) *StateSnapshotUpsert {
	u.Add(statesnapshot.FieldVersion, v)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateSnapshotUpsert) SetUpdatedAt(v time.Time) *StateSnapshotUpsert {
	u.Set(statesnapshot.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateSnapshotUpsert) UpdateUpdatedAt() *StateSnapshotUpsert {
	u.SetExcluded(statesnapshot.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.StateSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(statesnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StateSnapshotUpsertOne) UpdateNewValues() *StateSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(statesnapshot.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(statesnapshot.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StateSnapshot.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *StateSnapshotUpsertOne) Ignore() *StateSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StateSnapshotUpsertOne) DoNothing() *StateSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StateSnapshotCreate.OnConflict
// documentation for more info.
func (u *StateSnapshotUpsertOne) Update(set func(*StateSnapshotUpsert)) *StateSnapshotUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StateSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *StateSnapshotUpsertOne) SetState(v map[string]interface{}) *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *StateSnapshotUpsertOne) UpdateState() *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.UpdateState()
	})
}

// SetVersion sets the "version" field.
func (u *StateSnapshotUpsertOne) SetVersion(v int) *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *StateSnapshotUpsertOne) AddVersion(v int) *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *StateSnapshotUpsertOne) UpdateVersion() *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateSnapshotUpsertOne) SetUpdatedAt(v time.Time) *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateSnapshotUpsertOne) UpdateUpdatedAt() *StateSnapshotUpsertOne {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StateSnapshotUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StateSnapshotCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StateSnapshotUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *StateSnapshotUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: StateSnapshotUpsertOne.ID is not supported by MySQL driver. Use StateSnapshotUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *StateSnapshotUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// StateSnapshotCreateBulk is the builder for creating many StateSnapshot entities in bulk.
type StateSnapshotCreateBulk struct {
	config
	err      error
	builders []*StateSnapshotCreate
	conflict []sql.ConflictOption
}

// Save creates the StateSnapshot entities in the database.
func (_c *StateSnapshotCreateBulk) Save(ctx context.Context) ([]*StateSnapshot, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*StateSnapshot, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*StateSnapshotMutation)
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
func (_c *StateSnapshotCreateBulk) SaveX(ctx context.Context) []*StateSnapshot {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *StateSnapshotCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *StateSnapshotCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.StateSnapshot.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.StateSnapshotUpsert) {
//			SetState(v+v).
//		}).
//		Exec(ctx)
func (_c *StateSnapshotCreateBulk) OnConflict(opts ...sql.ConflictOption) *StateSnapshotUpsertBulk {
	_c.conflict = opts
	return &StateSnapshotUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.StateSnapshot.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *StateSnapshotCreateBulk) OnConflictColumns(columns ...string) *StateSnapshotUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &StateSnapshotUpsertBulk{
		create: _c,
	}
}

// StateSnapshotUpsertBulk is the builder for "upsert"-ing
// a bulk of StateSnapshot nodes.
type StateSnapshotUpsertBulk struct {
	create *StateSnapshotCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.StateSnapshot.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(statesnapshot.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *StateSnapshotUpsertBulk) UpdateNewValues() *StateSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(statesnapshot.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(statesnapshot.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.StateSnapshot.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *StateSnapshotUpsertBulk) Ignore() *StateSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *StateSnapshotUpsertBulk) DoNothing() *StateSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the StateSnapshotCreateBulk.OnConflict
// documentation for more info.
func (u *StateSnapshotUpsertBulk) Update(set func(*StateSnapshotUpsert)) *StateSnapshotUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&StateSnapshotUpsert{UpdateSet: update})
	}))
	return u
}

// SetState sets the "state" field.
func (u *StateSnapshotUpsertBulk) SetState(v map[string]interface{}) *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *StateSnapshotUpsertBulk) UpdateState() *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.UpdateState()
	})
}

// SetVersion sets the "version" field.
func (u *StateSnapshotUpsertBulk) SetVersion(v int) *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.SetVersion(v)
	})
}

// AddVersion adds v to the "version" field.
func (u *StateSnapshotUpsertBulk) AddVersion(v int) *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.AddVersion(v)
	})
}

// UpdateVersion sets the "version" field to the value that was provided on create.
func (u *StateSnapshotUpsertBulk) UpdateVersion() *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.UpdateVersion()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *StateSnapshotUpsertBulk) SetUpdatedAt(v time.Time) *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *StateSnapshotUpsertBulk) UpdateUpdatedAt() *StateSnapshotUpsertBulk {
	return u.Update(func(s *StateSnapshotUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *StateSnapshotUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the StateSnapshotCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for StateSnapshotCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *StateSnapshotUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
