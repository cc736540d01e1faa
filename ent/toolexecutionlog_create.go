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
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// ToolExecutionLogCreate is the builder for creating a ToolExecutionLog entity.
type ToolExecutionLogCreate struct {
	config
	mutation *ToolExecutionLogMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetInvestigationID sets the "investigation_id" field.
func (_c *ToolExecutionLogCreate) SetInvestigationID(v string) *ToolExecutionLogCreate {
	_c.mutation.SetInvestigationID(v)
	return _c
}

// SetToolName sets the "tool_name" field.
func (_c *ToolExecutionLogCreate) SetToolName(v string) *ToolExecutionLogCreate {
	_c.mutation.SetToolName(v)
	return _c
}

// SetStepNumber sets the "step_number" field.
func (_c *ToolExecutionLogCreate) SetStepNumber(v int) *ToolExecutionLogCreate {
	_c.mutation.SetStepNumber(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ToolExecutionLogCreate) SetStatus(v toolexecutionlog.Status) *ToolExecutionLogCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetInputSummary sets the "input_summary" field.
func (_c *ToolExecutionLogCreate) SetInputSummary(v string) *ToolExecutionLogCreate {
	_c.mutation.SetInputSummary(v)
	return _c
}

// SetNillableInputSummary sets the "input_summary" field if the given value is not nil.
func (_c *ToolExecutionLogCreate) SetNillableInputSummary(v *string) *ToolExecutionLogCreate {
	if v != nil {
		_c.SetInputSummary(*v)
	}
	return _c
}

// SetOutputSummary sets the "output_summary" field.
func (_c *ToolExecutionLogCreate) SetOutputSummary(v string) *ToolExecutionLogCreate {
	_c.mutation.SetOutputSummary(v)
	return _c
}

// SetNillableOutputSummary sets the "output_summary" field if the given value is not nil.
func (_c *ToolExecutionLogCreate) SetNillableOutputSummary(v *string) *ToolExecutionLogCreate {
	if v != nil {
		_c.SetOutputSummary(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *ToolExecutionLogCreate) SetErrorMessage(v string) *ToolExecutionLogCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *ToolExecutionLogCreate) SetNillableErrorMessage(v *string) *ToolExecutionLogCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetExecutionTimeMs sets the "execution_time_ms" field.
func (_c *ToolExecutionLogCreate) SetExecutionTimeMs(v int) *ToolExecutionLogCreate {
	_c.mutation.SetExecutionTimeMs(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ToolExecutionLogCreate) SetCreatedAt(v time.Time) *ToolExecutionLogCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ToolExecutionLogCreate) SetNillableCreatedAt(v *time.Time) *ToolExecutionLogCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ToolExecutionLogCreate) SetID(v string) *ToolExecutionLogCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetInvestigation sets the "investigation" edge to the Investigation entity.
func (_c *ToolExecutionLogCreate) SetInvestigation(v *Investigation) *ToolExecutionLogCreate {
	return _c.SetInvestigationID(v.ID)
}

// Mutation returns the ToolExecutionLogMutation object of the builder.
func (_c *ToolExecutionLogCreate) Mutation() *ToolExecutionLogMutation {
	return _c.mutation
}

// Save creates the ToolExecutionLog in the database.
func (_c *ToolExecutionLogCreate) Save(ctx context.Context) (*ToolExecutionLog, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ToolExecutionLogCreate) SaveX(ctx context.Context) *ToolExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolExecutionLogCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolExecutionLogCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ToolExecutionLogCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := toolexecutionlog.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ToolExecutionLogCreate) check() error {
	if _, ok := _c.mutation.InvestigationID(); !ok {
		return &ValidationError{Name: "investigation_id", err: errors.New(`ent: missing required field "ToolExecutionLog.investigation_id"`)}
	}
	if _, ok := _c.mutation.ToolName(); !ok {
		return &ValidationError{Name: "tool_name", err: errors.New(`ent: missing required field "ToolExecutionLog.tool_name"`)}
	}
	if _, ok := _c.mutation.StepNumber(); !ok {
		return &ValidationError{Name: "step_number", err: errors.New(`ent: missing required field "ToolExecutionLog.step_number"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ToolExecutionLog.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := toolexecutionlog.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ToolExecutionLog.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExecutionTimeMs(); !ok {
		return &ValidationError{Name: "execution_time_ms", err: errors.New(`ent: missing required field "ToolExecutionLog.execution_time_ms"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ToolExecutionLog.created_at"`)}
	}
	if len(_c.mutation.InvestigationIDs()) == 0 {
		return &ValidationError{Name: "investigation", err: errors.New(`ent: missing required edge "ToolExecutionLog.investigation"`)}
	}
	return nil
}

func (_c *ToolExecutionLogCreate) sqlSave(ctx context.Context) (*ToolExecutionLog, error) {
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
			return nil, fmt.Errorf("unexpected ToolExecutionLog.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ToolExecutionLogCreate) createSpec() (*ToolExecutionLog, *sqlgraph.CreateSpec) {
	var (
		_node = &ToolExecutionLog{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(toolexecutionlog.Table, sqlgraph.NewFieldSpec(toolexecutionlog.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ToolName(); ok {
		_spec.SetField(toolexecutionlog.FieldToolName, field.TypeString, value)
		_node.ToolName = value
	}
	if value, ok := _c.mutation.StepNumber(); ok {
		_spec.SetField(toolexecutionlog.FieldStepNumber, field.TypeInt, value)
		_node.StepNumber = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(toolexecutionlog.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.InputSummary(); ok {
		_spec.SetField(toolexecutionlog.FieldInputSummary, field.TypeString, value)
		_node.InputSummary = value
	}
	if value, ok := _c.mutation.OutputSummary(); ok {
		_spec.SetField(toolexecutionlog.FieldOutputSummary, field.TypeString, value)
		_node.OutputSummary = value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(toolexecutionlog.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.ExecutionTimeMs(); ok {
		_spec.SetField(toolexecutionlog.FieldExecutionTimeMs, field.TypeInt, value)
		_node.ExecutionTimeMs = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(toolexecutionlog.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InvestigationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   toolexecutionlog.InvestigationTable,
			Columns: []string{toolexecutionlog.InvestigationColumn},
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
//	client.ToolExecutionLog.Create().
//		SetInvestigationID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolExecutionLogUpsert) {
//			SetInvestigationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolExecutionLogCreate) OnConflict(opts ...sql.ConflictOption) *ToolExecutionLogUpsertOne {
	_c.conflict = opts
	return &ToolExecutionLogUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolExecutionLogCreate) OnConflictColumns(columns ...string) *ToolExecutionLogUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolExecutionLogUpsertOne{
		create: _c,
	}
}

type (
	// ToolExecutionLogUpsertOne is the builder for "upsert"-ing
	//  one ToolExecutionLog node.
	ToolExecutionLogUpsertOne struct {
		create *ToolExecutionLogCreate
	}

	// ToolExecutionLogUpsert is the "OnConflict" setter.
	ToolExecutionLogUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.ToolExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolexecutionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolExecutionLogUpsertOne) UpdateNewValues() *ToolExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(toolexecutionlog.FieldID)
		}
		if _, exists := u.create.mutation.InvestigationID(); exists {
			s.SetIgnore(toolexecutionlog.FieldInvestigationID)
		}
		if _, exists := u.create.mutation.ToolName(); exists {
			s.SetIgnore(toolexecutionlog.FieldToolName)
		}
		if _, exists := u.create.mutation.StepNumber(); exists {
			s.SetIgnore(toolexecutionlog.FieldStepNumber)
		}
		if _, exists := u.create.mutation.Status(); exists {
			s.SetIgnore(toolexecutionlog.FieldStatus)
		}
		if _, exists := u.create.mutation.InputSummary(); exists {
			s.SetIgnore(toolexecutionlog.FieldInputSummary)
		}
		if _, exists := u.create.mutation.OutputSummary(); exists {
			s.SetIgnore(toolexecutionlog.FieldOutputSummary)
		}
		if _, exists := u.create.mutation.ErrorMessage(); exists {
			s.SetIgnore(toolexecutionlog.FieldErrorMessage)
		}
		if _, exists := u.create.mutation.ExecutionTimeMs(); exists {
			s.SetIgnore(toolexecutionlog.FieldExecutionTimeMs)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(toolexecutionlog.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolExecutionLog.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ToolExecutionLogUpsertOne) Ignore() *ToolExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolExecutionLogUpsertOne) DoNothing() *ToolExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolExecutionLogCreate.OnConflict
// documentation for more info.
func (u *ToolExecutionLogUpsertOne) Update(set func(*ToolExecutionLogUpsert)) *ToolExecutionLogUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ToolExecutionLogUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolExecutionLogCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolExecutionLogUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ToolExecutionLogUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: ToolExecutionLogUpsertOne.ID is not supported by MySQL driver. Use ToolExecutionLogUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ToolExecutionLogUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ToolExecutionLogCreateBulk is the builder for creating many ToolExecutionLog entities in bulk.
type ToolExecutionLogCreateBulk struct {
	config
	err      error
	builders []*ToolExecutionLogCreate
	conflict []sql.ConflictOption
}

// Save creates the ToolExecutionLog entities in the database.
func (_c *ToolExecutionLogCreateBulk) Save(ctx context.Context) ([]*ToolExecutionLog, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ToolExecutionLog, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ToolExecutionLogMutation)
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
func (_c *ToolExecutionLogCreateBulk) SaveX(ctx context.Context) []*ToolExecutionLog {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ToolExecutionLogCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ToolExecutionLogCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.ToolExecutionLog.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ToolExecutionLogUpsert) {
//			SetInvestigationID(v+v).
//		}).
//		Exec(ctx)
func (_c *ToolExecutionLogCreateBulk) OnConflict(opts ...sql.ConflictOption) *ToolExecutionLogUpsertBulk {
	_c.conflict = opts
	return &ToolExecutionLogUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.ToolExecutionLog.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ToolExecutionLogCreateBulk) OnConflictColumns(columns ...string) *ToolExecutionLogUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ToolExecutionLogUpsertBulk{
		create: _c,
	}
}

// ToolExecutionLogUpsertBulk is the builder for "upsert"-ing
// a bulk of ToolExecutionLog nodes.
type ToolExecutionLogUpsertBulk struct {
	create *ToolExecutionLogCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.ToolExecutionLog.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(toolexecutionlog.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *ToolExecutionLogUpsertBulk) UpdateNewValues() *ToolExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(toolexecutionlog.FieldID)
			}
			if _, exists := b.mutation.InvestigationID(); exists {
				s.SetIgnore(toolexecutionlog.FieldInvestigationID)
			}
			if _, exists := b.mutation.ToolName(); exists {
				s.SetIgnore(toolexecutionlog.FieldToolName)
			}
			if _, exists := b.mutation.StepNumber(); exists {
				s.SetIgnore(toolexecutionlog.FieldStepNumber)
			}
			if _, exists := b.mutation.Status(); exists {
				s.SetIgnore(toolexecutionlog.FieldStatus)
			}
			if _, exists := b.mutation.InputSummary(); exists {
				s.SetIgnore(toolexecutionlog.FieldInputSummary)
			}
			if _, exists := b.mutation.OutputSummary(); exists {
				s.SetIgnore(toolexecutionlog.FieldOutputSummary)
			}
			if _, exists := b.mutation.ErrorMessage(); exists {
				s.SetIgnore(toolexecutionlog.FieldErrorMessage)
			}
			if _, exists := b.mutation.ExecutionTimeMs(); exists {
				s.SetIgnore(toolexecutionlog.FieldExecutionTimeMs)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(toolexecutionlog.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.ToolExecutionLog.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ToolExecutionLogUpsertBulk) Ignore() *ToolExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ToolExecutionLogUpsertBulk) DoNothing() *ToolExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ToolExecutionLogCreateBulk.OnConflict
// documentation for more info.
func (u *ToolExecutionLogUpsertBulk) Update(set func(*ToolExecutionLogUpsert)) *ToolExecutionLogUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ToolExecutionLogUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *ToolExecutionLogUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ToolExecutionLogCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ToolExecutionLogCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ToolExecutionLogUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
