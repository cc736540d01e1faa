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
	"github.com/fraudops/opsagent/ent/transactionembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

// TransactionEmbeddingCreate is the builder for creating a TransactionEmbedding entity.
type TransactionEmbeddingCreate struct {
	config
	mutation *TransactionEmbeddingMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetEmbedding sets the "embedding" field.
func (_c *TransactionEmbeddingCreate) SetEmbedding(v pgvector.Vector) *TransactionEmbeddingCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *TransactionEmbeddingCreate) SetSummary(v string) *TransactionEmbeddingCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetAmount sets the "amount" field.
func (_c *TransactionEmbeddingCreate) SetAmount(v float64) *TransactionEmbeddingCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetMerchantID sets the "merchant_id" field.
func (_c *TransactionEmbeddingCreate) SetMerchantID(v string) *TransactionEmbeddingCreate {
	_c.mutation.SetMerchantID(v)
	return _c
}

// SetTransactionAt sets the "transaction_at" field.
func (_c *TransactionEmbeddingCreate) SetTransactionAt(v time.Time) *TransactionEmbeddingCreate {
	_c.mutation.SetTransactionAt(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TransactionEmbeddingCreate) SetCreatedAt(v time.Time) *TransactionEmbeddingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TransactionEmbeddingCreate) SetNillableCreatedAt(v *time.Time) *TransactionEmbeddingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TransactionEmbeddingCreate) SetID(v string) *TransactionEmbeddingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TransactionEmbeddingMutation object of the builder.
func (_c *TransactionEmbeddingCreate) Mutation() *TransactionEmbeddingMutation {
	return _c.mutation
}

// Save creates the TransactionEmbedding in the database.
func (_c *TransactionEmbeddingCreate) Save(ctx context.Context) (*TransactionEmbedding, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TransactionEmbeddingCreate) SaveX(ctx context.Context) *TransactionEmbedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionEmbeddingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionEmbeddingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TransactionEmbeddingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := transactionembedding.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TransactionEmbeddingCreate) check() error {
	if _, ok := _c.mutation.Embedding(); !ok {
		return &ValidationError{Name: "embedding", err: errors.New(`ent: missing required field "TransactionEmbedding.embedding"`)}
	}
	if _, ok := _c.mutation.Summary(); !ok {
		return &ValidationError{Name: "summary", err: errors.New(`ent: missing required field "TransactionEmbedding.summary"`)}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "TransactionEmbedding.amount"`)}
	}
	if _, ok := _c.mutation.MerchantID(); !ok {
		return &ValidationError{Name: "merchant_id", err: errors.New(`ent: missing required field "TransactionEmbedding.merchant_id"`)}
	}
	if _, ok := _c.mutation.TransactionAt(); !ok {
		return &ValidationError{Name: "transaction_at", err: errors.New(`ent: missing required field "TransactionEmbedding.transaction_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TransactionEmbedding.created_at"`)}
	}
	return nil
}

func (_c *TransactionEmbeddingCreate) sqlSave(ctx context.Context) (*TransactionEmbedding, error) {
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
			return nil, fmt.Errorf("unexpected TransactionEmbedding.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TransactionEmbeddingCreate) createSpec() (*TransactionEmbedding, *sqlgraph.CreateSpec) {
	var (
		_node = &TransactionEmbedding{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(transactionembedding.Table, sqlgraph.NewFieldSpec(transactionembedding.FieldID, field.TypeString))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(transactionembedding.FieldEmbedding, field.TypeOther, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(transactionembedding.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(transactionembedding.FieldAmount, field.TypeFloat64, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.MerchantID(); ok {
		_spec.SetField(transactionembedding.FieldMerchantID, field.TypeString, value)
		_node.MerchantID = value
	}
	if value, ok := _c.mutation.TransactionAt(); ok {
		_spec.SetField(transactionembedding.FieldTransactionAt, field.TypeTime, value)
		_node.TransactionAt = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(transactionembedding.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TransactionEmbedding.Create().
//		SetEmbedding(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransactionEmbeddingUpsert) {
//			SetEmbedding(v+v).
//		}).
//		Exec(ctx)
func (_c *TransactionEmbeddingCreate) OnConflict(opts ...sql.ConflictOption) *TransactionEmbeddingUpsertOne {
	_c.conflict = opts
	return &TransactionEmbeddingUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TransactionEmbedding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransactionEmbeddingCreate) OnConflictColumns(columns ...string) *TransactionEmbeddingUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransactionEmbeddingUpsertOne{
		create: _c,
	}
}

type (
	// TransactionEmbeddingUpsertOne is the builder for "upsert"-ing
	//  one TransactionEmbedding node.
	TransactionEmbeddingUpsertOne struct {
		create *TransactionEmbeddingCreate
	}

	// TransactionEmbeddingUpsert is the "OnConflict" setter.
	TransactionEmbeddingUpsert struct {
		*sql.UpdateSet
	}
)

// SetEmbedding sets the "embedding" field.
func (u *TransactionEmbeddingUpsert) SetEmbedding(v pgvector.Vector) *TransactionEmbeddingUpsert {
	u.Set(transactionembedding.FieldEmbedding, v)
	return u
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsert) UpdateEmbedding() *TransactionEmbeddingUpsert {
	u.SetExcluded(transactionembedding.FieldEmbedding)
	return u
}

// SetSummary sets the "summary" field.
func (u *TransactionEmbeddingUpsert) SetSummary(v string) *TransactionEmbeddingUpsert {
	u.Set(transactionembedding.FieldSummary, v)
	return u
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsert) UpdateSummary() *TransactionEmbeddingUpsert {
	u.SetExcluded(transactionembedding.FieldSummary)
	return u
}

// SetAmount sets the "amount" field.
func (u *TransactionEmbeddingUpsert) SetAmount(v float64) *TransactionEmbeddingUpsert {
	u.Set(transactionembedding.FieldAmount, v)
	return u
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsert) UpdateAmount() *TransactionEmbeddingUpsert {
	u.SetExcluded(transactionembedding.FieldAmount)
	return u
}

// AddAmount adds v to the "amount" field.
func (u *TransactionEmbeddingUpsert) AddAmount(v float64) *TransactionEmbeddingUpsert {
	u.Add(transactionembedding.FieldAmount, v)
	return u
}

// SetMerchantID sets the "merchant_id" field.
func (u *TransactionEmbeddingUpsert) SetMerchantID(v string) *TransactionEmbeddingUpsert {
	u.Set(transactionembedding.FieldMerchantID, v)
	return u
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsert) UpdateMerchantID() *TransactionEmbeddingUpsert {
	u.SetExcluded(transactionembedding.FieldMerchantID)
	return u
}

// SetTransactionAt sets the "transaction_at" field.
func (u *TransactionEmbeddingUpsert) SetTransactionAt(v time.Time) *TransactionEmbeddingUpsert {
	u.Set(transactionembedding.FieldTransactionAt, v)
	return u
}

// UpdateTransactionAt sets the "transaction_at" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsert) UpdateTransactionAt() *TransactionEmbeddingUpsert {
	u.SetExcluded(transactionembedding.FieldTransactionAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.TransactionEmbedding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transactionembedding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransactionEmbeddingUpsertOne) UpdateNewValues() *TransactionEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(transactionembedding.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(transactionembedding.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TransactionEmbedding.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TransactionEmbeddingUpsertOne) Ignore() *TransactionEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransactionEmbeddingUpsertOne) DoNothing() *TransactionEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransactionEmbeddingCreate.OnConflict
// documentation for more info.
func (u *TransactionEmbeddingUpsertOne) Update(set func(*TransactionEmbeddingUpsert)) *TransactionEmbeddingUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransactionEmbeddingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *TransactionEmbeddingUpsertOne) SetEmbedding(v pgvector.Vector) *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertOne) UpdateEmbedding() *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateEmbedding()
	})
}

// SetSummary sets the "summary" field.
func (u *TransactionEmbeddingUpsertOne) SetSummary(v string) *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertOne) UpdateSummary() *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateSummary()
	})
}

// SetAmount sets the "amount" field.
func (u *TransactionEmbeddingUpsertOne) SetAmount(v float64) *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *TransactionEmbeddingUpsertOne) AddAmount(v float64) *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertOne) UpdateAmount() *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateAmount()
	})
}

// SetMerchantID sets the "merchant_id" field.
func (u *TransactionEmbeddingUpsertOne) SetMerchantID(v string) *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertOne) UpdateMerchantID() *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateMerchantID()
	})
}

// SetTransactionAt sets the "transaction_at" field.
func (u *TransactionEmbeddingUpsertOne) SetTransactionAt(v time.Time) *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetTransactionAt(v)
	})
}

// UpdateTransactionAt sets the "transaction_at" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertOne) UpdateTransactionAt() *TransactionEmbeddingUpsertOne {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateTransactionAt()
	})
}

// Exec executes the query.
func (u *TransactionEmbeddingUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TransactionEmbeddingCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransactionEmbeddingUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TransactionEmbeddingUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TransactionEmbeddingUpsertOne.ID is not supported by MySQL driver. Use TransactionEmbeddingUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TransactionEmbeddingUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TransactionEmbeddingCreateBulk is the builder for creating many TransactionEmbedding entities in bulk.
type TransactionEmbeddingCreateBulk struct {
	config
	err      error
	builders []*TransactionEmbeddingCreate
	conflict []sql.ConflictOption
}

// Save creates the TransactionEmbedding entities in the database.
func (_c *TransactionEmbeddingCreateBulk) Save(ctx context.Context) ([]*TransactionEmbedding, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TransactionEmbedding, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TransactionEmbeddingMutation)
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
func (_c *TransactionEmbeddingCreateBulk) SaveX(ctx context.Context) []*TransactionEmbedding {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TransactionEmbeddingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TransactionEmbeddingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.TransactionEmbedding.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TransactionEmbeddingUpsert) {
//			SetEmbedding(v+v).
//		}).
//		Exec(ctx)
func (_c *TransactionEmbeddingCreateBulk) OnConflict(opts ...sql.ConflictOption) *TransactionEmbeddingUpsertBulk {
	_c.conflict = opts
	return &TransactionEmbeddingUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.TransactionEmbedding.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *TransactionEmbeddingCreateBulk) OnConflictColumns(columns ...string) *TransactionEmbeddingUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &TransactionEmbeddingUpsertBulk{
		create: _c,
	}
}

// TransactionEmbeddingUpsertBulk is the builder for "upsert"-ing
// a bulk of TransactionEmbedding nodes.
type TransactionEmbeddingUpsertBulk struct {
	create *TransactionEmbeddingCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.TransactionEmbedding.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(transactionembedding.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TransactionEmbeddingUpsertBulk) UpdateNewValues() *TransactionEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(transactionembedding.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(transactionembedding.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.TransactionEmbedding.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TransactionEmbeddingUpsertBulk) Ignore() *TransactionEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TransactionEmbeddingUpsertBulk) DoNothing() *TransactionEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TransactionEmbeddingCreateBulk.OnConflict
// documentation for more info.
func (u *TransactionEmbeddingUpsertBulk) Update(set func(*TransactionEmbeddingUpsert)) *TransactionEmbeddingUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TransactionEmbeddingUpsert{UpdateSet: update})
	}))
	return u
}

// SetEmbedding sets the "embedding" field.
func (u *TransactionEmbeddingUpsertBulk) SetEmbedding(v pgvector.Vector) *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetEmbedding(v)
	})
}

// UpdateEmbedding sets the "embedding" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertBulk) UpdateEmbedding() *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateEmbedding()
	})
}

// SetSummary sets the "summary" field.
func (u *TransactionEmbeddingUpsertBulk) SetSummary(v string) *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetSummary(v)
	})
}

// UpdateSummary sets the "summary" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertBulk) UpdateSummary() *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateSummary()
	})
}

// SetAmount sets the "amount" field.
func (u *TransactionEmbeddingUpsertBulk) SetAmount(v float64) *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetAmount(v)
	})
}

// AddAmount adds v to the "amount" field.
func (u *TransactionEmbeddingUpsertBulk) AddAmount(v float64) *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.AddAmount(v)
	})
}

// UpdateAmount sets the "amount" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertBulk) UpdateAmount() *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateAmount()
	})
}

// SetMerchantID sets the "merchant_id" field.
func (u *TransactionEmbeddingUpsertBulk) SetMerchantID(v string) *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetMerchantID(v)
	})
}

// UpdateMerchantID sets the "merchant_id" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertBulk) UpdateMerchantID() *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateMerchantID()
	})
}

// SetTransactionAt sets the "transaction_at" field.
func (u *TransactionEmbeddingUpsertBulk) SetTransactionAt(v time.Time) *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.SetTransactionAt(v)
	})
}

// UpdateTransactionAt sets the "transaction_at" field to the value that was provided on create.
func (u *TransactionEmbeddingUpsertBulk) UpdateTransactionAt() *TransactionEmbeddingUpsertBulk {
	return u.Update(func(s *TransactionEmbeddingUpsert) {
		s.UpdateTransactionAt()
	})
}

// Exec executes the query.
func (u *TransactionEmbeddingUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TransactionEmbeddingCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TransactionEmbeddingCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TransactionEmbeddingUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
