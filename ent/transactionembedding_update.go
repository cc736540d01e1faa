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
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/transactionembedding"
	pgvector "github.com/pgvector/pgvector-go"
)

// TransactionEmbeddingUpdate is the builder for updating TransactionEmbedding entities.
type TransactionEmbeddingUpdate struct {
	config
	hooks    []Hook
	mutation *TransactionEmbeddingMutation
}

// Where appends a list predicates to the TransactionEmbeddingUpdate builder.
func (_u *TransactionEmbeddingUpdate) Where(ps ...predicate.TransactionEmbedding) *TransactionEmbeddingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *TransactionEmbeddingUpdate) SetEmbedding(v pgvector.Vector) *TransactionEmbeddingUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdate) SetNillableEmbedding(v *pgvector.Vector) *TransactionEmbeddingUpdate {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TransactionEmbeddingUpdate) SetSummary(v string) *TransactionEmbeddingUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdate) SetNillableSummary(v *string) *TransactionEmbeddingUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionEmbeddingUpdate) SetAmount(v float64) *TransactionEmbeddingUpdate {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdate) SetNillableAmount(v *float64) *TransactionEmbeddingUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionEmbeddingUpdate) AddAmount(v float64) *TransactionEmbeddingUpdate {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *TransactionEmbeddingUpdate) SetMerchantID(v string) *TransactionEmbeddingUpdate {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdate) SetNillableMerchantID(v *string) *TransactionEmbeddingUpdate {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetTransactionAt sets the "transaction_at" field.
func (_u *TransactionEmbeddingUpdate) SetTransactionAt(v time.Time) *TransactionEmbeddingUpdate {
	_u.mutation.SetTransactionAt(v)
	return _u
}

// SetNillableTransactionAt sets the "transaction_at" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdate) SetNillableTransactionAt(v *time.Time) *TransactionEmbeddingUpdate {
	if v != nil {
		_u.SetTransactionAt(*v)
	}
	return _u
}

// Mutation returns the TransactionEmbeddingMutation object of the builder.
func (_u *TransactionEmbeddingUpdate) Mutation() *TransactionEmbeddingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TransactionEmbeddingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionEmbeddingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TransactionEmbeddingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionEmbeddingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TransactionEmbeddingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(transactionembedding.Table, transactionembedding.Columns, sqlgraph.NewFieldSpec(transactionembedding.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(transactionembedding.FieldEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(transactionembedding.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transactionembedding.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transactionembedding.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MerchantID(); ok {
		_spec.SetField(transactionembedding.FieldMerchantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransactionAt(); ok {
		_spec.SetField(transactionembedding.FieldTransactionAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transactionembedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TransactionEmbeddingUpdateOne is the builder for updating a single TransactionEmbedding entity.
type TransactionEmbeddingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TransactionEmbeddingMutation
}

// SetEmbedding sets the "embedding" field.
func (_u *TransactionEmbeddingUpdateOne) SetEmbedding(v pgvector.Vector) *TransactionEmbeddingUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// SetNillableEmbedding sets the "embedding" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdateOne) SetNillableEmbedding(v *pgvector.Vector) *TransactionEmbeddingUpdateOne {
	if v != nil {
		_u.SetEmbedding(*v)
	}
	return _u
}

// SetSummary sets the "summary" field.
func (_u *TransactionEmbeddingUpdateOne) SetSummary(v string) *TransactionEmbeddingUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdateOne) SetNillableSummary(v *string) *TransactionEmbeddingUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// SetAmount sets the "amount" field.
func (_u *TransactionEmbeddingUpdateOne) SetAmount(v float64) *TransactionEmbeddingUpdateOne {
	_u.mutation.ResetAmount()
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdateOne) SetNillableAmount(v *float64) *TransactionEmbeddingUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// AddAmount adds value to the "amount" field.
func (_u *TransactionEmbeddingUpdateOne) AddAmount(v float64) *TransactionEmbeddingUpdateOne {
	_u.mutation.AddAmount(v)
	return _u
}

// SetMerchantID sets the "merchant_id" field.
func (_u *TransactionEmbeddingUpdateOne) SetMerchantID(v string) *TransactionEmbeddingUpdateOne {
	_u.mutation.SetMerchantID(v)
	return _u
}

// SetNillableMerchantID sets the "merchant_id" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdateOne) SetNillableMerchantID(v *string) *TransactionEmbeddingUpdateOne {
	if v != nil {
		_u.SetMerchantID(*v)
	}
	return _u
}

// SetTransactionAt sets the "transaction_at" field.
func (_u *TransactionEmbeddingUpdateOne) SetTransactionAt(v time.Time) *TransactionEmbeddingUpdateOne {
	_u.mutation.SetTransactionAt(v)
	return _u
}

// SetNillableTransactionAt sets the "transaction_at" field if the given value is not nil.
func (_u *TransactionEmbeddingUpdateOne) SetNillableTransactionAt(v *time.Time) *TransactionEmbeddingUpdateOne {
	if v != nil {
		_u.SetTransactionAt(*v)
	}
	return _u
}

// Mutation returns the TransactionEmbeddingMutation object of the builder.
func (_u *TransactionEmbeddingUpdateOne) Mutation() *TransactionEmbeddingMutation {
	return _u.mutation
}

// Where appends a list predicates to the TransactionEmbeddingUpdate builder.
func (_u *TransactionEmbeddingUpdateOne) Where(ps ...predicate.TransactionEmbedding) *TransactionEmbeddingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TransactionEmbeddingUpdateOne) Select(field string, fields ...string) *TransactionEmbeddingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TransactionEmbedding entity.
func (_u *TransactionEmbeddingUpdateOne) Save(ctx context.Context) (*TransactionEmbedding, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TransactionEmbeddingUpdateOne) SaveX(ctx context.Context) *TransactionEmbedding {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TransactionEmbeddingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TransactionEmbeddingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TransactionEmbeddingUpdateOne) sqlSave(ctx context.Context) (_node *TransactionEmbedding, err error) {
	_spec := sqlgraph.NewUpdateSpec(transactionembedding.Table, transactionembedding.Columns, sqlgraph.NewFieldSpec(transactionembedding.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TransactionEmbedding.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transactionembedding.FieldID)
		for _, f := range fields {
			if !transactionembedding.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != transactionembedding.FieldID {
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
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(transactionembedding.FieldEmbedding, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(transactionembedding.FieldSummary, field.TypeString, value)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(transactionembedding.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAmount(); ok {
		_spec.AddField(transactionembedding.FieldAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.MerchantID(); ok {
		_spec.SetField(transactionembedding.FieldMerchantID, field.TypeString, value)
	}
	if value, ok := _u.mutation.TransactionAt(); ok {
		_spec.SetField(transactionembedding.FieldTransactionAt, field.TypeTime, value)
	}
	_node = &TransactionEmbedding{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{transactionembedding.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
