// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/transactionembedding"
)

// TransactionEmbeddingDelete is the builder for deleting a TransactionEmbedding entity.
type TransactionEmbeddingDelete struct {
	config
	hooks    []Hook
	mutation *TransactionEmbeddingMutation
}

// Where appends a list predicates to the TransactionEmbeddingDelete builder.
func (_d *TransactionEmbeddingDelete) Where(ps ...predicate.TransactionEmbedding) *TransactionEmbeddingDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *TransactionEmbeddingDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TransactionEmbeddingDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *TransactionEmbeddingDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(transactionembedding.Table, sqlgraph.NewFieldSpec(transactionembedding.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// TransactionEmbeddingDeleteOne is the builder for deleting a single TransactionEmbedding entity.
type TransactionEmbeddingDeleteOne struct {
	_d *TransactionEmbeddingDelete
}

// Where appends a list predicates to the TransactionEmbeddingDelete builder.
func (_d *TransactionEmbeddingDeleteOne) Where(ps ...predicate.TransactionEmbedding) *TransactionEmbeddingDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *TransactionEmbeddingDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{transactionembedding.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *TransactionEmbeddingDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
