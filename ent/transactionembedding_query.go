// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/transactionembedding"
)

// TransactionEmbeddingQuery is the builder for querying TransactionEmbedding entities.
type TransactionEmbeddingQuery struct {
	config
	ctx        *QueryContext
	order      []transactionembedding.OrderOption
	inters     []Interceptor
	predicates []predicate.TransactionEmbedding
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the TransactionEmbeddingQuery builder.
func (_q *TransactionEmbeddingQuery) Where(ps ...predicate.TransactionEmbedding) *TransactionEmbeddingQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *TransactionEmbeddingQuery) Limit(limit int) *TransactionEmbeddingQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *TransactionEmbeddingQuery) Offset(offset int) *TransactionEmbeddingQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *TransactionEmbeddingQuery) Unique(unique bool) *TransactionEmbeddingQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *TransactionEmbeddingQuery) Order(o ...transactionembedding.OrderOption) *TransactionEmbeddingQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// First returns the first TransactionEmbedding entity from the query.
// Returns a *NotFoundError when no TransactionEmbedding was found.
func (_q *TransactionEmbeddingQuery) First(ctx context.Context) (*TransactionEmbedding, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{transactionembedding.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) FirstX(ctx context.Context) *TransactionEmbedding {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first TransactionEmbedding ID from the query.
// Returns a *NotFoundError when no TransactionEmbedding ID was found.
func (_q *TransactionEmbeddingQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{transactionembedding.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single TransactionEmbedding entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one TransactionEmbedding entity is found.
// Returns a *NotFoundError when no TransactionEmbedding entities are found.
func (_q *TransactionEmbeddingQuery) Only(ctx context.Context) (*TransactionEmbedding, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{transactionembedding.Label}
	default:
		return nil, &NotSingularError{transactionembedding.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) OnlyX(ctx context.Context) *TransactionEmbedding {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only TransactionEmbedding ID in the query.
// Returns a *NotSingularError when more than one TransactionEmbedding ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *TransactionEmbeddingQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{transactionembedding.Label}
	default:
		err = &NotSingularError{transactionembedding.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of TransactionEmbeddings.
func (_q *TransactionEmbeddingQuery) All(ctx context.Context) ([]*TransactionEmbedding, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*TransactionEmbedding, *TransactionEmbeddingQuery]()
	return withInterceptors[[]*TransactionEmbedding](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) AllX(ctx context.Context) []*TransactionEmbedding {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of TransactionEmbedding IDs.
func (_q *TransactionEmbeddingQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(transactionembedding.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *TransactionEmbeddingQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*TransactionEmbeddingQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *TransactionEmbeddingQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *TransactionEmbeddingQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the TransactionEmbeddingQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *TransactionEmbeddingQuery) Clone() *TransactionEmbeddingQuery {
	if _q == nil {
		return nil
	}
	return &TransactionEmbeddingQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]transactionembedding.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.TransactionEmbedding{}, _q.predicates...),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		Embedding pgvector.Vector `json:"embedding,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.TransactionEmbedding.Query().
//		GroupBy(transactionembedding.FieldEmbedding).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *TransactionEmbeddingQuery) GroupBy(field string, fields ...string) *TransactionEmbeddingGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &TransactionEmbeddingGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = transactionembedding.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		Embedding pgvector.Vector `json:"embedding,omitempty"`
//	}
//
//	client.TransactionEmbedding.Query().
//		Select(transactionembedding.FieldEmbedding).
//		Scan(ctx, &v)
func (_q *TransactionEmbeddingQuery) Select(fields ...string) *TransactionEmbeddingSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &TransactionEmbeddingSelect{TransactionEmbeddingQuery: _q}
	sbuild.label = transactionembedding.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a TransactionEmbeddingSelect configured with the given aggregations.
func (_q *TransactionEmbeddingQuery) Aggregate(fns ...AggregateFunc) *TransactionEmbeddingSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *TransactionEmbeddingQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !transactionembedding.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *TransactionEmbeddingQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*TransactionEmbedding, error) {
	var (
		nodes = []*TransactionEmbedding{}
		_spec = _q.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*TransactionEmbedding).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &TransactionEmbedding{config: _q.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (_q *TransactionEmbeddingQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *TransactionEmbeddingQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(transactionembedding.Table, transactionembedding.Columns, sqlgraph.NewFieldSpec(transactionembedding.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, transactionembedding.FieldID)
		for i := range fields {
			if fields[i] != transactionembedding.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *TransactionEmbeddingQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(transactionembedding.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = transactionembedding.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// TransactionEmbeddingGroupBy is the group-by builder for TransactionEmbedding entities.
type TransactionEmbeddingGroupBy struct {
	selector
	build *TransactionEmbeddingQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *TransactionEmbeddingGroupBy) Aggregate(fns ...AggregateFunc) *TransactionEmbeddingGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *TransactionEmbeddingGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TransactionEmbeddingQuery, *TransactionEmbeddingGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *TransactionEmbeddingGroupBy) sqlScan(ctx context.Context, root *TransactionEmbeddingQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// TransactionEmbeddingSelect is the builder for selecting fields of TransactionEmbedding entities.
type TransactionEmbeddingSelect struct {
	*TransactionEmbeddingQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *TransactionEmbeddingSelect) Aggregate(fns ...AggregateFunc) *TransactionEmbeddingSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *TransactionEmbeddingSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*TransactionEmbeddingQuery, *TransactionEmbeddingSelect](ctx, _s.TransactionEmbeddingQuery, _s, _s.inters, v)
}

func (_s *TransactionEmbeddingSelect) sqlScan(ctx context.Context, root *TransactionEmbeddingQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
