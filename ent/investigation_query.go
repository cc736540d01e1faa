// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
)

// InvestigationQuery is the builder for querying Investigation entities.
type InvestigationQuery struct {
	config
	ctx                *QueryContext
	order              []investigation.OrderOption
	inters             []Interceptor
	predicates         []predicate.Investigation
	withToolExecutions *ToolExecutionLogQuery
	withInsights       *InsightQuery
	withRuleDrafts     *RuleDraftQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InvestigationQuery builder.
func (_q *InvestigationQuery) Where(ps ...predicate.Investigation) *InvestigationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InvestigationQuery) Limit(limit int) *InvestigationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InvestigationQuery) Offset(offset int) *InvestigationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InvestigationQuery) Unique(unique bool) *InvestigationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InvestigationQuery) Order(o ...investigation.OrderOption) *InvestigationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryToolExecutions chains the current query on the "tool_executions" edge.
func (_q *InvestigationQuery) QueryToolExecutions() *ToolExecutionLogQuery {
	query := (&ToolExecutionLogClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, selector),
			sqlgraph.To(toolexecutionlog.Table, toolexecutionlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.ToolExecutionsTable, investigation.ToolExecutionsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryInsights chains the current query on the "insights" edge.
func (_q *InvestigationQuery) QueryInsights() *InsightQuery {
	query := (&InsightClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, selector),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.InsightsTable, investigation.InsightsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRuleDrafts chains the current query on the "rule_drafts" edge.
func (_q *InvestigationQuery) QueryRuleDrafts() *RuleDraftQuery {
	query := (&RuleDraftClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, selector),
			sqlgraph.To(ruledraft.Table, ruledraft.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.RuleDraftsTable, investigation.RuleDraftsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Investigation entity from the query.
// Returns a *NotFoundError when no Investigation was found.
func (_q *InvestigationQuery) First(ctx context.Context) (*Investigation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{investigation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InvestigationQuery) FirstX(ctx context.Context) *Investigation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Investigation ID from the query.
// Returns a *NotFoundError when no Investigation ID was found.
func (_q *InvestigationQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{investigation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InvestigationQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Investigation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Investigation entity is found.
// Returns a *NotFoundError when no Investigation entities are found.
func (_q *InvestigationQuery) Only(ctx context.Context) (*Investigation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{investigation.Label}
	default:
		return nil, &NotSingularError{investigation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InvestigationQuery) OnlyX(ctx context.Context) *Investigation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Investigation ID in the query.
// Returns a *NotSingularError when more than one Investigation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InvestigationQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{investigation.Label}
	default:
		err = &NotSingularError{investigation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InvestigationQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Investigations.
func (_q *InvestigationQuery) All(ctx context.Context) ([]*Investigation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Investigation, *InvestigationQuery]()
	return withInterceptors[[]*Investigation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InvestigationQuery) AllX(ctx context.Context) []*Investigation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Investigation IDs.
func (_q *InvestigationQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(investigation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InvestigationQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InvestigationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InvestigationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InvestigationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InvestigationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *InvestigationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InvestigationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InvestigationQuery) Clone() *InvestigationQuery {
	if _q == nil {
		return nil
	}
	return &InvestigationQuery{
		config:             _q.config,
		ctx:                _q.ctx.Clone(),
		order:              append([]investigation.OrderOption{}, _q.order...),
		inters:             append([]Interceptor{}, _q.inters...),
		predicates:         append([]predicate.Investigation{}, _q.predicates...),
		withToolExecutions: _q.withToolExecutions.Clone(),
		withInsights:       _q.withInsights.Clone(),
		withRuleDrafts:     _q.withRuleDrafts.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithToolExecutions tells the query-builder to eager-load the nodes that are connected to
// the "tool_executions" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationQuery) WithToolExecutions(opts ...func(*ToolExecutionLogQuery)) *InvestigationQuery {
	query := (&ToolExecutionLogClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withToolExecutions = query
	return _q
}

// WithInsights tells the query-builder to eager-load the nodes that are connected to
// the "insights" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationQuery) WithInsights(opts ...func(*InsightQuery)) *InvestigationQuery {
	query := (&InsightClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInsights = query
	return _q
}

// WithRuleDrafts tells the query-builder to eager-load the nodes that are connected to
// the "rule_drafts" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InvestigationQuery) WithRuleDrafts(opts ...func(*RuleDraftQuery)) *InvestigationQuery {
	query := (&RuleDraftClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRuleDrafts = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		TransactionID string `json:"transaction_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Investigation.Query().
//		GroupBy(investigation.FieldTransactionID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InvestigationQuery) GroupBy(field string, fields ...string) *InvestigationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InvestigationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = investigation.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		TransactionID string `json:"transaction_id,omitempty"`
//	}
//
//	client.Investigation.Query().
//		Select(investigation.FieldTransactionID).
//		Scan(ctx, &v)
func (_q *InvestigationQuery) Select(fields ...string) *InvestigationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InvestigationSelect{InvestigationQuery: _q}
	sbuild.label = investigation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InvestigationSelect configured with the given aggregations.
func (_q *InvestigationQuery) Aggregate(fns ...AggregateFunc) *InvestigationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InvestigationQuery) prepareQuery(ctx context.Context) error {
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
		if !investigation.ValidColumn(f) {
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

func (_q *InvestigationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Investigation, error) {
	var (
		nodes       = []*Investigation{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withToolExecutions != nil,
			_q.withInsights != nil,
			_q.withRuleDrafts != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Investigation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Investigation{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
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
	if query := _q.withToolExecutions; query != nil {
		if err := _q.loadToolExecutions(ctx, query, nodes,
			func(n *Investigation) { n.Edges.ToolExecutions = []*ToolExecutionLog{} },
			func(n *Investigation, e *ToolExecutionLog) {
				n.Edges.ToolExecutions = append(n.Edges.ToolExecutions, e)
			}); err != nil {
			return nil, err
		}
	}
	if query := _q.withInsights; query != nil {
		if err := _q.loadInsights(ctx, query, nodes,
			func(n *Investigation) { n.Edges.Insights = []*Insight{} },
			func(n *Investigation, e *Insight) { n.Edges.Insights = append(n.Edges.Insights, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRuleDrafts; query != nil {
		if err := _q.loadRuleDrafts(ctx, query, nodes,
			func(n *Investigation) { n.Edges.RuleDrafts = []*RuleDraft{} },
			func(n *Investigation, e *RuleDraft) { n.Edges.RuleDrafts = append(n.Edges.RuleDrafts, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InvestigationQuery) loadToolExecutions(ctx context.Context, query *ToolExecutionLogQuery, nodes []*Investigation, init func(*Investigation), assign func(*Investigation, *ToolExecutionLog)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Investigation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(toolexecutionlog.FieldInvestigationID)
	}
	query.Where(predicate.ToolExecutionLog(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigation.ToolExecutionsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InvestigationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "investigation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InvestigationQuery) loadInsights(ctx context.Context, query *InsightQuery, nodes []*Investigation, init func(*Investigation), assign func(*Investigation, *Insight)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Investigation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(insight.FieldInvestigationID)
	}
	query.Where(predicate.Insight(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigation.InsightsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InvestigationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "investigation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InvestigationQuery) loadRuleDrafts(ctx context.Context, query *RuleDraftQuery, nodes []*Investigation, init func(*Investigation), assign func(*Investigation, *RuleDraft)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Investigation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(ruledraft.FieldInvestigationID)
	}
	query.Where(predicate.RuleDraft(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(investigation.RuleDraftsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InvestigationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "investigation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InvestigationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InvestigationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(investigation.Table, investigation.Columns, sqlgraph.NewFieldSpec(investigation.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, investigation.FieldID)
		for i := range fields {
			if fields[i] != investigation.FieldID {
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

func (_q *InvestigationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(investigation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = investigation.Columns
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

// InvestigationGroupBy is the group-by builder for Investigation entities.
type InvestigationGroupBy struct {
	selector
	build *InvestigationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InvestigationGroupBy) Aggregate(fns ...AggregateFunc) *InvestigationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InvestigationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvestigationQuery, *InvestigationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InvestigationGroupBy) sqlScan(ctx context.Context, root *InvestigationQuery, v any) error {
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

// InvestigationSelect is the builder for selecting fields of Investigation entities.
type InvestigationSelect struct {
	*InvestigationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InvestigationSelect) Aggregate(fns ...AggregateFunc) *InvestigationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InvestigationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InvestigationQuery, *InvestigationSelect](ctx, _s.InvestigationQuery, _s, _s.inters, v)
}

func (_s *InvestigationSelect) sqlScan(ctx context.Context, root *InvestigationQuery, v any) error {
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
