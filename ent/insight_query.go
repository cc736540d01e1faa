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
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/predicate"
	"github.com/fraudops/opsagent/ent/recommendation"
)

// InsightQuery is the builder for querying Insight entities.
type InsightQuery struct {
	config
	ctx                 *QueryContext
	order               []insight.OrderOption
	inters              []Interceptor
	predicates          []predicate.Insight
	withInvestigation   *InvestigationQuery
	withEvidence        *EvidenceQuery
	withRecommendations *RecommendationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the InsightQuery builder.
func (_q *InsightQuery) Where(ps ...predicate.Insight) *InsightQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *InsightQuery) Limit(limit int) *InsightQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *InsightQuery) Offset(offset int) *InsightQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *InsightQuery) Unique(unique bool) *InsightQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *InsightQuery) Order(o ...insight.OrderOption) *InsightQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryInvestigation chains the current query on the "investigation" edge.
func (_q *InsightQuery) QueryInvestigation() *InvestigationQuery {
	query := (&InvestigationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, selector),
			sqlgraph.To(investigation.Table, investigation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insight.InvestigationTable, insight.InvestigationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryEvidence chains the current query on the "evidence" edge.
func (_q *InsightQuery) QueryEvidence() *EvidenceQuery {
	query := (&EvidenceClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, selector),
			sqlgraph.To(evidence.Table, evidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insight.EvidenceTable, insight.EvidenceColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryRecommendations chains the current query on the "recommendations" edge.
func (_q *InsightQuery) QueryRecommendations() *RecommendationQuery {
	query := (&RecommendationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, selector),
			sqlgraph.To(recommendation.Table, recommendation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insight.RecommendationsTable, insight.RecommendationsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Insight entity from the query.
// Returns a *NotFoundError when no Insight was found.
func (_q *InsightQuery) First(ctx context.Context) (*Insight, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{insight.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *InsightQuery) FirstX(ctx context.Context) *Insight {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Insight ID from the query.
// Returns a *NotFoundError when no Insight ID was found.
func (_q *InsightQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{insight.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *InsightQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Insight entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Insight entity is found.
// Returns a *NotFoundError when no Insight entities are found.
func (_q *InsightQuery) Only(ctx context.Context) (*Insight, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{insight.Label}
	default:
		return nil, &NotSingularError{insight.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *InsightQuery) OnlyX(ctx context.Context) *Insight {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Insight ID in the query.
// Returns a *NotSingularError when more than one Insight ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *InsightQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{insight.Label}
	default:
		err = &NotSingularError{insight.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *InsightQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Insights.
func (_q *InsightQuery) All(ctx context.Context) ([]*Insight, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Insight, *InsightQuery]()
	return withInterceptors[[]*Insight](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *InsightQuery) AllX(ctx context.Context) []*Insight {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Insight IDs.
func (_q *InsightQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(insight.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *InsightQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *InsightQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*InsightQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *InsightQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *InsightQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *InsightQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the InsightQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *InsightQuery) Clone() *InsightQuery {
	if _q == nil {
		return nil
	}
	return &InsightQuery{
		config:              _q.config,
		ctx:                 _q.ctx.Clone(),
		order:               append([]insight.OrderOption{}, _q.order...),
		inters:              append([]Interceptor{}, _q.inters...),
		predicates:          append([]predicate.Insight{}, _q.predicates...),
		withInvestigation:   _q.withInvestigation.Clone(),
		withEvidence:        _q.withEvidence.Clone(),
		withRecommendations: _q.withRecommendations.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithInvestigation tells the query-builder to eager-load the nodes that are connected to
// the "investigation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InsightQuery) WithInvestigation(opts ...func(*InvestigationQuery)) *InsightQuery {
	query := (&InvestigationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withInvestigation = query
	return _q
}

// WithEvidence tells the query-builder to eager-load the nodes that are connected to
// the "evidence" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InsightQuery) WithEvidence(opts ...func(*EvidenceQuery)) *InsightQuery {
	query := (&EvidenceClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withEvidence = query
	return _q
}

// WithRecommendations tells the query-builder to eager-load the nodes that are connected to
// the "recommendations" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *InsightQuery) WithRecommendations(opts ...func(*RecommendationQuery)) *InsightQuery {
	query := (&RecommendationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecommendations = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		InvestigationID string `json:"investigation_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.Insight.Query().
//		GroupBy(insight.FieldInvestigationID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *InsightQuery) GroupBy(field string, fields ...string) *InsightGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &InsightGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = insight.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		InvestigationID string `json:"investigation_id,omitempty"`
//	}
//
//	client.Insight.Query().
//		Select(insight.FieldInvestigationID).
//		Scan(ctx, &v)
func (_q *InsightQuery) Select(fields ...string) *InsightSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &InsightSelect{InsightQuery: _q}
	sbuild.label = insight.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a InsightSelect configured with the given aggregations.
func (_q *InsightQuery) Aggregate(fns ...AggregateFunc) *InsightSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *InsightQuery) prepareQuery(ctx context.Context) error {
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
		if !insight.ValidColumn(f) {
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

func (_q *InsightQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Insight, error) {
	var (
		nodes       = []*Insight{}
		_spec       = _q.querySpec()
		loadedTypes = [3]bool{
			_q.withInvestigation != nil,
			_q.withEvidence != nil,
			_q.withRecommendations != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Insight).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Insight{config: _q.config}
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
	if query := _q.withInvestigation; query != nil {
		if err := _q.loadInvestigation(ctx, query, nodes, nil,
			func(n *Insight, e *Investigation) { n.Edges.Investigation = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withEvidence; query != nil {
		if err := _q.loadEvidence(ctx, query, nodes,
			func(n *Insight) { n.Edges.Evidence = []*Evidence{} },
			func(n *Insight, e *Evidence) { n.Edges.Evidence = append(n.Edges.Evidence, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withRecommendations; query != nil {
		if err := _q.loadRecommendations(ctx, query, nodes,
			func(n *Insight) { n.Edges.Recommendations = []*Recommendation{} },
			func(n *Insight, e *Recommendation) { n.Edges.Recommendations = append(n.Edges.Recommendations, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *InsightQuery) loadInvestigation(ctx context.Context, query *InvestigationQuery, nodes []*Insight, init func(*Insight), assign func(*Insight, *Investigation)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*Insight)
	for i := range nodes {
		fk := nodes[i].InvestigationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(investigation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "investigation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *InsightQuery) loadEvidence(ctx context.Context, query *EvidenceQuery, nodes []*Insight, init func(*Insight), assign func(*Insight, *Evidence)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Insight)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(evidence.FieldInsightID)
	}
	query.Where(predicate.Evidence(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(insight.EvidenceColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InsightID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "insight_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *InsightQuery) loadRecommendations(ctx context.Context, query *RecommendationQuery, nodes []*Insight, init func(*Insight), assign func(*Insight, *Recommendation)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*Insight)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(recommendation.FieldInsightID)
	}
	query.Where(predicate.Recommendation(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(insight.RecommendationsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.InsightID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "insight_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *InsightQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *InsightQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(insight.Table, insight.Columns, sqlgraph.NewFieldSpec(insight.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, insight.FieldID)
		for i := range fields {
			if fields[i] != insight.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withInvestigation != nil {
			_spec.Node.AddColumnOnce(insight.FieldInvestigationID)
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

func (_q *InsightQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(insight.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = insight.Columns
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

// InsightGroupBy is the group-by builder for Insight entities.
type InsightGroupBy struct {
	selector
	build *InsightQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *InsightGroupBy) Aggregate(fns ...AggregateFunc) *InsightGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *InsightGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InsightQuery, *InsightGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *InsightGroupBy) sqlScan(ctx context.Context, root *InsightQuery, v any) error {
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

// InsightSelect is the builder for selecting fields of Insight entities.
type InsightSelect struct {
	*InsightQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *InsightSelect) Aggregate(fns ...AggregateFunc) *InsightSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *InsightSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*InsightQuery, *InsightSelect](ctx, _s.InsightQuery, _s, _s.inters, v)
}

func (_s *InsightSelect) sqlScan(ctx context.Context, root *InsightQuery, v any) error {
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
