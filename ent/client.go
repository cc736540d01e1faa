// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fraudops/opsagent/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fraudops/opsagent/ent/auditlog"
	"github.com/fraudops/opsagent/ent/evidence"
	"github.com/fraudops/opsagent/ent/insight"
	"github.com/fraudops/opsagent/ent/investigation"
	"github.com/fraudops/opsagent/ent/recommendation"
	"github.com/fraudops/opsagent/ent/ruledraft"
	"github.com/fraudops/opsagent/ent/statesnapshot"
	"github.com/fraudops/opsagent/ent/toolexecutionlog"
	"github.com/fraudops/opsagent/ent/transactionembedding"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// Evidence is the client for interacting with the Evidence builders.
	Evidence *EvidenceClient
	// Insight is the client for interacting with the Insight builders.
	Insight *InsightClient
	// Investigation is the client for interacting with the Investigation builders.
	Investigation *InvestigationClient
	// Recommendation is the client for interacting with the Recommendation builders.
	Recommendation *RecommendationClient
	// RuleDraft is the client for interacting with the RuleDraft builders.
	RuleDraft *RuleDraftClient
	// StateSnapshot is the client for interacting with the StateSnapshot builders.
	StateSnapshot *StateSnapshotClient
	// ToolExecutionLog is the client for interacting with the ToolExecutionLog builders.
	ToolExecutionLog *ToolExecutionLogClient
	// TransactionEmbedding is the client for interacting with the TransactionEmbedding builders.
	TransactionEmbedding *TransactionEmbeddingClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AuditLog = NewAuditLogClient(c.config)
	c.Evidence = NewEvidenceClient(c.config)
	c.Insight = NewInsightClient(c.config)
	c.Investigation = NewInvestigationClient(c.config)
	c.Recommendation = NewRecommendationClient(c.config)
	c.RuleDraft = NewRuleDraftClient(c.config)
	c.StateSnapshot = NewStateSnapshotClient(c.config)
	c.ToolExecutionLog = NewToolExecutionLogClient(c.config)
	c.TransactionEmbedding = NewTransactionEmbeddingClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		AuditLog:             NewAuditLogClient(cfg),
		Evidence:             NewEvidenceClient(cfg),
		Insight:              NewInsightClient(cfg),
		Investigation:        NewInvestigationClient(cfg),
		Recommendation:       NewRecommendationClient(cfg),
		RuleDraft:            NewRuleDraftClient(cfg),
		StateSnapshot:        NewStateSnapshotClient(cfg),
		ToolExecutionLog:     NewToolExecutionLogClient(cfg),
		TransactionEmbedding: NewTransactionEmbeddingClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:                  ctx,
		config:               cfg,
		AuditLog:             NewAuditLogClient(cfg),
		Evidence:             NewEvidenceClient(cfg),
		Insight:              NewInsightClient(cfg),
		Investigation:        NewInvestigationClient(cfg),
		Recommendation:       NewRecommendationClient(cfg),
		RuleDraft:            NewRuleDraftClient(cfg),
		StateSnapshot:        NewStateSnapshotClient(cfg),
		ToolExecutionLog:     NewToolExecutionLogClient(cfg),
		TransactionEmbedding: NewTransactionEmbeddingClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AuditLog.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AuditLog, c.Evidence, c.Insight, c.Investigation, c.Recommendation,
		c.RuleDraft, c.StateSnapshot, c.ToolExecutionLog, c.TransactionEmbedding,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AuditLog, c.Evidence, c.Insight, c.Investigation, c.Recommendation,
		c.RuleDraft, c.StateSnapshot, c.ToolExecutionLog, c.TransactionEmbedding,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *EvidenceMutation:
		return c.Evidence.mutate(ctx, m)
	case *InsightMutation:
		return c.Insight.mutate(ctx, m)
	case *InvestigationMutation:
		return c.Investigation.mutate(ctx, m)
	case *RecommendationMutation:
		return c.Recommendation.mutate(ctx, m)
	case *RuleDraftMutation:
		return c.RuleDraft.mutate(ctx, m)
	case *StateSnapshotMutation:
		return c.StateSnapshot.mutate(ctx, m)
	case *ToolExecutionLogMutation:
		return c.ToolExecutionLog.mutate(ctx, m)
	case *TransactionEmbeddingMutation:
		return c.TransactionEmbedding.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AuditLogClient is a client for the AuditLog schema.
type AuditLogClient struct {
	config
}

// NewAuditLogClient returns a client for the AuditLog from the given config.
func NewAuditLogClient(c config) *AuditLogClient {
	return &AuditLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `auditlog.Hooks(f(g(h())))`.
func (c *AuditLogClient) Use(hooks ...Hook) {
	c.hooks.AuditLog = append(c.hooks.AuditLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `auditlog.Intercept(f(g(h())))`.
func (c *AuditLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.AuditLog = append(c.inters.AuditLog, interceptors...)
}

// Create returns a builder for creating a AuditLog entity.
func (c *AuditLogClient) Create() *AuditLogCreate {
	mutation := newAuditLogMutation(c.config, OpCreate)
	return &AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AuditLog entities.
func (c *AuditLogClient) CreateBulk(builders ...*AuditLogCreate) *AuditLogCreateBulk {
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AuditLogClient) MapCreateBulk(slice any, setFunc func(*AuditLogCreate, int)) *AuditLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AuditLogCreateBulk{err: fmt.Errorf("calling to AuditLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AuditLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AuditLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AuditLog.
func (c *AuditLogClient) Update() *AuditLogUpdate {
	mutation := newAuditLogMutation(c.config, OpUpdate)
	return &AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AuditLogClient) UpdateOne(_m *AuditLog) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLog(_m))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AuditLogClient) UpdateOneID(id string) *AuditLogUpdateOne {
	mutation := newAuditLogMutation(c.config, OpUpdateOne, withAuditLogID(id))
	return &AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AuditLog.
func (c *AuditLogClient) Delete() *AuditLogDelete {
	mutation := newAuditLogMutation(c.config, OpDelete)
	return &AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AuditLogClient) DeleteOne(_m *AuditLog) *AuditLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AuditLogClient) DeleteOneID(id string) *AuditLogDeleteOne {
	builder := c.Delete().Where(auditlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AuditLogDeleteOne{builder}
}

// Query returns a query builder for AuditLog.
func (c *AuditLogClient) Query() *AuditLogQuery {
	return &AuditLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAuditLog},
		inters: c.Interceptors(),
	}
}

// Get returns a AuditLog entity by its id.
func (c *AuditLogClient) Get(ctx context.Context, id string) (*AuditLog, error) {
	return c.Query().Where(auditlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AuditLogClient) GetX(ctx context.Context, id string) *AuditLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *AuditLogClient) Hooks() []Hook {
	return c.hooks.AuditLog
}

// Interceptors returns the client interceptors.
func (c *AuditLogClient) Interceptors() []Interceptor {
	return c.inters.AuditLog
}

func (c *AuditLogClient) mutate(ctx context.Context, m *AuditLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AuditLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AuditLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AuditLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AuditLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AuditLog mutation op: %q", m.Op())
	}
}

// EvidenceClient is a client for the Evidence schema.
type EvidenceClient struct {
	config
}

// NewEvidenceClient returns a client for the Evidence from the given config.
func NewEvidenceClient(c config) *EvidenceClient {
	return &EvidenceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `evidence.Hooks(f(g(h())))`.
func (c *EvidenceClient) Use(hooks ...Hook) {
	c.hooks.Evidence = append(c.hooks.Evidence, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `evidence.Intercept(f(g(h())))`.
func (c *EvidenceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Evidence = append(c.inters.Evidence, interceptors...)
}

// Create returns a builder for creating a Evidence entity.
func (c *EvidenceClient) Create() *EvidenceCreate {
	mutation := newEvidenceMutation(c.config, OpCreate)
	return &EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Evidence entities.
func (c *EvidenceClient) CreateBulk(builders ...*EvidenceCreate) *EvidenceCreateBulk {
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EvidenceClient) MapCreateBulk(slice any, setFunc func(*EvidenceCreate, int)) *EvidenceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EvidenceCreateBulk{err: fmt.Errorf("calling to EvidenceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EvidenceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EvidenceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Evidence.
func (c *EvidenceClient) Update() *EvidenceUpdate {
	mutation := newEvidenceMutation(c.config, OpUpdate)
	return &EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EvidenceClient) UpdateOne(_m *Evidence) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidence(_m))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EvidenceClient) UpdateOneID(id string) *EvidenceUpdateOne {
	mutation := newEvidenceMutation(c.config, OpUpdateOne, withEvidenceID(id))
	return &EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Evidence.
func (c *EvidenceClient) Delete() *EvidenceDelete {
	mutation := newEvidenceMutation(c.config, OpDelete)
	return &EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EvidenceClient) DeleteOne(_m *Evidence) *EvidenceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EvidenceClient) DeleteOneID(id string) *EvidenceDeleteOne {
	builder := c.Delete().Where(evidence.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EvidenceDeleteOne{builder}
}

// Query returns a query builder for Evidence.
func (c *EvidenceClient) Query() *EvidenceQuery {
	return &EvidenceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEvidence},
		inters: c.Interceptors(),
	}
}

// Get returns a Evidence entity by its id.
func (c *EvidenceClient) Get(ctx context.Context, id string) (*Evidence, error) {
	return c.Query().Where(evidence.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EvidenceClient) GetX(ctx context.Context, id string) *Evidence {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInsight queries the insight edge of a Evidence.
func (c *EvidenceClient) QueryInsight(_m *Evidence) *InsightQuery {
	query := (&InsightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(evidence.Table, evidence.FieldID, id),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, evidence.InsightTable, evidence.InsightColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EvidenceClient) Hooks() []Hook {
	return c.hooks.Evidence
}

// Interceptors returns the client interceptors.
func (c *EvidenceClient) Interceptors() []Interceptor {
	return c.inters.Evidence
}

func (c *EvidenceClient) mutate(ctx context.Context, m *EvidenceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EvidenceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EvidenceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EvidenceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EvidenceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Evidence mutation op: %q", m.Op())
	}
}

// InsightClient is a client for the Insight schema.
type InsightClient struct {
	config
}

// NewInsightClient returns a client for the Insight from the given config.
func NewInsightClient(c config) *InsightClient {
	return &InsightClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `insight.Hooks(f(g(h())))`.
func (c *InsightClient) Use(hooks ...Hook) {
	c.hooks.Insight = append(c.hooks.Insight, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `insight.Intercept(f(g(h())))`.
func (c *InsightClient) Intercept(interceptors ...Interceptor) {
	c.inters.Insight = append(c.inters.Insight, interceptors...)
}

// Create returns a builder for creating a Insight entity.
func (c *InsightClient) Create() *InsightCreate {
	mutation := newInsightMutation(c.config, OpCreate)
	return &InsightCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Insight entities.
func (c *InsightClient) CreateBulk(builders ...*InsightCreate) *InsightCreateBulk {
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InsightClient) MapCreateBulk(slice any, setFunc func(*InsightCreate, int)) *InsightCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InsightCreateBulk{err: fmt.Errorf("calling to InsightClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InsightCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InsightCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Insight.
func (c *InsightClient) Update() *InsightUpdate {
	mutation := newInsightMutation(c.config, OpUpdate)
	return &InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InsightClient) UpdateOne(_m *Insight) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsight(_m))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InsightClient) UpdateOneID(id string) *InsightUpdateOne {
	mutation := newInsightMutation(c.config, OpUpdateOne, withInsightID(id))
	return &InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Insight.
func (c *InsightClient) Delete() *InsightDelete {
	mutation := newInsightMutation(c.config, OpDelete)
	return &InsightDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InsightClient) DeleteOne(_m *Insight) *InsightDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InsightClient) DeleteOneID(id string) *InsightDeleteOne {
	builder := c.Delete().Where(insight.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InsightDeleteOne{builder}
}

// Query returns a query builder for Insight.
func (c *InsightClient) Query() *InsightQuery {
	return &InsightQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInsight},
		inters: c.Interceptors(),
	}
}

// Get returns a Insight entity by its id.
func (c *InsightClient) Get(ctx context.Context, id string) (*Insight, error) {
	return c.Query().Where(insight.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InsightClient) GetX(ctx context.Context, id string) *Insight {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvestigation queries the investigation edge of a Insight.
func (c *InsightClient) QueryInvestigation(_m *Insight) *InvestigationQuery {
	query := (&InvestigationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, id),
			sqlgraph.To(investigation.Table, investigation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, insight.InvestigationTable, insight.InvestigationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryEvidence queries the evidence edge of a Insight.
func (c *InsightClient) QueryEvidence(_m *Insight) *EvidenceQuery {
	query := (&EvidenceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, id),
			sqlgraph.To(evidence.Table, evidence.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insight.EvidenceTable, insight.EvidenceColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRecommendations queries the recommendations edge of a Insight.
func (c *InsightClient) QueryRecommendations(_m *Insight) *RecommendationQuery {
	query := (&RecommendationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(insight.Table, insight.FieldID, id),
			sqlgraph.To(recommendation.Table, recommendation.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, insight.RecommendationsTable, insight.RecommendationsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InsightClient) Hooks() []Hook {
	return c.hooks.Insight
}

// Interceptors returns the client interceptors.
func (c *InsightClient) Interceptors() []Interceptor {
	return c.inters.Insight
}

func (c *InsightClient) mutate(ctx context.Context, m *InsightMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InsightCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InsightUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InsightUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InsightDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Insight mutation op: %q", m.Op())
	}
}

// InvestigationClient is a client for the Investigation schema.
type InvestigationClient struct {
	config
}

// NewInvestigationClient returns a client for the Investigation from the given config.
func NewInvestigationClient(c config) *InvestigationClient {
	return &InvestigationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `investigation.Hooks(f(g(h())))`.
func (c *InvestigationClient) Use(hooks ...Hook) {
	c.hooks.Investigation = append(c.hooks.Investigation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `investigation.Intercept(f(g(h())))`.
func (c *InvestigationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Investigation = append(c.inters.Investigation, interceptors...)
}

// Create returns a builder for creating a Investigation entity.
func (c *InvestigationClient) Create() *InvestigationCreate {
	mutation := newInvestigationMutation(c.config, OpCreate)
	return &InvestigationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Investigation entities.
func (c *InvestigationClient) CreateBulk(builders ...*InvestigationCreate) *InvestigationCreateBulk {
	return &InvestigationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvestigationClient) MapCreateBulk(slice any, setFunc func(*InvestigationCreate, int)) *InvestigationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvestigationCreateBulk{err: fmt.Errorf("calling to InvestigationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvestigationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvestigationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Investigation.
func (c *InvestigationClient) Update() *InvestigationUpdate {
	mutation := newInvestigationMutation(c.config, OpUpdate)
	return &InvestigationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvestigationClient) UpdateOne(_m *Investigation) *InvestigationUpdateOne {
	mutation := newInvestigationMutation(c.config, OpUpdateOne, withInvestigation(_m))
	return &InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvestigationClient) UpdateOneID(id string) *InvestigationUpdateOne {
	mutation := newInvestigationMutation(c.config, OpUpdateOne, withInvestigationID(id))
	return &InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Investigation.
func (c *InvestigationClient) Delete() *InvestigationDelete {
	mutation := newInvestigationMutation(c.config, OpDelete)
	return &InvestigationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvestigationClient) DeleteOne(_m *Investigation) *InvestigationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvestigationClient) DeleteOneID(id string) *InvestigationDeleteOne {
	builder := c.Delete().Where(investigation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvestigationDeleteOne{builder}
}

// Query returns a query builder for Investigation.
func (c *InvestigationClient) Query() *InvestigationQuery {
	return &InvestigationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvestigation},
		inters: c.Interceptors(),
	}
}

// Get returns a Investigation entity by its id.
func (c *InvestigationClient) Get(ctx context.Context, id string) (*Investigation, error) {
	return c.Query().Where(investigation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvestigationClient) GetX(ctx context.Context, id string) *Investigation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryToolExecutions queries the tool_executions edge of a Investigation.
func (c *InvestigationClient) QueryToolExecutions(_m *Investigation) *ToolExecutionLogQuery {
	query := (&ToolExecutionLogClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, id),
			sqlgraph.To(toolexecutionlog.Table, toolexecutionlog.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.ToolExecutionsTable, investigation.ToolExecutionsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryInsights queries the insights edge of a Investigation.
func (c *InvestigationClient) QueryInsights(_m *Investigation) *InsightQuery {
	query := (&InsightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, id),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.InsightsTable, investigation.InsightsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuleDrafts queries the rule_drafts edge of a Investigation.
func (c *InvestigationClient) QueryRuleDrafts(_m *Investigation) *RuleDraftQuery {
	query := (&RuleDraftClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(investigation.Table, investigation.FieldID, id),
			sqlgraph.To(ruledraft.Table, ruledraft.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, investigation.RuleDraftsTable, investigation.RuleDraftsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *InvestigationClient) Hooks() []Hook {
	return c.hooks.Investigation
}

// Interceptors returns the client interceptors.
func (c *InvestigationClient) Interceptors() []Interceptor {
	return c.inters.Investigation
}

func (c *InvestigationClient) mutate(ctx context.Context, m *InvestigationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvestigationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvestigationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvestigationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvestigationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Investigation mutation op: %q", m.Op())
	}
}

// RecommendationClient is a client for the Recommendation schema.
type RecommendationClient struct {
	config
}

// NewRecommendationClient returns a client for the Recommendation from the given config.
func NewRecommendationClient(c config) *RecommendationClient {
	return &RecommendationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `recommendation.Hooks(f(g(h())))`.
func (c *RecommendationClient) Use(hooks ...Hook) {
	c.hooks.Recommendation = append(c.hooks.Recommendation, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `recommendation.Intercept(f(g(h())))`.
func (c *RecommendationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Recommendation = append(c.inters.Recommendation, interceptors...)
}

// Create returns a builder for creating a Recommendation entity.
func (c *RecommendationClient) Create() *RecommendationCreate {
	mutation := newRecommendationMutation(c.config, OpCreate)
	return &RecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Recommendation entities.
func (c *RecommendationClient) CreateBulk(builders ...*RecommendationCreate) *RecommendationCreateBulk {
	return &RecommendationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RecommendationClient) MapCreateBulk(slice any, setFunc func(*RecommendationCreate, int)) *RecommendationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RecommendationCreateBulk{err: fmt.Errorf("calling to RecommendationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RecommendationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RecommendationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Recommendation.
func (c *RecommendationClient) Update() *RecommendationUpdate {
	mutation := newRecommendationMutation(c.config, OpUpdate)
	return &RecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RecommendationClient) UpdateOne(_m *Recommendation) *RecommendationUpdateOne {
	mutation := newRecommendationMutation(c.config, OpUpdateOne, withRecommendation(_m))
	return &RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RecommendationClient) UpdateOneID(id string) *RecommendationUpdateOne {
	mutation := newRecommendationMutation(c.config, OpUpdateOne, withRecommendationID(id))
	return &RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Recommendation.
func (c *RecommendationClient) Delete() *RecommendationDelete {
	mutation := newRecommendationMutation(c.config, OpDelete)
	return &RecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RecommendationClient) DeleteOne(_m *Recommendation) *RecommendationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RecommendationClient) DeleteOneID(id string) *RecommendationDeleteOne {
	builder := c.Delete().Where(recommendation.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RecommendationDeleteOne{builder}
}

// Query returns a query builder for Recommendation.
func (c *RecommendationClient) Query() *RecommendationQuery {
	return &RecommendationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRecommendation},
		inters: c.Interceptors(),
	}
}

// Get returns a Recommendation entity by its id.
func (c *RecommendationClient) Get(ctx context.Context, id string) (*Recommendation, error) {
	return c.Query().Where(recommendation.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RecommendationClient) GetX(ctx context.Context, id string) *Recommendation {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInsight queries the insight edge of a Recommendation.
func (c *RecommendationClient) QueryInsight(_m *Recommendation) *InsightQuery {
	query := (&InsightClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(recommendation.Table, recommendation.FieldID, id),
			sqlgraph.To(insight.Table, insight.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recommendation.InsightTable, recommendation.InsightColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RecommendationClient) Hooks() []Hook {
	return c.hooks.Recommendation
}

// Interceptors returns the client interceptors.
func (c *RecommendationClient) Interceptors() []Interceptor {
	return c.inters.Recommendation
}

func (c *RecommendationClient) mutate(ctx context.Context, m *RecommendationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RecommendationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RecommendationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RecommendationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RecommendationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Recommendation mutation op: %q", m.Op())
	}
}

// RuleDraftClient is a client for the RuleDraft schema.
type RuleDraftClient struct {
	config
}

// NewRuleDraftClient returns a client for the RuleDraft from the given config.
func NewRuleDraftClient(c config) *RuleDraftClient {
	return &RuleDraftClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `ruledraft.Hooks(f(g(h())))`.
func (c *RuleDraftClient) Use(hooks ...Hook) {
	c.hooks.RuleDraft = append(c.hooks.RuleDraft, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `ruledraft.Intercept(f(g(h())))`.
func (c *RuleDraftClient) Intercept(interceptors ...Interceptor) {
	c.inters.RuleDraft = append(c.inters.RuleDraft, interceptors...)
}

// Create returns a builder for creating a RuleDraft entity.
func (c *RuleDraftClient) Create() *RuleDraftCreate {
	mutation := newRuleDraftMutation(c.config, OpCreate)
	return &RuleDraftCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RuleDraft entities.
func (c *RuleDraftClient) CreateBulk(builders ...*RuleDraftCreate) *RuleDraftCreateBulk {
	return &RuleDraftCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RuleDraftClient) MapCreateBulk(slice any, setFunc func(*RuleDraftCreate, int)) *RuleDraftCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RuleDraftCreateBulk{err: fmt.Errorf("calling to RuleDraftClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RuleDraftCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RuleDraftCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RuleDraft.
func (c *RuleDraftClient) Update() *RuleDraftUpdate {
	mutation := newRuleDraftMutation(c.config, OpUpdate)
	return &RuleDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RuleDraftClient) UpdateOne(_m *RuleDraft) *RuleDraftUpdateOne {
	mutation := newRuleDraftMutation(c.config, OpUpdateOne, withRuleDraft(_m))
	return &RuleDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RuleDraftClient) UpdateOneID(id string) *RuleDraftUpdateOne {
	mutation := newRuleDraftMutation(c.config, OpUpdateOne, withRuleDraftID(id))
	return &RuleDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RuleDraft.
func (c *RuleDraftClient) Delete() *RuleDraftDelete {
	mutation := newRuleDraftMutation(c.config, OpDelete)
	return &RuleDraftDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RuleDraftClient) DeleteOne(_m *RuleDraft) *RuleDraftDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RuleDraftClient) DeleteOneID(id string) *RuleDraftDeleteOne {
	builder := c.Delete().Where(ruledraft.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RuleDraftDeleteOne{builder}
}

// Query returns a query builder for RuleDraft.
func (c *RuleDraftClient) Query() *RuleDraftQuery {
	return &RuleDraftQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRuleDraft},
		inters: c.Interceptors(),
	}
}

// Get returns a RuleDraft entity by its id.
func (c *RuleDraftClient) Get(ctx context.Context, id string) (*RuleDraft, error) {
	return c.Query().Where(ruledraft.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RuleDraftClient) GetX(ctx context.Context, id string) *RuleDraft {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvestigation queries the investigation edge of a RuleDraft.
func (c *RuleDraftClient) QueryInvestigation(_m *RuleDraft) *InvestigationQuery {
	query := (&InvestigationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(ruledraft.Table, ruledraft.FieldID, id),
			sqlgraph.To(investigation.Table, investigation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ruledraft.InvestigationTable, ruledraft.InvestigationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RuleDraftClient) Hooks() []Hook {
	return c.hooks.RuleDraft
}

// Interceptors returns the client interceptors.
func (c *RuleDraftClient) Interceptors() []Interceptor {
	return c.inters.RuleDraft
}

func (c *RuleDraftClient) mutate(ctx context.Context, m *RuleDraftMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RuleDraftCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RuleDraftUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RuleDraftUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RuleDraftDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RuleDraft mutation op: %q", m.Op())
	}
}

// StateSnapshotClient is a client for the StateSnapshot schema.
type StateSnapshotClient struct {
	config
}

// NewStateSnapshotClient returns a client for the StateSnapshot from the given config.
func NewStateSnapshotClient(c config) *StateSnapshotClient {
	return &StateSnapshotClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `statesnapshot.Hooks(f(g(h())))`.
func (c *StateSnapshotClient) Use(hooks ...Hook) {
	c.hooks.StateSnapshot = append(c.hooks.StateSnapshot, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `statesnapshot.Intercept(f(g(h())))`.
func (c *StateSnapshotClient) Intercept(interceptors ...Interceptor) {
	c.inters.StateSnapshot = append(c.inters.StateSnapshot, interceptors...)
}

// Create returns a builder for creating a StateSnapshot entity.
func (c *StateSnapshotClient) Create() *StateSnapshotCreate {
	mutation := newStateSnapshotMutation(c.config, OpCreate)
	return &StateSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of StateSnapshot entities.
func (c *StateSnapshotClient) CreateBulk(builders ...*StateSnapshotCreate) *StateSnapshotCreateBulk {
	return &StateSnapshotCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *StateSnapshotClient) MapCreateBulk(slice any, setFunc func(*StateSnapshotCreate, int)) *StateSnapshotCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &StateSnapshotCreateBulk{err: fmt.Errorf("calling to StateSnapshotClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*StateSnapshotCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &StateSnapshotCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for StateSnapshot.
func (c *StateSnapshotClient) Update() *StateSnapshotUpdate {
	mutation := newStateSnapshotMutation(c.config, OpUpdate)
	return &StateSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *StateSnapshotClient) UpdateOne(_m *StateSnapshot) *StateSnapshotUpdateOne {
	mutation := newStateSnapshotMutation(c.config, OpUpdateOne, withStateSnapshot(_m))
	return &StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *StateSnapshotClient) UpdateOneID(id string) *StateSnapshotUpdateOne {
	mutation := newStateSnapshotMutation(c.config, OpUpdateOne, withStateSnapshotID(id))
	return &StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for StateSnapshot.
func (c *StateSnapshotClient) Delete() *StateSnapshotDelete {
	mutation := newStateSnapshotMutation(c.config, OpDelete)
	return &StateSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *StateSnapshotClient) DeleteOne(_m *StateSnapshot) *StateSnapshotDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *StateSnapshotClient) DeleteOneID(id string) *StateSnapshotDeleteOne {
	builder := c.Delete().Where(statesnapshot.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &StateSnapshotDeleteOne{builder}
}

// Query returns a query builder for StateSnapshot.
func (c *StateSnapshotClient) Query() *StateSnapshotQuery {
	return &StateSnapshotQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeStateSnapshot},
		inters: c.Interceptors(),
	}
}

// Get returns a StateSnapshot entity by its id.
func (c *StateSnapshotClient) Get(ctx context.Context, id string) (*StateSnapshot, error) {
	return c.Query().Where(statesnapshot.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *StateSnapshotClient) GetX(ctx context.Context, id string) *StateSnapshot {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *StateSnapshotClient) Hooks() []Hook {
	return c.hooks.StateSnapshot
}

// Interceptors returns the client interceptors.
func (c *StateSnapshotClient) Interceptors() []Interceptor {
	return c.inters.StateSnapshot
}

func (c *StateSnapshotClient) mutate(ctx context.Context, m *StateSnapshotMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&StateSnapshotCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&StateSnapshotUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&StateSnapshotUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&StateSnapshotDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown StateSnapshot mutation op: %q", m.Op())
	}
}

// ToolExecutionLogClient is a client for the ToolExecutionLog schema.
type ToolExecutionLogClient struct {
	config
}

// NewToolExecutionLogClient returns a client for the ToolExecutionLog from the given config.
func NewToolExecutionLogClient(c config) *ToolExecutionLogClient {
	return &ToolExecutionLogClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `toolexecutionlog.Hooks(f(g(h())))`.
func (c *ToolExecutionLogClient) Use(hooks ...Hook) {
	c.hooks.ToolExecutionLog = append(c.hooks.ToolExecutionLog, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `toolexecutionlog.Intercept(f(g(h())))`.
func (c *ToolExecutionLogClient) Intercept(interceptors ...Interceptor) {
	c.inters.ToolExecutionLog = append(c.inters.ToolExecutionLog, interceptors...)
}

// Create returns a builder for creating a ToolExecutionLog entity.
func (c *ToolExecutionLogClient) Create() *ToolExecutionLogCreate {
	mutation := newToolExecutionLogMutation(c.config, OpCreate)
	return &ToolExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ToolExecutionLog entities.
func (c *ToolExecutionLogClient) CreateBulk(builders ...*ToolExecutionLogCreate) *ToolExecutionLogCreateBulk {
	return &ToolExecutionLogCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ToolExecutionLogClient) MapCreateBulk(slice any, setFunc func(*ToolExecutionLogCreate, int)) *ToolExecutionLogCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ToolExecutionLogCreateBulk{err: fmt.Errorf("calling to ToolExecutionLogClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ToolExecutionLogCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ToolExecutionLogCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ToolExecutionLog.
func (c *ToolExecutionLogClient) Update() *ToolExecutionLogUpdate {
	mutation := newToolExecutionLogMutation(c.config, OpUpdate)
	return &ToolExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ToolExecutionLogClient) UpdateOne(_m *ToolExecutionLog) *ToolExecutionLogUpdateOne {
	mutation := newToolExecutionLogMutation(c.config, OpUpdateOne, withToolExecutionLog(_m))
	return &ToolExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ToolExecutionLogClient) UpdateOneID(id string) *ToolExecutionLogUpdateOne {
	mutation := newToolExecutionLogMutation(c.config, OpUpdateOne, withToolExecutionLogID(id))
	return &ToolExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ToolExecutionLog.
func (c *ToolExecutionLogClient) Delete() *ToolExecutionLogDelete {
	mutation := newToolExecutionLogMutation(c.config, OpDelete)
	return &ToolExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ToolExecutionLogClient) DeleteOne(_m *ToolExecutionLog) *ToolExecutionLogDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ToolExecutionLogClient) DeleteOneID(id string) *ToolExecutionLogDeleteOne {
	builder := c.Delete().Where(toolexecutionlog.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ToolExecutionLogDeleteOne{builder}
}

// Query returns a query builder for ToolExecutionLog.
func (c *ToolExecutionLogClient) Query() *ToolExecutionLogQuery {
	return &ToolExecutionLogQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeToolExecutionLog},
		inters: c.Interceptors(),
	}
}

// Get returns a ToolExecutionLog entity by its id.
func (c *ToolExecutionLogClient) Get(ctx context.Context, id string) (*ToolExecutionLog, error) {
	return c.Query().Where(toolexecutionlog.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ToolExecutionLogClient) GetX(ctx context.Context, id string) *ToolExecutionLog {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryInvestigation queries the investigation edge of a ToolExecutionLog.
func (c *ToolExecutionLogClient) QueryInvestigation(_m *ToolExecutionLog) *InvestigationQuery {
	query := (&InvestigationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(toolexecutionlog.Table, toolexecutionlog.FieldID, id),
			sqlgraph.To(investigation.Table, investigation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, toolexecutionlog.InvestigationTable, toolexecutionlog.InvestigationColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ToolExecutionLogClient) Hooks() []Hook {
	return c.hooks.ToolExecutionLog
}

// Interceptors returns the client interceptors.
func (c *ToolExecutionLogClient) Interceptors() []Interceptor {
	return c.inters.ToolExecutionLog
}

func (c *ToolExecutionLogClient) mutate(ctx context.Context, m *ToolExecutionLogMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ToolExecutionLogCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ToolExecutionLogUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ToolExecutionLogUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ToolExecutionLogDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ToolExecutionLog mutation op: %q", m.Op())
	}
}

// TransactionEmbeddingClient is a client for the TransactionEmbedding schema.
type TransactionEmbeddingClient struct {
	config
}

// NewTransactionEmbeddingClient returns a client for the TransactionEmbedding from the given config.
func NewTransactionEmbeddingClient(c config) *TransactionEmbeddingClient {
	return &TransactionEmbeddingClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `transactionembedding.Hooks(f(g(h())))`.
func (c *TransactionEmbeddingClient) Use(hooks ...Hook) {
	c.hooks.TransactionEmbedding = append(c.hooks.TransactionEmbedding, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `transactionembedding.Intercept(f(g(h())))`.
func (c *TransactionEmbeddingClient) Intercept(interceptors ...Interceptor) {
	c.inters.TransactionEmbedding = append(c.inters.TransactionEmbedding, interceptors...)
}

// Create returns a builder for creating a TransactionEmbedding entity.
func (c *TransactionEmbeddingClient) Create() *TransactionEmbeddingCreate {
	mutation := newTransactionEmbeddingMutation(c.config, OpCreate)
	return &TransactionEmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of TransactionEmbedding entities.
func (c *TransactionEmbeddingClient) CreateBulk(builders ...*TransactionEmbeddingCreate) *TransactionEmbeddingCreateBulk {
	return &TransactionEmbeddingCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TransactionEmbeddingClient) MapCreateBulk(slice any, setFunc func(*TransactionEmbeddingCreate, int)) *TransactionEmbeddingCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TransactionEmbeddingCreateBulk{err: fmt.Errorf("calling to TransactionEmbeddingClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TransactionEmbeddingCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TransactionEmbeddingCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for TransactionEmbedding.
func (c *TransactionEmbeddingClient) Update() *TransactionEmbeddingUpdate {
	mutation := newTransactionEmbeddingMutation(c.config, OpUpdate)
	return &TransactionEmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TransactionEmbeddingClient) UpdateOne(_m *TransactionEmbedding) *TransactionEmbeddingUpdateOne {
	mutation := newTransactionEmbeddingMutation(c.config, OpUpdateOne, withTransactionEmbedding(_m))
	return &TransactionEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TransactionEmbeddingClient) UpdateOneID(id string) *TransactionEmbeddingUpdateOne {
	mutation := newTransactionEmbeddingMutation(c.config, OpUpdateOne, withTransactionEmbeddingID(id))
	return &TransactionEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for TransactionEmbedding.
func (c *TransactionEmbeddingClient) Delete() *TransactionEmbeddingDelete {
	mutation := newTransactionEmbeddingMutation(c.config, OpDelete)
	return &TransactionEmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TransactionEmbeddingClient) DeleteOne(_m *TransactionEmbedding) *TransactionEmbeddingDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TransactionEmbeddingClient) DeleteOneID(id string) *TransactionEmbeddingDeleteOne {
	builder := c.Delete().Where(transactionembedding.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TransactionEmbeddingDeleteOne{builder}
}

// Query returns a query builder for TransactionEmbedding.
func (c *TransactionEmbeddingClient) Query() *TransactionEmbeddingQuery {
	return &TransactionEmbeddingQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTransactionEmbedding},
		inters: c.Interceptors(),
	}
}

// Get returns a TransactionEmbedding entity by its id.
func (c *TransactionEmbeddingClient) Get(ctx context.Context, id string) (*TransactionEmbedding, error) {
	return c.Query().Where(transactionembedding.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TransactionEmbeddingClient) GetX(ctx context.Context, id string) *TransactionEmbedding {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *TransactionEmbeddingClient) Hooks() []Hook {
	return c.hooks.TransactionEmbedding
}

// Interceptors returns the client interceptors.
func (c *TransactionEmbeddingClient) Interceptors() []Interceptor {
	return c.inters.TransactionEmbedding
}

func (c *TransactionEmbeddingClient) mutate(ctx context.Context, m *TransactionEmbeddingMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TransactionEmbeddingCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TransactionEmbeddingUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TransactionEmbeddingUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TransactionEmbeddingDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown TransactionEmbedding mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AuditLog, Evidence, Insight, Investigation, Recommendation, RuleDraft,
		StateSnapshot, ToolExecutionLog, TransactionEmbedding []ent.Hook
	}
	inters struct {
		AuditLog, Evidence, Insight, Investigation, Recommendation, RuleDraft,
		StateSnapshot, ToolExecutionLog, TransactionEmbedding []ent.Interceptor
	}
)

// ExecContext allows calling the underlying ExecContext method of the driver if it is supported by it.
// See, database/sql#DB.ExecContext for more information.
func (c *config) ExecContext(ctx context.Context, query string, args ...any) (stdsql.Result, error) {
	ex, ok := c.driver.(interface {
		ExecContext(context.Context, string, ...any) (stdsql.Result, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.ExecContext is not supported")
	}
	return ex.ExecContext(ctx, query, args...)
}

// QueryContext allows calling the underlying QueryContext method of the driver if it is supported by it.
// See, database/sql#DB.QueryContext for more information.
func (c *config) QueryContext(ctx context.Context, query string, args ...any) (*stdsql.Rows, error) {
	q, ok := c.driver.(interface {
		QueryContext(context.Context, string, ...any) (*stdsql.Rows, error)
	})
	if !ok {
		return nil, fmt.Errorf("Driver.QueryContext is not supported")
	}
	return q.QueryContext(ctx, query, args...)
}
