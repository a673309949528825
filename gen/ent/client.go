// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/fiscaldata/nf-extractor/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/fiscaldata/nf-extractor/gen/ent/extractbatch"
	"github.com/fiscaldata/nf-extractor/gen/ent/fiscalrecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractBatch is the client for interacting with the ExtractBatch builders.
	ExtractBatch *ExtractBatchClient
	// FiscalRecord is the client for interacting with the FiscalRecord builders.
	FiscalRecord *FiscalRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractBatch = NewExtractBatchClient(c.config)
	c.FiscalRecord = NewFiscalRecordClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ExtractBatch: NewExtractBatchClient(cfg),
		FiscalRecord: NewFiscalRecordClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ExtractBatch: NewExtractBatchClient(cfg),
		FiscalRecord: NewFiscalRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractBatch.
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
	c.ExtractBatch.Use(hooks...)
	c.FiscalRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractBatch.Intercept(interceptors...)
	c.FiscalRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractBatchMutation:
		return c.ExtractBatch.mutate(ctx, m)
	case *FiscalRecordMutation:
		return c.FiscalRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractBatchClient is a client for the ExtractBatch schema.
type ExtractBatchClient struct {
	config
}

// NewExtractBatchClient returns a client for the ExtractBatch from the given config.
func NewExtractBatchClient(c config) *ExtractBatchClient {
	return &ExtractBatchClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractbatch.Hooks(f(g(h())))`.
func (c *ExtractBatchClient) Use(hooks ...Hook) {
	c.hooks.ExtractBatch = append(c.hooks.ExtractBatch, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractbatch.Intercept(f(g(h())))`.
func (c *ExtractBatchClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractBatch = append(c.inters.ExtractBatch, interceptors...)
}

// Create returns a builder for creating a ExtractBatch entity.
func (c *ExtractBatchClient) Create() *ExtractBatchCreate {
	mutation := newExtractBatchMutation(c.config, OpCreate)
	return &ExtractBatchCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractBatch entities.
func (c *ExtractBatchClient) CreateBulk(builders ...*ExtractBatchCreate) *ExtractBatchCreateBulk {
	return &ExtractBatchCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractBatchClient) MapCreateBulk(slice any, setFunc func(*ExtractBatchCreate, int)) *ExtractBatchCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractBatchCreateBulk{err: fmt.Errorf("calling to ExtractBatchClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractBatchCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractBatchCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractBatch.
func (c *ExtractBatchClient) Update() *ExtractBatchUpdate {
	mutation := newExtractBatchMutation(c.config, OpUpdate)
	return &ExtractBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractBatchClient) UpdateOne(_m *ExtractBatch) *ExtractBatchUpdateOne {
	mutation := newExtractBatchMutation(c.config, OpUpdateOne, withExtractBatch(_m))
	return &ExtractBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractBatchClient) UpdateOneID(id uuid.UUID) *ExtractBatchUpdateOne {
	mutation := newExtractBatchMutation(c.config, OpUpdateOne, withExtractBatchID(id))
	return &ExtractBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractBatch.
func (c *ExtractBatchClient) Delete() *ExtractBatchDelete {
	mutation := newExtractBatchMutation(c.config, OpDelete)
	return &ExtractBatchDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractBatchClient) DeleteOne(_m *ExtractBatch) *ExtractBatchDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractBatchClient) DeleteOneID(id uuid.UUID) *ExtractBatchDeleteOne {
	builder := c.Delete().Where(extractbatch.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractBatchDeleteOne{builder}
}

// Query returns a query builder for ExtractBatch.
func (c *ExtractBatchClient) Query() *ExtractBatchQuery {
	return &ExtractBatchQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractBatch},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractBatch entity by its id.
func (c *ExtractBatchClient) Get(ctx context.Context, id uuid.UUID) (*ExtractBatch, error) {
	return c.Query().Where(extractbatch.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractBatchClient) GetX(ctx context.Context, id uuid.UUID) *ExtractBatch {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecords queries the records edge of a ExtractBatch.
func (c *ExtractBatchClient) QueryRecords(_m *ExtractBatch) *FiscalRecordQuery {
	query := (&FiscalRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractbatch.Table, extractbatch.FieldID, id),
			sqlgraph.To(fiscalrecord.Table, fiscalrecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, extractbatch.RecordsTable, extractbatch.RecordsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractBatchClient) Hooks() []Hook {
	return c.hooks.ExtractBatch
}

// Interceptors returns the client interceptors.
func (c *ExtractBatchClient) Interceptors() []Interceptor {
	return c.inters.ExtractBatch
}

func (c *ExtractBatchClient) mutate(ctx context.Context, m *ExtractBatchMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractBatchCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractBatchUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractBatchUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractBatchDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractBatch mutation op: %q", m.Op())
	}
}

// FiscalRecordClient is a client for the FiscalRecord schema.
type FiscalRecordClient struct {
	config
}

// NewFiscalRecordClient returns a client for the FiscalRecord from the given config.
func NewFiscalRecordClient(c config) *FiscalRecordClient {
	return &FiscalRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `fiscalrecord.Hooks(f(g(h())))`.
func (c *FiscalRecordClient) Use(hooks ...Hook) {
	c.hooks.FiscalRecord = append(c.hooks.FiscalRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `fiscalrecord.Intercept(f(g(h())))`.
func (c *FiscalRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FiscalRecord = append(c.inters.FiscalRecord, interceptors...)
}

// Create returns a builder for creating a FiscalRecord entity.
func (c *FiscalRecordClient) Create() *FiscalRecordCreate {
	mutation := newFiscalRecordMutation(c.config, OpCreate)
	return &FiscalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FiscalRecord entities.
func (c *FiscalRecordClient) CreateBulk(builders ...*FiscalRecordCreate) *FiscalRecordCreateBulk {
	return &FiscalRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FiscalRecordClient) MapCreateBulk(slice any, setFunc func(*FiscalRecordCreate, int)) *FiscalRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FiscalRecordCreateBulk{err: fmt.Errorf("calling to FiscalRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FiscalRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FiscalRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FiscalRecord.
func (c *FiscalRecordClient) Update() *FiscalRecordUpdate {
	mutation := newFiscalRecordMutation(c.config, OpUpdate)
	return &FiscalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FiscalRecordClient) UpdateOne(_m *FiscalRecord) *FiscalRecordUpdateOne {
	mutation := newFiscalRecordMutation(c.config, OpUpdateOne, withFiscalRecord(_m))
	return &FiscalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FiscalRecordClient) UpdateOneID(id uuid.UUID) *FiscalRecordUpdateOne {
	mutation := newFiscalRecordMutation(c.config, OpUpdateOne, withFiscalRecordID(id))
	return &FiscalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FiscalRecord.
func (c *FiscalRecordClient) Delete() *FiscalRecordDelete {
	mutation := newFiscalRecordMutation(c.config, OpDelete)
	return &FiscalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FiscalRecordClient) DeleteOne(_m *FiscalRecord) *FiscalRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FiscalRecordClient) DeleteOneID(id uuid.UUID) *FiscalRecordDeleteOne {
	builder := c.Delete().Where(fiscalrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FiscalRecordDeleteOne{builder}
}

// Query returns a query builder for FiscalRecord.
func (c *FiscalRecordClient) Query() *FiscalRecordQuery {
	return &FiscalRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFiscalRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FiscalRecord entity by its id.
func (c *FiscalRecordClient) Get(ctx context.Context, id uuid.UUID) (*FiscalRecord, error) {
	return c.Query().Where(fiscalrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FiscalRecordClient) GetX(ctx context.Context, id uuid.UUID) *FiscalRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryBatch queries the batch edge of a FiscalRecord.
func (c *FiscalRecordClient) QueryBatch(_m *FiscalRecord) *ExtractBatchQuery {
	query := (&ExtractBatchClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(fiscalrecord.Table, fiscalrecord.FieldID, id),
			sqlgraph.To(extractbatch.Table, extractbatch.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, fiscalrecord.BatchTable, fiscalrecord.BatchColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FiscalRecordClient) Hooks() []Hook {
	return c.hooks.FiscalRecord
}

// Interceptors returns the client interceptors.
func (c *FiscalRecordClient) Interceptors() []Interceptor {
	return c.inters.FiscalRecord
}

func (c *FiscalRecordClient) mutate(ctx context.Context, m *FiscalRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FiscalRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FiscalRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FiscalRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FiscalRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FiscalRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractBatch, FiscalRecord []ent.Hook
	}
	inters struct {
		ExtractBatch, FiscalRecord []ent.Interceptor
	}
)
