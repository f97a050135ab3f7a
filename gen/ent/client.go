// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/chartpull/clinical-features/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/chartpull/clinical-features/gen/ent/checkpoint"
	"github.com/chartpull/clinical-features/gen/ent/cohort"
	"github.com/chartpull/clinical-features/gen/ent/featurerecord"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Checkpoint is the client for interacting with the Checkpoint builders.
	Checkpoint *CheckpointClient
	// Cohort is the client for interacting with the Cohort builders.
	Cohort *CohortClient
	// FeatureRecord is the client for interacting with the FeatureRecord builders.
	FeatureRecord *FeatureRecordClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Checkpoint = NewCheckpointClient(c.config)
	c.Cohort = NewCohortClient(c.config)
	c.FeatureRecord = NewFeatureRecordClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Checkpoint:    NewCheckpointClient(cfg),
		Cohort:        NewCohortClient(cfg),
		FeatureRecord: NewFeatureRecordClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Checkpoint:    NewCheckpointClient(cfg),
		Cohort:        NewCohortClient(cfg),
		FeatureRecord: NewFeatureRecordClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Checkpoint.
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
	c.Checkpoint.Use(hooks...)
	c.Cohort.Use(hooks...)
	c.FeatureRecord.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.Checkpoint.Intercept(interceptors...)
	c.Cohort.Intercept(interceptors...)
	c.FeatureRecord.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CheckpointMutation:
		return c.Checkpoint.mutate(ctx, m)
	case *CohortMutation:
		return c.Cohort.mutate(ctx, m)
	case *FeatureRecordMutation:
		return c.FeatureRecord.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CheckpointClient is a client for the Checkpoint schema.
type CheckpointClient struct {
	config
}

// NewCheckpointClient returns a client for the Checkpoint from the given config.
func NewCheckpointClient(c config) *CheckpointClient {
	return &CheckpointClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `checkpoint.Hooks(f(g(h())))`.
func (c *CheckpointClient) Use(hooks ...Hook) {
	c.hooks.Checkpoint = append(c.hooks.Checkpoint, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `checkpoint.Intercept(f(g(h())))`.
func (c *CheckpointClient) Intercept(interceptors ...Interceptor) {
	c.inters.Checkpoint = append(c.inters.Checkpoint, interceptors...)
}

// Create returns a builder for creating a Checkpoint entity.
func (c *CheckpointClient) Create() *CheckpointCreate {
	mutation := newCheckpointMutation(c.config, OpCreate)
	return &CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Checkpoint entities.
func (c *CheckpointClient) CreateBulk(builders ...*CheckpointCreate) *CheckpointCreateBulk {
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CheckpointClient) MapCreateBulk(slice any, setFunc func(*CheckpointCreate, int)) *CheckpointCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CheckpointCreateBulk{err: fmt.Errorf("calling to CheckpointClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CheckpointCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CheckpointCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Checkpoint.
func (c *CheckpointClient) Update() *CheckpointUpdate {
	mutation := newCheckpointMutation(c.config, OpUpdate)
	return &CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CheckpointClient) UpdateOne(_m *Checkpoint) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpoint(_m))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CheckpointClient) UpdateOneID(id uuid.UUID) *CheckpointUpdateOne {
	mutation := newCheckpointMutation(c.config, OpUpdateOne, withCheckpointID(id))
	return &CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Checkpoint.
func (c *CheckpointClient) Delete() *CheckpointDelete {
	mutation := newCheckpointMutation(c.config, OpDelete)
	return &CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CheckpointClient) DeleteOne(_m *Checkpoint) *CheckpointDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CheckpointClient) DeleteOneID(id uuid.UUID) *CheckpointDeleteOne {
	builder := c.Delete().Where(checkpoint.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CheckpointDeleteOne{builder}
}

// Query returns a query builder for Checkpoint.
func (c *CheckpointClient) Query() *CheckpointQuery {
	return &CheckpointQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCheckpoint},
		inters: c.Interceptors(),
	}
}

// Get returns a Checkpoint entity by its id.
func (c *CheckpointClient) Get(ctx context.Context, id uuid.UUID) (*Checkpoint, error) {
	return c.Query().Where(checkpoint.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CheckpointClient) GetX(ctx context.Context, id uuid.UUID) *Checkpoint {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCohort queries the cohort edge of a Checkpoint.
func (c *CheckpointClient) QueryCohort(_m *Checkpoint) *CohortQuery {
	query := (&CohortClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(checkpoint.Table, checkpoint.FieldID, id),
			sqlgraph.To(cohort.Table, cohort.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, checkpoint.CohortTable, checkpoint.CohortColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CheckpointClient) Hooks() []Hook {
	return c.hooks.Checkpoint
}

// Interceptors returns the client interceptors.
func (c *CheckpointClient) Interceptors() []Interceptor {
	return c.inters.Checkpoint
}

func (c *CheckpointClient) mutate(ctx context.Context, m *CheckpointMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CheckpointCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CheckpointUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CheckpointUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CheckpointDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Checkpoint mutation op: %q", m.Op())
	}
}

// CohortClient is a client for the Cohort schema.
type CohortClient struct {
	config
}

// NewCohortClient returns a client for the Cohort from the given config.
func NewCohortClient(c config) *CohortClient {
	return &CohortClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `cohort.Hooks(f(g(h())))`.
func (c *CohortClient) Use(hooks ...Hook) {
	c.hooks.Cohort = append(c.hooks.Cohort, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `cohort.Intercept(f(g(h())))`.
func (c *CohortClient) Intercept(interceptors ...Interceptor) {
	c.inters.Cohort = append(c.inters.Cohort, interceptors...)
}

// Create returns a builder for creating a Cohort entity.
func (c *CohortClient) Create() *CohortCreate {
	mutation := newCohortMutation(c.config, OpCreate)
	return &CohortCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Cohort entities.
func (c *CohortClient) CreateBulk(builders ...*CohortCreate) *CohortCreateBulk {
	return &CohortCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CohortClient) MapCreateBulk(slice any, setFunc func(*CohortCreate, int)) *CohortCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CohortCreateBulk{err: fmt.Errorf("calling to CohortClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CohortCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CohortCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Cohort.
func (c *CohortClient) Update() *CohortUpdate {
	mutation := newCohortMutation(c.config, OpUpdate)
	return &CohortUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CohortClient) UpdateOne(_m *Cohort) *CohortUpdateOne {
	mutation := newCohortMutation(c.config, OpUpdateOne, withCohort(_m))
	return &CohortUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CohortClient) UpdateOneID(id uuid.UUID) *CohortUpdateOne {
	mutation := newCohortMutation(c.config, OpUpdateOne, withCohortID(id))
	return &CohortUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Cohort.
func (c *CohortClient) Delete() *CohortDelete {
	mutation := newCohortMutation(c.config, OpDelete)
	return &CohortDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CohortClient) DeleteOne(_m *Cohort) *CohortDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CohortClient) DeleteOneID(id uuid.UUID) *CohortDeleteOne {
	builder := c.Delete().Where(cohort.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CohortDeleteOne{builder}
}

// Query returns a query builder for Cohort.
func (c *CohortClient) Query() *CohortQuery {
	return &CohortQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCohort},
		inters: c.Interceptors(),
	}
}

// Get returns a Cohort entity by its id.
func (c *CohortClient) Get(ctx context.Context, id uuid.UUID) (*Cohort, error) {
	return c.Query().Where(cohort.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CohortClient) GetX(ctx context.Context, id uuid.UUID) *Cohort {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFeatures queries the features edge of a Cohort.
func (c *CohortClient) QueryFeatures(_m *Cohort) *FeatureRecordQuery {
	query := (&FeatureRecordClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cohort.Table, cohort.FieldID, id),
			sqlgraph.To(featurerecord.Table, featurerecord.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cohort.FeaturesTable, cohort.FeaturesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCheckpoints queries the checkpoints edge of a Cohort.
func (c *CohortClient) QueryCheckpoints(_m *Cohort) *CheckpointQuery {
	query := (&CheckpointClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(cohort.Table, cohort.FieldID, id),
			sqlgraph.To(checkpoint.Table, checkpoint.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, cohort.CheckpointsTable, cohort.CheckpointsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CohortClient) Hooks() []Hook {
	return c.hooks.Cohort
}

// Interceptors returns the client interceptors.
func (c *CohortClient) Interceptors() []Interceptor {
	return c.inters.Cohort
}

func (c *CohortClient) mutate(ctx context.Context, m *CohortMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CohortCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CohortUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CohortUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CohortDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Cohort mutation op: %q", m.Op())
	}
}

// FeatureRecordClient is a client for the FeatureRecord schema.
type FeatureRecordClient struct {
	config
}

// NewFeatureRecordClient returns a client for the FeatureRecord from the given config.
func NewFeatureRecordClient(c config) *FeatureRecordClient {
	return &FeatureRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `featurerecord.Hooks(f(g(h())))`.
func (c *FeatureRecordClient) Use(hooks ...Hook) {
	c.hooks.FeatureRecord = append(c.hooks.FeatureRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `featurerecord.Intercept(f(g(h())))`.
func (c *FeatureRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.FeatureRecord = append(c.inters.FeatureRecord, interceptors...)
}

// Create returns a builder for creating a FeatureRecord entity.
func (c *FeatureRecordClient) Create() *FeatureRecordCreate {
	mutation := newFeatureRecordMutation(c.config, OpCreate)
	return &FeatureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FeatureRecord entities.
func (c *FeatureRecordClient) CreateBulk(builders ...*FeatureRecordCreate) *FeatureRecordCreateBulk {
	return &FeatureRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FeatureRecordClient) MapCreateBulk(slice any, setFunc func(*FeatureRecordCreate, int)) *FeatureRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FeatureRecordCreateBulk{err: fmt.Errorf("calling to FeatureRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FeatureRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FeatureRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FeatureRecord.
func (c *FeatureRecordClient) Update() *FeatureRecordUpdate {
	mutation := newFeatureRecordMutation(c.config, OpUpdate)
	return &FeatureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FeatureRecordClient) UpdateOne(_m *FeatureRecord) *FeatureRecordUpdateOne {
	mutation := newFeatureRecordMutation(c.config, OpUpdateOne, withFeatureRecord(_m))
	return &FeatureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FeatureRecordClient) UpdateOneID(id uuid.UUID) *FeatureRecordUpdateOne {
	mutation := newFeatureRecordMutation(c.config, OpUpdateOne, withFeatureRecordID(id))
	return &FeatureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FeatureRecord.
func (c *FeatureRecordClient) Delete() *FeatureRecordDelete {
	mutation := newFeatureRecordMutation(c.config, OpDelete)
	return &FeatureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FeatureRecordClient) DeleteOne(_m *FeatureRecord) *FeatureRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FeatureRecordClient) DeleteOneID(id uuid.UUID) *FeatureRecordDeleteOne {
	builder := c.Delete().Where(featurerecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FeatureRecordDeleteOne{builder}
}

// Query returns a query builder for FeatureRecord.
func (c *FeatureRecordClient) Query() *FeatureRecordQuery {
	return &FeatureRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFeatureRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a FeatureRecord entity by its id.
func (c *FeatureRecordClient) Get(ctx context.Context, id uuid.UUID) (*FeatureRecord, error) {
	return c.Query().Where(featurerecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FeatureRecordClient) GetX(ctx context.Context, id uuid.UUID) *FeatureRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCohort queries the cohort edge of a FeatureRecord.
func (c *FeatureRecordClient) QueryCohort(_m *FeatureRecord) *CohortQuery {
	query := (&CohortClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(featurerecord.Table, featurerecord.FieldID, id),
			sqlgraph.To(cohort.Table, cohort.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, featurerecord.CohortTable, featurerecord.CohortColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FeatureRecordClient) Hooks() []Hook {
	return c.hooks.FeatureRecord
}

// Interceptors returns the client interceptors.
func (c *FeatureRecordClient) Interceptors() []Interceptor {
	return c.inters.FeatureRecord
}

func (c *FeatureRecordClient) mutate(ctx context.Context, m *FeatureRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FeatureRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FeatureRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FeatureRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FeatureRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FeatureRecord mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Checkpoint, Cohort, FeatureRecord []ent.Hook
	}
	inters struct {
		Checkpoint, Cohort, FeatureRecord []ent.Interceptor
	}
)
