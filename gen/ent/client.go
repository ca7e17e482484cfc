// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/posters-science/poster-tracker/gen/ent/extractionjob"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/gen/ent/user"
	"github.com/posters-science/poster-tracker/gen/ent/zenodotoken"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ExtractionJob is the client for interacting with the ExtractionJob builders.
	ExtractionJob *ExtractionJobClient
	// Poster is the client for interacting with the Poster builders.
	Poster *PosterClient
	// PosterMetadata is the client for interacting with the PosterMetadata builders.
	PosterMetadata *PosterMetadataClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// ZenodoToken is the client for interacting with the ZenodoToken builders.
	ZenodoToken *ZenodoTokenClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ExtractionJob = NewExtractionJobClient(c.config)
	c.Poster = NewPosterClient(c.config)
	c.PosterMetadata = NewPosterMetadataClient(c.config)
	c.User = NewUserClient(c.config)
	c.ZenodoToken = NewZenodoTokenClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		ExtractionJob:  NewExtractionJobClient(cfg),
		Poster:         NewPosterClient(cfg),
		PosterMetadata: NewPosterMetadataClient(cfg),
		User:           NewUserClient(cfg),
		ZenodoToken:    NewZenodoTokenClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		ExtractionJob:  NewExtractionJobClient(cfg),
		Poster:         NewPosterClient(cfg),
		PosterMetadata: NewPosterMetadataClient(cfg),
		User:           NewUserClient(cfg),
		ZenodoToken:    NewZenodoTokenClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ExtractionJob.
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
	c.ExtractionJob.Use(hooks...)
	c.Poster.Use(hooks...)
	c.PosterMetadata.Use(hooks...)
	c.User.Use(hooks...)
	c.ZenodoToken.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ExtractionJob.Intercept(interceptors...)
	c.Poster.Intercept(interceptors...)
	c.PosterMetadata.Intercept(interceptors...)
	c.User.Intercept(interceptors...)
	c.ZenodoToken.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ExtractionJobMutation:
		return c.ExtractionJob.mutate(ctx, m)
	case *PosterMutation:
		return c.Poster.mutate(ctx, m)
	case *PosterMetadataMutation:
		return c.PosterMetadata.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *ZenodoTokenMutation:
		return c.ZenodoToken.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ExtractionJobClient is a client for the ExtractionJob schema.
type ExtractionJobClient struct {
	config
}

// NewExtractionJobClient returns a client for the ExtractionJob from the given config.
func NewExtractionJobClient(c config) *ExtractionJobClient {
	return &ExtractionJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `extractionjob.Hooks(f(g(h())))`.
func (c *ExtractionJobClient) Use(hooks ...Hook) {
	c.hooks.ExtractionJob = append(c.hooks.ExtractionJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `extractionjob.Intercept(f(g(h())))`.
func (c *ExtractionJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.ExtractionJob = append(c.inters.ExtractionJob, interceptors...)
}

// Create returns a builder for creating a ExtractionJob entity.
func (c *ExtractionJobClient) Create() *ExtractionJobCreate {
	mutation := newExtractionJobMutation(c.config, OpCreate)
	return &ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ExtractionJob entities.
func (c *ExtractionJobClient) CreateBulk(builders ...*ExtractionJobCreate) *ExtractionJobCreateBulk {
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ExtractionJobClient) MapCreateBulk(slice any, setFunc func(*ExtractionJobCreate, int)) *ExtractionJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ExtractionJobCreateBulk{err: fmt.Errorf("calling to ExtractionJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ExtractionJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ExtractionJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ExtractionJob.
func (c *ExtractionJobClient) Update() *ExtractionJobUpdate {
	mutation := newExtractionJobMutation(c.config, OpUpdate)
	return &ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ExtractionJobClient) UpdateOne(_m *ExtractionJob) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJob(_m))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ExtractionJobClient) UpdateOneID(id uuid.UUID) *ExtractionJobUpdateOne {
	mutation := newExtractionJobMutation(c.config, OpUpdateOne, withExtractionJobID(id))
	return &ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ExtractionJob.
func (c *ExtractionJobClient) Delete() *ExtractionJobDelete {
	mutation := newExtractionJobMutation(c.config, OpDelete)
	return &ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ExtractionJobClient) DeleteOne(_m *ExtractionJob) *ExtractionJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ExtractionJobClient) DeleteOneID(id uuid.UUID) *ExtractionJobDeleteOne {
	builder := c.Delete().Where(extractionjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ExtractionJobDeleteOne{builder}
}

// Query returns a query builder for ExtractionJob.
func (c *ExtractionJobClient) Query() *ExtractionJobQuery {
	return &ExtractionJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeExtractionJob},
		inters: c.Interceptors(),
	}
}

// Get returns a ExtractionJob entity by its id.
func (c *ExtractionJobClient) Get(ctx context.Context, id uuid.UUID) (*ExtractionJob, error) {
	return c.Query().Where(extractionjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ExtractionJobClient) GetX(ctx context.Context, id uuid.UUID) *ExtractionJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryUser(_m *ExtractionJob) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionjob.UserTable, extractionjob.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPoster queries the poster edge of a ExtractionJob.
func (c *ExtractionJobClient) QueryPoster(_m *ExtractionJob) *PosterQuery {
	query := (&PosterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(extractionjob.Table, extractionjob.FieldID, id),
			sqlgraph.To(poster.Table, poster.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, extractionjob.PosterTable, extractionjob.PosterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ExtractionJobClient) Hooks() []Hook {
	return c.hooks.ExtractionJob
}

// Interceptors returns the client interceptors.
func (c *ExtractionJobClient) Interceptors() []Interceptor {
	return c.inters.ExtractionJob
}

func (c *ExtractionJobClient) mutate(ctx context.Context, m *ExtractionJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ExtractionJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ExtractionJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ExtractionJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ExtractionJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ExtractionJob mutation op: %q", m.Op())
	}
}

// PosterClient is a client for the Poster schema.
type PosterClient struct {
	config
}

// NewPosterClient returns a client for the Poster from the given config.
func NewPosterClient(c config) *PosterClient {
	return &PosterClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `poster.Hooks(f(g(h())))`.
func (c *PosterClient) Use(hooks ...Hook) {
	c.hooks.Poster = append(c.hooks.Poster, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `poster.Intercept(f(g(h())))`.
func (c *PosterClient) Intercept(interceptors ...Interceptor) {
	c.inters.Poster = append(c.inters.Poster, interceptors...)
}

// Create returns a builder for creating a Poster entity.
func (c *PosterClient) Create() *PosterCreate {
	mutation := newPosterMutation(c.config, OpCreate)
	return &PosterCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Poster entities.
func (c *PosterClient) CreateBulk(builders ...*PosterCreate) *PosterCreateBulk {
	return &PosterCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PosterClient) MapCreateBulk(slice any, setFunc func(*PosterCreate, int)) *PosterCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PosterCreateBulk{err: fmt.Errorf("calling to PosterClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PosterCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PosterCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Poster.
func (c *PosterClient) Update() *PosterUpdate {
	mutation := newPosterMutation(c.config, OpUpdate)
	return &PosterUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PosterClient) UpdateOne(_m *Poster) *PosterUpdateOne {
	mutation := newPosterMutation(c.config, OpUpdateOne, withPoster(_m))
	return &PosterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PosterClient) UpdateOneID(id uuid.UUID) *PosterUpdateOne {
	mutation := newPosterMutation(c.config, OpUpdateOne, withPosterID(id))
	return &PosterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Poster.
func (c *PosterClient) Delete() *PosterDelete {
	mutation := newPosterMutation(c.config, OpDelete)
	return &PosterDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PosterClient) DeleteOne(_m *Poster) *PosterDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PosterClient) DeleteOneID(id uuid.UUID) *PosterDeleteOne {
	builder := c.Delete().Where(poster.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PosterDeleteOne{builder}
}

// Query returns a query builder for Poster.
func (c *PosterClient) Query() *PosterQuery {
	return &PosterQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePoster},
		inters: c.Interceptors(),
	}
}

// Get returns a Poster entity by its id.
func (c *PosterClient) Get(ctx context.Context, id uuid.UUID) (*Poster, error) {
	return c.Query().Where(poster.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PosterClient) GetX(ctx context.Context, id uuid.UUID) *Poster {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a Poster.
func (c *PosterClient) QueryUser(_m *Poster) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poster.Table, poster.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, poster.UserTable, poster.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMetadata queries the metadata edge of a Poster.
func (c *PosterClient) QueryMetadata(_m *Poster) *PosterMetadataQuery {
	query := (&PosterMetadataClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poster.Table, poster.FieldID, id),
			sqlgraph.To(postermetadata.Table, postermetadata.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, poster.MetadataTable, poster.MetadataColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a Poster.
func (c *PosterClient) QueryJobs(_m *Poster) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(poster.Table, poster.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, poster.JobsTable, poster.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PosterClient) Hooks() []Hook {
	return c.hooks.Poster
}

// Interceptors returns the client interceptors.
func (c *PosterClient) Interceptors() []Interceptor {
	return c.inters.Poster
}

func (c *PosterClient) mutate(ctx context.Context, m *PosterMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PosterCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PosterUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PosterUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PosterDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Poster mutation op: %q", m.Op())
	}
}

// PosterMetadataClient is a client for the PosterMetadata schema.
type PosterMetadataClient struct {
	config
}

// NewPosterMetadataClient returns a client for the PosterMetadata from the given config.
func NewPosterMetadataClient(c config) *PosterMetadataClient {
	return &PosterMetadataClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `postermetadata.Hooks(f(g(h())))`.
func (c *PosterMetadataClient) Use(hooks ...Hook) {
	c.hooks.PosterMetadata = append(c.hooks.PosterMetadata, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `postermetadata.Intercept(f(g(h())))`.
func (c *PosterMetadataClient) Intercept(interceptors ...Interceptor) {
	c.inters.PosterMetadata = append(c.inters.PosterMetadata, interceptors...)
}

// Create returns a builder for creating a PosterMetadata entity.
func (c *PosterMetadataClient) Create() *PosterMetadataCreate {
	mutation := newPosterMetadataMutation(c.config, OpCreate)
	return &PosterMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PosterMetadata entities.
func (c *PosterMetadataClient) CreateBulk(builders ...*PosterMetadataCreate) *PosterMetadataCreateBulk {
	return &PosterMetadataCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PosterMetadataClient) MapCreateBulk(slice any, setFunc func(*PosterMetadataCreate, int)) *PosterMetadataCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PosterMetadataCreateBulk{err: fmt.Errorf("calling to PosterMetadataClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PosterMetadataCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PosterMetadataCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PosterMetadata.
func (c *PosterMetadataClient) Update() *PosterMetadataUpdate {
	mutation := newPosterMetadataMutation(c.config, OpUpdate)
	return &PosterMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PosterMetadataClient) UpdateOne(_m *PosterMetadata) *PosterMetadataUpdateOne {
	mutation := newPosterMetadataMutation(c.config, OpUpdateOne, withPosterMetadata(_m))
	return &PosterMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PosterMetadataClient) UpdateOneID(id uuid.UUID) *PosterMetadataUpdateOne {
	mutation := newPosterMetadataMutation(c.config, OpUpdateOne, withPosterMetadataID(id))
	return &PosterMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PosterMetadata.
func (c *PosterMetadataClient) Delete() *PosterMetadataDelete {
	mutation := newPosterMetadataMutation(c.config, OpDelete)
	return &PosterMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PosterMetadataClient) DeleteOne(_m *PosterMetadata) *PosterMetadataDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PosterMetadataClient) DeleteOneID(id uuid.UUID) *PosterMetadataDeleteOne {
	builder := c.Delete().Where(postermetadata.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PosterMetadataDeleteOne{builder}
}

// Query returns a query builder for PosterMetadata.
func (c *PosterMetadataClient) Query() *PosterMetadataQuery {
	return &PosterMetadataQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePosterMetadata},
		inters: c.Interceptors(),
	}
}

// Get returns a PosterMetadata entity by its id.
func (c *PosterMetadataClient) Get(ctx context.Context, id uuid.UUID) (*PosterMetadata, error) {
	return c.Query().Where(postermetadata.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PosterMetadataClient) GetX(ctx context.Context, id uuid.UUID) *PosterMetadata {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPoster queries the poster edge of a PosterMetadata.
func (c *PosterMetadataClient) QueryPoster(_m *PosterMetadata) *PosterQuery {
	query := (&PosterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(postermetadata.Table, postermetadata.FieldID, id),
			sqlgraph.To(poster.Table, poster.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, postermetadata.PosterTable, postermetadata.PosterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PosterMetadataClient) Hooks() []Hook {
	return c.hooks.PosterMetadata
}

// Interceptors returns the client interceptors.
func (c *PosterMetadataClient) Interceptors() []Interceptor {
	return c.inters.PosterMetadata
}

func (c *PosterMetadataClient) mutate(ctx context.Context, m *PosterMetadataMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PosterMetadataCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PosterMetadataUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PosterMetadataUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PosterMetadataDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PosterMetadata mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(_m *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(_m))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uuid.UUID) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(_m *User) *UserDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uuid.UUID) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uuid.UUID) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uuid.UUID) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryPosters queries the posters edge of a User.
func (c *UserClient) QueryPosters(_m *User) *PosterQuery {
	query := (&PosterClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(poster.Table, poster.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.PostersTable, user.PostersColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryJobs queries the jobs edge of a User.
func (c *UserClient) QueryJobs(_m *User) *ExtractionJobQuery {
	query := (&ExtractionJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(extractionjob.Table, extractionjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.JobsTable, user.JobsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryZenodoToken queries the zenodo_token edge of a User.
func (c *UserClient) QueryZenodoToken(_m *User) *ZenodoTokenQuery {
	query := (&ZenodoTokenClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(zenodotoken.Table, zenodotoken.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, user.ZenodoTokenTable, user.ZenodoTokenColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// ZenodoTokenClient is a client for the ZenodoToken schema.
type ZenodoTokenClient struct {
	config
}

// NewZenodoTokenClient returns a client for the ZenodoToken from the given config.
func NewZenodoTokenClient(c config) *ZenodoTokenClient {
	return &ZenodoTokenClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `zenodotoken.Hooks(f(g(h())))`.
func (c *ZenodoTokenClient) Use(hooks ...Hook) {
	c.hooks.ZenodoToken = append(c.hooks.ZenodoToken, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `zenodotoken.Intercept(f(g(h())))`.
func (c *ZenodoTokenClient) Intercept(interceptors ...Interceptor) {
	c.inters.ZenodoToken = append(c.inters.ZenodoToken, interceptors...)
}

// Create returns a builder for creating a ZenodoToken entity.
func (c *ZenodoTokenClient) Create() *ZenodoTokenCreate {
	mutation := newZenodoTokenMutation(c.config, OpCreate)
	return &ZenodoTokenCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ZenodoToken entities.
func (c *ZenodoTokenClient) CreateBulk(builders ...*ZenodoTokenCreate) *ZenodoTokenCreateBulk {
	return &ZenodoTokenCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ZenodoTokenClient) MapCreateBulk(slice any, setFunc func(*ZenodoTokenCreate, int)) *ZenodoTokenCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ZenodoTokenCreateBulk{err: fmt.Errorf("calling to ZenodoTokenClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ZenodoTokenCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ZenodoTokenCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ZenodoToken.
func (c *ZenodoTokenClient) Update() *ZenodoTokenUpdate {
	mutation := newZenodoTokenMutation(c.config, OpUpdate)
	return &ZenodoTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ZenodoTokenClient) UpdateOne(_m *ZenodoToken) *ZenodoTokenUpdateOne {
	mutation := newZenodoTokenMutation(c.config, OpUpdateOne, withZenodoToken(_m))
	return &ZenodoTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ZenodoTokenClient) UpdateOneID(id uuid.UUID) *ZenodoTokenUpdateOne {
	mutation := newZenodoTokenMutation(c.config, OpUpdateOne, withZenodoTokenID(id))
	return &ZenodoTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ZenodoToken.
func (c *ZenodoTokenClient) Delete() *ZenodoTokenDelete {
	mutation := newZenodoTokenMutation(c.config, OpDelete)
	return &ZenodoTokenDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ZenodoTokenClient) DeleteOne(_m *ZenodoToken) *ZenodoTokenDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ZenodoTokenClient) DeleteOneID(id uuid.UUID) *ZenodoTokenDeleteOne {
	builder := c.Delete().Where(zenodotoken.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ZenodoTokenDeleteOne{builder}
}

// Query returns a query builder for ZenodoToken.
func (c *ZenodoTokenClient) Query() *ZenodoTokenQuery {
	return &ZenodoTokenQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeZenodoToken},
		inters: c.Interceptors(),
	}
}

// Get returns a ZenodoToken entity by its id.
func (c *ZenodoTokenClient) Get(ctx context.Context, id uuid.UUID) (*ZenodoToken, error) {
	return c.Query().Where(zenodotoken.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ZenodoTokenClient) GetX(ctx context.Context, id uuid.UUID) *ZenodoToken {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryUser queries the user edge of a ZenodoToken.
func (c *ZenodoTokenClient) QueryUser(_m *ZenodoToken) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(zenodotoken.Table, zenodotoken.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, zenodotoken.UserTable, zenodotoken.UserColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ZenodoTokenClient) Hooks() []Hook {
	return c.hooks.ZenodoToken
}

// Interceptors returns the client interceptors.
func (c *ZenodoTokenClient) Interceptors() []Interceptor {
	return c.inters.ZenodoToken
}

func (c *ZenodoTokenClient) mutate(ctx context.Context, m *ZenodoTokenMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ZenodoTokenCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ZenodoTokenUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ZenodoTokenUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ZenodoTokenDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ZenodoToken mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ExtractionJob, Poster, PosterMetadata, User, ZenodoToken []ent.Hook
	}
	inters struct {
		ExtractionJob, Poster, PosterMetadata, User, ZenodoToken []ent.Interceptor
	}
)
