// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/capturedesk/capturedesk/gen/ent/migrate"
	"github.com/google/uuid"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/gen/ent/session"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// CaptureInput is the client for interacting with the CaptureInput builders.
	CaptureInput *CaptureInputClient
	// ProcessedItem is the client for interacting with the ProcessedItem builders.
	ProcessedItem *ProcessedItemClient
	// Session is the client for interacting with the Session builders.
	Session *SessionClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.CaptureInput = NewCaptureInputClient(c.config)
	c.ProcessedItem = NewProcessedItemClient(c.config)
	c.Session = NewSessionClient(c.config)
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
		CaptureInput:  NewCaptureInputClient(cfg),
		ProcessedItem: NewProcessedItemClient(cfg),
		Session:       NewSessionClient(cfg),
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
		CaptureInput:  NewCaptureInputClient(cfg),
		ProcessedItem: NewProcessedItemClient(cfg),
		Session:       NewSessionClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		CaptureInput.
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
	c.CaptureInput.Use(hooks...)
	c.ProcessedItem.Use(hooks...)
	c.Session.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.CaptureInput.Intercept(interceptors...)
	c.ProcessedItem.Intercept(interceptors...)
	c.Session.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *CaptureInputMutation:
		return c.CaptureInput.mutate(ctx, m)
	case *ProcessedItemMutation:
		return c.ProcessedItem.mutate(ctx, m)
	case *SessionMutation:
		return c.Session.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// CaptureInputClient is a client for the CaptureInput schema.
type CaptureInputClient struct {
	config
}

// NewCaptureInputClient returns a client for the CaptureInput from the given config.
func NewCaptureInputClient(c config) *CaptureInputClient {
	return &CaptureInputClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `captureinput.Hooks(f(g(h())))`.
func (c *CaptureInputClient) Use(hooks ...Hook) {
	c.hooks.CaptureInput = append(c.hooks.CaptureInput, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `captureinput.Intercept(f(g(h())))`.
func (c *CaptureInputClient) Intercept(interceptors ...Interceptor) {
	c.inters.CaptureInput = append(c.inters.CaptureInput, interceptors...)
}

// Create returns a builder for creating a CaptureInput entity.
func (c *CaptureInputClient) Create() *CaptureInputCreate {
	mutation := newCaptureInputMutation(c.config, OpCreate)
	return &CaptureInputCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CaptureInput entities.
func (c *CaptureInputClient) CreateBulk(builders ...*CaptureInputCreate) *CaptureInputCreateBulk {
	return &CaptureInputCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CaptureInputClient) MapCreateBulk(slice any, setFunc func(*CaptureInputCreate, int)) *CaptureInputCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CaptureInputCreateBulk{err: fmt.Errorf("calling to CaptureInputClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CaptureInputCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CaptureInputCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CaptureInput.
func (c *CaptureInputClient) Update() *CaptureInputUpdate {
	mutation := newCaptureInputMutation(c.config, OpUpdate)
	return &CaptureInputUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CaptureInputClient) UpdateOne(_m *CaptureInput) *CaptureInputUpdateOne {
	mutation := newCaptureInputMutation(c.config, OpUpdateOne, withCaptureInput(_m))
	return &CaptureInputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CaptureInputClient) UpdateOneID(id uuid.UUID) *CaptureInputUpdateOne {
	mutation := newCaptureInputMutation(c.config, OpUpdateOne, withCaptureInputID(id))
	return &CaptureInputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CaptureInput.
func (c *CaptureInputClient) Delete() *CaptureInputDelete {
	mutation := newCaptureInputMutation(c.config, OpDelete)
	return &CaptureInputDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CaptureInputClient) DeleteOne(_m *CaptureInput) *CaptureInputDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CaptureInputClient) DeleteOneID(id uuid.UUID) *CaptureInputDeleteOne {
	builder := c.Delete().Where(captureinput.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CaptureInputDeleteOne{builder}
}

// Query returns a query builder for CaptureInput.
func (c *CaptureInputClient) Query() *CaptureInputQuery {
	return &CaptureInputQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCaptureInput},
		inters: c.Interceptors(),
	}
}

// Get returns a CaptureInput entity by its id.
func (c *CaptureInputClient) Get(ctx context.Context, id uuid.UUID) (*CaptureInput, error) {
	return c.Query().Where(captureinput.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CaptureInputClient) GetX(ctx context.Context, id uuid.UUID) *CaptureInput {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *CaptureInputClient) Hooks() []Hook {
	return c.hooks.CaptureInput
}

// Interceptors returns the client interceptors.
func (c *CaptureInputClient) Interceptors() []Interceptor {
	return c.inters.CaptureInput
}

func (c *CaptureInputClient) mutate(ctx context.Context, m *CaptureInputMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CaptureInputCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CaptureInputUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CaptureInputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CaptureInputDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CaptureInput mutation op: %q", m.Op())
	}
}

// ProcessedItemClient is a client for the ProcessedItem schema.
type ProcessedItemClient struct {
	config
}

// NewProcessedItemClient returns a client for the ProcessedItem from the given config.
func NewProcessedItemClient(c config) *ProcessedItemClient {
	return &ProcessedItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processeditem.Hooks(f(g(h())))`.
func (c *ProcessedItemClient) Use(hooks ...Hook) {
	c.hooks.ProcessedItem = append(c.hooks.ProcessedItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processeditem.Intercept(f(g(h())))`.
func (c *ProcessedItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedItem = append(c.inters.ProcessedItem, interceptors...)
}

// Create returns a builder for creating a ProcessedItem entity.
func (c *ProcessedItemClient) Create() *ProcessedItemCreate {
	mutation := newProcessedItemMutation(c.config, OpCreate)
	return &ProcessedItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedItem entities.
func (c *ProcessedItemClient) CreateBulk(builders ...*ProcessedItemCreate) *ProcessedItemCreateBulk {
	return &ProcessedItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedItemClient) MapCreateBulk(slice any, setFunc func(*ProcessedItemCreate, int)) *ProcessedItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedItemCreateBulk{err: fmt.Errorf("calling to ProcessedItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedItem.
func (c *ProcessedItemClient) Update() *ProcessedItemUpdate {
	mutation := newProcessedItemMutation(c.config, OpUpdate)
	return &ProcessedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedItemClient) UpdateOne(_m *ProcessedItem) *ProcessedItemUpdateOne {
	mutation := newProcessedItemMutation(c.config, OpUpdateOne, withProcessedItem(_m))
	return &ProcessedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedItemClient) UpdateOneID(id uuid.UUID) *ProcessedItemUpdateOne {
	mutation := newProcessedItemMutation(c.config, OpUpdateOne, withProcessedItemID(id))
	return &ProcessedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedItem.
func (c *ProcessedItemClient) Delete() *ProcessedItemDelete {
	mutation := newProcessedItemMutation(c.config, OpDelete)
	return &ProcessedItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedItemClient) DeleteOne(_m *ProcessedItem) *ProcessedItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedItemClient) DeleteOneID(id uuid.UUID) *ProcessedItemDeleteOne {
	builder := c.Delete().Where(processeditem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedItemDeleteOne{builder}
}

// Query returns a query builder for ProcessedItem.
func (c *ProcessedItemClient) Query() *ProcessedItemQuery {
	return &ProcessedItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedItem},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedItem entity by its id.
func (c *ProcessedItemClient) Get(ctx context.Context, id uuid.UUID) (*ProcessedItem, error) {
	return c.Query().Where(processeditem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedItemClient) GetX(ctx context.Context, id uuid.UUID) *ProcessedItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedItemClient) Hooks() []Hook {
	return c.hooks.ProcessedItem
}

// Interceptors returns the client interceptors.
func (c *ProcessedItemClient) Interceptors() []Interceptor {
	return c.inters.ProcessedItem
}

func (c *ProcessedItemClient) mutate(ctx context.Context, m *ProcessedItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedItem mutation op: %q", m.Op())
	}
}

// SessionClient is a client for the Session schema.
type SessionClient struct {
	config
}

// NewSessionClient returns a client for the Session from the given config.
func NewSessionClient(c config) *SessionClient {
	return &SessionClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `session.Hooks(f(g(h())))`.
func (c *SessionClient) Use(hooks ...Hook) {
	c.hooks.Session = append(c.hooks.Session, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `session.Intercept(f(g(h())))`.
func (c *SessionClient) Intercept(interceptors ...Interceptor) {
	c.inters.Session = append(c.inters.Session, interceptors...)
}

// Create returns a builder for creating a Session entity.
func (c *SessionClient) Create() *SessionCreate {
	mutation := newSessionMutation(c.config, OpCreate)
	return &SessionCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Session entities.
func (c *SessionClient) CreateBulk(builders ...*SessionCreate) *SessionCreateBulk {
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *SessionClient) MapCreateBulk(slice any, setFunc func(*SessionCreate, int)) *SessionCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &SessionCreateBulk{err: fmt.Errorf("calling to SessionClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*SessionCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &SessionCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Session.
func (c *SessionClient) Update() *SessionUpdate {
	mutation := newSessionMutation(c.config, OpUpdate)
	return &SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *SessionClient) UpdateOne(_m *Session) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSession(_m))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *SessionClient) UpdateOneID(id string) *SessionUpdateOne {
	mutation := newSessionMutation(c.config, OpUpdateOne, withSessionID(id))
	return &SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Session.
func (c *SessionClient) Delete() *SessionDelete {
	mutation := newSessionMutation(c.config, OpDelete)
	return &SessionDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *SessionClient) DeleteOne(_m *Session) *SessionDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *SessionClient) DeleteOneID(id string) *SessionDeleteOne {
	builder := c.Delete().Where(session.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &SessionDeleteOne{builder}
}

// Query returns a query builder for Session.
func (c *SessionClient) Query() *SessionQuery {
	return &SessionQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeSession},
		inters: c.Interceptors(),
	}
}

// Get returns a Session entity by its id.
func (c *SessionClient) Get(ctx context.Context, id string) (*Session, error) {
	return c.Query().Where(session.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *SessionClient) GetX(ctx context.Context, id string) *Session {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *SessionClient) Hooks() []Hook {
	return c.hooks.Session
}

// Interceptors returns the client interceptors.
func (c *SessionClient) Interceptors() []Interceptor {
	return c.inters.Session
}

func (c *SessionClient) mutate(ctx context.Context, m *SessionMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&SessionCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&SessionUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&SessionUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&SessionDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Session mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		CaptureInput, ProcessedItem, Session []ent.Hook
	}
	inters struct {
		CaptureInput, ProcessedItem, Session []ent.Interceptor
	}
)
