// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"procureflow.io/procureflow/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"procureflow.io/procureflow/ent/approvalpolicy"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/auditlog"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/notification"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
	"procureflow.io/procureflow/ent/user"

	stdsql "database/sql"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ApprovalPolicy is the client for interacting with the ApprovalPolicy builders.
	ApprovalPolicy *ApprovalPolicyClient
	// ApprovalStep is the client for interacting with the ApprovalStep builders.
	ApprovalStep *ApprovalStepClient
	// AuditLog is the client for interacting with the AuditLog builders.
	AuditLog *AuditLogClient
	// FinanceNote is the client for interacting with the FinanceNote builders.
	FinanceNote *FinanceNoteClient
	// Notification is the client for interacting with the Notification builders.
	Notification *NotificationClient
	// PurchaseRequest is the client for interacting with the PurchaseRequest builders.
	PurchaseRequest *PurchaseRequestClient
	// RequestItem is the client for interacting with the RequestItem builders.
	RequestItem *RequestItemClient
	// User is the client for interacting with the User builders.
	User *UserClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ApprovalPolicy = NewApprovalPolicyClient(c.config)
	c.ApprovalStep = NewApprovalStepClient(c.config)
	c.AuditLog = NewAuditLogClient(c.config)
	c.FinanceNote = NewFinanceNoteClient(c.config)
	c.Notification = NewNotificationClient(c.config)
	c.PurchaseRequest = NewPurchaseRequestClient(c.config)
	c.RequestItem = NewRequestItemClient(c.config)
	c.User = NewUserClient(c.config)
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
		ctx:             ctx,
		config:          cfg,
		ApprovalPolicy:  NewApprovalPolicyClient(cfg),
		ApprovalStep:    NewApprovalStepClient(cfg),
		AuditLog:        NewAuditLogClient(cfg),
		FinanceNote:     NewFinanceNoteClient(cfg),
		Notification:    NewNotificationClient(cfg),
		PurchaseRequest: NewPurchaseRequestClient(cfg),
		RequestItem:     NewRequestItemClient(cfg),
		User:            NewUserClient(cfg),
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
		ctx:             ctx,
		config:          cfg,
		ApprovalPolicy:  NewApprovalPolicyClient(cfg),
		ApprovalStep:    NewApprovalStepClient(cfg),
		AuditLog:        NewAuditLogClient(cfg),
		FinanceNote:     NewFinanceNoteClient(cfg),
		Notification:    NewNotificationClient(cfg),
		PurchaseRequest: NewPurchaseRequestClient(cfg),
		RequestItem:     NewRequestItemClient(cfg),
		User:            NewUserClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ApprovalPolicy.
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
		c.ApprovalPolicy, c.ApprovalStep, c.AuditLog, c.FinanceNote, c.Notification,
		c.PurchaseRequest, c.RequestItem, c.User,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.ApprovalPolicy, c.ApprovalStep, c.AuditLog, c.FinanceNote, c.Notification,
		c.PurchaseRequest, c.RequestItem, c.User,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ApprovalPolicyMutation:
		return c.ApprovalPolicy.mutate(ctx, m)
	case *ApprovalStepMutation:
		return c.ApprovalStep.mutate(ctx, m)
	case *AuditLogMutation:
		return c.AuditLog.mutate(ctx, m)
	case *FinanceNoteMutation:
		return c.FinanceNote.mutate(ctx, m)
	case *NotificationMutation:
		return c.Notification.mutate(ctx, m)
	case *PurchaseRequestMutation:
		return c.PurchaseRequest.mutate(ctx, m)
	case *RequestItemMutation:
		return c.RequestItem.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ApprovalPolicyClient is a client for the ApprovalPolicy schema.
type ApprovalPolicyClient struct {
	config
}

// NewApprovalPolicyClient returns a client for the ApprovalPolicy from the given config.
func NewApprovalPolicyClient(c config) *ApprovalPolicyClient {
	return &ApprovalPolicyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalpolicy.Hooks(f(g(h())))`.
func (c *ApprovalPolicyClient) Use(hooks ...Hook) {
	c.hooks.ApprovalPolicy = append(c.hooks.ApprovalPolicy, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalpolicy.Intercept(f(g(h())))`.
func (c *ApprovalPolicyClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalPolicy = append(c.inters.ApprovalPolicy, interceptors...)
}

// Create returns a builder for creating a ApprovalPolicy entity.
func (c *ApprovalPolicyClient) Create() *ApprovalPolicyCreate {
	mutation := newApprovalPolicyMutation(c.config, OpCreate)
	return &ApprovalPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalPolicy entities.
func (c *ApprovalPolicyClient) CreateBulk(builders ...*ApprovalPolicyCreate) *ApprovalPolicyCreateBulk {
	return &ApprovalPolicyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalPolicyClient) MapCreateBulk(slice any, setFunc func(*ApprovalPolicyCreate, int)) *ApprovalPolicyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalPolicyCreateBulk{err: fmt.Errorf("calling to ApprovalPolicyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalPolicyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalPolicyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalPolicy.
func (c *ApprovalPolicyClient) Update() *ApprovalPolicyUpdate {
	mutation := newApprovalPolicyMutation(c.config, OpUpdate)
	return &ApprovalPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalPolicyClient) UpdateOne(_m *ApprovalPolicy) *ApprovalPolicyUpdateOne {
	mutation := newApprovalPolicyMutation(c.config, OpUpdateOne, withApprovalPolicy(_m))
	return &ApprovalPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalPolicyClient) UpdateOneID(id string) *ApprovalPolicyUpdateOne {
	mutation := newApprovalPolicyMutation(c.config, OpUpdateOne, withApprovalPolicyID(id))
	return &ApprovalPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalPolicy.
func (c *ApprovalPolicyClient) Delete() *ApprovalPolicyDelete {
	mutation := newApprovalPolicyMutation(c.config, OpDelete)
	return &ApprovalPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalPolicyClient) DeleteOne(_m *ApprovalPolicy) *ApprovalPolicyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalPolicyClient) DeleteOneID(id string) *ApprovalPolicyDeleteOne {
	builder := c.Delete().Where(approvalpolicy.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalPolicyDeleteOne{builder}
}

// Query returns a query builder for ApprovalPolicy.
func (c *ApprovalPolicyClient) Query() *ApprovalPolicyQuery {
	return &ApprovalPolicyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalPolicy},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalPolicy entity by its id.
func (c *ApprovalPolicyClient) Get(ctx context.Context, id string) (*ApprovalPolicy, error) {
	return c.Query().Where(approvalpolicy.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalPolicyClient) GetX(ctx context.Context, id string) *ApprovalPolicy {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ApprovalPolicyClient) Hooks() []Hook {
	return c.hooks.ApprovalPolicy
}

// Interceptors returns the client interceptors.
func (c *ApprovalPolicyClient) Interceptors() []Interceptor {
	return c.inters.ApprovalPolicy
}

func (c *ApprovalPolicyClient) mutate(ctx context.Context, m *ApprovalPolicyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalPolicyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalPolicyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalPolicyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalPolicyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalPolicy mutation op: %q", m.Op())
	}
}

// ApprovalStepClient is a client for the ApprovalStep schema.
type ApprovalStepClient struct {
	config
}

// NewApprovalStepClient returns a client for the ApprovalStep from the given config.
func NewApprovalStepClient(c config) *ApprovalStepClient {
	return &ApprovalStepClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `approvalstep.Hooks(f(g(h())))`.
func (c *ApprovalStepClient) Use(hooks ...Hook) {
	c.hooks.ApprovalStep = append(c.hooks.ApprovalStep, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `approvalstep.Intercept(f(g(h())))`.
func (c *ApprovalStepClient) Intercept(interceptors ...Interceptor) {
	c.inters.ApprovalStep = append(c.inters.ApprovalStep, interceptors...)
}

// Create returns a builder for creating a ApprovalStep entity.
func (c *ApprovalStepClient) Create() *ApprovalStepCreate {
	mutation := newApprovalStepMutation(c.config, OpCreate)
	return &ApprovalStepCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ApprovalStep entities.
func (c *ApprovalStepClient) CreateBulk(builders ...*ApprovalStepCreate) *ApprovalStepCreateBulk {
	return &ApprovalStepCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ApprovalStepClient) MapCreateBulk(slice any, setFunc func(*ApprovalStepCreate, int)) *ApprovalStepCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ApprovalStepCreateBulk{err: fmt.Errorf("calling to ApprovalStepClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ApprovalStepCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ApprovalStepCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ApprovalStep.
func (c *ApprovalStepClient) Update() *ApprovalStepUpdate {
	mutation := newApprovalStepMutation(c.config, OpUpdate)
	return &ApprovalStepUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ApprovalStepClient) UpdateOne(_m *ApprovalStep) *ApprovalStepUpdateOne {
	mutation := newApprovalStepMutation(c.config, OpUpdateOne, withApprovalStep(_m))
	return &ApprovalStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ApprovalStepClient) UpdateOneID(id string) *ApprovalStepUpdateOne {
	mutation := newApprovalStepMutation(c.config, OpUpdateOne, withApprovalStepID(id))
	return &ApprovalStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ApprovalStep.
func (c *ApprovalStepClient) Delete() *ApprovalStepDelete {
	mutation := newApprovalStepMutation(c.config, OpDelete)
	return &ApprovalStepDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ApprovalStepClient) DeleteOne(_m *ApprovalStep) *ApprovalStepDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ApprovalStepClient) DeleteOneID(id string) *ApprovalStepDeleteOne {
	builder := c.Delete().Where(approvalstep.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ApprovalStepDeleteOne{builder}
}

// Query returns a query builder for ApprovalStep.
func (c *ApprovalStepClient) Query() *ApprovalStepQuery {
	return &ApprovalStepQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeApprovalStep},
		inters: c.Interceptors(),
	}
}

// Get returns a ApprovalStep entity by its id.
func (c *ApprovalStepClient) Get(ctx context.Context, id string) (*ApprovalStep, error) {
	return c.Query().Where(approvalstep.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ApprovalStepClient) GetX(ctx context.Context, id string) *ApprovalStep {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a ApprovalStep.
func (c *ApprovalStepClient) QueryRequest(_m *ApprovalStep) *PurchaseRequestQuery {
	query := (&PurchaseRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(approvalstep.Table, approvalstep.FieldID, id),
			sqlgraph.To(purchaserequest.Table, purchaserequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, approvalstep.RequestTable, approvalstep.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ApprovalStepClient) Hooks() []Hook {
	return c.hooks.ApprovalStep
}

// Interceptors returns the client interceptors.
func (c *ApprovalStepClient) Interceptors() []Interceptor {
	return c.inters.ApprovalStep
}

func (c *ApprovalStepClient) mutate(ctx context.Context, m *ApprovalStepMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ApprovalStepCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ApprovalStepUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ApprovalStepUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ApprovalStepDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ApprovalStep mutation op: %q", m.Op())
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

// FinanceNoteClient is a client for the FinanceNote schema.
type FinanceNoteClient struct {
	config
}

// NewFinanceNoteClient returns a client for the FinanceNote from the given config.
func NewFinanceNoteClient(c config) *FinanceNoteClient {
	return &FinanceNoteClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `financenote.Hooks(f(g(h())))`.
func (c *FinanceNoteClient) Use(hooks ...Hook) {
	c.hooks.FinanceNote = append(c.hooks.FinanceNote, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `financenote.Intercept(f(g(h())))`.
func (c *FinanceNoteClient) Intercept(interceptors ...Interceptor) {
	c.inters.FinanceNote = append(c.inters.FinanceNote, interceptors...)
}

// Create returns a builder for creating a FinanceNote entity.
func (c *FinanceNoteClient) Create() *FinanceNoteCreate {
	mutation := newFinanceNoteMutation(c.config, OpCreate)
	return &FinanceNoteCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of FinanceNote entities.
func (c *FinanceNoteClient) CreateBulk(builders ...*FinanceNoteCreate) *FinanceNoteCreateBulk {
	return &FinanceNoteCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FinanceNoteClient) MapCreateBulk(slice any, setFunc func(*FinanceNoteCreate, int)) *FinanceNoteCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FinanceNoteCreateBulk{err: fmt.Errorf("calling to FinanceNoteClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FinanceNoteCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FinanceNoteCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for FinanceNote.
func (c *FinanceNoteClient) Update() *FinanceNoteUpdate {
	mutation := newFinanceNoteMutation(c.config, OpUpdate)
	return &FinanceNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FinanceNoteClient) UpdateOne(_m *FinanceNote) *FinanceNoteUpdateOne {
	mutation := newFinanceNoteMutation(c.config, OpUpdateOne, withFinanceNote(_m))
	return &FinanceNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FinanceNoteClient) UpdateOneID(id string) *FinanceNoteUpdateOne {
	mutation := newFinanceNoteMutation(c.config, OpUpdateOne, withFinanceNoteID(id))
	return &FinanceNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for FinanceNote.
func (c *FinanceNoteClient) Delete() *FinanceNoteDelete {
	mutation := newFinanceNoteMutation(c.config, OpDelete)
	return &FinanceNoteDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FinanceNoteClient) DeleteOne(_m *FinanceNote) *FinanceNoteDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FinanceNoteClient) DeleteOneID(id string) *FinanceNoteDeleteOne {
	builder := c.Delete().Where(financenote.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FinanceNoteDeleteOne{builder}
}

// Query returns a query builder for FinanceNote.
func (c *FinanceNoteClient) Query() *FinanceNoteQuery {
	return &FinanceNoteQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFinanceNote},
		inters: c.Interceptors(),
	}
}

// Get returns a FinanceNote entity by its id.
func (c *FinanceNoteClient) Get(ctx context.Context, id string) (*FinanceNote, error) {
	return c.Query().Where(financenote.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FinanceNoteClient) GetX(ctx context.Context, id string) *FinanceNote {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a FinanceNote.
func (c *FinanceNoteClient) QueryRequest(_m *FinanceNote) *PurchaseRequestQuery {
	query := (&PurchaseRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(financenote.Table, financenote.FieldID, id),
			sqlgraph.To(purchaserequest.Table, purchaserequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, financenote.RequestTable, financenote.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FinanceNoteClient) Hooks() []Hook {
	return c.hooks.FinanceNote
}

// Interceptors returns the client interceptors.
func (c *FinanceNoteClient) Interceptors() []Interceptor {
	return c.inters.FinanceNote
}

func (c *FinanceNoteClient) mutate(ctx context.Context, m *FinanceNoteMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FinanceNoteCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FinanceNoteUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FinanceNoteUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FinanceNoteDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown FinanceNote mutation op: %q", m.Op())
	}
}

// NotificationClient is a client for the Notification schema.
type NotificationClient struct {
	config
}

// NewNotificationClient returns a client for the Notification from the given config.
func NewNotificationClient(c config) *NotificationClient {
	return &NotificationClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `notification.Hooks(f(g(h())))`.
func (c *NotificationClient) Use(hooks ...Hook) {
	c.hooks.Notification = append(c.hooks.Notification, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `notification.Intercept(f(g(h())))`.
func (c *NotificationClient) Intercept(interceptors ...Interceptor) {
	c.inters.Notification = append(c.inters.Notification, interceptors...)
}

// Create returns a builder for creating a Notification entity.
func (c *NotificationClient) Create() *NotificationCreate {
	mutation := newNotificationMutation(c.config, OpCreate)
	return &NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Notification entities.
func (c *NotificationClient) CreateBulk(builders ...*NotificationCreate) *NotificationCreateBulk {
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *NotificationClient) MapCreateBulk(slice any, setFunc func(*NotificationCreate, int)) *NotificationCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &NotificationCreateBulk{err: fmt.Errorf("calling to NotificationClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*NotificationCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &NotificationCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Notification.
func (c *NotificationClient) Update() *NotificationUpdate {
	mutation := newNotificationMutation(c.config, OpUpdate)
	return &NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *NotificationClient) UpdateOne(_m *Notification) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotification(_m))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *NotificationClient) UpdateOneID(id string) *NotificationUpdateOne {
	mutation := newNotificationMutation(c.config, OpUpdateOne, withNotificationID(id))
	return &NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Notification.
func (c *NotificationClient) Delete() *NotificationDelete {
	mutation := newNotificationMutation(c.config, OpDelete)
	return &NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *NotificationClient) DeleteOne(_m *Notification) *NotificationDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *NotificationClient) DeleteOneID(id string) *NotificationDeleteOne {
	builder := c.Delete().Where(notification.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &NotificationDeleteOne{builder}
}

// Query returns a query builder for Notification.
func (c *NotificationClient) Query() *NotificationQuery {
	return &NotificationQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeNotification},
		inters: c.Interceptors(),
	}
}

// Get returns a Notification entity by its id.
func (c *NotificationClient) Get(ctx context.Context, id string) (*Notification, error) {
	return c.Query().Where(notification.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *NotificationClient) GetX(ctx context.Context, id string) *Notification {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRecipient queries the recipient edge of a Notification.
func (c *NotificationClient) QueryRecipient(_m *Notification) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(notification.Table, notification.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, notification.RecipientTable, notification.RecipientColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *NotificationClient) Hooks() []Hook {
	return c.hooks.Notification
}

// Interceptors returns the client interceptors.
func (c *NotificationClient) Interceptors() []Interceptor {
	return c.inters.Notification
}

func (c *NotificationClient) mutate(ctx context.Context, m *NotificationMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&NotificationCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&NotificationUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&NotificationUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&NotificationDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Notification mutation op: %q", m.Op())
	}
}

// PurchaseRequestClient is a client for the PurchaseRequest schema.
type PurchaseRequestClient struct {
	config
}

// NewPurchaseRequestClient returns a client for the PurchaseRequest from the given config.
func NewPurchaseRequestClient(c config) *PurchaseRequestClient {
	return &PurchaseRequestClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `purchaserequest.Hooks(f(g(h())))`.
func (c *PurchaseRequestClient) Use(hooks ...Hook) {
	c.hooks.PurchaseRequest = append(c.hooks.PurchaseRequest, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `purchaserequest.Intercept(f(g(h())))`.
func (c *PurchaseRequestClient) Intercept(interceptors ...Interceptor) {
	c.inters.PurchaseRequest = append(c.inters.PurchaseRequest, interceptors...)
}

// Create returns a builder for creating a PurchaseRequest entity.
func (c *PurchaseRequestClient) Create() *PurchaseRequestCreate {
	mutation := newPurchaseRequestMutation(c.config, OpCreate)
	return &PurchaseRequestCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PurchaseRequest entities.
func (c *PurchaseRequestClient) CreateBulk(builders ...*PurchaseRequestCreate) *PurchaseRequestCreateBulk {
	return &PurchaseRequestCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PurchaseRequestClient) MapCreateBulk(slice any, setFunc func(*PurchaseRequestCreate, int)) *PurchaseRequestCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PurchaseRequestCreateBulk{err: fmt.Errorf("calling to PurchaseRequestClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PurchaseRequestCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PurchaseRequestCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PurchaseRequest.
func (c *PurchaseRequestClient) Update() *PurchaseRequestUpdate {
	mutation := newPurchaseRequestMutation(c.config, OpUpdate)
	return &PurchaseRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PurchaseRequestClient) UpdateOne(_m *PurchaseRequest) *PurchaseRequestUpdateOne {
	mutation := newPurchaseRequestMutation(c.config, OpUpdateOne, withPurchaseRequest(_m))
	return &PurchaseRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PurchaseRequestClient) UpdateOneID(id string) *PurchaseRequestUpdateOne {
	mutation := newPurchaseRequestMutation(c.config, OpUpdateOne, withPurchaseRequestID(id))
	return &PurchaseRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PurchaseRequest.
func (c *PurchaseRequestClient) Delete() *PurchaseRequestDelete {
	mutation := newPurchaseRequestMutation(c.config, OpDelete)
	return &PurchaseRequestDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PurchaseRequestClient) DeleteOne(_m *PurchaseRequest) *PurchaseRequestDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PurchaseRequestClient) DeleteOneID(id string) *PurchaseRequestDeleteOne {
	builder := c.Delete().Where(purchaserequest.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PurchaseRequestDeleteOne{builder}
}

// Query returns a query builder for PurchaseRequest.
func (c *PurchaseRequestClient) Query() *PurchaseRequestQuery {
	return &PurchaseRequestQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePurchaseRequest},
		inters: c.Interceptors(),
	}
}

// Get returns a PurchaseRequest entity by its id.
func (c *PurchaseRequestClient) Get(ctx context.Context, id string) (*PurchaseRequest, error) {
	return c.Query().Where(purchaserequest.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PurchaseRequestClient) GetX(ctx context.Context, id string) *PurchaseRequest {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequester queries the requester edge of a PurchaseRequest.
func (c *PurchaseRequestClient) QueryRequester(_m *PurchaseRequest) *UserQuery {
	query := (&UserClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, id),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, purchaserequest.RequesterTable, purchaserequest.RequesterColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a PurchaseRequest.
func (c *PurchaseRequestClient) QueryItems(_m *PurchaseRequest) *RequestItemQuery {
	query := (&RequestItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, id),
			sqlgraph.To(requestitem.Table, requestitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, purchaserequest.ItemsTable, purchaserequest.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QuerySteps queries the steps edge of a PurchaseRequest.
func (c *PurchaseRequestClient) QuerySteps(_m *PurchaseRequest) *ApprovalStepQuery {
	query := (&ApprovalStepClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, id),
			sqlgraph.To(approvalstep.Table, approvalstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, purchaserequest.StepsTable, purchaserequest.StepsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryFinanceNotes queries the finance_notes edge of a PurchaseRequest.
func (c *PurchaseRequestClient) QueryFinanceNotes(_m *PurchaseRequest) *FinanceNoteQuery {
	query := (&FinanceNoteClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, id),
			sqlgraph.To(financenote.Table, financenote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, purchaserequest.FinanceNotesTable, purchaserequest.FinanceNotesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PurchaseRequestClient) Hooks() []Hook {
	return c.hooks.PurchaseRequest
}

// Interceptors returns the client interceptors.
func (c *PurchaseRequestClient) Interceptors() []Interceptor {
	return c.inters.PurchaseRequest
}

func (c *PurchaseRequestClient) mutate(ctx context.Context, m *PurchaseRequestMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PurchaseRequestCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PurchaseRequestUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PurchaseRequestUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PurchaseRequestDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PurchaseRequest mutation op: %q", m.Op())
	}
}

// RequestItemClient is a client for the RequestItem schema.
type RequestItemClient struct {
	config
}

// NewRequestItemClient returns a client for the RequestItem from the given config.
func NewRequestItemClient(c config) *RequestItemClient {
	return &RequestItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `requestitem.Hooks(f(g(h())))`.
func (c *RequestItemClient) Use(hooks ...Hook) {
	c.hooks.RequestItem = append(c.hooks.RequestItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `requestitem.Intercept(f(g(h())))`.
func (c *RequestItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.RequestItem = append(c.inters.RequestItem, interceptors...)
}

// Create returns a builder for creating a RequestItem entity.
func (c *RequestItemClient) Create() *RequestItemCreate {
	mutation := newRequestItemMutation(c.config, OpCreate)
	return &RequestItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of RequestItem entities.
func (c *RequestItemClient) CreateBulk(builders ...*RequestItemCreate) *RequestItemCreateBulk {
	return &RequestItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *RequestItemClient) MapCreateBulk(slice any, setFunc func(*RequestItemCreate, int)) *RequestItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &RequestItemCreateBulk{err: fmt.Errorf("calling to RequestItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*RequestItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &RequestItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for RequestItem.
func (c *RequestItemClient) Update() *RequestItemUpdate {
	mutation := newRequestItemMutation(c.config, OpUpdate)
	return &RequestItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *RequestItemClient) UpdateOne(_m *RequestItem) *RequestItemUpdateOne {
	mutation := newRequestItemMutation(c.config, OpUpdateOne, withRequestItem(_m))
	return &RequestItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *RequestItemClient) UpdateOneID(id string) *RequestItemUpdateOne {
	mutation := newRequestItemMutation(c.config, OpUpdateOne, withRequestItemID(id))
	return &RequestItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for RequestItem.
func (c *RequestItemClient) Delete() *RequestItemDelete {
	mutation := newRequestItemMutation(c.config, OpDelete)
	return &RequestItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *RequestItemClient) DeleteOne(_m *RequestItem) *RequestItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *RequestItemClient) DeleteOneID(id string) *RequestItemDeleteOne {
	builder := c.Delete().Where(requestitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &RequestItemDeleteOne{builder}
}

// Query returns a query builder for RequestItem.
func (c *RequestItemClient) Query() *RequestItemQuery {
	return &RequestItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeRequestItem},
		inters: c.Interceptors(),
	}
}

// Get returns a RequestItem entity by its id.
func (c *RequestItemClient) Get(ctx context.Context, id string) (*RequestItem, error) {
	return c.Query().Where(requestitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *RequestItemClient) GetX(ctx context.Context, id string) *RequestItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequest queries the request edge of a RequestItem.
func (c *RequestItemClient) QueryRequest(_m *RequestItem) *PurchaseRequestQuery {
	query := (&PurchaseRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(requestitem.Table, requestitem.FieldID, id),
			sqlgraph.To(purchaserequest.Table, purchaserequest.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, requestitem.RequestTable, requestitem.RequestColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *RequestItemClient) Hooks() []Hook {
	return c.hooks.RequestItem
}

// Interceptors returns the client interceptors.
func (c *RequestItemClient) Interceptors() []Interceptor {
	return c.inters.RequestItem
}

func (c *RequestItemClient) mutate(ctx context.Context, m *RequestItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&RequestItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&RequestItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&RequestItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&RequestItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown RequestItem mutation op: %q", m.Op())
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
func (c *UserClient) UpdateOneID(id string) *UserUpdateOne {
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
func (c *UserClient) DeleteOneID(id string) *UserDeleteOne {
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
func (c *UserClient) Get(ctx context.Context, id string) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id string) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryRequests queries the requests edge of a User.
func (c *UserClient) QueryRequests(_m *User) *PurchaseRequestQuery {
	query := (&PurchaseRequestClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(purchaserequest.Table, purchaserequest.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.RequestsTable, user.RequestsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryNotifications queries the notifications edge of a User.
func (c *UserClient) QueryNotifications(_m *User) *NotificationQuery {
	query := (&NotificationClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(user.Table, user.FieldID, id),
			sqlgraph.To(notification.Table, notification.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, user.NotificationsTable, user.NotificationsColumn),
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

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ApprovalPolicy, ApprovalStep, AuditLog, FinanceNote, Notification,
		PurchaseRequest, RequestItem, User []ent.Hook
	}
	inters struct {
		ApprovalPolicy, ApprovalStep, AuditLog, FinanceNote, Notification,
		PurchaseRequest, RequestItem, User []ent.Interceptor
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
