// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/predicate"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
	"procureflow.io/procureflow/ent/user"
)

// PurchaseRequestQuery is the builder for querying PurchaseRequest entities.
type PurchaseRequestQuery struct {
	config
	ctx              *QueryContext
	order            []purchaserequest.OrderOption
	inters           []Interceptor
	predicates       []predicate.PurchaseRequest
	withRequester    *UserQuery
	withItems        *RequestItemQuery
	withSteps        *ApprovalStepQuery
	withFinanceNotes *FinanceNoteQuery
	modifiers        []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PurchaseRequestQuery builder.
func (_q *PurchaseRequestQuery) Where(ps ...predicate.PurchaseRequest) *PurchaseRequestQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PurchaseRequestQuery) Limit(limit int) *PurchaseRequestQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PurchaseRequestQuery) Offset(offset int) *PurchaseRequestQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PurchaseRequestQuery) Unique(unique bool) *PurchaseRequestQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PurchaseRequestQuery) Order(o ...purchaserequest.OrderOption) *PurchaseRequestQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRequester chains the current query on the "requester" edge.
func (_q *PurchaseRequestQuery) QueryRequester() *UserQuery {
	query := (&UserClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, selector),
			sqlgraph.To(user.Table, user.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, purchaserequest.RequesterTable, purchaserequest.RequesterColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryItems chains the current query on the "items" edge.
func (_q *PurchaseRequestQuery) QueryItems() *RequestItemQuery {
	query := (&RequestItemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, selector),
			sqlgraph.To(requestitem.Table, requestitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, purchaserequest.ItemsTable, purchaserequest.ItemsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QuerySteps chains the current query on the "steps" edge.
func (_q *PurchaseRequestQuery) QuerySteps() *ApprovalStepQuery {
	query := (&ApprovalStepClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, selector),
			sqlgraph.To(approvalstep.Table, approvalstep.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, purchaserequest.StepsTable, purchaserequest.StepsColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryFinanceNotes chains the current query on the "finance_notes" edge.
func (_q *PurchaseRequestQuery) QueryFinanceNotes() *FinanceNoteQuery {
	query := (&FinanceNoteClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(purchaserequest.Table, purchaserequest.FieldID, selector),
			sqlgraph.To(financenote.Table, financenote.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, purchaserequest.FinanceNotesTable, purchaserequest.FinanceNotesColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PurchaseRequest entity from the query.
// Returns a *NotFoundError when no PurchaseRequest was found.
func (_q *PurchaseRequestQuery) First(ctx context.Context) (*PurchaseRequest, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{purchaserequest.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PurchaseRequestQuery) FirstX(ctx context.Context) *PurchaseRequest {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PurchaseRequest ID from the query.
// Returns a *NotFoundError when no PurchaseRequest ID was found.
func (_q *PurchaseRequestQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{purchaserequest.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PurchaseRequestQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PurchaseRequest entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PurchaseRequest entity is found.
// Returns a *NotFoundError when no PurchaseRequest entities are found.
func (_q *PurchaseRequestQuery) Only(ctx context.Context) (*PurchaseRequest, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{purchaserequest.Label}
	default:
		return nil, &NotSingularError{purchaserequest.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PurchaseRequestQuery) OnlyX(ctx context.Context) *PurchaseRequest {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PurchaseRequest ID in the query.
// Returns a *NotSingularError when more than one PurchaseRequest ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PurchaseRequestQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{purchaserequest.Label}
	default:
		err = &NotSingularError{purchaserequest.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PurchaseRequestQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PurchaseRequests.
func (_q *PurchaseRequestQuery) All(ctx context.Context) ([]*PurchaseRequest, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PurchaseRequest, *PurchaseRequestQuery]()
	return withInterceptors[[]*PurchaseRequest](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PurchaseRequestQuery) AllX(ctx context.Context) []*PurchaseRequest {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PurchaseRequest IDs.
func (_q *PurchaseRequestQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(purchaserequest.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PurchaseRequestQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PurchaseRequestQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PurchaseRequestQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PurchaseRequestQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PurchaseRequestQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *PurchaseRequestQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PurchaseRequestQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PurchaseRequestQuery) Clone() *PurchaseRequestQuery {
	if _q == nil {
		return nil
	}
	return &PurchaseRequestQuery{
		config:           _q.config,
		ctx:              _q.ctx.Clone(),
		order:            append([]purchaserequest.OrderOption{}, _q.order...),
		inters:           append([]Interceptor{}, _q.inters...),
		predicates:       append([]predicate.PurchaseRequest{}, _q.predicates...),
		withRequester:    _q.withRequester.Clone(),
		withItems:        _q.withItems.Clone(),
		withSteps:        _q.withSteps.Clone(),
		withFinanceNotes: _q.withFinanceNotes.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRequester tells the query-builder to eager-load the nodes that are connected to
// the "requester" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PurchaseRequestQuery) WithRequester(opts ...func(*UserQuery)) *PurchaseRequestQuery {
	query := (&UserClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRequester = query
	return _q
}

// WithItems tells the query-builder to eager-load the nodes that are connected to
// the "items" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PurchaseRequestQuery) WithItems(opts ...func(*RequestItemQuery)) *PurchaseRequestQuery {
	query := (&RequestItemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withItems = query
	return _q
}

// WithSteps tells the query-builder to eager-load the nodes that are connected to
// the "steps" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PurchaseRequestQuery) WithSteps(opts ...func(*ApprovalStepQuery)) *PurchaseRequestQuery {
	query := (&ApprovalStepClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withSteps = query
	return _q
}

// WithFinanceNotes tells the query-builder to eager-load the nodes that are connected to
// the "finance_notes" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PurchaseRequestQuery) WithFinanceNotes(opts ...func(*FinanceNoteQuery)) *PurchaseRequestQuery {
	query := (&FinanceNoteClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withFinanceNotes = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PurchaseRequest.Query().
//		GroupBy(purchaserequest.FieldCreatedAt).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PurchaseRequestQuery) GroupBy(field string, fields ...string) *PurchaseRequestGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PurchaseRequestGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = purchaserequest.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.PurchaseRequest.Query().
//		Select(purchaserequest.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PurchaseRequestQuery) Select(fields ...string) *PurchaseRequestSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PurchaseRequestSelect{PurchaseRequestQuery: _q}
	sbuild.label = purchaserequest.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PurchaseRequestSelect configured with the given aggregations.
func (_q *PurchaseRequestQuery) Aggregate(fns ...AggregateFunc) *PurchaseRequestSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PurchaseRequestQuery) prepareQuery(ctx context.Context) error {
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
		if !purchaserequest.ValidColumn(f) {
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

func (_q *PurchaseRequestQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PurchaseRequest, error) {
	var (
		nodes       = []*PurchaseRequest{}
		_spec       = _q.querySpec()
		loadedTypes = [4]bool{
			_q.withRequester != nil,
			_q.withItems != nil,
			_q.withSteps != nil,
			_q.withFinanceNotes != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PurchaseRequest).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PurchaseRequest{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
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
	if query := _q.withRequester; query != nil {
		if err := _q.loadRequester(ctx, query, nodes, nil,
			func(n *PurchaseRequest, e *User) { n.Edges.Requester = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withItems; query != nil {
		if err := _q.loadItems(ctx, query, nodes,
			func(n *PurchaseRequest) { n.Edges.Items = []*RequestItem{} },
			func(n *PurchaseRequest, e *RequestItem) { n.Edges.Items = append(n.Edges.Items, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withSteps; query != nil {
		if err := _q.loadSteps(ctx, query, nodes,
			func(n *PurchaseRequest) { n.Edges.Steps = []*ApprovalStep{} },
			func(n *PurchaseRequest, e *ApprovalStep) { n.Edges.Steps = append(n.Edges.Steps, e) }); err != nil {
			return nil, err
		}
	}
	if query := _q.withFinanceNotes; query != nil {
		if err := _q.loadFinanceNotes(ctx, query, nodes,
			func(n *PurchaseRequest) { n.Edges.FinanceNotes = []*FinanceNote{} },
			func(n *PurchaseRequest, e *FinanceNote) { n.Edges.FinanceNotes = append(n.Edges.FinanceNotes, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PurchaseRequestQuery) loadRequester(ctx context.Context, query *UserQuery, nodes []*PurchaseRequest, init func(*PurchaseRequest), assign func(*PurchaseRequest, *User)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PurchaseRequest)
	for i := range nodes {
		fk := nodes[i].RequesterID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(user.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "requester_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *PurchaseRequestQuery) loadItems(ctx context.Context, query *RequestItemQuery, nodes []*PurchaseRequest, init func(*PurchaseRequest), assign func(*PurchaseRequest, *RequestItem)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PurchaseRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(requestitem.FieldRequestID)
	}
	query.Where(predicate.RequestItem(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(purchaserequest.ItemsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PurchaseRequestQuery) loadSteps(ctx context.Context, query *ApprovalStepQuery, nodes []*PurchaseRequest, init func(*PurchaseRequest), assign func(*PurchaseRequest, *ApprovalStep)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PurchaseRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(approvalstep.FieldRequestID)
	}
	query.Where(predicate.ApprovalStep(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(purchaserequest.StepsColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}
func (_q *PurchaseRequestQuery) loadFinanceNotes(ctx context.Context, query *FinanceNoteQuery, nodes []*PurchaseRequest, init func(*PurchaseRequest), assign func(*PurchaseRequest, *FinanceNote)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[string]*PurchaseRequest)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(financenote.FieldRequestID)
	}
	query.Where(predicate.FinanceNote(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(purchaserequest.FinanceNotesColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RequestID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "request_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *PurchaseRequestQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PurchaseRequestQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(purchaserequest.Table, purchaserequest.Columns, sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, purchaserequest.FieldID)
		for i := range fields {
			if fields[i] != purchaserequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRequester != nil {
			_spec.Node.AddColumnOnce(purchaserequest.FieldRequesterID)
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

func (_q *PurchaseRequestQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(purchaserequest.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = purchaserequest.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
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

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *PurchaseRequestQuery) ForUpdate(opts ...sql.LockOption) *PurchaseRequestQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *PurchaseRequestQuery) ForShare(opts ...sql.LockOption) *PurchaseRequestQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PurchaseRequestGroupBy is the group-by builder for PurchaseRequest entities.
type PurchaseRequestGroupBy struct {
	selector
	build *PurchaseRequestQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PurchaseRequestGroupBy) Aggregate(fns ...AggregateFunc) *PurchaseRequestGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PurchaseRequestGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PurchaseRequestQuery, *PurchaseRequestGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PurchaseRequestGroupBy) sqlScan(ctx context.Context, root *PurchaseRequestQuery, v any) error {
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

// PurchaseRequestSelect is the builder for selecting fields of PurchaseRequest entities.
type PurchaseRequestSelect struct {
	*PurchaseRequestQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PurchaseRequestSelect) Aggregate(fns ...AggregateFunc) *PurchaseRequestSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PurchaseRequestSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PurchaseRequestQuery, *PurchaseRequestSelect](ctx, _s.PurchaseRequestQuery, _s, _s.inters, v)
}

func (_s *PurchaseRequestSelect) sqlScan(ctx context.Context, root *PurchaseRequestQuery, v any) error {
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
