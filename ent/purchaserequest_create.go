// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
	"procureflow.io/procureflow/ent/user"
)

// PurchaseRequestCreate is the builder for creating a PurchaseRequest entity.
type PurchaseRequestCreate struct {
	config
	mutation *PurchaseRequestMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *PurchaseRequestCreate) SetCreatedAt(v time.Time) *PurchaseRequestCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableCreatedAt(v *time.Time) *PurchaseRequestCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PurchaseRequestCreate) SetUpdatedAt(v time.Time) *PurchaseRequestCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableUpdatedAt(v *time.Time) *PurchaseRequestCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetRequesterID sets the "requester_id" field.
func (_c *PurchaseRequestCreate) SetRequesterID(v string) *PurchaseRequestCreate {
	_c.mutation.SetRequesterID(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *PurchaseRequestCreate) SetTitle(v string) *PurchaseRequestCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *PurchaseRequestCreate) SetDescription(v string) *PurchaseRequestCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableDescription(v *string) *PurchaseRequestCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetAmount sets the "amount" field.
func (_c *PurchaseRequestCreate) SetAmount(v decimal.Decimal) *PurchaseRequestCreate {
	_c.mutation.SetAmount(v)
	return _c
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableAmount(v *decimal.Decimal) *PurchaseRequestCreate {
	if v != nil {
		_c.SetAmount(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *PurchaseRequestCreate) SetStatus(v purchaserequest.Status) *PurchaseRequestCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableStatus(v *purchaserequest.Status) *PurchaseRequestCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetRequiredLevels sets the "required_levels" field.
func (_c *PurchaseRequestCreate) SetRequiredLevels(v int) *PurchaseRequestCreate {
	_c.mutation.SetRequiredLevels(v)
	return _c
}

// SetNillableRequiredLevels sets the "required_levels" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableRequiredLevels(v *int) *PurchaseRequestCreate {
	if v != nil {
		_c.SetRequiredLevels(*v)
	}
	return _c
}

// SetLastLevel sets the "last_level" field.
func (_c *PurchaseRequestCreate) SetLastLevel(v int) *PurchaseRequestCreate {
	_c.mutation.SetLastLevel(v)
	return _c
}

// SetNillableLastLevel sets the "last_level" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableLastLevel(v *int) *PurchaseRequestCreate {
	if v != nil {
		_c.SetLastLevel(*v)
	}
	return _c
}

// SetProformaInvoice sets the "proforma_invoice" field.
func (_c *PurchaseRequestCreate) SetProformaInvoice(v string) *PurchaseRequestCreate {
	_c.mutation.SetProformaInvoice(v)
	return _c
}

// SetNillableProformaInvoice sets the "proforma_invoice" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableProformaInvoice(v *string) *PurchaseRequestCreate {
	if v != nil {
		_c.SetProformaInvoice(*v)
	}
	return _c
}

// SetPurchaseOrder sets the "purchase_order" field.
func (_c *PurchaseRequestCreate) SetPurchaseOrder(v string) *PurchaseRequestCreate {
	_c.mutation.SetPurchaseOrder(v)
	return _c
}

// SetNillablePurchaseOrder sets the "purchase_order" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillablePurchaseOrder(v *string) *PurchaseRequestCreate {
	if v != nil {
		_c.SetPurchaseOrder(*v)
	}
	return _c
}

// SetReceipt sets the "receipt" field.
func (_c *PurchaseRequestCreate) SetReceipt(v string) *PurchaseRequestCreate {
	_c.mutation.SetReceipt(v)
	return _c
}

// SetNillableReceipt sets the "receipt" field if the given value is not nil.
func (_c *PurchaseRequestCreate) SetNillableReceipt(v *string) *PurchaseRequestCreate {
	if v != nil {
		_c.SetReceipt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PurchaseRequestCreate) SetID(v string) *PurchaseRequestCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRequester sets the "requester" edge to the User entity.
func (_c *PurchaseRequestCreate) SetRequester(v *User) *PurchaseRequestCreate {
	return _c.SetRequesterID(v.ID)
}

// AddItemIDs adds the "items" edge to the RequestItem entity by IDs.
func (_c *PurchaseRequestCreate) AddItemIDs(ids ...string) *PurchaseRequestCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the RequestItem entity.
func (_c *PurchaseRequestCreate) AddItems(v ...*RequestItem) *PurchaseRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the ApprovalStep entity by IDs.
func (_c *PurchaseRequestCreate) AddStepIDs(ids ...string) *PurchaseRequestCreate {
	_c.mutation.AddStepIDs(ids...)
	return _c
}

// AddSteps adds the "steps" edges to the ApprovalStep entity.
func (_c *PurchaseRequestCreate) AddSteps(v ...*ApprovalStep) *PurchaseRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddStepIDs(ids...)
}

// AddFinanceNoteIDs adds the "finance_notes" edge to the FinanceNote entity by IDs.
func (_c *PurchaseRequestCreate) AddFinanceNoteIDs(ids ...string) *PurchaseRequestCreate {
	_c.mutation.AddFinanceNoteIDs(ids...)
	return _c
}

// AddFinanceNotes adds the "finance_notes" edges to the FinanceNote entity.
func (_c *PurchaseRequestCreate) AddFinanceNotes(v ...*FinanceNote) *PurchaseRequestCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddFinanceNoteIDs(ids...)
}

// Mutation returns the PurchaseRequestMutation object of the builder.
func (_c *PurchaseRequestCreate) Mutation() *PurchaseRequestMutation {
	return _c.mutation
}

// Save creates the PurchaseRequest in the database.
func (_c *PurchaseRequestCreate) Save(ctx context.Context) (*PurchaseRequest, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PurchaseRequestCreate) SaveX(ctx context.Context) *PurchaseRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseRequestCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseRequestCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PurchaseRequestCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := purchaserequest.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := purchaserequest.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Amount(); !ok {
		v := purchaserequest.DefaultAmount
		_c.mutation.SetAmount(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := purchaserequest.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.RequiredLevels(); !ok {
		v := purchaserequest.DefaultRequiredLevels
		_c.mutation.SetRequiredLevels(v)
	}
	if _, ok := _c.mutation.LastLevel(); !ok {
		v := purchaserequest.DefaultLastLevel
		_c.mutation.SetLastLevel(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PurchaseRequestCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PurchaseRequest.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PurchaseRequest.updated_at"`)}
	}
	if _, ok := _c.mutation.RequesterID(); !ok {
		return &ValidationError{Name: "requester_id", err: errors.New(`ent: missing required field "PurchaseRequest.requester_id"`)}
	}
	if v, ok := _c.mutation.RequesterID(); ok {
		if err := purchaserequest.RequesterIDValidator(v); err != nil {
			return &ValidationError{Name: "requester_id", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.requester_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "PurchaseRequest.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := purchaserequest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Amount(); !ok {
		return &ValidationError{Name: "amount", err: errors.New(`ent: missing required field "PurchaseRequest.amount"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "PurchaseRequest.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := purchaserequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RequiredLevels(); !ok {
		return &ValidationError{Name: "required_levels", err: errors.New(`ent: missing required field "PurchaseRequest.required_levels"`)}
	}
	if v, ok := _c.mutation.RequiredLevels(); ok {
		if err := purchaserequest.RequiredLevelsValidator(v); err != nil {
			return &ValidationError{Name: "required_levels", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.required_levels": %w`, err)}
		}
	}
	if _, ok := _c.mutation.LastLevel(); !ok {
		return &ValidationError{Name: "last_level", err: errors.New(`ent: missing required field "PurchaseRequest.last_level"`)}
	}
	if v, ok := _c.mutation.LastLevel(); ok {
		if err := purchaserequest.LastLevelValidator(v); err != nil {
			return &ValidationError{Name: "last_level", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.last_level": %w`, err)}
		}
	}
	if len(_c.mutation.RequesterIDs()) == 0 {
		return &ValidationError{Name: "requester", err: errors.New(`ent: missing required edge "PurchaseRequest.requester"`)}
	}
	return nil
}

func (_c *PurchaseRequestCreate) sqlSave(ctx context.Context) (*PurchaseRequest, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PurchaseRequest.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PurchaseRequestCreate) createSpec() (*PurchaseRequest, *sqlgraph.CreateSpec) {
	var (
		_node = &PurchaseRequest{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(purchaserequest.Table, sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(purchaserequest.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaserequest.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(purchaserequest.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(purchaserequest.FieldDescription, field.TypeString, value)
		_node.Description = value
	}
	if value, ok := _c.mutation.Amount(); ok {
		_spec.SetField(purchaserequest.FieldAmount, field.TypeOther, value)
		_node.Amount = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(purchaserequest.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.RequiredLevels(); ok {
		_spec.SetField(purchaserequest.FieldRequiredLevels, field.TypeInt, value)
		_node.RequiredLevels = value
	}
	if value, ok := _c.mutation.LastLevel(); ok {
		_spec.SetField(purchaserequest.FieldLastLevel, field.TypeInt, value)
		_node.LastLevel = value
	}
	if value, ok := _c.mutation.ProformaInvoice(); ok {
		_spec.SetField(purchaserequest.FieldProformaInvoice, field.TypeString, value)
		_node.ProformaInvoice = value
	}
	if value, ok := _c.mutation.PurchaseOrder(); ok {
		_spec.SetField(purchaserequest.FieldPurchaseOrder, field.TypeString, value)
		_node.PurchaseOrder = value
	}
	if value, ok := _c.mutation.Receipt(); ok {
		_spec.SetField(purchaserequest.FieldReceipt, field.TypeString, value)
		_node.Receipt = value
	}
	if nodes := _c.mutation.RequesterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   purchaserequest.RequesterTable,
			Columns: []string{purchaserequest.RequesterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RequesterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaserequest.ItemsTable,
			Columns: []string{purchaserequest.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(requestitem.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.StepsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaserequest.StepsTable,
			Columns: []string{purchaserequest.StepsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(approvalstep.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.FinanceNotesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   purchaserequest.FinanceNotesTable,
			Columns: []string{purchaserequest.FinanceNotesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(financenote.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PurchaseRequestCreateBulk is the builder for creating many PurchaseRequest entities in bulk.
type PurchaseRequestCreateBulk struct {
	config
	err      error
	builders []*PurchaseRequestCreate
}

// Save creates the PurchaseRequest entities in the database.
func (_c *PurchaseRequestCreateBulk) Save(ctx context.Context) ([]*PurchaseRequest, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PurchaseRequest, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PurchaseRequestMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PurchaseRequestCreateBulk) SaveX(ctx context.Context) []*PurchaseRequest {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PurchaseRequestCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PurchaseRequestCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
