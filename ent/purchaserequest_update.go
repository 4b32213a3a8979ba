// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/approvalstep"
	"procureflow.io/procureflow/ent/financenote"
	"procureflow.io/procureflow/ent/predicate"
	"procureflow.io/procureflow/ent/purchaserequest"
	"procureflow.io/procureflow/ent/requestitem"
)

// PurchaseRequestUpdate is the builder for updating PurchaseRequest entities.
type PurchaseRequestUpdate struct {
	config
	hooks    []Hook
	mutation *PurchaseRequestMutation
}

// Where appends a list predicates to the PurchaseRequestUpdate builder.
func (_u *PurchaseRequestUpdate) Where(ps ...predicate.PurchaseRequest) *PurchaseRequestUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PurchaseRequestUpdate) SetUpdatedAt(v time.Time) *PurchaseRequestUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PurchaseRequestUpdate) SetTitle(v string) *PurchaseRequestUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableTitle(v *string) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PurchaseRequestUpdate) SetDescription(v string) *PurchaseRequestUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableDescription(v *string) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PurchaseRequestUpdate) ClearDescription() *PurchaseRequestUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PurchaseRequestUpdate) SetAmount(v decimal.Decimal) *PurchaseRequestUpdate {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableAmount(v *decimal.Decimal) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PurchaseRequestUpdate) SetStatus(v purchaserequest.Status) *PurchaseRequestUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableStatus(v *purchaserequest.Status) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequiredLevels sets the "required_levels" field.
func (_u *PurchaseRequestUpdate) SetRequiredLevels(v int) *PurchaseRequestUpdate {
	_u.mutation.ResetRequiredLevels()
	_u.mutation.SetRequiredLevels(v)
	return _u
}

// SetNillableRequiredLevels sets the "required_levels" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableRequiredLevels(v *int) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetRequiredLevels(*v)
	}
	return _u
}

// AddRequiredLevels adds value to the "required_levels" field.
func (_u *PurchaseRequestUpdate) AddRequiredLevels(v int) *PurchaseRequestUpdate {
	_u.mutation.AddRequiredLevels(v)
	return _u
}

// SetLastLevel sets the "last_level" field.
func (_u *PurchaseRequestUpdate) SetLastLevel(v int) *PurchaseRequestUpdate {
	_u.mutation.ResetLastLevel()
	_u.mutation.SetLastLevel(v)
	return _u
}

// SetNillableLastLevel sets the "last_level" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableLastLevel(v *int) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetLastLevel(*v)
	}
	return _u
}

// AddLastLevel adds value to the "last_level" field.
func (_u *PurchaseRequestUpdate) AddLastLevel(v int) *PurchaseRequestUpdate {
	_u.mutation.AddLastLevel(v)
	return _u
}

// SetProformaInvoice sets the "proforma_invoice" field.
func (_u *PurchaseRequestUpdate) SetProformaInvoice(v string) *PurchaseRequestUpdate {
	_u.mutation.SetProformaInvoice(v)
	return _u
}

// SetNillableProformaInvoice sets the "proforma_invoice" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableProformaInvoice(v *string) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetProformaInvoice(*v)
	}
	return _u
}

// ClearProformaInvoice clears the value of the "proforma_invoice" field.
func (_u *PurchaseRequestUpdate) ClearProformaInvoice() *PurchaseRequestUpdate {
	_u.mutation.ClearProformaInvoice()
	return _u
}

// SetPurchaseOrder sets the "purchase_order" field.
func (_u *PurchaseRequestUpdate) SetPurchaseOrder(v string) *PurchaseRequestUpdate {
	_u.mutation.SetPurchaseOrder(v)
	return _u
}

// SetNillablePurchaseOrder sets the "purchase_order" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillablePurchaseOrder(v *string) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetPurchaseOrder(*v)
	}
	return _u
}

// ClearPurchaseOrder clears the value of the "purchase_order" field.
func (_u *PurchaseRequestUpdate) ClearPurchaseOrder() *PurchaseRequestUpdate {
	_u.mutation.ClearPurchaseOrder()
	return _u
}

// SetReceipt sets the "receipt" field.
func (_u *PurchaseRequestUpdate) SetReceipt(v string) *PurchaseRequestUpdate {
	_u.mutation.SetReceipt(v)
	return _u
}

// SetNillableReceipt sets the "receipt" field if the given value is not nil.
func (_u *PurchaseRequestUpdate) SetNillableReceipt(v *string) *PurchaseRequestUpdate {
	if v != nil {
		_u.SetReceipt(*v)
	}
	return _u
}

// ClearReceipt clears the value of the "receipt" field.
func (_u *PurchaseRequestUpdate) ClearReceipt() *PurchaseRequestUpdate {
	_u.mutation.ClearReceipt()
	return _u
}

// AddItemIDs adds the "items" edge to the RequestItem entity by IDs.
func (_u *PurchaseRequestUpdate) AddItemIDs(ids ...string) *PurchaseRequestUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the RequestItem entity.
func (_u *PurchaseRequestUpdate) AddItems(v ...*RequestItem) *PurchaseRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the ApprovalStep entity by IDs.
func (_u *PurchaseRequestUpdate) AddStepIDs(ids ...string) *PurchaseRequestUpdate {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the ApprovalStep entity.
func (_u *PurchaseRequestUpdate) AddSteps(v ...*ApprovalStep) *PurchaseRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddFinanceNoteIDs adds the "finance_notes" edge to the FinanceNote entity by IDs.
func (_u *PurchaseRequestUpdate) AddFinanceNoteIDs(ids ...string) *PurchaseRequestUpdate {
	_u.mutation.AddFinanceNoteIDs(ids...)
	return _u
}

// AddFinanceNotes adds the "finance_notes" edges to the FinanceNote entity.
func (_u *PurchaseRequestUpdate) AddFinanceNotes(v ...*FinanceNote) *PurchaseRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinanceNoteIDs(ids...)
}

// Mutation returns the PurchaseRequestMutation object of the builder.
func (_u *PurchaseRequestUpdate) Mutation() *PurchaseRequestMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the RequestItem entity.
func (_u *PurchaseRequestUpdate) ClearItems() *PurchaseRequestUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to RequestItem entities by IDs.
func (_u *PurchaseRequestUpdate) RemoveItemIDs(ids ...string) *PurchaseRequestUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to RequestItem entities.
func (_u *PurchaseRequestUpdate) RemoveItems(v ...*RequestItem) *PurchaseRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearSteps clears all "steps" edges to the ApprovalStep entity.
func (_u *PurchaseRequestUpdate) ClearSteps() *PurchaseRequestUpdate {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to ApprovalStep entities by IDs.
func (_u *PurchaseRequestUpdate) RemoveStepIDs(ids ...string) *PurchaseRequestUpdate {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to ApprovalStep entities.
func (_u *PurchaseRequestUpdate) RemoveSteps(v ...*ApprovalStep) *PurchaseRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearFinanceNotes clears all "finance_notes" edges to the FinanceNote entity.
func (_u *PurchaseRequestUpdate) ClearFinanceNotes() *PurchaseRequestUpdate {
	_u.mutation.ClearFinanceNotes()
	return _u
}

// RemoveFinanceNoteIDs removes the "finance_notes" edge to FinanceNote entities by IDs.
func (_u *PurchaseRequestUpdate) RemoveFinanceNoteIDs(ids ...string) *PurchaseRequestUpdate {
	_u.mutation.RemoveFinanceNoteIDs(ids...)
	return _u
}

// RemoveFinanceNotes removes "finance_notes" edges to FinanceNote entities.
func (_u *PurchaseRequestUpdate) RemoveFinanceNotes(v ...*FinanceNote) *PurchaseRequestUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinanceNoteIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PurchaseRequestUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseRequestUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PurchaseRequestUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseRequestUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PurchaseRequestUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := purchaserequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseRequestUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := purchaserequest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := purchaserequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredLevels(); ok {
		if err := purchaserequest.RequiredLevelsValidator(v); err != nil {
			return &ValidationError{Name: "required_levels", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.required_levels": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastLevel(); ok {
		if err := purchaserequest.LastLevelValidator(v); err != nil {
			return &ValidationError{Name: "last_level", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.last_level": %w`, err)}
		}
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PurchaseRequest.requester"`)
	}
	return nil
}

func (_u *PurchaseRequestUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaserequest.Table, purchaserequest.Columns, sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaserequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(purchaserequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(purchaserequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(purchaserequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(purchaserequest.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(purchaserequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiredLevels(); ok {
		_spec.SetField(purchaserequest.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredLevels(); ok {
		_spec.AddField(purchaserequest.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastLevel(); ok {
		_spec.SetField(purchaserequest.FieldLastLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastLevel(); ok {
		_spec.AddField(purchaserequest.FieldLastLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProformaInvoice(); ok {
		_spec.SetField(purchaserequest.FieldProformaInvoice, field.TypeString, value)
	}
	if _u.mutation.ProformaInvoiceCleared() {
		_spec.ClearField(purchaserequest.FieldProformaInvoice, field.TypeString)
	}
	if value, ok := _u.mutation.PurchaseOrder(); ok {
		_spec.SetField(purchaserequest.FieldPurchaseOrder, field.TypeString, value)
	}
	if _u.mutation.PurchaseOrderCleared() {
		_spec.ClearField(purchaserequest.FieldPurchaseOrder, field.TypeString)
	}
	if value, ok := _u.mutation.Receipt(); ok {
		_spec.SetField(purchaserequest.FieldReceipt, field.TypeString, value)
	}
	if _u.mutation.ReceiptCleared() {
		_spec.ClearField(purchaserequest.FieldReceipt, field.TypeString)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinanceNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinanceNotesIDs(); len(nodes) > 0 && !_u.mutation.FinanceNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinanceNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaserequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PurchaseRequestUpdateOne is the builder for updating a single PurchaseRequest entity.
type PurchaseRequestUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PurchaseRequestMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PurchaseRequestUpdateOne) SetUpdatedAt(v time.Time) *PurchaseRequestUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *PurchaseRequestUpdateOne) SetTitle(v string) *PurchaseRequestUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableTitle(v *string) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PurchaseRequestUpdateOne) SetDescription(v string) *PurchaseRequestUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableDescription(v *string) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *PurchaseRequestUpdateOne) ClearDescription() *PurchaseRequestUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetAmount sets the "amount" field.
func (_u *PurchaseRequestUpdateOne) SetAmount(v decimal.Decimal) *PurchaseRequestUpdateOne {
	_u.mutation.SetAmount(v)
	return _u
}

// SetNillableAmount sets the "amount" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableAmount(v *decimal.Decimal) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetAmount(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PurchaseRequestUpdateOne) SetStatus(v purchaserequest.Status) *PurchaseRequestUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableStatus(v *purchaserequest.Status) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetRequiredLevels sets the "required_levels" field.
func (_u *PurchaseRequestUpdateOne) SetRequiredLevels(v int) *PurchaseRequestUpdateOne {
	_u.mutation.ResetRequiredLevels()
	_u.mutation.SetRequiredLevels(v)
	return _u
}

// SetNillableRequiredLevels sets the "required_levels" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableRequiredLevels(v *int) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetRequiredLevels(*v)
	}
	return _u
}

// AddRequiredLevels adds value to the "required_levels" field.
func (_u *PurchaseRequestUpdateOne) AddRequiredLevels(v int) *PurchaseRequestUpdateOne {
	_u.mutation.AddRequiredLevels(v)
	return _u
}

// SetLastLevel sets the "last_level" field.
func (_u *PurchaseRequestUpdateOne) SetLastLevel(v int) *PurchaseRequestUpdateOne {
	_u.mutation.ResetLastLevel()
	_u.mutation.SetLastLevel(v)
	return _u
}

// SetNillableLastLevel sets the "last_level" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableLastLevel(v *int) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetLastLevel(*v)
	}
	return _u
}

// AddLastLevel adds value to the "last_level" field.
func (_u *PurchaseRequestUpdateOne) AddLastLevel(v int) *PurchaseRequestUpdateOne {
	_u.mutation.AddLastLevel(v)
	return _u
}

// SetProformaInvoice sets the "proforma_invoice" field.
func (_u *PurchaseRequestUpdateOne) SetProformaInvoice(v string) *PurchaseRequestUpdateOne {
	_u.mutation.SetProformaInvoice(v)
	return _u
}

// SetNillableProformaInvoice sets the "proforma_invoice" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableProformaInvoice(v *string) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetProformaInvoice(*v)
	}
	return _u
}

// ClearProformaInvoice clears the value of the "proforma_invoice" field.
func (_u *PurchaseRequestUpdateOne) ClearProformaInvoice() *PurchaseRequestUpdateOne {
	_u.mutation.ClearProformaInvoice()
	return _u
}

// SetPurchaseOrder sets the "purchase_order" field.
func (_u *PurchaseRequestUpdateOne) SetPurchaseOrder(v string) *PurchaseRequestUpdateOne {
	_u.mutation.SetPurchaseOrder(v)
	return _u
}

// SetNillablePurchaseOrder sets the "purchase_order" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillablePurchaseOrder(v *string) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetPurchaseOrder(*v)
	}
	return _u
}

// ClearPurchaseOrder clears the value of the "purchase_order" field.
func (_u *PurchaseRequestUpdateOne) ClearPurchaseOrder() *PurchaseRequestUpdateOne {
	_u.mutation.ClearPurchaseOrder()
	return _u
}

// SetReceipt sets the "receipt" field.
func (_u *PurchaseRequestUpdateOne) SetReceipt(v string) *PurchaseRequestUpdateOne {
	_u.mutation.SetReceipt(v)
	return _u
}

// SetNillableReceipt sets the "receipt" field if the given value is not nil.
func (_u *PurchaseRequestUpdateOne) SetNillableReceipt(v *string) *PurchaseRequestUpdateOne {
	if v != nil {
		_u.SetReceipt(*v)
	}
	return _u
}

// ClearReceipt clears the value of the "receipt" field.
func (_u *PurchaseRequestUpdateOne) ClearReceipt() *PurchaseRequestUpdateOne {
	_u.mutation.ClearReceipt()
	return _u
}

// AddItemIDs adds the "items" edge to the RequestItem entity by IDs.
func (_u *PurchaseRequestUpdateOne) AddItemIDs(ids ...string) *PurchaseRequestUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the RequestItem entity.
func (_u *PurchaseRequestUpdateOne) AddItems(v ...*RequestItem) *PurchaseRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddStepIDs adds the "steps" edge to the ApprovalStep entity by IDs.
func (_u *PurchaseRequestUpdateOne) AddStepIDs(ids ...string) *PurchaseRequestUpdateOne {
	_u.mutation.AddStepIDs(ids...)
	return _u
}

// AddSteps adds the "steps" edges to the ApprovalStep entity.
func (_u *PurchaseRequestUpdateOne) AddSteps(v ...*ApprovalStep) *PurchaseRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddStepIDs(ids...)
}

// AddFinanceNoteIDs adds the "finance_notes" edge to the FinanceNote entity by IDs.
func (_u *PurchaseRequestUpdateOne) AddFinanceNoteIDs(ids ...string) *PurchaseRequestUpdateOne {
	_u.mutation.AddFinanceNoteIDs(ids...)
	return _u
}

// AddFinanceNotes adds the "finance_notes" edges to the FinanceNote entity.
func (_u *PurchaseRequestUpdateOne) AddFinanceNotes(v ...*FinanceNote) *PurchaseRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddFinanceNoteIDs(ids...)
}

// Mutation returns the PurchaseRequestMutation object of the builder.
func (_u *PurchaseRequestUpdateOne) Mutation() *PurchaseRequestMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the RequestItem entity.
func (_u *PurchaseRequestUpdateOne) ClearItems() *PurchaseRequestUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to RequestItem entities by IDs.
func (_u *PurchaseRequestUpdateOne) RemoveItemIDs(ids ...string) *PurchaseRequestUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to RequestItem entities.
func (_u *PurchaseRequestUpdateOne) RemoveItems(v ...*RequestItem) *PurchaseRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearSteps clears all "steps" edges to the ApprovalStep entity.
func (_u *PurchaseRequestUpdateOne) ClearSteps() *PurchaseRequestUpdateOne {
	_u.mutation.ClearSteps()
	return _u
}

// RemoveStepIDs removes the "steps" edge to ApprovalStep entities by IDs.
func (_u *PurchaseRequestUpdateOne) RemoveStepIDs(ids ...string) *PurchaseRequestUpdateOne {
	_u.mutation.RemoveStepIDs(ids...)
	return _u
}

// RemoveSteps removes "steps" edges to ApprovalStep entities.
func (_u *PurchaseRequestUpdateOne) RemoveSteps(v ...*ApprovalStep) *PurchaseRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveStepIDs(ids...)
}

// ClearFinanceNotes clears all "finance_notes" edges to the FinanceNote entity.
func (_u *PurchaseRequestUpdateOne) ClearFinanceNotes() *PurchaseRequestUpdateOne {
	_u.mutation.ClearFinanceNotes()
	return _u
}

// RemoveFinanceNoteIDs removes the "finance_notes" edge to FinanceNote entities by IDs.
func (_u *PurchaseRequestUpdateOne) RemoveFinanceNoteIDs(ids ...string) *PurchaseRequestUpdateOne {
	_u.mutation.RemoveFinanceNoteIDs(ids...)
	return _u
}

// RemoveFinanceNotes removes "finance_notes" edges to FinanceNote entities.
func (_u *PurchaseRequestUpdateOne) RemoveFinanceNotes(v ...*FinanceNote) *PurchaseRequestUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveFinanceNoteIDs(ids...)
}

// Where appends a list predicates to the PurchaseRequestUpdate builder.
func (_u *PurchaseRequestUpdateOne) Where(ps ...predicate.PurchaseRequest) *PurchaseRequestUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PurchaseRequestUpdateOne) Select(field string, fields ...string) *PurchaseRequestUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PurchaseRequest entity.
func (_u *PurchaseRequestUpdateOne) Save(ctx context.Context) (*PurchaseRequest, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PurchaseRequestUpdateOne) SaveX(ctx context.Context) *PurchaseRequest {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PurchaseRequestUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PurchaseRequestUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PurchaseRequestUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := purchaserequest.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PurchaseRequestUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := purchaserequest.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := purchaserequest.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredLevels(); ok {
		if err := purchaserequest.RequiredLevelsValidator(v); err != nil {
			return &ValidationError{Name: "required_levels", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.required_levels": %w`, err)}
		}
	}
	if v, ok := _u.mutation.LastLevel(); ok {
		if err := purchaserequest.LastLevelValidator(v); err != nil {
			return &ValidationError{Name: "last_level", err: fmt.Errorf(`ent: validator failed for field "PurchaseRequest.last_level": %w`, err)}
		}
	}
	if _u.mutation.RequesterCleared() && len(_u.mutation.RequesterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PurchaseRequest.requester"`)
	}
	return nil
}

func (_u *PurchaseRequestUpdateOne) sqlSave(ctx context.Context) (_node *PurchaseRequest, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(purchaserequest.Table, purchaserequest.Columns, sqlgraph.NewFieldSpec(purchaserequest.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PurchaseRequest.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, purchaserequest.FieldID)
		for _, f := range fields {
			if !purchaserequest.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != purchaserequest.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(purchaserequest.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(purchaserequest.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(purchaserequest.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(purchaserequest.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.Amount(); ok {
		_spec.SetField(purchaserequest.FieldAmount, field.TypeOther, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(purchaserequest.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.RequiredLevels(); ok {
		_spec.SetField(purchaserequest.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRequiredLevels(); ok {
		_spec.AddField(purchaserequest.FieldRequiredLevels, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastLevel(); ok {
		_spec.SetField(purchaserequest.FieldLastLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedLastLevel(); ok {
		_spec.AddField(purchaserequest.FieldLastLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProformaInvoice(); ok {
		_spec.SetField(purchaserequest.FieldProformaInvoice, field.TypeString, value)
	}
	if _u.mutation.ProformaInvoiceCleared() {
		_spec.ClearField(purchaserequest.FieldProformaInvoice, field.TypeString)
	}
	if value, ok := _u.mutation.PurchaseOrder(); ok {
		_spec.SetField(purchaserequest.FieldPurchaseOrder, field.TypeString, value)
	}
	if _u.mutation.PurchaseOrderCleared() {
		_spec.ClearField(purchaserequest.FieldPurchaseOrder, field.TypeString)
	}
	if value, ok := _u.mutation.Receipt(); ok {
		_spec.SetField(purchaserequest.FieldReceipt, field.TypeString, value)
	}
	if _u.mutation.ReceiptCleared() {
		_spec.ClearField(purchaserequest.FieldReceipt, field.TypeString)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedStepsIDs(); len(nodes) > 0 && !_u.mutation.StepsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.StepsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.FinanceNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedFinanceNotesIDs(); len(nodes) > 0 && !_u.mutation.FinanceNotesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FinanceNotesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PurchaseRequest{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{purchaserequest.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
