// Code generated by ent, DO NOT EDIT.

package purchaserequest

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// RequesterID applies equality check predicate on the "requester_id" field. It's identical to RequesterIDEQ.
func RequesterID(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldRequesterID, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldTitle, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldDescription, v))
}

// Amount applies equality check predicate on the "amount" field. It's identical to AmountEQ.
func Amount(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldAmount, v))
}

// RequiredLevels applies equality check predicate on the "required_levels" field. It's identical to RequiredLevelsEQ.
func RequiredLevels(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldRequiredLevels, v))
}

// LastLevel applies equality check predicate on the "last_level" field. It's identical to LastLevelEQ.
func LastLevel(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldLastLevel, v))
}

// ProformaInvoice applies equality check predicate on the "proforma_invoice" field. It's identical to ProformaInvoiceEQ.
func ProformaInvoice(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldProformaInvoice, v))
}

// PurchaseOrder applies equality check predicate on the "purchase_order" field. It's identical to PurchaseOrderEQ.
func PurchaseOrder(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldPurchaseOrder, v))
}

// Receipt applies equality check predicate on the "receipt" field. It's identical to ReceiptEQ.
func Receipt(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldReceipt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldUpdatedAt, v))
}

// RequesterIDEQ applies the EQ predicate on the "requester_id" field.
func RequesterIDEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldRequesterID, v))
}

// RequesterIDNEQ applies the NEQ predicate on the "requester_id" field.
func RequesterIDNEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldRequesterID, v))
}

// RequesterIDIn applies the In predicate on the "requester_id" field.
func RequesterIDIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldRequesterID, vs...))
}

// RequesterIDNotIn applies the NotIn predicate on the "requester_id" field.
func RequesterIDNotIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldRequesterID, vs...))
}

// RequesterIDGT applies the GT predicate on the "requester_id" field.
func RequesterIDGT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldRequesterID, v))
}

// RequesterIDGTE applies the GTE predicate on the "requester_id" field.
func RequesterIDGTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldRequesterID, v))
}

// RequesterIDLT applies the LT predicate on the "requester_id" field.
func RequesterIDLT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldRequesterID, v))
}

// RequesterIDLTE applies the LTE predicate on the "requester_id" field.
func RequesterIDLTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldRequesterID, v))
}

// RequesterIDContains applies the Contains predicate on the "requester_id" field.
func RequesterIDContains(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContains(FieldRequesterID, v))
}

// RequesterIDHasPrefix applies the HasPrefix predicate on the "requester_id" field.
func RequesterIDHasPrefix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasPrefix(FieldRequesterID, v))
}

// RequesterIDHasSuffix applies the HasSuffix predicate on the "requester_id" field.
func RequesterIDHasSuffix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasSuffix(FieldRequesterID, v))
}

// RequesterIDEqualFold applies the EqualFold predicate on the "requester_id" field.
func RequesterIDEqualFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldRequesterID, v))
}

// RequesterIDContainsFold applies the ContainsFold predicate on the "requester_id" field.
func RequesterIDContainsFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldRequesterID, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldTitle, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldDescription, v))
}

// AmountEQ applies the EQ predicate on the "amount" field.
func AmountEQ(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldAmount, v))
}

// AmountNEQ applies the NEQ predicate on the "amount" field.
func AmountNEQ(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldAmount, v))
}

// AmountIn applies the In predicate on the "amount" field.
func AmountIn(vs ...decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldAmount, vs...))
}

// AmountNotIn applies the NotIn predicate on the "amount" field.
func AmountNotIn(vs ...decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldAmount, vs...))
}

// AmountGT applies the GT predicate on the "amount" field.
func AmountGT(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldAmount, v))
}

// AmountGTE applies the GTE predicate on the "amount" field.
func AmountGTE(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldAmount, v))
}

// AmountLT applies the LT predicate on the "amount" field.
func AmountLT(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldAmount, v))
}

// AmountLTE applies the LTE predicate on the "amount" field.
func AmountLTE(v decimal.Decimal) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldAmount, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldStatus, vs...))
}

// RequiredLevelsEQ applies the EQ predicate on the "required_levels" field.
func RequiredLevelsEQ(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldRequiredLevels, v))
}

// RequiredLevelsNEQ applies the NEQ predicate on the "required_levels" field.
func RequiredLevelsNEQ(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldRequiredLevels, v))
}

// RequiredLevelsIn applies the In predicate on the "required_levels" field.
func RequiredLevelsIn(vs ...int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldRequiredLevels, vs...))
}

// RequiredLevelsNotIn applies the NotIn predicate on the "required_levels" field.
func RequiredLevelsNotIn(vs ...int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldRequiredLevels, vs...))
}

// RequiredLevelsGT applies the GT predicate on the "required_levels" field.
func RequiredLevelsGT(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldRequiredLevels, v))
}

// RequiredLevelsGTE applies the GTE predicate on the "required_levels" field.
func RequiredLevelsGTE(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldRequiredLevels, v))
}

// RequiredLevelsLT applies the LT predicate on the "required_levels" field.
func RequiredLevelsLT(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldRequiredLevels, v))
}

// RequiredLevelsLTE applies the LTE predicate on the "required_levels" field.
func RequiredLevelsLTE(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldRequiredLevels, v))
}

// LastLevelEQ applies the EQ predicate on the "last_level" field.
func LastLevelEQ(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldLastLevel, v))
}

// LastLevelNEQ applies the NEQ predicate on the "last_level" field.
func LastLevelNEQ(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldLastLevel, v))
}

// LastLevelIn applies the In predicate on the "last_level" field.
func LastLevelIn(vs ...int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldLastLevel, vs...))
}

// LastLevelNotIn applies the NotIn predicate on the "last_level" field.
func LastLevelNotIn(vs ...int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldLastLevel, vs...))
}

// LastLevelGT applies the GT predicate on the "last_level" field.
func LastLevelGT(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldLastLevel, v))
}

// LastLevelGTE applies the GTE predicate on the "last_level" field.
func LastLevelGTE(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldLastLevel, v))
}

// LastLevelLT applies the LT predicate on the "last_level" field.
func LastLevelLT(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldLastLevel, v))
}

// LastLevelLTE applies the LTE predicate on the "last_level" field.
func LastLevelLTE(v int) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldLastLevel, v))
}

// ProformaInvoiceEQ applies the EQ predicate on the "proforma_invoice" field.
func ProformaInvoiceEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldProformaInvoice, v))
}

// ProformaInvoiceNEQ applies the NEQ predicate on the "proforma_invoice" field.
func ProformaInvoiceNEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldProformaInvoice, v))
}

// ProformaInvoiceIn applies the In predicate on the "proforma_invoice" field.
func ProformaInvoiceIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldProformaInvoice, vs...))
}

// ProformaInvoiceNotIn applies the NotIn predicate on the "proforma_invoice" field.
func ProformaInvoiceNotIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldProformaInvoice, vs...))
}

// ProformaInvoiceGT applies the GT predicate on the "proforma_invoice" field.
func ProformaInvoiceGT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldProformaInvoice, v))
}

// ProformaInvoiceGTE applies the GTE predicate on the "proforma_invoice" field.
func ProformaInvoiceGTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldProformaInvoice, v))
}

// ProformaInvoiceLT applies the LT predicate on the "proforma_invoice" field.
func ProformaInvoiceLT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldProformaInvoice, v))
}

// ProformaInvoiceLTE applies the LTE predicate on the "proforma_invoice" field.
func ProformaInvoiceLTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldProformaInvoice, v))
}

// ProformaInvoiceContains applies the Contains predicate on the "proforma_invoice" field.
func ProformaInvoiceContains(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContains(FieldProformaInvoice, v))
}

// ProformaInvoiceHasPrefix applies the HasPrefix predicate on the "proforma_invoice" field.
func ProformaInvoiceHasPrefix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasPrefix(FieldProformaInvoice, v))
}

// ProformaInvoiceHasSuffix applies the HasSuffix predicate on the "proforma_invoice" field.
func ProformaInvoiceHasSuffix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasSuffix(FieldProformaInvoice, v))
}

// ProformaInvoiceIsNil applies the IsNil predicate on the "proforma_invoice" field.
func ProformaInvoiceIsNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIsNull(FieldProformaInvoice))
}

// ProformaInvoiceNotNil applies the NotNil predicate on the "proforma_invoice" field.
func ProformaInvoiceNotNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotNull(FieldProformaInvoice))
}

// ProformaInvoiceEqualFold applies the EqualFold predicate on the "proforma_invoice" field.
func ProformaInvoiceEqualFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldProformaInvoice, v))
}

// ProformaInvoiceContainsFold applies the ContainsFold predicate on the "proforma_invoice" field.
func ProformaInvoiceContainsFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldProformaInvoice, v))
}

// PurchaseOrderEQ applies the EQ predicate on the "purchase_order" field.
func PurchaseOrderEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldPurchaseOrder, v))
}

// PurchaseOrderNEQ applies the NEQ predicate on the "purchase_order" field.
func PurchaseOrderNEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldPurchaseOrder, v))
}

// PurchaseOrderIn applies the In predicate on the "purchase_order" field.
func PurchaseOrderIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldPurchaseOrder, vs...))
}

// PurchaseOrderNotIn applies the NotIn predicate on the "purchase_order" field.
func PurchaseOrderNotIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldPurchaseOrder, vs...))
}

// PurchaseOrderGT applies the GT predicate on the "purchase_order" field.
func PurchaseOrderGT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldPurchaseOrder, v))
}

// PurchaseOrderGTE applies the GTE predicate on the "purchase_order" field.
func PurchaseOrderGTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldPurchaseOrder, v))
}

// PurchaseOrderLT applies the LT predicate on the "purchase_order" field.
func PurchaseOrderLT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldPurchaseOrder, v))
}

// PurchaseOrderLTE applies the LTE predicate on the "purchase_order" field.
func PurchaseOrderLTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldPurchaseOrder, v))
}

// PurchaseOrderContains applies the Contains predicate on the "purchase_order" field.
func PurchaseOrderContains(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContains(FieldPurchaseOrder, v))
}

// PurchaseOrderHasPrefix applies the HasPrefix predicate on the "purchase_order" field.
func PurchaseOrderHasPrefix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasPrefix(FieldPurchaseOrder, v))
}

// PurchaseOrderHasSuffix applies the HasSuffix predicate on the "purchase_order" field.
func PurchaseOrderHasSuffix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasSuffix(FieldPurchaseOrder, v))
}

// PurchaseOrderIsNil applies the IsNil predicate on the "purchase_order" field.
func PurchaseOrderIsNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIsNull(FieldPurchaseOrder))
}

// PurchaseOrderNotNil applies the NotNil predicate on the "purchase_order" field.
func PurchaseOrderNotNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotNull(FieldPurchaseOrder))
}

// PurchaseOrderEqualFold applies the EqualFold predicate on the "purchase_order" field.
func PurchaseOrderEqualFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldPurchaseOrder, v))
}

// PurchaseOrderContainsFold applies the ContainsFold predicate on the "purchase_order" field.
func PurchaseOrderContainsFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldPurchaseOrder, v))
}

// ReceiptEQ applies the EQ predicate on the "receipt" field.
func ReceiptEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEQ(FieldReceipt, v))
}

// ReceiptNEQ applies the NEQ predicate on the "receipt" field.
func ReceiptNEQ(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNEQ(FieldReceipt, v))
}

// ReceiptIn applies the In predicate on the "receipt" field.
func ReceiptIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIn(FieldReceipt, vs...))
}

// ReceiptNotIn applies the NotIn predicate on the "receipt" field.
func ReceiptNotIn(vs ...string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotIn(FieldReceipt, vs...))
}

// ReceiptGT applies the GT predicate on the "receipt" field.
func ReceiptGT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGT(FieldReceipt, v))
}

// ReceiptGTE applies the GTE predicate on the "receipt" field.
func ReceiptGTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldGTE(FieldReceipt, v))
}

// ReceiptLT applies the LT predicate on the "receipt" field.
func ReceiptLT(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLT(FieldReceipt, v))
}

// ReceiptLTE applies the LTE predicate on the "receipt" field.
func ReceiptLTE(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldLTE(FieldReceipt, v))
}

// ReceiptContains applies the Contains predicate on the "receipt" field.
func ReceiptContains(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContains(FieldReceipt, v))
}

// ReceiptHasPrefix applies the HasPrefix predicate on the "receipt" field.
func ReceiptHasPrefix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasPrefix(FieldReceipt, v))
}

// ReceiptHasSuffix applies the HasSuffix predicate on the "receipt" field.
func ReceiptHasSuffix(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldHasSuffix(FieldReceipt, v))
}

// ReceiptIsNil applies the IsNil predicate on the "receipt" field.
func ReceiptIsNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldIsNull(FieldReceipt))
}

// ReceiptNotNil applies the NotNil predicate on the "receipt" field.
func ReceiptNotNil() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldNotNull(FieldReceipt))
}

// ReceiptEqualFold applies the EqualFold predicate on the "receipt" field.
func ReceiptEqualFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldEqualFold(FieldReceipt, v))
}

// ReceiptContainsFold applies the ContainsFold predicate on the "receipt" field.
func ReceiptContainsFold(v string) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.FieldContainsFold(FieldReceipt, v))
}

// HasRequester applies the HasEdge predicate on the "requester" edge.
func HasRequester() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RequesterTable, RequesterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRequesterWith applies the HasEdge predicate on the "requester" edge with a given conditions (other predicates).
func HasRequesterWith(preds ...predicate.User) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := newRequesterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.RequestItem) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasSteps applies the HasEdge predicate on the "steps" edge.
func HasSteps() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, StepsTable, StepsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasStepsWith applies the HasEdge predicate on the "steps" edge with a given conditions (other predicates).
func HasStepsWith(preds ...predicate.ApprovalStep) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := newStepsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasFinanceNotes applies the HasEdge predicate on the "finance_notes" edge.
func HasFinanceNotes() predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FinanceNotesTable, FinanceNotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFinanceNotesWith applies the HasEdge predicate on the "finance_notes" edge with a given conditions (other predicates).
func HasFinanceNotesWith(preds ...predicate.FinanceNote) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(func(s *sql.Selector) {
		step := newFinanceNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PurchaseRequest) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PurchaseRequest) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PurchaseRequest) predicate.PurchaseRequest {
	return predicate.PurchaseRequest(sql.NotPredicates(p))
}
