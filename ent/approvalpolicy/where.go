// Code generated by ent, DO NOT EDIT.

package approvalpolicy

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/shopspring/decimal"
	"procureflow.io/procureflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldContainsFold(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldTitle, v))
}

// MinAmount applies equality check predicate on the "min_amount" field. It's identical to MinAmountEQ.
func MinAmount(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldMinAmount, v))
}

// MaxAmount applies equality check predicate on the "max_amount" field. It's identical to MaxAmountEQ.
func MaxAmount(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldMaxAmount, v))
}

// RequiredLevels applies equality check predicate on the "required_levels" field. It's identical to RequiredLevelsEQ.
func RequiredLevels(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldRequiredLevels, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldActive, v))
}

// CreatedBy applies equality check predicate on the "created_by" field. It's identical to CreatedByEQ.
func CreatedBy(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldContainsFold(FieldTitle, v))
}

// MinAmountEQ applies the EQ predicate on the "min_amount" field.
func MinAmountEQ(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldMinAmount, v))
}

// MinAmountNEQ applies the NEQ predicate on the "min_amount" field.
func MinAmountNEQ(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldMinAmount, v))
}

// MinAmountIn applies the In predicate on the "min_amount" field.
func MinAmountIn(vs ...decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldMinAmount, vs...))
}

// MinAmountNotIn applies the NotIn predicate on the "min_amount" field.
func MinAmountNotIn(vs ...decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldMinAmount, vs...))
}

// MinAmountGT applies the GT predicate on the "min_amount" field.
func MinAmountGT(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldMinAmount, v))
}

// MinAmountGTE applies the GTE predicate on the "min_amount" field.
func MinAmountGTE(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldMinAmount, v))
}

// MinAmountLT applies the LT predicate on the "min_amount" field.
func MinAmountLT(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldMinAmount, v))
}

// MinAmountLTE applies the LTE predicate on the "min_amount" field.
func MinAmountLTE(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldMinAmount, v))
}

// MaxAmountEQ applies the EQ predicate on the "max_amount" field.
func MaxAmountEQ(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldMaxAmount, v))
}

// MaxAmountNEQ applies the NEQ predicate on the "max_amount" field.
func MaxAmountNEQ(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldMaxAmount, v))
}

// MaxAmountIn applies the In predicate on the "max_amount" field.
func MaxAmountIn(vs ...decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldMaxAmount, vs...))
}

// MaxAmountNotIn applies the NotIn predicate on the "max_amount" field.
func MaxAmountNotIn(vs ...decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldMaxAmount, vs...))
}

// MaxAmountGT applies the GT predicate on the "max_amount" field.
func MaxAmountGT(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldMaxAmount, v))
}

// MaxAmountGTE applies the GTE predicate on the "max_amount" field.
func MaxAmountGTE(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldMaxAmount, v))
}

// MaxAmountLT applies the LT predicate on the "max_amount" field.
func MaxAmountLT(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldMaxAmount, v))
}

// MaxAmountLTE applies the LTE predicate on the "max_amount" field.
func MaxAmountLTE(v decimal.Decimal) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldMaxAmount, v))
}

// RequiredLevelsEQ applies the EQ predicate on the "required_levels" field.
func RequiredLevelsEQ(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldRequiredLevels, v))
}

// RequiredLevelsNEQ applies the NEQ predicate on the "required_levels" field.
func RequiredLevelsNEQ(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldRequiredLevels, v))
}

// RequiredLevelsIn applies the In predicate on the "required_levels" field.
func RequiredLevelsIn(vs ...int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldRequiredLevels, vs...))
}

// RequiredLevelsNotIn applies the NotIn predicate on the "required_levels" field.
func RequiredLevelsNotIn(vs ...int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldRequiredLevels, vs...))
}

// RequiredLevelsGT applies the GT predicate on the "required_levels" field.
func RequiredLevelsGT(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldRequiredLevels, v))
}

// RequiredLevelsGTE applies the GTE predicate on the "required_levels" field.
func RequiredLevelsGTE(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldRequiredLevels, v))
}

// RequiredLevelsLT applies the LT predicate on the "required_levels" field.
func RequiredLevelsLT(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldRequiredLevels, v))
}

// RequiredLevelsLTE applies the LTE predicate on the "required_levels" field.
func RequiredLevelsLTE(v int) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldRequiredLevels, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldActive, v))
}

// CreatedByEQ applies the EQ predicate on the "created_by" field.
func CreatedByEQ(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEQ(FieldCreatedBy, v))
}

// CreatedByNEQ applies the NEQ predicate on the "created_by" field.
func CreatedByNEQ(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNEQ(FieldCreatedBy, v))
}

// CreatedByIn applies the In predicate on the "created_by" field.
func CreatedByIn(vs ...string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldIn(FieldCreatedBy, vs...))
}

// CreatedByNotIn applies the NotIn predicate on the "created_by" field.
func CreatedByNotIn(vs ...string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldNotIn(FieldCreatedBy, vs...))
}

// CreatedByGT applies the GT predicate on the "created_by" field.
func CreatedByGT(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGT(FieldCreatedBy, v))
}

// CreatedByGTE applies the GTE predicate on the "created_by" field.
func CreatedByGTE(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldGTE(FieldCreatedBy, v))
}

// CreatedByLT applies the LT predicate on the "created_by" field.
func CreatedByLT(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLT(FieldCreatedBy, v))
}

// CreatedByLTE applies the LTE predicate on the "created_by" field.
func CreatedByLTE(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldLTE(FieldCreatedBy, v))
}

// CreatedByContains applies the Contains predicate on the "created_by" field.
func CreatedByContains(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldContains(FieldCreatedBy, v))
}

// CreatedByHasPrefix applies the HasPrefix predicate on the "created_by" field.
func CreatedByHasPrefix(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldHasPrefix(FieldCreatedBy, v))
}

// CreatedByHasSuffix applies the HasSuffix predicate on the "created_by" field.
func CreatedByHasSuffix(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldHasSuffix(FieldCreatedBy, v))
}

// CreatedByEqualFold applies the EqualFold predicate on the "created_by" field.
func CreatedByEqualFold(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldEqualFold(FieldCreatedBy, v))
}

// CreatedByContainsFold applies the ContainsFold predicate on the "created_by" field.
func CreatedByContainsFold(v string) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.FieldContainsFold(FieldCreatedBy, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ApprovalPolicy) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ApprovalPolicy) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ApprovalPolicy) predicate.ApprovalPolicy {
	return predicate.ApprovalPolicy(sql.NotPredicates(p))
}
