package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// PurchaseRequest holds the schema definition for the PurchaseRequest entity.
//
// amount and required_levels are derived, never client-set: amount is the sum
// of item lines, required_levels comes from the policy table at each amount
// change. status is written only by the status resolver inside the same
// transaction as the triggering step mutation.
type PurchaseRequest struct {
	ent.Schema
}

// Mixin of the PurchaseRequest.
func (PurchaseRequest) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the PurchaseRequest.
func (PurchaseRequest) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("requester_id").
			NotEmpty().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.String("description").
			Optional(),
		field.Other("amount", decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Default(decimal.Decimal{}),
		field.Enum("status").
			Values("PENDING", "APPROVED", "REJECTED").
			Default("PENDING"),
		field.Int("required_levels").
			Min(1).
			Default(2),
		// High-water mark of assigned step levels. Monotone: a level freed
		// by an administrative step deletion is never reassigned.
		field.Int("last_level").
			NonNegative().
			Default(0),
		// File references are attached by collaborators; the core only
		// guards who may change them and when.
		field.String("proforma_invoice").
			Optional(),
		field.String("purchase_order").
			Optional(),
		field.String("receipt").
			Optional(),
	}
}

// Edges of the PurchaseRequest.
func (PurchaseRequest) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("requester", User.Type).
			Ref("requests").
			Field("requester_id").
			Unique().
			Required().
			Immutable(),
		edge.To("items", RequestItem.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("steps", ApprovalStep.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("finance_notes", FinanceNote.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the PurchaseRequest.
func (PurchaseRequest) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("requester_id"),
	}
}
