package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// ApprovalPolicy holds the schema definition for the ApprovalPolicy entity.
// A policy maps an amount range to the number of approval levels a purchase
// request must clear. Policies are admin-owned; the core reads active policies
// ordered by min_amount ascending and never mutates them. Resolved requests
// keep their required_levels — later policy edits are not retroactive.
type ApprovalPolicy struct {
	ent.Schema
}

// Mixin of the ApprovalPolicy.
func (ApprovalPolicy) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the ApprovalPolicy.
func (ApprovalPolicy) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("title").
			NotEmpty().
			MaxLen(255),
		field.Other("min_amount", decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Default(decimal.Decimal{}),
		field.Other("max_amount", decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Default(decimal.Decimal{}),
		field.Int("required_levels").
			Min(1).
			Default(2),
		field.Bool("active").
			Default(true),
		field.String("created_by").
			NotEmpty(),
	}
}

// Indexes of the ApprovalPolicy.
func (ApprovalPolicy) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
