package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/shopspring/decimal"
)

// RequestItem holds the schema definition for the RequestItem entity.
// Items are owned exclusively by their purchase request and deleted with it.
// total_price (quantity * unit_price) is derived, not stored.
type RequestItem struct {
	ent.Schema
}

// Fields of the RequestItem.
func (RequestItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("request_id").
			NotEmpty(),
		field.String("name").
			NotEmpty().
			MaxLen(255),
		field.Int("quantity").
			Min(1).
			Default(1),
		field.Other("unit_price", decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}).
			Default(decimal.Decimal{}),
	}
}

// Edges of the RequestItem.
func (RequestItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", PurchaseRequest.Type).
			Ref("items").
			Field("request_id").
			Unique().
			Required(),
	}
}

// Indexes of the RequestItem.
func (RequestItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
	}
}
