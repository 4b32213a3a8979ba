package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// FinanceNote holds the schema definition for the FinanceNote entity.
// Finance staff attach commentary to approved requests alongside the
// purchase-order and receipt artifacts.
type FinanceNote struct {
	ent.Schema
}

// Mixin of the FinanceNote.
func (FinanceNote) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the FinanceNote.
func (FinanceNote) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("request_id").
			NotEmpty().
			Immutable(),
		field.String("author_id").
			NotEmpty().
			Immutable(),
		field.String("note").
			NotEmpty(),
	}
}

// Edges of the FinanceNote.
func (FinanceNote) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", PurchaseRequest.Type).
			Ref("finance_notes").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the FinanceNote.
func (FinanceNote) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id"),
	}
}
