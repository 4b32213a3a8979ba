package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ApprovalStep holds the schema definition for the ApprovalStep entity.
//
// Steps are append-only: a decision at a level is immutable forever. Levels
// are assigned sequentially from 1 and the unique (request_id, level) index
// is the storage-layer last line of defense against a concurrent race
// producing two steps at the same level.
type ApprovalStep struct {
	ent.Schema
}

// Mixin of the ApprovalStep.
func (ApprovalStep) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the ApprovalStep.
func (ApprovalStep) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("request_id").
			NotEmpty().
			Immutable(),
		field.String("approver_id").
			NotEmpty().
			Immutable(),
		field.Int("level").
			Min(1).
			Immutable(),
		field.Enum("decision").
			Values("APPROVED", "REJECTED").
			Immutable(),
		field.String("comment").
			Optional().
			Immutable(),
	}
}

// Edges of the ApprovalStep.
func (ApprovalStep) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("request", PurchaseRequest.Type).
			Ref("steps").
			Field("request_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ApprovalStep.
func (ApprovalStep) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("request_id", "level").Unique(),
		index.Fields("approver_id"),
	}
}
