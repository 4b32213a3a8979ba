package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Notification holds the schema definition for the Notification entity.
// In-app inbox only; rows are written synchronously with the triggering
// business operation and pruned by the retention cleanup job.
type Notification struct {
	ent.Schema
}

// Mixin of the Notification.
func (Notification) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the Notification.
func (Notification) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("recipient_id").
			NotEmpty(),
		field.Enum("type").
			Values("DECISION_PENDING", "REQUEST_APPROVED", "REQUEST_REJECTED", "ARTIFACT_ATTACHED"),
		field.String("title").
			NotEmpty(),
		field.String("message").
			Optional(),
		field.String("resource_type").
			Optional(),
		field.String("resource_id").
			Optional(),
		field.Bool("read").
			Default(false),
	}
}

// Edges of the Notification.
func (Notification) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recipient", User.Type).
			Ref("notifications").
			Field("recipient_id").
			Unique().
			Required(),
	}
}

// Indexes of the Notification.
func (Notification) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recipient_id", "read"),
		index.Fields("created_at"),
	}
}
