package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuditLog holds the schema definition for the AuditLog entity.
// Audit logs are append-only compliance records. Hard-delete is NOT allowed.
type AuditLog struct {
	ent.Schema
}

// Mixin of the AuditLog.
func (AuditLog) Mixin() []ent.Mixin {
	return []ent.Mixin{
		AuditMixin{},
	}
}

// Fields of the AuditLog.
func (AuditLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("action").
			NotEmpty(),
		field.String("resource_type").
			NotEmpty(),
		field.String("resource_id").
			NotEmpty(),
		field.String("actor").
			NotEmpty(),
		field.JSON("details", map[string]interface{}{}).
			Optional(),
	}
}

// Indexes of the AuditLog.
func (AuditLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("resource_type", "resource_id"),
		index.Fields("actor"),
		index.Fields("created_at"),
	}
}
