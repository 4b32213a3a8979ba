package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// User holds the schema definition for the User entity.
// Role gating happens at the API layer; the approval core consumes the role
// only as EditGuard input.
type User struct {
	ent.Schema
}

// Mixin of the User.
func (User) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimeMixin{},
	}
}

// Fields of the User.
func (User) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Unique().
			Immutable(),
		field.String("email").
			NotEmpty().
			MaxLen(255),
		field.String("full_name").
			NotEmpty().
			MaxLen(255),
		field.Enum("role").
			Values("staff", "approver", "finance", "admin").
			Default("staff"),
		field.String("password_hash").
			NotEmpty().
			Sensitive(),
		field.Bool("enabled").
			Default(true),
		field.Time("last_login_at").
			Optional().
			Nillable(),
	}
}

// Edges of the User.
func (User) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("requests", PurchaseRequest.Type),
		edge.To("notifications", Notification.Type),
	}
}

// Indexes of the User.
func (User) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("email").Unique(),
		index.Fields("role"),
	}
}
