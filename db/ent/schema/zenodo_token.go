package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type ZenodoToken struct{ ent.Schema }

func (ZenodoToken) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "zenodo_tokens"},
	}
}

func (ZenodoToken) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// one token per user
		field.UUID("user_id", uuid.UUID{}).Unique(),
		field.String("access_token").NotEmpty().Sensitive(),
		field.String("refresh_token").NotEmpty().Sensitive(),
		field.Time("expires_at"),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ZenodoToken) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("zenodo_token").
			Field("user_id").
			Unique().
			Required(),
	}
}
