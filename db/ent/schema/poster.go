package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/db/ent/schema/utils"
)

type Poster struct{ ent.Schema }

func (Poster) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "posters"},
	}
}

func (Poster) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.String("title").NotEmpty(),
		field.String("description").
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.String("status").Default(string(constants.PosterStatusDraft)).
			Validate(utils.EnumValidator(
				string(constants.PosterStatusDraft),
				string(constants.PosterStatusPublished),
			)),
		field.String("image_url").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("published_at").Optional().Nillable(),
	}
}

func (Poster) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("posters").
			Field("user_id").
			Unique().
			Required(),
		// ONE poster -> at most ONE metadata record (created together)
		edge.To("metadata", PosterMetadata.Type).Unique(),
		// ONE poster -> MANY jobs (a re-upload creates a new job)
		edge.To("jobs", ExtractionJob.Type),
	}
}

func (Poster) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
	}
}
