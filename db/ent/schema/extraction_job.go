package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/constants"
	"github.com/posters-science/poster-tracker/db/ent/schema/utils"
)

type ExtractionJob struct{ ent.Schema }

func (ExtractionJob) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extraction_job"},
	}
}

func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("poster_id", uuid.UUID{}).Optional().Nillable(),
		field.String("status").Default(string(constants.JobStatusPending)).
			Validate(utils.EnumValidator(
				string(constants.JobStatusPending),
				string(constants.JobStatusProcessing),
				string(constants.JobStatusCompleted),
				string(constants.JobStatusFailed),
			)),
		field.String("error_message").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("user", User.Type).
			Ref("jobs").
			Field("user_id").
			Unique().
			Required(),
		edge.From("poster", Poster.Type).
			Ref("jobs").
			Field("poster_id").
			Unique(),
	}
}

func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status", "created_at"),
		index.Fields("poster_id"),
	}
}
