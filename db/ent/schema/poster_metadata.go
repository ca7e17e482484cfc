package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"

	"github.com/posters-science/poster-tracker/internal/entity"
)

// PosterMetadata persists the bibliographic record as opaque structured JSON
// columns plus the ten flat conference columns, mirroring how the metadata is
// edited: collection fields as JSON blobs, scalar fields as columns.
type PosterMetadata struct{ ent.Schema }

func (PosterMetadata) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "poster_metadata"},
	}
}

func (PosterMetadata) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("poster_id", uuid.UUID{}).Unique(),

		field.JSON("creators", []entity.Creator{}).Optional(),
		field.JSON("titles", []entity.Title{}).Optional(),
		field.JSON("descriptions", []entity.Description{}).Optional(),
		field.JSON("image_caption", []entity.Caption{}).Optional(),
		field.JSON("poster_content", []entity.ContentSection{}).Optional(),
		field.JSON("table_caption", []entity.Caption{}).Optional(),

		field.String("conference_name").Optional(),
		field.String("conference_location").Optional(),
		field.String("conference_uri").Optional(),
		field.String("conference_identifier").Optional(),
		field.String("conference_identifier_type").Optional(),
		field.String("conference_schema_uri").Optional(),
		field.String("conference_start_date").Optional(),
		field.String("conference_end_date").Optional(),
		field.String("conference_acronym").Optional(),
		field.String("conference_series").Optional(),

		field.String("domain").Optional(),
		field.String("doi").Optional(),
		field.JSON("identifiers", []entity.Identifier{}).Optional(),
		field.JSON("alternate_identifiers", []entity.AlternateIdentifier{}).Optional(),
		field.JSON("publisher", []entity.Publisher{}).Optional(),
		field.Int("publication_year").Optional(),
		field.JSON("subjects", []entity.Subject{}).Optional(),
		field.JSON("dates", []entity.Date{}).Optional(),
		field.String("language").Optional(),
		field.JSON("types", []entity.ResourceType{}).Optional(),
		field.JSON("related_identifiers", []entity.RelatedIdentifier{}).Optional(),
		field.Strings("sizes").Optional(),
		field.Strings("formats").Optional(),
		field.String("version").Optional(),
		field.JSON("rights_list", []entity.Rights{}).Optional(),
		field.JSON("funding_references", []entity.Funding{}).Optional(),
		field.Strings("ethics_approval").Optional(),

		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (PosterMetadata) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("poster", Poster.Type).
			Ref("metadata").
			Field("poster_id").
			Unique().
			Required(),
	}
}
