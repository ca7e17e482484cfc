// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractionJobColumns holds the columns for the "extraction_job" table.
	ExtractionJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "status", Type: field.TypeString, Default: "pending"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "poster_id", Type: field.TypeUUID, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// ExtractionJobTable holds the schema information for the "extraction_job" table.
	ExtractionJobTable = &schema.Table{
		Name:       "extraction_job",
		Columns:    ExtractionJobColumns,
		PrimaryKey: []*schema.Column{ExtractionJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_job_posters_jobs",
				Columns:    []*schema.Column{ExtractionJobColumns[5]},
				RefColumns: []*schema.Column{PostersColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extraction_job_users_jobs",
				Columns:    []*schema.Column{ExtractionJobColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_user_id_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[6], ExtractionJobColumns[1], ExtractionJobColumns[3]},
			},
			{
				Name:    "extractionjob_poster_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobColumns[5]},
			},
		},
	}
	// PostersColumns holds the columns for the "posters" table.
	PostersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "status", Type: field.TypeString, Default: "draft"},
		{Name: "image_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
	}
	// PostersTable holds the schema information for the "posters" table.
	PostersTable = &schema.Table{
		Name:       "posters",
		Columns:    PostersColumns,
		PrimaryKey: []*schema.Column{PostersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "posters_users_posters",
				Columns:    []*schema.Column{PostersColumns[8]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "poster_user_id_status",
				Unique:  false,
				Columns: []*schema.Column{PostersColumns[8], PostersColumns[3]},
			},
		},
	}
	// PosterMetadataColumns holds the columns for the "poster_metadata" table.
	PosterMetadataColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "creators", Type: field.TypeJSON, Nullable: true},
		{Name: "titles", Type: field.TypeJSON, Nullable: true},
		{Name: "descriptions", Type: field.TypeJSON, Nullable: true},
		{Name: "image_caption", Type: field.TypeJSON, Nullable: true},
		{Name: "poster_content", Type: field.TypeJSON, Nullable: true},
		{Name: "table_caption", Type: field.TypeJSON, Nullable: true},
		{Name: "conference_name", Type: field.TypeString, Nullable: true},
		{Name: "conference_location", Type: field.TypeString, Nullable: true},
		{Name: "conference_uri", Type: field.TypeString, Nullable: true},
		{Name: "conference_identifier", Type: field.TypeString, Nullable: true},
		{Name: "conference_identifier_type", Type: field.TypeString, Nullable: true},
		{Name: "conference_schema_uri", Type: field.TypeString, Nullable: true},
		{Name: "conference_start_date", Type: field.TypeString, Nullable: true},
		{Name: "conference_end_date", Type: field.TypeString, Nullable: true},
		{Name: "conference_acronym", Type: field.TypeString, Nullable: true},
		{Name: "conference_series", Type: field.TypeString, Nullable: true},
		{Name: "domain", Type: field.TypeString, Nullable: true},
		{Name: "doi", Type: field.TypeString, Nullable: true},
		{Name: "identifiers", Type: field.TypeJSON, Nullable: true},
		{Name: "alternate_identifiers", Type: field.TypeJSON, Nullable: true},
		{Name: "publisher", Type: field.TypeJSON, Nullable: true},
		{Name: "publication_year", Type: field.TypeInt, Nullable: true},
		{Name: "subjects", Type: field.TypeJSON, Nullable: true},
		{Name: "dates", Type: field.TypeJSON, Nullable: true},
		{Name: "language", Type: field.TypeString, Nullable: true},
		{Name: "types", Type: field.TypeJSON, Nullable: true},
		{Name: "related_identifiers", Type: field.TypeJSON, Nullable: true},
		{Name: "sizes", Type: field.TypeJSON, Nullable: true},
		{Name: "formats", Type: field.TypeJSON, Nullable: true},
		{Name: "version", Type: field.TypeString, Nullable: true},
		{Name: "rights_list", Type: field.TypeJSON, Nullable: true},
		{Name: "funding_references", Type: field.TypeJSON, Nullable: true},
		{Name: "ethics_approval", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "poster_id", Type: field.TypeUUID, Unique: true},
	}
	// PosterMetadataTable holds the schema information for the "poster_metadata" table.
	PosterMetadataTable = &schema.Table{
		Name:       "poster_metadata",
		Columns:    PosterMetadataColumns,
		PrimaryKey: []*schema.Column{PosterMetadataColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "poster_metadata_posters_metadata",
				Columns:    []*schema.Column{PosterMetadataColumns[36]},
				RefColumns: []*schema.Column{PostersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "email", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
	}
	// ZenodoTokensColumns holds the columns for the "zenodo_tokens" table.
	ZenodoTokensColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "access_token", Type: field.TypeString},
		{Name: "refresh_token", Type: field.TypeString},
		{Name: "expires_at", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID, Unique: true},
	}
	// ZenodoTokensTable holds the schema information for the "zenodo_tokens" table.
	ZenodoTokensTable = &schema.Table{
		Name:       "zenodo_tokens",
		Columns:    ZenodoTokensColumns,
		PrimaryKey: []*schema.Column{ZenodoTokensColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "zenodo_tokens_users_zenodo_token",
				Columns:    []*schema.Column{ZenodoTokensColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractionJobTable,
		PostersTable,
		PosterMetadataTable,
		UsersTable,
		ZenodoTokensTable,
	}
)

func init() {
	ExtractionJobTable.ForeignKeys[0].RefTable = PostersTable
	ExtractionJobTable.ForeignKeys[1].RefTable = UsersTable
	ExtractionJobTable.Annotation = &entsql.Annotation{
		Table: "extraction_job",
	}
	PostersTable.ForeignKeys[0].RefTable = UsersTable
	PostersTable.Annotation = &entsql.Annotation{
		Table: "posters",
	}
	PosterMetadataTable.ForeignKeys[0].RefTable = PostersTable
	PosterMetadataTable.Annotation = &entsql.Annotation{
		Table: "poster_metadata",
	}
	UsersTable.Annotation = &entsql.Annotation{
		Table: "users",
	}
	ZenodoTokensTable.ForeignKeys[0].RefTable = UsersTable
	ZenodoTokensTable.Annotation = &entsql.Annotation{
		Table: "zenodo_tokens",
	}
}
