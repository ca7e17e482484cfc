// Code generated by ent, DO NOT EDIT.

package postermetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the postermetadata type in the database.
	Label = "poster_metadata"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosterID holds the string denoting the poster_id field in the database.
	FieldPosterID = "poster_id"
	// FieldCreators holds the string denoting the creators field in the database.
	FieldCreators = "creators"
	// FieldTitles holds the string denoting the titles field in the database.
	FieldTitles = "titles"
	// FieldDescriptions holds the string denoting the descriptions field in the database.
	FieldDescriptions = "descriptions"
	// FieldImageCaption holds the string denoting the image_caption field in the database.
	FieldImageCaption = "image_caption"
	// FieldPosterContent holds the string denoting the poster_content field in the database.
	FieldPosterContent = "poster_content"
	// FieldTableCaption holds the string denoting the table_caption field in the database.
	FieldTableCaption = "table_caption"
	// FieldConferenceName holds the string denoting the conference_name field in the database.
	FieldConferenceName = "conference_name"
	// FieldConferenceLocation holds the string denoting the conference_location field in the database.
	FieldConferenceLocation = "conference_location"
	// FieldConferenceURI holds the string denoting the conference_uri field in the database.
	FieldConferenceURI = "conference_uri"
	// FieldConferenceIdentifier holds the string denoting the conference_identifier field in the database.
	FieldConferenceIdentifier = "conference_identifier"
	// FieldConferenceIdentifierType holds the string denoting the conference_identifier_type field in the database.
	FieldConferenceIdentifierType = "conference_identifier_type"
	// FieldConferenceSchemaURI holds the string denoting the conference_schema_uri field in the database.
	FieldConferenceSchemaURI = "conference_schema_uri"
	// FieldConferenceStartDate holds the string denoting the conference_start_date field in the database.
	FieldConferenceStartDate = "conference_start_date"
	// FieldConferenceEndDate holds the string denoting the conference_end_date field in the database.
	FieldConferenceEndDate = "conference_end_date"
	// FieldConferenceAcronym holds the string denoting the conference_acronym field in the database.
	FieldConferenceAcronym = "conference_acronym"
	// FieldConferenceSeries holds the string denoting the conference_series field in the database.
	FieldConferenceSeries = "conference_series"
	// FieldDomain holds the string denoting the domain field in the database.
	FieldDomain = "domain"
	// FieldDoi holds the string denoting the doi field in the database.
	FieldDoi = "doi"
	// FieldIdentifiers holds the string denoting the identifiers field in the database.
	FieldIdentifiers = "identifiers"
	// FieldAlternateIdentifiers holds the string denoting the alternate_identifiers field in the database.
	FieldAlternateIdentifiers = "alternate_identifiers"
	// FieldPublisher holds the string denoting the publisher field in the database.
	FieldPublisher = "publisher"
	// FieldPublicationYear holds the string denoting the publication_year field in the database.
	FieldPublicationYear = "publication_year"
	// FieldSubjects holds the string denoting the subjects field in the database.
	FieldSubjects = "subjects"
	// FieldDates holds the string denoting the dates field in the database.
	FieldDates = "dates"
	// FieldLanguage holds the string denoting the language field in the database.
	FieldLanguage = "language"
	// FieldTypes holds the string denoting the types field in the database.
	FieldTypes = "types"
	// FieldRelatedIdentifiers holds the string denoting the related_identifiers field in the database.
	FieldRelatedIdentifiers = "related_identifiers"
	// FieldSizes holds the string denoting the sizes field in the database.
	FieldSizes = "sizes"
	// FieldFormats holds the string denoting the formats field in the database.
	FieldFormats = "formats"
	// FieldVersion holds the string denoting the version field in the database.
	FieldVersion = "version"
	// FieldRightsList holds the string denoting the rights_list field in the database.
	FieldRightsList = "rights_list"
	// FieldFundingReferences holds the string denoting the funding_references field in the database.
	FieldFundingReferences = "funding_references"
	// FieldEthicsApproval holds the string denoting the ethics_approval field in the database.
	FieldEthicsApproval = "ethics_approval"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgePoster holds the string denoting the poster edge name in mutations.
	EdgePoster = "poster"
	// Table holds the table name of the postermetadata in the database.
	Table = "poster_metadata"
	// PosterTable is the table that holds the poster relation/edge.
	PosterTable = "poster_metadata"
	// PosterInverseTable is the table name for the Poster entity.
	// It exists in this package in order to avoid circular dependency with the "poster" package.
	PosterInverseTable = "posters"
	// PosterColumn is the table column denoting the poster relation/edge.
	PosterColumn = "poster_id"
)

// Columns holds all SQL columns for postermetadata fields.
var Columns = []string{
	FieldID,
	FieldPosterID,
	FieldCreators,
	FieldTitles,
	FieldDescriptions,
	FieldImageCaption,
	FieldPosterContent,
	FieldTableCaption,
	FieldConferenceName,
	FieldConferenceLocation,
	FieldConferenceURI,
	FieldConferenceIdentifier,
	FieldConferenceIdentifierType,
	FieldConferenceSchemaURI,
	FieldConferenceStartDate,
	FieldConferenceEndDate,
	FieldConferenceAcronym,
	FieldConferenceSeries,
	FieldDomain,
	FieldDoi,
	FieldIdentifiers,
	FieldAlternateIdentifiers,
	FieldPublisher,
	FieldPublicationYear,
	FieldSubjects,
	FieldDates,
	FieldLanguage,
	FieldTypes,
	FieldRelatedIdentifiers,
	FieldSizes,
	FieldFormats,
	FieldVersion,
	FieldRightsList,
	FieldFundingReferences,
	FieldEthicsApproval,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the PosterMetadata queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosterID orders the results by the poster_id field.
func ByPosterID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosterID, opts...).ToFunc()
}

// ByConferenceName orders the results by the conference_name field.
func ByConferenceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceName, opts...).ToFunc()
}

// ByConferenceLocation orders the results by the conference_location field.
func ByConferenceLocation(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceLocation, opts...).ToFunc()
}

// ByConferenceURI orders the results by the conference_uri field.
func ByConferenceURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceURI, opts...).ToFunc()
}

// ByConferenceIdentifier orders the results by the conference_identifier field.
func ByConferenceIdentifier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceIdentifier, opts...).ToFunc()
}

// ByConferenceIdentifierType orders the results by the conference_identifier_type field.
func ByConferenceIdentifierType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceIdentifierType, opts...).ToFunc()
}

// ByConferenceSchemaURI orders the results by the conference_schema_uri field.
func ByConferenceSchemaURI(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceSchemaURI, opts...).ToFunc()
}

// ByConferenceStartDate orders the results by the conference_start_date field.
func ByConferenceStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceStartDate, opts...).ToFunc()
}

// ByConferenceEndDate orders the results by the conference_end_date field.
func ByConferenceEndDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceEndDate, opts...).ToFunc()
}

// ByConferenceAcronym orders the results by the conference_acronym field.
func ByConferenceAcronym(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceAcronym, opts...).ToFunc()
}

// ByConferenceSeries orders the results by the conference_series field.
func ByConferenceSeries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConferenceSeries, opts...).ToFunc()
}

// ByDomain orders the results by the domain field.
func ByDomain(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDomain, opts...).ToFunc()
}

// ByDoi orders the results by the doi field.
func ByDoi(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDoi, opts...).ToFunc()
}

// ByPublicationYear orders the results by the publication_year field.
func ByPublicationYear(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublicationYear, opts...).ToFunc()
}

// ByLanguage orders the results by the language field.
func ByLanguage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLanguage, opts...).ToFunc()
}

// ByVersion orders the results by the version field.
func ByVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByPosterField orders the results by poster field.
func ByPosterField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPosterStep(), sql.OrderByField(field, opts...))
	}
}
func newPosterStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PosterInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2O, true, PosterTable, PosterColumn),
	)
}
