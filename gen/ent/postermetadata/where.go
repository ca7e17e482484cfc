// Code generated by ent, DO NOT EDIT.

package postermetadata

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldID, id))
}

// PosterID applies equality check predicate on the "poster_id" field. It's identical to PosterIDEQ.
func PosterID(v uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldPosterID, v))
}

// ConferenceName applies equality check predicate on the "conference_name" field. It's identical to ConferenceNameEQ.
func ConferenceName(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceName, v))
}

// ConferenceLocation applies equality check predicate on the "conference_location" field. It's identical to ConferenceLocationEQ.
func ConferenceLocation(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceLocation, v))
}

// ConferenceURI applies equality check predicate on the "conference_uri" field. It's identical to ConferenceURIEQ.
func ConferenceURI(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceURI, v))
}

// ConferenceIdentifier applies equality check predicate on the "conference_identifier" field. It's identical to ConferenceIdentifierEQ.
func ConferenceIdentifier(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierType applies equality check predicate on the "conference_identifier_type" field. It's identical to ConferenceIdentifierTypeEQ.
func ConferenceIdentifierType(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceIdentifierType, v))
}

// ConferenceSchemaURI applies equality check predicate on the "conference_schema_uri" field. It's identical to ConferenceSchemaURIEQ.
func ConferenceSchemaURI(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceSchemaURI, v))
}

// ConferenceStartDate applies equality check predicate on the "conference_start_date" field. It's identical to ConferenceStartDateEQ.
func ConferenceStartDate(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceStartDate, v))
}

// ConferenceEndDate applies equality check predicate on the "conference_end_date" field. It's identical to ConferenceEndDateEQ.
func ConferenceEndDate(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceEndDate, v))
}

// ConferenceAcronym applies equality check predicate on the "conference_acronym" field. It's identical to ConferenceAcronymEQ.
func ConferenceAcronym(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceAcronym, v))
}

// ConferenceSeries applies equality check predicate on the "conference_series" field. It's identical to ConferenceSeriesEQ.
func ConferenceSeries(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceSeries, v))
}

// Domain applies equality check predicate on the "domain" field. It's identical to DomainEQ.
func Domain(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldDomain, v))
}

// Doi applies equality check predicate on the "doi" field. It's identical to DoiEQ.
func Doi(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldDoi, v))
}

// PublicationYear applies equality check predicate on the "publication_year" field. It's identical to PublicationYearEQ.
func PublicationYear(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldPublicationYear, v))
}

// Language applies equality check predicate on the "language" field. It's identical to LanguageEQ.
func Language(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldLanguage, v))
}

// Version applies equality check predicate on the "version" field. It's identical to VersionEQ.
func Version(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// PosterIDEQ applies the EQ predicate on the "poster_id" field.
func PosterIDEQ(v uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldPosterID, v))
}

// PosterIDNEQ applies the NEQ predicate on the "poster_id" field.
func PosterIDNEQ(v uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldPosterID, v))
}

// PosterIDIn applies the In predicate on the "poster_id" field.
func PosterIDIn(vs ...uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldPosterID, vs...))
}

// PosterIDNotIn applies the NotIn predicate on the "poster_id" field.
func PosterIDNotIn(vs ...uuid.UUID) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldPosterID, vs...))
}

// CreatorsIsNil applies the IsNil predicate on the "creators" field.
func CreatorsIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldCreators))
}

// CreatorsNotNil applies the NotNil predicate on the "creators" field.
func CreatorsNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldCreators))
}

// TitlesIsNil applies the IsNil predicate on the "titles" field.
func TitlesIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldTitles))
}

// TitlesNotNil applies the NotNil predicate on the "titles" field.
func TitlesNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldTitles))
}

// DescriptionsIsNil applies the IsNil predicate on the "descriptions" field.
func DescriptionsIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldDescriptions))
}

// DescriptionsNotNil applies the NotNil predicate on the "descriptions" field.
func DescriptionsNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldDescriptions))
}

// ImageCaptionIsNil applies the IsNil predicate on the "image_caption" field.
func ImageCaptionIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldImageCaption))
}

// ImageCaptionNotNil applies the NotNil predicate on the "image_caption" field.
func ImageCaptionNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldImageCaption))
}

// PosterContentIsNil applies the IsNil predicate on the "poster_content" field.
func PosterContentIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldPosterContent))
}

// PosterContentNotNil applies the NotNil predicate on the "poster_content" field.
func PosterContentNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldPosterContent))
}

// TableCaptionIsNil applies the IsNil predicate on the "table_caption" field.
func TableCaptionIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldTableCaption))
}

// TableCaptionNotNil applies the NotNil predicate on the "table_caption" field.
func TableCaptionNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldTableCaption))
}

// ConferenceNameEQ applies the EQ predicate on the "conference_name" field.
func ConferenceNameEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceName, v))
}

// ConferenceNameNEQ applies the NEQ predicate on the "conference_name" field.
func ConferenceNameNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceName, v))
}

// ConferenceNameIn applies the In predicate on the "conference_name" field.
func ConferenceNameIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceName, vs...))
}

// ConferenceNameNotIn applies the NotIn predicate on the "conference_name" field.
func ConferenceNameNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceName, vs...))
}

// ConferenceNameGT applies the GT predicate on the "conference_name" field.
func ConferenceNameGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceName, v))
}

// ConferenceNameGTE applies the GTE predicate on the "conference_name" field.
func ConferenceNameGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceName, v))
}

// ConferenceNameLT applies the LT predicate on the "conference_name" field.
func ConferenceNameLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceName, v))
}

// ConferenceNameLTE applies the LTE predicate on the "conference_name" field.
func ConferenceNameLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceName, v))
}

// ConferenceNameContains applies the Contains predicate on the "conference_name" field.
func ConferenceNameContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceName, v))
}

// ConferenceNameHasPrefix applies the HasPrefix predicate on the "conference_name" field.
func ConferenceNameHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceName, v))
}

// ConferenceNameHasSuffix applies the HasSuffix predicate on the "conference_name" field.
func ConferenceNameHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceName, v))
}

// ConferenceNameIsNil applies the IsNil predicate on the "conference_name" field.
func ConferenceNameIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceName))
}

// ConferenceNameNotNil applies the NotNil predicate on the "conference_name" field.
func ConferenceNameNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceName))
}

// ConferenceNameEqualFold applies the EqualFold predicate on the "conference_name" field.
func ConferenceNameEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceName, v))
}

// ConferenceNameContainsFold applies the ContainsFold predicate on the "conference_name" field.
func ConferenceNameContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceName, v))
}

// ConferenceLocationEQ applies the EQ predicate on the "conference_location" field.
func ConferenceLocationEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceLocation, v))
}

// ConferenceLocationNEQ applies the NEQ predicate on the "conference_location" field.
func ConferenceLocationNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceLocation, v))
}

// ConferenceLocationIn applies the In predicate on the "conference_location" field.
func ConferenceLocationIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceLocation, vs...))
}

// ConferenceLocationNotIn applies the NotIn predicate on the "conference_location" field.
func ConferenceLocationNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceLocation, vs...))
}

// ConferenceLocationGT applies the GT predicate on the "conference_location" field.
func ConferenceLocationGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceLocation, v))
}

// ConferenceLocationGTE applies the GTE predicate on the "conference_location" field.
func ConferenceLocationGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceLocation, v))
}

// ConferenceLocationLT applies the LT predicate on the "conference_location" field.
func ConferenceLocationLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceLocation, v))
}

// ConferenceLocationLTE applies the LTE predicate on the "conference_location" field.
func ConferenceLocationLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceLocation, v))
}

// ConferenceLocationContains applies the Contains predicate on the "conference_location" field.
func ConferenceLocationContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceLocation, v))
}

// ConferenceLocationHasPrefix applies the HasPrefix predicate on the "conference_location" field.
func ConferenceLocationHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceLocation, v))
}

// ConferenceLocationHasSuffix applies the HasSuffix predicate on the "conference_location" field.
func ConferenceLocationHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceLocation, v))
}

// ConferenceLocationIsNil applies the IsNil predicate on the "conference_location" field.
func ConferenceLocationIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceLocation))
}

// ConferenceLocationNotNil applies the NotNil predicate on the "conference_location" field.
func ConferenceLocationNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceLocation))
}

// ConferenceLocationEqualFold applies the EqualFold predicate on the "conference_location" field.
func ConferenceLocationEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceLocation, v))
}

// ConferenceLocationContainsFold applies the ContainsFold predicate on the "conference_location" field.
func ConferenceLocationContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceLocation, v))
}

// ConferenceURIEQ applies the EQ predicate on the "conference_uri" field.
func ConferenceURIEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceURI, v))
}

// ConferenceURINEQ applies the NEQ predicate on the "conference_uri" field.
func ConferenceURINEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceURI, v))
}

// ConferenceURIIn applies the In predicate on the "conference_uri" field.
func ConferenceURIIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceURI, vs...))
}

// ConferenceURINotIn applies the NotIn predicate on the "conference_uri" field.
func ConferenceURINotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceURI, vs...))
}

// ConferenceURIGT applies the GT predicate on the "conference_uri" field.
func ConferenceURIGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceURI, v))
}

// ConferenceURIGTE applies the GTE predicate on the "conference_uri" field.
func ConferenceURIGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceURI, v))
}

// ConferenceURILT applies the LT predicate on the "conference_uri" field.
func ConferenceURILT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceURI, v))
}

// ConferenceURILTE applies the LTE predicate on the "conference_uri" field.
func ConferenceURILTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceURI, v))
}

// ConferenceURIContains applies the Contains predicate on the "conference_uri" field.
func ConferenceURIContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceURI, v))
}

// ConferenceURIHasPrefix applies the HasPrefix predicate on the "conference_uri" field.
func ConferenceURIHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceURI, v))
}

// ConferenceURIHasSuffix applies the HasSuffix predicate on the "conference_uri" field.
func ConferenceURIHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceURI, v))
}

// ConferenceURIIsNil applies the IsNil predicate on the "conference_uri" field.
func ConferenceURIIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceURI))
}

// ConferenceURINotNil applies the NotNil predicate on the "conference_uri" field.
func ConferenceURINotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceURI))
}

// ConferenceURIEqualFold applies the EqualFold predicate on the "conference_uri" field.
func ConferenceURIEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceURI, v))
}

// ConferenceURIContainsFold applies the ContainsFold predicate on the "conference_uri" field.
func ConferenceURIContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceURI, v))
}

// ConferenceIdentifierEQ applies the EQ predicate on the "conference_identifier" field.
func ConferenceIdentifierEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierNEQ applies the NEQ predicate on the "conference_identifier" field.
func ConferenceIdentifierNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierIn applies the In predicate on the "conference_identifier" field.
func ConferenceIdentifierIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceIdentifier, vs...))
}

// ConferenceIdentifierNotIn applies the NotIn predicate on the "conference_identifier" field.
func ConferenceIdentifierNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceIdentifier, vs...))
}

// ConferenceIdentifierGT applies the GT predicate on the "conference_identifier" field.
func ConferenceIdentifierGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierGTE applies the GTE predicate on the "conference_identifier" field.
func ConferenceIdentifierGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierLT applies the LT predicate on the "conference_identifier" field.
func ConferenceIdentifierLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierLTE applies the LTE predicate on the "conference_identifier" field.
func ConferenceIdentifierLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierContains applies the Contains predicate on the "conference_identifier" field.
func ConferenceIdentifierContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierHasPrefix applies the HasPrefix predicate on the "conference_identifier" field.
func ConferenceIdentifierHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierHasSuffix applies the HasSuffix predicate on the "conference_identifier" field.
func ConferenceIdentifierHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierIsNil applies the IsNil predicate on the "conference_identifier" field.
func ConferenceIdentifierIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceIdentifier))
}

// ConferenceIdentifierNotNil applies the NotNil predicate on the "conference_identifier" field.
func ConferenceIdentifierNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceIdentifier))
}

// ConferenceIdentifierEqualFold applies the EqualFold predicate on the "conference_identifier" field.
func ConferenceIdentifierEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierContainsFold applies the ContainsFold predicate on the "conference_identifier" field.
func ConferenceIdentifierContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceIdentifier, v))
}

// ConferenceIdentifierTypeEQ applies the EQ predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeNEQ applies the NEQ predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeIn applies the In predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceIdentifierType, vs...))
}

// ConferenceIdentifierTypeNotIn applies the NotIn predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceIdentifierType, vs...))
}

// ConferenceIdentifierTypeGT applies the GT predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeGTE applies the GTE predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeLT applies the LT predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeLTE applies the LTE predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeContains applies the Contains predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeHasPrefix applies the HasPrefix predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeHasSuffix applies the HasSuffix predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeIsNil applies the IsNil predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceIdentifierType))
}

// ConferenceIdentifierTypeNotNil applies the NotNil predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceIdentifierType))
}

// ConferenceIdentifierTypeEqualFold applies the EqualFold predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceIdentifierType, v))
}

// ConferenceIdentifierTypeContainsFold applies the ContainsFold predicate on the "conference_identifier_type" field.
func ConferenceIdentifierTypeContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceIdentifierType, v))
}

// ConferenceSchemaURIEQ applies the EQ predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURINEQ applies the NEQ predicate on the "conference_schema_uri" field.
func ConferenceSchemaURINEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIIn applies the In predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceSchemaURI, vs...))
}

// ConferenceSchemaURINotIn applies the NotIn predicate on the "conference_schema_uri" field.
func ConferenceSchemaURINotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceSchemaURI, vs...))
}

// ConferenceSchemaURIGT applies the GT predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIGTE applies the GTE predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURILT applies the LT predicate on the "conference_schema_uri" field.
func ConferenceSchemaURILT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURILTE applies the LTE predicate on the "conference_schema_uri" field.
func ConferenceSchemaURILTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIContains applies the Contains predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIHasPrefix applies the HasPrefix predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIHasSuffix applies the HasSuffix predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIIsNil applies the IsNil predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceSchemaURI))
}

// ConferenceSchemaURINotNil applies the NotNil predicate on the "conference_schema_uri" field.
func ConferenceSchemaURINotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceSchemaURI))
}

// ConferenceSchemaURIEqualFold applies the EqualFold predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceSchemaURI, v))
}

// ConferenceSchemaURIContainsFold applies the ContainsFold predicate on the "conference_schema_uri" field.
func ConferenceSchemaURIContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceSchemaURI, v))
}

// ConferenceStartDateEQ applies the EQ predicate on the "conference_start_date" field.
func ConferenceStartDateEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceStartDate, v))
}

// ConferenceStartDateNEQ applies the NEQ predicate on the "conference_start_date" field.
func ConferenceStartDateNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceStartDate, v))
}

// ConferenceStartDateIn applies the In predicate on the "conference_start_date" field.
func ConferenceStartDateIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceStartDate, vs...))
}

// ConferenceStartDateNotIn applies the NotIn predicate on the "conference_start_date" field.
func ConferenceStartDateNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceStartDate, vs...))
}

// ConferenceStartDateGT applies the GT predicate on the "conference_start_date" field.
func ConferenceStartDateGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceStartDate, v))
}

// ConferenceStartDateGTE applies the GTE predicate on the "conference_start_date" field.
func ConferenceStartDateGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceStartDate, v))
}

// ConferenceStartDateLT applies the LT predicate on the "conference_start_date" field.
func ConferenceStartDateLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceStartDate, v))
}

// ConferenceStartDateLTE applies the LTE predicate on the "conference_start_date" field.
func ConferenceStartDateLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceStartDate, v))
}

// ConferenceStartDateContains applies the Contains predicate on the "conference_start_date" field.
func ConferenceStartDateContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceStartDate, v))
}

// ConferenceStartDateHasPrefix applies the HasPrefix predicate on the "conference_start_date" field.
func ConferenceStartDateHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceStartDate, v))
}

// ConferenceStartDateHasSuffix applies the HasSuffix predicate on the "conference_start_date" field.
func ConferenceStartDateHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceStartDate, v))
}

// ConferenceStartDateIsNil applies the IsNil predicate on the "conference_start_date" field.
func ConferenceStartDateIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceStartDate))
}

// ConferenceStartDateNotNil applies the NotNil predicate on the "conference_start_date" field.
func ConferenceStartDateNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceStartDate))
}

// ConferenceStartDateEqualFold applies the EqualFold predicate on the "conference_start_date" field.
func ConferenceStartDateEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceStartDate, v))
}

// ConferenceStartDateContainsFold applies the ContainsFold predicate on the "conference_start_date" field.
func ConferenceStartDateContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceStartDate, v))
}

// ConferenceEndDateEQ applies the EQ predicate on the "conference_end_date" field.
func ConferenceEndDateEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceEndDate, v))
}

// ConferenceEndDateNEQ applies the NEQ predicate on the "conference_end_date" field.
func ConferenceEndDateNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceEndDate, v))
}

// ConferenceEndDateIn applies the In predicate on the "conference_end_date" field.
func ConferenceEndDateIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceEndDate, vs...))
}

// ConferenceEndDateNotIn applies the NotIn predicate on the "conference_end_date" field.
func ConferenceEndDateNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceEndDate, vs...))
}

// ConferenceEndDateGT applies the GT predicate on the "conference_end_date" field.
func ConferenceEndDateGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceEndDate, v))
}

// ConferenceEndDateGTE applies the GTE predicate on the "conference_end_date" field.
func ConferenceEndDateGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceEndDate, v))
}

// ConferenceEndDateLT applies the LT predicate on the "conference_end_date" field.
func ConferenceEndDateLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceEndDate, v))
}

// ConferenceEndDateLTE applies the LTE predicate on the "conference_end_date" field.
func ConferenceEndDateLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceEndDate, v))
}

// ConferenceEndDateContains applies the Contains predicate on the "conference_end_date" field.
func ConferenceEndDateContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceEndDate, v))
}

// ConferenceEndDateHasPrefix applies the HasPrefix predicate on the "conference_end_date" field.
func ConferenceEndDateHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceEndDate, v))
}

// ConferenceEndDateHasSuffix applies the HasSuffix predicate on the "conference_end_date" field.
func ConferenceEndDateHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceEndDate, v))
}

// ConferenceEndDateIsNil applies the IsNil predicate on the "conference_end_date" field.
func ConferenceEndDateIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceEndDate))
}

// ConferenceEndDateNotNil applies the NotNil predicate on the "conference_end_date" field.
func ConferenceEndDateNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceEndDate))
}

// ConferenceEndDateEqualFold applies the EqualFold predicate on the "conference_end_date" field.
func ConferenceEndDateEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceEndDate, v))
}

// ConferenceEndDateContainsFold applies the ContainsFold predicate on the "conference_end_date" field.
func ConferenceEndDateContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceEndDate, v))
}

// ConferenceAcronymEQ applies the EQ predicate on the "conference_acronym" field.
func ConferenceAcronymEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceAcronym, v))
}

// ConferenceAcronymNEQ applies the NEQ predicate on the "conference_acronym" field.
func ConferenceAcronymNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceAcronym, v))
}

// ConferenceAcronymIn applies the In predicate on the "conference_acronym" field.
func ConferenceAcronymIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceAcronym, vs...))
}

// ConferenceAcronymNotIn applies the NotIn predicate on the "conference_acronym" field.
func ConferenceAcronymNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceAcronym, vs...))
}

// ConferenceAcronymGT applies the GT predicate on the "conference_acronym" field.
func ConferenceAcronymGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceAcronym, v))
}

// ConferenceAcronymGTE applies the GTE predicate on the "conference_acronym" field.
func ConferenceAcronymGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceAcronym, v))
}

// ConferenceAcronymLT applies the LT predicate on the "conference_acronym" field.
func ConferenceAcronymLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceAcronym, v))
}

// ConferenceAcronymLTE applies the LTE predicate on the "conference_acronym" field.
func ConferenceAcronymLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceAcronym, v))
}

// ConferenceAcronymContains applies the Contains predicate on the "conference_acronym" field.
func ConferenceAcronymContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceAcronym, v))
}

// ConferenceAcronymHasPrefix applies the HasPrefix predicate on the "conference_acronym" field.
func ConferenceAcronymHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceAcronym, v))
}

// ConferenceAcronymHasSuffix applies the HasSuffix predicate on the "conference_acronym" field.
func ConferenceAcronymHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceAcronym, v))
}

// ConferenceAcronymIsNil applies the IsNil predicate on the "conference_acronym" field.
func ConferenceAcronymIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceAcronym))
}

// ConferenceAcronymNotNil applies the NotNil predicate on the "conference_acronym" field.
func ConferenceAcronymNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceAcronym))
}

// ConferenceAcronymEqualFold applies the EqualFold predicate on the "conference_acronym" field.
func ConferenceAcronymEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceAcronym, v))
}

// ConferenceAcronymContainsFold applies the ContainsFold predicate on the "conference_acronym" field.
func ConferenceAcronymContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceAcronym, v))
}

// ConferenceSeriesEQ applies the EQ predicate on the "conference_series" field.
func ConferenceSeriesEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldConferenceSeries, v))
}

// ConferenceSeriesNEQ applies the NEQ predicate on the "conference_series" field.
func ConferenceSeriesNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldConferenceSeries, v))
}

// ConferenceSeriesIn applies the In predicate on the "conference_series" field.
func ConferenceSeriesIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldConferenceSeries, vs...))
}

// ConferenceSeriesNotIn applies the NotIn predicate on the "conference_series" field.
func ConferenceSeriesNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldConferenceSeries, vs...))
}

// ConferenceSeriesGT applies the GT predicate on the "conference_series" field.
func ConferenceSeriesGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldConferenceSeries, v))
}

// ConferenceSeriesGTE applies the GTE predicate on the "conference_series" field.
func ConferenceSeriesGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldConferenceSeries, v))
}

// ConferenceSeriesLT applies the LT predicate on the "conference_series" field.
func ConferenceSeriesLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldConferenceSeries, v))
}

// ConferenceSeriesLTE applies the LTE predicate on the "conference_series" field.
func ConferenceSeriesLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldConferenceSeries, v))
}

// ConferenceSeriesContains applies the Contains predicate on the "conference_series" field.
func ConferenceSeriesContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldConferenceSeries, v))
}

// ConferenceSeriesHasPrefix applies the HasPrefix predicate on the "conference_series" field.
func ConferenceSeriesHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldConferenceSeries, v))
}

// ConferenceSeriesHasSuffix applies the HasSuffix predicate on the "conference_series" field.
func ConferenceSeriesHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldConferenceSeries, v))
}

// ConferenceSeriesIsNil applies the IsNil predicate on the "conference_series" field.
func ConferenceSeriesIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldConferenceSeries))
}

// ConferenceSeriesNotNil applies the NotNil predicate on the "conference_series" field.
func ConferenceSeriesNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldConferenceSeries))
}

// ConferenceSeriesEqualFold applies the EqualFold predicate on the "conference_series" field.
func ConferenceSeriesEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldConferenceSeries, v))
}

// ConferenceSeriesContainsFold applies the ContainsFold predicate on the "conference_series" field.
func ConferenceSeriesContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldConferenceSeries, v))
}

// DomainEQ applies the EQ predicate on the "domain" field.
func DomainEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldDomain, v))
}

// DomainNEQ applies the NEQ predicate on the "domain" field.
func DomainNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldDomain, v))
}

// DomainIn applies the In predicate on the "domain" field.
func DomainIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldDomain, vs...))
}

// DomainNotIn applies the NotIn predicate on the "domain" field.
func DomainNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldDomain, vs...))
}

// DomainGT applies the GT predicate on the "domain" field.
func DomainGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldDomain, v))
}

// DomainGTE applies the GTE predicate on the "domain" field.
func DomainGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldDomain, v))
}

// DomainLT applies the LT predicate on the "domain" field.
func DomainLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldDomain, v))
}

// DomainLTE applies the LTE predicate on the "domain" field.
func DomainLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldDomain, v))
}

// DomainContains applies the Contains predicate on the "domain" field.
func DomainContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldDomain, v))
}

// DomainHasPrefix applies the HasPrefix predicate on the "domain" field.
func DomainHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldDomain, v))
}

// DomainHasSuffix applies the HasSuffix predicate on the "domain" field.
func DomainHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldDomain, v))
}

// DomainIsNil applies the IsNil predicate on the "domain" field.
func DomainIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldDomain))
}

// DomainNotNil applies the NotNil predicate on the "domain" field.
func DomainNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldDomain))
}

// DomainEqualFold applies the EqualFold predicate on the "domain" field.
func DomainEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldDomain, v))
}

// DomainContainsFold applies the ContainsFold predicate on the "domain" field.
func DomainContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldDomain, v))
}

// DoiEQ applies the EQ predicate on the "doi" field.
func DoiEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldDoi, v))
}

// DoiNEQ applies the NEQ predicate on the "doi" field.
func DoiNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldDoi, v))
}

// DoiIn applies the In predicate on the "doi" field.
func DoiIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldDoi, vs...))
}

// DoiNotIn applies the NotIn predicate on the "doi" field.
func DoiNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldDoi, vs...))
}

// DoiGT applies the GT predicate on the "doi" field.
func DoiGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldDoi, v))
}

// DoiGTE applies the GTE predicate on the "doi" field.
func DoiGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldDoi, v))
}

// DoiLT applies the LT predicate on the "doi" field.
func DoiLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldDoi, v))
}

// DoiLTE applies the LTE predicate on the "doi" field.
func DoiLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldDoi, v))
}

// DoiContains applies the Contains predicate on the "doi" field.
func DoiContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldDoi, v))
}

// DoiHasPrefix applies the HasPrefix predicate on the "doi" field.
func DoiHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldDoi, v))
}

// DoiHasSuffix applies the HasSuffix predicate on the "doi" field.
func DoiHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldDoi, v))
}

// DoiIsNil applies the IsNil predicate on the "doi" field.
func DoiIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldDoi))
}

// DoiNotNil applies the NotNil predicate on the "doi" field.
func DoiNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldDoi))
}

// DoiEqualFold applies the EqualFold predicate on the "doi" field.
func DoiEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldDoi, v))
}

// DoiContainsFold applies the ContainsFold predicate on the "doi" field.
func DoiContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldDoi, v))
}

// IdentifiersIsNil applies the IsNil predicate on the "identifiers" field.
func IdentifiersIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldIdentifiers))
}

// IdentifiersNotNil applies the NotNil predicate on the "identifiers" field.
func IdentifiersNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldIdentifiers))
}

// AlternateIdentifiersIsNil applies the IsNil predicate on the "alternate_identifiers" field.
func AlternateIdentifiersIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldAlternateIdentifiers))
}

// AlternateIdentifiersNotNil applies the NotNil predicate on the "alternate_identifiers" field.
func AlternateIdentifiersNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldAlternateIdentifiers))
}

// PublisherIsNil applies the IsNil predicate on the "publisher" field.
func PublisherIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldPublisher))
}

// PublisherNotNil applies the NotNil predicate on the "publisher" field.
func PublisherNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldPublisher))
}

// PublicationYearEQ applies the EQ predicate on the "publication_year" field.
func PublicationYearEQ(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldPublicationYear, v))
}

// PublicationYearNEQ applies the NEQ predicate on the "publication_year" field.
func PublicationYearNEQ(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldPublicationYear, v))
}

// PublicationYearIn applies the In predicate on the "publication_year" field.
func PublicationYearIn(vs ...int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldPublicationYear, vs...))
}

// PublicationYearNotIn applies the NotIn predicate on the "publication_year" field.
func PublicationYearNotIn(vs ...int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldPublicationYear, vs...))
}

// PublicationYearGT applies the GT predicate on the "publication_year" field.
func PublicationYearGT(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldPublicationYear, v))
}

// PublicationYearGTE applies the GTE predicate on the "publication_year" field.
func PublicationYearGTE(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldPublicationYear, v))
}

// PublicationYearLT applies the LT predicate on the "publication_year" field.
func PublicationYearLT(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldPublicationYear, v))
}

// PublicationYearLTE applies the LTE predicate on the "publication_year" field.
func PublicationYearLTE(v int) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldPublicationYear, v))
}

// PublicationYearIsNil applies the IsNil predicate on the "publication_year" field.
func PublicationYearIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldPublicationYear))
}

// PublicationYearNotNil applies the NotNil predicate on the "publication_year" field.
func PublicationYearNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldPublicationYear))
}

// SubjectsIsNil applies the IsNil predicate on the "subjects" field.
func SubjectsIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldSubjects))
}

// SubjectsNotNil applies the NotNil predicate on the "subjects" field.
func SubjectsNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldSubjects))
}

// DatesIsNil applies the IsNil predicate on the "dates" field.
func DatesIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldDates))
}

// DatesNotNil applies the NotNil predicate on the "dates" field.
func DatesNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldDates))
}

// LanguageEQ applies the EQ predicate on the "language" field.
func LanguageEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldLanguage, v))
}

// LanguageNEQ applies the NEQ predicate on the "language" field.
func LanguageNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldLanguage, v))
}

// LanguageIn applies the In predicate on the "language" field.
func LanguageIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldLanguage, vs...))
}

// LanguageNotIn applies the NotIn predicate on the "language" field.
func LanguageNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldLanguage, vs...))
}

// LanguageGT applies the GT predicate on the "language" field.
func LanguageGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldLanguage, v))
}

// LanguageGTE applies the GTE predicate on the "language" field.
func LanguageGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldLanguage, v))
}

// LanguageLT applies the LT predicate on the "language" field.
func LanguageLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldLanguage, v))
}

// LanguageLTE applies the LTE predicate on the "language" field.
func LanguageLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldLanguage, v))
}

// LanguageContains applies the Contains predicate on the "language" field.
func LanguageContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldLanguage, v))
}

// LanguageHasPrefix applies the HasPrefix predicate on the "language" field.
func LanguageHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldLanguage, v))
}

// LanguageHasSuffix applies the HasSuffix predicate on the "language" field.
func LanguageHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldLanguage, v))
}

// LanguageIsNil applies the IsNil predicate on the "language" field.
func LanguageIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldLanguage))
}

// LanguageNotNil applies the NotNil predicate on the "language" field.
func LanguageNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldLanguage))
}

// LanguageEqualFold applies the EqualFold predicate on the "language" field.
func LanguageEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldLanguage, v))
}

// LanguageContainsFold applies the ContainsFold predicate on the "language" field.
func LanguageContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldLanguage, v))
}

// TypesIsNil applies the IsNil predicate on the "types" field.
func TypesIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldTypes))
}

// TypesNotNil applies the NotNil predicate on the "types" field.
func TypesNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldTypes))
}

// RelatedIdentifiersIsNil applies the IsNil predicate on the "related_identifiers" field.
func RelatedIdentifiersIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldRelatedIdentifiers))
}

// RelatedIdentifiersNotNil applies the NotNil predicate on the "related_identifiers" field.
func RelatedIdentifiersNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldRelatedIdentifiers))
}

// SizesIsNil applies the IsNil predicate on the "sizes" field.
func SizesIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldSizes))
}

// SizesNotNil applies the NotNil predicate on the "sizes" field.
func SizesNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldSizes))
}

// FormatsIsNil applies the IsNil predicate on the "formats" field.
func FormatsIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldFormats))
}

// FormatsNotNil applies the NotNil predicate on the "formats" field.
func FormatsNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldFormats))
}

// VersionEQ applies the EQ predicate on the "version" field.
func VersionEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldVersion, v))
}

// VersionNEQ applies the NEQ predicate on the "version" field.
func VersionNEQ(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldVersion, v))
}

// VersionIn applies the In predicate on the "version" field.
func VersionIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldVersion, vs...))
}

// VersionNotIn applies the NotIn predicate on the "version" field.
func VersionNotIn(vs ...string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldVersion, vs...))
}

// VersionGT applies the GT predicate on the "version" field.
func VersionGT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldVersion, v))
}

// VersionGTE applies the GTE predicate on the "version" field.
func VersionGTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldVersion, v))
}

// VersionLT applies the LT predicate on the "version" field.
func VersionLT(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldVersion, v))
}

// VersionLTE applies the LTE predicate on the "version" field.
func VersionLTE(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldVersion, v))
}

// VersionContains applies the Contains predicate on the "version" field.
func VersionContains(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContains(FieldVersion, v))
}

// VersionHasPrefix applies the HasPrefix predicate on the "version" field.
func VersionHasPrefix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasPrefix(FieldVersion, v))
}

// VersionHasSuffix applies the HasSuffix predicate on the "version" field.
func VersionHasSuffix(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldHasSuffix(FieldVersion, v))
}

// VersionIsNil applies the IsNil predicate on the "version" field.
func VersionIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldVersion))
}

// VersionNotNil applies the NotNil predicate on the "version" field.
func VersionNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldVersion))
}

// VersionEqualFold applies the EqualFold predicate on the "version" field.
func VersionEqualFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEqualFold(FieldVersion, v))
}

// VersionContainsFold applies the ContainsFold predicate on the "version" field.
func VersionContainsFold(v string) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldContainsFold(FieldVersion, v))
}

// RightsListIsNil applies the IsNil predicate on the "rights_list" field.
func RightsListIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldRightsList))
}

// RightsListNotNil applies the NotNil predicate on the "rights_list" field.
func RightsListNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldRightsList))
}

// FundingReferencesIsNil applies the IsNil predicate on the "funding_references" field.
func FundingReferencesIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldFundingReferences))
}

// FundingReferencesNotNil applies the NotNil predicate on the "funding_references" field.
func FundingReferencesNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldFundingReferences))
}

// EthicsApprovalIsNil applies the IsNil predicate on the "ethics_approval" field.
func EthicsApprovalIsNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIsNull(FieldEthicsApproval))
}

// EthicsApprovalNotNil applies the NotNil predicate on the "ethics_approval" field.
func EthicsApprovalNotNil() predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotNull(FieldEthicsApproval))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasPoster applies the HasEdge predicate on the "poster" edge.
func HasPoster() predicate.PosterMetadata {
	return predicate.PosterMetadata(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, PosterTable, PosterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPosterWith applies the HasEdge predicate on the "poster" edge with a given conditions (other predicates).
func HasPosterWith(preds ...predicate.Poster) predicate.PosterMetadata {
	return predicate.PosterMetadata(func(s *sql.Selector) {
		step := newPosterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PosterMetadata) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PosterMetadata) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PosterMetadata) predicate.PosterMetadata {
	return predicate.PosterMetadata(sql.NotPredicates(p))
}
