// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/gen/ent/predicate"
	"github.com/posters-science/poster-tracker/internal/entity"
)

// PosterMetadataUpdate is the builder for updating PosterMetadata entities.
type PosterMetadataUpdate struct {
	config
	hooks    []Hook
	mutation *PosterMetadataMutation
}

// Where appends a list predicates to the PosterMetadataUpdate builder.
func (_u *PosterMetadataUpdate) Where(ps ...predicate.PosterMetadata) *PosterMetadataUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosterID sets the "poster_id" field.
func (_u *PosterMetadataUpdate) SetPosterID(v uuid.UUID) *PosterMetadataUpdate {
	_u.mutation.SetPosterID(v)
	return _u
}

// SetNillablePosterID sets the "poster_id" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillablePosterID(v *uuid.UUID) *PosterMetadataUpdate {
	if v != nil {
		_u.SetPosterID(*v)
	}
	return _u
}

// SetCreators sets the "creators" field.
func (_u *PosterMetadataUpdate) SetCreators(v []entity.Creator) *PosterMetadataUpdate {
	_u.mutation.SetCreators(v)
	return _u
}

// AppendCreators appends value to the "creators" field.
func (_u *PosterMetadataUpdate) AppendCreators(v []entity.Creator) *PosterMetadataUpdate {
	_u.mutation.AppendCreators(v)
	return _u
}

// ClearCreators clears the value of the "creators" field.
func (_u *PosterMetadataUpdate) ClearCreators() *PosterMetadataUpdate {
	_u.mutation.ClearCreators()
	return _u
}

// SetTitles sets the "titles" field.
func (_u *PosterMetadataUpdate) SetTitles(v []entity.Title) *PosterMetadataUpdate {
	_u.mutation.SetTitles(v)
	return _u
}

// AppendTitles appends value to the "titles" field.
func (_u *PosterMetadataUpdate) AppendTitles(v []entity.Title) *PosterMetadataUpdate {
	_u.mutation.AppendTitles(v)
	return _u
}

// ClearTitles clears the value of the "titles" field.
func (_u *PosterMetadataUpdate) ClearTitles() *PosterMetadataUpdate {
	_u.mutation.ClearTitles()
	return _u
}

// SetDescriptions sets the "descriptions" field.
func (_u *PosterMetadataUpdate) SetDescriptions(v []entity.Description) *PosterMetadataUpdate {
	_u.mutation.SetDescriptions(v)
	return _u
}

// AppendDescriptions appends value to the "descriptions" field.
func (_u *PosterMetadataUpdate) AppendDescriptions(v []entity.Description) *PosterMetadataUpdate {
	_u.mutation.AppendDescriptions(v)
	return _u
}

// ClearDescriptions clears the value of the "descriptions" field.
func (_u *PosterMetadataUpdate) ClearDescriptions() *PosterMetadataUpdate {
	_u.mutation.ClearDescriptions()
	return _u
}

// SetImageCaption sets the "image_caption" field.
func (_u *PosterMetadataUpdate) SetImageCaption(v []entity.Caption) *PosterMetadataUpdate {
	_u.mutation.SetImageCaption(v)
	return _u
}

// AppendImageCaption appends value to the "image_caption" field.
func (_u *PosterMetadataUpdate) AppendImageCaption(v []entity.Caption) *PosterMetadataUpdate {
	_u.mutation.AppendImageCaption(v)
	return _u
}

// ClearImageCaption clears the value of the "image_caption" field.
func (_u *PosterMetadataUpdate) ClearImageCaption() *PosterMetadataUpdate {
	_u.mutation.ClearImageCaption()
	return _u
}

// SetPosterContent sets the "poster_content" field.
func (_u *PosterMetadataUpdate) SetPosterContent(v []entity.ContentSection) *PosterMetadataUpdate {
	_u.mutation.SetPosterContent(v)
	return _u
}

// AppendPosterContent appends value to the "poster_content" field.
func (_u *PosterMetadataUpdate) AppendPosterContent(v []entity.ContentSection) *PosterMetadataUpdate {
	_u.mutation.AppendPosterContent(v)
	return _u
}

// ClearPosterContent clears the value of the "poster_content" field.
func (_u *PosterMetadataUpdate) ClearPosterContent() *PosterMetadataUpdate {
	_u.mutation.ClearPosterContent()
	return _u
}

// SetTableCaption sets the "table_caption" field.
func (_u *PosterMetadataUpdate) SetTableCaption(v []entity.Caption) *PosterMetadataUpdate {
	_u.mutation.SetTableCaption(v)
	return _u
}

// AppendTableCaption appends value to the "table_caption" field.
func (_u *PosterMetadataUpdate) AppendTableCaption(v []entity.Caption) *PosterMetadataUpdate {
	_u.mutation.AppendTableCaption(v)
	return _u
}

// ClearTableCaption clears the value of the "table_caption" field.
func (_u *PosterMetadataUpdate) ClearTableCaption() *PosterMetadataUpdate {
	_u.mutation.ClearTableCaption()
	return _u
}

// SetConferenceName sets the "conference_name" field.
func (_u *PosterMetadataUpdate) SetConferenceName(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceName(v)
	return _u
}

// SetNillableConferenceName sets the "conference_name" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceName(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceName(*v)
	}
	return _u
}

// ClearConferenceName clears the value of the "conference_name" field.
func (_u *PosterMetadataUpdate) ClearConferenceName() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceName()
	return _u
}

// SetConferenceLocation sets the "conference_location" field.
func (_u *PosterMetadataUpdate) SetConferenceLocation(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceLocation(v)
	return _u
}

// SetNillableConferenceLocation sets the "conference_location" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceLocation(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceLocation(*v)
	}
	return _u
}

// ClearConferenceLocation clears the value of the "conference_location" field.
func (_u *PosterMetadataUpdate) ClearConferenceLocation() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceLocation()
	return _u
}

// SetConferenceURI sets the "conference_uri" field.
func (_u *PosterMetadataUpdate) SetConferenceURI(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceURI(v)
	return _u
}

// SetNillableConferenceURI sets the "conference_uri" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceURI(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceURI(*v)
	}
	return _u
}

// ClearConferenceURI clears the value of the "conference_uri" field.
func (_u *PosterMetadataUpdate) ClearConferenceURI() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceURI()
	return _u
}

// SetConferenceIdentifier sets the "conference_identifier" field.
func (_u *PosterMetadataUpdate) SetConferenceIdentifier(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceIdentifier(v)
	return _u
}

// SetNillableConferenceIdentifier sets the "conference_identifier" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceIdentifier(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceIdentifier(*v)
	}
	return _u
}

// ClearConferenceIdentifier clears the value of the "conference_identifier" field.
func (_u *PosterMetadataUpdate) ClearConferenceIdentifier() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceIdentifier()
	return _u
}

// SetConferenceIdentifierType sets the "conference_identifier_type" field.
func (_u *PosterMetadataUpdate) SetConferenceIdentifierType(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceIdentifierType(v)
	return _u
}

// SetNillableConferenceIdentifierType sets the "conference_identifier_type" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceIdentifierType(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceIdentifierType(*v)
	}
	return _u
}

// ClearConferenceIdentifierType clears the value of the "conference_identifier_type" field.
func (_u *PosterMetadataUpdate) ClearConferenceIdentifierType() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceIdentifierType()
	return _u
}

// SetConferenceSchemaURI sets the "conference_schema_uri" field.
func (_u *PosterMetadataUpdate) SetConferenceSchemaURI(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceSchemaURI(v)
	return _u
}

// SetNillableConferenceSchemaURI sets the "conference_schema_uri" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceSchemaURI(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceSchemaURI(*v)
	}
	return _u
}

// ClearConferenceSchemaURI clears the value of the "conference_schema_uri" field.
func (_u *PosterMetadataUpdate) ClearConferenceSchemaURI() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceSchemaURI()
	return _u
}

// SetConferenceStartDate sets the "conference_start_date" field.
func (_u *PosterMetadataUpdate) SetConferenceStartDate(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceStartDate(v)
	return _u
}

// SetNillableConferenceStartDate sets the "conference_start_date" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceStartDate(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceStartDate(*v)
	}
	return _u
}

// ClearConferenceStartDate clears the value of the "conference_start_date" field.
func (_u *PosterMetadataUpdate) ClearConferenceStartDate() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceStartDate()
	return _u
}

// SetConferenceEndDate sets the "conference_end_date" field.
func (_u *PosterMetadataUpdate) SetConferenceEndDate(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceEndDate(v)
	return _u
}

// SetNillableConferenceEndDate sets the "conference_end_date" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceEndDate(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceEndDate(*v)
	}
	return _u
}

// ClearConferenceEndDate clears the value of the "conference_end_date" field.
func (_u *PosterMetadataUpdate) ClearConferenceEndDate() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceEndDate()
	return _u
}

// SetConferenceAcronym sets the "conference_acronym" field.
func (_u *PosterMetadataUpdate) SetConferenceAcronym(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceAcronym(v)
	return _u
}

// SetNillableConferenceAcronym sets the "conference_acronym" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceAcronym(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceAcronym(*v)
	}
	return _u
}

// ClearConferenceAcronym clears the value of the "conference_acronym" field.
func (_u *PosterMetadataUpdate) ClearConferenceAcronym() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceAcronym()
	return _u
}

// SetConferenceSeries sets the "conference_series" field.
func (_u *PosterMetadataUpdate) SetConferenceSeries(v string) *PosterMetadataUpdate {
	_u.mutation.SetConferenceSeries(v)
	return _u
}

// SetNillableConferenceSeries sets the "conference_series" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableConferenceSeries(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetConferenceSeries(*v)
	}
	return _u
}

// ClearConferenceSeries clears the value of the "conference_series" field.
func (_u *PosterMetadataUpdate) ClearConferenceSeries() *PosterMetadataUpdate {
	_u.mutation.ClearConferenceSeries()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PosterMetadataUpdate) SetDomain(v string) *PosterMetadataUpdate {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableDomain(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *PosterMetadataUpdate) ClearDomain() *PosterMetadataUpdate {
	_u.mutation.ClearDomain()
	return _u
}

// SetDoi sets the "doi" field.
func (_u *PosterMetadataUpdate) SetDoi(v string) *PosterMetadataUpdate {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableDoi(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *PosterMetadataUpdate) ClearDoi() *PosterMetadataUpdate {
	_u.mutation.ClearDoi()
	return _u
}

// SetIdentifiers sets the "identifiers" field.
func (_u *PosterMetadataUpdate) SetIdentifiers(v []entity.Identifier) *PosterMetadataUpdate {
	_u.mutation.SetIdentifiers(v)
	return _u
}

// AppendIdentifiers appends value to the "identifiers" field.
func (_u *PosterMetadataUpdate) AppendIdentifiers(v []entity.Identifier) *PosterMetadataUpdate {
	_u.mutation.AppendIdentifiers(v)
	return _u
}

// ClearIdentifiers clears the value of the "identifiers" field.
func (_u *PosterMetadataUpdate) ClearIdentifiers() *PosterMetadataUpdate {
	_u.mutation.ClearIdentifiers()
	return _u
}

// SetAlternateIdentifiers sets the "alternate_identifiers" field.
func (_u *PosterMetadataUpdate) SetAlternateIdentifiers(v []entity.AlternateIdentifier) *PosterMetadataUpdate {
	_u.mutation.SetAlternateIdentifiers(v)
	return _u
}

// AppendAlternateIdentifiers appends value to the "alternate_identifiers" field.
func (_u *PosterMetadataUpdate) AppendAlternateIdentifiers(v []entity.AlternateIdentifier) *PosterMetadataUpdate {
	_u.mutation.AppendAlternateIdentifiers(v)
	return _u
}

// ClearAlternateIdentifiers clears the value of the "alternate_identifiers" field.
func (_u *PosterMetadataUpdate) ClearAlternateIdentifiers() *PosterMetadataUpdate {
	_u.mutation.ClearAlternateIdentifiers()
	return _u
}

// SetPublisher sets the "publisher" field.
func (_u *PosterMetadataUpdate) SetPublisher(v []entity.Publisher) *PosterMetadataUpdate {
	_u.mutation.SetPublisher(v)
	return _u
}

// AppendPublisher appends value to the "publisher" field.
func (_u *PosterMetadataUpdate) AppendPublisher(v []entity.Publisher) *PosterMetadataUpdate {
	_u.mutation.AppendPublisher(v)
	return _u
}

// ClearPublisher clears the value of the "publisher" field.
func (_u *PosterMetadataUpdate) ClearPublisher() *PosterMetadataUpdate {
	_u.mutation.ClearPublisher()
	return _u
}

// SetPublicationYear sets the "publication_year" field.
func (_u *PosterMetadataUpdate) SetPublicationYear(v int) *PosterMetadataUpdate {
	_u.mutation.ResetPublicationYear()
	_u.mutation.SetPublicationYear(v)
	return _u
}

// SetNillablePublicationYear sets the "publication_year" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillablePublicationYear(v *int) *PosterMetadataUpdate {
	if v != nil {
		_u.SetPublicationYear(*v)
	}
	return _u
}

// AddPublicationYear adds value to the "publication_year" field.
func (_u *PosterMetadataUpdate) AddPublicationYear(v int) *PosterMetadataUpdate {
	_u.mutation.AddPublicationYear(v)
	return _u
}

// ClearPublicationYear clears the value of the "publication_year" field.
func (_u *PosterMetadataUpdate) ClearPublicationYear() *PosterMetadataUpdate {
	_u.mutation.ClearPublicationYear()
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *PosterMetadataUpdate) SetSubjects(v []entity.Subject) *PosterMetadataUpdate {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *PosterMetadataUpdate) AppendSubjects(v []entity.Subject) *PosterMetadataUpdate {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *PosterMetadataUpdate) ClearSubjects() *PosterMetadataUpdate {
	_u.mutation.ClearSubjects()
	return _u
}

// SetDates sets the "dates" field.
func (_u *PosterMetadataUpdate) SetDates(v []entity.Date) *PosterMetadataUpdate {
	_u.mutation.SetDates(v)
	return _u
}

// AppendDates appends value to the "dates" field.
func (_u *PosterMetadataUpdate) AppendDates(v []entity.Date) *PosterMetadataUpdate {
	_u.mutation.AppendDates(v)
	return _u
}

// ClearDates clears the value of the "dates" field.
func (_u *PosterMetadataUpdate) ClearDates() *PosterMetadataUpdate {
	_u.mutation.ClearDates()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PosterMetadataUpdate) SetLanguage(v string) *PosterMetadataUpdate {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableLanguage(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *PosterMetadataUpdate) ClearLanguage() *PosterMetadataUpdate {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTypes sets the "types" field.
func (_u *PosterMetadataUpdate) SetTypes(v []entity.ResourceType) *PosterMetadataUpdate {
	_u.mutation.SetTypes(v)
	return _u
}

// AppendTypes appends value to the "types" field.
func (_u *PosterMetadataUpdate) AppendTypes(v []entity.ResourceType) *PosterMetadataUpdate {
	_u.mutation.AppendTypes(v)
	return _u
}

// ClearTypes clears the value of the "types" field.
func (_u *PosterMetadataUpdate) ClearTypes() *PosterMetadataUpdate {
	_u.mutation.ClearTypes()
	return _u
}

// SetRelatedIdentifiers sets the "related_identifiers" field.
func (_u *PosterMetadataUpdate) SetRelatedIdentifiers(v []entity.RelatedIdentifier) *PosterMetadataUpdate {
	_u.mutation.SetRelatedIdentifiers(v)
	return _u
}

// AppendRelatedIdentifiers appends value to the "related_identifiers" field.
func (_u *PosterMetadataUpdate) AppendRelatedIdentifiers(v []entity.RelatedIdentifier) *PosterMetadataUpdate {
	_u.mutation.AppendRelatedIdentifiers(v)
	return _u
}

// ClearRelatedIdentifiers clears the value of the "related_identifiers" field.
func (_u *PosterMetadataUpdate) ClearRelatedIdentifiers() *PosterMetadataUpdate {
	_u.mutation.ClearRelatedIdentifiers()
	return _u
}

// SetSizes sets the "sizes" field.
func (_u *PosterMetadataUpdate) SetSizes(v []string) *PosterMetadataUpdate {
	_u.mutation.SetSizes(v)
	return _u
}

// AppendSizes appends value to the "sizes" field.
func (_u *PosterMetadataUpdate) AppendSizes(v []string) *PosterMetadataUpdate {
	_u.mutation.AppendSizes(v)
	return _u
}

// ClearSizes clears the value of the "sizes" field.
func (_u *PosterMetadataUpdate) ClearSizes() *PosterMetadataUpdate {
	_u.mutation.ClearSizes()
	return _u
}

// SetFormats sets the "formats" field.
func (_u *PosterMetadataUpdate) SetFormats(v []string) *PosterMetadataUpdate {
	_u.mutation.SetFormats(v)
	return _u
}

// AppendFormats appends value to the "formats" field.
func (_u *PosterMetadataUpdate) AppendFormats(v []string) *PosterMetadataUpdate {
	_u.mutation.AppendFormats(v)
	return _u
}

// ClearFormats clears the value of the "formats" field.
func (_u *PosterMetadataUpdate) ClearFormats() *PosterMetadataUpdate {
	_u.mutation.ClearFormats()
	return _u
}

// SetVersion sets the "version" field.
func (_u *PosterMetadataUpdate) SetVersion(v string) *PosterMetadataUpdate {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableVersion(v *string) *PosterMetadataUpdate {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *PosterMetadataUpdate) ClearVersion() *PosterMetadataUpdate {
	_u.mutation.ClearVersion()
	return _u
}

// SetRightsList sets the "rights_list" field.
func (_u *PosterMetadataUpdate) SetRightsList(v []entity.Rights) *PosterMetadataUpdate {
	_u.mutation.SetRightsList(v)
	return _u
}

// AppendRightsList appends value to the "rights_list" field.
func (_u *PosterMetadataUpdate) AppendRightsList(v []entity.Rights) *PosterMetadataUpdate {
	_u.mutation.AppendRightsList(v)
	return _u
}

// ClearRightsList clears the value of the "rights_list" field.
func (_u *PosterMetadataUpdate) ClearRightsList() *PosterMetadataUpdate {
	_u.mutation.ClearRightsList()
	return _u
}

// SetFundingReferences sets the "funding_references" field.
func (_u *PosterMetadataUpdate) SetFundingReferences(v []entity.Funding) *PosterMetadataUpdate {
	_u.mutation.SetFundingReferences(v)
	return _u
}

// AppendFundingReferences appends value to the "funding_references" field.
func (_u *PosterMetadataUpdate) AppendFundingReferences(v []entity.Funding) *PosterMetadataUpdate {
	_u.mutation.AppendFundingReferences(v)
	return _u
}

// ClearFundingReferences clears the value of the "funding_references" field.
func (_u *PosterMetadataUpdate) ClearFundingReferences() *PosterMetadataUpdate {
	_u.mutation.ClearFundingReferences()
	return _u
}

// SetEthicsApproval sets the "ethics_approval" field.
func (_u *PosterMetadataUpdate) SetEthicsApproval(v []string) *PosterMetadataUpdate {
	_u.mutation.SetEthicsApproval(v)
	return _u
}

// AppendEthicsApproval appends value to the "ethics_approval" field.
func (_u *PosterMetadataUpdate) AppendEthicsApproval(v []string) *PosterMetadataUpdate {
	_u.mutation.AppendEthicsApproval(v)
	return _u
}

// ClearEthicsApproval clears the value of the "ethics_approval" field.
func (_u *PosterMetadataUpdate) ClearEthicsApproval() *PosterMetadataUpdate {
	_u.mutation.ClearEthicsApproval()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PosterMetadataUpdate) SetCreatedAt(v time.Time) *PosterMetadataUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PosterMetadataUpdate) SetNillableCreatedAt(v *time.Time) *PosterMetadataUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PosterMetadataUpdate) SetUpdatedAt(v time.Time) *PosterMetadataUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPoster sets the "poster" edge to the Poster entity.
func (_u *PosterMetadataUpdate) SetPoster(v *Poster) *PosterMetadataUpdate {
	return _u.SetPosterID(v.ID)
}

// Mutation returns the PosterMetadataMutation object of the builder.
func (_u *PosterMetadataUpdate) Mutation() *PosterMetadataMutation {
	return _u.mutation
}

// ClearPoster clears the "poster" edge to the Poster entity.
func (_u *PosterMetadataUpdate) ClearPoster() *PosterMetadataUpdate {
	_u.mutation.ClearPoster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PosterMetadataUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PosterMetadataUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PosterMetadataUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PosterMetadataUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PosterMetadataUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := postermetadata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PosterMetadataUpdate) check() error {
	if _u.mutation.PosterCleared() && len(_u.mutation.PosterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PosterMetadata.poster"`)
	}
	return nil
}

func (_u *PosterMetadataUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postermetadata.Table, postermetadata.Columns, sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Creators(); ok {
		_spec.SetField(postermetadata.FieldCreators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldCreators, value)
		})
	}
	if _u.mutation.CreatorsCleared() {
		_spec.ClearField(postermetadata.FieldCreators, field.TypeJSON)
	}
	if value, ok := _u.mutation.Titles(); ok {
		_spec.SetField(postermetadata.FieldTitles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldTitles, value)
		})
	}
	if _u.mutation.TitlesCleared() {
		_spec.ClearField(postermetadata.FieldTitles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Descriptions(); ok {
		_spec.SetField(postermetadata.FieldDescriptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDescriptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldDescriptions, value)
		})
	}
	if _u.mutation.DescriptionsCleared() {
		_spec.ClearField(postermetadata.FieldDescriptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImageCaption(); ok {
		_spec.SetField(postermetadata.FieldImageCaption, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageCaption(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldImageCaption, value)
		})
	}
	if _u.mutation.ImageCaptionCleared() {
		_spec.ClearField(postermetadata.FieldImageCaption, field.TypeJSON)
	}
	if value, ok := _u.mutation.PosterContent(); ok {
		_spec.SetField(postermetadata.FieldPosterContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPosterContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldPosterContent, value)
		})
	}
	if _u.mutation.PosterContentCleared() {
		_spec.ClearField(postermetadata.FieldPosterContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.TableCaption(); ok {
		_spec.SetField(postermetadata.FieldTableCaption, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableCaption(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldTableCaption, value)
		})
	}
	if _u.mutation.TableCaptionCleared() {
		_spec.ClearField(postermetadata.FieldTableCaption, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConferenceName(); ok {
		_spec.SetField(postermetadata.FieldConferenceName, field.TypeString, value)
	}
	if _u.mutation.ConferenceNameCleared() {
		_spec.ClearField(postermetadata.FieldConferenceName, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceLocation(); ok {
		_spec.SetField(postermetadata.FieldConferenceLocation, field.TypeString, value)
	}
	if _u.mutation.ConferenceLocationCleared() {
		_spec.ClearField(postermetadata.FieldConferenceLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceURI(); ok {
		_spec.SetField(postermetadata.FieldConferenceURI, field.TypeString, value)
	}
	if _u.mutation.ConferenceURICleared() {
		_spec.ClearField(postermetadata.FieldConferenceURI, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceIdentifier(); ok {
		_spec.SetField(postermetadata.FieldConferenceIdentifier, field.TypeString, value)
	}
	if _u.mutation.ConferenceIdentifierCleared() {
		_spec.ClearField(postermetadata.FieldConferenceIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceIdentifierType(); ok {
		_spec.SetField(postermetadata.FieldConferenceIdentifierType, field.TypeString, value)
	}
	if _u.mutation.ConferenceIdentifierTypeCleared() {
		_spec.ClearField(postermetadata.FieldConferenceIdentifierType, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceSchemaURI(); ok {
		_spec.SetField(postermetadata.FieldConferenceSchemaURI, field.TypeString, value)
	}
	if _u.mutation.ConferenceSchemaURICleared() {
		_spec.ClearField(postermetadata.FieldConferenceSchemaURI, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceStartDate(); ok {
		_spec.SetField(postermetadata.FieldConferenceStartDate, field.TypeString, value)
	}
	if _u.mutation.ConferenceStartDateCleared() {
		_spec.ClearField(postermetadata.FieldConferenceStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceEndDate(); ok {
		_spec.SetField(postermetadata.FieldConferenceEndDate, field.TypeString, value)
	}
	if _u.mutation.ConferenceEndDateCleared() {
		_spec.ClearField(postermetadata.FieldConferenceEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceAcronym(); ok {
		_spec.SetField(postermetadata.FieldConferenceAcronym, field.TypeString, value)
	}
	if _u.mutation.ConferenceAcronymCleared() {
		_spec.ClearField(postermetadata.FieldConferenceAcronym, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceSeries(); ok {
		_spec.SetField(postermetadata.FieldConferenceSeries, field.TypeString, value)
	}
	if _u.mutation.ConferenceSeriesCleared() {
		_spec.ClearField(postermetadata.FieldConferenceSeries, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(postermetadata.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(postermetadata.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(postermetadata.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(postermetadata.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.Identifiers(); ok {
		_spec.SetField(postermetadata.FieldIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldIdentifiers, value)
		})
	}
	if _u.mutation.IdentifiersCleared() {
		_spec.ClearField(postermetadata.FieldIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlternateIdentifiers(); ok {
		_spec.SetField(postermetadata.FieldAlternateIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlternateIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldAlternateIdentifiers, value)
		})
	}
	if _u.mutation.AlternateIdentifiersCleared() {
		_spec.ClearField(postermetadata.FieldAlternateIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Publisher(); ok {
		_spec.SetField(postermetadata.FieldPublisher, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPublisher(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldPublisher, value)
		})
	}
	if _u.mutation.PublisherCleared() {
		_spec.ClearField(postermetadata.FieldPublisher, field.TypeJSON)
	}
	if value, ok := _u.mutation.PublicationYear(); ok {
		_spec.SetField(postermetadata.FieldPublicationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPublicationYear(); ok {
		_spec.AddField(postermetadata.FieldPublicationYear, field.TypeInt, value)
	}
	if _u.mutation.PublicationYearCleared() {
		_spec.ClearField(postermetadata.FieldPublicationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(postermetadata.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(postermetadata.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dates(); ok {
		_spec.SetField(postermetadata.FieldDates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldDates, value)
		})
	}
	if _u.mutation.DatesCleared() {
		_spec.ClearField(postermetadata.FieldDates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(postermetadata.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(postermetadata.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Types(); ok {
		_spec.SetField(postermetadata.FieldTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldTypes, value)
		})
	}
	if _u.mutation.TypesCleared() {
		_spec.ClearField(postermetadata.FieldTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelatedIdentifiers(); ok {
		_spec.SetField(postermetadata.FieldRelatedIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldRelatedIdentifiers, value)
		})
	}
	if _u.mutation.RelatedIdentifiersCleared() {
		_spec.ClearField(postermetadata.FieldRelatedIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sizes(); ok {
		_spec.SetField(postermetadata.FieldSizes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSizes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldSizes, value)
		})
	}
	if _u.mutation.SizesCleared() {
		_spec.ClearField(postermetadata.FieldSizes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Formats(); ok {
		_spec.SetField(postermetadata.FieldFormats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFormats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldFormats, value)
		})
	}
	if _u.mutation.FormatsCleared() {
		_spec.ClearField(postermetadata.FieldFormats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(postermetadata.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(postermetadata.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.RightsList(); ok {
		_spec.SetField(postermetadata.FieldRightsList, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRightsList(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldRightsList, value)
		})
	}
	if _u.mutation.RightsListCleared() {
		_spec.ClearField(postermetadata.FieldRightsList, field.TypeJSON)
	}
	if value, ok := _u.mutation.FundingReferences(); ok {
		_spec.SetField(postermetadata.FieldFundingReferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFundingReferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldFundingReferences, value)
		})
	}
	if _u.mutation.FundingReferencesCleared() {
		_spec.ClearField(postermetadata.FieldFundingReferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.EthicsApproval(); ok {
		_spec.SetField(postermetadata.FieldEthicsApproval, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEthicsApproval(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldEthicsApproval, value)
		})
	}
	if _u.mutation.EthicsApprovalCleared() {
		_spec.ClearField(postermetadata.FieldEthicsApproval, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(postermetadata.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(postermetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PosterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   postermetadata.PosterTable,
			Columns: []string{postermetadata.PosterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PosterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   postermetadata.PosterTable,
			Columns: []string{postermetadata.PosterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postermetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PosterMetadataUpdateOne is the builder for updating a single PosterMetadata entity.
type PosterMetadataUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PosterMetadataMutation
}

// SetPosterID sets the "poster_id" field.
func (_u *PosterMetadataUpdateOne) SetPosterID(v uuid.UUID) *PosterMetadataUpdateOne {
	_u.mutation.SetPosterID(v)
	return _u
}

// SetNillablePosterID sets the "poster_id" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillablePosterID(v *uuid.UUID) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetPosterID(*v)
	}
	return _u
}

// SetCreators sets the "creators" field.
func (_u *PosterMetadataUpdateOne) SetCreators(v []entity.Creator) *PosterMetadataUpdateOne {
	_u.mutation.SetCreators(v)
	return _u
}

// AppendCreators appends value to the "creators" field.
func (_u *PosterMetadataUpdateOne) AppendCreators(v []entity.Creator) *PosterMetadataUpdateOne {
	_u.mutation.AppendCreators(v)
	return _u
}

// ClearCreators clears the value of the "creators" field.
func (_u *PosterMetadataUpdateOne) ClearCreators() *PosterMetadataUpdateOne {
	_u.mutation.ClearCreators()
	return _u
}

// SetTitles sets the "titles" field.
func (_u *PosterMetadataUpdateOne) SetTitles(v []entity.Title) *PosterMetadataUpdateOne {
	_u.mutation.SetTitles(v)
	return _u
}

// AppendTitles appends value to the "titles" field.
func (_u *PosterMetadataUpdateOne) AppendTitles(v []entity.Title) *PosterMetadataUpdateOne {
	_u.mutation.AppendTitles(v)
	return _u
}

// ClearTitles clears the value of the "titles" field.
func (_u *PosterMetadataUpdateOne) ClearTitles() *PosterMetadataUpdateOne {
	_u.mutation.ClearTitles()
	return _u
}

// SetDescriptions sets the "descriptions" field.
func (_u *PosterMetadataUpdateOne) SetDescriptions(v []entity.Description) *PosterMetadataUpdateOne {
	_u.mutation.SetDescriptions(v)
	return _u
}

// AppendDescriptions appends value to the "descriptions" field.
func (_u *PosterMetadataUpdateOne) AppendDescriptions(v []entity.Description) *PosterMetadataUpdateOne {
	_u.mutation.AppendDescriptions(v)
	return _u
}

// ClearDescriptions clears the value of the "descriptions" field.
func (_u *PosterMetadataUpdateOne) ClearDescriptions() *PosterMetadataUpdateOne {
	_u.mutation.ClearDescriptions()
	return _u
}

// SetImageCaption sets the "image_caption" field.
func (_u *PosterMetadataUpdateOne) SetImageCaption(v []entity.Caption) *PosterMetadataUpdateOne {
	_u.mutation.SetImageCaption(v)
	return _u
}

// AppendImageCaption appends value to the "image_caption" field.
func (_u *PosterMetadataUpdateOne) AppendImageCaption(v []entity.Caption) *PosterMetadataUpdateOne {
	_u.mutation.AppendImageCaption(v)
	return _u
}

// ClearImageCaption clears the value of the "image_caption" field.
func (_u *PosterMetadataUpdateOne) ClearImageCaption() *PosterMetadataUpdateOne {
	_u.mutation.ClearImageCaption()
	return _u
}

// SetPosterContent sets the "poster_content" field.
func (_u *PosterMetadataUpdateOne) SetPosterContent(v []entity.ContentSection) *PosterMetadataUpdateOne {
	_u.mutation.SetPosterContent(v)
	return _u
}

// AppendPosterContent appends value to the "poster_content" field.
func (_u *PosterMetadataUpdateOne) AppendPosterContent(v []entity.ContentSection) *PosterMetadataUpdateOne {
	_u.mutation.AppendPosterContent(v)
	return _u
}

// ClearPosterContent clears the value of the "poster_content" field.
func (_u *PosterMetadataUpdateOne) ClearPosterContent() *PosterMetadataUpdateOne {
	_u.mutation.ClearPosterContent()
	return _u
}

// SetTableCaption sets the "table_caption" field.
func (_u *PosterMetadataUpdateOne) SetTableCaption(v []entity.Caption) *PosterMetadataUpdateOne {
	_u.mutation.SetTableCaption(v)
	return _u
}

// AppendTableCaption appends value to the "table_caption" field.
func (_u *PosterMetadataUpdateOne) AppendTableCaption(v []entity.Caption) *PosterMetadataUpdateOne {
	_u.mutation.AppendTableCaption(v)
	return _u
}

// ClearTableCaption clears the value of the "table_caption" field.
func (_u *PosterMetadataUpdateOne) ClearTableCaption() *PosterMetadataUpdateOne {
	_u.mutation.ClearTableCaption()
	return _u
}

// SetConferenceName sets the "conference_name" field.
func (_u *PosterMetadataUpdateOne) SetConferenceName(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceName(v)
	return _u
}

// SetNillableConferenceName sets the "conference_name" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceName(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceName(*v)
	}
	return _u
}

// ClearConferenceName clears the value of the "conference_name" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceName() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceName()
	return _u
}

// SetConferenceLocation sets the "conference_location" field.
func (_u *PosterMetadataUpdateOne) SetConferenceLocation(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceLocation(v)
	return _u
}

// SetNillableConferenceLocation sets the "conference_location" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceLocation(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceLocation(*v)
	}
	return _u
}

// ClearConferenceLocation clears the value of the "conference_location" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceLocation() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceLocation()
	return _u
}

// SetConferenceURI sets the "conference_uri" field.
func (_u *PosterMetadataUpdateOne) SetConferenceURI(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceURI(v)
	return _u
}

// SetNillableConferenceURI sets the "conference_uri" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceURI(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceURI(*v)
	}
	return _u
}

// ClearConferenceURI clears the value of the "conference_uri" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceURI() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceURI()
	return _u
}

// SetConferenceIdentifier sets the "conference_identifier" field.
func (_u *PosterMetadataUpdateOne) SetConferenceIdentifier(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceIdentifier(v)
	return _u
}

// SetNillableConferenceIdentifier sets the "conference_identifier" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceIdentifier(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceIdentifier(*v)
	}
	return _u
}

// ClearConferenceIdentifier clears the value of the "conference_identifier" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceIdentifier() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceIdentifier()
	return _u
}

// SetConferenceIdentifierType sets the "conference_identifier_type" field.
func (_u *PosterMetadataUpdateOne) SetConferenceIdentifierType(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceIdentifierType(v)
	return _u
}

// SetNillableConferenceIdentifierType sets the "conference_identifier_type" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceIdentifierType(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceIdentifierType(*v)
	}
	return _u
}

// ClearConferenceIdentifierType clears the value of the "conference_identifier_type" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceIdentifierType() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceIdentifierType()
	return _u
}

// SetConferenceSchemaURI sets the "conference_schema_uri" field.
func (_u *PosterMetadataUpdateOne) SetConferenceSchemaURI(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceSchemaURI(v)
	return _u
}

// SetNillableConferenceSchemaURI sets the "conference_schema_uri" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceSchemaURI(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceSchemaURI(*v)
	}
	return _u
}

// ClearConferenceSchemaURI clears the value of the "conference_schema_uri" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceSchemaURI() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceSchemaURI()
	return _u
}

// SetConferenceStartDate sets the "conference_start_date" field.
func (_u *PosterMetadataUpdateOne) SetConferenceStartDate(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceStartDate(v)
	return _u
}

// SetNillableConferenceStartDate sets the "conference_start_date" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceStartDate(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceStartDate(*v)
	}
	return _u
}

// ClearConferenceStartDate clears the value of the "conference_start_date" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceStartDate() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceStartDate()
	return _u
}

// SetConferenceEndDate sets the "conference_end_date" field.
func (_u *PosterMetadataUpdateOne) SetConferenceEndDate(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceEndDate(v)
	return _u
}

// SetNillableConferenceEndDate sets the "conference_end_date" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceEndDate(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceEndDate(*v)
	}
	return _u
}

// ClearConferenceEndDate clears the value of the "conference_end_date" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceEndDate() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceEndDate()
	return _u
}

// SetConferenceAcronym sets the "conference_acronym" field.
func (_u *PosterMetadataUpdateOne) SetConferenceAcronym(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceAcronym(v)
	return _u
}

// SetNillableConferenceAcronym sets the "conference_acronym" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceAcronym(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceAcronym(*v)
	}
	return _u
}

// ClearConferenceAcronym clears the value of the "conference_acronym" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceAcronym() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceAcronym()
	return _u
}

// SetConferenceSeries sets the "conference_series" field.
func (_u *PosterMetadataUpdateOne) SetConferenceSeries(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetConferenceSeries(v)
	return _u
}

// SetNillableConferenceSeries sets the "conference_series" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableConferenceSeries(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetConferenceSeries(*v)
	}
	return _u
}

// ClearConferenceSeries clears the value of the "conference_series" field.
func (_u *PosterMetadataUpdateOne) ClearConferenceSeries() *PosterMetadataUpdateOne {
	_u.mutation.ClearConferenceSeries()
	return _u
}

// SetDomain sets the "domain" field.
func (_u *PosterMetadataUpdateOne) SetDomain(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetDomain(v)
	return _u
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableDomain(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetDomain(*v)
	}
	return _u
}

// ClearDomain clears the value of the "domain" field.
func (_u *PosterMetadataUpdateOne) ClearDomain() *PosterMetadataUpdateOne {
	_u.mutation.ClearDomain()
	return _u
}

// SetDoi sets the "doi" field.
func (_u *PosterMetadataUpdateOne) SetDoi(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetDoi(v)
	return _u
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableDoi(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetDoi(*v)
	}
	return _u
}

// ClearDoi clears the value of the "doi" field.
func (_u *PosterMetadataUpdateOne) ClearDoi() *PosterMetadataUpdateOne {
	_u.mutation.ClearDoi()
	return _u
}

// SetIdentifiers sets the "identifiers" field.
func (_u *PosterMetadataUpdateOne) SetIdentifiers(v []entity.Identifier) *PosterMetadataUpdateOne {
	_u.mutation.SetIdentifiers(v)
	return _u
}

// AppendIdentifiers appends value to the "identifiers" field.
func (_u *PosterMetadataUpdateOne) AppendIdentifiers(v []entity.Identifier) *PosterMetadataUpdateOne {
	_u.mutation.AppendIdentifiers(v)
	return _u
}

// ClearIdentifiers clears the value of the "identifiers" field.
func (_u *PosterMetadataUpdateOne) ClearIdentifiers() *PosterMetadataUpdateOne {
	_u.mutation.ClearIdentifiers()
	return _u
}

// SetAlternateIdentifiers sets the "alternate_identifiers" field.
func (_u *PosterMetadataUpdateOne) SetAlternateIdentifiers(v []entity.AlternateIdentifier) *PosterMetadataUpdateOne {
	_u.mutation.SetAlternateIdentifiers(v)
	return _u
}

// AppendAlternateIdentifiers appends value to the "alternate_identifiers" field.
func (_u *PosterMetadataUpdateOne) AppendAlternateIdentifiers(v []entity.AlternateIdentifier) *PosterMetadataUpdateOne {
	_u.mutation.AppendAlternateIdentifiers(v)
	return _u
}

// ClearAlternateIdentifiers clears the value of the "alternate_identifiers" field.
func (_u *PosterMetadataUpdateOne) ClearAlternateIdentifiers() *PosterMetadataUpdateOne {
	_u.mutation.ClearAlternateIdentifiers()
	return _u
}

// SetPublisher sets the "publisher" field.
func (_u *PosterMetadataUpdateOne) SetPublisher(v []entity.Publisher) *PosterMetadataUpdateOne {
	_u.mutation.SetPublisher(v)
	return _u
}

// AppendPublisher appends value to the "publisher" field.
func (_u *PosterMetadataUpdateOne) AppendPublisher(v []entity.Publisher) *PosterMetadataUpdateOne {
	_u.mutation.AppendPublisher(v)
	return _u
}

// ClearPublisher clears the value of the "publisher" field.
func (_u *PosterMetadataUpdateOne) ClearPublisher() *PosterMetadataUpdateOne {
	_u.mutation.ClearPublisher()
	return _u
}

// SetPublicationYear sets the "publication_year" field.
func (_u *PosterMetadataUpdateOne) SetPublicationYear(v int) *PosterMetadataUpdateOne {
	_u.mutation.ResetPublicationYear()
	_u.mutation.SetPublicationYear(v)
	return _u
}

// SetNillablePublicationYear sets the "publication_year" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillablePublicationYear(v *int) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetPublicationYear(*v)
	}
	return _u
}

// AddPublicationYear adds value to the "publication_year" field.
func (_u *PosterMetadataUpdateOne) AddPublicationYear(v int) *PosterMetadataUpdateOne {
	_u.mutation.AddPublicationYear(v)
	return _u
}

// ClearPublicationYear clears the value of the "publication_year" field.
func (_u *PosterMetadataUpdateOne) ClearPublicationYear() *PosterMetadataUpdateOne {
	_u.mutation.ClearPublicationYear()
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *PosterMetadataUpdateOne) SetSubjects(v []entity.Subject) *PosterMetadataUpdateOne {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *PosterMetadataUpdateOne) AppendSubjects(v []entity.Subject) *PosterMetadataUpdateOne {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *PosterMetadataUpdateOne) ClearSubjects() *PosterMetadataUpdateOne {
	_u.mutation.ClearSubjects()
	return _u
}

// SetDates sets the "dates" field.
func (_u *PosterMetadataUpdateOne) SetDates(v []entity.Date) *PosterMetadataUpdateOne {
	_u.mutation.SetDates(v)
	return _u
}

// AppendDates appends value to the "dates" field.
func (_u *PosterMetadataUpdateOne) AppendDates(v []entity.Date) *PosterMetadataUpdateOne {
	_u.mutation.AppendDates(v)
	return _u
}

// ClearDates clears the value of the "dates" field.
func (_u *PosterMetadataUpdateOne) ClearDates() *PosterMetadataUpdateOne {
	_u.mutation.ClearDates()
	return _u
}

// SetLanguage sets the "language" field.
func (_u *PosterMetadataUpdateOne) SetLanguage(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetLanguage(v)
	return _u
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableLanguage(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetLanguage(*v)
	}
	return _u
}

// ClearLanguage clears the value of the "language" field.
func (_u *PosterMetadataUpdateOne) ClearLanguage() *PosterMetadataUpdateOne {
	_u.mutation.ClearLanguage()
	return _u
}

// SetTypes sets the "types" field.
func (_u *PosterMetadataUpdateOne) SetTypes(v []entity.ResourceType) *PosterMetadataUpdateOne {
	_u.mutation.SetTypes(v)
	return _u
}

// AppendTypes appends value to the "types" field.
func (_u *PosterMetadataUpdateOne) AppendTypes(v []entity.ResourceType) *PosterMetadataUpdateOne {
	_u.mutation.AppendTypes(v)
	return _u
}

// ClearTypes clears the value of the "types" field.
func (_u *PosterMetadataUpdateOne) ClearTypes() *PosterMetadataUpdateOne {
	_u.mutation.ClearTypes()
	return _u
}

// SetRelatedIdentifiers sets the "related_identifiers" field.
func (_u *PosterMetadataUpdateOne) SetRelatedIdentifiers(v []entity.RelatedIdentifier) *PosterMetadataUpdateOne {
	_u.mutation.SetRelatedIdentifiers(v)
	return _u
}

// AppendRelatedIdentifiers appends value to the "related_identifiers" field.
func (_u *PosterMetadataUpdateOne) AppendRelatedIdentifiers(v []entity.RelatedIdentifier) *PosterMetadataUpdateOne {
	_u.mutation.AppendRelatedIdentifiers(v)
	return _u
}

// ClearRelatedIdentifiers clears the value of the "related_identifiers" field.
func (_u *PosterMetadataUpdateOne) ClearRelatedIdentifiers() *PosterMetadataUpdateOne {
	_u.mutation.ClearRelatedIdentifiers()
	return _u
}

// SetSizes sets the "sizes" field.
func (_u *PosterMetadataUpdateOne) SetSizes(v []string) *PosterMetadataUpdateOne {
	_u.mutation.SetSizes(v)
	return _u
}

// AppendSizes appends value to the "sizes" field.
func (_u *PosterMetadataUpdateOne) AppendSizes(v []string) *PosterMetadataUpdateOne {
	_u.mutation.AppendSizes(v)
	return _u
}

// ClearSizes clears the value of the "sizes" field.
func (_u *PosterMetadataUpdateOne) ClearSizes() *PosterMetadataUpdateOne {
	_u.mutation.ClearSizes()
	return _u
}

// SetFormats sets the "formats" field.
func (_u *PosterMetadataUpdateOne) SetFormats(v []string) *PosterMetadataUpdateOne {
	_u.mutation.SetFormats(v)
	return _u
}

// AppendFormats appends value to the "formats" field.
func (_u *PosterMetadataUpdateOne) AppendFormats(v []string) *PosterMetadataUpdateOne {
	_u.mutation.AppendFormats(v)
	return _u
}

// ClearFormats clears the value of the "formats" field.
func (_u *PosterMetadataUpdateOne) ClearFormats() *PosterMetadataUpdateOne {
	_u.mutation.ClearFormats()
	return _u
}

// SetVersion sets the "version" field.
func (_u *PosterMetadataUpdateOne) SetVersion(v string) *PosterMetadataUpdateOne {
	_u.mutation.SetVersion(v)
	return _u
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableVersion(v *string) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetVersion(*v)
	}
	return _u
}

// ClearVersion clears the value of the "version" field.
func (_u *PosterMetadataUpdateOne) ClearVersion() *PosterMetadataUpdateOne {
	_u.mutation.ClearVersion()
	return _u
}

// SetRightsList sets the "rights_list" field.
func (_u *PosterMetadataUpdateOne) SetRightsList(v []entity.Rights) *PosterMetadataUpdateOne {
	_u.mutation.SetRightsList(v)
	return _u
}

// AppendRightsList appends value to the "rights_list" field.
func (_u *PosterMetadataUpdateOne) AppendRightsList(v []entity.Rights) *PosterMetadataUpdateOne {
	_u.mutation.AppendRightsList(v)
	return _u
}

// ClearRightsList clears the value of the "rights_list" field.
func (_u *PosterMetadataUpdateOne) ClearRightsList() *PosterMetadataUpdateOne {
	_u.mutation.ClearRightsList()
	return _u
}

// SetFundingReferences sets the "funding_references" field.
func (_u *PosterMetadataUpdateOne) SetFundingReferences(v []entity.Funding) *PosterMetadataUpdateOne {
	_u.mutation.SetFundingReferences(v)
	return _u
}

// AppendFundingReferences appends value to the "funding_references" field.
func (_u *PosterMetadataUpdateOne) AppendFundingReferences(v []entity.Funding) *PosterMetadataUpdateOne {
	_u.mutation.AppendFundingReferences(v)
	return _u
}

// ClearFundingReferences clears the value of the "funding_references" field.
func (_u *PosterMetadataUpdateOne) ClearFundingReferences() *PosterMetadataUpdateOne {
	_u.mutation.ClearFundingReferences()
	return _u
}

// SetEthicsApproval sets the "ethics_approval" field.
func (_u *PosterMetadataUpdateOne) SetEthicsApproval(v []string) *PosterMetadataUpdateOne {
	_u.mutation.SetEthicsApproval(v)
	return _u
}

// AppendEthicsApproval appends value to the "ethics_approval" field.
func (_u *PosterMetadataUpdateOne) AppendEthicsApproval(v []string) *PosterMetadataUpdateOne {
	_u.mutation.AppendEthicsApproval(v)
	return _u
}

// ClearEthicsApproval clears the value of the "ethics_approval" field.
func (_u *PosterMetadataUpdateOne) ClearEthicsApproval() *PosterMetadataUpdateOne {
	_u.mutation.ClearEthicsApproval()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PosterMetadataUpdateOne) SetCreatedAt(v time.Time) *PosterMetadataUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PosterMetadataUpdateOne) SetNillableCreatedAt(v *time.Time) *PosterMetadataUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PosterMetadataUpdateOne) SetUpdatedAt(v time.Time) *PosterMetadataUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPoster sets the "poster" edge to the Poster entity.
func (_u *PosterMetadataUpdateOne) SetPoster(v *Poster) *PosterMetadataUpdateOne {
	return _u.SetPosterID(v.ID)
}

// Mutation returns the PosterMetadataMutation object of the builder.
func (_u *PosterMetadataUpdateOne) Mutation() *PosterMetadataMutation {
	return _u.mutation
}

// ClearPoster clears the "poster" edge to the Poster entity.
func (_u *PosterMetadataUpdateOne) ClearPoster() *PosterMetadataUpdateOne {
	_u.mutation.ClearPoster()
	return _u
}

// Where appends a list predicates to the PosterMetadataUpdate builder.
func (_u *PosterMetadataUpdateOne) Where(ps ...predicate.PosterMetadata) *PosterMetadataUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PosterMetadataUpdateOne) Select(field string, fields ...string) *PosterMetadataUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PosterMetadata entity.
func (_u *PosterMetadataUpdateOne) Save(ctx context.Context) (*PosterMetadata, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PosterMetadataUpdateOne) SaveX(ctx context.Context) *PosterMetadata {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PosterMetadataUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PosterMetadataUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PosterMetadataUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := postermetadata.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PosterMetadataUpdateOne) check() error {
	if _u.mutation.PosterCleared() && len(_u.mutation.PosterIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PosterMetadata.poster"`)
	}
	return nil
}

func (_u *PosterMetadataUpdateOne) sqlSave(ctx context.Context) (_node *PosterMetadata, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(postermetadata.Table, postermetadata.Columns, sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PosterMetadata.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, postermetadata.FieldID)
		for _, f := range fields {
			if !postermetadata.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != postermetadata.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Creators(); ok {
		_spec.SetField(postermetadata.FieldCreators, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCreators(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldCreators, value)
		})
	}
	if _u.mutation.CreatorsCleared() {
		_spec.ClearField(postermetadata.FieldCreators, field.TypeJSON)
	}
	if value, ok := _u.mutation.Titles(); ok {
		_spec.SetField(postermetadata.FieldTitles, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTitles(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldTitles, value)
		})
	}
	if _u.mutation.TitlesCleared() {
		_spec.ClearField(postermetadata.FieldTitles, field.TypeJSON)
	}
	if value, ok := _u.mutation.Descriptions(); ok {
		_spec.SetField(postermetadata.FieldDescriptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDescriptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldDescriptions, value)
		})
	}
	if _u.mutation.DescriptionsCleared() {
		_spec.ClearField(postermetadata.FieldDescriptions, field.TypeJSON)
	}
	if value, ok := _u.mutation.ImageCaption(); ok {
		_spec.SetField(postermetadata.FieldImageCaption, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedImageCaption(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldImageCaption, value)
		})
	}
	if _u.mutation.ImageCaptionCleared() {
		_spec.ClearField(postermetadata.FieldImageCaption, field.TypeJSON)
	}
	if value, ok := _u.mutation.PosterContent(); ok {
		_spec.SetField(postermetadata.FieldPosterContent, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPosterContent(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldPosterContent, value)
		})
	}
	if _u.mutation.PosterContentCleared() {
		_spec.ClearField(postermetadata.FieldPosterContent, field.TypeJSON)
	}
	if value, ok := _u.mutation.TableCaption(); ok {
		_spec.SetField(postermetadata.FieldTableCaption, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTableCaption(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldTableCaption, value)
		})
	}
	if _u.mutation.TableCaptionCleared() {
		_spec.ClearField(postermetadata.FieldTableCaption, field.TypeJSON)
	}
	if value, ok := _u.mutation.ConferenceName(); ok {
		_spec.SetField(postermetadata.FieldConferenceName, field.TypeString, value)
	}
	if _u.mutation.ConferenceNameCleared() {
		_spec.ClearField(postermetadata.FieldConferenceName, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceLocation(); ok {
		_spec.SetField(postermetadata.FieldConferenceLocation, field.TypeString, value)
	}
	if _u.mutation.ConferenceLocationCleared() {
		_spec.ClearField(postermetadata.FieldConferenceLocation, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceURI(); ok {
		_spec.SetField(postermetadata.FieldConferenceURI, field.TypeString, value)
	}
	if _u.mutation.ConferenceURICleared() {
		_spec.ClearField(postermetadata.FieldConferenceURI, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceIdentifier(); ok {
		_spec.SetField(postermetadata.FieldConferenceIdentifier, field.TypeString, value)
	}
	if _u.mutation.ConferenceIdentifierCleared() {
		_spec.ClearField(postermetadata.FieldConferenceIdentifier, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceIdentifierType(); ok {
		_spec.SetField(postermetadata.FieldConferenceIdentifierType, field.TypeString, value)
	}
	if _u.mutation.ConferenceIdentifierTypeCleared() {
		_spec.ClearField(postermetadata.FieldConferenceIdentifierType, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceSchemaURI(); ok {
		_spec.SetField(postermetadata.FieldConferenceSchemaURI, field.TypeString, value)
	}
	if _u.mutation.ConferenceSchemaURICleared() {
		_spec.ClearField(postermetadata.FieldConferenceSchemaURI, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceStartDate(); ok {
		_spec.SetField(postermetadata.FieldConferenceStartDate, field.TypeString, value)
	}
	if _u.mutation.ConferenceStartDateCleared() {
		_spec.ClearField(postermetadata.FieldConferenceStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceEndDate(); ok {
		_spec.SetField(postermetadata.FieldConferenceEndDate, field.TypeString, value)
	}
	if _u.mutation.ConferenceEndDateCleared() {
		_spec.ClearField(postermetadata.FieldConferenceEndDate, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceAcronym(); ok {
		_spec.SetField(postermetadata.FieldConferenceAcronym, field.TypeString, value)
	}
	if _u.mutation.ConferenceAcronymCleared() {
		_spec.ClearField(postermetadata.FieldConferenceAcronym, field.TypeString)
	}
	if value, ok := _u.mutation.ConferenceSeries(); ok {
		_spec.SetField(postermetadata.FieldConferenceSeries, field.TypeString, value)
	}
	if _u.mutation.ConferenceSeriesCleared() {
		_spec.ClearField(postermetadata.FieldConferenceSeries, field.TypeString)
	}
	if value, ok := _u.mutation.Domain(); ok {
		_spec.SetField(postermetadata.FieldDomain, field.TypeString, value)
	}
	if _u.mutation.DomainCleared() {
		_spec.ClearField(postermetadata.FieldDomain, field.TypeString)
	}
	if value, ok := _u.mutation.Doi(); ok {
		_spec.SetField(postermetadata.FieldDoi, field.TypeString, value)
	}
	if _u.mutation.DoiCleared() {
		_spec.ClearField(postermetadata.FieldDoi, field.TypeString)
	}
	if value, ok := _u.mutation.Identifiers(); ok {
		_spec.SetField(postermetadata.FieldIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldIdentifiers, value)
		})
	}
	if _u.mutation.IdentifiersCleared() {
		_spec.ClearField(postermetadata.FieldIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.AlternateIdentifiers(); ok {
		_spec.SetField(postermetadata.FieldAlternateIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAlternateIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldAlternateIdentifiers, value)
		})
	}
	if _u.mutation.AlternateIdentifiersCleared() {
		_spec.ClearField(postermetadata.FieldAlternateIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Publisher(); ok {
		_spec.SetField(postermetadata.FieldPublisher, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPublisher(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldPublisher, value)
		})
	}
	if _u.mutation.PublisherCleared() {
		_spec.ClearField(postermetadata.FieldPublisher, field.TypeJSON)
	}
	if value, ok := _u.mutation.PublicationYear(); ok {
		_spec.SetField(postermetadata.FieldPublicationYear, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPublicationYear(); ok {
		_spec.AddField(postermetadata.FieldPublicationYear, field.TypeInt, value)
	}
	if _u.mutation.PublicationYearCleared() {
		_spec.ClearField(postermetadata.FieldPublicationYear, field.TypeInt)
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(postermetadata.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(postermetadata.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Dates(); ok {
		_spec.SetField(postermetadata.FieldDates, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDates(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldDates, value)
		})
	}
	if _u.mutation.DatesCleared() {
		_spec.ClearField(postermetadata.FieldDates, field.TypeJSON)
	}
	if value, ok := _u.mutation.Language(); ok {
		_spec.SetField(postermetadata.FieldLanguage, field.TypeString, value)
	}
	if _u.mutation.LanguageCleared() {
		_spec.ClearField(postermetadata.FieldLanguage, field.TypeString)
	}
	if value, ok := _u.mutation.Types(); ok {
		_spec.SetField(postermetadata.FieldTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldTypes, value)
		})
	}
	if _u.mutation.TypesCleared() {
		_spec.ClearField(postermetadata.FieldTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.RelatedIdentifiers(); ok {
		_spec.SetField(postermetadata.FieldRelatedIdentifiers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRelatedIdentifiers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldRelatedIdentifiers, value)
		})
	}
	if _u.mutation.RelatedIdentifiersCleared() {
		_spec.ClearField(postermetadata.FieldRelatedIdentifiers, field.TypeJSON)
	}
	if value, ok := _u.mutation.Sizes(); ok {
		_spec.SetField(postermetadata.FieldSizes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSizes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldSizes, value)
		})
	}
	if _u.mutation.SizesCleared() {
		_spec.ClearField(postermetadata.FieldSizes, field.TypeJSON)
	}
	if value, ok := _u.mutation.Formats(); ok {
		_spec.SetField(postermetadata.FieldFormats, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFormats(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldFormats, value)
		})
	}
	if _u.mutation.FormatsCleared() {
		_spec.ClearField(postermetadata.FieldFormats, field.TypeJSON)
	}
	if value, ok := _u.mutation.Version(); ok {
		_spec.SetField(postermetadata.FieldVersion, field.TypeString, value)
	}
	if _u.mutation.VersionCleared() {
		_spec.ClearField(postermetadata.FieldVersion, field.TypeString)
	}
	if value, ok := _u.mutation.RightsList(); ok {
		_spec.SetField(postermetadata.FieldRightsList, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRightsList(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldRightsList, value)
		})
	}
	if _u.mutation.RightsListCleared() {
		_spec.ClearField(postermetadata.FieldRightsList, field.TypeJSON)
	}
	if value, ok := _u.mutation.FundingReferences(); ok {
		_spec.SetField(postermetadata.FieldFundingReferences, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFundingReferences(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldFundingReferences, value)
		})
	}
	if _u.mutation.FundingReferencesCleared() {
		_spec.ClearField(postermetadata.FieldFundingReferences, field.TypeJSON)
	}
	if value, ok := _u.mutation.EthicsApproval(); ok {
		_spec.SetField(postermetadata.FieldEthicsApproval, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEthicsApproval(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, postermetadata.FieldEthicsApproval, value)
		})
	}
	if _u.mutation.EthicsApprovalCleared() {
		_spec.ClearField(postermetadata.FieldEthicsApproval, field.TypeJSON)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(postermetadata.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(postermetadata.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.PosterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   postermetadata.PosterTable,
			Columns: []string{postermetadata.PosterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PosterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   postermetadata.PosterTable,
			Columns: []string{postermetadata.PosterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PosterMetadata{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{postermetadata.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
