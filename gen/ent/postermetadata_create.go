// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/internal/entity"
)

// PosterMetadataCreate is the builder for creating a PosterMetadata entity.
type PosterMetadataCreate struct {
	config
	mutation *PosterMetadataMutation
	hooks    []Hook
}

// SetPosterID sets the "poster_id" field.
func (_c *PosterMetadataCreate) SetPosterID(v uuid.UUID) *PosterMetadataCreate {
	_c.mutation.SetPosterID(v)
	return _c
}

// SetCreators sets the "creators" field.
func (_c *PosterMetadataCreate) SetCreators(v []entity.Creator) *PosterMetadataCreate {
	_c.mutation.SetCreators(v)
	return _c
}

// SetTitles sets the "titles" field.
func (_c *PosterMetadataCreate) SetTitles(v []entity.Title) *PosterMetadataCreate {
	_c.mutation.SetTitles(v)
	return _c
}

// SetDescriptions sets the "descriptions" field.
func (_c *PosterMetadataCreate) SetDescriptions(v []entity.Description) *PosterMetadataCreate {
	_c.mutation.SetDescriptions(v)
	return _c
}

// SetImageCaption sets the "image_caption" field.
func (_c *PosterMetadataCreate) SetImageCaption(v []entity.Caption) *PosterMetadataCreate {
	_c.mutation.SetImageCaption(v)
	return _c
}

// SetPosterContent sets the "poster_content" field.
func (_c *PosterMetadataCreate) SetPosterContent(v []entity.ContentSection) *PosterMetadataCreate {
	_c.mutation.SetPosterContent(v)
	return _c
}

// SetTableCaption sets the "table_caption" field.
func (_c *PosterMetadataCreate) SetTableCaption(v []entity.Caption) *PosterMetadataCreate {
	_c.mutation.SetTableCaption(v)
	return _c
}

// SetConferenceName sets the "conference_name" field.
func (_c *PosterMetadataCreate) SetConferenceName(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceName(v)
	return _c
}

// SetNillableConferenceName sets the "conference_name" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceName(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceName(*v)
	}
	return _c
}

// SetConferenceLocation sets the "conference_location" field.
func (_c *PosterMetadataCreate) SetConferenceLocation(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceLocation(v)
	return _c
}

// SetNillableConferenceLocation sets the "conference_location" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceLocation(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceLocation(*v)
	}
	return _c
}

// SetConferenceURI sets the "conference_uri" field.
func (_c *PosterMetadataCreate) SetConferenceURI(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceURI(v)
	return _c
}

// SetNillableConferenceURI sets the "conference_uri" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceURI(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceURI(*v)
	}
	return _c
}

// SetConferenceIdentifier sets the "conference_identifier" field.
func (_c *PosterMetadataCreate) SetConferenceIdentifier(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceIdentifier(v)
	return _c
}

// SetNillableConferenceIdentifier sets the "conference_identifier" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceIdentifier(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceIdentifier(*v)
	}
	return _c
}

// SetConferenceIdentifierType sets the "conference_identifier_type" field.
func (_c *PosterMetadataCreate) SetConferenceIdentifierType(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceIdentifierType(v)
	return _c
}

// SetNillableConferenceIdentifierType sets the "conference_identifier_type" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceIdentifierType(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceIdentifierType(*v)
	}
	return _c
}

// SetConferenceSchemaURI sets the "conference_schema_uri" field.
func (_c *PosterMetadataCreate) SetConferenceSchemaURI(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceSchemaURI(v)
	return _c
}

// SetNillableConferenceSchemaURI sets the "conference_schema_uri" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceSchemaURI(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceSchemaURI(*v)
	}
	return _c
}

// SetConferenceStartDate sets the "conference_start_date" field.
func (_c *PosterMetadataCreate) SetConferenceStartDate(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceStartDate(v)
	return _c
}

// SetNillableConferenceStartDate sets the "conference_start_date" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceStartDate(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceStartDate(*v)
	}
	return _c
}

// SetConferenceEndDate sets the "conference_end_date" field.
func (_c *PosterMetadataCreate) SetConferenceEndDate(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceEndDate(v)
	return _c
}

// SetNillableConferenceEndDate sets the "conference_end_date" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceEndDate(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceEndDate(*v)
	}
	return _c
}

// SetConferenceAcronym sets the "conference_acronym" field.
func (_c *PosterMetadataCreate) SetConferenceAcronym(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceAcronym(v)
	return _c
}

// SetNillableConferenceAcronym sets the "conference_acronym" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceAcronym(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceAcronym(*v)
	}
	return _c
}

// SetConferenceSeries sets the "conference_series" field.
func (_c *PosterMetadataCreate) SetConferenceSeries(v string) *PosterMetadataCreate {
	_c.mutation.SetConferenceSeries(v)
	return _c
}

// SetNillableConferenceSeries sets the "conference_series" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableConferenceSeries(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetConferenceSeries(*v)
	}
	return _c
}

// SetDomain sets the "domain" field.
func (_c *PosterMetadataCreate) SetDomain(v string) *PosterMetadataCreate {
	_c.mutation.SetDomain(v)
	return _c
}

// SetNillableDomain sets the "domain" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableDomain(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetDomain(*v)
	}
	return _c
}

// SetDoi sets the "doi" field.
func (_c *PosterMetadataCreate) SetDoi(v string) *PosterMetadataCreate {
	_c.mutation.SetDoi(v)
	return _c
}

// SetNillableDoi sets the "doi" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableDoi(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetDoi(*v)
	}
	return _c
}

// SetIdentifiers sets the "identifiers" field.
func (_c *PosterMetadataCreate) SetIdentifiers(v []entity.Identifier) *PosterMetadataCreate {
	_c.mutation.SetIdentifiers(v)
	return _c
}

// SetAlternateIdentifiers sets the "alternate_identifiers" field.
func (_c *PosterMetadataCreate) SetAlternateIdentifiers(v []entity.AlternateIdentifier) *PosterMetadataCreate {
	_c.mutation.SetAlternateIdentifiers(v)
	return _c
}

// SetPublisher sets the "publisher" field.
func (_c *PosterMetadataCreate) SetPublisher(v []entity.Publisher) *PosterMetadataCreate {
	_c.mutation.SetPublisher(v)
	return _c
}

// SetPublicationYear sets the "publication_year" field.
func (_c *PosterMetadataCreate) SetPublicationYear(v int) *PosterMetadataCreate {
	_c.mutation.SetPublicationYear(v)
	return _c
}

// SetNillablePublicationYear sets the "publication_year" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillablePublicationYear(v *int) *PosterMetadataCreate {
	if v != nil {
		_c.SetPublicationYear(*v)
	}
	return _c
}

// SetSubjects sets the "subjects" field.
func (_c *PosterMetadataCreate) SetSubjects(v []entity.Subject) *PosterMetadataCreate {
	_c.mutation.SetSubjects(v)
	return _c
}

// SetDates sets the "dates" field.
func (_c *PosterMetadataCreate) SetDates(v []entity.Date) *PosterMetadataCreate {
	_c.mutation.SetDates(v)
	return _c
}

// SetLanguage sets the "language" field.
func (_c *PosterMetadataCreate) SetLanguage(v string) *PosterMetadataCreate {
	_c.mutation.SetLanguage(v)
	return _c
}

// SetNillableLanguage sets the "language" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableLanguage(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetLanguage(*v)
	}
	return _c
}

// SetTypes sets the "types" field.
func (_c *PosterMetadataCreate) SetTypes(v []entity.ResourceType) *PosterMetadataCreate {
	_c.mutation.SetTypes(v)
	return _c
}

// SetRelatedIdentifiers sets the "related_identifiers" field.
func (_c *PosterMetadataCreate) SetRelatedIdentifiers(v []entity.RelatedIdentifier) *PosterMetadataCreate {
	_c.mutation.SetRelatedIdentifiers(v)
	return _c
}

// SetSizes sets the "sizes" field.
func (_c *PosterMetadataCreate) SetSizes(v []string) *PosterMetadataCreate {
	_c.mutation.SetSizes(v)
	return _c
}

// SetFormats sets the "formats" field.
func (_c *PosterMetadataCreate) SetFormats(v []string) *PosterMetadataCreate {
	_c.mutation.SetFormats(v)
	return _c
}

// SetVersion sets the "version" field.
func (_c *PosterMetadataCreate) SetVersion(v string) *PosterMetadataCreate {
	_c.mutation.SetVersion(v)
	return _c
}

// SetNillableVersion sets the "version" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableVersion(v *string) *PosterMetadataCreate {
	if v != nil {
		_c.SetVersion(*v)
	}
	return _c
}

// SetRightsList sets the "rights_list" field.
func (_c *PosterMetadataCreate) SetRightsList(v []entity.Rights) *PosterMetadataCreate {
	_c.mutation.SetRightsList(v)
	return _c
}

// SetFundingReferences sets the "funding_references" field.
func (_c *PosterMetadataCreate) SetFundingReferences(v []entity.Funding) *PosterMetadataCreate {
	_c.mutation.SetFundingReferences(v)
	return _c
}

// SetEthicsApproval sets the "ethics_approval" field.
func (_c *PosterMetadataCreate) SetEthicsApproval(v []string) *PosterMetadataCreate {
	_c.mutation.SetEthicsApproval(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PosterMetadataCreate) SetCreatedAt(v time.Time) *PosterMetadataCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableCreatedAt(v *time.Time) *PosterMetadataCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *PosterMetadataCreate) SetUpdatedAt(v time.Time) *PosterMetadataCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableUpdatedAt(v *time.Time) *PosterMetadataCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PosterMetadataCreate) SetID(v uuid.UUID) *PosterMetadataCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PosterMetadataCreate) SetNillableID(v *uuid.UUID) *PosterMetadataCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetPoster sets the "poster" edge to the Poster entity.
func (_c *PosterMetadataCreate) SetPoster(v *Poster) *PosterMetadataCreate {
	return _c.SetPosterID(v.ID)
}

// Mutation returns the PosterMetadataMutation object of the builder.
func (_c *PosterMetadataCreate) Mutation() *PosterMetadataMutation {
	return _c.mutation
}

// Save creates the PosterMetadata in the database.
func (_c *PosterMetadataCreate) Save(ctx context.Context) (*PosterMetadata, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PosterMetadataCreate) SaveX(ctx context.Context) *PosterMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PosterMetadataCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PosterMetadataCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PosterMetadataCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := postermetadata.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := postermetadata.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := postermetadata.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PosterMetadataCreate) check() error {
	if _, ok := _c.mutation.PosterID(); !ok {
		return &ValidationError{Name: "poster_id", err: errors.New(`ent: missing required field "PosterMetadata.poster_id"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PosterMetadata.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "PosterMetadata.updated_at"`)}
	}
	if len(_c.mutation.PosterIDs()) == 0 {
		return &ValidationError{Name: "poster", err: errors.New(`ent: missing required edge "PosterMetadata.poster"`)}
	}
	return nil
}

func (_c *PosterMetadataCreate) sqlSave(ctx context.Context) (*PosterMetadata, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PosterMetadataCreate) createSpec() (*PosterMetadata, *sqlgraph.CreateSpec) {
	var (
		_node = &PosterMetadata{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(postermetadata.Table, sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Creators(); ok {
		_spec.SetField(postermetadata.FieldCreators, field.TypeJSON, value)
		_node.Creators = value
	}
	if value, ok := _c.mutation.Titles(); ok {
		_spec.SetField(postermetadata.FieldTitles, field.TypeJSON, value)
		_node.Titles = value
	}
	if value, ok := _c.mutation.Descriptions(); ok {
		_spec.SetField(postermetadata.FieldDescriptions, field.TypeJSON, value)
		_node.Descriptions = value
	}
	if value, ok := _c.mutation.ImageCaption(); ok {
		_spec.SetField(postermetadata.FieldImageCaption, field.TypeJSON, value)
		_node.ImageCaption = value
	}
	if value, ok := _c.mutation.PosterContent(); ok {
		_spec.SetField(postermetadata.FieldPosterContent, field.TypeJSON, value)
		_node.PosterContent = value
	}
	if value, ok := _c.mutation.TableCaption(); ok {
		_spec.SetField(postermetadata.FieldTableCaption, field.TypeJSON, value)
		_node.TableCaption = value
	}
	if value, ok := _c.mutation.ConferenceName(); ok {
		_spec.SetField(postermetadata.FieldConferenceName, field.TypeString, value)
		_node.ConferenceName = value
	}
	if value, ok := _c.mutation.ConferenceLocation(); ok {
		_spec.SetField(postermetadata.FieldConferenceLocation, field.TypeString, value)
		_node.ConferenceLocation = value
	}
	if value, ok := _c.mutation.ConferenceURI(); ok {
		_spec.SetField(postermetadata.FieldConferenceURI, field.TypeString, value)
		_node.ConferenceURI = value
	}
	if value, ok := _c.mutation.ConferenceIdentifier(); ok {
		_spec.SetField(postermetadata.FieldConferenceIdentifier, field.TypeString, value)
		_node.ConferenceIdentifier = value
	}
	if value, ok := _c.mutation.ConferenceIdentifierType(); ok {
		_spec.SetField(postermetadata.FieldConferenceIdentifierType, field.TypeString, value)
		_node.ConferenceIdentifierType = value
	}
	if value, ok := _c.mutation.ConferenceSchemaURI(); ok {
		_spec.SetField(postermetadata.FieldConferenceSchemaURI, field.TypeString, value)
		_node.ConferenceSchemaURI = value
	}
	if value, ok := _c.mutation.ConferenceStartDate(); ok {
		_spec.SetField(postermetadata.FieldConferenceStartDate, field.TypeString, value)
		_node.ConferenceStartDate = value
	}
	if value, ok := _c.mutation.ConferenceEndDate(); ok {
		_spec.SetField(postermetadata.FieldConferenceEndDate, field.TypeString, value)
		_node.ConferenceEndDate = value
	}
	if value, ok := _c.mutation.ConferenceAcronym(); ok {
		_spec.SetField(postermetadata.FieldConferenceAcronym, field.TypeString, value)
		_node.ConferenceAcronym = value
	}
	if value, ok := _c.mutation.ConferenceSeries(); ok {
		_spec.SetField(postermetadata.FieldConferenceSeries, field.TypeString, value)
		_node.ConferenceSeries = value
	}
	if value, ok := _c.mutation.Domain(); ok {
		_spec.SetField(postermetadata.FieldDomain, field.TypeString, value)
		_node.Domain = value
	}
	if value, ok := _c.mutation.Doi(); ok {
		_spec.SetField(postermetadata.FieldDoi, field.TypeString, value)
		_node.Doi = value
	}
	if value, ok := _c.mutation.Identifiers(); ok {
		_spec.SetField(postermetadata.FieldIdentifiers, field.TypeJSON, value)
		_node.Identifiers = value
	}
	if value, ok := _c.mutation.AlternateIdentifiers(); ok {
		_spec.SetField(postermetadata.FieldAlternateIdentifiers, field.TypeJSON, value)
		_node.AlternateIdentifiers = value
	}
	if value, ok := _c.mutation.Publisher(); ok {
		_spec.SetField(postermetadata.FieldPublisher, field.TypeJSON, value)
		_node.Publisher = value
	}
	if value, ok := _c.mutation.PublicationYear(); ok {
		_spec.SetField(postermetadata.FieldPublicationYear, field.TypeInt, value)
		_node.PublicationYear = value
	}
	if value, ok := _c.mutation.Subjects(); ok {
		_spec.SetField(postermetadata.FieldSubjects, field.TypeJSON, value)
		_node.Subjects = value
	}
	if value, ok := _c.mutation.Dates(); ok {
		_spec.SetField(postermetadata.FieldDates, field.TypeJSON, value)
		_node.Dates = value
	}
	if value, ok := _c.mutation.Language(); ok {
		_spec.SetField(postermetadata.FieldLanguage, field.TypeString, value)
		_node.Language = value
	}
	if value, ok := _c.mutation.Types(); ok {
		_spec.SetField(postermetadata.FieldTypes, field.TypeJSON, value)
		_node.Types = value
	}
	if value, ok := _c.mutation.RelatedIdentifiers(); ok {
		_spec.SetField(postermetadata.FieldRelatedIdentifiers, field.TypeJSON, value)
		_node.RelatedIdentifiers = value
	}
	if value, ok := _c.mutation.Sizes(); ok {
		_spec.SetField(postermetadata.FieldSizes, field.TypeJSON, value)
		_node.Sizes = value
	}
	if value, ok := _c.mutation.Formats(); ok {
		_spec.SetField(postermetadata.FieldFormats, field.TypeJSON, value)
		_node.Formats = value
	}
	if value, ok := _c.mutation.Version(); ok {
		_spec.SetField(postermetadata.FieldVersion, field.TypeString, value)
		_node.Version = value
	}
	if value, ok := _c.mutation.RightsList(); ok {
		_spec.SetField(postermetadata.FieldRightsList, field.TypeJSON, value)
		_node.RightsList = value
	}
	if value, ok := _c.mutation.FundingReferences(); ok {
		_spec.SetField(postermetadata.FieldFundingReferences, field.TypeJSON, value)
		_node.FundingReferences = value
	}
	if value, ok := _c.mutation.EthicsApproval(); ok {
		_spec.SetField(postermetadata.FieldEthicsApproval, field.TypeJSON, value)
		_node.EthicsApproval = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(postermetadata.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(postermetadata.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.PosterIDs(); len(nodes) > 0 {
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
		_node.PosterID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PosterMetadataCreateBulk is the builder for creating many PosterMetadata entities in bulk.
type PosterMetadataCreateBulk struct {
	config
	err      error
	builders []*PosterMetadataCreate
}

// Save creates the PosterMetadata entities in the database.
func (_c *PosterMetadataCreateBulk) Save(ctx context.Context) ([]*PosterMetadata, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PosterMetadata, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PosterMetadataMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PosterMetadataCreateBulk) SaveX(ctx context.Context) []*PosterMetadata {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PosterMetadataCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PosterMetadataCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
