// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/internal/entity"
)

// PosterMetadata is the model entity for the PosterMetadata schema.
type PosterMetadata struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// PosterID holds the value of the "poster_id" field.
	PosterID uuid.UUID `json:"poster_id,omitempty"`
	// Creators holds the value of the "creators" field.
	Creators []entity.Creator `json:"creators,omitempty"`
	// Titles holds the value of the "titles" field.
	Titles []entity.Title `json:"titles,omitempty"`
	// Descriptions holds the value of the "descriptions" field.
	Descriptions []entity.Description `json:"descriptions,omitempty"`
	// ImageCaption holds the value of the "image_caption" field.
	ImageCaption []entity.Caption `json:"image_caption,omitempty"`
	// PosterContent holds the value of the "poster_content" field.
	PosterContent []entity.ContentSection `json:"poster_content,omitempty"`
	// TableCaption holds the value of the "table_caption" field.
	TableCaption []entity.Caption `json:"table_caption,omitempty"`
	// ConferenceName holds the value of the "conference_name" field.
	ConferenceName string `json:"conference_name,omitempty"`
	// ConferenceLocation holds the value of the "conference_location" field.
	ConferenceLocation string `json:"conference_location,omitempty"`
	// ConferenceURI holds the value of the "conference_uri" field.
	ConferenceURI string `json:"conference_uri,omitempty"`
	// ConferenceIdentifier holds the value of the "conference_identifier" field.
	ConferenceIdentifier string `json:"conference_identifier,omitempty"`
	// ConferenceIdentifierType holds the value of the "conference_identifier_type" field.
	ConferenceIdentifierType string `json:"conference_identifier_type,omitempty"`
	// ConferenceSchemaURI holds the value of the "conference_schema_uri" field.
	ConferenceSchemaURI string `json:"conference_schema_uri,omitempty"`
	// ConferenceStartDate holds the value of the "conference_start_date" field.
	ConferenceStartDate string `json:"conference_start_date,omitempty"`
	// ConferenceEndDate holds the value of the "conference_end_date" field.
	ConferenceEndDate string `json:"conference_end_date,omitempty"`
	// ConferenceAcronym holds the value of the "conference_acronym" field.
	ConferenceAcronym string `json:"conference_acronym,omitempty"`
	// ConferenceSeries holds the value of the "conference_series" field.
	ConferenceSeries string `json:"conference_series,omitempty"`
	// Domain holds the value of the "domain" field.
	Domain string `json:"domain,omitempty"`
	// Doi holds the value of the "doi" field.
	Doi string `json:"doi,omitempty"`
	// Identifiers holds the value of the "identifiers" field.
	Identifiers []entity.Identifier `json:"identifiers,omitempty"`
	// AlternateIdentifiers holds the value of the "alternate_identifiers" field.
	AlternateIdentifiers []entity.AlternateIdentifier `json:"alternate_identifiers,omitempty"`
	// Publisher holds the value of the "publisher" field.
	Publisher []entity.Publisher `json:"publisher,omitempty"`
	// PublicationYear holds the value of the "publication_year" field.
	PublicationYear int `json:"publication_year,omitempty"`
	// Subjects holds the value of the "subjects" field.
	Subjects []entity.Subject `json:"subjects,omitempty"`
	// Dates holds the value of the "dates" field.
	Dates []entity.Date `json:"dates,omitempty"`
	// Language holds the value of the "language" field.
	Language string `json:"language,omitempty"`
	// Types holds the value of the "types" field.
	Types []entity.ResourceType `json:"types,omitempty"`
	// RelatedIdentifiers holds the value of the "related_identifiers" field.
	RelatedIdentifiers []entity.RelatedIdentifier `json:"related_identifiers,omitempty"`
	// Sizes holds the value of the "sizes" field.
	Sizes []string `json:"sizes,omitempty"`
	// Formats holds the value of the "formats" field.
	Formats []string `json:"formats,omitempty"`
	// Version holds the value of the "version" field.
	Version string `json:"version,omitempty"`
	// RightsList holds the value of the "rights_list" field.
	RightsList []entity.Rights `json:"rights_list,omitempty"`
	// FundingReferences holds the value of the "funding_references" field.
	FundingReferences []entity.Funding `json:"funding_references,omitempty"`
	// EthicsApproval holds the value of the "ethics_approval" field.
	EthicsApproval []string `json:"ethics_approval,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PosterMetadataQuery when eager-loading is set.
	Edges        PosterMetadataEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PosterMetadataEdges holds the relations/edges for other nodes in the graph.
type PosterMetadataEdges struct {
	// Poster holds the value of the poster edge.
	Poster *Poster `json:"poster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// PosterOrErr returns the Poster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PosterMetadataEdges) PosterOrErr() (*Poster, error) {
	if e.Poster != nil {
		return e.Poster, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: poster.Label}
	}
	return nil, &NotLoadedError{edge: "poster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PosterMetadata) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case postermetadata.FieldCreators, postermetadata.FieldTitles, postermetadata.FieldDescriptions, postermetadata.FieldImageCaption, postermetadata.FieldPosterContent, postermetadata.FieldTableCaption, postermetadata.FieldIdentifiers, postermetadata.FieldAlternateIdentifiers, postermetadata.FieldPublisher, postermetadata.FieldSubjects, postermetadata.FieldDates, postermetadata.FieldTypes, postermetadata.FieldRelatedIdentifiers, postermetadata.FieldSizes, postermetadata.FieldFormats, postermetadata.FieldRightsList, postermetadata.FieldFundingReferences, postermetadata.FieldEthicsApproval:
			values[i] = new([]byte)
		case postermetadata.FieldPublicationYear:
			values[i] = new(sql.NullInt64)
		case postermetadata.FieldConferenceName, postermetadata.FieldConferenceLocation, postermetadata.FieldConferenceURI, postermetadata.FieldConferenceIdentifier, postermetadata.FieldConferenceIdentifierType, postermetadata.FieldConferenceSchemaURI, postermetadata.FieldConferenceStartDate, postermetadata.FieldConferenceEndDate, postermetadata.FieldConferenceAcronym, postermetadata.FieldConferenceSeries, postermetadata.FieldDomain, postermetadata.FieldDoi, postermetadata.FieldLanguage, postermetadata.FieldVersion:
			values[i] = new(sql.NullString)
		case postermetadata.FieldCreatedAt, postermetadata.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case postermetadata.FieldID, postermetadata.FieldPosterID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PosterMetadata fields.
func (_m *PosterMetadata) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case postermetadata.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case postermetadata.FieldPosterID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field poster_id", values[i])
			} else if value != nil {
				_m.PosterID = *value
			}
		case postermetadata.FieldCreators:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field creators", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Creators); err != nil {
					return fmt.Errorf("unmarshal field creators: %w", err)
				}
			}
		case postermetadata.FieldTitles:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field titles", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Titles); err != nil {
					return fmt.Errorf("unmarshal field titles: %w", err)
				}
			}
		case postermetadata.FieldDescriptions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field descriptions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Descriptions); err != nil {
					return fmt.Errorf("unmarshal field descriptions: %w", err)
				}
			}
		case postermetadata.FieldImageCaption:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field image_caption", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ImageCaption); err != nil {
					return fmt.Errorf("unmarshal field image_caption: %w", err)
				}
			}
		case postermetadata.FieldPosterContent:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field poster_content", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PosterContent); err != nil {
					return fmt.Errorf("unmarshal field poster_content: %w", err)
				}
			}
		case postermetadata.FieldTableCaption:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field table_caption", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TableCaption); err != nil {
					return fmt.Errorf("unmarshal field table_caption: %w", err)
				}
			}
		case postermetadata.FieldConferenceName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_name", values[i])
			} else if value.Valid {
				_m.ConferenceName = value.String
			}
		case postermetadata.FieldConferenceLocation:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_location", values[i])
			} else if value.Valid {
				_m.ConferenceLocation = value.String
			}
		case postermetadata.FieldConferenceURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_uri", values[i])
			} else if value.Valid {
				_m.ConferenceURI = value.String
			}
		case postermetadata.FieldConferenceIdentifier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_identifier", values[i])
			} else if value.Valid {
				_m.ConferenceIdentifier = value.String
			}
		case postermetadata.FieldConferenceIdentifierType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_identifier_type", values[i])
			} else if value.Valid {
				_m.ConferenceIdentifierType = value.String
			}
		case postermetadata.FieldConferenceSchemaURI:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_schema_uri", values[i])
			} else if value.Valid {
				_m.ConferenceSchemaURI = value.String
			}
		case postermetadata.FieldConferenceStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_start_date", values[i])
			} else if value.Valid {
				_m.ConferenceStartDate = value.String
			}
		case postermetadata.FieldConferenceEndDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_end_date", values[i])
			} else if value.Valid {
				_m.ConferenceEndDate = value.String
			}
		case postermetadata.FieldConferenceAcronym:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_acronym", values[i])
			} else if value.Valid {
				_m.ConferenceAcronym = value.String
			}
		case postermetadata.FieldConferenceSeries:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field conference_series", values[i])
			} else if value.Valid {
				_m.ConferenceSeries = value.String
			}
		case postermetadata.FieldDomain:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field domain", values[i])
			} else if value.Valid {
				_m.Domain = value.String
			}
		case postermetadata.FieldDoi:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doi", values[i])
			} else if value.Valid {
				_m.Doi = value.String
			}
		case postermetadata.FieldIdentifiers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field identifiers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Identifiers); err != nil {
					return fmt.Errorf("unmarshal field identifiers: %w", err)
				}
			}
		case postermetadata.FieldAlternateIdentifiers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field alternate_identifiers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.AlternateIdentifiers); err != nil {
					return fmt.Errorf("unmarshal field alternate_identifiers: %w", err)
				}
			}
		case postermetadata.FieldPublisher:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field publisher", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Publisher); err != nil {
					return fmt.Errorf("unmarshal field publisher: %w", err)
				}
			}
		case postermetadata.FieldPublicationYear:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field publication_year", values[i])
			} else if value.Valid {
				_m.PublicationYear = int(value.Int64)
			}
		case postermetadata.FieldSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subjects); err != nil {
					return fmt.Errorf("unmarshal field subjects: %w", err)
				}
			}
		case postermetadata.FieldDates:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field dates", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Dates); err != nil {
					return fmt.Errorf("unmarshal field dates: %w", err)
				}
			}
		case postermetadata.FieldLanguage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field language", values[i])
			} else if value.Valid {
				_m.Language = value.String
			}
		case postermetadata.FieldTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Types); err != nil {
					return fmt.Errorf("unmarshal field types: %w", err)
				}
			}
		case postermetadata.FieldRelatedIdentifiers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field related_identifiers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RelatedIdentifiers); err != nil {
					return fmt.Errorf("unmarshal field related_identifiers: %w", err)
				}
			}
		case postermetadata.FieldSizes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field sizes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Sizes); err != nil {
					return fmt.Errorf("unmarshal field sizes: %w", err)
				}
			}
		case postermetadata.FieldFormats:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field formats", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Formats); err != nil {
					return fmt.Errorf("unmarshal field formats: %w", err)
				}
			}
		case postermetadata.FieldVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				_m.Version = value.String
			}
		case postermetadata.FieldRightsList:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field rights_list", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RightsList); err != nil {
					return fmt.Errorf("unmarshal field rights_list: %w", err)
				}
			}
		case postermetadata.FieldFundingReferences:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field funding_references", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.FundingReferences); err != nil {
					return fmt.Errorf("unmarshal field funding_references: %w", err)
				}
			}
		case postermetadata.FieldEthicsApproval:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field ethics_approval", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.EthicsApproval); err != nil {
					return fmt.Errorf("unmarshal field ethics_approval: %w", err)
				}
			}
		case postermetadata.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case postermetadata.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PosterMetadata.
// This includes values selected through modifiers, order, etc.
func (_m *PosterMetadata) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryPoster queries the "poster" edge of the PosterMetadata entity.
func (_m *PosterMetadata) QueryPoster() *PosterQuery {
	return NewPosterMetadataClient(_m.config).QueryPoster(_m)
}

// Update returns a builder for updating this PosterMetadata.
// Note that you need to call PosterMetadata.Unwrap() before calling this method if this PosterMetadata
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PosterMetadata) Update() *PosterMetadataUpdateOne {
	return NewPosterMetadataClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PosterMetadata entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PosterMetadata) Unwrap() *PosterMetadata {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PosterMetadata is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PosterMetadata) String() string {
	var builder strings.Builder
	builder.WriteString("PosterMetadata(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("poster_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.PosterID))
	builder.WriteString(", ")
	builder.WriteString("creators=")
	builder.WriteString(fmt.Sprintf("%v", _m.Creators))
	builder.WriteString(", ")
	builder.WriteString("titles=")
	builder.WriteString(fmt.Sprintf("%v", _m.Titles))
	builder.WriteString(", ")
	builder.WriteString("descriptions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Descriptions))
	builder.WriteString(", ")
	builder.WriteString("image_caption=")
	builder.WriteString(fmt.Sprintf("%v", _m.ImageCaption))
	builder.WriteString(", ")
	builder.WriteString("poster_content=")
	builder.WriteString(fmt.Sprintf("%v", _m.PosterContent))
	builder.WriteString(", ")
	builder.WriteString("table_caption=")
	builder.WriteString(fmt.Sprintf("%v", _m.TableCaption))
	builder.WriteString(", ")
	builder.WriteString("conference_name=")
	builder.WriteString(_m.ConferenceName)
	builder.WriteString(", ")
	builder.WriteString("conference_location=")
	builder.WriteString(_m.ConferenceLocation)
	builder.WriteString(", ")
	builder.WriteString("conference_uri=")
	builder.WriteString(_m.ConferenceURI)
	builder.WriteString(", ")
	builder.WriteString("conference_identifier=")
	builder.WriteString(_m.ConferenceIdentifier)
	builder.WriteString(", ")
	builder.WriteString("conference_identifier_type=")
	builder.WriteString(_m.ConferenceIdentifierType)
	builder.WriteString(", ")
	builder.WriteString("conference_schema_uri=")
	builder.WriteString(_m.ConferenceSchemaURI)
	builder.WriteString(", ")
	builder.WriteString("conference_start_date=")
	builder.WriteString(_m.ConferenceStartDate)
	builder.WriteString(", ")
	builder.WriteString("conference_end_date=")
	builder.WriteString(_m.ConferenceEndDate)
	builder.WriteString(", ")
	builder.WriteString("conference_acronym=")
	builder.WriteString(_m.ConferenceAcronym)
	builder.WriteString(", ")
	builder.WriteString("conference_series=")
	builder.WriteString(_m.ConferenceSeries)
	builder.WriteString(", ")
	builder.WriteString("domain=")
	builder.WriteString(_m.Domain)
	builder.WriteString(", ")
	builder.WriteString("doi=")
	builder.WriteString(_m.Doi)
	builder.WriteString(", ")
	builder.WriteString("identifiers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Identifiers))
	builder.WriteString(", ")
	builder.WriteString("alternate_identifiers=")
	builder.WriteString(fmt.Sprintf("%v", _m.AlternateIdentifiers))
	builder.WriteString(", ")
	builder.WriteString("publisher=")
	builder.WriteString(fmt.Sprintf("%v", _m.Publisher))
	builder.WriteString(", ")
	builder.WriteString("publication_year=")
	builder.WriteString(fmt.Sprintf("%v", _m.PublicationYear))
	builder.WriteString(", ")
	builder.WriteString("subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subjects))
	builder.WriteString(", ")
	builder.WriteString("dates=")
	builder.WriteString(fmt.Sprintf("%v", _m.Dates))
	builder.WriteString(", ")
	builder.WriteString("language=")
	builder.WriteString(_m.Language)
	builder.WriteString(", ")
	builder.WriteString("types=")
	builder.WriteString(fmt.Sprintf("%v", _m.Types))
	builder.WriteString(", ")
	builder.WriteString("related_identifiers=")
	builder.WriteString(fmt.Sprintf("%v", _m.RelatedIdentifiers))
	builder.WriteString(", ")
	builder.WriteString("sizes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Sizes))
	builder.WriteString(", ")
	builder.WriteString("formats=")
	builder.WriteString(fmt.Sprintf("%v", _m.Formats))
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(_m.Version)
	builder.WriteString(", ")
	builder.WriteString("rights_list=")
	builder.WriteString(fmt.Sprintf("%v", _m.RightsList))
	builder.WriteString(", ")
	builder.WriteString("funding_references=")
	builder.WriteString(fmt.Sprintf("%v", _m.FundingReferences))
	builder.WriteString(", ")
	builder.WriteString("ethics_approval=")
	builder.WriteString(fmt.Sprintf("%v", _m.EthicsApproval))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PosterMetadataSlice is a parsable slice of PosterMetadata.
type PosterMetadataSlice []*PosterMetadata
