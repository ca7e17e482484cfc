// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/extractionjob"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/user"
)

// ExtractionJob is the model entity for the ExtractionJob schema.
type ExtractionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID uuid.UUID `json:"user_id,omitempty"`
	// PosterID holds the value of the "poster_id" field.
	PosterID *uuid.UUID `json:"poster_id,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage string `json:"error_message,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionJobQuery when eager-loading is set.
	Edges        ExtractionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionJobEdges holds the relations/edges for other nodes in the graph.
type ExtractionJobEdges struct {
	// User holds the value of the user edge.
	User *User `json:"user,omitempty"`
	// Poster holds the value of the poster edge.
	Poster *Poster `json:"poster,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// UserOrErr returns the User value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionJobEdges) UserOrErr() (*User, error) {
	if e.User != nil {
		return e.User, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: user.Label}
	}
	return nil, &NotLoadedError{edge: "user"}
}

// PosterOrErr returns the Poster value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionJobEdges) PosterOrErr() (*Poster, error) {
	if e.Poster != nil {
		return e.Poster, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: poster.Label}
	}
	return nil, &NotLoadedError{edge: "poster"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldPosterID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case extractionjob.FieldStatus, extractionjob.FieldErrorMessage:
			values[i] = new(sql.NullString)
		case extractionjob.FieldCreatedAt, extractionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		case extractionjob.FieldID, extractionjob.FieldUserID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionJob fields.
func (_m *ExtractionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case extractionjob.FieldUserID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value != nil {
				_m.UserID = *value
			}
		case extractionjob.FieldPosterID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field poster_id", values[i])
			} else if value.Valid {
				_m.PosterID = new(uuid.UUID)
				*_m.PosterID = *value.S.(*uuid.UUID)
			}
		case extractionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case extractionjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = value.String
			}
		case extractionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryUser queries the "user" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryUser() *UserQuery {
	return NewExtractionJobClient(_m.config).QueryUser(_m)
}

// QueryPoster queries the "poster" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryPoster() *PosterQuery {
	return NewExtractionJobClient(_m.config).QueryPoster(_m)
}

// Update returns a builder for updating this ExtractionJob.
// Note that you need to call ExtractionJob.Unwrap() before calling this method if this ExtractionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionJob) Update() *ExtractionJobUpdateOne {
	return NewExtractionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionJob) Unwrap() *ExtractionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.UserID))
	builder.WriteString(", ")
	if v := _m.PosterID; v != nil {
		builder.WriteString("poster_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("error_message=")
	builder.WriteString(_m.ErrorMessage)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionJobs is a parsable slice of ExtractionJob.
type ExtractionJobs []*ExtractionJob
