// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/extractionjob"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/gen/ent/predicate"
	"github.com/posters-science/poster-tracker/gen/ent/user"
	"github.com/posters-science/poster-tracker/gen/ent/zenodotoken"
	"github.com/posters-science/poster-tracker/internal/entity"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractionJob  = "ExtractionJob"
	TypePoster         = "Poster"
	TypePosterMetadata = "PosterMetadata"
	TypeUser           = "User"
	TypeZenodoToken    = "ZenodoToken"
)

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	status        *string
	error_message *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	poster        *uuid.UUID
	clearedposter bool
	done          bool
	oldValue      func(context.Context) (*ExtractionJob, error)
	predicates    []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id uuid.UUID) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ExtractionJobMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ExtractionJobMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ExtractionJobMutation) ResetUserID() {
	m.user = nil
}

// SetPosterID sets the "poster_id" field.
func (m *ExtractionJobMutation) SetPosterID(u uuid.UUID) {
	m.poster = &u
}

// PosterID returns the value of the "poster_id" field in the mutation.
func (m *ExtractionJobMutation) PosterID() (r uuid.UUID, exists bool) {
	v := m.poster
	if v == nil {
		return
	}
	return *v, true
}

// OldPosterID returns the old "poster_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPosterID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosterID: %w", err)
	}
	return oldValue.PosterID, nil
}

// ClearPosterID clears the value of the "poster_id" field.
func (m *ExtractionJobMutation) ClearPosterID() {
	m.poster = nil
	m.clearedFields[extractionjob.FieldPosterID] = struct{}{}
}

// PosterIDCleared returns if the "poster_id" field was cleared in this mutation.
func (m *ExtractionJobMutation) PosterIDCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldPosterID]
	return ok
}

// ResetPosterID resets all changes to the "poster_id" field.
func (m *ExtractionJobMutation) ResetPosterID() {
	m.poster = nil
	delete(m.clearedFields, extractionjob.FieldPosterID)
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractionJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractionJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractionJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractionjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractionJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractionjob.FieldErrorMessage)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ExtractionJobMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[extractionjob.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ExtractionJobMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ExtractionJobMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// ClearPoster clears the "poster" edge to the Poster entity.
func (m *ExtractionJobMutation) ClearPoster() {
	m.clearedposter = true
	m.clearedFields[extractionjob.FieldPosterID] = struct{}{}
}

// PosterCleared reports if the "poster" edge to the Poster entity was cleared.
func (m *ExtractionJobMutation) PosterCleared() bool {
	return m.PosterIDCleared() || m.clearedposter
}

// PosterIDs returns the "poster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PosterID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) PosterIDs() (ids []uuid.UUID) {
	if id := m.poster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPoster resets all changes to the "poster" edge.
func (m *ExtractionJobMutation) ResetPoster() {
	m.poster = nil
	m.clearedposter = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, extractionjob.FieldUserID)
	}
	if m.poster != nil {
		fields = append(fields, extractionjob.FieldPosterID)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	if m.created_at != nil {
		fields = append(fields, extractionjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldUserID:
		return m.UserID()
	case extractionjob.FieldPosterID:
		return m.PosterID()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractionjob.FieldCreatedAt:
		return m.CreatedAt()
	case extractionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldUserID:
		return m.OldUserID(ctx)
	case extractionjob.FieldPosterID:
		return m.OldPosterID(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case extractionjob.FieldPosterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosterID(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldPosterID) {
		fields = append(fields, extractionjob.FieldPosterID)
	}
	if m.FieldCleared(extractionjob.FieldErrorMessage) {
		fields = append(fields, extractionjob.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldPosterID:
		m.ClearPosterID()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldUserID:
		m.ResetUserID()
		return nil
	case extractionjob.FieldPosterID:
		m.ResetPosterID()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.user != nil {
		edges = append(edges, extractionjob.EdgeUser)
	}
	if m.poster != nil {
		edges = append(edges, extractionjob.EdgePoster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case extractionjob.EdgePoster:
		if id := m.poster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cleareduser {
		edges = append(edges, extractionjob.EdgeUser)
	}
	if m.clearedposter {
		edges = append(edges, extractionjob.EdgePoster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeUser:
		return m.cleareduser
	case extractionjob.EdgePoster:
		return m.clearedposter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeUser:
		m.ClearUser()
		return nil
	case extractionjob.EdgePoster:
		m.ClearPoster()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeUser:
		m.ResetUser()
		return nil
	case extractionjob.EdgePoster:
		m.ResetPoster()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// PosterMutation represents an operation that mutates the Poster nodes in the graph.
type PosterMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	title           *string
	description     *string
	status          *string
	image_url       *string
	created_at      *time.Time
	updated_at      *time.Time
	published_at    *time.Time
	clearedFields   map[string]struct{}
	user            *uuid.UUID
	cleareduser     bool
	metadata        *uuid.UUID
	clearedmetadata bool
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	done            bool
	oldValue        func(context.Context) (*Poster, error)
	predicates      []predicate.Poster
}

var _ ent.Mutation = (*PosterMutation)(nil)

// posterOption allows management of the mutation configuration using functional options.
type posterOption func(*PosterMutation)

// newPosterMutation creates new mutation for the Poster entity.
func newPosterMutation(c config, op Op, opts ...posterOption) *PosterMutation {
	m := &PosterMutation{
		config:        c,
		op:            op,
		typ:           TypePoster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPosterID sets the ID field of the mutation.
func withPosterID(id uuid.UUID) posterOption {
	return func(m *PosterMutation) {
		var (
			err   error
			once  sync.Once
			value *Poster
		)
		m.oldValue = func(ctx context.Context) (*Poster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Poster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPoster sets the old Poster of the mutation.
func withPoster(node *Poster) posterOption {
	return func(m *PosterMutation) {
		m.oldValue = func(context.Context) (*Poster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PosterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PosterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Poster entities.
func (m *PosterMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PosterMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PosterMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Poster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *PosterMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *PosterMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *PosterMutation) ResetUserID() {
	m.user = nil
}

// SetTitle sets the "title" field.
func (m *PosterMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *PosterMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *PosterMutation) ResetTitle() {
	m.title = nil
}

// SetDescription sets the "description" field.
func (m *PosterMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *PosterMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ResetDescription resets all changes to the "description" field.
func (m *PosterMutation) ResetDescription() {
	m.description = nil
}

// SetStatus sets the "status" field.
func (m *PosterMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *PosterMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldStatus(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *PosterMutation) ResetStatus() {
	m.status = nil
}

// SetImageURL sets the "image_url" field.
func (m *PosterMutation) SetImageURL(s string) {
	m.image_url = &s
}

// ImageURL returns the value of the "image_url" field in the mutation.
func (m *PosterMutation) ImageURL() (r string, exists bool) {
	v := m.image_url
	if v == nil {
		return
	}
	return *v, true
}

// OldImageURL returns the old "image_url" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldImageURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageURL: %w", err)
	}
	return oldValue.ImageURL, nil
}

// ClearImageURL clears the value of the "image_url" field.
func (m *PosterMutation) ClearImageURL() {
	m.image_url = nil
	m.clearedFields[poster.FieldImageURL] = struct{}{}
}

// ImageURLCleared returns if the "image_url" field was cleared in this mutation.
func (m *PosterMutation) ImageURLCleared() bool {
	_, ok := m.clearedFields[poster.FieldImageURL]
	return ok
}

// ResetImageURL resets all changes to the "image_url" field.
func (m *PosterMutation) ResetImageURL() {
	m.image_url = nil
	delete(m.clearedFields, poster.FieldImageURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *PosterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PosterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PosterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PosterMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PosterMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PosterMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *PosterMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *PosterMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Poster entity.
// If the Poster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *PosterMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[poster.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *PosterMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[poster.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *PosterMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, poster.FieldPublishedAt)
}

// ClearUser clears the "user" edge to the User entity.
func (m *PosterMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[poster.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *PosterMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *PosterMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *PosterMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// SetMetadataID sets the "metadata" edge to the PosterMetadata entity by id.
func (m *PosterMutation) SetMetadataID(id uuid.UUID) {
	m.metadata = &id
}

// ClearMetadata clears the "metadata" edge to the PosterMetadata entity.
func (m *PosterMutation) ClearMetadata() {
	m.clearedmetadata = true
}

// MetadataCleared reports if the "metadata" edge to the PosterMetadata entity was cleared.
func (m *PosterMutation) MetadataCleared() bool {
	return m.clearedmetadata
}

// MetadataID returns the "metadata" edge ID in the mutation.
func (m *PosterMutation) MetadataID() (id uuid.UUID, exists bool) {
	if m.metadata != nil {
		return *m.metadata, true
	}
	return
}

// MetadataIDs returns the "metadata" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// MetadataID instead. It exists only for internal usage by the builders.
func (m *PosterMutation) MetadataIDs() (ids []uuid.UUID) {
	if id := m.metadata; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetMetadata resets all changes to the "metadata" edge.
func (m *PosterMutation) ResetMetadata() {
	m.metadata = nil
	m.clearedmetadata = false
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *PosterMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *PosterMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *PosterMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *PosterMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *PosterMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *PosterMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *PosterMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the PosterMutation builder.
func (m *PosterMutation) Where(ps ...predicate.Poster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PosterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PosterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Poster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PosterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PosterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Poster).
func (m *PosterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PosterMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.user != nil {
		fields = append(fields, poster.FieldUserID)
	}
	if m.title != nil {
		fields = append(fields, poster.FieldTitle)
	}
	if m.description != nil {
		fields = append(fields, poster.FieldDescription)
	}
	if m.status != nil {
		fields = append(fields, poster.FieldStatus)
	}
	if m.image_url != nil {
		fields = append(fields, poster.FieldImageURL)
	}
	if m.created_at != nil {
		fields = append(fields, poster.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, poster.FieldUpdatedAt)
	}
	if m.published_at != nil {
		fields = append(fields, poster.FieldPublishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PosterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case poster.FieldUserID:
		return m.UserID()
	case poster.FieldTitle:
		return m.Title()
	case poster.FieldDescription:
		return m.Description()
	case poster.FieldStatus:
		return m.Status()
	case poster.FieldImageURL:
		return m.ImageURL()
	case poster.FieldCreatedAt:
		return m.CreatedAt()
	case poster.FieldUpdatedAt:
		return m.UpdatedAt()
	case poster.FieldPublishedAt:
		return m.PublishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PosterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case poster.FieldUserID:
		return m.OldUserID(ctx)
	case poster.FieldTitle:
		return m.OldTitle(ctx)
	case poster.FieldDescription:
		return m.OldDescription(ctx)
	case poster.FieldStatus:
		return m.OldStatus(ctx)
	case poster.FieldImageURL:
		return m.OldImageURL(ctx)
	case poster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case poster.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case poster.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Poster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PosterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case poster.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case poster.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case poster.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case poster.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case poster.FieldImageURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageURL(v)
		return nil
	case poster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case poster.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case poster.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Poster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PosterMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PosterMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PosterMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Poster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PosterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(poster.FieldImageURL) {
		fields = append(fields, poster.FieldImageURL)
	}
	if m.FieldCleared(poster.FieldPublishedAt) {
		fields = append(fields, poster.FieldPublishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PosterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PosterMutation) ClearField(name string) error {
	switch name {
	case poster.FieldImageURL:
		m.ClearImageURL()
		return nil
	case poster.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Poster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PosterMutation) ResetField(name string) error {
	switch name {
	case poster.FieldUserID:
		m.ResetUserID()
		return nil
	case poster.FieldTitle:
		m.ResetTitle()
		return nil
	case poster.FieldDescription:
		m.ResetDescription()
		return nil
	case poster.FieldStatus:
		m.ResetStatus()
		return nil
	case poster.FieldImageURL:
		m.ResetImageURL()
		return nil
	case poster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case poster.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case poster.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	}
	return fmt.Errorf("unknown Poster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PosterMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.user != nil {
		edges = append(edges, poster.EdgeUser)
	}
	if m.metadata != nil {
		edges = append(edges, poster.EdgeMetadata)
	}
	if m.jobs != nil {
		edges = append(edges, poster.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PosterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case poster.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	case poster.EdgeMetadata:
		if id := m.metadata; id != nil {
			return []ent.Value{*id}
		}
	case poster.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PosterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedjobs != nil {
		edges = append(edges, poster.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PosterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case poster.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PosterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.cleareduser {
		edges = append(edges, poster.EdgeUser)
	}
	if m.clearedmetadata {
		edges = append(edges, poster.EdgeMetadata)
	}
	if m.clearedjobs {
		edges = append(edges, poster.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PosterMutation) EdgeCleared(name string) bool {
	switch name {
	case poster.EdgeUser:
		return m.cleareduser
	case poster.EdgeMetadata:
		return m.clearedmetadata
	case poster.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PosterMutation) ClearEdge(name string) error {
	switch name {
	case poster.EdgeUser:
		m.ClearUser()
		return nil
	case poster.EdgeMetadata:
		m.ClearMetadata()
		return nil
	}
	return fmt.Errorf("unknown Poster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PosterMutation) ResetEdge(name string) error {
	switch name {
	case poster.EdgeUser:
		m.ResetUser()
		return nil
	case poster.EdgeMetadata:
		m.ResetMetadata()
		return nil
	case poster.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Poster edge %s", name)
}

// PosterMetadataMutation represents an operation that mutates the PosterMetadata nodes in the graph.
type PosterMetadataMutation struct {
	config
	op                          Op
	typ                         string
	id                          *uuid.UUID
	creators                    *[]entity.Creator
	appendcreators              []entity.Creator
	titles                      *[]entity.Title
	appendtitles                []entity.Title
	descriptions                *[]entity.Description
	appenddescriptions          []entity.Description
	image_caption               *[]entity.Caption
	appendimage_caption         []entity.Caption
	poster_content              *[]entity.ContentSection
	appendposter_content        []entity.ContentSection
	table_caption               *[]entity.Caption
	appendtable_caption         []entity.Caption
	conference_name             *string
	conference_location         *string
	conference_uri              *string
	conference_identifier       *string
	conference_identifier_type  *string
	conference_schema_uri       *string
	conference_start_date       *string
	conference_end_date         *string
	conference_acronym          *string
	conference_series           *string
	domain                      *string
	doi                         *string
	identifiers                 *[]entity.Identifier
	appendidentifiers           []entity.Identifier
	alternate_identifiers       *[]entity.AlternateIdentifier
	appendalternate_identifiers []entity.AlternateIdentifier
	publisher                   *[]entity.Publisher
	appendpublisher             []entity.Publisher
	publication_year            *int
	addpublication_year         *int
	subjects                    *[]entity.Subject
	appendsubjects              []entity.Subject
	dates                       *[]entity.Date
	appenddates                 []entity.Date
	language                    *string
	types                       *[]entity.ResourceType
	appendtypes                 []entity.ResourceType
	related_identifiers         *[]entity.RelatedIdentifier
	appendrelated_identifiers   []entity.RelatedIdentifier
	sizes                       *[]string
	appendsizes                 []string
	formats                     *[]string
	appendformats               []string
	version                     *string
	rights_list                 *[]entity.Rights
	appendrights_list           []entity.Rights
	funding_references          *[]entity.Funding
	appendfunding_references    []entity.Funding
	ethics_approval             *[]string
	appendethics_approval       []string
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	poster                      *uuid.UUID
	clearedposter               bool
	done                        bool
	oldValue                    func(context.Context) (*PosterMetadata, error)
	predicates                  []predicate.PosterMetadata
}

var _ ent.Mutation = (*PosterMetadataMutation)(nil)

// postermetadataOption allows management of the mutation configuration using functional options.
type postermetadataOption func(*PosterMetadataMutation)

// newPosterMetadataMutation creates new mutation for the PosterMetadata entity.
func newPosterMetadataMutation(c config, op Op, opts ...postermetadataOption) *PosterMetadataMutation {
	m := &PosterMetadataMutation{
		config:        c,
		op:            op,
		typ:           TypePosterMetadata,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPosterMetadataID sets the ID field of the mutation.
func withPosterMetadataID(id uuid.UUID) postermetadataOption {
	return func(m *PosterMetadataMutation) {
		var (
			err   error
			once  sync.Once
			value *PosterMetadata
		)
		m.oldValue = func(ctx context.Context) (*PosterMetadata, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PosterMetadata.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPosterMetadata sets the old PosterMetadata of the mutation.
func withPosterMetadata(node *PosterMetadata) postermetadataOption {
	return func(m *PosterMetadataMutation) {
		m.oldValue = func(context.Context) (*PosterMetadata, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PosterMetadataMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PosterMetadataMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PosterMetadata entities.
func (m *PosterMetadataMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PosterMetadataMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PosterMetadataMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PosterMetadata.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPosterID sets the "poster_id" field.
func (m *PosterMetadataMutation) SetPosterID(u uuid.UUID) {
	m.poster = &u
}

// PosterID returns the value of the "poster_id" field in the mutation.
func (m *PosterMetadataMutation) PosterID() (r uuid.UUID, exists bool) {
	v := m.poster
	if v == nil {
		return
	}
	return *v, true
}

// OldPosterID returns the old "poster_id" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldPosterID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosterID: %w", err)
	}
	return oldValue.PosterID, nil
}

// ResetPosterID resets all changes to the "poster_id" field.
func (m *PosterMetadataMutation) ResetPosterID() {
	m.poster = nil
}

// SetCreators sets the "creators" field.
func (m *PosterMetadataMutation) SetCreators(e []entity.Creator) {
	m.creators = &e
	m.appendcreators = nil
}

// Creators returns the value of the "creators" field in the mutation.
func (m *PosterMetadataMutation) Creators() (r []entity.Creator, exists bool) {
	v := m.creators
	if v == nil {
		return
	}
	return *v, true
}

// OldCreators returns the old "creators" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldCreators(ctx context.Context) (v []entity.Creator, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreators is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreators requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreators: %w", err)
	}
	return oldValue.Creators, nil
}

// AppendCreators adds e to the "creators" field.
func (m *PosterMetadataMutation) AppendCreators(e []entity.Creator) {
	m.appendcreators = append(m.appendcreators, e...)
}

// AppendedCreators returns the list of values that were appended to the "creators" field in this mutation.
func (m *PosterMetadataMutation) AppendedCreators() ([]entity.Creator, bool) {
	if len(m.appendcreators) == 0 {
		return nil, false
	}
	return m.appendcreators, true
}

// ClearCreators clears the value of the "creators" field.
func (m *PosterMetadataMutation) ClearCreators() {
	m.creators = nil
	m.appendcreators = nil
	m.clearedFields[postermetadata.FieldCreators] = struct{}{}
}

// CreatorsCleared returns if the "creators" field was cleared in this mutation.
func (m *PosterMetadataMutation) CreatorsCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldCreators]
	return ok
}

// ResetCreators resets all changes to the "creators" field.
func (m *PosterMetadataMutation) ResetCreators() {
	m.creators = nil
	m.appendcreators = nil
	delete(m.clearedFields, postermetadata.FieldCreators)
}

// SetTitles sets the "titles" field.
func (m *PosterMetadataMutation) SetTitles(e []entity.Title) {
	m.titles = &e
	m.appendtitles = nil
}

// Titles returns the value of the "titles" field in the mutation.
func (m *PosterMetadataMutation) Titles() (r []entity.Title, exists bool) {
	v := m.titles
	if v == nil {
		return
	}
	return *v, true
}

// OldTitles returns the old "titles" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldTitles(ctx context.Context) (v []entity.Title, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitles: %w", err)
	}
	return oldValue.Titles, nil
}

// AppendTitles adds e to the "titles" field.
func (m *PosterMetadataMutation) AppendTitles(e []entity.Title) {
	m.appendtitles = append(m.appendtitles, e...)
}

// AppendedTitles returns the list of values that were appended to the "titles" field in this mutation.
func (m *PosterMetadataMutation) AppendedTitles() ([]entity.Title, bool) {
	if len(m.appendtitles) == 0 {
		return nil, false
	}
	return m.appendtitles, true
}

// ClearTitles clears the value of the "titles" field.
func (m *PosterMetadataMutation) ClearTitles() {
	m.titles = nil
	m.appendtitles = nil
	m.clearedFields[postermetadata.FieldTitles] = struct{}{}
}

// TitlesCleared returns if the "titles" field was cleared in this mutation.
func (m *PosterMetadataMutation) TitlesCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldTitles]
	return ok
}

// ResetTitles resets all changes to the "titles" field.
func (m *PosterMetadataMutation) ResetTitles() {
	m.titles = nil
	m.appendtitles = nil
	delete(m.clearedFields, postermetadata.FieldTitles)
}

// SetDescriptions sets the "descriptions" field.
func (m *PosterMetadataMutation) SetDescriptions(e []entity.Description) {
	m.descriptions = &e
	m.appenddescriptions = nil
}

// Descriptions returns the value of the "descriptions" field in the mutation.
func (m *PosterMetadataMutation) Descriptions() (r []entity.Description, exists bool) {
	v := m.descriptions
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptions returns the old "descriptions" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldDescriptions(ctx context.Context) (v []entity.Description, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptions: %w", err)
	}
	return oldValue.Descriptions, nil
}

// AppendDescriptions adds e to the "descriptions" field.
func (m *PosterMetadataMutation) AppendDescriptions(e []entity.Description) {
	m.appenddescriptions = append(m.appenddescriptions, e...)
}

// AppendedDescriptions returns the list of values that were appended to the "descriptions" field in this mutation.
func (m *PosterMetadataMutation) AppendedDescriptions() ([]entity.Description, bool) {
	if len(m.appenddescriptions) == 0 {
		return nil, false
	}
	return m.appenddescriptions, true
}

// ClearDescriptions clears the value of the "descriptions" field.
func (m *PosterMetadataMutation) ClearDescriptions() {
	m.descriptions = nil
	m.appenddescriptions = nil
	m.clearedFields[postermetadata.FieldDescriptions] = struct{}{}
}

// DescriptionsCleared returns if the "descriptions" field was cleared in this mutation.
func (m *PosterMetadataMutation) DescriptionsCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldDescriptions]
	return ok
}

// ResetDescriptions resets all changes to the "descriptions" field.
func (m *PosterMetadataMutation) ResetDescriptions() {
	m.descriptions = nil
	m.appenddescriptions = nil
	delete(m.clearedFields, postermetadata.FieldDescriptions)
}

// SetImageCaption sets the "image_caption" field.
func (m *PosterMetadataMutation) SetImageCaption(e []entity.Caption) {
	m.image_caption = &e
	m.appendimage_caption = nil
}

// ImageCaption returns the value of the "image_caption" field in the mutation.
func (m *PosterMetadataMutation) ImageCaption() (r []entity.Caption, exists bool) {
	v := m.image_caption
	if v == nil {
		return
	}
	return *v, true
}

// OldImageCaption returns the old "image_caption" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldImageCaption(ctx context.Context) (v []entity.Caption, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldImageCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldImageCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldImageCaption: %w", err)
	}
	return oldValue.ImageCaption, nil
}

// AppendImageCaption adds e to the "image_caption" field.
func (m *PosterMetadataMutation) AppendImageCaption(e []entity.Caption) {
	m.appendimage_caption = append(m.appendimage_caption, e...)
}

// AppendedImageCaption returns the list of values that were appended to the "image_caption" field in this mutation.
func (m *PosterMetadataMutation) AppendedImageCaption() ([]entity.Caption, bool) {
	if len(m.appendimage_caption) == 0 {
		return nil, false
	}
	return m.appendimage_caption, true
}

// ClearImageCaption clears the value of the "image_caption" field.
func (m *PosterMetadataMutation) ClearImageCaption() {
	m.image_caption = nil
	m.appendimage_caption = nil
	m.clearedFields[postermetadata.FieldImageCaption] = struct{}{}
}

// ImageCaptionCleared returns if the "image_caption" field was cleared in this mutation.
func (m *PosterMetadataMutation) ImageCaptionCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldImageCaption]
	return ok
}

// ResetImageCaption resets all changes to the "image_caption" field.
func (m *PosterMetadataMutation) ResetImageCaption() {
	m.image_caption = nil
	m.appendimage_caption = nil
	delete(m.clearedFields, postermetadata.FieldImageCaption)
}

// SetPosterContent sets the "poster_content" field.
func (m *PosterMetadataMutation) SetPosterContent(es []entity.ContentSection) {
	m.poster_content = &es
	m.appendposter_content = nil
}

// PosterContent returns the value of the "poster_content" field in the mutation.
func (m *PosterMetadataMutation) PosterContent() (r []entity.ContentSection, exists bool) {
	v := m.poster_content
	if v == nil {
		return
	}
	return *v, true
}

// OldPosterContent returns the old "poster_content" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldPosterContent(ctx context.Context) (v []entity.ContentSection, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPosterContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPosterContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPosterContent: %w", err)
	}
	return oldValue.PosterContent, nil
}

// AppendPosterContent adds es to the "poster_content" field.
func (m *PosterMetadataMutation) AppendPosterContent(es []entity.ContentSection) {
	m.appendposter_content = append(m.appendposter_content, es...)
}

// AppendedPosterContent returns the list of values that were appended to the "poster_content" field in this mutation.
func (m *PosterMetadataMutation) AppendedPosterContent() ([]entity.ContentSection, bool) {
	if len(m.appendposter_content) == 0 {
		return nil, false
	}
	return m.appendposter_content, true
}

// ClearPosterContent clears the value of the "poster_content" field.
func (m *PosterMetadataMutation) ClearPosterContent() {
	m.poster_content = nil
	m.appendposter_content = nil
	m.clearedFields[postermetadata.FieldPosterContent] = struct{}{}
}

// PosterContentCleared returns if the "poster_content" field was cleared in this mutation.
func (m *PosterMetadataMutation) PosterContentCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldPosterContent]
	return ok
}

// ResetPosterContent resets all changes to the "poster_content" field.
func (m *PosterMetadataMutation) ResetPosterContent() {
	m.poster_content = nil
	m.appendposter_content = nil
	delete(m.clearedFields, postermetadata.FieldPosterContent)
}

// SetTableCaption sets the "table_caption" field.
func (m *PosterMetadataMutation) SetTableCaption(e []entity.Caption) {
	m.table_caption = &e
	m.appendtable_caption = nil
}

// TableCaption returns the value of the "table_caption" field in the mutation.
func (m *PosterMetadataMutation) TableCaption() (r []entity.Caption, exists bool) {
	v := m.table_caption
	if v == nil {
		return
	}
	return *v, true
}

// OldTableCaption returns the old "table_caption" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldTableCaption(ctx context.Context) (v []entity.Caption, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTableCaption is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTableCaption requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTableCaption: %w", err)
	}
	return oldValue.TableCaption, nil
}

// AppendTableCaption adds e to the "table_caption" field.
func (m *PosterMetadataMutation) AppendTableCaption(e []entity.Caption) {
	m.appendtable_caption = append(m.appendtable_caption, e...)
}

// AppendedTableCaption returns the list of values that were appended to the "table_caption" field in this mutation.
func (m *PosterMetadataMutation) AppendedTableCaption() ([]entity.Caption, bool) {
	if len(m.appendtable_caption) == 0 {
		return nil, false
	}
	return m.appendtable_caption, true
}

// ClearTableCaption clears the value of the "table_caption" field.
func (m *PosterMetadataMutation) ClearTableCaption() {
	m.table_caption = nil
	m.appendtable_caption = nil
	m.clearedFields[postermetadata.FieldTableCaption] = struct{}{}
}

// TableCaptionCleared returns if the "table_caption" field was cleared in this mutation.
func (m *PosterMetadataMutation) TableCaptionCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldTableCaption]
	return ok
}

// ResetTableCaption resets all changes to the "table_caption" field.
func (m *PosterMetadataMutation) ResetTableCaption() {
	m.table_caption = nil
	m.appendtable_caption = nil
	delete(m.clearedFields, postermetadata.FieldTableCaption)
}

// SetConferenceName sets the "conference_name" field.
func (m *PosterMetadataMutation) SetConferenceName(s string) {
	m.conference_name = &s
}

// ConferenceName returns the value of the "conference_name" field in the mutation.
func (m *PosterMetadataMutation) ConferenceName() (r string, exists bool) {
	v := m.conference_name
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceName returns the old "conference_name" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceName: %w", err)
	}
	return oldValue.ConferenceName, nil
}

// ClearConferenceName clears the value of the "conference_name" field.
func (m *PosterMetadataMutation) ClearConferenceName() {
	m.conference_name = nil
	m.clearedFields[postermetadata.FieldConferenceName] = struct{}{}
}

// ConferenceNameCleared returns if the "conference_name" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceNameCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceName]
	return ok
}

// ResetConferenceName resets all changes to the "conference_name" field.
func (m *PosterMetadataMutation) ResetConferenceName() {
	m.conference_name = nil
	delete(m.clearedFields, postermetadata.FieldConferenceName)
}

// SetConferenceLocation sets the "conference_location" field.
func (m *PosterMetadataMutation) SetConferenceLocation(s string) {
	m.conference_location = &s
}

// ConferenceLocation returns the value of the "conference_location" field in the mutation.
func (m *PosterMetadataMutation) ConferenceLocation() (r string, exists bool) {
	v := m.conference_location
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceLocation returns the old "conference_location" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceLocation(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceLocation: %w", err)
	}
	return oldValue.ConferenceLocation, nil
}

// ClearConferenceLocation clears the value of the "conference_location" field.
func (m *PosterMetadataMutation) ClearConferenceLocation() {
	m.conference_location = nil
	m.clearedFields[postermetadata.FieldConferenceLocation] = struct{}{}
}

// ConferenceLocationCleared returns if the "conference_location" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceLocationCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceLocation]
	return ok
}

// ResetConferenceLocation resets all changes to the "conference_location" field.
func (m *PosterMetadataMutation) ResetConferenceLocation() {
	m.conference_location = nil
	delete(m.clearedFields, postermetadata.FieldConferenceLocation)
}

// SetConferenceURI sets the "conference_uri" field.
func (m *PosterMetadataMutation) SetConferenceURI(s string) {
	m.conference_uri = &s
}

// ConferenceURI returns the value of the "conference_uri" field in the mutation.
func (m *PosterMetadataMutation) ConferenceURI() (r string, exists bool) {
	v := m.conference_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceURI returns the old "conference_uri" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceURI: %w", err)
	}
	return oldValue.ConferenceURI, nil
}

// ClearConferenceURI clears the value of the "conference_uri" field.
func (m *PosterMetadataMutation) ClearConferenceURI() {
	m.conference_uri = nil
	m.clearedFields[postermetadata.FieldConferenceURI] = struct{}{}
}

// ConferenceURICleared returns if the "conference_uri" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceURICleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceURI]
	return ok
}

// ResetConferenceURI resets all changes to the "conference_uri" field.
func (m *PosterMetadataMutation) ResetConferenceURI() {
	m.conference_uri = nil
	delete(m.clearedFields, postermetadata.FieldConferenceURI)
}

// SetConferenceIdentifier sets the "conference_identifier" field.
func (m *PosterMetadataMutation) SetConferenceIdentifier(s string) {
	m.conference_identifier = &s
}

// ConferenceIdentifier returns the value of the "conference_identifier" field in the mutation.
func (m *PosterMetadataMutation) ConferenceIdentifier() (r string, exists bool) {
	v := m.conference_identifier
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceIdentifier returns the old "conference_identifier" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceIdentifier(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceIdentifier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceIdentifier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceIdentifier: %w", err)
	}
	return oldValue.ConferenceIdentifier, nil
}

// ClearConferenceIdentifier clears the value of the "conference_identifier" field.
func (m *PosterMetadataMutation) ClearConferenceIdentifier() {
	m.conference_identifier = nil
	m.clearedFields[postermetadata.FieldConferenceIdentifier] = struct{}{}
}

// ConferenceIdentifierCleared returns if the "conference_identifier" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceIdentifierCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceIdentifier]
	return ok
}

// ResetConferenceIdentifier resets all changes to the "conference_identifier" field.
func (m *PosterMetadataMutation) ResetConferenceIdentifier() {
	m.conference_identifier = nil
	delete(m.clearedFields, postermetadata.FieldConferenceIdentifier)
}

// SetConferenceIdentifierType sets the "conference_identifier_type" field.
func (m *PosterMetadataMutation) SetConferenceIdentifierType(s string) {
	m.conference_identifier_type = &s
}

// ConferenceIdentifierType returns the value of the "conference_identifier_type" field in the mutation.
func (m *PosterMetadataMutation) ConferenceIdentifierType() (r string, exists bool) {
	v := m.conference_identifier_type
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceIdentifierType returns the old "conference_identifier_type" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceIdentifierType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceIdentifierType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceIdentifierType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceIdentifierType: %w", err)
	}
	return oldValue.ConferenceIdentifierType, nil
}

// ClearConferenceIdentifierType clears the value of the "conference_identifier_type" field.
func (m *PosterMetadataMutation) ClearConferenceIdentifierType() {
	m.conference_identifier_type = nil
	m.clearedFields[postermetadata.FieldConferenceIdentifierType] = struct{}{}
}

// ConferenceIdentifierTypeCleared returns if the "conference_identifier_type" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceIdentifierTypeCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceIdentifierType]
	return ok
}

// ResetConferenceIdentifierType resets all changes to the "conference_identifier_type" field.
func (m *PosterMetadataMutation) ResetConferenceIdentifierType() {
	m.conference_identifier_type = nil
	delete(m.clearedFields, postermetadata.FieldConferenceIdentifierType)
}

// SetConferenceSchemaURI sets the "conference_schema_uri" field.
func (m *PosterMetadataMutation) SetConferenceSchemaURI(s string) {
	m.conference_schema_uri = &s
}

// ConferenceSchemaURI returns the value of the "conference_schema_uri" field in the mutation.
func (m *PosterMetadataMutation) ConferenceSchemaURI() (r string, exists bool) {
	v := m.conference_schema_uri
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceSchemaURI returns the old "conference_schema_uri" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceSchemaURI(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceSchemaURI is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceSchemaURI requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceSchemaURI: %w", err)
	}
	return oldValue.ConferenceSchemaURI, nil
}

// ClearConferenceSchemaURI clears the value of the "conference_schema_uri" field.
func (m *PosterMetadataMutation) ClearConferenceSchemaURI() {
	m.conference_schema_uri = nil
	m.clearedFields[postermetadata.FieldConferenceSchemaURI] = struct{}{}
}

// ConferenceSchemaURICleared returns if the "conference_schema_uri" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceSchemaURICleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceSchemaURI]
	return ok
}

// ResetConferenceSchemaURI resets all changes to the "conference_schema_uri" field.
func (m *PosterMetadataMutation) ResetConferenceSchemaURI() {
	m.conference_schema_uri = nil
	delete(m.clearedFields, postermetadata.FieldConferenceSchemaURI)
}

// SetConferenceStartDate sets the "conference_start_date" field.
func (m *PosterMetadataMutation) SetConferenceStartDate(s string) {
	m.conference_start_date = &s
}

// ConferenceStartDate returns the value of the "conference_start_date" field in the mutation.
func (m *PosterMetadataMutation) ConferenceStartDate() (r string, exists bool) {
	v := m.conference_start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceStartDate returns the old "conference_start_date" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceStartDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceStartDate: %w", err)
	}
	return oldValue.ConferenceStartDate, nil
}

// ClearConferenceStartDate clears the value of the "conference_start_date" field.
func (m *PosterMetadataMutation) ClearConferenceStartDate() {
	m.conference_start_date = nil
	m.clearedFields[postermetadata.FieldConferenceStartDate] = struct{}{}
}

// ConferenceStartDateCleared returns if the "conference_start_date" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceStartDateCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceStartDate]
	return ok
}

// ResetConferenceStartDate resets all changes to the "conference_start_date" field.
func (m *PosterMetadataMutation) ResetConferenceStartDate() {
	m.conference_start_date = nil
	delete(m.clearedFields, postermetadata.FieldConferenceStartDate)
}

// SetConferenceEndDate sets the "conference_end_date" field.
func (m *PosterMetadataMutation) SetConferenceEndDate(s string) {
	m.conference_end_date = &s
}

// ConferenceEndDate returns the value of the "conference_end_date" field in the mutation.
func (m *PosterMetadataMutation) ConferenceEndDate() (r string, exists bool) {
	v := m.conference_end_date
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceEndDate returns the old "conference_end_date" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceEndDate(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceEndDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceEndDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceEndDate: %w", err)
	}
	return oldValue.ConferenceEndDate, nil
}

// ClearConferenceEndDate clears the value of the "conference_end_date" field.
func (m *PosterMetadataMutation) ClearConferenceEndDate() {
	m.conference_end_date = nil
	m.clearedFields[postermetadata.FieldConferenceEndDate] = struct{}{}
}

// ConferenceEndDateCleared returns if the "conference_end_date" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceEndDateCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceEndDate]
	return ok
}

// ResetConferenceEndDate resets all changes to the "conference_end_date" field.
func (m *PosterMetadataMutation) ResetConferenceEndDate() {
	m.conference_end_date = nil
	delete(m.clearedFields, postermetadata.FieldConferenceEndDate)
}

// SetConferenceAcronym sets the "conference_acronym" field.
func (m *PosterMetadataMutation) SetConferenceAcronym(s string) {
	m.conference_acronym = &s
}

// ConferenceAcronym returns the value of the "conference_acronym" field in the mutation.
func (m *PosterMetadataMutation) ConferenceAcronym() (r string, exists bool) {
	v := m.conference_acronym
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceAcronym returns the old "conference_acronym" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceAcronym(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceAcronym is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceAcronym requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceAcronym: %w", err)
	}
	return oldValue.ConferenceAcronym, nil
}

// ClearConferenceAcronym clears the value of the "conference_acronym" field.
func (m *PosterMetadataMutation) ClearConferenceAcronym() {
	m.conference_acronym = nil
	m.clearedFields[postermetadata.FieldConferenceAcronym] = struct{}{}
}

// ConferenceAcronymCleared returns if the "conference_acronym" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceAcronymCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceAcronym]
	return ok
}

// ResetConferenceAcronym resets all changes to the "conference_acronym" field.
func (m *PosterMetadataMutation) ResetConferenceAcronym() {
	m.conference_acronym = nil
	delete(m.clearedFields, postermetadata.FieldConferenceAcronym)
}

// SetConferenceSeries sets the "conference_series" field.
func (m *PosterMetadataMutation) SetConferenceSeries(s string) {
	m.conference_series = &s
}

// ConferenceSeries returns the value of the "conference_series" field in the mutation.
func (m *PosterMetadataMutation) ConferenceSeries() (r string, exists bool) {
	v := m.conference_series
	if v == nil {
		return
	}
	return *v, true
}

// OldConferenceSeries returns the old "conference_series" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldConferenceSeries(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConferenceSeries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConferenceSeries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConferenceSeries: %w", err)
	}
	return oldValue.ConferenceSeries, nil
}

// ClearConferenceSeries clears the value of the "conference_series" field.
func (m *PosterMetadataMutation) ClearConferenceSeries() {
	m.conference_series = nil
	m.clearedFields[postermetadata.FieldConferenceSeries] = struct{}{}
}

// ConferenceSeriesCleared returns if the "conference_series" field was cleared in this mutation.
func (m *PosterMetadataMutation) ConferenceSeriesCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldConferenceSeries]
	return ok
}

// ResetConferenceSeries resets all changes to the "conference_series" field.
func (m *PosterMetadataMutation) ResetConferenceSeries() {
	m.conference_series = nil
	delete(m.clearedFields, postermetadata.FieldConferenceSeries)
}

// SetDomain sets the "domain" field.
func (m *PosterMetadataMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *PosterMetadataMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *PosterMetadataMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[postermetadata.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *PosterMetadataMutation) DomainCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *PosterMetadataMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, postermetadata.FieldDomain)
}

// SetDoi sets the "doi" field.
func (m *PosterMetadataMutation) SetDoi(s string) {
	m.doi = &s
}

// Doi returns the value of the "doi" field in the mutation.
func (m *PosterMetadataMutation) Doi() (r string, exists bool) {
	v := m.doi
	if v == nil {
		return
	}
	return *v, true
}

// OldDoi returns the old "doi" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldDoi(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDoi is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDoi requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDoi: %w", err)
	}
	return oldValue.Doi, nil
}

// ClearDoi clears the value of the "doi" field.
func (m *PosterMetadataMutation) ClearDoi() {
	m.doi = nil
	m.clearedFields[postermetadata.FieldDoi] = struct{}{}
}

// DoiCleared returns if the "doi" field was cleared in this mutation.
func (m *PosterMetadataMutation) DoiCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldDoi]
	return ok
}

// ResetDoi resets all changes to the "doi" field.
func (m *PosterMetadataMutation) ResetDoi() {
	m.doi = nil
	delete(m.clearedFields, postermetadata.FieldDoi)
}

// SetIdentifiers sets the "identifiers" field.
func (m *PosterMetadataMutation) SetIdentifiers(e []entity.Identifier) {
	m.identifiers = &e
	m.appendidentifiers = nil
}

// Identifiers returns the value of the "identifiers" field in the mutation.
func (m *PosterMetadataMutation) Identifiers() (r []entity.Identifier, exists bool) {
	v := m.identifiers
	if v == nil {
		return
	}
	return *v, true
}

// OldIdentifiers returns the old "identifiers" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldIdentifiers(ctx context.Context) (v []entity.Identifier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIdentifiers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIdentifiers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIdentifiers: %w", err)
	}
	return oldValue.Identifiers, nil
}

// AppendIdentifiers adds e to the "identifiers" field.
func (m *PosterMetadataMutation) AppendIdentifiers(e []entity.Identifier) {
	m.appendidentifiers = append(m.appendidentifiers, e...)
}

// AppendedIdentifiers returns the list of values that were appended to the "identifiers" field in this mutation.
func (m *PosterMetadataMutation) AppendedIdentifiers() ([]entity.Identifier, bool) {
	if len(m.appendidentifiers) == 0 {
		return nil, false
	}
	return m.appendidentifiers, true
}

// ClearIdentifiers clears the value of the "identifiers" field.
func (m *PosterMetadataMutation) ClearIdentifiers() {
	m.identifiers = nil
	m.appendidentifiers = nil
	m.clearedFields[postermetadata.FieldIdentifiers] = struct{}{}
}

// IdentifiersCleared returns if the "identifiers" field was cleared in this mutation.
func (m *PosterMetadataMutation) IdentifiersCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldIdentifiers]
	return ok
}

// ResetIdentifiers resets all changes to the "identifiers" field.
func (m *PosterMetadataMutation) ResetIdentifiers() {
	m.identifiers = nil
	m.appendidentifiers = nil
	delete(m.clearedFields, postermetadata.FieldIdentifiers)
}

// SetAlternateIdentifiers sets the "alternate_identifiers" field.
func (m *PosterMetadataMutation) SetAlternateIdentifiers(ei []entity.AlternateIdentifier) {
	m.alternate_identifiers = &ei
	m.appendalternate_identifiers = nil
}

// AlternateIdentifiers returns the value of the "alternate_identifiers" field in the mutation.
func (m *PosterMetadataMutation) AlternateIdentifiers() (r []entity.AlternateIdentifier, exists bool) {
	v := m.alternate_identifiers
	if v == nil {
		return
	}
	return *v, true
}

// OldAlternateIdentifiers returns the old "alternate_identifiers" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldAlternateIdentifiers(ctx context.Context) (v []entity.AlternateIdentifier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlternateIdentifiers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlternateIdentifiers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlternateIdentifiers: %w", err)
	}
	return oldValue.AlternateIdentifiers, nil
}

// AppendAlternateIdentifiers adds ei to the "alternate_identifiers" field.
func (m *PosterMetadataMutation) AppendAlternateIdentifiers(ei []entity.AlternateIdentifier) {
	m.appendalternate_identifiers = append(m.appendalternate_identifiers, ei...)
}

// AppendedAlternateIdentifiers returns the list of values that were appended to the "alternate_identifiers" field in this mutation.
func (m *PosterMetadataMutation) AppendedAlternateIdentifiers() ([]entity.AlternateIdentifier, bool) {
	if len(m.appendalternate_identifiers) == 0 {
		return nil, false
	}
	return m.appendalternate_identifiers, true
}

// ClearAlternateIdentifiers clears the value of the "alternate_identifiers" field.
func (m *PosterMetadataMutation) ClearAlternateIdentifiers() {
	m.alternate_identifiers = nil
	m.appendalternate_identifiers = nil
	m.clearedFields[postermetadata.FieldAlternateIdentifiers] = struct{}{}
}

// AlternateIdentifiersCleared returns if the "alternate_identifiers" field was cleared in this mutation.
func (m *PosterMetadataMutation) AlternateIdentifiersCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldAlternateIdentifiers]
	return ok
}

// ResetAlternateIdentifiers resets all changes to the "alternate_identifiers" field.
func (m *PosterMetadataMutation) ResetAlternateIdentifiers() {
	m.alternate_identifiers = nil
	m.appendalternate_identifiers = nil
	delete(m.clearedFields, postermetadata.FieldAlternateIdentifiers)
}

// SetPublisher sets the "publisher" field.
func (m *PosterMetadataMutation) SetPublisher(e []entity.Publisher) {
	m.publisher = &e
	m.appendpublisher = nil
}

// Publisher returns the value of the "publisher" field in the mutation.
func (m *PosterMetadataMutation) Publisher() (r []entity.Publisher, exists bool) {
	v := m.publisher
	if v == nil {
		return
	}
	return *v, true
}

// OldPublisher returns the old "publisher" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldPublisher(ctx context.Context) (v []entity.Publisher, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublisher is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublisher requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublisher: %w", err)
	}
	return oldValue.Publisher, nil
}

// AppendPublisher adds e to the "publisher" field.
func (m *PosterMetadataMutation) AppendPublisher(e []entity.Publisher) {
	m.appendpublisher = append(m.appendpublisher, e...)
}

// AppendedPublisher returns the list of values that were appended to the "publisher" field in this mutation.
func (m *PosterMetadataMutation) AppendedPublisher() ([]entity.Publisher, bool) {
	if len(m.appendpublisher) == 0 {
		return nil, false
	}
	return m.appendpublisher, true
}

// ClearPublisher clears the value of the "publisher" field.
func (m *PosterMetadataMutation) ClearPublisher() {
	m.publisher = nil
	m.appendpublisher = nil
	m.clearedFields[postermetadata.FieldPublisher] = struct{}{}
}

// PublisherCleared returns if the "publisher" field was cleared in this mutation.
func (m *PosterMetadataMutation) PublisherCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldPublisher]
	return ok
}

// ResetPublisher resets all changes to the "publisher" field.
func (m *PosterMetadataMutation) ResetPublisher() {
	m.publisher = nil
	m.appendpublisher = nil
	delete(m.clearedFields, postermetadata.FieldPublisher)
}

// SetPublicationYear sets the "publication_year" field.
func (m *PosterMetadataMutation) SetPublicationYear(i int) {
	m.publication_year = &i
	m.addpublication_year = nil
}

// PublicationYear returns the value of the "publication_year" field in the mutation.
func (m *PosterMetadataMutation) PublicationYear() (r int, exists bool) {
	v := m.publication_year
	if v == nil {
		return
	}
	return *v, true
}

// OldPublicationYear returns the old "publication_year" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldPublicationYear(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublicationYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublicationYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublicationYear: %w", err)
	}
	return oldValue.PublicationYear, nil
}

// AddPublicationYear adds i to the "publication_year" field.
func (m *PosterMetadataMutation) AddPublicationYear(i int) {
	if m.addpublication_year != nil {
		*m.addpublication_year += i
	} else {
		m.addpublication_year = &i
	}
}

// AddedPublicationYear returns the value that was added to the "publication_year" field in this mutation.
func (m *PosterMetadataMutation) AddedPublicationYear() (r int, exists bool) {
	v := m.addpublication_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearPublicationYear clears the value of the "publication_year" field.
func (m *PosterMetadataMutation) ClearPublicationYear() {
	m.publication_year = nil
	m.addpublication_year = nil
	m.clearedFields[postermetadata.FieldPublicationYear] = struct{}{}
}

// PublicationYearCleared returns if the "publication_year" field was cleared in this mutation.
func (m *PosterMetadataMutation) PublicationYearCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldPublicationYear]
	return ok
}

// ResetPublicationYear resets all changes to the "publication_year" field.
func (m *PosterMetadataMutation) ResetPublicationYear() {
	m.publication_year = nil
	m.addpublication_year = nil
	delete(m.clearedFields, postermetadata.FieldPublicationYear)
}

// SetSubjects sets the "subjects" field.
func (m *PosterMetadataMutation) SetSubjects(e []entity.Subject) {
	m.subjects = &e
	m.appendsubjects = nil
}

// Subjects returns the value of the "subjects" field in the mutation.
func (m *PosterMetadataMutation) Subjects() (r []entity.Subject, exists bool) {
	v := m.subjects
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjects returns the old "subjects" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldSubjects(ctx context.Context) (v []entity.Subject, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjects: %w", err)
	}
	return oldValue.Subjects, nil
}

// AppendSubjects adds e to the "subjects" field.
func (m *PosterMetadataMutation) AppendSubjects(e []entity.Subject) {
	m.appendsubjects = append(m.appendsubjects, e...)
}

// AppendedSubjects returns the list of values that were appended to the "subjects" field in this mutation.
func (m *PosterMetadataMutation) AppendedSubjects() ([]entity.Subject, bool) {
	if len(m.appendsubjects) == 0 {
		return nil, false
	}
	return m.appendsubjects, true
}

// ClearSubjects clears the value of the "subjects" field.
func (m *PosterMetadataMutation) ClearSubjects() {
	m.subjects = nil
	m.appendsubjects = nil
	m.clearedFields[postermetadata.FieldSubjects] = struct{}{}
}

// SubjectsCleared returns if the "subjects" field was cleared in this mutation.
func (m *PosterMetadataMutation) SubjectsCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldSubjects]
	return ok
}

// ResetSubjects resets all changes to the "subjects" field.
func (m *PosterMetadataMutation) ResetSubjects() {
	m.subjects = nil
	m.appendsubjects = nil
	delete(m.clearedFields, postermetadata.FieldSubjects)
}

// SetDates sets the "dates" field.
func (m *PosterMetadataMutation) SetDates(e []entity.Date) {
	m.dates = &e
	m.appenddates = nil
}

// Dates returns the value of the "dates" field in the mutation.
func (m *PosterMetadataMutation) Dates() (r []entity.Date, exists bool) {
	v := m.dates
	if v == nil {
		return
	}
	return *v, true
}

// OldDates returns the old "dates" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldDates(ctx context.Context) (v []entity.Date, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDates is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDates requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDates: %w", err)
	}
	return oldValue.Dates, nil
}

// AppendDates adds e to the "dates" field.
func (m *PosterMetadataMutation) AppendDates(e []entity.Date) {
	m.appenddates = append(m.appenddates, e...)
}

// AppendedDates returns the list of values that were appended to the "dates" field in this mutation.
func (m *PosterMetadataMutation) AppendedDates() ([]entity.Date, bool) {
	if len(m.appenddates) == 0 {
		return nil, false
	}
	return m.appenddates, true
}

// ClearDates clears the value of the "dates" field.
func (m *PosterMetadataMutation) ClearDates() {
	m.dates = nil
	m.appenddates = nil
	m.clearedFields[postermetadata.FieldDates] = struct{}{}
}

// DatesCleared returns if the "dates" field was cleared in this mutation.
func (m *PosterMetadataMutation) DatesCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldDates]
	return ok
}

// ResetDates resets all changes to the "dates" field.
func (m *PosterMetadataMutation) ResetDates() {
	m.dates = nil
	m.appenddates = nil
	delete(m.clearedFields, postermetadata.FieldDates)
}

// SetLanguage sets the "language" field.
func (m *PosterMetadataMutation) SetLanguage(s string) {
	m.language = &s
}

// Language returns the value of the "language" field in the mutation.
func (m *PosterMetadataMutation) Language() (r string, exists bool) {
	v := m.language
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguage returns the old "language" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldLanguage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguage: %w", err)
	}
	return oldValue.Language, nil
}

// ClearLanguage clears the value of the "language" field.
func (m *PosterMetadataMutation) ClearLanguage() {
	m.language = nil
	m.clearedFields[postermetadata.FieldLanguage] = struct{}{}
}

// LanguageCleared returns if the "language" field was cleared in this mutation.
func (m *PosterMetadataMutation) LanguageCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldLanguage]
	return ok
}

// ResetLanguage resets all changes to the "language" field.
func (m *PosterMetadataMutation) ResetLanguage() {
	m.language = nil
	delete(m.clearedFields, postermetadata.FieldLanguage)
}

// SetTypes sets the "types" field.
func (m *PosterMetadataMutation) SetTypes(et []entity.ResourceType) {
	m.types = &et
	m.appendtypes = nil
}

// Types returns the value of the "types" field in the mutation.
func (m *PosterMetadataMutation) Types() (r []entity.ResourceType, exists bool) {
	v := m.types
	if v == nil {
		return
	}
	return *v, true
}

// OldTypes returns the old "types" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldTypes(ctx context.Context) (v []entity.ResourceType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTypes: %w", err)
	}
	return oldValue.Types, nil
}

// AppendTypes adds et to the "types" field.
func (m *PosterMetadataMutation) AppendTypes(et []entity.ResourceType) {
	m.appendtypes = append(m.appendtypes, et...)
}

// AppendedTypes returns the list of values that were appended to the "types" field in this mutation.
func (m *PosterMetadataMutation) AppendedTypes() ([]entity.ResourceType, bool) {
	if len(m.appendtypes) == 0 {
		return nil, false
	}
	return m.appendtypes, true
}

// ClearTypes clears the value of the "types" field.
func (m *PosterMetadataMutation) ClearTypes() {
	m.types = nil
	m.appendtypes = nil
	m.clearedFields[postermetadata.FieldTypes] = struct{}{}
}

// TypesCleared returns if the "types" field was cleared in this mutation.
func (m *PosterMetadataMutation) TypesCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldTypes]
	return ok
}

// ResetTypes resets all changes to the "types" field.
func (m *PosterMetadataMutation) ResetTypes() {
	m.types = nil
	m.appendtypes = nil
	delete(m.clearedFields, postermetadata.FieldTypes)
}

// SetRelatedIdentifiers sets the "related_identifiers" field.
func (m *PosterMetadataMutation) SetRelatedIdentifiers(ei []entity.RelatedIdentifier) {
	m.related_identifiers = &ei
	m.appendrelated_identifiers = nil
}

// RelatedIdentifiers returns the value of the "related_identifiers" field in the mutation.
func (m *PosterMetadataMutation) RelatedIdentifiers() (r []entity.RelatedIdentifier, exists bool) {
	v := m.related_identifiers
	if v == nil {
		return
	}
	return *v, true
}

// OldRelatedIdentifiers returns the old "related_identifiers" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldRelatedIdentifiers(ctx context.Context) (v []entity.RelatedIdentifier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelatedIdentifiers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelatedIdentifiers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelatedIdentifiers: %w", err)
	}
	return oldValue.RelatedIdentifiers, nil
}

// AppendRelatedIdentifiers adds ei to the "related_identifiers" field.
func (m *PosterMetadataMutation) AppendRelatedIdentifiers(ei []entity.RelatedIdentifier) {
	m.appendrelated_identifiers = append(m.appendrelated_identifiers, ei...)
}

// AppendedRelatedIdentifiers returns the list of values that were appended to the "related_identifiers" field in this mutation.
func (m *PosterMetadataMutation) AppendedRelatedIdentifiers() ([]entity.RelatedIdentifier, bool) {
	if len(m.appendrelated_identifiers) == 0 {
		return nil, false
	}
	return m.appendrelated_identifiers, true
}

// ClearRelatedIdentifiers clears the value of the "related_identifiers" field.
func (m *PosterMetadataMutation) ClearRelatedIdentifiers() {
	m.related_identifiers = nil
	m.appendrelated_identifiers = nil
	m.clearedFields[postermetadata.FieldRelatedIdentifiers] = struct{}{}
}

// RelatedIdentifiersCleared returns if the "related_identifiers" field was cleared in this mutation.
func (m *PosterMetadataMutation) RelatedIdentifiersCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldRelatedIdentifiers]
	return ok
}

// ResetRelatedIdentifiers resets all changes to the "related_identifiers" field.
func (m *PosterMetadataMutation) ResetRelatedIdentifiers() {
	m.related_identifiers = nil
	m.appendrelated_identifiers = nil
	delete(m.clearedFields, postermetadata.FieldRelatedIdentifiers)
}

// SetSizes sets the "sizes" field.
func (m *PosterMetadataMutation) SetSizes(s []string) {
	m.sizes = &s
	m.appendsizes = nil
}

// Sizes returns the value of the "sizes" field in the mutation.
func (m *PosterMetadataMutation) Sizes() (r []string, exists bool) {
	v := m.sizes
	if v == nil {
		return
	}
	return *v, true
}

// OldSizes returns the old "sizes" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldSizes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSizes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSizes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSizes: %w", err)
	}
	return oldValue.Sizes, nil
}

// AppendSizes adds s to the "sizes" field.
func (m *PosterMetadataMutation) AppendSizes(s []string) {
	m.appendsizes = append(m.appendsizes, s...)
}

// AppendedSizes returns the list of values that were appended to the "sizes" field in this mutation.
func (m *PosterMetadataMutation) AppendedSizes() ([]string, bool) {
	if len(m.appendsizes) == 0 {
		return nil, false
	}
	return m.appendsizes, true
}

// ClearSizes clears the value of the "sizes" field.
func (m *PosterMetadataMutation) ClearSizes() {
	m.sizes = nil
	m.appendsizes = nil
	m.clearedFields[postermetadata.FieldSizes] = struct{}{}
}

// SizesCleared returns if the "sizes" field was cleared in this mutation.
func (m *PosterMetadataMutation) SizesCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldSizes]
	return ok
}

// ResetSizes resets all changes to the "sizes" field.
func (m *PosterMetadataMutation) ResetSizes() {
	m.sizes = nil
	m.appendsizes = nil
	delete(m.clearedFields, postermetadata.FieldSizes)
}

// SetFormats sets the "formats" field.
func (m *PosterMetadataMutation) SetFormats(s []string) {
	m.formats = &s
	m.appendformats = nil
}

// Formats returns the value of the "formats" field in the mutation.
func (m *PosterMetadataMutation) Formats() (r []string, exists bool) {
	v := m.formats
	if v == nil {
		return
	}
	return *v, true
}

// OldFormats returns the old "formats" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldFormats(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormats is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormats requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormats: %w", err)
	}
	return oldValue.Formats, nil
}

// AppendFormats adds s to the "formats" field.
func (m *PosterMetadataMutation) AppendFormats(s []string) {
	m.appendformats = append(m.appendformats, s...)
}

// AppendedFormats returns the list of values that were appended to the "formats" field in this mutation.
func (m *PosterMetadataMutation) AppendedFormats() ([]string, bool) {
	if len(m.appendformats) == 0 {
		return nil, false
	}
	return m.appendformats, true
}

// ClearFormats clears the value of the "formats" field.
func (m *PosterMetadataMutation) ClearFormats() {
	m.formats = nil
	m.appendformats = nil
	m.clearedFields[postermetadata.FieldFormats] = struct{}{}
}

// FormatsCleared returns if the "formats" field was cleared in this mutation.
func (m *PosterMetadataMutation) FormatsCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldFormats]
	return ok
}

// ResetFormats resets all changes to the "formats" field.
func (m *PosterMetadataMutation) ResetFormats() {
	m.formats = nil
	m.appendformats = nil
	delete(m.clearedFields, postermetadata.FieldFormats)
}

// SetVersion sets the "version" field.
func (m *PosterMetadataMutation) SetVersion(s string) {
	m.version = &s
}

// Version returns the value of the "version" field in the mutation.
func (m *PosterMetadataMutation) Version() (r string, exists bool) {
	v := m.version
	if v == nil {
		return
	}
	return *v, true
}

// OldVersion returns the old "version" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVersion: %w", err)
	}
	return oldValue.Version, nil
}

// ClearVersion clears the value of the "version" field.
func (m *PosterMetadataMutation) ClearVersion() {
	m.version = nil
	m.clearedFields[postermetadata.FieldVersion] = struct{}{}
}

// VersionCleared returns if the "version" field was cleared in this mutation.
func (m *PosterMetadataMutation) VersionCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldVersion]
	return ok
}

// ResetVersion resets all changes to the "version" field.
func (m *PosterMetadataMutation) ResetVersion() {
	m.version = nil
	delete(m.clearedFields, postermetadata.FieldVersion)
}

// SetRightsList sets the "rights_list" field.
func (m *PosterMetadataMutation) SetRightsList(e []entity.Rights) {
	m.rights_list = &e
	m.appendrights_list = nil
}

// RightsList returns the value of the "rights_list" field in the mutation.
func (m *PosterMetadataMutation) RightsList() (r []entity.Rights, exists bool) {
	v := m.rights_list
	if v == nil {
		return
	}
	return *v, true
}

// OldRightsList returns the old "rights_list" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldRightsList(ctx context.Context) (v []entity.Rights, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRightsList is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRightsList requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRightsList: %w", err)
	}
	return oldValue.RightsList, nil
}

// AppendRightsList adds e to the "rights_list" field.
func (m *PosterMetadataMutation) AppendRightsList(e []entity.Rights) {
	m.appendrights_list = append(m.appendrights_list, e...)
}

// AppendedRightsList returns the list of values that were appended to the "rights_list" field in this mutation.
func (m *PosterMetadataMutation) AppendedRightsList() ([]entity.Rights, bool) {
	if len(m.appendrights_list) == 0 {
		return nil, false
	}
	return m.appendrights_list, true
}

// ClearRightsList clears the value of the "rights_list" field.
func (m *PosterMetadataMutation) ClearRightsList() {
	m.rights_list = nil
	m.appendrights_list = nil
	m.clearedFields[postermetadata.FieldRightsList] = struct{}{}
}

// RightsListCleared returns if the "rights_list" field was cleared in this mutation.
func (m *PosterMetadataMutation) RightsListCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldRightsList]
	return ok
}

// ResetRightsList resets all changes to the "rights_list" field.
func (m *PosterMetadataMutation) ResetRightsList() {
	m.rights_list = nil
	m.appendrights_list = nil
	delete(m.clearedFields, postermetadata.FieldRightsList)
}

// SetFundingReferences sets the "funding_references" field.
func (m *PosterMetadataMutation) SetFundingReferences(e []entity.Funding) {
	m.funding_references = &e
	m.appendfunding_references = nil
}

// FundingReferences returns the value of the "funding_references" field in the mutation.
func (m *PosterMetadataMutation) FundingReferences() (r []entity.Funding, exists bool) {
	v := m.funding_references
	if v == nil {
		return
	}
	return *v, true
}

// OldFundingReferences returns the old "funding_references" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldFundingReferences(ctx context.Context) (v []entity.Funding, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFundingReferences is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFundingReferences requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFundingReferences: %w", err)
	}
	return oldValue.FundingReferences, nil
}

// AppendFundingReferences adds e to the "funding_references" field.
func (m *PosterMetadataMutation) AppendFundingReferences(e []entity.Funding) {
	m.appendfunding_references = append(m.appendfunding_references, e...)
}

// AppendedFundingReferences returns the list of values that were appended to the "funding_references" field in this mutation.
func (m *PosterMetadataMutation) AppendedFundingReferences() ([]entity.Funding, bool) {
	if len(m.appendfunding_references) == 0 {
		return nil, false
	}
	return m.appendfunding_references, true
}

// ClearFundingReferences clears the value of the "funding_references" field.
func (m *PosterMetadataMutation) ClearFundingReferences() {
	m.funding_references = nil
	m.appendfunding_references = nil
	m.clearedFields[postermetadata.FieldFundingReferences] = struct{}{}
}

// FundingReferencesCleared returns if the "funding_references" field was cleared in this mutation.
func (m *PosterMetadataMutation) FundingReferencesCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldFundingReferences]
	return ok
}

// ResetFundingReferences resets all changes to the "funding_references" field.
func (m *PosterMetadataMutation) ResetFundingReferences() {
	m.funding_references = nil
	m.appendfunding_references = nil
	delete(m.clearedFields, postermetadata.FieldFundingReferences)
}

// SetEthicsApproval sets the "ethics_approval" field.
func (m *PosterMetadataMutation) SetEthicsApproval(s []string) {
	m.ethics_approval = &s
	m.appendethics_approval = nil
}

// EthicsApproval returns the value of the "ethics_approval" field in the mutation.
func (m *PosterMetadataMutation) EthicsApproval() (r []string, exists bool) {
	v := m.ethics_approval
	if v == nil {
		return
	}
	return *v, true
}

// OldEthicsApproval returns the old "ethics_approval" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldEthicsApproval(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEthicsApproval is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEthicsApproval requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEthicsApproval: %w", err)
	}
	return oldValue.EthicsApproval, nil
}

// AppendEthicsApproval adds s to the "ethics_approval" field.
func (m *PosterMetadataMutation) AppendEthicsApproval(s []string) {
	m.appendethics_approval = append(m.appendethics_approval, s...)
}

// AppendedEthicsApproval returns the list of values that were appended to the "ethics_approval" field in this mutation.
func (m *PosterMetadataMutation) AppendedEthicsApproval() ([]string, bool) {
	if len(m.appendethics_approval) == 0 {
		return nil, false
	}
	return m.appendethics_approval, true
}

// ClearEthicsApproval clears the value of the "ethics_approval" field.
func (m *PosterMetadataMutation) ClearEthicsApproval() {
	m.ethics_approval = nil
	m.appendethics_approval = nil
	m.clearedFields[postermetadata.FieldEthicsApproval] = struct{}{}
}

// EthicsApprovalCleared returns if the "ethics_approval" field was cleared in this mutation.
func (m *PosterMetadataMutation) EthicsApprovalCleared() bool {
	_, ok := m.clearedFields[postermetadata.FieldEthicsApproval]
	return ok
}

// ResetEthicsApproval resets all changes to the "ethics_approval" field.
func (m *PosterMetadataMutation) ResetEthicsApproval() {
	m.ethics_approval = nil
	m.appendethics_approval = nil
	delete(m.clearedFields, postermetadata.FieldEthicsApproval)
}

// SetCreatedAt sets the "created_at" field.
func (m *PosterMetadataMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PosterMetadataMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PosterMetadataMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *PosterMetadataMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *PosterMetadataMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the PosterMetadata entity.
// If the PosterMetadata object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PosterMetadataMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *PosterMetadataMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearPoster clears the "poster" edge to the Poster entity.
func (m *PosterMetadataMutation) ClearPoster() {
	m.clearedposter = true
	m.clearedFields[postermetadata.FieldPosterID] = struct{}{}
}

// PosterCleared reports if the "poster" edge to the Poster entity was cleared.
func (m *PosterMetadataMutation) PosterCleared() bool {
	return m.clearedposter
}

// PosterIDs returns the "poster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PosterID instead. It exists only for internal usage by the builders.
func (m *PosterMetadataMutation) PosterIDs() (ids []uuid.UUID) {
	if id := m.poster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPoster resets all changes to the "poster" edge.
func (m *PosterMetadataMutation) ResetPoster() {
	m.poster = nil
	m.clearedposter = false
}

// Where appends a list predicates to the PosterMetadataMutation builder.
func (m *PosterMetadataMutation) Where(ps ...predicate.PosterMetadata) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PosterMetadataMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PosterMetadataMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PosterMetadata, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PosterMetadataMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PosterMetadataMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PosterMetadata).
func (m *PosterMetadataMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PosterMetadataMutation) Fields() []string {
	fields := make([]string, 0, 36)
	if m.poster != nil {
		fields = append(fields, postermetadata.FieldPosterID)
	}
	if m.creators != nil {
		fields = append(fields, postermetadata.FieldCreators)
	}
	if m.titles != nil {
		fields = append(fields, postermetadata.FieldTitles)
	}
	if m.descriptions != nil {
		fields = append(fields, postermetadata.FieldDescriptions)
	}
	if m.image_caption != nil {
		fields = append(fields, postermetadata.FieldImageCaption)
	}
	if m.poster_content != nil {
		fields = append(fields, postermetadata.FieldPosterContent)
	}
	if m.table_caption != nil {
		fields = append(fields, postermetadata.FieldTableCaption)
	}
	if m.conference_name != nil {
		fields = append(fields, postermetadata.FieldConferenceName)
	}
	if m.conference_location != nil {
		fields = append(fields, postermetadata.FieldConferenceLocation)
	}
	if m.conference_uri != nil {
		fields = append(fields, postermetadata.FieldConferenceURI)
	}
	if m.conference_identifier != nil {
		fields = append(fields, postermetadata.FieldConferenceIdentifier)
	}
	if m.conference_identifier_type != nil {
		fields = append(fields, postermetadata.FieldConferenceIdentifierType)
	}
	if m.conference_schema_uri != nil {
		fields = append(fields, postermetadata.FieldConferenceSchemaURI)
	}
	if m.conference_start_date != nil {
		fields = append(fields, postermetadata.FieldConferenceStartDate)
	}
	if m.conference_end_date != nil {
		fields = append(fields, postermetadata.FieldConferenceEndDate)
	}
	if m.conference_acronym != nil {
		fields = append(fields, postermetadata.FieldConferenceAcronym)
	}
	if m.conference_series != nil {
		fields = append(fields, postermetadata.FieldConferenceSeries)
	}
	if m.domain != nil {
		fields = append(fields, postermetadata.FieldDomain)
	}
	if m.doi != nil {
		fields = append(fields, postermetadata.FieldDoi)
	}
	if m.identifiers != nil {
		fields = append(fields, postermetadata.FieldIdentifiers)
	}
	if m.alternate_identifiers != nil {
		fields = append(fields, postermetadata.FieldAlternateIdentifiers)
	}
	if m.publisher != nil {
		fields = append(fields, postermetadata.FieldPublisher)
	}
	if m.publication_year != nil {
		fields = append(fields, postermetadata.FieldPublicationYear)
	}
	if m.subjects != nil {
		fields = append(fields, postermetadata.FieldSubjects)
	}
	if m.dates != nil {
		fields = append(fields, postermetadata.FieldDates)
	}
	if m.language != nil {
		fields = append(fields, postermetadata.FieldLanguage)
	}
	if m.types != nil {
		fields = append(fields, postermetadata.FieldTypes)
	}
	if m.related_identifiers != nil {
		fields = append(fields, postermetadata.FieldRelatedIdentifiers)
	}
	if m.sizes != nil {
		fields = append(fields, postermetadata.FieldSizes)
	}
	if m.formats != nil {
		fields = append(fields, postermetadata.FieldFormats)
	}
	if m.version != nil {
		fields = append(fields, postermetadata.FieldVersion)
	}
	if m.rights_list != nil {
		fields = append(fields, postermetadata.FieldRightsList)
	}
	if m.funding_references != nil {
		fields = append(fields, postermetadata.FieldFundingReferences)
	}
	if m.ethics_approval != nil {
		fields = append(fields, postermetadata.FieldEthicsApproval)
	}
	if m.created_at != nil {
		fields = append(fields, postermetadata.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, postermetadata.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PosterMetadataMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case postermetadata.FieldPosterID:
		return m.PosterID()
	case postermetadata.FieldCreators:
		return m.Creators()
	case postermetadata.FieldTitles:
		return m.Titles()
	case postermetadata.FieldDescriptions:
		return m.Descriptions()
	case postermetadata.FieldImageCaption:
		return m.ImageCaption()
	case postermetadata.FieldPosterContent:
		return m.PosterContent()
	case postermetadata.FieldTableCaption:
		return m.TableCaption()
	case postermetadata.FieldConferenceName:
		return m.ConferenceName()
	case postermetadata.FieldConferenceLocation:
		return m.ConferenceLocation()
	case postermetadata.FieldConferenceURI:
		return m.ConferenceURI()
	case postermetadata.FieldConferenceIdentifier:
		return m.ConferenceIdentifier()
	case postermetadata.FieldConferenceIdentifierType:
		return m.ConferenceIdentifierType()
	case postermetadata.FieldConferenceSchemaURI:
		return m.ConferenceSchemaURI()
	case postermetadata.FieldConferenceStartDate:
		return m.ConferenceStartDate()
	case postermetadata.FieldConferenceEndDate:
		return m.ConferenceEndDate()
	case postermetadata.FieldConferenceAcronym:
		return m.ConferenceAcronym()
	case postermetadata.FieldConferenceSeries:
		return m.ConferenceSeries()
	case postermetadata.FieldDomain:
		return m.Domain()
	case postermetadata.FieldDoi:
		return m.Doi()
	case postermetadata.FieldIdentifiers:
		return m.Identifiers()
	case postermetadata.FieldAlternateIdentifiers:
		return m.AlternateIdentifiers()
	case postermetadata.FieldPublisher:
		return m.Publisher()
	case postermetadata.FieldPublicationYear:
		return m.PublicationYear()
	case postermetadata.FieldSubjects:
		return m.Subjects()
	case postermetadata.FieldDates:
		return m.Dates()
	case postermetadata.FieldLanguage:
		return m.Language()
	case postermetadata.FieldTypes:
		return m.Types()
	case postermetadata.FieldRelatedIdentifiers:
		return m.RelatedIdentifiers()
	case postermetadata.FieldSizes:
		return m.Sizes()
	case postermetadata.FieldFormats:
		return m.Formats()
	case postermetadata.FieldVersion:
		return m.Version()
	case postermetadata.FieldRightsList:
		return m.RightsList()
	case postermetadata.FieldFundingReferences:
		return m.FundingReferences()
	case postermetadata.FieldEthicsApproval:
		return m.EthicsApproval()
	case postermetadata.FieldCreatedAt:
		return m.CreatedAt()
	case postermetadata.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PosterMetadataMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case postermetadata.FieldPosterID:
		return m.OldPosterID(ctx)
	case postermetadata.FieldCreators:
		return m.OldCreators(ctx)
	case postermetadata.FieldTitles:
		return m.OldTitles(ctx)
	case postermetadata.FieldDescriptions:
		return m.OldDescriptions(ctx)
	case postermetadata.FieldImageCaption:
		return m.OldImageCaption(ctx)
	case postermetadata.FieldPosterContent:
		return m.OldPosterContent(ctx)
	case postermetadata.FieldTableCaption:
		return m.OldTableCaption(ctx)
	case postermetadata.FieldConferenceName:
		return m.OldConferenceName(ctx)
	case postermetadata.FieldConferenceLocation:
		return m.OldConferenceLocation(ctx)
	case postermetadata.FieldConferenceURI:
		return m.OldConferenceURI(ctx)
	case postermetadata.FieldConferenceIdentifier:
		return m.OldConferenceIdentifier(ctx)
	case postermetadata.FieldConferenceIdentifierType:
		return m.OldConferenceIdentifierType(ctx)
	case postermetadata.FieldConferenceSchemaURI:
		return m.OldConferenceSchemaURI(ctx)
	case postermetadata.FieldConferenceStartDate:
		return m.OldConferenceStartDate(ctx)
	case postermetadata.FieldConferenceEndDate:
		return m.OldConferenceEndDate(ctx)
	case postermetadata.FieldConferenceAcronym:
		return m.OldConferenceAcronym(ctx)
	case postermetadata.FieldConferenceSeries:
		return m.OldConferenceSeries(ctx)
	case postermetadata.FieldDomain:
		return m.OldDomain(ctx)
	case postermetadata.FieldDoi:
		return m.OldDoi(ctx)
	case postermetadata.FieldIdentifiers:
		return m.OldIdentifiers(ctx)
	case postermetadata.FieldAlternateIdentifiers:
		return m.OldAlternateIdentifiers(ctx)
	case postermetadata.FieldPublisher:
		return m.OldPublisher(ctx)
	case postermetadata.FieldPublicationYear:
		return m.OldPublicationYear(ctx)
	case postermetadata.FieldSubjects:
		return m.OldSubjects(ctx)
	case postermetadata.FieldDates:
		return m.OldDates(ctx)
	case postermetadata.FieldLanguage:
		return m.OldLanguage(ctx)
	case postermetadata.FieldTypes:
		return m.OldTypes(ctx)
	case postermetadata.FieldRelatedIdentifiers:
		return m.OldRelatedIdentifiers(ctx)
	case postermetadata.FieldSizes:
		return m.OldSizes(ctx)
	case postermetadata.FieldFormats:
		return m.OldFormats(ctx)
	case postermetadata.FieldVersion:
		return m.OldVersion(ctx)
	case postermetadata.FieldRightsList:
		return m.OldRightsList(ctx)
	case postermetadata.FieldFundingReferences:
		return m.OldFundingReferences(ctx)
	case postermetadata.FieldEthicsApproval:
		return m.OldEthicsApproval(ctx)
	case postermetadata.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case postermetadata.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PosterMetadata field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PosterMetadataMutation) SetField(name string, value ent.Value) error {
	switch name {
	case postermetadata.FieldPosterID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosterID(v)
		return nil
	case postermetadata.FieldCreators:
		v, ok := value.([]entity.Creator)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreators(v)
		return nil
	case postermetadata.FieldTitles:
		v, ok := value.([]entity.Title)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitles(v)
		return nil
	case postermetadata.FieldDescriptions:
		v, ok := value.([]entity.Description)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptions(v)
		return nil
	case postermetadata.FieldImageCaption:
		v, ok := value.([]entity.Caption)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetImageCaption(v)
		return nil
	case postermetadata.FieldPosterContent:
		v, ok := value.([]entity.ContentSection)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPosterContent(v)
		return nil
	case postermetadata.FieldTableCaption:
		v, ok := value.([]entity.Caption)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTableCaption(v)
		return nil
	case postermetadata.FieldConferenceName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceName(v)
		return nil
	case postermetadata.FieldConferenceLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceLocation(v)
		return nil
	case postermetadata.FieldConferenceURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceURI(v)
		return nil
	case postermetadata.FieldConferenceIdentifier:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceIdentifier(v)
		return nil
	case postermetadata.FieldConferenceIdentifierType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceIdentifierType(v)
		return nil
	case postermetadata.FieldConferenceSchemaURI:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceSchemaURI(v)
		return nil
	case postermetadata.FieldConferenceStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceStartDate(v)
		return nil
	case postermetadata.FieldConferenceEndDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceEndDate(v)
		return nil
	case postermetadata.FieldConferenceAcronym:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceAcronym(v)
		return nil
	case postermetadata.FieldConferenceSeries:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConferenceSeries(v)
		return nil
	case postermetadata.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case postermetadata.FieldDoi:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDoi(v)
		return nil
	case postermetadata.FieldIdentifiers:
		v, ok := value.([]entity.Identifier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIdentifiers(v)
		return nil
	case postermetadata.FieldAlternateIdentifiers:
		v, ok := value.([]entity.AlternateIdentifier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlternateIdentifiers(v)
		return nil
	case postermetadata.FieldPublisher:
		v, ok := value.([]entity.Publisher)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublisher(v)
		return nil
	case postermetadata.FieldPublicationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublicationYear(v)
		return nil
	case postermetadata.FieldSubjects:
		v, ok := value.([]entity.Subject)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjects(v)
		return nil
	case postermetadata.FieldDates:
		v, ok := value.([]entity.Date)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDates(v)
		return nil
	case postermetadata.FieldLanguage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguage(v)
		return nil
	case postermetadata.FieldTypes:
		v, ok := value.([]entity.ResourceType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTypes(v)
		return nil
	case postermetadata.FieldRelatedIdentifiers:
		v, ok := value.([]entity.RelatedIdentifier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelatedIdentifiers(v)
		return nil
	case postermetadata.FieldSizes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSizes(v)
		return nil
	case postermetadata.FieldFormats:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormats(v)
		return nil
	case postermetadata.FieldVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVersion(v)
		return nil
	case postermetadata.FieldRightsList:
		v, ok := value.([]entity.Rights)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRightsList(v)
		return nil
	case postermetadata.FieldFundingReferences:
		v, ok := value.([]entity.Funding)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFundingReferences(v)
		return nil
	case postermetadata.FieldEthicsApproval:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEthicsApproval(v)
		return nil
	case postermetadata.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case postermetadata.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PosterMetadata field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PosterMetadataMutation) AddedFields() []string {
	var fields []string
	if m.addpublication_year != nil {
		fields = append(fields, postermetadata.FieldPublicationYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PosterMetadataMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case postermetadata.FieldPublicationYear:
		return m.AddedPublicationYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PosterMetadataMutation) AddField(name string, value ent.Value) error {
	switch name {
	case postermetadata.FieldPublicationYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPublicationYear(v)
		return nil
	}
	return fmt.Errorf("unknown PosterMetadata numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PosterMetadataMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(postermetadata.FieldCreators) {
		fields = append(fields, postermetadata.FieldCreators)
	}
	if m.FieldCleared(postermetadata.FieldTitles) {
		fields = append(fields, postermetadata.FieldTitles)
	}
	if m.FieldCleared(postermetadata.FieldDescriptions) {
		fields = append(fields, postermetadata.FieldDescriptions)
	}
	if m.FieldCleared(postermetadata.FieldImageCaption) {
		fields = append(fields, postermetadata.FieldImageCaption)
	}
	if m.FieldCleared(postermetadata.FieldPosterContent) {
		fields = append(fields, postermetadata.FieldPosterContent)
	}
	if m.FieldCleared(postermetadata.FieldTableCaption) {
		fields = append(fields, postermetadata.FieldTableCaption)
	}
	if m.FieldCleared(postermetadata.FieldConferenceName) {
		fields = append(fields, postermetadata.FieldConferenceName)
	}
	if m.FieldCleared(postermetadata.FieldConferenceLocation) {
		fields = append(fields, postermetadata.FieldConferenceLocation)
	}
	if m.FieldCleared(postermetadata.FieldConferenceURI) {
		fields = append(fields, postermetadata.FieldConferenceURI)
	}
	if m.FieldCleared(postermetadata.FieldConferenceIdentifier) {
		fields = append(fields, postermetadata.FieldConferenceIdentifier)
	}
	if m.FieldCleared(postermetadata.FieldConferenceIdentifierType) {
		fields = append(fields, postermetadata.FieldConferenceIdentifierType)
	}
	if m.FieldCleared(postermetadata.FieldConferenceSchemaURI) {
		fields = append(fields, postermetadata.FieldConferenceSchemaURI)
	}
	if m.FieldCleared(postermetadata.FieldConferenceStartDate) {
		fields = append(fields, postermetadata.FieldConferenceStartDate)
	}
	if m.FieldCleared(postermetadata.FieldConferenceEndDate) {
		fields = append(fields, postermetadata.FieldConferenceEndDate)
	}
	if m.FieldCleared(postermetadata.FieldConferenceAcronym) {
		fields = append(fields, postermetadata.FieldConferenceAcronym)
	}
	if m.FieldCleared(postermetadata.FieldConferenceSeries) {
		fields = append(fields, postermetadata.FieldConferenceSeries)
	}
	if m.FieldCleared(postermetadata.FieldDomain) {
		fields = append(fields, postermetadata.FieldDomain)
	}
	if m.FieldCleared(postermetadata.FieldDoi) {
		fields = append(fields, postermetadata.FieldDoi)
	}
	if m.FieldCleared(postermetadata.FieldIdentifiers) {
		fields = append(fields, postermetadata.FieldIdentifiers)
	}
	if m.FieldCleared(postermetadata.FieldAlternateIdentifiers) {
		fields = append(fields, postermetadata.FieldAlternateIdentifiers)
	}
	if m.FieldCleared(postermetadata.FieldPublisher) {
		fields = append(fields, postermetadata.FieldPublisher)
	}
	if m.FieldCleared(postermetadata.FieldPublicationYear) {
		fields = append(fields, postermetadata.FieldPublicationYear)
	}
	if m.FieldCleared(postermetadata.FieldSubjects) {
		fields = append(fields, postermetadata.FieldSubjects)
	}
	if m.FieldCleared(postermetadata.FieldDates) {
		fields = append(fields, postermetadata.FieldDates)
	}
	if m.FieldCleared(postermetadata.FieldLanguage) {
		fields = append(fields, postermetadata.FieldLanguage)
	}
	if m.FieldCleared(postermetadata.FieldTypes) {
		fields = append(fields, postermetadata.FieldTypes)
	}
	if m.FieldCleared(postermetadata.FieldRelatedIdentifiers) {
		fields = append(fields, postermetadata.FieldRelatedIdentifiers)
	}
	if m.FieldCleared(postermetadata.FieldSizes) {
		fields = append(fields, postermetadata.FieldSizes)
	}
	if m.FieldCleared(postermetadata.FieldFormats) {
		fields = append(fields, postermetadata.FieldFormats)
	}
	if m.FieldCleared(postermetadata.FieldVersion) {
		fields = append(fields, postermetadata.FieldVersion)
	}
	if m.FieldCleared(postermetadata.FieldRightsList) {
		fields = append(fields, postermetadata.FieldRightsList)
	}
	if m.FieldCleared(postermetadata.FieldFundingReferences) {
		fields = append(fields, postermetadata.FieldFundingReferences)
	}
	if m.FieldCleared(postermetadata.FieldEthicsApproval) {
		fields = append(fields, postermetadata.FieldEthicsApproval)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PosterMetadataMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PosterMetadataMutation) ClearField(name string) error {
	switch name {
	case postermetadata.FieldCreators:
		m.ClearCreators()
		return nil
	case postermetadata.FieldTitles:
		m.ClearTitles()
		return nil
	case postermetadata.FieldDescriptions:
		m.ClearDescriptions()
		return nil
	case postermetadata.FieldImageCaption:
		m.ClearImageCaption()
		return nil
	case postermetadata.FieldPosterContent:
		m.ClearPosterContent()
		return nil
	case postermetadata.FieldTableCaption:
		m.ClearTableCaption()
		return nil
	case postermetadata.FieldConferenceName:
		m.ClearConferenceName()
		return nil
	case postermetadata.FieldConferenceLocation:
		m.ClearConferenceLocation()
		return nil
	case postermetadata.FieldConferenceURI:
		m.ClearConferenceURI()
		return nil
	case postermetadata.FieldConferenceIdentifier:
		m.ClearConferenceIdentifier()
		return nil
	case postermetadata.FieldConferenceIdentifierType:
		m.ClearConferenceIdentifierType()
		return nil
	case postermetadata.FieldConferenceSchemaURI:
		m.ClearConferenceSchemaURI()
		return nil
	case postermetadata.FieldConferenceStartDate:
		m.ClearConferenceStartDate()
		return nil
	case postermetadata.FieldConferenceEndDate:
		m.ClearConferenceEndDate()
		return nil
	case postermetadata.FieldConferenceAcronym:
		m.ClearConferenceAcronym()
		return nil
	case postermetadata.FieldConferenceSeries:
		m.ClearConferenceSeries()
		return nil
	case postermetadata.FieldDomain:
		m.ClearDomain()
		return nil
	case postermetadata.FieldDoi:
		m.ClearDoi()
		return nil
	case postermetadata.FieldIdentifiers:
		m.ClearIdentifiers()
		return nil
	case postermetadata.FieldAlternateIdentifiers:
		m.ClearAlternateIdentifiers()
		return nil
	case postermetadata.FieldPublisher:
		m.ClearPublisher()
		return nil
	case postermetadata.FieldPublicationYear:
		m.ClearPublicationYear()
		return nil
	case postermetadata.FieldSubjects:
		m.ClearSubjects()
		return nil
	case postermetadata.FieldDates:
		m.ClearDates()
		return nil
	case postermetadata.FieldLanguage:
		m.ClearLanguage()
		return nil
	case postermetadata.FieldTypes:
		m.ClearTypes()
		return nil
	case postermetadata.FieldRelatedIdentifiers:
		m.ClearRelatedIdentifiers()
		return nil
	case postermetadata.FieldSizes:
		m.ClearSizes()
		return nil
	case postermetadata.FieldFormats:
		m.ClearFormats()
		return nil
	case postermetadata.FieldVersion:
		m.ClearVersion()
		return nil
	case postermetadata.FieldRightsList:
		m.ClearRightsList()
		return nil
	case postermetadata.FieldFundingReferences:
		m.ClearFundingReferences()
		return nil
	case postermetadata.FieldEthicsApproval:
		m.ClearEthicsApproval()
		return nil
	}
	return fmt.Errorf("unknown PosterMetadata nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PosterMetadataMutation) ResetField(name string) error {
	switch name {
	case postermetadata.FieldPosterID:
		m.ResetPosterID()
		return nil
	case postermetadata.FieldCreators:
		m.ResetCreators()
		return nil
	case postermetadata.FieldTitles:
		m.ResetTitles()
		return nil
	case postermetadata.FieldDescriptions:
		m.ResetDescriptions()
		return nil
	case postermetadata.FieldImageCaption:
		m.ResetImageCaption()
		return nil
	case postermetadata.FieldPosterContent:
		m.ResetPosterContent()
		return nil
	case postermetadata.FieldTableCaption:
		m.ResetTableCaption()
		return nil
	case postermetadata.FieldConferenceName:
		m.ResetConferenceName()
		return nil
	case postermetadata.FieldConferenceLocation:
		m.ResetConferenceLocation()
		return nil
	case postermetadata.FieldConferenceURI:
		m.ResetConferenceURI()
		return nil
	case postermetadata.FieldConferenceIdentifier:
		m.ResetConferenceIdentifier()
		return nil
	case postermetadata.FieldConferenceIdentifierType:
		m.ResetConferenceIdentifierType()
		return nil
	case postermetadata.FieldConferenceSchemaURI:
		m.ResetConferenceSchemaURI()
		return nil
	case postermetadata.FieldConferenceStartDate:
		m.ResetConferenceStartDate()
		return nil
	case postermetadata.FieldConferenceEndDate:
		m.ResetConferenceEndDate()
		return nil
	case postermetadata.FieldConferenceAcronym:
		m.ResetConferenceAcronym()
		return nil
	case postermetadata.FieldConferenceSeries:
		m.ResetConferenceSeries()
		return nil
	case postermetadata.FieldDomain:
		m.ResetDomain()
		return nil
	case postermetadata.FieldDoi:
		m.ResetDoi()
		return nil
	case postermetadata.FieldIdentifiers:
		m.ResetIdentifiers()
		return nil
	case postermetadata.FieldAlternateIdentifiers:
		m.ResetAlternateIdentifiers()
		return nil
	case postermetadata.FieldPublisher:
		m.ResetPublisher()
		return nil
	case postermetadata.FieldPublicationYear:
		m.ResetPublicationYear()
		return nil
	case postermetadata.FieldSubjects:
		m.ResetSubjects()
		return nil
	case postermetadata.FieldDates:
		m.ResetDates()
		return nil
	case postermetadata.FieldLanguage:
		m.ResetLanguage()
		return nil
	case postermetadata.FieldTypes:
		m.ResetTypes()
		return nil
	case postermetadata.FieldRelatedIdentifiers:
		m.ResetRelatedIdentifiers()
		return nil
	case postermetadata.FieldSizes:
		m.ResetSizes()
		return nil
	case postermetadata.FieldFormats:
		m.ResetFormats()
		return nil
	case postermetadata.FieldVersion:
		m.ResetVersion()
		return nil
	case postermetadata.FieldRightsList:
		m.ResetRightsList()
		return nil
	case postermetadata.FieldFundingReferences:
		m.ResetFundingReferences()
		return nil
	case postermetadata.FieldEthicsApproval:
		m.ResetEthicsApproval()
		return nil
	case postermetadata.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case postermetadata.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown PosterMetadata field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PosterMetadataMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.poster != nil {
		edges = append(edges, postermetadata.EdgePoster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PosterMetadataMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case postermetadata.EdgePoster:
		if id := m.poster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PosterMetadataMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PosterMetadataMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PosterMetadataMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedposter {
		edges = append(edges, postermetadata.EdgePoster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PosterMetadataMutation) EdgeCleared(name string) bool {
	switch name {
	case postermetadata.EdgePoster:
		return m.clearedposter
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PosterMetadataMutation) ClearEdge(name string) error {
	switch name {
	case postermetadata.EdgePoster:
		m.ClearPoster()
		return nil
	}
	return fmt.Errorf("unknown PosterMetadata unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PosterMetadataMutation) ResetEdge(name string) error {
	switch name {
	case postermetadata.EdgePoster:
		m.ResetPoster()
		return nil
	}
	return fmt.Errorf("unknown PosterMetadata edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                  Op
	typ                 string
	id                  *uuid.UUID
	email               *string
	name                *string
	created_at          *time.Time
	updated_at          *time.Time
	clearedFields       map[string]struct{}
	posters             map[uuid.UUID]struct{}
	removedposters      map[uuid.UUID]struct{}
	clearedposters      bool
	jobs                map[uuid.UUID]struct{}
	removedjobs         map[uuid.UUID]struct{}
	clearedjobs         bool
	zenodo_token        *uuid.UUID
	clearedzenodo_token bool
	done                bool
	oldValue            func(context.Context) (*User, error)
	predicates          []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uuid.UUID) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetName sets the "name" field.
func (m *UserMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *UserMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ClearName clears the value of the "name" field.
func (m *UserMutation) ClearName() {
	m.name = nil
	m.clearedFields[user.FieldName] = struct{}{}
}

// NameCleared returns if the "name" field was cleared in this mutation.
func (m *UserMutation) NameCleared() bool {
	_, ok := m.clearedFields[user.FieldName]
	return ok
}

// ResetName resets all changes to the "name" field.
func (m *UserMutation) ResetName() {
	m.name = nil
	delete(m.clearedFields, user.FieldName)
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddPosterIDs adds the "posters" edge to the Poster entity by ids.
func (m *UserMutation) AddPosterIDs(ids ...uuid.UUID) {
	if m.posters == nil {
		m.posters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.posters[ids[i]] = struct{}{}
	}
}

// ClearPosters clears the "posters" edge to the Poster entity.
func (m *UserMutation) ClearPosters() {
	m.clearedposters = true
}

// PostersCleared reports if the "posters" edge to the Poster entity was cleared.
func (m *UserMutation) PostersCleared() bool {
	return m.clearedposters
}

// RemovePosterIDs removes the "posters" edge to the Poster entity by IDs.
func (m *UserMutation) RemovePosterIDs(ids ...uuid.UUID) {
	if m.removedposters == nil {
		m.removedposters = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.posters, ids[i])
		m.removedposters[ids[i]] = struct{}{}
	}
}

// RemovedPosters returns the removed IDs of the "posters" edge to the Poster entity.
func (m *UserMutation) RemovedPostersIDs() (ids []uuid.UUID) {
	for id := range m.removedposters {
		ids = append(ids, id)
	}
	return
}

// PostersIDs returns the "posters" edge IDs in the mutation.
func (m *UserMutation) PostersIDs() (ids []uuid.UUID) {
	for id := range m.posters {
		ids = append(ids, id)
	}
	return
}

// ResetPosters resets all changes to the "posters" edge.
func (m *UserMutation) ResetPosters() {
	m.posters = nil
	m.clearedposters = false
	m.removedposters = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *UserMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *UserMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *UserMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *UserMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *UserMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *UserMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *UserMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// SetZenodoTokenID sets the "zenodo_token" edge to the ZenodoToken entity by id.
func (m *UserMutation) SetZenodoTokenID(id uuid.UUID) {
	m.zenodo_token = &id
}

// ClearZenodoToken clears the "zenodo_token" edge to the ZenodoToken entity.
func (m *UserMutation) ClearZenodoToken() {
	m.clearedzenodo_token = true
}

// ZenodoTokenCleared reports if the "zenodo_token" edge to the ZenodoToken entity was cleared.
func (m *UserMutation) ZenodoTokenCleared() bool {
	return m.clearedzenodo_token
}

// ZenodoTokenID returns the "zenodo_token" edge ID in the mutation.
func (m *UserMutation) ZenodoTokenID() (id uuid.UUID, exists bool) {
	if m.zenodo_token != nil {
		return *m.zenodo_token, true
	}
	return
}

// ZenodoTokenIDs returns the "zenodo_token" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ZenodoTokenID instead. It exists only for internal usage by the builders.
func (m *UserMutation) ZenodoTokenIDs() (ids []uuid.UUID) {
	if id := m.zenodo_token; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetZenodoToken resets all changes to the "zenodo_token" edge.
func (m *UserMutation) ResetZenodoToken() {
	m.zenodo_token = nil
	m.clearedzenodo_token = false
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.name != nil {
		fields = append(fields, user.FieldName)
	}
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldEmail:
		return m.Email()
	case user.FieldName:
		return m.Name()
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldName:
		return m.OldName(ctx)
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldName) {
		fields = append(fields, user.FieldName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldName:
		m.ClearName()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldName:
		m.ResetName()
		return nil
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.posters != nil {
		edges = append(edges, user.EdgePosters)
	}
	if m.jobs != nil {
		edges = append(edges, user.EdgeJobs)
	}
	if m.zenodo_token != nil {
		edges = append(edges, user.EdgeZenodoToken)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePosters:
		ids := make([]ent.Value, 0, len(m.posters))
		for id := range m.posters {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeZenodoToken:
		if id := m.zenodo_token; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removedposters != nil {
		edges = append(edges, user.EdgePosters)
	}
	if m.removedjobs != nil {
		edges = append(edges, user.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case user.EdgePosters:
		ids := make([]ent.Value, 0, len(m.removedposters))
		for id := range m.removedposters {
			ids = append(ids, id)
		}
		return ids
	case user.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedposters {
		edges = append(edges, user.EdgePosters)
	}
	if m.clearedjobs {
		edges = append(edges, user.EdgeJobs)
	}
	if m.clearedzenodo_token {
		edges = append(edges, user.EdgeZenodoToken)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	switch name {
	case user.EdgePosters:
		return m.clearedposters
	case user.EdgeJobs:
		return m.clearedjobs
	case user.EdgeZenodoToken:
		return m.clearedzenodo_token
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	switch name {
	case user.EdgeZenodoToken:
		m.ClearZenodoToken()
		return nil
	}
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	switch name {
	case user.EdgePosters:
		m.ResetPosters()
		return nil
	case user.EdgeJobs:
		m.ResetJobs()
		return nil
	case user.EdgeZenodoToken:
		m.ResetZenodoToken()
		return nil
	}
	return fmt.Errorf("unknown User edge %s", name)
}

// ZenodoTokenMutation represents an operation that mutates the ZenodoToken nodes in the graph.
type ZenodoTokenMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	access_token  *string
	refresh_token *string
	expires_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	user          *uuid.UUID
	cleareduser   bool
	done          bool
	oldValue      func(context.Context) (*ZenodoToken, error)
	predicates    []predicate.ZenodoToken
}

var _ ent.Mutation = (*ZenodoTokenMutation)(nil)

// zenodotokenOption allows management of the mutation configuration using functional options.
type zenodotokenOption func(*ZenodoTokenMutation)

// newZenodoTokenMutation creates new mutation for the ZenodoToken entity.
func newZenodoTokenMutation(c config, op Op, opts ...zenodotokenOption) *ZenodoTokenMutation {
	m := &ZenodoTokenMutation{
		config:        c,
		op:            op,
		typ:           TypeZenodoToken,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withZenodoTokenID sets the ID field of the mutation.
func withZenodoTokenID(id uuid.UUID) zenodotokenOption {
	return func(m *ZenodoTokenMutation) {
		var (
			err   error
			once  sync.Once
			value *ZenodoToken
		)
		m.oldValue = func(ctx context.Context) (*ZenodoToken, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ZenodoToken.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withZenodoToken sets the old ZenodoToken of the mutation.
func withZenodoToken(node *ZenodoToken) zenodotokenOption {
	return func(m *ZenodoTokenMutation) {
		m.oldValue = func(context.Context) (*ZenodoToken, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ZenodoTokenMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ZenodoTokenMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ZenodoToken entities.
func (m *ZenodoTokenMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ZenodoTokenMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ZenodoTokenMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ZenodoToken.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *ZenodoTokenMutation) SetUserID(u uuid.UUID) {
	m.user = &u
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *ZenodoTokenMutation) UserID() (r uuid.UUID, exists bool) {
	v := m.user
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the ZenodoToken entity.
// If the ZenodoToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZenodoTokenMutation) OldUserID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *ZenodoTokenMutation) ResetUserID() {
	m.user = nil
}

// SetAccessToken sets the "access_token" field.
func (m *ZenodoTokenMutation) SetAccessToken(s string) {
	m.access_token = &s
}

// AccessToken returns the value of the "access_token" field in the mutation.
func (m *ZenodoTokenMutation) AccessToken() (r string, exists bool) {
	v := m.access_token
	if v == nil {
		return
	}
	return *v, true
}

// OldAccessToken returns the old "access_token" field's value of the ZenodoToken entity.
// If the ZenodoToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZenodoTokenMutation) OldAccessToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccessToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccessToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccessToken: %w", err)
	}
	return oldValue.AccessToken, nil
}

// ResetAccessToken resets all changes to the "access_token" field.
func (m *ZenodoTokenMutation) ResetAccessToken() {
	m.access_token = nil
}

// SetRefreshToken sets the "refresh_token" field.
func (m *ZenodoTokenMutation) SetRefreshToken(s string) {
	m.refresh_token = &s
}

// RefreshToken returns the value of the "refresh_token" field in the mutation.
func (m *ZenodoTokenMutation) RefreshToken() (r string, exists bool) {
	v := m.refresh_token
	if v == nil {
		return
	}
	return *v, true
}

// OldRefreshToken returns the old "refresh_token" field's value of the ZenodoToken entity.
// If the ZenodoToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZenodoTokenMutation) OldRefreshToken(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRefreshToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRefreshToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRefreshToken: %w", err)
	}
	return oldValue.RefreshToken, nil
}

// ResetRefreshToken resets all changes to the "refresh_token" field.
func (m *ZenodoTokenMutation) ResetRefreshToken() {
	m.refresh_token = nil
}

// SetExpiresAt sets the "expires_at" field.
func (m *ZenodoTokenMutation) SetExpiresAt(t time.Time) {
	m.expires_at = &t
}

// ExpiresAt returns the value of the "expires_at" field in the mutation.
func (m *ZenodoTokenMutation) ExpiresAt() (r time.Time, exists bool) {
	v := m.expires_at
	if v == nil {
		return
	}
	return *v, true
}

// OldExpiresAt returns the old "expires_at" field's value of the ZenodoToken entity.
// If the ZenodoToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZenodoTokenMutation) OldExpiresAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExpiresAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExpiresAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExpiresAt: %w", err)
	}
	return oldValue.ExpiresAt, nil
}

// ResetExpiresAt resets all changes to the "expires_at" field.
func (m *ZenodoTokenMutation) ResetExpiresAt() {
	m.expires_at = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ZenodoTokenMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ZenodoTokenMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ZenodoToken entity.
// If the ZenodoToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZenodoTokenMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ZenodoTokenMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ZenodoTokenMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ZenodoTokenMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ZenodoToken entity.
// If the ZenodoToken object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ZenodoTokenMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ZenodoTokenMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearUser clears the "user" edge to the User entity.
func (m *ZenodoTokenMutation) ClearUser() {
	m.cleareduser = true
	m.clearedFields[zenodotoken.FieldUserID] = struct{}{}
}

// UserCleared reports if the "user" edge to the User entity was cleared.
func (m *ZenodoTokenMutation) UserCleared() bool {
	return m.cleareduser
}

// UserIDs returns the "user" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// UserID instead. It exists only for internal usage by the builders.
func (m *ZenodoTokenMutation) UserIDs() (ids []uuid.UUID) {
	if id := m.user; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetUser resets all changes to the "user" edge.
func (m *ZenodoTokenMutation) ResetUser() {
	m.user = nil
	m.cleareduser = false
}

// Where appends a list predicates to the ZenodoTokenMutation builder.
func (m *ZenodoTokenMutation) Where(ps ...predicate.ZenodoToken) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ZenodoTokenMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ZenodoTokenMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ZenodoToken, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ZenodoTokenMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ZenodoTokenMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ZenodoToken).
func (m *ZenodoTokenMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ZenodoTokenMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.user != nil {
		fields = append(fields, zenodotoken.FieldUserID)
	}
	if m.access_token != nil {
		fields = append(fields, zenodotoken.FieldAccessToken)
	}
	if m.refresh_token != nil {
		fields = append(fields, zenodotoken.FieldRefreshToken)
	}
	if m.expires_at != nil {
		fields = append(fields, zenodotoken.FieldExpiresAt)
	}
	if m.created_at != nil {
		fields = append(fields, zenodotoken.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, zenodotoken.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ZenodoTokenMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case zenodotoken.FieldUserID:
		return m.UserID()
	case zenodotoken.FieldAccessToken:
		return m.AccessToken()
	case zenodotoken.FieldRefreshToken:
		return m.RefreshToken()
	case zenodotoken.FieldExpiresAt:
		return m.ExpiresAt()
	case zenodotoken.FieldCreatedAt:
		return m.CreatedAt()
	case zenodotoken.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ZenodoTokenMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case zenodotoken.FieldUserID:
		return m.OldUserID(ctx)
	case zenodotoken.FieldAccessToken:
		return m.OldAccessToken(ctx)
	case zenodotoken.FieldRefreshToken:
		return m.OldRefreshToken(ctx)
	case zenodotoken.FieldExpiresAt:
		return m.OldExpiresAt(ctx)
	case zenodotoken.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case zenodotoken.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ZenodoToken field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZenodoTokenMutation) SetField(name string, value ent.Value) error {
	switch name {
	case zenodotoken.FieldUserID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case zenodotoken.FieldAccessToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccessToken(v)
		return nil
	case zenodotoken.FieldRefreshToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRefreshToken(v)
		return nil
	case zenodotoken.FieldExpiresAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExpiresAt(v)
		return nil
	case zenodotoken.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case zenodotoken.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ZenodoToken field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ZenodoTokenMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ZenodoTokenMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ZenodoTokenMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown ZenodoToken numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ZenodoTokenMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ZenodoTokenMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ZenodoTokenMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ZenodoToken nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ZenodoTokenMutation) ResetField(name string) error {
	switch name {
	case zenodotoken.FieldUserID:
		m.ResetUserID()
		return nil
	case zenodotoken.FieldAccessToken:
		m.ResetAccessToken()
		return nil
	case zenodotoken.FieldRefreshToken:
		m.ResetRefreshToken()
		return nil
	case zenodotoken.FieldExpiresAt:
		m.ResetExpiresAt()
		return nil
	case zenodotoken.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case zenodotoken.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ZenodoToken field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ZenodoTokenMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.user != nil {
		edges = append(edges, zenodotoken.EdgeUser)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ZenodoTokenMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case zenodotoken.EdgeUser:
		if id := m.user; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ZenodoTokenMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ZenodoTokenMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ZenodoTokenMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cleareduser {
		edges = append(edges, zenodotoken.EdgeUser)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ZenodoTokenMutation) EdgeCleared(name string) bool {
	switch name {
	case zenodotoken.EdgeUser:
		return m.cleareduser
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ZenodoTokenMutation) ClearEdge(name string) error {
	switch name {
	case zenodotoken.EdgeUser:
		m.ClearUser()
		return nil
	}
	return fmt.Errorf("unknown ZenodoToken unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ZenodoTokenMutation) ResetEdge(name string) error {
	switch name {
	case zenodotoken.EdgeUser:
		m.ResetUser()
		return nil
	}
	return fmt.Errorf("unknown ZenodoToken edge %s", name)
}
