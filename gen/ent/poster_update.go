// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/posters-science/poster-tracker/gen/ent/extractionjob"
	"github.com/posters-science/poster-tracker/gen/ent/poster"
	"github.com/posters-science/poster-tracker/gen/ent/postermetadata"
	"github.com/posters-science/poster-tracker/gen/ent/predicate"
	"github.com/posters-science/poster-tracker/gen/ent/user"
)

// PosterUpdate is the builder for updating Poster entities.
type PosterUpdate struct {
	config
	hooks    []Hook
	mutation *PosterMutation
}

// Where appends a list predicates to the PosterUpdate builder.
func (_u *PosterUpdate) Where(ps ...predicate.Poster) *PosterUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PosterUpdate) SetUserID(v uuid.UUID) *PosterUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PosterUpdate) SetNillableUserID(v *uuid.UUID) *PosterUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PosterUpdate) SetTitle(v string) *PosterUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PosterUpdate) SetNillableTitle(v *string) *PosterUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PosterUpdate) SetDescription(v string) *PosterUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PosterUpdate) SetNillableDescription(v *string) *PosterUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PosterUpdate) SetStatus(v string) *PosterUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PosterUpdate) SetNillableStatus(v *string) *PosterUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *PosterUpdate) SetImageURL(v string) *PosterUpdate {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *PosterUpdate) SetNillableImageURL(v *string) *PosterUpdate {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *PosterUpdate) ClearImageURL() *PosterUpdate {
	_u.mutation.ClearImageURL()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PosterUpdate) SetCreatedAt(v time.Time) *PosterUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PosterUpdate) SetNillableCreatedAt(v *time.Time) *PosterUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PosterUpdate) SetUpdatedAt(v time.Time) *PosterUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *PosterUpdate) SetPublishedAt(v time.Time) *PosterUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *PosterUpdate) SetNillablePublishedAt(v *time.Time) *PosterUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *PosterUpdate) ClearPublishedAt() *PosterUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PosterUpdate) SetUser(v *User) *PosterUpdate {
	return _u.SetUserID(v.ID)
}

// SetMetadataID sets the "metadata" edge to the PosterMetadata entity by ID.
func (_u *PosterUpdate) SetMetadataID(id uuid.UUID) *PosterUpdate {
	_u.mutation.SetMetadataID(id)
	return _u
}

// SetNillableMetadataID sets the "metadata" edge to the PosterMetadata entity by ID if the given value is not nil.
func (_u *PosterUpdate) SetNillableMetadataID(id *uuid.UUID) *PosterUpdate {
	if id != nil {
		_u = _u.SetMetadataID(*id)
	}
	return _u
}

// SetMetadata sets the "metadata" edge to the PosterMetadata entity.
func (_u *PosterUpdate) SetMetadata(v *PosterMetadata) *PosterUpdate {
	return _u.SetMetadataID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *PosterUpdate) AddJobIDs(ids ...uuid.UUID) *PosterUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *PosterUpdate) AddJobs(v ...*ExtractionJob) *PosterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PosterMutation object of the builder.
func (_u *PosterUpdate) Mutation() *PosterMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PosterUpdate) ClearUser() *PosterUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearMetadata clears the "metadata" edge to the PosterMetadata entity.
func (_u *PosterUpdate) ClearMetadata() *PosterUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *PosterUpdate) ClearJobs() *PosterUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *PosterUpdate) RemoveJobIDs(ids ...uuid.UUID) *PosterUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *PosterUpdate) RemoveJobs(v ...*ExtractionJob) *PosterUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PosterUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PosterUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PosterUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PosterUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PosterUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := poster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PosterUpdate) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := poster.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Poster.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := poster.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Poster.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poster.user"`)
	}
	return nil
}

func (_u *PosterUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poster.Table, poster.Columns, sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(poster.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(poster.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(poster.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(poster.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(poster.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(poster.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(poster.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(poster.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(poster.FieldPublishedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poster.UserTable,
			Columns: []string{poster.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poster.UserTable,
			Columns: []string{poster.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   poster.MetadataTable,
			Columns: []string{poster.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetadataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   poster.MetadataTable,
			Columns: []string{poster.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poster.JobsTable,
			Columns: []string{poster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poster.JobsTable,
			Columns: []string{poster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poster.JobsTable,
			Columns: []string{poster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PosterUpdateOne is the builder for updating a single Poster entity.
type PosterUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PosterMutation
}

// SetUserID sets the "user_id" field.
func (_u *PosterUpdateOne) SetUserID(v uuid.UUID) *PosterUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableUserID(v *uuid.UUID) *PosterUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetTitle sets the "title" field.
func (_u *PosterUpdateOne) SetTitle(v string) *PosterUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableTitle(v *string) *PosterUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *PosterUpdateOne) SetDescription(v string) *PosterUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableDescription(v *string) *PosterUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *PosterUpdateOne) SetStatus(v string) *PosterUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableStatus(v *string) *PosterUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetImageURL sets the "image_url" field.
func (_u *PosterUpdateOne) SetImageURL(v string) *PosterUpdateOne {
	_u.mutation.SetImageURL(v)
	return _u
}

// SetNillableImageURL sets the "image_url" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableImageURL(v *string) *PosterUpdateOne {
	if v != nil {
		_u.SetImageURL(*v)
	}
	return _u
}

// ClearImageURL clears the value of the "image_url" field.
func (_u *PosterUpdateOne) ClearImageURL() *PosterUpdateOne {
	_u.mutation.ClearImageURL()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PosterUpdateOne) SetCreatedAt(v time.Time) *PosterUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableCreatedAt(v *time.Time) *PosterUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PosterUpdateOne) SetUpdatedAt(v time.Time) *PosterUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *PosterUpdateOne) SetPublishedAt(v time.Time) *PosterUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *PosterUpdateOne) SetNillablePublishedAt(v *time.Time) *PosterUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *PosterUpdateOne) ClearPublishedAt() *PosterUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PosterUpdateOne) SetUser(v *User) *PosterUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetMetadataID sets the "metadata" edge to the PosterMetadata entity by ID.
func (_u *PosterUpdateOne) SetMetadataID(id uuid.UUID) *PosterUpdateOne {
	_u.mutation.SetMetadataID(id)
	return _u
}

// SetNillableMetadataID sets the "metadata" edge to the PosterMetadata entity by ID if the given value is not nil.
func (_u *PosterUpdateOne) SetNillableMetadataID(id *uuid.UUID) *PosterUpdateOne {
	if id != nil {
		_u = _u.SetMetadataID(*id)
	}
	return _u
}

// SetMetadata sets the "metadata" edge to the PosterMetadata entity.
func (_u *PosterUpdateOne) SetMetadata(v *PosterMetadata) *PosterUpdateOne {
	return _u.SetMetadataID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *PosterUpdateOne) AddJobIDs(ids ...uuid.UUID) *PosterUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *PosterUpdateOne) AddJobs(v ...*ExtractionJob) *PosterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PosterMutation object of the builder.
func (_u *PosterUpdateOne) Mutation() *PosterMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PosterUpdateOne) ClearUser() *PosterUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearMetadata clears the "metadata" edge to the PosterMetadata entity.
func (_u *PosterUpdateOne) ClearMetadata() *PosterUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *PosterUpdateOne) ClearJobs() *PosterUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *PosterUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *PosterUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *PosterUpdateOne) RemoveJobs(v ...*ExtractionJob) *PosterUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the PosterUpdate builder.
func (_u *PosterUpdateOne) Where(ps ...predicate.Poster) *PosterUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PosterUpdateOne) Select(field string, fields ...string) *PosterUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Poster entity.
func (_u *PosterUpdateOne) Save(ctx context.Context) (*Poster, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PosterUpdateOne) SaveX(ctx context.Context) *Poster {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PosterUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PosterUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PosterUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := poster.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PosterUpdateOne) check() error {
	if v, ok := _u.mutation.Title(); ok {
		if err := poster.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Poster.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := poster.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Poster.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Poster.user"`)
	}
	return nil
}

func (_u *PosterUpdateOne) sqlSave(ctx context.Context) (_node *Poster, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(poster.Table, poster.Columns, sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Poster.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, poster.FieldID)
		for _, f := range fields {
			if !poster.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != poster.FieldID {
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
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(poster.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(poster.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(poster.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ImageURL(); ok {
		_spec.SetField(poster.FieldImageURL, field.TypeString, value)
	}
	if _u.mutation.ImageURLCleared() {
		_spec.ClearField(poster.FieldImageURL, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(poster.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(poster.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(poster.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(poster.FieldPublishedAt, field.TypeTime)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poster.UserTable,
			Columns: []string{poster.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   poster.UserTable,
			Columns: []string{poster.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MetadataCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   poster.MetadataTable,
			Columns: []string{poster.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MetadataIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   poster.MetadataTable,
			Columns: []string{poster.MetadataColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(postermetadata.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poster.JobsTable,
			Columns: []string{poster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poster.JobsTable,
			Columns: []string{poster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   poster.JobsTable,
			Columns: []string{poster.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Poster{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{poster.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
