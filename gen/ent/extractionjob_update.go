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
	"github.com/posters-science/poster-tracker/gen/ent/predicate"
	"github.com/posters-science/poster-tracker/gen/ent/user"
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ExtractionJobUpdate) SetUserID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableUserID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPosterID sets the "poster_id" field.
func (_u *ExtractionJobUpdate) SetPosterID(v uuid.UUID) *ExtractionJobUpdate {
	_u.mutation.SetPosterID(v)
	return _u
}

// SetNillablePosterID sets the "poster_id" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillablePosterID(v *uuid.UUID) *ExtractionJobUpdate {
	if v != nil {
		_u.SetPosterID(*v)
	}
	return _u
}

// ClearPosterID clears the value of the "poster_id" field.
func (_u *ExtractionJobUpdate) ClearPosterID() *ExtractionJobUpdate {
	_u.mutation.ClearPosterID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v string) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdate) SetErrorMessage(v string) *ExtractionJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableErrorMessage(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdate) ClearErrorMessage() *ExtractionJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionJobUpdate) SetCreatedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableCreatedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdate) SetUpdatedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExtractionJobUpdate) SetUser(v *User) *ExtractionJobUpdate {
	return _u.SetUserID(v.ID)
}

// SetPoster sets the "poster" edge to the Poster entity.
func (_u *ExtractionJobUpdate) SetPoster(v *Poster) *ExtractionJobUpdate {
	return _u.SetPosterID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExtractionJobUpdate) ClearUser() *ExtractionJobUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPoster clears the "poster" edge to the Poster entity.
func (_u *ExtractionJobUpdate) ClearPoster() *ExtractionJobUpdate {
	_u.mutation.ClearPoster()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.user"`)
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.UserTable,
			Columns: []string{extractionjob.UserColumn},
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
			Table:   extractionjob.UserTable,
			Columns: []string{extractionjob.UserColumn},
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
	if _u.mutation.PosterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.PosterTable,
			Columns: []string{extractionjob.PosterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PosterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.PosterTable,
			Columns: []string{extractionjob.PosterColumn},
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
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetUserID sets the "user_id" field.
func (_u *ExtractionJobUpdateOne) SetUserID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableUserID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetPosterID sets the "poster_id" field.
func (_u *ExtractionJobUpdateOne) SetPosterID(v uuid.UUID) *ExtractionJobUpdateOne {
	_u.mutation.SetPosterID(v)
	return _u
}

// SetNillablePosterID sets the "poster_id" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillablePosterID(v *uuid.UUID) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetPosterID(*v)
	}
	return _u
}

// ClearPosterID clears the value of the "poster_id" field.
func (_u *ExtractionJobUpdateOne) ClearPosterID() *ExtractionJobUpdateOne {
	_u.mutation.ClearPosterID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *ExtractionJobUpdateOne) SetErrorMessage(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableErrorMessage(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *ExtractionJobUpdateOne) ClearErrorMessage() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ExtractionJobUpdateOne) SetCreatedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableCreatedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdateOne) SetUpdatedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *ExtractionJobUpdateOne) SetUser(v *User) *ExtractionJobUpdateOne {
	return _u.SetUserID(v.ID)
}

// SetPoster sets the "poster" edge to the Poster entity.
func (_u *ExtractionJobUpdateOne) SetPoster(v *Poster) *ExtractionJobUpdateOne {
	return _u.SetPosterID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *ExtractionJobUpdateOne) ClearUser() *ExtractionJobUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPoster clears the "poster" edge to the Poster entity.
func (_u *ExtractionJobUpdateOne) ClearPoster() *ExtractionJobUpdateOne {
	_u.mutation.ClearPoster()
	return _u
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.user"`)
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeString, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(extractionjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(extractionjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.UserTable,
			Columns: []string{extractionjob.UserColumn},
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
			Table:   extractionjob.UserTable,
			Columns: []string{extractionjob.UserColumn},
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
	if _u.mutation.PosterCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.PosterTable,
			Columns: []string{extractionjob.PosterColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(poster.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PosterIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.PosterTable,
			Columns: []string{extractionjob.PosterColumn},
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
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
