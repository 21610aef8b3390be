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
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
	"github.com/capturedesk/capturedesk/gen/ent/session"
	"github.com/capturedesk/capturedesk/internal/entity"
)

// SessionUpdate is the builder for updating Session entities.
type SessionUpdate struct {
	config
	hooks    []Hook
	mutation *SessionMutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdate) Where(ps ...predicate.Session) *SessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SessionUpdate) SetTitle(v string) *SessionUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableTitle(v *string) *SessionUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdate) ClearTitle() *SessionUpdate {
	_u.mutation.ClearTitle()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdate) SetSummary(v string) *SessionUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableSummary(v *string) *SessionUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdate) ClearSummary() *SessionUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdate) SetUpdatedAt(v time.Time) *SessionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCoordinate sets the "coordinate" field.
func (_u *SessionUpdate) SetCoordinate(v *entity.LatLng) *SessionUpdate {
	_u.mutation.SetCoordinate(v)
	return _u
}

// ClearCoordinate clears the value of the "coordinate" field.
func (_u *SessionUpdate) ClearCoordinate() *SessionUpdate {
	_u.mutation.ClearCoordinate()
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *SessionUpdate) SetPlaceID(v string) *SessionUpdate {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *SessionUpdate) SetNillablePlaceID(v *string) *SessionUpdate {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *SessionUpdate) ClearPlaceID() *SessionUpdate {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetLocationName sets the "location_name" field.
func (_u *SessionUpdate) SetLocationName(v string) *SessionUpdate {
	_u.mutation.SetLocationName(v)
	return _u
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (_u *SessionUpdate) SetNillableLocationName(v *string) *SessionUpdate {
	if v != nil {
		_u.SetLocationName(*v)
	}
	return _u
}

// ClearLocationName clears the value of the "location_name" field.
func (_u *SessionUpdate) ClearLocationName() *SessionUpdate {
	_u.mutation.ClearLocationName()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdate) Mutation() *SessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SessionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Coordinate(); ok {
		_spec.SetField(session.FieldCoordinate, field.TypeJSON, value)
	}
	if _u.mutation.CoordinateCleared() {
		_spec.ClearField(session.FieldCoordinate, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(session.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(session.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.LocationName(); ok {
		_spec.SetField(session.FieldLocationName, field.TypeString, value)
	}
	if _u.mutation.LocationNameCleared() {
		_spec.ClearField(session.FieldLocationName, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SessionUpdateOne is the builder for updating a single Session entity.
type SessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SessionMutation
}

// SetTitle sets the "title" field.
func (_u *SessionUpdateOne) SetTitle(v string) *SessionUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableTitle(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// ClearTitle clears the value of the "title" field.
func (_u *SessionUpdateOne) ClearTitle() *SessionUpdateOne {
	_u.mutation.ClearTitle()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *SessionUpdateOne) SetSummary(v string) *SessionUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableSummary(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *SessionUpdateOne) ClearSummary() *SessionUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *SessionUpdateOne) SetUpdatedAt(v time.Time) *SessionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetCoordinate sets the "coordinate" field.
func (_u *SessionUpdateOne) SetCoordinate(v *entity.LatLng) *SessionUpdateOne {
	_u.mutation.SetCoordinate(v)
	return _u
}

// ClearCoordinate clears the value of the "coordinate" field.
func (_u *SessionUpdateOne) ClearCoordinate() *SessionUpdateOne {
	_u.mutation.ClearCoordinate()
	return _u
}

// SetPlaceID sets the "place_id" field.
func (_u *SessionUpdateOne) SetPlaceID(v string) *SessionUpdateOne {
	_u.mutation.SetPlaceID(v)
	return _u
}

// SetNillablePlaceID sets the "place_id" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillablePlaceID(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetPlaceID(*v)
	}
	return _u
}

// ClearPlaceID clears the value of the "place_id" field.
func (_u *SessionUpdateOne) ClearPlaceID() *SessionUpdateOne {
	_u.mutation.ClearPlaceID()
	return _u
}

// SetLocationName sets the "location_name" field.
func (_u *SessionUpdateOne) SetLocationName(v string) *SessionUpdateOne {
	_u.mutation.SetLocationName(v)
	return _u
}

// SetNillableLocationName sets the "location_name" field if the given value is not nil.
func (_u *SessionUpdateOne) SetNillableLocationName(v *string) *SessionUpdateOne {
	if v != nil {
		_u.SetLocationName(*v)
	}
	return _u
}

// ClearLocationName clears the value of the "location_name" field.
func (_u *SessionUpdateOne) ClearLocationName() *SessionUpdateOne {
	_u.mutation.ClearLocationName()
	return _u
}

// Mutation returns the SessionMutation object of the builder.
func (_u *SessionUpdateOne) Mutation() *SessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the SessionUpdate builder.
func (_u *SessionUpdateOne) Where(ps ...predicate.Session) *SessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SessionUpdateOne) Select(field string, fields ...string) *SessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Session entity.
func (_u *SessionUpdateOne) Save(ctx context.Context) (*Session, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SessionUpdateOne) SaveX(ctx context.Context) *Session {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SessionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := session.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *SessionUpdateOne) sqlSave(ctx context.Context) (_node *Session, err error) {
	_spec := sqlgraph.NewUpdateSpec(session.Table, session.Columns, sqlgraph.NewFieldSpec(session.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Session.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, session.FieldID)
		for _, f := range fields {
			if !session.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != session.FieldID {
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
		_spec.SetField(session.FieldTitle, field.TypeString, value)
	}
	if _u.mutation.TitleCleared() {
		_spec.ClearField(session.FieldTitle, field.TypeString)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(session.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(session.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(session.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Coordinate(); ok {
		_spec.SetField(session.FieldCoordinate, field.TypeJSON, value)
	}
	if _u.mutation.CoordinateCleared() {
		_spec.ClearField(session.FieldCoordinate, field.TypeJSON)
	}
	if value, ok := _u.mutation.PlaceID(); ok {
		_spec.SetField(session.FieldPlaceID, field.TypeString, value)
	}
	if _u.mutation.PlaceIDCleared() {
		_spec.ClearField(session.FieldPlaceID, field.TypeString)
	}
	if value, ok := _u.mutation.LocationName(); ok {
		_spec.SetField(session.FieldLocationName, field.TypeString, value)
	}
	if _u.mutation.LocationNameCleared() {
		_spec.ClearField(session.FieldLocationName, field.TypeString)
	}
	_node = &Session{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{session.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
