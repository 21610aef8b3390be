// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
	"github.com/capturedesk/capturedesk/internal/entity"
)

// CaptureInputUpdate is the builder for updating CaptureInput entities.
type CaptureInputUpdate struct {
	config
	hooks    []Hook
	mutation *CaptureInputMutation
}

// Where appends a list predicates to the CaptureInputUpdate builder.
func (_u *CaptureInputUpdate) Where(ps ...predicate.CaptureInput) *CaptureInputUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetURL sets the "url" field.
func (_u *CaptureInputUpdate) SetURL(v string) *CaptureInputUpdate {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CaptureInputUpdate) SetNillableURL(v *string) *CaptureInputUpdate {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *CaptureInputUpdate) ClearURL() *CaptureInputUpdate {
	_u.mutation.ClearURL()
	return _u
}

// SetText sets the "text" field.
func (_u *CaptureInputUpdate) SetText(v string) *CaptureInputUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *CaptureInputUpdate) SetNillableText(v *string) *CaptureInputUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *CaptureInputUpdate) ClearText() *CaptureInputUpdate {
	_u.mutation.ClearText()
	return _u
}

// SetSource sets the "source" field.
func (_u *CaptureInputUpdate) SetSource(v string) *CaptureInputUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CaptureInputUpdate) SetNillableSource(v *string) *CaptureInputUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *CaptureInputUpdate) ClearSource() *CaptureInputUpdate {
	_u.mutation.ClearSource()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CaptureInputUpdate) SetPayload(v []byte) *CaptureInputUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *CaptureInputUpdate) ClearPayload() *CaptureInputUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetPayloadPath sets the "payload_path" field.
func (_u *CaptureInputUpdate) SetPayloadPath(v string) *CaptureInputUpdate {
	_u.mutation.SetPayloadPath(v)
	return _u
}

// SetNillablePayloadPath sets the "payload_path" field if the given value is not nil.
func (_u *CaptureInputUpdate) SetNillablePayloadPath(v *string) *CaptureInputUpdate {
	if v != nil {
		_u.SetPayloadPath(*v)
	}
	return _u
}

// ClearPayloadPath clears the value of the "payload_path" field.
func (_u *CaptureInputUpdate) ClearPayloadPath() *CaptureInputUpdate {
	_u.mutation.ClearPayloadPath()
	return _u
}

// SetInputType sets the "input_type" field.
func (_u *CaptureInputUpdate) SetInputType(v string) *CaptureInputUpdate {
	_u.mutation.SetInputType(v)
	return _u
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_u *CaptureInputUpdate) SetNillableInputType(v *string) *CaptureInputUpdate {
	if v != nil {
		_u.SetInputType(*v)
	}
	return _u
}

// SetDescriptor sets the "descriptor" field.
func (_u *CaptureInputUpdate) SetDescriptor(v *entity.ItemDescriptor) *CaptureInputUpdate {
	_u.mutation.SetDescriptor(v)
	return _u
}

// ClearDescriptor clears the value of the "descriptor" field.
func (_u *CaptureInputUpdate) ClearDescriptor() *CaptureInputUpdate {
	_u.mutation.ClearDescriptor()
	return _u
}

// Mutation returns the CaptureInputMutation object of the builder.
func (_u *CaptureInputUpdate) Mutation() *CaptureInputMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CaptureInputUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureInputUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CaptureInputUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureInputUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaptureInputUpdate) check() error {
	if v, ok := _u.mutation.InputType(); ok {
		if err := captureinput.InputTypeValidator(v); err != nil {
			return &ValidationError{Name: "input_type", err: fmt.Errorf(`ent: validator failed for field "CaptureInput.input_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CaptureInputUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(captureinput.Table, captureinput.Columns, sqlgraph.NewFieldSpec(captureinput.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(captureinput.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(captureinput.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(captureinput.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(captureinput.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(captureinput.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(captureinput.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(captureinput.FieldPayload, field.TypeBytes, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(captureinput.FieldPayload, field.TypeBytes)
	}
	if value, ok := _u.mutation.PayloadPath(); ok {
		_spec.SetField(captureinput.FieldPayloadPath, field.TypeString, value)
	}
	if _u.mutation.PayloadPathCleared() {
		_spec.ClearField(captureinput.FieldPayloadPath, field.TypeString)
	}
	if value, ok := _u.mutation.InputType(); ok {
		_spec.SetField(captureinput.FieldInputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descriptor(); ok {
		_spec.SetField(captureinput.FieldDescriptor, field.TypeJSON, value)
	}
	if _u.mutation.DescriptorCleared() {
		_spec.ClearField(captureinput.FieldDescriptor, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{captureinput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CaptureInputUpdateOne is the builder for updating a single CaptureInput entity.
type CaptureInputUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CaptureInputMutation
}

// SetURL sets the "url" field.
func (_u *CaptureInputUpdateOne) SetURL(v string) *CaptureInputUpdateOne {
	_u.mutation.SetURL(v)
	return _u
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_u *CaptureInputUpdateOne) SetNillableURL(v *string) *CaptureInputUpdateOne {
	if v != nil {
		_u.SetURL(*v)
	}
	return _u
}

// ClearURL clears the value of the "url" field.
func (_u *CaptureInputUpdateOne) ClearURL() *CaptureInputUpdateOne {
	_u.mutation.ClearURL()
	return _u
}

// SetText sets the "text" field.
func (_u *CaptureInputUpdateOne) SetText(v string) *CaptureInputUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *CaptureInputUpdateOne) SetNillableText(v *string) *CaptureInputUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// ClearText clears the value of the "text" field.
func (_u *CaptureInputUpdateOne) ClearText() *CaptureInputUpdateOne {
	_u.mutation.ClearText()
	return _u
}

// SetSource sets the "source" field.
func (_u *CaptureInputUpdateOne) SetSource(v string) *CaptureInputUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *CaptureInputUpdateOne) SetNillableSource(v *string) *CaptureInputUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// ClearSource clears the value of the "source" field.
func (_u *CaptureInputUpdateOne) ClearSource() *CaptureInputUpdateOne {
	_u.mutation.ClearSource()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *CaptureInputUpdateOne) SetPayload(v []byte) *CaptureInputUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *CaptureInputUpdateOne) ClearPayload() *CaptureInputUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetPayloadPath sets the "payload_path" field.
func (_u *CaptureInputUpdateOne) SetPayloadPath(v string) *CaptureInputUpdateOne {
	_u.mutation.SetPayloadPath(v)
	return _u
}

// SetNillablePayloadPath sets the "payload_path" field if the given value is not nil.
func (_u *CaptureInputUpdateOne) SetNillablePayloadPath(v *string) *CaptureInputUpdateOne {
	if v != nil {
		_u.SetPayloadPath(*v)
	}
	return _u
}

// ClearPayloadPath clears the value of the "payload_path" field.
func (_u *CaptureInputUpdateOne) ClearPayloadPath() *CaptureInputUpdateOne {
	_u.mutation.ClearPayloadPath()
	return _u
}

// SetInputType sets the "input_type" field.
func (_u *CaptureInputUpdateOne) SetInputType(v string) *CaptureInputUpdateOne {
	_u.mutation.SetInputType(v)
	return _u
}

// SetNillableInputType sets the "input_type" field if the given value is not nil.
func (_u *CaptureInputUpdateOne) SetNillableInputType(v *string) *CaptureInputUpdateOne {
	if v != nil {
		_u.SetInputType(*v)
	}
	return _u
}

// SetDescriptor sets the "descriptor" field.
func (_u *CaptureInputUpdateOne) SetDescriptor(v *entity.ItemDescriptor) *CaptureInputUpdateOne {
	_u.mutation.SetDescriptor(v)
	return _u
}

// ClearDescriptor clears the value of the "descriptor" field.
func (_u *CaptureInputUpdateOne) ClearDescriptor() *CaptureInputUpdateOne {
	_u.mutation.ClearDescriptor()
	return _u
}

// Mutation returns the CaptureInputMutation object of the builder.
func (_u *CaptureInputUpdateOne) Mutation() *CaptureInputMutation {
	return _u.mutation
}

// Where appends a list predicates to the CaptureInputUpdate builder.
func (_u *CaptureInputUpdateOne) Where(ps ...predicate.CaptureInput) *CaptureInputUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CaptureInputUpdateOne) Select(field string, fields ...string) *CaptureInputUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CaptureInput entity.
func (_u *CaptureInputUpdateOne) Save(ctx context.Context) (*CaptureInput, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CaptureInputUpdateOne) SaveX(ctx context.Context) *CaptureInput {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CaptureInputUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CaptureInputUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CaptureInputUpdateOne) check() error {
	if v, ok := _u.mutation.InputType(); ok {
		if err := captureinput.InputTypeValidator(v); err != nil {
			return &ValidationError{Name: "input_type", err: fmt.Errorf(`ent: validator failed for field "CaptureInput.input_type": %w`, err)}
		}
	}
	return nil
}

func (_u *CaptureInputUpdateOne) sqlSave(ctx context.Context) (_node *CaptureInput, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(captureinput.Table, captureinput.Columns, sqlgraph.NewFieldSpec(captureinput.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CaptureInput.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, captureinput.FieldID)
		for _, f := range fields {
			if !captureinput.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != captureinput.FieldID {
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
	if value, ok := _u.mutation.URL(); ok {
		_spec.SetField(captureinput.FieldURL, field.TypeString, value)
	}
	if _u.mutation.URLCleared() {
		_spec.ClearField(captureinput.FieldURL, field.TypeString)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(captureinput.FieldText, field.TypeString, value)
	}
	if _u.mutation.TextCleared() {
		_spec.ClearField(captureinput.FieldText, field.TypeString)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(captureinput.FieldSource, field.TypeString, value)
	}
	if _u.mutation.SourceCleared() {
		_spec.ClearField(captureinput.FieldSource, field.TypeString)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(captureinput.FieldPayload, field.TypeBytes, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(captureinput.FieldPayload, field.TypeBytes)
	}
	if value, ok := _u.mutation.PayloadPath(); ok {
		_spec.SetField(captureinput.FieldPayloadPath, field.TypeString, value)
	}
	if _u.mutation.PayloadPathCleared() {
		_spec.ClearField(captureinput.FieldPayloadPath, field.TypeString)
	}
	if value, ok := _u.mutation.InputType(); ok {
		_spec.SetField(captureinput.FieldInputType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Descriptor(); ok {
		_spec.SetField(captureinput.FieldDescriptor, field.TypeJSON, value)
	}
	if _u.mutation.DescriptorCleared() {
		_spec.ClearField(captureinput.FieldDescriptor, field.TypeJSON)
	}
	_node = &CaptureInput{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{captureinput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
