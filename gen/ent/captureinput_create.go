// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/google/uuid"
)

// CaptureInputCreate is the builder for creating a CaptureInput entity.
type CaptureInputCreate struct {
	config
	mutation *CaptureInputMutation
	hooks    []Hook
}

// SetCreatedAt sets the "created_at" field.
func (_c *CaptureInputCreate) SetCreatedAt(v time.Time) *CaptureInputCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CaptureInputCreate) SetNillableCreatedAt(v *time.Time) *CaptureInputCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetURL sets the "url" field.
func (_c *CaptureInputCreate) SetURL(v string) *CaptureInputCreate {
	_c.mutation.SetURL(v)
	return _c
}

// SetNillableURL sets the "url" field if the given value is not nil.
func (_c *CaptureInputCreate) SetNillableURL(v *string) *CaptureInputCreate {
	if v != nil {
		_c.SetURL(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *CaptureInputCreate) SetText(v string) *CaptureInputCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_c *CaptureInputCreate) SetNillableText(v *string) *CaptureInputCreate {
	if v != nil {
		_c.SetText(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *CaptureInputCreate) SetSource(v string) *CaptureInputCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *CaptureInputCreate) SetNillableSource(v *string) *CaptureInputCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *CaptureInputCreate) SetPayload(v []byte) *CaptureInputCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetPayloadPath sets the "payload_path" field.
func (_c *CaptureInputCreate) SetPayloadPath(v string) *CaptureInputCreate {
	_c.mutation.SetPayloadPath(v)
	return _c
}

// SetNillablePayloadPath sets the "payload_path" field if the given value is not nil.
func (_c *CaptureInputCreate) SetNillablePayloadPath(v *string) *CaptureInputCreate {
	if v != nil {
		_c.SetPayloadPath(*v)
	}
	return _c
}

// SetInputType sets the "input_type" field.
func (_c *CaptureInputCreate) SetInputType(v string) *CaptureInputCreate {
	_c.mutation.SetInputType(v)
	return _c
}

// SetDescriptor sets the "descriptor" field.
func (_c *CaptureInputCreate) SetDescriptor(v *entity.ItemDescriptor) *CaptureInputCreate {
	_c.mutation.SetDescriptor(v)
	return _c
}

// SetID sets the "id" field.
func (_c *CaptureInputCreate) SetID(v uuid.UUID) *CaptureInputCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *CaptureInputCreate) SetNillableID(v *uuid.UUID) *CaptureInputCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the CaptureInputMutation object of the builder.
func (_c *CaptureInputCreate) Mutation() *CaptureInputMutation {
	return _c.mutation
}

// Save creates the CaptureInput in the database.
func (_c *CaptureInputCreate) Save(ctx context.Context) (*CaptureInput, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CaptureInputCreate) SaveX(ctx context.Context) *CaptureInput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureInputCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureInputCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CaptureInputCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := captureinput.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := captureinput.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CaptureInputCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CaptureInput.created_at"`)}
	}
	if _, ok := _c.mutation.InputType(); !ok {
		return &ValidationError{Name: "input_type", err: errors.New(`ent: missing required field "CaptureInput.input_type"`)}
	}
	if v, ok := _c.mutation.InputType(); ok {
		if err := captureinput.InputTypeValidator(v); err != nil {
			return &ValidationError{Name: "input_type", err: fmt.Errorf(`ent: validator failed for field "CaptureInput.input_type": %w`, err)}
		}
	}
	return nil
}

func (_c *CaptureInputCreate) sqlSave(ctx context.Context) (*CaptureInput, error) {
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

func (_c *CaptureInputCreate) createSpec() (*CaptureInput, *sqlgraph.CreateSpec) {
	var (
		_node = &CaptureInput{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(captureinput.Table, sqlgraph.NewFieldSpec(captureinput.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(captureinput.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.URL(); ok {
		_spec.SetField(captureinput.FieldURL, field.TypeString, value)
		_node.URL = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(captureinput.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(captureinput.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(captureinput.FieldPayload, field.TypeBytes, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.PayloadPath(); ok {
		_spec.SetField(captureinput.FieldPayloadPath, field.TypeString, value)
		_node.PayloadPath = value
	}
	if value, ok := _c.mutation.InputType(); ok {
		_spec.SetField(captureinput.FieldInputType, field.TypeString, value)
		_node.InputType = value
	}
	if value, ok := _c.mutation.Descriptor(); ok {
		_spec.SetField(captureinput.FieldDescriptor, field.TypeJSON, value)
		_node.Descriptor = value
	}
	return _node, _spec
}

// CaptureInputCreateBulk is the builder for creating many CaptureInput entities in bulk.
type CaptureInputCreateBulk struct {
	config
	err      error
	builders []*CaptureInputCreate
}

// Save creates the CaptureInput entities in the database.
func (_c *CaptureInputCreateBulk) Save(ctx context.Context) ([]*CaptureInput, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CaptureInput, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CaptureInputMutation)
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
func (_c *CaptureInputCreateBulk) SaveX(ctx context.Context) []*CaptureInput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CaptureInputCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CaptureInputCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
