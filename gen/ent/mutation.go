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
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/gen/ent/predicate"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/gen/ent/session"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeCaptureInput  = "CaptureInput"
	TypeProcessedItem = "ProcessedItem"
	TypeSession       = "Session"
)

// CaptureInputMutation represents an operation that mutates the CaptureInput nodes in the graph.
type CaptureInputMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	created_at    *time.Time
	url           *string
	text          *string
	source        *string
	payload       *[]byte
	payload_path  *string
	input_type    *string
	descriptor    **entity.ItemDescriptor
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*CaptureInput, error)
	predicates    []predicate.CaptureInput
}

var _ ent.Mutation = (*CaptureInputMutation)(nil)

// captureinputOption allows management of the mutation configuration using functional options.
type captureinputOption func(*CaptureInputMutation)

// newCaptureInputMutation creates new mutation for the CaptureInput entity.
func newCaptureInputMutation(c config, op Op, opts ...captureinputOption) *CaptureInputMutation {
	m := &CaptureInputMutation{
		config:        c,
		op:            op,
		typ:           TypeCaptureInput,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCaptureInputID sets the ID field of the mutation.
func withCaptureInputID(id uuid.UUID) captureinputOption {
	return func(m *CaptureInputMutation) {
		var (
			err   error
			once  sync.Once
			value *CaptureInput
		)
		m.oldValue = func(ctx context.Context) (*CaptureInput, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CaptureInput.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCaptureInput sets the old CaptureInput of the mutation.
func withCaptureInput(node *CaptureInput) captureinputOption {
	return func(m *CaptureInputMutation) {
		m.oldValue = func(context.Context) (*CaptureInput, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CaptureInputMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CaptureInputMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of CaptureInput entities.
func (m *CaptureInputMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CaptureInputMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CaptureInputMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CaptureInput.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *CaptureInputMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CaptureInputMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *CaptureInputMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetURL sets the "url" field.
func (m *CaptureInputMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CaptureInputMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *CaptureInputMutation) ClearURL() {
	m.url = nil
	m.clearedFields[captureinput.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *CaptureInputMutation) URLCleared() bool {
	_, ok := m.clearedFields[captureinput.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *CaptureInputMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, captureinput.FieldURL)
}

// SetText sets the "text" field.
func (m *CaptureInputMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *CaptureInputMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ClearText clears the value of the "text" field.
func (m *CaptureInputMutation) ClearText() {
	m.text = nil
	m.clearedFields[captureinput.FieldText] = struct{}{}
}

// TextCleared returns if the "text" field was cleared in this mutation.
func (m *CaptureInputMutation) TextCleared() bool {
	_, ok := m.clearedFields[captureinput.FieldText]
	return ok
}

// ResetText resets all changes to the "text" field.
func (m *CaptureInputMutation) ResetText() {
	m.text = nil
	delete(m.clearedFields, captureinput.FieldText)
}

// SetSource sets the "source" field.
func (m *CaptureInputMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *CaptureInputMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *CaptureInputMutation) ClearSource() {
	m.source = nil
	m.clearedFields[captureinput.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *CaptureInputMutation) SourceCleared() bool {
	_, ok := m.clearedFields[captureinput.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *CaptureInputMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, captureinput.FieldSource)
}

// SetPayload sets the "payload" field.
func (m *CaptureInputMutation) SetPayload(b []byte) {
	m.payload = &b
}

// Payload returns the value of the "payload" field in the mutation.
func (m *CaptureInputMutation) Payload() (r []byte, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldPayload(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *CaptureInputMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[captureinput.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *CaptureInputMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[captureinput.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *CaptureInputMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, captureinput.FieldPayload)
}

// SetPayloadPath sets the "payload_path" field.
func (m *CaptureInputMutation) SetPayloadPath(s string) {
	m.payload_path = &s
}

// PayloadPath returns the value of the "payload_path" field in the mutation.
func (m *CaptureInputMutation) PayloadPath() (r string, exists bool) {
	v := m.payload_path
	if v == nil {
		return
	}
	return *v, true
}

// OldPayloadPath returns the old "payload_path" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldPayloadPath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayloadPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayloadPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayloadPath: %w", err)
	}
	return oldValue.PayloadPath, nil
}

// ClearPayloadPath clears the value of the "payload_path" field.
func (m *CaptureInputMutation) ClearPayloadPath() {
	m.payload_path = nil
	m.clearedFields[captureinput.FieldPayloadPath] = struct{}{}
}

// PayloadPathCleared returns if the "payload_path" field was cleared in this mutation.
func (m *CaptureInputMutation) PayloadPathCleared() bool {
	_, ok := m.clearedFields[captureinput.FieldPayloadPath]
	return ok
}

// ResetPayloadPath resets all changes to the "payload_path" field.
func (m *CaptureInputMutation) ResetPayloadPath() {
	m.payload_path = nil
	delete(m.clearedFields, captureinput.FieldPayloadPath)
}

// SetInputType sets the "input_type" field.
func (m *CaptureInputMutation) SetInputType(s string) {
	m.input_type = &s
}

// InputType returns the value of the "input_type" field in the mutation.
func (m *CaptureInputMutation) InputType() (r string, exists bool) {
	v := m.input_type
	if v == nil {
		return
	}
	return *v, true
}

// OldInputType returns the old "input_type" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldInputType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputType: %w", err)
	}
	return oldValue.InputType, nil
}

// ResetInputType resets all changes to the "input_type" field.
func (m *CaptureInputMutation) ResetInputType() {
	m.input_type = nil
}

// SetDescriptor sets the "descriptor" field.
func (m *CaptureInputMutation) SetDescriptor(ed *entity.ItemDescriptor) {
	m.descriptor = &ed
}

// Descriptor returns the value of the "descriptor" field in the mutation.
func (m *CaptureInputMutation) Descriptor() (r *entity.ItemDescriptor, exists bool) {
	v := m.descriptor
	if v == nil {
		return
	}
	return *v, true
}

// OldDescriptor returns the old "descriptor" field's value of the CaptureInput entity.
// If the CaptureInput object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CaptureInputMutation) OldDescriptor(ctx context.Context) (v *entity.ItemDescriptor, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescriptor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescriptor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescriptor: %w", err)
	}
	return oldValue.Descriptor, nil
}

// ClearDescriptor clears the value of the "descriptor" field.
func (m *CaptureInputMutation) ClearDescriptor() {
	m.descriptor = nil
	m.clearedFields[captureinput.FieldDescriptor] = struct{}{}
}

// DescriptorCleared returns if the "descriptor" field was cleared in this mutation.
func (m *CaptureInputMutation) DescriptorCleared() bool {
	_, ok := m.clearedFields[captureinput.FieldDescriptor]
	return ok
}

// ResetDescriptor resets all changes to the "descriptor" field.
func (m *CaptureInputMutation) ResetDescriptor() {
	m.descriptor = nil
	delete(m.clearedFields, captureinput.FieldDescriptor)
}

// Where appends a list predicates to the CaptureInputMutation builder.
func (m *CaptureInputMutation) Where(ps ...predicate.CaptureInput) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CaptureInputMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CaptureInputMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CaptureInput, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CaptureInputMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CaptureInputMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CaptureInput).
func (m *CaptureInputMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CaptureInputMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.created_at != nil {
		fields = append(fields, captureinput.FieldCreatedAt)
	}
	if m.url != nil {
		fields = append(fields, captureinput.FieldURL)
	}
	if m.text != nil {
		fields = append(fields, captureinput.FieldText)
	}
	if m.source != nil {
		fields = append(fields, captureinput.FieldSource)
	}
	if m.payload != nil {
		fields = append(fields, captureinput.FieldPayload)
	}
	if m.payload_path != nil {
		fields = append(fields, captureinput.FieldPayloadPath)
	}
	if m.input_type != nil {
		fields = append(fields, captureinput.FieldInputType)
	}
	if m.descriptor != nil {
		fields = append(fields, captureinput.FieldDescriptor)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CaptureInputMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case captureinput.FieldCreatedAt:
		return m.CreatedAt()
	case captureinput.FieldURL:
		return m.URL()
	case captureinput.FieldText:
		return m.Text()
	case captureinput.FieldSource:
		return m.Source()
	case captureinput.FieldPayload:
		return m.Payload()
	case captureinput.FieldPayloadPath:
		return m.PayloadPath()
	case captureinput.FieldInputType:
		return m.InputType()
	case captureinput.FieldDescriptor:
		return m.Descriptor()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CaptureInputMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case captureinput.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case captureinput.FieldURL:
		return m.OldURL(ctx)
	case captureinput.FieldText:
		return m.OldText(ctx)
	case captureinput.FieldSource:
		return m.OldSource(ctx)
	case captureinput.FieldPayload:
		return m.OldPayload(ctx)
	case captureinput.FieldPayloadPath:
		return m.OldPayloadPath(ctx)
	case captureinput.FieldInputType:
		return m.OldInputType(ctx)
	case captureinput.FieldDescriptor:
		return m.OldDescriptor(ctx)
	}
	return nil, fmt.Errorf("unknown CaptureInput field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureInputMutation) SetField(name string, value ent.Value) error {
	switch name {
	case captureinput.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case captureinput.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case captureinput.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case captureinput.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case captureinput.FieldPayload:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case captureinput.FieldPayloadPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayloadPath(v)
		return nil
	case captureinput.FieldInputType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputType(v)
		return nil
	case captureinput.FieldDescriptor:
		v, ok := value.(*entity.ItemDescriptor)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescriptor(v)
		return nil
	}
	return fmt.Errorf("unknown CaptureInput field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CaptureInputMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CaptureInputMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CaptureInputMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown CaptureInput numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CaptureInputMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(captureinput.FieldURL) {
		fields = append(fields, captureinput.FieldURL)
	}
	if m.FieldCleared(captureinput.FieldText) {
		fields = append(fields, captureinput.FieldText)
	}
	if m.FieldCleared(captureinput.FieldSource) {
		fields = append(fields, captureinput.FieldSource)
	}
	if m.FieldCleared(captureinput.FieldPayload) {
		fields = append(fields, captureinput.FieldPayload)
	}
	if m.FieldCleared(captureinput.FieldPayloadPath) {
		fields = append(fields, captureinput.FieldPayloadPath)
	}
	if m.FieldCleared(captureinput.FieldDescriptor) {
		fields = append(fields, captureinput.FieldDescriptor)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CaptureInputMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CaptureInputMutation) ClearField(name string) error {
	switch name {
	case captureinput.FieldURL:
		m.ClearURL()
		return nil
	case captureinput.FieldText:
		m.ClearText()
		return nil
	case captureinput.FieldSource:
		m.ClearSource()
		return nil
	case captureinput.FieldPayload:
		m.ClearPayload()
		return nil
	case captureinput.FieldPayloadPath:
		m.ClearPayloadPath()
		return nil
	case captureinput.FieldDescriptor:
		m.ClearDescriptor()
		return nil
	}
	return fmt.Errorf("unknown CaptureInput nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CaptureInputMutation) ResetField(name string) error {
	switch name {
	case captureinput.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case captureinput.FieldURL:
		m.ResetURL()
		return nil
	case captureinput.FieldText:
		m.ResetText()
		return nil
	case captureinput.FieldSource:
		m.ResetSource()
		return nil
	case captureinput.FieldPayload:
		m.ResetPayload()
		return nil
	case captureinput.FieldPayloadPath:
		m.ResetPayloadPath()
		return nil
	case captureinput.FieldInputType:
		m.ResetInputType()
		return nil
	case captureinput.FieldDescriptor:
		m.ResetDescriptor()
		return nil
	}
	return fmt.Errorf("unknown CaptureInput field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CaptureInputMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CaptureInputMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CaptureInputMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CaptureInputMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CaptureInputMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CaptureInputMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CaptureInputMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CaptureInput unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CaptureInputMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CaptureInput edge %s", name)
}

// ProcessedItemMutation represents an operation that mutates the ProcessedItem nodes in the graph.
type ProcessedItemMutation struct {
	config
	op                   Op
	typ                  string
	id                   *uuid.UUID
	url                  *string
	title                *string
	summary              *string
	entity_type          *string
	modality             *string
	tags                 *[]string
	appendtags           []string
	categories           *[]string
	appendcategories     []string
	purposes             *[]string
	appendpurposes       []string
	questions            *[]string
	appendquestions      []string
	statements           *[]entity.Statement
	appendstatements     []entity.Statement
	status               *string
	created_at           *time.Time
	updated_at           *time.Time
	last_processed       *time.Time
	failure_count        *int
	addfailure_count     *int
	processing_log       *[]entity.LogEntry
	appendprocessing_log []entity.LogEntry
	weather              **entity.WeatherContext
	activity             **entity.ActivityContext
	place                **entity.PlaceContext
	web                  **entity.WebContext
	document             **entity.DocumentContext
	qr_code              **entity.QRCodeContext
	cover_image_path     *string
	price                *float64
	addprice             *float64
	rating               *float64
	addrating            *float64
	session_id           *string
	parent_id            *uuid.UUID
	master_capture_id    *string
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*ProcessedItem, error)
	predicates           []predicate.ProcessedItem
}

var _ ent.Mutation = (*ProcessedItemMutation)(nil)

// processeditemOption allows management of the mutation configuration using functional options.
type processeditemOption func(*ProcessedItemMutation)

// newProcessedItemMutation creates new mutation for the ProcessedItem entity.
func newProcessedItemMutation(c config, op Op, opts ...processeditemOption) *ProcessedItemMutation {
	m := &ProcessedItemMutation{
		config:        c,
		op:            op,
		typ:           TypeProcessedItem,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withProcessedItemID sets the ID field of the mutation.
func withProcessedItemID(id uuid.UUID) processeditemOption {
	return func(m *ProcessedItemMutation) {
		var (
			err   error
			once  sync.Once
			value *ProcessedItem
		)
		m.oldValue = func(ctx context.Context) (*ProcessedItem, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ProcessedItem.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withProcessedItem sets the old ProcessedItem of the mutation.
func withProcessedItem(node *ProcessedItem) processeditemOption {
	return func(m *ProcessedItemMutation) {
		m.oldValue = func(context.Context) (*ProcessedItem, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ProcessedItemMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ProcessedItemMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ProcessedItem entities.
func (m *ProcessedItemMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ProcessedItemMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ProcessedItemMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ProcessedItem.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetURL sets the "url" field.
func (m *ProcessedItemMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ProcessedItemMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ClearURL clears the value of the "url" field.
func (m *ProcessedItemMutation) ClearURL() {
	m.url = nil
	m.clearedFields[processeditem.FieldURL] = struct{}{}
}

// URLCleared returns if the "url" field was cleared in this mutation.
func (m *ProcessedItemMutation) URLCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldURL]
	return ok
}

// ResetURL resets all changes to the "url" field.
func (m *ProcessedItemMutation) ResetURL() {
	m.url = nil
	delete(m.clearedFields, processeditem.FieldURL)
}

// SetTitle sets the "title" field.
func (m *ProcessedItemMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ProcessedItemMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldTitle(ctx context.Context) (v string, err error) {
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

// ClearTitle clears the value of the "title" field.
func (m *ProcessedItemMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[processeditem.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ProcessedItemMutation) TitleCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ProcessedItemMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, processeditem.FieldTitle)
}

// SetSummary sets the "summary" field.
func (m *ProcessedItemMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *ProcessedItemMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *ProcessedItemMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[processeditem.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *ProcessedItemMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *ProcessedItemMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, processeditem.FieldSummary)
}

// SetEntityType sets the "entity_type" field.
func (m *ProcessedItemMutation) SetEntityType(s string) {
	m.entity_type = &s
}

// EntityType returns the value of the "entity_type" field in the mutation.
func (m *ProcessedItemMutation) EntityType() (r string, exists bool) {
	v := m.entity_type
	if v == nil {
		return
	}
	return *v, true
}

// OldEntityType returns the old "entity_type" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldEntityType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEntityType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEntityType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEntityType: %w", err)
	}
	return oldValue.EntityType, nil
}

// ClearEntityType clears the value of the "entity_type" field.
func (m *ProcessedItemMutation) ClearEntityType() {
	m.entity_type = nil
	m.clearedFields[processeditem.FieldEntityType] = struct{}{}
}

// EntityTypeCleared returns if the "entity_type" field was cleared in this mutation.
func (m *ProcessedItemMutation) EntityTypeCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldEntityType]
	return ok
}

// ResetEntityType resets all changes to the "entity_type" field.
func (m *ProcessedItemMutation) ResetEntityType() {
	m.entity_type = nil
	delete(m.clearedFields, processeditem.FieldEntityType)
}

// SetModality sets the "modality" field.
func (m *ProcessedItemMutation) SetModality(s string) {
	m.modality = &s
}

// Modality returns the value of the "modality" field in the mutation.
func (m *ProcessedItemMutation) Modality() (r string, exists bool) {
	v := m.modality
	if v == nil {
		return
	}
	return *v, true
}

// OldModality returns the old "modality" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldModality(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldModality is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldModality requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldModality: %w", err)
	}
	return oldValue.Modality, nil
}

// ClearModality clears the value of the "modality" field.
func (m *ProcessedItemMutation) ClearModality() {
	m.modality = nil
	m.clearedFields[processeditem.FieldModality] = struct{}{}
}

// ModalityCleared returns if the "modality" field was cleared in this mutation.
func (m *ProcessedItemMutation) ModalityCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldModality]
	return ok
}

// ResetModality resets all changes to the "modality" field.
func (m *ProcessedItemMutation) ResetModality() {
	m.modality = nil
	delete(m.clearedFields, processeditem.FieldModality)
}

// SetTags sets the "tags" field.
func (m *ProcessedItemMutation) SetTags(s []string) {
	m.tags = &s
	m.appendtags = nil
}

// Tags returns the value of the "tags" field in the mutation.
func (m *ProcessedItemMutation) Tags() (r []string, exists bool) {
	v := m.tags
	if v == nil {
		return
	}
	return *v, true
}

// OldTags returns the old "tags" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldTags(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTags is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTags requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTags: %w", err)
	}
	return oldValue.Tags, nil
}

// AppendTags adds s to the "tags" field.
func (m *ProcessedItemMutation) AppendTags(s []string) {
	m.appendtags = append(m.appendtags, s...)
}

// AppendedTags returns the list of values that were appended to the "tags" field in this mutation.
func (m *ProcessedItemMutation) AppendedTags() ([]string, bool) {
	if len(m.appendtags) == 0 {
		return nil, false
	}
	return m.appendtags, true
}

// ClearTags clears the value of the "tags" field.
func (m *ProcessedItemMutation) ClearTags() {
	m.tags = nil
	m.appendtags = nil
	m.clearedFields[processeditem.FieldTags] = struct{}{}
}

// TagsCleared returns if the "tags" field was cleared in this mutation.
func (m *ProcessedItemMutation) TagsCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldTags]
	return ok
}

// ResetTags resets all changes to the "tags" field.
func (m *ProcessedItemMutation) ResetTags() {
	m.tags = nil
	m.appendtags = nil
	delete(m.clearedFields, processeditem.FieldTags)
}

// SetCategories sets the "categories" field.
func (m *ProcessedItemMutation) SetCategories(s []string) {
	m.categories = &s
	m.appendcategories = nil
}

// Categories returns the value of the "categories" field in the mutation.
func (m *ProcessedItemMutation) Categories() (r []string, exists bool) {
	v := m.categories
	if v == nil {
		return
	}
	return *v, true
}

// OldCategories returns the old "categories" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldCategories(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCategories is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCategories requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCategories: %w", err)
	}
	return oldValue.Categories, nil
}

// AppendCategories adds s to the "categories" field.
func (m *ProcessedItemMutation) AppendCategories(s []string) {
	m.appendcategories = append(m.appendcategories, s...)
}

// AppendedCategories returns the list of values that were appended to the "categories" field in this mutation.
func (m *ProcessedItemMutation) AppendedCategories() ([]string, bool) {
	if len(m.appendcategories) == 0 {
		return nil, false
	}
	return m.appendcategories, true
}

// ClearCategories clears the value of the "categories" field.
func (m *ProcessedItemMutation) ClearCategories() {
	m.categories = nil
	m.appendcategories = nil
	m.clearedFields[processeditem.FieldCategories] = struct{}{}
}

// CategoriesCleared returns if the "categories" field was cleared in this mutation.
func (m *ProcessedItemMutation) CategoriesCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldCategories]
	return ok
}

// ResetCategories resets all changes to the "categories" field.
func (m *ProcessedItemMutation) ResetCategories() {
	m.categories = nil
	m.appendcategories = nil
	delete(m.clearedFields, processeditem.FieldCategories)
}

// SetPurposes sets the "purposes" field.
func (m *ProcessedItemMutation) SetPurposes(s []string) {
	m.purposes = &s
	m.appendpurposes = nil
}

// Purposes returns the value of the "purposes" field in the mutation.
func (m *ProcessedItemMutation) Purposes() (r []string, exists bool) {
	v := m.purposes
	if v == nil {
		return
	}
	return *v, true
}

// OldPurposes returns the old "purposes" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldPurposes(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurposes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurposes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurposes: %w", err)
	}
	return oldValue.Purposes, nil
}

// AppendPurposes adds s to the "purposes" field.
func (m *ProcessedItemMutation) AppendPurposes(s []string) {
	m.appendpurposes = append(m.appendpurposes, s...)
}

// AppendedPurposes returns the list of values that were appended to the "purposes" field in this mutation.
func (m *ProcessedItemMutation) AppendedPurposes() ([]string, bool) {
	if len(m.appendpurposes) == 0 {
		return nil, false
	}
	return m.appendpurposes, true
}

// ClearPurposes clears the value of the "purposes" field.
func (m *ProcessedItemMutation) ClearPurposes() {
	m.purposes = nil
	m.appendpurposes = nil
	m.clearedFields[processeditem.FieldPurposes] = struct{}{}
}

// PurposesCleared returns if the "purposes" field was cleared in this mutation.
func (m *ProcessedItemMutation) PurposesCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldPurposes]
	return ok
}

// ResetPurposes resets all changes to the "purposes" field.
func (m *ProcessedItemMutation) ResetPurposes() {
	m.purposes = nil
	m.appendpurposes = nil
	delete(m.clearedFields, processeditem.FieldPurposes)
}

// SetQuestions sets the "questions" field.
func (m *ProcessedItemMutation) SetQuestions(s []string) {
	m.questions = &s
	m.appendquestions = nil
}

// Questions returns the value of the "questions" field in the mutation.
func (m *ProcessedItemMutation) Questions() (r []string, exists bool) {
	v := m.questions
	if v == nil {
		return
	}
	return *v, true
}

// OldQuestions returns the old "questions" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldQuestions(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuestions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuestions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuestions: %w", err)
	}
	return oldValue.Questions, nil
}

// AppendQuestions adds s to the "questions" field.
func (m *ProcessedItemMutation) AppendQuestions(s []string) {
	m.appendquestions = append(m.appendquestions, s...)
}

// AppendedQuestions returns the list of values that were appended to the "questions" field in this mutation.
func (m *ProcessedItemMutation) AppendedQuestions() ([]string, bool) {
	if len(m.appendquestions) == 0 {
		return nil, false
	}
	return m.appendquestions, true
}

// ClearQuestions clears the value of the "questions" field.
func (m *ProcessedItemMutation) ClearQuestions() {
	m.questions = nil
	m.appendquestions = nil
	m.clearedFields[processeditem.FieldQuestions] = struct{}{}
}

// QuestionsCleared returns if the "questions" field was cleared in this mutation.
func (m *ProcessedItemMutation) QuestionsCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldQuestions]
	return ok
}

// ResetQuestions resets all changes to the "questions" field.
func (m *ProcessedItemMutation) ResetQuestions() {
	m.questions = nil
	m.appendquestions = nil
	delete(m.clearedFields, processeditem.FieldQuestions)
}

// SetStatements sets the "statements" field.
func (m *ProcessedItemMutation) SetStatements(e []entity.Statement) {
	m.statements = &e
	m.appendstatements = nil
}

// Statements returns the value of the "statements" field in the mutation.
func (m *ProcessedItemMutation) Statements() (r []entity.Statement, exists bool) {
	v := m.statements
	if v == nil {
		return
	}
	return *v, true
}

// OldStatements returns the old "statements" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldStatements(ctx context.Context) (v []entity.Statement, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatements is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatements requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatements: %w", err)
	}
	return oldValue.Statements, nil
}

// AppendStatements adds e to the "statements" field.
func (m *ProcessedItemMutation) AppendStatements(e []entity.Statement) {
	m.appendstatements = append(m.appendstatements, e...)
}

// AppendedStatements returns the list of values that were appended to the "statements" field in this mutation.
func (m *ProcessedItemMutation) AppendedStatements() ([]entity.Statement, bool) {
	if len(m.appendstatements) == 0 {
		return nil, false
	}
	return m.appendstatements, true
}

// ClearStatements clears the value of the "statements" field.
func (m *ProcessedItemMutation) ClearStatements() {
	m.statements = nil
	m.appendstatements = nil
	m.clearedFields[processeditem.FieldStatements] = struct{}{}
}

// StatementsCleared returns if the "statements" field was cleared in this mutation.
func (m *ProcessedItemMutation) StatementsCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldStatements]
	return ok
}

// ResetStatements resets all changes to the "statements" field.
func (m *ProcessedItemMutation) ResetStatements() {
	m.statements = nil
	m.appendstatements = nil
	delete(m.clearedFields, processeditem.FieldStatements)
}

// SetStatus sets the "status" field.
func (m *ProcessedItemMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ProcessedItemMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldStatus(ctx context.Context) (v string, err error) {
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
func (m *ProcessedItemMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ProcessedItemMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ProcessedItemMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProcessedItemMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ProcessedItemMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ProcessedItemMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *ProcessedItemMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetLastProcessed sets the "last_processed" field.
func (m *ProcessedItemMutation) SetLastProcessed(t time.Time) {
	m.last_processed = &t
}

// LastProcessed returns the value of the "last_processed" field in the mutation.
func (m *ProcessedItemMutation) LastProcessed() (r time.Time, exists bool) {
	v := m.last_processed
	if v == nil {
		return
	}
	return *v, true
}

// OldLastProcessed returns the old "last_processed" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldLastProcessed(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastProcessed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastProcessed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastProcessed: %w", err)
	}
	return oldValue.LastProcessed, nil
}

// ClearLastProcessed clears the value of the "last_processed" field.
func (m *ProcessedItemMutation) ClearLastProcessed() {
	m.last_processed = nil
	m.clearedFields[processeditem.FieldLastProcessed] = struct{}{}
}

// LastProcessedCleared returns if the "last_processed" field was cleared in this mutation.
func (m *ProcessedItemMutation) LastProcessedCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldLastProcessed]
	return ok
}

// ResetLastProcessed resets all changes to the "last_processed" field.
func (m *ProcessedItemMutation) ResetLastProcessed() {
	m.last_processed = nil
	delete(m.clearedFields, processeditem.FieldLastProcessed)
}

// SetFailureCount sets the "failure_count" field.
func (m *ProcessedItemMutation) SetFailureCount(i int) {
	m.failure_count = &i
	m.addfailure_count = nil
}

// FailureCount returns the value of the "failure_count" field in the mutation.
func (m *ProcessedItemMutation) FailureCount() (r int, exists bool) {
	v := m.failure_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFailureCount returns the old "failure_count" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldFailureCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFailureCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFailureCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFailureCount: %w", err)
	}
	return oldValue.FailureCount, nil
}

// AddFailureCount adds i to the "failure_count" field.
func (m *ProcessedItemMutation) AddFailureCount(i int) {
	if m.addfailure_count != nil {
		*m.addfailure_count += i
	} else {
		m.addfailure_count = &i
	}
}

// AddedFailureCount returns the value that was added to the "failure_count" field in this mutation.
func (m *ProcessedItemMutation) AddedFailureCount() (r int, exists bool) {
	v := m.addfailure_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFailureCount resets all changes to the "failure_count" field.
func (m *ProcessedItemMutation) ResetFailureCount() {
	m.failure_count = nil
	m.addfailure_count = nil
}

// SetProcessingLog sets the "processing_log" field.
func (m *ProcessedItemMutation) SetProcessingLog(ee []entity.LogEntry) {
	m.processing_log = &ee
	m.appendprocessing_log = nil
}

// ProcessingLog returns the value of the "processing_log" field in the mutation.
func (m *ProcessedItemMutation) ProcessingLog() (r []entity.LogEntry, exists bool) {
	v := m.processing_log
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingLog returns the old "processing_log" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldProcessingLog(ctx context.Context) (v []entity.LogEntry, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingLog is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingLog requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingLog: %w", err)
	}
	return oldValue.ProcessingLog, nil
}

// AppendProcessingLog adds ee to the "processing_log" field.
func (m *ProcessedItemMutation) AppendProcessingLog(ee []entity.LogEntry) {
	m.appendprocessing_log = append(m.appendprocessing_log, ee...)
}

// AppendedProcessingLog returns the list of values that were appended to the "processing_log" field in this mutation.
func (m *ProcessedItemMutation) AppendedProcessingLog() ([]entity.LogEntry, bool) {
	if len(m.appendprocessing_log) == 0 {
		return nil, false
	}
	return m.appendprocessing_log, true
}

// ClearProcessingLog clears the value of the "processing_log" field.
func (m *ProcessedItemMutation) ClearProcessingLog() {
	m.processing_log = nil
	m.appendprocessing_log = nil
	m.clearedFields[processeditem.FieldProcessingLog] = struct{}{}
}

// ProcessingLogCleared returns if the "processing_log" field was cleared in this mutation.
func (m *ProcessedItemMutation) ProcessingLogCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldProcessingLog]
	return ok
}

// ResetProcessingLog resets all changes to the "processing_log" field.
func (m *ProcessedItemMutation) ResetProcessingLog() {
	m.processing_log = nil
	m.appendprocessing_log = nil
	delete(m.clearedFields, processeditem.FieldProcessingLog)
}

// SetWeather sets the "weather" field.
func (m *ProcessedItemMutation) SetWeather(ec *entity.WeatherContext) {
	m.weather = &ec
}

// Weather returns the value of the "weather" field in the mutation.
func (m *ProcessedItemMutation) Weather() (r *entity.WeatherContext, exists bool) {
	v := m.weather
	if v == nil {
		return
	}
	return *v, true
}

// OldWeather returns the old "weather" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldWeather(ctx context.Context) (v *entity.WeatherContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeather is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeather requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeather: %w", err)
	}
	return oldValue.Weather, nil
}

// ClearWeather clears the value of the "weather" field.
func (m *ProcessedItemMutation) ClearWeather() {
	m.weather = nil
	m.clearedFields[processeditem.FieldWeather] = struct{}{}
}

// WeatherCleared returns if the "weather" field was cleared in this mutation.
func (m *ProcessedItemMutation) WeatherCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldWeather]
	return ok
}

// ResetWeather resets all changes to the "weather" field.
func (m *ProcessedItemMutation) ResetWeather() {
	m.weather = nil
	delete(m.clearedFields, processeditem.FieldWeather)
}

// SetActivity sets the "activity" field.
func (m *ProcessedItemMutation) SetActivity(ec *entity.ActivityContext) {
	m.activity = &ec
}

// Activity returns the value of the "activity" field in the mutation.
func (m *ProcessedItemMutation) Activity() (r *entity.ActivityContext, exists bool) {
	v := m.activity
	if v == nil {
		return
	}
	return *v, true
}

// OldActivity returns the old "activity" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldActivity(ctx context.Context) (v *entity.ActivityContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivity: %w", err)
	}
	return oldValue.Activity, nil
}

// ClearActivity clears the value of the "activity" field.
func (m *ProcessedItemMutation) ClearActivity() {
	m.activity = nil
	m.clearedFields[processeditem.FieldActivity] = struct{}{}
}

// ActivityCleared returns if the "activity" field was cleared in this mutation.
func (m *ProcessedItemMutation) ActivityCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldActivity]
	return ok
}

// ResetActivity resets all changes to the "activity" field.
func (m *ProcessedItemMutation) ResetActivity() {
	m.activity = nil
	delete(m.clearedFields, processeditem.FieldActivity)
}

// SetPlace sets the "place" field.
func (m *ProcessedItemMutation) SetPlace(ec *entity.PlaceContext) {
	m.place = &ec
}

// Place returns the value of the "place" field in the mutation.
func (m *ProcessedItemMutation) Place() (r *entity.PlaceContext, exists bool) {
	v := m.place
	if v == nil {
		return
	}
	return *v, true
}

// OldPlace returns the old "place" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldPlace(ctx context.Context) (v *entity.PlaceContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlace is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlace requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlace: %w", err)
	}
	return oldValue.Place, nil
}

// ClearPlace clears the value of the "place" field.
func (m *ProcessedItemMutation) ClearPlace() {
	m.place = nil
	m.clearedFields[processeditem.FieldPlace] = struct{}{}
}

// PlaceCleared returns if the "place" field was cleared in this mutation.
func (m *ProcessedItemMutation) PlaceCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldPlace]
	return ok
}

// ResetPlace resets all changes to the "place" field.
func (m *ProcessedItemMutation) ResetPlace() {
	m.place = nil
	delete(m.clearedFields, processeditem.FieldPlace)
}

// SetWeb sets the "web" field.
func (m *ProcessedItemMutation) SetWeb(ec *entity.WebContext) {
	m.web = &ec
}

// Web returns the value of the "web" field in the mutation.
func (m *ProcessedItemMutation) Web() (r *entity.WebContext, exists bool) {
	v := m.web
	if v == nil {
		return
	}
	return *v, true
}

// OldWeb returns the old "web" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldWeb(ctx context.Context) (v *entity.WebContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWeb is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWeb requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWeb: %w", err)
	}
	return oldValue.Web, nil
}

// ClearWeb clears the value of the "web" field.
func (m *ProcessedItemMutation) ClearWeb() {
	m.web = nil
	m.clearedFields[processeditem.FieldWeb] = struct{}{}
}

// WebCleared returns if the "web" field was cleared in this mutation.
func (m *ProcessedItemMutation) WebCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldWeb]
	return ok
}

// ResetWeb resets all changes to the "web" field.
func (m *ProcessedItemMutation) ResetWeb() {
	m.web = nil
	delete(m.clearedFields, processeditem.FieldWeb)
}

// SetDocument sets the "document" field.
func (m *ProcessedItemMutation) SetDocument(ec *entity.DocumentContext) {
	m.document = &ec
}

// Document returns the value of the "document" field in the mutation.
func (m *ProcessedItemMutation) Document() (r *entity.DocumentContext, exists bool) {
	v := m.document
	if v == nil {
		return
	}
	return *v, true
}

// OldDocument returns the old "document" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldDocument(ctx context.Context) (v *entity.DocumentContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocument is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocument requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocument: %w", err)
	}
	return oldValue.Document, nil
}

// ClearDocument clears the value of the "document" field.
func (m *ProcessedItemMutation) ClearDocument() {
	m.document = nil
	m.clearedFields[processeditem.FieldDocument] = struct{}{}
}

// DocumentCleared returns if the "document" field was cleared in this mutation.
func (m *ProcessedItemMutation) DocumentCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldDocument]
	return ok
}

// ResetDocument resets all changes to the "document" field.
func (m *ProcessedItemMutation) ResetDocument() {
	m.document = nil
	delete(m.clearedFields, processeditem.FieldDocument)
}

// SetQrCode sets the "qr_code" field.
func (m *ProcessedItemMutation) SetQrCode(ecc *entity.QRCodeContext) {
	m.qr_code = &ecc
}

// QrCode returns the value of the "qr_code" field in the mutation.
func (m *ProcessedItemMutation) QrCode() (r *entity.QRCodeContext, exists bool) {
	v := m.qr_code
	if v == nil {
		return
	}
	return *v, true
}

// OldQrCode returns the old "qr_code" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldQrCode(ctx context.Context) (v *entity.QRCodeContext, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQrCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQrCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQrCode: %w", err)
	}
	return oldValue.QrCode, nil
}

// ClearQrCode clears the value of the "qr_code" field.
func (m *ProcessedItemMutation) ClearQrCode() {
	m.qr_code = nil
	m.clearedFields[processeditem.FieldQrCode] = struct{}{}
}

// QrCodeCleared returns if the "qr_code" field was cleared in this mutation.
func (m *ProcessedItemMutation) QrCodeCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldQrCode]
	return ok
}

// ResetQrCode resets all changes to the "qr_code" field.
func (m *ProcessedItemMutation) ResetQrCode() {
	m.qr_code = nil
	delete(m.clearedFields, processeditem.FieldQrCode)
}

// SetCoverImagePath sets the "cover_image_path" field.
func (m *ProcessedItemMutation) SetCoverImagePath(s string) {
	m.cover_image_path = &s
}

// CoverImagePath returns the value of the "cover_image_path" field in the mutation.
func (m *ProcessedItemMutation) CoverImagePath() (r string, exists bool) {
	v := m.cover_image_path
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverImagePath returns the old "cover_image_path" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldCoverImagePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverImagePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverImagePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverImagePath: %w", err)
	}
	return oldValue.CoverImagePath, nil
}

// ClearCoverImagePath clears the value of the "cover_image_path" field.
func (m *ProcessedItemMutation) ClearCoverImagePath() {
	m.cover_image_path = nil
	m.clearedFields[processeditem.FieldCoverImagePath] = struct{}{}
}

// CoverImagePathCleared returns if the "cover_image_path" field was cleared in this mutation.
func (m *ProcessedItemMutation) CoverImagePathCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldCoverImagePath]
	return ok
}

// ResetCoverImagePath resets all changes to the "cover_image_path" field.
func (m *ProcessedItemMutation) ResetCoverImagePath() {
	m.cover_image_path = nil
	delete(m.clearedFields, processeditem.FieldCoverImagePath)
}

// SetPrice sets the "price" field.
func (m *ProcessedItemMutation) SetPrice(f float64) {
	m.price = &f
	m.addprice = nil
}

// Price returns the value of the "price" field in the mutation.
func (m *ProcessedItemMutation) Price() (r float64, exists bool) {
	v := m.price
	if v == nil {
		return
	}
	return *v, true
}

// OldPrice returns the old "price" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldPrice(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrice: %w", err)
	}
	return oldValue.Price, nil
}

// AddPrice adds f to the "price" field.
func (m *ProcessedItemMutation) AddPrice(f float64) {
	if m.addprice != nil {
		*m.addprice += f
	} else {
		m.addprice = &f
	}
}

// AddedPrice returns the value that was added to the "price" field in this mutation.
func (m *ProcessedItemMutation) AddedPrice() (r float64, exists bool) {
	v := m.addprice
	if v == nil {
		return
	}
	return *v, true
}

// ResetPrice resets all changes to the "price" field.
func (m *ProcessedItemMutation) ResetPrice() {
	m.price = nil
	m.addprice = nil
}

// SetRating sets the "rating" field.
func (m *ProcessedItemMutation) SetRating(f float64) {
	m.rating = &f
	m.addrating = nil
}

// Rating returns the value of the "rating" field in the mutation.
func (m *ProcessedItemMutation) Rating() (r float64, exists bool) {
	v := m.rating
	if v == nil {
		return
	}
	return *v, true
}

// OldRating returns the old "rating" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldRating(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRating: %w", err)
	}
	return oldValue.Rating, nil
}

// AddRating adds f to the "rating" field.
func (m *ProcessedItemMutation) AddRating(f float64) {
	if m.addrating != nil {
		*m.addrating += f
	} else {
		m.addrating = &f
	}
}

// AddedRating returns the value that was added to the "rating" field in this mutation.
func (m *ProcessedItemMutation) AddedRating() (r float64, exists bool) {
	v := m.addrating
	if v == nil {
		return
	}
	return *v, true
}

// ResetRating resets all changes to the "rating" field.
func (m *ProcessedItemMutation) ResetRating() {
	m.rating = nil
	m.addrating = nil
}

// SetSessionID sets the "session_id" field.
func (m *ProcessedItemMutation) SetSessionID(s string) {
	m.session_id = &s
}

// SessionID returns the value of the "session_id" field in the mutation.
func (m *ProcessedItemMutation) SessionID() (r string, exists bool) {
	v := m.session_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSessionID returns the old "session_id" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldSessionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSessionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSessionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSessionID: %w", err)
	}
	return oldValue.SessionID, nil
}

// ClearSessionID clears the value of the "session_id" field.
func (m *ProcessedItemMutation) ClearSessionID() {
	m.session_id = nil
	m.clearedFields[processeditem.FieldSessionID] = struct{}{}
}

// SessionIDCleared returns if the "session_id" field was cleared in this mutation.
func (m *ProcessedItemMutation) SessionIDCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldSessionID]
	return ok
}

// ResetSessionID resets all changes to the "session_id" field.
func (m *ProcessedItemMutation) ResetSessionID() {
	m.session_id = nil
	delete(m.clearedFields, processeditem.FieldSessionID)
}

// SetParentID sets the "parent_id" field.
func (m *ProcessedItemMutation) SetParentID(u uuid.UUID) {
	m.parent_id = &u
}

// ParentID returns the value of the "parent_id" field in the mutation.
func (m *ProcessedItemMutation) ParentID() (r uuid.UUID, exists bool) {
	v := m.parent_id
	if v == nil {
		return
	}
	return *v, true
}

// OldParentID returns the old "parent_id" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldParentID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentID: %w", err)
	}
	return oldValue.ParentID, nil
}

// ClearParentID clears the value of the "parent_id" field.
func (m *ProcessedItemMutation) ClearParentID() {
	m.parent_id = nil
	m.clearedFields[processeditem.FieldParentID] = struct{}{}
}

// ParentIDCleared returns if the "parent_id" field was cleared in this mutation.
func (m *ProcessedItemMutation) ParentIDCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldParentID]
	return ok
}

// ResetParentID resets all changes to the "parent_id" field.
func (m *ProcessedItemMutation) ResetParentID() {
	m.parent_id = nil
	delete(m.clearedFields, processeditem.FieldParentID)
}

// SetMasterCaptureID sets the "master_capture_id" field.
func (m *ProcessedItemMutation) SetMasterCaptureID(s string) {
	m.master_capture_id = &s
}

// MasterCaptureID returns the value of the "master_capture_id" field in the mutation.
func (m *ProcessedItemMutation) MasterCaptureID() (r string, exists bool) {
	v := m.master_capture_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMasterCaptureID returns the old "master_capture_id" field's value of the ProcessedItem entity.
// If the ProcessedItem object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ProcessedItemMutation) OldMasterCaptureID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMasterCaptureID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMasterCaptureID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMasterCaptureID: %w", err)
	}
	return oldValue.MasterCaptureID, nil
}

// ClearMasterCaptureID clears the value of the "master_capture_id" field.
func (m *ProcessedItemMutation) ClearMasterCaptureID() {
	m.master_capture_id = nil
	m.clearedFields[processeditem.FieldMasterCaptureID] = struct{}{}
}

// MasterCaptureIDCleared returns if the "master_capture_id" field was cleared in this mutation.
func (m *ProcessedItemMutation) MasterCaptureIDCleared() bool {
	_, ok := m.clearedFields[processeditem.FieldMasterCaptureID]
	return ok
}

// ResetMasterCaptureID resets all changes to the "master_capture_id" field.
func (m *ProcessedItemMutation) ResetMasterCaptureID() {
	m.master_capture_id = nil
	delete(m.clearedFields, processeditem.FieldMasterCaptureID)
}

// Where appends a list predicates to the ProcessedItemMutation builder.
func (m *ProcessedItemMutation) Where(ps ...predicate.ProcessedItem) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ProcessedItemMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ProcessedItemMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ProcessedItem, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ProcessedItemMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ProcessedItemMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ProcessedItem).
func (m *ProcessedItemMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ProcessedItemMutation) Fields() []string {
	fields := make([]string, 0, 28)
	if m.url != nil {
		fields = append(fields, processeditem.FieldURL)
	}
	if m.title != nil {
		fields = append(fields, processeditem.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, processeditem.FieldSummary)
	}
	if m.entity_type != nil {
		fields = append(fields, processeditem.FieldEntityType)
	}
	if m.modality != nil {
		fields = append(fields, processeditem.FieldModality)
	}
	if m.tags != nil {
		fields = append(fields, processeditem.FieldTags)
	}
	if m.categories != nil {
		fields = append(fields, processeditem.FieldCategories)
	}
	if m.purposes != nil {
		fields = append(fields, processeditem.FieldPurposes)
	}
	if m.questions != nil {
		fields = append(fields, processeditem.FieldQuestions)
	}
	if m.statements != nil {
		fields = append(fields, processeditem.FieldStatements)
	}
	if m.status != nil {
		fields = append(fields, processeditem.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, processeditem.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, processeditem.FieldUpdatedAt)
	}
	if m.last_processed != nil {
		fields = append(fields, processeditem.FieldLastProcessed)
	}
	if m.failure_count != nil {
		fields = append(fields, processeditem.FieldFailureCount)
	}
	if m.processing_log != nil {
		fields = append(fields, processeditem.FieldProcessingLog)
	}
	if m.weather != nil {
		fields = append(fields, processeditem.FieldWeather)
	}
	if m.activity != nil {
		fields = append(fields, processeditem.FieldActivity)
	}
	if m.place != nil {
		fields = append(fields, processeditem.FieldPlace)
	}
	if m.web != nil {
		fields = append(fields, processeditem.FieldWeb)
	}
	if m.document != nil {
		fields = append(fields, processeditem.FieldDocument)
	}
	if m.qr_code != nil {
		fields = append(fields, processeditem.FieldQrCode)
	}
	if m.cover_image_path != nil {
		fields = append(fields, processeditem.FieldCoverImagePath)
	}
	if m.price != nil {
		fields = append(fields, processeditem.FieldPrice)
	}
	if m.rating != nil {
		fields = append(fields, processeditem.FieldRating)
	}
	if m.session_id != nil {
		fields = append(fields, processeditem.FieldSessionID)
	}
	if m.parent_id != nil {
		fields = append(fields, processeditem.FieldParentID)
	}
	if m.master_capture_id != nil {
		fields = append(fields, processeditem.FieldMasterCaptureID)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ProcessedItemMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case processeditem.FieldURL:
		return m.URL()
	case processeditem.FieldTitle:
		return m.Title()
	case processeditem.FieldSummary:
		return m.Summary()
	case processeditem.FieldEntityType:
		return m.EntityType()
	case processeditem.FieldModality:
		return m.Modality()
	case processeditem.FieldTags:
		return m.Tags()
	case processeditem.FieldCategories:
		return m.Categories()
	case processeditem.FieldPurposes:
		return m.Purposes()
	case processeditem.FieldQuestions:
		return m.Questions()
	case processeditem.FieldStatements:
		return m.Statements()
	case processeditem.FieldStatus:
		return m.Status()
	case processeditem.FieldCreatedAt:
		return m.CreatedAt()
	case processeditem.FieldUpdatedAt:
		return m.UpdatedAt()
	case processeditem.FieldLastProcessed:
		return m.LastProcessed()
	case processeditem.FieldFailureCount:
		return m.FailureCount()
	case processeditem.FieldProcessingLog:
		return m.ProcessingLog()
	case processeditem.FieldWeather:
		return m.Weather()
	case processeditem.FieldActivity:
		return m.Activity()
	case processeditem.FieldPlace:
		return m.Place()
	case processeditem.FieldWeb:
		return m.Web()
	case processeditem.FieldDocument:
		return m.Document()
	case processeditem.FieldQrCode:
		return m.QrCode()
	case processeditem.FieldCoverImagePath:
		return m.CoverImagePath()
	case processeditem.FieldPrice:
		return m.Price()
	case processeditem.FieldRating:
		return m.Rating()
	case processeditem.FieldSessionID:
		return m.SessionID()
	case processeditem.FieldParentID:
		return m.ParentID()
	case processeditem.FieldMasterCaptureID:
		return m.MasterCaptureID()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ProcessedItemMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case processeditem.FieldURL:
		return m.OldURL(ctx)
	case processeditem.FieldTitle:
		return m.OldTitle(ctx)
	case processeditem.FieldSummary:
		return m.OldSummary(ctx)
	case processeditem.FieldEntityType:
		return m.OldEntityType(ctx)
	case processeditem.FieldModality:
		return m.OldModality(ctx)
	case processeditem.FieldTags:
		return m.OldTags(ctx)
	case processeditem.FieldCategories:
		return m.OldCategories(ctx)
	case processeditem.FieldPurposes:
		return m.OldPurposes(ctx)
	case processeditem.FieldQuestions:
		return m.OldQuestions(ctx)
	case processeditem.FieldStatements:
		return m.OldStatements(ctx)
	case processeditem.FieldStatus:
		return m.OldStatus(ctx)
	case processeditem.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case processeditem.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case processeditem.FieldLastProcessed:
		return m.OldLastProcessed(ctx)
	case processeditem.FieldFailureCount:
		return m.OldFailureCount(ctx)
	case processeditem.FieldProcessingLog:
		return m.OldProcessingLog(ctx)
	case processeditem.FieldWeather:
		return m.OldWeather(ctx)
	case processeditem.FieldActivity:
		return m.OldActivity(ctx)
	case processeditem.FieldPlace:
		return m.OldPlace(ctx)
	case processeditem.FieldWeb:
		return m.OldWeb(ctx)
	case processeditem.FieldDocument:
		return m.OldDocument(ctx)
	case processeditem.FieldQrCode:
		return m.OldQrCode(ctx)
	case processeditem.FieldCoverImagePath:
		return m.OldCoverImagePath(ctx)
	case processeditem.FieldPrice:
		return m.OldPrice(ctx)
	case processeditem.FieldRating:
		return m.OldRating(ctx)
	case processeditem.FieldSessionID:
		return m.OldSessionID(ctx)
	case processeditem.FieldParentID:
		return m.OldParentID(ctx)
	case processeditem.FieldMasterCaptureID:
		return m.OldMasterCaptureID(ctx)
	}
	return nil, fmt.Errorf("unknown ProcessedItem field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedItemMutation) SetField(name string, value ent.Value) error {
	switch name {
	case processeditem.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case processeditem.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case processeditem.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case processeditem.FieldEntityType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEntityType(v)
		return nil
	case processeditem.FieldModality:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetModality(v)
		return nil
	case processeditem.FieldTags:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTags(v)
		return nil
	case processeditem.FieldCategories:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCategories(v)
		return nil
	case processeditem.FieldPurposes:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurposes(v)
		return nil
	case processeditem.FieldQuestions:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuestions(v)
		return nil
	case processeditem.FieldStatements:
		v, ok := value.([]entity.Statement)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatements(v)
		return nil
	case processeditem.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case processeditem.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case processeditem.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case processeditem.FieldLastProcessed:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastProcessed(v)
		return nil
	case processeditem.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFailureCount(v)
		return nil
	case processeditem.FieldProcessingLog:
		v, ok := value.([]entity.LogEntry)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingLog(v)
		return nil
	case processeditem.FieldWeather:
		v, ok := value.(*entity.WeatherContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeather(v)
		return nil
	case processeditem.FieldActivity:
		v, ok := value.(*entity.ActivityContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivity(v)
		return nil
	case processeditem.FieldPlace:
		v, ok := value.(*entity.PlaceContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlace(v)
		return nil
	case processeditem.FieldWeb:
		v, ok := value.(*entity.WebContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWeb(v)
		return nil
	case processeditem.FieldDocument:
		v, ok := value.(*entity.DocumentContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocument(v)
		return nil
	case processeditem.FieldQrCode:
		v, ok := value.(*entity.QRCodeContext)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQrCode(v)
		return nil
	case processeditem.FieldCoverImagePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverImagePath(v)
		return nil
	case processeditem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrice(v)
		return nil
	case processeditem.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRating(v)
		return nil
	case processeditem.FieldSessionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSessionID(v)
		return nil
	case processeditem.FieldParentID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentID(v)
		return nil
	case processeditem.FieldMasterCaptureID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMasterCaptureID(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedItem field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ProcessedItemMutation) AddedFields() []string {
	var fields []string
	if m.addfailure_count != nil {
		fields = append(fields, processeditem.FieldFailureCount)
	}
	if m.addprice != nil {
		fields = append(fields, processeditem.FieldPrice)
	}
	if m.addrating != nil {
		fields = append(fields, processeditem.FieldRating)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ProcessedItemMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case processeditem.FieldFailureCount:
		return m.AddedFailureCount()
	case processeditem.FieldPrice:
		return m.AddedPrice()
	case processeditem.FieldRating:
		return m.AddedRating()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ProcessedItemMutation) AddField(name string, value ent.Value) error {
	switch name {
	case processeditem.FieldFailureCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFailureCount(v)
		return nil
	case processeditem.FieldPrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPrice(v)
		return nil
	case processeditem.FieldRating:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRating(v)
		return nil
	}
	return fmt.Errorf("unknown ProcessedItem numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ProcessedItemMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(processeditem.FieldURL) {
		fields = append(fields, processeditem.FieldURL)
	}
	if m.FieldCleared(processeditem.FieldTitle) {
		fields = append(fields, processeditem.FieldTitle)
	}
	if m.FieldCleared(processeditem.FieldSummary) {
		fields = append(fields, processeditem.FieldSummary)
	}
	if m.FieldCleared(processeditem.FieldEntityType) {
		fields = append(fields, processeditem.FieldEntityType)
	}
	if m.FieldCleared(processeditem.FieldModality) {
		fields = append(fields, processeditem.FieldModality)
	}
	if m.FieldCleared(processeditem.FieldTags) {
		fields = append(fields, processeditem.FieldTags)
	}
	if m.FieldCleared(processeditem.FieldCategories) {
		fields = append(fields, processeditem.FieldCategories)
	}
	if m.FieldCleared(processeditem.FieldPurposes) {
		fields = append(fields, processeditem.FieldPurposes)
	}
	if m.FieldCleared(processeditem.FieldQuestions) {
		fields = append(fields, processeditem.FieldQuestions)
	}
	if m.FieldCleared(processeditem.FieldStatements) {
		fields = append(fields, processeditem.FieldStatements)
	}
	if m.FieldCleared(processeditem.FieldLastProcessed) {
		fields = append(fields, processeditem.FieldLastProcessed)
	}
	if m.FieldCleared(processeditem.FieldProcessingLog) {
		fields = append(fields, processeditem.FieldProcessingLog)
	}
	if m.FieldCleared(processeditem.FieldWeather) {
		fields = append(fields, processeditem.FieldWeather)
	}
	if m.FieldCleared(processeditem.FieldActivity) {
		fields = append(fields, processeditem.FieldActivity)
	}
	if m.FieldCleared(processeditem.FieldPlace) {
		fields = append(fields, processeditem.FieldPlace)
	}
	if m.FieldCleared(processeditem.FieldWeb) {
		fields = append(fields, processeditem.FieldWeb)
	}
	if m.FieldCleared(processeditem.FieldDocument) {
		fields = append(fields, processeditem.FieldDocument)
	}
	if m.FieldCleared(processeditem.FieldQrCode) {
		fields = append(fields, processeditem.FieldQrCode)
	}
	if m.FieldCleared(processeditem.FieldCoverImagePath) {
		fields = append(fields, processeditem.FieldCoverImagePath)
	}
	if m.FieldCleared(processeditem.FieldSessionID) {
		fields = append(fields, processeditem.FieldSessionID)
	}
	if m.FieldCleared(processeditem.FieldParentID) {
		fields = append(fields, processeditem.FieldParentID)
	}
	if m.FieldCleared(processeditem.FieldMasterCaptureID) {
		fields = append(fields, processeditem.FieldMasterCaptureID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ProcessedItemMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ProcessedItemMutation) ClearField(name string) error {
	switch name {
	case processeditem.FieldURL:
		m.ClearURL()
		return nil
	case processeditem.FieldTitle:
		m.ClearTitle()
		return nil
	case processeditem.FieldSummary:
		m.ClearSummary()
		return nil
	case processeditem.FieldEntityType:
		m.ClearEntityType()
		return nil
	case processeditem.FieldModality:
		m.ClearModality()
		return nil
	case processeditem.FieldTags:
		m.ClearTags()
		return nil
	case processeditem.FieldCategories:
		m.ClearCategories()
		return nil
	case processeditem.FieldPurposes:
		m.ClearPurposes()
		return nil
	case processeditem.FieldQuestions:
		m.ClearQuestions()
		return nil
	case processeditem.FieldStatements:
		m.ClearStatements()
		return nil
	case processeditem.FieldLastProcessed:
		m.ClearLastProcessed()
		return nil
	case processeditem.FieldProcessingLog:
		m.ClearProcessingLog()
		return nil
	case processeditem.FieldWeather:
		m.ClearWeather()
		return nil
	case processeditem.FieldActivity:
		m.ClearActivity()
		return nil
	case processeditem.FieldPlace:
		m.ClearPlace()
		return nil
	case processeditem.FieldWeb:
		m.ClearWeb()
		return nil
	case processeditem.FieldDocument:
		m.ClearDocument()
		return nil
	case processeditem.FieldQrCode:
		m.ClearQrCode()
		return nil
	case processeditem.FieldCoverImagePath:
		m.ClearCoverImagePath()
		return nil
	case processeditem.FieldSessionID:
		m.ClearSessionID()
		return nil
	case processeditem.FieldParentID:
		m.ClearParentID()
		return nil
	case processeditem.FieldMasterCaptureID:
		m.ClearMasterCaptureID()
		return nil
	}
	return fmt.Errorf("unknown ProcessedItem nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ProcessedItemMutation) ResetField(name string) error {
	switch name {
	case processeditem.FieldURL:
		m.ResetURL()
		return nil
	case processeditem.FieldTitle:
		m.ResetTitle()
		return nil
	case processeditem.FieldSummary:
		m.ResetSummary()
		return nil
	case processeditem.FieldEntityType:
		m.ResetEntityType()
		return nil
	case processeditem.FieldModality:
		m.ResetModality()
		return nil
	case processeditem.FieldTags:
		m.ResetTags()
		return nil
	case processeditem.FieldCategories:
		m.ResetCategories()
		return nil
	case processeditem.FieldPurposes:
		m.ResetPurposes()
		return nil
	case processeditem.FieldQuestions:
		m.ResetQuestions()
		return nil
	case processeditem.FieldStatements:
		m.ResetStatements()
		return nil
	case processeditem.FieldStatus:
		m.ResetStatus()
		return nil
	case processeditem.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case processeditem.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case processeditem.FieldLastProcessed:
		m.ResetLastProcessed()
		return nil
	case processeditem.FieldFailureCount:
		m.ResetFailureCount()
		return nil
	case processeditem.FieldProcessingLog:
		m.ResetProcessingLog()
		return nil
	case processeditem.FieldWeather:
		m.ResetWeather()
		return nil
	case processeditem.FieldActivity:
		m.ResetActivity()
		return nil
	case processeditem.FieldPlace:
		m.ResetPlace()
		return nil
	case processeditem.FieldWeb:
		m.ResetWeb()
		return nil
	case processeditem.FieldDocument:
		m.ResetDocument()
		return nil
	case processeditem.FieldQrCode:
		m.ResetQrCode()
		return nil
	case processeditem.FieldCoverImagePath:
		m.ResetCoverImagePath()
		return nil
	case processeditem.FieldPrice:
		m.ResetPrice()
		return nil
	case processeditem.FieldRating:
		m.ResetRating()
		return nil
	case processeditem.FieldSessionID:
		m.ResetSessionID()
		return nil
	case processeditem.FieldParentID:
		m.ResetParentID()
		return nil
	case processeditem.FieldMasterCaptureID:
		m.ResetMasterCaptureID()
		return nil
	}
	return fmt.Errorf("unknown ProcessedItem field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ProcessedItemMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ProcessedItemMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ProcessedItemMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ProcessedItemMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ProcessedItemMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ProcessedItemMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ProcessedItemMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ProcessedItem unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ProcessedItemMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ProcessedItem edge %s", name)
}

// SessionMutation represents an operation that mutates the Session nodes in the graph.
type SessionMutation struct {
	config
	op            Op
	typ           string
	id            *string
	title         *string
	summary       *string
	created_at    *time.Time
	updated_at    *time.Time
	coordinate    **entity.LatLng
	place_id      *string
	location_name *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Session, error)
	predicates    []predicate.Session
}

var _ ent.Mutation = (*SessionMutation)(nil)

// sessionOption allows management of the mutation configuration using functional options.
type sessionOption func(*SessionMutation)

// newSessionMutation creates new mutation for the Session entity.
func newSessionMutation(c config, op Op, opts ...sessionOption) *SessionMutation {
	m := &SessionMutation{
		config:        c,
		op:            op,
		typ:           TypeSession,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSessionID sets the ID field of the mutation.
func withSessionID(id string) sessionOption {
	return func(m *SessionMutation) {
		var (
			err   error
			once  sync.Once
			value *Session
		)
		m.oldValue = func(ctx context.Context) (*Session, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Session.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSession sets the old Session of the mutation.
func withSession(node *Session) sessionOption {
	return func(m *SessionMutation) {
		m.oldValue = func(context.Context) (*Session, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SessionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SessionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Session entities.
func (m *SessionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SessionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SessionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Session.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTitle sets the "title" field.
func (m *SessionMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *SessionMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldTitle(ctx context.Context) (v string, err error) {
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

// ClearTitle clears the value of the "title" field.
func (m *SessionMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[session.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *SessionMutation) TitleCleared() bool {
	_, ok := m.clearedFields[session.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *SessionMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, session.FieldTitle)
}

// SetSummary sets the "summary" field.
func (m *SessionMutation) SetSummary(s string) {
	m.summary = &s
}

// Summary returns the value of the "summary" field in the mutation.
func (m *SessionMutation) Summary() (r string, exists bool) {
	v := m.summary
	if v == nil {
		return
	}
	return *v, true
}

// OldSummary returns the old "summary" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldSummary(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSummary: %w", err)
	}
	return oldValue.Summary, nil
}

// ClearSummary clears the value of the "summary" field.
func (m *SessionMutation) ClearSummary() {
	m.summary = nil
	m.clearedFields[session.FieldSummary] = struct{}{}
}

// SummaryCleared returns if the "summary" field was cleared in this mutation.
func (m *SessionMutation) SummaryCleared() bool {
	_, ok := m.clearedFields[session.FieldSummary]
	return ok
}

// ResetSummary resets all changes to the "summary" field.
func (m *SessionMutation) ResetSummary() {
	m.summary = nil
	delete(m.clearedFields, session.FieldSummary)
}

// SetCreatedAt sets the "created_at" field.
func (m *SessionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SessionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *SessionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *SessionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
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
func (m *SessionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetCoordinate sets the "coordinate" field.
func (m *SessionMutation) SetCoordinate(el *entity.LatLng) {
	m.coordinate = &el
}

// Coordinate returns the value of the "coordinate" field in the mutation.
func (m *SessionMutation) Coordinate() (r *entity.LatLng, exists bool) {
	v := m.coordinate
	if v == nil {
		return
	}
	return *v, true
}

// OldCoordinate returns the old "coordinate" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldCoordinate(ctx context.Context) (v *entity.LatLng, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoordinate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoordinate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoordinate: %w", err)
	}
	return oldValue.Coordinate, nil
}

// ClearCoordinate clears the value of the "coordinate" field.
func (m *SessionMutation) ClearCoordinate() {
	m.coordinate = nil
	m.clearedFields[session.FieldCoordinate] = struct{}{}
}

// CoordinateCleared returns if the "coordinate" field was cleared in this mutation.
func (m *SessionMutation) CoordinateCleared() bool {
	_, ok := m.clearedFields[session.FieldCoordinate]
	return ok
}

// ResetCoordinate resets all changes to the "coordinate" field.
func (m *SessionMutation) ResetCoordinate() {
	m.coordinate = nil
	delete(m.clearedFields, session.FieldCoordinate)
}

// SetPlaceID sets the "place_id" field.
func (m *SessionMutation) SetPlaceID(s string) {
	m.place_id = &s
}

// PlaceID returns the value of the "place_id" field in the mutation.
func (m *SessionMutation) PlaceID() (r string, exists bool) {
	v := m.place_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPlaceID returns the old "place_id" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldPlaceID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPlaceID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPlaceID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPlaceID: %w", err)
	}
	return oldValue.PlaceID, nil
}

// ClearPlaceID clears the value of the "place_id" field.
func (m *SessionMutation) ClearPlaceID() {
	m.place_id = nil
	m.clearedFields[session.FieldPlaceID] = struct{}{}
}

// PlaceIDCleared returns if the "place_id" field was cleared in this mutation.
func (m *SessionMutation) PlaceIDCleared() bool {
	_, ok := m.clearedFields[session.FieldPlaceID]
	return ok
}

// ResetPlaceID resets all changes to the "place_id" field.
func (m *SessionMutation) ResetPlaceID() {
	m.place_id = nil
	delete(m.clearedFields, session.FieldPlaceID)
}

// SetLocationName sets the "location_name" field.
func (m *SessionMutation) SetLocationName(s string) {
	m.location_name = &s
}

// LocationName returns the value of the "location_name" field in the mutation.
func (m *SessionMutation) LocationName() (r string, exists bool) {
	v := m.location_name
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationName returns the old "location_name" field's value of the Session entity.
// If the Session object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SessionMutation) OldLocationName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationName: %w", err)
	}
	return oldValue.LocationName, nil
}

// ClearLocationName clears the value of the "location_name" field.
func (m *SessionMutation) ClearLocationName() {
	m.location_name = nil
	m.clearedFields[session.FieldLocationName] = struct{}{}
}

// LocationNameCleared returns if the "location_name" field was cleared in this mutation.
func (m *SessionMutation) LocationNameCleared() bool {
	_, ok := m.clearedFields[session.FieldLocationName]
	return ok
}

// ResetLocationName resets all changes to the "location_name" field.
func (m *SessionMutation) ResetLocationName() {
	m.location_name = nil
	delete(m.clearedFields, session.FieldLocationName)
}

// Where appends a list predicates to the SessionMutation builder.
func (m *SessionMutation) Where(ps ...predicate.Session) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SessionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SessionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Session, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SessionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SessionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Session).
func (m *SessionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SessionMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.title != nil {
		fields = append(fields, session.FieldTitle)
	}
	if m.summary != nil {
		fields = append(fields, session.FieldSummary)
	}
	if m.created_at != nil {
		fields = append(fields, session.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, session.FieldUpdatedAt)
	}
	if m.coordinate != nil {
		fields = append(fields, session.FieldCoordinate)
	}
	if m.place_id != nil {
		fields = append(fields, session.FieldPlaceID)
	}
	if m.location_name != nil {
		fields = append(fields, session.FieldLocationName)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SessionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case session.FieldTitle:
		return m.Title()
	case session.FieldSummary:
		return m.Summary()
	case session.FieldCreatedAt:
		return m.CreatedAt()
	case session.FieldUpdatedAt:
		return m.UpdatedAt()
	case session.FieldCoordinate:
		return m.Coordinate()
	case session.FieldPlaceID:
		return m.PlaceID()
	case session.FieldLocationName:
		return m.LocationName()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SessionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case session.FieldTitle:
		return m.OldTitle(ctx)
	case session.FieldSummary:
		return m.OldSummary(ctx)
	case session.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case session.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case session.FieldCoordinate:
		return m.OldCoordinate(ctx)
	case session.FieldPlaceID:
		return m.OldPlaceID(ctx)
	case session.FieldLocationName:
		return m.OldLocationName(ctx)
	}
	return nil, fmt.Errorf("unknown Session field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case session.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case session.FieldSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSummary(v)
		return nil
	case session.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case session.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case session.FieldCoordinate:
		v, ok := value.(*entity.LatLng)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoordinate(v)
		return nil
	case session.FieldPlaceID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPlaceID(v)
		return nil
	case session.FieldLocationName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationName(v)
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SessionMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SessionMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SessionMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Session numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SessionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(session.FieldTitle) {
		fields = append(fields, session.FieldTitle)
	}
	if m.FieldCleared(session.FieldSummary) {
		fields = append(fields, session.FieldSummary)
	}
	if m.FieldCleared(session.FieldCoordinate) {
		fields = append(fields, session.FieldCoordinate)
	}
	if m.FieldCleared(session.FieldPlaceID) {
		fields = append(fields, session.FieldPlaceID)
	}
	if m.FieldCleared(session.FieldLocationName) {
		fields = append(fields, session.FieldLocationName)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SessionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SessionMutation) ClearField(name string) error {
	switch name {
	case session.FieldTitle:
		m.ClearTitle()
		return nil
	case session.FieldSummary:
		m.ClearSummary()
		return nil
	case session.FieldCoordinate:
		m.ClearCoordinate()
		return nil
	case session.FieldPlaceID:
		m.ClearPlaceID()
		return nil
	case session.FieldLocationName:
		m.ClearLocationName()
		return nil
	}
	return fmt.Errorf("unknown Session nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SessionMutation) ResetField(name string) error {
	switch name {
	case session.FieldTitle:
		m.ResetTitle()
		return nil
	case session.FieldSummary:
		m.ResetSummary()
		return nil
	case session.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case session.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case session.FieldCoordinate:
		m.ResetCoordinate()
		return nil
	case session.FieldPlaceID:
		m.ResetPlaceID()
		return nil
	case session.FieldLocationName:
		m.ResetLocationName()
		return nil
	}
	return fmt.Errorf("unknown Session field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SessionMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SessionMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SessionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SessionMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SessionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SessionMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SessionMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Session unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SessionMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Session edge %s", name)
}
