// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/capturedesk/capturedesk/gen/ent/captureinput"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/google/uuid"
)

// CaptureInput is the model entity for the CaptureInput schema.
type CaptureInput struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// Source holds the value of the "source" field.
	Source string `json:"source,omitempty"`
	// Payload holds the value of the "payload" field.
	Payload []byte `json:"payload,omitempty"`
	// PayloadPath holds the value of the "payload_path" field.
	PayloadPath string `json:"payload_path,omitempty"`
	// InputType holds the value of the "input_type" field.
	InputType string `json:"input_type,omitempty"`
	// Descriptor holds the value of the "descriptor" field.
	Descriptor   *entity.ItemDescriptor `json:"descriptor,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CaptureInput) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case captureinput.FieldPayload, captureinput.FieldDescriptor:
			values[i] = new([]byte)
		case captureinput.FieldURL, captureinput.FieldText, captureinput.FieldSource, captureinput.FieldPayloadPath, captureinput.FieldInputType:
			values[i] = new(sql.NullString)
		case captureinput.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case captureinput.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CaptureInput fields.
func (_m *CaptureInput) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case captureinput.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case captureinput.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case captureinput.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case captureinput.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case captureinput.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				_m.Source = value.String
			}
		case captureinput.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil {
				_m.Payload = *value
			}
		case captureinput.FieldPayloadPath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field payload_path", values[i])
			} else if value.Valid {
				_m.PayloadPath = value.String
			}
		case captureinput.FieldInputType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field input_type", values[i])
			} else if value.Valid {
				_m.InputType = value.String
			}
		case captureinput.FieldDescriptor:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field descriptor", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Descriptor); err != nil {
					return fmt.Errorf("unmarshal field descriptor: %w", err)
				}
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the CaptureInput.
// This includes values selected through modifiers, order, etc.
func (_m *CaptureInput) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this CaptureInput.
// Note that you need to call CaptureInput.Unwrap() before calling this method if this CaptureInput
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CaptureInput) Update() *CaptureInputUpdateOne {
	return NewCaptureInputClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CaptureInput entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CaptureInput) Unwrap() *CaptureInput {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CaptureInput is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CaptureInput) String() string {
	var builder strings.Builder
	builder.WriteString("CaptureInput(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(_m.Source)
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("payload_path=")
	builder.WriteString(_m.PayloadPath)
	builder.WriteString(", ")
	builder.WriteString("input_type=")
	builder.WriteString(_m.InputType)
	builder.WriteString(", ")
	builder.WriteString("descriptor=")
	builder.WriteString(fmt.Sprintf("%v", _m.Descriptor))
	builder.WriteByte(')')
	return builder.String()
}

// CaptureInputs is a parsable slice of CaptureInput.
type CaptureInputs []*CaptureInput
