// Code generated by ent, DO NOT EDIT.

package captureinput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the captureinput type in the database.
	Label = "capture_input"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldPayloadPath holds the string denoting the payload_path field in the database.
	FieldPayloadPath = "payload_path"
	// FieldInputType holds the string denoting the input_type field in the database.
	FieldInputType = "input_type"
	// FieldDescriptor holds the string denoting the descriptor field in the database.
	FieldDescriptor = "descriptor"
	// Table holds the table name of the captureinput in the database.
	Table = "capture_inputs"
)

// Columns holds all SQL columns for captureinput fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldURL,
	FieldText,
	FieldSource,
	FieldPayload,
	FieldPayloadPath,
	FieldInputType,
	FieldDescriptor,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// InputTypeValidator is a validator for the "input_type" field. It is called by the builders before save.
	InputTypeValidator func(string) error
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the CaptureInput queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByPayloadPath orders the results by the payload_path field.
func ByPayloadPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayloadPath, opts...).ToFunc()
}

// ByInputType orders the results by the input_type field.
func ByInputType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputType, opts...).ToFunc()
}
