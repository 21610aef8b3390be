// Code generated by ent, DO NOT EDIT.

package processeditem

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the processeditem type in the database.
	Label = "processed_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldURL holds the string denoting the url field in the database.
	FieldURL = "url"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSummary holds the string denoting the summary field in the database.
	FieldSummary = "summary"
	// FieldEntityType holds the string denoting the entity_type field in the database.
	FieldEntityType = "entity_type"
	// FieldModality holds the string denoting the modality field in the database.
	FieldModality = "modality"
	// FieldTags holds the string denoting the tags field in the database.
	FieldTags = "tags"
	// FieldCategories holds the string denoting the categories field in the database.
	FieldCategories = "categories"
	// FieldPurposes holds the string denoting the purposes field in the database.
	FieldPurposes = "purposes"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldStatements holds the string denoting the statements field in the database.
	FieldStatements = "statements"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldLastProcessed holds the string denoting the last_processed field in the database.
	FieldLastProcessed = "last_processed"
	// FieldFailureCount holds the string denoting the failure_count field in the database.
	FieldFailureCount = "failure_count"
	// FieldProcessingLog holds the string denoting the processing_log field in the database.
	FieldProcessingLog = "processing_log"
	// FieldWeather holds the string denoting the weather field in the database.
	FieldWeather = "weather"
	// FieldActivity holds the string denoting the activity field in the database.
	FieldActivity = "activity"
	// FieldPlace holds the string denoting the place field in the database.
	FieldPlace = "place"
	// FieldWeb holds the string denoting the web field in the database.
	FieldWeb = "web"
	// FieldDocument holds the string denoting the document field in the database.
	FieldDocument = "document"
	// FieldQrCode holds the string denoting the qr_code field in the database.
	FieldQrCode = "qr_code"
	// FieldCoverImagePath holds the string denoting the cover_image_path field in the database.
	FieldCoverImagePath = "cover_image_path"
	// FieldPrice holds the string denoting the price field in the database.
	FieldPrice = "price"
	// FieldRating holds the string denoting the rating field in the database.
	FieldRating = "rating"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldMasterCaptureID holds the string denoting the master_capture_id field in the database.
	FieldMasterCaptureID = "master_capture_id"
	// Table holds the table name of the processeditem in the database.
	Table = "processed_items"
)

// Columns holds all SQL columns for processeditem fields.
var Columns = []string{
	FieldID,
	FieldURL,
	FieldTitle,
	FieldSummary,
	FieldEntityType,
	FieldModality,
	FieldTags,
	FieldCategories,
	FieldPurposes,
	FieldQuestions,
	FieldStatements,
	FieldStatus,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldLastProcessed,
	FieldFailureCount,
	FieldProcessingLog,
	FieldWeather,
	FieldActivity,
	FieldPlace,
	FieldWeb,
	FieldDocument,
	FieldQrCode,
	FieldCoverImagePath,
	FieldPrice,
	FieldRating,
	FieldSessionID,
	FieldParentID,
	FieldMasterCaptureID,
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
	// StatusValidator is a validator for the "status" field. It is called by the builders before save.
	StatusValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultFailureCount holds the default value on creation for the "failure_count" field.
	DefaultFailureCount int
	// FailureCountValidator is a validator for the "failure_count" field. It is called by the builders before save.
	FailureCountValidator func(int) error
	// DefaultPrice holds the default value on creation for the "price" field.
	DefaultPrice float64
	// DefaultRating holds the default value on creation for the "rating" field.
	DefaultRating float64
)

// OrderOption defines the ordering options for the ProcessedItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByURL orders the results by the url field.
func ByURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldURL, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySummary orders the results by the summary field.
func BySummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSummary, opts...).ToFunc()
}

// ByEntityType orders the results by the entity_type field.
func ByEntityType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEntityType, opts...).ToFunc()
}

// ByModality orders the results by the modality field.
func ByModality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModality, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByLastProcessed orders the results by the last_processed field.
func ByLastProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastProcessed, opts...).ToFunc()
}

// ByFailureCount orders the results by the failure_count field.
func ByFailureCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFailureCount, opts...).ToFunc()
}

// ByCoverImagePath orders the results by the cover_image_path field.
func ByCoverImagePath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverImagePath, opts...).ToFunc()
}

// ByPrice orders the results by the price field.
func ByPrice(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrice, opts...).ToFunc()
}

// ByRating orders the results by the rating field.
func ByRating(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRating, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByMasterCaptureID orders the results by the master_capture_id field.
func ByMasterCaptureID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasterCaptureID, opts...).ToFunc()
}
