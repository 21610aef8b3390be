// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/capturedesk/capturedesk/gen/ent/processeditem"
	"github.com/capturedesk/capturedesk/internal/entity"
	"github.com/google/uuid"
)

// ProcessedItem is the model entity for the ProcessedItem schema.
type ProcessedItem struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// URL holds the value of the "url" field.
	URL string `json:"url,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Summary holds the value of the "summary" field.
	Summary string `json:"summary,omitempty"`
	// EntityType holds the value of the "entity_type" field.
	EntityType string `json:"entity_type,omitempty"`
	// Modality holds the value of the "modality" field.
	Modality string `json:"modality,omitempty"`
	// Tags holds the value of the "tags" field.
	Tags []string `json:"tags,omitempty"`
	// Categories holds the value of the "categories" field.
	Categories []string `json:"categories,omitempty"`
	// Purposes holds the value of the "purposes" field.
	Purposes []string `json:"purposes,omitempty"`
	// Questions holds the value of the "questions" field.
	Questions []string `json:"questions,omitempty"`
	// Statements holds the value of the "statements" field.
	Statements []entity.Statement `json:"statements,omitempty"`
	// Status holds the value of the "status" field.
	Status string `json:"status,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// LastProcessed holds the value of the "last_processed" field.
	LastProcessed *time.Time `json:"last_processed,omitempty"`
	// FailureCount holds the value of the "failure_count" field.
	FailureCount int `json:"failure_count,omitempty"`
	// ProcessingLog holds the value of the "processing_log" field.
	ProcessingLog []entity.LogEntry `json:"processing_log,omitempty"`
	// Weather holds the value of the "weather" field.
	Weather *entity.WeatherContext `json:"weather,omitempty"`
	// Activity holds the value of the "activity" field.
	Activity *entity.ActivityContext `json:"activity,omitempty"`
	// Place holds the value of the "place" field.
	Place *entity.PlaceContext `json:"place,omitempty"`
	// Web holds the value of the "web" field.
	Web *entity.WebContext `json:"web,omitempty"`
	// Document holds the value of the "document" field.
	Document *entity.DocumentContext `json:"document,omitempty"`
	// QrCode holds the value of the "qr_code" field.
	QrCode *entity.QRCodeContext `json:"qr_code,omitempty"`
	// CoverImagePath holds the value of the "cover_image_path" field.
	CoverImagePath string `json:"cover_image_path,omitempty"`
	// Price holds the value of the "price" field.
	Price float64 `json:"price,omitempty"`
	// Rating holds the value of the "rating" field.
	Rating float64 `json:"rating,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// ParentID holds the value of the "parent_id" field.
	ParentID *uuid.UUID `json:"parent_id,omitempty"`
	// MasterCaptureID holds the value of the "master_capture_id" field.
	MasterCaptureID string `json:"master_capture_id,omitempty"`
	selectValues    sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ProcessedItem) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case processeditem.FieldParentID:
			values[i] = &sql.NullScanner{S: new(uuid.UUID)}
		case processeditem.FieldTags, processeditem.FieldCategories, processeditem.FieldPurposes, processeditem.FieldQuestions, processeditem.FieldStatements, processeditem.FieldProcessingLog, processeditem.FieldWeather, processeditem.FieldActivity, processeditem.FieldPlace, processeditem.FieldWeb, processeditem.FieldDocument, processeditem.FieldQrCode:
			values[i] = new([]byte)
		case processeditem.FieldPrice, processeditem.FieldRating:
			values[i] = new(sql.NullFloat64)
		case processeditem.FieldFailureCount:
			values[i] = new(sql.NullInt64)
		case processeditem.FieldURL, processeditem.FieldTitle, processeditem.FieldSummary, processeditem.FieldEntityType, processeditem.FieldModality, processeditem.FieldStatus, processeditem.FieldCoverImagePath, processeditem.FieldSessionID, processeditem.FieldMasterCaptureID:
			values[i] = new(sql.NullString)
		case processeditem.FieldCreatedAt, processeditem.FieldUpdatedAt, processeditem.FieldLastProcessed:
			values[i] = new(sql.NullTime)
		case processeditem.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ProcessedItem fields.
func (_m *ProcessedItem) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case processeditem.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case processeditem.FieldURL:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field url", values[i])
			} else if value.Valid {
				_m.URL = value.String
			}
		case processeditem.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case processeditem.FieldSummary:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field summary", values[i])
			} else if value.Valid {
				_m.Summary = value.String
			}
		case processeditem.FieldEntityType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field entity_type", values[i])
			} else if value.Valid {
				_m.EntityType = value.String
			}
		case processeditem.FieldModality:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field modality", values[i])
			} else if value.Valid {
				_m.Modality = value.String
			}
		case processeditem.FieldTags:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tags", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Tags); err != nil {
					return fmt.Errorf("unmarshal field tags: %w", err)
				}
			}
		case processeditem.FieldCategories:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field categories", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Categories); err != nil {
					return fmt.Errorf("unmarshal field categories: %w", err)
				}
			}
		case processeditem.FieldPurposes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field purposes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Purposes); err != nil {
					return fmt.Errorf("unmarshal field purposes: %w", err)
				}
			}
		case processeditem.FieldQuestions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field questions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Questions); err != nil {
					return fmt.Errorf("unmarshal field questions: %w", err)
				}
			}
		case processeditem.FieldStatements:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field statements", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Statements); err != nil {
					return fmt.Errorf("unmarshal field statements: %w", err)
				}
			}
		case processeditem.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = value.String
			}
		case processeditem.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case processeditem.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		case processeditem.FieldLastProcessed:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_processed", values[i])
			} else if value.Valid {
				_m.LastProcessed = new(time.Time)
				*_m.LastProcessed = value.Time
			}
		case processeditem.FieldFailureCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field failure_count", values[i])
			} else if value.Valid {
				_m.FailureCount = int(value.Int64)
			}
		case processeditem.FieldProcessingLog:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field processing_log", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ProcessingLog); err != nil {
					return fmt.Errorf("unmarshal field processing_log: %w", err)
				}
			}
		case processeditem.FieldWeather:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field weather", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Weather); err != nil {
					return fmt.Errorf("unmarshal field weather: %w", err)
				}
			}
		case processeditem.FieldActivity:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field activity", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Activity); err != nil {
					return fmt.Errorf("unmarshal field activity: %w", err)
				}
			}
		case processeditem.FieldPlace:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field place", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Place); err != nil {
					return fmt.Errorf("unmarshal field place: %w", err)
				}
			}
		case processeditem.FieldWeb:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field web", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Web); err != nil {
					return fmt.Errorf("unmarshal field web: %w", err)
				}
			}
		case processeditem.FieldDocument:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Document); err != nil {
					return fmt.Errorf("unmarshal field document: %w", err)
				}
			}
		case processeditem.FieldQrCode:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field qr_code", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QrCode); err != nil {
					return fmt.Errorf("unmarshal field qr_code: %w", err)
				}
			}
		case processeditem.FieldCoverImagePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cover_image_path", values[i])
			} else if value.Valid {
				_m.CoverImagePath = value.String
			}
		case processeditem.FieldPrice:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field price", values[i])
			} else if value.Valid {
				_m.Price = value.Float64
			}
		case processeditem.FieldRating:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rating", values[i])
			} else if value.Valid {
				_m.Rating = value.Float64
			}
		case processeditem.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case processeditem.FieldParentID:
			if value, ok := values[i].(*sql.NullScanner); !ok {
				return fmt.Errorf("unexpected type %T for field parent_id", values[i])
			} else if value.Valid {
				_m.ParentID = new(uuid.UUID)
				*_m.ParentID = *value.S.(*uuid.UUID)
			}
		case processeditem.FieldMasterCaptureID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field master_capture_id", values[i])
			} else if value.Valid {
				_m.MasterCaptureID = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the ProcessedItem.
// This includes values selected through modifiers, order, etc.
func (_m *ProcessedItem) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this ProcessedItem.
// Note that you need to call ProcessedItem.Unwrap() before calling this method if this ProcessedItem
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ProcessedItem) Update() *ProcessedItemUpdateOne {
	return NewProcessedItemClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ProcessedItem entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ProcessedItem) Unwrap() *ProcessedItem {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ProcessedItem is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ProcessedItem) String() string {
	var builder strings.Builder
	builder.WriteString("ProcessedItem(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("url=")
	builder.WriteString(_m.URL)
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteString(", ")
	builder.WriteString("summary=")
	builder.WriteString(_m.Summary)
	builder.WriteString(", ")
	builder.WriteString("entity_type=")
	builder.WriteString(_m.EntityType)
	builder.WriteString(", ")
	builder.WriteString("modality=")
	builder.WriteString(_m.Modality)
	builder.WriteString(", ")
	builder.WriteString("tags=")
	builder.WriteString(fmt.Sprintf("%v", _m.Tags))
	builder.WriteString(", ")
	builder.WriteString("categories=")
	builder.WriteString(fmt.Sprintf("%v", _m.Categories))
	builder.WriteString(", ")
	builder.WriteString("purposes=")
	builder.WriteString(fmt.Sprintf("%v", _m.Purposes))
	builder.WriteString(", ")
	builder.WriteString("questions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Questions))
	builder.WriteString(", ")
	builder.WriteString("statements=")
	builder.WriteString(fmt.Sprintf("%v", _m.Statements))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(_m.Status)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.LastProcessed; v != nil {
		builder.WriteString("last_processed=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("failure_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FailureCount))
	builder.WriteString(", ")
	builder.WriteString("processing_log=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessingLog))
	builder.WriteString(", ")
	builder.WriteString("weather=")
	builder.WriteString(fmt.Sprintf("%v", _m.Weather))
	builder.WriteString(", ")
	builder.WriteString("activity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Activity))
	builder.WriteString(", ")
	builder.WriteString("place=")
	builder.WriteString(fmt.Sprintf("%v", _m.Place))
	builder.WriteString(", ")
	builder.WriteString("web=")
	builder.WriteString(fmt.Sprintf("%v", _m.Web))
	builder.WriteString(", ")
	builder.WriteString("document=")
	builder.WriteString(fmt.Sprintf("%v", _m.Document))
	builder.WriteString(", ")
	builder.WriteString("qr_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.QrCode))
	builder.WriteString(", ")
	builder.WriteString("cover_image_path=")
	builder.WriteString(_m.CoverImagePath)
	builder.WriteString(", ")
	builder.WriteString("price=")
	builder.WriteString(fmt.Sprintf("%v", _m.Price))
	builder.WriteString(", ")
	builder.WriteString("rating=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rating))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	if v := _m.ParentID; v != nil {
		builder.WriteString("parent_id=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("master_capture_id=")
	builder.WriteString(_m.MasterCaptureID)
	builder.WriteByte(')')
	return builder.String()
}

// ProcessedItems is a parsable slice of ProcessedItem.
type ProcessedItems []*ProcessedItem
