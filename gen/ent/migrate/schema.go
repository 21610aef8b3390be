// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CaptureInputsColumns holds the columns for the "capture_inputs" table.
	CaptureInputsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "text", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "source", Type: field.TypeString, Nullable: true},
		{Name: "payload", Type: field.TypeBytes, Nullable: true, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "payload_path", Type: field.TypeString, Nullable: true},
		{Name: "input_type", Type: field.TypeString},
		{Name: "descriptor", Type: field.TypeJSON, Nullable: true},
	}
	// CaptureInputsTable holds the schema information for the "capture_inputs" table.
	CaptureInputsTable = &schema.Table{
		Name:       "capture_inputs",
		Columns:    CaptureInputsColumns,
		PrimaryKey: []*schema.Column{CaptureInputsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "captureinput_created_at",
				Unique:  false,
				Columns: []*schema.Column{CaptureInputsColumns[1]},
			},
		},
	}
	// ProcessedItemsColumns holds the columns for the "processed_items" table.
	ProcessedItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "url", Type: field.TypeString, Nullable: true},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "entity_type", Type: field.TypeString, Nullable: true},
		{Name: "modality", Type: field.TypeString, Nullable: true},
		{Name: "tags", Type: field.TypeJSON, Nullable: true},
		{Name: "categories", Type: field.TypeJSON, Nullable: true},
		{Name: "purposes", Type: field.TypeJSON, Nullable: true},
		{Name: "questions", Type: field.TypeJSON, Nullable: true},
		{Name: "statements", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "last_processed", Type: field.TypeTime, Nullable: true},
		{Name: "failure_count", Type: field.TypeInt, Default: 0},
		{Name: "processing_log", Type: field.TypeJSON, Nullable: true},
		{Name: "weather", Type: field.TypeJSON, Nullable: true},
		{Name: "activity", Type: field.TypeJSON, Nullable: true},
		{Name: "place", Type: field.TypeJSON, Nullable: true},
		{Name: "web", Type: field.TypeJSON, Nullable: true},
		{Name: "document", Type: field.TypeJSON, Nullable: true},
		{Name: "qr_code", Type: field.TypeJSON, Nullable: true},
		{Name: "cover_image_path", Type: field.TypeString, Nullable: true},
		{Name: "price", Type: field.TypeFloat64, Default: 0, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "rating", Type: field.TypeFloat64, Default: 0},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "parent_id", Type: field.TypeUUID, Nullable: true},
		{Name: "master_capture_id", Type: field.TypeString, Nullable: true},
	}
	// ProcessedItemsTable holds the schema information for the "processed_items" table.
	ProcessedItemsTable = &schema.Table{
		Name:       "processed_items",
		Columns:    ProcessedItemsColumns,
		PrimaryKey: []*schema.Column{ProcessedItemsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processeditem_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedItemsColumns[11], ProcessedItemsColumns[13]},
			},
			{
				Name:    "processeditem_session_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessedItemsColumns[26]},
			},
			{
				Name:    "processeditem_master_capture_id",
				Unique:  false,
				Columns: []*schema.Column{ProcessedItemsColumns[28]},
			},
			{
				Name:    "processeditem_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessedItemsColumns[12]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString},
		{Name: "title", Type: field.TypeString, Nullable: true},
		{Name: "summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "coordinate", Type: field.TypeJSON, Nullable: true},
		{Name: "place_id", Type: field.TypeString, Nullable: true},
		{Name: "location_name", Type: field.TypeString, Nullable: true},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_created_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CaptureInputsTable,
		ProcessedItemsTable,
		SessionsTable,
	}
)

func init() {
	CaptureInputsTable.Annotation = &entsql.Annotation{
		Table: "capture_inputs",
	}
	ProcessedItemsTable.Annotation = &entsql.Annotation{
		Table: "processed_items",
	}
	SessionsTable.Annotation = &entsql.Annotation{
		Table: "sessions",
	}
}
