package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/capturedesk/capturedesk/constants"
	"github.com/capturedesk/capturedesk/db/ent/schema/utils"
	"github.com/capturedesk/capturedesk/internal/entity"
)

type ProcessedItem struct{ ent.Schema }

func (ProcessedItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processed_items"},
	}
}

func (ProcessedItem) Fields() []ent.Field {
	return []ent.Field{
		// The id is deterministic for URL captures (uuid5 of the canonical
		// URL), which is what makes re-submission idempotent.
		field.UUID("id", uuid.UUID{}).
			Immutable().
			StorageKey("id"),
		field.String("url").Optional(),
		field.String("title").Optional(),
		field.Text("summary").Optional(),
		field.String("entity_type").Optional(),
		field.String("modality").Optional(),
		field.JSON("tags", []string{}).Optional(),
		field.JSON("categories", []string{}).Optional(),
		field.JSON("purposes", []string{}).Optional(),
		field.JSON("questions", []string{}).Optional(),
		field.JSON("statements", []entity.Statement{}).Optional(),
		field.String("status").NotEmpty().
			Validate(utils.EnumValidator(constants.ItemStatuses...)),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.Time("last_processed").Optional().Nillable(),
		field.Int("failure_count").Default(0).NonNegative(),
		field.JSON("processing_log", []entity.LogEntry{}).Optional(),
		field.JSON("weather", &entity.WeatherContext{}).Optional(),
		field.JSON("activity", &entity.ActivityContext{}).Optional(),
		field.JSON("place", &entity.PlaceContext{}).Optional(),
		field.JSON("web", &entity.WebContext{}).Optional(),
		field.JSON("document", &entity.DocumentContext{}).Optional(),
		field.JSON("qr_code", &entity.QRCodeContext{}).Optional(),
		field.String("cover_image_path").Optional(),
		field.Float("price").Default(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("rating").Default(0),
		field.String("session_id").Optional(),
		field.UUID("parent_id", uuid.UUID{}).Optional().Nillable(),
		field.String("master_capture_id").Optional(),
	}
}

func (ProcessedItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status", "updated_at"),
		index.Fields("session_id"),
		index.Fields("master_capture_id"),
		index.Fields("created_at"),
	}
}
