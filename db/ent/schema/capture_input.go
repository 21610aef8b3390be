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

type CaptureInput struct{ ent.Schema }

func (CaptureInput) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "capture_inputs"},
	}
}

func (CaptureInput) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.String("url").Optional(),
		field.Text("text").Optional(),
		field.String("source").Optional(),
		field.Bytes("payload").Optional().
			SchemaType(map[string]string{dialect.Postgres: "bytea"}),
		field.String("payload_path").Optional(),
		field.String("input_type").NotEmpty().
			Validate(utils.EnumValidator(constants.InputTypes...)),
		field.JSON("descriptor", &entity.ItemDescriptor{}).Optional(),
	}
}

func (CaptureInput) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
