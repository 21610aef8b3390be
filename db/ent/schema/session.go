package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/capturedesk/capturedesk/internal/entity"
)

type Session struct{ ent.Schema }

func (Session) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "sessions"},
	}
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		// Session ids come from the capture flow, not from us, so the
		// external string id is the primary key.
		field.String("id").NotEmpty().Immutable().StorageKey("id"),
		field.String("title").Optional(),
		field.Text("summary").Optional(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.JSON("coordinate", &entity.LatLng{}).Optional(),
		field.String("place_id").Optional(),
		field.String("location_name").Optional(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("created_at"),
	}
}
