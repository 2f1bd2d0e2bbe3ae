package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/Lazzzer/structurizer-sub000/constants"
	"github.com/Lazzzer/structurizer-sub000/db/ent/schema/utils"
)

// Extraction is the pipeline-tracking row for one uploaded document.
type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.String("filename").NotEmpty(),
		field.String("file_path").NotEmpty(),
		field.String("status").
			Default(string(constants.StatusToRecognize)).
			Validate(utils.EnumValidator(constants.StatusStrings()...)),
		// category stays null until TO_EXTRACT -> TO_VERIFY; the "other"
		// sentinel is never written here.
		field.String("category").Optional().Nillable().
			Validate(utils.EnumValidator(constants.AsStringSlice()...)),
		field.String("text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.JSON("data", json.RawMessage{}).
			Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Extraction) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE extraction -> AT MOST ONE typed record, discriminated by category.
		edge.To("receipt", Receipt.Type).Unique(),
		edge.To("invoice", Invoice.Type).Unique(),
		edge.To("card_statement", CardStatement.Type).Unique(),
	}
}

func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "status"),
		index.Fields("user_id", "created_at"),
	}
}
