package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

type CardStatement struct{ ent.Schema }

func (CardStatement) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "card_statements"},
	}
}

func (CardStatement) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("user_id", uuid.UUID{}),
		field.UUID("extraction_id", uuid.UUID{}).Unique(),
		field.String("file_path").NotEmpty(),
		field.String("issuer_name").NotEmpty(),
		field.String("issuer_address").Optional().Nillable(),
		field.String("recipient_name").NotEmpty(),
		field.String("recipient_address").Optional().Nillable(),
		field.String("card_holder").Optional().Nillable(),
		field.String("card_number").Optional().Nillable(),
		field.String("card_type").Optional().Nillable(),
		field.Time("statement_date").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Float("total_amount_due").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (CardStatement) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("extraction", Extraction.Type).
			Ref("card_statement").
			Field("extraction_id").
			Required().
			Unique(),
		edge.To("transactions", CardTransaction.Type),
	}
}

func (CardStatement) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "statement_date"),
	}
}
