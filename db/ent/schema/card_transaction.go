package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type CardTransaction struct{ ent.Schema }

func (CardTransaction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "card_transactions"},
	}
}

func (CardTransaction) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("statement_id", uuid.UUID{}),
		field.String("description").NotEmpty(),
		field.String("category").NotEmpty(),
		field.Float("amount").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
	}
}

func (CardTransaction) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("statement", CardStatement.Type).
			Ref("transactions").
			Field("statement_id").
			Required().
			Unique(),
	}
}
