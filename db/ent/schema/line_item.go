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

type LineItem struct{ ent.Schema }

func (LineItem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "line_items"},
	}
}

func (LineItem) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("invoice_id", uuid.UUID{}),
		field.String("vendor_name").NotEmpty(),
		field.String("category").NotEmpty(),
		field.Float("quantity").Default(0),
		field.String("unit").Optional(),
		field.String("description").NotEmpty(),
		field.Float("unit_price").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("line_total").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("line_number").Min(1),
	}
}

func (LineItem) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY line items -> ONE invoice (FK: line_items.invoice_id)
		edge.From("invoice", Invoice.Type).
			Ref("line_items").
			Field("invoice_id").
			Required().
			Unique(),
	}
}
