package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/google/uuid"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("filename").NotEmpty(),
		field.UUID("vendor_id", uuid.UUID{}),
		// Header values stay raw strings; dates and totals are stored as
		// extracted, not reinterpreted.
		field.String("invoice_number").Optional(),
		field.String("invoice_date").Optional(),
		field.String("invoice_total_amount").Optional(),
		field.String("order_date").Optional(),
		field.Int("text_length"),
		field.Int("page_count"),
		field.Time("extraction_timestamp"),
		field.Time("created_at").Default(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE vendor (FK: invoices.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("invoices").
			Field("vendor_id").
			Required().
			Unique(),
		// ONE invoice -> MANY line items
		edge.To("line_items", LineItem.Type),
	}
}
