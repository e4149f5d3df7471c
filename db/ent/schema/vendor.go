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

type Vendor struct{ ent.Schema }

func (Vendor) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendors"},
	}
}

func (Vendor) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.String("name").NotEmpty(),
		// Lowercased alphanumeric matching key; the identity of a vendor.
		field.String("normalized_name").NotEmpty().Unique(),
		field.String("email").Optional(),
		// Digits only; normalized before storage.
		field.String("phone").Optional(),
		field.String("address").Optional(),
		field.String("website").Optional(),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Vendor) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE vendor -> ONE template
		edge.To("template", VendorTemplate.Type).Unique(),
		// ONE vendor -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}
