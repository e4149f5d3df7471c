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

type VendorTemplate struct{ ent.Schema }

func (VendorTemplate) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "vendor_templates"},
	}
}

func (VendorTemplate) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("vendor_id", uuid.UUID{}).Unique(),
		// Positional pattern slots, ordered per constants.SlotNames. Slot
		// count is enforced at the repository boundary.
		field.JSON("patterns", []string{}),
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (VendorTemplate) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE template -> ONE vendor (FK: vendor_templates.vendor_id)
		edge.From("vendor", Vendor.Type).
			Ref("template").
			Field("vendor_id").
			Required().
			Unique(),
	}
}
