// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CategoriesColumns holds the columns for the "categories" table.
	CategoriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString, Unique: true, SchemaType: map[string]string{"postgres": "text"}},
	}
	// CategoriesTable holds the schema information for the "categories" table.
	CategoriesTable = &schema.Table{
		Name:       "categories",
		Columns:    CategoriesColumns,
		PrimaryKey: []*schema.Column{CategoriesColumns[0]},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "filename", Type: field.TypeString},
		{Name: "invoice_number", Type: field.TypeString, Nullable: true},
		{Name: "invoice_date", Type: field.TypeString, Nullable: true},
		{Name: "invoice_total_amount", Type: field.TypeString, Nullable: true},
		{Name: "order_date", Type: field.TypeString, Nullable: true},
		{Name: "text_length", Type: field.TypeInt},
		{Name: "page_count", Type: field.TypeInt},
		{Name: "extraction_timestamp", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_vendors_invoices",
				Columns:    []*schema.Column{InvoicesColumns[10]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// ItemMappingsColumns holds the columns for the "item_mappings" table.
	ItemMappingsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "description", Type: field.TypeString, Unique: true},
		{Name: "category", Type: field.TypeString},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ItemMappingsTable holds the schema information for the "item_mappings" table.
	ItemMappingsTable = &schema.Table{
		Name:       "item_mappings",
		Columns:    ItemMappingsColumns,
		PrimaryKey: []*schema.Column{ItemMappingsColumns[0]},
	}
	// LineItemsColumns holds the columns for the "line_items" table.
	LineItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "vendor_name", Type: field.TypeString},
		{Name: "category", Type: field.TypeString},
		{Name: "quantity", Type: field.TypeFloat64, Default: 0},
		{Name: "unit", Type: field.TypeString, Nullable: true},
		{Name: "description", Type: field.TypeString},
		{Name: "unit_price", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_total", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "line_number", Type: field.TypeInt},
		{Name: "invoice_id", Type: field.TypeUUID},
	}
	// LineItemsTable holds the schema information for the "line_items" table.
	LineItemsTable = &schema.Table{
		Name:       "line_items",
		Columns:    LineItemsColumns,
		PrimaryKey: []*schema.Column{LineItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "line_items_invoices_line_items",
				Columns:    []*schema.Column{LineItemsColumns[9]},
				RefColumns: []*schema.Column{InvoicesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// VendorsColumns holds the columns for the "vendors" table.
	VendorsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "normalized_name", Type: field.TypeString, Unique: true},
		{Name: "email", Type: field.TypeString, Nullable: true},
		{Name: "phone", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeString, Nullable: true},
		{Name: "website", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// VendorsTable holds the schema information for the "vendors" table.
	VendorsTable = &schema.Table{
		Name:       "vendors",
		Columns:    VendorsColumns,
		PrimaryKey: []*schema.Column{VendorsColumns[0]},
	}
	// VendorTemplatesColumns holds the columns for the "vendor_templates" table.
	VendorTemplatesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "patterns", Type: field.TypeJSON},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "vendor_id", Type: field.TypeUUID, Unique: true},
	}
	// VendorTemplatesTable holds the schema information for the "vendor_templates" table.
	VendorTemplatesTable = &schema.Table{
		Name:       "vendor_templates",
		Columns:    VendorTemplatesColumns,
		PrimaryKey: []*schema.Column{VendorTemplatesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "vendor_templates_vendors_template",
				Columns:    []*schema.Column{VendorTemplatesColumns[4]},
				RefColumns: []*schema.Column{VendorsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CategoriesTable,
		InvoicesTable,
		ItemMappingsTable,
		LineItemsTable,
		VendorsTable,
		VendorTemplatesTable,
	}
)

func init() {
	CategoriesTable.Annotation = &entsql.Annotation{
		Table: "categories",
	}
	InvoicesTable.ForeignKeys[0].RefTable = VendorsTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
	ItemMappingsTable.Annotation = &entsql.Annotation{
		Table: "item_mappings",
	}
	LineItemsTable.ForeignKeys[0].RefTable = InvoicesTable
	LineItemsTable.Annotation = &entsql.Annotation{
		Table: "line_items",
	}
	VendorsTable.Annotation = &entsql.Annotation{
		Table: "vendors",
	}
	VendorTemplatesTable.ForeignKeys[0].RefTable = VendorsTable
	VendorTemplatesTable.Annotation = &entsql.Annotation{
		Table: "vendor_templates",
	}
}
