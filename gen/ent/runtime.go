// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/restoledger/invoice-pipeline/db/ent/schema"
	"github.com/restoledger/invoice-pipeline/gen/ent/category"
	"github.com/restoledger/invoice-pipeline/gen/ent/invoice"
	"github.com/restoledger/invoice-pipeline/gen/ent/itemmapping"
	"github.com/restoledger/invoice-pipeline/gen/ent/lineitem"
	"github.com/restoledger/invoice-pipeline/gen/ent/vendor"
	"github.com/restoledger/invoice-pipeline/gen/ent/vendortemplate"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	categoryFields := schema.Category{}.Fields()
	_ = categoryFields
	// categoryDescName is the schema descriptor for name field.
	categoryDescName := categoryFields[1].Descriptor()
	// category.NameValidator is a validator for the "name" field. It is called by the builders before save.
	category.NameValidator = categoryDescName.Validators[0].(func(string) error)
	// categoryDescID is the schema descriptor for id field.
	categoryDescID := categoryFields[0].Descriptor()
	// category.DefaultID holds the default value on creation for the id field.
	category.DefaultID = categoryDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescFilename is the schema descriptor for filename field.
	invoiceDescFilename := invoiceFields[1].Descriptor()
	// invoice.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoice.FilenameValidator = invoiceDescFilename.Validators[0].(func(string) error)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[10].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
	itemmappingFields := schema.ItemMapping{}.Fields()
	_ = itemmappingFields
	// itemmappingDescDescription is the schema descriptor for description field.
	itemmappingDescDescription := itemmappingFields[1].Descriptor()
	// itemmapping.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	itemmapping.DescriptionValidator = itemmappingDescDescription.Validators[0].(func(string) error)
	// itemmappingDescCategory is the schema descriptor for category field.
	itemmappingDescCategory := itemmappingFields[2].Descriptor()
	// itemmapping.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	itemmapping.CategoryValidator = itemmappingDescCategory.Validators[0].(func(string) error)
	// itemmappingDescUpdatedAt is the schema descriptor for updated_at field.
	itemmappingDescUpdatedAt := itemmappingFields[3].Descriptor()
	// itemmapping.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	itemmapping.DefaultUpdatedAt = itemmappingDescUpdatedAt.Default.(func() time.Time)
	// itemmapping.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	itemmapping.UpdateDefaultUpdatedAt = itemmappingDescUpdatedAt.UpdateDefault.(func() time.Time)
	// itemmappingDescID is the schema descriptor for id field.
	itemmappingDescID := itemmappingFields[0].Descriptor()
	// itemmapping.DefaultID holds the default value on creation for the id field.
	itemmapping.DefaultID = itemmappingDescID.Default.(func() uuid.UUID)
	lineitemFields := schema.LineItem{}.Fields()
	_ = lineitemFields
	// lineitemDescVendorName is the schema descriptor for vendor_name field.
	lineitemDescVendorName := lineitemFields[2].Descriptor()
	// lineitem.VendorNameValidator is a validator for the "vendor_name" field. It is called by the builders before save.
	lineitem.VendorNameValidator = lineitemDescVendorName.Validators[0].(func(string) error)
	// lineitemDescCategory is the schema descriptor for category field.
	lineitemDescCategory := lineitemFields[3].Descriptor()
	// lineitem.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	lineitem.CategoryValidator = lineitemDescCategory.Validators[0].(func(string) error)
	// lineitemDescQuantity is the schema descriptor for quantity field.
	lineitemDescQuantity := lineitemFields[4].Descriptor()
	// lineitem.DefaultQuantity holds the default value on creation for the quantity field.
	lineitem.DefaultQuantity = lineitemDescQuantity.Default.(float64)
	// lineitemDescDescription is the schema descriptor for description field.
	lineitemDescDescription := lineitemFields[6].Descriptor()
	// lineitem.DescriptionValidator is a validator for the "description" field. It is called by the builders before save.
	lineitem.DescriptionValidator = lineitemDescDescription.Validators[0].(func(string) error)
	// lineitemDescLineNumber is the schema descriptor for line_number field.
	lineitemDescLineNumber := lineitemFields[9].Descriptor()
	// lineitem.LineNumberValidator is a validator for the "line_number" field. It is called by the builders before save.
	lineitem.LineNumberValidator = lineitemDescLineNumber.Validators[0].(func(int) error)
	// lineitemDescID is the schema descriptor for id field.
	lineitemDescID := lineitemFields[0].Descriptor()
	// lineitem.DefaultID holds the default value on creation for the id field.
	lineitem.DefaultID = lineitemDescID.Default.(func() uuid.UUID)
	vendorFields := schema.Vendor{}.Fields()
	_ = vendorFields
	// vendorDescName is the schema descriptor for name field.
	vendorDescName := vendorFields[1].Descriptor()
	// vendor.NameValidator is a validator for the "name" field. It is called by the builders before save.
	vendor.NameValidator = vendorDescName.Validators[0].(func(string) error)
	// vendorDescNormalizedName is the schema descriptor for normalized_name field.
	vendorDescNormalizedName := vendorFields[2].Descriptor()
	// vendor.NormalizedNameValidator is a validator for the "normalized_name" field. It is called by the builders before save.
	vendor.NormalizedNameValidator = vendorDescNormalizedName.Validators[0].(func(string) error)
	// vendorDescCreatedAt is the schema descriptor for created_at field.
	vendorDescCreatedAt := vendorFields[7].Descriptor()
	// vendor.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendor.DefaultCreatedAt = vendorDescCreatedAt.Default.(func() time.Time)
	// vendorDescUpdatedAt is the schema descriptor for updated_at field.
	vendorDescUpdatedAt := vendorFields[8].Descriptor()
	// vendor.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendor.DefaultUpdatedAt = vendorDescUpdatedAt.Default.(func() time.Time)
	// vendor.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendor.UpdateDefaultUpdatedAt = vendorDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendorDescID is the schema descriptor for id field.
	vendorDescID := vendorFields[0].Descriptor()
	// vendor.DefaultID holds the default value on creation for the id field.
	vendor.DefaultID = vendorDescID.Default.(func() uuid.UUID)
	vendortemplateFields := schema.VendorTemplate{}.Fields()
	_ = vendortemplateFields
	// vendortemplateDescCreatedAt is the schema descriptor for created_at field.
	vendortemplateDescCreatedAt := vendortemplateFields[3].Descriptor()
	// vendortemplate.DefaultCreatedAt holds the default value on creation for the created_at field.
	vendortemplate.DefaultCreatedAt = vendortemplateDescCreatedAt.Default.(func() time.Time)
	// vendortemplateDescUpdatedAt is the schema descriptor for updated_at field.
	vendortemplateDescUpdatedAt := vendortemplateFields[4].Descriptor()
	// vendortemplate.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	vendortemplate.DefaultUpdatedAt = vendortemplateDescUpdatedAt.Default.(func() time.Time)
	// vendortemplate.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	vendortemplate.UpdateDefaultUpdatedAt = vendortemplateDescUpdatedAt.UpdateDefault.(func() time.Time)
	// vendortemplateDescID is the schema descriptor for id field.
	vendortemplateDescID := vendortemplateFields[0].Descriptor()
	// vendortemplate.DefaultID holds the default value on creation for the id field.
	vendortemplate.DefaultID = vendortemplateDescID.Default.(func() uuid.UUID)
}
