package constants

// Template slot names in their persisted order. The registry stores an
// extraction template as an ordered array of exactly TemplateSlotCount
// pattern strings; position is the only key.
const (
	SlotInvoiceNumber = iota
	SlotInvoiceDate
	SlotInvoiceTotalAmount
	SlotOrderDate
	SlotLineItemBlockStart
	SlotLineItemBlockEnd
	SlotQuantity
	SlotDescription
	SlotUnit
	SlotUnitPrice
	SlotLineTotal

	TemplateSlotCount = 11
)

// SlotNames lists the template slot names in persisted order.
var SlotNames = []string{
	"invoice_number",
	"invoice_date",
	"invoice_total_amount",
	"order_date",
	"line_item_block_start",
	"line_item_block_end",
	"quantity",
	"description",
	"unit",
	"unit_price",
	"line_total",
}

// UncategorizedLabel is the guaranteed fallback category for line items.
const UncategorizedLabel = "Uncategorized"

// UnknownVendorName is the synthetic vendor used when resolution fails and
// the caller opts into the generic fallback template.
const UnknownVendorName = "Unknown Vendor"
