package llm

import "context"

// Completer is the single capability the extraction phases need from a
// language model: one prompt in, one text completion out.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// InvoiceDetails carries the invoice-level values from a first-pass
// extraction. All values are raw strings as the model reported them.
type InvoiceDetails struct {
	InvoiceNumber      string `json:"invoice_number"`
	InvoiceDate        string `json:"invoice_date"`
	InvoiceTotalAmount string `json:"invoice_total_amount"`
	OrderDate          string `json:"order_date,omitempty"`
}

// ExtractedItem is one line item from a first-pass extraction.
type ExtractedItem struct {
	Description string `json:"description"`
	Quantity    string `json:"quantity,omitempty"`
	Unit        string `json:"unit,omitempty"`
	UnitPrice   string `json:"unit_price,omitempty"`
	LineTotal   string `json:"line_total"`
}

// VendorMasterData holds the vendor identity block from a first-pass
// extraction. Only VendorName is guaranteed non-empty after validation.
type VendorMasterData struct {
	VendorName      string `json:"vendor_name"`
	EmailID         string `json:"vendor_email_id,omitempty"`
	PhoneNumber     string `json:"vendor_phone_number,omitempty"`
	PhysicalAddress string `json:"vendor_physical_address,omitempty"`
	Website         string `json:"vendor_website,omitempty"`
}

// Phase1Result is the validated output of the first extraction pass.
type Phase1Result struct {
	InvoiceDetails   InvoiceDetails   `json:"invoice_details"`
	LineItems        []ExtractedItem  `json:"line_items"`
	VendorMasterData VendorMasterData `json:"vendor_master_data"`
}
