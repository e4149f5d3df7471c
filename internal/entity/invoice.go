package entity

import (
	"time"

	"github.com/google/uuid"
)

// Invoice represents an extracted invoice header for data transfer between
// layers. Field values captured by patterns are kept as raw strings; empty
// string means the pattern did not match.
type Invoice struct {
	ID                 uuid.UUID `json:"id"`
	Filename           string    `json:"filename"`
	VendorID           uuid.UUID `json:"vendor_id"`
	InvoiceNumber      string    `json:"invoice_number,omitempty"`
	InvoiceDate        string    `json:"invoice_date,omitempty"`
	InvoiceTotalAmount string    `json:"invoice_total_amount,omitempty"`
	OrderDate          string    `json:"order_date,omitempty"`
	TextLength         int       `json:"text_length"`
	PageCount          int       `json:"page_count"`
	ExtractedAt        time.Time `json:"extracted_at"`
}

// LineItem represents one normalized invoice line.
type LineItem struct {
	ID          uuid.UUID `json:"id"`
	InvoiceID   uuid.UUID `json:"invoice_id"`
	VendorName  string    `json:"vendor_name"`
	Category    string    `json:"category"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	Description string    `json:"description"`
	UnitPrice   *float64  `json:"unit_price,omitempty"`
	LineTotal   *float64  `json:"line_total,omitempty"`
	LineNumber  int       `json:"line_number"`
}
