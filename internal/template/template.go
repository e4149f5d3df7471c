// Package template defines a vendor's extraction template and applies it to
// raw invoice text.
package template

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/pattern"
)

// Template is the fixed set of positional text patterns that converts one
// vendor's document layout into field values. Empty string means the slot
// is unused. The registry persists a template as an ordered array of exactly
// eleven strings; Slots and FromSlots convert at that boundary.
type Template struct {
	InvoiceNumber      string
	InvoiceDate        string
	InvoiceTotalAmount string
	OrderDate          string
	LineItemBlockStart string
	LineItemBlockEnd   string
	Quantity           string
	Description        string
	Unit               string
	UnitPrice          string
	LineTotal          string
}

// Slots returns the template's patterns in persisted order.
func (t *Template) Slots() []string {
	return []string{
		t.InvoiceNumber,
		t.InvoiceDate,
		t.InvoiceTotalAmount,
		t.OrderDate,
		t.LineItemBlockStart,
		t.LineItemBlockEnd,
		t.Quantity,
		t.Description,
		t.Unit,
		t.UnitPrice,
		t.LineTotal,
	}
}

// FromSlots builds a Template from the persisted positional array.
func FromSlots(slots []string) (*Template, error) {
	if len(slots) != constants.TemplateSlotCount {
		return nil, fmt.Errorf("template must have exactly %d slots, got %d", constants.TemplateSlotCount, len(slots))
	}
	return &Template{
		InvoiceNumber:      slots[constants.SlotInvoiceNumber],
		InvoiceDate:        slots[constants.SlotInvoiceDate],
		InvoiceTotalAmount: slots[constants.SlotInvoiceTotalAmount],
		OrderDate:          slots[constants.SlotOrderDate],
		LineItemBlockStart: slots[constants.SlotLineItemBlockStart],
		LineItemBlockEnd:   slots[constants.SlotLineItemBlockEnd],
		Quantity:           slots[constants.SlotQuantity],
		Description:        slots[constants.SlotDescription],
		Unit:               slots[constants.SlotUnit],
		UnitPrice:          slots[constants.SlotUnitPrice],
		LineTotal:          slots[constants.SlotLineTotal],
	}, nil
}

// mandatory patterns: blank is a validation failure.
// The two block markers never need a capture group.
type slotRule struct {
	name      string
	val       string
	mandatory bool
	marker    bool
}

func (t *Template) rules() []slotRule {
	return []slotRule{
		{"invoice_number", t.InvoiceNumber, true, false},
		{"invoice_date", t.InvoiceDate, true, false},
		{"invoice_total_amount", t.InvoiceTotalAmount, true, false},
		{"order_date", t.OrderDate, false, false},
		{"line_item_block_start", t.LineItemBlockStart, true, true},
		{"line_item_block_end", t.LineItemBlockEnd, true, true},
		{"quantity", t.Quantity, true, false},
		{"description", t.Description, true, false},
		{"unit", t.Unit, false, false},
		{"unit_price", t.UnitPrice, true, false},
		{"line_total", t.LineTotal, true, false},
	}
}

// Validate enforces the template contract: mandatory slots are non-empty,
// every non-empty pattern compiles, and every non-empty non-marker pattern
// carries at least one capture group. More than one group is tolerated with
// a warning; callers default to the first group.
func (t *Template) Validate(logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	var empty, bad []string
	for _, r := range t.rules() {
		v := strings.TrimSpace(r.val)
		if v == "" {
			if r.mandatory {
				empty = append(empty, r.name)
			}
			continue
		}
		groups := pattern.CaptureGroups(v)
		if groups < 0 {
			bad = append(bad, fmt.Sprintf("%s (does not compile)", r.name))
			continue
		}
		if r.marker {
			continue
		}
		if groups < 1 {
			bad = append(bad, fmt.Sprintf("%s (capture groups=%d)", r.name, groups))
		} else if groups > 1 {
			logger.Warn("template.validate.excess_capture_groups",
				"field", r.name, "groups", groups)
		}
	}

	if len(empty) > 0 {
		return fmt.Errorf("empty mandatory template patterns: %s", strings.Join(empty, ", "))
	}
	if len(bad) > 0 {
		return fmt.Errorf("template capture-group errors: %s", strings.Join(bad, ", "))
	}
	return nil
}

// Generic returns the hand-authored fallback template used for documents
// whose vendor could not be resolved.
func Generic() *Template {
	return &Template{
		InvoiceNumber:      `(?i)(?:invoice|inv)[\s#:]*([0-9]+)`,
		InvoiceDate:        `(?i)(?:date|dated)[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`,
		InvoiceTotalAmount: `(?i)(?:total|amount due)[\s:$]*(\d+[.,]\d{2})`,
		OrderDate:          "",
		LineItemBlockStart: `(?i)(?:description|item)`,
		LineItemBlockEnd:   `(?i)(?:subtotal|total)`,
		Quantity:           `(\d+\.?\d*)`,
		Description:        `([A-Za-z0-9\s,.-]+)`,
		Unit:               `(EA|LB|CS|GAL|BOX|PKG)`,
		UnitPrice:          `\$?(\d+\.\d{2})`,
		LineTotal:          `\$?(\d+\.\d{2})`,
	}
}
