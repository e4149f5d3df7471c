package normalize

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/template"
)

// Categorizer assigns a category to a line-item description.
type Categorizer interface {
	Categorize(ctx context.Context, description string) (string, error)
}

// Input bundles everything needed to normalize one extracted document.
type Input struct {
	Document entity.Document
	Vendor   *entity.Vendor
	Header   template.HeaderFields
	Items    []template.RawItem
}

// Builder turns raw template captures into typed invoice and line-item
// records ready for storage.
type Builder struct {
	categorizer Categorizer
	logger      *slog.Logger
}

func NewBuilder(categorizer Categorizer, logger *slog.Logger) *Builder {
	if logger == nil {
		logger = slog.Default()
	}
	return &Builder{categorizer: categorizer, logger: logger}
}

// Build produces the invoice header record and its line items. Items with
// a blank description are dropped silently; a categorization failure for a
// kept item fails the document. Line numbers are assigned 1-based over the
// kept items.
func (b *Builder) Build(ctx context.Context, in Input) (*entity.Invoice, []entity.LineItem, error) {
	vendorName := constants.UnknownVendorName
	inv := &entity.Invoice{
		Filename:           in.Document.Filename,
		InvoiceNumber:      in.Header.InvoiceNumber,
		InvoiceDate:        in.Header.InvoiceDate,
		InvoiceTotalAmount: in.Header.InvoiceTotalAmount,
		OrderDate:          in.Header.OrderDate,
		TextLength:         in.Document.TextLength,
		PageCount:          in.Document.PageCount,
		ExtractedAt:        in.Document.ExtractedAt,
	}
	if in.Vendor != nil {
		inv.VendorID = in.Vendor.ID
		if in.Vendor.Name != "" {
			vendorName = in.Vendor.Name
		}
	}

	var items []entity.LineItem
	dropped := 0
	for _, raw := range in.Items {
		desc := strings.TrimSpace(raw.Description)
		if desc == "" {
			dropped++
			continue
		}

		cat, err := b.categorizer.Categorize(ctx, desc)
		if err != nil {
			return nil, nil, fmt.Errorf("categorize %q: %w", desc, err)
		}
		if cat == "" {
			return nil, nil, fmt.Errorf("no category determinable for %q", desc)
		}

		items = append(items, entity.LineItem{
			VendorName:  vendorName,
			Category:    cat,
			Quantity:    ParseQuantity(raw.Quantity),
			Unit:        strings.TrimSpace(raw.Unit),
			Description: desc,
			UnitPrice:   ParseCurrencyAmount(raw.UnitPrice),
			LineTotal:   ParseCurrencyAmount(raw.LineTotal),
			LineNumber:  len(items) + 1,
		})
	}

	if dropped > 0 {
		b.logger.Debug("normalize.build.dropped_blank_items",
			"filename", in.Document.Filename, "dropped", dropped)
	}
	b.logger.Info("normalize.build.ok",
		"filename", in.Document.Filename,
		"vendor", vendorName,
		"line_items", len(items),
	)
	return inv, items, nil
}
