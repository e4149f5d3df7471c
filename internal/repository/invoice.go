package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/restoledger/invoice-pipeline/gen/ent"
	entinvoice "github.com/restoledger/invoice-pipeline/gen/ent/invoice"
	entlineitem "github.com/restoledger/invoice-pipeline/gen/ent/lineitem"
	"github.com/restoledger/invoice-pipeline/internal/entity"
)

// InvoiceRepository persists extracted invoices with their line items.
type InvoiceRepository interface {
	// Exists reports whether an invoice with this vendor and invoice
	// number is already stored.
	Exists(ctx context.Context, vendorID uuid.UUID, invoiceNumber string) (bool, error)
	// CreateWithLineItems stores the header and its items atomically.
	CreateWithLineItems(ctx context.Context, inv *entity.Invoice, items []entity.LineItem) (*entity.Invoice, error)
	// ListAll returns every stored invoice with items, ordered by
	// extraction time, for export.
	ListAll(ctx context.Context) ([]*entity.Invoice, map[uuid.UUID][]entity.LineItem, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{client: client, logger: logger}
}

func (r *invoiceRepository) Exists(ctx context.Context, vendorID uuid.UUID, invoiceNumber string) (bool, error) {
	if invoiceNumber == "" {
		return false, nil
	}
	return r.client.Invoice.Query().
		Where(
			entinvoice.VendorID(vendorID),
			entinvoice.InvoiceNumber(invoiceNumber),
		).
		Exist(ctx)
}

func (r *invoiceRepository) CreateWithLineItems(ctx context.Context, inv *entity.Invoice, items []entity.LineItem) (*entity.Invoice, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, err
	}

	rec, err := tx.Invoice.Create().
		SetFilename(inv.Filename).
		SetVendorID(inv.VendorID).
		SetInvoiceNumber(inv.InvoiceNumber).
		SetInvoiceDate(inv.InvoiceDate).
		SetInvoiceTotalAmount(inv.InvoiceTotalAmount).
		SetOrderDate(inv.OrderDate).
		SetTextLength(inv.TextLength).
		SetPageCount(inv.PageCount).
		SetExtractionTimestamp(inv.ExtractedAt).
		Save(ctx)
	if err != nil {
		return nil, rollback(tx, err)
	}

	builders := make([]*ent.LineItemCreate, len(items))
	for i, it := range items {
		builders[i] = tx.LineItem.Create().
			SetInvoiceID(rec.ID).
			SetVendorName(it.VendorName).
			SetCategory(it.Category).
			SetQuantity(it.Quantity).
			SetUnit(it.Unit).
			SetDescription(it.Description).
			SetNillableUnitPrice(it.UnitPrice).
			SetNillableLineTotal(it.LineTotal).
			SetLineNumber(it.LineNumber)
	}
	if _, err := tx.LineItem.CreateBulk(builders...).Save(ctx); err != nil {
		return nil, rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	out := *inv
	out.ID = rec.ID
	r.logger.Info("invoice.create.ok",
		"invoice_id", rec.ID, "filename", inv.Filename, "line_items", len(items))
	return &out, nil
}

func (r *invoiceRepository) ListAll(ctx context.Context) ([]*entity.Invoice, map[uuid.UUID][]entity.LineItem, error) {
	recs, err := r.client.Invoice.Query().
		Order(entinvoice.ByExtractionTimestamp()).
		All(ctx)
	if err != nil {
		return nil, nil, err
	}

	invoices := make([]*entity.Invoice, len(recs))
	itemsByInvoice := make(map[uuid.UUID][]entity.LineItem, len(recs))
	for i, rec := range recs {
		invoices[i] = toInvoice(rec)

		lis, err := r.client.LineItem.Query().
			Where(entlineitem.InvoiceID(rec.ID)).
			Order(entlineitem.ByLineNumber()).
			All(ctx)
		if err != nil {
			return nil, nil, err
		}
		for _, li := range lis {
			itemsByInvoice[rec.ID] = append(itemsByInvoice[rec.ID], toLineItem(li))
		}
	}
	return invoices, itemsByInvoice, nil
}

func rollback(tx *ent.Tx, err error) error {
	if rerr := tx.Rollback(); rerr != nil {
		err = fmt.Errorf("%w: rolling back: %v", err, rerr)
	}
	return err
}

func toInvoice(rec *ent.Invoice) *entity.Invoice {
	return &entity.Invoice{
		ID:                 rec.ID,
		Filename:           rec.Filename,
		VendorID:           rec.VendorID,
		InvoiceNumber:      rec.InvoiceNumber,
		InvoiceDate:        rec.InvoiceDate,
		InvoiceTotalAmount: rec.InvoiceTotalAmount,
		OrderDate:          rec.OrderDate,
		TextLength:         rec.TextLength,
		PageCount:          rec.PageCount,
		ExtractedAt:        rec.ExtractionTimestamp,
	}
}

func toLineItem(rec *ent.LineItem) entity.LineItem {
	return entity.LineItem{
		ID:          rec.ID,
		InvoiceID:   rec.InvoiceID,
		VendorName:  rec.VendorName,
		Category:    rec.Category,
		Quantity:    rec.Quantity,
		Unit:        rec.Unit,
		Description: rec.Description,
		UnitPrice:   rec.UnitPrice,
		LineTotal:   rec.LineTotal,
		LineNumber:  rec.LineNumber,
	}
}
