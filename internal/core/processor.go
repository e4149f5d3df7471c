package core

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/common"
	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/extract"
	"github.com/restoledger/invoice-pipeline/internal/normalize"
	"github.com/restoledger/invoice-pipeline/internal/repository"
	"github.com/restoledger/invoice-pipeline/internal/template"
	"github.com/restoledger/invoice-pipeline/internal/vendor"
)

// Processor coordinates the per-document pipeline: text extraction, vendor
// resolution, template extraction, normalization, and storage.
type Processor struct {
	logger    *slog.Logger
	extractor extract.TextExtractor
	resolver  *vendor.Resolver
	vendors   vendor.Repository
	builder   *normalize.Builder
	invoices  repository.InvoiceRepository
}

func NewProcessor(
	logger *slog.Logger,
	extractor extract.TextExtractor,
	resolver *vendor.Resolver,
	vendors vendor.Repository,
	builder *normalize.Builder,
	invoices repository.InvoiceRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		extractor: extractor,
		resolver:  resolver,
		vendors:   vendors,
		builder:   builder,
		invoices:  invoices,
	}
}

// ProcessFile runs the pipeline for a single document and stores the
// resulting invoice with its line items. A failed vendor resolution falls
// back to the generic template under a synthetic "Unknown Vendor", except
// when a matched vendor is missing its stored template, which indicates an
// inconsistent registry and fails the document.
func (p *Processor) ProcessFile(ctx context.Context, path string) (*entity.Invoice, error) {
	start := time.Now()

	doc, err := p.extractor.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("extract text: %w", err)
	}
	if strings.TrimSpace(doc.Text) == "" {
		return nil, common.NewAppError("EMPTY_DOCUMENT",
			fmt.Sprintf("no text extracted from %s", doc.Filename), common.ErrEmptyDocument)
	}

	res, err := p.resolve(ctx, doc)
	if err != nil {
		return nil, err
	}

	header, rawItems := template.Apply(doc.Text, res.Template)

	inv, items, err := p.builder.Build(ctx, normalize.Input{
		Document: doc,
		Vendor:   res.Vendor,
		Header:   header,
		Items:    rawItems,
	})
	if err != nil {
		return nil, fmt.Errorf("build invoice for %s: %w", doc.Filename, err)
	}

	exists, err := p.invoices.Exists(ctx, inv.VendorID, inv.InvoiceNumber)
	if err != nil {
		return nil, fmt.Errorf("duplicate check: %w", err)
	}
	if exists {
		p.logger.Warn("processor.duplicate_invoice",
			"filename", doc.Filename,
			"vendor_id", inv.VendorID,
			"invoice_number", inv.InvoiceNumber,
		)
	}

	stored, err := p.invoices.CreateWithLineItems(ctx, inv, items)
	if err != nil {
		return nil, fmt.Errorf("store invoice for %s: %w", doc.Filename, err)
	}

	p.logger.Info("processor.file.ok",
		"filename", doc.Filename,
		"invoice_id", stored.ID,
		"vendor_created", res.Created,
		"matched_by", res.MatchedBy,
		"line_items", len(items),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return stored, nil
}

// resolve runs vendor resolution, degrading to the generic template when
// the vendor cannot be identified or learned. The fallback vendor row is
// created on first use and reused afterwards.
func (p *Processor) resolve(ctx context.Context, doc entity.Document) (*vendor.Resolution, error) {
	res, err := p.resolver.Resolve(ctx, doc.Text)
	if err == nil {
		return res, nil
	}

	var appErr *common.AppError
	if errors.As(err, &appErr) && appErr.Code == "TEMPLATE_MISSING" {
		return nil, err
	}

	p.logger.Warn("processor.resolve.fallback",
		"filename", doc.Filename,
		"error", err,
	)

	unknown, err := p.vendors.Create(ctx, &entity.Vendor{Name: constants.UnknownVendorName})
	if err != nil {
		return nil, fmt.Errorf("create fallback vendor: %w", err)
	}
	return &vendor.Resolution{
		Vendor:   unknown,
		Template: template.Generic(),
	}, nil
}
