package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/repository"
)

// Service is a tiny façade over the invoice repository that produces XLSX
// bytes for exports.
type Service struct {
	invoices repository.InvoiceRepository
	logger   *slog.Logger
}

func NewService(invoices repository.InvoiceRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoices: invoices, logger: logger}
}

// ExportXLSX returns a workbook (as bytes) with two sheets: one row per
// invoice and one row per line item, ordered by extraction time.
func (s *Service) ExportXLSX(ctx context.Context) ([]byte, error) {
	start := time.Now()

	invoices, itemsByInvoice, err := s.invoices.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const invoiceSheet = "Invoices"
	const itemSheet = "Line Items"

	if err := f.SetSheetName(f.GetSheetName(0), invoiceSheet); err != nil {
		return nil, err
	}
	if _, err := f.NewSheet(itemSheet); err != nil {
		return nil, err
	}
	activeIndex, _ := f.GetSheetIndex(invoiceSheet)
	f.SetActiveSheet(activeIndex)

	writeHeader(f, invoiceSheet, []string{
		"Filename",
		"Invoice Number",
		"Invoice Date",
		"Invoice Total",
		"Order Date",
		"Pages",
		"Text Length",
		"Extracted At",
	})
	writeHeader(f, itemSheet, []string{
		"Vendor",
		"Invoice Number",
		"Line",
		"Description",
		"Category",
		"Quantity",
		"Unit",
		"Unit Price",
		"Line Total",
	})

	invoiceRow := 2
	itemRow := 2
	itemCount := 0
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, invoiceRow)
			_ = f.SetCellValue(invoiceSheet, cell, v)
		}
		write(1, inv.Filename)
		write(2, inv.InvoiceNumber)
		write(3, inv.InvoiceDate)
		write(4, inv.InvoiceTotalAmount)
		write(5, inv.OrderDate)
		write(6, inv.PageCount)
		write(7, inv.TextLength)
		write(8, inv.ExtractedAt.Format("2006-01-02 15:04:05"))
		invoiceRow++

		for _, item := range itemsByInvoice[inv.ID] {
			itemRow = writeItemRow(f, itemSheet, itemRow, inv, item)
			itemCount++
		}
	}

	_ = f.SetColWidth(invoiceSheet, "A", "A", 40)
	_ = f.SetColWidth(invoiceSheet, "B", "E", 16)
	_ = f.SetColWidth(invoiceSheet, "H", "H", 20)
	_ = f.SetColWidth(itemSheet, "A", "A", 28)
	_ = f.SetColWidth(itemSheet, "D", "D", 48)
	_ = f.SetColWidth(itemSheet, "E", "E", 22)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"invoices", len(invoices),
		"line_items", itemCount,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func writeHeader(f *excelize.File, sheet string, headers []string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}
}

func writeItemRow(f *excelize.File, sheet string, row int, inv *entity.Invoice, item entity.LineItem) int {
	write := func(col int, v any) {
		cell, _ := excelize.CoordinatesToCellName(col, row)
		_ = f.SetCellValue(sheet, cell, v)
	}
	write(1, item.VendorName)
	write(2, inv.InvoiceNumber)
	write(3, item.LineNumber)
	write(4, item.Description)
	write(5, item.Category)
	write(6, item.Quantity)
	write(7, item.Unit)
	if item.UnitPrice != nil {
		write(8, *item.UnitPrice)
	}
	if item.LineTotal != nil {
		write(9, *item.LineTotal)
	}
	return row + 1
}
