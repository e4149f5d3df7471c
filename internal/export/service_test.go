package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/restoledger/invoice-pipeline/internal/entity"
)

type fakeInvoiceRepo struct {
	invoices []*entity.Invoice
	items    map[uuid.UUID][]entity.LineItem
}

func (f *fakeInvoiceRepo) Exists(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (f *fakeInvoiceRepo) CreateWithLineItems(_ context.Context, inv *entity.Invoice, _ []entity.LineItem) (*entity.Invoice, error) {
	return inv, nil
}
func (f *fakeInvoiceRepo) ListAll(context.Context) ([]*entity.Invoice, map[uuid.UUID][]entity.LineItem, error) {
	return f.invoices, f.items, nil
}

func TestExportXLSX(t *testing.T) {
	price := 2.50
	total := 25.00
	inv := &entity.Invoice{
		ID:                 uuid.New(),
		Filename:           "acme-page1.pdf",
		VendorID:           uuid.New(),
		InvoiceNumber:      "1001",
		InvoiceDate:        "03/15/2024",
		InvoiceTotalAmount: "25.00",
		TextLength:         512,
		PageCount:          1,
		ExtractedAt:        time.Date(2024, 3, 16, 9, 0, 0, 0, time.UTC),
	}
	repo := &fakeInvoiceRepo{
		invoices: []*entity.Invoice{inv},
		items: map[uuid.UUID][]entity.LineItem{
			inv.ID: {{
				VendorName:  "Acme Supply Co",
				Category:    "Produce",
				Quantity:    10,
				Unit:        "lb",
				Description: "Roma Tomatoes",
				UnitPrice:   &price,
				LineTotal:   &total,
				LineNumber:  1,
			}},
		},
	}

	out, err := NewService(repo, nil).ExportXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	assert.ElementsMatch(t, []string{"Invoices", "Line Items"}, f.GetSheetList())

	got, err := f.GetCellValue("Invoices", "B2")
	require.NoError(t, err)
	assert.Equal(t, "1001", got)

	got, err = f.GetCellValue("Line Items", "D2")
	require.NoError(t, err)
	assert.Equal(t, "Roma Tomatoes", got)

	got, err = f.GetCellValue("Line Items", "I2")
	require.NoError(t, err)
	assert.Equal(t, "25", got)
}

func TestExportXLSXEmpty(t *testing.T) {
	out, err := NewService(&fakeInvoiceRepo{}, nil).ExportXLSX(context.Background())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer func() {
		_ = f.Close()
	}()

	got, err := f.GetCellValue("Invoices", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Filename", got)
}
