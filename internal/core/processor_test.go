package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/common"
	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/normalize"
	"github.com/restoledger/invoice-pipeline/internal/template"
	"github.com/restoledger/invoice-pipeline/internal/vendor"
)

const invoiceText = `ACME SUPPLY CO
www.acmesupply.com
Invoice # 1001
Date: 03/15/2024
Description  Qty
Widget A  2  EA  $3.00  $6.00
Subtotal  $6.00
`

func acmeTemplate() *template.Template {
	return &template.Template{
		InvoiceNumber:      `(?i)invoice\s*#\s*(\d+)`,
		InvoiceDate:        `(?i)date[\s:]*(\d{1,2}/\d{1,2}/\d{4})`,
		InvoiceTotalAmount: `(?i)subtotal\s+\$(\d+\.\d{2})`,
		LineItemBlockStart: `(?i)description\s+qty`,
		LineItemBlockEnd:   `(?i)^subtotal`,
		Quantity:           `\s{2}(\d+)\s{2}`,
		Description:        `^([A-Za-z][\w ]*?)\s{2}`,
		Unit:               `\s(EA|LB|CS)\s`,
		UnitPrice:          `\$(\d+\.\d{2})`,
		LineTotal:          `\$\d+\.\d{2}\s+\$(\d+\.\d{2})`,
	}
}

type fakeExtractor struct {
	text string
	err  error
}

func (f *fakeExtractor) Extract(_ context.Context, path string) (entity.Document, error) {
	if f.err != nil {
		return entity.Document{}, f.err
	}
	return entity.Document{
		Text:        f.text,
		Filename:    path,
		TextLength:  len(f.text),
		PageCount:   1,
		ExtractedAt: time.Now().UTC(),
	}, nil
}

type fakeVendorRepo struct {
	byWebsite map[string]*entity.Vendor
	created   []*entity.Vendor
}

func (f *fakeVendorRepo) FindByWebsite(_ context.Context, w string) (*entity.Vendor, error) {
	if v, ok := f.byWebsite[w]; ok {
		return v, nil
	}
	return nil, common.ErrNotFound
}
func (f *fakeVendorRepo) FindByEmail(context.Context, string) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}
func (f *fakeVendorRepo) FindByPhone(context.Context, string) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}
func (f *fakeVendorRepo) FindByAddress(context.Context, string) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}
func (f *fakeVendorRepo) FindByNormalizedName(context.Context, string) (*entity.Vendor, error) {
	return nil, common.ErrNotFound
}
func (f *fakeVendorRepo) Create(_ context.Context, v *entity.Vendor) (*entity.Vendor, error) {
	out := *v
	out.ID = uuid.New()
	f.created = append(f.created, &out)
	return &out, nil
}

type fakeTemplateRepo struct {
	byVendor map[uuid.UUID]*template.Template
}

func (f *fakeTemplateRepo) GetByVendorID(_ context.Context, id uuid.UUID) (*template.Template, error) {
	if tpl, ok := f.byVendor[id]; ok {
		return tpl, nil
	}
	return nil, common.ErrNotFound
}
func (f *fakeTemplateRepo) Save(context.Context, uuid.UUID, *template.Template) error {
	return nil
}

type failingCompleter struct{}

func (failingCompleter) Complete(context.Context, string) (string, error) {
	return "", errors.New("model unavailable")
}

type fixedCategorizer struct{}

func (fixedCategorizer) Categorize(context.Context, string) (string, error) {
	return "Supplies", nil
}

type fakeInvoiceRepo struct {
	exists bool
	stored *entity.Invoice
	items  []entity.LineItem
}

func (f *fakeInvoiceRepo) Exists(context.Context, uuid.UUID, string) (bool, error) {
	return f.exists, nil
}
func (f *fakeInvoiceRepo) CreateWithLineItems(_ context.Context, inv *entity.Invoice, items []entity.LineItem) (*entity.Invoice, error) {
	out := *inv
	out.ID = uuid.New()
	f.stored = &out
	f.items = items
	return &out, nil
}
func (f *fakeInvoiceRepo) ListAll(context.Context) ([]*entity.Invoice, map[uuid.UUID][]entity.LineItem, error) {
	return nil, nil, nil
}

func newTestProcessor(vendors *fakeVendorRepo, templates *fakeTemplateRepo, invoices *fakeInvoiceRepo, text string) *Processor {
	resolver := vendor.NewResolver(vendors, templates, failingCompleter{}, nil)
	builder := normalize.NewBuilder(fixedCategorizer{}, nil)
	return NewProcessor(nil, &fakeExtractor{text: text}, resolver, vendors, builder, invoices)
}

func TestProcessFileKnownVendor(t *testing.T) {
	acme := &entity.Vendor{ID: uuid.New(), Name: "Acme Supply Co"}
	vendors := &fakeVendorRepo{byWebsite: map[string]*entity.Vendor{"www.acmesupply.com": acme}}
	templates := &fakeTemplateRepo{byVendor: map[uuid.UUID]*template.Template{acme.ID: acmeTemplate()}}
	invoices := &fakeInvoiceRepo{}

	p := newTestProcessor(vendors, templates, invoices, invoiceText)
	stored, err := p.ProcessFile(context.Background(), "inv-1001.pdf")
	require.NoError(t, err)

	assert.Equal(t, "1001", stored.InvoiceNumber)
	assert.Equal(t, acme.ID, stored.VendorID)
	require.Len(t, invoices.items, 1)
	assert.Equal(t, "Widget A", invoices.items[0].Description)
	assert.Equal(t, "Supplies", invoices.items[0].Category)
	assert.Equal(t, "Acme Supply Co", invoices.items[0].VendorName)
	assert.Empty(t, vendors.created)
}

func TestProcessFileEmptyDocument(t *testing.T) {
	vendors := &fakeVendorRepo{byWebsite: map[string]*entity.Vendor{}}
	p := newTestProcessor(vendors, &fakeTemplateRepo{}, &fakeInvoiceRepo{}, "   \n ")

	_, err := p.ProcessFile(context.Background(), "blank.pdf")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrEmptyDocument)
}

func TestProcessFileMissingTemplateIsFatal(t *testing.T) {
	acme := &entity.Vendor{ID: uuid.New(), Name: "Acme Supply Co"}
	vendors := &fakeVendorRepo{byWebsite: map[string]*entity.Vendor{"www.acmesupply.com": acme}}
	templates := &fakeTemplateRepo{byVendor: map[uuid.UUID]*template.Template{}}

	p := newTestProcessor(vendors, templates, &fakeInvoiceRepo{}, invoiceText)
	_, err := p.ProcessFile(context.Background(), "inv-1001.pdf")

	var appErr *common.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "TEMPLATE_MISSING", appErr.Code)
}

func TestProcessFileFallsBackToGenericTemplate(t *testing.T) {
	// Unknown vendor and a failing model: the document is still stored
	// under the synthetic fallback vendor.
	vendors := &fakeVendorRepo{byWebsite: map[string]*entity.Vendor{}}
	invoices := &fakeInvoiceRepo{}

	p := newTestProcessor(vendors, &fakeTemplateRepo{byVendor: map[uuid.UUID]*template.Template{}}, invoices, invoiceText)
	stored, err := p.ProcessFile(context.Background(), "inv-1001.pdf")
	require.NoError(t, err)

	require.Len(t, vendors.created, 1)
	assert.Equal(t, constants.UnknownVendorName, vendors.created[0].Name)
	assert.Equal(t, vendors.created[0].ID, stored.VendorID)
	require.NotNil(t, invoices.stored)
}

func TestProcessFileWarnsOnDuplicateButStores(t *testing.T) {
	acme := &entity.Vendor{ID: uuid.New(), Name: "Acme Supply Co"}
	vendors := &fakeVendorRepo{byWebsite: map[string]*entity.Vendor{"www.acmesupply.com": acme}}
	templates := &fakeTemplateRepo{byVendor: map[uuid.UUID]*template.Template{acme.ID: acmeTemplate()}}
	invoices := &fakeInvoiceRepo{exists: true}

	p := newTestProcessor(vendors, templates, invoices, invoiceText)
	_, err := p.ProcessFile(context.Background(), "inv-1001.pdf")
	require.NoError(t, err)
	require.NotNil(t, invoices.stored)
}
