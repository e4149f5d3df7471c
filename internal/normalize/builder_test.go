package normalize

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/template"
)

type stubCategorizer struct {
	categories map[string]string
	err        error
}

func (s *stubCategorizer) Categorize(_ context.Context, desc string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	if c, ok := s.categories[desc]; ok {
		return c, nil
	}
	return constants.UncategorizedLabel, nil
}

func sampleInput(v *entity.Vendor) Input {
	return Input{
		Document: entity.Document{
			Filename:    "acme-page1.pdf",
			TextLength:  420,
			PageCount:   1,
			ExtractedAt: time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC),
		},
		Vendor: v,
		Header: template.HeaderFields{
			InvoiceNumber:      "5521",
			InvoiceDate:        "03/15/2024",
			InvoiceTotalAmount: "128.40",
		},
		Items: []template.RawItem{
			{Description: "Roma Tomatoes", Quantity: "2", Unit: "CS", UnitPrice: "$30.00", LineTotal: "$60.00"},
			{Description: "   ", Quantity: "1", LineTotal: "$5.00"},
			{Description: "Yellow Onions", Quantity: "3", LineTotal: "$68.40"},
		},
	}
}

func TestBuild(t *testing.T) {
	v := &entity.Vendor{ID: uuid.New(), Name: "ACME SUPPLY CO"}
	b := NewBuilder(&stubCategorizer{categories: map[string]string{
		"Roma Tomatoes": "Produce",
		"Yellow Onions": "Produce",
	}}, nil)

	inv, items, err := b.Build(context.Background(), sampleInput(v))
	require.NoError(t, err)

	assert.Equal(t, "acme-page1.pdf", inv.Filename)
	assert.Equal(t, v.ID, inv.VendorID)
	assert.Equal(t, "5521", inv.InvoiceNumber)
	assert.Equal(t, 420, inv.TextLength)

	// blank-description item dropped, numbering stays contiguous
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].LineNumber)
	assert.Equal(t, 2, items[1].LineNumber)
	assert.Equal(t, "Roma Tomatoes", items[0].Description)
	assert.Equal(t, "Produce", items[0].Category)
	assert.Equal(t, 2.0, items[0].Quantity)
	require.NotNil(t, items[0].UnitPrice)
	assert.InDelta(t, 30.0, *items[0].UnitPrice, 1e-9)
	require.NotNil(t, items[1].LineTotal)
	assert.InDelta(t, 68.40, *items[1].LineTotal, 1e-9)
	assert.Equal(t, "ACME SUPPLY CO", items[0].VendorName)
}

func TestBuildUnknownVendorName(t *testing.T) {
	b := NewBuilder(&stubCategorizer{}, nil)

	inv, items, err := b.Build(context.Background(), sampleInput(nil))
	require.NoError(t, err)
	assert.Equal(t, uuid.Nil, inv.VendorID)
	require.NotEmpty(t, items)
	assert.Equal(t, constants.UnknownVendorName, items[0].VendorName)
}

func TestBuildCategorizerFailureIsFatal(t *testing.T) {
	b := NewBuilder(&stubCategorizer{err: errors.New("store down")}, nil)

	_, _, err := b.Build(context.Background(), sampleInput(nil))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "categorize")
}

func TestBuildNoItems(t *testing.T) {
	b := NewBuilder(&stubCategorizer{}, nil)
	in := sampleInput(nil)
	in.Items = nil

	inv, items, err := b.Build(context.Background(), in)
	require.NoError(t, err)
	assert.NotNil(t, inv)
	assert.Empty(t, items)
}
