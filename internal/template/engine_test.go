package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lineModeTemplate() *Template {
	return &Template{
		InvoiceNumber:      `(?i)invoice\s*#\s*(\d+)`,
		InvoiceDate:        `(?i)date[\s:]*(\d{1,2}/\d{1,2}/\d{4})`,
		InvoiceTotalAmount: `(?i)subtotal\s+\$(\d+\.\d{2})`,
		OrderDate:          "",
		LineItemBlockStart: `(?i)description\s+qty`,
		LineItemBlockEnd:   `(?i)^subtotal`,
		Quantity:           `\s{2}(\d+)\s{2}`,
		Description:        `^([A-Za-z][\w ]*?)\s{2}`,
		Unit:               `\s(EA|LB|CS)\s`,
		UnitPrice:          `\$(\d+\.\d{2})`,
		LineTotal:          `\$\d+\.\d{2}\s+\$(\d+\.\d{2})`,
	}
}

const lineModeText = `ACME SUPPLY CO
Invoice # 1001
Date: 03/15/2024
Description  Qty
Widget A  2  EA  $3.00  $6.00
Widget B  1  EA  $4.00  $4.00
Subtotal  $10.00
`

func TestApplyLineMode(t *testing.T) {
	header, items := Apply(lineModeText, lineModeTemplate())

	assert.Equal(t, "1001", header.InvoiceNumber)
	assert.Equal(t, "03/15/2024", header.InvoiceDate)
	assert.Equal(t, "10.00", header.InvoiceTotalAmount)
	assert.Empty(t, header.OrderDate)

	require.Len(t, items, 2)
	assert.Equal(t, RawItem{
		Quantity:    "2",
		Description: "Widget A",
		Unit:        "EA",
		UnitPrice:   "3.00",
		LineTotal:   "6.00",
	}, items[0])
	assert.Equal(t, "Widget B", items[1].Description)
	assert.Equal(t, "4.00", items[1].LineTotal)
}

func TestApplyIsDeterministic(t *testing.T) {
	h1, it1 := Apply(lineModeText, lineModeTemplate())
	h2, it2 := Apply(lineModeText, lineModeTemplate())
	assert.Equal(t, h1, h2)
	assert.Equal(t, it1, it2)
}

func TestApplyBlockMode(t *testing.T) {
	tpl := &Template{
		InvoiceNumber:      `(?i)invoice\s+(\d+)`,
		InvoiceDate:        `(?i)date[\s:]*(\d{1,2}/\d{1,2}/\d{4})`,
		InvoiceTotalAmount: `(?i)subtotal\s+(\d+\.\d{2})`,
		LineItemBlockStart: `(?i)item\s+description`,
		LineItemBlockEnd:   `(?i)^subtotal`,
		Quantity:           `\n(\d+)\s+\d+\.\d{2}\s`,
		Description:        `([\s\S]+?)\n\d+(?:\.\d+)?\s`,
		UnitPrice:          `\n\d+\s+(\d+\.\d{2})\s`,
		LineTotal:          `(\d+\.\d{2})T`,
	}

	text := `INVOICE 4477
Date: 03/15/2024
ITEM DESCRIPTION
Carton 1
Fresh Roma Tomatoes
vine ripened
10 2.50 25.00T
Carton 2
Yellow Onions
5 1.00 5.00T
SUBTOTAL 30.00
`

	header, items := Apply(text, tpl)
	assert.Equal(t, "4477", header.InvoiceNumber)
	assert.Equal(t, "30.00", header.InvoiceTotalAmount)

	require.Len(t, items, 2)
	assert.Equal(t, "Fresh Roma Tomatoes vine ripened", items[0].Description)
	assert.Equal(t, "10", items[0].Quantity)
	assert.Equal(t, "2.50", items[0].UnitPrice)
	assert.Equal(t, "25.00", items[0].LineTotal)
	assert.Equal(t, "Yellow Onions", items[1].Description)
	assert.Equal(t, "5.00", items[1].LineTotal)
}

func TestApplyKeepRule(t *testing.T) {
	tpl := lineModeTemplate()
	tpl.LineItemBlockStart = ""
	tpl.LineItemBlockEnd = ""

	// Lines with neither a description nor a line total are dropped.
	text := "-- -- --\nMisc charge  1  EA  $2.00  $2.00\n"
	_, items := Apply(text, tpl)
	require.Len(t, items, 1)
	assert.Equal(t, "Misc charge", items[0].Description)
}

func TestApplyMissingMarkersUsesWholeText(t *testing.T) {
	tpl := lineModeTemplate()
	tpl.LineItemBlockStart = ""
	tpl.LineItemBlockEnd = ""

	_, items := Apply("Widget A  2  EA  $3.00  $6.00\n", tpl)
	require.Len(t, items, 1)
	assert.Equal(t, "Widget A", items[0].Description)
}

func TestApplyUnmatchedMarkersFallBack(t *testing.T) {
	tpl := lineModeTemplate()
	tpl.LineItemBlockStart = `(?i)no such header`
	tpl.LineItemBlockEnd = `(?i)no such footer`

	_, items := Apply("Widget A  2  EA  $3.00  $6.00\n", tpl)
	require.Len(t, items, 1)
}
