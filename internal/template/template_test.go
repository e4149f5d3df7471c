package template

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoledger/invoice-pipeline/constants"
)

func TestSlotsRoundTrip(t *testing.T) {
	orig := Generic()
	slots := orig.Slots()
	require.Len(t, slots, constants.TemplateSlotCount)

	back, err := FromSlots(slots)
	require.NoError(t, err)
	assert.Equal(t, orig, back)
}

func TestFromSlotsLength(t *testing.T) {
	_, err := FromSlots([]string{"a", "b"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "11")
}

func TestValidateGeneric(t *testing.T) {
	require.NoError(t, Generic().Validate(nil))
}

func TestValidateEmptyMandatory(t *testing.T) {
	tpl := Generic()
	tpl.InvoiceNumber = ""
	tpl.Quantity = "   "

	err := tpl.Validate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice_number")
	assert.Contains(t, err.Error(), "quantity")
}

func TestValidateMissingCaptureGroup(t *testing.T) {
	tpl := Generic()
	tpl.UnitPrice = `\d+\.\d{2}`

	err := tpl.Validate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit_price")
}

func TestValidateMarkersNeedNoGroup(t *testing.T) {
	tpl := Generic()
	tpl.LineItemBlockStart = `(?i)description`
	tpl.LineItemBlockEnd = `(?i)subtotal`
	require.NoError(t, tpl.Validate(nil))
}

func TestValidateBadRegexp(t *testing.T) {
	tpl := Generic()
	tpl.InvoiceDate = `([0-9`

	err := tpl.Validate(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice_date")
	assert.Contains(t, err.Error(), "compile")
}

func TestValidateExcessGroupsTolerated(t *testing.T) {
	tpl := Generic()
	tpl.OrderDate = `(order) date[\s:]*(\d{1,2}/\d{1,2}/\d{4})`
	require.NoError(t, tpl.Validate(nil))
}
