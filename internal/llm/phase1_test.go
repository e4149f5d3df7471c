package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phase1Payload = `{
  "invoice_details": {
    "invoice_number": "10023",
    "invoice_date": "2024-03-15",
    "invoice_total_amount": 128.4,
    "order_date": "None"
  },
  "line_items": [
    {"description": "Roma Tomatoes 25lb", "quantity": "2", "unit": "CS", "unit_price": "30.00", "line_total": "60.00"},
    {"description": "Yellow Onions", "line_total": "68.40"}
  ],
  "vendor_master_data": {
    "vendor_name": "Pacific Produce Co",
    "vendor_email_id": "orders@pacificproduce.com",
    "vendor_phone_number": "null",
    "vendor_physical_address": "",
    "vendor_website": "pacificproduce.com"
  }
}`

func TestParsePhase1(t *testing.T) {
	res, err := ParsePhase1(phase1Payload)
	require.NoError(t, err)

	assert.Equal(t, "10023", res.InvoiceDetails.InvoiceNumber)
	assert.Equal(t, "2024-03-15", res.InvoiceDetails.InvoiceDate)
	// numeric total is stringified
	assert.Equal(t, "128.4", res.InvoiceDetails.InvoiceTotalAmount)
	// "None" placeholder becomes absent
	assert.Empty(t, res.InvoiceDetails.OrderDate)

	require.Len(t, res.LineItems, 2)
	assert.Equal(t, "Roma Tomatoes 25lb", res.LineItems[0].Description)
	assert.Equal(t, "68.40", res.LineItems[1].LineTotal)

	assert.Equal(t, "Pacific Produce Co", res.VendorMasterData.VendorName)
	assert.Empty(t, res.VendorMasterData.PhoneNumber)
	assert.Equal(t, "pacificproduce.com", res.VendorMasterData.Website)
}

func TestParsePhase1FencedOutput(t *testing.T) {
	res, err := ParsePhase1("```json\n" + phase1Payload + "\n```")
	require.NoError(t, err)
	assert.Equal(t, "10023", res.InvoiceDetails.InvoiceNumber)
}

func TestParsePhase1MissingRootKey(t *testing.T) {
	_, err := ParsePhase1(`{"invoice_details": {"invoice_number": "1", "invoice_date": "2024-01-01", "invoice_total_amount": "5.00"}, "line_items": []}`)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestParsePhase1MissingItemKeys(t *testing.T) {
	_, err := ParsePhase1(`{
	  "invoice_details": {"invoice_number": "1", "invoice_date": "2024-01-01", "invoice_total_amount": "5.00"},
	  "line_items": [{"description": "unpriced thing"}],
	  "vendor_master_data": {"vendor_name": "V"}
	}`)
	require.Error(t, err)
}

func TestParsePhase1NotJSON(t *testing.T) {
	_, err := ParsePhase1("sorry, no data found")
	require.Error(t, err)
}
