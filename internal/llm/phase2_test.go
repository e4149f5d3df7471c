package llm

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const phase2Payload = `{
  "invoice_level": {
    "invoice_number": "Invoice\\s+No\\.?\\s*(\\d+)",
    "invoice_date": "Date[:\\s]+(\\d{2}/\\d{2}/\\d{4})",
    "invoice_total_amount": "TOTAL\\s+\\$(\\d+\\.\\d{2})",
    "order_date": ""
  },
  "line_item_level": {
    "line_item_block_start": "Description\\s+Qty\\s+Price",
    "line_item_block_end": "Subtotal",
    "description": "^([A-Za-z][\\w ,.-]*?)\\s{2,}",
    "quantity": "\\s(\\d+)\\s+(?:CS|EA)",
    "unit": "\\s(CS|EA)\\s",
    "unit_price": "\\$(\\d+\\.\\d{2})\\s+\\$",
    "line_total": "\\$\\d+\\.\\d{2}\\s+\\$(\\d+\\.\\d{2})"
  }
}`

func TestParsePhase2(t *testing.T) {
	tpl, err := ParsePhase2(phase2Payload, nil)
	require.NoError(t, err)

	assert.Equal(t, `Invoice\s+No\.?\s*(\d+)`, tpl.InvoiceNumber)
	assert.Equal(t, "Subtotal", tpl.LineItemBlockEnd)
	assert.Empty(t, tpl.OrderDate)
}

func TestParsePhase2MissingSlotKey(t *testing.T) {
	_, err := ParsePhase2(`{
	  "invoice_level": {"invoice_number": "(\\d+)", "invoice_date": "(\\d+)", "invoice_total_amount": "(\\d+)"},
	  "line_item_level": {"line_item_block_start": "x", "line_item_block_end": "y", "description": "(.+)", "quantity": "(\\d+)", "unit": "", "unit_price": "(\\d+)", "line_total": "(\\d+)"}
	}`, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestParsePhase2MissingCaptureGroup(t *testing.T) {
	payload := `{
	  "invoice_level": {"invoice_number": "\\d+", "invoice_date": "(\\d+)", "invoice_total_amount": "(\\d+)", "order_date": ""},
	  "line_item_level": {"line_item_block_start": "x", "line_item_block_end": "y", "description": "(.+)", "quantity": "(\\d+)", "unit": "", "unit_price": "(\\d+)", "line_total": "(\\d+)"}
	}`
	_, err := ParsePhase2(payload, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invoice_number")
}

type scriptedCompleter struct {
	responses []string
	calls     int
}

func (s *scriptedCompleter) Complete(_ context.Context, _ string) (string, error) {
	out := s.responses[s.calls%len(s.responses)]
	s.calls++
	return out, nil
}

func TestPhase2GenerateTemplate(t *testing.T) {
	c := &scriptedCompleter{responses: []string{"Sure, here you go:\n```json\n" + phase2Payload + "\n```"}}

	tpl, err := Phase2GenerateTemplate(context.Background(), c, "RAW TEXT", &Phase1Result{
		VendorMasterData: VendorMasterData{VendorName: "Pacific Produce Co"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, c.calls)
	assert.Equal(t, "Subtotal", tpl.LineItemBlockEnd)
}

func TestPhase1ExtractUsesCompleter(t *testing.T) {
	c := &scriptedCompleter{responses: []string{phase1Payload}}

	res, err := Phase1Extract(context.Background(), c, "some invoice text", nil)
	require.NoError(t, err)
	assert.Equal(t, "Pacific Produce Co", res.VendorMasterData.VendorName)
}
