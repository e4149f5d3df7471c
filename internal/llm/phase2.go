package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/restoledger/invoice-pipeline/internal/template"
)

// Phase2GenerateTemplate runs the second pass: given the raw text and the
// verified first-pass extraction, the model returns a reusable regex
// template for this invoice layout.
func Phase2GenerateTemplate(ctx context.Context, c Completer, text string, verified *Phase1Result, logger *slog.Logger) (*template.Template, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	logger.Info("llm.phase2.start", "text_len", len(text),
		"vendor", verified.VendorMasterData.VendorName)

	raw, err := c.Complete(ctx, BuildPhase2Prompt(text, verified))
	if err != nil {
		logger.Error("llm.phase2.complete_error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("phase2 completion: %w", err)
	}

	tpl, err := ParsePhase2(raw, logger)
	if err != nil {
		logger.Error("llm.phase2.parse_error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	logger.Info("llm.phase2.ok", "elapsed_ms", time.Since(start).Milliseconds())
	return tpl, nil
}

// ParsePhase2 turns raw model output into a validated pattern template.
func ParsePhase2(raw string, logger *slog.Logger) (*template.Template, error) {
	parsed, err := ParseJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("phase2 parse: %w", err)
	}

	buf, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("phase2 re-encode: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildPhase2Schema(), buf); err != nil {
		return nil, fmt.Errorf("phase2 validation: %w", err)
	}

	invoice := parsed["invoice_level"].(map[string]any)
	items := parsed["line_item_level"].(map[string]any)

	tpl := &template.Template{
		InvoiceNumber:      asString(invoice["invoice_number"]),
		InvoiceDate:        asString(invoice["invoice_date"]),
		InvoiceTotalAmount: asString(invoice["invoice_total_amount"]),
		OrderDate:          asString(invoice["order_date"]),
		LineItemBlockStart: asString(items["line_item_block_start"]),
		LineItemBlockEnd:   asString(items["line_item_block_end"]),
		Quantity:           asString(items["quantity"]),
		Description:        asString(items["description"]),
		Unit:               asString(items["unit"]),
		UnitPrice:          asString(items["unit_price"]),
		LineTotal:          asString(items["line_total"]),
	}
	if err := tpl.Validate(logger); err != nil {
		return nil, fmt.Errorf("phase2 template: %w", err)
	}
	return tpl, nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}
