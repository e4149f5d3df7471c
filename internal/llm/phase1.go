package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"
)

// Phase1Extract runs the first extraction pass: the model reads the raw
// invoice text and returns invoice details, line items, and vendor identity
// as JSON, which is then salvage-parsed and validated.
func Phase1Extract(ctx context.Context, c Completer, text string, logger *slog.Logger) (*Phase1Result, error) {
	if logger == nil {
		logger = slog.Default()
	}
	start := time.Now()
	logger.Info("llm.phase1.start", "text_len", len(text))

	raw, err := c.Complete(ctx, BuildPhase1Prompt(text))
	if err != nil {
		logger.Error("llm.phase1.complete_error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, fmt.Errorf("phase1 completion: %w", err)
	}

	result, err := ParsePhase1(raw)
	if err != nil {
		logger.Error("llm.phase1.parse_error", "error", err,
			"elapsed_ms", time.Since(start).Milliseconds())
		return nil, err
	}

	logger.Info("llm.phase1.ok",
		"vendor", result.VendorMasterData.VendorName,
		"invoice_number", result.InvoiceDetails.InvoiceNumber,
		"line_items", len(result.LineItems),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// ParsePhase1 turns raw model output into a validated Phase1Result.
// Placeholder strings like "None" become absent before validation, so the
// schema only enforces key presence, not value shape.
func ParsePhase1(raw string) (*Phase1Result, error) {
	parsed, err := ParseJSONObject(raw)
	if err != nil {
		return nil, fmt.Errorf("phase1 parse: %w", err)
	}

	coerced := stringifyScalars(CoerceAbsentValues(parsed))

	buf, err := json.Marshal(coerced)
	if err != nil {
		return nil, fmt.Errorf("phase1 re-encode: %w", err)
	}
	if err := ValidateJSONAgainstSchema(BuildPhase1Schema(), buf); err != nil {
		return nil, fmt.Errorf("phase1 validation: %w", err)
	}

	var result Phase1Result
	if err := json.Unmarshal(buf, &result); err != nil {
		return nil, fmt.Errorf("phase1 decode: %w", err)
	}
	return &result, nil
}

// stringifyScalars converts numeric and boolean leaves to strings so the
// result decodes into string fields regardless of how the model quoted its
// values.
func stringifyScalars(v any) any {
	switch t := v.(type) {
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringifyScalars(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringifyScalars(val)
		}
		return out
	default:
		return v
	}
}
