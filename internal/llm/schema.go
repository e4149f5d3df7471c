package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildPhase1Schema returns the JSON-Schema for a first-pass extraction.
// Only key presence is enforced; values stay unconstrained because the
// model may legitimately return null for anything it could not find.
func BuildPhase1Schema() map[string]any {
	return map[string]any{
		"type":     "object",
		"required": []string{"invoice_details", "line_items", "vendor_master_data"},
		"properties": map[string]any{
			"invoice_details": map[string]any{
				"type":     "object",
				"required": []string{"invoice_number", "invoice_date", "invoice_total_amount"},
			},
			"line_items": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":     "object",
					"required": []string{"description", "line_total"},
				},
			},
			"vendor_master_data": map[string]any{
				"type":     "object",
				"required": []string{"vendor_name"},
			},
		},
	}
}

// BuildPhase2Schema returns the JSON-Schema for a generated pattern
// template. Every slot key must be present and must be a string; emptiness
// and capture-group rules are checked separately by template validation.
func BuildPhase2Schema() map[string]any {
	stringProp := map[string]any{"type": "string"}
	return map[string]any{
		"type":     "object",
		"required": []string{"invoice_level", "line_item_level"},
		"properties": map[string]any{
			"invoice_level": map[string]any{
				"type":     "object",
				"required": []string{"invoice_number", "invoice_date", "invoice_total_amount", "order_date"},
				"properties": map[string]any{
					"invoice_number":       stringProp,
					"invoice_date":         stringProp,
					"invoice_total_amount": stringProp,
					"order_date":           stringProp,
				},
			},
			"line_item_level": map[string]any{
				"type": "object",
				"required": []string{
					"line_item_block_start", "line_item_block_end",
					"description", "quantity", "unit", "unit_price", "line_total",
				},
				"properties": map[string]any{
					"line_item_block_start": stringProp,
					"line_item_block_end":   stringProp,
					"description":           stringProp,
					"quantity":              stringProp,
					"unit":                  stringProp,
					"unit_price":            stringProp,
					"line_total":            stringProp,
				},
			},
		},
	}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
