package llm

import (
	"encoding/json"
	"strings"
)

// BuildPhase1Prompt asks the model to extract structured invoice data as
// JSON matching the storage shape.
func BuildPhase1Prompt(text string) string {
	var b strings.Builder
	b.WriteString("Extract structured data from the following invoice text.\n\n")
	b.WriteString("Rules:\n")
	b.WriteString("- Use ONLY the information explicitly present.\n")
	b.WriteString("- If a value is missing or not found, return null (not the string \"None\").\n")
	b.WriteString("- Output ONLY the JSON object. No explanations.\n")
	b.WriteString("- Field names MUST match exactly.\n\n")
	b.WriteString("Required JSON structure:\n\n")
	b.WriteString(`{
  "invoice_details": {
    "invoice_number": "",
    "invoice_date": "YYYY-MM-DD",
    "invoice_total_amount": "0.00",
    "order_date": "YYYY-MM-DD"
  },
  "line_items": [
    {
      "description": "",
      "quantity": "0.00",
      "unit": "",
      "unit_price": "0.00",
      "line_total": "0.00"
    }
  ],
  "vendor_master_data": {
    "vendor_name": "",
    "vendor_email_id": "",
    "vendor_phone_number": "",
    "vendor_physical_address": "",
    "vendor_website": ""
  }
}`)
	b.WriteString("\n\nContext Definitions:\n")
	b.WriteString("- \"unit\": The unit of measure (e.g., \"lb\", \"case\", \"oz\", \"each\").\n")
	b.WriteString("- \"order_date\": The date the order was placed (distinct from the invoice date; if not specified use the invoice date), if available.\n")
	b.WriteString("- \"vendor_name\": The official name of the vendor/supplier.\n\n")
	b.WriteString("Invoice text:\n------------------\n")
	b.WriteString(text)
	return b.String()
}

// BuildPhase2Prompt asks the model for strict, reusable regex patterns for
// this invoice layout, given the raw text and the verified extraction.
func BuildPhase2Prompt(text string, verified *Phase1Result) string {
	verifiedJSON, _ := json.MarshalIndent(verified, "", "  ")

	var b strings.Builder
	b.WriteString("You are given two inputs below: 1) RAW INVOICE TEXT and 2) VERIFIED JSON that contains the correct extracted values for that invoice.\n\n")
	b.WriteString("Task: Produce reusable, strict regex patterns for this invoice layout so that future invoices with the same layout can be parsed without calling an LLM.\n\n")
	b.WriteString("OUTPUT RULES:\n")
	b.WriteString("- Return ONLY one JSON object and nothing else (no prose, no markdown, no code fences).\n")
	b.WriteString("- The JSON MUST match this exact structure (keys and nesting).\n")
	b.WriteString("- Do NOT include delimiters or flags (no /.../, no (?i), etc.).\n")
	b.WriteString("- Regexes must be as STRICT as reasonable: use surrounding labels, punctuation, and layout.\n\n")
	b.WriteString("CRITICAL REGEX RULES (STRICT ENFORCEMENT):\n")
	b.WriteString("1. EXACTLY ONE CAPTURING GROUP: Every regex that extracts a value MUST contain exactly one capturing group (...) that isolates the target data.\n")
	b.WriteString("2. USE NON-CAPTURING GROUPS: If you need to group tokens for logic (e.g., matching \"CS\" or \"EA\"), you MUST use non-capturing groups (?:...).\n")
	b.WriteString("   - BAD: (CS|EA) -> This captures the unit, creating a second group.\n")
	b.WriteString("   - GOOD: (?:CS|EA) -> This matches but does not capture.\n")
	b.WriteString("3. MANDATORY FIELDS: 'invoice_number', 'invoice_date', and 'invoice_total_amount' MUST HAVE A REGEX. Do not return empty strings for these.\n\n")
	b.WriteString("FIELD GUIDANCE:\n")
	b.WriteString("[Invoice Level]\n")
	b.WriteString("- invoice_number, invoice_date, invoice_total_amount: Regex should capture the exact value shown in VERIFIED JSON.\n")
	b.WriteString("- order_date: Capture the date the order was placed. Distinct from Invoice Date.\n\n")
	b.WriteString("[Line Item Level]\n")
	b.WriteString("- line_item_block_start: Regex that matches the first line or header (e.g., \"Description   Qty   Price\"). (No capture group needed here.)\n")
	b.WriteString("- line_item_block_end: Regex that matches the line AFTER the last item (e.g., \"Subtotal\" or footer text). (No capture group needed here.)\n")
	b.WriteString("- description, quantity, unit_price, line_total: Regexes that extract fields from a SINGLE line item row.\n")
	b.WriteString("- unit: Regex that captures the unit (e.g., \"CS\", \"EA\") if present on the line.\n\n")
	b.WriteString("REQUIRED JSON STRUCTURE:\n")
	b.WriteString(`{
  "invoice_level": {
    "invoice_number": "",
    "invoice_date": "",
    "invoice_total_amount": "",
    "order_date": ""
  },
  "line_item_level": {
    "line_item_block_start": "",
    "line_item_block_end": "",
    "description": "",
    "quantity": "",
    "unit": "",
    "unit_price": "",
    "line_total": ""
  }
}`)
	b.WriteString("\n\nRAW INVOICE TEXT:\n------------------\n")
	b.WriteString(text)
	b.WriteString("\n\nVERIFIED JSON (correct extraction for this invoice):\n---------------------------------------------------\n")
	b.Write(verifiedJSON)
	return b.String()
}
