package template

import (
	"regexp"
	"strings"

	"github.com/restoledger/invoice-pipeline/internal/pattern"
)

// HeaderFields holds the raw captured invoice-level values. Empty string
// means the pattern did not match; that is not an error, callers decide
// whether an all-absent header is acceptable.
type HeaderFields struct {
	InvoiceNumber      string
	InvoiceDate        string
	InvoiceTotalAmount string
	OrderDate          string
}

// RawItem holds the raw captured values for one line item.
type RawItem struct {
	Quantity    string
	Description string
	Unit        string
	UnitPrice   string
	LineTotal   string
}

// Repeating structural unit for block-spanning layouts: free-form text, a
// quantity line, a rate, then a total terminated by its type marker.
var blockItemRe = regexp.MustCompile(`(?:^|\n)[\s\S]+?\n\d+(?:\.\d+)?\s+\d+(?:\.\d+)?\s+\d+(?:\.\d+)?T`)

var collapseWS = regexp.MustCompile(`\s+`)

// Apply runs the template against the full document text, returning the four
// header values and the ordered list of kept line items.
func Apply(text string, tpl *Template) (HeaderFields, []RawItem) {
	header := HeaderFields{
		InvoiceNumber:      extract(tpl.InvoiceNumber, text),
		InvoiceDate:        extract(tpl.InvoiceDate, text),
		InvoiceTotalAmount: extract(tpl.InvoiceTotalAmount, text),
		OrderDate:          extract(tpl.OrderDate, text),
	}

	block := isolateBlock(text, tpl.LineItemBlockStart, tpl.LineItemBlockEnd)

	var items []RawItem
	if isBlockMode(tpl.Description) {
		items = parseBlockMode(block, tpl)
	} else {
		items = parseLineMode(block, tpl)
	}
	return header, items
}

// isolateBlock bounds the line-item region: after the start marker's match
// when present, before the end marker's match in the remaining text when
// present, otherwise document start/end.
func isolateBlock(text, startPat, endPat string) string {
	start := 0
	end := len(text)

	if strings.TrimSpace(startPat) != "" {
		if re, err := regexp.Compile("(?m)" + startPat); err == nil {
			if loc := re.FindStringIndex(text); loc != nil {
				start = loc[1]
			}
		}
	}
	if strings.TrimSpace(endPat) != "" {
		if re, err := regexp.Compile("(?m)" + endPat); err == nil {
			if loc := re.FindStringIndex(text[start:]); loc != nil {
				end = start + loc[0]
			}
		}
	}
	return text[start:end]
}

// isBlockMode reports whether the description pattern spans lines, which
// selects the block-wise parsing strategy.
func isBlockMode(descPat string) bool {
	return strings.Contains(descPat, "\n") || strings.Contains(descPat, `[\s\S]`)
}

func parseBlockMode(block string, tpl *Template) []RawItem {
	var items []RawItem
	for _, chunk := range blockItemRe.FindAllString(block, -1) {
		chunk = trimLeadingLine(chunk)

		desc := extract(tpl.Description, chunk)
		if desc != "" {
			desc = strings.TrimSpace(collapseWS.ReplaceAllString(desc, " "))
		}

		item := RawItem{
			Quantity:    extract(tpl.Quantity, chunk),
			Description: desc,
			Unit:        extract(tpl.Unit, chunk),
			UnitPrice:   extract(tpl.UnitPrice, chunk),
			LineTotal:   extract(tpl.LineTotal, chunk),
		}
		if item.Description != "" || item.LineTotal != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseLineMode(block string, tpl *Template) []RawItem {
	var items []RawItem
	for _, line := range strings.Split(block, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		item := RawItem{
			Quantity:    extract(tpl.Quantity, line),
			Description: extract(tpl.Description, line),
			Unit:        extract(tpl.Unit, line),
			UnitPrice:   extract(tpl.UnitPrice, line),
			LineTotal:   extract(tpl.LineTotal, line),
		}
		if item.Description != "" || item.LineTotal != "" {
			items = append(items, item)
		}
	}
	return items
}

// trimLeadingLine drops the first non-blank line of a chunk, which carries
// no item data with the structural unit above.
func trimLeadingLine(chunk string) string {
	lines := strings.Split(chunk, "\n")
	kept := make([]string, 0, len(lines))
	removed := false
	for _, ln := range lines {
		if !removed && strings.TrimSpace(ln) != "" {
			removed = true
			continue
		}
		kept = append(kept, ln)
	}
	return strings.Join(kept, "\n")
}

func extract(pat, text string) string {
	v, _ := pattern.Extract(pat, text)
	return v
}
