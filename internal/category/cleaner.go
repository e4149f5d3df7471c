package category

import (
	"regexp"
	"strings"
)

const units = `(?:lb|lbs|oz|fl\s*oz|ml|l|g|kg|ea|ct|pcs?|pack|case|cs|bn|bag)`
const num = `\d+(?:[.,]\d+)?`

var (
	reParen     = regexp.MustCompile(`\([^)]*\)`)
	reSeparator = regexp.MustCompile(`[_\-/]`)

	// Size, quantity, and packaging blocks: "4 x 5 lb", "50 lb",
	// "12-16 oz", "#10", or a bare unit token.
	reSizeBlock = regexp.MustCompile(`(?i)\b(` +
		num + `\s*(?:x|×)\s*` + num + `\s*` + units + `?` +
		`|` + num + `\s*(?:-\s*` + num + `)?\s*` + units +
		`|#\d+` +
		`|\b` + units + `\b` +
		`)\b`)

	rePackagingOf  = regexp.MustCompile(`(?i)\b(?:bag|pack|case|box|carton|bundle)\s+of\b`)
	reStandaloneOf = regexp.MustCompile(`\bof\b`)
	reBareNumber   = regexp.MustCompile(`\b\d+\b`)
	rePunct        = regexp.MustCompile(`[^\w\s\+\&]`)
)

// Lines that are financial or system charges rather than products.
var specialLines = map[string]struct{}{
	"tax":            {},
	"sales tax":      {},
	"fuel surcharge": {},
}

// Produce nouns that dominate their description: anything after the noun
// is packaging or grade detail.
var produceNouns = map[string]struct{}{
	"onion":    {},
	"tomato":   {},
	"cucumber": {},
	"herbs":    {},
}

// CleanDescription extracts the core product name from a noisy invoice
// description, stripping sizes, packaging phrases, codes, and punctuation.
func CleanDescription(raw string) string {
	var first string
	for _, l := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			first = t
			break
		}
	}
	if first == "" {
		return ""
	}

	s := strings.ToLower(first)
	s = reParen.ReplaceAllString(s, " ")
	s = strings.ReplaceAll(s, ",", " ")
	s = reSeparator.ReplaceAllString(s, " ")

	if _, ok := specialLines[strings.TrimSpace(s)]; ok {
		return strings.TrimSpace(s)
	}

	s = reSizeBlock.ReplaceAllString(s, " ")
	s = rePackagingOf.ReplaceAllString(s, " ")
	s = reStandaloneOf.ReplaceAllString(s, " ")
	s = reBareNumber.ReplaceAllString(s, " ")
	s = rePunct.ReplaceAllString(s, " ")

	tokens := strings.Fields(s)
	if len(tokens) > 0 {
		if _, ok := produceNouns[tokens[0]]; ok {
			return tokens[0]
		}
	}
	return strings.Join(tokens, " ")
}
