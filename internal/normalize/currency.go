package normalize

import (
	"regexp"
	"strconv"
	"strings"
)

var reCurrencyNoise = regexp.MustCompile(`[€$£¥\s]`)

// ParseQuantity converts a raw quantity string to a float. Anything
// unparsable counts as zero.
func ParseQuantity(val string) float64 {
	s := strings.TrimSpace(strings.ReplaceAll(val, ",", ""))
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

// ParseCurrencyAmount parses a currency string to a float, handling both
// comma-decimal and period-decimal conventions:
//
//	€1,234.56 -> 1234.56
//	$1.234,56 -> 1234.56
//	1,234.56  -> 1234.56
//
// Returns nil when no amount can be parsed.
func ParseCurrencyAmount(val string) *float64 {
	cleaned := reCurrencyNoise.ReplaceAllString(val, "")
	if cleaned == "" {
		return nil
	}

	hasComma := strings.Contains(cleaned, ",")
	hasPeriod := strings.Contains(cleaned, ".")

	switch {
	case hasComma && hasPeriod:
		// The later separator is the decimal one.
		if strings.LastIndex(cleaned, ",") > strings.LastIndex(cleaned, ".") {
			cleaned = strings.ReplaceAll(cleaned, ".", "")
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	case hasComma:
		// Comma alone is decimal only with exactly two trailing digits.
		idx := strings.LastIndex(cleaned, ",")
		if len(cleaned)-idx-1 == 2 {
			cleaned = strings.ReplaceAll(cleaned, ",", ".")
		} else {
			cleaned = strings.ReplaceAll(cleaned, ",", "")
		}
	}

	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return nil
	}
	return &f
}
