package llm

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

var (
	reFenced        = regexp.MustCompile("(?s)```(?:json)?(.*?)```")
	reBracketSpan   = regexp.MustCompile(`\{[\s\S]*\}`)
	reJSONLabel     = regexp.MustCompile(`(?s)JSON:\s*(\{.*?\})`)
	reOutputLabel   = regexp.MustCompile(`(?s)Output:\s*(\{.*?\})`)
	reTrailingComma = regexp.MustCompile(`,(\s*[}\]])`)
	reLineComment   = regexp.MustCompile(`(?m)//.*?$`)
	reBlockComment  = regexp.MustCompile(`(?s)/\*.*?\*/`)
)

// ParseJSONObject extracts a JSON object from raw model output. Models wrap
// JSON in code fences, prose, or labels despite instructions, so parsing
// degrades through a ladder of salvage attempts before giving up.
func ParseJSONObject(output string) (map[string]any, error) {
	if m, ok := tryParse(output); ok {
		return m, nil
	}

	if g := reFenced.FindStringSubmatch(output); g != nil {
		if m, ok := tryParse(strings.TrimSpace(g[1])); ok {
			return m, nil
		}
	}

	if span := reBracketSpan.FindString(output); span != "" {
		if m, ok := tryParse(span); ok {
			return m, nil
		}
	}

	for _, re := range []*regexp.Regexp{reJSONLabel, reOutputLabel} {
		if g := re.FindStringSubmatch(output); g != nil {
			if m, ok := tryParse(strings.TrimSpace(g[1])); ok {
				return m, nil
			}
		}
	}

	cleaned := strings.TrimSpace(output)
	cleaned = reTrailingComma.ReplaceAllString(cleaned, "$1")
	cleaned = reLineComment.ReplaceAllString(cleaned, "")
	cleaned = reBlockComment.ReplaceAllString(cleaned, "")
	if m, ok := tryParse(cleaned); ok {
		return m, nil
	}

	snippet := output
	if len(snippet) > 500 {
		snippet = snippet[:500]
	}
	return nil, fmt.Errorf("no JSON object found in model output: %q", snippet)
}

func tryParse(s string) (map[string]any, bool) {
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, false
	}
	return m, true
}

// CoerceAbsentValues recursively replaces "None", "null", and blank strings
// with nil so that downstream checks treat them as absent.
func CoerceAbsentValues(v any) any {
	switch t := v.(type) {
	case string:
		s := strings.TrimSpace(t)
		if s == "None" || s == "null" || s == "" {
			return nil
		}
		return t
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = CoerceAbsentValues(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = CoerceAbsentValues(val)
		}
		return out
	default:
		return v
	}
}
