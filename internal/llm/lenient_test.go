package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONObjectDirect(t *testing.T) {
	m, err := ParseJSONObject(`{"a": 1}`)
	require.NoError(t, err)
	assert.Equal(t, float64(1), m["a"])
}

func TestParseJSONObjectFenced(t *testing.T) {
	out := "Here is the result:\n```json\n{\"invoice_number\": \"42\"}\n```\nDone."
	m, err := ParseJSONObject(out)
	require.NoError(t, err)
	assert.Equal(t, "42", m["invoice_number"])
}

func TestParseJSONObjectBareFence(t *testing.T) {
	m, err := ParseJSONObject("```\n{\"x\": \"y\"}\n```")
	require.NoError(t, err)
	assert.Equal(t, "y", m["x"])
}

func TestParseJSONObjectBracketSpan(t *testing.T) {
	m, err := ParseJSONObject(`The extraction is {"total": "9.99"} as requested.`)
	require.NoError(t, err)
	assert.Equal(t, "9.99", m["total"])
}

func TestParseJSONObjectTrailingCommaAndComments(t *testing.T) {
	out := `{
  "a": "1", // invoice number
  "b": "2",
}`
	m, err := ParseJSONObject(out)
	require.NoError(t, err)
	assert.Equal(t, "1", m["a"])
	assert.Equal(t, "2", m["b"])
}

func TestParseJSONObjectFailure(t *testing.T) {
	_, err := ParseJSONObject("I could not find any invoice data.")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no JSON object")
}

func TestCoerceAbsentValues(t *testing.T) {
	in := map[string]any{
		"a": "None",
		"b": "null",
		"c": "  ",
		"d": "kept",
		"nested": map[string]any{"x": "None"},
		"list":   []any{"None", "ok"},
	}
	out := CoerceAbsentValues(in).(map[string]any)
	assert.Nil(t, out["a"])
	assert.Nil(t, out["b"])
	assert.Nil(t, out["c"])
	assert.Equal(t, "kept", out["d"])
	assert.Nil(t, out["nested"].(map[string]any)["x"])
	assert.Equal(t, []any{nil, "ok"}, out["list"])
}
