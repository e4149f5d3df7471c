package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCurrencyAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"$1,234.56", 1234.56},
		{"€1.234,56", 1234.56},
		{"1,234.56", 1234.56},
		{"£99", 99},
		{"1234,56", 1234.56},
		{"1,234", 1234},
		{"¥ 250.00", 250},
		{"12.00", 12},
	}
	for _, tt := range tests {
		got := ParseCurrencyAmount(tt.in)
		require.NotNil(t, got, "input %q", tt.in)
		assert.InDelta(t, tt.want, *got, 1e-9, "input %q", tt.in)
	}
}

func TestParseCurrencyAmountUnparsable(t *testing.T) {
	for _, in := range []string{"", "   ", "N/A", "$", "1.2.3,4,5"} {
		assert.Nil(t, ParseCurrencyAmount(in), "input %q", in)
	}
}

func TestParseQuantity(t *testing.T) {
	assert.Equal(t, 2.0, ParseQuantity("2"))
	assert.Equal(t, 1234.5, ParseQuantity("1,234.5"))
	assert.Equal(t, 0.0, ParseQuantity(""))
	assert.Equal(t, 0.0, ParseQuantity("two"))
}
