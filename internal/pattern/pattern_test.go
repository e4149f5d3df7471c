package pattern

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		text    string
		want    string
		wantOK  bool
	}{
		{
			name:    "simple capture",
			pattern: `Invoice\s*#\s*(\d+)`,
			text:    "Invoice # 12345\nTotal: $10.00",
			want:    "12345",
			wantOK:  true,
		},
		{
			name:    "first match wins",
			pattern: `(\d+)`,
			text:    "abc 11 def 22",
			want:    "11",
			wantOK:  true,
		},
		{
			name:    "captured value is trimmed",
			pattern: `Total:(\s*\$\d+\.\d{2})`,
			text:    "Total:  $99.95",
			want:    "$99.95",
			wantOK:  true,
		},
		{
			name:    "blank pattern is absent not error",
			pattern: "   ",
			text:    "anything",
			wantOK:  false,
		},
		{
			name:    "empty pattern",
			pattern: "",
			text:    "anything",
			wantOK:  false,
		},
		{
			name:    "no match",
			pattern: `Order\s*(\d+)`,
			text:    "no identifiers here",
			wantOK:  false,
		},
		{
			name:    "excess groups tolerated, first group returned",
			pattern: `(\d+)-(\d+)`,
			text:    "ref 100-200",
			want:    "100",
			wantOK:  true,
		},
		{
			name:    "pattern without groups yields absent",
			pattern: `Subtotal`,
			text:    "Subtotal 5.00",
			wantOK:  false,
		},
		{
			name:    "invalid pattern yields absent",
			pattern: `([unclosed`,
			text:    "anything",
			wantOK:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Extract(tt.pattern, tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestCaptureGroups(t *testing.T) {
	assert.Equal(t, 1, CaptureGroups(`Invoice\s*(\d+)`))
	assert.Equal(t, 2, CaptureGroups(`(\d+)-(\d+)`))
	assert.Equal(t, 0, CaptureGroups(`(?:CS|EA)`))
	assert.Equal(t, -1, CaptureGroups(`([bad`))
}
