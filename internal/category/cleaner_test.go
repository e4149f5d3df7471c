package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanDescription(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"produce noun wins", "Onion 50 lb (SC4)", "onion"},
		{"produce noun wins over trailing words", "Tomato Sauce #10 case of 6", "tomato"},
		{"size and packaging stripped", "Alfredo Sauce #10 case of 6", "alfredo sauce"},
		{"multiplied size block", "Mozzarella 4 x 5 lb", "mozzarella"},
		{"range size block", "Chicken Wings 12-16 oz", "chicken wings"},
		{"special line tax", "TAX", "tax"},
		{"special line surcharge", "Fuel Surcharge", "fuel surcharge"},
		{"first line only", "Yellow Onions\n25lb mesh bag", "yellow onions"},
		{"separators normalized", "half-and-half creamer", "half and half creamer"},
		{"empty", "", ""},
		{"blank lines", "\n   \n", ""},
		{"parenthetical code", "Cucumber (select)", "cucumber"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanDescription(tt.in))
		})
	}
}
