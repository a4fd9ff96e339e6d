package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupPriceRange(t *testing.T) {
	assert.Equal(t, priceRange{2000, 2400}, lookupPriceRange("wheat"))
	assert.Equal(t, priceRange{2000, 2400}, lookupPriceRange("  Wheat "))
	assert.Equal(t, defaultPriceRange, lookupPriceRange("dragonfruit"))
}

func TestParseNumber(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100 quintals", 100},
		{"₹50000 total", 50000},
		{"₹50,000.50", 50000.50},
		{"about 12.5 tonnes", 12.5},
		{"no figures here", 0},
		{"", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseNumber(tt.in))
		})
	}
}
