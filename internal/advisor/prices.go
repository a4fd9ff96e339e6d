package advisor

import (
	"strconv"
	"strings"
)

// priceRange is an assumed min/max market price in rupees per quintal.
type priceRange struct {
	Min float64
	Max float64
}

func (r priceRange) average() float64 {
	return (r.Min + r.Max) / 2
}

// cropPrices is the static reference price table consulted only when no live
// market data could be fetched. Figures approximate recent Indian MSP and
// mandi ranges.
var cropPrices = map[string]priceRange{
	"wheat":     {2000, 2400},
	"rice":      {1900, 2300},
	"maize":     {1800, 2200},
	"cotton":    {5500, 6500},
	"sugarcane": {280, 350},
	"soybean":   {3800, 4600},
	"mustard":   {4800, 5600},
	"potato":    {800, 1400},
	"onion":     {1000, 2000},
	"tomato":    {800, 1600},
	"gram":      {4500, 5300},
	"groundnut": {5000, 6000},
}

var defaultPriceRange = priceRange{1500, 2500}

// lookupPriceRange returns the reference range for a crop, or a broad
// default for crops not in the table.
func lookupPriceRange(crop string) priceRange {
	if r, ok := cropPrices[strings.ToLower(strings.TrimSpace(crop))]; ok {
		return r
	}
	return defaultPriceRange
}

// parseNumber extracts the first number from free text such as
// "100 quintals" or "₹50,000 total". Thousands separators are dropped.
// Returns 0 when the text carries no digits.
func parseNumber(s string) float64 {
	start := -1
	for i, r := range s {
		if r >= '0' && r <= '9' {
			start = i
			break
		}
	}
	if start == -1 {
		return 0
	}

	end := len(s)
	for i := start; i < len(s); i++ {
		c := s[i]
		if (c >= '0' && c <= '9') || c == '.' || c == ',' {
			continue
		}
		end = i
		break
	}

	f, err := strconv.ParseFloat(strings.ReplaceAll(s[start:end], ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}
