// internal/services/pricing.go
package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// PriceNotAvailable is returned when a per-area rate cannot be derived from
// the free-text price and area fields.
const PriceNotAvailable = "Not available"

var numericToken = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)

// DerivePricePerArea computes a rate from the free-text price and area
// values ("₹78.5 Lacs", "1000 sq.ft."). The unit multiplier comes from
// markers in the price text: "cr" means crore, "$" or "usd" means the
// amount is already absolute, everything else is read as lakh. Extraction
// failure or a zero area yields PriceNotAvailable; this function never
// returns NaN or infinity to the caller.
func DerivePricePerArea(priceText, areaText string) string {
	price, ok := extractNumber(priceText)
	if !ok {
		return PriceNotAvailable
	}

	area, ok := extractNumber(areaText)
	if !ok || area == 0 {
		return PriceNotAvailable
	}

	lower := strings.ToLower(priceText)
	multiplier := 100000.0 // lakh
	switch {
	case strings.Contains(lower, "cr"):
		multiplier = 10000000 // crore
	case strings.Contains(lower, "$") || strings.Contains(lower, "usd"):
		multiplier = 1
	}

	perArea := math.Round(price * multiplier / area)
	return "₹" + strconv.FormatInt(int64(perArea), 10)
}

// extractNumber pulls the first numeric token out of a free-text value,
// tolerating comma grouping ("1,25,000") and trailing unit text.
func extractNumber(text string) (float64, bool) {
	token := numericToken.FindString(text)
	if token == "" {
		return 0, false
	}

	token = strings.ReplaceAll(token, ",", "")
	value, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return value, true
}
