// internal/services/pricing_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerivePricePerArea(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		area     string
		expected string
	}{
		{
			name:     "lakh price",
			price:    "₹78.5 Lacs",
			area:     "1000 sq.ft.",
			expected: "₹7850",
		},
		{
			name:     "crore price",
			price:    "₹1.2 Cr",
			area:     "2000 sq.ft.",
			expected: "₹6000",
		},
		{
			name:     "bare number reads as lakh",
			price:    "78.5",
			area:     "1000",
			expected: "₹7850",
		},
		{
			name:     "dollar price taken as absolute",
			price:    "$250000",
			area:     "1000 sq.ft.",
			expected: "₹250",
		},
		{
			name:     "usd marker taken as absolute",
			price:    "90000 USD",
			area:     "900",
			expected: "₹100",
		},
		{
			name:     "comma grouping in price",
			price:    "₹1,25,00,000 Cr",
			area:     "5000",
			expected: "₹25000000000",
		},
		{
			name:     "comma grouping in area",
			price:    "₹50 Lacs",
			area:     "1,250 sq.ft.",
			expected: "₹4000",
		},
		{
			name:     "rounded to nearest rupee",
			price:    "₹1 Lac",
			area:     "3000",
			expected: "₹33",
		},
		{
			name:     "empty price",
			price:    "",
			area:     "1000",
			expected: PriceNotAvailable,
		},
		{
			name:     "empty area",
			price:    "₹78.5 Lacs",
			area:     "",
			expected: PriceNotAvailable,
		},
		{
			name:     "price with no digits",
			price:    "Price on request",
			area:     "1000",
			expected: PriceNotAvailable,
		},
		{
			name:     "zero area",
			price:    "₹78.5 Lacs",
			area:     "0 sq.ft.",
			expected: PriceNotAvailable,
		},
		{
			name:     "case insensitive crore marker",
			price:    "2 CR",
			area:     "1000",
			expected: "₹20000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DerivePricePerArea(tt.price, tt.area))
		})
	}
}

func TestExtractNumber(t *testing.T) {
	value, ok := extractNumber("₹1,25,000 onwards")
	assert.True(t, ok)
	assert.Equal(t, 125000.0, value)

	value, ok = extractNumber("approx 78.5 Lacs")
	assert.True(t, ok)
	assert.Equal(t, 78.5, value)

	_, ok = extractNumber("call for price")
	assert.False(t, ok)
}
