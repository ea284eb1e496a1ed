package utils

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

// ParseDecimal converts a string to a decimal.Decimal value.
func ParseDecimal(value string) (decimal.Decimal, error) {
	// Remove any whitespace and check for empty strings
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, errors.New("empty decimal string")
	}

	// Convert string to decimal
	dec, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, err
	}

	return dec, nil
}

// CleanDecimal parses spreadsheet-formatted amounts like:
// - "20,000"
// - "₹ 20,000"
// - "Rs 1,200.50"
// - "INR -500"
//
// Keep digits, '.', and a leading '-' only.
func CleanDecimal(value string) (decimal.Decimal, error) {
	s := strings.TrimSpace(value)
	if s != "" {
		s = strings.ReplaceAll(s, ",", "")
		s = strings.ReplaceAll(s, "₹", "")
		s = strings.ReplaceAll(s, "INR", "")
		s = strings.ReplaceAll(s, "inr", "")
		s = strings.ReplaceAll(s, "Rs", "")
		s = strings.ReplaceAll(s, "rs", "")
		s = strings.TrimSpace(s)
	}
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = strings.TrimSpace(strings.TrimPrefix(s, "-"))
	}
	var b strings.Builder
	b.Grow(len(s) + 1)
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	clean := b.String()
	if clean == "" {
		return decimal.Zero, errors.New("not a numeric value")
	}
	if neg {
		clean = "-" + clean
	}

	return decimal.NewFromString(clean)
}

func UniqueSlice[T comparable](slice []T) []T {
	inResult := make(map[T]bool)
	var result []T
	for _, elm := range slice {
		if _, ok := inResult[elm]; !ok {
			// if not exists in map, append it, otherwise do nothing
			inResult[elm] = true
			result = append(result, elm)
		}
	}
	return result
}
