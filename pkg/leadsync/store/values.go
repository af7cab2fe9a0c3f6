package store

import (
	"math"
	"strconv"
	"strings"
)

// TypedValue converts a raw cell string for display.
// Returns int64 for integers, float64 for decimals, or the original string.
// Values with a leading zero or an explicit sign (zip codes, phone numbers
// written with a country prefix) stay strings so they survive unchanged.
func TypedValue(s string) interface{} {
	if s == "" || s[0] == '+' || (len(s) > 1 && s[0] == '0' && s[1] != '.') {
		return s
	}
	if strings.TrimSpace(s) != s {
		return s
	}
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return f
	}
	return s
}

// TypedRow applies TypedValue to every cell of row.
func TypedRow(row []string) []interface{} {
	out := make([]interface{}, len(row))
	for i, v := range row {
		out[i] = TypedValue(v)
	}
	return out
}
