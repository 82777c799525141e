package mpesa

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// CleanAmount parses a currency figure as it appears in M-Pesa text, e.g.
// "1,200.00". Thousands separators are stripped; the result keeps exact
// minor-unit precision.
func CleanAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return d, nil
}

// FormatAmount renders a decimal back to the two-digit form used for
// persistence and display ("1200.00").
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}
