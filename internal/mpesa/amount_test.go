package mpesa

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanAmount(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"1,200.00", "1200.00"},
		{"250.00", "250.00"},
		{"1,234,567.89", "1234567.89"},
		{"0.00", "0.00"},
		{" 5,300.00 ", "5300.00"},
	}

	for _, tt := range tests {
		got, err := CleanAmount(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)),
			"input %q: got %s, want %s", tt.input, got, tt.expected)
	}
}

func TestCleanAmount_Invalid(t *testing.T) {
	for _, input := range []string{"", "abc", "Ksh100.00", "12.3.4"} {
		_, err := CleanAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestFormatAmount_RoundTrip(t *testing.T) {
	d, err := CleanAmount("1,200.00")
	require.NoError(t, err)

	formatted := FormatAmount(d)
	assert.Equal(t, "1200.00", formatted)

	// Re-parsing the formatted value must lose no precision.
	back, err := CleanAmount(formatted)
	require.NoError(t, err)
	assert.True(t, back.Equal(d))
}
