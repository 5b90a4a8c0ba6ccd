package money

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"1200", 1200},
		{"1200.50", 1200.50},
		{"₹1,200.00", 1200},
		{"Rs. 45,000", 45000},
		{"$ 2,500.75", 2500.75},
		{" 1 200 ", 1200},
		{"", 0},
		{"n/a", 0},
		{"₹", 0},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Parse(tc.in), "Parse(%q)", tc.in)
	}
}

func TestParseMatchesPlainNumber(t *testing.T) {
	// Sanitized currency strings must decode to the same value as the bare number.
	assert.Equal(t, Parse("1200"), Parse("₹1,200.00"))
	assert.Equal(t, Parse("45000"), Parse("Rs 45,000"))
}

func TestAmountUnmarshalJSON(t *testing.T) {
	var payload struct {
		Basic      Amount `json:"basic"`
		Allowances Amount `json:"allowances"`
		Deductions Amount `json:"deductions"`
		Missing    Amount `json:"missing"`
	}

	raw := []byte(`{"basic": 45000, "allowances": "₹2,000", "deductions": "junk"}`)
	require.NoError(t, json.Unmarshal(raw, &payload))

	assert.Equal(t, 45000.0, payload.Basic.Float64())
	assert.Equal(t, 2000.0, payload.Allowances.Float64())
	assert.Equal(t, 0.0, payload.Deductions.Float64())
	assert.Equal(t, 0.0, payload.Missing.Float64())
}
