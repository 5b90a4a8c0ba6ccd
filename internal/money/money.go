package money

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Amount is a monetary value that unmarshals from either a JSON number or a
// currency-formatted string such as "₹1,200.00". Values that cannot be parsed
// decode as 0 so that one malformed field never fails a whole payload.
type Amount float64

func (a *Amount) UnmarshalJSON(data []byte) error {
	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		*a = Amount(number)
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		*a = 0
		return nil
	}
	*a = Amount(Parse(raw))
	return nil
}

func (a Amount) Float64() float64 {
	return float64(a)
}

var currencyMarkers = []string{"₹", "Rs.", "Rs", "$", ","}

// Parse converts a currency-formatted string to its numeric value. Currency
// symbols, thousands separators and whitespace are stripped before parsing;
// anything still unparseable yields 0.
func Parse(raw string) float64 {
	cleaned := strings.TrimSpace(raw)
	for _, marker := range currencyMarkers {
		cleaned = strings.ReplaceAll(cleaned, marker, "")
	}
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return 0
	}

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return value
}
