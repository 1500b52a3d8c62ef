// Package money converts prices between the float64 values the service
// computes with and the exact two-digit decimal text stored in NUMERIC
// columns. All price formatting and parsing goes through Encode and Decode.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept in storage.
const Scale = 2

// EncodingError reports a price that cannot be represented in storage.
type EncodingError struct {
	Value  string
	Reason string
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("money: cannot encode %s: %s", e.Value, e.Reason)
}

// Encode formats price with exactly two fractional digits, rounding half away
// from zero at the third digit. The float is first converted through its
// shortest decimal representation, so 2.675 rounds to "2.68" even though its
// binary value sits slightly below.
func Encode(price float64) (string, error) {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return "", &EncodingError{Value: fmt.Sprint(price), Reason: "not a finite number"}
	}
	if price < 0 {
		return "", &EncodingError{Value: fmt.Sprint(price), Reason: "negative amount"}
	}
	return decimal.NewFromFloat(price).Round(Scale).StringFixed(Scale), nil
}

// Decode parses a stored decimal back into a float64. For any s produced by
// Encode the result is the float nearest to the two-digit value, which is the
// same float a literal like 19.99 denotes.
func Decode(raw string) (float64, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return 0, fmt.Errorf("money: decode %q: %w", raw, err)
	}
	f, _ := d.Float64()
	return f, nil
}
