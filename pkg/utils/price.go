package utils

import (
	"math/big"

	"github.com/shopspring/decimal"
)

// ParsePrice validates a currency amount the way the API expects it:
// non-negative, at most 13 digits in total, at most two decimal places.
// Returns a *ValidationError keyed on the given field name.
func ParsePrice(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, NewValidationError(field, "A valid number is required.")
	}
	if d.IsNegative() {
		return decimal.Zero, NewValidationError(field, "Ensure this value is greater than or equal to 0.")
	}
	if d.Exponent() < -2 {
		return decimal.Zero, NewValidationError(field, "Ensure that there are no more than 2 decimal places.")
	}

	// Digit count at two decimal places, leading zeros excluded.
	coeff := new(big.Int).Abs(d.Coefficient())
	shift := int64(d.Exponent()) + 2
	scaled := new(big.Int).Mul(coeff, new(big.Int).Exp(big.NewInt(10), big.NewInt(shift), nil))
	if len(scaled.String()) > 13 {
		return decimal.Zero, NewValidationError(field, "Ensure that there are no more than 13 digits in total.")
	}

	return d, nil
}
