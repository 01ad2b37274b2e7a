package utils

import (
	"errors"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("price must be greater than zero")

var hundred = decimal.NewFromInt(100)

// ToMinorUnits converts a price in major currency units to an integer
// number of cents, rounding half away from zero.
func ToMinorUnits(price decimal.Decimal) (int64, error) {
	if !price.IsPositive() {
		return 0, ErrInvalidAmount
	}
	cents := price.Mul(hundred).Round(0)
	if cents.IsZero() {
		return 0, ErrInvalidAmount
	}
	return cents.IntPart(), nil
}
