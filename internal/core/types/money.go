// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors in prices,
// totals and report aggregations.
type Money = decimal.Decimal

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// SafeDiv divides a by b rounded to 2 decimal places, returning zero when
// the divisor is zero. Aggregations use it for average price / average
// ticket so empty windows yield 0 instead of a division error.
func SafeDiv(a Money, b int64) Money {
	if b == 0 {
		return decimal.Zero
	}
	return a.DivRound(decimal.NewFromInt(b), 2)
}

// GrowthPercent returns the period-over-period growth of current vs previous
// as a percentage rounded to 2 places, and false when the previous value is
// zero (no meaningful comparison exists).
func GrowthPercent(current, previous Money) (Money, bool) {
	if previous.IsZero() {
		return decimal.Zero, false
	}
	return current.Sub(previous).
		DivRound(previous, 4).
		Mul(decimal.NewFromInt(100)).
		Round(2), true
}
