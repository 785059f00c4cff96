// Package money implements the exact decimal arithmetic used for all amounts.
//
// All engine computations go through these helpers so that no amount is ever
// represented as a binary floating point number.
package money

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Scale is the number of decimal places amounts are displayed and rounded with.
const Scale int32 = 2

// ErrNotANumber is returned by Parse for strings that are not decimal numbers.
var ErrNotANumber = errors.New("the amount is not a valid decimal number")

// Add returns a + b.
func Add(a, b decimal.Decimal) decimal.Decimal {
	return a.Add(b)
}

// Sub returns a - b.
func Sub(a, b decimal.Decimal) decimal.Decimal {
	return a.Sub(b)
}

// Mul returns a * b.
func Mul(a, b decimal.Decimal) decimal.Decimal {
	return a.Mul(b)
}

// Div returns a / b truncated to scale decimal places.
//
// Division by zero is a programming error and panics.
func Div(a, b decimal.Decimal, scale int32) decimal.Decimal {
	if b.IsZero() {
		panic("money: division by zero")
	}

	// DivRound with extra precision first so that truncation is exact
	return a.DivRound(b, scale+8).Truncate(scale)
}

// Percent returns percent % of total, truncated to cents.
//
// 10 % of 123.45 is 12.34, not 12.35.
func Percent(total, percent decimal.Decimal) decimal.Decimal {
	// Dividing by 100 is a shift of the exponent and never loses precision
	return Mul(total, percent).Shift(-2).Truncate(Scale)
}

// Min returns the smaller of a and b.
func Min(a, b decimal.Decimal) decimal.Decimal {
	return decimal.Min(a, b)
}

// Format returns the amount as dollars with two decimal places, e.g. $12.30.
func Format(a decimal.Decimal) string {
	return "$" + a.StringFixed(Scale)
}

// Parse parses a user supplied amount. A leading $ is accepted.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimPrefix(strings.TrimSpace(s), "$"))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	return d, nil
}
