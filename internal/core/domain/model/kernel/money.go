package kernel

import (
	"fmt"

	"foodorder/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a value object representing a monetary amount with fixed-point
// decimal semantics. It wraps github.com/shopspring/decimal to keep binary
// floating point out of all pricing arithmetic.
//
// The zero value of Money is a valid zero amount. Arithmetic never rounds;
// only values about to be stored or displayed are rounded, via Round2.
//
// Example usage:
//
//	price, err := kernel.NewMoneyFromString("19.90")
//	if err != nil {
//	    // handle malformed amount
//	}
//	total := price.MulInt(3).Add(deliveryTax).Round2()
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a Money holding exactly zero.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string such as "10.00" or "5.5".
// Returns a validation error if the string is not a valid decimal number.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromDecimal wraps an existing decimal value.
// Used when reconstructing monetary fields from persistence.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MustNewMoney parses a decimal string and panics on failure.
// Intended for constants and test fixtures only.
func MustNewMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(fmt.Sprintf("invalid money literal %q: %v", s, err))
	}
	return m
}

// Add returns the sum of two amounts without rounding.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// MulInt returns the amount multiplied by an integer quantity without rounding.
func (m Money) MulInt(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

// Round2 rounds the amount to two fractional digits (half away from zero).
// Only final stored values are rounded; intermediate results never are.
func (m Money) Round2() Money {
	return Money{amount: m.amount.Round(2)}
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative reports whether the amount is strictly less than zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsEqual compares two amounts for numeric equality, so "10" equals "10.00".
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Decimal returns the underlying decimal value for persistence mapping.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}

// String returns the amount formatted with exactly two fractional digits.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Validate rejects negative amounts. Monetary values in this domain
// (prices, taxes, totals) are never negative.
func (m Money) Validate() error {
	if m.amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("money",
			fmt.Errorf("%s is negative", m.amount.String()))
	}
	return nil
}
