package utils

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	maxMinorUnits = decimal.NewFromInt(math.MaxInt64)
	minMinorUnits = decimal.NewFromInt(math.MinInt64)
)

// MaxExponent bounds the decimal exponent accepted from callers. Rescaling a
// value like 1e900000000 allocates the whole digit string.
const MaxExponent = 64

// ExponentInRange reports whether d can be rescaled cheaply
func ExponentInRange(d decimal.Decimal) bool {
	exp := d.Exponent()
	return exp <= MaxExponent && exp >= -MaxExponent
}

// ValidateAmount checks if an amount string is a valid non-negative decimal
func ValidateAmount(amount string) (*decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return nil, fmt.Errorf("amount cannot be empty")
	}

	dec, err := decimal.NewFromString(amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount format: %w", err)
	}

	if dec.IsNegative() {
		return nil, fmt.Errorf("amount cannot be negative")
	}

	if !ExponentInRange(dec) {
		return nil, fmt.Errorf("amount exponent %d is out of range", dec.Exponent())
	}

	return &dec, nil
}

// ValidateQuantity checks that a receipt quantity is positive
func ValidateQuantity(q decimal.Decimal) error {
	if !ExponentInRange(q) {
		return fmt.Errorf("quantity exponent %d is out of range", q.Exponent())
	}
	if !q.IsPositive() {
		return fmt.Errorf("quantity must be greater than 0, got %s", q.String())
	}
	return nil
}

// MinorToMajor converts kopecks/cents to rubles/dollars
func MinorToMajor(amount int64) decimal.Decimal {
	return decimal.New(amount, -2)
}

// LineAmount is price * quantity in minor units, rounded half away from zero.
// It fails when the result does not fit into int64.
func LineAmount(price int64, quantity decimal.Decimal) (int64, error) {
	line := decimal.NewFromInt(price).Mul(quantity).Round(0)
	if !line.IsInteger() || line.GreaterThan(maxMinorUnits) || line.LessThan(minMinorUnits) {
		return 0, fmt.Errorf("line amount %s x %s is out of range", decimal.NewFromInt(price).String(), quantity.String())
	}
	return line.IntPart(), nil
}
