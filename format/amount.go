// Package format renders monetary amounts for the payment screen.
package format

import (
	"strconv"
	"strings"

	"github.com/progressivemobile/acquiring/utils"
	"github.com/shopspring/decimal"
)

// Formatter holds the display options of one formatting call.
// It is a plain value: every call builds its own, nothing is shared.
type Formatter struct {
	GroupSize         int
	GroupSeparator    string
	DecimalSeparator  string
	MinFractionDigits int
	MaxFractionDigits int
	Currency          string
}

// NewFormatter returns the payment screen style: "1 234 567,89 ₽"
func NewFormatter(fractionDigits int, currency string) Formatter {
	return Formatter{
		GroupSize:         3,
		GroupSeparator:    " ",
		DecimalSeparator:  ",",
		MinFractionDigits: 0,
		MaxFractionDigits: fractionDigits,
		Currency:          currency,
	}
}

// Amount formats a value in major currency units
func Amount(value decimal.Decimal, fractionDigits int, currency string) string {
	return NewFormatter(fractionDigits, currency).Format(value)
}

// AmountString formats a raw decimal string. Text that is not a number, or
// whose exponent is beyond utils.MaxExponent, is shown as is.
func AmountString(raw string, fractionDigits int, currency string) string {
	f := NewFormatter(fractionDigits, currency)

	value, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !utils.ExponentInRange(value) {
		return f.suffix(raw)
	}
	return f.Format(value)
}

// MinorUnits formats an amount given in kopecks/cents
func MinorUnits(amount int64, fractionDigits int, currency string) string {
	return Amount(utils.MinorToMajor(amount), fractionDigits, currency)
}

// Format renders value with half-to-even rounding to MaxFractionDigits
func (f Formatter) Format(value decimal.Decimal) string {
	return f.suffix(f.Numeral(value))
}

// Numeral renders value without the currency suffix. Values with an exponent
// beyond utils.MaxExponent are rendered in e-notation without grouping.
func (f Formatter) Numeral(value decimal.Decimal) string {
	if !utils.ExponentInRange(value) {
		return value.Coefficient().String() + "e" + strconv.Itoa(int(value.Exponent()))
	}

	maxDigits := f.MaxFractionDigits
	if maxDigits < 0 {
		maxDigits = 0
	}
	minDigits := f.MinFractionDigits
	if minDigits < 0 {
		minDigits = 0
	}
	if minDigits > maxDigits {
		minDigits = maxDigits
	}

	rounded := value.RoundBank(int32(maxDigits))
	negative := rounded.IsNegative()
	if negative {
		rounded = rounded.Neg()
	}

	fixed := rounded.StringFixed(int32(maxDigits))
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	for len(fracPart) > minDigits && strings.HasSuffix(fracPart, "0") {
		fracPart = fracPart[:len(fracPart)-1]
	}

	var sb strings.Builder
	if negative {
		sb.WriteByte('-')
	}
	sb.WriteString(f.group(intPart))
	if fracPart != "" {
		sb.WriteString(f.DecimalSeparator)
		sb.WriteString(fracPart)
	}
	return sb.String()
}

func (f Formatter) group(digits string) string {
	size := f.GroupSize
	if size <= 0 || len(digits) <= size {
		return digits
	}

	var sb strings.Builder
	head := len(digits) % size
	if head > 0 {
		sb.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += size {
		if sb.Len() > 0 {
			sb.WriteString(f.GroupSeparator)
		}
		sb.WriteString(digits[i : i+size])
	}
	return sb.String()
}

func (f Formatter) suffix(numeral string) string {
	return numeral + " " + f.Currency
}
