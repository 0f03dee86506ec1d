package format

import (
	"fmt"

	"golang.org/x/text/currency"
)

// symbols used by the payment screen; other currencies show their ISO code
var symbols = map[currency.Unit]string{
	currency.RUB: "₽",
	currency.USD: "$",
	currency.EUR: "€",
	currency.GBP: "£",
}

// SymbolForISO returns the display symbol for an ISO 4217 code such as "RUB"
func SymbolForISO(code string) (string, error) {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return "", fmt.Errorf("unknown currency %q: %w", code, err)
	}

	if sym, ok := symbols[unit]; ok {
		return sym, nil
	}
	return unit.String(), nil
}
