package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// nonFractionalCurrencies cannot carry cents; amounts in them must be whole
// integers before they go anywhere near a processor.
var nonFractionalCurrencies = map[string]struct{}{
	"CLP": {}, "DJF": {}, "IDR": {}, "JPY": {}, "KMF": {}, "KRW": {},
	"MGA": {}, "PYG": {}, "VND": {}, "XAF": {}, "XOF": {}, "XPF": {},
}

// IsFractional reports whether the currency has a minor unit. JPY, VND and
// friends do not, so a donation of "1000.95" in one of those is really 1000.
func IsFractional(code string) bool {
	_, ok := nonFractionalCurrencies[strings.ToUpper(code)]
	return !ok
}

// ToMinorUnits scales an amount into the processor's minor-unit integer
// encoding. Non-fractional currencies are floored to a whole unit first, so
// JPY 1000.95 becomes 100000 rather than 100095.
func ToMinorUnits(code string, amount decimal.Decimal) decimal.Decimal {
	if !IsFractional(code) {
		amount = amount.Floor()
	}
	return amount.Mul(decimal.NewFromInt(100))
}

// FromMinorUnits reverses ToMinorUnits for processor responses.
func FromMinorUnits(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(decimal.NewFromInt(100))
}
