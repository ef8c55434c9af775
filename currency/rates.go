package currency

import (
	"strings"

	"github.com/shopspring/decimal"
)

// usdRates maps a currency code to the number of units of that currency per
// one US dollar. These are deliberately coarse: they exist to keep donations
// inside a gateway's floor/ceiling band, not to settle anything.
var usdRates = map[string]decimal.Decimal{
	"USD": decimal.NewFromInt(1),
	"AED": decimal.NewFromFloat(3.67),
	"ARS": decimal.NewFromFloat(350.0),
	"AUD": decimal.NewFromFloat(1.55),
	"BGN": decimal.NewFromFloat(1.80),
	"BHD": decimal.NewFromFloat(0.376),
	"BRL": decimal.NewFromFloat(4.95),
	"CAD": decimal.NewFromFloat(1.36),
	"CHF": decimal.NewFromFloat(0.88),
	"CLP": decimal.NewFromFloat(880.0),
	"CNY": decimal.NewFromFloat(7.24),
	"COP": decimal.NewFromFloat(3900.0),
	"CZK": decimal.NewFromFloat(22.6),
	"DKK": decimal.NewFromFloat(6.86),
	"DJF": decimal.NewFromFloat(177.7),
	"EGP": decimal.NewFromFloat(30.9),
	"EUR": decimal.NewFromFloat(0.92),
	"GBP": decimal.NewFromFloat(0.79),
	"HKD": decimal.NewFromFloat(7.82),
	"HUF": decimal.NewFromFloat(355.0),
	"IDR": decimal.NewFromFloat(15600.0),
	"ILS": decimal.NewFromFloat(3.72),
	"INR": decimal.NewFromFloat(83.1),
	"JPY": decimal.NewFromFloat(148.0),
	"KES": decimal.NewFromFloat(153.0),
	"KMF": decimal.NewFromFloat(452.0),
	"KRW": decimal.NewFromFloat(1320.0),
	"MAD": decimal.NewFromFloat(10.1),
	"MGA": decimal.NewFromFloat(4500.0),
	"MXN": decimal.NewFromFloat(17.1),
	"MYR": decimal.NewFromFloat(4.68),
	"NGN": decimal.NewFromFloat(790.0),
	"NOK": decimal.NewFromFloat(10.7),
	"NZD": decimal.NewFromFloat(1.67),
	"PHP": decimal.NewFromFloat(55.8),
	"PKR": decimal.NewFromFloat(285.0),
	"PLN": decimal.NewFromFloat(4.02),
	"PYG": decimal.NewFromFloat(7300.0),
	"QAR": decimal.NewFromFloat(3.64),
	"RON": decimal.NewFromFloat(4.57),
	"RUB": decimal.NewFromFloat(92.0),
	"SAR": decimal.NewFromFloat(3.75),
	"SEK": decimal.NewFromFloat(10.5),
	"SGD": decimal.NewFromFloat(1.34),
	"THB": decimal.NewFromFloat(35.5),
	"TRY": decimal.NewFromFloat(28.9),
	"TWD": decimal.NewFromFloat(31.5),
	"UAH": decimal.NewFromFloat(36.9),
	"UGX": decimal.NewFromFloat(3750.0),
	"VND": decimal.NewFromFloat(24300.0),
	"XAF": decimal.NewFromFloat(603.0),
	"XOF": decimal.NewFromFloat(603.0),
	"XPF": decimal.NewFromFloat(110.0),
	"ZAR": decimal.NewFromFloat(18.7),
}

// ConvertToUSD gives the approximate US dollar value of amount in the given
// currency. Unknown currencies pass the amount through unchanged, which
// mirrors how the front-end landing pages estimate floor/ceiling compliance.
func ConvertToUSD(code string, amount decimal.Decimal) decimal.Decimal {
	rate, ok := usdRates[strings.ToUpper(code)]
	if !ok {
		return amount
	}
	return amount.Div(rate)
}

// HasRate reports whether a conversion rate is on file for code.
func HasRate(code string) bool {
	_, ok := usdRates[strings.ToUpper(code)]
	return ok
}
