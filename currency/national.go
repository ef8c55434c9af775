package currency

import "strings"

// nationalCurrencies maps a country code to the currency a donor there will
// most likely want to give in. Countries missing from this table default to
// USD, the same way the donation forms do.
var nationalCurrencies = map[string]string{
	"AE": "AED", "AR": "ARS", "AT": "EUR", "AU": "AUD", "BE": "EUR",
	"BG": "BGN", "BH": "BHD", "BR": "BRL", "CA": "CAD", "CH": "CHF",
	"CL": "CLP", "CN": "CNY", "CO": "COP", "CY": "EUR", "CZ": "CZK",
	"DE": "EUR", "DJ": "DJF", "DK": "DKK", "EE": "EUR", "EG": "EGP",
	"ES": "EUR", "FI": "EUR", "FR": "EUR", "GB": "GBP", "GR": "EUR",
	"HK": "HKD", "HU": "HUF", "ID": "IDR", "IE": "EUR", "IL": "ILS",
	"IN": "INR", "IT": "EUR", "JP": "JPY", "KE": "KES", "KM": "KMF",
	"KR": "KRW", "LT": "EUR", "LU": "EUR", "LV": "EUR", "MA": "MAD",
	"MG": "MGA", "MT": "EUR", "MX": "MXN", "MY": "MYR", "NG": "NGN",
	"NL": "EUR", "NO": "NOK", "NZ": "NZD", "PH": "PHP", "PK": "PKR",
	"PL": "PLN", "PT": "EUR", "PY": "PYG", "QA": "QAR", "RO": "RON",
	"RU": "RUB", "SA": "SAR", "SE": "SEK", "SG": "SGD", "SI": "EUR",
	"SK": "EUR", "TH": "THB", "TR": "TRY", "TW": "TWD", "UA": "UAH",
	"UG": "UGX", "US": "USD", "VN": "VND", "ZA": "ZAR",
}

// NationalCurrency returns the default currency for a country code, or USD
// when nothing better is on file.
func NationalCurrency(country string) string {
	if code, ok := nationalCurrencies[strings.ToUpper(country)]; ok {
		return code
	}
	return "USD"
}
