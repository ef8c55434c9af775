package currency

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinorUnits(t *testing.T) {
	tests := []struct {
		name   string
		code   string
		amount string
		want   string
	}{
		{"fractional currency scales", "USD", "12.34", "1234"},
		{"fractional currency whole amount", "USD", "35", "3500"},
		{"non-fractional floors before scaling", "JPY", "1000.95", "100000"},
		{"non-fractional low fraction also floors", "JPY", "1000.05", "100000"},
		{"non-fractional whole amount", "VND", "50000", "5000000"},
		{"lowercase code still recognized", "jpy", "10.5", "1000"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			amount, err := decimal.NewFromString(tt.amount)
			require.NoError(t, err)
			got := ToMinorUnits(tt.code, amount)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestFromMinorUnits(t *testing.T) {
	got := FromMinorUnits(decimal.NewFromInt(3500))
	assert.True(t, got.Equal(decimal.NewFromInt(35)), "got %s", got)
}

func TestIsFractional(t *testing.T) {
	assert.True(t, IsFractional("USD"))
	assert.True(t, IsFractional("EUR"))
	assert.False(t, IsFractional("JPY"))
	assert.False(t, IsFractional("idr"))
}

func TestConvertToUSD(t *testing.T) {
	usd := ConvertToUSD("USD", decimal.NewFromInt(35))
	assert.True(t, usd.Equal(decimal.NewFromInt(35)))

	eur := ConvertToUSD("EUR", decimal.NewFromInt(92))
	assert.True(t, eur.Equal(decimal.NewFromInt(100)), "got %s", eur)

	// Unrated currencies pass through untouched.
	odd := ConvertToUSD("XTS", decimal.NewFromInt(7))
	assert.True(t, odd.Equal(decimal.NewFromInt(7)))
}

func TestNationalCurrency(t *testing.T) {
	assert.Equal(t, "JPY", NationalCurrency("JP"))
	assert.Equal(t, "EUR", NationalCurrency("FR"))
	assert.Equal(t, "USD", NationalCurrency("US"))
	assert.Equal(t, "USD", NationalCurrency(UnknownCountry))
}

func TestIsValidCountryCode(t *testing.T) {
	assert.True(t, IsValidCountryCode("US"))
	assert.True(t, IsValidCountryCode("fr"))
	assert.False(t, IsValidCountryCode("XX"))
	assert.False(t, IsValidCountryCode(""))
	assert.False(t, IsValidCountryCode("USA"))
}
