package validate

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestValidator(forbidden ...string) *Validator {
	v := New(forbidden)
	v.RegisterGateway("testgw", GatewayLimits{
		PriceFloorUSD:   decimal.NewFromInt(1),
		PriceCeilingUSD: decimal.NewFromInt(10000),
		Currencies:      []string{"USD", "EUR", "JPY"},
	})
	return v
}

func baseData() map[string]string {
	return map[string]string{
		"amount":        "35.00",
		"currency_code": "USD",
		"gateway":       "testgw",
		"email":         "donor@example.org",
		"fname":         "Tester",
		"lname":         "Testington",
		"street":        "548 Market St.",
		"city":          "San Francisco",
		"country":       "US",
		"card_num":      "4111111111111111",
		"card_type":     "visa",
	}
}

func TestValidateCleanRecord(t *testing.T) {
	v := newTestValidator()
	errs := v.Validate(baseData(), nil)
	assert.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestValidateRequiredFieldMissing(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	delete(data, "email")

	errs := v.Validate(data, []string{"email"})
	require.False(t, errs.OK())
	assert.Equal(t, "Please enter your email address.", errs[TokenEmail])
}

func TestValidateAmountOverCeiling(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["amount"] = "20000"

	errs := v.Validate(data, nil)
	assert.Equal(t, "Please enter a valid amount.", errs[TokenAmount])
}

func TestValidateAmountUnderFloor(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["amount"] = "0.25"

	errs := v.Validate(data, nil)
	assert.Equal(t, "Please enter a valid amount.", errs[TokenAmount])
}

func TestValidateAmountConvertedBeforeLimitCheck(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	// 1480 JPY is about ten dollars, comfortably inside the band even
	// though the raw number is over the USD ceiling divided by rate.
	data["amount"] = "1480"
	data["currency_code"] = "JPY"

	errs := v.Validate(data, nil)
	assert.True(t, errs.OK(), "unexpected errors: %v", errs)
}

func TestValidateAmountGatedOnDependencies(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	// The gateway never registered, so the amount rule's dependencies can
	// never pass; the amount must not be judged at all.
	data["gateway"] = "nobody"
	data["amount"] = "20000"

	errs := v.Validate(data, nil)
	_, amountJudged := errs[TokenAmount]
	assert.False(t, amountJudged, "amount was judged without its dependencies: %v", errs)
	// The gateway itself fails its type check.
	assert.NotEmpty(t, errs[TokenGeneral])
}

func TestValidateAmountTypeFailureStillReported(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["amount"] = "-5"
	delete(data, "currency_code")

	errs := v.Validate(data, nil)
	// Phase two catches the malformed amount; phase three stays silent
	// because currency_code never passed presence.
	assert.Equal(t, "Please enter a valid amount.", errs[TokenAmount])
}

func TestValidateCurrencyNotSupported(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["currency_code"] = "KRW"
	delete(data, "amount")

	errs := v.Validate(data, nil)
	assert.False(t, errs.OK())
	// Currency failures have no dedicated form slot.
	assert.Contains(t, errs, TokenGeneral)
	assert.NotContains(t, errs, TokenAmount)
}

func TestValidateCardNumberBadBrand(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["card_num"] = "1234567890123456"

	errs := v.Validate(data, nil)
	assert.Equal(t, "Please check that your card number is correct.", errs[TokenCardNum])
	// With the card number unusable, the declared type stands unchallenged.
	_, typeJudged := errs[TokenCardType]
	assert.False(t, typeJudged)
}

func TestValidateCardTypeMismatch(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["card_type"] = "mc"

	errs := v.Validate(data, nil)
	assert.Equal(t, "Please check that your card type is correct.", errs[TokenCardType])
}

func TestValidateCardNumberInNameField(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["fname"] = "4111111111111111"

	errs := v.Validate(data, nil)
	assert.Equal(t, "Please check that your first name is correct.", errs[TokenFName])
}

func TestValidateForbiddenCountry(t *testing.T) {
	v := newTestValidator("IR", "KP")
	data := baseData()
	data["country"] = "IR"

	errs := v.Validate(data, nil)
	assert.Equal(t, "Please check that your country is correct.", errs[TokenCountry])
}

func TestValidateCountrySkippedWhenAbsent(t *testing.T) {
	v := newTestValidator("IR")
	data := baseData()
	delete(data, "country")

	errs := v.Validate(data, nil)
	_, judged := errs[TokenCountry]
	assert.False(t, judged)
}

func TestValidateBooleanField(t *testing.T) {
	v := newTestValidator()
	data := baseData()
	data["recurring"] = "maybe"

	errs := v.Validate(data, nil)
	assert.False(t, errs.OK())

	data["recurring"] = "true"
	errs = v.Validate(data, nil)
	assert.True(t, errs.OK(), "unexpected errors: %v", errs)
}
