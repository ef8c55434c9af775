package donation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opendonate/donation-sdk/validate"
)

func newRegisteredValidator() *validate.Validator {
	v := validate.New(nil)
	v.RegisterGateway("testgw", validate.GatewayLimits{
		PriceFloorUSD:   decimal.NewFromInt(1),
		PriceCeilingUSD: decimal.NewFromInt(10000),
		Currencies:      []string{"USD", "EUR", "JPY"},
	})
	return v
}

func TestValidationOutcomeCached(t *testing.T) {
	rec := newTestRecord(TestFixture(), Env{}, Options{Validator: newRegisteredValidator()})
	require.True(t, rec.ValidatedOK(), "fixture should validate clean: %v", rec.ValidationErrors(false))

	// Mutation invalidates the memo.
	rec.Set("amount", "999999")
	rec.Normalize()
	assert.False(t, rec.ValidatedOK())

	rec.Set("amount", "35")
	rec.Normalize()
	assert.True(t, rec.ValidatedOK())
}

func TestValidationRequiredFieldsPerCall(t *testing.T) {
	fields := TestFixture()
	delete(fields, "state")
	rec := newTestRecord(fields, Env{}, Options{Validator: newRegisteredValidator()})
	require.True(t, rec.ValidatedOK())

	errs := rec.ValidationErrors(true, "state")
	assert.Equal(t, "Please enter your state or province.", errs[validate.TokenState])
}

func TestSessionFillsBehindFreshData(t *testing.T) {
	rec := NewRecord("testgw", Env{}, Source{
		Fields: map[string]string{
			"amount":   "10",
			"country":  "US",
			"referrer": "https://payments.example.org/step2",
		},
		Session: map[string]string{
			"email":    "donor@example.org",
			"amount":   "99",
			"referrer": "https://www.example.org/landing",
		},
	}, Options{})

	// Session fills the gap but never beats fresh data.
	assert.Equal(t, "donor@example.org", rec.Get("email"))
	assert.Equal(t, "10.00", rec.Get("amount"))
	// Except the referrer, where the session holds the real one.
	assert.Equal(t, "https://www.example.org/landing", rec.Get("referrer"))
}

func TestIsCaching(t *testing.T) {
	fields := map[string]string{
		"_cache_":       "true",
		"utm_source_id": "12",
		"country":       "US",
	}
	rec := newTestRecord(fields, Env{}, Options{})
	assert.True(t, rec.IsCaching())

	withSession := newTestRecord(fields, Env{SessionActive: true}, Options{})
	assert.False(t, withSession.IsCaching())

	delete(fields, "utm_source_id")
	noSourceID := newTestRecord(fields, Env{}, Options{})
	assert.False(t, noSourceID.IsCaching())
}

func TestAddResponseDataMergesAndRederives(t *testing.T) {
	rec := newTestRecord(TestFixture(), Env{}, Options{})

	rec.AddResponseData(map[string]string{
		"pspReference":      "8814950815454947",
		"transactionAmount": "EUR 20.00",
	}, map[string]string{
		"pspReference":      "gateway_txn_id",
		"transactionAmount": "amount",
	})

	assert.Equal(t, "8814950815454947", rec.Get("gateway_txn_id"))
	assert.Equal(t, "EUR", rec.Get("currency_code"))
	assert.Equal(t, "20.00", rec.Get("amount"))
}

func TestAddResponseDataSplitsBuyerName(t *testing.T) {
	rec := newTestRecord(TestFixture(), Env{}, Options{})

	rec.AddResponseData(map[string]string{
		"buyerName": "Ada Lovelace",
	}, map[string]string{
		"buyerName": "fname",
	})

	assert.Equal(t, "Ada", rec.Get("fname"))
	assert.Equal(t, "Lovelace", rec.Get("lname"))
}

func TestDataExcludesEmptyFields(t *testing.T) {
	rec := newTestRecord(map[string]string{"country": "US"}, Env{}, Options{})
	rec.Set("note", "")

	_, present := rec.Data()["note"]
	assert.False(t, present)
}
