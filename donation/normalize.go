package donation

import (
	"encoding/binary"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/text/language"

	"github.com/opendonate/donation-sdk/currency"
	"github.com/opendonate/donation-sdk/validate"
)

// Normalize runs the full derivation sequence over the current field set.
// The steps are ordered: later ones read fields earlier ones produce, so the
// order must not change. Running Normalize against an already-normalized
// record is a no-op.
func (r *Record) Normalize() {
	if len(r.data) == 0 {
		return
	}
	r.setOrderIDs()
	r.setIPAddresses()
	r.setRecurring()
	r.setPaymentMethod() // before utm_source: the family feeds it
	r.setUtmSource()
	r.setAmount()
	r.setGateway()
	r.setLanguage()
	r.setCountry() // after setIPAddresses, before setCurrencyCode
	r.linkContributionTracking()
	r.setCurrencyCode() // after setCountry
	r.renameCardType()
	r.setEmail()

	r.errorsValid = false
	r.ValidationErrors(false)
}

// setOrderIDs establishes the order identity. A return-trip query parameter
// or the processor's correlation field wins; an id generated earlier in this
// request is kept; otherwise a fresh one is generated. The legacy alias
// always mirrors the primary.
func (r *Record) setOrderIDs() {
	var id string
	switch {
	case r.env.Query["order_id"] != "":
		id = r.env.Query["order_id"]
	case r.opts.CorrelationField != "" && r.env.Query[r.opts.CorrelationField] != "":
		id = r.env.Query[r.opts.CorrelationField]
	case r.IsSomething("order_id") && r.orderIDGenerated:
		id = r.Get("order_id")
	default:
		r.orderIDGenerated = true
		id = generateOrderID()
	}
	r.data["order_id"] = id
	r.data["i_order_id"] = id
}

// generateOrderID produces a fresh order id. Downstream systems still treat
// order ids as numeric, so the uuid only supplies the randomness.
func generateOrderID() string {
	u := uuid.New()
	n := binary.BigEndian.Uint64(u[:8]) % 9000000000
	return strconv.FormatUint(1000000000+n, 10)
}

// setIPAddresses fills in donor- and server-facing addresses. A donor IP
// that is already set to something non-local is kept; it may have been
// carried over from the request that actually saw the donor.
func (r *Record) setIPAddresses() {
	if !r.IsSomething("user_ip") || r.Get("user_ip") == "127.0.0.1" {
		if r.env.UserIP != "" {
			r.data["user_ip"] = r.env.UserIP
		}
	}
	if r.env.ServerIP != "" {
		r.data["server_ip"] = r.env.ServerIP
	} else {
		r.data["server_ip"] = "127.0.0.1"
	}
}

// setRecurring collapses the legacy truthy encodings from both recurring
// field names into one boolean field.
func (r *Record) setRecurring() {
	if v := r.Get("recurring_paypal"); v == "1" || v == "true" {
		r.data["recurring"] = "true"
		delete(r.data, "recurring_paypal")
	}
	if v := r.Get("recurring"); v == "1" || v == "true" {
		r.data["recurring"] = "true"
	} else {
		r.data["recurring"] = "false"
	}
}

// setPaymentMethod collapses the various spellings of payment method and
// submethod. The legacy paymentmethod/submethod fields come from older form
// variants and override everything, then disappear.
func (r *Record) setPaymentMethod() {
	var method, submethod string

	if r.IsSomething("payment_method") {
		method = r.Get("payment_method")
		if dot := strings.Index(method, "."); dot >= 0 {
			submethod = method[dot+1:]
			method = method[:dot]
		}
	}

	if r.IsSomething("payment_submethod") {
		if submethod != "" && submethod != r.Get("payment_submethod") {
			r.log.Warn("payment submethod normalization conflict, keeping the explicit field",
				append(r.logPrefix(),
					zap.String("payment_submethod", r.Get("payment_submethod")),
					zap.String("method_suffix", submethod))...)
		}
		submethod = r.Get("payment_submethod")
	}

	if r.IsSomething("paymentmethod") {
		method = r.Get("paymentmethod")
		delete(r.data, "paymentmethod")
	}
	if r.IsSomething("submethod") {
		submethod = r.Get("submethod")
		delete(r.data, "submethod")
	}

	r.data["payment_method"] = method
	r.data["payment_submethod"] = submethod
}

// paymentMethodFamily is the campaign-tracking name for a payment method,
// with recurring donations prefixed.
func (r *Record) paymentMethodFamily() string {
	family := r.Get("payment_method")
	if family != "" && r.Get("recurring") == "true" {
		family = "r" + family
	}
	return family
}

// setUtmSource rebuilds the three-part banner.landing_page.method_family
// campaign string. The third part is always the resolved method family; the
// second is prefixed with the tracking id when one is present.
func (r *Record) setUtmSource() {
	family := r.paymentMethodFamily()

	parts := strings.SplitN(r.Get("utm_source"), ".", 3)
	for len(parts) < 3 {
		parts = append(parts, "")
	}
	if id := r.Get("utm_source_id"); id != "" {
		parts[1] = family + id
	}
	parts[2] = family

	r.data["utm_source"] = strings.Join(parts, ".")
}

// setAmount resolves the donation amount from its several possible sources
// and encodes it for the resolved currency. Bad input degrades to the
// "invalid" sentinel for validation to reject; it never aborts the pipeline.
func (r *Record) setAmount() {
	if r.Get("amount") == "Other" {
		r.data["amount"] = r.Get("amountGiven")
	}

	notValid := !r.IsSomething("amount") ||
		!validate.IsNumeric(r.Get("amount")) ||
		!positiveNumber(r.Get("amount"))

	if notValid && validate.IsNumeric(r.Get("amountGiven")) && r.IsSomething("amountGiven") {
		r.data["amount"] = r.Get("amountGiven")
	} else if notValid && validate.IsNumeric(r.Get("amountOther")) && r.IsSomething("amountOther") {
		r.data["amount"] = r.Get("amountOther")
	}

	if !r.IsSomething("amount") {
		r.data["amount"] = "0.00"
	}
	delete(r.data, "amountGiven")
	delete(r.data, "amountOther")

	amount, err := decimal.NewFromString(r.Get("amount"))
	if err != nil {
		r.log.Warn("non-numeric amount", append(r.logPrefix(),
			zap.String("amount", r.Get("amount")),
			zap.String("utm_source", r.Get("utm_source")),
			zap.String("user_ip", r.Get("user_ip")))...)
		r.data["amount"] = "invalid"
		return
	}

	if currency.IsFractional(r.Get("currency_code")) {
		r.data["amount"] = amount.StringFixed(2)
	} else {
		r.data["amount"] = amount.Floor().String()
	}
}

func positiveNumber(value string) bool {
	d, err := decimal.NewFromString(value)
	return err == nil && d.GreaterThan(decimal.Zero)
}

// setGateway forces the gateway field to the owning adapter's identifier.
// Inbound values for this field are never trusted.
func (r *Record) setGateway() {
	r.data["gateway"] = r.gatewayID
}

// setLanguage resolves the donation language: explicit UI override first,
// then the language field, then the execution context. Unrecognized codes
// fall back to the context language.
func (r *Record) setLanguage() {
	var lang string
	if r.IsSomething("uselang") {
		lang = r.Get("uselang")
	} else if r.IsSomething("language") {
		lang = r.Get("language")
	}

	if _, err := language.Parse(lang); lang == "" || err != nil {
		lang = r.env.Language
		if lang == "" {
			lang = "en"
		}
	}

	r.data["language"] = lang
	delete(r.data, "uselang")

	if !r.IsSomething("premium_language") {
		r.data["premium_language"] = lang
	}
}

// nearCountryCodes are placeholder codes geolocation databases emit for
// anonymous proxies and regional blocks; seeing one is not worth a warning.
var nearCountryCodes = map[string]struct{}{
	"XX": {}, "EU": {}, "AP": {}, "A1": {}, "A2": {}, "O1": {},
}

// setCountry keeps a valid inbound ISO country, regenerates through IP
// geolocation otherwise, and gives up to the unknown-country sentinel when
// nothing resolves.
func (r *Record) setCountry() {
	regen := true
	country := ""

	if r.IsSomething("country") {
		country = strings.ToUpper(r.Get("country"))
		if currency.IsValidCountryCode(country) {
			regen = false
		} else if _, near := nearCountryCodes[country]; !near {
			r.log.Warn("not a country or recognized placeholder",
				append(r.logPrefix(), zap.String("country", country))...)
		}
	}

	if regen {
		if r.opts.Geo != nil && r.IsSomething("user_ip") {
			country = r.opts.Geo.CountryByIP(r.Get("user_ip"))
			if country == "" {
				r.log.Warn("geolocation found nothing for donor IP",
					append(r.logPrefix(), zap.String("user_ip", r.Get("user_ip")))...)
			}
		}
		if !currency.IsValidCountryCode(country) {
			country = currency.UnknownCountry
		}
	}

	if country != r.Get("country") {
		r.data["country"] = country
	}
}

// setCurrencyCode resolves the currency: currency_code has the authority,
// the legacy currency field is consumed and discarded, and the country's
// national currency is the fallback.
func (r *Record) setCurrencyCode() {
	var code string
	if r.IsSomething("currency") {
		code = r.Get("currency")
		delete(r.data, "currency")
	}
	if r.IsSomething("currency_code") {
		code = r.Get("currency_code")
	}
	if code == "" {
		code = currency.NationalCurrency(r.Get("country"))
	}
	r.data["currency_code"] = code
}

// renameCardType copies the legacy card_type field into payment_submethod
// for generic card payments.
func (r *Record) renameCardType() {
	if r.Get("payment_method") == "cc" && r.IsSomething("card_type") {
		r.data["payment_submethod"] = r.Get("card_type")
	}
}

// setEmail fills in the placeholder address when the donor gave none.
func (r *Record) setEmail() {
	if !r.IsSomething("email") {
		r.data["email"] = "nobody@example.org"
	}
}
