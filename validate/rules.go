package validate

import (
	"net/mail"
	"regexp"
	"strconv"
	"strings"
)

// ruleKind tags which phase a field's format rule belongs to. Calculated
// rules have cross-field dependencies and are gated on those dependencies
// having passed the earlier phases.
type ruleKind int

const (
	ruleValidType ruleKind = iota
	ruleCalculated
)

// ruleName identifies the concrete check to run for a field. The registry
// below is resolved once at package init, never by reflection.
type ruleName int

const (
	ruleEmail ruleName = iota
	ruleAmount
	ruleCreditCard
	ruleCardType
	ruleGateway
	ruleCountryAllowed
	ruleName_
	ruleCurrencyCode
	ruleAddress
	ruleNumeric
	ruleAmountType
	ruleBoolean
	ruleAlphanumeric
)

var numericFields = map[string]struct{}{
	"amount": {}, "amountGiven": {}, "amountOther": {}, "cvv": {},
	"contribution_tracking_id": {}, "account_number": {}, "expiration": {},
	"order_id": {}, "i_order_id": {}, "numAttempt": {},
}

var booleanFields = map[string]struct{}{
	"_cache_": {}, "anonymous": {}, "optout": {}, "recurring": {}, "posted": {},
}

// ruleFor returns the rule for a field and the phase it runs in.
func ruleFor(field string) (ruleName, ruleKind) {
	switch field {
	case "email":
		return ruleEmail, ruleValidType
	case "amount":
		return ruleAmount, ruleCalculated
	case "card_num":
		return ruleCreditCard, ruleValidType
	case "card_type":
		return ruleCardType, ruleCalculated
	case "gateway":
		return ruleGateway, ruleValidType
	case "country":
		return ruleCountryAllowed, ruleCalculated
	case "fname", "lname":
		return ruleName_, ruleCalculated
	case "currency_code":
		return ruleCurrencyCode, ruleCalculated
	case "city", "street":
		return ruleAddress, ruleCalculated
	}
	if _, ok := numericFields[field]; ok {
		return ruleNumeric, ruleValidType
	}
	if _, ok := booleanFields[field]; ok {
		return ruleBoolean, ruleValidType
	}
	return ruleAlphanumeric, ruleValidType
}

// amountPattern is the only shape a normalized amount may take: digits with
// an optional decimal tail.
var amountPattern = regexp.MustCompile(`^\d+(\.(\d+)?)?$`)

// IsNumeric reports whether the value parses as a number.
func IsNumeric(value string) bool {
	_, err := strconv.ParseFloat(value, 64)
	return err == nil
}

// IsBoolean accepts the small fixed set of truthy/falsy literal encodings
// used by the legacy form fields.
func IsBoolean(value string) bool {
	switch value {
	case "0", "false", "1", "true":
		return true
	}
	return false
}

// IsEmail reports whether value is a plausible email address that does not
// have a card number hiding in it.
func IsEmail(value string) bool {
	if _, err := mail.ParseAddress(value); err != nil {
		return false
	}
	return !CardNumberInString(value)
}

// punctuationOnly matches strings made of nothing but ASCII punctuation and
// whitespace.
var punctuationOnly = regexp.MustCompile(`^([\x20-\x2F]|[\x3A-\x40]|[\x5B-\x60]|[\x7B-\x7E])*$`)

// NotJustPunctuation reports whether a value carries any content beyond
// punctuation and whitespace. A street address that fails this check can
// short-circuit AVS at some banks, so staging treats it as empty.
func NotJustPunctuation(value string) bool {
	return !punctuationOnly.MatchString(strings.TrimSpace(value))
}
