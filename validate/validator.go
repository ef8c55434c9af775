// Package validate checks a normalized donation record in three ordered
// phases: required-field presence, single-field format, and cross-field
// business rules. A cross-field rule only runs once everything it depends on
// has passed the first two phases; until then the field is simply not yet
// decidable, and no error is recorded for it.
package validate

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/opendonate/donation-sdk/currency"
)

// GatewayLimits carries the per-processor business limits the calculated
// rules need: the inclusive USD floor/ceiling for a donation and the set of
// currencies the processor will settle.
type GatewayLimits struct {
	PriceFloorUSD   decimal.Decimal
	PriceCeilingUSD decimal.Decimal
	Currencies      []string
}

func (l GatewayLimits) supportsCurrency(code string) bool {
	for _, c := range l.Currencies {
		if strings.EqualFold(c, code) {
			return true
		}
	}
	return false
}

// Validator owns the rule registry state that is resolved at startup:
// which gateways exist and which countries are refused outright.
type Validator struct {
	gateways  map[string]GatewayLimits
	forbidden map[string]struct{}
}

// New builds a Validator with no gateways registered. Adapters register
// their limits during construction.
func New(forbiddenCountries []string) *Validator {
	forbidden := make(map[string]struct{}, len(forbiddenCountries))
	for _, c := range forbiddenCountries {
		forbidden[strings.ToUpper(c)] = struct{}{}
	}
	return &Validator{
		gateways:  make(map[string]GatewayLimits),
		forbidden: forbidden,
	}
}

// RegisterGateway records the limits for a gateway identifier. Registering
// the same identifier again replaces the previous limits.
func (v *Validator) RegisterGateway(id string, limits GatewayLimits) {
	v.gateways[id] = limits
}

// instruction tracks one field's fate through a phase: the zero value means
// not yet run, then pass or fail.
type instrResult int

const (
	instrPending instrResult = iota
	instrPassed
	instrFailed
)

type instructions struct {
	nonEmpty  map[string]instrResult
	validType map[string]instrResult
	typeRules map[string]ruleName
	calc      map[string]ruleName
}

func (in *instructions) requireTyped(field string, rule ruleName) {
	in.nonEmpty[field] = instrPending
	if _, seen := in.typeRules[field]; !seen {
		in.validType[field] = instrPending
		in.typeRules[field] = rule
	}
}

func (in *instructions) passedBothEarlierPhases(fields ...string) bool {
	for _, f := range fields {
		if in.nonEmpty[f] != instrPassed || in.validType[f] != instrPassed {
			return false
		}
	}
	return true
}

// Validate runs all three phases over data. checkNotEmpty lists the fields
// the caller requires to be present; fields a calculated rule depends on are
// required implicitly. The returned map is empty when everything passed.
func (v *Validator) Validate(data map[string]string, checkNotEmpty []string) Errors {
	in := &instructions{
		nonEmpty:  make(map[string]instrResult),
		validType: make(map[string]instrResult),
		typeRules: make(map[string]ruleName),
		calc:      make(map[string]ruleName),
	}

	for _, field := range checkNotEmpty {
		in.nonEmpty[field] = instrPending
	}

	// Sort present fields into phases. Calculated rules pull in implicit
	// presence and type checks for the fields they depend on.
	for field, value := range data {
		if value == "" {
			continue
		}
		rule, kind := ruleFor(field)
		if kind != ruleCalculated {
			in.validType[field] = instrPending
			in.typeRules[field] = rule
			continue
		}
		in.calc[field] = rule
		switch rule {
		case ruleAmount:
			in.requireTyped("amount", ruleAmountType)
			in.requireTyped("currency_code", ruleAlphanumeric)
			in.requireTyped("gateway", ruleGateway)
		case ruleCurrencyCode:
			in.requireTyped("gateway", ruleGateway)
		case ruleCountryAllowed:
			in.nonEmpty["country"] = instrPending
		}
	}

	errs := Errors{}

	// Phase 1: presence.
	for field := range in.nonEmpty {
		if data[field] != "" {
			in.nonEmpty[field] = instrPassed
		} else {
			in.nonEmpty[field] = instrFailed
			errs[tokenFor(field)] = messageFor(field, phaseNonEmpty)
		}
	}

	// Phase 2: single-field format, present fields only.
	for field := range in.validType {
		value, present := data[field]
		if !present || value == "" {
			continue
		}
		if v.checkType(in.typeRules[field], value) {
			in.validType[field] = instrPassed
		} else {
			in.validType[field] = instrFailed
			errs[tokenFor(field)] = messageFor(field, phaseValidType)
		}
	}

	// Phase 3: cross-field rules, gated on their dependencies. A field whose
	// dependencies did not pass is skipped entirely: no error, no pass.
	for field, rule := range in.calc {
		value := data[field]
		var failed bool
		switch rule {
		case ruleAmount:
			if !in.passedBothEarlierPhases("amount", "currency_code", "gateway") {
				continue
			}
			failed = !v.checkAmount(value, data["currency_code"], data["gateway"])
		case ruleCurrencyCode:
			if !in.passedBothEarlierPhases("gateway") {
				continue
			}
			failed = !v.checkCurrencyCode(value, data["gateway"])
		case ruleCardType:
			// The card number is a contingent dependency: it only
			// participates when itself present and type-valid.
			if in.validType["card_num"] == instrPassed {
				failed = !checkCardType(value, data["card_num"])
			} else {
				failed = !checkCardType(value, "")
			}
		case ruleCountryAllowed:
			if in.nonEmpty["country"] != instrPassed {
				continue
			}
			failed = v.isForbiddenCountry(value)
		case ruleName_, ruleAddress:
			failed = CardNumberInString(value)
		}
		if failed {
			errs[tokenFor(field)] = messageFor(field, phaseCalculated)
		}
	}

	return errs
}

func (v *Validator) checkType(rule ruleName, value string) bool {
	switch rule {
	case ruleEmail:
		return IsEmail(value)
	case ruleCreditCard:
		return CardTypeOf(value) != ""
	case ruleGateway:
		_, ok := v.gateways[value]
		return ok
	case ruleNumeric:
		return IsNumeric(value)
	case ruleAmountType:
		amount, err := decimal.NewFromString(value)
		return err == nil && amount.GreaterThan(decimal.Zero)
	case ruleBoolean:
		return IsBoolean(value)
	}
	// Alphanumeric and everything else unrecognized passes; presence was the
	// only meaningful check.
	return true
}

func (v *Validator) checkAmount(value, currencyCode, gatewayID string) bool {
	limits, ok := v.gateways[gatewayID]
	if !ok {
		return false
	}
	if !amountPattern.MatchString(value) {
		return false
	}
	amount, err := decimal.NewFromString(value)
	if err != nil || amount.LessThanOrEqual(decimal.Zero) {
		return false
	}
	usd := currency.ConvertToUSD(currencyCode, amount)
	return usd.GreaterThanOrEqual(limits.PriceFloorUSD) &&
		usd.LessThanOrEqual(limits.PriceCeilingUSD)
}

func (v *Validator) checkCurrencyCode(value, gatewayID string) bool {
	limits, ok := v.gateways[gatewayID]
	if !ok {
		return false
	}
	return limits.supportsCurrency(value)
}

func checkCardType(cardType, cardNum string) bool {
	if cardNum == "" {
		return true
	}
	implied := CardTypeOf(cardNum)
	return implied != "" && implied == cardType
}

func (v *Validator) isForbiddenCountry(code string) bool {
	_, ok := v.forbidden[strings.ToUpper(code)]
	return ok
}
