package validate

// phase names a validation stage; messages differ between a field that is
// missing and one that is present but wrong.
type phase int

const (
	phaseNonEmpty phase = iota
	phaseValidType
	phaseCalculated
)

// fieldLabels are the human-facing names used in error messages. Message
// translation lives outside this module; these are the English defaults.
var fieldLabels = map[ErrToken]string{
	TokenAmount:   "amount",
	TokenEmail:    "email address",
	TokenCardNum:  "card number",
	TokenCardType: "card type",
	TokenCVV:      "card security code",
	TokenFName:    "first name",
	TokenLName:    "last name",
	TokenCity:     "city",
	TokenCountry:  "country",
	TokenStreet:   "street address",
	TokenState:    "state or province",
	TokenZip:      "postal code",
}

func messageFor(field string, p phase) string {
	token := tokenFor(field)
	label, ok := fieldLabels[token]
	if !ok {
		return "We're sorry, something went wrong processing your donation. Please try again."
	}
	if p == phaseNonEmpty {
		return "Please enter your " + label + "."
	}
	if token == TokenAmount {
		return "Please enter a valid amount."
	}
	return "Please check that your " + label + " is correct."
}
