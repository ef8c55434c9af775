package validate

// ErrToken routes a validation error to a specific location on the donation
// form. The vocabulary is small and fixed; fields without a slot of their
// own land on TokenGeneral.
type ErrToken string

const (
	TokenGeneral  ErrToken = "general"
	TokenRetryMsg ErrToken = "retryMsg"
	TokenAmount   ErrToken = "amount"
	TokenEmail    ErrToken = "emailAdd"
	TokenCardNum  ErrToken = "card_num"
	TokenCardType ErrToken = "card_type"
	TokenCVV      ErrToken = "cvv"
	TokenFName    ErrToken = "fname"
	TokenLName    ErrToken = "lname"
	TokenCity     ErrToken = "city"
	TokenCountry  ErrToken = "country"
	TokenStreet   ErrToken = "street"
	TokenState    ErrToken = "state"
	TokenZip      ErrToken = "zip"
)

// Errors is the outcome of a validation pass, keyed by form location. An
// empty map means the record is acceptable for the required-field set that
// produced it.
type Errors map[ErrToken]string

// OK reports whether the validation pass found nothing wrong.
func (e Errors) OK() bool {
	return len(e) == 0
}

// tokenFor maps a canonical field name to the form location its errors
// should light up.
func tokenFor(field string) ErrToken {
	switch field {
	case "amount", "amountGiven", "amountOther":
		return TokenAmount
	case "email":
		return TokenEmail
	case "card_num":
		return TokenCardNum
	case "card_type":
		return TokenCardType
	case "cvv":
		return TokenCVV
	case "fname":
		return TokenFName
	case "lname":
		return TokenLName
	case "city":
		return TokenCity
	case "country":
		return TokenCountry
	case "street":
		return TokenStreet
	case "state":
		return TokenState
	case "zip":
		return TokenZip
	}
	// currency_code has no slot of its own; the form shows a single
	// amount+currency widget, so its failures surface on TokenGeneral.
	return TokenGeneral
}
