package validate

import (
	"regexp"
	"strings"
)

// CardType identifies a credit card brand by the shape of its number.
type CardType = string

const (
	CardTypeAmex     CardType = "amex"
	CardTypeMC       CardType = "mc"
	CardTypeVisa     CardType = "visa"
	CardTypeDiscover CardType = "discover"
)

// Primary brand patterns, matched against a full card number.
var cardTypePatterns = []struct {
	brand   CardType
	pattern *regexp.Regexp
}{
	{CardTypeAmex, regexp.MustCompile(`^3[47][0-9]{13}$`)},
	{CardTypeMC, regexp.MustCompile(`^5[1-5][0-9]{14}$`)},
	{CardTypeVisa, regexp.MustCompile(`^4[0-9]{12}(?:[0-9]{3})?$`)},
	{CardTypeDiscover, regexp.MustCompile(`^6(?:011|5[0-9]{2})[0-9]{12}$`)},
}

// CardTypeOf returns the brand implied by a card number, or "" when the
// number matches no recognized brand.
func CardTypeOf(cardNum string) CardType {
	for _, ct := range cardTypePatterns {
		if ct.pattern.MatchString(cardNum) {
			return ct.brand
		}
	}
	return ""
}

// luhnCheckablePattern matches digit runs shaped like card numbers from any
// brand we know, primary or secondary. Candidates still have to pass Luhn.
var luhnCheckablePattern = regexp.MustCompile(strings.Join([]string{
	// amex
	`(3[47][0-9]{13})`,
	// bankcard
	`(5610[0-9]{12})`, `(56022[1-5][0-9]{10})`,
	// diners carte blanche
	`(300[0-5][0-9]{11})`,
	// diners international
	`(36[0-9]{12})`,
	// diners US/CA
	`(5[4-5][0-9]{14})`,
	// discover
	`(6011[0-9]{12})`, `(622[0-9]{13})`, `(64[4-5][0-9]{13})`, `(65[0-9]{14})`,
	// instapayment
	`(63[7-9][0-9]{13})`,
	// jcb
	`(35[2-8][0-9]{13})`,
	// laser
	`(6(304|7(06|09|71))[0-9]{12,15})`,
	// maestro
	`((5018|5020|5038|5893|6304|6759|6761|6762|6763|0604)[0-9]{8,15})`,
	// mastercard
	`(5[1-5][0-9]{14})`,
	// solo
	`((6334|6767)[0-9]{12,15})`,
	// switch
	`((4903|4905|4911|4936|6333|6759)[0-9]{12,15})`, `((564182|633110)[0-9]{10,13})`,
	// visa
	`(4([0-9]{15}|[0-9]{12}))`,
}, "|"))

// Card shapes that are real but not Luhn-checkable; any match is suspect.
var nonLuhnPattern = regexp.MustCompile(strings.Join([]string{
	// china union pay
	`(62[0-9]{14,17})`,
	// diners enroute
	`((2014|2149)[0-9]{11})`,
}, "|"))

var (
	ccDelimiters = regexp.MustCompile(`[\s\-]`)
	nonDigitRuns = regexp.MustCompile(`[^0-9]+`)
)

// LuhnCheck runs the Luhn checksum over a digit string.
func LuhnCheck(digits string) bool {
	odd := len(digits)%2 == 1
	sum := 0
	for i := 0; i < len(digits); i++ {
		d := int(digits[i] - '0')
		if odd {
			sum += d
		} else {
			d *= 2
			if d > 9 {
				d -= 9
			}
			sum += d
		}
		odd = !odd
	}
	return sum%10 == 0
}

// CardNumberInString scans arbitrary text for an embedded credit card
// number. Donors occasionally paste their card number into name or address
// fields; catching that here keeps it out of every downstream system.
func CardNumberInString(s string) bool {
	// Strip common in-number delimiters, then split on everything that is
	// not a digit so the patterns see clean digit runs.
	s = ccDelimiters.ReplaceAllString(s, "")
	runs := nonDigitRuns.Split(s, -1)
	joined := strings.Join(runs, " ")

	if nonLuhnPattern.MatchString(joined) {
		return true
	}
	for _, candidate := range luhnCheckablePattern.FindAllString(joined, -1) {
		if LuhnCheck(candidate) {
			return true
		}
	}
	return false
}
