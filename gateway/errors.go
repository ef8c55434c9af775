package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrBadSignature means a processor response failed signature
	// verification. The response must be rejected outright, whatever its
	// field values say.
	ErrBadSignature = errors.New("bad response signature")
	// ErrNoResponse means the processor sent nothing recognizable back.
	ErrNoResponse = errors.New("no response from gateway")
	// ErrUnmappableField means a transaction descriptor names a wire field
	// with no key-map entry and no default value.
	ErrUnmappableField = errors.New("unmappable wire field")
	// ErrMissingTransactionField means a required transaction field had no
	// resolvable value; the transaction cannot be set up.
	ErrMissingTransactionField = errors.New("missing required transaction field")
	// ErrDuplicateMappingKey means a key map repeats a key on either side.
	ErrDuplicateMappingKey = errors.New("duplicate key in gateway mapping")
	// ErrUnknownTransaction means the requested transaction descriptor name
	// is not in the mapping.
	ErrUnknownTransaction = errors.New("unknown transaction")
)

// PaymentError is a processor- or setup-scoped failure with an internal
// code. The donor sees only the generic message looked up from the code;
// raw processor diagnostics never escape.
type PaymentError struct {
	Code    string
	Message string
}

func (e *PaymentError) Error() string {
	return fmt.Sprintf("payment error %s: %s", e.Code, e.Message)
}

// userMessages maps internal payment error codes to donor-facing text.
var userMessages = map[string]string{
	"internal-0000": "We're sorry, there was a problem processing your donation. Please try again.",
	"internal-0001": "Your donation could not be completed. You have not been charged.",
}

// NewPaymentError builds a PaymentError for an internal code, with a default
// message for codes not in the table.
func NewPaymentError(code string) *PaymentError {
	msg, ok := userMessages[code]
	if !ok {
		msg = userMessages["internal-0000"]
	}
	return &PaymentError{Code: code, Message: msg}
}
