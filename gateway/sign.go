package gateway

import (
	"crypto/hmac"
	"encoding/base64"
	"hash"
	"strings"

	"github.com/opendonate/donation-sdk/internal/strings2"
)

// SignatureSpec declares one keyed signature over staged values: the ordered
// canonical fields that feed the hash, and the canonical field the digest is
// written to. The output field is itself part of the submitted parameters
// but never part of its own input.
type SignatureSpec struct {
	Field  string
	Fields []string
}

// ResponseSignatureSpec declares how to verify an inbound response: the
// ordered response wire fields that feed the hash, and the wire field
// carrying the processor's signature. Absent fields contribute an empty
// string, so a response missing a signed field still verifies consistently.
type ResponseSignatureSpec struct {
	SignatureField string
	WireFields     []string
}

// Signer computes keyed signatures the way the hosted-page processors
// expect: concatenate the values with no delimiter, HMAC with the shared
// secret, and base64 the binary digest.
type Signer struct {
	newHash func() hash.Hash
	secret  []byte
}

// NewSigner builds a Signer over the given hash constructor (sha1.New for
// the worked example) and per-gateway shared secret.
func NewSigner(newHash func() hash.Hash, secret []byte) Signer {
	return Signer{newHash: newHash, secret: secret}
}

// Sign concatenates values in order and returns the base64 keyed digest.
func (s Signer) Sign(values []string) string {
	mac := hmac.New(s.newHash, s.secret)
	mac.Write(strings2.ToBytesNoAlloc(strings.Join(values, "")))
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the signature over values and compares it against got
// in constant time.
func (s Signer) Verify(values []string, got string) bool {
	want := s.Sign(values)
	return hmac.Equal(strings2.ToBytesNoAlloc(want), strings2.ToBytesNoAlloc(got))
}
