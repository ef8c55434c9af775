package gateway

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/opendonate/donation-sdk/currency"
	"github.com/opendonate/donation-sdk/validate"
)

// Direction distinguishes staging a request from unstaging a response; most
// transforms only act in one of the two.
type Direction int

const (
	DirectionRequest Direction = iota
	DirectionResponse
)

// Transform rewrites staged canonical values in place. A staged var has
// exactly one transform; transforms read whatever staged fields they need.
type Transform func(staged map[string]string, dir Direction)

// WireParams is the flat string-keyed parameter set a transaction submits,
// plus the order the processor expects the fields in.
type WireParams struct {
	Order  []string
	Values map[string]string
}

// Stage maps a canonical record into wire parameters for the named
// transaction: transforms first, then field resolution in descriptor order,
// then signatures over the staged values, last. Optional fields with no
// value are omitted; a required one missing is a hard setup error.
func (m *Mapping) Stage(data map[string]string, txnName string, signer Signer, now time.Time) (*WireParams, error) {
	txn, ok := m.transactions[txnName]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTransaction, txnName)
	}

	staged := make(map[string]string, len(data))
	for k, v := range data {
		staged[k] = v
	}
	for _, transform := range m.stagedVars {
		transform(staged, DirectionRequest)
	}

	resolve := func(wire string) string {
		if canonical, mapped := m.wireToCanonical[wire]; mapped {
			if v := staged[canonical]; v != "" {
				return v
			}
		}
		if v, ok := txn.Values[wire]; ok {
			return v
		}
		if derive, ok := txn.DerivedValues[wire]; ok {
			return derive(now)
		}
		return ""
	}

	// Signatures run after every other transform so they see final staged
	// values. Each digest lands in its own canonical field; a spec never
	// feeds on its own output.
	for _, spec := range m.requestSignatures {
		values := make([]string, 0, len(spec.Fields))
		for _, field := range spec.Fields {
			wire := m.canonicalToWire[field]
			if v := resolve(wire); v != "" {
				values = append(values, v)
			}
		}
		staged[spec.Field] = signer.Sign(values)
	}

	params := &WireParams{Values: make(map[string]string, len(txn.Request))}
	for _, wire := range txn.Request {
		value := resolve(wire)
		if value == "" || value == "false" {
			if txn.isRequired(wire) {
				return nil, fmt.Errorf("%w: %q in transaction %q", ErrMissingTransactionField, wire, txnName)
			}
			continue
		}
		params.Order = append(params.Order, wire)
		params.Values[wire] = value
	}
	return params, nil
}

func (t Transaction) isRequired(wire string) bool {
	for _, r := range t.Required {
		if r == wire {
			return true
		}
	}
	return false
}

// Unstage recovers canonical fields from a processor response using the
// response-side key map, then runs the transforms in the response direction.
func (m *Mapping) Unstage(wire map[string]string) map[string]string {
	canonical := make(map[string]string, len(m.returnWireToCanonical))
	for wireKey, canonicalKey := range m.returnWireToCanonical {
		if v := wire[wireKey]; v != "" {
			canonical[canonicalKey] = v
		}
	}
	for field, transform := range m.stagedVars {
		if _, present := canonical[field]; present {
			transform(canonical, DirectionResponse)
		}
	}
	return canonical
}

// VerifyResponse authenticates an inbound processor response: the expected
// signature is recomputed from the received wire values over the
// response-side field list and compared in constant time. Any mismatch is an
// authentication failure regardless of how plausible the fields look.
func (m *Mapping) VerifyResponse(wire map[string]string, signer Signer) error {
	if len(wire) == 0 {
		return ErrNoResponse
	}
	spec := m.responseSignature
	if spec == nil {
		return nil
	}
	values := make([]string, len(spec.WireFields))
	for i, field := range spec.WireFields {
		values[i] = wire[field]
	}
	if !signer.Verify(values, wire[spec.SignatureField]) {
		return ErrBadSignature
	}
	return nil
}

// StageAmount is the minor-unit encoding transform: non-fractional
// currencies floor first so JPY 1000.95 stages as 100000, everything else
// scales straight to cents. Responses divide back down.
func StageAmount(staged map[string]string, dir Direction) {
	amount, err := decimal.NewFromString(staged["amount"])
	if err != nil {
		return
	}
	switch dir {
	case DirectionRequest:
		staged["amount"] = currency.ToMinorUnits(staged["currency_code"], amount).String()
	case DirectionResponse:
		staged["amount"] = currency.FromMinorUnits(amount).String()
	}
}

// StageRiskScore rounds the fraud risk score to the nearest integer and
// serializes it. Request-only.
func StageRiskScore(staged map[string]string, dir Direction) {
	if dir != DirectionRequest {
		return
	}
	score, err := strconv.ParseFloat(staged["risk_score"], 64)
	if err != nil {
		return
	}
	staged["risk_score"] = decimal.NewFromFloat(score).Round(0).String()
}

// StageStreet substitutes a placeholder when the street is empty or pure
// punctuation. The digit in the placeholder is deliberate: some banks skip
// address verification when the address line holds no numeric data.
// Request-only.
func StageStreet(staged map[string]string, dir Direction) {
	if dir != DirectionRequest {
		return
	}
	street := strings.TrimSpace(staged["street"])
	if street == "" || !validate.NotJustPunctuation(street) {
		staged["street"] = "N0NE PROVIDED"
	}
}

// StageZip substitutes a non-empty placeholder for an empty postal code so
// address verification still triggers. Request-only.
func StageZip(staged map[string]string, dir Direction) {
	if dir != DirectionRequest {
		return
	}
	if strings.TrimSpace(staged["zip"]) == "" {
		staged["zip"] = "0"
	}
}
