// Package gateway implements the processor-agnostic staging protocol: a
// mapping descriptor carries a processor's wire key space, transaction
// shapes, value transforms and signature specs, and the engine here turns a
// canonical donation record into signed wire parameters and back.
package gateway

import (
	"fmt"
	"time"
)

// CommunicationMode says how a transaction's wire parameters reach the
// processor.
type CommunicationMode int

const (
	// ModeRedirect sends the donor's browser to the processor with the
	// parameters in the query string.
	ModeRedirect CommunicationMode = iota
	// ModeIframe embeds the processor's page with the parameters as a form.
	ModeIframe
	// ModeServer posts the parameters server-to-server.
	ModeServer
)

// Transaction describes one named processor operation: the ordered wire
// fields it submits, the constant or derived defaults for fields that do not
// come from the record, and the transport mode.
type Transaction struct {
	// Request is the ordered list of wire field names submitted.
	Request []string
	// Values supplies constant defaults by wire field name.
	Values map[string]string
	// DerivedValues supplies defaults computed at staging time (session
	// expiry timestamps and the like), by wire field name.
	DerivedValues map[string]func(now time.Time) string
	// Required lists wire fields that must resolve to a non-empty value at
	// staging time; the rest are omitted when empty.
	Required []string
	Mode     CommunicationMode
}

// Mapping is the per-processor descriptor. Construct it with NewMapping so
// both key-map directions are precomputed and checked for uniqueness.
type Mapping struct {
	wireToCanonical map[string]string
	canonicalToWire map[string]string

	// returnWireToCanonical translates processor response fields; the
	// response key space is usually narrower than the request one.
	returnWireToCanonical map[string]string

	transactions map[string]Transaction

	// stagedVars maps a canonical field to its staging transform. Every
	// staged var has exactly one.
	stagedVars map[string]Transform

	// requestSignatures are computed last during staging, in order; each
	// writes its digest into its own canonical field.
	requestSignatures []SignatureSpec
	// responseSignature verifies inbound processor responses.
	responseSignature *ResponseSignatureSpec
}

// MappingConfig is the raw material for a Mapping.
type MappingConfig struct {
	VarMap            map[string]string // wire key → canonical key
	ReturnMap         map[string]string // response wire key → canonical key
	Transactions      map[string]Transaction
	StagedVars        map[string]Transform
	RequestSignatures []SignatureSpec
	ResponseSignature *ResponseSignatureSpec
}

// NewMapping validates and precomputes a Mapping: keys must be unique in
// both directions, every signature input must be mappable, and every
// transaction request field must resolve to a canonical field or a default.
func NewMapping(cfg MappingConfig) (*Mapping, error) {
	m := &Mapping{
		wireToCanonical:       make(map[string]string, len(cfg.VarMap)),
		canonicalToWire:       make(map[string]string, len(cfg.VarMap)),
		returnWireToCanonical: cfg.ReturnMap,
		transactions:          cfg.Transactions,
		stagedVars:            cfg.StagedVars,
		requestSignatures:     cfg.RequestSignatures,
		responseSignature:     cfg.ResponseSignature,
	}
	for wire, canonical := range cfg.VarMap {
		if _, dup := m.wireToCanonical[wire]; dup {
			return nil, fmt.Errorf("%w: wire key %q", ErrDuplicateMappingKey, wire)
		}
		if _, dup := m.canonicalToWire[canonical]; dup {
			return nil, fmt.Errorf("%w: canonical key %q", ErrDuplicateMappingKey, canonical)
		}
		m.wireToCanonical[wire] = canonical
		m.canonicalToWire[canonical] = wire
	}

	for _, spec := range cfg.RequestSignatures {
		for _, field := range spec.Fields {
			if _, ok := m.canonicalToWire[field]; !ok {
				return nil, fmt.Errorf("%w: signature field %q", ErrUnmappableField, field)
			}
		}
		if _, ok := m.canonicalToWire[spec.Field]; !ok {
			return nil, fmt.Errorf("%w: signature output field %q", ErrUnmappableField, spec.Field)
		}
	}

	for name, txn := range cfg.Transactions {
		for _, wire := range txn.Request {
			if _, mapped := m.wireToCanonical[wire]; mapped {
				continue
			}
			if _, ok := txn.Values[wire]; ok {
				continue
			}
			if _, ok := txn.DerivedValues[wire]; ok {
				continue
			}
			return nil, fmt.Errorf("%w: %q in transaction %q", ErrUnmappableField, wire, name)
		}
	}
	return m, nil
}

// WireKey returns the wire name for a canonical field.
func (m *Mapping) WireKey(canonical string) (string, bool) {
	w, ok := m.canonicalToWire[canonical]
	return w, ok
}

// CanonicalKey returns the canonical name for a request wire field.
func (m *Mapping) CanonicalKey(wire string) (string, bool) {
	c, ok := m.wireToCanonical[wire]
	return c, ok
}

// ReturnMap exposes the response-side wire-to-canonical key map.
func (m *Mapping) ReturnMap() map[string]string {
	return m.returnWireToCanonical
}

// Transaction looks up a named transaction descriptor.
func (m *Mapping) Transaction(name string) (Transaction, bool) {
	t, ok := m.transactions[name]
	return t, ok
}
