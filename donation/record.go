// Package donation owns the canonical, gateway-agnostic donation record. It
// pulls raw key/value data from whatever source supplied it (a form post, a
// return-trip query string, a restored session, an external caller), merges
// the sources under an explicit policy, and runs a fixed derivation sequence
// that leaves the record normalized the same way no matter how many times it
// runs.
package donation

import (
	"go.uber.org/zap"

	"github.com/opendonate/donation-sdk/validate"
)

// Tracker is the external contribution-tracking collaborator. Insert returns
// the new tracking identifier, or an empty id on failure; the pipeline
// degrades rather than aborts when it fails.
type Tracker interface {
	Insert(fields map[string]string) (id string, err error)
	Update(id string, fields map[string]string) error
}

// Geolocator resolves a donor IP to an ISO country code. An empty result
// means the lookup found nothing usable.
type Geolocator interface {
	CountryByIP(ip string) string
}

// Env describes the execution context of the request the record belongs to:
// addresses, active UI language, and the raw return-trip query parameters.
type Env struct {
	UserIP   string
	ServerIP string
	Language string
	// Query holds raw query-string parameters from the current request; the
	// order identity step reads these to pick up processor return trips.
	Query map[string]string
	// SessionActive disables cache-only mode, which is only coherent for
	// fully anonymous traffic.
	SessionActive bool
}

// Options carries the collaborators and adapter-specific knobs a Record
// needs. Zero values are safe: a nil Tracker skips tracking linkage, a nil
// Geolocator skips geolocation, a nil Logger logs nowhere.
type Options struct {
	Tracker   Tracker
	Geo       Geolocator
	Validator *validate.Validator
	Logger    *zap.Logger
	// CorrelationField is the processor-specific query parameter that
	// carries the order id on a return trip (e.g. "merchantReference").
	CorrelationField string
}

// Record is the canonical donation data set for one request. It is not safe
// for concurrent use; each inbound request builds its own.
type Record struct {
	data      map[string]string
	gatewayID string
	env       Env
	opts      Options
	log       *zap.Logger

	orderIDGenerated bool

	errors      validate.Errors
	errorsValid bool
}

// NewRecord builds a Record for the adapter identified by gatewayID,
// populates it from src, and runs the full derivation sequence.
func NewRecord(gatewayID string, env Env, src Source, opts Options) *Record {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r := &Record{
		data:      mergeSources(src),
		gatewayID: gatewayID,
		env:       env,
		opts:      opts,
		log:       log,
	}
	r.Normalize()
	return r
}

// IsSomething reports whether a field is present with a non-empty value.
// This is the only notion of presence the pipeline uses: absent and
// empty-string are indistinguishable, by design.
func (r *Record) IsSomething(key string) bool {
	return r.data[key] != ""
}

// Get returns the value for key, or "" when the field is not something.
func (r *Record) Get(key string) string {
	return r.data[key]
}

// Set assigns a field directly and invalidates the cached validation
// outcome. Derived fields set this way will be recomputed on the next
// Normalize.
func (r *Record) Set(key, value string) {
	r.data[key] = value
	r.errorsValid = false
}

// Expunge removes a field entirely.
func (r *Record) Expunge(key string) {
	delete(r.data, key)
	r.errorsValid = false
}

// Data returns a copy of the normalized field set.
func (r *Record) Data() map[string]string {
	out := make(map[string]string, len(r.data))
	for k, v := range r.data {
		if v != "" {
			out[k] = v
		}
	}
	return out
}

// GatewayID identifies the adapter instance that owns this record.
func (r *Record) GatewayID() string {
	return r.gatewayID
}

// AddData merges external fields into the record and re-runs the full
// derivation sequence, exactly as if the data had been there from the start.
func (r *Record) AddData(fields map[string]string) {
	for k, v := range fields {
		r.data[k] = v
	}
	r.errorsValid = false
	r.Normalize()
}

// ResetOrderID discards the current order identity and re-derives the
// record, effectively starting a new transaction.
func (r *Record) ResetOrderID() {
	delete(r.data, "order_id")
	delete(r.data, "i_order_id")
	r.orderIDGenerated = false
	r.errorsValid = false
	r.Normalize()
}

// ValidationErrors returns the cached validation outcome, recomputing it
// when the record has mutated since the last pass or when recalculate is
// set. checkNotEmpty lists the fields the caller requires to be present.
func (r *Record) ValidationErrors(recalculate bool, checkNotEmpty ...string) validate.Errors {
	if r.errorsValid && !recalculate {
		return r.errors
	}
	if r.opts.Validator == nil {
		r.errors = validate.Errors{}
	} else {
		r.errors = r.opts.Validator.Validate(r.data, checkNotEmpty)
	}
	r.errorsValid = true
	return r.errors
}

// ValidatedOK reports whether the last validation pass found no errors.
func (r *Record) ValidatedOK() bool {
	return r.ValidationErrors(false).OK()
}

// IsCaching reports whether the record is in cache-only mode: the page asked
// for it, a campaign source id is present, and no donor session exists. The
// decision is recomputed on every call; session state can change under us.
func (r *Record) IsCaching() bool {
	if r.env.SessionActive {
		return false
	}
	return r.Get("_cache_") == "true" && r.IsSomething("utm_source_id")
}

func (r *Record) logPrefix() []zap.Field {
	return []zap.Field{
		zap.String("contribution_tracking_id", r.Get("contribution_tracking_id")),
		zap.String("order_id", r.Get("order_id")),
	}
}
