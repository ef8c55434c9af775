package donation

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"
)

// trackingFields is the fixed set of fields the contribution-tracking
// collaborator accepts; anything else the record holds stays home.
var trackingFields = []string{
	"note",
	"referrer",
	"anonymous",
	"utm_source",
	"utm_medium",
	"utm_campaign",
	"utm_key",
	"optout",
	"language",
	"country",
	"ts",
}

// CleanTrackingData projects the record onto the valid tracking field set,
// adding the combined form_amount value when both halves are present.
func (r *Record) CleanTrackingData() map[string]string {
	out := make(map[string]string, len(trackingFields)+1)
	for _, field := range trackingFields {
		if r.IsSomething(field) {
			out[field] = r.Get(field)
		}
	}
	if r.IsSomething("currency_code") && r.IsSomething("amount") {
		out["form_amount"] = r.Get("currency_code") + " " + r.Get("amount")
	}
	return out
}

// linkContributionTracking makes sure the record is tied to a tracking row.
// Cache-only requests skip it; a failed insert degrades with a log line, the
// pipeline carries on without an id.
func (r *Record) linkContributionTracking() {
	if r.IsSomething("contribution_tracking_id") {
		return
	}
	if r.IsCaching() {
		r.log.Debug("declining to create a contribution tracking record in cache mode", r.logPrefix()...)
		return
	}
	if r.opts.Tracker == nil {
		return
	}

	fields := r.CleanTrackingData()
	if fields["ts"] == "" {
		fields["ts"] = time.Now().UTC().Format("20060102150405")
	}
	id, err := r.opts.Tracker.Insert(fields)
	if err != nil || id == "" {
		r.log.Error("failed to create a contribution tracking record",
			append(r.logPrefix(), zap.Error(err))...)
		return
	}
	r.data["contribution_tracking_id"] = id
}

// singleStepSource matches utm_source strings from single-step landing pages
// that collect the card number directly.
var singleStepSource = regexp.MustCompile(`cc[0-9]`)

// UpdateContributionTracking pushes the current tracking projection to the
// collaborator. Without force it only fires for single-step landing pages or
// when the record has no usable tracking id yet.
func (r *Record) UpdateContributionTracking(force bool) {
	if r.opts.Tracker == nil {
		return
	}
	if !force &&
		!singleStepSource.MatchString(r.Get("utm_source")) &&
		r.IsSomething("contribution_tracking_id") {
		return
	}

	if !r.IsSomething("contribution_tracking_id") {
		r.linkContributionTracking()
		return
	}
	if err := r.opts.Tracker.Update(r.Get("contribution_tracking_id"), r.CleanTrackingData()); err != nil {
		r.log.Error("failed to update contribution tracking record",
			append(r.logPrefix(), zap.Error(err))...)
	}
}

// RetryFields lists the fields needed to retry a payment after the session
// holding everything else is gone.
func RetryFields() []string {
	return []string{
		"gateway",
		"country",
		"currency_code",
		"amount",
		"language",
		"utm_source",
		"utm_medium",
		"utm_campaign",
		"payment_method",
	}
}

// AddResponseData merges processor return-trip values into the record via a
// wire-to-canonical key map and re-derives everything. A couple of composite
// wire fields split into their canonical parts on the way in.
func (r *Record) AddResponseData(wire map[string]string, keyMap map[string]string) {
	add := make(map[string]string)
	for wireKey, canonicalKey := range keyMap {
		value := wire[wireKey]
		if value == "" {
			continue
		}
		switch wireKey {
		case "transactionAmount":
			// "CUR amount"
			if parts := strings.SplitN(value, " ", 2); len(parts) == 2 {
				add["currency"] = parts[0]
				add["amount"] = parts[1]
			}
		case "buyerName":
			parts := strings.SplitN(value, " ", 2)
			add["fname"] = parts[0]
			if len(parts) == 2 {
				add["lname"] = parts[1]
			}
		default:
			add[canonicalKey] = value
		}
	}
	r.AddData(add)
}
