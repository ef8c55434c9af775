package donation

// Source is the raw material a Record is built from: exactly one fresh field
// set (live request fields, an explicit override, or a test fixture) plus an
// optional restored session snapshot.
type Source struct {
	// Fields are the freshly supplied values for this request.
	Fields map[string]string
	// Session is a prior-session donor snapshot, merged at lower priority
	// than anything fresh.
	Session map[string]string
}

// alwaysRefresh lists the session fields that overwrite a fresh value rather
// than fill in behind it. The session's referrer is the one the donor
// actually arrived with; the current request's is just us.
var alwaysRefresh = map[string]struct{}{
	"referrer": {},
}

// mergeSources applies the session merge policy: session values fill in
// where the fresh data has nothing, except for the always-refresh fields,
// which win unconditionally.
func mergeSources(src Source) map[string]string {
	merged := make(map[string]string, len(src.Fields)+len(src.Session))
	for k, v := range src.Fields {
		merged[k] = v
	}
	for k, v := range src.Session {
		if v == "" {
			continue
		}
		if _, force := alwaysRefresh[k]; force || merged[k] == "" {
			merged[k] = v
		}
	}
	return merged
}

// TestFixture returns a baseline donation data set for exercising the
// pipeline without a live request.
func TestFixture() map[string]string {
	return map[string]string{
		"amount":           "35",
		"email":            "test@example.com",
		"fname":            "Tester",
		"mname":            "T.",
		"lname":            "Testington",
		"street":           "548 Market St.",
		"city":             "San Francisco",
		"state":            "CA",
		"zip":              "94104",
		"country":          "US",
		"premium_language": "es",
		"card_num":         "378282246310005",
		"card_type":        "amex",
		"cvv":              "001",
		"currency_code":    "USD",
		"payment_method":   "cc",
		"order_id":         "1234567890",
		"i_order_id":       "1234567890",
		"referrer":         "https://www.example.org/?action=donate",
		"utm_source":       "test_src",
		"utm_medium":       "test_medium",
		"utm_campaign":     "test_campaign",
		"language":         "en",
		"user_ip":          "12.12.12.12",
	}
}
