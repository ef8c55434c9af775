package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

type transport struct {
	inner   http.RoundTripper
	baseURL *url.URL
}

func (t *transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL = t.baseURL.ResolveReference(req.URL)
	return t.inner.RoundTrip(req)
}

// NewTransport returns a RoundTripper that resolves request URLs against a
// fixed processor base URL, so callers build requests with relative paths.
func NewTransport(baseURL string) (http.RoundTripper, error) {
	parsedURL, err := url.Parse(baseURL)
	if err != nil {
		return nil, err
	}
	return &transport{
		inner:   http.DefaultTransport,
		baseURL: parsedURL,
	}, nil
}

// Caller submits server-to-server transactions as form posts.
type Caller struct {
	httpClient *http.Client
}

func NewCaller(baseURL string) (*Caller, error) {
	rt, err := NewTransport(baseURL)
	if err != nil {
		return nil, err
	}
	return &Caller{
		httpClient: &http.Client{Transport: rt},
	}, nil
}

// Post submits the staged parameters to the given path and returns the
// parsed form-encoded response body.
func (c *Caller) Post(ctx context.Context, path string, params *WireParams) (url.Values, error) {
	form := url.Values{}
	for _, key := range params.Order {
		form.Set(key, params.Values[key])
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, path, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrNoResponse, resp.StatusCode)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	return url.ParseQuery(string(body))
}

// FormTarget resolves a transaction path against the processor base URL for
// redirect and iframe transactions, where the donor's browser carries the
// parameters instead of our server.
func FormTarget(baseURL *url.URL, path string) string {
	ref, err := url.Parse(path)
	if err != nil {
		return baseURL.String()
	}
	return baseURL.ResolveReference(ref).String()
}
