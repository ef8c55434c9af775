package gateway

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallerPost(t *testing.T) {
	var gotPath, gotBody, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.Write([]byte("status=OK&reference=42"))
	}))
	defer srv.Close()

	caller, err := NewCaller(srv.URL)
	require.NoError(t, err)

	params := &WireParams{
		Order:  []string{"Merchant", "Amount"},
		Values: map[string]string{"Merchant": "m1", "Amount": "3500"},
	}
	resp, err := caller.Post(context.Background(), "/pay", params)
	require.NoError(t, err)

	assert.Equal(t, "/pay", gotPath)
	assert.Equal(t, "application/x-www-form-urlencoded", gotContentType)
	assert.Equal(t, "Amount=3500&Merchant=m1", gotBody)
	assert.Equal(t, "OK", resp.Get("status"))
	assert.Equal(t, "42", resp.Get("reference"))
}

func TestCallerPostNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	caller, err := NewCaller(srv.URL)
	require.NoError(t, err)

	_, err = caller.Post(context.Background(), "/pay", &WireParams{})
	assert.ErrorIs(t, err, ErrNoResponse)
}

func TestFormTarget(t *testing.T) {
	base, err := url.Parse("https://test.adyen.com")
	require.NoError(t, err)
	assert.Equal(t, "https://test.adyen.com/hpp/pay.shtml", FormTarget(base, "/hpp/pay.shtml"))
}
