package network

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"trade-journal/src/logger"
	"trade-journal/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// -----------------------------------------------------------------------------

func newTestManager(retries int) *NetworkManager {
	cfg := &models.MConfig{
		Name:     "test",
		LogLevel: "CRITICAL",
		Network: models.MNetworkConfig{
			RequestTimeout: 5,
			MaxRetries:     retries,
			UserAgent:      "trade-journal-test/1.0",
		},
	}
	return NewNetworkManager(cfg, logger.NewLogger(cfg, "test"))
}

// -----------------------------------------------------------------------------

func TestPostSendsBodyAndHeaders(t *testing.T) {
	var gotBody string
	var gotContentType, gotUserAgent string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		gotContentType = r.Header.Get("Content-Type")
		gotUserAgent = r.Header.Get("User-Agent")
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	nm := newTestManager(0)
	resp, err := nm.Post(srv.URL, "text/plain; charset=utf-8", []byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, "ok", string(resp))
	assert.Equal(t, "hello", gotBody)
	assert.Equal(t, "text/plain; charset=utf-8", gotContentType)
	assert.Equal(t, "trade-journal-test/1.0", gotUserAgent)
}

// -----------------------------------------------------------------------------

func TestPostRetriesOnServerError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte("recovered"))
	}))
	defer srv.Close()

	nm := newTestManager(1)
	resp, err := nm.Post(srv.URL, "text/plain", []byte("x"))

	require.NoError(t, err)
	assert.Equal(t, "recovered", string(resp))
	assert.Equal(t, 2, attempts)
}

// -----------------------------------------------------------------------------

func TestPostDoesNotRetryClientError(t *testing.T) {
	attempts := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		attempts++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	nm := newTestManager(3)
	_, err := nm.Post(srv.URL, "text/plain", []byte("x"))

	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}

// -----------------------------------------------------------------------------

func TestPostExhaustedRetriesFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	nm := newTestManager(0)
	_, err := nm.Post(srv.URL, "text/plain", []byte("x"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "max retries exceeded")
}
