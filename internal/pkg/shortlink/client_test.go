package shortlink

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShorten(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req shortenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "https://example.com/very/long/url", req.URL)

		json.NewEncoder(w).Encode(shortenResponse{ShortURL: "https://sho.rt/abc"})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, APIKey: "test-key"}, nil)

	short, err := client.Shorten(context.Background(), "https://example.com/very/long/url")
	require.NoError(t, err)
	assert.Equal(t, "https://sho.rt/abc", short)
}

func TestShortenEmptyAlias(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(shortenResponse{ShortURL: ""})
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	short, err := client.Shorten(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.Empty(t, short)
}

func TestShortenProviderError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL}, nil)

	_, err := client.Shorten(context.Background(), "https://example.com")
	assert.Error(t, err)
}

func TestShortenTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	client := NewClient(Config{BaseURL: server.URL, Timeout: 50 * time.Millisecond}, nil)

	_, err := client.Shorten(context.Background(), "https://example.com")
	assert.Error(t, err)
}
