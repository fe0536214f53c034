// Package shortlink is a client for the external URL-shortening provider.
// Shortening is strictly best-effort: one network call, and any failure is
// reported to the caller as an error to ignore, never to propagate.
package shortlink

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// Config configures the shortener client.
type Config struct {
	// BaseURL is the link-creation endpoint.
	BaseURL string
	// APIKey authenticates the request (optional).
	APIKey string
	// Timeout bounds the single network call.
	Timeout time.Duration
}

// Client calls the link-shortening provider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a shortener client.
func NewClient(cfg Config, logger *zap.Logger) *Client {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 3 * time.Second
	}

	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

type shortenRequest struct {
	URL string `json:"url"`
}

type shortenResponse struct {
	ShortURL string `json:"short_url"`
}

// Shorten requests a short alias for longURL. It returns the alias, or an
// empty string when the provider declines. Errors mean the call failed; the
// caller is expected to keep using the original URL.
func (c *Client) Shorten(ctx context.Context, longURL string) (string, error) {
	body, err := json.Marshal(shortenRequest{URL: longURL})
	if err != nil {
		return "", fmt.Errorf("shortlink: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("shortlink: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("shortlink: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		io.Copy(io.Discard, resp.Body)
		return "", fmt.Errorf("shortlink: provider returned status %d", resp.StatusCode)
	}

	var result shortenResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("shortlink: failed to decode response: %w", err)
	}

	if c.logger != nil && result.ShortURL != "" {
		c.logger.Debug("short url created", zap.String("short_url", result.ShortURL))
	}

	return result.ShortURL, nil
}
