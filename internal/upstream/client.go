// Package upstream talks to the payment/IoT backend that owns all store,
// machine, and settlement data.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	defaultBaseURL = "https://smartpay.propskynet.com"
	defaultTimeout = 15 * time.Second

	// upstream error bodies are truncated to this many bytes in APIError
	maxErrorBody = 512
)

// ErrAPIKeyMissing is returned by API-key endpoints when no key is configured
var ErrAPIKeyMissing = errors.New("API key not configured")

// UpstreamError represents a failure while talking to the upstream service
type UpstreamError struct {
	Op  string // Operation that caused the error
	Err error  // Underlying error
}

// Error implements the error interface
func (e *UpstreamError) Error() string {
	if e.Err == nil {
		return "upstream error: " + e.Op
	}
	return "upstream error: " + e.Op + ": " + e.Err.Error()
}

// Unwrap returns the underlying error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// APIError is a non-2xx answer from the upstream service
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("upstream returned status %d: %s", e.Status, e.Body)
}

// Client is an HTTP client for the upstream service
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Config holds configuration for the upstream client
type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// DefaultConfig returns the production upstream configuration without an API key
func DefaultConfig() *Config {
	return &Config{
		BaseURL: defaultBaseURL,
		Timeout: defaultTimeout,
	}
}

// NewClient creates a new upstream client
func NewClient(config *Config) *Client {
	if config == nil {
		config = DefaultConfig()
	}

	baseURL := strings.TrimRight(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  config.APIKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// HasAPIKey reports whether API-key endpoints can be called
func (c *Client) HasAPIKey() bool {
	return c.apiKey != ""
}

// request describes one upstream call
type request struct {
	method        string
	path          string
	query         url.Values
	body          []byte
	authorization string
	useAPIKey     bool
}

// do performs the call and returns the status and raw body. The body is
// returned for every status; only transport failures produce an error.
func (c *Client) do(ctx context.Context, r request) (int, []byte, error) {
	target := c.baseURL + r.path
	if len(r.query) > 0 {
		target += "?" + r.query.Encode()
	}

	var body io.Reader
	if len(r.body) > 0 {
		body = bytes.NewReader(r.body)
	}

	method := r.method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, target, body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if len(r.body) > 0 || method == http.MethodPost || method == http.MethodPut || method == http.MethodPatch {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.authorization != "" {
		req.Header.Set("Authorization", r.authorization)
	}
	if r.useAPIKey {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, fmt.Errorf("failed to read response: %w", err)
	}

	return resp.StatusCode, data, nil
}

// getJSON performs a call that must succeed with 2xx and decodes the body into out
func (c *Client) getJSON(ctx context.Context, op string, r request, out interface{}) error {
	status, data, err := c.do(ctx, r)
	if err != nil {
		return &UpstreamError{Op: op, Err: err}
	}

	if status < 200 || status >= 300 {
		return &UpstreamError{Op: op, Err: &APIError{Status: status, Body: truncate(data)}}
	}

	if err := json.Unmarshal(data, out); err != nil {
		return &UpstreamError{Op: op, Err: fmt.Errorf("failed to decode response: %w", err)}
	}

	return nil
}

// BearerToken formats a session token as an Authorization header value
func BearerToken(token string) string {
	if token == "" {
		return ""
	}
	return "Bearer " + token
}

func truncate(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) > maxErrorBody {
		return s[:maxErrorBody] + "..."
	}
	return s
}
