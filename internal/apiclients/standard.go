// Package apiclients provides HTTP clients for the services the brain keeps
// consistent: the web3signer custody service, the validating client keymanager
// API and the beacon node API.
package apiclients

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

	"github.com/rs/zerolog"

	"github.com/4rgon4ut/StakingBrain/internal/model"
)

const (
	// DefaultTimeout bounds every request when no http client is supplied.
	DefaultTimeout = 30 * time.Second

	maxResponseBytes = 10 << 20
)

// HTTPError is returned when a service answers with a non-2xx status.
type HTTPError struct {
	Method     string
	URL        string
	StatusCode int
	Message    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.URL, e.StatusCode, e.Message)
}

// IsStatus reports whether err is an HTTPError with the given status code.
func IsStatus(err error, code int) bool {
	var httpErr *HTTPError
	return errors.As(err, &httpErr) && httpErr.StatusCode == code
}

// Option configures a StandardAPI.
type Option func(*StandardAPI)

// WithHTTPClient replaces the default http client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *StandardAPI) {
		s.client = client
	}
}

// WithTimeout sets the per-request timeout of the default http client.
func WithTimeout(timeout time.Duration) Option {
	return func(s *StandardAPI) {
		s.client = &http.Client{Timeout: timeout}
	}
}

// WithBearerToken authenticates every request with the given token.
func WithBearerToken(token string) Option {
	return func(s *StandardAPI) {
		s.token = token
	}
}

// WithHost overrides the Host header of every request. Web3signer rejects
// requests whose Host is not allow-listed.
func WithHost(host string) Option {
	return func(s *StandardAPI) {
		s.host = host
	}
}

// StandardAPI is the JSON-over-HTTP plumbing shared by every service client.
type StandardAPI struct {
	logger  zerolog.Logger
	baseURL *url.URL
	client  *http.Client
	token   string
	host    string
}

// NewStandardAPI creates a client for the service at baseURL. The logger is
// tagged with the given component name.
func NewStandardAPI(logger zerolog.Logger, component, baseURL string, opts ...Option) (*StandardAPI, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse %s url: %w", component, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("invalid %s url %q", component, baseURL)
	}

	s := &StandardAPI{
		logger:  logger.With().Str("component", component).Logger(),
		baseURL: u,
		client:  &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// BaseURL returns the service base URL.
func (s *StandardAPI) BaseURL() string {
	return s.baseURL.String()
}

// Hostname returns the host name of the service, used in error messages.
func (s *StandardAPI) Hostname() string {
	return s.baseURL.Hostname()
}

// request performs a JSON request. A nil body sends no payload; a nil out discards the response.
func (s *StandardAPI) request(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(raw)
	}

	target := s.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	if s.host != "" {
		req.Host = s.host
	}

	start := time.Now()
	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, target, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	s.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("request completed")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &HTTPError{
			Method:     method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw),
		}
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode response of %s %s: %w", method, target, err)
	}
	return nil
}

func errorMessage(raw []byte) string {
	var errResp model.ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}
	return strings.TrimSpace(string(raw))
}
