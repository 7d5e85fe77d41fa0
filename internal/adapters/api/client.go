package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"clubdesk/internal/adapters/http/perf"
)

// DefaultTimeout bounds every upstream call. Cancelling the dashboard
// request context cancels the upstream call with it.
const DefaultTimeout = 10 * time.Second

// Client is the authenticated HTTP client for the club backend.
// The zero value is not usable; construct with New.
type Client struct {
	baseURL   string
	http      *http.Client
	token     string
	collector *perf.Collector
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-call timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPClient replaces the underlying http.Client (used in tests).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithCollector records upstream call timings to the given collector.
func WithCollector(col *perf.Collector) Option {
	return func(c *Client) { c.collector = col }
}

// New creates a Client for the backend at baseURL.
// PRE: baseURL is a valid absolute URL
// POST: Returns a ready-to-use unauthenticated client
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client that attaches the given
// bearer token to every request. The underlying http.Client is shared.
// PRE: token is the upstream-issued bearer token
// POST: Returns an authenticated shallow copy; the receiver is unchanged
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Get issues a GET and decodes the envelope's data into out.
// PRE: path starts with "/"
// POST: Returns pagination metadata when the backend sent any
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) (*Pagination, error) {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the envelope's data into out.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPost, path, nil, body, out)
	return err
}

// Put issues a PUT with a JSON body and decodes the envelope's data into out.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPut, path, nil, body, out)
	return err
}

// Patch issues a PATCH with a JSON body and decodes the envelope's data into out.
func (c *Client) Patch(ctx context.Context, path string, body, out any) error {
	_, err := c.do(ctx, http.MethodPatch, path, nil, body, out)
	return err
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	_, err := c.do(ctx, http.MethodDelete, path, nil, nil, nil)
	return err
}

// errorBody is the backend's error payload convention:
// { message, errors?: { field: [messages] }, detail? }.
type errorBody struct {
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors"`
	Detail  string              `json:"detail"`
}

// do performs one upstream round trip.
// PRE: method and path are valid; body is JSON-marshalable or nil
// POST: out (if non-nil) holds the decoded envelope data on success
// INVARIANT: the transport value is never re-encoded; data is decoded
// exactly once from the envelope's raw bytes
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) (*Pagination, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.record(method, path, 0, start)
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}
	defer resp.Body.Close()
	c.record(method, path, resp.StatusCode, start)

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoResponse, err)
	}

	if resp.StatusCode >= 400 {
		return nil, decodeError(resp.StatusCode, raw)
	}

	var env Envelope
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &env); err != nil {
			return nil, fmt.Errorf("decode envelope: %w", err)
		}
	}
	if env.IsError() {
		return nil, decodeError(resp.StatusCode, raw)
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return nil, fmt.Errorf("decode envelope data: %w", err)
		}
	}
	return env.Pagination, nil
}

// decodeError builds an *Error from an error response body. The
// backend sends both bare error payloads and error-status envelopes,
// so both shapes are probed.
func decodeError(statusCode int, raw []byte) error {
	var eb errorBody
	_ = json.Unmarshal(raw, &eb)
	if eb.Message == "" && eb.Detail == "" && len(eb.Errors) == 0 {
		var env Envelope
		if json.Unmarshal(raw, &env) == nil && env.Message != "" {
			eb.Message = env.Message
		}
	}
	return &Error{
		StatusCode: statusCode,
		Message:    eb.Message,
		Detail:     eb.Detail,
		Fields:     eb.Errors,
	}
}

func (c *Client) record(method, path string, status int, start time.Time) {
	if c.collector == nil {
		return
	}
	c.collector.Record(perf.Entry{
		Kind:       perf.KindUpstream,
		Path:       method + " " + path,
		StatusCode: status,
		DurationMs: float64(time.Since(start).Microseconds()) / 1000.0,
		Timestamp:  time.Now(),
	})
}
