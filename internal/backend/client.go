// Package backend is the typed client for the inventory REST API. It is the
// single point of HTTP access for every page service.
//
// Read accessors follow a fail-soft policy: transport failures, non-2xx
// statuses and undecodable bodies are recovered at this boundary into empty
// defaults shaped to the call site, so a page renders an empty section
// instead of crashing. Each degradation is logged and counted; callers that
// need to tell "empty" from "unreachable" use Health. Write accessors always
// propagate an *APIError.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
)

// APIError is a failed call against the inventory backend.
type APIError struct {
	Status int
	Detail string
}

// Error returns the human-readable detail.
func (e *APIError) Error() string {
	return e.Detail
}

// HTTPStatus returns the upstream status code, or 502 for transport-level
// failures that never produced a response.
func (e *APIError) HTTPStatus() int {
	if e.Status == 0 {
		return http.StatusBadGateway
	}
	return e.Status
}

// DegradeRecorder counts reads recovered into empty defaults.
type DegradeRecorder interface {
	DegradedFetch(endpoint string)
}

// Client wraps interactions with the inventory backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
	degrades   DegradeRecorder
}

// Option customises a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying transport, mainly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithDegradeRecorder wires the degraded-read counter.
func WithDegradeRecorder(rec DegradeRecorder) Option {
	return func(c *Client) { c.degrades = rec }
}

// NewClient constructs a client for the given base URL.
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}
	return c
}

// errorDetail is the optional error body shape of the backend.
type errorDetail struct {
	Detail string `json:"detail"`
}

// do executes one request and decodes the JSON response into out when the
// call succeeds. Non-2xx responses are probed for a detail field; when none
// is present the message is synthesised from the status code.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Detail: fmt.Sprintf("encode request: %v", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return &APIError{Detail: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &APIError{Detail: fmt.Sprintf("backend unreachable: %v", err)}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var detail errorDetail
		_ = json.NewDecoder(resp.Body).Decode(&detail)
		if detail.Detail == "" {
			detail.Detail = fmt.Sprintf("http status %d", resp.StatusCode)
		}
		return &APIError{Status: resp.StatusCode, Detail: detail.Detail}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &APIError{Detail: fmt.Sprintf("decode response: %v", err)}
	}
	return nil
}

// recover logs and counts a degraded read.
func (c *Client) recover(path string, err error) {
	c.logger.Warn("backend read degraded to empty default",
		slog.String("endpoint", path),
		slog.Any("error", err))
	if c.degrades != nil {
		c.degrades.DegradedFetch(path)
	}
}

// Health probes the backend root path.
func (c *Client) Health(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/", nil)
	if err != nil {
		return false
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return resp.StatusCode < 400
}
