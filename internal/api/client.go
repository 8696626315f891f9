package api

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

const defaultTimeout = 10 * time.Second

// Error is a non-2xx response from the storefront API, carrying the message
// extracted from the response body.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %s (status %d)", e.Message, e.StatusCode)
}

// Client wraps outbound calls to the storefront REST API. It attaches the
// bearer token when one is present and returns either parsed JSON or a typed
// failure; response-shape coalescing lives in Payload and the record decoders.
//
// Reads (GET) are retried once on transport failure or a 5xx; mutations are
// never retried automatically, so a flaky network cannot duplicate side
// effects.
type Client struct {
	baseURL string
	token   string
	timeout time.Duration
	http    *http.Client
}

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

func NewClient(baseURL, token string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		timeout: defaultTimeout,
		http:    http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Get(ctx context.Context, path string, query url.Values) (Payload, error) {
	payload, err := c.do(ctx, http.MethodGet, path, query, nil)
	if err != nil && ctx.Err() == nil && retriable(err) {
		return c.do(ctx, http.MethodGet, path, query, nil)
	}
	return payload, err
}

func (c *Client) Post(ctx context.Context, path string, query url.Values, body any) (Payload, error) {
	return c.do(ctx, http.MethodPost, path, query, body)
}

func (c *Client) Put(ctx context.Context, path string, query url.Values, body any) (Payload, error) {
	return c.do(ctx, http.MethodPut, path, query, body)
}

func (c *Client) Delete(ctx context.Context, path string) (Payload, error) {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body any) (Payload, error) {
	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return Payload{}, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(encoded)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return Payload{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Payload{}, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return Payload{}, fmt.Errorf("%s %s: read response: %w", method, path, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Payload{}, &Error{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(raw, resp.Status),
		}
	}

	text := strings.TrimSpace(string(raw))
	if text == "" {
		return Payload{}, nil
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return Payload{}, fmt.Errorf("%s %s: unexpected non-JSON response: %s", method, path, text)
	}
	return Payload{value: value}, nil
}

func retriable(err error) bool {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 500
	}
	return true
}

// errorMessage pulls a human-readable message out of an error body: a JSON
// message/error field if there is one, the raw text otherwise, and the HTTP
// status line as the last resort.
func errorMessage(body []byte, status string) string {
	var decoded map[string]any
	if json.Unmarshal(body, &decoded) == nil {
		for _, key := range []string{"message", "error"} {
			if msg, ok := decoded[key].(string); ok && msg != "" {
				return msg
			}
		}
	}
	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}
	return status
}
