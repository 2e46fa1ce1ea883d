// Package api implements the HTTP layer of the client: a JSON request
// helper, the bearer-token transport, and the global handling of
// expired-authentication failures.
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

	"github.com/littlerefugees/refugio-cli/internal/logging"
)

// ExpiredHandler is invoked once per request that fails with an expired
// authentication condition, before the failure is swallowed.
type ExpiredHandler interface {
	HandleExpired(ctx context.Context)
}

// Client performs JSON requests against the backend. Every request goes out
// through the AuthTransport and every failed response is classified here, so
// expired-session handling is centralized no matter which service made the
// call.
type Client struct {
	baseURL string
	http    *http.Client
	log     logging.Logger
	expired ExpiredHandler
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying *http.Client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithExpiredHandler installs the expired-session interceptor.
func WithExpiredHandler(h ExpiredHandler) Option {
	return func(c *Client) { c.expired = h }
}

// WithLogger replaces the default logger.
func WithLogger(l logging.Logger) Option {
	return func(c *Client) { c.log = l }
}

// New builds a Client rooted at baseURL whose requests carry the token from
// tokens. The default timeout applies unless a custom *http.Client is given.
func New(baseURL string, tokens TokenSource, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Transport: &AuthTransport{Tokens: tokens},
			Timeout:   30 * time.Second,
		},
		log: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Do performs a JSON request. body, when non-nil, is marshaled as the JSON
// request body; out, when non-nil, receives the decoded response body.
//
// Failures are returned as *Error, except expired-authentication failures:
// those are routed to the expired handler and replaced by ErrSessionExpired,
// so the caller never reports them a second time.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

// DoMultipart performs a multipart/form-data request (photo uploads).
// contentType must be the writer's FormDataContentType.
func (c *Client) DoMultipart(ctx context.Context, method, path, contentType string, form io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, form)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	return c.send(req, out)
}

func (c *Client) send(req *http.Request, out any) error {
	ctx := req.Context()
	c.log.Debug(ctx, "request", "method", req.Method, "path", req.URL.Path)

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%s %s: read body: %w", req.Method, req.URL.Path, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &Error{Status: resp.StatusCode, Message: extractMessage(respBody)}

		if IsAuthExpired(apiErr) {
			c.log.Warn(ctx, "authentication expired, terminating session",
				"status", apiErr.Status, "path", req.URL.Path)
			if c.expired != nil {
				c.expired.HandleExpired(ctx)
			}
			return ErrSessionExpired
		}

		return apiErr
	}

	if out != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", req.Method, req.URL.Path, err)
		}
	}
	return nil
}
