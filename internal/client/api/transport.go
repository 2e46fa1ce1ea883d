package api

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// TokenSource yields the current bearer token, or "" when none is stored.
// The credential store satisfies this interface.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// AuthTransport is an http.RoundTripper that attaches the stored bearer
// token to every outgoing request. The token is re-read from the source on
// each call, so a logout is observed by the next request rather than cached
// away. Each request is also stamped with an X-Request-Id for server-side
// correlation.
type AuthTransport struct {
	// Base is the underlying transport; http.DefaultTransport when nil.
	Base http.RoundTripper

	// Tokens is the per-call token source.
	Tokens TokenSource

	// Limiter, when set, throttles outgoing requests client-side.
	Limiter *rate.Limiter
}

func (t *AuthTransport) base() http.RoundTripper {
	if t.Base != nil {
		return t.Base
	}
	return http.DefaultTransport
}

// RoundTrip augments a clone of req; the original request is never mutated.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	if t.Limiter != nil {
		if err := t.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	clone := req.Clone(ctx)
	clone.Header.Set("X-Request-Id", uuid.NewString())

	if t.Tokens != nil {
		token, err := t.Tokens.Token(ctx)
		if err != nil {
			return nil, err
		}
		if token != "" {
			clone.Header.Set("Authorization", "Bearer "+token)
		}
	}

	return t.base().RoundTrip(clone)
}
