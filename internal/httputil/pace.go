// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Pacer executes HTTP requests with a minimum spacing between them. NCBI
// E-utilities allows at most 3 requests per second; every outbound request
// waits on the shared limiter first. There are no retries: a failed
// request surfaces to the caller as-is.
type Pacer struct {
	client  *http.Client
	limiter *rate.Limiter
}

// NewPacer wraps client with a limiter enforcing interval between
// requests. A non-positive interval disables pacing (used by tests).
func NewPacer(client *http.Client, interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{
		client:  client,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Do waits for the rate limiter, then executes the request. If the
// request's context is cancelled during the wait, the context error is
// returned and no request is made.
func (p *Pacer) Do(req *http.Request) (*http.Response, error) {
	if err := p.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}
	return p.client.Do(req)
}

// Pause blocks for d or until ctx is cancelled, whichever comes first.
func Pause(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}
