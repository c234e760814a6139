// Package ratelimit throttles a docinventory.Fetcher per host using token
// buckets from golang.org/x/time/rate.
package ratelimit

import (
	"context"
	"net/url"
	"sync"

	"github.com/fwojciec/docinventory"
	"golang.org/x/time/rate"
)

// Ensure Fetcher implements docinventory.Fetcher at compile time.
var _ docinventory.Fetcher = (*Fetcher)(nil)

// Fetcher wraps a Fetcher and waits for a per-host token before each request.
// Each host gets its own limiter with a burst of 1.
type Fetcher struct {
	next docinventory.Fetcher
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewFetcher creates a Fetcher allowing rps requests per second to each host.
func NewFetcher(next docinventory.Fetcher, rps float64) *Fetcher {
	return &Fetcher{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch blocks until the host's limiter allows a request, then delegates.
// It returns the context error if ctx ends while waiting.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	if err := f.limiter(host(rawURL)).Wait(ctx); err != nil {
		return "", err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *Fetcher) Close() error {
	return f.next.Close()
}

func (f *Fetcher) limiter(host string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()

	l, ok := f.limiters[host]
	if !ok {
		l = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = l
	}
	return l
}

// host returns the URL's host, or the raw string when it does not parse.
func host(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
