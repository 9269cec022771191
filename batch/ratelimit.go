// Package batch captures multiple URLs concurrently with per-domain
// rate limiting.
package batch

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// DomainLimiter rate-limits capture targets per domain using token
// buckets, so a batch can hit different sites concurrently while
// staying polite to each one. Local file paths are never throttled.
type DomainLimiter struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	rps      float64
}

// NewDomainLimiter creates a new DomainLimiter with the specified
// requests per second limit. Each domain gets its own limiter with a
// burst of 1 (no bursting allowed).
func NewDomainLimiter(rps float64) *DomainLimiter {
	return &DomainLimiter{
		limiters: make(map[string]*rate.Limiter),
		rps:      rps,
	}
}

// Wait blocks until the rate limit allows a request to the target's
// domain. Returns an error if the context is canceled before the wait
// completes.
func (d *DomainLimiter) Wait(ctx context.Context, urlOrPath string) error {
	domain := targetDomain(urlOrPath)
	if domain == "" {
		return nil
	}

	d.mu.Lock()
	limiter, ok := d.limiters[domain]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(d.rps), 1)
		d.limiters[domain] = limiter
	}
	d.mu.Unlock()

	return limiter.Wait(ctx)
}

// targetDomain returns the hostname for http(s) targets and "" for
// local file paths.
func targetDomain(urlOrPath string) string {
	if !strings.HasPrefix(urlOrPath, "http://") && !strings.HasPrefix(urlOrPath, "https://") {
		return ""
	}
	u, err := url.Parse(urlOrPath)
	if err != nil {
		return ""
	}
	return u.Hostname()
}
