// Package ratelimit implements fixed-window admission control for the
// membership submit endpoint, keyed by client identity.
//
// State is process-local: a map of identity → window counter behind a single
// mutex. The increment-and-check in [Limiter.Allow] is atomic per call, so
// two concurrent requests from the same identity can never both consume the
// final slot of a window.
package ratelimit

import (
	"sync"
	"time"
)

// Result reports the outcome of one admission decision together with the
// metadata the HTTP layer exposes via X-RateLimit-* headers.
type Result struct {
	// Allowed is true when the request fits inside the current window.
	Allowed bool

	// Limit is the configured maximum number of requests per window.
	Limit int

	// Remaining is the number of requests still admissible in the current
	// window after this decision. Zero when the request was denied.
	Remaining int

	// Reset is the instant at which the current window expires and the
	// counter restarts.
	Reset time.Time
}

// window is the per-identity counter. start marks the window's opening
// instant; count includes every attempt, admitted or not.
type window struct {
	start time.Time
	count int
}

// Limiter is a fixed-window rate limiter. The zero value is not usable;
// construct with [NewLimiter].
type Limiter struct {
	limit  int
	period time.Duration

	mu      sync.Mutex
	windows map[string]*window

	// now is swappable for tests.
	now func() time.Time
}

const (
	// DefaultLimit is the number of submissions admitted per identity per
	// window when no limit is configured.
	DefaultLimit = 5

	// DefaultPeriod is the window length used when none is configured.
	DefaultPeriod = 15 * time.Minute
)

// NewLimiter constructs a Limiter admitting limit requests per identity per
// period. Non-positive arguments fall back to the package defaults.
func NewLimiter(limit int, period time.Duration) *Limiter {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if period <= 0 {
		period = DefaultPeriod
	}

	return &Limiter{
		limit:   limit,
		period:  period,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// Allow records one attempt for key and decides whether it is admitted.
// The counter increments on every attempt, including denied ones, and the
// window resets lazily once its period has elapsed.
func (l *Limiter) Allow(key string) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.windows[key]
	if !ok || now.Sub(w.start) >= l.period {
		w = &window{start: now}
		l.windows[key] = w
	}

	w.count++

	remaining := l.limit - w.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   w.count <= l.limit,
		Limit:     l.limit,
		Remaining: remaining,
		Reset:     w.start.Add(l.period),
	}
}

// Prune removes expired windows. Allow resets windows lazily on its own, so
// pruning only bounds memory growth from one-shot identities; it is called
// periodically by the background worker.
func (l *Limiter) Prune() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.period {
			delete(l.windows, key)
			removed++
		}
	}
	return removed
}
