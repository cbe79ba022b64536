package ratelimit

import (
	"context"
	"math"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long an untouched key is kept before it is swept.
const idleTTL = 30 * time.Minute

type bucket struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryLimiter is a per-key token bucket holding up to limit tokens and
// refilling limit tokens per window.
type MemoryLimiter struct {
	mu        sync.Mutex
	buckets   map[string]*bucket
	limit     int
	every     rate.Limit
	now       func() time.Time
	lastSweep time.Time
}

var _ Limiter = (*MemoryLimiter)(nil)

// NewMemoryLimiter creates an in-process limiter. now may be nil.
func NewMemoryLimiter(limit int, window time.Duration, now func() time.Time) *MemoryLimiter {
	if now == nil {
		now = time.Now
	}
	return &MemoryLimiter{
		buckets:   make(map[string]*bucket),
		limit:     limit,
		every:     rate.Limit(float64(limit) / window.Seconds()),
		now:       now,
		lastSweep: now(),
	}
}

// Allow implements Limiter.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (Decision, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) > idleTTL {
		l.sweep(now)
	}

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.every, l.limit)}
		l.buckets[key] = b
	}
	b.lastSeen = now

	decision := Decision{Limit: l.limit}
	if b.limiter.AllowN(now, 1) {
		decision.Allowed = true
		decision.Remaining = int(math.Floor(b.limiter.TokensAt(now)))
		return decision, nil
	}

	r := b.limiter.ReserveN(now, 1)
	decision.RetryAfter = r.DelayFrom(now)
	r.CancelAt(now)
	return decision, nil
}

// sweep drops buckets that have been idle for idleTTL. Caller holds mu.
func (l *MemoryLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.lastSeen) > idleTTL {
			delete(l.buckets, key)
		}
	}
	l.lastSweep = now
}
