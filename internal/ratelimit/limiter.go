// Package ratelimit throttles requests per client key.
//
// Two backends exist: an in-process token bucket for single-instance
// deployments and a Redis fixed window shared across instances.
package ratelimit

import (
	"context"
	"time"
)

// Decision is the outcome of one Allow call.
type Decision struct {
	Allowed bool
	// Limit is the number of requests permitted per window.
	Limit int
	// Remaining is how many further requests the key may make right now.
	Remaining int
	// RetryAfter is how long a rejected caller should wait. Zero when allowed.
	RetryAfter time.Duration
}

// Limiter decides whether the caller identified by key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (Decision, error)
}
