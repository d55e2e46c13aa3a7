package api

import (
	"context"
	"math"
	"net/http"
	"time"
)

// RetryPolicy decides whether a failed attempt is repeated and how long to
// wait before the next one.
type RetryPolicy struct {
	// MaxRetries is the number of retries after the first attempt.
	MaxRetries int
	// BaseDelay is the delay before the first retry. It doubles after every retry.
	BaseDelay time.Duration
}

// DefaultRetryPolicy returns the default retry configuration.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries: DefaultMaxRetries,
		BaseDelay:  DefaultRetryDelay,
	}
}

// MaxAttempts is the total number of physical attempts for one call.
func (p RetryPolicy) MaxAttempts() int {
	return max(1, p.MaxRetries+1)
}

// ShouldRetryNetwork reports whether a transport failure on the given
// zero-based attempt may be retried.
func (p RetryPolicy) ShouldRetryNetwork(method string, attempt int) bool {
	return attempt < p.MaxAttempts()-1 && IsIdempotent(method)
}

// ShouldRetryStatus reports whether a response with statusCode on the given
// zero-based attempt may be retried. Only 429 and 5xx qualify.
func (p RetryPolicy) ShouldRetryStatus(method string, statusCode, attempt int) bool {
	if attempt >= p.MaxAttempts()-1 || !IsIdempotent(method) {
		return false
	}
	return statusCode == http.StatusTooManyRequests || statusCode >= 500
}

// Delay returns the exponential backoff before retry number n (zero-based):
// BaseDelay * 2^n.
func (p RetryPolicy) Delay(n int) time.Duration {
	d := p.BaseDelay
	for i := 0; i < n; i++ {
		if d > math.MaxInt64/2 {
			return math.MaxInt64
		}
		d *= 2
	}
	return d
}

// IsIdempotent reports whether method may be repeated. Only GET and HEAD
// qualify; PUT and DELETE are never retried.
func IsIdempotent(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// Wait blocks for d or until ctx is done.
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
