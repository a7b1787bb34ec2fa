package cli

import (
	"sync"

	"golang.org/x/time/rate"
)

// combineRateLimiter throttles repeated combine attempts keyed by a share
// set's identifier. Every Allow call counts as an attempt, whether or not
// the combine that follows succeeds.
type combineRateLimiter struct {
	limiters   map[uint16]*rate.Limiter
	mu         sync.RWMutex
	rateLimit  rate.Limit
	burstLimit int
}

// newCombineRateLimiter creates a limiter with the given rate and burst.
// rate is attempts per second, burst is the maximum burst size.
func newCombineRateLimiter(attemptsPerSecond float64, burst int) *combineRateLimiter {
	return &combineRateLimiter{
		limiters:   make(map[uint16]*rate.Limiter),
		rateLimit:  rate.Limit(attemptsPerSecond),
		burstLimit: burst,
	}
}

// defaultCombineRateLimiter returns a limiter with conservative defaults:
// one attempt per second, burst of 3.
func defaultCombineRateLimiter() *combineRateLimiter {
	return newCombineRateLimiter(1, 3)
}

// Allow reports whether another combine attempt for identifier should
// proceed right now.
func (r *combineRateLimiter) Allow(identifier uint16) bool {
	return r.getLimiter(identifier).Allow()
}

func (r *combineRateLimiter) getLimiter(identifier uint16) *rate.Limiter {
	r.mu.RLock()
	limiter, exists := r.limiters[identifier]
	r.mu.RUnlock()

	if exists {
		return limiter
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if limiter, exists = r.limiters[identifier]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(r.rateLimit, r.burstLimit)
	r.limiters[identifier] = limiter
	return limiter
}
