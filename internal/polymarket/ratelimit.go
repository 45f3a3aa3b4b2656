package polymarket

import (
	"context"
	"sync"
	"time"
)

// Limiter implements token bucket rate limiting for data-api calls.
// The public endpoints have no documented quota but throttle aggressive
// callers, so the profiler spaces wallet fetches out.
type Limiter struct {
	tokens         int
	maxTokens      int
	refillRate     time.Duration
	lastRefillTime time.Time
	mu             sync.Mutex
}

// NewLimiter creates a limiter holding at most maxTokens, refilling one
// token every refillRate.
func NewLimiter(maxTokens int, refillRate time.Duration) *Limiter {
	if maxTokens < 1 {
		maxTokens = 1
	}
	return &Limiter{
		tokens:         maxTokens,
		maxTokens:      maxTokens,
		refillRate:     refillRate,
		lastRefillTime: time.Now(),
	}
}

// Wait blocks until a token is available or the context is cancelled.
func (l *Limiter) Wait(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			if l.tryAcquire() {
				return nil
			}
			time.Sleep(10 * time.Millisecond)
		}
	}
}

func (l *Limiter) tryAcquire() bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.refillRate <= 0 {
		return true
	}

	now := time.Now()
	elapsed := now.Sub(l.lastRefillTime)
	tokensToAdd := int(elapsed / l.refillRate)

	if tokensToAdd > 0 {
		l.tokens += tokensToAdd
		if l.tokens > l.maxTokens {
			l.tokens = l.maxTokens
		}
		l.lastRefillTime = now
	}

	if l.tokens > 0 {
		l.tokens--
		return true
	}

	return false
}
