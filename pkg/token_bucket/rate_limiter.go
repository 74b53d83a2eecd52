package token_bucket

import (
	"math"
	"sync"
	"time"
)

// TokenBucket пропускает до capacity запросов подряд и пополняется со скоростью
// refillRate токенов в секунду. Дробные токены копятся между вызовами.
type TokenBucket struct {
	mu         sync.Mutex
	capacity   float64
	tokens     float64
	refillRate float64
	lastRefill time.Time
	now        func() time.Time
}

type Option func(*TokenBucket)

// WithClock подменяет источник времени.
func WithClock(now func() time.Time) Option {
	return func(t *TokenBucket) {
		t.now = now
	}
}

func NewTokenBucket(capacity int, refillRate float64, opts ...Option) *TokenBucket {
	t := &TokenBucket{
		capacity:   float64(capacity),
		tokens:     float64(capacity),
		refillRate: refillRate,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastRefill = t.now()
	return t
}

func (t *TokenBucket) Allow() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.refill()

	if t.tokens < 1 {
		return false
	}
	t.tokens--
	return true
}

func (t *TokenBucket) refill() {
	now := t.now()
	elapsed := now.Sub(t.lastRefill).Seconds()
	if elapsed <= 0 {
		return
	}

	t.tokens = math.Min(t.capacity, t.tokens+elapsed*t.refillRate)
	t.lastRefill = now
}
