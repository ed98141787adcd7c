// Package ratelimit provides fixed-window request limiters used to
// shield the authorization pipeline from credential-stuffing bursts.
// Keys are caller-derived (token subject or client address), so the
// limiter runs before any database work.
package ratelimit

import (
	"context"
	"errors"
	"sync"
	"time"

	"insightd/internal/domain"
)

type memoryLimiter struct {
	mu      sync.Mutex
	now     func() time.Time
	windows map[string]*window
	maxKeys int
}

type window struct {
	hits   int
	endsAt time.Time
}

type MemoryLimiterConfig struct {
	Now     func() time.Time
	MaxKeys int
}

// NewMemoryLimiter builds a single-process limiter. Suitable for one
// replica only; multi-replica deployments should use the redis limiter
// so the window is shared.
func NewMemoryLimiter(cfg MemoryLimiterConfig) domain.RateLimiter {
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.MaxKeys <= 0 {
		cfg.MaxKeys = 10000
	}
	return &memoryLimiter{
		now:     cfg.Now,
		windows: make(map[string]*window),
		maxKeys: cfg.MaxKeys,
	}
}

func (m *memoryLimiter) Allow(_ context.Context, key string, limit int, span time.Duration) (domain.RateLimitDecision, error) {
	if limit <= 0 {
		return domain.RateLimitDecision{Allowed: true, Limit: limit, Remaining: limit}, nil
	}
	now := m.now()

	m.mu.Lock()
	defer m.mu.Unlock()

	w, ok := m.windows[key]
	if ok && now.After(w.endsAt) {
		delete(m.windows, key)
		ok = false
	}
	if !ok {
		if len(m.windows) >= m.maxKeys {
			m.sweep(now)
		}
		if len(m.windows) >= m.maxKeys {
			return domain.RateLimitDecision{}, errors.New("rate limiter key capacity exceeded")
		}
		w = &window{endsAt: now.Add(span)}
		m.windows[key] = w
	}

	if w.hits < limit {
		w.hits++
		return domain.RateLimitDecision{
			Allowed:   true,
			Limit:     limit,
			Remaining: limit - w.hits,
			ResetAt:   w.endsAt,
		}, nil
	}

	return domain.RateLimitDecision{
		Allowed:   false,
		Limit:     limit,
		Remaining: 0,
		ResetAt:   w.endsAt,
	}, nil
}

func (m *memoryLimiter) sweep(now time.Time) {
	for key, w := range m.windows {
		if now.After(w.endsAt) {
			delete(m.windows, key)
		}
	}
}
