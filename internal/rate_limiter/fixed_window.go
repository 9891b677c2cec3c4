package ratelimiter

import (
	"sync"
	"time"

	"github.com/renovalte/renovalte/internal/config"
	"go.uber.org/zap"
)

// FixedWindowRateLimiter counts requests per client key within a fixed time
// frame. Counters reset when their window expires.
type FixedWindowRateLimiter struct {
	mu      sync.Mutex
	windows map[string]*window
	cfg     config.RateLimiterConfig
	logger  *zap.SugaredLogger
}

type window struct {
	count   int
	resetAt time.Time
}

func NewFixedWindowLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	return &FixedWindowRateLimiter{
		windows: make(map[string]*window),
		cfg:     cfg,
		logger:  logger,
	}
}

// Allow reports whether the client identified by key may proceed, and when the
// current window resets if it may not.
func (rl *FixedWindowRateLimiter) Allow(key string) (bool, time.Time) {
	if !rl.cfg.Enabled {
		return true, time.Time{}
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, ok := rl.windows[key]
	if !ok || now.After(w.resetAt) {
		rl.windows[key] = &window{count: 1, resetAt: now.Add(rl.cfg.TimeFrame)}
		return true, time.Time{}
	}

	if w.count >= rl.cfg.RequestsPerTimeFrame {
		return false, w.resetAt
	}

	w.count++
	return true, time.Time{}
}
