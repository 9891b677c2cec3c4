package ratelimiter

import (
	"github.com/renovalte/renovalte/internal/config"
	"github.com/renovalte/renovalte/internal/util"
	"go.uber.org/zap"
)

func NewRateLimiter(cfg config.RateLimiterConfig, logger *zap.SugaredLogger) *FixedWindowRateLimiter {
	// For unit test
	if logger == nil {
		logger = util.NewTestLogger()
	}

	return NewFixedWindowLimiter(cfg, logger)
}
