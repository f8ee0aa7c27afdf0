package middleware

import (
	"emotiai/pkg/log"
)

// Config holds the middleware settings read from the service config.
type Config struct {
	// RateLimitPerMin is the per-client budget; 0 disables limiting.
	RateLimitPerMin int
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, cfg Config) Middleware {
	mw := Middleware{l: l}
	if cfg.RateLimitPerMin > 0 {
		mw.limiter = newRateLimiter(cfg.RateLimitPerMin)
	}
	return mw
}
