package middleware

import (
	"hybrid-command-router/config"
	"hybrid-command-router/pkg/log"
)

type Middleware struct {
	l       log.Logger
	config  *config.Config
	limiter *rateLimiter
}

func New(l log.Logger, cfg *config.Config) Middleware {
	return Middleware{
		l:       l,
		config:  cfg,
		limiter: newRateLimiter(cfg.RateLimit.RequestsPerMin, cfg.RateLimit.Burst),
	}
}
