package middleware

import (
	pkgLog "github.com/MGhunch/dot-hub-api/pkg/log"
)

// Middleware bundles the cross-cutting gin handlers.
type Middleware struct {
	l           pkgLog.Logger
	rateLimiter *rateLimiter
}

// New creates the middleware set. askPerMin caps how many /ask calls a
// single caller may make per minute; zero disables limiting.
func New(l pkgLog.Logger, askPerMin int) Middleware {
	var rl *rateLimiter
	if askPerMin > 0 {
		rl = newRateLimiter(askPerMin)
	}
	return Middleware{
		l:           l,
		rateLimiter: rl,
	}
}
