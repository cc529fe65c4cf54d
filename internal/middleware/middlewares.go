package middleware

import (
	"github.com/deppfellow/vbapi/internal/server"
)

// Middlewares groups all middleware components used by the HTTP server so
// router setup receives one object.
type Middlewares struct {
	// Global holds CORS, request logging, recovery, secure headers, and the
	// global error handler.
	Global *GlobalMiddlewares

	// ContextEnhancer enriches each request with a request-scoped logger.
	ContextEnhancer *ContextEnhancer

	// Tracing provides New Relic middleware and transaction attributes.
	Tracing *TracingMiddleware

	// RateLimit enforces the per-client request limit.
	RateLimit *RateLimitMiddleware
}

// NewMiddlewares constructs all middleware components. Without New Relic,
// tracing degrades into a no-op.
func NewMiddlewares(s *server.Server) *Middlewares {
	return &Middlewares{
		Global:          NewGlobalMiddlewares(s),
		ContextEnhancer: NewContextEnhancer(s),
		Tracing:         NewTracingMiddleware(s, s.LoggerService.GetApplication()),
		RateLimit:       NewRateLimitMiddleware(s),
	}
}
