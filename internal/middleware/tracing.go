package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/integrations/nrpkgerrors"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/pkg/errors"

	"github.com/deppfellow/vbapi/internal/errs"
	"github.com/deppfellow/vbapi/internal/server"
)

// TracingMiddleware owns New Relic related echo middleware.
//
// Both middlewares degrade to pass-through when nrApp is nil.
type TracingMiddleware struct {
	server *server.Server
	nrApp  *newrelic.Application
}

func NewTracingMiddleware(s *server.Server, nrApp *newrelic.Application) *TracingMiddleware {
	return &TracingMiddleware{
		server: s,
		nrApp:  nrApp,
	}
}

// NewRelicMiddleware starts a New Relic transaction per request, which is
// what makes newrelic.FromContext work downstream.
func (tm *TracingMiddleware) NewRelicMiddleware() echo.MiddlewareFunc {
	if tm.nrApp == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return next
		}
	}
	return nrecho.Middleware(tm.nrApp)
}

// EnhanceTracing tags the transaction with the client, the request id and
// the record kind, then records the outcome.
//
// Rejected records are counted, not noticed as errors: a 400 with
// violations is a normal answer of this service.
func (tm *TracingMiddleware) EnhanceTracing() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())
			if txn == nil {
				return next(c)
			}

			txn.AddAttribute("http.real_ip", c.RealIP())
			txn.AddAttribute("http.user_agent", c.Request().UserAgent())

			if requestID := GetRequestID(c); requestID != "" {
				txn.AddAttribute("request.id", requestID)
			}
			if kind := recordKind(c.Path()); kind != "" {
				txn.AddAttribute("record.kind", kind)
			}

			err := next(c)

			var violations errs.ValidationErrors
			switch {
			case err == nil:
			case errors.As(err, &violations):
				txn.AddAttribute("record.violations", len(violations))
			default:
				txn.NoticeError(nrpkgerrors.Wrap(err))
			}

			// On error the final status is decided later by the error handler.
			status := c.Response().Status
			if err != nil {
				status = errorStatus(err)
			}
			txn.AddAttribute("http.status_code", status)

			return err
		}
	}
}

// recordKind extracts "employee" from "/api/employee".
func recordKind(route string) string {
	kind, ok := strings.CutPrefix(route, "/api/")
	if !ok || strings.Contains(kind, "/") {
		return ""
	}
	return kind
}
