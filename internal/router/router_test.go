package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/vbapi/internal/config"
	"github.com/deppfellow/vbapi/internal/errs"
	"github.com/deppfellow/vbapi/internal/handler"
	"github.com/deppfellow/vbapi/internal/middleware"
	"github.com/deppfellow/vbapi/internal/server"
	"github.com/deppfellow/vbapi/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "0",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"*"},
		},
		Validation:    config.ValidationConfig{Timezone: "UTC"},
		Observability: config.DefaultObservabilityConfig(),
	}
}

func setupRouter(t *testing.T, cfg *config.Config) *echo.Echo {
	t.Helper()

	logger := zerolog.Nop()
	srv, err := server.New(cfg, &logger, nil)
	require.NoError(t, err)

	clock := func() time.Time { return time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC) }
	services, err := service.NewServices(srv, service.WithClock(clock))
	require.NoError(t, err)

	return NewRouter(srv, handler.NewHandlers(srv, services))
}

func post(r http.Handler, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeViolations(t *testing.T, w *httptest.ResponseRecorder) errs.ValidationErrors {
	t.Helper()

	var violations errs.ValidationErrors
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &violations))
	return violations
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) errs.HTTPError {
	t.Helper()

	var envelope errs.HTTPError
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

const janeEmployee = `{
	"name": "Jane Employee",
	"dateOfBirth": "1985-01-01",
	"email": "jane@x.com",
	"phone": "555-1234",
	"hourlySalary": 250
}`

func TestEmployeeEndpoint(t *testing.T) {
	r := setupRouter(t, testConfig())

	t.Run("valid record is echoed unchanged", func(t *testing.T) {
		w := post(r, "/api/employee", janeEmployee)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, janeEmployee, w.Body.String())
	})

	t.Run("date text is echoed verbatim", func(t *testing.T) {
		for _, dob := range []string{
			"1985-01-01T08:30:00.5",
			"1985-01-01T00:00:00+00:00",
			"1985-01-01T00:00:00.000Z",
		} {
			body := strings.Replace(janeEmployee, `"1985-01-01"`, `"`+dob+`"`, 1)
			w := post(r, "/api/employee", body)

			require.Equal(t, http.StatusOK, w.Code, dob)
			assert.JSONEq(t, body, w.Body.String(), dob)
		}
	})

	t.Run("trailing slash is accepted", func(t *testing.T) {
		w := post(r, "/api/employee/", janeEmployee)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("salary below the senior floor", func(t *testing.T) {
		body := strings.Replace(janeEmployee, `"hourlySalary": 250`, `"hourlySalary": 60`, 1)
		w := post(r, "/api/employee", body)

		require.Equal(t, http.StatusBadRequest, w.Code)
		violations := decodeViolations(t, w)
		require.Len(t, violations, 1)
		assert.Equal(t, "HourlySalary", violations[0].Field)
		assert.Equal(t, "Minimum hourly salary is not valid.", violations[0].Message)
	})

	t.Run("every violation is listed in order", func(t *testing.T) {
		w := post(r, "/api/employee", `{"name":"Jo","dateOfBirth":"1950-06-01","email":"jo","phone":"x","hourlySalary":500}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `[
			{"field":"Name","message":"Invalid Name","code":"Length"},
			{"field":"DateOfBirth","message":"Birthdate is not valid.","code":"Must"},
			{"field":"Email","message":"Email address is not valid.","code":"Email"},
			{"field":"Phone","message":"Phone is not valid.","code":"Matches"},
			{"field":"HourlySalary","message":"Hourly salary does not fall within allowed range.","code":"InclusiveBetween"}
		]`, w.Body.String())
	})

	t.Run("malformed JSON", func(t *testing.T) {
		w := post(r, "/api/employee", `{"name":`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "BAD_REQUEST", envelope.Code)
		assert.Equal(t, http.StatusBadRequest, envelope.Status)
	})

	t.Run("unparseable date", func(t *testing.T) {
		w := post(r, "/api/employee", `{"dateOfBirth":"last tuesday"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, w).Code)
	})
}

func TestStaffEndpoint(t *testing.T) {
	r := setupRouter(t, testConfig())

	t.Run("empty body reports only the name", func(t *testing.T) {
		w := post(r, "/api/staff", `{}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t,
			`[{"field":"Name","message":"'Name' must not be empty.","code":"NotEmpty"}]`,
			w.Body.String(),
		)
	})

	t.Run("valid record is echoed unchanged", func(t *testing.T) {
		body := `{"name":"Sam Staffmember","email":null,"phone":"","hourlySalary":400}`
		w := post(r, "/api/staff", body)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, body, w.Body.String())
	})

	t.Run("absent optional fields echo as null", func(t *testing.T) {
		w := post(r, "/api/staff", `{"name":"Sam Staffmember"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t,
			`{"name":"Sam Staffmember","email":null,"phone":null,"hourlySalary":null}`,
			w.Body.String(),
		)
	})

	t.Run("quoted salary is rejected", func(t *testing.T) {
		w := post(r, "/api/staff", `{"name":"Sam Staffmember","hourlySalary":"100"}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "BAD_REQUEST", decodeEnvelope(t, w).Code)
	})

	t.Run("salary scale is echoed verbatim", func(t *testing.T) {
		body := `{"name":"Sam Staffmember","email":null,"phone":null,"hourlySalary":100.50}`
		w := post(r, "/api/staff", body)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"hourlySalary":100.50`)
	})

	t.Run("salary out of range", func(t *testing.T) {
		w := post(r, "/api/staff", `{"name":"Sam Staffmember","hourlySalary":401}`)

		require.Equal(t, http.StatusBadRequest, w.Code)
		violations := decodeViolations(t, w)
		require.Len(t, violations, 1)
		assert.Equal(t, "HourlySalary", violations[0].Field)
	})
}

func TestSystemRoutes(t *testing.T) {
	r := setupRouter(t, testConfig())

	t.Run("status", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "healthy", body["status"])
		assert.Equal(t, "test", body["environment"])
	})

	t.Run("docs", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/docs", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "no-cache", w.Header().Get("Cache-Control"))
		assert.Contains(t, w.Body.String(), "/static/openapi.json")
	})

	t.Run("openapi document", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/static/openapi.json", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.True(t, json.Valid(w.Body.Bytes()))
	})

	t.Run("unknown route", func(t *testing.T) {
		w := post(r, "/api/manager", `{}`)

		require.Equal(t, http.StatusNotFound, w.Code)
		envelope := decodeEnvelope(t, w)
		assert.Equal(t, "NOT_FOUND", envelope.Code)
		assert.Equal(t, "Route not found", envelope.Message)
	})

	t.Run("wrong method", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/employee", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
	})

	t.Run("request id is returned", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/status", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(middleware.RequestIDHeader))
	})
}

func TestRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.Server.RateLimit = config.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 0.001,
		Burst:             2,
	}
	r := setupRouter(t, cfg)

	for i := 0; i < 2; i++ {
		assert.Equal(t, http.StatusOK, post(r, "/api/employee", janeEmployee).Code)
	}

	w := post(r, "/api/employee", janeEmployee)
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", decodeEnvelope(t, w).Code)
}
