package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runRequestID(t *testing.T, incoming string) (header, stored string) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if incoming != "" {
		req.Header.Set(RequestIDHeader, incoming)
	}
	w := httptest.NewRecorder()
	c := e.NewContext(req, w)

	h := RequestID()(func(c echo.Context) error {
		stored = GetRequestID(c)
		return c.NoContent(http.StatusNoContent)
	})
	require.NoError(t, h(c))

	return w.Header().Get(RequestIDHeader), stored
}

func TestRequestID(t *testing.T) {
	t.Run("reuses a valid incoming id", func(t *testing.T) {
		header, stored := runRequestID(t, "req-42")
		assert.Equal(t, "req-42", header)
		assert.Equal(t, "req-42", stored)
	})

	t.Run("generates an id when missing", func(t *testing.T) {
		header, stored := runRequestID(t, "")
		assert.Equal(t, header, stored)
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("replaces an oversized id", func(t *testing.T) {
		header, _ := runRequestID(t, strings.Repeat("x", maxRequestIDLength+1))
		_, err := uuid.Parse(header)
		assert.NoError(t, err)
	})

	t.Run("replaces an id with spaces", func(t *testing.T) {
		header, _ := runRequestID(t, "two words")
		assert.NotEqual(t, "two words", header)
	})
}

func TestGetRequestID_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Empty(t, GetRequestID(c))
}
