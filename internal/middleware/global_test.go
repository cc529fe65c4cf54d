package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/deppfellow/vbapi/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func handleError(err error) *httptest.ResponseRecorder {
	global := &GlobalMiddlewares{}

	w := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodPost, "/", nil), w)
	global.GlobalErrorHandler(err, c)
	return w
}

func TestGlobalErrorHandler(t *testing.T) {
	t.Run("violations are a bare array", func(t *testing.T) {
		w := handleError(errs.ValidationErrors{
			{Field: "Phone", Message: "Phone is not valid.", Code: "Matches"},
		})

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t, `[{"field":"Phone","message":"Phone is not valid.","code":"Matches"}]`, w.Body.String())
	})

	t.Run("http errors keep their envelope", func(t *testing.T) {
		w := handleError(errs.NewBadRequestError("Syntax error", false, nil, nil, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.JSONEq(t,
			`{"code":"BAD_REQUEST","message":"Syntax error","status":400,"override":false,"errors":null,"action":null}`,
			w.Body.String(),
		)
	})

	t.Run("echo errors keep their status", func(t *testing.T) {
		w := handleError(echo.NewHTTPError(http.StatusUnsupportedMediaType, "Unsupported Media Type"))

		assert.Equal(t, http.StatusUnsupportedMediaType, w.Code)
		assert.Contains(t, w.Body.String(), `"code":"UNSUPPORTED_MEDIA_TYPE"`)
	})

	t.Run("unknown errors are hidden behind a 500", func(t *testing.T) {
		w := handleError(errors.New("connection reset by peer"))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection reset")
		assert.Contains(t, w.Body.String(), `"code":"INTERNAL_SERVER_ERROR"`)
	})
}

func TestErrorStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, errorStatus(errs.ValidationErrors{{Field: "Name"}}))
	assert.Equal(t, http.StatusTooManyRequests, errorStatus(errs.NewTooManyRequestsError("slow down")))
	assert.Equal(t, http.StatusNotFound, errorStatus(echo.ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, errorStatus(errors.New("boom")))
}

func TestRecordKind(t *testing.T) {
	assert.Equal(t, "employee", recordKind("/api/employee"))
	assert.Equal(t, "staff", recordKind("/api/staff"))
	assert.Empty(t, recordKind("/status"))
	assert.Empty(t, recordKind("/api/a/b"))
}
