package validation

import (
	"fmt"
	"net/http"

	"github.com/deppfellow/vbapi/internal/errs"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Validator is implemented by record validators supplied to handlers.
//
// Validate returns nil for a valid record, errs.ValidationErrors otherwise.
type Validator[T any] interface {
	Validate(record T) error
}

// BindAndValidate binds request data into payload and validates it.
//
// Flow:
//  1. c.Bind(payload) populates the record from the request body.
//  2. v.Validate(payload) applies the record rules.
//
// Bind failures are framework-level and come back as a 400 *errs.HTTPError.
// Rule failures come back unchanged as errs.ValidationErrors.
//
// payload must be a pointer so Bind can populate it.
func BindAndValidate[T any](c echo.Context, payload T, v Validator[T]) error {
	if err := c.Bind(payload); err != nil {
		return bindError(err)
	}

	return v.Validate(payload)
}

// bindError converts an echo bind failure into an HTTPError, keeping echo's
// status when it is not a plain bad request (e.g. 415 Unsupported Media Type).
func bindError(err error) error {
	var echoErr *echo.HTTPError
	if !errors.As(err, &echoErr) {
		return errs.BindError(err)
	}

	message := fmt.Sprint(echoErr.Message)
	if echoErr.Code != http.StatusBadRequest {
		return echoErr
	}

	return errs.NewBadRequestError(message, false, nil, nil, nil)
}
