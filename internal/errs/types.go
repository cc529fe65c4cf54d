package errs

import (
	"net/http"
)

// newHTTPError builds an envelope whose Code is derived from status unless
// code is given.
func newHTTPError(status int, message string, override bool, code *string) *HTTPError {
	formattedCode := MakeUpperCaseWithUnderscores(http.StatusText(status))
	if code != nil {
		formattedCode = *code
	}

	return &HTTPError{
		Code:     formattedCode,
		Message:  message,
		Status:   status,
		Override: override,
	}
}

// NewBadRequestError creates a 400 Bad Request HTTPError.
//
// code overrides the default "BAD_REQUEST" when non-nil; errors and action
// are optional extras for the client.
func NewBadRequestError(message string, override bool, code *string, errors []FieldError, action *Action) *HTTPError {
	err := newHTTPError(http.StatusBadRequest, message, override, code)
	err.Errors = errors
	err.Action = action
	return err
}

// NewNotFoundError creates a 404 Not Found HTTPError.
func NewNotFoundError(message string, override bool, code *string) *HTTPError {
	return newHTTPError(http.StatusNotFound, message, override, code)
}

// NewTooManyRequestsError creates a 429 Too Many Requests HTTPError whose
// message is safe to show as is.
func NewTooManyRequestsError(message string) *HTTPError {
	return newHTTPError(http.StatusTooManyRequests, message, true, nil)
}

// NewInternalServerError creates a 500 with the generic status text, never
// the underlying error.
func NewInternalServerError() *HTTPError {
	return newHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError), false, nil)
}

// BindError converts a request decoding failure into a 400 Bad Request.
// Record rule violations are ValidationErrors, never a BindError.
func BindError(err error) *HTTPError {
	return NewBadRequestError("Invalid request body: "+err.Error(), false, nil, nil, nil)
}
