package errs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestValidationErrors_Error(t *testing.T) {
	assert.Equal(t, "Validation failed", ValidationErrors{}.Error())

	err := ValidationErrors{
		{Field: "Name", Message: "Invalid Name"},
		{Field: "Phone", Message: "Phone is not valid."},
	}
	assert.Equal(t, "Validation failed: Name: Invalid Name; Phone: Phone is not valid.", err.Error())
}

func TestValidationErrors_SurviveWrapping(t *testing.T) {
	wrapped := errors.Wrap(ValidationErrors{{Field: "Email"}}, "staff")

	var violations ValidationErrors
	assert.True(t, errors.As(wrapped, &violations))
	assert.Equal(t, "Email", violations[0].Field)
}

func TestHTTPErrorConstructors(t *testing.T) {
	code := "MALFORMED_BODY"
	bad := NewBadRequestError("bad", true, &code, nil, nil)
	assert.Equal(t, "MALFORMED_BODY", bad.Code)
	assert.Equal(t, 400, bad.Status)
	assert.True(t, bad.Override)

	assert.Equal(t, "NOT_FOUND", NewNotFoundError("gone", false, nil).Code)
	assert.Equal(t, "TOO_MANY_REQUESTS", NewTooManyRequestsError("slow").Code)
	assert.Equal(t, "Internal Server Error", NewInternalServerError().Message)

	assert.True(t, errors.Is(bad, NewInternalServerError()))
	assert.Equal(t, "other", bad.WithMessage("other").Message)
	assert.Equal(t, "bad", bad.Message)
}

func TestBindError(t *testing.T) {
	err := BindError(errors.New("unexpected EOF"))

	assert.Equal(t, "BAD_REQUEST", err.Code)
	assert.Equal(t, "Invalid request body: unexpected EOF", err.Message)
	assert.Nil(t, err.Errors)
}

func TestMakeUpperCaseWithUnderscores(t *testing.T) {
	assert.Equal(t, "UNSUPPORTED_MEDIA_TYPE", MakeUpperCaseWithUnderscores("Unsupported Media Type"))
}
