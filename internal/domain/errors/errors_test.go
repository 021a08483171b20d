package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"homeat/internal/errors"

	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsStillMatches(t *testing.T) {
	err := ErrValidationFailed.WithDetails("title is required")

	assert.True(t, stderrors.Is(err, ErrValidationFailed))
	assert.False(t, stderrors.Is(err, ErrEmptyReview))
	assert.Equal(t, "input validation failed: title is required", err.Error())
	assert.Equal(t, "title is required", err.Details())
}

func TestBaseError_WrapMessageKeepsAppError(t *testing.T) {
	wrapped := ErrForbidden.WrapMessage("update recipe 3")

	var appErr AppError
	assert.True(t, errors.As(wrapped, &appErr))
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}
