package apperror_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func TestToHTTP(t *testing.T) {
	t.Run("app error keeps code and status", func(t *testing.T) {
		err := apperror.New(apperror.CodeConflict, "already punched in", http.StatusConflict)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusConflict, got.Status)
		assert.Equal(t, apperror.CodeConflict, got.Code)
		assert.Equal(t, "already punched in", got.Message)
		assert.Nil(t, got.Details)
	})

	t.Run("wrapped cause becomes details", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := apperror.Wrap(cause, apperror.CodeLeaveApplication, "leave application failed", http.StatusInternalServerError)
		got := apperror.ToHTTP(err)
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeLeaveApplication, got.Code)
		assert.Equal(t, "connection reset", got.Details)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("unknown error is internal", func(t *testing.T) {
		got := apperror.ToHTTP(errors.New("boom"))
		assert.Equal(t, http.StatusInternalServerError, got.Status)
		assert.Equal(t, apperror.CodeInternalError, got.Code)
		assert.Equal(t, "Internal server error", got.Message)
	})
}

func TestMapValidationError(t *testing.T) {
	type req struct {
		LeaveType string `validate:"required"`
		FromDate  string `validate:"datetime=2006-01-02"`
	}

	v := validator.New()

	err := v.Struct(req{FromDate: "2024-01-10"})
	got := apperror.MapValidationError(err)
	assert.Equal(t, apperror.CodeInvalidInput, got.Code)
	assert.Equal(t, "Leavetype is required", got.Message)

	err = v.Struct(req{LeaveType: "quick", FromDate: "10/01/2024"})
	got = apperror.MapValidationError(err)
	assert.Equal(t, "Fromdate is invalid", got.Message)

	got = apperror.MapValidationError(errors.New("EOF"))
	assert.Equal(t, "Invalid input", got.Message)
}

func TestWithCause(t *testing.T) {
	sentinel := apperror.New(apperror.CodeConflict, "Already punched in", http.StatusConflict)
	cause := errors.New("boom")

	wrapped := sentinel.WithCause(cause)

	assert.True(t, errors.Is(wrapped, sentinel))
	assert.True(t, errors.Is(wrapped, cause))
	assert.Nil(t, sentinel.Err, "sentinel must not be mutated")
	assert.False(t, errors.Is(wrapped, apperror.ErrNotFound))
}
