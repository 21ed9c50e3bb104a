package leaveerrors

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
)

var (
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be quick or custom",
		http.StatusBadRequest,
	)
	ErrMissingField = apperror.New(
		apperror.CodeInvalidInput,
		"from_date, to_date and reason required",
		http.StatusBadRequest,
	)
	ErrEmployeeIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"employee_id required",
		http.StatusBadRequest,
	)
	ErrLeaveApplicationFailed = apperror.New(
		apperror.CodeLeaveApplication,
		"Leave application failed",
		http.StatusInternalServerError,
	)
)

// ApplicationFailed wraps the cause of a rolled back leave application.
func ApplicationFailed(cause error) *apperror.AppError {
	return ErrLeaveApplicationFailed.WithCause(cause)
}

// InvalidDates is ErrLeaveApplicationFailed reported as a client error.
func InvalidDates(cause error) *apperror.AppError {
	e := ErrLeaveApplicationFailed.WithCause(cause)
	e.HTTPStatus = http.StatusBadRequest
	return e
}
