package attendanceerrors

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
)

var (
	ErrAlreadyPunchedIn = apperror.New(
		apperror.CodeConflict,
		"Already punched in",
		http.StatusConflict,
	)
	ErrNotPunchedInOrAlreadyOut = apperror.New(
		apperror.CodeInvalidState,
		"Not punched in yet / already out",
		http.StatusConflict,
	)
	ErrInvalidPunchType = apperror.New(
		apperror.CodeInvalidInput,
		"type must be in or out",
		http.StatusBadRequest,
	)
	ErrInvalidPIN = apperror.New(
		apperror.CodeInvalidInput,
		"bad pin",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"date must be YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance record not found",
		http.StatusNotFound,
	)
)
