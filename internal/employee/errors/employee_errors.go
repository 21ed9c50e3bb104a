package employeeerrors

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmpCodeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee code already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidPIN = apperror.New(
		apperror.CodeInvalidInput,
		"bad pin",
		http.StatusBadRequest,
	)
	ErrEmpCodeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"emp_code required",
		http.StatusBadRequest,
	)
	ErrPINExhausted = apperror.New(
		apperror.CodeServiceUnavailable,
		"Could not allocate a unique PIN, try again",
		http.StatusServiceUnavailable,
	)
)
