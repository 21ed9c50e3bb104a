package autherrors

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid username or password",
		http.StatusUnauthorized,
	)
	ErrInvalidPIN = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid PIN",
		http.StatusUnauthorized,
	)
	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"role must be admin or employee",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		"INVALID_TOKEN",
		"Invalid token",
		http.StatusUnauthorized,
	)
	ErrTokenExpired = apperror.New(
		"TOKEN_EXPIRED",
		"Token has expired",
		http.StatusUnauthorized,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)
	ErrInvalidDeviceKey = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid device key",
		http.StatusUnauthorized,
	)
)
