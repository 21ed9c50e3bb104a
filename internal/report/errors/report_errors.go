package reporterrors

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"month must be YYYY-MM",
		http.StatusBadRequest,
	)
	ErrExportFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to build report export",
		http.StatusInternalServerError,
	)
)
