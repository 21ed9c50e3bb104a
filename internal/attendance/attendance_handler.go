package attendance

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/apperror"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("attendance.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error, details any) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("attendance request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	if details == nil {
		details = httpErr.Details
	}
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, details)
}

func (h *Handler) bindError(c *gin.Context, err error) {
	appErr := apperror.MapValidationError(err)
	response.Error(c, http.StatusBadRequest, apperror.CodeValidation, appErr.Message, err.Error())
}

// writePunch sends the punch result either way so the app can show time and place.
func (h *Handler) writePunch(c *gin.Context, result PunchResult, err error) {
	if err != nil {
		h.writeServiceError(c, err, result)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) Punch(c *gin.Context) {
	var req PunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	req.ClientIP = c.ClientIP()

	result, err := h.service.RecordPunch(c.Request.Context(), c.GetString(middleware.ContextEmployeeID), req)
	h.writePunch(c, result, err)
}

func (h *Handler) PinPunch(c *gin.Context) {
	var req PinPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	req.ClientIP = c.ClientIP()

	result, err := h.service.RecordPinPunch(c.Request.Context(), req)
	h.writePunch(c, result, err)
}

func (h *Handler) BiometricPunch(c *gin.Context) {
	var req BiometricPunchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.bindError(c, err)
		return
	}
	req.ClientIP = c.ClientIP()

	result, err := h.service.RecordBiometricPunch(c.Request.Context(), req)
	h.writePunch(c, result, err)
}

func (h *Handler) MarkAbsent(c *gin.Context) {
	h.markAbsent(c, c.GetString(middleware.ContextEmployeeID), false)
}

func (h *Handler) AdminMarkAbsent(c *gin.Context) {
	h.markAbsent(c, c.Param("id"), true)
}

func (h *Handler) markAbsent(c *gin.Context, employeeID string, byAdmin bool) {
	var req MarkAbsentRequest
	// body is optional
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.bindError(c, err)
			return
		}
	}

	resp, err := h.service.MarkAbsent(c.Request.Context(), employeeID, req, byAdmin)
	if err != nil {
		h.writeServiceError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Today(c *gin.Context) {
	resp, err := h.service.Today(c.Request.Context(), c.GetString(middleware.ContextEmployeeID))
	if err != nil {
		h.writeServiceError(c, err, nil)
		return
	}
	response.Success(c, http.StatusOK, resp, nil)
}
