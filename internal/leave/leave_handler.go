package leave

import (
	"net/http"
	"strconv"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"
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
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Apply: employees always apply for themselves; admins name the employee in the body.
func (h *Handler) Apply(c *gin.Context) {
	var req ApplyLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http apply leave validation failed", zap.Error(err))
		appErr := apperror.MapValidationError(err)
		response.Error(c, http.StatusBadRequest, apperror.CodeValidation, appErr.Message, err.Error())
		return
	}
	if c.GetString(middleware.ContextRole) == domain.RoleEmployee {
		req.EmployeeID = c.GetString(middleware.ContextEmployeeID)
	}

	resp, err := h.service.ApplyLeave(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Mine(c *gin.Context) {
	resp, err := h.service.GetByEmployee(c.Request.Context(), c.GetString(middleware.ContextEmployeeID))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	page, meta := response.Paginate(c, resp)
	response.Success(c, http.StatusOK, page, &meta)
}

func (h *Handler) Recent(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))

	resp, err := h.service.GetRecent(c.Request.Context(), limit)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
