package rbac

import (
	"net/http"

	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

// Permissions lists what the caller's role may do.
func (h *Handler) Permissions(c *gin.Context) {
	role := c.GetString("role")
	perms, err := h.service.PermissionsFor(role)
	if err != nil {
		h.logger.Error("list permissions failed", zap.String("role", role), zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, perms, nil)
}

// Check answers whether the caller's role may perform resource:action.
func (h *Handler) Check(c *gin.Context) {
	var req domain.EnforceRequest
	req.Role = c.GetString("role")
	req.UserID = c.GetString("user_id")
	req.Resource = c.Query("resource")
	req.Action = c.Query("action")
	if req.Resource == "" || req.Action == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "resource and action are required", nil)
		return
	}

	allowed, err := h.service.Enforce(req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
		return
	}
	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}
