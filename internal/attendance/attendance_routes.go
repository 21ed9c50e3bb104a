package attendance

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authMiddleware gin.HandlerFunc,
	rbacService middleware.RBACService,
	pinLimiter gin.HandlerFunc,
	deviceKey gin.HandlerFunc,
	logger *zap.Logger,
) {
	att := r.Group("/attendance")
	att.Use(authMiddleware)
	att.Use(middleware.ContextLogger(logger))
	{
		att.POST("/punch", middleware.RBACAuthorize(rbacService, "attendance", "punch"), h.Punch)
		att.POST("/absent", middleware.RBACAuthorize(rbacService, "attendance", "absent"), h.MarkAbsent)
		att.GET("/today", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.Today)
	}

	r.POST("/admin/employees/:id/absent",
		authMiddleware,
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "attendance", "absent_any"),
		h.AdminMarkAbsent,
	)

	r.POST("/mobile/punch", pinLimiter, middleware.ContextLogger(logger), h.PinPunch)
	r.POST("/biometric/punch", deviceKey, middleware.ContextLogger(logger), h.BiometricPunch)
}
