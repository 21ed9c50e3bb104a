package leave

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/domain"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	authMiddleware gin.HandlerFunc,
	rbacService middleware.RBACService,
	idempotency gin.HandlerFunc,
	logger *zap.Logger,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authMiddleware)
	leaves.Use(middleware.ContextLogger(logger))
	{
		leaves.POST("",
			middleware.RateLimitByUser(0.5, 3),
			middleware.RBACAuthorize(rbacService, "leave", "apply"),
			idempotency,
			h.Apply,
		)
		leaves.GET("",
			middleware.RoleMiddleware(domain.RoleEmployee),
			middleware.RBACAuthorize(rbacService, "leave", "read"),
			h.Mine,
		)
	}

	r.GET("/admin/leaves",
		authMiddleware,
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "report", "read"),
		h.Recent,
	)
}
