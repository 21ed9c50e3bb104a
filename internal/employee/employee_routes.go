package employee

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMiddleware gin.HandlerFunc,
	rbacService middleware.RBACService,
	pinLimiter gin.HandlerFunc,
	logger *zap.Logger,
) {
	admin := r.Group("/admin/employees")
	admin.Use(authMiddleware)
	admin.Use(middleware.ContextLogger(logger))
	{
		admin.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, "employee", "manage"),
			handler.Search,
		)

		admin.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "manage"),
			handler.Create,
		)

		admin.DELETE("/:id",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, "employee", "manage"),
			handler.Delete,
		)
	}

	r.GET("/employees/profile/:code",
		authMiddleware,
		middleware.ContextLogger(logger),
		middleware.RBACAuthorize(rbacService, "employee", "profile"),
		handler.Profile,
	)

	r.GET("/mobile/whoami/:pin", pinLimiter, handler.WhoAmI)
}
