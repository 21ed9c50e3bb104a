package report

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
	logger *zap.Logger,
) {
	admin := r.Group("/admin")
	admin.Use(authMiddleware)
	admin.Use(middleware.ContextLogger(logger))
	admin.Use(middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		admin.GET("/dashboard", h.AdminDashboard)
		admin.GET("/reports/summary", h.Summary)
		admin.GET("/reports/monthly", h.Monthly)
		admin.GET("/reports/monthly/export", h.ExportMonthly)
	}

	self := r.Group("")
	self.Use(authMiddleware)
	self.Use(middleware.ContextLogger(logger))
	self.Use(middleware.RBACAuthorize(rbacService, "attendance", "read"))
	{
		self.GET("/attendance/history", h.History)
		self.GET("/employee/dashboard", h.EmployeeDashboard)
	}
}
