package auth

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, authMiddleware gin.HandlerFunc, pinLimiter gin.HandlerFunc) {
	auth := r.Group("/auth")
	{
		auth.POST("/login", middleware.RateLimitByIP(0.2, 5), handler.Login)
		auth.POST("/login-pin", pinLimiter, handler.LoginPIN)
		auth.GET("/me", authMiddleware, middleware.RateLimitByUser(2, 5), handler.Me)
	}
}
