package middleware

import (
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/contextutil"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextLogger attaches a request-scoped logger to the request context.
// Mount it after AuthMiddleware so the user id is known.
func ContextLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetString("request_id")
		if rid == "" {
			rid = c.GetHeader(HeaderRequestID)
		}
		if rid == "" {
			rid = uuid.New().String()
			c.Header(HeaderRequestID, rid)
		}

		uid := c.GetString(ContextUserID)

		reqLogger := logger.With(
			zap.String("request_id", rid),
			zap.String("user_id", uid),
			zap.String("role", c.GetString(ContextRole)),
		)

		ctx := c.Request.Context()
		ctx = contextutil.WithRequestID(ctx, rid)
		ctx = contextutil.WithUserID(ctx, uid)
		ctx = contextutil.WithLogger(ctx, reqLogger)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
