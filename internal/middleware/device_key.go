package middleware

import (
	"crypto/subtle"

	autherrors "github.com/ab-rar-6024/Attendance-System-Mobile/internal/auth/errors"
	"github.com/ab-rar-6024/Attendance-System-Mobile/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const HeaderDeviceKey = "X-Device-Key"

// DeviceKey checks the shared secret sent by biometric readers. An empty key disables the check.
func DeviceKey(key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key == "" {
			c.Next()
			return
		}
		got := c.GetHeader(HeaderDeviceKey)
		if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
			errObj := autherrors.ErrInvalidDeviceKey
			response.Error(c, errObj.HTTPStatus, errObj.Code, errObj.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}
