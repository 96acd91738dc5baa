package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionMiddleware tạo sessionId nếu chưa có và chuyển tiếp token của
// người dùng cho backend. Engine không tự xác thực: token được đọc
// nguyên vẹn từ header và gắn vào context để các service gửi kèm.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionId := c.GetHeader("X-Session-ID")
		if sessionId == "" {
			sessionId = uuid.NewString()
		}
		c.Set("sessionId", sessionId)
		c.Writer.Header().Set("X-Session-ID", sessionId)

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			c.Set("backendToken", strings.TrimPrefix(authHeader, "Bearer "))
		}

		c.Next()
	}
}

// BackendToken lấy token chuyển tiếp từ context; trống nếu khách vãng lai
func BackendToken(c *gin.Context) string {
	token, _ := c.Get("backendToken")
	if s, ok := token.(string); ok {
		return s
	}
	return ""
}
