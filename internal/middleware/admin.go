package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// 관리자 조회 API 보호. adminKey가 비어 있으면 라우트 마운트 여부(ADMIN_ENABLED)만으로 제어
func AdminKeyMiddleware(adminKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if adminKey == "" {
			c.Next()
			return
		}
		clientKey := c.GetHeader("X-Admin-Key")
		if subtle.ConstantTimeCompare([]byte(clientKey), []byte(adminKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Invalid admin key"})
			return
		}
		c.Next()
	}
}
