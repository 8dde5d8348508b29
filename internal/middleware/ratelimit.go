package middleware

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
	limit "github.com/yangxikun/gin-limit-by-key"
	"golang.org/x/time/rate"
)

// gin-limit-by-key는 프로세스 전역 캐시를 키로만 구분하므로 인스턴스마다 키 공간을 나눈다
var limiterSeq atomic.Uint64

// 생성 모델을 호출하는 엔드포인트용 IP 단위 토큰 버킷.
// 같은 핸들러를 단 라우트끼리는 버킷을 공유한다.
func RateLimitByIP(rps float64, burst int) gin.HandlerFunc {
	scope := fmt.Sprintf("%d:%g/%d", limiterSeq.Add(1), rps, burst)
	return limit.NewRateLimiter(func(c *gin.Context) string {
		return scope + "|" + c.ClientIP()
	}, func(c *gin.Context) (*rate.Limiter, time.Duration) {
		return rate.NewLimiter(rate.Limit(rps), burst), time.Hour
	}, func(c *gin.Context) {
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
	})
}
