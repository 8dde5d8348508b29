package handler

import (
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/interview"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Upgrade HTTP connection to WebSocket
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// HandleInterviewConnection godoc
// @Summary      아바타 면접 WebSocket 연결
// @Description  HTTP 아바타 면접과 같은 상태 머신을 WebSocket으로 진행합니다.
// @Description  <br>
// @Description  **참고: 이것은 표준 HTTP API가 아닙니다.**
// @Description  클라이언트는 `ws://` 또는 `wss://` 스킴을 사용하여 이 엔드포인트에 연결해야 합니다.
// @Description  인증은 HTTP Header가 아닌 **쿼리 파라미터('token')**를 통해 수행됩니다.
// @Description  텍스트 프레임은 답변 텍스트(또는 {"answer": "..."}), 바이너리 프레임은 LINEAR16 음성 답변입니다.
// @Description  음성 기능이 켜져 있으면 서버는 문제마다 TTS 음성 바이너리 프레임을 함께 보냅니다.
// @Tags         WebSocket (Interview)
// @Param        token query string true  "로그인 시 발급받은 JWT 토큰"
// @Param        role  query string false "면접 역할 (예: python)"
// @Success      101   {string} string "101 Switching Protocols (WebSocket으로 프로토콜 전환 성공)"
// @Failure      401   {object} handler.ErrorResponse "토큰 누락 또는 유효하지 않은 토큰"
// @Router       /ws/interview [get]
func (h *Handler) HandleInterviewConnection(c *gin.Context) {

	// URL Query 파라미터 추출
	tokenString := c.Query("token")
	role := c.DefaultQuery("role", interview.DefaultRole)

	// 사용자 토큰 검증
	claims, err := h.Tokens.ValidateToken(tokenString)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	// WebSocket 연결 업그레이드과 종료
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.Log.Warn("websocket upgrade failed", zap.String("email", claims.Email), zap.Error(err))
		return
	}
	defer conn.Close()
	h.Log.Info("interview websocket connected", zap.String("email", claims.Email), zap.String("role", role))

	h.manageInterviewSession(c.Request.Context(), conn, claims.Email, role)
}
