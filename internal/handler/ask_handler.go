package handler

import (
	"encoding/json"
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/quiz"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// /ask 요청 바디. email과 summary 키가 모두 있으면(null 포함) 결과 저장만 수행
type AskRequest struct {
	Role    string          `json:"role" example:"Frontend Developer"`
	Exclude []string        `json:"exclude"`
	Amount  int             `json:"amount" example:"1"`
	Email   json.RawMessage `json:"email,omitempty" swaggertype:"string"`
	Summary json.RawMessage `json:"summary,omitempty" swaggertype:"object"`
}

// Ask godoc
// @Summary      객관식 문제 요청 / 평가 결과 저장
// @Description  역할에 맞는 객관식 문제를 반환합니다. amount > 1이면 배열, 아니면 단일 객체입니다.
// @Description  저장된 문제 -> 내장 문제 은행 -> 생성 모델 -> 퀴즈 API -> 기본 문제 순으로 시도합니다.
// @Description  email과 summary를 함께 보내면 평가 결과를 저장하고 {"msg":"Saved"}를 반환합니다.
// @Tags         Assessment
// @Accept       json
// @Produce      json
// @Param        request body handler.AskRequest false "문제 요청"
// @Success      200 {object} models.MCQ
// @Failure      500 {object} handler.ErrorResponse
// @Router       /ask [post]
func (h *Handler) Ask(c *gin.Context) {
	var req AskRequest
	if err := bindOptionalJSON(c, &req); err != nil {
		h.Log.Debug("ask: ignoring malformed body", zap.Error(err))
	}

	if len(req.Email) > 0 && len(req.Summary) > 0 {
		var email string
		var summary any
		_ = json.Unmarshal(req.Email, &email)
		_ = json.Unmarshal(req.Summary, &summary)
		if err := h.Quiz.SaveSummary(c.Request.Context(), email, summary); err != nil {
			h.Log.Error("failed to save assessment result", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"msg": "Saved"})
		return
	}

	res := h.Quiz.Ask(c.Request.Context(), quiz.Request{Role: req.Role, Exclude: req.Exclude, Amount: req.Amount})
	h.Log.Debug("ask served", zap.String("role", req.Role), zap.String("source", res.Source), zap.Int("count", len(res.Questions)))
	if res.Many {
		c.JSON(http.StatusOK, res.Questions)
		return
	}
	c.JSON(http.StatusOK, res.Questions[0])
}
