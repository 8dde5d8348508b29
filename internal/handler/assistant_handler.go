package handler

import (
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/assistant"
	"github.com/depu2006/CareerGenomeai/internal/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ChatRequest struct {
	Message string `json:"message" example:"How do I prepare for a system design interview?"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}

type ProjectsRequest struct {
	Role          string    `json:"role" example:"Backend Developer"`
	CurrentSkills SkillList `json:"currentSkills" swaggertype:"string" example:"go, sql"`
	MissingSkills SkillList `json:"missingSkills" swaggertype:"string" example:"kubernetes"`
	Email         string    `json:"email,omitempty"`
}

type ProjectsResponse struct {
	Projects []models.Project `json:"projects"`
}

// Chat godoc
// @Summary      커리어 멘토 채팅
// @Description  생성 모델에 질문을 전달합니다. 모델 서버가 꺼져 있으면 안내 문구를 반환합니다.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request body handler.ChatRequest true "질문"
// @Success      200 {object} handler.ChatResponse
// @Failure      429 {object} handler.ErrorResponse
// @Router       /api/chat [post]
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	_ = bindOptionalJSON(c, &req)
	c.JSON(http.StatusOK, ChatResponse{Reply: h.Assistant.Chat(c.Request.Context(), req.Message)})
}

// GenerateProjects godoc
// @Summary      포트폴리오 프로젝트 추천
// @Description  역할과 기술을 바탕으로 프로젝트 아이디어 3개를 생성합니다. 생성 실패 시 기본 아이디어 2개를 반환합니다.
// @Tags         Assistant
// @Accept       json
// @Produce      json
// @Param        request body handler.ProjectsRequest true "역할과 기술"
// @Success      200 {object} handler.ProjectsResponse
// @Failure      429 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/projects/generate [post]
func (h *Handler) GenerateProjects(c *gin.Context) {
	var req ProjectsRequest
	_ = bindOptionalJSON(c, &req)

	projects, err := h.Assistant.Projects(c.Request.Context(), assistant.ProjectRequest{
		Role:          req.Role,
		CurrentSkills: string(req.CurrentSkills),
		MissingSkills: string(req.MissingSkills),
		Email:         req.Email,
	})
	if err != nil {
		h.Log.Error("failed to store generated projects", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, ProjectsResponse{Projects: projects})
}

// CareerShocks godoc
// @Summary      커리어 쇼크 알림
// @Description  최근 해고 뉴스와 원격 채용 공고 분석 결과를 합쳐 반환합니다. 15분간 캐시됩니다.
// @Tags         Assistant
// @Produce      json
// @Success      200 {array} models.Alert
// @Router       /api/shocks [get]
func (h *Handler) CareerShocks(c *gin.Context) {
	c.JSON(http.StatusOK, h.Shocks.Alerts(c.Request.Context()))
}
