package handler

import (
	"errors"
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/skillgap"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SkillGapRequest struct {
	Role          string    `json:"role" example:"Data Analyst"`
	CurrentSkills SkillList `json:"currentSkills" swaggertype:"string" example:"python, excel"`
	Email         string    `json:"email,omitempty"`
}

// GenerateSkillGap godoc
// @Summary      스킬 갭 분석 및 로드맵 생성
// @Description  목표 직무의 필요 기술과 현재 기술을 비교해 부족한 기술과 학습 계획을 만듭니다.
// @Description  email을 보내면 (email, role) 기준으로 저장합니다.
// @Tags         SkillGap
// @Accept       json
// @Produce      json
// @Param        request body handler.SkillGapRequest true "목표 직무와 현재 기술"
// @Success      200 {object} models.SkillGapResult
// @Failure      400 {object} handler.ErrorResponse "Target role is required"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/skill-gap/generate [post]
func (h *Handler) GenerateSkillGap(c *gin.Context) {
	var req SkillGapRequest
	_ = bindOptionalJSON(c, &req)

	result, err := h.SkillGap.Generate(c.Request.Context(), skillgap.Request{
		Role:          req.Role,
		CurrentSkills: string(req.CurrentSkills),
		Email:         req.Email,
	})
	if err != nil {
		if errors.Is(err, skillgap.ErrRoleRequired) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Target role is required"})
			return
		}
		h.Log.Error("skill gap generation failed", zap.String("role", req.Role), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetRoadmap godoc
// @Summary      저장된 로드맵 조회
// @Description  이메일로 가장 최근에 갱신된 스킬 갭 결과를 반환합니다. 없으면 null입니다.
// @Tags         SkillGap
// @Produce      json
// @Param        email query string false "사용자 이메일"
// @Success      200 {object} models.SkillGapResult
// @Router       /api/skill-gap/roadmap [get]
func (h *Handler) GetRoadmap(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusOK, nil)
		return
	}
	result, err := h.SkillGap.Latest(c.Request.Context(), email)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			h.Log.Error("failed to load roadmap", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, nil)
		return
	}
	c.JSON(http.StatusOK, result)
}

// DeleteRoadmap godoc
// @Summary      저장된 로드맵 삭제
// @Description  이메일의 모든 스킬 갭 결과를 삭제합니다.
// @Tags         SkillGap
// @Produce      json
// @Param        email query string true "사용자 이메일"
// @Success      200 {object} handler.MessageResponse "Roadmap cleared"
// @Failure      400 {object} handler.MessageResponse "Email required"
// @Router       /api/skill-gap/roadmap [delete]
func (h *Handler) DeleteRoadmap(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Email required"})
		return
	}
	n, err := h.SkillGap.Clear(c.Request.Context(), email)
	if err != nil {
		h.Log.Error("failed to clear roadmap", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.Log.Info("roadmaps cleared", zap.String("email", email), zap.Int64("deleted", n))
	c.JSON(http.StatusOK, gin.H{"msg": "Roadmap cleared"})
}
