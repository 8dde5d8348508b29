package handler

import (
	"errors"
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/catalog"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type RoleRequest struct {
	Role string `json:"role" example:"Software Developers"`
}

type TopicRequest struct {
	Topic string `json:"topic" example:"React"`
}

// Roles godoc
// @Summary      직업명 목록
// @Description  참조 데이터의 직업명을 정렬해 반환합니다.
// @Tags         Catalog
// @Produce      json
// @Success      200 {array} string
// @Router       /api/roles [get]
func (h *Handler) Roles(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Roles())
}

// RoleInfo godoc
// @Summary      직업별 학습 자료
// @Description  정확히 일치하는 직업명의 기술 목록(최대 15개)과 문서/영상 검색 링크를 반환합니다.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body handler.RoleRequest true "직업명"
// @Success      200 {object} catalog.RoleInfo
// @Failure      404 {object} handler.ErrorResponse "Role not found"
// @Router       /api/role [post]
func (h *Handler) RoleInfo(c *gin.Context) {
	var req RoleRequest
	_ = bindOptionalJSON(c, &req)

	info, err := h.Catalog.Role(req.Role)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Role not found"})
		return
	}
	c.JSON(http.StatusOK, info)
}

// Topic godoc
// @Summary      주제별 로드맵 구조
// @Description  위키백과 문서 목차로 주제의 학습 구조를 만듭니다.
// @Tags         Catalog
// @Accept       json
// @Produce      json
// @Param        request body handler.TopicRequest true "주제"
// @Success      200 {object} catalog.TopicInfo
// @Failure      400 {object} handler.ErrorResponse "Topic required"
// @Failure      404 {object} handler.ErrorResponse "Topic not found"
// @Failure      502 {object} handler.ErrorResponse "외부 API 실패"
// @Router       /api/topic [post]
func (h *Handler) Topic(c *gin.Context) {
	var req TopicRequest
	_ = bindOptionalJSON(c, &req)

	info, err := h.Catalog.Topic(c.Request.Context(), req.Topic)
	switch {
	case errors.Is(err, catalog.ErrTopicRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic required"})
	case errors.Is(err, catalog.ErrTopicNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Topic not found"})
	case err != nil:
		h.Log.Warn("topic lookup failed", zap.String("topic", req.Topic), zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, info)
	}
}
