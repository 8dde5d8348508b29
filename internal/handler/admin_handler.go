package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const adminDocumentLimit = 50

// Collections godoc
// @Summary      컬렉션 목록 (관리자)
// @Description  ADMIN_ENABLED=true일 때만 노출됩니다. ADMIN_KEY가 설정되면 X-Admin-Key 헤더가 필요합니다.
// @Tags         Admin
// @Produce      json
// @Param        X-Admin-Key header string false "관리자 키"
// @Success      200 {array} string
// @Failure      403 {object} handler.ErrorResponse
// @Router       /api/collections [get]
func (h *Handler) Collections(c *gin.Context) {
	names, err := h.Store.ListCollections(c.Request.Context())
	if err != nil {
		h.Log.Error("failed to list collections", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, names)
}

// CollectionData godoc
// @Summary      컬렉션 최근 문서 (관리자)
// @Description  date 내림차순으로 최근 50개 문서를 반환합니다.
// @Tags         Admin
// @Produce      json
// @Param        name        path   string true  "컬렉션 이름"
// @Param        X-Admin-Key header string false "관리자 키"
// @Success      200 {array} object
// @Failure      403 {object} handler.ErrorResponse
// @Failure      500 {object} handler.ErrorResponse
// @Router       /api/collection/{name} [get]
func (h *Handler) CollectionData(c *gin.Context) {
	docs, err := h.Store.LatestDocuments(c.Request.Context(), c.Param("name"), adminDocumentLimit)
	if err != nil {
		h.Log.Error("failed to read collection", zap.String("collection", c.Param("name")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if docs == nil {
		docs = []map[string]any{}
	}
	c.JSON(http.StatusOK, docs)
}
