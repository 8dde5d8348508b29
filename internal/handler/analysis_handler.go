package handler

import (
	"errors"
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/failure"
	"github.com/depu2006/CareerGenomeai/internal/readiness"
	"github.com/depu2006/CareerGenomeai/internal/resume"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxResumeBytes = 10 << 20

// CareerReadiness godoc
// @Summary      이력서/채용공고 적합도 분석
// @Description  이력서(PDF, DOCX, TXT)와 채용공고 텍스트를 비교해 준비도 점수와 동료 백분위를 계산합니다.
// @Tags         Analysis
// @Accept       multipart/form-data
// @Produce      json
// @Param        resume_file     formData file   true  "이력서 파일"
// @Param        job_description formData string false "채용공고 본문"
// @Param        email           formData string false "결과 저장용 이메일"
// @Success      200 {object} models.ReadinessResult
// @Failure      400 {object} handler.ErrorResponse "파일 누락 또는 지원하지 않는 형식"
// @Failure      413 {object} handler.ErrorResponse "10MB 초과"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /career-readiness [post]
func (h *Handler) CareerReadiness(c *gin.Context) {
	fh, data, err := formFile(c, "resume_file", maxResumeBytes)
	if err != nil {
		switch {
		case errors.Is(err, errMissingUpload):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No resume file uploaded"})
		case errors.Is(err, errUploadTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Resume file too large"})
		default:
			h.Log.Error("career-readiness: read upload", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	result, err := h.Readiness.Analyze(c.Request.Context(), readiness.Request{
		Resume: readiness.Upload{
			Filename:    fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Data:        data,
		},
		JobDescription: c.PostForm("job_description"),
		Email:          c.PostForm("email"),
	})
	if err != nil {
		if errors.Is(err, resume.ErrUnsupported) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		// error 레벨은 에러 로그 파일에도 기록됨
		h.Log.Error("career-readiness failed", zap.String("file", fh.Filename), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

type FailureRequest struct {
	Story string `json:"story" example:"I failed three interviews in a row because I froze on coding questions."`
	Email string `json:"email,omitempty"`
}

// AnalyzeFailure godoc
// @Summary      실패 경험 진단
// @Description  자유 서술형 실패 경험을 규칙 기반으로 분류하고 실행 계획을 반환합니다.
// @Tags         Analysis
// @Accept       json
// @Produce      json
// @Param        request body handler.FailureRequest true "실패 경험"
// @Success      200 {object} models.FailureResult
// @Failure      400 {object} handler.ErrorResponse "10자 미만"
// @Router       /analyze-failure [post]
func (h *Handler) AnalyzeFailure(c *gin.Context) {
	var req FailureRequest
	_ = bindOptionalJSON(c, &req)

	result, err := h.Failure.Analyze(c.Request.Context(), req.Email, req.Story)
	if err != nil {
		if errors.Is(err, failure.ErrStoryTooShort) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Story too short"})
			return
		}
		h.Log.Error("failed to store failure story", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
