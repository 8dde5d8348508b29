/**
* Name: 			interview_handler.go
* Description: 		아바타 면접(HTTP) 및 서술형 스마트 면접 핸들러
* Workflow: 		start -> sessionId 발급 -> answer 반복 -> finished 시 결과 저장
 */
package handler

import (
	"errors"
	"net/http"

	"github.com/depu2006/CareerGenomeai/internal/interview"
	"github.com/depu2006/CareerGenomeai/internal/llm"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxAnswerAudioBytes = 10 << 20

type InterviewStartRequest struct {
	Role  string `json:"role" example:"python"`
	Email string `json:"email,omitempty"`
}

type InterviewAnswerRequest struct {
	SessionID string `json:"sessionId" example:"3f1c7a9e-2b4d-4e8f-9a61-0c5d2e7b8f10"`
	Answer    string `json:"answer" example:"A list is mutable while a tuple is immutable."`
}

type AudioAnswerResponse struct {
	interview.Answered
	Transcript string `json:"transcript"`
}

type SmartStartRequest struct {
	Role       string `json:"role" example:"Frontend Developer"`
	Difficulty string `json:"difficulty" example:"Easy"`
}

type SmartEvaluateRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type QuestionResponse struct {
	Question string `json:"question"`
}

type EvaluationResponse struct {
	Evaluation string `json:"evaluation"`
}

// StartInterview godoc
// @Summary      아바타 면접 시작
// @Description  역할별 고정 문제 3개로 구성된 면접 세션을 만들고 첫 문제와 sessionId를 반환합니다.
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        request body handler.InterviewStartRequest false "역할"
// @Success      200 {object} interview.Started
// @Router       /api/interview/start [post]
func (h *Handler) StartInterview(c *gin.Context) {
	var req InterviewStartRequest
	_ = bindOptionalJSON(c, &req)
	if req.Role == "" {
		req.Role = interview.DefaultRole
	}
	c.JSON(http.StatusOK, h.Avatar.Start(req.Role, req.Email))
}

// AnswerInterview godoc
// @Summary      아바타 면접 답변
// @Description  현재 문제의 키워드 포함 비율로 채점하고 다음 문제를 반환합니다.
// @Tags         Interview
// @Accept       json
// @Produce      json
// @Param        request body handler.InterviewAnswerRequest true "세션과 답변"
// @Success      200 {object} interview.Answered
// @Failure      400 {object} handler.ErrorResponse "Interview not started"
// @Router       /api/interview/answer [post]
func (h *Handler) AnswerInterview(c *gin.Context) {
	var req InterviewAnswerRequest
	_ = bindOptionalJSON(c, &req)

	res, err := h.Avatar.Answer(c.Request.Context(), req.SessionID, req.Answer)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Interview not started"})
		return
	}
	c.JSON(http.StatusOK, res)
}

// AnswerInterviewAudio godoc
// @Summary      아바타 면접 음성 답변
// @Description  LINEAR16 16kHz 음성을 텍스트로 변환한 뒤 텍스트 답변과 동일하게 채점합니다.
// @Tags         Interview
// @Accept       multipart/form-data
// @Produce      json
// @Param        sessionId formData string true "세션 ID"
// @Param        audio     formData file   true "LINEAR16 음성"
// @Success      200 {object} handler.AudioAnswerResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      413 {object} handler.ErrorResponse "10MB 초과"
// @Failure      503 {object} handler.ErrorResponse "음성 기능 비활성"
// @Router       /api/interview/answer/audio [post]
func (h *Handler) AnswerInterviewAudio(c *gin.Context) {
	if h.STT == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Speech services are disabled"})
		return
	}
	_, audio, err := formFile(c, "audio", maxAnswerAudioBytes)
	if err != nil {
		switch {
		case errors.Is(err, errMissingUpload):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No audio uploaded"})
		case errors.Is(err, errUploadTooLarge):
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Audio too large"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	text, err := h.STT.Transcribe(c.Request.Context(), audio)
	if err != nil {
		if errors.Is(err, llm.ErrNoSpeech) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "No speech detected"})
			return
		}
		h.Log.Error("transcription failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Transcription failed"})
		return
	}

	res, err := h.Avatar.Answer(c.Request.Context(), c.PostForm("sessionId"), text)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Interview not started"})
		return
	}
	c.JSON(http.StatusOK, AudioAnswerResponse{Answered: res, Transcript: text})
}

// SmartStart godoc
// @Summary      스마트 면접 시작
// @Description  (role, difficulty)에 맞는 저장된 서술형 문제를 반환하고 백그라운드 문제 채우기를 시작합니다.
// @Tags         SmartInterview
// @Accept       json
// @Produce      json
// @Param        request body handler.SmartStartRequest false "역할과 난이도"
// @Success      200 {object} handler.QuestionResponse
// @Router       /start [post]
func (h *Handler) SmartStart(c *gin.Context) {
	var req SmartStartRequest
	_ = bindOptionalJSON(c, &req)
	c.JSON(http.StatusOK, QuestionResponse{Question: h.Smart.Start(c.Request.Context(), req.Role, req.Difficulty)})
}

// SmartNext godoc
// @Summary      스마트 면접 다음 문제
// @Tags         SmartInterview
// @Produce      json
// @Param        role       query string false "역할" default(Frontend Developer)
// @Param        difficulty query string false "난이도" default(Easy)
// @Success      200 {object} handler.QuestionResponse
// @Router       /next [get]
func (h *Handler) SmartNext(c *gin.Context) {
	q := h.Smart.Next(c.Request.Context(), c.Query("role"), c.Query("difficulty"))
	c.JSON(http.StatusOK, QuestionResponse{Question: q})
}

// SmartEvaluate godoc
// @Summary      스마트 면접 답변 평가
// @Description  생성 모델의 평가 텍스트(Logic/Grammar/Corrected/Expected)를 그대로 반환합니다.
// @Tags         SmartInterview
// @Accept       json
// @Produce      json
// @Param        request body handler.SmartEvaluateRequest true "문제와 답변"
// @Success      200 {object} handler.EvaluationResponse
// @Failure      429 {object} handler.ErrorResponse
// @Router       /evaluate [post]
func (h *Handler) SmartEvaluate(c *gin.Context) {
	var req SmartEvaluateRequest
	_ = bindOptionalJSON(c, &req)
	c.JSON(http.StatusOK, EvaluationResponse{Evaluation: h.Smart.Evaluate(c.Request.Context(), req.Question, req.Answer)})
}
