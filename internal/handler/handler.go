/**
* Name: 			handler.go
* Description: 		Gin HTTP 핸들러 공통 의존성과 응답 타입
* Workflow: 		main에서 Deps 구성 -> New -> Register로 라우트 등록
 */
package handler

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/depu2006/CareerGenomeai/internal/assistant"
	"github.com/depu2006/CareerGenomeai/internal/auth"
	"github.com/depu2006/CareerGenomeai/internal/catalog"
	"github.com/depu2006/CareerGenomeai/internal/failure"
	"github.com/depu2006/CareerGenomeai/internal/interview"
	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/quiz"
	"github.com/depu2006/CareerGenomeai/internal/readiness"
	"github.com/depu2006/CareerGenomeai/internal/shocks"
	"github.com/depu2006/CareerGenomeai/internal/skillgap"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps는 핸들러가 사용하는 서비스 묶음. STT/TTS는 음성 기능이 꺼져 있으면 nil
type Deps struct {
	Store     storage.Store
	Tokens    *auth.TokenManager
	Quiz      *quiz.Service
	Readiness *readiness.Service
	Failure   *failure.Service
	Catalog   *catalog.Service
	SkillGap  *skillgap.Service
	Assistant *assistant.Service
	Avatar    *interview.Manager
	Smart     *interview.SmartService
	Shocks    *shocks.Service
	STT       llm.Transcriber
	TTS       llm.Synthesizer
	Log       *zap.Logger
}

type Handler struct {
	Deps
}

func New(d Deps) *Handler {
	if d.Log == nil {
		d.Log = zap.NewNop()
	}
	return &Handler{Deps: d}
}

type ErrorResponse struct {
	Error string `json:"error" example:"에러 원인 및 설명"`
}

type MessageResponse struct {
	Msg string `json:"msg" example:"Saved"`
}

// SkillList accepts either "a, b, c" or ["a", "b", "c"] and keeps the comma-joined form.
type SkillList string

func (s *SkillList) UnmarshalJSON(data []byte) error {
	var list []string
	if err := json.Unmarshal(data, &list); err == nil {
		*s = SkillList(strings.Join(list, ", "))
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		// null, 숫자 등은 빈 값으로 취급
		*s = ""
		return nil
	}
	*s = SkillList(str)
	return nil
}

func bindOptionalJSON(c *gin.Context, v any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(v)
}

// 파일 외 폼 필드 여유분
const formOverheadBytes = 1 << 20

var (
	errMissingUpload  = errors.New("missing upload")
	errUploadTooLarge = errors.New("upload too large")
)

// formFile reads the named multipart file, refusing anything over limit bytes
// instead of truncating it.
func formFile(c *gin.Context, field string, limit int64) (*multipart.FileHeader, []byte, error) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit+formOverheadBytes)
	fh, err := c.FormFile(field)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, errUploadTooLarge
		}
		return nil, nil, errMissingUpload
	}
	if fh.Size > limit {
		return fh, nil, errUploadTooLarge
	}
	f, err := fh.Open()
	if err != nil {
		return fh, nil, err
	}
	defer f.Close()
	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return fh, nil, err
	}
	if int64(len(data)) > limit {
		return fh, nil, errUploadTooLarge
	}
	return fh, data, nil
}
