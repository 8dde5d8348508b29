package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"

	"go.uber.org/zap"
)

const (
	EmptyMessageReply = "Please ask something."
	OfflineReply      = "AI server is not running. Please start Ollama locally using: ollama run phi"
)

type Service struct {
	gen   llm.Generator
	store DocumentWriter
	model string
	log   *zap.Logger
}

type DocumentWriter interface {
	InsertDocument(ctx context.Context, collection string, doc any) error
}

func NewService(gen llm.Generator, store DocumentWriter, model string, log *zap.Logger) *Service {
	return &Service{gen: gen, store: store, model: model, log: log}
}

func chatPrompt(message string) string {
	return fmt.Sprintf(`You are a professional career mentor and coding assistant.

User Question:
%s

Rules:
- Give clear and helpful answer
- Use simple English
- Be professional
- If technical question, explain properly`, message)
}

// Chat never fails: an unreachable generator yields OfflineReply and any
// other generation failure an empty reply.
func (s *Service) Chat(ctx context.Context, message string) string {
	if strings.TrimSpace(message) == "" {
		return EmptyMessageReply
	}
	reply, err := s.gen.Generate(ctx, chatPrompt(message), llm.Options{
		Model:      s.model,
		NumPredict: 200,
		Timeout:    120 * time.Second,
		Site:       "chat",
	})
	switch {
	case errors.Is(err, llm.ErrUnavailable):
		return OfflineReply
	case err != nil:
		return ""
	}
	return reply
}
