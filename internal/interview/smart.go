package interview

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/seeding"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"go.uber.org/zap"
)

const (
	DefaultSmartRole  = "Frontend Developer"
	DefaultDifficulty = "Easy"

	StartFallback    = "Could you explain your favorite technical project?"
	NextFallback     = "What is your approach to debugging complex issues?"
	EvaluateFallback = "I'm sorry, I'm having trouble connecting to my AI core right now."

	smartTimeout = 120 * time.Second
)

type SmartStore interface {
	SampleSmartQuestion(ctx context.Context, role, difficulty string) (*models.SmartQuestion, error)
}

type SmartSeeder interface {
	SeedSmart(role, difficulty string) (*seeding.Job, bool)
}

// SmartService serves open-ended questions. Roles are used as given, without normalization.
type SmartService struct {
	store  SmartStore
	seeder SmartSeeder
	gen    llm.Generator
	model  string
	log    *zap.Logger
}

func NewSmartService(store SmartStore, seeder SmartSeeder, gen llm.Generator, model string, log *zap.Logger) *SmartService {
	return &SmartService{store: store, seeder: seeder, gen: gen, model: model, log: log}
}

func withDefaults(role, difficulty string) (string, string) {
	if role == "" {
		role = DefaultSmartRole
	}
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	return role, difficulty
}

// Start returns a first question and kicks off seeding for the pair.
func (s *SmartService) Start(ctx context.Context, role, difficulty string) string {
	role, difficulty = withDefaults(role, difficulty)
	q, ok := s.sample(ctx, role, difficulty)
	// 저장된 문제 수와 무관하게 매번 시도, 임계값 검사는 seeder가 한다
	s.seeder.SeedSmart(role, difficulty)
	if ok {
		return q
	}

	prompt := fmt.Sprintf("Ask ONE sharp technical interview question for a %s at %s level. Return ONLY the question text.", role, difficulty)
	return s.generate(ctx, prompt, "smart_start", StartFallback)
}

func (s *SmartService) Next(ctx context.Context, role, difficulty string) string {
	role, difficulty = withDefaults(role, difficulty)
	if q, ok := s.sample(ctx, role, difficulty); ok {
		return q
	}
	prompt := fmt.Sprintf("Ask a new technical question for a %s (%s). Return only question.", role, difficulty)
	return s.generate(ctx, prompt, "smart_next", NextFallback)
}

// Evaluate returns the critique verbatim.
func (s *SmartService) Evaluate(ctx context.Context, question, answer string) string {
	prompt := fmt.Sprintf(`
Evaluate this technical interview answer. Be concise and critical.
Q: %s
A: %s

Format:
Logic: [Correctness/Accuracy]
Grammar: [Flow]
Corrected: [Concise improvement]
Expected: [Key points missing]
`, question, answer)

	text, err := s.gen.Generate(ctx, prompt, llm.Options{
		Model:      s.model,
		NumPredict: 400,
		Timeout:    smartTimeout,
		Site:       "evaluate",
	})
	if err != nil {
		s.log.Warn("evaluation failed", zap.Error(err))
		return EvaluateFallback
	}
	return text
}

func (s *SmartService) sample(ctx context.Context, role, difficulty string) (string, bool) {
	q, err := s.store.SampleSmartQuestion(ctx, role, difficulty)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn("smart question lookup failed", zap.String("role", role), zap.Error(err))
		}
		return "", false
	}
	return q.Question, q.Question != ""
}

func (s *SmartService) generate(ctx context.Context, prompt, site, fallback string) string {
	text, err := s.gen.Generate(ctx, prompt, llm.Options{
		Model:      s.model,
		NumPredict: 150,
		Timeout:    smartTimeout,
		Site:       site,
	})
	if err != nil || text == "" {
		if err != nil {
			s.log.Warn("question generation failed", zap.String("site", site), zap.Error(err))
		}
		return fallback
	}
	return text
}
