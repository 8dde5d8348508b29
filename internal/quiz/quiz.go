/**
* Name: 			quiz.go
* Description: 		직무별 객관식 문제 제공 (/ask)
* Workflow: 		저장된 문제 은행 -> 정적 문제 은행 -> 생성 모델 1문항 -> 공개 퀴즈 API -> 고정 문제
 */

package quiz

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/seeding"
	"github.com/depu2006/CareerGenomeai/internal/skillmatch"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"go.uber.org/zap"
)

// 결과 출처, 로그와 테스트용
const (
	SourceStore     = "store"
	SourceBank      = "bank"
	SourceGenerated = "generated"
	SourceTrivia    = "trivia"
	SourceDefault   = "default"
)

type Store interface {
	CountRoleQuestions(ctx context.Context, role string) (int64, error)
	SampleRoleQuestions(ctx context.Context, role string, exclude []string, n int) ([]models.RoleQuestion, error)
	InsertDocument(ctx context.Context, collection string, doc any) error
}

type Seeder interface {
	Seeding(roleKey string) bool
	SeedMCQ(roleKey string) (*seeding.Job, bool)
}

type Trivia interface {
	Trivia(ctx context.Context) (models.MCQ, error)
}

type Request struct {
	Role    string
	Exclude []string
	Amount  int
}

// Result is a list when Many is set, otherwise Questions holds exactly one item.
type Result struct {
	Questions []models.MCQ
	Many      bool
	Source    string
}

type Service struct {
	store  Store
	seeder Seeder
	gen    llm.Generator
	trivia Trivia
	model  string
	log    *zap.Logger
}

func NewService(store Store, seeder Seeder, gen llm.Generator, trivia Trivia, model string, log *zap.Logger) *Service {
	return &Service{store: store, seeder: seeder, gen: gen, trivia: trivia, model: model, log: log}
}

func (s *Service) SaveSummary(ctx context.Context, email string, summary any) error {
	return s.store.InsertDocument(ctx, storage.CollAssessmentResults, models.AssessmentResult{
		Email:   email,
		Summary: summary,
		Date:    time.Now().UTC(),
	})
}

func (s *Service) Ask(ctx context.Context, req Request) Result {
	amount := max(req.Amount, 1)
	many := amount > 1
	role := strings.TrimSpace(req.Role)
	roleKey := skillmatch.NormalizeRole(role)

	if roleKey != "" {
		if qs := s.fromStore(ctx, roleKey, req.Exclude, amount); len(qs) >= amount {
			return Result{Questions: qs, Many: many, Source: SourceStore}
		}
		if qs := fromBank(roleKey, req.Exclude, amount); len(qs) > 0 {
			return Result{Questions: qs, Many: many, Source: SourceBank}
		}
	}

	if role != "" {
		q, err := s.generate(ctx, role, req.Exclude)
		if err == nil {
			return Result{Questions: []models.MCQ{q}, Source: SourceGenerated}
		}
		s.log.Info("single question generation failed", zap.String("role", role), zap.Error(err))
	}

	if q, err := s.trivia.Trivia(ctx); err == nil {
		return Result{Questions: []models.MCQ{q}, Source: SourceTrivia}
	} else {
		s.log.Info("trivia fallback failed", zap.Error(err))
	}
	return Result{Questions: []models.MCQ{defaultQuestion}, Source: SourceDefault}
}

// 부족하면 백그라운드 시딩 시작 (응답은 기다리지 않음)
func (s *Service) fromStore(ctx context.Context, roleKey string, exclude []string, amount int) []models.MCQ {
	count, err := s.store.CountRoleQuestions(ctx, roleKey)
	if err != nil {
		s.log.Warn("question count failed", zap.String("role", roleKey), zap.Error(err))
		return nil
	}
	if count < seeding.MCQTarget && !s.seeder.Seeding(roleKey) {
		s.seeder.SeedMCQ(roleKey)
	}
	if count == 0 {
		return nil
	}

	stored, err := s.store.SampleRoleQuestions(ctx, roleKey, exclude, amount)
	if err != nil {
		s.log.Warn("question sample failed", zap.String("role", roleKey), zap.Error(err))
		return nil
	}
	out := make([]models.MCQ, len(stored))
	for i, q := range stored {
		out[i] = q.MCQ
	}
	return out
}

// 남은 문제가 amount보다 적으면 남은 것 전부 반환
func fromBank(roleKey string, exclude []string, amount int) []models.MCQ {
	bank, ok := staticBank[roleKey]
	if !ok {
		return nil
	}
	seen := make(map[string]bool, len(exclude))
	for _, e := range exclude {
		seen[e] = true
	}
	available := make([]models.MCQ, 0, len(bank))
	for _, q := range bank {
		if !seen[q.Question] {
			available = append(available, q)
		}
	}
	if len(available) <= amount {
		return available
	}
	rand.Shuffle(len(available), func(i, j int) { available[i], available[j] = available[j], available[i] })
	return available[:amount]
}

func (s *Service) generate(ctx context.Context, role string, exclude []string) (models.MCQ, error) {
	recent := exclude
	if len(recent) > 3 {
		recent = recent[len(recent)-3:]
	}
	prompt := fmt.Sprintf(`Generate a single multiple-choice technical interview question for a '%s' role.
Avoid these topics: %s
Strictly Technical. Use JSON format with keys "question", "answer" and "options".`, role, strings.Join(recent, ", "))

	text, err := s.gen.Generate(ctx, prompt, llm.Options{
		Model:       s.model,
		JSON:        true,
		Temperature: llm.Temperature(0.7),
		NumPredict:  150,
		Timeout:     10 * time.Second,
		Site:        "ask",
	})
	if err != nil {
		return models.MCQ{}, err
	}
	return llm.DecodeStrict[models.MCQ](text)
}
