/**
* Name: 			seeder.go
* Description: 		문제 은행 백그라운드 채우기 (객관식 / 서술형)
* Workflow: 		생성 호출 1회당 배치, 검증, 중복 제거 후 저장. 생성 실패 시 즉시 중단
 */

package seeding

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/models"

	"go.uber.org/zap"
)

const (
	MCQTarget       = 100
	mcqBatchSize    = 5
	SmartThreshold  = 20
	smartBatchSize  = 10
	defaultFocus    = "core technical concepts and industry practices"
	pipelineMCQ     = "mcq"
	pipelineSmart   = "smart"
	maxEmptyBatches = 3
)

var roleFocus = map[string]string{
	"frontend":     "React, JavaScript ES6+, CSS Grid/Flexbox, Redux, Browser APIs, Web Performance",
	"backend":      "Node.js, Express, Python/Django, SQL/NoSQL, REST APIs, Microservices, System Design",
	"data science": "Pandas, NumPy, Scikit-learn, Statistics, Data Visualization, SQL, Feature Engineering",
	"ai/ml":        "Deep Learning, Transformers, PyTorch/TensorFlow, LLMs, NLP, Computer Vision, Neural Networks",
}

var leadingNumber = regexp.MustCompile(`^\d+[.)]\s*`)

type QuestionStore interface {
	CountRoleQuestions(ctx context.Context, role string) (int64, error)
	RoleQuestionExists(ctx context.Context, role, question string) (bool, error)
	InsertRoleQuestion(ctx context.Context, q models.RoleQuestion) error
	CountSmartQuestions(ctx context.Context, role, difficulty string) (int64, error)
	UpsertSmartQuestion(ctx context.Context, q models.SmartQuestion) (bool, error)
}

type Seeder struct {
	store          QuestionStore
	gen            llm.Generator
	guard          *Guard
	model          string
	interviewModel string
	log            *zap.Logger
}

func NewSeeder(store QuestionStore, gen llm.Generator, guard *Guard, model, interviewModel string, log *zap.Logger) *Seeder {
	return &Seeder{
		store:          store,
		gen:            gen,
		guard:          guard,
		model:          model,
		interviewModel: interviewModel,
		log:            log,
	}
}

// Seeding reports whether the MCQ bank for a normalized role is being filled.
func (s *Seeder) Seeding(roleKey string) bool {
	return s.guard.Running(pipelineMCQ + ":" + roleKey)
}

// SeedMCQ fills role_questions for an already normalized role key toward MCQTarget.
func (s *Seeder) SeedMCQ(roleKey string) (*Job, bool) {
	return s.guard.Start(pipelineMCQ, pipelineMCQ+":"+roleKey, func(ctx context.Context) (int, error) {
		return s.seedMCQ(ctx, roleKey)
	})
}

// SeedSmart fills smart_questions for the raw role string, not the normalized key.
func (s *Seeder) SeedSmart(role, difficulty string) (*Job, bool) {
	key := pipelineSmart + ":" + role + "|" + difficulty
	return s.guard.Start(pipelineSmart, key, func(ctx context.Context) (int, error) {
		return s.seedSmart(ctx, role, difficulty)
	})
}

func mcqPrompt(roleKey string) string {
	focus, ok := roleFocus[roleKey]
	if !ok {
		focus = defaultFocus
	}
	return fmt.Sprintf(`Generate exactly %d unique, high-quality multiple-choice technical interview questions for a professional '%s' role.
Focus area: %s.

The output must be strictly a JSON list of %d objects:
[
  {
    "question": "Question text",
    "answer": "Correct answer",
    "options": ["A", "B", "C", "D"]
  }
]
No preamble, no JSON tags. Just the raw JSON list.`, mcqBatchSize, roleKey, focus, mcqBatchSize)
}

func (s *Seeder) seedMCQ(ctx context.Context, roleKey string) (int, error) {
	count, err := s.store.CountRoleQuestions(ctx, roleKey)
	if err != nil {
		return 0, err
	}

	inserted, empty := 0, 0
	for count < MCQTarget {
		text, err := s.gen.Generate(ctx, mcqPrompt(roleKey), llm.Options{
			Model:       s.model,
			JSON:        true,
			Temperature: llm.Temperature(0.8),
			NumPredict:  1200,
			Timeout:     40 * time.Second,
			Site:        "seed_mcq",
		})
		if err != nil {
			return inserted, err
		}
		batch, err := llm.Decode[mcqBatch](text)
		if err != nil {
			return inserted, err
		}

		added := 0
		for _, q := range batch {
			if llm.Validate(q) != nil {
				continue
			}
			exists, err := s.store.RoleQuestionExists(ctx, roleKey, q.Question)
			if err != nil {
				return inserted, err
			}
			if exists {
				continue
			}
			if err := s.store.InsertRoleQuestion(ctx, models.RoleQuestion{Role: roleKey, MCQ: q, Date: time.Now().UTC()}); err != nil {
				return inserted, err
			}
			added++
			count++
		}
		inserted += added
		s.log.Debug("mcq seeding progress", zap.String("role", roleKey), zap.Int64("count", count))

		// 중복만 반복 생성되는 경우 무한 루프 방지
		if added == 0 {
			empty++
			if empty >= maxEmptyBatches {
				return inserted, fmt.Errorf("no new questions after %d batches", empty)
			}
		} else {
			empty = 0
		}
	}
	return inserted, nil
}

func smartPrompt(role, difficulty string) string {
	return fmt.Sprintf(`Generate %d unique technical interview questions for a %s.
Level: %s.
Focus on real-world scenarios.
Return ONLY questions, one per line. No numbers, no explanation.
End each with a question mark.`, smartBatchSize, role, difficulty)
}

func (s *Seeder) seedSmart(ctx context.Context, role, difficulty string) (int, error) {
	count, err := s.store.CountSmartQuestions(ctx, role, difficulty)
	if err != nil {
		return 0, err
	}
	if count >= SmartThreshold {
		return 0, nil
	}

	text, err := s.gen.Generate(ctx, smartPrompt(role, difficulty), llm.Options{
		Model:      s.interviewModel,
		NumPredict: 1000,
		Timeout:    120 * time.Second,
		Site:       "seed_smart",
	})
	if err != nil {
		return 0, err
	}

	inserted := 0
	for _, q := range ParseQuestionLines(text) {
		added, err := s.store.UpsertSmartQuestion(ctx, models.SmartQuestion{
			Role:       role,
			Difficulty: difficulty,
			Question:   q,
			Date:       time.Now().UTC(),
		})
		if err != nil {
			return inserted, err
		}
		if added {
			inserted++
		}
	}
	return inserted, nil
}

// ParseQuestionLines keeps non-empty lines containing "?" and strips list numbering.
func ParseQuestionLines(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "?") {
			continue
		}
		out = append(out, leadingNumber.ReplaceAllString(line, ""))
	}
	return out
}

// mcqBatch accepts a bare list, a {"questions": [...]} envelope, or a single question object.
type mcqBatch []models.MCQ

func (b *mcqBatch) UnmarshalJSON(data []byte) error {
	var list []models.MCQ
	if err := json.Unmarshal(data, &list); err == nil {
		*b = list
		return nil
	}
	var envelope struct {
		Questions []models.MCQ `json:"questions"`
	}
	if err := json.Unmarshal(data, &envelope); err == nil && len(envelope.Questions) > 0 {
		*b = envelope.Questions
		return nil
	}
	var single models.MCQ
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	if single.Question == "" {
		return fmt.Errorf("seeding: no questions in response")
	}
	*b = mcqBatch{single}
	return nil
}
