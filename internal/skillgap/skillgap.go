/**
* Name: 			skillgap.go
* Description: 		목표 직무 대비 부족 기술 산출 및 학습 로드맵 생성
* Workflow: 		참조 데이터 직무 매칭 -> 부족 기술 -> 사전 정의 로드맵 / 생성 모델 / 템플릿 순으로 계획 작성
 */

package skillgap

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/refdata"

	"go.uber.org/zap"
)

const (
	requiredLimit = 20
	missingLimit  = 10
)

var ErrRoleRequired = errors.New("target role is required")

type Occupations interface {
	OccupationContaining(role string) (refdata.Occupation, bool)
	TechSkillsFor(code string, limit int) []string
}

type Store interface {
	UpsertSkillGap(ctx context.Context, rec models.SkillGapRecord) error
	LatestSkillGap(ctx context.Context, email string) (*models.SkillGapRecord, error)
	DeleteSkillGaps(ctx context.Context, email string) (int64, error)
}

type Request struct {
	Role          string
	CurrentSkills string
	Email         string
}

type Service struct {
	ref   Occupations
	store Store
	gen   llm.Generator
	model string
	log   *zap.Logger
}

func NewService(ref Occupations, store Store, gen llm.Generator, model string, log *zap.Logger) *Service {
	return &Service{ref: ref, store: store, gen: gen, model: model, log: log}
}

func (s *Service) Generate(ctx context.Context, req Request) (models.SkillGapResult, error) {
	role := strings.TrimSpace(req.Role)
	if role == "" {
		return models.SkillGapResult{}, ErrRoleRequired
	}

	missing := MissingSkills(s.requiredSkills(role), ParseSkills(req.CurrentSkills))
	if len(missing) > missingLimit {
		missing = missing[:missingLimit]
	}

	var plan []models.PlanItem
	if p, ok := findPredefined(role); ok {
		s.log.Debug("using predefined roadmap", zap.String("role", role))
		missing = append([]string(nil), p.skills...)
		plan = clonePlan(p.plan)
	} else if len(missing) > 0 {
		var err error
		if plan, err = s.generatedPlan(ctx, role, missing); err != nil {
			s.log.Info("roadmap generation failed, using template", zap.String("role", role), zap.Error(err))
			plan = templatePlan(missing)
		}
	}
	if plan == nil {
		plan = []models.PlanItem{}
	}

	result := models.SkillGapResult{Role: role, MissingSkills: missing, ClosurePlan: plan}
	if req.Email != "" {
		rec := models.SkillGapRecord{Email: req.Email, Role: role, Result: result, UpdatedAt: time.Now().UTC()}
		if err := s.store.UpsertSkillGap(ctx, rec); err != nil {
			return result, err
		}
	}
	return result, nil
}

// Latest returns the most recently updated result for email, or nil.
func (s *Service) Latest(ctx context.Context, email string) (*models.SkillGapResult, error) {
	rec, err := s.store.LatestSkillGap(ctx, email)
	if err != nil {
		return nil, err
	}
	return &rec.Result, nil
}

func (s *Service) Clear(ctx context.Context, email string) (int64, error) {
	return s.store.DeleteSkillGaps(ctx, email)
}

func (s *Service) requiredSkills(role string) []string {
	if occ, ok := s.ref.OccupationContaining(role); ok {
		return s.ref.TechSkillsFor(occ.Code, requiredLimit)
	}
	return fallbackSkills(role)
}

// ParseSkills splits a comma-separated list into trimmed lowercase entries.
func ParseSkills(raw string) []string {
	out := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.ToLower(strings.TrimSpace(part)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// A required skill counts as present when it contains, or is contained in, a current skill.
func MissingSkills(required, current []string) []string {
	missing := []string{}
	for _, skill := range required {
		lower := strings.ToLower(skill)
		present := false
		for _, have := range current {
			if strings.Contains(lower, have) || strings.Contains(have, lower) {
				present = true
				break
			}
		}
		if !present {
			missing = append(missing, skill)
		}
	}
	return missing
}

type generatedRoadmap struct {
	Plan []models.PlanItem `json:"plan" validate:"min=1,dive"`
}

func roadmapPrompt(role string, missing []string) string {
	return fmt.Sprintf(`Act as a senior technical mentor. Create a learning roadmap for a '%s' who is missing these skills: %s.

For EACH missing skill, provide a structured plan in strict JSON format.
The output must be a JSON object with a key "plan" containing a list of objects.

Format:
{
    "plan": [
        {
            "skill": "Skill Name",
            "roadmap": {
                "topics": ["Topic 1", "Topic 2", "Topic 3"],
                "miniProject": "Description of a practical project",
                "duration": "Time to learn (e.g. 2 weeks)",
                "certification": "Recommended certification or 'None'"
            }
        }
    ]
}

Do not include any text outside the JSON.`, role, strings.Join(missing, ", "))
}

func (s *Service) generatedPlan(ctx context.Context, role string, missing []string) ([]models.PlanItem, error) {
	text, err := s.gen.Generate(ctx, roadmapPrompt(role, missing), llm.Options{
		Model:       s.model,
		JSON:        true,
		Temperature: llm.Temperature(0.3),
		Timeout:     45 * time.Second,
		Site:        "roadmap",
	})
	if err != nil {
		return nil, err
	}
	out, err := llm.DecodeStrict[generatedRoadmap](text)
	if err != nil {
		return nil, err
	}
	for i := range out.Plan {
		out.Plan[i].Completed = false
	}
	return out.Plan, nil
}
