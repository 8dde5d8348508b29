// Package readiness scores a resume against a job description using the
// reference skill table as the vocabulary of skills.
package readiness

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/depu2006/CareerGenomeai/internal/archiver"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/resume"
	"github.com/depu2006/CareerGenomeai/internal/skillmatch"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"go.uber.org/zap"
)

const (
	listLimit         = 15
	storedJDMaxLength = 500
)

type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Request struct {
	Resume         Upload
	JobDescription string
	Email          string
}

type SkillSource interface {
	SkillNames() []string
}

type DocumentWriter interface {
	InsertDocument(ctx context.Context, collection string, doc any) error
}

type Service struct {
	skills  SkillSource
	store   DocumentWriter
	archive archiver.Archiver
	log     *zap.Logger
}

// archive may be nil.
func NewService(skills SkillSource, store DocumentWriter, archive archiver.Archiver, log *zap.Logger) *Service {
	return &Service{skills: skills, store: store, archive: archive, log: log}
}

func Score(skills []string, resumeText, jobDescription string) models.ReadinessResult {
	jd := skillmatch.CleanText(jobDescription)
	cv := skillmatch.CleanText(resumeText)

	required := skillmatch.Filter(skills, jd)
	matched := skillmatch.Filter(required, cv)
	score := skillmatch.ReadinessScore(len(matched), len(required))

	return models.ReadinessResult{
		ReadinessScore:      score,
		PeerPercentile:      skillmatch.PeerPercentile(score),
		RequiredSkillsCount: len(required),
		MatchedSkillsCount:  len(matched),
		RequiredSkills:      head(required, listLimit),
		MatchedSkills:       head(matched, listLimit),
	}
}

func (s *Service) Analyze(ctx context.Context, req Request) (models.ReadinessResult, error) {
	kind, err := resume.Detect(req.Resume.Filename, req.Resume.ContentType, req.Resume.Data)
	if err != nil {
		return models.ReadinessResult{}, err
	}
	text, err := resume.Extract(kind, req.Resume.Data)
	if err != nil {
		return models.ReadinessResult{}, err
	}

	result := Score(s.skills.SkillNames(), text, req.JobDescription)
	if req.Email == "" {
		return result, nil
	}

	scan := models.ReadinessScan{
		Email:          req.Email,
		JobDescription: truncateRunes(req.JobDescription, storedJDMaxLength),
		Result:         result,
		Date:           time.Now().UTC(),
	}
	if s.archive != nil {
		key := archiver.NewResumeKey(req.Email, req.Resume.Filename, scan.Date)
		if err := s.archive.Put(ctx, key, req.Resume.ContentType, req.Resume.Data); err != nil {
			s.log.Warn("resume archive failed", zap.String("email", req.Email), zap.Error(err))
		} else {
			scan.ResumeKey = key
		}
	}
	if err := s.store.InsertDocument(ctx, storage.CollReadinessScans, scan); err != nil {
		return result, err
	}
	return result, nil
}

func head(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}

func truncateRunes(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
