/**
* Name: 			store.go
* Description: 		문서 저장소 추상화 (MongoDB 기본, SQLite 대체)
* Workflow: 		컬렉션 단위 insert/find/upsert/delete/sample 연산 제공
 */

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/models"
)

// 컬렉션 이름
const (
	CollUsers             = "users"
	CollSkillGaps         = "skill_gaps"
	CollInterviews        = "interviews"
	CollRoleQuestions     = "role_questions"
	CollSmartQuestions    = "smart_questions"
	CollAssessmentResults = "assessment_results"
	CollReadinessScans    = "readiness_scans"
	CollFailureStories    = "failure_stories"
	CollGeneratedProjects = "generated_projects"
)

var (
	ErrNotFound    = errors.New("document not found")
	ErrEmailExists = errors.New("email already exists")
	ErrUnavailable = errors.New("store unavailable")
)

type Store interface {
	Ping(ctx context.Context) error
	Close(ctx context.Context) error

	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
	UpdateProfile(ctx context.Context, id string, profile map[string]any) error

	CountRoleQuestions(ctx context.Context, role string) (int64, error)
	RoleQuestionExists(ctx context.Context, role, question string) (bool, error)
	InsertRoleQuestion(ctx context.Context, q models.RoleQuestion) error
	// n개 무작위 추출, exclude에 포함된 문제 텍스트는 제외
	SampleRoleQuestions(ctx context.Context, role string, exclude []string, n int) ([]models.RoleQuestion, error)

	CountSmartQuestions(ctx context.Context, role, difficulty string) (int64, error)
	// 문제 텍스트 기준 upsert, 새로 삽입되면 true
	UpsertSmartQuestion(ctx context.Context, q models.SmartQuestion) (bool, error)
	// 없으면 ErrNotFound
	SampleSmartQuestion(ctx context.Context, role, difficulty string) (*models.SmartQuestion, error)

	UpsertSkillGap(ctx context.Context, rec models.SkillGapRecord) error
	LatestSkillGap(ctx context.Context, email string) (*models.SkillGapRecord, error)
	DeleteSkillGaps(ctx context.Context, email string) (int64, error)

	InsertInterview(ctx context.Context, rec models.InterviewRecord) error

	// assessment_results, readiness_scans 등 부가 컬렉션
	InsertDocument(ctx context.Context, collection string, doc any) error

	ListCollections(ctx context.Context) ([]string, error)
	// date 내림차순, _id와 시간 값은 문자열로 변환
	LatestDocuments(ctx context.Context, collection string, limit int) ([]map[string]any, error)
}

func stringifyTime(v any) any {
	if t, ok := v.(time.Time); ok {
		return t.UTC().Format(time.RFC3339)
	}
	return v
}
