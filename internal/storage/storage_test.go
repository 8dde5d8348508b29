package storage

import (
	"context"
	"testing"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	dsn := "file:" + uuid.NewString() + "?mode=memory&cache=shared"
	s, err := OpenSQLite(context.Background(), dsn, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestCreateUserRejectsDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash", CreatedAt: time.Now()}
	require.NoError(t, s.CreateUser(ctx, u))
	assert.NotEmpty(t, u.ID)

	err := s.CreateUser(ctx, &models.User{Name: "Other", Email: "ada@example.com", PasswordHash: "x"})
	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestClosedStoreReportsUnavailable(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	require.NoError(t, s.Close(ctx))

	err := s.CreateUser(ctx, &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, ErrUnavailable)

	_, err = s.GetUserByEmail(ctx, "ada@example.com")
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestGetUserRoundTripKeepsPasswordHash(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, u))

	got, err := s.GetUserByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)
	assert.Equal(t, "hash", got.PasswordHash)
	assert.Empty(t, got.Profile)

	_, err = s.GetUserByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateProfileReplacesMap(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u := &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "hash"}
	require.NoError(t, s.CreateUser(ctx, u))

	require.NoError(t, s.UpdateProfile(ctx, u.ID, map[string]any{"headline": "Backend engineer", "years": 4}))
	got, err := s.GetUserByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Backend engineer", got.Profile["headline"])
	assert.EqualValues(t, 4, got.Profile["years"])
	assert.Equal(t, "hash", got.PasswordHash)

	assert.ErrorIs(t, s.UpdateProfile(ctx, "missing", map[string]any{}), ErrNotFound)
}

func TestSampleRoleQuestionsHonoursExclusions(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, text := range []string{"q1", "q2", "q3"} {
		require.NoError(t, s.InsertRoleQuestion(ctx, models.RoleQuestion{
			Role: "backend",
			MCQ:  models.MCQ{Question: text, Answer: "a", Options: []string{"a", "b"}},
			Date: time.Now(),
		}))
	}
	require.NoError(t, s.InsertRoleQuestion(ctx, models.RoleQuestion{
		Role: "frontend",
		MCQ:  models.MCQ{Question: "other", Answer: "a", Options: []string{"a", "b"}},
	}))

	n, err := s.CountRoleQuestions(ctx, "backend")
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	exists, err := s.RoleQuestionExists(ctx, "backend", "q2")
	require.NoError(t, err)
	assert.True(t, exists)

	got, err := s.SampleRoleQuestions(ctx, "backend", []string{"q1", "q3"}, 5)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "q2", got[0].Question)
	assert.Equal(t, []string{"a", "b"}, got[0].Options)

	got, err = s.SampleRoleQuestions(ctx, "backend", nil, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestUpsertSmartQuestionByText(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	q := models.SmartQuestion{Role: "Frontend Developer", Difficulty: "Easy", Question: "What is a closure?", Date: time.Now()}
	inserted, err := s.UpsertSmartQuestion(ctx, q)
	require.NoError(t, err)
	assert.True(t, inserted)

	q.Difficulty = "Hard"
	inserted, err = s.UpsertSmartQuestion(ctx, q)
	require.NoError(t, err)
	assert.False(t, inserted)

	n, err := s.CountSmartQuestions(ctx, "Frontend Developer", "Hard")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	_, err = s.SampleSmartQuestion(ctx, "Frontend Developer", "Easy")
	assert.ErrorIs(t, err, ErrNotFound)

	got, err := s.SampleSmartQuestion(ctx, "Frontend Developer", "Hard")
	require.NoError(t, err)
	assert.Equal(t, "What is a closure?", got.Question)
}

func TestSkillGapUpsertLatestAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	require.NoError(t, s.UpsertSkillGap(ctx, models.SkillGapRecord{
		Email: "a@b.com", Role: "DevOps", UpdatedAt: base,
		Result: models.SkillGapResult{Role: "DevOps", MissingSkills: []string{"Docker"}},
	}))
	require.NoError(t, s.UpsertSkillGap(ctx, models.SkillGapRecord{
		Email: "a@b.com", Role: "Analyst", UpdatedAt: base.Add(time.Minute),
		Result: models.SkillGapResult{Role: "Analyst", MissingSkills: []string{"SQL"}},
	}))
	// 같은 (email, role)은 덮어쓰기
	require.NoError(t, s.UpsertSkillGap(ctx, models.SkillGapRecord{
		Email: "a@b.com", Role: "DevOps", UpdatedAt: base.Add(2 * time.Minute),
		Result: models.SkillGapResult{Role: "DevOps", MissingSkills: []string{"Kubernetes"}},
	}))

	latest, err := s.LatestSkillGap(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"Kubernetes"}, latest.Result.MissingSkills)

	deleted, err := s.DeleteSkillGaps(ctx, "a@b.com")
	require.NoError(t, err)
	assert.EqualValues(t, 2, deleted)

	_, err = s.LatestSkillGap(ctx, "a@b.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminIntrospection(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, s.CreateUser(ctx, &models.User{Name: "Ada", Email: "ada@example.com", PasswordHash: "secret"}))
	require.NoError(t, s.InsertInterview(ctx, models.InterviewRecord{Role: "sql", Scores: []int{3}, TotalScore: 3, Date: base}))
	require.NoError(t, s.InsertInterview(ctx, models.InterviewRecord{Role: "hr", Scores: []int{10}, TotalScore: 10, Date: base.Add(time.Hour)}))

	names, err := s.ListCollections(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{CollInterviews, CollUsers}, names)

	docs, err := s.LatestDocuments(ctx, CollInterviews, 50)
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "hr", docs[0]["role"])
	assert.NotEmpty(t, docs[0]["_id"])

	users, err := s.LatestDocuments(ctx, CollUsers, 50)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.NotContains(t, users[0], "password")
}
