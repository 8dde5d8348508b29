package readiness

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/depu2006/CareerGenomeai/internal/archiver"
	"github.com/depu2006/CareerGenomeai/internal/resume"
	"github.com/depu2006/CareerGenomeai/internal/skillmatch"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSkills []string

func (s staticSkills) SkillNames() []string { return s }

var skills = staticSkills{"Critical Thinking", "Programming", "Reading Comprehension", "Time Management"}

func TestScore(t *testing.T) {
	got := Score(skills, "I love Programming!", "We need strong programming and critical-thinking.")
	assert.Equal(t, []string{"Critical Thinking", "Programming"}, got.RequiredSkills)
	assert.Equal(t, []string{"Programming"}, got.MatchedSkills)
	assert.Equal(t, 2, got.RequiredSkillsCount)
	assert.Equal(t, 1, got.MatchedSkillsCount)
	assert.Equal(t, 50.0, got.ReadinessScore)
	assert.Equal(t, skillmatch.PeerPercentile(50), got.PeerPercentile)
}

func TestScoreNoRequiredSkills(t *testing.T) {
	got := Score(skills, "anything", "Barista wanted")
	assert.Zero(t, got.ReadinessScore)
	assert.Equal(t, []string{}, got.RequiredSkills)
	assert.Equal(t, []string{}, got.MatchedSkills)
}

func TestScoreCapsListsAtFifteen(t *testing.T) {
	many := make(staticSkills, 20)
	var jd strings.Builder
	for i := range many {
		many[i] = "skill" + string(rune('a'+i))
		jd.WriteString(many[i] + " ")
	}
	got := Score(many, jd.String(), jd.String())
	assert.Equal(t, 20, got.RequiredSkillsCount)
	assert.Len(t, got.RequiredSkills, 15)
	assert.Len(t, got.MatchedSkills, 15)
	assert.Equal(t, 100.0, got.ReadinessScore)
}

func newStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	s, err := storage.OpenSQLite(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestAnalyzePersistsAndArchives(t *testing.T) {
	store := newStore(t)
	dir := t.TempDir()
	arch, err := archiver.NewLocalArchiver(dir, zap.NewNop())
	require.NoError(t, err)
	svc := NewService(skills, store, arch, zap.NewNop())
	ctx := context.Background()

	longJD := "programming " + strings.Repeat("x", 600)
	_, err = svc.Analyze(ctx, Request{
		Resume:         Upload{Filename: "cv.txt", ContentType: "text/plain", Data: []byte("programming")},
		JobDescription: longJD,
		Email:          "a@b.com",
	})
	require.NoError(t, err)

	docs, err := store.LatestDocuments(ctx, storage.CollReadinessScans, 50)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Len(t, docs[0]["job_description"], 500)

	key, ok := docs[0]["resume_key"].(string)
	require.True(t, ok)
	data, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(key)))
	require.NoError(t, err)
	assert.Equal(t, "programming", string(data))
}

func TestAnalyzeWithoutEmailStoresNothing(t *testing.T) {
	store := newStore(t)
	svc := NewService(skills, store, nil, zap.NewNop())
	ctx := context.Background()

	got, err := svc.Analyze(ctx, Request{
		Resume:         Upload{Filename: "cv.txt", Data: []byte("programming")},
		JobDescription: "programming",
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, got.ReadinessScore)

	docs, err := store.LatestDocuments(ctx, storage.CollReadinessScans, 50)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestAnalyzeRejectsUnknownFormat(t *testing.T) {
	svc := NewService(skills, newStore(t), nil, zap.NewNop())
	_, err := svc.Analyze(context.Background(), Request{Resume: Upload{Filename: "cv.png", ContentType: "image/png"}})
	assert.ErrorIs(t, err, resume.ErrUnsupported)
}
