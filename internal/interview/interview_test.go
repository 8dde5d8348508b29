package interview

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/seeding"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memRecorder struct {
	mu   sync.Mutex
	recs []models.InterviewRecord
}

func (r *memRecorder) InsertInterview(_ context.Context, rec models.InterviewRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.recs = append(r.recs, rec)
	return nil
}

func TestResolveRole(t *testing.T) {
	cases := map[string]string{
		"Python":             "python",
		"HR":                 "hr",
		"Frontend Developer": "developer",
		"senior backend eng": "backend",
		"PostgreSQL admin":   "sql",
		"chef":               "developer",
		"":                   "developer",
	}
	for in, want := range cases {
		assert.Equal(t, want, ResolveRole(in), in)
	}
}

func TestScore(t *testing.T) {
	kw := []string{"http", "get", "post", "client", "server"}
	assert.Equal(t, 10, Score(kw, "A CLIENT sends HTTP GET to a server"))
	assert.Equal(t, 6, Score(kw, "uses http and post"))
	assert.Equal(t, 3, Score(kw, "no idea"))
	assert.Equal(t, 3, Score(nil, "anything"))
}

func TestSessionRunsToCompletion(t *testing.T) {
	rec := &memRecorder{}
	m := NewManager(rec, time.Hour, zap.NewNop())

	st := m.Start("developer", "a@b.c")
	assert.Equal(t, "Explain REST API.", st.Question)
	assert.Equal(t, "developer", st.Role)
	require.NotEmpty(t, st.SessionID)

	ctx := context.Background()
	r1, err := m.Answer(ctx, st.SessionID, "client server http get post")
	require.NoError(t, err)
	assert.Equal(t, 10, r1.Score)
	require.NotNil(t, r1.NextQuestion)
	assert.Equal(t, "What is the difference between TCP and UDP?", *r1.NextQuestion)
	assert.False(t, r1.Finished)

	r2, err := m.Answer(ctx, st.SessionID, "reliable connection")
	require.NoError(t, err)
	assert.Equal(t, 6, r2.Score)

	r3, err := m.Answer(ctx, st.SessionID, "dunno")
	require.NoError(t, err)
	assert.Equal(t, 3, r3.Score)
	assert.True(t, r3.Finished)
	assert.Nil(t, r3.NextQuestion)
	assert.Equal(t, 19, r3.TotalScore)

	require.Len(t, rec.recs, 1)
	assert.Equal(t, []int{10, 6, 3}, rec.recs[0].Scores)
	assert.Equal(t, 19, rec.recs[0].TotalScore)
	assert.Equal(t, "a@b.c", rec.recs[0].Email)

	_, err = m.Answer(ctx, st.SessionID, "again")
	assert.ErrorIs(t, err, ErrNotStarted)
	assert.Zero(t, m.Len())
}

func TestAnswerUnknownSession(t *testing.T) {
	m := NewManager(&memRecorder{}, time.Hour, zap.NewNop())
	_, err := m.Answer(context.Background(), "nope", "x")
	assert.ErrorIs(t, err, ErrNotStarted)
}

func TestSessionsAreIsolated(t *testing.T) {
	m := NewManager(&memRecorder{}, time.Hour, zap.NewNop())
	a := m.Start("python", "")
	b := m.Start("sql", "")

	ra, err := m.Answer(context.Background(), a.SessionID, "mutable immutable")
	require.NoError(t, err)
	assert.Equal(t, "What is a decorator?", *ra.NextQuestion)

	rb, err := m.Answer(context.Background(), b.SessionID, "")
	require.NoError(t, err)
	assert.Equal(t, "Explain ACID properties.", *rb.NextQuestion)
	assert.Equal(t, 3, rb.TotalScore)
}

func TestConcurrentAnswersPersistOnce(t *testing.T) {
	rec := &memRecorder{}
	m := NewManager(rec, time.Hour, zap.NewNop())
	st := m.Start("hr", "")

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = m.Answer(context.Background(), st.SessionID, "team")
		}()
	}
	wg.Wait()
	assert.Len(t, rec.recs, 1)
}

func TestSweepExpiresIdleSessions(t *testing.T) {
	m := NewManager(&memRecorder{}, time.Minute, zap.NewNop())
	now := time.Now()
	m.now = func() time.Time { return now }

	old := m.Start("developer", "")
	now = now.Add(2 * time.Minute)
	fresh := m.Start("developer", "")

	assert.Equal(t, 1, m.Sweep())
	assert.Equal(t, 1, m.Len())

	_, err := m.Answer(context.Background(), old.SessionID, "x")
	assert.ErrorIs(t, err, ErrNotStarted)
	_, err = m.Answer(context.Background(), fresh.SessionID, "x")
	assert.NoError(t, err)
}

func TestScheduleRegistersSweep(t *testing.T) {
	c := cron.New()
	m := NewManager(&memRecorder{}, time.Minute, zap.NewNop())
	require.NoError(t, m.Schedule(c))
	assert.Len(t, c.Entries(), 1)
}

type genFunc func(ctx context.Context, prompt string, opts llm.Options) (string, error)

func (f genFunc) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return f(ctx, prompt, opts)
}

type fakeSmartStore struct {
	q   *models.SmartQuestion
	err error
}

func (f fakeSmartStore) SampleSmartQuestion(context.Context, string, string) (*models.SmartQuestion, error) {
	return f.q, f.err
}

type recordingSeeder struct{ pairs []string }

func (r *recordingSeeder) SeedSmart(role, difficulty string) (*seeding.Job, bool) {
	r.pairs = append(r.pairs, role+"|"+difficulty)
	return nil, false
}

func TestSmartStartUsesStoredQuestion(t *testing.T) {
	seeder := &recordingSeeder{}
	gen := genFunc(func(context.Context, string, llm.Options) (string, error) {
		t.Fatal("generator should not be called")
		return "", nil
	})
	svc := NewSmartService(fakeSmartStore{q: &models.SmartQuestion{Question: "What is a goroutine?"}}, seeder, gen, "llama3.2:1b", zap.NewNop())

	assert.Equal(t, "What is a goroutine?", svc.Start(context.Background(), "", ""))
	assert.Equal(t, []string{"Frontend Developer|Easy"}, seeder.pairs)
}

func TestSmartFallbacks(t *testing.T) {
	empty := fakeSmartStore{err: storage.ErrNotFound}
	down := genFunc(func(context.Context, string, llm.Options) (string, error) {
		return "", llm.ErrUnavailable
	})
	svc := NewSmartService(empty, &recordingSeeder{}, down, "m", zap.NewNop())

	assert.Equal(t, StartFallback, svc.Start(context.Background(), "Go Dev", "Hard"))
	assert.Equal(t, NextFallback, svc.Next(context.Background(), "Go Dev", "Hard"))
	assert.Equal(t, EvaluateFallback, svc.Evaluate(context.Background(), "q", "a"))
}

func TestSmartGeneratesWhenStoreEmpty(t *testing.T) {
	var seen llm.Options
	gen := genFunc(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
		seen = opts
		assert.Contains(t, prompt, "Data Engineer (Medium)")
		return "How would you partition a fact table?", nil
	})
	svc := NewSmartService(fakeSmartStore{err: errors.New("db down")}, &recordingSeeder{}, gen, "llama3.2:1b", zap.NewNop())

	assert.Equal(t, "How would you partition a fact table?", svc.Next(context.Background(), "Data Engineer", "Medium"))
	assert.Equal(t, "llama3.2:1b", seen.Model)
	assert.Equal(t, 150, seen.NumPredict)
}

func TestEvaluateReturnsRawText(t *testing.T) {
	gen := genFunc(func(_ context.Context, prompt string, opts llm.Options) (string, error) {
		assert.Contains(t, prompt, "Q: What is REST?")
		assert.Contains(t, prompt, "A: an API style")
		assert.Equal(t, 400, opts.NumPredict)
		return "Logic: ok\nGrammar: fine", nil
	})
	svc := NewSmartService(fakeSmartStore{}, &recordingSeeder{}, gen, "m", zap.NewNop())
	assert.Equal(t, "Logic: ok\nGrammar: fine", svc.Evaluate(context.Background(), "What is REST?", "an API style"))
}
