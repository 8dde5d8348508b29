package assistant

import (
	"context"
	"testing"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type genFunc func(ctx context.Context, prompt string, opts llm.Options) (string, error)

func (f genFunc) Generate(ctx context.Context, prompt string, opts llm.Options) (string, error) {
	return f(ctx, prompt, opts)
}

func reply(text string, err error) genFunc {
	return func(context.Context, string, llm.Options) (string, error) { return text, err }
}

func newStore(t *testing.T) *storage.SQLiteStore {
	t.Helper()
	s, err := storage.OpenSQLite(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

func TestChat(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	var prompt string
	gen := genFunc(func(_ context.Context, p string, opts llm.Options) (string, error) {
		prompt = p
		assert.Equal(t, 200, opts.NumPredict)
		return "Learn Go.", nil
	})
	assert.Equal(t, "Learn Go.", NewService(gen, store, "phi", zap.NewNop()).Chat(ctx, "What next?"))
	assert.Contains(t, prompt, "User Question:\nWhat next?")

	assert.Equal(t, EmptyMessageReply, NewService(gen, store, "phi", zap.NewNop()).Chat(ctx, "  "))
	assert.Equal(t, OfflineReply, NewService(reply("", llm.ErrUnavailable), store, "phi", zap.NewNop()).Chat(ctx, "hi"))
	assert.Equal(t, "", NewService(reply("", llm.ErrBadStatus), store, "phi", zap.NewNop()).Chat(ctx, "hi"))
}

func TestProjectsGenerated(t *testing.T) {
	store := newStore(t)
	gen := reply(`{"projects":[{"title":"Pipeline","description":"Build a CI pipeline.","techStack":["Go"],"difficulty":"Beginner"},{"title":"Cache","description":"Write a cache."}]}`, nil)
	svc := NewService(gen, store, "phi", zap.NewNop())

	got, err := svc.Projects(context.Background(), ProjectRequest{Role: "DevOps", Email: "a@b.com"})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Pipeline", got[0].Title)
	assert.Equal(t, []string{}, got[1].TechStack)

	docs, err := store.LatestDocuments(context.Background(), storage.CollGeneratedProjects, 50)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "DevOps", docs[0]["role"])
}

func TestProjectsFallBackToMocks(t *testing.T) {
	for name, gen := range map[string]genFunc{
		"unavailable":   reply("", llm.ErrUnavailable),
		"no json":       reply(`Here are some ideas for you.`, nil),
		"empty list":    reply(`{"projects":[]}`, nil),
		"missing title": reply(`{"projects":[{"description":"x"}]}`, nil),
	} {
		t.Run(name, func(t *testing.T) {
			got, err := NewService(gen, newStore(t), "phi", zap.NewNop()).
				Projects(context.Background(), ProjectRequest{Role: "Data Engineer"})
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, "AI-Powered Data Engineer Dashboard", got[0].Title)
			assert.Equal(t, "Real-time Data Engineer Collaboration Tool", got[1].Title)
		})
	}
}
