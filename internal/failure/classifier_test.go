package failure

import (
	"context"
	"testing"

	"github.com/depu2006/CareerGenomeai/internal/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		story, wantType, wantDiagnosis, wantSentiment string
	}{
		{"I froze during the coding round and panicked", "Interview", "Performance Anxiety / Nerves", "Neutral"},
		{"The whiteboard algorithm question destroyed me", "Interview", "Technical Proficiency Gap", "Neutral"},
		{"The interview went badly, I rambled a lot", "Interview", "Communication / Behavioral Gap", "Neutral"},
		{"My cv is too short and nobody reads it", "Resume", "Lack of Resume Depth", "Neutral"},
		{"I submitted fifty applications this month", "Resume", "Resume Optimization Issue", "Neutral"},
		{"Got ghosted by every company, I hate this", "Market", "Low Response Rate / Market Fit", "Negative"},
		{"They want more skills than I have, I hope to improve", "Skill Gap", "Perceived Skill or Experience Gap", "Positive"},
		{"Everything went wrong somehow", "General", "General Career Setback", "Neutral"},
	}
	for _, tc := range cases {
		t.Run(tc.story, func(t *testing.T) {
			got, err := Classify(tc.story)
			require.NoError(t, err)
			assert.Equal(t, tc.wantType, got.Type)
			assert.Equal(t, tc.wantDiagnosis, got.Diagnosis)
			assert.Equal(t, tc.wantSentiment, got.Sentiment)
			assert.NotEmpty(t, got.ActionPlan)
		})
	}
}

func TestClassifyGeneralPlan(t *testing.T) {
	got, err := Classify("Everything went wrong somehow")
	require.NoError(t, err)
	assert.Equal(t, []string{"Reflect on your career goals.", "Network with peers in your industry."}, got.ActionPlan)
}

func TestClassifyRejectsShortStory(t *testing.T) {
	_, err := Classify("too short")
	assert.ErrorIs(t, err, ErrStoryTooShort)
}

func TestAnalyzePersistsWithEmail(t *testing.T) {
	store, err := storage.OpenSQLite(context.Background(), "file:"+uuid.NewString()+"?mode=memory&cache=shared", zap.NewNop())
	require.NoError(t, err)
	defer store.Close(context.Background())
	svc := NewService(store, zap.NewNop())
	ctx := context.Background()

	_, err = svc.Analyze(ctx, "", "Everything went wrong somehow")
	require.NoError(t, err)
	_, err = svc.Analyze(ctx, "a@b.com", "I froze during the coding round and panicked")
	require.NoError(t, err)

	docs, err := store.LatestDocuments(ctx, storage.CollFailureStories, 50)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "a@b.com", docs[0]["email"])
}
