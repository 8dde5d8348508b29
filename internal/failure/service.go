package failure

import (
	"context"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"go.uber.org/zap"
)

type DocumentWriter interface {
	InsertDocument(ctx context.Context, collection string, doc any) error
}

type Service struct {
	store DocumentWriter
	log   *zap.Logger
}

func NewService(store DocumentWriter, log *zap.Logger) *Service {
	return &Service{store: store, log: log}
}

// Analyze classifies the story and, when email is given, stores it in failure_stories.
func (s *Service) Analyze(ctx context.Context, email, story string) (models.FailureResult, error) {
	result, err := Classify(story)
	if err != nil {
		return result, err
	}
	if email == "" {
		return result, nil
	}
	doc := models.FailureStory{Email: email, Story: story, Result: result, Date: time.Now().UTC()}
	if err := s.store.InsertDocument(ctx, storage.CollFailureStories, doc); err != nil {
		return result, err
	}
	return result, nil
}
