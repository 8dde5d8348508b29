package assistant

import (
	"context"
	"fmt"
	"time"

	"github.com/depu2006/CareerGenomeai/internal/llm"
	"github.com/depu2006/CareerGenomeai/internal/models"
	"github.com/depu2006/CareerGenomeai/internal/storage"

	"go.uber.org/zap"
)

type ProjectRequest struct {
	Role          string
	CurrentSkills string
	MissingSkills string
	Email         string
}

type projectIdeas struct {
	Projects []models.Project `json:"projects" validate:"min=1,dive"`
}

func projectsPrompt(req ProjectRequest) string {
	return fmt.Sprintf(`Generate 3 unique, impressive project ideas for a %s to build their portfolio.
User has these skills: %s.
User wants to learn: %s.

For each project provide:
- Title
- Description (2 sentences)
- Tech Stack (list)
- Difficulty (Beginner/Intermediate/Advanced)

Return ONLY valid JSON in this format:
{
    "projects": [
        {
            "title": "...",
            "description": "...",
            "techStack": ["..."],
            "difficulty": "..."
        }
    ]
}`, req.Role, req.CurrentSkills, req.MissingSkills)
}

func mockProjects(role string) []models.Project {
	return []models.Project{
		{
			Title:       fmt.Sprintf("AI-Powered %s Dashboard", role),
			Description: "Build a dashboard that visualizes data using the requested tech stack.",
			TechStack:   []string{"React", "Python", "MongoDB"},
			Difficulty:  "Intermediate",
		},
		{
			Title:       fmt.Sprintf("Real-time %s Collaboration Tool", role),
			Description: "A tool for teams to collaborate in real-time.",
			TechStack:   []string{"Socket.io", "Node.js", "Redis"},
			Difficulty:  "Advanced",
		},
	}
}

// Projects returns generated portfolio ideas, or two canned ideas when generation fails.
func (s *Service) Projects(ctx context.Context, req ProjectRequest) ([]models.Project, error) {
	projects, err := s.generateProjects(ctx, req)
	if err != nil {
		s.log.Info("project generation failed, using mock projects", zap.String("role", req.Role), zap.Error(err))
		projects = mockProjects(req.Role)
	}

	if req.Email != "" {
		doc := models.GeneratedProjects{Email: req.Email, Role: req.Role, Projects: projects, Date: time.Now().UTC()}
		if err := s.store.InsertDocument(ctx, storage.CollGeneratedProjects, doc); err != nil {
			return projects, err
		}
	}
	return projects, nil
}

func (s *Service) generateProjects(ctx context.Context, req ProjectRequest) ([]models.Project, error) {
	text, err := s.gen.Generate(ctx, projectsPrompt(req), llm.Options{
		Model:      s.model,
		JSON:       true,
		NumPredict: 1000,
		Timeout:    60 * time.Second,
		Site:       "projects",
	})
	if err != nil {
		return nil, err
	}
	ideas, err := llm.DecodeStrict[projectIdeas](text)
	if err != nil {
		return nil, err
	}
	for i := range ideas.Projects {
		if ideas.Projects[i].TechStack == nil {
			ideas.Projects[i].TechStack = []string{}
		}
	}
	return ideas.Projects, nil
}
