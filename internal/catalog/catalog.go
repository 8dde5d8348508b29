// Package catalog answers occupation and learning-topic lookups from the
// reference tables and the public encyclopedia.
package catalog

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/depu2006/CareerGenomeai/internal/feeds"
	"github.com/depu2006/CareerGenomeai/internal/refdata"
)

const (
	resourceLimit = 15
	sectionLimit  = 12
)

var (
	ErrRoleNotFound  = errors.New("role not found")
	ErrTopicRequired = errors.New("topic required")
	ErrTopicNotFound = errors.New("topic not found")
)

var skippedSections = map[string]bool{
	"references":     true,
	"external links": true,
	"see also":       true,
}

type Occupations interface {
	Titles() []string
	OccupationByTitle(title string) (refdata.Occupation, bool)
	TechSkillsFor(code string, limit int) []string
}

type Encyclopedia interface {
	SearchPage(ctx context.Context, query string) (string, error)
	Sections(ctx context.Context, page string) ([]feeds.Section, error)
}

type Resource struct {
	Skill         string `json:"skill"`
	Documentation string `json:"documentation"`
	Video         string `json:"video"`
}

type RoleInfo struct {
	Role      string     `json:"role"`
	Resources []Resource `json:"resources"`
}

type Node struct {
	Title string `json:"title"`
}

type Structure struct {
	Title    string `json:"title"`
	Children []Node `json:"children"`
}

type TopicInfo struct {
	Topic         string    `json:"topic"`
	Documentation string    `json:"documentation"`
	Video         string    `json:"video"`
	Structure     Structure `json:"structure"`
}

type Service struct {
	ref  Occupations
	wiki Encyclopedia
}

func NewService(ref Occupations, wiki Encyclopedia) *Service {
	return &Service{ref: ref, wiki: wiki}
}

func (s *Service) Roles() []string {
	return s.ref.Titles()
}

// Role matches the title exactly; there is no fuzzy lookup here.
func (s *Service) Role(role string) (RoleInfo, error) {
	role = strings.TrimSpace(role)
	occ, ok := s.ref.OccupationByTitle(role)
	if !ok {
		return RoleInfo{}, ErrRoleNotFound
	}
	skills := s.ref.TechSkillsFor(occ.Code, resourceLimit)
	resources := make([]Resource, 0, len(skills))
	for _, skill := range skills {
		resources = append(resources, Resource{
			Skill:         skill,
			Documentation: docsURL(skill),
			Video:         videoURL(skill),
		})
	}
	return RoleInfo{Role: role, Resources: resources}, nil
}

func (s *Service) Topic(ctx context.Context, topic string) (TopicInfo, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return TopicInfo{}, ErrTopicRequired
	}

	page, err := s.wiki.SearchPage(ctx, topic+" programming")
	if err != nil {
		if errors.Is(err, feeds.ErrTopicNotFound) {
			return TopicInfo{}, ErrTopicNotFound
		}
		return TopicInfo{}, err
	}
	sections, err := s.wiki.Sections(ctx, page)
	if err != nil {
		return TopicInfo{}, err
	}

	if len(sections) > sectionLimit {
		sections = sections[:sectionLimit]
	}
	children := []Node{}
	for _, sec := range sections {
		if skippedSections[strings.ToLower(sec.Line)] {
			continue
		}
		children = append(children, Node{Title: sec.Line})
	}

	return TopicInfo{
		Topic:         topic,
		Documentation: docsURL(topic),
		Video:         videoURL(topic),
		Structure:     Structure{Title: page, Children: children},
	}, nil
}

// 공백은 +로 인코딩
func docsURL(term string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(term) + "+official+documentation"
}

func videoURL(term string) string {
	return "https://www.youtube.com/results?search_query=" + url.QueryEscape(term) + "+full+course"
}
