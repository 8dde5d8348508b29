package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/depu2006/CareerGenomeai/internal/feeds"
	"github.com/depu2006/CareerGenomeai/internal/refdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tables = &refdata.Tables{
	Occupations: []refdata.Occupation{
		{Code: "15-1252.00", Title: "Software Developers"},
		{Code: "15-2051.00", Title: "Data Scientists"},
	},
	TechSkills: map[string][]string{"15-1252.00": {"Python", "Git", "Node.js"}},
}

type fakeWiki struct {
	query    string
	sections []feeds.Section
	err      error
}

func (f *fakeWiki) SearchPage(_ context.Context, query string) (string, error) {
	f.query = query
	if f.err != nil {
		return "", f.err
	}
	return "Go (programming language)", nil
}

func (f *fakeWiki) Sections(context.Context, string) ([]feeds.Section, error) {
	return f.sections, nil
}

func TestRoles(t *testing.T) {
	assert.Equal(t, []string{"Data Scientists", "Software Developers"}, NewService(tables, &fakeWiki{}).Roles())
}

func TestRole(t *testing.T) {
	svc := NewService(tables, &fakeWiki{})

	info, err := svc.Role(" Software Developers ")
	require.NoError(t, err)
	assert.Equal(t, "Software Developers", info.Role)
	require.Len(t, info.Resources, 3)
	assert.Equal(t, Resource{
		Skill:         "Python",
		Documentation: "https://www.google.com/search?q=Python+official+documentation",
		Video:         "https://www.youtube.com/results?search_query=Python+full+course",
	}, info.Resources[0])

	_, err = svc.Role("software developers")
	assert.ErrorIs(t, err, ErrRoleNotFound)
}

func TestTopic(t *testing.T) {
	wiki := &fakeWiki{sections: []feeds.Section{
		{Line: "History"}, {Line: "Design"}, {Line: "See also"}, {Line: "References"}, {Line: "External links"},
	}}
	info, err := NewService(tables, wiki).Topic(context.Background(), "go")
	require.NoError(t, err)
	assert.Equal(t, "go programming", wiki.query)
	assert.Equal(t, "Go (programming language)", info.Structure.Title)
	assert.Equal(t, []Node{{Title: "History"}, {Title: "Design"}}, info.Structure.Children)
	assert.Equal(t, "https://www.google.com/search?q=go+official+documentation", info.Documentation)
}

func TestTopicLimitsSections(t *testing.T) {
	var sections []feeds.Section
	for i := 0; i < 20; i++ {
		sections = append(sections, feeds.Section{Line: string(rune('A' + i))})
	}
	info, err := NewService(tables, &fakeWiki{sections: sections}).Topic(context.Background(), "go")
	require.NoError(t, err)
	assert.Len(t, info.Structure.Children, 12)
}

func TestTopicErrors(t *testing.T) {
	_, err := NewService(tables, &fakeWiki{}).Topic(context.Background(), " ")
	assert.ErrorIs(t, err, ErrTopicRequired)

	_, err = NewService(tables, &fakeWiki{err: feeds.ErrTopicNotFound}).Topic(context.Background(), "zzz")
	assert.ErrorIs(t, err, ErrTopicNotFound)

	boom := errors.New("boom")
	_, err = NewService(tables, &fakeWiki{err: boom}).Topic(context.Background(), "zzz")
	assert.ErrorIs(t, err, boom)
}
