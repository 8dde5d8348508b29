package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestLoadTestdata(t *testing.T) {
	tables := Load("testdata", zap.NewNop())

	require.Len(t, tables.Skills, 3)
	assert.Equal(t, []string{"Critical Thinking", "Programming", "Reading Comprehension"}, tables.SkillNames())
	assert.InDelta(t, 3.5, tables.Skills[2].Importance, 1e-9)

	assert.Equal(t, []string{
		"Computer and Information Systems Managers",
		"Data Scientists",
		"Software Developers",
		"Web Developers",
	}, tables.Titles())

	assert.Equal(t, []string{"Python", "Git", "Docker"}, tables.TechSkillsFor("15-1252.00", 20))
	assert.Equal(t, []string{"Python"}, tables.TechSkillsFor("15-1252.00", 1))
	assert.Empty(t, tables.TechSkillsFor("00-0000.00", 20))
}

func TestOccupationLookups(t *testing.T) {
	tables := Load("testdata", zap.NewNop())

	occ, ok := tables.OccupationByTitle("Data Scientists")
	require.True(t, ok)
	assert.Equal(t, "15-2051.00", occ.Code)

	_, ok = tables.OccupationByTitle("data scientists")
	assert.False(t, ok)

	occ, ok = tables.OccupationContaining("developer")
	require.True(t, ok)
	assert.Equal(t, "Software Developers", occ.Title)

	_, ok = tables.OccupationContaining("sommelier")
	assert.False(t, ok)
}

func TestLoadMissingDirectoryYieldsEmptyTables(t *testing.T) {
	tables := Load(t.TempDir(), zap.NewNop())
	assert.Empty(t, tables.Skills)
	assert.Empty(t, tables.Titles())
	_, ok := tables.OccupationContaining("developer")
	assert.False(t, ok)
}
