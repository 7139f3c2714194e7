package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const projectsFixture = `projects:
  - id: mail-sorter
    title: 메일 자동 분류기
    oneliner: Rule-based mail triage
    in_master: true
    highlights:
      - Cut inbox triage time by 80%
      - Zero-touch scheduling
    기술: [Go, IMAP, Lambda]

  - id: repo-gardener
    title: Repo Gardener
    oneliner: Keeps branches tidy

  - title: Orphan block without an id
    oneliner: Must be skipped
`

func TestExtractProjects(t *testing.T) {
	projects := ExtractProjects(projectsFixture)
	require.Len(t, projects, 2, "block without an id must be skipped")

	sorter, ok := projects["mail-sorter"]
	require.True(t, ok)
	assert.Equal(t, "메일 자동 분류기", sorter.Title)
	assert.Equal(t, "Rule-based mail triage", sorter.Oneliner)
	assert.Equal(t, []string{"Cut inbox triage time by 80%", "Zero-touch scheduling"}, sorter.Highlights)
	assert.Equal(t, []string{"Go", "IMAP", "Lambda"}, sorter.Tags)
	assert.True(t, sorter.Featured)

	gardener, ok := projects["repo-gardener"]
	require.True(t, ok)
	assert.False(t, gardener.Featured)
	assert.Empty(t, gardener.Highlights)
	assert.Empty(t, gardener.Tags)
	assert.NotNil(t, gardener.Highlights)
	assert.NotNil(t, gardener.Tags)
}

func TestExtractProjectsFeaturedIsSubstringTest(t *testing.T) {
	// The source format is informal: the marker counts wherever it
	// appears in the block, not only as a structured field.
	src := `
  - id: oddball
    title: Oddball
    oneliner: marker inside prose in_master: true and onward
`
	projects := ExtractProjects(src)
	require.Contains(t, projects, "oddball")
	assert.True(t, projects["oddball"].Featured)
}

func TestExtractProjectsEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractProjects(""))
}
