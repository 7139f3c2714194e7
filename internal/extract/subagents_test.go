package extract

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

func subagentFile(content string) *fstest.MapFile {
	return &fstest.MapFile{Data: []byte(content)}
}

func TestExtractSubagents(t *testing.T) {
	fsys := fstest.MapFS{
		"mail-sorter.md": subagentFile(`---
name: mail-sorter
model: haiku
tools: Read, Write , Bash
---
# Mail sorter

Triage rules live here.
`),
		"repo-gardener.md": subagentFile(`---
name: repo-gardener
---
No model, no tools.
`),
		"notes.md": subagentFile("Just prose, no frontmatter.\n"),
		"unterminated.md": subagentFile(`---
name: never-closed
`),
	}

	configs, err := ExtractSubagents(fsys)
	require.NoError(t, err)
	require.Len(t, configs, 2)

	sorter := configs["mail-sorter"]
	assert.Equal(t, "haiku", sorter.Model)
	assert.Equal(t, []string{"Read", "Write", "Bash"}, sorter.Tools, "tools are trimmed")

	gardener := configs["repo-gardener"]
	assert.Equal(t, catalog.DefaultModel, gardener.Model, "model defaults to the sentinel")
	assert.Empty(t, gardener.Tools)
	assert.NotNil(t, gardener.Tools)
}

func TestExtractSubagentsLastWriteWins(t *testing.T) {
	// fs.WalkDir visits lexically, so 20-dup.md replaces 10-dup.md wholesale.
	fsys := fstest.MapFS{
		"10-dup.md": subagentFile(`---
name: dup
model: haiku
tools: Read
---
`),
		"20-dup.md": subagentFile(`---
name: dup
model: opus
---
`),
	}

	configs, err := ExtractSubagents(fsys)
	require.NoError(t, err)
	require.Len(t, configs, 1)

	dup := configs["dup"]
	assert.Equal(t, "opus", dup.Model)
	assert.Empty(t, dup.Tools, "overwrite is full replacement, not a field merge")
}

func TestExtractSubagentsReportsSkippedFiles(t *testing.T) {
	var buf bytes.Buffer
	prevLogger := *logging.Default()
	prevLevel := zerolog.GlobalLevel()
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logging.SetDefault(zerolog.New(&buf))
	t.Cleanup(func() {
		logging.SetDefault(prevLogger)
		zerolog.SetGlobalLevel(prevLevel)
	})

	fsys := fstest.MapFS{
		"notes.md": subagentFile("Just prose, no frontmatter.\n"),
		"ok.md": subagentFile(`---
name: ok
---
`),
	}

	_, err := ExtractSubagents(fsys)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "notes.md")
	assert.NotContains(t, buf.String(), "ok.md")
}

func TestExtractSubagentsSkipsNameless(t *testing.T) {
	fsys := fstest.MapFS{
		"anon.md": subagentFile(`---
model: haiku
---
`),
	}

	configs, err := ExtractSubagents(fsys)
	require.NoError(t, err)
	assert.Empty(t, configs)
}
