package build

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dooosp/agent-showcase/internal/emit"
	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/errors"
)

func writePipelineFixtures(t *testing.T) Config {
	t.Helper()
	dir := t.TempDir()

	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	catalogPath := write("agents.src.js", `
const AGENTS = [
    {
        id: 'mail-sorter',
        name: 'Mail Sorter',
        category: 'Productivity',
        desc: '메일 분류',
        deploy: 'lambda',
        keywords: ['email', '자동화'],
        usage: ['sort &lt;folder&gt;']
    },
    {
        id: 'repo-gardener',
        name: 'Repo Gardener',
        category: 'DevTools',
        desc: 'Prunes stale branches'
    }
];
`)

	write("subagents/mail-sorter.md", `---
name: mail-sorter
model: haiku
tools: Read, Bash
---
`)

	projectsPath := write("projects.yaml", `projects:
  - id: mail-sorter
    title: Mail Sorter
    oneliner: Rule-based triage
    in_master: true
    highlights:
      - Cut triage time by 80%
    기술: [Go, IMAP]
`)

	translationsPath := write("reference/translations.yaml", "mail-sorter: Rule-based mail triage\n")
	connectionsPath := write("reference/connections.yaml", `connections:
  - from: mail-sorter
    to: [repo-gardener]
`)

	return Config{
		CatalogPath:      catalogPath,
		SubagentsDir:     filepath.Join(dir, "subagents"),
		ProjectsPath:     projectsPath,
		TranslationsPath: translationsPath,
		ConnectionsPath:  connectionsPath,
		OutputDir:        filepath.Join(dir, "out"),
	}
}

func TestPipelineRun(t *testing.T) {
	config := writePipelineFixtures(t)
	pipeline := NewPipeline(config)

	data, err := pipeline.Run(context.Background())
	require.NoError(t, err)
	require.Len(t, data.Agents, 2)

	sorter := data.Agents[0]
	assert.Equal(t, "mail-sorter", sorter.ID)
	assert.Equal(t, catalog.TypeSubagent, sorter.Type)
	assert.Equal(t, "Rule-based mail triage", sorter.Description, "translation overrides the raw description")
	assert.Equal(t, "AWS Lambda", sorter.Deploy)
	assert.Equal(t, []string{"email"}, sorter.Keywords, "non-Latin keyword filtered out")
	assert.Equal(t, []string{"sort <folder>"}, sorter.UsageExamples)
	require.NotNil(t, sorter.Project)
	assert.True(t, sorter.Project.Featured)
	assert.Equal(t, []string{"repo-gardener"}, sorter.Connections)

	gardener := data.Agents[1]
	assert.Equal(t, catalog.TypeStandalone, gardener.Type)
	assert.Equal(t, "Local", gardener.Deploy)
	assert.Equal(t, []string{"mail-sorter"}, gardener.Connections)

	// The written document must round-trip to the in-memory model.
	parsed, err := emit.ReadBack(filepath.Join(config.OutputDir, emit.DataFileName))
	require.NoError(t, err)
	assert.Equal(t, data, parsed)
}

func TestPipelineMissingReferenceIsFatal(t *testing.T) {
	config := writePipelineFixtures(t)
	require.NoError(t, os.Remove(config.ConnectionsPath))
	pipeline := NewPipeline(config)

	_, err := pipeline.Run(context.Background())
	require.Error(t, err)

	var resourceErr *errors.ResourceError
	assert.ErrorAs(t, err, &resourceErr)

	// Fail fast: no partial output.
	_, statErr := os.Stat(config.OutputDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPipelineMissingCatalogIsFatal(t *testing.T) {
	config := writePipelineFixtures(t)
	require.NoError(t, os.Remove(config.CatalogPath))
	pipeline := NewPipeline(config)

	_, err := pipeline.Build(context.Background())
	require.Error(t, err)

	var ioErr *errors.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestSummary(t *testing.T) {
	config := writePipelineFixtures(t)
	data, err := NewPipeline(config).Build(context.Background())
	require.NoError(t, err)

	summary := Summary(data)
	assert.Contains(t, summary, "2 agents")
	assert.Contains(t, summary, "1 subagents")
	assert.Contains(t, summary, "1 projects")
}
