package build

import (
	"context"
	"fmt"
	"os"

	"github.com/dooosp/agent-showcase/internal/emit"
	"github.com/dooosp/agent-showcase/internal/extract"
	"github.com/dooosp/agent-showcase/internal/refdata"
	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/errors"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

// Config names every input and output of one build invocation.
type Config struct {
	// CatalogPath is the JS object-literal agent catalog (Source 1).
	CatalogPath string

	// SubagentsDir holds the Markdown subagent definitions (Source 2).
	SubagentsDir string

	// ProjectsPath is the YAML project catalog (Source 3).
	ProjectsPath string

	// TranslationsPath and ConnectionsPath are the reference tables.
	TranslationsPath string
	ConnectionsPath  string

	// OutputDir receives agents.json and agents.js.
	OutputDir string
}

// Pipeline runs the extract → reconcile → emit pass. The whole build is
// one synchronous pass; the extractors are independent of each other
// and only the subagent directory's own enumeration order matters.
type Pipeline struct {
	config Config
}

// NewPipeline creates a pipeline for the given configuration.
func NewPipeline(config Config) *Pipeline {
	return &Pipeline{config: config}
}

// Build reads all inputs and produces the merged model without writing
// anything. Reference data failures abort; extractor-level problems
// only shrink the record sets.
func (p *Pipeline) Build(ctx context.Context) (*catalog.SiteData, error) {
	log := logging.Ctx(ctx)

	catalogSrc, err := os.ReadFile(p.config.CatalogPath)
	if err != nil {
		return nil, errors.WrapIO("read", p.config.CatalogPath, err)
	}
	agents := extract.ExtractAgents(string(catalogSrc))
	log.Debug().Int("agents", len(agents)).Str("path", p.config.CatalogPath).Msg("Extracted agent catalog")

	subagents, err := extract.ExtractSubagents(os.DirFS(p.config.SubagentsDir))
	if err != nil {
		return nil, err
	}
	log.Debug().Int("subagents", len(subagents)).Str("dir", p.config.SubagentsDir).Msg("Extracted subagent definitions")

	projectsSrc, err := os.ReadFile(p.config.ProjectsPath)
	if err != nil {
		return nil, errors.WrapIO("read", p.config.ProjectsPath, err)
	}
	projects := extract.ExtractProjects(string(projectsSrc))
	log.Debug().Int("projects", len(projects)).Str("path", p.config.ProjectsPath).Msg("Extracted project catalog")

	refs, err := refdata.Load(p.config.TranslationsPath, p.config.ConnectionsPath)
	if err != nil {
		return nil, err
	}

	return Reconcile(agents, subagents, projects, refs), nil
}

// Run executes the full pipeline: build the model, write both
// artifacts, and print the one-line summary to stdout.
func (p *Pipeline) Run(ctx context.Context) (*catalog.SiteData, error) {
	data, err := p.Build(ctx)
	if err != nil {
		return nil, err
	}

	if err := emit.Write(p.config.OutputDir, data); err != nil {
		return nil, err
	}

	logging.Ctx(ctx).Info().
		Str("output_dir", p.config.OutputDir).
		Int("agents", data.Meta.Counts.Agents).
		Msg("Build complete")

	fmt.Println(Summary(data))
	return data, nil
}

// Summary renders the human-readable one-line build report. It is not
// part of the data contract.
func Summary(data *catalog.SiteData) string {
	c := data.Meta.Counts
	return fmt.Sprintf("Built %d agents (%d subagents, %d projects) across %d categories and %d deploy targets",
		c.Agents, c.Subagents, c.Projects, c.Categories, c.DeployTargets)
}
