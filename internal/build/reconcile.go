// Package build joins the extracted partial records with the reference
// tables into the final site model, and orchestrates the whole pipeline
// from source files to emitted artifacts.
package build

import (
	"sort"
	"time"

	"github.com/dooosp/agent-showcase/internal/refdata"
	"github.com/dooosp/agent-showcase/pkg/catalog"
	"github.com/dooosp/agent-showcase/pkg/logging"
)

// Reconcile merges the three extractor outputs and the reference tables
// into one normalized model in a single pass.
//
// The subagent join is deliberately asymmetric: Source 2 keys records by
// frontmatter name while the catalog keys by id, and by convention these
// match, so the agent's id is looked up as a name. Do not "fix" this to
// a common key; it is how the sources are written.
func Reconcile(
	agents []catalog.AgentRecord,
	subagents map[string]catalog.SubagentConfig,
	projects map[string]catalog.ProjectHighlight,
	refs *refdata.Set,
) *catalog.SiteData {
	agents = dedupeAgents(agents)
	graph := catalog.NewConnectionGraph(refs.Connections)
	reportDanglingEdges(graph, agents)

	merged := make([]catalog.MergedAgent, 0, len(agents))
	subagentCount := 0
	projectCount := 0

	for _, agent := range agents {
		m := catalog.MergedAgent{
			ID:            agent.ID,
			Name:          agent.Name,
			Category:      agent.Category,
			CategoryIcon:  catalog.CategoryIcon(agent.Category),
			Description:   agent.Description,
			Deploy:        catalog.NormalizeDeploy(agent.Deploy),
			Type:          catalog.TypeStandalone,
			UsageExamples: agent.UsageExamples,
			Keywords:      catalog.FilterLatinKeywords(agent.Keywords),
			Connections:   graph.Neighbors(agent.ID),
		}

		if translated, ok := refs.Translations[agent.ID]; ok {
			m.Description = translated
		}

		// Cross-field join: the agent id doubles as the subagent name.
		if config, ok := subagents[agent.ID]; ok {
			m.Type = catalog.TypeSubagent
			m.Model = config.Model
			// Leave Tools nil when empty so omitempty keeps the JSON
			// round-trip exact.
			if len(config.Tools) > 0 {
				m.Tools = config.Tools
			}
			subagentCount++
		}

		if project, ok := projects[agent.ID]; ok {
			m.Project = &project
			projectCount++
		}

		merged = append(merged, m)
	}

	categories, deployTargets := aggregates(merged)

	return &catalog.SiteData{
		Meta: catalog.Meta{
			GeneratedAt: time.Now().UTC().Format(time.RFC3339),
			Counts: catalog.Counts{
				Agents:        len(merged),
				Subagents:     subagentCount,
				Projects:      projectCount,
				Categories:    len(categories),
				DeployTargets: len(deployTargets),
			},
		},
		Categories:    categories,
		DeployTargets: deployTargets,
		Agents:        merged,
	}
}

// dedupeAgents collapses duplicate catalog ids, keeping the last-parsed
// record at the first-seen position. Duplicate ids are an upstream data
// defect, so each one is reported.
func dedupeAgents(agents []catalog.AgentRecord) []catalog.AgentRecord {
	deduped := make([]catalog.AgentRecord, 0, len(agents))
	index := make(map[string]int, len(agents))

	for _, agent := range agents {
		if at, seen := index[agent.ID]; seen {
			logging.Warn().
				Str("id", agent.ID).
				Msg("Duplicate agent id in catalog source; last definition wins")
			deduped[at] = agent
			continue
		}
		index[agent.ID] = len(deduped)
		deduped = append(deduped, agent)
	}

	return deduped
}

// reportDanglingEdges logs connection endpoints that name no known
// agent. They are kept in the adjacency (consumers simply never render
// them as nodes), but they usually indicate a typo in the edge list.
func reportDanglingEdges(graph *catalog.ConnectionGraph, agents []catalog.AgentRecord) {
	known := make(map[string]struct{}, len(agents))
	for _, agent := range agents {
		known[agent.ID] = struct{}{}
	}

	for _, node := range graph.Nodes() {
		if _, ok := known[node]; !ok {
			logging.Debug().
				Str("id", node).
				Msg("Connection references an id not present in the agent catalog")
		}
	}
}

// aggregates recomputes the category list and deploy-target set from a
// merged agent list. Categories appear in first-seen order; deploy
// targets are sorted and distinct. Running this on an already-built
// SiteData.Agents must reproduce the stored aggregates exactly.
func aggregates(agents []catalog.MergedAgent) ([]catalog.Category, []string) {
	categories := []catalog.Category{}
	categoryIndex := make(map[string]int)
	deploySet := make(map[string]struct{})

	for _, agent := range agents {
		id := catalog.CategoryID(agent.Category)
		if at, ok := categoryIndex[id]; ok {
			categories[at].Count++
		} else {
			categoryIndex[id] = len(categories)
			categories = append(categories, catalog.Category{
				ID:    id,
				Name:  catalog.CategoryName(id),
				Icon:  catalog.CategoryIcon(agent.Category),
				Count: 1,
			})
		}
		deploySet[agent.Deploy] = struct{}{}
	}

	deployTargets := make([]string, 0, len(deploySet))
	for deploy := range deploySet {
		deployTargets = append(deployTargets, deploy)
	}
	sort.Strings(deployTargets)

	return categories, deployTargets
}
