// Package catalog defines the data model for the agent showcase: the
// partial records produced by each source extractor, the merged agent
// entity the site consumes, and the fixed lookup tables applied during
// reconciliation.
package catalog

// DefaultDeploy is the sentinel deploy target applied when a catalog
// entry carries no deploy field.
const DefaultDeploy = "Local"

// AgentRecord is one entry of the primary agent catalog (Source 1).
// ID is the stable join key for every other source; records are parsed
// once per build and immutable afterward.
type AgentRecord struct {
	ID            string
	Name          string
	Category      string
	Description   string
	Deploy        string
	UsageExamples []string
	Keywords      []string
}

// AgentType classifies a merged agent by whether a subagent
// configuration was found for it.
type AgentType string

// Agent types.
const (
	TypeSubagent   AgentType = "subagent"
	TypeStandalone AgentType = "standalone"
)
