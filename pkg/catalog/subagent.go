package catalog

// DefaultModel is the sentinel model name applied when a subagent
// definition carries no model field.
const DefaultModel = "sonnet"

// SubagentConfig is a specialized configuration profile attached to an
// agent, parsed from a Markdown frontmatter file (Source 2). The key is
// the frontmatter `name` field, which by convention matches an
// AgentRecord ID. The join really is name-to-id; see build.Reconcile.
type SubagentConfig struct {
	Name  string
	Model string
	Tools []string
}
