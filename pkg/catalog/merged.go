package catalog

// MergedAgent is the fully reconciled agent entity consumed by the site.
// It joins an AgentRecord with its optional subagent configuration and
// portfolio project, plus the derived fields computed during the merge.
// The JSON field set below is the complete stable contract for the
// rendering layer.
type MergedAgent struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Category      string            `json:"category"`
	CategoryIcon  string            `json:"categoryIcon"`
	Description   string            `json:"description"`
	Deploy        string            `json:"deploy"`
	Type          AgentType         `json:"type"`
	Model         string            `json:"model,omitempty"`
	Tools         []string          `json:"tools,omitempty"`
	UsageExamples []string          `json:"usageExamples"`
	Keywords      []string          `json:"keywords"`
	Project       *ProjectHighlight `json:"project"`
	Connections   []string          `json:"connections"`
}

// Category is one aggregate entry per distinct category present among
// the merged agents.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Count int    `json:"count"`
}

// Counts summarizes the build for the meta block.
type Counts struct {
	Agents        int `json:"agents"`
	Subagents     int `json:"subagents"`
	Projects      int `json:"projects"`
	Categories    int `json:"categories"`
	DeployTargets int `json:"deployTargets"`
}

// Meta carries build metadata alongside the data itself.
type Meta struct {
	GeneratedAt string `json:"generatedAt"`
	Counts      Counts `json:"counts"`
}

// SiteData is the complete merged model written by the emitter and
// loaded by the site. Regenerating Categories and DeployTargets from
// Agents must reproduce them exactly.
type SiteData struct {
	Meta          Meta          `json:"meta"`
	Categories    []Category    `json:"categories"`
	DeployTargets []string      `json:"deployTargets"`
	Agents        []MergedAgent `json:"agents"`
}
