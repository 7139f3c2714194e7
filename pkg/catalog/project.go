package catalog

// ProjectHighlight is a portfolio entry from the project catalog
// (Source 3), keyed by an ID matching an AgentRecord ID. Featured marks
// entries carrying the in_master promotion marker.
type ProjectHighlight struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	Oneliner   string   `json:"oneliner"`
	Highlights []string `json:"highlights"`
	Tags       []string `json:"tags"`
	Featured   bool     `json:"featured"`
}
