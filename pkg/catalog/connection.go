package catalog

import "sort"

// ConnectionEdge is one directed entry of the connection reference
// table: From relates to every ID listed in To.
type ConnectionEdge struct {
	From string   `yaml:"from" json:"from"`
	To   []string `yaml:"to" json:"to"`
}

// ConnectionGraph stores undirected agent adjacency as a set per node.
// Edges are directed in the source table but adjacency is symmetric:
// adding From→To also records To→From. Duplicate edges collapse;
// self-loops are kept if the source lists them.
type ConnectionGraph struct {
	adjacency map[string]map[string]struct{}
}

// NewConnectionGraph builds a symmetric graph from a directed edge list.
func NewConnectionGraph(edges []ConnectionEdge) *ConnectionGraph {
	g := &ConnectionGraph{adjacency: make(map[string]map[string]struct{})}
	for _, edge := range edges {
		for _, to := range edge.To {
			g.add(edge.From, to)
			g.add(to, edge.From)
		}
	}
	return g
}

// add records a single directed adjacency, creating the node set if the
// node has not been seen before.
func (g *ConnectionGraph) add(from, to string) {
	set, ok := g.adjacency[from]
	if !ok {
		set = make(map[string]struct{})
		g.adjacency[from] = set
	}
	set[to] = struct{}{}
}

// Neighbors returns the adjacency set for id as a sorted slice. The
// slice is never nil so it serializes as an empty JSON array.
func (g *ConnectionGraph) Neighbors(id string) []string {
	set := g.adjacency[id]
	neighbors := make([]string, 0, len(set))
	for n := range set {
		neighbors = append(neighbors, n)
	}
	sort.Strings(neighbors)
	return neighbors
}

// Nodes returns every node id that appears in the graph, sorted.
func (g *ConnectionGraph) Nodes() []string {
	nodes := make([]string, 0, len(g.adjacency))
	for n := range g.adjacency {
		nodes = append(nodes, n)
	}
	sort.Strings(nodes)
	return nodes
}
