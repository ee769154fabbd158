package graph

// Adjacency maps a node ID to its ordered, duplicate-free out-neighbors.
// It is directed; callers add both directions for undirected links.
type Adjacency map[string][]string

// AddEdge appends to to from's neighbor list unless already present.
// Self-loops are ignored.
func (a Adjacency) AddEdge(from, to string) {
	if from == to || a.HasEdge(from, to) {
		return
	}
	a[from] = append(a[from], to)
}

// AddUndirected adds from→to and to→from.
func (a Adjacency) AddUndirected(from, to string) {
	a.AddEdge(from, to)
	a.AddEdge(to, from)
}

// HasEdge reports whether from→to exists.
func (a Adjacency) HasEdge(from, to string) bool {
	for _, n := range a[from] {
		if n == to {
			return true
		}
	}
	return false
}

// EdgeCount returns the number of directed edges.
func (a Adjacency) EdgeCount() int {
	n := 0
	for _, ns := range a {
		n += len(ns)
	}
	return n
}

// Undirected returns a copy in which every edge also exists reversed.
// Original neighbor order is kept; reverse edges are appended after it.
func (a Adjacency) Undirected(nodes []string) Adjacency {
	out := make(Adjacency, len(a))
	for _, from := range nodes {
		for _, to := range a[from] {
			out.AddEdge(from, to)
		}
	}
	for _, from := range nodes {
		for _, to := range a[from] {
			out.AddEdge(to, from)
		}
	}
	return out
}

// Clone returns a deep copy.
func (a Adjacency) Clone() Adjacency {
	out := make(Adjacency, len(a))
	for k, v := range a {
		out[k] = append([]string(nil), v...)
	}
	return out
}
