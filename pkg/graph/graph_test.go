package graph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// line builds a-b-c-d as an undirected chain.
func line() Adjacency {
	adj := Adjacency{}
	adj.AddUndirected("a", "b")
	adj.AddUndirected("b", "c")
	adj.AddUndirected("c", "d")
	return adj
}

func TestAddEdgeDeduplicates(t *testing.T) {
	adj := Adjacency{}
	adj.AddEdge("a", "b")
	adj.AddEdge("a", "b")
	adj.AddEdge("a", "a")
	assert.Equal(t, []string{"b"}, adj["a"])
	assert.Equal(t, 1, adj.EdgeCount())
	assert.False(t, adj.HasEdge("b", "a"))
}

func TestShortestPaths(t *testing.T) {
	dist := ShortestPaths("a", line())
	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2, "d": 3}, dist)
}

func TestShortestPathsUnreachableAbsent(t *testing.T) {
	adj := Adjacency{}
	adj.AddEdge("a", "b")
	dist := ShortestPaths("b", adj)
	_, ok := dist["a"]
	assert.False(t, ok, "directed edge must not be walked backwards")
	assert.Equal(t, 0, dist["b"])
}

func TestReachable(t *testing.T) {
	adj := line()
	assert.True(t, Reachable("a", "d", adj))
	assert.True(t, Reachable("d", "d", adj))
	assert.False(t, Reachable("a", "z", adj))
}

func TestAllPairs(t *testing.T) {
	nodes := []string{"a", "b", "c", "d"}
	table := AllPairs(nodes, line())
	require.Len(t, table, 4)
	for _, n := range nodes {
		assert.Equal(t, 0, table[n][n])
	}
	assert.Equal(t, 3, table["d"]["a"])
}

func TestReconstructPath(t *testing.T) {
	path := ReconstructPath("a", "d", line())
	assert.Equal(t, []string{"a", "b", "c", "d"}, path)
	assert.Equal(t, []string{"a"}, ReconstructPath("a", "a", line()))
	assert.Nil(t, ReconstructPath("a", "z", line()))
}

func TestReconstructPathTieBreak(t *testing.T) {
	// Two 2-hop routes a→x→d and a→y→d; x was added first.
	adj := Adjacency{}
	adj.AddEdge("a", "x")
	adj.AddEdge("a", "y")
	adj.AddEdge("y", "d")
	adj.AddEdge("x", "d")
	assert.Equal(t, []string{"a", "x", "d"}, ReconstructPath("a", "d", adj))

	adj2 := Adjacency{}
	adj2.AddEdge("a", "y")
	adj2.AddEdge("a", "x")
	adj2.AddEdge("y", "d")
	adj2.AddEdge("x", "d")
	assert.Equal(t, []string{"a", "y", "d"}, ReconstructPath("a", "d", adj2))
}

func TestUnvisited(t *testing.T) {
	adj := Adjacency{}
	adj.AddUndirected("a", "b")
	adj.AddUndirected("c", "d")
	nodes := []string{"a", "b", "c", "d", "e"}

	assert.Equal(t, []string{"c", "d", "e"}, Unvisited("a", nodes, adj))
	assert.Equal(t, []string{"a", "b", "e"}, Unvisited("c", nodes, adj))
	assert.Equal(t, nodes, Unvisited("", nodes, adj))
}

func TestComponents(t *testing.T) {
	adj := Adjacency{}
	adj.AddEdge("a", "b") // one-way still joins a component
	adj.AddUndirected("c", "d")
	comps := Components([]string{"a", "b", "c", "d", "e"}, adj)
	assert.Equal(t, [][]string{{"a", "b"}, {"c", "d"}, {"e"}}, comps)
}

func TestUndirectedKeepsOrder(t *testing.T) {
	adj := Adjacency{}
	adj.AddEdge("a", "c")
	adj.AddEdge("b", "a")
	und := adj.Undirected([]string{"a", "b", "c"})
	assert.Equal(t, []string{"c", "b"}, und["a"])
	assert.Equal(t, []string{"a"}, und["b"])
	assert.Equal(t, []string{"a"}, und["c"])
}
