package graph

// ShortestPaths runs a single-source BFS and returns the hop count to every
// reachable node. The source maps to 0; unreachable nodes are absent.
func ShortestPaths(start string, adj Adjacency) map[string]int {
	dist := map[string]int{start: 0}
	queue := []string{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, n := range adj[cur] {
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[cur] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Reachable reports whether to can be reached from from.
func Reachable(from, to string, adj Adjacency) bool {
	_, ok := ShortestPaths(from, adj)[to]
	return ok
}

// AllPairs runs ShortestPaths from every node. O(V·(V+E)), intended for the
// tens of floors a building has.
func AllPairs(nodes []string, adj Adjacency) map[string]map[string]int {
	table := make(map[string]map[string]int, len(nodes))
	for _, n := range nodes {
		table[n] = ShortestPaths(n, adj)
	}
	return table
}

// ReconstructPath returns the node sequence of a shortest path from start to
// end, or nil if end is unreachable.
//
// The frontier stores whole path prefixes. Among equal-length paths the first
// discovered in neighbor order wins. Fine for small graphs; switch to parent
// pointers, keeping the same discovery order, if node counts grow into the
// hundreds.
func ReconstructPath(start, end string, adj Adjacency) []string {
	if start == end {
		return []string{start}
	}
	visited := map[string]bool{start: true}
	queue := [][]string{{start}}
	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]
		last := path[len(path)-1]
		for _, n := range adj[last] {
			if visited[n] {
				continue
			}
			next := make([]string, len(path)+1)
			copy(next, path)
			next[len(path)] = n
			if n == end {
				return next
			}
			visited[n] = true
			queue = append(queue, next)
		}
	}
	return nil
}
