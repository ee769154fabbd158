package graph

// Visit returns the set of nodes reachable from root with an iterative DFS.
func Visit(root string, adj Adjacency) map[string]bool {
	visited := map[string]bool{}
	stack := []string{root}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[cur] {
			continue
		}
		visited[cur] = true
		ns := adj[cur]
		// Push in reverse so neighbors pop in insertion order.
		for i := len(ns) - 1; i >= 0; i-- {
			if !visited[ns[i]] {
				stack = append(stack, ns[i])
			}
		}
	}
	return visited
}

// Unvisited returns the nodes, in input order, that cannot be reached from
// root. An empty root marks every node unvisited.
func Unvisited(root string, nodes []string, adj Adjacency) []string {
	var visited map[string]bool
	if root != "" {
		visited = Visit(root, adj)
	}
	var out []string
	for _, n := range nodes {
		if !visited[n] {
			out = append(out, n)
		}
	}
	return out
}

// Components groups nodes into weakly connected components. Components are
// ordered by their first node in nodes, and members keep input order.
func Components(nodes []string, adj Adjacency) [][]string {
	und := adj.Undirected(nodes)
	assigned := map[string]int{}
	var comps [][]string
	for _, n := range nodes {
		if _, ok := assigned[n]; ok {
			continue
		}
		idx := len(comps)
		for m := range Visit(n, und) {
			assigned[m] = idx
		}
		comps = append(comps, nil)
	}
	for _, n := range nodes {
		idx := assigned[n]
		comps[idx] = append(comps[idx], n)
	}
	return comps
}
