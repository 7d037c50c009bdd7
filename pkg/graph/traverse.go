package graph

import "fmt"

// GetReachable returns the set of node ids reachable from from by following
// edges forward, via breadth-first search. from itself is included.
func (g *StateGraph) GetReachable(from string) (map[string]bool, error) {
	if _, ok := g.nodes[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}

	visited := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, e := range g.edgesFrom[id] {
			if !visited[e.To()] {
				visited[e.To()] = true
				queue = append(queue, e.To())
			}
		}
	}
	return visited, nil
}

// IsConnected reports whether every node in the graph is weakly reachable
// from the initial node, treating edges as undirected for the purpose of
// this check. A graph with no nodes is trivially connected; with no
// initial node set, the check starts from an arbitrary node.
func (g *StateGraph) IsConnected() bool {
	if len(g.nodes) == 0 {
		return true
	}
	start := g.initial
	if start == "" {
		for id := range g.nodes {
			start = id
			break
		}
	}

	undirected := g.undirectedAdjacency()
	visited := map[string]bool{start: true}
	queue := []string{start}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, neighbor := range undirected[id] {
			if !visited[neighbor] {
				visited[neighbor] = true
				queue = append(queue, neighbor)
			}
		}
	}
	return len(visited) == len(g.nodes)
}

func (g *StateGraph) undirectedAdjacency() map[string][]string {
	adj := make(map[string][]string, len(g.nodes))
	for _, id := range g.sortedNodeIDs() {
		for _, e := range g.edgesFrom[id] {
			adj[e.From()] = append(adj[e.From()], e.To())
			adj[e.To()] = append(adj[e.To()], e.From())
		}
	}
	return adj
}

// GetPath returns the shortest sequence of node ids, starting with from and
// ending with to, connected by edges in the forward direction. It fails if
// no such path exists.
func (g *StateGraph) GetPath(from, to string) ([]string, error) {
	if _, ok := g.nodes[from]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, from)
	}
	if _, ok := g.nodes[to]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNode, to)
	}
	if from == to {
		return []string{from}, nil
	}

	parent := map[string]string{from: ""}
	queue := []string{from}
	found := false
	for len(queue) > 0 && !found {
		id := queue[0]
		queue = queue[1:]
		for _, e := range g.edgesFrom[id] {
			if _, seen := parent[e.To()]; seen {
				continue
			}
			parent[e.To()] = id
			if e.To() == to {
				found = true
				break
			}
			queue = append(queue, e.To())
		}
	}

	if _, ok := parent[to]; !ok {
		return nil, fmt.Errorf("%w: %q to %q", ErrNoPath, from, to)
	}

	var path []string
	for id := to; id != ""; id = parent[id] {
		path = append([]string{id}, path...)
		if id == from {
			break
		}
	}
	return path, nil
}

// GetCycles returns the cycles found as back edges during a depth-first
// search with a recursion-stack tracker, each as the ordered sequence of
// node ids visited. An edge into an already finished node is not followed,
// so not every simple cycle is listed when cycles share nodes. A graph
// with no cycles returns an empty slice.
func (g *StateGraph) GetCycles() [][]string {
	var cycles [][]string
	visited := make(map[string]bool)

	for _, start := range g.sortedNodeIDs() {
		if visited[start] {
			continue
		}
		onStack := make(map[string]bool)
		var path []string

		var dfs func(id string)
		dfs = func(id string) {
			visited[id] = true
			onStack[id] = true
			path = append(path, id)

			for _, e := range g.edgesFrom[id] {
				if onStack[e.To()] {
					cycle := cycleFrom(path, e.To())
					cycles = append(cycles, cycle)
					continue
				}
				if !visited[e.To()] {
					dfs(e.To())
				}
			}

			path = path[:len(path)-1]
			onStack[id] = false
		}
		dfs(start)
	}
	return cycles
}

func cycleFrom(path []string, start string) []string {
	for i, id := range path {
		if id == start {
			cycle := append([]string(nil), path[i:]...)
			return append(cycle, start)
		}
	}
	return nil
}
