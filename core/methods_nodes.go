// File: methods_nodes.go
// Role: Node registration and queries.
// Determinism:
//   - Nodes() returns nodes sorted by ID asc.
//   - NodesByName() returns nodes sorted by Name asc, then ID asc.
// Concurrency:
//   - Queries hold the read lock; addNode is only called during construction.

package core

import "sort"

// addNode registers n. The caller guarantees exclusive access (construction).
func (g *Graph) addNode(n *Node) error {
	if _, exists := g.nodes[n.ID]; exists {
		return ErrDuplicateNode
	}
	g.nodes[n.ID] = n
	g.adjacency[n.ID] = make(map[int64]*Edge)

	return nil
}

// Node returns a copy of the node with the given ID.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
//
// Complexity: O(1) plus the size of the node's Attrs.
func (g *Graph) Node(id int64) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return n.clone(), nil
}

// HasNode reports whether id names a node of the graph.
// Complexity: O(1).
func (g *Graph) HasNode(id int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Nodes returns copies of all nodes sorted by ID ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []Node {
	out := g.snapshotNodes()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out
}

// NodesByName returns copies of all nodes sorted by Name, ties broken by ID.
// This is the order in which attractions are listed to visitors.
// Complexity: O(V log V).
func (g *Graph) NodesByName() []Node {
	out := g.snapshotNodes()
	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})

	return out
}

// NodeIDs returns all node IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) NodeIDs() []int64 {
	g.mu.RLock()
	ids := make([]int64, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.mu.RUnlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// snapshotNodes copies the node catalog in map order.
func (g *Graph) snapshotNodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, 0, len(g.nodes))
	for _, n := range g.nodes {
		out = append(out, n.clone())
	}

	return out
}
