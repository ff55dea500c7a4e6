// File: methods_clone.go
// Role: Deep copies of a Graph.
// Concurrency:
//   - Read lock on the source for the duration of the copy.

package core

// Clone returns a deep copy of the Graph: nodes, entries and attributes.
//
// Mirrored entries of a bidirectional path share one *EdgeAttrs in the clone,
// exactly as in the source, but no *EdgeAttrs is shared between source and
// clone. Mutating the clone (e.g. PenalizeInaccessible) never affects g.
//
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := newGraph(len(g.nodes))
	for id, n := range g.nodes {
		nn := n.clone()
		clone.nodes[id] = &nn
		clone.adjacency[id] = make(map[int64]*Edge, len(g.adjacency[id]))
	}

	// copies maps source attrs to their clone so mirror pairs stay paired.
	copies := make(map[*EdgeAttrs]*EdgeAttrs, g.edgeCount)
	for from, row := range g.adjacency {
		for to, e := range row {
			attrs, ok := copies[e.EdgeAttrs]
			if !ok {
				dup := *e.EdgeAttrs
				attrs = &dup
				copies[e.EdgeAttrs] = attrs
			}
			clone.adjacency[from][to] = &Edge{From: from, To: to, EdgeAttrs: attrs}
		}
	}
	clone.edgeCount = g.edgeCount

	return clone
}
