// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors() and NeighborIDs() are sorted by destination ID asc.
// Concurrency:
//   - Entries are copied under the read lock, so a route search reading
//     weights never races PenalizeInaccessible.

package core

import "sort"

// Neighbors returns the outgoing entries of node id sorted by To ascending.
//
// Only entries with From == id are returned; for a bidirectional path this is
// the entry pointing away from id. The entries are copies.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) Neighbors(id int64) ([]*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	row, ok := g.adjacency[id]
	if !ok {
		return nil, ErrNodeNotFound
	}

	out := make([]*Edge, 0, len(row))
	for _, e := range row {
		out = append(out, e.snapshot())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].To < out[j].To })

	return out, nil
}

// NeighborIDs returns the IDs reachable from id over one entry, sorted ascending.
//
// Errors:
//   - ErrNodeNotFound if id is not in the graph.
func (g *Graph) NeighborIDs(id int64) ([]int64, error) {
	edges, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}

	ids := make([]int64, len(edges))
	for i, e := range edges {
		ids[i] = e.To
	}

	return ids, nil
}
