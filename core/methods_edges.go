// File: methods_edges.go
// Role: Edge registration, queries, and the accessibility penalty transform.
// Determinism:
//   - Edges() returns entries sorted by (From, To) asc.
// Snapshots:
//   - Edge() and Edges() return copies; callers never see a later write.
// Concurrency:
//   - Queries hold the read lock; PenalizeInaccessible holds the write lock.
//   - addEdge is only called during construction.

package core

import (
	"math"
	"sort"
)

// addEdge registers from→to with attrs and, when attrs.Directed is false,
// the mirrored entry to→from sharing the same attrs.
//
// Steps:
//  1. Reject self-loops and negative weights.
//  2. Reject endpoints missing from the node catalog.
//  3. Reject an ordered pair (or its mirror, for bidirectional paths) that already exists.
//  4. Link the entry (and the mirror).
//
// The caller guarantees exclusive access (construction).
func (g *Graph) addEdge(from, to int64, attrs *EdgeAttrs) error {
	// 1) Shape checks
	if from == to {
		return ErrLoopNotAllowed
	}
	if attrs.Weight < 0 {
		return ErrNegativeWeight
	}

	// 2) Endpoints must already be registered
	if _, ok := g.nodes[from]; !ok {
		return ErrUnknownNode
	}
	if _, ok := g.nodes[to]; !ok {
		return ErrUnknownNode
	}

	// 3) Duplicate ordered pairs
	if _, dup := g.adjacency[from][to]; dup {
		return ErrDuplicateEdge
	}
	if !attrs.Directed {
		if _, dup := g.adjacency[to][from]; dup {
			return ErrDuplicateEdge
		}
	}

	// 4) Link, mirroring bidirectional paths onto the same attrs
	g.adjacency[from][to] = &Edge{From: from, To: to, EdgeAttrs: attrs}
	g.edgeCount++
	if !attrs.Directed {
		g.adjacency[to][from] = &Edge{From: to, To: from, EdgeAttrs: attrs}
		g.edgeCount++
	}

	return nil
}

// Edge returns the directed entry from→to.
//
// The returned *Edge is a copy; changing it does not change the graph.
//
// Errors:
//   - ErrEdgeNotFound if no such entry exists.
//
// Complexity: O(1).
func (g *Graph) Edge(from, to int64) (*Edge, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	e, ok := g.adjacency[from][to]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e.snapshot(), nil
}

// HasEdge reports whether the directed entry from→to exists.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int64) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Edges returns every directed entry sorted by (From, To) ascending.
// A bidirectional path contributes two entries.
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.mu.RLock()
	out := make([]*Edge, 0, g.edgeCount)
	for _, row := range g.adjacency {
		for _, e := range row {
			out = append(out, e.snapshot())
		}
	}
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of directed entries.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edgeCount
}

// PenalizeInaccessible overwrites, in place, the weight of every path that is
// not accessible with weight, and returns how many paths were changed.
//
// The transform is idempotent: a second call with the same weight changes
// nothing and returns 0. Original weights are not kept; callers that need
// both plain and accessible queries should penalize a Clone.
//
// Errors:
//   - ErrNegativeWeight if weight < 0 or is NaN.
//
// Complexity: O(E).
func (g *Graph) PenalizeInaccessible(weight float64) (int, error) {
	if weight < 0 || math.IsNaN(weight) {
		return 0, ErrNegativeWeight
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	changed := 0
	for _, row := range g.adjacency {
		for _, e := range row {
			// Mirrored entries share attrs; the second visit sees the new weight.
			if e.Accessible || e.Weight == weight {
				continue
			}
			e.Weight = weight
			changed++
		}
	}

	return changed, nil
}
