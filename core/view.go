// File: view.go
// Role: Non-mutating graph views (cloned topology with altered weights).
// Determinism:
//   - Preserves node IDs, entries, directedness and mirror pairing.
// Concurrency:
//   - Read lock on the source while copying; the result is a fresh Graph.

package core

// AccessibleView returns a copy of g in which every inaccessible path weighs
// blocked. g is not mutated, so plain and accessible queries can share it.
//
// Errors:
//   - ErrNegativeWeight if blocked < 0 or is NaN.
//
// Complexity: O(V + E).
func AccessibleView(g *Graph, blocked float64) (*Graph, error) {
	view := g.Clone()
	if _, err := view.PenalizeInaccessible(blocked); err != nil {
		return nil, err
	}

	return view, nil
}
