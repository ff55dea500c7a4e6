// Package connectivity verifies that every attraction of a park map can be
// reached from every other one by following directed paths.
//
// Reachability ignores weights: an entry of any weight, including one at the
// blocked threshold, connects its endpoints.
//
// VerifyAllPaths computes one breadth-first reachability set per source, so
// the whole check costs O(V·(V+E)) instead of O(V²) separate path searches.
package connectivity

import (
	"errors"
	"fmt"

	"github.com/yourbasic/bit"

	"github.com/katalvlaran/magicmap/core"
)

var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("connectivity: graph is nil")

	// ErrStartNodeNotFound is returned when the start ID is absent.
	ErrStartNodeNotFound = errors.New("connectivity: start node not found")
)

// index assigns each node a dense position (its rank in ID order) so that
// reachability sets can be bit sets.
type index struct {
	ids []int64
	pos map[int64]int
}

func newIndex(g *core.Graph) *index {
	ids := g.NodeIDs()
	pos := make(map[int64]int, len(ids))
	for i, id := range ids {
		pos[id] = i
	}

	return &index{ids: ids, pos: pos}
}

// walker holds the state of one breadth-first search.
type walker struct {
	graph   *core.Graph
	idx     *index
	queue   []int64
	visited *bit.Set
}

// reach returns the positions of all nodes reachable from start, start included.
func (w *walker) reach(start int64) (*bit.Set, error) {
	w.visited = bit.New(w.idx.pos[start])
	w.queue = append(w.queue[:0], start)

	for len(w.queue) > 0 {
		cur := w.queue[0]
		w.queue = w.queue[1:]

		nbrs, err := w.graph.NeighborIDs(cur)
		if err != nil {
			return nil, fmt.Errorf("connectivity: failed to get neighbors of %d: %w", cur, err)
		}
		for _, nbr := range nbrs {
			p := w.idx.pos[nbr]
			if w.visited.Contains(p) {
				continue
			}
			w.visited.Add(p)
			w.queue = append(w.queue, nbr)
		}
	}

	return w.visited, nil
}

// Reachable returns the IDs of all nodes reachable from start (start
// included), sorted ascending.
func Reachable(g *core.Graph, start int64) ([]int64, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d", ErrStartNodeNotFound, start)
	}

	idx := newIndex(g)
	w := &walker{graph: g, idx: idx}
	set, err := w.reach(start)
	if err != nil {
		return nil, err
	}

	out := make([]int64, 0, set.Size())
	set.Visit(func(p int) (skip bool) {
		out = append(out, idx.ids[p])
		return false
	})

	return out, nil
}

// VerifyAllPaths reports whether a directed path exists from every node to
// every other node. It stops at the first source that cannot reach all
// nodes. Graphs with zero or one node are trivially connected; a nil graph
// is not.
func VerifyAllPaths(g *core.Graph) bool {
	_, _, ok := FirstUnreachable(g)

	return !ok
}

// FirstUnreachable returns the first ordered pair (from, to), in ascending ID
// order, for which no directed path exists. ok is false when every pair is
// connected. For a nil graph it returns (0, 0, true).
func FirstUnreachable(g *core.Graph) (from, to int64, ok bool) {
	if g == nil {
		return 0, 0, true
	}

	idx := newIndex(g)
	n := len(idx.ids)
	w := &walker{graph: g, idx: idx, queue: make([]int64, 0, n)}
	for _, src := range idx.ids {
		set, err := w.reach(src)
		if err != nil {
			// NeighborIDs fails only for unknown IDs; idx holds none.
			return src, src, true
		}
		if set.Size() == n {
			continue
		}
		for p, dst := range idx.ids {
			if !set.Contains(p) {
				return src, dst, true
			}
		}
	}

	return 0, 0, false
}
