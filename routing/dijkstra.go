// Package routing finds shortest walking routes between attractions.
//
// FindShortestPath runs Dijkstra's algorithm from the source over the
// directed entries of a core.Graph, using each entry's weight as its cost,
// and stops as soon as the target is settled.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E) (lazy decrease-key keeps stale heap entries).
//
// Notes on implementation choices:
//
//   - Neighbors are relaxed in ascending node-ID order and a predecessor is
//     only replaced by a strictly shorter distance.
//   - Heap ties are broken by push order (FIFO), so among equal-cost routes
//     the first one discovered is returned. Results are deterministic.
//   - A route whose total reaches Options.BlockedWeight is reported as not found.
package routing

import (
	"container/heap"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/core"
)

// FindShortestPath computes the minimum-weight route from source to target.
//
// Returns:
//
//   - route: always non-nil when err is nil. route.Found reports whether a
//     usable path exists; see Route for the not-found shape.
//   - err:   ErrNilGraph, ErrBadBlockedWeight, or an error wrapping
//     ErrInvalidNodeReference when an endpoint is unknown.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrBadBlockedWeight).
//  2. g must be non-nil (ErrNilGraph).
//  3. source and target must be nodes of g (ErrInvalidNodeReference).
func FindShortestPath(g *core.Graph, source, target int64, opts ...Option) (*Route, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	return findShortestPath(g, source, target, cfg)
}

func findShortestPath(g *core.Graph, source, target int64, cfg Options) (*Route, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	src, err := g.Node(source)
	if err != nil {
		return nil, fmt.Errorf("%w: source %d", ErrInvalidNodeReference, source)
	}
	dst, err := g.Node(target)
	if err != nil {
		return nil, fmt.Errorf("%w: target %d", ErrInvalidNodeReference, target)
	}

	route := &Route{Source: src, Target: dst, Distance: math.Inf(1)}

	// 2) Trivial query
	if source == target {
		route.Distance = 0
		route.Found = true
		return route, nil
	}

	// 3) Search
	r := newRunner(g, source, target)
	if err = r.process(); err != nil {
		return nil, err
	}

	d, reached := r.dist[target]
	if !reached || d >= cfg.BlockedWeight {
		cfg.Logger.Debug("no usable route",
			zap.Int64("source", source),
			zap.Int64("target", target),
			zap.Bool("reached", reached),
			zap.Float64("distance", d),
		)
		return route, nil
	}

	// 4) Rebuild the hop sequence target → source, then reverse.
	hops, err := r.hops(target)
	if err != nil {
		return nil, err
	}
	route.Distance = d
	route.Hops = hops
	route.Found = true
	cfg.Logger.Debug("route found",
		zap.Int64("source", source),
		zap.Int64("target", target),
		zap.Float64("distance", d),
		zap.Int("hops", len(hops)),
	)

	return route, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *core.Graph
	source  int64
	target  int64
	dist    map[int64]float64    // best known distance; absent means +Inf
	prev    map[int64]*core.Edge // entry used to reach a node on its best path
	visited map[int64]bool       // settled nodes
	pq      nodePQ
	seq     uint64 // push counter for FIFO tie-breaking
}

func newRunner(g *core.Graph, source, target int64) *runner {
	n := g.NodeCount()
	r := &runner{
		g:       g,
		source:  source,
		target:  target,
		dist:    make(map[int64]float64, n),
		prev:    make(map[int64]*core.Edge, n),
		visited: make(map[int64]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.dist[source] = 0
	heap.Init(&r.pq)
	r.push(source, 0)

	return r
}

func (r *runner) push(id int64, d float64) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{id: id, dist: d, seq: r.seq})
}

// process pops the closest unsettled node until the heap is empty or the
// target is settled.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// Skip stale heap entries.
		if r.visited[u] {
			continue
		}
		r.visited[u] = true

		if u == r.target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax tries to improve the distance of every out-neighbor of the settled node u.
func (r *runner) relax(u int64) error {
	edges, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("routing: failed to get neighbors of %d: %w", u, err)
	}

	du := r.dist[u]
	for _, e := range edges {
		v := e.To
		if r.visited[v] {
			continue
		}

		newDist := du + e.Weight
		if old, ok := r.dist[v]; ok && newDist >= old {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = e
		r.push(v, newDist)
	}

	return nil
}

// hops walks the predecessor chain back from target and returns the hops in
// travel order, each annotated with its endpoint nodes.
func (r *runner) hops(target int64) ([]Hop, error) {
	var chain []*core.Edge
	for cur := target; cur != r.source; {
		e, ok := r.prev[cur]
		if !ok {
			return nil, fmt.Errorf("routing: broken predecessor chain at %d", cur)
		}
		chain = append(chain, e)
		cur = e.From
	}

	hops := make([]Hop, len(chain))
	for i, e := range chain {
		from, err := r.g.Node(e.From)
		if err != nil {
			return nil, err
		}
		to, err := r.g.Node(e.To)
		if err != nil {
			return nil, err
		}
		hops[len(chain)-1-i] = Hop{From: from, To: to, Weight: e.Weight}
	}

	return hops, nil
}

// nodeItem is a heap entry: a node and the distance it was pushed with.
type nodeItem struct {
	id   int64
	dist float64
	seq  uint64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then push order.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].seq < pq[j].seq
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
