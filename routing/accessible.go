package routing

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/core"
)

// AccessibleGraph returns core.AccessibleView(g, blocked): a clone of g in
// which every inaccessible path weighs blocked. g itself is left untouched.
//
// Complexity: O(V + E).
func AccessibleGraph(g *core.Graph, blocked float64) (*core.Graph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	return core.AccessibleView(g, blocked)
}

// FindShortestPathAccessible computes the shortest route usable by a
// mobility-impaired visitor.
//
// Inaccessible paths are weighted at the blocked threshold on a derived copy
// of g, so any route that needs one reaches the threshold and is reported as
// not found. Because g is never mutated, plain and accessible queries may be
// interleaved freely on the same graph.
//
// Returns the same errors as FindShortestPath.
func FindShortestPathAccessible(g *core.Graph, source, target int64, opts ...Option) (*Route, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}

	ag, err := AccessibleGraph(g, cfg.BlockedWeight)
	if err != nil {
		return nil, err
	}
	cfg.Logger.Debug("accessible query", zap.Int64("source", source), zap.Int64("target", target))

	route, err := findShortestPath(ag, source, target, cfg)
	if err != nil {
		return nil, err
	}
	route.Accessible = true

	return route, nil
}
