// Package routing defines the result types, options and errors of the
// park route finder.
//
// Options:
//
//	– WithBlockedWeight: routes whose total weight reaches this threshold are
//	  reported as not found; accessible queries also use it as the weight of
//	  inaccessible paths. Must be > 0. Default BlockedWeight.
//	– WithLogger: zap logger for query diagnostics. Default no-op.
//
// Errors (sentinel):
//
//	– ErrNilGraph             if the graph pointer is nil.
//	– ErrInvalidNodeReference if source or target is not a node of the graph.
//	– ErrBadBlockedWeight     if WithBlockedWeight received a value ≤ 0.
//	– ErrNoPathFound          wrapped by *NoPathError (see Route.Err).
package routing

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/core"
)

// BlockedWeight is the default "impassable" threshold: the weight given to
// inaccessible paths in accessible mode, and the total above which a route
// is treated as nonexistent.
const BlockedWeight = 100000

// Sentinel errors returned by the route finder.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("routing: graph is nil")

	// ErrInvalidNodeReference indicates that source or target is not in the graph.
	ErrInvalidNodeReference = errors.New("routing: node not found in graph")

	// ErrBadBlockedWeight indicates a non-positive blocked weight.
	ErrBadBlockedWeight = errors.New("routing: blocked weight must be positive")

	// ErrNoPathFound is the cause of every *NoPathError.
	ErrNoPathFound = errors.New("routing: no path found")
)

// Options configures a route query.
type Options struct {
	BlockedWeight float64
	Logger        *zap.Logger

	err error // recorded by invalid options, surfaced by the query
}

// Option represents a functional option for configuring a route query.
type Option func(*Options)

// DefaultOptions returns BlockedWeight and a no-op logger.
func DefaultOptions() Options {
	return Options{
		BlockedWeight: BlockedWeight,
		Logger:        zap.NewNop(),
	}
}

// WithBlockedWeight overrides the blocked threshold.
// A value ≤ 0 (or NaN) makes the query fail with ErrBadBlockedWeight.
func WithBlockedWeight(w float64) Option {
	return func(o *Options) {
		if !(w > 0) || math.IsInf(w, 1) {
			o.err = fmt.Errorf("%w: %v", ErrBadBlockedWeight, w)
			return
		}
		o.BlockedWeight = w
	}
}

// WithLogger sets the logger used for query diagnostics. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// buildOptions applies opts over the defaults.
func buildOptions(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg, cfg.err
}

// ValidateOptions applies opts and returns the first error an option
// recorded, without running a query.
func ValidateOptions(opts ...Option) error {
	_, err := buildOptions(opts)

	return err
}

// Hop is one directed step of a route.
type Hop struct {
	From   core.Node
	To     core.Node
	Weight float64
}

// Route is the outcome of a route query.
//
// Found is false when no path exists or every path reaches the blocked
// threshold; in that case Distance is +Inf and Hops is empty. A query with
// Source == Target is found with Distance 0 and no hops.
type Route struct {
	Source     core.Node
	Target     core.Node
	Distance   float64
	Hops       []Hop
	Found      bool
	Accessible bool // computed in accessible mode
}

// Path returns the node IDs visited by the route, source first.
// It returns nil when the route was not found.
func (r *Route) Path() []int64 {
	if !r.Found {
		return nil
	}
	path := make([]int64, 0, len(r.Hops)+1)
	path = append(path, r.Source.ID)
	for _, h := range r.Hops {
		path = append(path, h.To.ID)
	}

	return path
}

// Err returns nil for a found route and a *NoPathError otherwise.
func (r *Route) Err() error {
	if r.Found {
		return nil
	}

	return &NoPathError{Source: r.Source, Target: r.Target, Accessible: r.Accessible}
}

// NoPathError names the endpoints of a query that has no usable route.
type NoPathError struct {
	Source     core.Node
	Target     core.Node
	Accessible bool
}

func (e *NoPathError) Error() string {
	mode := ""
	if e.Accessible {
		mode = " (accessible)"
	}

	return fmt.Sprintf("routing: no path%s from %d(%s) to %d(%s)",
		mode, e.Source.ID, e.Source.Name, e.Target.ID, e.Target.Name)
}

func (e *NoPathError) Unwrap() error { return ErrNoPathFound }
