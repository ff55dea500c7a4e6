// Package render turns a park map into Graphviz DOT, colouring each
// attraction by its category.
//
// Colour code: Entertainment → red, Store → green, Food Station → yellow.
// Bidirectional paths are drawn once with dir=both; inaccessible paths are
// dashed. Output is deterministic (nodes and edges in ID order).
package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/magicmap/core"
)

// Color returns the display colour of a category.
func Color(c core.Category) string {
	switch c {
	case core.Entertainment:
		return "red"
	case core.Store:
		return "green"
	case core.FoodStation:
		return "yellow"
	default:
		return "gray"
	}
}

// Option configures WriteDOT.
type Option func(*dotOptions)

type dotOptions struct {
	name    string
	weights bool
	route   map[[2]int64]bool
}

// WithName sets the DOT graph name. Default "magicmap".
func WithName(name string) Option {
	return func(o *dotOptions) {
		if name != "" {
			o.name = name
		}
	}
}

// WithWeights labels every edge with its weight.
func WithWeights() Option {
	return func(o *dotOptions) { o.weights = true }
}

// WithRoute highlights the directed steps of path (a node ID sequence) in bold.
func WithRoute(path []int64) Option {
	return func(o *dotOptions) {
		for i := 1; i < len(path); i++ {
			o.route[[2]int64{path[i-1], path[i]}] = true
		}
	}
}

// WriteDOT writes g as a DOT digraph to w.
func WriteDOT(w io.Writer, g *core.Graph, opts ...Option) error {
	o := dotOptions{name: "magicmap", route: make(map[[2]int64]bool)}
	for _, opt := range opts {
		opt(&o)
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "digraph %s {\n", quote(o.name))
	fmt.Fprintln(bw, "  node [style=filled];")

	for _, n := range g.Nodes() {
		fmt.Fprintf(bw, "  %d [label=%s fillcolor=%s];\n", n.ID, quote(n.Name), Color(n.Category))
	}

	for _, e := range g.Edges() {
		// The mirror of a bidirectional path is drawn with its lower-ID twin.
		if !e.Directed && e.From > e.To {
			continue
		}

		var attrs []string
		if !e.Directed {
			attrs = append(attrs, "dir=both")
		}
		if !e.Accessible {
			attrs = append(attrs, "style=dashed")
		}
		if o.weights {
			attrs = append(attrs, "label="+quote(strconv.FormatFloat(e.Weight, 'f', -1, 64)))
		}
		if o.route[[2]int64{e.From, e.To}] || (!e.Directed && o.route[[2]int64{e.To, e.From}]) {
			attrs = append(attrs, "penwidth=3")
		}

		fmt.Fprintf(bw, "  %d -> %d", e.From, e.To)
		if len(attrs) > 0 {
			fmt.Fprintf(bw, " [%s]", strings.Join(attrs, " "))
		}
		fmt.Fprintln(bw, ";")
	}
	fmt.Fprintln(bw, "}")

	return bw.Flush()
}

// quote renders s as a DOT double-quoted string.
func quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
