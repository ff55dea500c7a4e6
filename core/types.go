// Package core defines the central Graph, Node, and Edge types of a park map,
// and builds a Graph from tabular node and edge records.
//
// A Graph is constructed once (see Construct) and is read-only afterwards,
// except for the documented accessibility penalty transform
// (PenalizeInaccessible). A single sync.RWMutex guards the catalogs and every
// accessor returns copies taken under it, so any number of goroutines may
// query one Graph concurrently, even while it is being penalized.
//
// Errors:
//
//	ErrNodeNotFound    - requested node does not exist.
//	ErrEdgeNotFound    - requested edge does not exist.
//	ErrNegativeWeight  - a weight below zero was supplied.
//
// Construction errors are reported as *ValidationError; see construct.go.
package core

import (
	"errors"
	"fmt"
	"sync"
)

// Sentinel errors for graph lookups and mutations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrNegativeWeight indicates a weight below zero.
	ErrNegativeWeight = errors.New("core: negative edge weight")
)

// Category classifies an attraction.
// The underlying value is the single-letter code used in the node dataset.
type Category string

const (
	// Entertainment is a ride, show or other amusement ("E").
	Entertainment Category = "E"

	// Store is a shop ("S").
	Store Category = "S"

	// FoodStation is a place to eat or drink ("F").
	FoodStation Category = "F"
)

// ParseCategory maps a dataset code ("E", "S", "F") to its Category.
func ParseCategory(code string) (Category, error) {
	switch c := Category(code); c {
	case Entertainment, Store, FoodStation:
		return c, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadCategory, code)
	}
}

// String returns the human-readable category name.
func (c Category) String() string {
	switch c {
	case Entertainment:
		return "Entertainment"
	case Store:
		return "Store"
	case FoodStation:
		return "Food Station"
	default:
		return "Unknown"
	}
}

// Node is an attraction on the park map.
//
// ID uniquely identifies the Node within its Graph.
// Attrs carries the descriptive fields of the node record that have no
// dedicated field (e.g. "minimum_height"), verbatim.
type Node struct {
	ID       int64
	Name     string
	Category Category
	Attrs    map[string]string
}

// clone returns a copy of n that shares no maps with it.
func (n *Node) clone() Node {
	out := Node{ID: n.ID, Name: n.Name, Category: n.Category}
	if n.Attrs != nil {
		out.Attrs = make(map[string]string, len(n.Attrs))
		for k, v := range n.Attrs {
			out.Attrs[k] = v
		}
	}

	return out
}

// EdgeAttrs holds the properties of one physical path.
//
// Inside a Graph both directed entries of a bidirectional path point at the
// same EdgeAttrs, so PenalizeInaccessible updates them together. Entries
// handed out by the read accessors carry their own copy.
type EdgeAttrs struct {
	// Weight is the walking distance in feet. Never negative.
	Weight float64

	// Accessible reports whether a wheelchair or otherwise mobility-limited
	// visitor can use the path.
	Accessible bool

	// Directed reports whether the path is one-way.
	Directed bool
}

// Edge is one directed entry From→To of the graph.
type Edge struct {
	From int64
	To   int64

	*EdgeAttrs
}

// snapshot copies e and its attributes. The caller holds at least the read lock.
func (e *Edge) snapshot() *Edge {
	attrs := *e.EdgeAttrs

	return &Edge{From: e.From, To: e.To, EdgeAttrs: &attrs}
}

// Graph is the in-memory park map.
//
// adjacency[from][to] holds the single directed entry for that ordered pair;
// edgeCount counts directed entries, so a bidirectional path counts twice.
type Graph struct {
	mu sync.RWMutex // guards every field below

	nodes     map[int64]*Node
	adjacency map[int64]map[int64]*Edge
	edgeCount int
}

// newGraph allocates an empty Graph. Graphs are only created by Construct and Clone.
func newGraph(nodeHint int) *Graph {
	return &Graph{
		nodes:     make(map[int64]*Node, nodeHint),
		adjacency: make(map[int64]map[int64]*Edge, nodeHint),
	}
}
