// Package core provides the park map Graph: attractions (Node) joined by
// directed, weighted path entries (Edge).
//
// The Graph G = (V,E) is built once from tabular records:
//
//   - Nodes are keyed by integer ID and carry a name, a Category
//     (Entertainment "E", Store "S", FoodStation "F") and free-form Attrs.
//   - Each edge record describes one physical path with a weight, an
//     accessibility flag and a directed flag. A bidirectional path is stored
//     as two entries, u→v and v→u, that share one *EdgeAttrs.
//   - Storage is a nested map: adjacency[from][to] = *Edge, giving O(1)
//     membership and O(d log d) sorted neighbor enumeration.
//
// Construction:
//
//	g, err := core.Construct(nodeRecords, edgeRecords)
//	var ve *core.ValidationError
//	if errors.As(err, &ve) { ... ve.Kind, ve.Index, ve.Field ... }
//
// Queries:
//
//	Node(id) (Node, error)          // O(1), returns a copy
//	HasNode(id) bool                // O(1)
//	Nodes() []Node                  // sorted by ID
//	NodesByName() []Node            // sorted by name, then ID
//	NodeIDs() []int64               // sorted
//	Edge(from,to) (*Edge, error)    // O(1), copy of the entry
//	HasEdge(from,to) bool           // O(1)
//	Edges() []*Edge                 // sorted by (From, To)
//	Neighbors(id) ([]*Edge, error)  // outgoing, sorted by To
//	NodeCount(), EdgeCount()        // O(1)
//
// Derivation:
//
//	Clone() *Graph                           // deep copy, mirror pairing preserved
//	AccessibleView(g, blocked) (*Graph, error) // clone, inaccessible paths weigh blocked
//	PenalizeInaccessible(w) (int, error)     // in-place, idempotent
//
// Invariants:
//
//   - every entry references existing nodes;
//   - no self-loops and at most one entry per ordered pair;
//   - weights are finite and non-negative;
//   - for a bidirectional path, Edge(u,v).EdgeAttrs == Edge(v,u).EdgeAttrs.
//
// Errors:
//
//	ErrNodeNotFound, ErrEdgeNotFound  – lookups
//	ErrNegativeWeight                 – negative weight (construction or penalty)
//	*ValidationError wrapping one of ErrMissingField, ErrBadNumber, ErrBadFlag,
//	ErrBadCategory, ErrUnknownNode, ErrDuplicateNode, ErrDuplicateEdge,
//	ErrLoopNotAllowed – construction
//	ErrBadSchema                      – invalid Schema passed via WithSchema
package core
