// File: construct.go
// Role: Graph construction from tabular node and edge records.
// Policy:
//   - All nodes are registered before any edge, so edge records may appear in any order.
//   - The first invalid record aborts construction; no partial Graph is returned.

package core

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Causes carried by *ValidationError.
var (
	// ErrMissingField indicates a required key is absent or blank.
	ErrMissingField = errors.New("core: missing field")

	// ErrBadNumber indicates an ID or weight that does not parse as a finite number.
	ErrBadNumber = errors.New("core: malformed number")

	// ErrBadFlag indicates a Y/N flag with any other value.
	ErrBadFlag = errors.New("core: malformed Y/N flag")

	// ErrBadCategory indicates an unknown attraction type code.
	ErrBadCategory = errors.New("core: unknown category")

	// ErrUnknownNode indicates an edge endpoint that is not a registered node.
	ErrUnknownNode = errors.New("core: edge references unknown node")

	// ErrDuplicateNode indicates two node records with the same ID.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates two entries for the same ordered pair.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrLoopNotAllowed indicates an edge from a node to itself.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrBadSchema indicates a Schema with blank or clashing key names.
	ErrBadSchema = errors.New("core: invalid schema")
)

// Record is one row of the node or edge dataset, keyed by column name.
type Record map[string]string

// RecordKind tells node records from edge records in a ValidationError.
type RecordKind string

const (
	NodeRecord RecordKind = "node"
	EdgeRecord RecordKind = "edge"
)

// ValidationError reports a malformed or inconsistent input record.
//
// Index is the zero-based position of the record in its input slice.
// Err is one of the package causes (ErrBadNumber, ErrUnknownNode, ...),
// so errors.Is(err, ErrUnknownNode) works on the returned error.
type ValidationError struct {
	Kind  RecordKind
	Index int
	Field string
	Value string
	Err   error
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("core: invalid %s record #%d: %v", e.Kind, e.Index, e.Err)
	}

	return fmt.Sprintf("core: invalid %s record #%d: %s=%q: %v", e.Kind, e.Index, e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// Schema names the record keys Construct reads.
type Schema struct {
	NodeID   string
	NodeName string
	NodeType string

	EdgeFrom       string
	EdgeTo         string
	EdgeWeight     string
	EdgeAccessible string
	EdgeDirected   string
}

// DefaultSchema returns the column names of the park datasets.
func DefaultSchema() Schema {
	return Schema{
		NodeID:         "id",
		NodeName:       "name",
		NodeType:       "type",
		EdgeFrom:       "u_node",
		EdgeTo:         "v_node",
		EdgeWeight:     "weight",
		EdgeAccessible: "if_accessible",
		EdgeDirected:   "if_directed",
	}
}

// Validate rejects blank key names and keys used twice within one record kind.
func (s Schema) Validate() error {
	if err := distinctKeys("node", s.NodeID, s.NodeName, s.NodeType); err != nil {
		return err
	}

	return distinctKeys("edge", s.EdgeFrom, s.EdgeTo, s.EdgeWeight, s.EdgeAccessible, s.EdgeDirected)
}

func distinctKeys(kind string, keys ...string) error {
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if strings.TrimSpace(k) == "" {
			return fmt.Errorf("%w: blank %s key", ErrBadSchema, kind)
		}
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: %s key %q used twice", ErrBadSchema, kind, k)
		}
		seen[k] = struct{}{}
	}

	return nil
}

// ConstructOption configures Construct.
type ConstructOption func(*constructConfig)

type constructConfig struct {
	schema Schema
}

// WithSchema replaces DefaultSchema.
func WithSchema(s Schema) ConstructOption {
	return func(c *constructConfig) { c.schema = s }
}

// Construct builds a Graph from node and edge records.
//
// Node records need an integer ID, a non-blank name and a category code;
// every other key is kept verbatim in Node.Attrs. Edge records need integer
// endpoints, a non-negative finite weight and Y/N accessible and directed
// flags. An edge whose directed flag is "N" yields the entries u→v and v→u
// sharing one *EdgeAttrs; "Y" yields u→v only.
//
// Errors:
//   - wraps ErrBadSchema if the schema is invalid.
//   - *ValidationError for the first offending record.
//
// Complexity: O(V + E).
func Construct(nodes, edges []Record, opts ...ConstructOption) (*Graph, error) {
	// 1) Options and schema
	cfg := constructConfig{schema: DefaultSchema()}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.schema.Validate(); err != nil {
		return nil, err
	}
	s := cfg.schema

	g := newGraph(len(nodes))

	// 2) Nodes
	for i, rec := range nodes {
		n, err := parseNode(s, rec)
		if err != nil {
			return nil, withIndex(err, NodeRecord, i)
		}
		if err = g.addNode(n); err != nil {
			return nil, &ValidationError{
				Kind: NodeRecord, Index: i, Field: s.NodeID, Value: rec[s.NodeID], Err: err,
			}
		}
	}

	// 3) Edges
	for i, rec := range edges {
		from, to, attrs, err := parseEdge(s, rec)
		if err != nil {
			return nil, withIndex(err, EdgeRecord, i)
		}
		if err = g.addEdge(from, to, attrs); err != nil {
			ve := &ValidationError{Kind: EdgeRecord, Index: i, Err: err}
			switch {
			case errors.Is(err, ErrNegativeWeight):
				ve.Field, ve.Value = s.EdgeWeight, rec[s.EdgeWeight]
			case errors.Is(err, ErrUnknownNode) && !g.HasNode(from):
				ve.Field, ve.Value = s.EdgeFrom, rec[s.EdgeFrom]
			case errors.Is(err, ErrUnknownNode):
				ve.Field, ve.Value = s.EdgeTo, rec[s.EdgeTo]
			}
			return nil, ve
		}
	}

	return g, nil
}

// withIndex stamps kind and position onto a field-level *ValidationError.
func withIndex(err error, kind RecordKind, i int) error {
	var ve *ValidationError
	if errors.As(err, &ve) {
		ve.Kind, ve.Index = kind, i
	}

	return err
}

func parseNode(s Schema, rec Record) (*Node, error) {
	id, err := intField(rec, s.NodeID)
	if err != nil {
		return nil, err
	}
	name, err := textField(rec, s.NodeName)
	if err != nil {
		return nil, err
	}
	code, err := textField(rec, s.NodeType)
	if err != nil {
		return nil, err
	}
	cat, err := ParseCategory(strings.ToUpper(code))
	if err != nil {
		return nil, &ValidationError{Field: s.NodeType, Value: rec[s.NodeType], Err: ErrBadCategory}
	}

	n := &Node{ID: id, Name: name, Category: cat, Attrs: make(map[string]string)}
	for k, v := range rec {
		if k == s.NodeID || k == s.NodeName || k == s.NodeType {
			continue
		}
		n.Attrs[k] = v
	}

	return n, nil
}

func parseEdge(s Schema, rec Record) (from, to int64, attrs *EdgeAttrs, err error) {
	if from, err = intField(rec, s.EdgeFrom); err != nil {
		return 0, 0, nil, err
	}
	if to, err = intField(rec, s.EdgeTo); err != nil {
		return 0, 0, nil, err
	}

	attrs = new(EdgeAttrs)
	if attrs.Weight, err = floatField(rec, s.EdgeWeight); err != nil {
		return 0, 0, nil, err
	}
	if attrs.Accessible, err = flagField(rec, s.EdgeAccessible); err != nil {
		return 0, 0, nil, err
	}
	if attrs.Directed, err = flagField(rec, s.EdgeDirected); err != nil {
		return 0, 0, nil, err
	}

	return from, to, attrs, nil
}

func textField(rec Record, key string) (string, error) {
	v := strings.TrimSpace(rec[key])
	if v == "" {
		return "", &ValidationError{Field: key, Value: rec[key], Err: ErrMissingField}
	}

	return v, nil
}

func intField(rec Record, key string) (int64, error) {
	v, err := textField(rec, key)
	if err != nil {
		return 0, err
	}
	n, perr := strconv.ParseInt(v, 10, 64)
	if perr != nil {
		return 0, &ValidationError{Field: key, Value: rec[key], Err: ErrBadNumber}
	}

	return n, nil
}

func floatField(rec Record, key string) (float64, error) {
	v, err := textField(rec, key)
	if err != nil {
		return 0, err
	}
	f, perr := strconv.ParseFloat(v, 64)
	if perr != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, &ValidationError{Field: key, Value: rec[key], Err: ErrBadNumber}
	}

	return f, nil
}

func flagField(rec Record, key string) (bool, error) {
	v, err := textField(rec, key)
	if err != nil {
		return false, err
	}
	switch strings.ToUpper(v) {
	case "Y":
		return true, nil
	case "N":
		return false, nil
	default:
		return false, &ValidationError{Field: key, Value: rec[key], Err: ErrBadFlag}
	}
}
