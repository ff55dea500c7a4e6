// Package loader reads the park node and edge datasets from CSV and builds
// a core.Graph from them.
//
// Both files start with a header row naming the columns; every following row
// becomes one core.Record keyed by those names. Column semantics are owned by
// core.Construct, not by this package.
package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/magicmap/core"
)

var (
	// ErrNoHeader is returned when a dataset has no header row.
	ErrNoHeader = errors.New("loader: missing header row")

	// ErrBadHeader is returned when a header has blank or repeated column names.
	ErrBadHeader = errors.New("loader: invalid header row")
)

// Option configures Load and LoadFiles.
type Option func(*options)

type options struct {
	log       *zap.Logger
	construct []core.ConstructOption
}

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}

// WithSchema forwards a non-default column schema to core.Construct.
func WithSchema(s core.Schema) Option {
	return func(o *options) { o.construct = append(o.construct, core.WithSchema(s)) }
}

func buildOptions(opts []Option) options {
	o := options{log: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ReadRecords parses CSV from r into records keyed by the header row.
// Header names and cell values are trimmed of surrounding whitespace, and a
// leading UTF-8 byte order mark is dropped.
func ReadRecords(r io.Reader) ([]core.Record, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("loader: read header: %w", err)
	}
	if err = normalizeHeader(header); err != nil {
		return nil, err
	}

	var out []core.Record
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: read row %d: %w", len(out)+1, err)
		}
		rec := make(core.Record, len(header))
		for i, col := range header {
			rec[col] = strings.TrimSpace(row[i])
		}
		out = append(out, rec)
	}

	return out, nil
}

func normalizeHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for i, col := range header {
		col = strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))
		if col == "" {
			return fmt.Errorf("%w: blank column %d", ErrBadHeader, i+1)
		}
		if _, dup := seen[col]; dup {
			return fmt.Errorf("%w: column %q repeated", ErrBadHeader, col)
		}
		seen[col] = struct{}{}
		header[i] = col
	}

	return nil
}

// Load reads both datasets and constructs the graph.
func Load(nodes, edges io.Reader, opts ...Option) (*core.Graph, error) {
	o := buildOptions(opts)

	nodeRecs, err := ReadRecords(nodes)
	if err != nil {
		return nil, fmt.Errorf("nodes: %w", err)
	}
	edgeRecs, err := ReadRecords(edges)
	if err != nil {
		return nil, fmt.Errorf("edges: %w", err)
	}

	g, err := core.Construct(nodeRecs, edgeRecs, o.construct...)
	if err != nil {
		o.log.Error("park map rejected", zap.Error(err))
		return nil, err
	}
	o.log.Info("park map loaded",
		zap.Int("nodes", g.NodeCount()),
		zap.Int("edges", g.EdgeCount()),
		zap.Int("node_records", len(nodeRecs)),
		zap.Int("edge_records", len(edgeRecs)),
	)

	return g, nil
}

// LoadFiles opens the two dataset files and calls Load.
func LoadFiles(nodesPath, edgesPath string, opts ...Option) (*core.Graph, error) {
	nf, err := os.Open(nodesPath)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer nf.Close()

	ef, err := os.Open(edgesPath)
	if err != nil {
		return nil, fmt.Errorf("loader: %w", err)
	}
	defer ef.Close()

	o := buildOptions(opts)
	o.log.Debug("loading park map", zap.String("nodes", nodesPath), zap.String("edges", edgesPath))

	return Load(nf, ef, opts...)
}
