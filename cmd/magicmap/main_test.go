package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicmap/routing"
)

func useTestdata(t *testing.T, edges string) []string {
	t.Helper()
	dir := filepath.Join("..", "..", "loader", "testdata")
	t.Setenv("MAGICMAP_NODES_FILE", filepath.Join(dir, "node.csv"))
	t.Setenv("MAGICMAP_EDGES_FILE", filepath.Join(dir, edges))
	t.Setenv("MAGICMAP_LOG_LEVEL", "error")

	return []string{"-env", filepath.Join(t.TempDir(), "none.env")}
}

func TestRun_Verify(t *testing.T) {
	args := useTestdata(t, "edge.csv")
	require.NoError(t, run(append(args, "verify")))

	args = useTestdata(t, "edge_incomplete.csv")
	assert.ErrorIs(t, run(append(args, "verify")), errDisconnected)
}

func TestRun_Dot(t *testing.T) {
	args := useTestdata(t, "edge.csv")
	require.NoError(t, run(append(args, "-from", "1", "-to", "8", "dot")))
	assert.Error(t, run(append(args, "-from", "1", "-to", "8", "-accessible", "dot")))
}

func TestRun_UnknownMode(t *testing.T) {
	args := useTestdata(t, "edge.csv")
	assert.Error(t, run(append(args, "fly")))
}

func TestRun_DotZeroID(t *testing.T) {
	// The test park has no node 0, so an explicit -from 0 -to 0 must be
	// routed and rejected rather than taken as "no route requested".
	args := useTestdata(t, "edge.csv")
	assert.ErrorIs(t, run(append(args, "-from", "0", "-to", "0", "dot")), routing.ErrInvalidNodeReference)

	dir := t.TempDir()
	nodes := filepath.Join(dir, "node.csv")
	edges := filepath.Join(dir, "edge.csv")
	require.NoError(t, os.WriteFile(nodes, []byte("id,name,type\n0,Gate,E\n1,Shop,S\n"), 0o600))
	require.NoError(t, os.WriteFile(edges, []byte("u_node,v_node,weight,if_accessible,if_directed\n0,1,5,N,N\n"), 0o600))
	t.Setenv("MAGICMAP_NODES_FILE", nodes)
	t.Setenv("MAGICMAP_EDGES_FILE", edges)

	require.NoError(t, run(append(args, "-from", "1", "-to", "0", "dot")))
	assert.Error(t, run(append(args, "-from", "0", "-to", "1", "-accessible", "dot")))
}
