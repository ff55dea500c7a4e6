package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/magicmap/config"
	"github.com/katalvlaran/magicmap/routing"
)

// noEnvFile points Load at a dotenv file that does not exist.
func noEnvFile(t *testing.T) config.Option {
	return config.WithEnvFile(filepath.Join(t.TempDir(), "missing.env"))
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, "data/node.csv", cfg.NodesFile)
	assert.Equal(t, "data/edge.csv", cfg.EdgesFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogDevelopment)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, float64(routing.BlockedWeight), cfg.BlockedWeight)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("MAGICMAP_NODES_FILE", "/srv/park/nodes.csv")
	t.Setenv("MAGICMAP_LOG_DEVELOPMENT", "true")
	t.Setenv("MAGICMAP_BLOCKED_WEIGHT", "5000")

	cfg, err := config.Load(noEnvFile(t))
	require.NoError(t, err)
	assert.Equal(t, "/srv/park/nodes.csv", cfg.NodesFile)
	assert.True(t, cfg.LogDevelopment)
	assert.Equal(t, 5000.0, cfg.BlockedWeight)
}

func TestLoad_DotEnv(t *testing.T) {
	require.NoError(t, os.Unsetenv("MAGICMAP_HTTP_ADDR"))
	t.Cleanup(func() { os.Unsetenv("MAGICMAP_HTTP_ADDR") })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("MAGICMAP_HTTP_ADDR=127.0.0.1:9000\n"), 0o600))

	cfg, err := config.Load(config.WithEnvFile(path))
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
}

func TestLoad_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "magicmap.yaml")
	require.NoError(t, os.WriteFile(path, []byte("edges_file: park/edges.csv\nlog_level: debug\n"), 0o600))

	cfg, err := config.Load(noEnvFile(t), config.WithFile(path))
	require.NoError(t, err)
	assert.Equal(t, "park/edges.csv", cfg.EdgesFile)
	assert.Equal(t, "debug", cfg.LogLevel)

	_, err = config.Load(noEnvFile(t), config.WithFile(filepath.Join(t.TempDir(), "absent.yaml")))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	t.Setenv("MAGICMAP_BLOCKED_WEIGHT", "-1")
	_, err := config.Load(noEnvFile(t))
	assert.ErrorIs(t, err, routing.ErrBadBlockedWeight)
}

func TestConfig_Validate(t *testing.T) {
	good := config.Config{
		NodesFile: "n.csv", EdgesFile: "e.csv", LogLevel: "warn",
		HTTPAddr: ":0", BlockedWeight: routing.BlockedWeight,
	}
	require.NoError(t, good.Validate())

	bad := good
	bad.EdgesFile = ""
	assert.ErrorIs(t, bad.Validate(), config.ErrMissingPath)

	bad = good
	bad.HTTPAddr = ""
	assert.ErrorIs(t, bad.Validate(), config.ErrMissingAddr)

	bad = good
	bad.LogLevel = "loud"
	assert.Error(t, bad.Validate())

	opts, err := good.RoutingOptions()
	require.NoError(t, err)
	assert.Len(t, opts, 1)
	assert.Equal(t, "warn", good.Logger().Level)
}
