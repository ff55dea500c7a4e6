package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/magicmap/logger"
)

func TestNew_Levels(t *testing.T) {
	cfg := logger.DefaultConfiguration()
	log, err := logger.New(cfg)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

	cfg.Level = "debug"
	cfg.Development = true
	log, err = logger.New(cfg)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestConfiguration_Validate(t *testing.T) {
	cfg := logger.DefaultConfiguration()
	require.NoError(t, cfg.Validate())

	cfg.Level = "chatty"
	assert.Error(t, cfg.Validate())
	_, err := logger.New(cfg)
	assert.Error(t, err)

	cfg = logger.DefaultConfiguration()
	cfg.TimeFormat = ""
	assert.ErrorIs(t, cfg.Validate(), logger.ErrBadTimeFormat)
}
