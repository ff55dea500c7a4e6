// Package logger builds the zap logger shared by every magicmap component.
package logger

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ErrBadTimeFormat is returned when Configuration.TimeFormat is empty.
var ErrBadTimeFormat = errors.New("logger: empty time format")

// Configuration selects the level and encoding of the logger.
type Configuration struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Development switches to the console encoder with caller and stack traces.
	Development bool
	// TimeFormat is a Go time layout for the "ts" field.
	TimeFormat string
}

// DefaultConfiguration logs info and above as JSON with RFC3339Nano timestamps.
func DefaultConfiguration() Configuration {
	return Configuration{Level: "info", TimeFormat: time.RFC3339Nano}
}

// Validate checks that the level parses and a time format is set.
func (c Configuration) Validate() error {
	if _, err := zapcore.ParseLevel(c.Level); err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	if c.TimeFormat == "" {
		return ErrBadTimeFormat
	}

	return nil
}

// New builds a logger from cfg.
func New(cfg Configuration) (*zap.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	level, _ := zapcore.ParseLevel(cfg.Level)

	zc := zap.NewProductionConfig()
	if cfg.Development {
		zc = zap.NewDevelopmentConfig()
	}
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout(cfg.TimeFormat)

	return zc.Build()
}
