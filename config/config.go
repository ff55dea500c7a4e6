// Package config loads magicmap settings from defaults, an optional config
// file, an optional .env file and MAGICMAP_* environment variables, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/katalvlaran/magicmap/logger"
	"github.com/katalvlaran/magicmap/routing"
)

// EnvPrefix prefixes every environment override, e.g. MAGICMAP_NODES_FILE.
const EnvPrefix = "MAGICMAP"

// Keys.
const (
	KeyNodesFile      = "nodes_file"
	KeyEdgesFile      = "edges_file"
	KeyLogLevel       = "log_level"
	KeyLogDevelopment = "log_development"
	KeyHTTPAddr       = "http_addr"
	KeyBlockedWeight  = "blocked_weight"
)

var (
	// ErrMissingPath is returned when a data file path is empty.
	ErrMissingPath = errors.New("config: data file path is empty")
	// ErrMissingAddr is returned when the HTTP address is empty.
	ErrMissingAddr = errors.New("config: http address is empty")
)

// Config holds the resolved settings.
type Config struct {
	NodesFile      string  `mapstructure:"nodes_file"`
	EdgesFile      string  `mapstructure:"edges_file"`
	LogLevel       string  `mapstructure:"log_level"`
	LogDevelopment bool    `mapstructure:"log_development"`
	HTTPAddr       string  `mapstructure:"http_addr"`
	BlockedWeight  float64 `mapstructure:"blocked_weight"`
}

// Validate checks every field.
func (c Config) Validate() error {
	if c.NodesFile == "" || c.EdgesFile == "" {
		return ErrMissingPath
	}
	if c.HTTPAddr == "" {
		return ErrMissingAddr
	}
	if err := c.Logger().Validate(); err != nil {
		return fmt.Errorf("config: %s: %w", KeyLogLevel, err)
	}
	if _, err := c.RoutingOptions(); err != nil {
		return fmt.Errorf("config: %s: %w", KeyBlockedWeight, err)
	}

	return nil
}

// Logger returns the logger configuration.
func (c Config) Logger() logger.Configuration {
	lc := logger.DefaultConfiguration()
	lc.Level = c.LogLevel
	lc.Development = c.LogDevelopment

	return lc
}

// RoutingOptions returns the route query options, checked against the
// routing package's own validation.
func (c Config) RoutingOptions() ([]routing.Option, error) {
	opts := []routing.Option{routing.WithBlockedWeight(c.BlockedWeight)}
	if err := routing.ValidateOptions(opts...); err != nil {
		return nil, err
	}

	return opts, nil
}

// Option configures Load.
type Option func(*loadOptions)

type loadOptions struct {
	file    string
	envFile string
}

// WithFile reads settings from a config file (any format viper supports).
func WithFile(path string) Option {
	return func(o *loadOptions) { o.file = path }
}

// WithEnvFile loads a dotenv file other than ./.env.
func WithEnvFile(path string) Option {
	return func(o *loadOptions) { o.envFile = path }
}

// SetDefaults registers the default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyNodesFile, "data/node.csv")
	v.SetDefault(KeyEdgesFile, "data/edge.csv")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
	v.SetDefault(KeyHTTPAddr, ":8080")
	v.SetDefault(KeyBlockedWeight, float64(routing.BlockedWeight))
}

// Load resolves the configuration. A missing .env file is not an error; a
// missing explicit config file is.
func Load(opts ...Option) (Config, error) {
	o := loadOptions{envFile: ".env"}
	for _, opt := range opts {
		opt(&o)
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(o.envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("config: load %s: %w", o.envFile, err)
	}

	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if o.file != "" {
		v.SetConfigFile(o.file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: read %s: %w", o.file, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
