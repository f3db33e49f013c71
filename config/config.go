// Package config loads wgraph runtime settings from viper.
package config

import (
	"fmt"
	"io"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"github.com/katalvlaran/wgraph/core"
	"github.com/katalvlaran/wgraph/prim_kruskal"
)

// EnvPrefix is the prefix for environment overrides (WGRAPH_MST_METHOD, ...).
const EnvPrefix = "WGRAPH"

// Config holds all runtime configuration for a wgraph session.
// Values are populated from .wgraph.yaml, WGRAPH_* env vars, and CLI flags.
type Config struct {
	GraphLabel string `mapstructure:"graph_label" toml:"graph_label"`
	MSTLabel   string `mapstructure:"mst_label" toml:"mst_label"`
	MSTMethod  string `mapstructure:"mst_method" toml:"mst_method"`
	Verbose    bool   `mapstructure:"verbose" toml:"verbose"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("graph_label", core.DefaultLabel)
	viper.SetDefault("mst_label", prim_kruskal.DefaultLabel)
	viper.SetDefault("mst_method", prim_kruskal.MethodPrim)
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate rejects an unknown MST method.
func (c Config) Validate() error {
	switch c.MSTMethod {
	case prim_kruskal.MethodPrim, prim_kruskal.MethodKruskal:
		return nil
	default:
		return fmt.Errorf("config: mst_method %q: %w", c.MSTMethod, prim_kruskal.ErrUnknownMethod)
	}
}

// Write encodes c as TOML, the form accepted back by --config x.toml.
func (c Config) Write(w io.Writer) error {
	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: encode toml: %w", err)
	}
	if len(data) > 0 && data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	if _, err = w.Write(data); err != nil {
		return fmt.Errorf("config: write: %w", err)
	}

	return nil
}
