package main

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config holds the demo's settings. Flags win over ENGINELOG_* environment variables,
// which win over the defaults below.
type Config struct {
	Dir       string `mapstructure:"dir"`
	InMemory  bool   `mapstructure:"in_memory"`
	Backend   string `mapstructure:"backend"`
	Level     string `mapstructure:"level"`
	Keys      int    `mapstructure:"keys"`
	ValueSize int    `mapstructure:"value_size"`
}

const (
	DefaultDir       = "./enginelog-demo-data"
	DefaultBackend   = string(BackendZerolog)
	DefaultLevel     = "info"
	DefaultKeys      = 100
	DefaultValueSize = 256
)

// flagKeys maps command-line flags to config keys.
var flagKeys = map[string]string{
	"dir":        "dir",
	"in-memory":  "in_memory",
	"backend":    "backend",
	"level":      "level",
	"keys":       "keys",
	"value-size": "value_size",
}

func registerFlags(fs *pflag.FlagSet) {
	fs.String("dir", DefaultDir, "Badger data directory")
	fs.Bool("in-memory", false, "Run badger in memory; --dir is ignored")
	fs.StringP("backend", "b", DefaultBackend, "Log backend for engine lines: zerolog, zap or slog")
	fs.StringP("level", "l", DefaultLevel, "Minimum level printed: debug, info, warn or error")
	fs.IntP("keys", "n", DefaultKeys, "Number of keys to write and read back")
	fs.Int("value-size", DefaultValueSize, "Size of each value in bytes")
}

// loadConfig resolves defaults, environment and flags into a validated Config.
func loadConfig(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	v.SetDefault("dir", DefaultDir)
	v.SetDefault("in_memory", false)
	v.SetDefault("backend", DefaultBackend)
	v.SetDefault("level", DefaultLevel)
	v.SetDefault("keys", DefaultKeys)
	v.SetDefault("value_size", DefaultValueSize)

	v.SetEnvPrefix("ENGINELOG")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for flag, key := range flagKeys {
			f := fs.Lookup(flag)
			if f == nil {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind flag %s: %w", flag, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch Backend(c.Backend) {
	case BackendZerolog, BackendZap, BackendSlog:
	default:
		return fmt.Errorf("invalid backend %q", c.Backend)
	}
	if _, err := parseSeverity(c.Level); err != nil {
		return err
	}
	if c.Keys < 0 {
		return fmt.Errorf("keys must not be negative (got %d)", c.Keys)
	}
	if c.ValueSize < 0 {
		return fmt.Errorf("value size must not be negative (got %d)", c.ValueSize)
	}
	if !c.InMemory && c.Dir == "" {
		return fmt.Errorf("dir is required unless running in memory")
	}
	return nil
}
