// Package config loads CLI configuration for credsift.
//
// Precedence (highest to lowest): flags > env vars > config file > defaults.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/leapstack-labs/credsift/pkg/dialect"
	"github.com/leapstack-labs/credsift/pkg/query"
	"github.com/spf13/pflag"
)

// Config holds all CLI configuration options.
type Config struct {
	Dialect      string `koanf:"dialect" yaml:"dialect"`
	DefaultField string `koanf:"default_field" yaml:"default_field"`
	Table        string `koanf:"table" yaml:"table"`
	EntityColumn string `koanf:"entity_column" yaml:"entity_column"`
	Format       string `koanf:"format" yaml:"format"`
	Verbose      bool   `koanf:"verbose" yaml:"verbose"`
}

// Default configuration values.
const (
	DefaultDialect      = "clickhouse"
	DefaultDefaultField = "email"
	DefaultTable        = "credentials"
	DefaultEntityColumn = "device_id"
	DefaultFormat       = "table"
)

// Package-level koanf instance and config file tracking.
var (
	k              = koanf.New(".")
	configFileUsed string
)

// findConfigFile finds the config file to use.
// Priority: explicit path > credsift.yaml > credsift.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range []string{"credsift.yaml", "credsift.yml"} {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// GetConfigFileUsed returns the config file loaded by the last Load call,
// or "" when only defaults, env, and flags applied.
func GetConfigFileUsed() string {
	return configFileUsed
}

// Load loads configuration from file, environment variables, and flags.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	// Reset koanf for a fresh load
	k = koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"dialect":       DefaultDialect,
		"default_field": DefaultDefaultField,
		"table":         DefaultTable,
		"entity_column": DefaultEntityColumn,
		"format":        DefaultFormat,
		"verbose":       false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file, when present
	configFileUsed = findConfigFile(cfgFile)
	if configFileUsed != "" {
		if err := k.Load(file.Provider(configFileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFileUsed, err)
		}
	}

	// 3. Environment variables: CREDSIFT_DEFAULT_FIELD -> default_field
	if err := k.Load(env.Provider("CREDSIFT_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "CREDSIFT_"))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags (highest priority). Only flags that were explicitly set
	// override earlier layers.
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks that the configuration names a known dialect and a
// usable default field.
func (c *Config) Validate() error {
	if _, ok := dialect.Get(c.Dialect); !ok {
		return fmt.Errorf("unknown dialect %q (available: %s)",
			c.Dialect, strings.Join(dialect.List(), ", "))
	}
	if _, err := c.DefaultFieldKind(); err != nil {
		return err
	}
	if c.Table == "" {
		return fmt.Errorf("table must not be empty")
	}
	if c.EntityColumn == "" {
		return fmt.Errorf("entity_column must not be empty")
	}
	return nil
}

// DialectOrDefault resolves the configured dialect.
func (c *Config) DialectOrDefault() *dialect.Dialect {
	if d, ok := dialect.Get(c.Dialect); ok {
		return d
	}
	return dialect.Default()
}

// DefaultFieldKind maps the configured default_field to the field kind
// bare search terms are routed to.
func (c *Config) DefaultFieldKind() (query.FieldKind, error) {
	switch strings.ToLower(c.DefaultField) {
	case "email", "user", "username", "identity":
		return query.FieldIdentity, nil
	case "domain":
		return query.FieldDomain, nil
	default:
		return query.FieldNone, fmt.Errorf("unknown default_field %q (want email or domain)", c.DefaultField)
	}
}
