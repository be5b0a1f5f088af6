// Package config handles sitepanel configuration loading, watching, and
// reloading, backed by Viper with TOML files and SITEPANEL_ environment
// overrides.
package config

import (
	"fmt"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

// Config is the full configuration surface.
type Config struct {
	Database DatabaseConfig `mapstructure:"database" json:"database"`
	Logging  LoggingConfig  `mapstructure:"logging" json:"logging"`
	Panel    PanelConfig    `mapstructure:"panel" json:"panel"`
}

// DatabaseConfig configures the permission store.
type DatabaseConfig struct {
	// Path to the SQLite database file. Empty means the default under the
	// XDG data directory.
	Path string `mapstructure:"path" json:"path,omitempty" jsonschema:"description=Path to the SQLite database file"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	Level  string `mapstructure:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	Format string `mapstructure:"format" json:"format" jsonschema:"enum=console,enum=json"`
}

// PanelConfig configures how stored decisions project onto the panel.
type PanelConfig struct {
	// StatusAllowed is the status text for granted features.
	StatusAllowed string `mapstructure:"status_allowed" json:"status_allowed"`

	// StatusBlocked is the status text for denied features.
	StatusBlocked string `mapstructure:"status_blocked" json:"status_blocked"`

	// DefaultAutoplay is the autoplay mode used when an origin has no
	// stored mode.
	DefaultAutoplay string `mapstructure:"default_autoplay" json:"default_autoplay" jsonschema:"enum=allow_all,enum=block_audible,enum=block_all"`

	// DisabledFeatures lists features whose rows are rendered
	// non-interactable regardless of stored decisions.
	DisabledFeatures []string `mapstructure:"disabled_features" json:"disabled_features,omitempty"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Panel: PanelConfig{
			StatusAllowed:   "Allowed",
			StatusBlocked:   "Blocked",
			DefaultAutoplay: string(entity.AutoplayAllowAll),
		},
	}
}

// DefaultAutoplayOption returns the configured default autoplay mode.
func (c *Config) DefaultAutoplayOption() entity.AutoplayOption {
	if option, ok := entity.ParseAutoplayOption(c.Panel.DefaultAutoplay); ok {
		return option
	}
	return entity.AutoplayAllowAll
}

// FeatureDisabled reports whether a feature is globally switched off.
func (c *Config) FeatureDisabled(f entity.Feature) bool {
	for _, name := range c.Panel.DisabledFeatures {
		if name == string(f) {
			return true
		}
	}
	return false
}

func validateConfig(cfg *Config) error {
	switch cfg.Logging.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", cfg.Logging.Format)
	}

	if cfg.Panel.DefaultAutoplay != "" {
		if _, ok := entity.ParseAutoplayOption(cfg.Panel.DefaultAutoplay); !ok {
			return fmt.Errorf("panel.default_autoplay: unknown autoplay mode %q", cfg.Panel.DefaultAutoplay)
		}
	}

	for _, name := range cfg.Panel.DisabledFeatures {
		if _, ok := entity.ParseFeature(name); !ok {
			return fmt.Errorf("panel.disabled_features: unknown feature %q", name)
		}
	}
	return nil
}
