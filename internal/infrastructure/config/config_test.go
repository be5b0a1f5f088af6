package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
	assert.Equal(t, "Allowed", cfg.Panel.StatusAllowed)
	assert.Equal(t, "Blocked", cfg.Panel.StatusBlocked)
	assert.Equal(t, entity.AutoplayAllowAll, cfg.DefaultAutoplayOption())
	assert.NoError(t, validateConfig(cfg))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "empty format accepted",
			mutate: func(c *Config) { c.Logging.Format = "" },
		},
		{
			name:    "bad format",
			mutate:  func(c *Config) { c.Logging.Format = "xml" },
			wantErr: "logging.format",
		},
		{
			name:    "bad autoplay mode",
			mutate:  func(c *Config) { c.Panel.DefaultAutoplay = "sometimes" },
			wantErr: "default_autoplay",
		},
		{
			name:   "known disabled feature",
			mutate: func(c *Config) { c.Panel.DisabledFeatures = []string{"camera", "autoplay"} },
		},
		{
			name:    "unknown disabled feature",
			mutate:  func(c *Config) { c.Panel.DisabledFeatures = []string{"bluetooth"} },
			wantErr: "disabled_features",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDefaultAutoplayOption_FallsBackOnGarbage(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Panel.DefaultAutoplay = "not-a-mode"
	assert.Equal(t, entity.AutoplayAllowAll, cfg.DefaultAutoplayOption())
}

func TestFeatureDisabled(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Panel.DisabledFeatures = []string{"microphone"}

	assert.True(t, cfg.FeatureDisabled(entity.FeatureMicrophone))
	assert.False(t, cfg.FeatureDisabled(entity.FeatureCamera))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)
	assert.Contains(t, string(data), "default_autoplay")
	assert.Contains(t, string(data), "status_allowed")
}
