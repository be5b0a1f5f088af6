package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

func TestFeatures_PanelOrder(t *testing.T) {
	want := []entity.Feature{
		entity.FeatureCamera,
		entity.FeatureLocation,
		entity.FeatureMicrophone,
		entity.FeatureNotification,
		entity.FeaturePersistentStorage,
		entity.FeatureMediaKeySystemAccess,
		entity.FeatureAutoplay,
	}
	assert.Equal(t, want, entity.Features())
}

func TestParseFeature(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  entity.Feature
		ok    bool
	}{
		{name: "camera", input: "camera", want: entity.FeatureCamera, ok: true},
		{name: "persistent storage", input: "persistent_storage", want: entity.FeaturePersistentStorage, ok: true},
		{name: "protected media", input: "media_key_system_access", want: entity.FeatureMediaKeySystemAccess, ok: true},
		{name: "autoplay", input: "autoplay", want: entity.FeatureAutoplay, ok: true},
		{name: "unknown", input: "bluetooth", ok: false},
		{name: "empty", input: "", ok: false},
		{name: "case sensitive", input: "Camera", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := entity.ParseFeature(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFeatureDisplayName(t *testing.T) {
	assert.Equal(t, "Camera", entity.FeatureCamera.DisplayName())
	assert.Equal(t, "Protected Media", entity.FeatureMediaKeySystemAccess.DisplayName())
	assert.Equal(t, "weird", entity.Feature("weird").DisplayName())
}

func TestParseAutoplayOption(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  entity.AutoplayOption
		ok    bool
	}{
		{name: "allow all", input: "allow_all", want: entity.AutoplayAllowAll, ok: true},
		{name: "block audible", input: "block_audible", want: entity.AutoplayBlockAudible, ok: true},
		{name: "block all", input: "block_all", want: entity.AutoplayBlockAll, ok: true},
		{name: "unknown", input: "mute", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := entity.ParseAutoplayOption(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAutoplayOptionLabels(t *testing.T) {
	options := entity.AutoplayOptions()
	require.Len(t, options, 3)

	seen := make(map[string]bool, len(options))
	for _, o := range options {
		label := o.Label()
		assert.NotEmpty(t, label)
		assert.False(t, seen[label], "duplicate label %q", label)
		seen[label] = true
	}
}
