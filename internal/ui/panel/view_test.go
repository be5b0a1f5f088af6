package panel_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/ui/panel"
)

func TestNewView(t *testing.T) {
	t.Run("builds registry in panel order", func(t *testing.T) {
		container := newFakeContainer()

		view, err := panel.NewView(container, &recordingInteractor{})
		require.NoError(t, err)

		assert.Equal(t, entity.Features(), view.Registry().Features())
	})

	t.Run("rejects nil interactor", func(t *testing.T) {
		container := newFakeContainer()

		view, err := panel.NewView(container, nil)
		assert.Error(t, err)
		assert.Nil(t, view)
	})

	t.Run("rejects container missing a handle", func(t *testing.T) {
		container := newFakeContainer()
		container.dropLabel = entity.FeatureMicrophone

		view, err := panel.NewView(container, &recordingInteractor{})
		require.Error(t, err)
		assert.Nil(t, view)
		assert.Contains(t, err.Error(), "microphone")
	})
}

func TestViewRender_ShownNotification(t *testing.T) {
	t.Run("all rows hidden fires nothing", func(t *testing.T) {
		container := newFakeContainer()
		interactor := &recordingInteractor{}
		view, err := panel.NewView(container, interactor)
		require.NoError(t, err)

		require.NoError(t, view.Render(context.Background(), hiddenState()))

		assert.Equal(t, 0, interactor.shown)
		for _, f := range entity.Features() {
			assert.False(t, container.labels[f].visible, "label for %s should stay hidden", f)
		}
	})

	t.Run("fires once regardless of visible row count", func(t *testing.T) {
		state := hiddenState()
		state[entity.FeatureCamera] = entity.TogglePermission{
			ForFeature: entity.FeatureCamera,
			IsEnabled:  true,
			IsVisible:  true,
			StatusText: "Allowed",
		}
		state[entity.FeatureLocation] = entity.TogglePermission{
			ForFeature: entity.FeatureLocation,
			IsEnabled:  true,
			IsVisible:  true,
			StatusText: "Blocked",
		}

		container := newFakeContainer()
		interactor := &recordingInteractor{}
		view, err := panel.NewView(container, interactor)
		require.NoError(t, err)

		require.NoError(t, view.Render(context.Background(), state))

		assert.Equal(t, 1, interactor.shown)
		assert.True(t, container.labels[entity.FeatureCamera].visible)
		assert.True(t, container.statuses[entity.FeatureLocation].visible)
		assert.False(t, container.labels[entity.FeatureNotification].visible)
	})

	t.Run("fires once per render pass", func(t *testing.T) {
		state := hiddenState()
		state[entity.FeatureCamera] = entity.TogglePermission{
			ForFeature: entity.FeatureCamera,
			IsVisible:  true,
			StatusText: "Allowed",
		}

		container := newFakeContainer()
		interactor := &recordingInteractor{}
		view, err := panel.NewView(container, interactor)
		require.NoError(t, err)

		require.NoError(t, view.Render(context.Background(), state))
		require.NoError(t, view.Render(context.Background(), state))

		assert.Equal(t, 2, interactor.shown)
	})
}

func TestViewRender_MissingFeature(t *testing.T) {
	state := hiddenState()
	state[entity.FeatureCamera] = entity.TogglePermission{
		ForFeature: entity.FeatureCamera,
		IsVisible:  true,
		StatusText: "Allowed",
	}
	delete(state, entity.FeatureNotification)

	container := newFakeContainer()
	interactor := &recordingInteractor{}
	view, err := panel.NewView(container, interactor)
	require.NoError(t, err)

	err = view.Render(context.Background(), state)

	var missing *panel.MissingBindingError
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, entity.FeatureNotification, missing.Feature)

	// The hole is detected before any side effect: no notification, no
	// mutation of the earlier, valid rows.
	assert.Equal(t, 0, interactor.shown)
	assert.False(t, container.labels[entity.FeatureCamera].visible)
	assert.Empty(t, container.statuses[entity.FeatureCamera].text)
}

func TestViewRender_ToggleActivation(t *testing.T) {
	state := hiddenState()
	camera := entity.TogglePermission{
		ForFeature: entity.FeatureCamera,
		IsEnabled:  true,
		IsVisible:  true,
		StatusText: "Allowed",
	}
	state[entity.FeatureCamera] = camera

	container := newFakeContainer()
	interactor := &recordingInteractor{}
	view, err := panel.NewView(container, interactor)
	require.NoError(t, err)
	require.NoError(t, view.Render(context.Background(), state))

	container.statuses[entity.FeatureCamera].click()

	require.Len(t, interactor.toggled, 1)
	assert.Equal(t, camera, interactor.toggled[0])

	t.Run("rebind replaces the captured snapshot", func(t *testing.T) {
		updated := camera
		updated.StatusText = "Blocked"
		state[entity.FeatureCamera] = updated
		require.NoError(t, view.Render(context.Background(), state))

		container.statuses[entity.FeatureCamera].click()

		require.Len(t, interactor.toggled, 2)
		assert.Equal(t, updated, interactor.toggled[1])
	})
}

func TestViewRender_AutoplaySelection(t *testing.T) {
	state := hiddenState()
	state[entity.FeatureAutoplay] = entity.AutoplayPermission{
		IsEnabled:  true,
		IsVisible:  true,
		StatusText: entity.AutoplayBlockAudible.Label(),
		Options:    entity.AutoplayOptions(),
		Current:    entity.AutoplayBlockAudible,
	}

	container := newFakeContainer()
	interactor := &recordingInteractor{}
	view, err := panel.NewView(container, interactor)
	require.NoError(t, err)
	require.NoError(t, view.Render(context.Background(), state))

	selector := container.selector
	require.Equal(t, []string{
		entity.AutoplayAllowAll.Label(),
		entity.AutoplayBlockAudible.Label(),
		entity.AutoplayBlockAll.Label(),
	}, selector.options)
	assert.Equal(t, 1, selector.selected, "current option derives the selected index")
	assert.Equal(t, 1, selector.silentCalls)
	assert.Empty(t, interactor.autoplay, "programmatic selection must not fire the listener")

	t.Run("user selection reports the option at that index", func(t *testing.T) {
		selector.userSelect(2)

		require.Len(t, interactor.autoplay, 1)
		assert.Equal(t, entity.AutoplayBlockAll, interactor.autoplay[0])
	})

	t.Run("out of range index is dropped", func(t *testing.T) {
		selector.userSelect(7)
		selector.userSelect(-1)

		assert.Len(t, interactor.autoplay, 1)
	})
}

func TestViewRender_RebindKeepsSingleListener(t *testing.T) {
	state := hiddenState()
	state[entity.FeatureCamera] = entity.TogglePermission{
		ForFeature: entity.FeatureCamera,
		IsVisible:  true,
		StatusText: "Allowed",
	}
	state[entity.FeatureAutoplay] = entity.AutoplayPermission{
		IsVisible:  true,
		StatusText: entity.AutoplayAllowAll.Label(),
		Options:    entity.AutoplayOptions(),
		Current:    entity.AutoplayAllowAll,
	}

	container := newFakeContainer()
	interactor := &recordingInteractor{}
	view, err := panel.NewView(container, interactor)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		require.NoError(t, view.Render(context.Background(), state))
	}

	container.statuses[entity.FeatureCamera].click()
	container.selector.userSelect(0)

	// Each render replaces the previous listener, so three renders still
	// yield exactly one event per activation.
	assert.Len(t, interactor.toggled, 1)
	assert.Len(t, interactor.autoplay, 1)
}

func TestViewRender_FullPanelScenario(t *testing.T) {
	// One visible toggle row plus a visible autoplay row, everything else
	// hidden. This is the shape the panel shows for a typical origin.
	state := hiddenState()
	state[entity.FeatureCamera] = entity.TogglePermission{
		ForFeature: entity.FeatureCamera,
		IsEnabled:  true,
		IsVisible:  true,
		StatusText: "Allowed",
	}
	state[entity.FeatureAutoplay] = entity.AutoplayPermission{
		IsEnabled:  true,
		IsVisible:  true,
		StatusText: entity.AutoplayBlockAll.Label(),
		Options:    []entity.AutoplayOption{entity.AutoplayBlockAll, entity.AutoplayAllowAll},
		Current:    entity.AutoplayBlockAll,
	}

	container := newFakeContainer()
	interactor := &recordingInteractor{}
	view, err := panel.NewView(container, interactor)
	require.NoError(t, err)

	require.NoError(t, view.Render(context.Background(), state))

	assert.Equal(t, 1, interactor.shown)

	camera := container.statuses[entity.FeatureCamera]
	assert.True(t, container.labels[entity.FeatureCamera].visible)
	assert.True(t, container.labels[entity.FeatureCamera].enabled)
	assert.True(t, camera.visible)
	assert.Equal(t, "Allowed", camera.text)

	assert.True(t, container.selector.visible)
	assert.Equal(t, 0, container.selector.selected)

	for _, f := range []entity.Feature{
		entity.FeatureLocation,
		entity.FeatureMicrophone,
		entity.FeatureNotification,
		entity.FeaturePersistentStorage,
		entity.FeatureMediaKeySystemAccess,
	} {
		assert.False(t, container.labels[f].visible, "label for %s", f)
		assert.False(t, container.statuses[f].visible, "status for %s", f)
	}
}
