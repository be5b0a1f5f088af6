package panel

import (
	"context"
	"fmt"

	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/logging"
)

// Interactor receives the panel's outgoing user-interaction events.
type Interactor interface {
	// OnPermissionsShown fires at most once per render, iff at least one
	// tracked permission is visible.
	OnPermissionsShown()

	// OnPermissionToggled fires when the user activates a toggle row's
	// status control. The argument is the exact value last bound there.
	OnPermissionToggled(perm entity.WebsitePermission)

	// OnAutoplayChanged fires when the user picks a new autoplay option.
	OnAutoplayChanged(option entity.AutoplayOption)
}

// View orchestrates a full render pass over the permission panel.
//
// Render and the listener callbacks it installs all run on the host's
// single UI thread; a render must not be re-entered while one is in
// progress.
type View struct {
	registry   *Registry
	interactor Interactor
}

// NewView builds the slot registry from the container and returns the
// view controller. A container unable to yield a required handle is a
// fatal construction error.
func NewView(container SlotContainer, interactor Interactor) (*View, error) {
	if interactor == nil {
		return nil, fmt.Errorf("site panel: nil interactor")
	}
	registry, err := buildRegistry(container)
	if err != nil {
		return nil, err
	}
	return &View{registry: registry, interactor: interactor}, nil
}

// Registry exposes the view's slot registry (read-only).
func (v *View) Registry() *Registry {
	return v.registry
}

// Render projects the state onto every slot. It first verifies the state
// covers the registry and aggregates visibility, fires the shown
// notification once when anything is visible, then binds each feature in
// panel order. Each bind completes before the next starts.
func (v *View) Render(ctx context.Context, state entity.State) error {
	log := logging.FromContext(ctx)

	// Completeness check before any side effect: a hole in the state
	// aborts the pass with nothing mutated and nothing notified.
	anyVisible := false
	for _, e := range v.registry.entries {
		perm, ok := state[e.feature]
		if !ok {
			return &MissingBindingError{Feature: e.feature}
		}
		if perm.Visible() {
			anyVisible = true
		}
	}

	if anyVisible {
		log.Debug().Msg("site permissions visible, notifying interactor")
		v.interactor.OnPermissionsShown()
	}

	for _, e := range v.registry.entries {
		if err := Bind(state[e.feature], e.slot, v.interactor); err != nil {
			return err
		}
	}
	return nil
}
