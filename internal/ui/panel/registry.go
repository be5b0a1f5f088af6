package panel

import (
	"fmt"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

// Registry is the immutable feature-to-slot mapping built once when the
// view is constructed. The view controller exclusively owns it and its
// slots; nothing else mutates slot wiring.
type Registry struct {
	entries []registryEntry
}

type registryEntry struct {
	feature entity.Feature
	slot    Slot
}

// Features returns the tracked features in panel order.
func (r *Registry) Features() []entity.Feature {
	out := make([]entity.Feature, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.feature
	}
	return out
}

// buildRegistry acquires one slot per tracked feature from the
// container. The feature-to-variant assignment is fixed here: autoplay
// is the single selector slot, everything else is a toggle slot. It is a
// construction-time fact, never derived from render state.
func buildRegistry(container SlotContainer) (*Registry, error) {
	tracked := entity.Features()
	entries := make([]registryEntry, 0, len(tracked))

	for _, f := range tracked {
		slot, err := slotFor(container, f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, registryEntry{feature: f, slot: slot})
	}

	return &Registry{entries: entries}, nil
}

func slotFor(container SlotContainer, f entity.Feature) (Slot, error) {
	label := container.Label(f)
	if label == nil {
		return nil, fmt.Errorf("site panel: container yielded no label handle for feature %q", f)
	}

	if f == entity.FeatureAutoplay {
		selector := container.Selector(f)
		if selector == nil {
			return nil, fmt.Errorf("site panel: container yielded no selector handle for feature %q", f)
		}
		return SelectorSlot{Label: label, Selector: selector}, nil
	}

	status := container.Status(f)
	if status == nil {
		return nil, fmt.Errorf("site panel: container yielded no status handle for feature %q", f)
	}
	return ToggleSlot{Label: label, Status: status}, nil
}
