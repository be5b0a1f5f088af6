package panel

import (
	"github.com/bnema/sitepanel/internal/domain/entity"
)

// Bind projects one permission snapshot onto one slot and rewires its
// interaction listener. The caller pairs snapshot and slot by iterating
// the registry in lockstep with the state.
//
// The common enabled/visible projection is applied before the variant
// check, so a variant mismatch leaves no partial mutation beyond those
// fields. Listener installation relies on the handles' set-and-replace
// contract: rebinding the same slot any number of times leaves exactly
// one live listener.
func Bind(perm entity.WebsitePermission, slot Slot, interactor Interactor) error {
	slot.label().SetEnabled(perm.Enabled())
	slot.label().SetVisible(perm.Visible())

	switch s := slot.(type) {
	case ToggleSlot:
		return bindToggle(perm, s, interactor)
	case SelectorSlot:
		return bindSelector(perm, s, interactor)
	default:
		// Slot is sealed; a third variant cannot exist.
		return &VariantMismatchError{Feature: perm.Feature(), Slot: "unknown slot", Got: permissionKind(perm)}
	}
}

func bindToggle(perm entity.WebsitePermission, slot ToggleSlot, interactor Interactor) error {
	slot.Status.SetVisible(perm.Visible())

	toggle, ok := perm.(entity.TogglePermission)
	if !ok {
		return &VariantMismatchError{Feature: perm.Feature(), Slot: "toggle slot", Got: permissionKind(perm)}
	}

	slot.Status.SetText(toggle.Status())

	// The activation listener captures the value bound at this render, so
	// a late click reports the state as of the last render rather than a
	// freshly re-read one.
	bound := toggle
	slot.Status.SetOnActivate(func() {
		interactor.OnPermissionToggled(bound)
	})
	return nil
}

func bindSelector(perm entity.WebsitePermission, slot SelectorSlot, interactor Interactor) error {
	slot.Selector.SetVisible(perm.Visible())

	autoplay, ok := perm.(entity.AutoplayPermission)
	if !ok {
		return &VariantMismatchError{Feature: perm.Feature(), Slot: "selector slot", Got: permissionKind(perm)}
	}

	selected, ok := autoplay.SelectedIndex()
	if !ok {
		return &SelectionNotFoundError{Current: autoplay.Current, Options: autoplay.Options}
	}

	labels := make([]string, len(autoplay.Options))
	for i, option := range autoplay.Options {
		labels[i] = option.Label()
	}
	slot.Selector.SetOptions(labels)
	slot.Selector.SelectSilently(selected)

	// Own copy of the option list: the listener may outlive the caller's
	// use of the snapshot slice.
	options := append([]entity.AutoplayOption(nil), autoplay.Options...)
	slot.Selector.SetOnSelected(func(index int) {
		if index < 0 || index >= len(options) {
			return
		}
		interactor.OnAutoplayChanged(options[index])
	})
	return nil
}

func permissionKind(perm entity.WebsitePermission) string {
	if _, ok := perm.(entity.AutoplayPermission); ok {
		return "autoplay"
	}
	return "toggle"
}
