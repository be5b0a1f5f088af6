// Package panel implements the state-to-view binding engine for the
// per-website permission panel. It projects immutable permission
// snapshots onto display slots supplied by a host container (GTK
// widgets, TUI rows) and wires user interactions back to an Interactor.
//
// The package owns no widgets itself: the host exposes display handles
// through SlotContainer and the binder drives them. All entry points run
// on a single logical UI thread; nothing here is safe for concurrent
// use.
package panel

import "github.com/bnema/sitepanel/internal/domain/entity"

// LabelHandle is the display handle for a feature's name label.
type LabelHandle interface {
	SetEnabled(enabled bool)
	SetVisible(visible bool)
}

// StatusHandle is the display handle for a toggle feature's status
// control. SetOnActivate follows set-and-replace semantics: installing a
// callback discards the previous one, so after any number of binds
// exactly one activation listener is live. A nil callback clears it.
type StatusHandle interface {
	SetVisible(visible bool)
	SetText(text string)
	SetOnActivate(fn func())
}

// SelectorHandle is the display handle for the autoplay selector.
//
// SelectSilently must not fire the selection callback; only user-driven
// selection changes may. SetOnSelected follows the same set-and-replace
// semantics as StatusHandle.SetOnActivate.
type SelectorHandle interface {
	SetVisible(visible bool)
	SetOptions(labels []string)
	SelectSilently(index int)
	SetOnSelected(fn func(index int))
}

// SlotContainer is the host contract: it yields the display handles the
// registry needs for each feature. A nil return means the container
// cannot represent that feature, which is a fatal construction error.
//
// Status is only consulted for toggle features and Selector only for
// autoplay.
type SlotContainer interface {
	Label(f entity.Feature) LabelHandle
	Status(f entity.Feature) StatusHandle
	Selector(f entity.Feature) SelectorHandle
}
