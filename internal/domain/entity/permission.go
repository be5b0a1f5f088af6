package entity

// WebsitePermission is an immutable display snapshot of one feature's
// state on the current site: whether its row is interactable, whether it
// is shown at all, and the status text rendered next to it.
//
// The variant set is sealed to exactly two implementations,
// TogglePermission and AutoplayPermission. The panel binder matches on
// the concrete type; a selector slot receiving anything other than
// AutoplayPermission is a programming error, not a recoverable state.
type WebsitePermission interface {
	Feature() Feature
	Enabled() bool
	Visible() bool
	Status() string

	websitePermission()
}

// TogglePermission is the snapshot for the six toggle-style features
// (everything except autoplay).
type TogglePermission struct {
	ForFeature Feature
	IsEnabled  bool
	IsVisible  bool
	StatusText string
}

// Feature returns the feature this snapshot describes.
func (p TogglePermission) Feature() Feature { return p.ForFeature }

// Enabled reports whether the row accepts interaction.
func (p TogglePermission) Enabled() bool { return p.IsEnabled }

// Visible reports whether the row is shown.
func (p TogglePermission) Visible() bool { return p.IsVisible }

// Status returns the status text for the row.
func (p TogglePermission) Status() string { return p.StatusText }

func (TogglePermission) websitePermission() {}

// AutoplayPermission is the snapshot for the autoplay feature. On top of
// the common projection it carries the selectable option list and the
// currently active option.
//
// Invariants: Options is non-empty and duplicate-free, and Current is an
// element of Options. Violations surface as SelectionNotFound when the
// snapshot is bound.
type AutoplayPermission struct {
	IsEnabled  bool
	IsVisible  bool
	StatusText string
	Options    []AutoplayOption
	Current    AutoplayOption
}

// Feature always returns FeatureAutoplay.
func (p AutoplayPermission) Feature() Feature { return FeatureAutoplay }

// Enabled reports whether the selector accepts interaction.
func (p AutoplayPermission) Enabled() bool { return p.IsEnabled }

// Visible reports whether the row is shown.
func (p AutoplayPermission) Visible() bool { return p.IsVisible }

// Status returns the status text for the row.
func (p AutoplayPermission) Status() string { return p.StatusText }

func (AutoplayPermission) websitePermission() {}

// SelectedIndex returns the position of Current within Options.
// The second return is false when Current is absent, which means the
// snapshot violates its own invariant.
func (p AutoplayPermission) SelectedIndex() (int, bool) {
	for i, o := range p.Options {
		if o == p.Current {
			return i, true
		}
	}
	return -1, false
}

// State maps every tracked feature to its display snapshot for one
// render pass. It is consumed once and discarded; renders never retain
// or mutate it.
type State map[Feature]WebsitePermission

// AnyVisible reports whether at least one snapshot in the state is
// visible.
func (s State) AnyVisible() bool {
	for _, p := range s {
		if p.Visible() {
			return true
		}
	}
	return false
}
