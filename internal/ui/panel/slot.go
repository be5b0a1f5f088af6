package panel

// Slot is one feature's bound pair of display handles. The variant set
// is sealed to ToggleSlot and SelectorSlot; the binder matches on the
// concrete type.
type Slot interface {
	label() LabelHandle
	slot()
}

// ToggleSlot renders a feature as a name label plus a clickable status
// control.
type ToggleSlot struct {
	Label  LabelHandle
	Status StatusHandle
}

func (s ToggleSlot) label() LabelHandle { return s.Label }
func (ToggleSlot) slot()                {}

// SelectorSlot renders a feature as a name label plus an option
// selector. Only autoplay uses it.
type SelectorSlot struct {
	Label    LabelHandle
	Selector SelectorHandle
}

func (s SelectorSlot) label() LabelHandle { return s.Label }
func (SelectorSlot) slot()                {}
