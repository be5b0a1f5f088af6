package panel

import (
	"fmt"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

// The binding engine has no recoverable error class. Every error below
// marks an internally inconsistent state or registry, surfaces to the
// caller unwrapped, and aborts the render pass.

// MissingBindingError reports a state that lacks an entry for a feature
// the registry tracks.
type MissingBindingError struct {
	Feature entity.Feature
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("site panel: state has no permission for feature %q", e.Feature)
}

// VariantMismatchError reports a permission snapshot bound to a slot of
// the wrong variant, which means the registry and the state computation
// are out of sync.
type VariantMismatchError struct {
	Feature entity.Feature
	Slot    string
	Got     string
}

func (e *VariantMismatchError) Error() string {
	return fmt.Sprintf("site panel: %s bound %s permission for feature %q", e.Slot, e.Got, e.Feature)
}

// SelectionNotFoundError reports an autoplay snapshot whose current
// option is absent from its option list. The selection is never coerced
// to an arbitrary index.
type SelectionNotFoundError struct {
	Current entity.AutoplayOption
	Options []entity.AutoplayOption
}

func (e *SelectionNotFoundError) Error() string {
	return fmt.Sprintf("site panel: autoplay option %q not in options %v", e.Current, e.Options)
}
