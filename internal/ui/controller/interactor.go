// Package controller wires the panel binding engine to the application
// services.
package controller

import (
	"context"

	"github.com/bnema/sitepanel/internal/application/usecase"
	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/logging"
)

// OriginInteractor receives panel events for one origin and turns them
// into stored decisions. After every recorded change it invokes the
// onChange hook so the host can recompute state and re-render.
type OriginInteractor struct {
	ctx      context.Context
	origin   string
	uc       *usecase.SitePermissionsUseCase
	onChange func()
}

// NewOriginInteractor creates an interactor bound to one origin.
// onChange may be nil.
func NewOriginInteractor(ctx context.Context, origin string, uc *usecase.SitePermissionsUseCase, onChange func()) *OriginInteractor {
	return &OriginInteractor{
		ctx:      logging.WithOrigin(logging.WithComponent(ctx, "site-panel"), origin),
		origin:   origin,
		uc:       uc,
		onChange: onChange,
	}
}

// OnPermissionsShown logs that the panel surfaced at least one row.
func (i *OriginInteractor) OnPermissionsShown() {
	logging.FromContext(i.ctx).Debug().Msg("site permissions shown")
}

// OnPermissionToggled flips and persists the decision behind the row.
func (i *OriginInteractor) OnPermissionToggled(perm entity.WebsitePermission) {
	log := logging.FromContext(i.ctx)
	if err := i.uc.Toggle(i.ctx, i.origin, perm); err != nil {
		log.Error().Err(err).Str("feature", string(perm.Feature())).Msg("failed to record toggle")
		return
	}
	i.notifyChanged()
}

// OnAutoplayChanged persists the newly selected autoplay mode.
func (i *OriginInteractor) OnAutoplayChanged(option entity.AutoplayOption) {
	log := logging.FromContext(i.ctx)
	if err := i.uc.SetAutoplay(i.ctx, i.origin, option); err != nil {
		log.Error().Err(err).Str("mode", string(option)).Msg("failed to record autoplay mode")
		return
	}
	i.notifyChanged()
}

func (i *OriginInteractor) notifyChanged() {
	if i.onChange != nil {
		i.onChange()
	}
}
