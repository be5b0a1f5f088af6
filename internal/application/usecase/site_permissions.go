// Package usecase contains the application services behind the site
// panel: computing display state from stored decisions and recording
// decision changes.
package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/domain/repository"
	"github.com/bnema/sitepanel/internal/infrastructure/config"
	"github.com/bnema/sitepanel/internal/logging"
)

// SitePermissionsUseCase computes panel display state for an origin and
// records display-originated decision changes.
type SitePermissionsUseCase struct {
	repo repository.PermissionRepository
	cfg  func() *config.Config
}

// NewSitePermissionsUseCase creates the use case. cfg is called on every
// operation so config reloads take effect without rewiring.
func NewSitePermissionsUseCase(repo repository.PermissionRepository, cfg func() *config.Config) *SitePermissionsUseCase {
	return &SitePermissionsUseCase{repo: repo, cfg: cfg}
}

// State builds the display snapshot for every tracked feature on the
// origin. A feature's row is visible once a decision is recorded; rows
// for features disabled in the config render non-interactable.
func (uc *SitePermissionsUseCase) State(ctx context.Context, origin string) (entity.State, error) {
	cfg := uc.cfg()
	state := make(entity.State, len(entity.Features()))

	for _, feature := range entity.Features() {
		if feature == entity.FeatureAutoplay {
			perm, err := uc.autoplayState(ctx, origin, cfg)
			if err != nil {
				return nil, err
			}
			state[feature] = perm
			continue
		}

		record, err := uc.repo.Get(ctx, origin, feature)
		if err != nil {
			return nil, fmt.Errorf("load %s decision for %s: %w", feature, origin, err)
		}

		decision := entity.PermissionPrompt
		if record != nil {
			decision = record.Decision
		}

		status := cfg.Panel.StatusBlocked
		if decision == entity.PermissionGranted {
			status = cfg.Panel.StatusAllowed
		}

		state[feature] = entity.TogglePermission{
			ForFeature: feature,
			IsEnabled:  !cfg.FeatureDisabled(feature),
			IsVisible:  decision != entity.PermissionPrompt,
			StatusText: status,
		}
	}

	return state, nil
}

func (uc *SitePermissionsUseCase) autoplayState(ctx context.Context, origin string, cfg *config.Config) (entity.AutoplayPermission, error) {
	mode, stored, err := uc.repo.GetAutoplay(ctx, origin)
	if err != nil {
		return entity.AutoplayPermission{}, fmt.Errorf("load autoplay mode for %s: %w", origin, err)
	}
	if !stored {
		mode = cfg.DefaultAutoplayOption()
	}

	return entity.AutoplayPermission{
		IsEnabled:  !cfg.FeatureDisabled(entity.FeatureAutoplay),
		IsVisible:  stored,
		StatusText: mode.Label(),
		Options:    entity.AutoplayOptions(),
		Current:    mode,
	}, nil
}

// Toggle flips the stored decision behind a toggled row: granted becomes
// denied, denied or unset becomes granted.
func (uc *SitePermissionsUseCase) Toggle(ctx context.Context, origin string, perm entity.WebsitePermission) error {
	log := logging.FromContext(ctx)
	feature := perm.Feature()

	if feature == entity.FeatureAutoplay {
		return fmt.Errorf("autoplay is selector-driven, not toggled")
	}

	record, err := uc.repo.Get(ctx, origin, feature)
	if err != nil {
		return fmt.Errorf("load %s decision for %s: %w", feature, origin, err)
	}

	decision := entity.PermissionPrompt
	if record != nil {
		decision = record.Decision
	}
	next := decision.Toggled()

	log.Info().
		Str("origin", origin).
		Str("feature", string(feature)).
		Str("from", string(decision)).
		Str("to", string(next)).
		Msg("permission toggled")

	return uc.repo.Set(ctx, &entity.PermissionRecord{
		Origin:   origin,
		Feature:  feature,
		Decision: next,
	})
}

// SetAutoplay records a new autoplay mode for the origin.
func (uc *SitePermissionsUseCase) SetAutoplay(ctx context.Context, origin string, option entity.AutoplayOption) error {
	log := logging.FromContext(ctx)
	log.Info().Str("origin", origin).Str("mode", string(option)).Msg("autoplay mode changed")
	return uc.repo.SetAutoplay(ctx, origin, option)
}

// Clear removes every stored decision for the origin.
func (uc *SitePermissionsUseCase) Clear(ctx context.Context, origin string) error {
	return uc.repo.ClearOrigin(ctx, origin)
}

// Records lists the stored permission records for the origin.
func (uc *SitePermissionsUseCase) Records(ctx context.Context, origin string) ([]*entity.PermissionRecord, error) {
	return uc.repo.GetAll(ctx, origin)
}
