package controller_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/sitepanel/internal/application/usecase"
	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/infrastructure/config"
	"github.com/bnema/sitepanel/internal/ui/controller"
)

type recordKey struct {
	origin  string
	feature entity.Feature
}

type memoryRepo struct {
	records  map[recordKey]*entity.PermissionRecord
	autoplay map[string]entity.AutoplayOption
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		records:  make(map[recordKey]*entity.PermissionRecord),
		autoplay: make(map[string]entity.AutoplayOption),
	}
}

func (r *memoryRepo) Get(_ context.Context, origin string, feature entity.Feature) (*entity.PermissionRecord, error) {
	return r.records[recordKey{origin, feature}], nil
}

func (r *memoryRepo) Set(_ context.Context, record *entity.PermissionRecord) error {
	r.records[recordKey{record.Origin, record.Feature}] = record
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, origin string, feature entity.Feature) error {
	delete(r.records, recordKey{origin, feature})
	return nil
}

func (r *memoryRepo) GetAll(_ context.Context, origin string) ([]*entity.PermissionRecord, error) {
	var out []*entity.PermissionRecord
	for key, rec := range r.records {
		if key.origin == origin {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *memoryRepo) GetAutoplay(_ context.Context, origin string) (entity.AutoplayOption, bool, error) {
	option, ok := r.autoplay[origin]
	return option, ok, nil
}

func (r *memoryRepo) SetAutoplay(_ context.Context, origin string, option entity.AutoplayOption) error {
	r.autoplay[origin] = option
	return nil
}

func (r *memoryRepo) ClearOrigin(_ context.Context, origin string) error {
	for key := range r.records {
		if key.origin == origin {
			delete(r.records, key)
		}
	}
	delete(r.autoplay, origin)
	return nil
}

const origin = "https://example.com"

func newInteractor(repo *memoryRepo, onChange func()) *controller.OriginInteractor {
	uc := usecase.NewSitePermissionsUseCase(repo, func() *config.Config { return config.DefaultConfig() })
	return controller.NewOriginInteractor(context.Background(), origin, uc, onChange)
}

func TestOriginInteractor_Toggle(t *testing.T) {
	repo := newMemoryRepo()
	changed := 0
	interactor := newInteractor(repo, func() { changed++ })

	interactor.OnPermissionToggled(entity.TogglePermission{ForFeature: entity.FeatureCamera})

	record, err := repo.Get(context.Background(), origin, entity.FeatureCamera)
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.Equal(t, entity.PermissionGranted, record.Decision)
	assert.Equal(t, 1, changed)
}

func TestOriginInteractor_ToggleFailureSkipsNotify(t *testing.T) {
	repo := newMemoryRepo()
	changed := 0
	interactor := newInteractor(repo, func() { changed++ })

	// Autoplay cannot be toggled; the error is logged, not propagated, and
	// the change hook stays silent.
	interactor.OnPermissionToggled(entity.AutoplayPermission{
		Options: entity.AutoplayOptions(),
		Current: entity.AutoplayAllowAll,
	})

	assert.Zero(t, changed)
}

func TestOriginInteractor_AutoplayChanged(t *testing.T) {
	repo := newMemoryRepo()
	changed := 0
	interactor := newInteractor(repo, func() { changed++ })

	interactor.OnAutoplayChanged(entity.AutoplayBlockAll)

	mode, stored, err := repo.GetAutoplay(context.Background(), origin)
	require.NoError(t, err)
	assert.True(t, stored)
	assert.Equal(t, entity.AutoplayBlockAll, mode)
	assert.Equal(t, 1, changed)
}

func TestOriginInteractor_NilOnChange(t *testing.T) {
	repo := newMemoryRepo()
	interactor := newInteractor(repo, nil)

	assert.NotPanics(t, func() {
		interactor.OnPermissionToggled(entity.TogglePermission{ForFeature: entity.FeatureMicrophone})
		interactor.OnPermissionsShown()
	})
}
