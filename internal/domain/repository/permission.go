package repository

import (
	"context"

	"github.com/bnema/sitepanel/internal/domain/entity"
)

// PermissionRepository defines operations for per-origin permission
// persistence.
type PermissionRepository interface {
	// Get retrieves the permission record for a specific origin and feature.
	// Returns nil if no record exists (treat as "prompt" state).
	Get(ctx context.Context, origin string, feature entity.Feature) (*entity.PermissionRecord, error)

	// Set saves or updates a permission record.
	Set(ctx context.Context, record *entity.PermissionRecord) error

	// Delete removes a permission record for a specific origin and feature.
	Delete(ctx context.Context, origin string, feature entity.Feature) error

	// GetAll retrieves all permission records for an origin.
	GetAll(ctx context.Context, origin string) ([]*entity.PermissionRecord, error)

	// GetAutoplay retrieves the stored autoplay mode for an origin.
	// The second return is false when no mode has been stored.
	GetAutoplay(ctx context.Context, origin string) (entity.AutoplayOption, bool, error)

	// SetAutoplay saves or updates the autoplay mode for an origin.
	SetAutoplay(ctx context.Context, origin string, option entity.AutoplayOption) error

	// ClearOrigin removes every stored decision for an origin, including
	// its autoplay mode.
	ClearOrigin(ctx context.Context, origin string) error
}
