package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bnema/sitepanel/internal/domain/entity"
	"github.com/bnema/sitepanel/internal/domain/repository"
	"github.com/bnema/sitepanel/internal/logging"
)

type permissionRepo struct {
	db *sql.DB
}

// NewPermissionRepository creates a new SQLite-backed permission repository.
func NewPermissionRepository(db *sql.DB) repository.PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) Get(ctx context.Context, origin string, feature entity.Feature) (*entity.PermissionRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Str("feature", string(feature)).Msg("getting permission")

	row := r.db.QueryRowContext(ctx,
		`SELECT origin, feature, decision, updated_at FROM site_permissions WHERE origin = ? AND feature = ?`,
		origin, string(feature),
	)

	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (r *permissionRepo) Set(ctx context.Context, record *entity.PermissionRecord) error {
	log := logging.FromContext(ctx)

	if record == nil {
		log.Error().Msg("cannot set nil permission record")
		return errors.New("cannot set nil permission record")
	}

	log.Debug().
		Str("origin", record.Origin).
		Str("feature", string(record.Feature)).
		Str("decision", string(record.Decision)).
		Msg("setting permission")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO site_permissions (origin, feature, decision, updated_at)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT (origin, feature) DO UPDATE SET decision = excluded.decision, updated_at = excluded.updated_at`,
		record.Origin, string(record.Feature), string(record.Decision), time.Now().Unix(),
	)
	return err
}

func (r *permissionRepo) Delete(ctx context.Context, origin string, feature entity.Feature) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Str("feature", string(feature)).Msg("deleting permission")

	_, err := r.db.ExecContext(ctx,
		`DELETE FROM site_permissions WHERE origin = ? AND feature = ?`,
		origin, string(feature),
	)
	return err
}

func (r *permissionRepo) GetAll(ctx context.Context, origin string) ([]*entity.PermissionRecord, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Msg("getting all permissions for origin")

	rows, err := r.db.QueryContext(ctx,
		`SELECT origin, feature, decision, updated_at FROM site_permissions WHERE origin = ? ORDER BY feature`,
		origin,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []*entity.PermissionRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *permissionRepo) GetAutoplay(ctx context.Context, origin string) (entity.AutoplayOption, bool, error) {
	var mode string
	err := r.db.QueryRowContext(ctx,
		`SELECT mode FROM autoplay_settings WHERE origin = ?`, origin,
	).Scan(&mode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, err
	}

	option, ok := entity.ParseAutoplayOption(mode)
	if !ok {
		// Unknown stored value, treat as unset rather than guessing.
		return "", false, nil
	}
	return option, true, nil
}

func (r *permissionRepo) SetAutoplay(ctx context.Context, origin string, option entity.AutoplayOption) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Str("mode", string(option)).Msg("setting autoplay mode")

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO autoplay_settings (origin, mode, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT (origin) DO UPDATE SET mode = excluded.mode, updated_at = excluded.updated_at`,
		origin, string(option), time.Now().Unix(),
	)
	return err
}

func (r *permissionRepo) ClearOrigin(ctx context.Context, origin string) error {
	log := logging.FromContext(ctx)
	log.Debug().Str("origin", origin).Msg("clearing stored decisions for origin")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM site_permissions WHERE origin = ?`, origin); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM autoplay_settings WHERE origin = ?`, origin); err != nil {
		return err
	}
	return tx.Commit()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (*entity.PermissionRecord, error) {
	var (
		origin    string
		feature   string
		decision  string
		updatedAt int64
	)
	if err := row.Scan(&origin, &feature, &decision, &updatedAt); err != nil {
		return nil, err
	}

	record := &entity.PermissionRecord{
		Origin:    origin,
		UpdatedAt: updatedAt,
	}
	if f, ok := entity.ParseFeature(feature); ok {
		record.Feature = f
	} else {
		record.Feature = entity.Feature(feature)
	}
	if d, ok := entity.ParsePermissionDecision(decision); ok {
		record.Decision = d
	} else {
		record.Decision = entity.PermissionPrompt
	}
	return record, nil
}
