package telemetry

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/Bl4ckspell7/asusctl-gui/internal/errors"
	"github.com/Bl4ckspell7/asusctl-gui/internal/logger"

	_ "github.com/mattn/go-sqlite3"
)

type Repository interface {
	Store(ctx context.Context, snapshot *StateSnapshot) error
	Close() error
}

type sqliteRepository struct {
	db *sql.DB
	mu sync.Mutex
}

func NewRepository(cfg Config) (Repository, error) {
	errFactory := errors.New()

	if cfg.DBPath == "" {
		return nil, errFactory.New(ErrInvalidDBPath)
	}

	logger.Debug().Msgf("Initializing telemetry repository at: %s", cfg.DBPath)

	// Ensure the directory exists
	if err := os.MkdirAll(filepath.Dir(cfg.DBPath), defaultDirPerm); err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	db, err := sql.Open("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, errFactory.Wrap(ErrStorageInit, err)
	}

	return &sqliteRepository{
		db: db,
	}, nil
}

func (r *sqliteRepository) Store(ctx context.Context, snapshot *StateSnapshot) error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.ExecContext(ctx, `
        INSERT INTO snapshots (
            timestamp, active_profile, profile_on_ac, profile_on_battery,
            keyboard_brightness, charge_limit,
            slash_enabled, slash_brightness, slash_interval, slash_mode,
            missing_fields
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
        ON CONFLICT(timestamp) DO UPDATE SET
            active_profile = excluded.active_profile,
            profile_on_ac = excluded.profile_on_ac,
            profile_on_battery = excluded.profile_on_battery,
            keyboard_brightness = excluded.keyboard_brightness,
            charge_limit = excluded.charge_limit,
            slash_enabled = excluded.slash_enabled,
            slash_brightness = excluded.slash_brightness,
            slash_interval = excluded.slash_interval,
            slash_mode = excluded.slash_mode,
            missing_fields = excluded.missing_fields
    `,
		snapshot.Timestamp.Unix(),
		snapshot.Profile.Active,
		snapshot.Profile.OnAC,
		snapshot.Profile.OnBattery,
		snapshot.Keyboard.Brightness,
		snapshot.Charge.Limit,
		boolToInt(snapshot.Slash.Enabled),
		snapshot.Slash.Brightness,
		snapshot.Slash.Interval,
		snapshot.Slash.Mode,
		strings.Join(snapshot.Missing, ","),
	)
	if err != nil {
		return errFactory.Wrap(ErrStorageAccess, err)
	}

	return nil
}

func (r *sqliteRepository) Close() error {
	errFactory := errors.New()

	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.db.Close(); err != nil {
		return errFactory.Wrap(ErrStorageClose, err)
	}
	return nil
}
