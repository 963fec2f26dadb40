package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cory-johannsen/frontier/internal/save"
)

// SaveRepository stores kingdom saves as JSONB rows keyed by slot.
// It implements save.Store.
type SaveRepository struct {
	db *pgxpool.Pool
}

// NewSaveRepository creates a SaveRepository backed by the given pool.
//
// Precondition: db must be a valid, open connection pool with the saves table migrated.
func NewSaveRepository(db *pgxpool.Pool) *SaveRepository {
	return &SaveRepository{db: db}
}

// Save upserts d into slot.
//
// Postcondition: a subsequent Load of slot returns d stamped with save.Version.
func (r *SaveRepository) Save(ctx context.Context, slot string, d *save.Data) error {
	payload, err := save.MarshalPayload(d)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO saves (slot, version, payload)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (slot) DO UPDATE
		 SET version = EXCLUDED.version, payload = EXCLUDED.payload, updated_at = NOW()`,
		slot, save.Version, payload,
	)
	if err != nil {
		return fmt.Errorf("saving slot %s: %w", slot, err)
	}
	return nil
}

// Load reads slot, rejecting saves newer than save.Version.
//
// Postcondition: Returns the save, or an error wrapping save.ErrNotFound or save.ErrFutureVersion.
func (r *SaveRepository) Load(ctx context.Context, slot string) (*save.Data, error) {
	var payload []byte
	err := r.db.QueryRow(ctx, `SELECT payload FROM saves WHERE slot = $1`, slot).Scan(&payload)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", save.ErrNotFound, slot)
		}
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	d, err := save.UnmarshalPayload(payload)
	if err != nil {
		return nil, fmt.Errorf("loading slot %s: %w", slot, err)
	}
	return d, nil
}

// List returns every slot name, sorted.
func (r *SaveRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT slot FROM saves ORDER BY slot`)
	if err != nil {
		return nil, fmt.Errorf("listing saves: %w", err)
	}
	slots, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scanning saves: %w", err)
	}
	return slots, nil
}

// Delete removes slot.
func (r *SaveRepository) Delete(ctx context.Context, slot string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM saves WHERE slot = $1`, slot)
	if err != nil {
		return fmt.Errorf("deleting slot %s: %w", slot, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", save.ErrNotFound, slot)
	}
	return nil
}
