package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gartenlabs/lifegarden/internal/db"
	"github.com/gartenlabs/lifegarden/internal/domain"
)

// SQLiteConfigRepo implements ConfigRepo over the singleton
// daily_watering_config row (id = 1, seeded by the migrations).
type SQLiteConfigRepo struct {
	db db.DBTX
}

// NewSQLiteConfigRepo creates a new SQLiteConfigRepo over a *sql.DB or *sql.Tx.
func NewSQLiteConfigRepo(conn db.DBTX) *SQLiteConfigRepo {
	return &SQLiteConfigRepo{db: conn}
}

func (r *SQLiteConfigRepo) Get(ctx context.Context) (*domain.WateringConfig, error) {
	query := `SELECT max_plants_per_day, updated_at FROM daily_watering_config WHERE id = 1`
	row := r.db.QueryRowContext(ctx, query)

	var c domain.WateringConfig
	var updatedAtStr string
	if err := row.Scan(&c.MaxPlantsPerDay, &updatedAtStr); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("watering config: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning watering config: %w", err)
	}

	var err error
	c.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &c, nil
}

func (r *SQLiteConfigRepo) Set(ctx context.Context, c *domain.WateringConfig) error {
	query := `INSERT OR REPLACE INTO daily_watering_config (id, max_plants_per_day, updated_at)
		VALUES (1, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, c.MaxPlantsPerDay, nowUTC())
	if err != nil {
		return fmt.Errorf("updating watering config: %w", err)
	}
	return nil
}
