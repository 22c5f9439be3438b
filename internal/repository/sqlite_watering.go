package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/gartenlabs/lifegarden/internal/db"
	"github.com/gartenlabs/lifegarden/internal/domain"
)

// SQLiteWateringRepo implements WateringRepo, the append-only watering ledger.
type SQLiteWateringRepo struct {
	db db.DBTX
}

// NewSQLiteWateringRepo creates a new SQLiteWateringRepo over a *sql.DB or *sql.Tx.
func NewSQLiteWateringRepo(conn db.DBTX) *SQLiteWateringRepo {
	return &SQLiteWateringRepo{db: conn}
}

// Record inserts a ledger entry for the plant on the given calendar day.
// The composite primary key makes the second watering of a day a no-op;
// Record reports whether a row was actually inserted.
func (r *SQLiteWateringRepo) Record(ctx context.Context, plantID string, date time.Time) (bool, error) {
	query := `INSERT INTO watering_history (plant_id, watering_date, created_at)
		VALUES (?, ?, ?)
		ON CONFLICT (plant_id, watering_date) DO NOTHING`
	res, err := r.db.ExecContext(ctx, query,
		plantID,
		domain.DateOnly(date).Format(domain.DateLayout),
		nowUTC(),
	)
	if err != nil {
		return false, fmt.Errorf("recording watering: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("recording watering: %w", err)
	}
	return n > 0, nil
}

func (r *SQLiteWateringRepo) WasWateredOn(ctx context.Context, plantID string, date time.Time) (bool, error) {
	query := `SELECT COUNT(*) FROM watering_history WHERE plant_id = ? AND watering_date = ?`
	row := r.db.QueryRowContext(ctx, query, plantID, domain.DateOnly(date).Format(domain.DateLayout))

	var count int
	if err := row.Scan(&count); err != nil {
		return false, fmt.Errorf("checking watering: %w", err)
	}
	return count > 0, nil
}

// CountWateredOn returns the number of distinct plants watered on the day,
// the figure the daily capacity is held against.
func (r *SQLiteWateringRepo) CountWateredOn(ctx context.Context, date time.Time) (int, error) {
	query := `SELECT COUNT(DISTINCT plant_id) FROM watering_history WHERE watering_date = ?`
	row := r.db.QueryRowContext(ctx, query, domain.DateOnly(date).Format(domain.DateLayout))

	var count int
	if err := row.Scan(&count); err != nil {
		return 0, fmt.Errorf("counting waterings: %w", err)
	}
	return count, nil
}

func (r *SQLiteWateringRepo) ListWateredOn(ctx context.Context, date time.Time) ([]string, error) {
	query := `SELECT plant_id FROM watering_history WHERE watering_date = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, domain.DateOnly(date).Format(domain.DateLayout))
	if err != nil {
		return nil, fmt.Errorf("listing watered plants: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning watered plant: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating watered plants: %w", err)
	}
	return ids, nil
}

// History returns the plant's most recent watering events, newest first.
func (r *SQLiteWateringRepo) History(ctx context.Context, plantID string, limit int) ([]*domain.WateringEvent, error) {
	query := `SELECT plant_id, watering_date, created_at FROM watering_history
		WHERE plant_id = ? ORDER BY watering_date DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, plantID, limit)
	if err != nil {
		return nil, fmt.Errorf("listing watering history: %w", err)
	}
	defer rows.Close()
	return r.collectEvents(rows)
}

// ListRecent returns the newest ledger entries across all plants.
func (r *SQLiteWateringRepo) ListRecent(ctx context.Context, limit int) ([]*domain.WateringEvent, error) {
	query := `SELECT plant_id, watering_date, created_at FROM watering_history
		ORDER BY watering_date DESC, created_at DESC LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent waterings: %w", err)
	}
	defer rows.Close()
	return r.collectEvents(rows)
}

func (r *SQLiteWateringRepo) collectEvents(rows *sql.Rows) ([]*domain.WateringEvent, error) {
	var events []*domain.WateringEvent
	for rows.Next() {
		var e domain.WateringEvent
		var dateStr, createdAtStr string
		if err := rows.Scan(&e.PlantID, &dateStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning watering event: %w", err)
		}

		var err error
		e.Date, err = time.Parse(domain.DateLayout, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing watering_date: %w", err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		events = append(events, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating watering events: %w", err)
	}
	return events, nil
}
