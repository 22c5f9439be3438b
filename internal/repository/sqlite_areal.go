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

const arealColumns = `id, name, horizontal_pos, vertical_pos, size, created_at, updated_at`

// SQLiteArealRepo implements ArealRepo using a SQLite database.
type SQLiteArealRepo struct {
	db db.DBTX
}

// NewSQLiteArealRepo creates a new SQLiteArealRepo over a *sql.DB or *sql.Tx.
func NewSQLiteArealRepo(conn db.DBTX) *SQLiteArealRepo {
	return &SQLiteArealRepo{db: conn}
}

func (r *SQLiteArealRepo) Create(ctx context.Context, a *domain.Areal) error {
	query := `INSERT INTO areals (` + arealColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		a.Name,
		string(a.HorizontalPos),
		string(a.VerticalPos),
		string(a.Size),
		a.CreatedAt.Format(time.RFC3339),
		a.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting areal: %w", err)
	}
	return nil
}

func (r *SQLiteArealRepo) GetByID(ctx context.Context, id string) (*domain.Areal, error) {
	query := `SELECT ` + arealColumns + ` FROM areals WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanAreal(row)
}

func (r *SQLiteArealRepo) List(ctx context.Context) ([]*domain.Areal, error) {
	query := `SELECT ` + arealColumns + ` FROM areals ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing areals: %w", err)
	}
	defer rows.Close()

	var areals []*domain.Areal
	for rows.Next() {
		a, err := r.scanArealFromRows(rows)
		if err != nil {
			return nil, err
		}
		areals = append(areals, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating areals: %w", err)
	}
	return areals, nil
}

func (r *SQLiteArealRepo) Update(ctx context.Context, a *domain.Areal) error {
	query := `UPDATE areals SET name = ?, horizontal_pos = ?, vertical_pos = ?, size = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		a.Name,
		string(a.HorizontalPos),
		string(a.VerticalPos),
		string(a.Size),
		nowUTC(),
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("updating areal: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating areal: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("areal %s: %w", a.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the areal; its plants and their watering history go with it
// via the schema's cascade rules.
func (r *SQLiteArealRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM areals WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting areal: %w", err)
	}
	return nil
}

func (r *SQLiteArealRepo) scanAreal(row *sql.Row) (*domain.Areal, error) {
	var a domain.Areal
	var hpos, vpos, size, createdAtStr, updatedAtStr string

	err := row.Scan(&a.ID, &a.Name, &hpos, &vpos, &size, &createdAtStr, &updatedAtStr)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("areal: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning areal: %w", err)
	}
	return r.finishAreal(&a, hpos, vpos, size, createdAtStr, updatedAtStr)
}

func (r *SQLiteArealRepo) scanArealFromRows(rows *sql.Rows) (*domain.Areal, error) {
	var a domain.Areal
	var hpos, vpos, size, createdAtStr, updatedAtStr string

	err := rows.Scan(&a.ID, &a.Name, &hpos, &vpos, &size, &createdAtStr, &updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("scanning areal row: %w", err)
	}
	return r.finishAreal(&a, hpos, vpos, size, createdAtStr, updatedAtStr)
}

func (r *SQLiteArealRepo) finishAreal(a *domain.Areal, hpos, vpos, size, createdAtStr, updatedAtStr string) (*domain.Areal, error) {
	a.HorizontalPos = domain.HorizontalPos(hpos)
	a.VerticalPos = domain.VerticalPos(vpos)
	a.Size = domain.ArealSize(size)

	var err error
	a.CreatedAt, err = time.Parse(time.RFC3339, createdAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	a.UpdatedAt, err = time.Parse(time.RFC3339, updatedAtStr)
	if err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return a, nil
}
