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

const plantColumns = `id, areal_id, name, image_path, position, health, size,
	growth_stage, water_streak, days_without_water, total_water_count,
	last_watered, last_evaluated, created_at, updated_at`

// SQLitePlantRepo implements PlantRepo using a SQLite database.
type SQLitePlantRepo struct {
	db db.DBTX
}

// NewSQLitePlantRepo creates a new SQLitePlantRepo over a *sql.DB or *sql.Tx.
func NewSQLitePlantRepo(conn db.DBTX) *SQLitePlantRepo {
	return &SQLitePlantRepo{db: conn}
}

func (r *SQLitePlantRepo) Create(ctx context.Context, p *domain.Plant) error {
	query := `INSERT INTO plants (` + plantColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.ArealID,
		p.Name,
		p.ImagePath,
		p.Position,
		string(p.Health),
		string(p.Size),
		p.GrowthStage,
		p.WaterStreak,
		p.DaysWithoutWater,
		p.TotalWaterCount,
		nullableTimeToString(p.LastWatered, domain.DateLayout),
		nullableTimeToString(p.LastEvaluated, domain.DateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting plant: %w", err)
	}
	return nil
}

func (r *SQLitePlantRepo) GetByID(ctx context.Context, id string) (*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanPlant(row)
}

func (r *SQLitePlantRepo) GetByName(ctx context.Context, name string) (*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE LOWER(name) = LOWER(?)`
	row := r.db.QueryRowContext(ctx, query, name)
	return r.scanPlant(row)
}

func (r *SQLitePlantRepo) List(ctx context.Context) ([]*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants ORDER BY areal_id, name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plants: %w", err)
	}
	defer rows.Close()
	return r.collectPlants(rows)
}

func (r *SQLitePlantRepo) ListByAreal(ctx context.Context, arealID string) ([]*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE areal_id = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, arealID)
	if err != nil {
		return nil, fmt.Errorf("listing plants by areal: %w", err)
	}
	defer rows.Close()
	return r.collectPlants(rows)
}

func (r *SQLitePlantRepo) ListByHealth(ctx context.Context, health domain.PlantHealth) ([]*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants WHERE health = ? ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query, string(health))
	if err != nil {
		return nil, fmt.Errorf("listing plants by health: %w", err)
	}
	defer rows.Close()
	return r.collectPlants(rows)
}

func (r *SQLitePlantRepo) ListNeedingWater(ctx context.Context) ([]*domain.Plant, error) {
	query := `SELECT ` + plantColumns + ` FROM plants
		WHERE health IN ('okay', 'dead') OR days_without_water >= 2
		ORDER BY days_without_water DESC,
			CASE WHEN health = 'dead' THEN 1 ELSE 0 END DESC,
			water_streak ASC,
			name ASC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing plants needing water: %w", err)
	}
	defer rows.Close()
	return r.collectPlants(rows)
}

func (r *SQLitePlantRepo) UpdateState(ctx context.Context, p *domain.Plant) error {
	query := `UPDATE plants SET health = ?, size = ?, growth_stage = ?, water_streak = ?,
		days_without_water = ?, total_water_count = ?, last_watered = ?, last_evaluated = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		string(p.Health),
		string(p.Size),
		p.GrowthStage,
		p.WaterStreak,
		p.DaysWithoutWater,
		p.TotalWaterCount,
		nullableTimeToString(p.LastWatered, domain.DateLayout),
		nullableTimeToString(p.LastEvaluated, domain.DateLayout),
		nowUTC(),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating plant state: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating plant state: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("plant %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLitePlantRepo) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM plants WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting plant: %w", err)
	}
	return nil
}

// scanPlant scans a single plant row from a *sql.Row.
func (r *SQLitePlantRepo) scanPlant(row *sql.Row) (*domain.Plant, error) {
	var p domain.Plant
	var healthStr, sizeStr, createdAtStr, updatedAtStr string
	var lastWateredStr, lastEvaluatedStr sql.NullString

	err := row.Scan(
		&p.ID, &p.ArealID, &p.Name, &p.ImagePath, &p.Position,
		&healthStr, &sizeStr,
		&p.GrowthStage, &p.WaterStreak, &p.DaysWithoutWater, &p.TotalWaterCount,
		&lastWateredStr, &lastEvaluatedStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("plant: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("scanning plant: %w", err)
	}

	return r.finishPlant(&p, healthStr, sizeStr, lastWateredStr, lastEvaluatedStr, createdAtStr, updatedAtStr)
}

// scanPlantFromRows scans a single plant row from *sql.Rows.
func (r *SQLitePlantRepo) scanPlantFromRows(rows *sql.Rows) (*domain.Plant, error) {
	var p domain.Plant
	var healthStr, sizeStr, createdAtStr, updatedAtStr string
	var lastWateredStr, lastEvaluatedStr sql.NullString

	err := rows.Scan(
		&p.ID, &p.ArealID, &p.Name, &p.ImagePath, &p.Position,
		&healthStr, &sizeStr,
		&p.GrowthStage, &p.WaterStreak, &p.DaysWithoutWater, &p.TotalWaterCount,
		&lastWateredStr, &lastEvaluatedStr,
		&createdAtStr, &updatedAtStr,
	)
	if err != nil {
		return nil, fmt.Errorf("scanning plant row: %w", err)
	}

	return r.finishPlant(&p, healthStr, sizeStr, lastWateredStr, lastEvaluatedStr, createdAtStr, updatedAtStr)
}

func (r *SQLitePlantRepo) finishPlant(p *domain.Plant, healthStr, sizeStr string,
	lastWateredStr, lastEvaluatedStr sql.NullString, createdAtStr, updatedAtStr string) (*domain.Plant, error) {

	p.Health = domain.PlantHealth(healthStr)
	p.Size = domain.PlantSize(sizeStr)
	p.LastWatered = parseNullableTime(lastWateredStr, domain.DateLayout)
	p.LastEvaluated = parseNullableTime(lastEvaluatedStr, domain.DateLayout)

	var parseErr error
	p.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	p.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return p, nil
}

func (r *SQLitePlantRepo) collectPlants(rows *sql.Rows) ([]*domain.Plant, error) {
	var plants []*domain.Plant
	for rows.Next() {
		p, err := r.scanPlantFromRows(rows)
		if err != nil {
			return nil, err
		}
		plants = append(plants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating plants: %w", err)
	}
	return plants, nil
}
