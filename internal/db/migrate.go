package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS areals (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL,
		horizontal_pos TEXT NOT NULL DEFAULT 'center'
		               CHECK(horizontal_pos IN ('left','center','right')),
		vertical_pos   TEXT NOT NULL DEFAULT 'middle'
		               CHECK(vertical_pos IN ('top','middle','bottom')),
		size           TEXT NOT NULL DEFAULT 'medium'
		               CHECK(size IN ('small','medium','large')),
		created_at     TEXT NOT NULL,
		updated_at     TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS plants (
		id                 TEXT PRIMARY KEY,
		areal_id           TEXT NOT NULL REFERENCES areals(id) ON DELETE CASCADE,
		name               TEXT NOT NULL UNIQUE,
		image_path         TEXT NOT NULL DEFAULT '',
		position           TEXT NOT NULL DEFAULT '',
		health             TEXT NOT NULL DEFAULT 'healthy'
		                   CHECK(health IN ('dead','okay','healthy')),
		size               TEXT NOT NULL DEFAULT 'small'
		                   CHECK(size IN ('small','medium','big')),
		growth_stage       INTEGER NOT NULL DEFAULT 1
		                   CHECK(growth_stage BETWEEN 1 AND 5),
		water_streak       INTEGER NOT NULL DEFAULT 0,
		days_without_water INTEGER NOT NULL DEFAULT 0,
		total_water_count  INTEGER NOT NULL DEFAULT 0,
		last_watered       TEXT,
		created_at         TEXT NOT NULL,
		updated_at         TEXT NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_plants_areal ON plants(areal_id)`,
	`CREATE INDEX IF NOT EXISTS idx_plants_health ON plants(health)`,
	`CREATE INDEX IF NOT EXISTS idx_plants_last_watered ON plants(last_watered)`,

	// The ledger: at most one watering per plant and calendar day, enforced
	// by the composite primary key.
	`CREATE TABLE IF NOT EXISTS watering_history (
		plant_id      TEXT NOT NULL REFERENCES plants(id) ON DELETE CASCADE,
		watering_date TEXT NOT NULL,
		created_at    TEXT NOT NULL,
		PRIMARY KEY (plant_id, watering_date)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_watering_history_date ON watering_history(watering_date)`,

	`CREATE TABLE IF NOT EXISTS daily_watering_config (
		id                 INTEGER PRIMARY KEY CHECK(id = 1),
		max_plants_per_day INTEGER NOT NULL DEFAULT 4
		                   CHECK(max_plants_per_day BETWEEN 1 AND 50),
		updated_at         TEXT NOT NULL
	)`,

	// Seed the singleton config row
	`INSERT OR IGNORE INTO daily_watering_config (id, max_plants_per_day, updated_at)
		VALUES (1, 4, strftime('%Y-%m-%dT%H:%M:%SZ', 'now'))`,

	// Lazy evaluation: per-plant stamp of the last day decay was applied
	`ALTER TABLE plants ADD COLUMN last_evaluated TEXT`,
}
