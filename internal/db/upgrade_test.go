package db

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrate_UpgradePath_LegacySchemaToCurrent simulates upgrading a database
// created before the lazy-evaluation column existed. Verifies that:
// 1. Data inserted under the old schema survives migration
// 2. The last_evaluated column is added and reads back as NULL
// 3. Indexes and the config singleton are created
func TestMigrate_UpgradePath_LegacySchemaToCurrent(t *testing.T) {
	// Create a raw DB without using OpenDB (to manually control schema).
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`PRAGMA foreign_keys = ON`)
	require.NoError(t, err)

	// Apply a "legacy" schema: plants WITHOUT last_evaluated, no config
	// table yet. This is the shape of a database from before decay was
	// applied lazily on read paths.
	legacyStatements := []string{
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
		`CREATE TABLE IF NOT EXISTS watering_history (
			plant_id      TEXT NOT NULL REFERENCES plants(id) ON DELETE CASCADE,
			watering_date TEXT NOT NULL,
			created_at    TEXT NOT NULL,
			PRIMARY KEY (plant_id, watering_date)
		)`,
	}
	for _, stmt := range legacyStatements {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	// Insert data under the legacy schema.
	_, err = db.Exec(`INSERT INTO areals (id, name, created_at, updated_at)
		VALUES ('legacy-areal', 'Legacy', '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO plants (id, areal_id, name, health, water_streak, created_at, updated_at)
		VALUES ('legacy-plant', 'legacy-areal', 'Rose', 'okay', 3, '2024-01-01T00:00:00Z', '2024-01-01T00:00:00Z')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO watering_history (plant_id, watering_date, created_at)
		VALUES ('legacy-plant', '2024-01-01', '2024-01-01T08:00:00Z')`)
	require.NoError(t, err)

	// Run the current migration set on top.
	require.NoError(t, Migrate(db))

	// Legacy data survived.
	var name, health string
	var streak int
	err = db.QueryRow(`SELECT name, health, water_streak FROM plants WHERE id = 'legacy-plant'`).
		Scan(&name, &health, &streak)
	require.NoError(t, err)
	assert.Equal(t, "Rose", name)
	assert.Equal(t, "okay", health)
	assert.Equal(t, 3, streak)

	// New column exists and defaults to NULL.
	var lastEvaluated sql.NullString
	err = db.QueryRow(`SELECT last_evaluated FROM plants WHERE id = 'legacy-plant'`).Scan(&lastEvaluated)
	require.NoError(t, err)
	assert.False(t, lastEvaluated.Valid)

	// Config singleton was seeded.
	var limit int
	err = db.QueryRow(`SELECT max_plants_per_day FROM daily_watering_config WHERE id = 1`).Scan(&limit)
	require.NoError(t, err)
	assert.Equal(t, 4, limit)

	// Indexes exist.
	for _, idx := range []string{"idx_plants_areal", "idx_plants_health", "idx_watering_history_date"} {
		var n string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type='index' AND name=?`, idx).Scan(&n)
		require.NoError(t, err, "index %s should exist", idx)
	}

	// Migrating again is a no-op despite the ALTER statement.
	require.NoError(t, Migrate(db))
}
