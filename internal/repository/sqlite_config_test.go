package repository

import (
	"context"
	"testing"

	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigRepo_SeededDefault(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConfigRepo(db)
	ctx := context.Background()

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultDailyLimit, cfg.MaxPlantsPerDay)
}

func TestConfigRepo_SetReplacesSingleton(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConfigRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, &domain.WateringConfig{MaxPlantsPerDay: 7}))

	cfg, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, cfg.MaxPlantsPerDay)

	// Still exactly one row.
	row := db.QueryRow(`SELECT COUNT(*) FROM daily_watering_config`)
	var count int
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 1, count)
}

func TestConfigRepo_SchemaRejectsOutOfRangeLimit(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteConfigRepo(db)
	ctx := context.Background()

	// The CHECK constraint backs up the domain validation.
	err := repo.Set(ctx, &domain.WateringConfig{MaxPlantsPerDay: 0})
	assert.Error(t, err)

	err = repo.Set(ctx, &domain.WateringConfig{MaxPlantsPerDay: 51})
	assert.Error(t, err)
}
