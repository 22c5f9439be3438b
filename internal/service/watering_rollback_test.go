package service

import (
	"context"
	"errors"
	"testing"

	"github.com/gartenlabs/lifegarden/internal/repository"
	"github.com/gartenlabs/lifegarden/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A storage failure mid-run must leave no partial writes behind: no ledger
// row and no plant state change may survive the rollback.
func TestWaterPlants_StorageFailureRollsBackEverything(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	areals := repository.NewSQLiteArealRepo(database)
	plants := repository.NewSQLitePlantRepo(database)
	watering := repository.NewSQLiteWateringRepo(database)
	config := repository.NewSQLiteConfigRepo(database)

	areal := testutil.NewTestAreal("Sport")
	require.NoError(t, areals.Create(ctx, areal))
	p1 := testutil.NewTestPlant(areal.ID, "Joggen")
	p2 := testutil.NewTestPlant(areal.ID, "Yoga")
	require.NoError(t, plants.Create(ctx, p1))
	require.NoError(t, plants.Create(ctx, p2))

	injected := errors.New("disk failure")
	// Exec 1: ledger insert for Joggen; exec 2: Joggen's state update;
	// exec 3: ledger insert for Yoga, fail there.
	uow := &testutil.FailOnNthExecUoW{DB: database, FailOn: 3, Err: injected}
	svc := NewWateringService(plants, watering, config, uow)

	_, err := svc.WaterPlants(ctx, day("2025-06-10"), []string{"Joggen", "Yoga"})
	assert.ErrorIs(t, err, injected)

	// Joggen's accepted watering must not be visible either.
	count, err := watering.CountWateredOn(ctx, day("2025-06-10"))
	require.NoError(t, err)
	assert.Equal(t, 0, count)

	got, err := plants.GetByID(ctx, p1.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.WaterStreak)
	assert.Equal(t, 0, got.TotalWaterCount)
	assert.Nil(t, got.LastWatered)

	// A retry against a healthy store succeeds from the clean slate.
	svc = NewWateringService(plants, watering, config, testutil.NewTestUoW(database))
	res, err := svc.WaterPlants(ctx, day("2025-06-10"), []string{"Joggen", "Yoga"})
	require.NoError(t, err)
	assert.Len(t, res.Watered, 2)
}

func TestWaterPlants_ConfigReadFailureIsFatal(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	plants := repository.NewSQLitePlantRepo(database)
	watering := repository.NewSQLiteWateringRepo(database)
	config := repository.NewSQLiteConfigRepo(database)

	// Remove the singleton config row to simulate a broken store.
	_, err := database.Exec(`DELETE FROM daily_watering_config`)
	require.NoError(t, err)

	svc := NewWateringService(plants, watering, config, testutil.NewTestUoW(database))
	_, err = svc.WaterPlants(ctx, day("2025-06-10"), []string{"anything"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
