package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/repository"
	"github.com/gartenlabs/lifegarden/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGardenFixture(t *testing.T) (GardenService, *repository.SQLiteArealRepo, *repository.SQLitePlantRepo) {
	t.Helper()
	database := testutil.NewTestDB(t)
	areals := repository.NewSQLiteArealRepo(database)
	plants := repository.NewSQLitePlantRepo(database)
	watering := repository.NewSQLiteWateringRepo(database)
	return NewGardenService(areals, plants, watering), areals, plants
}

func TestGardenService_CreateArealAndPlant(t *testing.T) {
	svc, _, _ := newGardenFixture(t)
	ctx := context.Background()

	areal := &domain.Areal{ID: "sport", Name: "Sport"}
	require.NoError(t, svc.CreateAreal(ctx, areal))
	assert.Equal(t, domain.PosCenter, areal.HorizontalPos)
	assert.Equal(t, domain.ArealMedium, areal.Size)

	plant := &domain.Plant{ArealID: "sport", Name: "Joggen", ImagePath: "oat-grass"}
	require.NoError(t, svc.CreatePlant(ctx, plant))
	assert.NotEmpty(t, plant.ID)
	assert.Equal(t, domain.HealthHealthy, plant.Health)
	assert.Equal(t, 1, plant.GrowthStage)

	garden, err := svc.GetGarden(ctx)
	require.NoError(t, err)
	require.Len(t, garden, 1)
	require.Len(t, garden[0].Plants, 1)
	assert.Equal(t, "Joggen", garden[0].Plants[0].Name)
}

func TestGardenService_CreatePlantUnknownAreal(t *testing.T) {
	svc, _, _ := newGardenFixture(t)
	ctx := context.Background()

	err := svc.CreatePlant(ctx, &domain.Plant{ArealID: "nowhere", Name: "Lost"})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGardenService_Stats(t *testing.T) {
	svc, areals, plants := newGardenFixture(t)
	ctx := context.Background()

	areal := testutil.NewTestAreal("Work")
	require.NoError(t, areals.Create(ctx, areal))
	require.NoError(t, plants.Create(ctx, testutil.NewTestPlant(areal.ID, "Alive")))
	require.NoError(t, plants.Create(ctx, testutil.NewTestPlant(areal.ID, "Meh",
		testutil.WithHealth(domain.HealthOkay))))
	require.NoError(t, plants.Create(ctx, testutil.NewTestPlant(areal.ID, "Gone",
		testutil.WithHealth(domain.HealthDead))))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAreals)
	assert.Equal(t, 3, stats.TotalPlants)
	assert.Equal(t, 1, stats.HealthyPlants)
	assert.Equal(t, 1, stats.OkayPlants)
	assert.Equal(t, 1, stats.DeadPlants)
}

func TestGardenService_DeletePlantByName(t *testing.T) {
	svc, areals, plants := newGardenFixture(t)
	ctx := context.Background()

	areal := testutil.NewTestAreal("Hobbies")
	require.NoError(t, areals.Create(ctx, areal))
	p := testutil.NewTestPlant(areal.ID, "Magic")
	require.NoError(t, plants.Create(ctx, p))

	require.NoError(t, svc.DeletePlant(ctx, "Magic"))
	_, err := plants.GetByID(ctx, p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	err = svc.DeletePlant(ctx, "Magic")
	assert.ErrorIs(t, err, domain.ErrUnknownPlant)
}

func TestGardenService_ExportMatchesGardenJSONShape(t *testing.T) {
	svc, areals, plants := newGardenFixture(t)
	ctx := context.Background()

	areal := testutil.NewTestAreal("Core Family",
		testutil.WithArealID("core-family"),
		testutil.WithArealSize(domain.ArealLarge),
		testutil.WithArealPosition(domain.PosLeft, domain.PosBottom))
	require.NoError(t, areals.Create(ctx, areal))
	require.NoError(t, plants.Create(ctx, testutil.NewTestPlant("core-family", "Bobo",
		testutil.WithImagePath("rose"), testutil.WithSize(domain.SizeBig))))

	data, err := svc.ExportJSON(ctx)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	arealsOut, ok := decoded["areals"].([]any)
	require.True(t, ok)
	require.Len(t, arealsOut, 1)

	first := arealsOut[0].(map[string]any)
	assert.Equal(t, "core-family", first["id"])
	assert.Equal(t, "left", first["horizontalPos"])
	assert.Equal(t, "bottom", first["verticalPos"])

	plantsOut := first["plants"].([]any)
	require.Len(t, plantsOut, 1)
	bobo := plantsOut[0].(map[string]any)
	assert.Equal(t, "Bobo", bobo["name"])
	assert.Equal(t, "rose", bobo["imagePath"])
	assert.Equal(t, "big", bobo["size"])
}

func TestGardenService_History(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	areals := repository.NewSQLiteArealRepo(database)
	plants := repository.NewSQLitePlantRepo(database)
	watering := repository.NewSQLiteWateringRepo(database)
	svc := NewGardenService(areals, plants, watering)

	areal := testutil.NewTestAreal("Sport")
	require.NoError(t, areals.Create(ctx, areal))
	p := testutil.NewTestPlant(areal.ID, "Schwimmen")
	require.NoError(t, plants.Create(ctx, p))

	for i := 0; i < 3; i++ {
		_, err := watering.Record(ctx, p.ID, day("2025-06-01").AddDate(0, 0, i))
		require.NoError(t, err)
	}

	hist, err := svc.History(ctx, "Schwimmen", 2)
	require.NoError(t, err)
	assert.Equal(t, p.ID, hist.Plant.ID)
	require.Len(t, hist.Events, 2)
	assert.Equal(t, "2025-06-03", hist.Events[0].Date.Format("2006-01-02"))
}

func TestGardenService_RecentWaterings(t *testing.T) {
	database := testutil.NewTestDB(t)
	ctx := context.Background()
	areals := repository.NewSQLiteArealRepo(database)
	plants := repository.NewSQLitePlantRepo(database)
	watering := repository.NewSQLiteWateringRepo(database)
	svc := NewGardenService(areals, plants, watering)

	areal := testutil.NewTestAreal("Sport")
	require.NoError(t, areals.Create(ctx, areal))
	joggen := testutil.NewTestPlant(areal.ID, "Joggen")
	yoga := testutil.NewTestPlant(areal.ID, "Yoga")
	require.NoError(t, plants.Create(ctx, joggen))
	require.NoError(t, plants.Create(ctx, yoga))

	_, err := watering.Record(ctx, joggen.ID, day("2025-06-01"))
	require.NoError(t, err)
	_, err = watering.Record(ctx, yoga.ID, day("2025-06-02"))
	require.NoError(t, err)

	events, err := svc.RecentWaterings(ctx, 1)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, yoga.ID, events[0].PlantID)

	events, err = svc.RecentWaterings(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, events, 2)
}
