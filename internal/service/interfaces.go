package service

import (
	"context"
	"time"

	"github.com/gartenlabs/lifegarden/internal/domain"
)

// WateringResult reports one watering run. Capacity overflow and duplicate
// waterings are outcomes here, never errors.
type WateringResult struct {
	Date                  time.Time
	DailyLimit            int
	Watered               []*domain.Plant // newly watered, with refreshed state
	AlreadyWatered        []string        // plant names watered earlier the same day
	RejectedDueToCapacity []string        // plant names over the daily cap
	Unknown               []string        // request entries that matched no plant
	RemainingCapacity     int
}

// DailyStats is the watering snapshot for one day.
type DailyStats struct {
	Date          time.Time
	MaxPerDay     int
	WateredToday  int
	Remaining     int
	WateredPlants []*domain.Plant
	NeedingWater  []*domain.Plant
}

// GardenStats counts the garden's population by health tier.
type GardenStats struct {
	TotalAreals   int
	TotalPlants   int
	HealthyPlants int
	OkayPlants    int
	DeadPlants    int
}

// PlantHistory pairs a plant with its recent ledger entries, newest first.
type PlantHistory struct {
	Plant  *domain.Plant
	Events []*domain.WateringEvent
}

// ArealWithPlants is one garden region with its plant population.
type ArealWithPlants struct {
	Areal  *domain.Areal
	Plants []*domain.Plant
}

type WateringService interface {
	// WaterPlants runs one day's watering for the named plants: admission
	// against the daily cap, ledger bookkeeping, then a state refresh for
	// every plant in the garden. One transaction; repeat calls for the same
	// date are no-ops per plant.
	WaterPlants(ctx context.Context, date time.Time, namesOrIDs []string) (*WateringResult, error)

	// EvaluateDay applies pending decline to every plant not yet evaluated
	// for the date. Read paths call it so displayed state reflects missed
	// days. Returns the number of plants evaluated.
	EvaluateDay(ctx context.Context, date time.Time) (int, error)

	Stats(ctx context.Context, date time.Time) (*DailyStats, error)
	DailyLimit(ctx context.Context) (int, error)
	SetDailyLimit(ctx context.Context, limit int) error
}

type GardenService interface {
	GetGarden(ctx context.Context) ([]*ArealWithPlants, error)
	Stats(ctx context.Context) (*GardenStats, error)
	CreateAreal(ctx context.Context, a *domain.Areal) error
	CreatePlant(ctx context.Context, p *domain.Plant) error
	DeleteAreal(ctx context.Context, id string) error
	DeletePlant(ctx context.Context, nameOrID string) error
	History(ctx context.Context, nameOrID string, limit int) (*PlantHistory, error)
	// RecentWaterings returns the garden-wide ledger tail, newest first.
	RecentWaterings(ctx context.Context, limit int) ([]*domain.WateringEvent, error)
	ExportJSON(ctx context.Context) ([]byte, error)
}
