package repository

import (
	"context"
	"time"

	"github.com/gartenlabs/lifegarden/internal/domain"
)

type ArealRepo interface {
	Create(ctx context.Context, a *domain.Areal) error
	GetByID(ctx context.Context, id string) (*domain.Areal, error)
	List(ctx context.Context) ([]*domain.Areal, error)
	Update(ctx context.Context, a *domain.Areal) error
	Delete(ctx context.Context, id string) error
}

type PlantRepo interface {
	Create(ctx context.Context, p *domain.Plant) error
	GetByID(ctx context.Context, id string) (*domain.Plant, error)
	GetByName(ctx context.Context, name string) (*domain.Plant, error)
	List(ctx context.Context) ([]*domain.Plant, error)
	ListByAreal(ctx context.Context, arealID string) ([]*domain.Plant, error)
	ListByHealth(ctx context.Context, health domain.PlantHealth) ([]*domain.Plant, error)
	// ListNeedingWater returns thirsty plants, most urgent first: longest dry
	// spell, then dead before ailing, then the weakest streak.
	ListNeedingWater(ctx context.Context) ([]*domain.Plant, error)
	// UpdateState persists the watering-derived fields as one atomic write.
	UpdateState(ctx context.Context, p *domain.Plant) error
	Delete(ctx context.Context, id string) error
}

type WateringRepo interface {
	// Record inserts a ledger entry for the plant and date. Returns false
	// when the entry already exists; a day's second watering is a no-op.
	Record(ctx context.Context, plantID string, date time.Time) (bool, error)
	WasWateredOn(ctx context.Context, plantID string, date time.Time) (bool, error)
	CountWateredOn(ctx context.Context, date time.Time) (int, error)
	ListWateredOn(ctx context.Context, date time.Time) ([]string, error)
	History(ctx context.Context, plantID string, limit int) ([]*domain.WateringEvent, error)
	ListRecent(ctx context.Context, limit int) ([]*domain.WateringEvent, error)
}

type ConfigRepo interface {
	Get(ctx context.Context) (*domain.WateringConfig, error)
	Set(ctx context.Context, c *domain.WateringConfig) error
}
