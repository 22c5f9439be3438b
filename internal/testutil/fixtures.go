package testutil

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/google/uuid"
)

var testArealCounter atomic.Int64

// Areal options
type ArealOption func(*domain.Areal)

func WithArealID(id string) ArealOption {
	return func(a *domain.Areal) {
		a.ID = id
	}
}

func WithArealSize(s domain.ArealSize) ArealOption {
	return func(a *domain.Areal) {
		a.Size = s
	}
}

func WithArealPosition(h domain.HorizontalPos, v domain.VerticalPos) ArealOption {
	return func(a *domain.Areal) {
		a.HorizontalPos = h
		a.VerticalPos = v
	}
}

func NewTestAreal(name string, opts ...ArealOption) *domain.Areal {
	now := time.Now().UTC()
	a := &domain.Areal{
		ID:            fmt.Sprintf("areal-%02d", testArealCounter.Add(1)),
		Name:          name,
		HorizontalPos: domain.PosCenter,
		VerticalPos:   domain.PosMiddle,
		Size:          domain.ArealMedium,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Plant options
type PlantOption func(*domain.Plant)

func WithHealth(h domain.PlantHealth) PlantOption {
	return func(p *domain.Plant) {
		p.Health = h
	}
}

func WithSize(s domain.PlantSize) PlantOption {
	return func(p *domain.Plant) {
		p.Size = s
	}
}

func WithGrowthStage(n int) PlantOption {
	return func(p *domain.Plant) {
		p.GrowthStage = n
	}
}

func WithWaterStreak(n int) PlantOption {
	return func(p *domain.Plant) {
		p.WaterStreak = n
	}
}

func WithDaysWithoutWater(n int) PlantOption {
	return func(p *domain.Plant) {
		p.DaysWithoutWater = n
	}
}

func WithTotalWaterCount(n int) PlantOption {
	return func(p *domain.Plant) {
		p.TotalWaterCount = n
	}
}

func WithLastWatered(d time.Time) PlantOption {
	return func(p *domain.Plant) {
		day := domain.DateOnly(d)
		p.LastWatered = &day
	}
}

func WithLastEvaluated(d time.Time) PlantOption {
	return func(p *domain.Plant) {
		day := domain.DateOnly(d)
		p.LastEvaluated = &day
	}
}

func WithImagePath(key string) PlantOption {
	return func(p *domain.Plant) {
		p.ImagePath = key
	}
}

func NewTestPlant(arealID, name string, opts ...PlantOption) *domain.Plant {
	now := time.Now().UTC()
	p := &domain.Plant{
		ID:          uuid.New().String(),
		ArealID:     arealID,
		Name:        name,
		ImagePath:   "rose",
		Position:    "center",
		Health:      domain.HealthHealthy,
		Size:        domain.SizeSmall,
		GrowthStage: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}
