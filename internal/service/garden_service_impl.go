package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/repository"
	"github.com/google/uuid"
)

type gardenService struct {
	areals   repository.ArealRepo
	plants   repository.PlantRepo
	watering repository.WateringRepo
}

// NewGardenService creates the garden management service. Its writes are
// single statements, so it runs straight against the database; cascades do
// the multi-table work.
func NewGardenService(areals repository.ArealRepo, plants repository.PlantRepo,
	watering repository.WateringRepo) GardenService {
	return &gardenService{
		areals:   areals,
		plants:   plants,
		watering: watering,
	}
}

func (s *gardenService) GetGarden(ctx context.Context) ([]*ArealWithPlants, error) {
	areals, err := s.areals.List(ctx)
	if err != nil {
		return nil, err
	}

	garden := make([]*ArealWithPlants, 0, len(areals))
	for _, a := range areals {
		plants, err := s.plants.ListByAreal(ctx, a.ID)
		if err != nil {
			return nil, err
		}
		garden = append(garden, &ArealWithPlants{Areal: a, Plants: plants})
	}
	return garden, nil
}

func (s *gardenService) Stats(ctx context.Context) (*GardenStats, error) {
	areals, err := s.areals.List(ctx)
	if err != nil {
		return nil, err
	}
	plants, err := s.plants.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &GardenStats{
		TotalAreals: len(areals),
		TotalPlants: len(plants),
	}
	for _, p := range plants {
		switch p.Health {
		case domain.HealthHealthy:
			stats.HealthyPlants++
		case domain.HealthOkay:
			stats.OkayPlants++
		case domain.HealthDead:
			stats.DeadPlants++
		}
	}
	return stats, nil
}

func (s *gardenService) CreateAreal(ctx context.Context, a *domain.Areal) error {
	applyArealDefaults(a)
	if err := a.Validate(); err != nil {
		return err
	}
	return s.areals.Create(ctx, a)
}

func (s *gardenService) CreatePlant(ctx context.Context, p *domain.Plant) error {
	applyPlantDefaults(p)
	if err := p.Validate(); err != nil {
		return err
	}
	if _, err := s.areals.GetByID(ctx, p.ArealID); err != nil {
		return fmt.Errorf("areal %q: %w", p.ArealID, err)
	}
	return s.plants.Create(ctx, p)
}

func (s *gardenService) DeleteAreal(ctx context.Context, id string) error {
	if _, err := s.areals.GetByID(ctx, id); err != nil {
		return err
	}
	return s.areals.Delete(ctx, id)
}

func (s *gardenService) DeletePlant(ctx context.Context, nameOrID string) error {
	p, err := resolvePlant(ctx, s.plants, nameOrID)
	if err != nil {
		return err
	}
	return s.plants.Delete(ctx, p.ID)
}

func (s *gardenService) History(ctx context.Context, nameOrID string, limit int) (*PlantHistory, error) {
	p, err := resolvePlant(ctx, s.plants, nameOrID)
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = 30
	}
	events, err := s.watering.History(ctx, p.ID, limit)
	if err != nil {
		return nil, err
	}
	return &PlantHistory{Plant: p, Events: events}, nil
}

func (s *gardenService) RecentWaterings(ctx context.Context, limit int) ([]*domain.WateringEvent, error) {
	if limit <= 0 {
		limit = 30
	}
	return s.watering.ListRecent(ctx, limit)
}

// Export types mirror the garden JSON the rendering frontend consumed.
type exportPlant struct {
	Name      string `json:"name"`
	Health    string `json:"health"`
	ImagePath string `json:"imagePath"`
	Size      string `json:"size"`
	Position  string `json:"position"`
}

type exportAreal struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	HorizontalPos string        `json:"horizontalPos"`
	VerticalPos   string        `json:"verticalPos"`
	Size          string        `json:"size"`
	Plants        []exportPlant `json:"plants"`
}

type exportGarden struct {
	Areals []exportAreal `json:"areals"`
}

func (s *gardenService) ExportJSON(ctx context.Context) ([]byte, error) {
	garden, err := s.GetGarden(ctx)
	if err != nil {
		return nil, err
	}

	out := exportGarden{Areals: make([]exportAreal, 0, len(garden))}
	for _, entry := range garden {
		a := exportAreal{
			ID:            entry.Areal.ID,
			Name:          entry.Areal.Name,
			HorizontalPos: string(entry.Areal.HorizontalPos),
			VerticalPos:   string(entry.Areal.VerticalPos),
			Size:          string(entry.Areal.Size),
			Plants:        make([]exportPlant, 0, len(entry.Plants)),
		}
		for _, p := range entry.Plants {
			a.Plants = append(a.Plants, exportPlant{
				Name:      p.Name,
				Health:    string(p.Health),
				ImagePath: p.ImagePath,
				Size:      string(p.Size),
				Position:  p.Position,
			})
		}
		out.Areals = append(out.Areals, a)
	}
	return json.MarshalIndent(out, "", "  ")
}

func applyArealDefaults(a *domain.Areal) {
	now := time.Now().UTC()
	if a.HorizontalPos == "" {
		a.HorizontalPos = domain.PosCenter
	}
	if a.VerticalPos == "" {
		a.VerticalPos = domain.PosMiddle
	}
	if a.Size == "" {
		a.Size = domain.ArealMedium
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = now
	}
	a.UpdatedAt = now
}

func applyPlantDefaults(p *domain.Plant) {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.Health == "" {
		p.Health = domain.HealthHealthy
	}
	if p.Size == "" {
		p.Size = domain.SizeSmall
	}
	if p.GrowthStage == 0 {
		p.GrowthStage = 1
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	p.UpdatedAt = now
}
