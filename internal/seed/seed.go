// Package seed installs the initial demo garden: six life-domain areals
// with their plants, as shipped by the original tool.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/repository"
	"github.com/google/uuid"
)

type seedPlant struct {
	name      string
	health    domain.PlantHealth
	imagePath string
	size      domain.PlantSize
	position  string
}

type seedAreal struct {
	id     string
	name   string
	hpos   domain.HorizontalPos
	vpos   domain.VerticalPos
	size   domain.ArealSize
	plants []seedPlant
}

var initialGarden = []seedAreal{
	{
		id: "core-family", name: "Core Family",
		hpos: domain.PosLeft, vpos: domain.PosBottom, size: domain.ArealLarge,
		plants: []seedPlant{
			{"Bobo", domain.HealthHealthy, "rose", domain.SizeBig, "top"},
			{"Finja", domain.HealthHealthy, "sunflower", domain.SizeBig, "left"},
			{"Mats", domain.HealthHealthy, "happy-bamboo", domain.SizeBig, "right"},
			{"Mama", domain.HealthHealthy, "lavendel", domain.SizeMedium, "center"},
			{"Papa", domain.HealthOkay, "cactus", domain.SizeSmall, "bottom"},
		},
	},
	{
		id: "sport", name: "Sport",
		hpos: domain.PosRight, vpos: domain.PosBottom, size: domain.ArealLarge,
		plants: []seedPlant{
			{"Fahrrad fahren", domain.HealthHealthy, "thymian", domain.SizeBig, "top"},
			{"Joggen", domain.HealthOkay, "oat-grass", domain.SizeBig, "center"},
			{"Klettern", domain.HealthHealthy, "hop", domain.SizeBig, "left"},
			{"Yoga", domain.HealthHealthy, "lotus-flower", domain.SizeMedium, "right"},
			{"Schwimmen", domain.HealthOkay, "water-hyacinth", domain.SizeMedium, "bottom-left"},
			{"Fußball", domain.HealthDead, "grass", domain.SizeSmall, "bottom-right"},
		},
	},
	{
		id: "mental-health", name: "Mental Health",
		hpos: domain.PosLeft, vpos: domain.PosMiddle, size: domain.ArealLarge,
		plants: []seedPlant{
			{"Meditation", domain.HealthHealthy, "bonsai", domain.SizeBig, "center"},
			{"Lesen", domain.HealthHealthy, "ivy", domain.SizeMedium, "left"},
			{"Journaling", domain.HealthHealthy, "sage", domain.SizeMedium, "right"},
			{"Waldbaden", domain.HealthOkay, "sequoia", domain.SizeMedium, "bottom"},
			{"Psychotherapie", domain.HealthHealthy, "aloe-vera", domain.SizeBig, "top"},
		},
	},
	{
		id: "extended-family", name: "Extended Family",
		hpos: domain.PosRight, vpos: domain.PosTop, size: domain.ArealMedium,
		plants: []seedPlant{
			{"Oma", domain.HealthDead, "snowdrop", domain.SizeSmall, "left"},
			{"Frankes", domain.HealthHealthy, "marigold", domain.SizeBig, "center-top-mid"},
			{"Schwiegereltern", domain.HealthHealthy, "cucumber", domain.SizeBig, "bottom"},
		},
	},
	{
		id: "hobbies", name: "Hobbies",
		hpos: domain.PosRight, vpos: domain.PosMiddle, size: domain.ArealMedium,
		plants: []seedPlant{
			{"DJ", domain.HealthOkay, "red-maple", domain.SizeBig, "center"},
			{"Magic", domain.HealthDead, "black-lotus", domain.SizeSmall, "bottom"},
			{"Schach", domain.HealthOkay, "cypress", domain.SizeMedium, "left"},
		},
	},
	{
		id: "work", name: "Work",
		hpos: domain.PosLeft, vpos: domain.PosTop, size: domain.ArealSmall,
		plants: []seedPlant{
			{"Spaß bei der Arbeit", domain.HealthOkay, "dandelion", domain.SizeMedium, "center"},
			{"Sinn in der Arbeit", domain.HealthDead, "oak", domain.SizeSmall, "bottom"},
		},
	},
}

// Seeder installs the demo garden into an empty database.
type Seeder struct {
	areals repository.ArealRepo
	plants repository.PlantRepo
}

func NewSeeder(areals repository.ArealRepo, plants repository.PlantRepo) *Seeder {
	return &Seeder{areals: areals, plants: plants}
}

// Seed inserts the initial garden. A garden that already has areals is left
// untouched; Seed reports whether it planted anything.
func (s *Seeder) Seed(ctx context.Context) (bool, error) {
	existing, err := s.areals.List(ctx)
	if err != nil {
		return false, fmt.Errorf("checking for existing garden: %w", err)
	}
	if len(existing) > 0 {
		return false, nil
	}

	now := time.Now().UTC()
	for _, sa := range initialGarden {
		areal := &domain.Areal{
			ID:            sa.id,
			Name:          sa.name,
			HorizontalPos: sa.hpos,
			VerticalPos:   sa.vpos,
			Size:          sa.size,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := s.areals.Create(ctx, areal); err != nil {
			return false, fmt.Errorf("seeding areal %q: %w", sa.name, err)
		}

		for _, sp := range sa.plants {
			plant := &domain.Plant{
				ID:          uuid.New().String(),
				ArealID:     sa.id,
				Name:        sp.name,
				ImagePath:   sp.imagePath,
				Position:    sp.position,
				Health:      sp.health,
				Size:        sp.size,
				GrowthStage: 1,
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := s.plants.Create(ctx, plant); err != nil {
				return false, fmt.Errorf("seeding plant %q: %w", sp.name, err)
			}
		}
	}
	return true, nil
}
