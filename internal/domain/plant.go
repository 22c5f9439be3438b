package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPlant marks a watering request entry that names no existing
// plant. The rest of the batch is still processed.
var ErrUnknownPlant = errors.New("unknown plant")

type Plant struct {
	ID        string
	ArealID   string
	Name      string
	ImagePath string
	Position  string

	// Watering-derived state
	Health           PlantHealth
	Size             PlantSize
	GrowthStage      int
	WaterStreak      int
	DaysWithoutWater int
	TotalWaterCount  int
	LastWatered      *time.Time
	LastEvaluated    *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the fields a caller must supply when creating a plant.
func (p *Plant) Validate() error {
	if p.Name == "" {
		return fmt.Errorf("plant name is required")
	}
	if p.ArealID == "" {
		return fmt.Errorf("plant %q needs an areal", p.Name)
	}
	if p.Health != "" && !ValidHealths[string(p.Health)] {
		return fmt.Errorf("invalid health %q (one of: dead, okay, healthy)", p.Health)
	}
	return nil
}

// NeedsWater reports whether the plant should be offered for watering:
// anything not fully healthy, or anything unwatered for two or more days.
func (p *Plant) NeedsWater() bool {
	return p.Health != HealthHealthy || p.DaysWithoutWater >= 2
}

// WateredOn reports whether the plant's last watering falls on the given day.
func (p *Plant) WateredOn(day time.Time) bool {
	return p.LastWatered != nil && SameDay(*p.LastWatered, day)
}

// GapDays returns the calendar days between the last watering and day.
// Zero means the plant has never been watered.
func (p *Plant) GapDays(day time.Time) int {
	if p.LastWatered == nil {
		return 0
	}
	return DaysBetween(*p.LastWatered, day)
}

// ElapsedDays returns the calendar days since the plant was last evaluated,
// used to catch up decay after days with no evaluation at all. Falls back to
// the last watering when no evaluation was ever stamped; never less than 1.
func (p *Plant) ElapsedDays(day time.Time) int {
	ref := p.LastEvaluated
	if ref == nil {
		ref = p.LastWatered
	}
	if ref == nil {
		return 1
	}
	d := DaysBetween(*ref, day)
	if d < 1 {
		return 1
	}
	return d
}
