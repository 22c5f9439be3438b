package domain

import (
	"errors"
	"fmt"
	"time"
)

// WateringEvent is one row of the watering ledger: plant X was watered on
// date Y. At most one event exists per plant and day.
type WateringEvent struct {
	PlantID   string
	Date      time.Time
	CreatedAt time.Time
}

// Daily watering capacity bounds. The limit is deliberately scarce so that
// watering stays a deliberate act rather than a bulk operation.
const (
	MinDailyLimit     = 1
	MaxDailyLimit     = 50
	DefaultDailyLimit = 4
)

// ErrLimitOutOfRange rejects daily limit updates outside [MinDailyLimit, MaxDailyLimit].
var ErrLimitOutOfRange = errors.New("daily watering limit out of range")

// WateringConfig is the singleton daily admission configuration.
type WateringConfig struct {
	MaxPlantsPerDay int
	UpdatedAt       time.Time
}

func (c *WateringConfig) Validate() error {
	if c.MaxPlantsPerDay < MinDailyLimit || c.MaxPlantsPerDay > MaxDailyLimit {
		return fmt.Errorf("max plants per day must be between %d and %d, got %d: %w",
			MinDailyLimit, MaxDailyLimit, c.MaxPlantsPerDay, ErrLimitOutOfRange)
	}
	return nil
}
