package garden

import (
	"github.com/gartenlabs/lifegarden/internal/domain"
)

// State is the watering-derived slice of a plant, detached from identity and
// persistence so that transitions stay total functions over plain values.
type State struct {
	Health           domain.PlantHealth
	Size             domain.PlantSize
	GrowthStage      int
	WaterStreak      int
	DaysWithoutWater int
	TotalWaterCount  int
}

// Tick describes one day's evaluation of a single plant.
type Tick struct {
	// Watered selects the watering branch of the transition.
	Watered bool
	// GapDays is the calendar distance to the previous watering, 0 when the
	// plant has never been watered. Only consulted when Watered is set.
	GapDays int
	// ElapsedDays is the calendar distance to the previous evaluation, at
	// least 1. Days skipped entirely are caught up in a single step.
	ElapsedDays int
}

const (
	GrowthStageMin = 1
	GrowthStageMax = 5

	// Promotion thresholds, in consecutive-day streaks.
	streakToRecover = 5 // dead -> okay
	streakToThrive  = 7 // okay -> healthy

	// Drought thresholds, in days without water.
	droughtBreaksStreak = 2
	droughtKillsOkay    = 3
	droughtShrinksBig   = 4 // big plants drop to medium
	droughtWiltsHealthy = 5 // healthy -> okay
	droughtStuntsGrowth = 6 // growth stage resets, size pinned to small
	droughtKillsHealthy = 8 // healthy -> dead; checked before wilting
)

// Advance computes the plant state after one day's evaluation. Each distinct
// date must be applied exactly once per plant; the caller guards re-application.
func Advance(s State, tick Tick) State {
	if tick.Watered {
		return advanceWatered(s, tick.GapDays)
	}
	return advanceUnwatered(s, tick.ElapsedDays)
}

func advanceWatered(s State, gapDays int) State {
	next := s
	next.TotalWaterCount++
	if gapDays == 1 {
		next.WaterStreak++
	} else {
		// First watering ever, or a gap of two or more days.
		next.WaterStreak = 1
	}
	next.DaysWithoutWater = 0

	next.Health = healthAfterWatering(s.Health, next.WaterStreak)
	next.GrowthStage = clamp(1+next.WaterStreak/2, GrowthStageMin, GrowthStageMax)
	next.Size = sizeFor(next.Health, next.GrowthStage, next.DaysWithoutWater)
	return next
}

func advanceUnwatered(s State, elapsedDays int) State {
	if elapsedDays < 1 {
		elapsedDays = 1
	}
	next := s
	next.DaysWithoutWater += elapsedDays
	if next.DaysWithoutWater >= droughtBreaksStreak {
		next.WaterStreak = 0
	}

	next.Health = healthAfterDrought(s.Health, next.DaysWithoutWater)
	if next.DaysWithoutWater >= droughtStuntsGrowth {
		next.GrowthStage = GrowthStageMin
	}
	next.Size = sizeFor(next.Health, next.GrowthStage, next.DaysWithoutWater)
	return next
}

// healthAfterWatering promotes one tier at a time: dead plants recover to okay,
// okay plants reach healthy. Watering never lowers health.
func healthAfterWatering(h domain.PlantHealth, streak int) domain.PlantHealth {
	switch h {
	case domain.HealthDead:
		if streak >= streakToRecover {
			return domain.HealthOkay
		}
	case domain.HealthOkay:
		if streak >= streakToThrive {
			return domain.HealthHealthy
		}
	}
	return h
}

// healthAfterDrought applies decline thresholds most severe first, so a single
// catch-up evaluation spanning several missed days lands on the right tier.
func healthAfterDrought(h domain.PlantHealth, daysWithoutWater int) domain.PlantHealth {
	switch h {
	case domain.HealthHealthy:
		switch {
		case daysWithoutWater >= droughtKillsHealthy:
			return domain.HealthDead
		case daysWithoutWater >= droughtWiltsHealthy:
			return domain.HealthOkay
		}
	case domain.HealthOkay:
		if daysWithoutWater >= droughtKillsOkay {
			return domain.HealthDead
		}
	}
	return h
}

// sizeFor derives the size tier from health and growth stage, then lets
// sustained neglect override the result downward.
func sizeFor(health domain.PlantHealth, growthStage, daysWithoutWater int) domain.PlantSize {
	var size domain.PlantSize
	switch health {
	case domain.HealthDead:
		size = domain.SizeSmall
	case domain.HealthOkay:
		if growthStage >= 4 {
			size = domain.SizeMedium
		} else {
			size = domain.SizeSmall
		}
	default: // healthy
		switch {
		case growthStage >= 4:
			size = domain.SizeBig
		case growthStage == 3:
			size = domain.SizeMedium
		default:
			size = domain.SizeSmall
		}
	}

	switch {
	case daysWithoutWater >= droughtStuntsGrowth:
		size = domain.SizeSmall
	case daysWithoutWater >= droughtShrinksBig && size == domain.SizeBig:
		size = domain.SizeMedium
	}
	return size
}

// StateOf extracts the transition-relevant fields of a plant.
func StateOf(p *domain.Plant) State {
	return State{
		Health:           p.Health,
		Size:             p.Size,
		GrowthStage:      p.GrowthStage,
		WaterStreak:      p.WaterStreak,
		DaysWithoutWater: p.DaysWithoutWater,
		TotalWaterCount:  p.TotalWaterCount,
	}
}

// ApplyTo writes the state back onto a plant.
func (s State) ApplyTo(p *domain.Plant) {
	p.Health = s.Health
	p.Size = s.Size
	p.GrowthStage = s.GrowthStage
	p.WaterStreak = s.WaterStreak
	p.DaysWithoutWater = s.DaysWithoutWater
	p.TotalWaterCount = s.TotalWaterCount
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
