package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gartenlabs/lifegarden/internal/db"
	"github.com/gartenlabs/lifegarden/internal/domain"
	"github.com/gartenlabs/lifegarden/internal/garden"
	"github.com/gartenlabs/lifegarden/internal/repository"
)

type wateringService struct {
	plants   repository.PlantRepo
	watering repository.WateringRepo
	config   repository.ConfigRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

// NewWateringService creates the watering driver over the given repositories.
// Mutating calls run inside one unit of work each.
func NewWateringService(plants repository.PlantRepo, watering repository.WateringRepo,
	config repository.ConfigRepo, uow db.UnitOfWork, observers ...UseCaseObserver) WateringService {
	return &wateringService{
		plants:   plants,
		watering: watering,
		config:   config,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *wateringService) WaterPlants(ctx context.Context, date time.Time, namesOrIDs []string) (*WateringResult, error) {
	start := time.Now()
	day := domain.DateOnly(date)
	result := &WateringResult{Date: day}

	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txPlants := repository.NewSQLitePlantRepo(tx)
		txWatering := repository.NewSQLiteWateringRepo(tx)
		txConfig := repository.NewSQLiteConfigRepo(tx)

		cfg, err := txConfig.Get(ctx)
		if err != nil {
			return err
		}
		result.DailyLimit = cfg.MaxPlantsPerDay

		// Resolve request entries to plants; unknown names are reported,
		// not fatal.
		requested := make([]string, 0, len(namesOrIDs))
		byID := make(map[string]*domain.Plant, len(namesOrIDs))
		for _, ref := range namesOrIDs {
			p, err := resolvePlant(ctx, txPlants, ref)
			if err != nil {
				if errors.Is(err, domain.ErrUnknownPlant) {
					result.Unknown = append(result.Unknown, ref)
					continue
				}
				return err
			}
			requested = append(requested, p.ID)
			byID[p.ID] = p
		}

		alreadyCount, err := txWatering.CountWateredOn(ctx, day)
		if err != nil {
			return err
		}
		wateredToday := make(map[string]bool, len(requested))
		for _, id := range requested {
			watered, err := txWatering.WasWateredOn(ctx, id, day)
			if err != nil {
				return err
			}
			wateredToday[id] = watered
		}

		adm := garden.PlanAdmission(garden.AdmissionInput{
			Limit:          cfg.MaxPlantsPerDay,
			AlreadyWatered: alreadyCount,
			Requested:      requested,
			WateredToday:   wateredToday,
		})
		result.RemainingCapacity = adm.Remaining
		for _, id := range adm.AlreadyWatered {
			result.AlreadyWatered = append(result.AlreadyWatered, byID[id].Name)
		}
		for _, id := range adm.Rejected {
			result.RejectedDueToCapacity = append(result.RejectedDueToCapacity, byID[id].Name)
		}

		admitted := make(map[string]bool, len(adm.Admitted))
		for _, id := range adm.Admitted {
			p := byID[id]
			admitted[id] = true

			inserted, err := txWatering.Record(ctx, id, day)
			if err != nil {
				return err
			}
			// The plant-level guard backs up the ledger: a plant whose
			// lastWatered already reads today must not advance twice.
			if !inserted || p.WateredOn(day) {
				result.AlreadyWatered = append(result.AlreadyWatered, p.Name)
				continue
			}

			state := garden.Advance(garden.StateOf(p), garden.Tick{
				Watered: true,
				GapDays: p.GapDays(day),
			})
			state.ApplyTo(p)
			p.LastWatered = &day
			p.LastEvaluated = &day
			if err := txPlants.UpdateState(ctx, p); err != nil {
				return err
			}
			result.Watered = append(result.Watered, p)
		}

		// Everything not watered today catches up on decline.
		_, err = declinePass(ctx, txPlants, day)
		return err
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "water_plants",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"date":      day.Format(domain.DateLayout),
			"requested": len(namesOrIDs),
			"watered":   len(result.Watered),
			"rejected":  len(result.RejectedDueToCapacity),
		},
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *wateringService) EvaluateDay(ctx context.Context, date time.Time) (int, error) {
	start := time.Now()
	day := domain.DateOnly(date)

	var evaluated int
	err := s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		var err error
		evaluated, err = declinePass(ctx, repository.NewSQLitePlantRepo(tx), day)
		return err
	})

	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      "evaluate_day",
		Duration:  time.Since(start),
		Success:   err == nil,
		Err:       err,
		StartedAt: start,
		Fields: map[string]any{
			"date":      day.Format(domain.DateLayout),
			"evaluated": evaluated,
		},
	})
	return evaluated, err
}

// declinePass applies the not-watered branch to every plant not yet evaluated
// for the day. The lastEvaluated stamp makes a second pass for the same date
// a no-op, however often read paths trigger it.
func declinePass(ctx context.Context, plants repository.PlantRepo, day time.Time) (int, error) {
	all, err := plants.List(ctx)
	if err != nil {
		return 0, err
	}

	evaluated := 0
	for _, p := range all {
		if p.WateredOn(day) {
			continue
		}
		if p.LastEvaluated != nil && !p.LastEvaluated.Before(day) {
			continue
		}

		state := garden.Advance(garden.StateOf(p), garden.Tick{
			Watered:     false,
			ElapsedDays: p.ElapsedDays(day),
		})
		state.ApplyTo(p)
		p.LastEvaluated = &day
		if err := plants.UpdateState(ctx, p); err != nil {
			return evaluated, err
		}
		evaluated++
	}
	return evaluated, nil
}

func (s *wateringService) Stats(ctx context.Context, date time.Time) (*DailyStats, error) {
	day := domain.DateOnly(date)

	// Catch up pending decay so the snapshot reflects missed days.
	if _, err := s.EvaluateDay(ctx, day); err != nil {
		return nil, err
	}

	cfg, err := s.config.Get(ctx)
	if err != nil {
		return nil, err
	}
	wateredIDs, err := s.watering.ListWateredOn(ctx, day)
	if err != nil {
		return nil, err
	}
	needing, err := s.plants.ListNeedingWater(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DailyStats{
		Date:         day,
		MaxPerDay:    cfg.MaxPlantsPerDay,
		WateredToday: len(wateredIDs),
		NeedingWater: needing,
	}
	stats.Remaining = cfg.MaxPlantsPerDay - stats.WateredToday
	if stats.Remaining < 0 {
		stats.Remaining = 0
	}
	for _, id := range wateredIDs {
		p, err := s.plants.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		stats.WateredPlants = append(stats.WateredPlants, p)
	}
	return stats, nil
}

func (s *wateringService) DailyLimit(ctx context.Context) (int, error) {
	cfg, err := s.config.Get(ctx)
	if err != nil {
		return 0, err
	}
	return cfg.MaxPlantsPerDay, nil
}

func (s *wateringService) SetDailyLimit(ctx context.Context, limit int) error {
	cfg := &domain.WateringConfig{MaxPlantsPerDay: limit}
	// Rejected before any mutation; the stored config is untouched.
	if err := cfg.Validate(); err != nil {
		return err
	}
	return s.config.Set(ctx, cfg)
}

// resolvePlant looks a request entry up by name first (the common case,
// checklist labels are names), then by id.
func resolvePlant(ctx context.Context, plants repository.PlantRepo, ref string) (*domain.Plant, error) {
	p, err := plants.GetByName(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	p, err = plants.GetByID(ctx, ref)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, err
	}
	return nil, fmt.Errorf("%q: %w", ref, domain.ErrUnknownPlant)
}
