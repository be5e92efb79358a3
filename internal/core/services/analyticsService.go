package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

// AnalyticsService aggregates over full snapshots of the repositories.
// Collections are read one after another without a shared lock, so a write
// landing between two reads can show up in one collection and not the other.
type AnalyticsService struct {
	modelRepo  ports.BikeModelRepository
	bikeRepo   ports.BikeRepository
	renterRepo ports.RenterRepository
	rentalRepo ports.RentalRepository
	logger     ports.LoggerPort
}

func NewAnalyticsService(
	modelRepo ports.BikeModelRepository,
	bikeRepo ports.BikeRepository,
	renterRepo ports.RenterRepository,
	rentalRepo ports.RentalRepository,
	logger ports.LoggerPort,
) *AnalyticsService {
	return &AnalyticsService{
		modelRepo:  modelRepo,
		bikeRepo:   bikeRepo,
		renterRepo: renterRepo,
		rentalRepo: rentalRepo,
		logger:     logger,
	}
}

type snapshot struct {
	models  map[int]*domain.BikeModel
	bikes   map[int]*domain.Bike
	rentals []*domain.Rental
}

func (s *AnalyticsService) loadModels(ctx context.Context) ([]*domain.BikeModel, error) {
	models, err := s.modelRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to read bike models for analytics", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("read bike models: %w", err)
	}
	return models, nil
}

func (s *AnalyticsService) loadBikes(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to read bikes for analytics", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("read bikes: %w", err)
	}
	return bikes, nil
}

func (s *AnalyticsService) loadRentals(ctx context.Context) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to read rentals for analytics", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("read rentals: %w", err)
	}
	return rentals, nil
}

func (s *AnalyticsService) loadSnapshot(ctx context.Context) (*snapshot, error) {
	models, err := s.loadModels(ctx)
	if err != nil {
		return nil, err
	}
	bikes, err := s.loadBikes(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.loadRentals(ctx)
	if err != nil {
		return nil, err
	}
	return &snapshot{
		models:  indexByID(models, func(m *domain.BikeModel) int { return m.ID }),
		bikes:   indexByID(bikes, func(b *domain.Bike) int { return b.ID }),
		rentals: rentals,
	}, nil
}

func (s *AnalyticsService) AllSportBikes(ctx context.Context) ([]*domain.Bike, error) {
	models, err := s.loadModels(ctx)
	if err != nil {
		return nil, err
	}
	bikes, err := s.loadBikes(ctx)
	if err != nil {
		return nil, err
	}

	sportModels := make(map[int]struct{})
	for _, m := range models {
		if m.BikeType == domain.Sport {
			sportModels[m.ID] = struct{}{}
		}
	}

	return filter(bikes, func(b *domain.Bike) bool {
		_, ok := sportModels[b.ModelID]
		return ok
	}), nil
}

// TopFiveModelsByRevenue skips rentals whose bike or model no longer exists.
func (s *AnalyticsService) TopFiveModelsByRevenue(ctx context.Context) ([]domain.ModelRevenue, error) {
	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[int]decimal.Decimal)
	for _, rental := range snap.rentals {
		bike, ok := snap.bikes[rental.BikeID]
		if !ok {
			continue
		}
		model, ok := snap.models[bike.ModelID]
		if !ok {
			continue
		}
		totals[model.ID] = totals[model.ID].Add(model.Revenue(rental.DurationHours))
	}

	ranked := rankDescending(totals, func(a, b decimal.Decimal) bool { return a.GreaterThan(b) }, topModelsLimit)
	result := make([]domain.ModelRevenue, 0, len(ranked))
	for _, id := range ranked {
		result = append(result, domain.ModelRevenue{ModelID: id, Revenue: roundMoney(totals[id])})
	}
	return result, nil
}

// TopFiveModelsByDuration groups by the bike's model id; rentals on unknown bikes are skipped.
func (s *AnalyticsService) TopFiveModelsByDuration(ctx context.Context) ([]domain.ModelDuration, error) {
	bikes, err := s.loadBikes(ctx)
	if err != nil {
		return nil, err
	}
	rentals, err := s.loadRentals(ctx)
	if err != nil {
		return nil, err
	}
	byID := indexByID(bikes, func(b *domain.Bike) int { return b.ID })

	totals := make(map[int]int)
	for _, rental := range rentals {
		bike, ok := byID[rental.BikeID]
		if !ok {
			continue
		}
		totals[bike.ModelID] += rental.DurationHours
	}

	ranked := rankDescending(totals, func(a, b int) bool { return a > b }, topModelsLimit)
	result := make([]domain.ModelDuration, 0, len(ranked))
	for _, id := range ranked {
		result = append(result, domain.ModelDuration{ModelID: id, TotalHours: totals[id]})
	}
	return result, nil
}

// MinMaxAvgDuration returns zeroes when there are no rentals.
func (s *AnalyticsService) MinMaxAvgDuration(ctx context.Context) (domain.DurationStats, error) {
	rentals, err := s.loadRentals(ctx)
	if err != nil {
		return domain.DurationStats{}, err
	}
	if len(rentals) == 0 {
		return domain.DurationStats{}, nil
	}

	stats := domain.DurationStats{Min: rentals[0].DurationHours, Max: rentals[0].DurationHours}
	sum := 0
	for _, rental := range rentals {
		if rental.DurationHours < stats.Min {
			stats.Min = rental.DurationHours
		}
		if rental.DurationHours > stats.Max {
			stats.Max = rental.DurationHours
		}
		sum += rental.DurationHours
	}
	stats.Avg = round2(float64(sum) / float64(len(rentals)))
	return stats, nil
}

func (s *AnalyticsService) TotalRentalTimeByType(ctx context.Context, code int) (int, error) {
	bikeType, err := domain.ParseBikeType(code)
	if err != nil {
		s.logger.Warn("Unknown bike type requested", map[string]interface{}{
			"bike_type": code,
		})
		return 0, err
	}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, rental := range snap.rentals {
		bike, ok := snap.bikes[rental.BikeID]
		if !ok {
			continue
		}
		model, ok := snap.models[bike.ModelID]
		if !ok || model.BikeType != bikeType {
			continue
		}
		total += rental.DurationHours
	}
	return total, nil
}

// TopClientsByRentalCount returns every renter tied at the highest rental count,
// ordered by renter id. Counts for renters that no longer exist still set the
// maximum but are left out of the result.
func (s *AnalyticsService) TopClientsByRentalCount(ctx context.Context) ([]domain.ClientRentalCount, error) {
	rentals, err := s.loadRentals(ctx)
	if err != nil {
		return nil, err
	}
	if len(rentals) == 0 {
		return []domain.ClientRentalCount{}, nil
	}

	renters, err := s.renterRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to read renters for analytics", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, fmt.Errorf("read renters: %w", err)
	}
	byID := indexByID(renters, func(r *domain.Renter) int { return r.ID })

	counts := make(map[int]int)
	maxCount := 0
	for _, rental := range rentals {
		counts[rental.RenterID]++
		if counts[rental.RenterID] > maxCount {
			maxCount = counts[rental.RenterID]
		}
	}

	ids := make([]int, 0)
	for id, count := range counts {
		if count == maxCount {
			ids = append(ids, id)
		}
	}
	sort.Ints(ids)

	result := make([]domain.ClientRentalCount, 0, len(ids))
	for _, id := range ids {
		renter, ok := byID[id]
		if !ok {
			continue
		}
		result = append(result, domain.ClientRentalCount{Renter: renter, RentalCount: maxCount})
	}
	return result, nil
}
