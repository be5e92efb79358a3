package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type RenterService struct {
	renterRepo ports.RenterRepository
	rentalRepo ports.RentalRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
	cache      entityCache[domain.Renter]
}

func NewRenterService(
	renterRepo ports.RenterRepository,
	rentalRepo ports.RentalRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *RenterService {
	return &RenterService{
		renterRepo: renterRepo,
		rentalRepo: rentalRepo,
		logger:     logger,
		validate:   validate,
		cache:      newEntityCache[domain.Renter](cache, logger, "renter"),
	}
}

func (s *RenterService) Create(ctx context.Context, payload *domain.RenterPayload) (*domain.Renter, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Renter validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	renter := &domain.Renter{}
	payload.Apply(renter)

	created, err := s.renterRepo.Create(ctx, renter)
	if err != nil {
		s.logger.Error("Failed to create renter", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Renter created successfully", map[string]interface{}{
		"renter_id": created.ID,
	})

	return created, nil
}

func (s *RenterService) Get(ctx context.Context, id int) (*domain.Renter, error) {
	if cached, ok := s.cache.get(ctx, id); ok {
		return cached, nil
	}

	renter, err := s.renterRepo.Read(ctx, id)
	if err != nil {
		logLookupFailure(s.logger, "Failed to get renter", err, map[string]interface{}{
			"renter_id": id,
		})
		return nil, err
	}

	s.cache.put(ctx, id, renter)
	return renter, nil
}

func (s *RenterService) GetAll(ctx context.Context) ([]*domain.Renter, error) {
	renters, err := s.renterRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get renters", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return renters, nil
}

func (s *RenterService) Update(ctx context.Context, id int, payload *domain.RenterPayload) (*domain.Renter, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Renter validation failed", map[string]interface{}{
			"error":     err.Error(),
			"renter_id": id,
		})
		return nil, err
	}

	renter, err := s.renterRepo.Read(ctx, id)
	if err != nil {
		s.logger.Warn("Renter not found for update", map[string]interface{}{
			"error":     err.Error(),
			"renter_id": id,
		})
		return nil, err
	}

	payload.Apply(renter)

	updated, err := s.renterRepo.Update(ctx, renter)
	if err != nil {
		s.logger.Error("Failed to update renter", map[string]interface{}{
			"error":     err.Error(),
			"renter_id": id,
		})
		return nil, err
	}

	s.cache.invalidate(ctx, id)

	s.logger.Info("Renter updated successfully", map[string]interface{}{
		"renter_id": id,
	})

	return updated, nil
}

func (s *RenterService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.renterRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete renter", map[string]interface{}{
			"error":     err.Error(),
			"renter_id": id,
		})
		return false, err
	}
	if deleted {
		s.cache.invalidate(ctx, id)
		s.logger.Info("Renter deleted successfully", map[string]interface{}{
			"renter_id": id,
		})
	}
	return deleted, nil
}

func (s *RenterService) GetRentals(ctx context.Context, renterID int) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get rentals for renter", map[string]interface{}{
			"error":     err.Error(),
			"renter_id": renterID,
		})
		return nil, err
	}

	return filter(rentals, func(r *domain.Rental) bool { return r.RenterID == renterID }), nil
}

func (s *RenterService) CountRentals(ctx context.Context, renterID int) (int, error) {
	rentals, err := s.GetRentals(ctx, renterID)
	if err != nil {
		return 0, err
	}
	return len(rentals), nil
}
