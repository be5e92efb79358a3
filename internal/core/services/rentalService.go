package services

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

// RentalService keeps rentals pointing at existing bikes and renters.
// References are checked at write time only; a later delete of the bike or
// renter leaves the rental dangling.
type RentalService struct {
	rentalRepo ports.RentalRepository
	bikeRepo   ports.BikeRepository
	renterRepo ports.RenterRepository
	logger     ports.LoggerPort
	validate   *validator.Validate
}

func NewRentalService(
	rentalRepo ports.RentalRepository,
	bikeRepo ports.BikeRepository,
	renterRepo ports.RenterRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
) *RentalService {
	return &RentalService{
		rentalRepo: rentalRepo,
		bikeRepo:   bikeRepo,
		renterRepo: renterRepo,
		logger:     logger,
		validate:   validate,
	}
}

func (s *RentalService) checkReferences(ctx context.Context, payload *domain.RentalPayload) error {
	if _, err := resolveReference(ctx, s.bikeRepo, "bike", payload.BikeID); err != nil {
		return err
	}
	if _, err := resolveReference(ctx, s.renterRepo, "renter", payload.RenterID); err != nil {
		return err
	}
	return nil
}

func (s *RentalService) Create(ctx context.Context, payload *domain.RentalPayload) (*domain.Rental, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Rental validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if err := s.checkReferences(ctx, payload); err != nil {
		s.logger.Warn("Rental references are invalid", map[string]interface{}{
			"error":     err.Error(),
			"bike_id":   payload.BikeID,
			"renter_id": payload.RenterID,
		})
		return nil, err
	}

	rental := &domain.Rental{}
	payload.Apply(rental)

	created, err := s.rentalRepo.Create(ctx, rental)
	if err != nil {
		s.logger.Error("Failed to create rental", map[string]interface{}{
			"error":     err.Error(),
			"bike_id":   payload.BikeID,
			"renter_id": payload.RenterID,
		})
		return nil, err
	}

	s.logger.Info("Rental created successfully", map[string]interface{}{
		"rental_id": created.ID,
		"bike_id":   created.BikeID,
		"renter_id": created.RenterID,
	})

	return created, nil
}

func (s *RentalService) Get(ctx context.Context, id int) (*domain.Rental, error) {
	rental, err := s.rentalRepo.Read(ctx, id)
	if err != nil {
		logLookupFailure(s.logger, "Failed to get rental", err, map[string]interface{}{
			"rental_id": id,
		})
		return nil, err
	}
	return rental, nil
}

func (s *RentalService) GetAll(ctx context.Context) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get rentals", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return rentals, nil
}

func (s *RentalService) Update(ctx context.Context, id int, payload *domain.RentalPayload) (*domain.Rental, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Rental validation failed", map[string]interface{}{
			"error":     err.Error(),
			"rental_id": id,
		})
		return nil, err
	}

	rental, err := s.rentalRepo.Read(ctx, id)
	if err != nil {
		s.logger.Warn("Rental not found for update", map[string]interface{}{
			"error":     err.Error(),
			"rental_id": id,
		})
		return nil, err
	}

	if err := s.checkReferences(ctx, payload); err != nil {
		s.logger.Warn("Rental references are invalid", map[string]interface{}{
			"error":     err.Error(),
			"rental_id": id,
			"bike_id":   payload.BikeID,
			"renter_id": payload.RenterID,
		})
		return nil, err
	}

	payload.Apply(rental)

	updated, err := s.rentalRepo.Update(ctx, rental)
	if err != nil {
		s.logger.Error("Failed to update rental", map[string]interface{}{
			"error":     err.Error(),
			"rental_id": id,
		})
		return nil, err
	}

	s.logger.Info("Rental updated successfully", map[string]interface{}{
		"rental_id": id,
	})

	return updated, nil
}

func (s *RentalService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.rentalRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete rental", map[string]interface{}{
			"error":     err.Error(),
			"rental_id": id,
		})
		return false, err
	}
	if deleted {
		s.logger.Info("Rental deleted successfully", map[string]interface{}{
			"rental_id": id,
		})
	}
	return deleted, nil
}

func (s *RentalService) query(ctx context.Context, keep func(*domain.Rental) bool) ([]*domain.Rental, error) {
	rentals, err := s.rentalRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get rentals", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}
	return filter(rentals, keep), nil
}

func (s *RentalService) GetRentalsByBike(ctx context.Context, bikeID int) ([]*domain.Rental, error) {
	return s.query(ctx, func(r *domain.Rental) bool { return r.BikeID == bikeID })
}

func (s *RentalService) GetRentalsByRenter(ctx context.Context, renterID int) ([]*domain.Rental, error) {
	return s.query(ctx, func(r *domain.Rental) bool { return r.RenterID == renterID })
}

func (s *RentalService) GetActiveRentals(ctx context.Context, now time.Time) ([]*domain.Rental, error) {
	return s.query(ctx, func(r *domain.Rental) bool { return r.IsActive(now) })
}

// GetRentalsByPeriod returns rentals starting within [from, to].
func (s *RentalService) GetRentalsByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Rental, error) {
	if to.Before(from) {
		return nil, domain.ErrInvalidArgument
	}
	return s.query(ctx, func(r *domain.Rental) bool {
		return !r.StartTime.Before(from) && !r.StartTime.After(to)
	})
}
