package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type BikeService struct {
	bikeRepo  ports.BikeRepository
	modelRepo ports.BikeModelRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
	cache     entityCache[domain.Bike]
}

func NewBikeService(
	bikeRepo ports.BikeRepository,
	modelRepo ports.BikeModelRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeService {
	return &BikeService{
		bikeRepo:  bikeRepo,
		modelRepo: modelRepo,
		logger:    logger,
		validate:  validate,
		cache:     newEntityCache[domain.Bike](cache, logger, "bike"),
	}
}

func (s *BikeService) Create(ctx context.Context, payload *domain.BikePayload) (*domain.Bike, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	if _, err := resolveReference(ctx, s.modelRepo, "bike model", payload.ModelID); err != nil {
		s.logger.Warn("Bike references unknown model", map[string]interface{}{
			"error":    err.Error(),
			"model_id": payload.ModelID,
		})
		return nil, err
	}

	bike := &domain.Bike{}
	payload.Apply(bike)

	createdBike, err := s.bikeRepo.Create(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to create bike", map[string]interface{}{
			"error":    err.Error(),
			"model_id": payload.ModelID,
		})
		return nil, err
	}

	s.logger.Info("Bike created successfully", map[string]interface{}{
		"bike_id":  createdBike.ID,
		"model_id": createdBike.ModelID,
	})

	return createdBike, nil
}

func (s *BikeService) Get(ctx context.Context, id int) (*domain.Bike, error) {
	if cached, ok := s.cache.get(ctx, id); ok {
		s.logger.Debug("Bike found in cache", map[string]interface{}{
			"bike_id": id,
		})
		return cached, nil
	}

	bike, err := s.bikeRepo.Read(ctx, id)
	if err != nil {
		logLookupFailure(s.logger, "Failed to get bike", err, map[string]interface{}{
			"bike_id": id,
		})
		return nil, err
	}

	s.cache.put(ctx, id, bike)
	return bike, nil
}

func (s *BikeService) GetAll(ctx context.Context) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved bikes", map[string]interface{}{
		"bikes_count": len(bikes),
	})

	return bikes, nil
}

func (s *BikeService) Update(ctx context.Context, id int, payload *domain.BikePayload) (*domain.Bike, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Bike validation failed", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
		})
		return nil, err
	}

	bike, err := s.bikeRepo.Read(ctx, id)
	if err != nil {
		s.logger.Warn("Bike not found for update", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
		})
		return nil, err
	}

	if _, err := resolveReference(ctx, s.modelRepo, "bike model", payload.ModelID); err != nil {
		s.logger.Warn("Bike references unknown model", map[string]interface{}{
			"error":    err.Error(),
			"bike_id":  id,
			"model_id": payload.ModelID,
		})
		return nil, err
	}

	payload.Apply(bike)

	updatedBike, err := s.bikeRepo.Update(ctx, bike)
	if err != nil {
		s.logger.Error("Failed to update bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
		})
		return nil, err
	}

	s.cache.invalidate(ctx, id)

	s.logger.Info("Bike updated successfully", map[string]interface{}{
		"bike_id": id,
	})

	return updatedBike, nil
}

func (s *BikeService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.bikeRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete bike", map[string]interface{}{
			"error":   err.Error(),
			"bike_id": id,
		})
		return false, err
	}
	if !deleted {
		return false, nil
	}

	s.cache.invalidate(ctx, id)

	s.logger.Info("Bike deleted successfully", map[string]interface{}{
		"bike_id": id,
	})

	return true, nil
}

func (s *BikeService) GetBikesByModel(ctx context.Context, modelID int) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get bikes", map[string]interface{}{
			"error":    err.Error(),
			"model_id": modelID,
		})
		return nil, err
	}

	return filter(bikes, func(b *domain.Bike) bool { return b.ModelID == modelID }), nil
}
