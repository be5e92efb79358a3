package services

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type BikeModelService struct {
	modelRepo ports.BikeModelRepository
	bikeRepo  ports.BikeRepository
	logger    ports.LoggerPort
	validate  *validator.Validate
	cache     entityCache[domain.BikeModel]
}

func NewBikeModelService(
	modelRepo ports.BikeModelRepository,
	bikeRepo ports.BikeRepository,
	logger ports.LoggerPort,
	validate *validator.Validate,
	cache ports.CachePort,
) *BikeModelService {
	return &BikeModelService{
		modelRepo: modelRepo,
		bikeRepo:  bikeRepo,
		logger:    logger,
		validate:  validate,
		cache:     newEntityCache[domain.BikeModel](cache, logger, "bike_model"),
	}
}

func (s *BikeModelService) Create(ctx context.Context, payload *domain.BikeModelPayload) (*domain.BikeModel, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Bike model validation failed", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	model := &domain.BikeModel{}
	payload.Apply(model)

	createdModel, err := s.modelRepo.Create(ctx, model)
	if err != nil {
		s.logger.Error("Failed to create bike model", map[string]interface{}{
			"error":     err.Error(),
			"bike_type": model.BikeType.String(),
		})
		return nil, err
	}

	s.logger.Info("Bike model created successfully", map[string]interface{}{
		"model_id":  createdModel.ID,
		"bike_type": createdModel.BikeType.String(),
	})

	return createdModel, nil
}

func (s *BikeModelService) Get(ctx context.Context, id int) (*domain.BikeModel, error) {
	if cached, ok := s.cache.get(ctx, id); ok {
		return cached, nil
	}

	model, err := s.modelRepo.Read(ctx, id)
	if err != nil {
		logLookupFailure(s.logger, "Failed to get bike model", err, map[string]interface{}{
			"model_id": id,
		})
		return nil, err
	}

	s.cache.put(ctx, id, model)
	return model, nil
}

func (s *BikeModelService) GetAll(ctx context.Context) ([]*domain.BikeModel, error) {
	models, err := s.modelRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get bike models", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	s.logger.Info("Retrieved bike models", map[string]interface{}{
		"models_count": len(models),
	})

	return models, nil
}

func (s *BikeModelService) Update(ctx context.Context, id int, payload *domain.BikeModelPayload) (*domain.BikeModel, error) {
	if err := validatePayload(s.validate, payload); err != nil {
		s.logger.Error("Bike model validation failed", map[string]interface{}{
			"error":    err.Error(),
			"model_id": id,
		})
		return nil, err
	}

	model, err := s.modelRepo.Read(ctx, id)
	if err != nil {
		s.logger.Warn("Bike model not found for update", map[string]interface{}{
			"error":    err.Error(),
			"model_id": id,
		})
		return nil, err
	}

	payload.Apply(model)

	updatedModel, err := s.modelRepo.Update(ctx, model)
	if err != nil {
		s.logger.Error("Failed to update bike model", map[string]interface{}{
			"error":    err.Error(),
			"model_id": id,
		})
		return nil, err
	}

	s.cache.invalidate(ctx, id)

	s.logger.Info("Bike model updated successfully", map[string]interface{}{
		"model_id": id,
	})

	return updatedModel, nil
}

func (s *BikeModelService) Delete(ctx context.Context, id int) (bool, error) {
	deleted, err := s.modelRepo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("Failed to delete bike model", map[string]interface{}{
			"error":    err.Error(),
			"model_id": id,
		})
		return false, err
	}
	if !deleted {
		return false, nil
	}

	s.cache.invalidate(ctx, id)

	s.logger.Info("Bike model deleted successfully", map[string]interface{}{
		"model_id": id,
	})

	return true, nil
}

// GetBikes lists every bike built on the given model.
func (s *BikeModelService) GetBikes(ctx context.Context, modelID int) ([]*domain.Bike, error) {
	bikes, err := s.bikeRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get bikes for model", map[string]interface{}{
			"error":    err.Error(),
			"model_id": modelID,
		})
		return nil, err
	}

	filtered := filter(bikes, func(b *domain.Bike) bool { return b.ModelID == modelID })

	s.logger.Info("Retrieved bikes for model", map[string]interface{}{
		"model_id":    modelID,
		"bikes_count": len(filtered),
	})

	return filtered, nil
}

func (s *BikeModelService) GetModelsByType(ctx context.Context, code int) ([]*domain.BikeModel, error) {
	bikeType, err := domain.ParseBikeType(code)
	if err != nil {
		return nil, err
	}

	models, err := s.modelRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get bike models", map[string]interface{}{
			"error":     err.Error(),
			"bike_type": bikeType.String(),
		})
		return nil, err
	}

	return filter(models, func(m *domain.BikeModel) bool { return m.BikeType == bikeType }), nil
}

// GetModelsByYear filters on model year; a nil year selects models without one.
func (s *BikeModelService) GetModelsByYear(ctx context.Context, year *int) ([]*domain.BikeModel, error) {
	models, err := s.modelRepo.ReadAll(ctx)
	if err != nil {
		s.logger.Error("Failed to get bike models", map[string]interface{}{
			"error": err.Error(),
		})
		return nil, err
	}

	return filter(models, func(m *domain.BikeModel) bool {
		if year == nil || m.ModelYear == nil {
			return year == nil && m.ModelYear == nil
		}
		return *m.ModelYear == *year
	}), nil
}
