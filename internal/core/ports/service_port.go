package ports

import (
	"context"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

// CrudService is the common contract of every entity service.
// T is the stored entity, P its create/update payload.
type CrudService[T, P any] interface {
	Create(ctx context.Context, payload *P) (*T, error)
	Get(ctx context.Context, id int) (*T, error)
	GetAll(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, id int, payload *P) (*T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type BikeModelService interface {
	CrudService[domain.BikeModel, domain.BikeModelPayload]
	GetBikes(ctx context.Context, modelID int) ([]*domain.Bike, error)
	GetModelsByType(ctx context.Context, code int) ([]*domain.BikeModel, error)
	GetModelsByYear(ctx context.Context, year *int) ([]*domain.BikeModel, error)
}

type BikeService interface {
	CrudService[domain.Bike, domain.BikePayload]
	GetBikesByModel(ctx context.Context, modelID int) ([]*domain.Bike, error)
}

type RenterService interface {
	CrudService[domain.Renter, domain.RenterPayload]
	GetRentals(ctx context.Context, renterID int) ([]*domain.Rental, error)
	CountRentals(ctx context.Context, renterID int) (int, error)
}

type RentalService interface {
	CrudService[domain.Rental, domain.RentalPayload]
	GetRentalsByBike(ctx context.Context, bikeID int) ([]*domain.Rental, error)
	GetRentalsByRenter(ctx context.Context, renterID int) ([]*domain.Rental, error)
	GetActiveRentals(ctx context.Context, now time.Time) ([]*domain.Rental, error)
	GetRentalsByPeriod(ctx context.Context, from, to time.Time) ([]*domain.Rental, error)
}

type AnalyticsService interface {
	AllSportBikes(ctx context.Context) ([]*domain.Bike, error)
	TopFiveModelsByRevenue(ctx context.Context) ([]domain.ModelRevenue, error)
	TopFiveModelsByDuration(ctx context.Context) ([]domain.ModelDuration, error)
	MinMaxAvgDuration(ctx context.Context) (domain.DurationStats, error)
	TotalRentalTimeByType(ctx context.Context, code int) (int, error)
	TopClientsByRentalCount(ctx context.Context) ([]domain.ClientRentalCount, error)
}

type GeneratorService interface {
	Generate(ctx context.Context, batchSize, payloadLimit int, wait time.Duration) ([]domain.RentalPayload, error)
}
