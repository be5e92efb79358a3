package ports

import (
	"context"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

// Repository stores one entity type keyed by an integer id.
// Read and Update return domain.ErrNotFound for unknown ids; Delete reports
// a missing id as false instead of an error.
type Repository[T any] interface {
	Create(ctx context.Context, entity *T) (*T, error)
	Read(ctx context.Context, id int) (*T, error)
	ReadAll(ctx context.Context) ([]*T, error)
	Update(ctx context.Context, entity *T) (*T, error)
	Delete(ctx context.Context, id int) (bool, error)
}

type (
	BikeModelRepository = Repository[domain.BikeModel]
	BikeRepository      = Repository[domain.Bike]
	RenterRepository    = Repository[domain.Renter]
	RentalRepository    = Repository[domain.Rental]
)
