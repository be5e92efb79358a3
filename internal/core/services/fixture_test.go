package services

import (
	"context"
	"testing"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/memory"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/seed"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type stores struct {
	models  *memory.Repository[domain.BikeModel]
	bikes   *memory.Repository[domain.Bike]
	renters *memory.Repository[domain.Renter]
	rentals *memory.Repository[domain.Rental]
}

func newStores() stores {
	return stores{
		models:  memory.NewBikeModelRepository(),
		bikes:   memory.NewBikeRepository(),
		renters: memory.NewRenterRepository(),
		rentals: memory.NewRentalRepository(),
	}
}

func seededStores(t *testing.T) stores {
	t.Helper()
	s := newStores()
	loaded, err := seed.Load(context.Background(), seed.Repositories{
		Models:  s.models,
		Bikes:   s.bikes,
		Renters: s.renters,
		Rentals: s.rentals,
	})
	require.NoError(t, err)
	require.True(t, loaded)
	return s
}

var nopLogger = logger.NewNopLogger()

func ptr[T any](v T) *T { return &v }

// mockRepository fails or answers on demand; only the methods a test sets up are callable.
type mockRepository[T any] struct {
	mock.Mock
}

var _ ports.Repository[domain.Bike] = (*mockRepository[domain.Bike])(nil)

func (m *mockRepository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	args := m.Called(ctx, entity)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *mockRepository[T]) Read(ctx context.Context, id int) (*T, error) {
	args := m.Called(ctx, id)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *mockRepository[T]) ReadAll(ctx context.Context) ([]*T, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]*T)
	return out, args.Error(1)
}

func (m *mockRepository[T]) Update(ctx context.Context, entity *T) (*T, error) {
	args := m.Called(ctx, entity)
	out, _ := args.Get(0).(*T)
	return out, args.Error(1)
}

func (m *mockRepository[T]) Delete(ctx context.Context, id int) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
