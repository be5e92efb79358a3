package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_AssignsIDs(t *testing.T) {
	ctx := context.Background()
	repo := NewBikeRepository()

	first, err := repo.Create(ctx, &domain.Bike{SerialNumber: "A"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	explicit, err := repo.Create(ctx, &domain.Bike{ID: 10, SerialNumber: "B"})
	require.NoError(t, err)
	assert.Equal(t, 10, explicit.ID)

	next, err := repo.Create(ctx, &domain.Bike{SerialNumber: "C"})
	require.NoError(t, err)
	assert.Equal(t, 11, next.ID)
}

func TestRepository_StoresCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewRenterRepository()

	input := &domain.Renter{LastName: "Ivanov"}
	created, err := repo.Create(ctx, input)
	require.NoError(t, err)

	input.LastName = "changed"
	created.LastName = "changed too"

	stored, err := repo.Read(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ivanov", stored.LastName)
	assert.Equal(t, 0, input.ID)
}

func TestRepository_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := NewRentalRepository()

	_, err := repo.Read(ctx, 5)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.Update(ctx, &domain.Rental{ID: 5})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	deleted, err := repo.Delete(ctx, 5)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestRepository_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := NewBikeModelRepository()

	created, err := repo.Create(ctx, &domain.BikeModel{BikeType: domain.Road})
	require.NoError(t, err)

	created.BikeType = domain.Sport
	_, err = repo.Update(ctx, created)
	require.NoError(t, err)

	stored, err := repo.Read(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.Sport, stored.BikeType)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestRepository_ReadAllOrdered(t *testing.T) {
	ctx := context.Background()
	repo := NewBikeRepository()

	for _, id := range []int{5, 2, 9, 1} {
		_, err := repo.Create(ctx, &domain.Bike{ID: id})
		require.NoError(t, err)
	}

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(all))
	for _, b := range all {
		ids = append(ids, b.ID)
	}
	assert.Equal(t, []int{1, 2, 5, 9}, ids)
}

func TestRepository_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewBikeRepository().ReadAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRepository_ConcurrentCreate(t *testing.T) {
	ctx := context.Background()
	repo := NewRentalRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Create(ctx, &domain.Rental{DurationHours: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
	assert.Equal(t, 50, all[49].ID)
}
