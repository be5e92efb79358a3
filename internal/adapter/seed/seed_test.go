package seed

import (
	"context"
	"testing"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/memory"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryRepositories() Repositories {
	return Repositories{
		Models:  memory.NewBikeModelRepository(),
		Bikes:   memory.NewBikeRepository(),
		Renters: memory.NewRenterRepository(),
		Rentals: memory.NewRentalRepository(),
	}
}

func TestNew_Shape(t *testing.T) {
	d := New()

	assert.Len(t, d.Models, 10)
	assert.Len(t, d.Bikes, 10)
	assert.Len(t, d.Renters, 10)
	assert.Len(t, d.Rentals, 20)
	assert.Equal(t, domain.Sport, d.Models[8].BikeType)
	assert.Equal(t, "18.5", d.Models[8].PricePerHour.String())
	assert.Equal(t, "SPT0052025", d.Bikes[4].SerialNumber)
}

func TestLoad_OnlyIntoEmptyStore(t *testing.T) {
	ctx := context.Background()
	repos := memoryRepositories()

	loaded, err := Load(ctx, repos)
	require.NoError(t, err)
	assert.True(t, loaded)

	rentals, err := repos.Rentals.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rentals, 20)
	assert.Equal(t, 20, rentals[19].ID)

	loaded, err = Load(ctx, repos)
	require.NoError(t, err)
	assert.False(t, loaded)

	rentals, err = repos.Rentals.ReadAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rentals, 20)
}
