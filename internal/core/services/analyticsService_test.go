package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAnalyticsService(s stores) *AnalyticsService {
	return NewAnalyticsService(s.models, s.bikes, s.renters, s.rentals, nopLogger)
}

func TestAnalytics_AllSportBikes(t *testing.T) {
	svc := newAnalyticsService(seededStores(t))

	bikes, err := svc.AllSportBikes(context.Background())
	require.NoError(t, err)

	serials := make([]string, 0, len(bikes))
	for _, b := range bikes {
		serials = append(serials, b.SerialNumber)
	}
	assert.Equal(t, []string{"RD0022024", "SPT0052025", "HYB0092025"}, serials)
}

func TestAnalytics_TopFiveModelsByRevenue(t *testing.T) {
	svc := newAnalyticsService(seededStores(t))

	rows, err := svc.TopFiveModelsByRevenue(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 5)

	want := []struct {
		id      int
		revenue string
	}{{9, "111"}, {5, "75"}, {6, "64.4"}, {3, "60.5"}, {2, "60"}}
	for i, w := range want {
		assert.Equal(t, w.id, rows[i].ModelID, "row %d", i)
		assert.True(t, decimal.RequireFromString(w.revenue).Equal(rows[i].Revenue), "row %d revenue %s", i, rows[i].Revenue)
	}
}

func TestAnalytics_RevenueTieFavorsLowerModelID(t *testing.T) {
	ctx := context.Background()
	s := newStores()
	price := decimal.NewFromInt(10)
	for _, id := range []int{7, 3} {
		_, err := s.models.Create(ctx, &domain.BikeModel{ID: id, BikeType: domain.Road, PricePerHour: price})
		require.NoError(t, err)
		_, err = s.bikes.Create(ctx, &domain.Bike{ID: id, SerialNumber: "TIE", ModelID: id})
		require.NoError(t, err)
	}
	_, err := s.renters.Create(ctx, &domain.Renter{ID: 1, LastName: "Tie", FirstName: "T", PhoneNumber: "1"})
	require.NoError(t, err)
	for _, bikeID := range []int{7, 3} {
		_, err := s.rentals.Create(ctx, &domain.Rental{StartTime: time.Now(), DurationHours: 2, BikeID: bikeID, RenterID: 1})
		require.NoError(t, err)
	}

	rows, err := newAnalyticsService(s).TopFiveModelsByRevenue(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, 3, rows[0].ModelID)
	assert.Equal(t, 7, rows[1].ModelID)
	for _, row := range rows {
		assert.True(t, decimal.NewFromInt(20).Equal(row.Revenue), "model %d revenue %s", row.ModelID, row.Revenue)
	}
}

func TestAnalytics_RepeatedCallsAgree(t *testing.T) {
	ctx := context.Background()
	svc := newAnalyticsService(seededStores(t))

	first, err := svc.TopFiveModelsByRevenue(ctx)
	require.NoError(t, err)
	second, err := svc.TopFiveModelsByRevenue(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	clients, err := svc.TopClientsByRentalCount(ctx)
	require.NoError(t, err)
	again, err := svc.TopClientsByRentalCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, clients, again)
}

func TestAnalytics_TopFiveModelsByDuration(t *testing.T) {
	svc := newAnalyticsService(seededStores(t))

	rows, err := svc.TopFiveModelsByDuration(context.Background())
	require.NoError(t, err)

	// Ties at 7 and 6 hours are broken by the lower model id.
	assert.Equal(t, []domain.ModelDuration{
		{ModelID: 3, TotalHours: 11},
		{ModelID: 6, TotalHours: 7},
		{ModelID: 10, TotalHours: 7},
		{ModelID: 8, TotalHours: 6},
		{ModelID: 9, TotalHours: 6},
	}, rows)
}

func TestAnalytics_MinMaxAvgDuration(t *testing.T) {
	svc := newAnalyticsService(seededStores(t))

	stats, err := svc.MinMaxAvgDuration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DurationStats{Min: 1, Max: 6, Avg: 3.0}, stats)

	empty, err := newAnalyticsService(newStores()).MinMaxAvgDuration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DurationStats{}, empty)
}

func TestAnalytics_AvgIsRounded(t *testing.T) {
	ctx := context.Background()
	s := newStores()
	for _, hours := range []int{1, 1, 2} {
		_, err := s.rentals.Create(ctx, &domain.Rental{DurationHours: hours})
		require.NoError(t, err)
	}

	stats, err := newAnalyticsService(s).MinMaxAvgDuration(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1.33, stats.Avg)
}

func TestAnalytics_TotalRentalTimeByType(t *testing.T) {
	svc := newAnalyticsService(seededStores(t))

	for bikeType, want := range map[domain.BikeType]int{
		domain.Road:     23,
		domain.Mountain: 12,
		domain.Hybrid:   9,
		domain.Sport:    16,
	} {
		got, err := svc.TotalRentalTimeByType(context.Background(), int(bikeType))
		require.NoError(t, err)
		assert.Equal(t, want, got, bikeType.String())
	}

	_, err := svc.TotalRentalTimeByType(context.Background(), 4)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	_, err = svc.TotalRentalTimeByType(context.Background(), -1)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)
}

func TestAnalytics_TopClientsByRentalCount(t *testing.T) {
	svc := newAnalyticsService(seededStores(t))

	rows, err := svc.TopClientsByRentalCount(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Renter.ID)
		assert.Equal(t, 3, row.RentalCount)
	}
	assert.Equal(t, "Ivanov", rows[0].Renter.LastName)
}

func TestAnalytics_TopClientsSingleLeader(t *testing.T) {
	ctx := context.Background()
	s := seededStores(t)
	_, err := s.rentals.Create(ctx, &domain.Rental{StartTime: time.Now(), DurationHours: 1, BikeID: 1, RenterID: 4})
	require.NoError(t, err)

	rows, err := newAnalyticsService(s).TopClientsByRentalCount(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, 4, rows[0].Renter.ID)
	assert.Equal(t, 4, rows[0].RentalCount)
}

func TestAnalytics_EmptyStore(t *testing.T) {
	ctx := context.Background()
	svc := newAnalyticsService(newStores())

	bikes, err := svc.AllSportBikes(ctx)
	require.NoError(t, err)
	assert.Empty(t, bikes)

	revenue, err := svc.TopFiveModelsByRevenue(ctx)
	require.NoError(t, err)
	assert.Empty(t, revenue)

	duration, err := svc.TopFiveModelsByDuration(ctx)
	require.NoError(t, err)
	assert.Empty(t, duration)

	total, err := svc.TotalRentalTimeByType(ctx, int(domain.Sport))
	require.NoError(t, err)
	assert.Zero(t, total)

	clients, err := svc.TopClientsByRentalCount(ctx)
	require.NoError(t, err)
	assert.NotNil(t, clients)
	assert.Empty(t, clients)
}

func TestAnalytics_DanglingReferences(t *testing.T) {
	ctx := context.Background()
	s := seededStores(t)

	// Model 9 vanishes: its bike still counts by model id for duration, not for revenue.
	_, err := s.models.Delete(ctx, 9)
	require.NoError(t, err)
	// Bike 5 vanishes: its rentals drop out of both rankings.
	_, err = s.bikes.Delete(ctx, 5)
	require.NoError(t, err)
	// Renter 1 vanishes: the tie at three rentals no longer lists them.
	_, err = s.renters.Delete(ctx, 1)
	require.NoError(t, err)

	svc := newAnalyticsService(s)

	revenue, err := svc.TopFiveModelsByRevenue(ctx)
	require.NoError(t, err)
	ids := make([]int, 0, len(revenue))
	for _, r := range revenue {
		ids = append(ids, r.ModelID)
	}
	assert.Equal(t, []int{6, 3, 2, 8, 1}, ids)

	duration, err := svc.TopFiveModelsByDuration(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, duration[4].ModelID)

	sport, err := svc.TotalRentalTimeByType(ctx, int(domain.Sport))
	require.NoError(t, err)
	assert.Equal(t, 5, sport)

	clients, err := svc.TopClientsByRentalCount(ctx)
	require.NoError(t, err)
	require.Len(t, clients, 4)
	assert.Equal(t, 2, clients[0].Renter.ID)
}

func TestAnalytics_StoreFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("timeout")
	s := seededStores(t)

	rentals := &mockRepository[domain.Rental]{}
	rentals.On("ReadAll", mock.Anything).Return(nil, boom)
	svc := NewAnalyticsService(s.models, s.bikes, s.renters, rentals, nopLogger)

	_, err := svc.TopFiveModelsByRevenue(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.MinMaxAvgDuration(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = svc.TopClientsByRentalCount(ctx)
	assert.ErrorIs(t, err, boom)
}
