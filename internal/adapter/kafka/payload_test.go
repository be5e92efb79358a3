package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBatch(t *testing.T) {
	batch, err := DecodeBatch([]byte(twoRentals))
	require.NoError(t, err)
	require.Len(t, batch, 2)

	assert.Equal(t, domain.RentalPayload{
		StartTime:     time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC),
		DurationHours: 3,
		BikeID:        1,
		RenterID:      1,
	}, batch[0])
	assert.Equal(t, 2, batch[1].BikeID)
	assert.Equal(t, 14, batch[1].StartTime.Hour())
}

func TestDecodeBatch_Invalid(t *testing.T) {
	_, err := DecodeBatch([]byte(`null`))
	assert.ErrorIs(t, err, ErrEmptyBatch)

	_, err = DecodeBatch([]byte(`{"startTime":"x"}`))
	assert.Error(t, err)

	batch, err := DecodeBatch([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, batch)
}

func TestEncodeBatch_UsesCamelCase(t *testing.T) {
	data, err := EncodeBatch([]domain.RentalPayload{{
		StartTime:     time.Date(2024, 3, 2, 12, 15, 0, 0, time.UTC),
		DurationHours: 6,
		BikeID:        10,
		RenterID:      5,
	}})
	require.NoError(t, err)

	var raw []map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))
	require.Len(t, raw, 1)
	assert.Equal(t, float64(6), raw[0]["durationHours"])
	assert.Equal(t, float64(10), raw[0]["bikeId"])
	assert.Equal(t, float64(5), raw[0]["renterId"])

	decoded, err := DecodeBatch(data)
	require.NoError(t, err)
	assert.True(t, decoded[0].StartTime.Equal(time.Date(2024, 3, 2, 12, 15, 0, 0, time.UTC)))
}
