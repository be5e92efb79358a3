package kafka

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestRentalProducer_Publish(t *testing.T) {
	writer := &recordingWriter{}
	producer := NewRentalProducer(writer, "rentals", logger.NewNopLogger())

	batch := []domain.RentalPayload{
		{StartTime: time.Now().UTC(), DurationHours: 2, BikeID: 3, RenterID: 4},
		{StartTime: time.Now().UTC(), DurationHours: 5, BikeID: 1, RenterID: 9},
	}
	require.NoError(t, producer.Publish(context.Background(), batch))

	require.Len(t, writer.messages, 1)
	assert.NotEmpty(t, writer.messages[0].Key)

	decoded, err := DecodeBatch(writer.messages[0].Value)
	require.NoError(t, err)
	assert.Len(t, decoded, 2)
	assert.Equal(t, 9, decoded[1].RenterID)

	require.NoError(t, producer.Close())
	assert.True(t, writer.closed)
}

func TestRentalProducer_PublishError(t *testing.T) {
	writer := &recordingWriter{err: errors.New("broker down")}
	producer := NewRentalProducer(writer, "rentals", logger.NewNopLogger())

	err := producer.Publish(context.Background(), []domain.RentalPayload{{DurationHours: 1, BikeID: 1, RenterID: 1}})
	assert.ErrorContains(t, err, "broker down")
}
