package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/adapter/logger"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoRentals = `[
	{"startTime":"2024-01-10T09:00:00Z","durationHours":3,"bikeId":1,"renterId":1},
	{"startTime":"2024-01-12T14:30:00.1234567Z","durationHours":2,"bikeId":2,"renterId":2}
]`

func runConsumer(t *testing.T, c *RentalConsumer) (cancel func()) {
	t.Helper()
	ctx, stop := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx) }()

	return func() {
		stop()
		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("consumer did not stop")
		}
	}
}

func TestRentalConsumer_CommitsProcessedBatch(t *testing.T) {
	broker := newFakeBroker([]byte(twoRentals))
	rentals := &fakeRentals{}
	metrics := &fakeMetrics{}
	consumer := NewRentalConsumer(broker.factory(), rentals, logger.NewNopLogger(), metrics, ConsumerConfig{MaxDeliveries: 3})

	stop := runConsumer(t, consumer)
	assert.Eventually(t, func() bool { return broker.committedOffset() == 1 }, time.Second, 5*time.Millisecond)
	stop()

	assert.Equal(t, 2, rentals.createdCount())
	assert.Equal(t, []string{ports.OutcomeProcessed}, metrics.snapshot())
	assert.Equal(t, 3, rentals.created[0].DurationHours)
	assert.Equal(t, time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC), rentals.created[0].StartTime)
}

func TestRentalConsumer_RedeliversFailedBatch(t *testing.T) {
	broker := newFakeBroker([]byte(twoRentals))
	// Second item fails once: the first delivery creates one rental, the
	// redelivery creates both again.
	rentals := &fakeRentals{}
	first := true
	consumer := NewRentalConsumer(broker.factory(), &flakyOnce{inner: rentals, failAt: 2, armed: &first},
		logger.NewNopLogger(), nil, ConsumerConfig{MaxDeliveries: 3})

	stop := runConsumer(t, consumer)
	assert.Eventually(t, func() bool { return broker.committedOffset() == 1 }, time.Second, 5*time.Millisecond)
	stop()

	assert.Equal(t, 3, rentals.createdCount(), "redelivery duplicates the items created before the failure")
	assert.Equal(t, 2, broker.openedReaders())
}

func TestRentalConsumer_DropsAfterMaxDeliveries(t *testing.T) {
	broker := newFakeBroker([]byte(twoRentals), []byte(`[{"startTime":"2024-02-01T12:00:00Z","durationHours":2,"bikeId":4,"renterId":4}]`))
	rentals := &fakeRentals{failures: 3}
	metrics := &fakeMetrics{}
	consumer := NewRentalConsumer(broker.factory(), rentals, logger.NewNopLogger(), metrics, ConsumerConfig{MaxDeliveries: 3})

	stop := runConsumer(t, consumer)
	assert.Eventually(t, func() bool { return broker.committedOffset() == 2 }, time.Second, 5*time.Millisecond)
	stop()

	assert.Equal(t, []string{ports.OutcomeFailed, ports.OutcomeFailed, ports.OutcomeDropped, ports.OutcomeProcessed}, metrics.snapshot())
	assert.Equal(t, 1, rentals.createdCount())
}

func TestRentalConsumer_SkipsUndecodableMessage(t *testing.T) {
	broker := newFakeBroker([]byte(`{not json`), []byte(`null`), []byte(twoRentals))
	rentals := &fakeRentals{}
	metrics := &fakeMetrics{}
	consumer := NewRentalConsumer(broker.factory(), rentals, logger.NewNopLogger(), metrics, ConsumerConfig{})

	stop := runConsumer(t, consumer)
	assert.Eventually(t, func() bool { return broker.committedOffset() == 3 }, time.Second, 5*time.Millisecond)
	stop()

	assert.Equal(t, []string{ports.OutcomeSkipped, ports.OutcomeSkipped, ports.OutcomeProcessed}, metrics.snapshot())
	assert.Equal(t, 2, rentals.createdCount())
	assert.Equal(t, 1, broker.openedReaders())
}

func TestRentalConsumer_RecoversFromPanic(t *testing.T) {
	broker := newFakeBroker([]byte(twoRentals))
	rentals := &fakeRentals{panicOn: 1}
	metrics := &fakeMetrics{}
	consumer := NewRentalConsumer(broker.factory(), rentals, logger.NewNopLogger(), metrics, ConsumerConfig{MaxDeliveries: 2})

	stop := runConsumer(t, consumer)
	assert.Eventually(t, func() bool { return broker.committedOffset() == 1 }, time.Second, 5*time.Millisecond)
	stop()

	assert.Equal(t, []string{ports.OutcomeFailed, ports.OutcomeProcessed}, metrics.snapshot())
	assert.Equal(t, 2, rentals.createdCount())
}

func TestRentalConsumer_StopsOnCancel(t *testing.T) {
	broker := newFakeBroker()
	consumer := NewRentalConsumer(broker.factory(), &fakeRentals{}, logger.NewNopLogger(), nil, ConsumerConfig{})

	stop := runConsumer(t, consumer)
	stop()

	assert.Equal(t, int64(0), broker.committedOffset())
}
