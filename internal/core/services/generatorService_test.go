package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingProducer struct {
	mu      sync.Mutex
	batches [][]domain.RentalPayload
	failOn  int
}

func (p *recordingProducer) Publish(_ context.Context, batch []domain.RentalPayload) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.failOn > 0 && len(p.batches)+1 == p.failOn {
		return errors.New("broker unavailable")
	}
	p.batches = append(p.batches, batch)
	return nil
}

func (p *recordingProducer) Close() error { return nil }

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestGenerator(producer *recordingProducer, seed uint64) *GeneratorService {
	g := NewGeneratorService(producer, nopLogger, nil, GeneratorOptions{Seed: seed})
	g.now = func() time.Time { return fixedNow }
	return g
}

func TestGenerator_BatchBounds(t *testing.T) {
	g := newTestGenerator(&recordingProducer{}, 7)

	batch := g.GenerateBatch(500)
	require.Len(t, batch, 500)
	for _, r := range batch {
		assert.GreaterOrEqual(t, r.BikeID, 1)
		assert.LessOrEqual(t, r.BikeID, 10)
		assert.GreaterOrEqual(t, r.RenterID, 1)
		assert.LessOrEqual(t, r.RenterID, 20)
		assert.GreaterOrEqual(t, r.DurationHours, 1)
		assert.LessOrEqual(t, r.DurationHours, 24)
		assert.True(t, r.StartTime.After(fixedNow))
		assert.False(t, r.StartTime.After(fixedNow.Add(72*time.Hour)))
	}
}

func TestGenerator_SeedIsDeterministic(t *testing.T) {
	a := newTestGenerator(&recordingProducer{}, 42).GenerateBatch(20)
	b := newTestGenerator(&recordingProducer{}, 42).GenerateBatch(20)
	c := newTestGenerator(&recordingProducer{}, 43).GenerateBatch(20)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestGenerator_Generate(t *testing.T) {
	producer := &recordingProducer{}
	g := newTestGenerator(producer, 1)

	generated, err := g.Generate(context.Background(), 3, 10, 0)
	require.NoError(t, err)

	assert.Len(t, producer.batches, 4)
	assert.Len(t, generated, 12)
	for _, batch := range producer.batches {
		assert.Len(t, batch, 3)
	}
	assert.Equal(t, producer.batches[3], generated[9:])
}

func TestGenerator_InvalidArguments(t *testing.T) {
	producer := &recordingProducer{}
	g := newTestGenerator(producer, 1)

	for _, args := range [][2]int{{0, 10}, {5, 0}, {-1, 3}} {
		_, err := g.Generate(context.Background(), args[0], args[1], 0)
		assert.ErrorIs(t, err, domain.ErrInvalidArgument)
	}
	_, err := g.Generate(context.Background(), 1, 1, -time.Second)
	assert.ErrorIs(t, err, domain.ErrInvalidArgument)

	assert.Empty(t, producer.batches)
}

func TestGenerator_PublishFailureReturnsSent(t *testing.T) {
	producer := &recordingProducer{failOn: 2}
	g := newTestGenerator(producer, 1)

	generated, err := g.Generate(context.Background(), 2, 6, 0)
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrInvalidArgument)
	assert.Len(t, generated, 2)
}

func TestGenerator_WaitHonorsCancel(t *testing.T) {
	producer := &recordingProducer{}
	g := newTestGenerator(producer, 1)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	generated, err := g.Generate(ctx, 1, 5, time.Hour)
	require.Error(t, err)
	assert.Len(t, generated, 1)
	assert.Len(t, producer.batches, 1)
}
