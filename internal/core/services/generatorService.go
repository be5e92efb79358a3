package services

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
	"golang.org/x/time/rate"
)

type GeneratorOptions struct {
	MaxBikeID   int
	MaxRenterID int
	// Seed fixes the random sequence; zero picks a time based seed.
	Seed uint64
}

// GeneratorService builds synthetic rental batches and hands them to the broker.
type GeneratorService struct {
	producer ports.RentalProducer
	logger   ports.LoggerPort
	metrics  ports.MetricsPort
	opts     GeneratorOptions
	now      func() time.Time

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewGeneratorService(
	producer ports.RentalProducer,
	logger ports.LoggerPort,
	metrics ports.MetricsPort,
	opts GeneratorOptions,
) *GeneratorService {
	if opts.MaxBikeID <= 0 {
		opts.MaxBikeID = 10
	}
	if opts.MaxRenterID <= 0 {
		opts.MaxRenterID = 20
	}
	seed := opts.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &GeneratorService{
		producer: producer,
		logger:   logger,
		metrics:  metrics,
		opts:     opts,
		now:      time.Now,
		rnd:      rand.New(rand.NewPCG(seed, seed>>1|1)),
	}
}

// between returns a uniform int in [lo, hi].
func (s *GeneratorService) between(lo, hi int) int {
	return lo + s.rnd.IntN(hi-lo+1)
}

// GenerateBatch returns count rentals starting within the next three days.
func (s *GeneratorService) GenerateBatch(count int) []domain.RentalPayload {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	batch := make([]domain.RentalPayload, 0, count)
	for i := 0; i < count; i++ {
		batch = append(batch, domain.RentalPayload{
			StartTime:     now.Add(time.Duration(s.between(1, 72)) * time.Hour),
			DurationHours: s.between(1, 24),
			BikeID:        s.between(1, s.opts.MaxBikeID),
			RenterID:      s.between(1, s.opts.MaxRenterID),
		})
	}
	return batch
}

// Generate publishes batches of batchSize until at least payloadLimit rentals
// were sent, pausing wait between batches.
func (s *GeneratorService) Generate(ctx context.Context, batchSize, payloadLimit int, wait time.Duration) ([]domain.RentalPayload, error) {
	if batchSize <= 0 || payloadLimit <= 0 || wait < 0 {
		return nil, fmt.Errorf("%w: batch size and payload limit must be positive", domain.ErrInvalidArgument)
	}

	s.logger.Info("Generating rentals", map[string]interface{}{
		"payload_limit": payloadLimit,
		"batch_size":    batchSize,
		"wait":          wait.String(),
	})

	limit := rate.Inf
	if wait > 0 {
		limit = rate.Every(wait)
	}
	limiter := rate.NewLimiter(limit, 1)

	generated := make([]domain.RentalPayload, 0, payloadLimit)
	for sent := 0; sent < payloadLimit; sent += batchSize {
		if err := limiter.Wait(ctx); err != nil {
			return generated, err
		}

		batch := s.GenerateBatch(batchSize)
		if err := s.producer.Publish(ctx, batch); err != nil {
			s.logger.Error("Failed to publish rental batch", map[string]interface{}{
				"error":      err.Error(),
				"batch_size": len(batch),
			})
			return generated, fmt.Errorf("publish batch: %w", err)
		}
		if s.metrics != nil {
			s.metrics.RecordGenerated(len(batch))
		}

		s.logger.Info("Rental batch sent", map[string]interface{}{
			"batch_size": len(batch),
		})
		generated = append(generated, batch...)
	}

	return generated, nil
}
