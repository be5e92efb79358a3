package ports

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

type LoggerPort interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

type CachePort interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

// Outcomes of one consumed rental batch, used as the metrics label.
const (
	OutcomeProcessed = "processed"
	OutcomeFailed    = "failed"
	OutcomeDropped   = "dropped"
	OutcomeSkipped   = "skipped"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	RecordBatch(outcome string, items int)
	RecordGenerated(items int)
}

// RentalProducer publishes rental batches to the broker.
type RentalProducer interface {
	Publish(ctx context.Context, batch []domain.RentalPayload) error
	Close() error
}
