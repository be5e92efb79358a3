package kafka

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type MessageReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// ReaderFactory opens a fresh group reader. A new reader resumes from the
// last committed offset, which is how a failed batch gets redelivered.
type ReaderFactory func() MessageReader

type ReaderConfig struct {
	Brokers []string
	Topic   string
	GroupID string
}

func NewReaderFactory(cfg ReaderConfig) ReaderFactory {
	return func() MessageReader {
		return kafka.NewReader(kafka.ReaderConfig{
			Brokers:  cfg.Brokers,
			Topic:    cfg.Topic,
			GroupID:  cfg.GroupID,
			MinBytes: 1,
			MaxBytes: 10e6,
			MaxWait:  time.Second,
		})
	}
}

type RentalCreator interface {
	Create(ctx context.Context, payload *domain.RentalPayload) (*domain.Rental, error)
}

type BatchRecorder interface {
	RecordBatch(outcome string, items int)
}

type ConsumerConfig struct {
	// MaxDeliveries bounds how often one batch is retried before it is dropped.
	MaxDeliveries int
	RetryBackoff  time.Duration
}

type deliveryKey struct {
	partition int
	offset    int64
}

// RentalConsumer creates rentals from broker batches. A batch is committed
// only after every item was created.
type RentalConsumer struct {
	newReader ReaderFactory
	rentals   RentalCreator
	logger    ports.LoggerPort
	metrics   BatchRecorder
	cfg       ConsumerConfig
	attempts  map[deliveryKey]int
}

func NewRentalConsumer(
	newReader ReaderFactory,
	rentals RentalCreator,
	logger ports.LoggerPort,
	metrics BatchRecorder,
	cfg ConsumerConfig,
) *RentalConsumer {
	if cfg.MaxDeliveries <= 0 {
		cfg.MaxDeliveries = 5
	}
	return &RentalConsumer{
		newReader: newReader,
		rentals:   rentals,
		logger:    logger,
		metrics:   metrics,
		cfg:       cfg,
		attempts:  make(map[deliveryKey]int),
	}
}

// Run consumes until ctx is cancelled. A batch already being processed is
// finished before Run returns.
func (c *RentalConsumer) Run(ctx context.Context) error {
	reader := c.newReader()
	defer func() {
		if err := reader.Close(); err != nil {
			c.logger.Warn("Failed to close kafka reader", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	c.logger.Info("Rental consumer started", nil)

	for {
		if ctx.Err() != nil {
			c.logger.Info("Rental consumer stopped", nil)
			return nil
		}

		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				c.logger.Info("Rental consumer stopped", nil)
				return nil
			}
			c.logger.Error("Failed to fetch message", map[string]interface{}{
				"error": err.Error(),
			})
			c.sleep(ctx)
			continue
		}

		if redeliver := c.handle(ctx, reader, msg); redeliver {
			if err := reader.Close(); err != nil {
				c.logger.Warn("Failed to close kafka reader", map[string]interface{}{
					"error": err.Error(),
				})
			}
			c.sleep(ctx)
			reader = c.newReader()
		}
	}
}

// handle reports whether the reader must be reopened to get msg again.
func (c *RentalConsumer) handle(ctx context.Context, reader MessageReader, msg kafka.Message) bool {
	work := context.WithoutCancel(ctx)
	fields := map[string]interface{}{
		"partition": msg.Partition,
		"offset":    msg.Offset,
	}

	batch, err := DecodeBatch(msg.Value)
	if err != nil {
		fields["error"] = err.Error()
		c.logger.Error("Skipping undecodable rental batch", fields)
		c.record(ports.OutcomeSkipped, 0)
		c.commit(work, reader, msg)
		return false
	}

	key := deliveryKey{partition: msg.Partition, offset: msg.Offset}
	c.attempts[key]++
	attempt := c.attempts[key]
	fields["attempt"] = attempt
	fields["count"] = len(batch)

	if err := c.process(work, batch); err != nil {
		fields["error"] = err.Error()
		if attempt >= c.cfg.MaxDeliveries {
			c.logger.Error("Dropping rental batch after repeated failures", fields)
			c.record(ports.OutcomeDropped, len(batch))
			delete(c.attempts, key)
			c.commit(work, reader, msg)
			return false
		}
		c.logger.Warn("Rental batch failed, awaiting redelivery", fields)
		c.record(ports.OutcomeFailed, len(batch))
		return true
	}

	delete(c.attempts, key)
	c.commit(work, reader, msg)
	c.record(ports.OutcomeProcessed, len(batch))
	c.logger.Info("Rental batch processed", fields)
	return false
}

func (c *RentalConsumer) process(ctx context.Context, batch []domain.RentalPayload) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while processing batch: %v", r)
		}
	}()

	for i := range batch {
		if _, err := c.rentals.Create(ctx, &batch[i]); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func (c *RentalConsumer) commit(ctx context.Context, reader MessageReader, msg kafka.Message) {
	if err := reader.CommitMessages(ctx, msg); err != nil {
		c.logger.Error("Failed to commit message", map[string]interface{}{
			"error":     err.Error(),
			"partition": msg.Partition,
			"offset":    msg.Offset,
		})
	}
}

func (c *RentalConsumer) record(outcome string, items int) {
	if c.metrics != nil {
		c.metrics.RecordBatch(outcome, items)
	}
}

func (c *RentalConsumer) sleep(ctx context.Context) {
	if c.cfg.RetryBackoff <= 0 {
		return
	}
	t := time.NewTimer(c.cfg.RetryBackoff)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}
