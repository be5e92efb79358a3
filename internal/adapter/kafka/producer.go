package kafka

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
	}
}

// RentalProducer publishes one message per batch.
type RentalProducer struct {
	writer MessageWriter
	topic  string
	logger ports.LoggerPort
}

func NewRentalProducer(writer MessageWriter, topic string, logger ports.LoggerPort) *RentalProducer {
	return &RentalProducer{writer: writer, topic: topic, logger: logger}
}

func (p *RentalProducer) Publish(ctx context.Context, batch []domain.RentalPayload) error {
	data, err := EncodeBatch(batch)
	if err != nil {
		return fmt.Errorf("encode rental batch: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(uuid.New().String()),
		Value: data,
		Headers: []kafka.Header{
			{Key: "content-type", Value: []byte("application/json")},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		p.logger.Error("Failed to send rental batch", map[string]interface{}{
			"error": err.Error(),
			"topic": p.topic,
			"count": len(batch),
		})
		return fmt.Errorf("write rental batch: %w", err)
	}

	p.logger.Info("Sent rental batch", map[string]interface{}{
		"topic": p.topic,
		"count": len(batch),
	})
	return nil
}

func (p *RentalProducer) Close() error {
	return p.writer.Close()
}
