package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/ports"
)

// NewValidator returns a validator that understands decimal amounts and bike types.
func NewValidator() *validator.Validate {
	validate := validator.New()
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
	_ = validate.RegisterValidation("biketype", func(fl validator.FieldLevel) bool {
		return domain.BikeType(fl.Field().Int()).IsValid()
	})
	return validate
}

func validatePayload(validate *validator.Validate, payload interface{}) error {
	if payload == nil || reflect.ValueOf(payload).IsNil() {
		return fmt.Errorf("%w: empty payload", domain.ErrValidation)
	}
	if err := validate.Struct(payload); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return nil
}

// resolveReference reads a foreign key target straight from its repository.
func resolveReference[T any](ctx context.Context, repo ports.Repository[T], entity string, id int) (*T, error) {
	item, err := repo.Read(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, &domain.ReferenceError{Entity: entity, ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("resolve %s %d: %w", entity, id, err)
	}
	return item, nil
}

func filter[T any](items []*T, keep func(*T) bool) []*T {
	out := make([]*T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// entityCache is the read-through cache used by Get; failures only log.
// A zero ttl defers to the expiry configured on the cache adapter.
type entityCache[T any] struct {
	cache  ports.CachePort
	logger ports.LoggerPort
	prefix string
	ttl    time.Duration
}

func newEntityCache[T any](cache ports.CachePort, logger ports.LoggerPort, prefix string) entityCache[T] {
	return entityCache[T]{cache: cache, logger: logger, prefix: prefix}
}

func (c entityCache[T]) key(id int) string {
	return fmt.Sprintf("%s:%d", c.prefix, id)
}

func (c entityCache[T]) get(ctx context.Context, id int) (*T, bool) {
	if c.cache == nil {
		return nil, false
	}
	data, err := c.cache.Get(ctx, c.key(id))
	if err != nil {
		return nil, false
	}
	var item T
	if err := json.Unmarshal(data, &item); err != nil {
		c.logger.Warn("Failed to unmarshal cached entity", map[string]interface{}{
			"error": err.Error(),
			"key":   c.key(id),
		})
		return nil, false
	}
	return &item, true
}

func (c entityCache[T]) put(ctx context.Context, id int, item *T) {
	if c.cache == nil {
		return
	}
	data, err := json.Marshal(item)
	if err != nil {
		c.logger.Warn("Failed to marshal entity for cache", map[string]interface{}{
			"error": err.Error(),
			"key":   c.key(id),
		})
		return
	}
	if err := c.cache.Set(ctx, c.key(id), data, c.ttl); err != nil {
		c.logger.Warn("Failed to cache entity", map[string]interface{}{
			"error": err.Error(),
			"key":   c.key(id),
		})
	}
}

func (c entityCache[T]) invalidate(ctx context.Context, id int) {
	if c.cache == nil {
		return
	}
	if err := c.cache.Delete(ctx, c.key(id)); err != nil {
		c.logger.Warn("Failed to invalidate cache", map[string]interface{}{
			"error": err.Error(),
			"key":   c.key(id),
		})
	}
}

// logLookupFailure logs a missing entity at warn and a store failure at error.
func logLookupFailure(logger ports.LoggerPort, msg string, err error, fields map[string]interface{}) {
	fields["error"] = err.Error()
	if errors.Is(err, domain.ErrNotFound) {
		logger.Warn(msg, fields)
		return
	}
	logger.Error(msg, fields)
}
