package kafka

import (
	"context"
	"errors"
	"sync"

	"github.com/segmentio/kafka-go"
	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

// fakeBroker keeps one partition and its committed offset. Readers it hands
// out resume from the committed offset like a consumer group would.
type fakeBroker struct {
	mu        sync.Mutex
	messages  []kafka.Message
	committed int64
	opened    int
}

func newFakeBroker(values ...[]byte) *fakeBroker {
	b := &fakeBroker{}
	for i, v := range values {
		b.messages = append(b.messages, kafka.Message{Offset: int64(i), Value: v})
	}
	return b
}

func (b *fakeBroker) factory() ReaderFactory {
	return func() MessageReader {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.opened++
		return &fakeReader{broker: b, pos: b.committed}
	}
}

func (b *fakeBroker) committedOffset() int64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.committed
}

func (b *fakeBroker) openedReaders() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.opened
}

type fakeReader struct {
	broker *fakeBroker
	pos    int64
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.broker.mu.Lock()
	if r.pos < int64(len(r.broker.messages)) {
		msg := r.broker.messages[r.pos]
		r.pos++
		r.broker.mu.Unlock()
		return msg, nil
	}
	r.broker.mu.Unlock()

	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.broker.mu.Lock()
	defer r.broker.mu.Unlock()
	for _, m := range msgs {
		if m.Offset+1 > r.broker.committed {
			r.broker.committed = m.Offset + 1
		}
	}
	return nil
}

func (r *fakeReader) Close() error { return nil }

// fakeRentals records created payloads and fails the first failures calls.
type fakeRentals struct {
	mu       sync.Mutex
	created  []domain.RentalPayload
	failures int
	panicOn  int
	calls    int
}

func (f *fakeRentals) Create(_ context.Context, payload *domain.RentalPayload) (*domain.Rental, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.panicOn > 0 && f.calls == f.panicOn {
		panic("boom")
	}
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("store unavailable")
	}
	f.created = append(f.created, *payload)
	return &domain.Rental{ID: len(f.created)}, nil
}

func (f *fakeRentals) createdCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.created)
}

type fakeMetrics struct {
	mu       sync.Mutex
	outcomes []string
}

func (m *fakeMetrics) RecordBatch(outcome string, _ int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.outcomes = append(m.outcomes, outcome)
}

func (m *fakeMetrics) snapshot() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.outcomes...)
}

// flakyOnce fails the failAt-th call of the first delivery only.
type flakyOnce struct {
	inner  *fakeRentals
	failAt int
	calls  int
	armed  *bool
}

func (f *flakyOnce) Create(ctx context.Context, payload *domain.RentalPayload) (*domain.Rental, error) {
	f.calls++
	if *f.armed && f.calls == f.failAt {
		*f.armed = false
		return nil, errors.New("store unavailable")
	}
	return f.inner.Create(ctx, payload)
}
