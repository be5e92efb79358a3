// Package memory keeps entities in process memory. It backs STORAGE_DRIVER=memory
// and the service tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/sm8ta/webike_rental_microservice_nikita/internal/core/domain"
)

type Repository[T any] struct {
	mu     sync.RWMutex
	items  map[int]T
	nextID int
	entity string
	getID  func(*T) int
	setID  func(*T, int)
}

func NewRepository[T any](entity string, getID func(*T) int, setID func(*T, int)) *Repository[T] {
	return &Repository[T]{
		items:  make(map[int]T),
		nextID: 1,
		entity: entity,
		getID:  getID,
		setID:  setID,
	}
}

// Create stores a copy of entity. A zero id is assigned from the counter;
// an explicit id is kept and moves the counter past it.
func (r *Repository[T]) Create(ctx context.Context, entity *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	item := *entity
	id := r.getID(&item)
	if id == 0 {
		id = r.nextID
		r.setID(&item, id)
	}
	if id >= r.nextID {
		r.nextID = id + 1
	}
	r.items[id] = item

	return &item, nil
}

func (r *Repository[T]) Read(ctx context.Context, id int) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return nil, domain.NewNotFoundError(r.entity, id)
	}
	return &item, nil
}

// ReadAll returns copies ordered by id.
func (r *Repository[T]) ReadAll(ctx context.Context) ([]*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	ids := make([]int, 0, len(r.items))
	for id := range r.items {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	result := make([]*T, 0, len(ids))
	for _, id := range ids {
		item := r.items[id]
		result = append(result, &item)
	}
	r.mu.RUnlock()

	return result, nil
}

func (r *Repository[T]) Update(ctx context.Context, entity *T) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	id := r.getID(entity)
	if _, ok := r.items[id]; !ok {
		return nil, domain.NewNotFoundError(r.entity, id)
	}
	item := *entity
	r.items[id] = item

	return &item, nil
}

func (r *Repository[T]) Delete(ctx context.Context, id int) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func NewBikeModelRepository() *Repository[domain.BikeModel] {
	return NewRepository("bike model",
		func(m *domain.BikeModel) int { return m.ID },
		func(m *domain.BikeModel, id int) { m.ID = id })
}

func NewBikeRepository() *Repository[domain.Bike] {
	return NewRepository("bike",
		func(b *domain.Bike) int { return b.ID },
		func(b *domain.Bike, id int) { b.ID = id })
}

func NewRenterRepository() *Repository[domain.Renter] {
	return NewRepository("renter",
		func(r *domain.Renter) int { return r.ID },
		func(r *domain.Renter, id int) { r.ID = id })
}

func NewRentalRepository() *Repository[domain.Rental] {
	return NewRepository("rental",
		func(r *domain.Rental) int { return r.ID },
		func(r *domain.Rental, id int) { r.ID = id })
}
