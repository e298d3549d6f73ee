// Package memory provides mutex-guarded in-memory repositories. They back
// the demo mode of the server and the unit tests; the postgres package is
// the durable alternative.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/repository"
)

type ItemRepository struct {
	mu     sync.RWMutex
	items  map[int64]domain.Item
	nextID int64
}

var _ repository.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository() *ItemRepository {
	return &ItemRepository{
		items:  make(map[int64]domain.Item),
		nextID: 1,
	}
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]domain.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })

	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[id]
	if !ok {
		return domain.Item{}, domain.ErrItemNotFound
	}
	return item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	item.ID = r.nextID
	item.CreatedAt = now
	item.UpdatedAt = now
	r.nextID++

	r.items[item.ID] = *item
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.items[item.ID]
	if !ok {
		return domain.ErrItemNotFound
	}

	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = time.Now()
	r.items[item.ID] = item
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.items[id]; !ok {
		return domain.ErrItemNotFound
	}
	delete(r.items, id)
	return nil
}
