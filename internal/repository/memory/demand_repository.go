package memory

import (
	"context"
	"sync"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/repository"
)

type DemandRepository struct {
	mu      sync.RWMutex
	history map[int64][]domain.DemandEntry
	cap     int
}

var _ repository.DemandRepository = (*DemandRepository)(nil)

// NewDemandRepository builds an in-memory demand store keeping at most cap
// weeks per item.
func NewDemandRepository(cap int) *DemandRepository {
	return &DemandRepository{
		history: make(map[int64][]domain.DemandEntry),
		cap:     cap,
	}
}

func (r *DemandRepository) History(ctx context.Context, itemID int64) ([]domain.DemandEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := r.history[itemID]
	out := make([]domain.DemandEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *DemandRepository) Append(ctx context.Context, itemID int64, quantity float64) ([]domain.DemandEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.history[itemID]
	entries = append(entries, domain.DemandEntry{
		ItemID:   itemID,
		Week:     len(entries) + 1,
		Quantity: quantity,
	})

	// Rolling window: evict the oldest week and renumber from 1.
	if len(entries) > r.cap {
		entries = entries[1:]
		for i := range entries {
			entries[i].Week = i + 1
		}
	}

	r.history[itemID] = entries

	out := make([]domain.DemandEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *DemandRepository) UpdateWeek(ctx context.Context, itemID int64, week int, quantity float64) ([]domain.DemandEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries := r.history[itemID]
	if week < 1 || week > len(entries) {
		return nil, domain.ErrWeekNotFound
	}

	entries[week-1].Quantity = quantity

	out := make([]domain.DemandEntry, len(entries))
	copy(out, entries)
	return out, nil
}

func (r *DemandRepository) DeleteForItem(ctx context.Context, itemID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.history, itemID)
	return nil
}
