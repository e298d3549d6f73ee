// internal/repository/repository.go
package repository

import (
	"context"

	"github.com/gdghack/stockwise/internal/domain"
)

// ItemRepository stores inventory items. Implementations return
// domain.ErrItemNotFound for unknown IDs.
type ItemRepository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id int64) (domain.Item, error)
	Create(ctx context.Context, item *domain.Item) error
	Update(ctx context.Context, item domain.Item) error
	Delete(ctx context.Context, id int64) error
}

// DemandRepository stores the per-item weekly demand history and enforces
// the rolling window: Append evicts the oldest week once the history
// exceeds the configured cap and renumbers the remainder from 1, so week
// numbers are always the contiguous range 1..N.
type DemandRepository interface {
	History(ctx context.Context, itemID int64) ([]domain.DemandEntry, error)
	Append(ctx context.Context, itemID int64, quantity float64) ([]domain.DemandEntry, error)
	UpdateWeek(ctx context.Context, itemID int64, week int, quantity float64) ([]domain.DemandEntry, error)
	DeleteForItem(ctx context.Context, itemID int64) error
}
