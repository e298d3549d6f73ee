// internal/service/inventory_service.go
package service

import (
	"context"
	"strings"

	"github.com/gdghack/stockwise/internal/cache"
	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/repository"
	"github.com/rs/zerolog/log"
)

// InventoryService handles item CRUD and demand recording. Every mutation
// invalidates the recommendation cache, since any change can reshuffle a
// plan.
type InventoryService struct {
	items  repository.ItemRepository
	demand repository.DemandRepository
	cache  cache.RecommendationCache
}

func NewInventoryService(items repository.ItemRepository, demand repository.DemandRepository, cacheImpl cache.RecommendationCache) *InventoryService {
	if cacheImpl == nil {
		cacheImpl = cache.NewNoopRecommendationCache()
	}
	return &InventoryService{items: items, demand: demand, cache: cacheImpl}
}

func (s *InventoryService) ListItems(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

func (s *InventoryService) GetItem(ctx context.Context, id int64) (domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *InventoryService) CreateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}

	if item.Category == "" {
		item.Category = "general"
	}
	if item.Unit == "" {
		item.Unit = "pcs"
	}

	if err := s.items.Create(ctx, &item); err != nil {
		return domain.Item{}, err
	}

	s.invalidate(ctx)
	return item, nil
}

func (s *InventoryService) UpdateItem(ctx context.Context, item domain.Item) (domain.Item, error) {
	if err := validateItem(item); err != nil {
		return domain.Item{}, err
	}

	if err := s.items.Update(ctx, item); err != nil {
		return domain.Item{}, err
	}

	s.invalidate(ctx)
	return s.items.GetByID(ctx, item.ID)
}

func (s *InventoryService) DeleteItem(ctx context.Context, id int64) error {
	if err := s.items.Delete(ctx, id); err != nil {
		return err
	}

	// Demand records reference items weakly; drop them with the item.
	if err := s.demand.DeleteForItem(ctx, id); err != nil {
		log.Warn().Err(err).Int64("item_id", id).Msg("could not delete demand history")
	}

	s.invalidate(ctx)
	return nil
}

func (s *InventoryService) DemandHistory(ctx context.Context, itemID int64) ([]domain.DemandEntry, error) {
	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}
	return s.demand.History(ctx, itemID)
}

// AddDemand records the next week of demand for an item. The repository
// enforces the rolling window.
func (s *InventoryService) AddDemand(ctx context.Context, itemID int64, quantity float64) ([]domain.DemandEntry, error) {
	if quantity < 0 {
		return nil, domain.Invalid("quantity", "must not be negative")
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	entries, err := s.demand.Append(ctx, itemID, quantity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return entries, nil
}

// EditDemand rewrites the quantity of an already-recorded week.
func (s *InventoryService) EditDemand(ctx context.Context, itemID int64, week int, quantity float64) ([]domain.DemandEntry, error) {
	if week < 1 {
		return nil, domain.Invalid("week", "must be a positive week number")
	}
	if quantity < 0 {
		return nil, domain.Invalid("quantity", "must not be negative")
	}

	if _, err := s.items.GetByID(ctx, itemID); err != nil {
		return nil, err
	}

	entries, err := s.demand.UpdateWeek(ctx, itemID, week, quantity)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	return entries, nil
}

func (s *InventoryService) invalidate(ctx context.Context) {
	if err := s.cache.InvalidateAll(ctx); err != nil {
		log.Warn().Err(err).Msg("recommendation cache invalidation failed")
	}
}

func validateItem(item domain.Item) error {
	if strings.TrimSpace(item.Name) == "" {
		return domain.Invalid("name", "must not be empty")
	}
	if item.Stock < 0 {
		return domain.Invalid("stock", "must not be negative")
	}
	if item.CostPrice < 0 {
		return domain.Invalid("unit_price", "must not be negative")
	}
	if item.SellingPrice < 0 {
		return domain.Invalid("selling_price", "must not be negative")
	}
	return nil
}
