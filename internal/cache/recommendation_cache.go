package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gdghack/stockwise/internal/config"
	"github.com/gdghack/stockwise/internal/domain"
	"github.com/redis/go-redis/v9"
)

const (
	stockRecKeyPrefix    = "recommend:stock"
	budgetPlanKeyPrefix  = "recommend:budget"
	recommendScanBatches = 100
)

// RecommendationCache stores computed recommendations keyed by their
// inputs. Every inventory or demand mutation invalidates the whole space,
// since any item change can reshuffle a budget plan.
type RecommendationCache interface {
	GetStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool) (domain.StockRecommendation, bool, error)
	SetStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool, rec domain.StockRecommendation) error
	GetBudget(ctx context.Context, budget float64, festival bool, strategy string) (domain.BudgetPlan, bool, error)
	SetBudget(ctx context.Context, budget float64, festival bool, strategy string, plan domain.BudgetPlan) error
	InvalidateAll(ctx context.Context) error
}

type redisRecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

type noopRecommendationCache struct{}

func NewRecommendationCache(cfg config.CacheConfig) (RecommendationCache, error) {
	if !cfg.Enabled {
		return &noopRecommendationCache{}, nil
	}

	client, ttl, err := newRedisClient(cfg)
	if err != nil {
		return nil, err
	}

	return &redisRecommendationCache{client: client, ttl: ttl}, nil
}

func NewNoopRecommendationCache() RecommendationCache {
	return &noopRecommendationCache{}
}

func (c *redisRecommendationCache) GetStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool) (domain.StockRecommendation, bool, error) {
	var rec domain.StockRecommendation
	ok, err := c.get(ctx, stockKey(itemID, sellingPrice, festival), &rec)
	return rec, ok, err
}

func (c *redisRecommendationCache) SetStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool, rec domain.StockRecommendation) error {
	return c.set(ctx, stockKey(itemID, sellingPrice, festival), rec)
}

func (c *redisRecommendationCache) GetBudget(ctx context.Context, budget float64, festival bool, strategy string) (domain.BudgetPlan, bool, error) {
	var plan domain.BudgetPlan
	ok, err := c.get(ctx, budgetKey(budget, festival, strategy), &plan)
	return plan, ok, err
}

func (c *redisRecommendationCache) SetBudget(ctx context.Context, budget float64, festival bool, strategy string, plan domain.BudgetPlan) error {
	return c.set(ctx, budgetKey(budget, festival, strategy), plan)
}

func (c *redisRecommendationCache) InvalidateAll(ctx context.Context) error {
	if err := deleteKeysWithPrefix(ctx, c.client, stockRecKeyPrefix, recommendScanBatches); err != nil {
		return err
	}
	return deleteKeysWithPrefix(ctx, c.client, budgetPlanKeyPrefix, recommendScanBatches)
}

func (c *redisRecommendationCache) get(ctx context.Context, key string, dest any) (bool, error) {
	payload, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("redis get failed: %w", err)
	}

	if err := json.Unmarshal(payload, dest); err != nil {
		return false, fmt.Errorf("decode recommendation cache: %w", err)
	}
	return true, nil
}

func (c *redisRecommendationCache) set(ctx context.Context, key string, value any) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encode recommendation cache: %w", err)
	}

	if err := c.client.Set(ctx, key, payload, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func stockKey(itemID int64, sellingPrice float64, festival bool) string {
	return fmt.Sprintf("%s:%d:%.2f:%t", stockRecKeyPrefix, itemID, sellingPrice, festival)
}

func budgetKey(budget float64, festival bool, strategy string) string {
	return fmt.Sprintf("%s:%.2f:%t:%s", budgetPlanKeyPrefix, budget, festival, strategy)
}

func (n *noopRecommendationCache) GetStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool) (domain.StockRecommendation, bool, error) {
	return domain.StockRecommendation{}, false, nil
}

func (n *noopRecommendationCache) SetStock(ctx context.Context, itemID int64, sellingPrice float64, festival bool, rec domain.StockRecommendation) error {
	return nil
}

func (n *noopRecommendationCache) GetBudget(ctx context.Context, budget float64, festival bool, strategy string) (domain.BudgetPlan, bool, error) {
	return domain.BudgetPlan{}, false, nil
}

func (n *noopRecommendationCache) SetBudget(ctx context.Context, budget float64, festival bool, strategy string, plan domain.BudgetPlan) error {
	return nil
}

func (n *noopRecommendationCache) InvalidateAll(ctx context.Context) error {
	return nil
}
