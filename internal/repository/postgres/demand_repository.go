package postgres

import (
	"context"
	"fmt"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/repository"
	"github.com/jmoiron/sqlx"
)

type DemandRepository struct {
	db  *DB
	cap int
}

var _ repository.DemandRepository = (*DemandRepository)(nil)

// NewDemandRepository builds a postgres-backed demand store keeping at most
// cap weeks per item.
func NewDemandRepository(db *DB, cap int) *DemandRepository {
	return &DemandRepository{db: db, cap: cap}
}

func (r *DemandRepository) History(ctx context.Context, itemID int64) ([]domain.DemandEntry, error) {
	entries := []domain.DemandEntry{}
	query := `
		SELECT item_id, week, quantity
		FROM demand_entries
		WHERE item_id = $1
		ORDER BY week`

	if err := r.db.SelectContext(ctx, &entries, query, itemID); err != nil {
		return nil, fmt.Errorf("demand history for item %d: %w", itemID, err)
	}
	return entries, nil
}

// Append inserts the next week and applies the rolling window inside one
// transaction: when the history outgrows the cap, the oldest week is
// deleted and every remaining week shifts down by one.
func (r *DemandRepository) Append(ctx context.Context, itemID int64, quantity float64) ([]domain.DemandEntry, error) {
	err := r.db.WithTx(ctx, func(tx *sqlx.Tx) error {
		var count int
		if err := tx.GetContext(ctx, &count,
			`SELECT COUNT(*) FROM demand_entries WHERE item_id = $1`, itemID); err != nil {
			return fmt.Errorf("count demand entries: %w", err)
		}

		if _, err := tx.ExecContext(ctx,
			`INSERT INTO demand_entries (item_id, week, quantity) VALUES ($1, $2, $3)`,
			itemID, count+1, quantity); err != nil {
			return fmt.Errorf("insert demand entry: %w", err)
		}

		if count+1 > r.cap {
			if _, err := tx.ExecContext(ctx,
				`DELETE FROM demand_entries WHERE item_id = $1 AND week = 1`, itemID); err != nil {
				return fmt.Errorf("evict oldest week: %w", err)
			}
			if _, err := tx.ExecContext(ctx,
				`UPDATE demand_entries SET week = week - 1 WHERE item_id = $1`, itemID); err != nil {
				return fmt.Errorf("renumber weeks: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return r.History(ctx, itemID)
}

func (r *DemandRepository) UpdateWeek(ctx context.Context, itemID int64, week int, quantity float64) ([]domain.DemandEntry, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE demand_entries SET quantity = $3 WHERE item_id = $1 AND week = $2`,
		itemID, week, quantity)
	if err != nil {
		return nil, fmt.Errorf("update week %d for item %d: %w", week, itemID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("update week %d for item %d: %w", week, itemID, err)
	}
	if affected == 0 {
		return nil, domain.ErrWeekNotFound
	}

	return r.History(ctx, itemID)
}

func (r *DemandRepository) DeleteForItem(ctx context.Context, itemID int64) error {
	if _, err := r.db.ExecContext(ctx,
		`DELETE FROM demand_entries WHERE item_id = $1`, itemID); err != nil {
		return fmt.Errorf("delete demand for item %d: %w", itemID, err)
	}
	return nil
}
