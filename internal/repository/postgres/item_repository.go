package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/gdghack/stockwise/internal/repository"
)

type ItemRepository struct {
	db *DB
}

var _ repository.ItemRepository = (*ItemRepository)(nil)

func NewItemRepository(db *DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) List(ctx context.Context) ([]domain.Item, error) {
	items := []domain.Item{}
	query := `
		SELECT id, name, stock, category, unit_price, selling_price, unit, created_at, updated_at
		FROM items
		ORDER BY id`

	if err := r.db.SelectContext(ctx, &items, query); err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id int64) (domain.Item, error) {
	var item domain.Item
	query := `
		SELECT id, name, stock, category, unit_price, selling_price, unit, created_at, updated_at
		FROM items
		WHERE id = $1`

	err := r.db.GetContext(ctx, &item, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, domain.ErrItemNotFound
	}
	if err != nil {
		return domain.Item{}, fmt.Errorf("get item %d: %w", id, err)
	}
	return item, nil
}

func (r *ItemRepository) Create(ctx context.Context, item *domain.Item) error {
	query := `
		INSERT INTO items (name, stock, category, unit_price, selling_price, unit, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		item.Name, item.Stock, item.Category, item.CostPrice, item.SellingPrice, item.Unit,
	).Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

func (r *ItemRepository) Update(ctx context.Context, item domain.Item) error {
	query := `
		UPDATE items
		SET name = $2, stock = $3, category = $4, unit_price = $5, selling_price = $6, unit = $7, updated_at = NOW()
		WHERE id = $1`

	res, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Stock, item.Category, item.CostPrice, item.SellingPrice, item.Unit)
	if err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update item %d: %w", item.ID, err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete item %d: %w", id, err)
	}
	if affected == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}
