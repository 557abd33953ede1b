package repository

import (
	"context"
	"fmt"

	"github.com/vaughan-dsouza/bistro/internal/models"
)

type MenuRepository struct {
	q Querier
}

func NewMenuRepository(q Querier) *MenuRepository {
	return &MenuRepository{q: q}
}

// List returns every item in whatever order the store yields them.
func (r *MenuRepository) List(ctx context.Context) ([]models.MenuItem, error) {
	items := []models.MenuItem{}
	err := r.q.Select(ctx, &items, `
		SELECT id, name, COALESCE(description, '') AS description, price,
		       COALESCE(category, '') AS category, created_at
		FROM menu_items
	`)
	if err != nil {
		return nil, fmt.Errorf("list menu items: %w", err)
	}
	return items, nil
}

func (r *MenuRepository) Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error) {
	err := r.q.Get(ctx, &item, `
		INSERT INTO menu_items (name, description, price, category)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, COALESCE(description, '') AS description, price,
		          COALESCE(category, '') AS category, created_at
	`, item.Name, item.Description, item.Price, item.Category)
	if err != nil {
		return nil, fmt.Errorf("create menu item: %w", err)
	}
	return &item, nil
}
