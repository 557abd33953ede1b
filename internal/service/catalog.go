package service

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/models"
)

const menuCacheKey = "menu:items"

// maxPrice is the largest value a DECIMAL(10,2) column holds.
var maxPrice = decimal.RequireFromString("99999999.99")

type MenuStore interface {
	List(ctx context.Context) ([]models.MenuItem, error)
	Create(ctx context.Context, item models.MenuItem) (*models.MenuItem, error)
}

// Cache is satisfied by *cache.Client; a miss and an outage look the same.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration)
	Delete(ctx context.Context, key string)
}

type CreateMenuItemInput struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    string           `json:"category"`
}

type CatalogService struct {
	menu     MenuStore
	cache    Cache
	cacheTTL time.Duration
	log      *slog.Logger
}

// NewCatalogService accepts a nil cache.
func NewCatalogService(menu MenuStore, cache Cache, cacheTTL time.Duration, log *slog.Logger) *CatalogService {
	return &CatalogService{menu: menu, cache: cache, cacheTTL: cacheTTL, log: log}
}

// List never returns a nil slice, so an empty menu encodes as [].
func (s *CatalogService) List(ctx context.Context) ([]models.MenuItem, error) {
	if s.cache != nil {
		if raw, ok := s.cache.Get(ctx, menuCacheKey); ok {
			var items []models.MenuItem
			if err := json.Unmarshal(raw, &items); err == nil && items != nil {
				return items, nil
			}
			s.log.WarnContext(ctx, "discarding unreadable menu cache entry")
		}
	}

	items, err := s.menu.List(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.MenuItem{}
	}

	if s.cache != nil {
		if raw, err := json.Marshal(items); err == nil {
			s.cache.Set(ctx, menuCacheKey, raw, s.cacheTTL)
		}
	}
	return items, nil
}

func (s *CatalogService) Create(ctx context.Context, in CreateMenuItemInput) (*models.MenuItem, error) {
	item := models.MenuItem{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Category:    strings.TrimSpace(in.Category),
	}
	switch {
	case item.Name == "":
		return nil, apperr.Missing("name")
	case item.Description == "":
		return nil, apperr.Missing("description")
	case in.Price == nil:
		return nil, apperr.Missing("price")
	case item.Category == "":
		return nil, apperr.Missing("category")
	case in.Price.IsNegative():
		return nil, apperr.Invalid("price", "must not be negative")
	}
	item.Price = models.NewPrice(*in.Price)
	if item.Price.GreaterThan(maxPrice) {
		return nil, apperr.Invalid("price", "must not exceed 99999999.99")
	}

	created, err := s.menu.Create(ctx, item)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Delete(ctx, menuCacheKey)
	}

	s.log.InfoContext(ctx, "menu item created", "item_id", created.ID)
	return created, nil
}
