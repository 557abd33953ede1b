package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vaughan-dsouza/bistro/internal/apperr"
	"github.com/vaughan-dsouza/bistro/internal/logger"
	"github.com/vaughan-dsouza/bistro/internal/models"
)

func price(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestCatalogListEmpty(t *testing.T) {
	store := new(MockMenuStore)
	store.On("List", mock.Anything).Return(nil, nil)

	items, err := NewCatalogService(store, nil, time.Minute, logger.Discard()).List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, items)

	raw, err := json.Marshal(items)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(raw))
}

func TestCatalogListUsesCache(t *testing.T) {
	store := new(MockMenuStore)
	cache := newMemCache()
	svc := NewCatalogService(store, cache, time.Minute, logger.Discard())

	store.On("List", mock.Anything).Return([]models.MenuItem{
		{ID: 1, Name: "Soup", Price: models.NewPrice(decimal.RequireFromString("4.5"))},
	}, nil).Once()

	first, err := svc.List(context.Background())
	require.NoError(t, err)
	second, err := svc.List(context.Background())
	require.NoError(t, err)

	require.Len(t, second, 1)
	assert.Equal(t, first[0].Name, second[0].Name)
	assert.True(t, second[0].Price.Equal(decimal.RequireFromString("4.50")))
	store.AssertNumberOfCalls(t, "List", 1)
}

func TestCatalogCreate(t *testing.T) {
	store := new(MockMenuStore)
	cache := newMemCache()
	cache.data[menuCacheKey] = []byte(`[]`)
	svc := NewCatalogService(store, cache, time.Minute, logger.Discard())

	store.On("Create", mock.Anything, mock.MatchedBy(func(item models.MenuItem) bool {
		return item.Name == "Tiramisu" && item.Price.StringFixed(2) == "6.46"
	})).Return(&models.MenuItem{ID: 9, Name: "Tiramisu"}, nil).Once()

	item, err := svc.Create(context.Background(), CreateMenuItemInput{
		Name: "Tiramisu", Description: "Coffee dessert", Price: price("6.456"), Category: "dessert",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(9), item.ID)
	assert.Equal(t, 1, cache.deletes)
	_, cached := cache.data[menuCacheKey]
	assert.False(t, cached)
}

func TestCatalogCreateValidation(t *testing.T) {
	svc := NewCatalogService(new(MockMenuStore), nil, time.Minute, logger.Discard())

	full := CreateMenuItemInput{Name: "Soup", Description: "Hot", Price: price("3"), Category: "starter"}
	cases := map[string]func(in *CreateMenuItemInput){
		"name":        func(in *CreateMenuItemInput) { in.Name = "" },
		"description": func(in *CreateMenuItemInput) { in.Description = " " },
		"price":       func(in *CreateMenuItemInput) { in.Price = nil },
		"category":    func(in *CreateMenuItemInput) { in.Category = "" },
	}
	for field, mutate := range cases {
		in := full
		mutate(&in)
		_, err := svc.Create(context.Background(), in)
		var ve *apperr.ValidationError
		require.ErrorAs(t, err, &ve, field)
		assert.Equal(t, field, ve.Field)
	}

	in := full
	in.Price = price("-0.01")
	_, err := svc.Create(context.Background(), in)
	assert.Equal(t, 400, apperr.HTTPStatus(err))
}

func TestCatalogCreateRejectsPriceAboveColumnRange(t *testing.T) {
	store := new(MockMenuStore)
	store.On("Create", mock.Anything, mock.Anything).Return(&models.MenuItem{ID: 1}, nil)
	svc := NewCatalogService(store, nil, time.Minute, logger.Discard())

	in := CreateMenuItemInput{Name: "Caviar", Description: "Lots", Price: price("100000000"), Category: "main"}
	_, err := svc.Create(context.Background(), in)
	var ve *apperr.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "price", ve.Field)

	in.Price = price("99999999.99")
	_, err = svc.Create(context.Background(), in)
	assert.NoError(t, err)
	store.AssertNumberOfCalls(t, "Create", 1)
}
