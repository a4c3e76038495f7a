package service

import (
	"context"
	"fmt"

	"overcooked-delivery/order-svc/internal/domain"
)

// CatalogService exposes the read side of the restaurant catalog. Catalog writes happen outside
// this service.
type CatalogService struct {
	catalog CatalogReader
}

func NewCatalogService(catalog CatalogReader) *CatalogService {
	return &CatalogService{catalog: catalog}
}

func (s *CatalogService) ListRestaurants(ctx context.Context) ([]domain.Restaurant, error) {
	restaurants, err := s.catalog.ListRestaurants(ctx)
	if err != nil {
		return nil, storageError("list restaurants", err)
	}
	if restaurants == nil {
		restaurants = []domain.Restaurant{}
	}
	return restaurants, nil
}

func (s *CatalogService) GetRestaurant(ctx context.Context, id int) (*domain.RestaurantMenu, error) {
	if id <= 0 {
		return nil, validationError("invalid restaurant id")
	}
	restaurant, err := s.catalog.GetRestaurant(ctx, id)
	if err != nil {
		return nil, storageError("load restaurant", err)
	}
	if restaurant == nil {
		return nil, fmt.Errorf("%w: restaurant %d", ErrNotFound, id)
	}
	menu, err := s.catalog.ListMenuItems(ctx, id)
	if err != nil {
		return nil, storageError("load menu", err)
	}
	if menu == nil {
		menu = []domain.MenuItem{}
	}
	return &domain.RestaurantMenu{Restaurant: *restaurant, Menu: menu}, nil
}
