package service

import (
	"context"

	"overcooked-delivery/analytics-svc/internal/domain"
)

type AnalyticsInterface interface {
	TopToday(ctx context.Context) ([]domain.DishAnalytics, error)
	TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishAnalytics, error)
	RestaurantStats(ctx context.Context, restaurantID int) (domain.RestaurantStats, error)
}

var _ AnalyticsInterface = (*AnalyticsService)(nil)
