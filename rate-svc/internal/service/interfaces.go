package service

import (
	"context"

	"overcooked-delivery/rate-svc/internal/domain"
)

type ReviewServiceInterface interface {
	Create(ctx context.Context, userID int, review *domain.Review) error
	ListRestaurantReviews(ctx context.Context, restaurantID int) ([]domain.Review, error)
	RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error)
}

type ReviewRepository interface {
	// OrderRestaurant returns the restaurant of an order owned by userID. found is false when
	// the order does not exist or belongs to someone else.
	OrderRestaurant(ctx context.Context, orderID, userID int) (restaurantID int, found bool, err error)
	// InsertReview returns false without error when the order already has a review.
	InsertReview(ctx context.Context, review *domain.Review) (bool, error)
	ListRestaurantReviews(ctx context.Context, restaurantID int) ([]domain.Review, error)
	RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error)
}

type ReviewCache interface {
	ReviewMarkerKey(orderID int) string
	Exists(ctx context.Context, key string) (bool, error)
	SetMarker(ctx context.Context, key string) error
}

type ReviewPublisher interface {
	PublishReview(ctx context.Context, event domain.ReviewEvent) error
}

var _ ReviewServiceInterface = (*ReviewService)(nil)
