package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"overcooked-delivery/rate-svc/internal/domain"

	"github.com/google/uuid"
)

var (
	ErrInvalidRating   = errors.New("ratings must be between 1 and 5")
	ErrOrderNotFound   = errors.New("invalid order")
	ErrDuplicateReview = errors.New("review already submitted for this order")
)

type ReviewService struct {
	repository ReviewRepository
	cache      ReviewCache
	publisher  ReviewPublisher
}

func NewReviewService(repository ReviewRepository, cache ReviewCache, publisher ReviewPublisher) *ReviewService {
	return &ReviewService{
		repository: repository,
		cache:      cache,
		publisher:  publisher,
	}
}

// Create stores the review for an order owned by userID. The restaurant is taken from the
// order, never from the request.
func (s *ReviewService) Create(ctx context.Context, userID int, review *domain.Review) error {
	for _, rating := range []int{review.RestaurantRating, review.FoodRating, review.DeliveryRating} {
		if rating < 1 || rating > 5 {
			return ErrInvalidRating
		}
	}
	if review.OrderID <= 0 {
		return ErrOrderNotFound
	}

	restaurantID, found, err := s.repository.OrderRestaurant(ctx, review.OrderID, userID)
	if err != nil {
		return fmt.Errorf("failed to validate order: %w", err)
	}
	if !found {
		return ErrOrderNotFound
	}

	cacheKey := s.cache.ReviewMarkerKey(review.OrderID)
	if exists, _ := s.cache.Exists(ctx, cacheKey); exists {
		return ErrDuplicateReview
	}

	review.UserID = userID
	review.RestaurantID = restaurantID
	inserted, err := s.repository.InsertReview(ctx, review)
	if err != nil {
		return fmt.Errorf("failed to save review: %w", err)
	}
	if !inserted {
		_ = s.cache.SetMarker(ctx, cacheKey)
		return ErrDuplicateReview
	}

	if err := s.cache.SetMarker(ctx, cacheKey); err != nil {
		log.Printf("reviews: marker for order %d not set: %v", review.OrderID, err)
	}

	if s.publisher != nil {
		err := s.publisher.PublishReview(ctx, domain.ReviewEvent{
			EventID:          uuid.NewString(),
			Type:             domain.EventNewReview,
			ReviewID:         review.ID,
			OrderID:          review.OrderID,
			RestaurantID:     review.RestaurantID,
			RestaurantRating: review.RestaurantRating,
			FoodRating:       review.FoodRating,
			DeliveryRating:   review.DeliveryRating,
			Timestamp:        time.Now().UTC(),
		})
		if err != nil {
			log.Printf("reviews: failed to publish review %d: %v", review.ID, err)
		}
	}

	return nil
}

func (s *ReviewService) ListRestaurantReviews(ctx context.Context, restaurantID int) ([]domain.Review, error) {
	reviews, err := s.repository.ListRestaurantReviews(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	if reviews == nil {
		reviews = []domain.Review{}
	}
	return reviews, nil
}

func (s *ReviewService) RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error) {
	return s.repository.RatingDistribution(ctx, restaurantID)
}
