package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"overcooked-delivery/rate-svc/internal/domain"
	"overcooked-delivery/rate-svc/internal/mocks"
	"overcooked-delivery/rate-svc/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReviewService_Create(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	cache := mocks.NewReviewCache(t)
	publisher := mocks.NewReviewPublisher(t)

	svc := service.NewReviewService(repository, cache, publisher)

	ctx := context.Background()

	tests := []struct {
		name          string
		review        *domain.Review
		prepareMocks  func()
		expectedError error
	}{
		{
			name:   "success_create_review",
			review: &domain.Review{OrderID: 99, RestaurantRating: 5, FoodRating: 4, DeliveryRating: 5, Comment: "Great!"},
			prepareMocks: func() {
				repository.On("OrderRestaurant", ctx, 99, 42).Return(10, true, nil).Once()
				cache.On("ReviewMarkerKey", 99).Return("review:order:99").Once()
				cache.On("Exists", ctx, "review:order:99").Return(false, nil).Once()
				repository.On("InsertReview", ctx, mock.MatchedBy(func(r *domain.Review) bool {
					return r.RestaurantID == 10 && r.UserID == 42
				})).Return(true, nil).Once()
				cache.On("SetMarker", ctx, "review:order:99").Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.MatchedBy(func(e domain.ReviewEvent) bool {
					return e.Type == domain.EventNewReview && e.OrderID == 99 && e.RestaurantID == 10 && e.RestaurantRating == 5
				})).Return(nil).Once()
			},
		},
		{
			name:          "error_rating_out_of_range",
			review:        &domain.Review{OrderID: 99, RestaurantRating: 6, FoodRating: 4, DeliveryRating: 5},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidRating,
		},
		{
			name:          "error_missing_rating",
			review:        &domain.Review{OrderID: 99, RestaurantRating: 3, FoodRating: 4},
			prepareMocks:  func() {},
			expectedError: service.ErrInvalidRating,
		},
		{
			name:   "error_order_of_another_user",
			review: &domain.Review{OrderID: 98, RestaurantRating: 3, FoodRating: 3, DeliveryRating: 3},
			prepareMocks: func() {
				repository.On("OrderRestaurant", ctx, 98, 42).Return(0, false, nil).Once()
			},
			expectedError: service.ErrOrderNotFound,
		},
		{
			name:   "error_duplicate_marker",
			review: &domain.Review{OrderID: 97, RestaurantRating: 4, FoodRating: 4, DeliveryRating: 4},
			prepareMocks: func() {
				repository.On("OrderRestaurant", ctx, 97, 42).Return(10, true, nil).Once()
				cache.On("ReviewMarkerKey", 97).Return("review:order:97").Once()
				cache.On("Exists", ctx, "review:order:97").Return(true, nil).Once()
			},
			expectedError: service.ErrDuplicateReview,
		},
		{
			name:   "error_duplicate_in_database",
			review: &domain.Review{OrderID: 96, RestaurantRating: 4, FoodRating: 4, DeliveryRating: 4},
			prepareMocks: func() {
				repository.On("OrderRestaurant", ctx, 96, 42).Return(10, true, nil).Once()
				cache.On("ReviewMarkerKey", 96).Return("review:order:96").Once()
				cache.On("Exists", ctx, "review:order:96").Return(false, errors.New("redis down")).Once()
				repository.On("InsertReview", ctx, mock.Anything).Return(false, nil).Once()
				cache.On("SetMarker", ctx, "review:order:96").Return(nil).Once()
			},
			expectedError: service.ErrDuplicateReview,
		},
		{
			name:   "success_publish_failure_is_ignored",
			review: &domain.Review{OrderID: 95, RestaurantRating: 2, FoodRating: 2, DeliveryRating: 2},
			prepareMocks: func() {
				repository.On("OrderRestaurant", ctx, 95, 42).Return(11, true, nil).Once()
				cache.On("ReviewMarkerKey", 95).Return("review:order:95").Once()
				cache.On("Exists", ctx, "review:order:95").Return(false, nil).Once()
				repository.On("InsertReview", ctx, mock.Anything).Return(true, nil).Once()
				cache.On("SetMarker", ctx, "review:order:95").Return(nil).Once()
				publisher.On("PublishReview", ctx, mock.Anything).Return(errors.New("broker down")).Once()
			},
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			testCase.prepareMocks()
			err := svc.Create(ctx, 42, testCase.review)
			if testCase.expectedError == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, testCase.expectedError)
			}
		})
	}
}

func TestReviewService_ListRestaurantReviews(t *testing.T) {
	repository := mocks.NewReviewRepository(t)
	svc := service.NewReviewService(repository, mocks.NewReviewCache(t), mocks.NewReviewPublisher(t))
	ctx := context.Background()

	expectedReviews := []domain.Review{
		{ID: 2, OrderID: 100, RestaurantID: 10, RestaurantRating: 4, CreatedAt: time.Now()},
		{ID: 1, OrderID: 99, RestaurantID: 10, RestaurantRating: 5, CreatedAt: time.Now().Add(-time.Hour)},
	}
	repository.On("ListRestaurantReviews", ctx, 10).Return(expectedReviews, nil).Once()
	repository.On("ListRestaurantReviews", ctx, 11).Return(nil, nil).Once()

	reviews, err := svc.ListRestaurantReviews(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, expectedReviews, reviews)

	reviews, err = svc.ListRestaurantReviews(ctx, 11)
	assert.NoError(t, err)
	assert.NotNil(t, reviews)
	assert.Empty(t, reviews)
}
