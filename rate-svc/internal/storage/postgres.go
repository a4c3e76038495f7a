package storage

import (
	"context"
	"database/sql"
	"errors"
	"strconv"

	"overcooked-delivery/rate-svc/internal/domain"
)

type PostgresRepository struct {
	DB *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{DB: db}
}

func (r *PostgresRepository) OrderRestaurant(ctx context.Context, orderID, userID int) (int, bool, error) {
	var restaurantID int
	err := r.DB.QueryRowContext(ctx, `
		SELECT restaurant_id FROM orders
		WHERE id = $1 AND user_id = $2
	`, orderID, userID).Scan(&restaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return restaurantID, true, nil
}

func (r *PostgresRepository) InsertReview(ctx context.Context, review *domain.Review) (bool, error) {
	err := r.DB.QueryRowContext(ctx, `
		INSERT INTO reviews (order_id, user_id, restaurant_id, restaurant_rating, food_rating, delivery_rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (order_id) DO NOTHING
		RETURNING id, created_at
	`, review.OrderID, review.UserID, review.RestaurantID,
		review.RestaurantRating, review.FoodRating, review.DeliveryRating, review.Comment).
		Scan(&review.ID, &review.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *PostgresRepository) ListRestaurantReviews(ctx context.Context, restaurantID int) ([]domain.Review, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, order_id, user_id, restaurant_id, restaurant_rating, food_rating, delivery_rating, comment, created_at
		FROM reviews
		WHERE restaurant_id = $1
		ORDER BY created_at DESC, id DESC
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []domain.Review{}
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.OrderID, &rev.UserID, &rev.RestaurantID,
			&rev.RestaurantRating, &rev.FoodRating, &rev.DeliveryRating, &rev.Comment, &rev.CreatedAt); err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

// RatingDistribution counts restaurant ratings per star. Every star from 1 to 5 is present.
func (r *PostgresRepository) RatingDistribution(ctx context.Context, restaurantID int) (map[string]int, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT restaurant_rating, COUNT(*) as count
		FROM reviews
		WHERE restaurant_id = $1
		GROUP BY restaurant_rating
		ORDER BY restaurant_rating
	`, restaurantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	distribution := map[string]int{"1": 0, "2": 0, "3": 0, "4": 0, "5": 0}
	for rows.Next() {
		var rating, count int
		if err := rows.Scan(&rating, &count); err != nil {
			return nil, err
		}
		distribution[strconv.Itoa(rating)] = count
	}
	return distribution, rows.Err()
}
