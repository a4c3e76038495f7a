package domain

import "time"

// Review is the single review a user may leave for one of their orders.
type Review struct {
	ID               int       `json:"id"`
	OrderID          int       `json:"order_id"`
	UserID           int       `json:"user_id"`
	RestaurantID     int       `json:"restaurant_id"`
	RestaurantRating int       `json:"restaurant_rating"`
	FoodRating       int       `json:"food_rating"`
	DeliveryRating   int       `json:"delivery_rating"`
	Comment          string    `json:"comment"`
	CreatedAt        time.Time `json:"created_at"`
}

const EventNewReview = "new_review"

type ReviewEvent struct {
	EventID          string    `json:"event_id"`
	Type             string    `json:"type"`
	ReviewID         int       `json:"review_id"`
	OrderID          int       `json:"order_id"`
	RestaurantID     int       `json:"restaurant_id"`
	RestaurantRating int       `json:"restaurant_rating"`
	FoodRating       int       `json:"food_rating"`
	DeliveryRating   int       `json:"delivery_rating"`
	Timestamp        time.Time `json:"timestamp"`
}
