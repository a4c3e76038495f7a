package domain

import "time"

const (
	EventOrderPlaced    = "order_placed"
	EventOrderCancelled = "order_cancelled"
	EventNewReview      = "new_review"
)

// Event is the union of what order-svc and rate-svc publish. Fields that a given type does
// not carry stay zero.
type Event struct {
	EventID          string      `json:"event_id"`
	Type             string      `json:"type"`
	OrderID          int         `json:"order_id"`
	UserID           int         `json:"user_id"`
	RestaurantID     int         `json:"restaurant_id"`
	TotalAmount      int64       `json:"total_amount"`
	Items            []EventItem `json:"items"`
	RestaurantRating int         `json:"restaurant_rating"`
	Timestamp        time.Time   `json:"timestamp"`
}

type EventItem struct {
	ItemID   int    `json:"item_id"`
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}
