package domain

type DishAnalytics struct {
	DishID       int     `json:"dish_id"`
	DishName     string  `json:"dish_name"`
	RestaurantID int     `json:"restaurant_id"`
	Score        float64 `json:"score"`
}

// RestaurantStats is the running tally for one restaurant. Revenue is in minor units and
// excludes cancelled orders.
type RestaurantStats struct {
	RestaurantID    int     `json:"restaurant_id"`
	OrdersPlaced    int64   `json:"orders_placed"`
	OrdersCancelled int64   `json:"orders_cancelled"`
	Revenue         int64   `json:"revenue"`
	AverageRating   float64 `json:"average_rating"`
	ReviewCount     int64   `json:"review_count"`
}
