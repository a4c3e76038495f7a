// Package stats names the Redis keys shared by the aggregation writer and the analytics reader.
package stats

import (
	"fmt"
	"time"
)

const (
	// DishNamesKey maps item id to the dish name captured from order events.
	DishNamesKey = "analytics:dish:names"
	// DishRestaurantsKey maps item id to its restaurant id.
	DishRestaurantsKey = "analytics:dish:restaurants"

	FieldOrdersPlaced    = "orders_placed"
	FieldOrdersCancelled = "orders_cancelled"
	FieldRevenue         = "revenue"
	FieldRatingSum       = "rating_sum"
	FieldRatingCount     = "rating_count"

	DailyRetention = 7 * 24 * time.Hour
)

func Day(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// DailyDishesKey is the sorted set of dish quantities ordered across all restaurants on day.
func DailyDishesKey(day string) string {
	return "analytics:daily:" + day
}

func DailyRestaurantDishesKey(day string, restaurantID int) string {
	return fmt.Sprintf("analytics:daily:%s:%d", day, restaurantID)
}

func AllTimeDishesKey(restaurantID int) string {
	return fmt.Sprintf("analytics:alltime:%d", restaurantID)
}

// RestaurantStatsKey is the hash of counters for one restaurant.
func RestaurantStatsKey(restaurantID int) string {
	return fmt.Sprintf("analytics:restaurant:%d", restaurantID)
}

func ProcessedEventKey(eventID string) string {
	return "analytics:event:" + eventID
}
