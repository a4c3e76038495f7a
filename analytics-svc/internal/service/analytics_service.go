package service

import (
	"context"
	"database/sql"
	"log"
	"math"
	"strconv"
	"time"

	"overcooked-delivery/analytics-svc/internal/domain"
	"overcooked-delivery/stats"

	"github.com/redis/go-redis/v9"
)

const (
	topTodayLimit   = 10
	DefaultTopLimit = 10
	MaxTopLimit     = 50
)

type AnalyticsService struct {
	db  *sql.DB
	rdb *redis.Client
	now func() time.Time
}

func NewAnalyticsService(db *sql.DB, rdb *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		db:  db,
		rdb: rdb,
		now: time.Now,
	}
}

// TopToday ranks today's dishes across all restaurants by quantity ordered. When the
// counters are empty or Redis is unreachable it recomputes the ranking from today's order lines.
func (s *AnalyticsService) TopToday(ctx context.Context) ([]domain.DishAnalytics, error) {
	key := stats.DailyDishesKey(stats.Day(s.now()))
	ranked, err := s.rdb.ZRevRangeWithScores(ctx, key, 0, topTodayLimit-1).Result()
	if err != nil {
		log.Printf("top today from redis failed, using database: %v", err)
		return s.topTodayFromDB(ctx)
	}
	if len(ranked) == 0 {
		return s.topTodayFromDB(ctx)
	}
	return s.describe(ctx, ranked, 0)
}

func (s *AnalyticsService) topTodayFromDB(ctx context.Context) ([]domain.DishAnalytics, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT oi.item_id, oi.name, o.restaurant_id, SUM(oi.quantity) AS score
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.created_at::date = CURRENT_DATE
		GROUP BY oi.item_id, oi.name, o.restaurant_id
		ORDER BY score DESC, oi.item_id
		LIMIT $1`, topTodayLimit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	dishes := []domain.DishAnalytics{}
	for rows.Next() {
		var d domain.DishAnalytics
		if err := rows.Scan(&d.DishID, &d.DishName, &d.RestaurantID, &d.Score); err != nil {
			return nil, err
		}
		dishes = append(dishes, d)
	}
	return dishes, rows.Err()
}

// TopDishes returns a restaurant's all-time most ordered dishes. limit is clamped to
// [1, MaxTopLimit] and defaults to DefaultTopLimit.
func (s *AnalyticsService) TopDishes(ctx context.Context, restaurantID, limit int) ([]domain.DishAnalytics, error) {
	if limit <= 0 {
		limit = DefaultTopLimit
	}
	if limit > MaxTopLimit {
		limit = MaxTopLimit
	}

	ranked, err := s.rdb.ZRevRangeWithScores(ctx, stats.AllTimeDishesKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	return s.describe(ctx, ranked, restaurantID)
}

// describe attaches names, and the owning restaurant when restaurantID is zero.
func (s *AnalyticsService) describe(ctx context.Context, ranked []redis.Z, restaurantID int) ([]domain.DishAnalytics, error) {
	dishes := make([]domain.DishAnalytics, 0, len(ranked))
	if len(ranked) == 0 {
		return dishes, nil
	}

	members := make([]string, len(ranked))
	for i, z := range ranked {
		members[i], _ = z.Member.(string)
	}

	names, err := s.rdb.HMGet(ctx, stats.DishNamesKey, members...).Result()
	if err != nil {
		return nil, err
	}
	var owners []interface{}
	if restaurantID == 0 {
		if owners, err = s.rdb.HMGet(ctx, stats.DishRestaurantsKey, members...).Result(); err != nil {
			return nil, err
		}
	}

	for i, z := range ranked {
		dishID, err := strconv.Atoi(members[i])
		if err != nil {
			continue
		}
		d := domain.DishAnalytics{DishID: dishID, RestaurantID: restaurantID, Score: z.Score}
		if name, ok := names[i].(string); ok {
			d.DishName = name
		}
		if owners != nil {
			if owner, ok := owners[i].(string); ok {
				d.RestaurantID, _ = strconv.Atoi(owner)
			}
		}
		dishes = append(dishes, d)
	}
	return dishes, nil
}

func (s *AnalyticsService) RestaurantStats(ctx context.Context, restaurantID int) (domain.RestaurantStats, error) {
	result := domain.RestaurantStats{RestaurantID: restaurantID}

	fields, err := s.rdb.HGetAll(ctx, stats.RestaurantStatsKey(restaurantID)).Result()
	if err != nil {
		return result, err
	}

	counter := func(name string) int64 {
		v, _ := strconv.ParseInt(fields[name], 10, 64)
		return v
	}
	result.OrdersPlaced = counter(stats.FieldOrdersPlaced)
	result.OrdersCancelled = counter(stats.FieldOrdersCancelled)
	result.Revenue = counter(stats.FieldRevenue)
	result.ReviewCount = counter(stats.FieldRatingCount)
	if result.ReviewCount > 0 {
		avg := float64(counter(stats.FieldRatingSum)) / float64(result.ReviewCount)
		result.AverageRating = math.Round(avg*100) / 100
	}
	return result, nil
}
