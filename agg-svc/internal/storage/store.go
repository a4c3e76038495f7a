package storage

import (
	"context"
	"strconv"
	"time"

	"overcooked-delivery/agg-svc/internal/domain"
	"overcooked-delivery/stats"

	"github.com/redis/go-redis/v9"
)

const processedTTL = 7 * 24 * time.Hour

// Store keeps the analytics counters in Redis. Each event is written in one MULTI/EXEC.
type Store struct {
	rdb *redis.Client
	now func() time.Time
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb, now: time.Now}
}

// MarkProcessed reports whether eventID had not been seen before.
func (s *Store) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	return s.rdb.SetNX(ctx, stats.ProcessedEventKey(eventID), 1, processedTTL).Result()
}

func (s *Store) ClearProcessed(ctx context.Context, eventID string) error {
	return s.rdb.Del(ctx, stats.ProcessedEventKey(eventID)).Err()
}

func (s *Store) day(event domain.Event) string {
	if event.Timestamp.IsZero() {
		return stats.Day(s.now())
	}
	return stats.Day(event.Timestamp)
}

func (s *Store) RecordOrderPlaced(ctx context.Context, event domain.Event) error {
	day := s.day(event)
	dailyKey := stats.DailyRestaurantDishesKey(day, event.RestaurantID)
	globalKey := stats.DailyDishesKey(day)
	allTimeKey := stats.AllTimeDishesKey(event.RestaurantID)
	statsKey := stats.RestaurantStatsKey(event.RestaurantID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			member := strconv.Itoa(item.ItemID)
			qty := float64(item.Quantity)
			pipe.ZIncrBy(ctx, dailyKey, qty, member)
			pipe.ZIncrBy(ctx, globalKey, qty, member)
			pipe.ZIncrBy(ctx, allTimeKey, qty, member)
			if item.Name != "" {
				pipe.HSet(ctx, stats.DishNamesKey, member, item.Name)
			}
			pipe.HSet(ctx, stats.DishRestaurantsKey, member, event.RestaurantID)
		}
		pipe.Expire(ctx, dailyKey, stats.DailyRetention)
		pipe.Expire(ctx, globalKey, stats.DailyRetention)
		pipe.HIncrBy(ctx, statsKey, stats.FieldOrdersPlaced, 1)
		pipe.HIncrBy(ctx, statsKey, stats.FieldRevenue, event.TotalAmount)
		return nil
	})
	return err
}

// RecordOrderCancelled reverses the revenue of a cancelled order. Dish popularity is kept.
func (s *Store) RecordOrderCancelled(ctx context.Context, event domain.Event) error {
	statsKey := stats.RestaurantStatsKey(event.RestaurantID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey, stats.FieldOrdersCancelled, 1)
		pipe.HIncrBy(ctx, statsKey, stats.FieldRevenue, -event.TotalAmount)
		return nil
	})
	return err
}

func (s *Store) RecordReview(ctx context.Context, event domain.Event) error {
	statsKey := stats.RestaurantStatsKey(event.RestaurantID)
	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HIncrBy(ctx, statsKey, stats.FieldRatingSum, int64(event.RestaurantRating))
		pipe.HIncrBy(ctx, statsKey, stats.FieldRatingCount, 1)
		return nil
	})
	return err
}
