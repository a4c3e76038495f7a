package storage

import (
	"context"
	"testing"
	"time"

	"overcooked-delivery/agg-svc/internal/domain"
	"overcooked-delivery/stats"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := NewStore(client)
	store.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return store, mr
}

func TestStore_RecordOrderPlaced(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	event := domain.Event{
		Type:         domain.EventOrderPlaced,
		RestaurantID: 1,
		TotalAmount:  738,
		Items: []domain.EventItem{
			{ItemID: 1, Name: "Margherita Pizza", Quantity: 2},
			{ItemID: 2, Name: "Pepperoni Pizza", Quantity: 1},
		},
	}
	require.NoError(t, store.RecordOrderPlaced(ctx, event))
	require.NoError(t, store.RecordOrderPlaced(ctx, event))

	daily := stats.DailyRestaurantDishesKey("2024-05-01", 1)
	score, err := mr.ZScore(daily, "1")
	require.NoError(t, err)
	assert.Equal(t, float64(4), score)

	score, err = mr.ZScore(stats.DailyDishesKey("2024-05-01"), "2")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)

	score, err = mr.ZScore(stats.AllTimeDishesKey(1), "1")
	require.NoError(t, err)
	assert.Equal(t, float64(4), score)

	assert.Equal(t, stats.DailyRetention, mr.TTL(daily))
	assert.Equal(t, time.Duration(0), mr.TTL(stats.AllTimeDishesKey(1)))

	assert.Equal(t, "Margherita Pizza", mr.HGet(stats.DishNamesKey, "1"))
	assert.Equal(t, "1", mr.HGet(stats.DishRestaurantsKey, "2"))
	assert.Equal(t, "2", mr.HGet(stats.RestaurantStatsKey(1), stats.FieldOrdersPlaced))
	assert.Equal(t, "1476", mr.HGet(stats.RestaurantStatsKey(1), stats.FieldRevenue))
}

func TestStore_EventTimestampPicksTheDay(t *testing.T) {
	store, mr := newTestStore(t)

	event := domain.Event{
		RestaurantID: 2,
		Timestamp:    time.Date(2024, 4, 30, 23, 0, 0, 0, time.UTC),
		Items:        []domain.EventItem{{ItemID: 3, Quantity: 1}},
	}
	require.NoError(t, store.RecordOrderPlaced(context.Background(), event))

	assert.True(t, mr.Exists(stats.DailyRestaurantDishesKey("2024-04-30", 2)))
	assert.False(t, mr.Exists(stats.DailyRestaurantDishesKey("2024-05-01", 2)))
}

func TestStore_RecordOrderCancelled(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	placed := domain.Event{RestaurantID: 1, TotalAmount: 738, Items: []domain.EventItem{{ItemID: 1, Quantity: 2}}}
	require.NoError(t, store.RecordOrderPlaced(ctx, placed))
	require.NoError(t, store.RecordOrderCancelled(ctx, domain.Event{RestaurantID: 1, TotalAmount: 738}))

	key := stats.RestaurantStatsKey(1)
	assert.Equal(t, "1", mr.HGet(key, stats.FieldOrdersCancelled))
	assert.Equal(t, "0", mr.HGet(key, stats.FieldRevenue))

	score, err := mr.ZScore(stats.AllTimeDishesKey(1), "1")
	require.NoError(t, err)
	assert.Equal(t, float64(2), score)
}

func TestStore_RecordReview(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.RecordReview(ctx, domain.Event{RestaurantID: 2, RestaurantRating: 5}))
	require.NoError(t, store.RecordReview(ctx, domain.Event{RestaurantID: 2, RestaurantRating: 3}))

	key := stats.RestaurantStatsKey(2)
	assert.Equal(t, "8", mr.HGet(key, stats.FieldRatingSum))
	assert.Equal(t, "2", mr.HGet(key, stats.FieldRatingCount))
}

func TestStore_MarkProcessed(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	fresh, err := store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, fresh)

	fresh, err = store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.False(t, fresh)
	assert.Equal(t, processedTTL, mr.TTL(stats.ProcessedEventKey("evt-1")))

	require.NoError(t, store.ClearProcessed(ctx, "evt-1"))
	fresh, err = store.MarkProcessed(ctx, "evt-1")
	require.NoError(t, err)
	assert.True(t, fresh)
}

func TestStore_RedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.RecordReview(context.Background(), domain.Event{RestaurantID: 1, RestaurantRating: 4})
	assert.Error(t, err)
}
