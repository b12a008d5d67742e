package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/infrastructure/cache"
)

func newTestClient(t *testing.T) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()}), mr
}

func TestStatsCache_SetGet(t *testing.T) {
	client, _ := newTestClient(t)
	statsCache := cache.NewStatsCache(client, time.Minute)
	ctx := context.Background()

	channel := bson.NewObjectID()
	stats := dto.ChannelStats{TotalSubscribers: 3, TotalVideos: 2, TotalLikes: 5, TotalViews: 40}

	_, ok := statsCache.Get(ctx, channel)
	assert.False(t, ok)

	statsCache.Set(ctx, channel, stats)

	got, ok := statsCache.Get(ctx, channel)
	require.True(t, ok)
	assert.Equal(t, stats, got)
}

func TestStatsCache_Invalidate(t *testing.T) {
	client, _ := newTestClient(t)
	statsCache := cache.NewStatsCache(client, time.Minute)
	ctx := context.Background()

	channel := bson.NewObjectID()
	statsCache.Set(ctx, channel, dto.ChannelStats{TotalViews: 1})
	statsCache.Invalidate(ctx, channel)

	_, ok := statsCache.Get(ctx, channel)
	assert.False(t, ok)
}

func TestStatsCache_Expiry(t *testing.T) {
	client, mr := newTestClient(t)
	statsCache := cache.NewStatsCache(client, time.Minute)
	ctx := context.Background()

	channel := bson.NewObjectID()
	statsCache.Set(ctx, channel, dto.ChannelStats{TotalViews: 1})

	mr.FastForward(2 * time.Minute)

	_, ok := statsCache.Get(ctx, channel)
	assert.False(t, ok)
}

func TestStatsCache_NilClientDegradesToMisses(t *testing.T) {
	statsCache := cache.NewStatsCache(nil, time.Minute)
	ctx := context.Background()

	channel := bson.NewObjectID()
	statsCache.Set(ctx, channel, dto.ChannelStats{TotalViews: 1})
	statsCache.Invalidate(ctx, channel)

	_, ok := statsCache.Get(ctx, channel)
	assert.False(t, ok)
}

func TestStatsCache_KeysAreChannelScoped(t *testing.T) {
	client, _ := newTestClient(t)
	statsCache := cache.NewStatsCache(client, time.Minute)
	ctx := context.Background()

	a := bson.NewObjectID()
	b := bson.NewObjectID()
	statsCache.Set(ctx, a, dto.ChannelStats{TotalViews: 1})
	statsCache.Set(ctx, b, dto.ChannelStats{TotalViews: 2})

	gotA, okA := statsCache.Get(ctx, a)
	gotB, okB := statsCache.Get(ctx, b)
	require.True(t, okA)
	require.True(t, okB)
	assert.NotEqual(t, gotA, gotB)
}
