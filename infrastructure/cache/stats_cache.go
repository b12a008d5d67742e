package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
)

const statsKeyPrefix = "channel:stats:"

// StatsCache keeps channel dashboard totals in Redis for a short TTL.
// A nil client turns every read into a miss and every write into a
// no-op, so the rest of the service works without Redis.
type StatsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewStatsCache(client *redis.Client, ttl time.Duration) repository.IStatsCache {
	return &StatsCache{client: client, ttl: ttl}
}

func (c *StatsCache) Get(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, bool) {
	if c.client == nil {
		return dto.ChannelStats{}, false
	}

	data, err := c.client.Get(ctx, statsKeyPrefix+channelID.Hex()).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.GetLogger().WithField("error", err).Warn("Error reading stats cache")
		}
		return dto.ChannelStats{}, false
	}

	var stats dto.ChannelStats
	if err := json.Unmarshal(data, &stats); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error decoding cached stats")
		return dto.ChannelStats{}, false
	}
	return stats, true
}

func (c *StatsCache) Set(ctx context.Context, channelID bson.ObjectID, stats dto.ChannelStats) {
	if c.client == nil {
		return
	}

	data, err := json.Marshal(stats)
	if err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error encoding stats for cache")
		return
	}
	if err := c.client.Set(ctx, statsKeyPrefix+channelID.Hex(), data, c.ttl).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error writing stats cache")
	}
}

func (c *StatsCache) Invalidate(ctx context.Context, channelID bson.ObjectID) {
	if c.client == nil {
		return
	}
	if err := c.client.Del(ctx, statsKeyPrefix+channelID.Hex()).Err(); err != nil {
		logger.GetLogger().WithField("error", err).Warn("Error invalidating stats cache")
	}
}
