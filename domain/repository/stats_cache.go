package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
)

// IStatsCache is a read-through cache for channel dashboard totals.
// Implementations must degrade to cache misses when the backing store
// is unavailable; callers never fail a request on cache errors.
type IStatsCache interface {
	Get(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, bool)
	Set(ctx context.Context, channelID bson.ObjectID, stats dto.ChannelStats)
	Invalidate(ctx context.Context, channelID bson.ObjectID)
}
