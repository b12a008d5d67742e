package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/dto"
	"streamhub/domain/query"
	"streamhub/domain/repository"
)

type IDashboardUsecase interface {
	Stats(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, error)
	Videos(ctx context.Context, channelID bson.ObjectID) ([]dto.ChannelVideo, error)
}

type dashboardUsecase struct {
	viewRepo repository.IView
	stats    repository.IStatsCache
}

func NewDashboardUsecase(viewRepo repository.IView, stats repository.IStatsCache) IDashboardUsecase {
	return &dashboardUsecase{viewRepo: viewRepo, stats: stats}
}

// Stats aggregates the channel's dashboard totals, reading through the
// cache. Both totals views yield no record for a channel with no data;
// that is a zero result, not an error.
func (u *dashboardUsecase) Stats(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, error) {
	if cached, ok := u.stats.Get(ctx, channelID); ok {
		return cached, nil
	}

	var stats dto.ChannelStats

	var subs struct {
		SubscribersCount int64 `bson:"subscribersCount"`
	}
	err := u.viewRepo.One(ctx, query.SubscriberTotal(channelID.Hex()), &subs)
	if err != nil && apperror.KindOf(err) != apperror.NotFound {
		return dto.ChannelStats{}, err
	}
	stats.TotalSubscribers = subs.SubscribersCount

	var totals struct {
		TotalLikes  int64 `bson:"totalLikes"`
		TotalViews  int64 `bson:"totalViews"`
		TotalVideos int64 `bson:"totalVideos"`
	}
	err = u.viewRepo.One(ctx, query.ChannelVideoTotals(channelID.Hex()), &totals)
	if err != nil && apperror.KindOf(err) != apperror.NotFound {
		return dto.ChannelStats{}, err
	}
	stats.TotalLikes = totals.TotalLikes
	stats.TotalViews = totals.TotalViews
	stats.TotalVideos = totals.TotalVideos

	u.stats.Set(ctx, channelID, stats)
	return stats, nil
}

func (u *dashboardUsecase) Videos(ctx context.Context, channelID bson.ObjectID) ([]dto.ChannelVideo, error) {
	videos := []dto.ChannelVideo{}
	if err := u.viewRepo.All(ctx, query.ChannelVideos(channelID.Hex()), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
