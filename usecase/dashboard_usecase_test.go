package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/dto"
	"streamhub/usecase"
)

func TestDashboardUsecase_Stats_CacheHitSkipsStore(t *testing.T) {
	viewRepo := new(MockViewRepository)
	stats := new(MockStatsCache)

	channel := bson.NewObjectID()
	cached := dto.ChannelStats{TotalSubscribers: 7, TotalVideos: 3, TotalLikes: 12, TotalViews: 99}
	stats.On("Get", mock.Anything, channel).Return(cached, true)

	uc := usecase.NewDashboardUsecase(viewRepo, stats)
	got, err := uc.Stats(context.Background(), channel)

	require.NoError(t, err)
	assert.Equal(t, cached, got)
	viewRepo.AssertNotCalled(t, "One", mock.Anything, mock.Anything, mock.Anything)
}

func TestDashboardUsecase_Stats_CacheMissReadsAndFills(t *testing.T) {
	viewRepo := new(MockViewRepository)
	stats := new(MockStatsCache)

	channel := bson.NewObjectID()
	stats.On("Get", mock.Anything, channel).Return(dto.ChannelStats{}, false)

	viewRepo.On("One", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			switch out := args.Get(2).(type) {
			case *struct {
				SubscribersCount int64 `bson:"subscribersCount"`
			}:
				out.SubscribersCount = 5
			case *struct {
				TotalLikes  int64 `bson:"totalLikes"`
				TotalViews  int64 `bson:"totalViews"`
				TotalVideos int64 `bson:"totalVideos"`
			}:
				out.TotalLikes = 10
				out.TotalViews = 200
				out.TotalVideos = 4
			}
		}).Return(nil)

	expected := dto.ChannelStats{TotalSubscribers: 5, TotalVideos: 4, TotalLikes: 10, TotalViews: 200}
	stats.On("Set", mock.Anything, channel, expected).Return()

	uc := usecase.NewDashboardUsecase(viewRepo, stats)
	got, err := uc.Stats(context.Background(), channel)

	require.NoError(t, err)
	assert.Equal(t, expected, got)
	stats.AssertExpectations(t)
}

func TestDashboardUsecase_Stats_EmptyChannelIsZero(t *testing.T) {
	viewRepo := new(MockViewRepository)
	stats := new(MockStatsCache)

	channel := bson.NewObjectID()
	stats.On("Get", mock.Anything, channel).Return(dto.ChannelStats{}, false)
	viewRepo.On("One", mock.Anything, mock.Anything, mock.Anything).
		Return(apperror.New(apperror.NotFound, "resource not found"))
	stats.On("Set", mock.Anything, channel, dto.ChannelStats{}).Return()

	uc := usecase.NewDashboardUsecase(viewRepo, stats)
	got, err := uc.Stats(context.Background(), channel)

	require.NoError(t, err)
	assert.Equal(t, dto.ChannelStats{}, got)
}
