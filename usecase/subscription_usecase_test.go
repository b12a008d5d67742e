package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/usecase"
)

func TestSubscriptionUsecase_Toggle(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	stats := new(MockStatsCache)

	channel := bson.NewObjectID()
	subscriber := bson.NewObjectID()

	subRepo.On("Toggle", mock.Anything, channel, subscriber).Return(true, nil)
	stats.On("Invalidate", mock.Anything, channel).Return()

	uc := usecase.NewSubscriptionUsecase(subRepo, new(MockViewRepository), stats)
	state, err := uc.Toggle(context.Background(), channel.Hex(), subscriber)

	require.NoError(t, err)
	assert.True(t, state.Active)
	stats.AssertCalled(t, "Invalidate", mock.Anything, channel)
}

func TestSubscriptionUsecase_Toggle_SelfSubscription(t *testing.T) {
	subRepo := new(MockSubscriptionRepository)
	user := bson.NewObjectID()

	uc := usecase.NewSubscriptionUsecase(subRepo, new(MockViewRepository), new(MockStatsCache))
	_, err := uc.Toggle(context.Background(), user.Hex(), user)

	assert.Equal(t, apperror.InvalidInput, apperror.KindOf(err))
	subRepo.AssertNotCalled(t, "Toggle", mock.Anything, mock.Anything, mock.Anything)
}

func TestSubscriptionUsecase_Toggle_InvalidChannel(t *testing.T) {
	uc := usecase.NewSubscriptionUsecase(new(MockSubscriptionRepository), new(MockViewRepository), new(MockStatsCache))
	_, err := uc.Toggle(context.Background(), "bogus", bson.NewObjectID())
	assert.Equal(t, apperror.InvalidInput, apperror.KindOf(err))
}
