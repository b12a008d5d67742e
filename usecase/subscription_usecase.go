package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/dto"
	"streamhub/domain/query"
	"streamhub/domain/repository"
)

type ISubscriptionUsecase interface {
	Toggle(ctx context.Context, channelID string, subscriber bson.ObjectID) (dto.ToggleState, error)
	Subscribers(ctx context.Context, channelID string) ([]dto.SubscriberItem, error)
	SubscribedChannels(ctx context.Context, subscriberID string) ([]dto.SubscribedChannelItem, error)
}

type subscriptionUsecase struct {
	subRepo  repository.ISubscription
	viewRepo repository.IView
	stats    repository.IStatsCache
}

func NewSubscriptionUsecase(subRepo repository.ISubscription, viewRepo repository.IView, stats repository.IStatsCache) ISubscriptionUsecase {
	return &subscriptionUsecase{subRepo: subRepo, viewRepo: viewRepo, stats: stats}
}

func (u *subscriptionUsecase) Toggle(ctx context.Context, channelID string, subscriber bson.ObjectID) (dto.ToggleState, error) {
	channel, err := bson.ObjectIDFromHex(channelID)
	if err != nil {
		return dto.ToggleState{}, apperror.New(apperror.InvalidInput, "Invalid channel id")
	}
	if channel == subscriber {
		return dto.ToggleState{}, apperror.New(apperror.InvalidInput, "You cannot subscribe to your own channel")
	}

	active, err := u.subRepo.Toggle(ctx, channel, subscriber)
	if err != nil {
		return dto.ToggleState{}, err
	}
	u.stats.Invalidate(ctx, channel)
	return dto.ToggleState{Active: active}, nil
}

func (u *subscriptionUsecase) Subscribers(ctx context.Context, channelID string) ([]dto.SubscriberItem, error) {
	if _, err := bson.ObjectIDFromHex(channelID); err != nil {
		return nil, apperror.New(apperror.InvalidInput, "Invalid channel id")
	}

	subscribers := []dto.SubscriberItem{}
	if err := u.viewRepo.All(ctx, query.ChannelSubscribers(channelID), &subscribers); err != nil {
		return nil, err
	}
	return subscribers, nil
}

func (u *subscriptionUsecase) SubscribedChannels(ctx context.Context, subscriberID string) ([]dto.SubscribedChannelItem, error) {
	if _, err := bson.ObjectIDFromHex(subscriberID); err != nil {
		return nil, apperror.New(apperror.InvalidInput, "Invalid subscriber id")
	}

	channels := []dto.SubscribedChannelItem{}
	if err := u.viewRepo.All(ctx, query.SubscribedChannels(subscriberID), &channels); err != nil {
		return nil, err
	}
	return channels, nil
}
