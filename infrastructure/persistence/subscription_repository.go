package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/utils"
)

type SubscriptionRepository struct {
	col *mongo.Collection
}

func NewSubscriptionRepository(db *mongo.Database) repository.ISubscription {
	return &SubscriptionRepository{col: db.Collection(query.Subscriptions)}
}

// Toggle mirrors LikeRepository.Toggle: delete first, insert when no
// row was removed, and lean on the unique (channel, subscriber) index
// under concurrency.
func (r *SubscriptionRepository) Toggle(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: "channel", Value: channel},
		{Key: "subscriber", Value: subscriber},
	}
	result, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while removing subscription")
		return false, classify(err, "subscription")
	}
	if result.DeletedCount == 1 {
		return false, nil
	}

	now := utils.GetCurrentTime()
	sub := model.Subscription{
		Channel:    channel,
		Subscriber: subscriber,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if _, err := r.col.InsertOne(ctx, sub); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		logger.GetLogger().WithField("error", err).Error("Error while creating subscription")
		return false, classify(err, "subscription")
	}
	return true, nil
}
