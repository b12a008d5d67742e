package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/utils"
)

type TweetRepository struct {
	col *mongo.Collection
}

func NewTweetRepository(db *mongo.Database) repository.ITweet {
	return &TweetRepository{col: db.Collection(query.Tweets)}
}

func (r *TweetRepository) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	now := utils.GetCurrentTime()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, tweet)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating tweet")
		return model.Tweet{}, classify(err, "tweet")
	}
	tweet.ID = result.InsertedID.(bson.ObjectID)
	return tweet, nil
}

func (r *TweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	var tweet model.Tweet
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&tweet)
	if err != nil {
		return model.Tweet{}, classify(err, "tweet")
	}
	return tweet, nil
}

func (r *TweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}}}

	var tweet model.Tweet
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&tweet)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating tweet")
		return model.Tweet{}, classify(err, "tweet")
	}
	return tweet, nil
}

func (r *TweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting tweet")
		return classify(err, "tweet")
	}
	if result.DeletedCount == 0 {
		return classify(mongo.ErrNoDocuments, "tweet")
	}
	return nil
}
