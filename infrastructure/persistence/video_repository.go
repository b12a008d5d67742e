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

type VideoRepository struct {
	col *mongo.Collection
}

func NewVideoRepository(db *mongo.Database) repository.IVideo {
	return &VideoRepository{col: db.Collection(query.Videos)}
}

func (r *VideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	now := utils.GetCurrentTime()
	video.CreatedAt = now
	video.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating video")
		return model.Video{}, classify(err, "video")
	}
	video.ID = result.InsertedID.(bson.ObjectID)
	return video, nil
}

func (r *VideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	var video model.Video
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&video)
	if err != nil {
		return model.Video{}, classify(err, "video")
	}
	return video, nil
}

func (r *VideoRepository) Update(ctx context.Context, id bson.ObjectID, title, description string, thumbnail *model.AssetRef) (model.Video, error) {
	set := bson.D{
		{Key: "title", Value: title},
		{Key: "description", Value: description},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}
	if thumbnail != nil {
		set = append(set, bson.E{Key: "thumbnail", Value: *thumbnail})
	}
	update := bson.D{{Key: "$set", Value: set}}

	var video model.Video
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating video")
		return model.Video{}, classify(err, "video")
	}
	return video, nil
}

func (r *VideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting video")
		return classify(err, "video")
	}
	if result.DeletedCount == 0 {
		return classify(mongo.ErrNoDocuments, "video")
	}
	return nil
}

func (r *VideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "isPublished", Value: published},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}}}

	var video model.Video
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&video)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while toggling publish state")
		return model.Video{}, classify(err, "video")
	}
	return video, nil
}

func (r *VideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	update := bson.D{{Key: "$inc", Value: bson.D{{Key: "views", Value: 1}}}}
	if _, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while incrementing views")
		return classify(err, "video")
	}
	return nil
}
