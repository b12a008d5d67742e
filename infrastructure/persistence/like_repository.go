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

type LikeRepository struct {
	col *mongo.Collection
}

func NewLikeRepository(db *mongo.Database) repository.ILike {
	return &LikeRepository{col: db.Collection(query.Likes)}
}

// Toggle tries to remove the like first. When nothing was removed it
// inserts one; the partial unique index on (target, likedBy) turns a
// concurrent double-insert into a duplicate key error, which we treat
// as the like already being active.
func (r *LikeRepository) Toggle(ctx context.Context, target model.LikeTarget, likedBy bson.ObjectID) (bool, error) {
	filter := bson.D{
		{Key: target.Field(), Value: target.ID()},
		{Key: "likedBy", Value: likedBy},
	}
	result, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while removing like")
		return false, classify(err, "like")
	}
	if result.DeletedCount == 1 {
		return false, nil
	}

	like := model.NewLike(target, likedBy, utils.GetCurrentTime())
	if _, err := r.col.InsertOne(ctx, like); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return true, nil
		}
		logger.GetLogger().WithField("error", err).Error("Error while creating like")
		return false, classify(err, "like")
	}
	return true, nil
}

func (r *LikeRepository) DeleteByTarget(ctx context.Context, target model.LikeTarget) error {
	if _, err := r.col.DeleteMany(ctx, bson.D{{Key: target.Field(), Value: target.ID()}}); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting likes by target")
		return classify(err, "like")
	}
	return nil
}

func (r *LikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error {
	if len(commentIDs) == 0 {
		return nil
	}
	filter := bson.D{{Key: "comment", Value: bson.D{{Key: "$in", Value: commentIDs}}}}
	if _, err := r.col.DeleteMany(ctx, filter); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting likes by comments")
		return classify(err, "like")
	}
	return nil
}
