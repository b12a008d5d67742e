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

type CommentRepository struct {
	col *mongo.Collection
}

func NewCommentRepository(db *mongo.Database) repository.IComment {
	return &CommentRepository{col: db.Collection(query.Comments)}
}

func (r *CommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	now := utils.GetCurrentTime()
	comment.CreatedAt = now
	comment.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, comment)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating comment")
		return model.Comment{}, classify(err, "comment")
	}
	comment.ID = result.InsertedID.(bson.ObjectID)
	return comment, nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	var comment model.Comment
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&comment)
	if err != nil {
		return model.Comment{}, classify(err, "comment")
	}
	return comment, nil
}

func (r *CommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "content", Value: content},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}}}

	var comment model.Comment
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&comment)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating comment")
		return model.Comment{}, classify(err, "comment")
	}
	return comment, nil
}

func (r *CommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	result, err := r.col.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting comment")
		return classify(err, "comment")
	}
	if result.DeletedCount == 0 {
		return classify(mongo.ErrNoDocuments, "comment")
	}
	return nil
}

func (r *CommentRepository) ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	cursor, err := r.col.Find(ctx, bson.D{{Key: "video", Value: videoID}},
		options.Find().SetProjection(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while listing comment ids")
		return nil, classify(err, "comment")
	}
	defer closeCursor(ctx, cursor)

	var docs []struct {
		ID bson.ObjectID `bson:"_id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, classify(err, "comment")
	}
	ids := make([]bson.ObjectID, 0, len(docs))
	for _, doc := range docs {
		ids = append(ids, doc.ID)
	}
	return ids, nil
}

func (r *CommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	if _, err := r.col.DeleteMany(ctx, bson.D{{Key: "video", Value: videoID}}); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting comments by video")
		return classify(err, "comment")
	}
	return nil
}
