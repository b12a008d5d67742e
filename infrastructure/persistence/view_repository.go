package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"streamhub/domain/apperror"
	"streamhub/domain/query"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
)

// ViewRepository executes composed-view pipelines against MongoDB.
type ViewRepository struct {
	db *mongo.Database
}

func NewViewRepository(db *mongo.Database) repository.IView {
	return &ViewRepository{db: db}
}

func (r *ViewRepository) One(ctx context.Context, view query.View, out any) error {
	pipeline, err := compile(view)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("View compilation failed")
		return apperror.Wrap(apperror.Internal, "Internal server error", err)
	}

	cursor, err := r.db.Collection(view.Collection).Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while executing view")
		return classify(err, "view")
	}
	defer closeCursor(ctx, cursor)

	if !cursor.Next(ctx) {
		if err := cursor.Err(); err != nil {
			return classify(err, "view")
		}
		return apperror.New(apperror.NotFound, "resource not found")
	}
	if err := cursor.Decode(out); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding view record")
		return apperror.Wrap(apperror.Internal, "Internal server error", err)
	}
	return nil
}

func (r *ViewRepository) All(ctx context.Context, view query.View, out any) error {
	pipeline, err := compile(view)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("View compilation failed")
		return apperror.Wrap(apperror.Internal, "Internal server error", err)
	}

	cursor, err := r.db.Collection(view.Collection).Aggregate(ctx, pipeline)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while executing view")
		return classify(err, "view")
	}
	defer closeCursor(ctx, cursor)

	if err := cursor.All(ctx, out); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding view records")
		return apperror.Wrap(apperror.Internal, "Internal server error", err)
	}
	return nil
}

// Page slices the view with store-side skip/limit; the full result set is
// never materialized in the service.
func (r *ViewRepository) Page(ctx context.Context, view query.View, req query.PageRequest, out any) (query.PageInfo, error) {
	pipeline, err := compile(view)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("View compilation failed")
		return query.PageInfo{}, apperror.Wrap(apperror.Internal, "Internal server error", err)
	}

	total, err := r.count(ctx, view.Collection, pipeline)
	if err != nil {
		return query.PageInfo{}, err
	}

	paged := append(append(mongo.Pipeline{}, pipeline...),
		bson.D{{Key: "$skip", Value: (req.Page - 1) * req.Limit}},
		bson.D{{Key: "$limit", Value: req.Limit}},
	)
	cursor, err := r.db.Collection(view.Collection).Aggregate(ctx, paged)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while executing paged view")
		return query.PageInfo{}, classify(err, "view")
	}
	defer closeCursor(ctx, cursor)

	if err := cursor.All(ctx, out); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while decoding page")
		return query.PageInfo{}, apperror.Wrap(apperror.Internal, "Internal server error", err)
	}
	return query.NewPageInfo(req, total), nil
}

func (r *ViewRepository) count(ctx context.Context, collection string, pipeline mongo.Pipeline) (int64, error) {
	counted := append(append(mongo.Pipeline{}, pipeline...), bson.D{{Key: "$count", Value: "total"}})

	cursor, err := r.db.Collection(collection).Aggregate(ctx, counted)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while counting view")
		return 0, classify(err, "view")
	}
	defer closeCursor(ctx, cursor)

	var result struct {
		Total int64 `bson:"total"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, apperror.Wrap(apperror.Internal, "Internal server error", err)
		}
	}
	return result.Total, nil
}

func closeCursor(ctx context.Context, cursor *mongo.Cursor) {
	if err := cursor.Close(ctx); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while closing cursor")
	}
}
