package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"streamhub/domain/model"
)

type IVideo interface {
	Create(ctx context.Context, video model.Video) (model.Video, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error)
	Update(ctx context.Context, id bson.ObjectID, title, description string, thumbnail *model.AssetRef) (model.Video, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	SetPublished(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error)
	IncrementViews(ctx context.Context, id bson.ObjectID) error
}

type ITweet interface {
	Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error)
	Delete(ctx context.Context, id bson.ObjectID) error
}

type IComment interface {
	Create(ctx context.Context, comment model.Comment) (model.Comment, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error)
	UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error)
	Delete(ctx context.Context, id bson.ObjectID) error
	ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error)
	DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error
}

type ILike interface {
	// Toggle removes the (target, actor) like when present and reports
	// active=false, or creates it and reports active=true. Concurrent
	// toggles on the same pair never produce a duplicate row.
	Toggle(ctx context.Context, target model.LikeTarget, likedBy bson.ObjectID) (active bool, err error)
	DeleteByTarget(ctx context.Context, target model.LikeTarget) error
	DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error
}

type ISubscription interface {
	// Toggle follows the same contract as ILike.Toggle for the
	// (channel, subscriber) pair.
	Toggle(ctx context.Context, channel, subscriber bson.ObjectID) (active bool, err error)
}
