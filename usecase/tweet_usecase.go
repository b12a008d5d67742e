package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
)

type ITweetUsecase interface {
	Create(ctx context.Context, owner bson.ObjectID, req dto.ReqContent) (model.Tweet, error)
	ListByUser(ctx context.Context, userID, viewerID string) ([]dto.TweetView, error)
	Update(ctx context.Context, tweetID string, actor bson.ObjectID, req dto.ReqContent) (model.Tweet, error)
	Delete(ctx context.Context, tweetID string, actor bson.ObjectID) error
}

type tweetUsecase struct {
	tweetRepo repository.ITweet
	likeRepo  repository.ILike
	viewRepo  repository.IView
}

func NewTweetUsecase(tweetRepo repository.ITweet, likeRepo repository.ILike, viewRepo repository.IView) ITweetUsecase {
	return &tweetUsecase{tweetRepo: tweetRepo, likeRepo: likeRepo, viewRepo: viewRepo}
}

func (u *tweetUsecase) Create(ctx context.Context, owner bson.ObjectID, req dto.ReqContent) (model.Tweet, error) {
	return u.tweetRepo.Create(ctx, model.Tweet{Content: req.Content, Owner: owner})
}

func (u *tweetUsecase) ListByUser(ctx context.Context, userID, viewerID string) ([]dto.TweetView, error) {
	if _, err := bson.ObjectIDFromHex(userID); err != nil {
		return nil, apperror.New(apperror.InvalidInput, "Invalid user id")
	}

	tweets := []dto.TweetView{}
	if err := u.viewRepo.All(ctx, query.UserTweets(userID, viewerID), &tweets); err != nil {
		return nil, err
	}
	return tweets, nil
}

func (u *tweetUsecase) Update(ctx context.Context, tweetID string, actor bson.ObjectID, req dto.ReqContent) (model.Tweet, error) {
	tweet, err := u.ownedTweet(ctx, tweetID, actor)
	if err != nil {
		return model.Tweet{}, err
	}
	return u.tweetRepo.UpdateContent(ctx, tweet.ID, req.Content)
}

func (u *tweetUsecase) Delete(ctx context.Context, tweetID string, actor bson.ObjectID) error {
	tweet, err := u.ownedTweet(ctx, tweetID, actor)
	if err != nil {
		return err
	}
	if err := u.tweetRepo.Delete(ctx, tweet.ID); err != nil {
		return err
	}
	return u.likeRepo.DeleteByTarget(ctx, model.TweetTarget(tweet.ID))
}

func (u *tweetUsecase) ownedTweet(ctx context.Context, tweetID string, actor bson.ObjectID) (model.Tweet, error) {
	id, err := bson.ObjectIDFromHex(tweetID)
	if err != nil {
		return model.Tweet{}, apperror.New(apperror.InvalidInput, "Invalid tweet id")
	}

	tweet, err := u.tweetRepo.GetByID(ctx, id)
	if err != nil {
		return model.Tweet{}, err
	}
	if tweet.Owner != actor {
		return model.Tweet{}, apperror.New(apperror.Forbidden, "You are not allowed to modify this tweet")
	}
	return tweet, nil
}
