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

type ILikeUsecase interface {
	ToggleVideo(ctx context.Context, videoID string, actor bson.ObjectID) (dto.ToggleState, error)
	ToggleComment(ctx context.Context, commentID string, actor bson.ObjectID) (dto.ToggleState, error)
	ToggleTweet(ctx context.Context, tweetID string, actor bson.ObjectID) (dto.ToggleState, error)
	LikedVideos(ctx context.Context, viewerID bson.ObjectID) ([]dto.LikedVideo, error)
}

type likeUsecase struct {
	likeRepo repository.ILike
	viewRepo repository.IView
}

func NewLikeUsecase(likeRepo repository.ILike, viewRepo repository.IView) ILikeUsecase {
	return &likeUsecase{likeRepo: likeRepo, viewRepo: viewRepo}
}

func (u *likeUsecase) ToggleVideo(ctx context.Context, videoID string, actor bson.ObjectID) (dto.ToggleState, error) {
	return u.toggle(ctx, videoID, "Invalid video id", model.VideoTarget, actor)
}

func (u *likeUsecase) ToggleComment(ctx context.Context, commentID string, actor bson.ObjectID) (dto.ToggleState, error) {
	return u.toggle(ctx, commentID, "Invalid comment id", model.CommentTarget, actor)
}

func (u *likeUsecase) ToggleTweet(ctx context.Context, tweetID string, actor bson.ObjectID) (dto.ToggleState, error) {
	return u.toggle(ctx, tweetID, "Invalid tweet id", model.TweetTarget, actor)
}

func (u *likeUsecase) LikedVideos(ctx context.Context, viewerID bson.ObjectID) ([]dto.LikedVideo, error) {
	liked := []dto.LikedVideo{}
	if err := u.viewRepo.All(ctx, query.LikedVideos(viewerID.Hex()), &liked); err != nil {
		return nil, err
	}
	return liked, nil
}

func (u *likeUsecase) toggle(ctx context.Context, rawID, invalidMsg string, target func(bson.ObjectID) model.LikeTarget, actor bson.ObjectID) (dto.ToggleState, error) {
	id, err := bson.ObjectIDFromHex(rawID)
	if err != nil {
		return dto.ToggleState{}, apperror.New(apperror.InvalidInput, invalidMsg)
	}

	active, err := u.likeRepo.Toggle(ctx, target(id), actor)
	if err != nil {
		return dto.ToggleState{}, err
	}
	return dto.ToggleState{Active: active}, nil
}
