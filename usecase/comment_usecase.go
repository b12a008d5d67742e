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

type ICommentUsecase interface {
	ListByVideo(ctx context.Context, videoID, viewerID string, req dto.ReqPage) (dto.Paged, error)
	Add(ctx context.Context, videoID string, owner bson.ObjectID, req dto.ReqContent) (model.Comment, error)
	Update(ctx context.Context, commentID string, actor bson.ObjectID, req dto.ReqContent) (model.Comment, error)
	Delete(ctx context.Context, commentID string, actor bson.ObjectID) error
}

type commentUsecase struct {
	commentRepo repository.IComment
	videoRepo   repository.IVideo
	likeRepo    repository.ILike
	viewRepo    repository.IView
}

func NewCommentUsecase(
	commentRepo repository.IComment,
	videoRepo repository.IVideo,
	likeRepo repository.ILike,
	viewRepo repository.IView,
) ICommentUsecase {
	return &commentUsecase{
		commentRepo: commentRepo,
		videoRepo:   videoRepo,
		likeRepo:    likeRepo,
		viewRepo:    viewRepo,
	}
}

func (u *commentUsecase) ListByVideo(ctx context.Context, videoID, viewerID string, req dto.ReqPage) (dto.Paged, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return dto.Paged{}, apperror.New(apperror.InvalidInput, "Invalid video id")
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return dto.Paged{}, apperror.New(apperror.NotFound, "Video does not exist")
		}
		return dto.Paged{}, err
	}

	docs := []dto.CommentView{}
	info, err := u.viewRepo.Page(ctx, query.VideoComments(videoID, viewerID), req.PageRequest(), &docs)
	if err != nil {
		return dto.Paged{}, err
	}
	return dto.Paged{Docs: docs, PageInfo: info}, nil
}

func (u *commentUsecase) Add(ctx context.Context, videoID string, owner bson.ObjectID, req dto.ReqContent) (model.Comment, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Comment{}, apperror.New(apperror.InvalidInput, "Invalid video id")
	}
	if _, err := u.videoRepo.GetByID(ctx, id); err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return model.Comment{}, apperror.New(apperror.NotFound, "Video does not exist")
		}
		return model.Comment{}, err
	}

	return u.commentRepo.Create(ctx, model.Comment{
		Content: req.Content,
		Video:   id,
		Owner:   owner,
	})
}

func (u *commentUsecase) Update(ctx context.Context, commentID string, actor bson.ObjectID, req dto.ReqContent) (model.Comment, error) {
	comment, err := u.ownedComment(ctx, commentID, actor)
	if err != nil {
		return model.Comment{}, err
	}
	return u.commentRepo.UpdateContent(ctx, comment.ID, req.Content)
}

func (u *commentUsecase) Delete(ctx context.Context, commentID string, actor bson.ObjectID) error {
	comment, err := u.ownedComment(ctx, commentID, actor)
	if err != nil {
		return err
	}
	if err := u.commentRepo.Delete(ctx, comment.ID); err != nil {
		return err
	}
	return u.likeRepo.DeleteByTarget(ctx, model.CommentTarget(comment.ID))
}

func (u *commentUsecase) ownedComment(ctx context.Context, commentID string, actor bson.ObjectID) (model.Comment, error) {
	id, err := bson.ObjectIDFromHex(commentID)
	if err != nil {
		return model.Comment{}, apperror.New(apperror.InvalidInput, "Invalid comment id")
	}

	comment, err := u.commentRepo.GetByID(ctx, id)
	if err != nil {
		return model.Comment{}, err
	}
	if comment.Owner != actor {
		return model.Comment{}, apperror.New(apperror.Forbidden, "You are not allowed to modify this comment")
	}
	return comment, nil
}
