package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/usecase"
)

func TestCommentUsecase_Add_MissingVideo(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	commentRepo := new(MockCommentRepository)

	videoID := bson.NewObjectID()
	videoRepo.On("GetByID", mock.Anything, videoID).
		Return(model.Video{}, apperror.New(apperror.NotFound, "video not found"))

	uc := usecase.NewCommentUsecase(commentRepo, videoRepo, new(MockLikeRepository), new(MockViewRepository))
	_, err := uc.Add(context.Background(), videoID.Hex(), bson.NewObjectID(), dto.ReqContent{Content: "nice"})

	assert.Equal(t, apperror.NotFound, apperror.KindOf(err))
	commentRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCommentUsecase_Add(t *testing.T) {
	videoRepo := new(MockVideoRepository)
	commentRepo := new(MockCommentRepository)

	videoID := bson.NewObjectID()
	owner := bson.NewObjectID()

	videoRepo.On("GetByID", mock.Anything, videoID).Return(model.Video{ID: videoID}, nil)
	commentRepo.On("Create", mock.Anything, mock.MatchedBy(func(c model.Comment) bool {
		return c.Video == videoID && c.Owner == owner && c.Content == "nice"
	})).Return(model.Comment{ID: bson.NewObjectID(), Video: videoID, Owner: owner, Content: "nice"}, nil)

	uc := usecase.NewCommentUsecase(commentRepo, videoRepo, new(MockLikeRepository), new(MockViewRepository))
	comment, err := uc.Add(context.Background(), videoID.Hex(), owner, dto.ReqContent{Content: "nice"})

	require.NoError(t, err)
	assert.Equal(t, "nice", comment.Content)
	commentRepo.AssertExpectations(t)
}

func TestCommentUsecase_Update_ForbiddenForNonOwner(t *testing.T) {
	commentRepo := new(MockCommentRepository)

	commentID := bson.NewObjectID()
	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(model.Comment{ID: commentID, Owner: bson.NewObjectID()}, nil)

	uc := usecase.NewCommentUsecase(commentRepo, new(MockVideoRepository), new(MockLikeRepository), new(MockViewRepository))
	_, err := uc.Update(context.Background(), commentID.Hex(), bson.NewObjectID(), dto.ReqContent{Content: "edit"})

	assert.Equal(t, apperror.Forbidden, apperror.KindOf(err))
	commentRepo.AssertNotCalled(t, "UpdateContent", mock.Anything, mock.Anything, mock.Anything)
}

func TestCommentUsecase_Delete_RemovesLikes(t *testing.T) {
	commentRepo := new(MockCommentRepository)
	likeRepo := new(MockLikeRepository)

	owner := bson.NewObjectID()
	commentID := bson.NewObjectID()

	commentRepo.On("GetByID", mock.Anything, commentID).
		Return(model.Comment{ID: commentID, Owner: owner}, nil)
	commentRepo.On("Delete", mock.Anything, commentID).Return(nil)
	likeRepo.On("DeleteByTarget", mock.Anything, model.CommentTarget(commentID)).Return(nil)

	uc := usecase.NewCommentUsecase(commentRepo, new(MockVideoRepository), likeRepo, new(MockViewRepository))
	err := uc.Delete(context.Background(), commentID.Hex(), owner)

	require.NoError(t, err)
	likeRepo.AssertExpectations(t)
}
