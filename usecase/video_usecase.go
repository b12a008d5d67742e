package usecase

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/apperror"
	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
)

type IVideoUsecase interface {
	Feed(ctx context.Context, req dto.ReqVideoFeed) (dto.Paged, error)
	Publish(ctx context.Context, owner bson.ObjectID, req dto.ReqPublishVideo, videoPath, thumbnailPath string) (model.Video, error)
	Get(ctx context.Context, videoID, viewerID string, viewer *model.User) (dto.VideoDetail, error)
	Update(ctx context.Context, videoID string, actor bson.ObjectID, req dto.ReqUpdateVideo, thumbnailPath string) (model.Video, error)
	Delete(ctx context.Context, videoID string, actor bson.ObjectID) error
	TogglePublish(ctx context.Context, videoID string, actor bson.ObjectID) (model.Video, error)
}

type videoUsecase struct {
	videoRepo   repository.IVideo
	commentRepo repository.IComment
	likeRepo    repository.ILike
	userRepo    repository.IUser
	viewRepo    repository.IView
	assets      repository.IAssetStorage
	stats       repository.IStatsCache
}

func NewVideoUsecase(
	videoRepo repository.IVideo,
	commentRepo repository.IComment,
	likeRepo repository.ILike,
	userRepo repository.IUser,
	viewRepo repository.IView,
	assets repository.IAssetStorage,
	stats repository.IStatsCache,
) IVideoUsecase {
	return &videoUsecase{
		videoRepo:   videoRepo,
		commentRepo: commentRepo,
		likeRepo:    likeRepo,
		userRepo:    userRepo,
		viewRepo:    viewRepo,
		assets:      assets,
		stats:       stats,
	}
}

func (u *videoUsecase) Feed(ctx context.Context, req dto.ReqVideoFeed) (dto.Paged, error) {
	if req.UserID != "" {
		if _, err := bson.ObjectIDFromHex(req.UserID); err != nil {
			return dto.Paged{}, apperror.New(apperror.InvalidInput, "Invalid user id")
		}
	}

	view := query.VideoFeed(query.FeedOptions{
		Query:    req.Query,
		OwnerID:  req.UserID,
		SortBy:   req.SortBy,
		SortDesc: req.SortType != "asc",
	})

	docs := []dto.VideoFeedItem{}
	info, err := u.viewRepo.Page(ctx, view, req.PageRequest(), &docs)
	if err != nil {
		return dto.Paged{}, err
	}
	return dto.Paged{Docs: docs, PageInfo: info}, nil
}

func (u *videoUsecase) Publish(ctx context.Context, owner bson.ObjectID, req dto.ReqPublishVideo, videoPath, thumbnailPath string) (model.Video, error) {
	videoFile, err := u.assets.Upload(ctx, videoPath, repository.MediaVideo)
	if err != nil {
		return model.Video{}, apperror.Wrap(apperror.Internal, "Error while uploading video file", err)
	}
	thumbnail, err := u.assets.Upload(ctx, thumbnailPath, repository.MediaImage)
	if err != nil {
		u.deleteAsset(ctx, videoFile)
		return model.Video{}, apperror.Wrap(apperror.Internal, "Error while uploading thumbnail", err)
	}

	video, err := u.videoRepo.Create(ctx, model.Video{
		VideoFile:   videoFile,
		Thumbnail:   thumbnail,
		Title:       req.Title,
		Description: req.Description,
		Duration:    req.Duration,
		IsPublished: true,
		Owner:       owner,
	})
	if err != nil {
		u.deleteAsset(ctx, videoFile)
		u.deleteAsset(ctx, thumbnail)
		return model.Video{}, err
	}
	u.stats.Invalidate(ctx, owner)
	return video, nil
}

// Get composes the video detail view. For an authenticated viewer it also
// counts the view and appends the video to their watch history.
func (u *videoUsecase) Get(ctx context.Context, videoID, viewerID string, viewer *model.User) (dto.VideoDetail, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return dto.VideoDetail{}, apperror.New(apperror.InvalidInput, "Invalid video id")
	}

	var detail dto.VideoDetail
	if err := u.viewRepo.One(ctx, query.VideoDetail(videoID, viewerID), &detail); err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return dto.VideoDetail{}, apperror.New(apperror.NotFound, "Video does not exist")
		}
		return dto.VideoDetail{}, err
	}

	if viewer != nil {
		if err := u.videoRepo.IncrementViews(ctx, id); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Error counting view")
		}
		if err := u.userRepo.AddWatchEntry(ctx, viewer.ID, id); err != nil {
			logger.GetLogger().WithField("error", err).Warn("Error recording watch history")
		}
	}
	return detail, nil
}

func (u *videoUsecase) Update(ctx context.Context, videoID string, actor bson.ObjectID, req dto.ReqUpdateVideo, thumbnailPath string) (model.Video, error) {
	video, err := u.ownedVideo(ctx, videoID, actor)
	if err != nil {
		return model.Video{}, err
	}

	var thumbnail *model.AssetRef
	if thumbnailPath != "" {
		uploaded, err := u.assets.Upload(ctx, thumbnailPath, repository.MediaImage)
		if err != nil {
			return model.Video{}, apperror.Wrap(apperror.Internal, "Error while uploading thumbnail", err)
		}
		thumbnail = &uploaded
	}

	updated, err := u.videoRepo.Update(ctx, video.ID, req.Title, req.Description, thumbnail)
	if err != nil {
		if thumbnail != nil {
			u.deleteAsset(ctx, *thumbnail)
		}
		return model.Video{}, err
	}
	if thumbnail != nil {
		u.deleteAsset(ctx, video.Thumbnail)
	}
	return updated, nil
}

// Delete removes the video with everything hanging off it: its comments,
// the likes of those comments, its own likes, and its stored assets.
func (u *videoUsecase) Delete(ctx context.Context, videoID string, actor bson.ObjectID) error {
	video, err := u.ownedVideo(ctx, videoID, actor)
	if err != nil {
		return err
	}

	commentIDs, err := u.commentRepo.ListIDsByVideo(ctx, video.ID)
	if err != nil {
		return err
	}
	if err := u.likeRepo.DeleteByComments(ctx, commentIDs); err != nil {
		return err
	}
	if err := u.commentRepo.DeleteByVideo(ctx, video.ID); err != nil {
		return err
	}
	if err := u.likeRepo.DeleteByTarget(ctx, model.VideoTarget(video.ID)); err != nil {
		return err
	}
	if err := u.videoRepo.Delete(ctx, video.ID); err != nil {
		return err
	}

	u.deleteAsset(ctx, video.VideoFile)
	u.deleteAsset(ctx, video.Thumbnail)
	u.stats.Invalidate(ctx, video.Owner)
	return nil
}

func (u *videoUsecase) TogglePublish(ctx context.Context, videoID string, actor bson.ObjectID) (model.Video, error) {
	video, err := u.ownedVideo(ctx, videoID, actor)
	if err != nil {
		return model.Video{}, err
	}
	return u.videoRepo.SetPublished(ctx, video.ID, !video.IsPublished)
}

// ownedVideo loads the video and enforces that actor owns it.
func (u *videoUsecase) ownedVideo(ctx context.Context, videoID string, actor bson.ObjectID) (model.Video, error) {
	id, err := bson.ObjectIDFromHex(videoID)
	if err != nil {
		return model.Video{}, apperror.New(apperror.InvalidInput, "Invalid video id")
	}

	video, err := u.videoRepo.GetByID(ctx, id)
	if err != nil {
		return model.Video{}, err
	}
	if video.Owner != actor {
		return model.Video{}, apperror.New(apperror.Forbidden, "You are not allowed to modify this video")
	}
	return video, nil
}

func (u *videoUsecase) deleteAsset(ctx context.Context, ref model.AssetRef) {
	if ref.StorageID == "" {
		return
	}
	if err := u.assets.Delete(ctx, ref.StorageID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("storageId", ref.StorageID).
			Warn("Error deleting stored asset")
	}
}
