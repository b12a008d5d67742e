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
	"streamhub/infrastructure/token"
	"streamhub/infrastructure/utils"
)

type IUserUsecase interface {
	Register(ctx context.Context, req dto.ReqRegister, avatarPath, coverPath string) (model.User, error)
	Login(ctx context.Context, req dto.ReqLogin) (dto.LoginData, error)
	Logout(ctx context.Context, userID bson.ObjectID) error
	Refresh(ctx context.Context, presented string) (dto.TokenPair, error)
	ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ReqChangePassword) error
	UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.ReqUpdateAccount) (model.User, error)
	UpdateAvatar(ctx context.Context, user model.User, localPath string) (model.User, error)
	UpdateCoverImage(ctx context.Context, user model.User, localPath string) (model.User, error)
	ChannelProfile(ctx context.Context, username, viewerID string) (dto.ChannelProfile, error)
	WatchHistory(ctx context.Context, user model.User) ([]dto.VideoWithOwner, error)
}

type userUsecase struct {
	userRepo    repository.IUser
	sessionRepo repository.ISession
	viewRepo    repository.IView
	assets      repository.IAssetStorage
	tokens      *token.Manager
}

func NewUserUsecase(
	userRepo repository.IUser,
	sessionRepo repository.ISession,
	viewRepo repository.IView,
	assets repository.IAssetStorage,
	tokens *token.Manager,
) IUserUsecase {
	return &userUsecase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		viewRepo:    viewRepo,
		assets:      assets,
		tokens:      tokens,
	}
}

func (u *userUsecase) Register(ctx context.Context, req dto.ReqRegister, avatarPath, coverPath string) (model.User, error) {
	exists, err := u.userRepo.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return model.User{}, err
	}
	if exists {
		return model.User{}, apperror.New(apperror.Conflict, "User with email or username already exists")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return model.User{}, apperror.Wrap(apperror.Internal, "Internal server error", err)
	}

	avatar, err := u.assets.Upload(ctx, avatarPath, repository.MediaImage)
	if err != nil {
		return model.User{}, apperror.Wrap(apperror.Internal, "Error while uploading avatar", err)
	}

	var cover model.AssetRef
	if coverPath != "" {
		cover, err = u.assets.Upload(ctx, coverPath, repository.MediaImage)
		if err != nil {
			u.deleteAsset(ctx, avatar)
			return model.User{}, apperror.Wrap(apperror.Internal, "Error while uploading cover image", err)
		}
	}

	user, err := u.userRepo.Create(ctx, model.User{
		Username:   req.Username,
		Email:      req.Email,
		FullName:   req.FullName,
		Password:   hash,
		Avatar:     avatar,
		CoverImage: cover,
	})
	if err != nil {
		u.deleteAsset(ctx, avatar)
		u.deleteAsset(ctx, cover)
		return model.User{}, err
	}
	return user, nil
}

func (u *userUsecase) Login(ctx context.Context, req dto.ReqLogin) (dto.LoginData, error) {
	if req.Username == "" && req.Email == "" {
		return dto.LoginData{}, apperror.New(apperror.InvalidInput, "Username or email is required")
	}

	user, err := u.userRepo.GetByLogin(ctx, req.Username, req.Email)
	if err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return dto.LoginData{}, apperror.New(apperror.NotFound, "User does not exist")
		}
		return dto.LoginData{}, err
	}
	if !utils.CheckPassword(user.Password, req.Password) {
		return dto.LoginData{}, apperror.New(apperror.Unauthorized, "Invalid user credentials")
	}

	pair, err := u.issueSession(ctx, user)
	if err != nil {
		return dto.LoginData{}, err
	}
	user.Password = ""
	return dto.LoginData{User: user, TokenPair: pair}, nil
}

func (u *userUsecase) Logout(ctx context.Context, userID bson.ObjectID) error {
	return u.sessionRepo.DeleteByUserID(ctx, userID)
}

// Refresh rotates the refresh token: the presented value must match the
// stored session verbatim. A valid-but-mismatched token means it was
// already rotated, so the whole session is revoked.
func (u *userUsecase) Refresh(ctx context.Context, presented string) (dto.TokenPair, error) {
	if presented == "" {
		return dto.TokenPair{}, apperror.New(apperror.Unauthorized, "Unauthorized request")
	}

	claimedID, err := u.tokens.VerifyRefresh(presented)
	if err != nil {
		return dto.TokenPair{}, apperror.Wrap(apperror.Unauthorized, "Invalid refresh token", err)
	}
	userID, err := bson.ObjectIDFromHex(claimedID)
	if err != nil {
		return dto.TokenPair{}, apperror.New(apperror.Unauthorized, "Invalid refresh token")
	}

	session, err := u.sessionRepo.GetByUserID(ctx, userID)
	if err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return dto.TokenPair{}, apperror.New(apperror.Unauthorized, "Invalid refresh token")
		}
		return dto.TokenPair{}, err
	}
	if session.Token != presented {
		// Token reuse. Revoke the session so neither copy works.
		if err := u.sessionRepo.DeleteByUserID(ctx, userID); err != nil {
			logger.GetLogger().WithField("error", err).Error("Error revoking reused session")
		}
		return dto.TokenPair{}, apperror.New(apperror.Unauthorized, "Refresh token is expired or used")
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return dto.TokenPair{}, err
	}
	return u.issueSession(ctx, user)
}

func (u *userUsecase) ChangePassword(ctx context.Context, userID bson.ObjectID, req dto.ReqChangePassword) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if !utils.CheckPassword(user.Password, req.OldPassword) {
		return apperror.New(apperror.InvalidInput, "Invalid old password")
	}

	hash, err := utils.HashPassword(req.NewPassword)
	if err != nil {
		return apperror.Wrap(apperror.Internal, "Internal server error", err)
	}
	return u.userRepo.UpdatePassword(ctx, userID, hash)
}

func (u *userUsecase) UpdateAccount(ctx context.Context, userID bson.ObjectID, req dto.ReqUpdateAccount) (model.User, error) {
	return u.userRepo.UpdateAccount(ctx, userID, req.FullName, req.Email)
}

func (u *userUsecase) UpdateAvatar(ctx context.Context, user model.User, localPath string) (model.User, error) {
	avatar, err := u.assets.Upload(ctx, localPath, repository.MediaImage)
	if err != nil {
		return model.User{}, apperror.Wrap(apperror.Internal, "Error while uploading avatar", err)
	}

	updated, err := u.userRepo.UpdateAvatar(ctx, user.ID, avatar)
	if err != nil {
		u.deleteAsset(ctx, avatar)
		return model.User{}, err
	}
	u.deleteAsset(ctx, user.Avatar)
	return updated, nil
}

func (u *userUsecase) UpdateCoverImage(ctx context.Context, user model.User, localPath string) (model.User, error) {
	cover, err := u.assets.Upload(ctx, localPath, repository.MediaImage)
	if err != nil {
		return model.User{}, apperror.Wrap(apperror.Internal, "Error while uploading cover image", err)
	}

	updated, err := u.userRepo.UpdateCoverImage(ctx, user.ID, cover)
	if err != nil {
		u.deleteAsset(ctx, cover)
		return model.User{}, err
	}
	u.deleteAsset(ctx, user.CoverImage)
	return updated, nil
}

func (u *userUsecase) ChannelProfile(ctx context.Context, username, viewerID string) (dto.ChannelProfile, error) {
	if username == "" {
		return dto.ChannelProfile{}, apperror.New(apperror.InvalidInput, "Username is required")
	}

	var profile dto.ChannelProfile
	err := u.viewRepo.One(ctx, query.ChannelProfile(username, viewerID), &profile)
	if err != nil {
		if apperror.KindOf(err) == apperror.NotFound {
			return dto.ChannelProfile{}, apperror.New(apperror.NotFound, "Channel does not exist")
		}
		return dto.ChannelProfile{}, err
	}
	return profile, nil
}

// WatchHistory returns the viewer's watched videos in watch order. The
// store-side join does not guarantee order, so it is restored from the
// user's id list here.
func (u *userUsecase) WatchHistory(ctx context.Context, user model.User) ([]dto.VideoWithOwner, error) {
	var doc dto.WatchHistoryDoc
	if err := u.viewRepo.One(ctx, query.WatchHistory(user.ID.Hex()), &doc); err != nil {
		return nil, err
	}

	byID := make(map[string]dto.VideoWithOwner, len(doc.WatchHistory))
	for _, video := range doc.WatchHistory {
		byID[video.ID] = video
	}
	ordered := make([]dto.VideoWithOwner, 0, len(doc.WatchHistory))
	for _, id := range user.WatchHistory {
		if video, ok := byID[id.Hex()]; ok {
			ordered = append(ordered, video)
		}
	}
	return ordered, nil
}

func (u *userUsecase) issueSession(ctx context.Context, user model.User) (dto.TokenPair, error) {
	access, err := u.tokens.IssueAccess(user)
	if err != nil {
		return dto.TokenPair{}, apperror.Wrap(apperror.Internal, "Error while generating tokens", err)
	}
	refresh, err := u.tokens.IssueRefresh(user.ID.Hex())
	if err != nil {
		return dto.TokenPair{}, apperror.Wrap(apperror.Internal, "Error while generating tokens", err)
	}

	session := model.Session{
		UserID:   user.ID,
		Token:    refresh,
		IssuedAt: utils.GetCurrentTime(),
	}
	if err := u.sessionRepo.Save(ctx, session); err != nil {
		return dto.TokenPair{}, err
	}
	return dto.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *userUsecase) deleteAsset(ctx context.Context, ref model.AssetRef) {
	if ref.StorageID == "" {
		return
	}
	if err := u.assets.Delete(ctx, ref.StorageID); err != nil {
		logger.GetLogger().WithField("error", err).WithField("storageId", ref.StorageID).
			Warn("Error deleting stored asset")
	}
}
