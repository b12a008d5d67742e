package usecase_test

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/v2/bson"

	"streamhub/domain/dto"
	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
)

// Mock implementations

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	args := m.Called(ctx, username)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) GetByLogin(ctx context.Context, username, email string) (model.User, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	args := m.Called(ctx, username, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (model.User, error) {
	args := m.Called(ctx, id, fullName, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.AssetRef) (model.User, error) {
	args := m.Called(ctx, id, avatar)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.AssetRef) (model.User, error) {
	args := m.Called(ctx, id, cover)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserRepository) AddWatchEntry(ctx context.Context, id, videoID bson.ObjectID) error {
	args := m.Called(ctx, id, videoID)
	return args.Error(0)
}

type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) Save(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockSessionRepository) GetByUserID(ctx context.Context, userID bson.ObjectID) (model.Session, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Session), args.Error(1)
}

func (m *MockSessionRepository) DeleteByUserID(ctx context.Context, userID bson.ObjectID) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type MockVideoRepository struct {
	mock.Mock
}

func (m *MockVideoRepository) Create(ctx context.Context, video model.Video) (model.Video, error) {
	args := m.Called(ctx, video)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Video, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Update(ctx context.Context, id bson.ObjectID, title, description string, thumbnail *model.AssetRef) (model.Video, error) {
	args := m.Called(ctx, id, title, description, thumbnail)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockVideoRepository) SetPublished(ctx context.Context, id bson.ObjectID, published bool) (model.Video, error) {
	args := m.Called(ctx, id, published)
	return args.Get(0).(model.Video), args.Error(1)
}

func (m *MockVideoRepository) IncrementViews(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTweetRepository struct {
	mock.Mock
}

func (m *MockTweetRepository) Create(ctx context.Context, tweet model.Tweet) (model.Tweet, error) {
	args := m.Called(ctx, tweet)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Tweet, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Tweet, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Tweet), args.Error(1)
}

func (m *MockTweetRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment model.Comment) (model.Comment, error) {
	args := m.Called(ctx, comment)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.Comment, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) UpdateContent(ctx context.Context, id bson.ObjectID, content string) (model.Comment, error) {
	args := m.Called(ctx, id, content)
	return args.Get(0).(model.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id bson.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) ListIDsByVideo(ctx context.Context, videoID bson.ObjectID) ([]bson.ObjectID, error) {
	args := m.Called(ctx, videoID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]bson.ObjectID), args.Error(1)
}

func (m *MockCommentRepository) DeleteByVideo(ctx context.Context, videoID bson.ObjectID) error {
	args := m.Called(ctx, videoID)
	return args.Error(0)
}

type MockLikeRepository struct {
	mock.Mock
}

func (m *MockLikeRepository) Toggle(ctx context.Context, target model.LikeTarget, likedBy bson.ObjectID) (bool, error) {
	args := m.Called(ctx, target, likedBy)
	return args.Bool(0), args.Error(1)
}

func (m *MockLikeRepository) DeleteByTarget(ctx context.Context, target model.LikeTarget) error {
	args := m.Called(ctx, target)
	return args.Error(0)
}

func (m *MockLikeRepository) DeleteByComments(ctx context.Context, commentIDs []bson.ObjectID) error {
	args := m.Called(ctx, commentIDs)
	return args.Error(0)
}

type MockSubscriptionRepository struct {
	mock.Mock
}

func (m *MockSubscriptionRepository) Toggle(ctx context.Context, channel, subscriber bson.ObjectID) (bool, error) {
	args := m.Called(ctx, channel, subscriber)
	return args.Bool(0), args.Error(1)
}

type MockViewRepository struct {
	mock.Mock
}

func (m *MockViewRepository) One(ctx context.Context, view query.View, out any) error {
	args := m.Called(ctx, view, out)
	return args.Error(0)
}

func (m *MockViewRepository) All(ctx context.Context, view query.View, out any) error {
	args := m.Called(ctx, view, out)
	return args.Error(0)
}

func (m *MockViewRepository) Page(ctx context.Context, view query.View, req query.PageRequest, out any) (query.PageInfo, error) {
	args := m.Called(ctx, view, req, out)
	return args.Get(0).(query.PageInfo), args.Error(1)
}

type MockAssetStorage struct {
	mock.Mock
}

func (m *MockAssetStorage) Upload(ctx context.Context, localPath string, kind repository.MediaKind) (model.AssetRef, error) {
	args := m.Called(ctx, localPath, kind)
	return args.Get(0).(model.AssetRef), args.Error(1)
}

func (m *MockAssetStorage) Delete(ctx context.Context, storageID string) error {
	args := m.Called(ctx, storageID)
	return args.Error(0)
}

type MockStatsCache struct {
	mock.Mock
}

func (m *MockStatsCache) Get(ctx context.Context, channelID bson.ObjectID) (dto.ChannelStats, bool) {
	args := m.Called(ctx, channelID)
	return args.Get(0).(dto.ChannelStats), args.Bool(1)
}

func (m *MockStatsCache) Set(ctx context.Context, channelID bson.ObjectID, stats dto.ChannelStats) {
	m.Called(ctx, channelID, stats)
}

func (m *MockStatsCache) Invalidate(ctx context.Context, channelID bson.ObjectID) {
	m.Called(ctx, channelID)
}
