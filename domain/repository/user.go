package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"streamhub/domain/model"
)

type IUser interface {
	Create(ctx context.Context, user model.User) (model.User, error)
	GetByID(ctx context.Context, id bson.ObjectID) (model.User, error)
	GetByUsername(ctx context.Context, username string) (model.User, error)
	// GetByLogin matches the case-folded username or email.
	GetByLogin(ctx context.Context, username, email string) (model.User, error)
	ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error)
	UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (model.User, error)
	UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error
	UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.AssetRef) (model.User, error)
	UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.AssetRef) (model.User, error)
	// AddWatchEntry appends the video to the user's watch history unless it
	// is already present.
	AddWatchEntry(ctx context.Context, id, videoID bson.ObjectID) error
}

type ISession interface {
	// Save replaces the user's session record, invalidating any prior
	// refresh token.
	Save(ctx context.Context, session model.Session) error
	GetByUserID(ctx context.Context, userID bson.ObjectID) (model.Session, error)
	DeleteByUserID(ctx context.Context, userID bson.ObjectID) error
}
