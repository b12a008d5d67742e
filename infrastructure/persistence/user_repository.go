package persistence

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
	"streamhub/infrastructure/utils"
)

type UserRepository struct {
	col *mongo.Collection
}

func NewUserRepository(db *mongo.Database) repository.IUser {
	return &UserRepository{col: db.Collection(query.Users)}
}

func (r *UserRepository) Create(ctx context.Context, user model.User) (model.User, error) {
	now := utils.GetCurrentTime()
	user.Username = strings.ToLower(user.Username)
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now

	result, err := r.col.InsertOne(ctx, user)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while creating user")
		return model.User{}, classify(err, "user")
	}
	user.ID = result.InsertedID.(bson.ObjectID)
	return user, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id bson.ObjectID) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&user)
	if err != nil {
		return model.User{}, classify(err, "user")
	}
	return user, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (model.User, error) {
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "username", Value: strings.ToLower(username)}}).Decode(&user)
	if err != nil {
		return model.User{}, classify(err, "user")
	}
	return user, nil
}

func (r *UserRepository) GetByLogin(ctx context.Context, username, email string) (model.User, error) {
	or := bson.A{}
	if username != "" {
		or = append(or, bson.D{{Key: "username", Value: strings.ToLower(username)}})
	}
	if email != "" {
		or = append(or, bson.D{{Key: "email", Value: strings.ToLower(email)}})
	}
	var user model.User
	err := r.col.FindOne(ctx, bson.D{{Key: "$or", Value: or}}).Decode(&user)
	if err != nil {
		return model.User{}, classify(err, "user")
	}
	return user, nil
}

func (r *UserRepository) ExistsByUsernameOrEmail(ctx context.Context, username, email string) (bool, error) {
	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "username", Value: strings.ToLower(username)}},
		bson.D{{Key: "email", Value: strings.ToLower(email)}},
	}}}
	count, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while checking user existence")
		return false, classify(err, "user")
	}
	return count > 0, nil
}

func (r *UserRepository) UpdateAccount(ctx context.Context, id bson.ObjectID, fullName, email string) (model.User, error) {
	return r.findAndUpdate(ctx, id, bson.D{
		{Key: "fullName", Value: fullName},
		{Key: "email", Value: strings.ToLower(email)},
	})
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id bson.ObjectID, passwordHash string) error {
	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "password", Value: passwordHash},
		{Key: "updatedAt", Value: utils.GetCurrentTime()},
	}}}
	result, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating password")
		return classify(err, "user")
	}
	if result.MatchedCount == 0 {
		return classify(mongo.ErrNoDocuments, "user")
	}
	return nil
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id bson.ObjectID, avatar model.AssetRef) (model.User, error) {
	return r.findAndUpdate(ctx, id, bson.D{{Key: "avatar", Value: avatar}})
}

func (r *UserRepository) UpdateCoverImage(ctx context.Context, id bson.ObjectID, cover model.AssetRef) (model.User, error) {
	return r.findAndUpdate(ctx, id, bson.D{{Key: "coverImage", Value: cover}})
}

func (r *UserRepository) AddWatchEntry(ctx context.Context, id, videoID bson.ObjectID) error {
	update := bson.D{{Key: "$addToSet", Value: bson.D{{Key: "watchHistory", Value: videoID}}}}
	if _, err := r.col.UpdateOne(ctx, bson.D{{Key: "_id", Value: id}}, update); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while appending watch history")
		return classify(err, "user")
	}
	return nil
}

func (r *UserRepository) findAndUpdate(ctx context.Context, id bson.ObjectID, set bson.D) (model.User, error) {
	set = append(set, bson.E{Key: "updatedAt", Value: utils.GetCurrentTime()})
	update := bson.D{{Key: "$set", Value: set}}

	var user model.User
	err := r.col.FindOneAndUpdate(ctx, bson.D{{Key: "_id", Value: id}}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&user)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while updating user")
		return model.User{}, classify(err, "user")
	}
	return user, nil
}
