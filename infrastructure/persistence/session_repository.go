package persistence

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"streamhub/domain/model"
	"streamhub/domain/query"
	"streamhub/domain/repository"
	"streamhub/infrastructure/logger"
)

// SessionRepository keeps at most one refresh session per user. Save
// replaces any previous record so an old refresh token stops working
// the moment a new one is issued.
type SessionRepository struct {
	col *mongo.Collection
}

func NewSessionRepository(db *mongo.Database) repository.ISession {
	return &SessionRepository{col: db.Collection(query.Sessions)}
}

func (r *SessionRepository) Save(ctx context.Context, session model.Session) error {
	filter := bson.D{{Key: "userId", Value: session.UserID}}
	doc := bson.D{
		{Key: "userId", Value: session.UserID},
		{Key: "token", Value: session.Token},
		{Key: "issuedAt", Value: session.IssuedAt},
	}
	_, err := r.col.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while saving session")
		return classify(err, "session")
	}
	return nil
}

func (r *SessionRepository) GetByUserID(ctx context.Context, userID bson.ObjectID) (model.Session, error) {
	var session model.Session
	err := r.col.FindOne(ctx, bson.D{{Key: "userId", Value: userID}}).Decode(&session)
	if err != nil {
		return model.Session{}, classify(err, "session")
	}
	return session, nil
}

func (r *SessionRepository) DeleteByUserID(ctx context.Context, userID bson.ObjectID) error {
	if _, err := r.col.DeleteOne(ctx, bson.D{{Key: "userId", Value: userID}}); err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while deleting session")
		return classify(err, "session")
	}
	return nil
}
