package persistence

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"streamhub/domain/query"
	"streamhub/infrastructure/logger"
)

// NewMongoDb connects a client against the configured instance.
func NewMongoDb(host, port, user, password, name string) (*mongo.Client, error) {
	var uri string
	if user != "" {
		uri = fmt.Sprintf("mongodb://%s:%s@%s:%s/%s?authSource=admin", user, password, host, port, name)
	} else {
		uri = fmt.Sprintf("mongodb://%s:%s/%s", host, port, name)
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetServerSelectionTimeout(5 * time.Second))
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Error while connecting to MongoDB")
		return nil, err
	}
	return client, nil
}

// EnsureIndexes creates the uniqueness constraints the toggle and identity
// invariants rely on. Safe to run at every startup.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := options.Index().SetUnique(true)

	users := []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: unique},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(query.Users).Indexes().CreateMany(ctx, users); err != nil {
		return fmt.Errorf("users indexes: %w", err)
	}

	// One like per (target, actor) pair, per target kind. Partial filters
	// keep the unique key from colliding across kinds.
	likeTargets := []string{"video", "comment", "tweet"}
	likeIdx := make([]mongo.IndexModel, 0, len(likeTargets))
	for _, target := range likeTargets {
		likeIdx = append(likeIdx, mongo.IndexModel{
			Keys: bson.D{{Key: target, Value: 1}, {Key: "likedBy", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.D{{Key: target, Value: bson.D{{Key: "$exists", Value: true}}}}),
		})
	}
	if _, err := db.Collection(query.Likes).Indexes().CreateMany(ctx, likeIdx); err != nil {
		return fmt.Errorf("likes indexes: %w", err)
	}

	subs := []mongo.IndexModel{
		{Keys: bson.D{{Key: "channel", Value: 1}, {Key: "subscriber", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(query.Subscriptions).Indexes().CreateMany(ctx, subs); err != nil {
		return fmt.Errorf("subscriptions indexes: %w", err)
	}

	sessions := []mongo.IndexModel{
		{Keys: bson.D{{Key: "userId", Value: 1}}, Options: options.Index().SetUnique(true)},
	}
	if _, err := db.Collection(query.Sessions).Indexes().CreateMany(ctx, sessions); err != nil {
		return fmt.Errorf("sessions indexes: %w", err)
	}

	comments := []mongo.IndexModel{
		{Keys: bson.D{{Key: "video", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(query.Comments).Indexes().CreateMany(ctx, comments); err != nil {
		return fmt.Errorf("comments indexes: %w", err)
	}

	videos := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner", Value: 1}, {Key: "createdAt", Value: -1}}},
	}
	if _, err := db.Collection(query.Videos).Indexes().CreateMany(ctx, videos); err != nil {
		return fmt.Errorf("videos indexes: %w", err)
	}

	return nil
}
