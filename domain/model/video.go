package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

type Video struct {
	ID          bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	VideoFile   AssetRef      `bson:"videoFile" json:"videoFile"`
	Thumbnail   AssetRef      `bson:"thumbnail" json:"thumbnail"`
	Title       string        `bson:"title" json:"title"`
	Description string        `bson:"description" json:"description"`
	Duration    float64       `bson:"duration" json:"duration"`
	Views       int64         `bson:"views" json:"views"`
	IsPublished bool          `bson:"isPublished" json:"isPublished"`
	Owner       bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt   time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type Tweet struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string        `bson:"content" json:"content"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type Comment struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Content   string        `bson:"content" json:"content"`
	Video     bson.ObjectID `bson:"video" json:"video"`
	Owner     bson.ObjectID `bson:"owner" json:"owner"`
	CreatedAt time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time     `bson:"updatedAt" json:"updatedAt"`
}

type Subscription struct {
	ID         bson.ObjectID `bson:"_id,omitempty" json:"_id"`
	Channel    bson.ObjectID `bson:"channel" json:"channel"`
	Subscriber bson.ObjectID `bson:"subscriber" json:"subscriber"`
	CreatedAt  time.Time     `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time     `bson:"updatedAt" json:"updatedAt"`
}
