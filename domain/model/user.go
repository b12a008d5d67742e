package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// AssetRef points at a binary asset held by the external object store.
type AssetRef struct {
	URL       string `bson:"url" json:"url"`
	StorageID string `bson:"storageId" json:"storageId,omitempty"`
}

type User struct {
	ID           bson.ObjectID   `bson:"_id,omitempty" json:"_id"`
	Username     string          `bson:"username" json:"username"`
	Email        string          `bson:"email" json:"email"`
	FullName     string          `bson:"fullName" json:"fullName"`
	Password     string          `bson:"password" json:"-"`
	Avatar       AssetRef        `bson:"avatar" json:"avatar"`
	CoverImage   AssetRef        `bson:"coverImage" json:"coverImage"`
	WatchHistory []bson.ObjectID `bson:"watchHistory,omitempty" json:"watchHistory,omitempty"`
	CreatedAt    time.Time       `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time       `bson:"updatedAt" json:"updatedAt"`
}
