package dto

import (
	"time"

	"streamhub/domain/model"
)

type ReqRegister struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required,email"`
	Password string `form:"password" binding:"required"`
	FullName string `form:"fullName" binding:"required"`
}

type ReqLogin struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password" binding:"required"`
}

type ReqChangePassword struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required"`
}

type ReqUpdateAccount struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
}

type ReqRefreshToken struct {
	RefreshToken string `json:"refreshToken"`
}

// TokenPair is an access/refresh credential pair minted together.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginData is the login response payload.
type LoginData struct {
	User model.User `json:"user"`
	TokenPair
}

// ChannelProfile is the composed channel-page record.
type ChannelProfile struct {
	ID                        string         `bson:"_id" json:"_id"`
	FullName                  string         `bson:"fullName" json:"fullName"`
	Username                  string         `bson:"username" json:"username"`
	Email                     string         `bson:"email" json:"email"`
	Avatar                    model.AssetRef `bson:"avatar" json:"avatar"`
	CoverImage                model.AssetRef `bson:"coverImage" json:"coverImage"`
	SubscriberCount           int64          `bson:"subscriberCount" json:"subscriberCount"`
	ChannelsSubscribedToCount int64          `bson:"channelsSubscribedToCount" json:"channelsSubscribedToCount"`
	IsSubscribed              bool           `bson:"isSubscribed" json:"isSubscribed"`
	CreatedAt                 time.Time      `bson:"createdAt" json:"createdAt"`
}

// OwnerSummary is the projected owner join used across feeds.
type OwnerSummary struct {
	ID       string         `bson:"_id" json:"_id"`
	Username string         `bson:"username" json:"username"`
	FullName string         `bson:"fullName,omitempty" json:"fullName,omitempty"`
	Avatar   model.AssetRef `bson:"avatar" json:"avatar"`
}

// WatchHistoryDoc carries the joined watch-history array off the user
// document.
type WatchHistoryDoc struct {
	WatchHistory []VideoWithOwner `bson:"watchHistory" json:"watchHistory"`
}
