package dto

import (
	"time"

	"streamhub/domain/model"
	"streamhub/domain/query"
)

type ReqContent struct {
	Content string `json:"content" binding:"required"`
}

// ReqPage carries plain pagination query parameters.
type ReqPage struct {
	Page  int64 `form:"page"`
	Limit int64 `form:"limit"`
}

func (r ReqPage) PageRequest() query.PageRequest {
	return query.PageRequest{Page: r.Page, Limit: r.Limit}.Normalize()
}

// CommentView is one record of a video's comment feed.
type CommentView struct {
	ID         string       `bson:"_id" json:"_id"`
	Content    string       `bson:"content" json:"content"`
	Owner      OwnerSummary `bson:"owner" json:"owner"`
	LikesCount int64        `bson:"likesCount" json:"likesCount"`
	IsLiked    bool         `bson:"isLiked" json:"isLiked"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
}

// TweetView is one record of a user's tweet feed.
type TweetView struct {
	ID         string       `bson:"_id" json:"_id"`
	Content    string       `bson:"content" json:"content"`
	Owner      OwnerSummary `bson:"owner" json:"owner"`
	LikesCount int64        `bson:"likesCount" json:"likesCount"`
	IsLiked    bool         `bson:"isLiked" json:"isLiked"`
	CreatedAt  time.Time    `bson:"createdAt" json:"createdAt"`
}

// SubscriberDetails enriches a subscriber with its own channel totals.
type SubscriberDetails struct {
	ID                     string         `bson:"_id" json:"_id"`
	Username               string         `bson:"username" json:"username"`
	FullName               string         `bson:"fullName" json:"fullName"`
	Avatar                 model.AssetRef `bson:"avatar" json:"avatar"`
	SubscribedToSubscriber bool           `bson:"subscribedToSubscriber" json:"subscribedToSubscriber"`
	SubscriberCount        int64          `bson:"subscriberCount" json:"subscriberCount"`
}

// SubscriberItem is one record of a channel's subscriber list.
type SubscriberItem struct {
	Subscriber SubscriberDetails `bson:"subscriber" json:"subscriber"`
}

// SubscribedChannelDetails is a channel with its latest video.
type SubscribedChannelDetails struct {
	ID          string          `bson:"_id" json:"_id"`
	Username    string          `bson:"username" json:"username"`
	FullName    string          `bson:"fullName" json:"fullName"`
	Avatar      model.AssetRef  `bson:"avatar" json:"avatar"`
	LatestVideo *VideoWithOwner `bson:"latestVideo,omitempty" json:"latestVideo,omitempty"`
}

// SubscribedChannelItem is one record of a user's subscribed-channel list.
type SubscribedChannelItem struct {
	Channel SubscribedChannelDetails `bson:"channel" json:"channel"`
}

// ToggleState reports the existence state after a like or subscription
// toggle.
type ToggleState struct {
	Active bool `json:"active"`
}
