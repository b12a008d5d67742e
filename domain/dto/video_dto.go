package dto

import (
	"time"

	"streamhub/domain/model"
	"streamhub/domain/query"
)

type ReqPublishVideo struct {
	Title       string  `form:"title" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Duration    float64 `form:"duration"`
}

type ReqUpdateVideo struct {
	Title       string `form:"title" binding:"required"`
	Description string `form:"description" binding:"required"`
}

// ReqVideoFeed carries the feed's query parameters.
type ReqVideoFeed struct {
	Page     int64  `form:"page"`
	Limit    int64  `form:"limit"`
	Query    string `form:"query"`
	SortBy   string `form:"sortBy"`
	SortType string `form:"sortType"`
	UserID   string `form:"userId"`
}

func (r ReqVideoFeed) PageRequest() query.PageRequest {
	return query.PageRequest{Page: r.Page, Limit: r.Limit}.Normalize()
}

// VideoOwner is the owner join on the video-detail view.
type VideoOwner struct {
	ID              string         `bson:"_id" json:"_id"`
	Username        string         `bson:"username" json:"username"`
	FullName        string         `bson:"fullName" json:"fullName"`
	Avatar          model.AssetRef `bson:"avatar" json:"avatar"`
	SubscriberCount int64          `bson:"subscriberCount" json:"subscriberCount"`
	IsSubscribed    bool           `bson:"isSubscribed" json:"isSubscribed"`
}

// VideoDetail is the composed single-video view.
type VideoDetail struct {
	ID          string         `bson:"_id" json:"_id"`
	VideoFile   model.AssetRef `bson:"videoFile" json:"videoFile"`
	Thumbnail   model.AssetRef `bson:"thumbnail" json:"thumbnail"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Views       int64          `bson:"views" json:"views"`
	Duration    float64        `bson:"duration" json:"duration"`
	Owner       VideoOwner     `bson:"owner" json:"owner"`
	LikesCount  int64          `bson:"likesCount" json:"likesCount"`
	IsLiked     bool           `bson:"isLiked" json:"isLiked"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// VideoFeedItem is one record of the published-video feed.
type VideoFeedItem struct {
	ID          string         `bson:"_id" json:"_id"`
	VideoFile   model.AssetRef `bson:"videoFile" json:"videoFile"`
	Thumbnail   model.AssetRef `bson:"thumbnail" json:"thumbnail"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Duration    float64        `bson:"duration" json:"duration"`
	Views       int64          `bson:"views" json:"views"`
	IsPublished bool           `bson:"isPublished" json:"isPublished"`
	Owner       OwnerSummary   `bson:"owner" json:"owner"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// VideoWithOwner is a video joined with its owner summary, as embedded in
// the liked-videos and watch-history views.
type VideoWithOwner struct {
	ID          string         `bson:"_id" json:"_id"`
	VideoFile   model.AssetRef `bson:"videoFile" json:"videoFile"`
	Thumbnail   model.AssetRef `bson:"thumbnail" json:"thumbnail"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Duration    float64        `bson:"duration" json:"duration"`
	Views       int64          `bson:"views" json:"views"`
	Owner       OwnerSummary   `bson:"owner" json:"owner"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// LikedVideo is one record of the liked-videos feed.
type LikedVideo struct {
	Video VideoWithOwner `bson:"video" json:"video"`
}

// ChannelVideo is one record of the dashboard's channel video list.
type ChannelVideo struct {
	ID          string         `bson:"_id" json:"_id"`
	VideoFile   model.AssetRef `bson:"videoFile" json:"videoFile"`
	Thumbnail   model.AssetRef `bson:"thumbnail" json:"thumbnail"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Duration    float64        `bson:"duration" json:"duration"`
	Views       int64          `bson:"views" json:"views"`
	IsPublished bool           `bson:"isPublished" json:"isPublished"`
	LikesCount  int64          `bson:"likesCount" json:"likesCount"`
	CreatedAt   time.Time      `bson:"createdAt" json:"createdAt"`
}

// ChannelStats aggregates a channel's dashboard totals.
type ChannelStats struct {
	TotalSubscribers int64 `json:"totalSubscribers"`
	TotalVideos      int64 `json:"totalVideos"`
	TotalLikes       int64 `json:"totalLikes"`
	TotalViews       int64 `json:"totalViews"`
}
