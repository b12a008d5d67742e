package query

import "strings"

// Collection names used by the composed-view recipes.
const (
	Users         = "users"
	Videos        = "videos"
	Tweets        = "tweets"
	Comments      = "comments"
	Likes         = "likes"
	Subscriptions = "subscriptions"
	Sessions      = "sessions"
)

// ChannelProfile composes a user's public channel page: subscriber totals
// plus whether the current viewer subscribes to it. viewerID may be empty
// for an anonymous viewer.
func ChannelProfile(username, viewerID string) View {
	return View{
		Collection: Users,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "username", Value: strings.ToLower(username)}}},
			Lookup{From: Subscriptions, LocalField: "_id", ForeignField: "channel", As: "subscribers"},
			Lookup{From: Subscriptions, LocalField: "_id", ForeignField: "subscriber", As: "subscribedTo"},
			Derive{Fields: []DerivedField{
				{Name: "subscriberCount", Expr: Count{Field: "subscribers"}},
				{Name: "channelsSubscribedToCount", Expr: Count{Field: "subscribedTo"}},
				{Name: "isSubscribed", Expr: ContainsViewer{Path: "subscribers.subscriber", ViewerID: viewerID}},
			}},
			Project{Fields: []string{
				"fullName", "username", "email", "avatar", "coverImage",
				"subscriberCount", "channelsSubscribedToCount", "isSubscribed", "createdAt",
			}},
		},
	}
}

// VideoDetail composes a single video with like totals, the viewer's like
// flag, and the owner enriched with subscriber totals.
func VideoDetail(videoID, viewerID string) View {
	return View{
		Collection: Videos,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "_id", Value: OID(videoID)}}},
			Lookup{From: Likes, LocalField: "_id", ForeignField: "video", As: "likes"},
			Lookup{From: Users, LocalField: "owner", ForeignField: "_id", As: "owner", Pipeline: []Stage{
				Lookup{From: Subscriptions, LocalField: "_id", ForeignField: "channel", As: "subscribers"},
				Derive{Fields: []DerivedField{
					{Name: "subscriberCount", Expr: Count{Field: "subscribers"}},
					{Name: "isSubscribed", Expr: ContainsViewer{Path: "subscribers.subscriber", ViewerID: viewerID}},
				}},
				Project{Fields: []string{"username", "fullName", "avatar.url", "subscriberCount", "isSubscribed"}},
			}},
			Derive{Fields: []DerivedField{
				{Name: "likesCount", Expr: Count{Field: "likes"}},
				{Name: "isLiked", Expr: ContainsViewer{Path: "likes.likedBy", ViewerID: viewerID}},
				{Name: "owner", Expr: First{Field: "owner"}},
			}},
			Project{Fields: []string{
				"videoFile.url", "thumbnail.url", "title", "description", "views",
				"createdAt", "duration", "owner", "likesCount", "isLiked",
			}},
		},
	}
}

// FeedOptions narrows and orders the public video feed.
type FeedOptions struct {
	Query    string
	OwnerID  string
	SortBy   string
	SortDesc bool
}

var feedSortFields = map[string]struct{}{
	"createdAt": {},
	"views":     {},
	"duration":  {},
	"title":     {},
}

// VideoFeed composes the published-video feed: optional text query, optional
// owner filter, caller-chosen order (default newest first), owner summary
// joined in. The result is paginated by the executor.
func VideoFeed(opts FeedOptions) View {
	stages := []Stage{}
	if opts.Query != "" {
		stages = append(stages, Match{Conds: []Cond{
			TextSearch{Fields: []string{"title", "description"}, Term: opts.Query},
		}})
	}
	if opts.OwnerID != "" {
		stages = append(stages, Match{Conds: []Cond{Eq{Field: "owner", Value: OID(opts.OwnerID)}}})
	}
	stages = append(stages, Match{Conds: []Cond{Eq{Field: "isPublished", Value: true}}})

	sortField, dir := "createdAt", Desc
	if _, ok := feedSortFields[opts.SortBy]; ok {
		sortField = opts.SortBy
		if !opts.SortDesc {
			dir = Asc
		}
	}
	stages = append(stages,
		Sort{Field: sortField, Direction: dir},
		Lookup{From: Users, LocalField: "owner", ForeignField: "_id", As: "owner", Pipeline: []Stage{
			Project{Fields: []string{"username", "avatar.url"}},
		}},
		Unwind{Path: "owner"},
	)
	return View{Collection: Videos, Stages: stages}
}

// VideoComments composes a video's comment feed with like totals and the
// viewer's like flag, newest first. Paginated by the executor.
func VideoComments(videoID, viewerID string) View {
	return View{
		Collection: Comments,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "video", Value: OID(videoID)}}},
			Lookup{From: Users, LocalField: "owner", ForeignField: "_id", As: "ownerDetails", Pipeline: []Stage{
				Project{Fields: []string{"username", "fullName", "avatar.url"}},
			}},
			Lookup{From: Likes, LocalField: "_id", ForeignField: "comment", As: "likes"},
			Derive{Fields: []DerivedField{
				{Name: "likesCount", Expr: Count{Field: "likes"}},
				{Name: "owner", Expr: First{Field: "ownerDetails"}},
				{Name: "isLiked", Expr: ContainsViewer{Path: "likes.likedBy", ViewerID: viewerID}},
			}},
			Sort{Field: "createdAt", Direction: Desc},
			Project{Fields: []string{"content", "createdAt", "likesCount", "owner", "isLiked"}},
		},
	}
}

// LikedVideos composes the viewer's liked-video feed, newest like first.
func LikedVideos(viewerID string) View {
	return View{
		Collection: Likes,
		Stages: []Stage{
			Match{Conds: []Cond{
				Eq{Field: "likedBy", Value: OID(viewerID)},
				Exists{Field: "video"},
			}},
			Lookup{From: Videos, LocalField: "video", ForeignField: "_id", As: "video", Pipeline: []Stage{
				Lookup{From: Users, LocalField: "owner", ForeignField: "_id", As: "owner", Pipeline: []Stage{
					Project{Fields: []string{"username", "fullName", "avatar.url"}},
				}},
				Unwind{Path: "owner"},
				Project{Fields: []string{
					"videoFile.url", "thumbnail.url", "title", "description",
					"duration", "views", "createdAt", "owner",
				}},
			}},
			Unwind{Path: "video"},
			Sort{Field: "createdAt", Direction: Desc},
			Project{Fields: []string{"video"}},
		},
	}
}

// ChannelSubscribers lists a channel's subscribers, each enriched with its
// own subscriber count and whether the channel subscribes back.
func ChannelSubscribers(channelID string) View {
	return View{
		Collection: Subscriptions,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "channel", Value: OID(channelID)}}},
			Lookup{From: Users, LocalField: "subscriber", ForeignField: "_id", As: "subscriber", Pipeline: []Stage{
				Lookup{From: Subscriptions, LocalField: "_id", ForeignField: "channel", As: "subscribedToSubscriber"},
				Derive{Fields: []DerivedField{
					{Name: "subscribedToSubscriber", Expr: ContainsViewer{Path: "subscribedToSubscriber.subscriber", ViewerID: channelID}},
					{Name: "subscriberCount", Expr: Count{Field: "subscribedToSubscriber"}},
				}},
				Project{Fields: []string{
					"username", "fullName", "avatar.url", "subscribedToSubscriber", "subscriberCount",
				}},
			}},
			Unwind{Path: "subscriber"},
			Project{Fields: []string{"subscriber"}},
		},
	}
}

// SubscribedChannels lists the channels a user subscribes to, each with its
// latest video.
func SubscribedChannels(subscriberID string) View {
	return View{
		Collection: Subscriptions,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "subscriber", Value: OID(subscriberID)}}},
			Lookup{From: Users, LocalField: "channel", ForeignField: "_id", As: "channel", Pipeline: []Stage{
				Lookup{From: Videos, LocalField: "_id", ForeignField: "owner", As: "videos"},
				Derive{Fields: []DerivedField{
					{Name: "latestVideo", Expr: Last{Field: "videos"}},
				}},
				Project{Fields: []string{
					"username", "fullName", "avatar.url",
					"latestVideo._id", "latestVideo.videoFile.url", "latestVideo.thumbnail.url",
					"latestVideo.owner", "latestVideo.title", "latestVideo.description",
					"latestVideo.duration", "latestVideo.createdAt", "latestVideo.views",
				}},
			}},
			Unwind{Path: "channel"},
			Project{Fields: []string{"channel"}},
		},
	}
}

// UserTweets composes a user's tweet feed with like totals and the viewer's
// like flag, newest first.
func UserTweets(userID, viewerID string) View {
	return View{
		Collection: Tweets,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "owner", Value: OID(userID)}}},
			Lookup{From: Users, LocalField: "owner", ForeignField: "_id", As: "ownerDetails", Pipeline: []Stage{
				Project{Fields: []string{"username", "fullName", "avatar.url"}},
			}},
			Lookup{From: Likes, LocalField: "_id", ForeignField: "tweet", As: "likes", Pipeline: []Stage{
				Project{Fields: []string{"likedBy"}},
			}},
			Derive{Fields: []DerivedField{
				{Name: "likesCount", Expr: Count{Field: "likes"}},
				{Name: "owner", Expr: First{Field: "ownerDetails"}},
				{Name: "isLiked", Expr: ContainsViewer{Path: "likes.likedBy", ViewerID: viewerID}},
			}},
			Sort{Field: "createdAt", Direction: Desc},
			Project{Fields: []string{"content", "owner", "likesCount", "createdAt", "isLiked"}},
		},
	}
}

// WatchHistory joins the viewer's watched videos, each with its owner
// summary. The joined array is not order-guaranteed by the store; callers
// restore watch order from the user's id list.
func WatchHistory(userID string) View {
	return View{
		Collection: Users,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "_id", Value: OID(userID)}}},
			Lookup{From: Videos, LocalField: "watchHistory", ForeignField: "_id", As: "watchHistory", Pipeline: []Stage{
				Lookup{From: Users, LocalField: "owner", ForeignField: "_id", As: "owner", Pipeline: []Stage{
					Project{Fields: []string{"fullName", "username", "avatar.url"}},
				}},
				Derive{Fields: []DerivedField{
					{Name: "owner", Expr: First{Field: "owner"}},
				}},
				Project{Fields: []string{
					"videoFile.url", "thumbnail.url", "title", "description",
					"duration", "views", "createdAt", "owner",
				}},
			}},
			Project{Fields: []string{"watchHistory"}},
		},
	}
}

// SubscriberTotal counts a channel's subscribers.
func SubscriberTotal(channelID string) View {
	return View{
		Collection: Subscriptions,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "channel", Value: OID(channelID)}}},
			CountAll{As: "subscribersCount"},
		},
	}
}

// ChannelVideoTotals accumulates a channel's video, like and view totals.
func ChannelVideoTotals(ownerID string) View {
	return View{
		Collection: Videos,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "owner", Value: OID(ownerID)}}},
			Lookup{From: Likes, LocalField: "_id", ForeignField: "video", As: "likes"},
			Derive{Fields: []DerivedField{
				{Name: "likesCount", Expr: Count{Field: "likes"}},
			}},
			Group{Sums: []GroupSum{
				{Name: "totalLikes", Expr: SumField{Field: "likesCount"}},
				{Name: "totalViews", Expr: SumField{Field: "views"}},
				{Name: "totalVideos", Expr: SumOne{}},
			}},
		},
	}
}

// ChannelVideos lists all of a channel's videos for its dashboard, newest
// first, with per-video like totals.
func ChannelVideos(ownerID string) View {
	return View{
		Collection: Videos,
		Stages: []Stage{
			Match{Conds: []Cond{Eq{Field: "owner", Value: OID(ownerID)}}},
			Lookup{From: Likes, LocalField: "_id", ForeignField: "video", As: "likes"},
			Derive{Fields: []DerivedField{
				{Name: "likesCount", Expr: Count{Field: "likes"}},
			}},
			Sort{Field: "createdAt", Direction: Desc},
			Project{Fields: []string{
				"videoFile.url", "thumbnail.url", "title", "description",
				"createdAt", "isPublished", "likesCount", "views", "duration",
			}},
		},
	}
}
