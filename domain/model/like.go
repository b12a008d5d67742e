package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// LikeKind names the entity a like points at.
type LikeKind string

const (
	LikeVideo   LikeKind = "video"
	LikeComment LikeKind = "comment"
	LikeTweet   LikeKind = "tweet"
)

// LikeTarget is a tagged reference to exactly one likeable entity. Construct
// it through VideoTarget, CommentTarget or TweetTarget so a like can never
// point at two entities at once.
type LikeTarget struct {
	kind LikeKind
	id   bson.ObjectID
}

func VideoTarget(id bson.ObjectID) LikeTarget   { return LikeTarget{kind: LikeVideo, id: id} }
func CommentTarget(id bson.ObjectID) LikeTarget { return LikeTarget{kind: LikeComment, id: id} }
func TweetTarget(id bson.ObjectID) LikeTarget   { return LikeTarget{kind: LikeTweet, id: id} }

func (t LikeTarget) Kind() LikeKind    { return t.kind }
func (t LikeTarget) ID() bson.ObjectID { return t.id }

// Field is the like-document field holding the target reference.
func (t LikeTarget) Field() string { return string(t.kind) }

type Like struct {
	ID        bson.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Video     *bson.ObjectID `bson:"video,omitempty" json:"video,omitempty"`
	Comment   *bson.ObjectID `bson:"comment,omitempty" json:"comment,omitempty"`
	Tweet     *bson.ObjectID `bson:"tweet,omitempty" json:"tweet,omitempty"`
	LikedBy   bson.ObjectID  `bson:"likedBy" json:"likedBy"`
	CreatedAt time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// NewLike materializes a like document for the given target.
func NewLike(target LikeTarget, likedBy bson.ObjectID, now time.Time) Like {
	l := Like{LikedBy: likedBy, CreatedAt: now, UpdatedAt: now}
	id := target.id
	switch target.kind {
	case LikeVideo:
		l.Video = &id
	case LikeComment:
		l.Comment = &id
	case LikeTweet:
		l.Tweet = &id
	}
	return l
}
