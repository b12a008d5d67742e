package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Session is the single live refresh credential of a user. Issuing a new
// refresh token replaces the record, which invalidates the prior value.
type Session struct {
	ID       bson.ObjectID `bson:"_id,omitempty" json:"-"`
	UserID   bson.ObjectID `bson:"userId" json:"userId"`
	Token    string        `bson:"token" json:"-"`
	IssuedAt time.Time     `bson:"issuedAt" json:"issuedAt"`
}
