package persistence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"streamhub/domain/query"
)

const (
	testViewerID = "5f1a2b3c4d5e6f7a8b9c0d1e"
	testVideoID  = "64b2f0a1c9e77a0012d4e111"
)

func TestCompile_UnknownCollection(t *testing.T) {
	_, err := compile(query.View{Collection: "accounts"})
	assert.Error(t, err)
}

func TestCompile_UnknownLookupCollection(t *testing.T) {
	_, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Lookup{From: "accounts", LocalField: "owner", ForeignField: "_id", As: "owner"},
		},
	})
	assert.Error(t, err)
}

func TestCompile_MatchWithOID(t *testing.T) {
	pipeline, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Match{Conds: []query.Cond{query.Eq{Field: "_id", Value: query.OID(testVideoID)}}},
		},
	})
	require.NoError(t, err)
	require.Len(t, pipeline, 1)

	oid, _ := bson.ObjectIDFromHex(testVideoID)
	expected := bson.D{{Key: "$match", Value: bson.D{{Key: "_id", Value: oid}}}}
	assert.Equal(t, expected, pipeline[0])
}

func TestCompile_InvalidOID(t *testing.T) {
	_, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Match{Conds: []query.Cond{query.Eq{Field: "_id", Value: query.OID("not-an-id")}}},
		},
	})
	assert.Error(t, err)
}

func TestCompile_TextSearch(t *testing.T) {
	pipeline, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Match{Conds: []query.Cond{
				query.TextSearch{Fields: []string{"title", "description"}, Term: "gopher"},
			}},
		},
	})
	require.NoError(t, err)

	expected := bson.D{{Key: "$match", Value: bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "title", Value: bson.D{{Key: "$regex", Value: "gopher"}, {Key: "$options", Value: "i"}}}},
		bson.D{{Key: "description", Value: bson.D{{Key: "$regex", Value: "gopher"}, {Key: "$options", Value: "i"}}}},
	}}}}}
	assert.Equal(t, expected, pipeline[0])
}

func TestCompile_AnonymousViewerFlagIsLiteralFalse(t *testing.T) {
	pipeline, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Derive{Fields: []query.DerivedField{
				{Name: "isLiked", Expr: query.ContainsViewer{Path: "likes.likedBy", ViewerID: ""}},
			}},
		},
	})
	require.NoError(t, err)

	expected := bson.D{{Key: "$addFields", Value: bson.D{{Key: "isLiked", Value: false}}}}
	assert.Equal(t, expected, pipeline[0])
}

func TestCompile_AuthenticatedViewerFlag(t *testing.T) {
	pipeline, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Derive{Fields: []query.DerivedField{
				{Name: "isLiked", Expr: query.ContainsViewer{Path: "likes.likedBy", ViewerID: testViewerID}},
			}},
		},
	})
	require.NoError(t, err)

	viewer, _ := bson.ObjectIDFromHex(testViewerID)
	expected := bson.D{{Key: "$addFields", Value: bson.D{{Key: "isLiked", Value: bson.D{{Key: "$cond", Value: bson.D{
		{Key: "if", Value: bson.D{{Key: "$in", Value: bson.A{viewer, "$likes.likedBy"}}}},
		{Key: "then", Value: true},
		{Key: "else", Value: false},
	}}}}}}}
	assert.Equal(t, expected, pipeline[0])
}

func TestCompile_LookupWithSubPipeline(t *testing.T) {
	pipeline, err := compile(query.View{
		Collection: query.Comments,
		Stages: []query.Stage{
			query.Lookup{From: query.Users, LocalField: "owner", ForeignField: "_id", As: "owner", Pipeline: []query.Stage{
				query.Project{Fields: []string{"username", "avatar.url"}},
			}},
			query.Unwind{Path: "owner"},
		},
	})
	require.NoError(t, err)
	require.Len(t, pipeline, 2)

	expected := bson.D{{Key: "$lookup", Value: bson.D{
		{Key: "from", Value: "users"},
		{Key: "localField", Value: "owner"},
		{Key: "foreignField", Value: "_id"},
		{Key: "as", Value: "owner"},
		{Key: "pipeline", Value: mongo.Pipeline{bson.D{{Key: "$project", Value: bson.D{
			{Key: "username", Value: 1},
			{Key: "avatar.url", Value: 1},
		}}}}},
	}}}
	assert.Equal(t, expected, pipeline[0])
	assert.Equal(t, bson.D{{Key: "$unwind", Value: "$owner"}}, pipeline[1])
}

func TestCompile_GroupAndCount(t *testing.T) {
	pipeline, err := compile(query.View{
		Collection: query.Videos,
		Stages: []query.Stage{
			query.Group{Sums: []query.GroupSum{
				{Name: "totalViews", Expr: query.SumField{Field: "views"}},
				{Name: "totalVideos", Expr: query.SumOne{}},
			}},
			query.CountAll{As: "n"},
		},
	})
	require.NoError(t, err)

	expectedGroup := bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: nil},
		{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
		{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}}
	assert.Equal(t, expectedGroup, pipeline[0])
	assert.Equal(t, bson.D{{Key: "$count", Value: "n"}}, pipeline[1])
}

func TestCompile_ChannelProfileRecipe(t *testing.T) {
	pipeline, err := compile(query.ChannelProfile("Chai", testViewerID))
	require.NoError(t, err)
	require.Len(t, pipeline, 5)

	// Username matching is case-folded at recipe construction.
	assert.Equal(t, bson.D{{Key: "$match", Value: bson.D{{Key: "username", Value: "chai"}}}}, pipeline[0])
}

func TestCompile_FeedRecipeDefaultsToNewestFirst(t *testing.T) {
	pipeline, err := compile(query.VideoFeed(query.FeedOptions{SortBy: "bogus"}))
	require.NoError(t, err)

	var sortStage bson.D
	for _, stage := range pipeline {
		if stage[0].Key == "$sort" {
			sortStage = stage
		}
	}
	require.NotNil(t, sortStage)
	assert.Equal(t, bson.D{{Key: "createdAt", Value: -1}}, sortStage[0].Value)
}
