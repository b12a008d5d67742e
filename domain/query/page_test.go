package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"streamhub/domain/query"
)

func TestPageRequest_Normalize(t *testing.T) {
	tests := []struct {
		name     string
		in       query.PageRequest
		expected query.PageRequest
	}{
		{"defaults applied", query.PageRequest{}, query.PageRequest{Page: 1, Limit: 10}},
		{"negative values", query.PageRequest{Page: -3, Limit: -1}, query.PageRequest{Page: 1, Limit: 10}},
		{"valid untouched", query.PageRequest{Page: 4, Limit: 25}, query.PageRequest{Page: 4, Limit: 25}},
		{"zero page only", query.PageRequest{Page: 0, Limit: 5}, query.PageRequest{Page: 1, Limit: 5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.in.Normalize())
		})
	}
}

func TestNewPageInfo(t *testing.T) {
	info := query.NewPageInfo(query.PageRequest{Page: 2, Limit: 10}, 35)

	assert.Equal(t, int64(35), info.TotalDocs)
	assert.Equal(t, int64(4), info.TotalPages)
	assert.Equal(t, int64(2), info.Page)
	assert.True(t, info.HasNextPage)
	assert.True(t, info.HasPrevPage)
}

func TestNewPageInfo_Boundaries(t *testing.T) {
	t.Run("exact multiple", func(t *testing.T) {
		info := query.NewPageInfo(query.PageRequest{Page: 3, Limit: 10}, 30)
		assert.Equal(t, int64(3), info.TotalPages)
		assert.False(t, info.HasNextPage)
		assert.True(t, info.HasPrevPage)
	})

	t.Run("empty result", func(t *testing.T) {
		info := query.NewPageInfo(query.PageRequest{Page: 1, Limit: 10}, 0)
		assert.Equal(t, int64(0), info.TotalPages)
		assert.False(t, info.HasNextPage)
		assert.False(t, info.HasPrevPage)
	})

	t.Run("first of many", func(t *testing.T) {
		info := query.NewPageInfo(query.PageRequest{Page: 1, Limit: 10}, 11)
		assert.Equal(t, int64(2), info.TotalPages)
		assert.True(t, info.HasNextPage)
		assert.False(t, info.HasPrevPage)
	})

	t.Run("page beyond range", func(t *testing.T) {
		info := query.NewPageInfo(query.PageRequest{Page: 9, Limit: 10}, 35)
		assert.False(t, info.HasNextPage)
		assert.True(t, info.HasPrevPage)
	})
}
