package newsapi

import (
	"encoding/json"
	"testing"
	"time"

	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/workingset"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ignArticle = `{
	"source": {"id": "ign", "name": "IGN"},
	"author": "Jane Doe",
	"title": "Portal 2 speedrun record broken",
	"description": "A new Portal 2 world record was set this weekend.",
	"url": "//www.ign.example/articles/portal-2-record",
	"urlToImage": "//assets.ign.example/portal.jpg",
	"publishedAt": "2018-03-01T12:30:00Z"
}`

func TestAdapter_BuildArticle(t *testing.T) {
	a := NewAdapter(nil)
	article := &workingset.Article{ID: 1}

	require.NoError(t, a.BuildArticle(article, json.RawMessage(ignArticle)))
	assert.Equal(t, "Portal 2 speedrun record broken", article.Title)
	assert.Equal(t, "IGN", article.Outlet)
	assert.Equal(t, "A new Portal 2 world record was set this weekend.", article.Introduction)
	assert.Equal(t, "Jane Doe", article.Author)
	assert.Equal(t, "http://www.ign.example/articles/portal-2-record", article.Link)
	assert.Equal(t, "http://assets.ign.example/portal.jpg", article.Cover)
	require.NotNil(t, article.Timestamp)
	assert.Equal(t, time.Date(2018, time.March, 1, 12, 30, 0, 0, time.UTC), *article.Timestamp)

	t.Run("Relative cover is ignored", func(t *testing.T) {
		other := &workingset.Article{ID: 2}
		require.NoError(t, a.BuildArticle(other, json.RawMessage(`{"title": "t", "url": "https://x.example", "urlToImage": "/img.png"}`)))
		assert.Empty(t, other.Cover)
	})

	t.Run("Malformed", func(t *testing.T) {
		err := a.BuildArticle(&workingset.Article{}, json.RawMessage(`{"title": "no url"}`))
		var malformed *reconcile.MalformedPayloadError
		require.ErrorAs(t, err, &malformed)
		assert.Equal(t, registry.ProviderNewsAPI, malformed.Provider)
		assert.Contains(t, malformed.Fields, "articlePayload.URL")
	})
}

func TestAdapter_ValidateArticle(t *testing.T) {
	a := NewAdapter(nil)
	assert.True(t, a.ValidateArticle(json.RawMessage(ignArticle)))
	assert.False(t, a.ValidateArticle(nil))

	tests := []struct {
		name    string
		payload string
	}{
		{"Outlet not whitelisted", `{"source": {"name": "Spam Daily"}, "author": "a", "title": "t", "description": "d", "url": "https://x.example/a", "urlToImage": "https://x.example/a.png", "publishedAt": "2018-03-01T12:30:00Z"}`},
		{"Missing author", `{"source": {"name": "IGN"}, "title": "t", "description": "d", "url": "https://x.example/a", "urlToImage": "https://x.example/a.png", "publishedAt": "2018-03-01T12:30:00Z"}`},
		{"Relative cover", `{"source": {"name": "IGN"}, "author": "a", "title": "t", "description": "d", "url": "https://x.example/a", "urlToImage": "/a.png", "publishedAt": "2018-03-01T12:30:00Z"}`},
		{"Bad timestamp", `{"source": {"name": "IGN"}, "author": "a", "title": "t", "description": "d", "url": "https://x.example/a", "urlToImage": "https://x.example/a.png", "publishedAt": "yesterday"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, a.ValidateArticle(json.RawMessage(tt.payload)))
		})
	}

	t.Run("Custom whitelist", func(t *testing.T) {
		custom := NewAdapter([]string{"Spam Daily"})
		assert.False(t, custom.ValidateArticle(json.RawMessage(ignArticle)))
	})
}
