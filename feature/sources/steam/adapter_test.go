package steam

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

const halfLife2 = `{
	"name": "Half-Life 2",
	"steam_appid": 220,
	"short_description": "The Combine has taken over City 17.",
	"header_image": "https://cdn.steam.example/apps/220/header.jpg",
	"website": "http://www.half-life2.com",
	"screenshots": [{"path_full": "https://cdn.steam.example/ss_1.jpg"}, {"path_full": "https://cdn.steam.example/ss_2.jpg"}],
	"price_overview": {"final": 999},
	"release_date": {"coming_soon": false, "date": "Nov 16, 2004"},
	"genres": [{"id": "1", "description": "Action"}],
	"platforms": {"windows": true, "mac": true, "linux": false}
}`

const newsItem = `{
	"gid": "123",
	"title": "Half-Life 2 update released",
	"url": "https://store.steam.example/news/123",
	"author": "Valve",
	"contents": "Fixes a crash when loading saved games.",
	"feedlabel": "Community Announcements",
	"date": 1500000000
}`

func TestAdapter_ExtractTitle(t *testing.T) {
	a := NewAdapter()

	title, err := a.ExtractTitle(registry.KindGame, json.RawMessage(halfLife2))
	require.NoError(t, err)
	assert.Equal(t, "Half-Life 2", title.Name)

	title, err = a.ExtractTitle(registry.KindArticle, json.RawMessage(newsItem))
	require.NoError(t, err)
	assert.Equal(t, "Half-Life 2 update released", title.Name)

	_, err = a.ExtractTitle(registry.KindGame, json.RawMessage(`{"steam_appid": 220}`))
	var malformed *reconcile.MalformedPayloadError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, registry.ProviderSteam, malformed.Provider)
	assert.ErrorIs(t, err, reconcile.ErrMalformedPayload)

	_, err = a.ExtractTitle(registry.KindVideo, json.RawMessage(`{}`))
	assert.ErrorIs(t, err, reconcile.ErrMissingPayload)
}

func TestAdapter_BuildGame(t *testing.T) {
	a := NewAdapter()
	ws := workingset.New()
	g, _ := ws.BuildGame(1, nil, nil, "Half-Life 2", "half life 2")

	require.NoError(t, a.BuildGame(ws, g, json.RawMessage(halfLife2)))

	assert.Equal(t, "The Combine has taken over City 17.", g.Summary)
	assert.Equal(t, "https://cdn.steam.example/apps/220/header.jpg", g.Cover)
	assert.Equal(t, []string{"https://cdn.steam.example/ss_1.jpg", "https://cdn.steam.example/ss_2.jpg"}, g.Screenshots)
	assert.Equal(t, "http://www.half-life2.com", g.Website)
	require.NotNil(t, g.Price)
	assert.Equal(t, 999, *g.Price)
	require.NotNil(t, g.ReleaseDate)
	assert.Equal(t, time.Date(2004, time.November, 16, 0, 0, 0, 0, time.UTC), *g.ReleaseDate)
	assert.Equal(t, []string{"Action"}, g.Genres)
	assert.Equal(t, []string{"mac", "windows"}, g.Platforms)

	t.Run("Nil payload is a no-op", func(t *testing.T) {
		before := *g
		require.NoError(t, a.BuildGame(ws, g, nil))
		assert.Equal(t, before, *g)
	})

	t.Run("Rebuilding is stable", func(t *testing.T) {
		require.NoError(t, a.BuildGame(ws, g, json.RawMessage(halfLife2)))
		assert.Len(t, g.Screenshots, 2)
	})
}

func TestAdapter_BuildArticle(t *testing.T) {
	a := NewAdapter()
	article := &workingset.Article{ID: 1}

	require.NoError(t, a.BuildArticle(article, json.RawMessage(newsItem)))
	assert.Equal(t, "Half-Life 2 update released", article.Title)
	assert.Equal(t, "Community Announcements", article.Outlet)
	assert.Equal(t, "Fixes a crash when loading saved games.", article.Introduction)
	assert.Equal(t, "Valve", article.Author)
	assert.Equal(t, "https://store.steam.example/news/123", article.Link)
	require.NotNil(t, article.Timestamp)
	assert.Equal(t, int64(1500000000), article.Timestamp.Unix())

	require.NoError(t, a.BuildArticle(article, nil))
}

func TestAdapter_ValidateArticle(t *testing.T) {
	a := NewAdapter()

	assert.True(t, a.ValidateArticle(json.RawMessage(newsItem)))
	assert.False(t, a.ValidateArticle(nil))
	assert.False(t, a.ValidateArticle(json.RawMessage(`{"title": "No link"}`)))
	assert.False(t, a.ValidateArticle(json.RawMessage(`{"title": "Short", "url": "https://x.example/a", "contents": "tiny", "date": 1}`)))
	assert.False(t, a.ValidateArticle(json.RawMessage(`{"title": "Undated", "url": "https://x.example/a", "contents": "long enough contents"}`)))
}
