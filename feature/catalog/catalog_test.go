package catalog

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gameframe/core/workingset"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func intPtr(v int) *int { return &v }

func day(d int) *time.Time {
	t := time.Date(2018, 3, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func fixture() *workingset.Set {
	ws := workingset.New()
	portal, _ := ws.BuildGame(4, intPtr(620), intPtr(72), "Portal 2", "portal 2")
	portal.Genres = []string{"Puzzle", "Action"}
	portal.Platforms = []string{"linux", "windows"}
	hl2, _ := ws.BuildGame(1, intPtr(220), nil, "Half-Life 2", "half life 2")
	hl2.Genres = []string{"Action"}
	hl2.Platforms = []string{"windows"}
	ws.BuildGame(2, nil, intPtr(233), "half-life 2!", "half life 2")

	valve, _ := ws.BuildDeveloper(1, intPtr(10), "Valve Corporation", "valve")
	ws.LinkGameDeveloper(portal, valve)
	ws.LinkGameDeveloper(hl2, valve)

	older, _ := ws.BuildArticle(1, "Portal 2 co-op", "portal 2 co op")
	older.Timestamp = day(1)
	newer, _ := ws.BuildArticle(3, "Valve news", "valve news")
	newer.Timestamp = day(5)
	undated, _ := ws.BuildArticle(5, "Undated", "undated")
	_ = undated
	ws.LinkArticle(portal, older)
	ws.LinkArticle(hl2, newer)

	v, _ := ws.BuildVideo(1, "Portal 2 trailer", "portal 2 trailer")
	v.VideoLink = "https://www.youtube.com/watch?v=abc"
	ws.LinkVideo(portal, v)
	return ws
}

func newApp() *fiber.App {
	app := fiber.New()
	NewFeature(fixture(), zap.NewNop()).Load(app)
	return app
}

func get(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func TestService_Games(t *testing.T) {
	svc := NewService(fixture(), zap.NewNop())

	page := svc.Games(GameQuery{})
	require.Equal(t, 2, page.Total)
	assert.Equal(t, "Half-Life 2", page.Items[0].Name, "sorted by key")

	assert.Equal(t, 1, svc.Games(GameQuery{Genre: "puzzle"}).Total)
	assert.Equal(t, 1, svc.Games(GameQuery{Platform: "LINUX"}).Total)
	assert.Equal(t, 1, svc.Games(GameQuery{Search: "half-life"}).Total)

	paged := svc.Games(GameQuery{Limit: 1, Offset: 1})
	assert.Equal(t, 2, paged.Total)
	require.Len(t, paged.Items, 1)
	assert.Equal(t, "Portal 2", paged.Items[0].Name)

	assert.Empty(t, svc.Games(GameQuery{Offset: 10}).Items)
}

func TestService_Articles(t *testing.T) {
	page := NewService(fixture(), zap.NewNop()).Articles(0, 0)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []int{3, 1, 5}, []int{page.Items[0].ID, page.Items[1].ID, page.Items[2].ID})
}

func TestHandler(t *testing.T) {
	app := newApp()

	t.Run("Game by alias id", func(t *testing.T) {
		var game GameDetail
		require.Equal(t, fiber.StatusOK, get(t, app, "/games/2", &game))
		assert.Equal(t, 1, game.ID)
		assert.Equal(t, 233, *game.IGDBID)
		require.Len(t, game.Developers, 1)
		assert.Equal(t, "Valve Corporation", game.Developers[0].Name)
		require.Len(t, game.Articles, 1)
		assert.Equal(t, "Valve news", game.Articles[0].Title)
	})

	t.Run("Game with video", func(t *testing.T) {
		var game GameDetail
		require.Equal(t, fiber.StatusOK, get(t, app, "/games/4", &game))
		require.Len(t, game.Videos, 1)
		assert.Equal(t, "https://www.youtube.com/watch?v=abc", game.Videos[0].Link)
	})

	t.Run("Developer", func(t *testing.T) {
		var dev DeveloperDetail
		require.Equal(t, fiber.StatusOK, get(t, app, "/developers/1", &dev))
		assert.Len(t, dev.Games, 2)
		assert.Len(t, dev.Articles, 2, "articles propagate from games")
	})

	t.Run("Listing", func(t *testing.T) {
		var page Page[GameSummary]
		require.Equal(t, fiber.StatusOK, get(t, app, "/games?genre=action&limit=1", &page))
		assert.Equal(t, 2, page.Total)
		assert.Len(t, page.Items, 1)
	})

	t.Run("Stats", func(t *testing.T) {
		var stats workingset.Stats
		require.Equal(t, fiber.StatusOK, get(t, app, "/stats", &stats))
		assert.Equal(t, 2, stats.Games)
		assert.Equal(t, 3, stats.Articles)
	})

	t.Run("Errors", func(t *testing.T) {
		assert.Equal(t, fiber.StatusNotFound, get(t, app, "/games/99", nil))
		assert.Equal(t, fiber.StatusNotFound, get(t, app, "/developers/99", nil))
		assert.Equal(t, fiber.StatusBadRequest, get(t, app, "/games/portal", nil))
	})
}
