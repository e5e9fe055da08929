package reconcile_test

import (
	"fmt"
	"testing"

	"gameframe/core/database"
	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/workingset"
	"gameframe/feature/sources/igdb"
	"gameframe/feature/sources/newsapi"
	"gameframe/feature/sources/steam"
	"gameframe/feature/sources/twitter"
	"gameframe/feature/sources/youtube"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func intPtr(v int) *int { return &v }

// setupTestDB creates a migrated in-memory registry.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, registry.Migrate(db))
	return db
}

func newEngine(db *gorm.DB) *reconcile.Engine {
	return newEngineWith(db, reconcile.DefaultOptions())
}

func newEngineWith(db *gorm.DB, opts reconcile.Options) *reconcile.Engine {
	sources := reconcile.NewSources(
		steam.NewAdapter(),
		igdb.NewAdapter(),
		newsapi.NewAdapter(nil),
		youtube.NewAdapter(),
		twitter.NewAdapter(),
	)
	cache := registry.New(db, zap.NewNop())
	return reconcile.NewEngine(cache, workingset.New(), sources, opts, zap.NewNop(), nil)
}

func newsapiArticle(outlet, title, description string) string {
	return fmt.Sprintf(`{
		"source": {"name": %q},
		"author": "Staff",
		"title": %q,
		"description": %q,
		"url": "https://news.example/%d",
		"urlToImage": "https://news.example/%d.jpg",
		"publishedAt": "2018-03-01T12:30:00Z"
	}`, outlet, title, description, len(title), len(title))
}

func status(id int, user, text string) string {
	return fmt.Sprintf(`{
		"id": %d,
		"text": %q,
		"user": {"name": %q},
		"created_at": "Wed Oct 10 20:19:24 +0000 2018"
	}`, id, text, user)
}

// seedRegistry fills the registry with:
//   - games: Half-Life 2 from Steam and again from IGDB, an empty row, and
//     Portal 2 from both providers;
//   - developers: Valve (Half-Life 2, Portal 2) and Hidden Path (Portal 2);
//   - articles about Portal 2, one blacklisted, one irrelevant, one standalone
//     and one malformed;
//   - two videos and 80 tweets about Half-Life 2.
func seedRegistry(t *testing.T, db *gorm.DB) {
	games := []registry.CachedGame{
		{GameID: 1, SteamID: intPtr(220), Vindex: 1, SteamData: registry.JSON(`{
			"name": "Half-Life 2",
			"short_description": "Steam summary of Half-Life 2",
			"header_image": "https://cdn.steam.example/220/header.jpg",
			"price_overview": {"final": 999}
		}`)},
		{GameID: 2, IGDBID: intPtr(233), Vindex: 3, IGDBData: registry.JSON(`{
			"id": 233,
			"name": "half-life 2!",
			"summary": "IGDB summary of Half-Life 2",
			"developers": [10]
		}`)},
		{GameID: 3, Vindex: 1},
		{GameID: 4, SteamID: intPtr(620), IGDBID: intPtr(72), Vindex: 2,
			SteamData: registry.JSON(`{
				"name": "Portal 2",
				"short_description": "Steam summary of Portal 2",
				"header_image": "https://cdn.steam.example/620/header.jpg",
				"price_overview": {"final": 1999}
			}`),
			IGDBData: registry.JSON(`{
				"id": 72,
				"name": "Portal 2 (2011)",
				"summary": "IGDB summary of Portal 2",
				"cover": {"url": "//images.igdb.example/t_thumb/p2.jpg", "width": 264, "height": 374},
				"developers": [10, 11]
			}`)},
	}
	require.NoError(t, db.Create(&games).Error)

	developers := []registry.CachedDeveloper{
		{DeveloperID: 1, IGDBID: intPtr(10), IGDBData: registry.JSON(`{"id": 10, "name": "Valve Corporation", "logo": {"url": "//images.igdb.example/t_thumb/valve.png"}, "developed": [233, 72]}`)},
		{DeveloperID: 2, IGDBID: intPtr(11), IGDBData: registry.JSON(`{"id": 11, "name": "Hidden Path Entertainment, Inc.", "developed": [72]}`)},
		{DeveloperID: 3, IGDBID: intPtr(12)},
	}
	require.NoError(t, db.Create(&developers).Error)

	articles := []registry.CachedArticle{
		{ArticleID: 1, GameID: 4, NewsAPIData: registry.JSON(newsapiArticle("IGN", "Portal 2 co-op update", "New test chambers."))},
		{ArticleID: 2, GameID: 4, SteamData: registry.JSON(`{"title": "Trump plays Portal 2", "url": "https://store.example/news/2", "contents": "Long enough contents.", "date": 1500000000}`)},
		{ArticleID: 3, GameID: 4, NewsAPIData: registry.JSON(newsapiArticle("Kotaku.com", "Valve announces new hardware", "A handheld PC."))},
		{ArticleID: 4, GameID: 4, NewsAPIData: registry.JSON(newsapiArticle("Spam Daily", "Celeste sells a million", "Indie hit."))},
		{ArticleID: 5, GameID: 99, NewsAPIData: registry.JSON(newsapiArticle("IGN", "Standalone industry news", "Sales are up."))},
		{ArticleID: 6, GameID: 4, NewsAPIData: registry.JSON(`{"title": "Broken"}`)},
	}
	require.NoError(t, db.Create(&articles).Error)

	videos := []registry.CachedVideo{
		{VideoID: 1, GameID: 1, YouTubeData: registry.JSON(`{"id": "v1", "snippet": {"title": "Half-Life 2 trailer", "channelTitle": "Valve", "thumbnails": {"high": {"url": "https://i.ytimg.example/v1.jpg"}}}}`)},
		{VideoID: 2, GameID: 1, YouTubeData: registry.JSON(`{"id": "v2", "snippet": {"title": "Half-Life 2 speedrun"}}`)},
		{VideoID: 3, GameID: 1},
	}
	require.NoError(t, db.Create(&videos).Error)

	tweets := make([]registry.CachedTweet, 0, 80)
	for i := 1; i <= 80; i++ {
		tweets = append(tweets, registry.CachedTweet{
			TweetID:     i,
			GameID:      1,
			TwitterData: registry.JSON(status(1000+i, "fan", fmt.Sprintf("Half-Life 2 replay number %d", i))),
		})
	}
	require.NoError(t, db.Create(&tweets).Error)
}
