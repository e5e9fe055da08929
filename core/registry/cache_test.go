package registry

import (
	"context"
	"fmt"
	"testing"

	"gameframe/core/database"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupTestDB creates a migrated in-memory registry.
func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, Migrate(db))
	return db
}

func intPtr(v int) *int { return &v }

func seedGames(t *testing.T, db *gorm.DB) {
	games := []CachedGame{
		{GameID: 3, SteamID: intPtr(220), SteamData: JSON(`{"name":"Half-Life 2"}`), Vindex: 1},
		{GameID: 1, IGDBID: intPtr(7), IGDBData: JSON(`{"name":"Portal"}`), Vindex: 1},
		{GameID: 2, SteamID: intPtr(220), Vindex: 2},
	}
	require.NoError(t, db.Create(&games).Error)
}

func TestLoad(t *testing.T) {
	db := setupTestDB(t)
	seedGames(t, db)
	cache := New(db, zap.NewNop())
	ctx := context.Background()

	t.Run("Insertion order", func(t *testing.T) {
		ix, err := Load[CachedGame](ctx, cache, "game_id")
		require.NoError(t, err)
		assert.Equal(t, 3, ix.Len())

		var ids []int
		for row := range ix.All() {
			ids = append(ids, row.GameID)
		}
		assert.Equal(t, []int{1, 2, 3}, ids)

		// Restartable
		count := 0
		for range ix.All() {
			count++
		}
		assert.Equal(t, 3, count)
	})

	t.Run("Idempotent", func(t *testing.T) {
		first, err := Load[CachedGame](ctx, cache, "game_id")
		require.NoError(t, err)

		// A row added after loading is not seen until the index is reloaded
		require.NoError(t, db.Create(&CachedGame{GameID: 9}).Error)
		second, err := Load[CachedGame](ctx, cache, "game_id")
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 3, second.Len())

		Unload[CachedGame](cache, "game_id")
		assert.False(t, Loaded[CachedGame](cache, "game_id"))
		third, err := Load[CachedGame](ctx, cache, "game_id")
		require.NoError(t, err)
		assert.Equal(t, 4, third.Len())
	})

	t.Run("Provider index", func(t *testing.T) {
		ix, err := Load[CachedGame](ctx, cache, "steam_id")
		require.NoError(t, err)

		rows := ix.Get(220)
		require.Len(t, rows, 2)
		assert.Equal(t, 2, rows[0].GameID)
		assert.Equal(t, 3, rows[1].GameID)
		assert.Empty(t, ix.Get(7))
	})

	t.Run("Payloads", func(t *testing.T) {
		ix, err := Load[CachedGame](ctx, cache, "game_id")
		require.NoError(t, err)

		rows := ix.Get(2)
		require.Len(t, rows, 1)
		assert.True(t, Empty(rows[0]))

		rows = ix.Get(3)
		require.Len(t, rows, 1)
		payloads := rows[0].Payloads()
		assert.Equal(t, ProviderSteam, payloads[0].Provider)
		assert.True(t, payloads[0].Present())
		assert.JSONEq(t, `{"name":"Half-Life 2"}`, string(payloads[0].Data))
		assert.False(t, payloads[1].Present())
	})
}

func TestLoad_Unreadable(t *testing.T) {
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)
	cache := New(db, zap.NewNop())

	t.Run("Missing table", func(t *testing.T) {
		_, err := Load[CachedTweet](context.Background(), cache, "tweet_id")
		assert.ErrorIs(t, err, ErrRegistryUnreadable)
	})

	t.Run("Missing column", func(t *testing.T) {
		require.NoError(t, db.Exec("CREATE TABLE cached_video (video_id INTEGER PRIMARY KEY, game_id INTEGER)").Error)
		_, err := Load[CachedVideo](context.Background(), cache, "video_id")
		assert.ErrorIs(t, err, ErrRegistryUnreadable)
		assert.Contains(t, err.Error(), "youtube_data")
	})
}

func TestDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("Removes batch and invalidates index", func(t *testing.T) {
		db := setupTestDB(t)
		articles := []CachedArticle{
			{ArticleID: 1, GameID: 1, NewsAPIData: JSON(`{"title":"a"}`)},
			{ArticleID: 2, GameID: 1},
			{ArticleID: 3, GameID: 2},
		}
		require.NoError(t, db.Create(&articles).Error)
		cache := New(db, zap.NewNop())

		_, err := Load[CachedArticle](ctx, cache, "article_id")
		require.NoError(t, err)

		require.NoError(t, Delete[CachedArticle](ctx, cache, []int{2, 3, 3}))
		assert.False(t, Loaded[CachedArticle](cache, "article_id"))

		ix, err := Load[CachedArticle](ctx, cache, "article_id")
		require.NoError(t, err)
		assert.Equal(t, 1, ix.Len())
		assert.Len(t, ix.Get(1), 1)
	})

	t.Run("Partial batch rolls back", func(t *testing.T) {
		db := setupTestDB(t)
		require.NoError(t, db.Create(&CachedVideo{VideoID: 1, GameID: 1}).Error)
		cache := New(db, zap.NewNop())

		err := Delete[CachedVideo](ctx, cache, []int{1, 99})
		assert.ErrorIs(t, err, ErrPartialDelete)

		var count int64
		require.NoError(t, db.Model(&CachedVideo{}).Count(&count).Error)
		assert.Equal(t, int64(1), count)
	})

	t.Run("Empty batch", func(t *testing.T) {
		cache := New(nil, zap.NewNop())
		assert.NoError(t, Delete[CachedTweet](ctx, cache, nil))
	})
}

func TestDelete_RollbackOnError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	})
	db, err := gorm.Open(dialector, &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `cached_tweet`").
		WithArgs(4, 5).
		WillReturnError(fmt.Errorf("lock wait timeout"))
	mock.ExpectRollback()

	cache := New(db, zap.NewNop())
	err = Delete[CachedTweet](context.Background(), cache, []int{4, 5})
	assert.ErrorContains(t, err, "lock wait timeout")
	assert.NoError(t, mock.ExpectationsWereMet())
}
