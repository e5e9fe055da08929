package registry

import (
	"encoding/json"
	"strconv"

	"gorm.io/datatypes"
)

// Kind names a registry entity type.
type Kind string

const (
	KindGame      Kind = "Game"
	KindDeveloper Kind = "Developer"
	KindArticle   Kind = "Article"
	KindTweet     Kind = "Tweet"
	KindVideo     Kind = "Video"
)

// Provider names the external source a payload came from.
type Provider string

const (
	ProviderSteam   Provider = "steam"
	ProviderIGDB    Provider = "igdb"
	ProviderNewsAPI Provider = "newsapi"
	ProviderYouTube Provider = "youtube"
	ProviderTwitter Provider = "twitter"
)

// Payload is one provider's raw data on a row. Data is nil when the provider
// never returned anything for the row.
type Payload struct {
	Provider Provider
	Data     json.RawMessage
}

// Present reports whether the provider supplied data.
func (p Payload) Present() bool {
	return p.Data != nil
}

func payload(provider Provider, j datatypes.NullJSON) Payload {
	if !j.Valid || len(j.JSON) == 0 || string(j.JSON) == "null" {
		return Payload{Provider: provider}
	}
	return Payload{Provider: provider, Data: json.RawMessage(j.JSON)}
}

// JSON wraps raw JSON for a payload column. An empty string is NULL.
func JSON(raw string) datatypes.NullJSON {
	var j datatypes.NullJSON
	if raw == "" {
		return j
	}
	_ = j.Scan([]byte(raw))
	return j
}

// Row is implemented by every registry model.
type Row interface {
	TableName() string
	Kind() Kind
	// PrimaryKey is the internal id column.
	PrimaryKey() string
	// Columns lists every column the model reads.
	Columns() []string
	// RowID is the internal id value.
	RowID() int
	// IndexKey returns the value of an integer column, false when it is NULL or unknown.
	IndexKey(field string) (int, bool)
	// Payloads returns the provider payloads in provider priority order.
	Payloads() []Payload
}

// ChildRow is a row collected on behalf of a game.
type ChildRow interface {
	Row
	ParentGame() int
}

// Empty reports whether no provider supplied data for the row.
func Empty(r Row) bool {
	for _, p := range r.Payloads() {
		if p.Present() {
			return false
		}
	}
	return true
}

// Describe renders a short row reference for logs and cleaner reasons.
func Describe(r Row) string {
	return string(r.Kind()) + "#" + strconv.Itoa(r.RowID())
}

func optional(v *int) (int, bool) {
	if v == nil {
		return 0, false
	}
	return *v, true
}

// CachedGame is a primordial game that exists only in the registry.
type CachedGame struct {
	GameID    int                `gorm:"column:game_id;primaryKey"`
	SteamID   *int               `gorm:"column:steam_id;index"`
	SteamData datatypes.NullJSON `gorm:"column:steam_data"`
	IGDBID    *int               `gorm:"column:igdb_id;index"`
	IGDBData  datatypes.NullJSON `gorm:"column:igdb_data"`
	// Vindex is the gather run that last refreshed the row.
	Vindex int `gorm:"column:vindex"`
}

func (CachedGame) TableName() string  { return "cached_game" }
func (CachedGame) Kind() Kind         { return KindGame }
func (CachedGame) PrimaryKey() string { return "game_id" }
func (CachedGame) Columns() []string {
	return []string{"game_id", "steam_id", "steam_data", "igdb_id", "igdb_data", "vindex"}
}
func (g CachedGame) RowID() int { return g.GameID }

func (g CachedGame) IndexKey(field string) (int, bool) {
	switch field {
	case "game_id":
		return g.GameID, true
	case "steam_id":
		return optional(g.SteamID)
	case "igdb_id":
		return optional(g.IGDBID)
	}
	return 0, false
}

// Payloads returns Steam before IGDB.
func (g CachedGame) Payloads() []Payload {
	return []Payload{payload(ProviderSteam, g.SteamData), payload(ProviderIGDB, g.IGDBData)}
}

// CachedDeveloper is a primordial developer that exists only in the registry.
type CachedDeveloper struct {
	DeveloperID int                `gorm:"column:developer_id;primaryKey"`
	IGDBID      *int               `gorm:"column:igdb_id;index"`
	IGDBData    datatypes.NullJSON `gorm:"column:igdb_data"`
}

func (CachedDeveloper) TableName() string  { return "cached_developer" }
func (CachedDeveloper) Kind() Kind         { return KindDeveloper }
func (CachedDeveloper) PrimaryKey() string { return "developer_id" }
func (CachedDeveloper) Columns() []string {
	return []string{"developer_id", "igdb_id", "igdb_data"}
}
func (d CachedDeveloper) RowID() int { return d.DeveloperID }

func (d CachedDeveloper) IndexKey(field string) (int, bool) {
	switch field {
	case "developer_id":
		return d.DeveloperID, true
	case "igdb_id":
		return optional(d.IGDBID)
	}
	return 0, false
}

func (d CachedDeveloper) Payloads() []Payload {
	return []Payload{payload(ProviderIGDB, d.IGDBData)}
}

// CachedArticle is a primordial article collected for a game.
type CachedArticle struct {
	ArticleID   int                `gorm:"column:article_id;primaryKey"`
	GameID      int                `gorm:"column:game_id;index"`
	SteamData   datatypes.NullJSON `gorm:"column:steam_data"`
	NewsAPIData datatypes.NullJSON `gorm:"column:newsapi_data"`
}

func (CachedArticle) TableName() string  { return "cached_article" }
func (CachedArticle) Kind() Kind         { return KindArticle }
func (CachedArticle) PrimaryKey() string { return "article_id" }
func (CachedArticle) Columns() []string {
	return []string{"article_id", "game_id", "steam_data", "newsapi_data"}
}
func (a CachedArticle) RowID() int      { return a.ArticleID }
func (a CachedArticle) ParentGame() int { return a.GameID }

func (a CachedArticle) IndexKey(field string) (int, bool) {
	switch field {
	case "article_id":
		return a.ArticleID, true
	case "game_id":
		return a.GameID, true
	}
	return 0, false
}

// Payloads returns Steam before NewsAPI.
func (a CachedArticle) Payloads() []Payload {
	return []Payload{payload(ProviderSteam, a.SteamData), payload(ProviderNewsAPI, a.NewsAPIData)}
}

// CachedTweet is a primordial tweet collected for a game.
type CachedTweet struct {
	TweetID     int                `gorm:"column:tweet_id;primaryKey"`
	GameID      int                `gorm:"column:game_id;index"`
	TwitterData datatypes.NullJSON `gorm:"column:twitter_data"`
}

func (CachedTweet) TableName() string  { return "cached_tweet" }
func (CachedTweet) Kind() Kind         { return KindTweet }
func (CachedTweet) PrimaryKey() string { return "tweet_id" }
func (CachedTweet) Columns() []string {
	return []string{"tweet_id", "game_id", "twitter_data"}
}
func (t CachedTweet) RowID() int      { return t.TweetID }
func (t CachedTweet) ParentGame() int { return t.GameID }

func (t CachedTweet) IndexKey(field string) (int, bool) {
	switch field {
	case "tweet_id":
		return t.TweetID, true
	case "game_id":
		return t.GameID, true
	}
	return 0, false
}

func (t CachedTweet) Payloads() []Payload {
	return []Payload{payload(ProviderTwitter, t.TwitterData)}
}

// CachedVideo is a primordial video collected for a game.
type CachedVideo struct {
	VideoID     int                `gorm:"column:video_id;primaryKey"`
	GameID      int                `gorm:"column:game_id;index"`
	YouTubeData datatypes.NullJSON `gorm:"column:youtube_data"`
}

func (CachedVideo) TableName() string  { return "cached_video" }
func (CachedVideo) Kind() Kind         { return KindVideo }
func (CachedVideo) PrimaryKey() string { return "video_id" }
func (CachedVideo) Columns() []string {
	return []string{"video_id", "game_id", "youtube_data"}
}
func (v CachedVideo) RowID() int      { return v.VideoID }
func (v CachedVideo) ParentGame() int { return v.GameID }

func (v CachedVideo) IndexKey(field string) (int, bool) {
	switch field {
	case "video_id":
		return v.VideoID, true
	case "game_id":
		return v.GameID, true
	}
	return 0, false
}

func (v CachedVideo) Payloads() []Payload {
	return []Payload{payload(ProviderYouTube, v.YouTubeData)}
}

// Models lists every registry model, for migrations.
func Models() []any {
	return []any{&CachedGame{}, &CachedDeveloper{}, &CachedArticle{}, &CachedTweet{}, &CachedVideo{}}
}
