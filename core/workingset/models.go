package workingset

import (
	"time"

	"gameframe/core/text"
)

// Game is the canonical game merged from Steam and IGDB.
type Game struct {
	ID      int
	SteamID *int
	IGDBID  *int
	Name    string
	// CName is the comparison key of Name.
	CName string
	// Vindex is the highest registry vindex merged into the game.
	Vindex int

	Summary     string
	Cover       string
	Screenshots []string
	Website     string
	ReleaseDate *time.Time
	Price       *int
	Genres      []string
	Platforms   []string
	Rating      *float64

	Developers []*Developer
	Articles   []*Article
	Videos     []*Video
	Tweets     []*Tweet
}

func (g *Game) DisplayName() string    { return g.Name }
func (g *Game) KeywordKind() text.Kind { return text.KindGame }

// Developer is the canonical developer merged from IGDB.
type Developer struct {
	ID     int
	IGDBID *int
	Name   string
	CName  string

	Description string
	Logo        string
	Website     string
	Country     *int
	Founded     *time.Time

	Games    []*Game
	Articles []*Article
}

func (d *Developer) DisplayName() string    { return d.Name }
func (d *Developer) KeywordKind() text.Kind { return text.KindDeveloper }

// Article is a canonical news article merged from Steam news and NewsAPI.
type Article struct {
	ID     int
	Title  string
	CTitle string

	Outlet       string
	Introduction string
	Author       string
	Timestamp    *time.Time
	Cover        string
	Link         string

	Games      []*Game
	Developers []*Developer
}

// Video is a canonical YouTube video.
type Video struct {
	ID    int
	Name  string
	CName string

	VideoLink   string
	Thumbnail   string
	Channel     string
	Description string
	Timestamp   *time.Time

	Games []*Game
}

// Tweet is a canonical tweet.
type Tweet struct {
	ID      int
	User    string
	Content string
	// CKey is the comparison key of User and Content.
	CKey string

	TwitterID string
	Timestamp *time.Time
	Link      string

	Games []*Game
}

// xappend appends item unless it is already present.
func xappend[T comparable](list []T, item T) []T {
	for _, existing := range list {
		if existing == item {
			return list
		}
	}
	return append(list, item)
}

func contains[T comparable](list []T, item T) bool {
	for _, existing := range list {
		if existing == item {
			return true
		}
	}
	return false
}

func remove[T comparable](list []T, item T) []T {
	out := list[:0]
	for _, existing := range list {
		if existing != item {
			out = append(out, existing)
		}
	}
	return out
}
