package catalog

import (
	"time"

	"gameframe/core/workingset"
)

// Ref is a link to another entity of the catalog.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GameSummary is a game as listed by /games.
type GameSummary struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Cover     string     `json:"cover,omitempty"`
	Released  *time.Time `json:"release_date,omitempty"`
	Rating    *float64   `json:"rating,omitempty"`
	Genres    []string   `json:"genres,omitempty"`
	Platforms []string   `json:"platforms,omitempty"`
}

// GameDetail is a single game with its relationships.
type GameDetail struct {
	GameSummary
	SteamID     *int          `json:"steam_id,omitempty"`
	IGDBID      *int          `json:"igdb_id,omitempty"`
	Summary     string        `json:"summary,omitempty"`
	Screenshots []string      `json:"screenshots,omitempty"`
	Website     string        `json:"website,omitempty"`
	Price       *int          `json:"price,omitempty"`
	Developers  []Ref         `json:"developers"`
	Articles    []ArticleView `json:"articles"`
	Videos      []VideoView   `json:"videos"`
	Tweets      []TweetView   `json:"tweets"`
}

// DeveloperDetail is a single developer with its relationships.
type DeveloperDetail struct {
	ID          int           `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description,omitempty"`
	Logo        string        `json:"logo,omitempty"`
	Website     string        `json:"website,omitempty"`
	Country     *int          `json:"country,omitempty"`
	Founded     *time.Time    `json:"founded,omitempty"`
	Games       []Ref         `json:"games"`
	Articles    []ArticleView `json:"articles"`
}

// ArticleView is an article as served to clients.
type ArticleView struct {
	ID           int        `json:"id"`
	Title        string     `json:"title"`
	Outlet       string     `json:"outlet,omitempty"`
	Author       string     `json:"author,omitempty"`
	Introduction string     `json:"introduction,omitempty"`
	Timestamp    *time.Time `json:"timestamp,omitempty"`
	Cover        string     `json:"cover,omitempty"`
	Link         string     `json:"link"`
	Games        []Ref      `json:"games"`
}

// VideoView is a video as served to clients.
type VideoView struct {
	ID        int        `json:"id"`
	Name      string     `json:"name"`
	Link      string     `json:"link"`
	Thumbnail string     `json:"thumbnail,omitempty"`
	Channel   string     `json:"channel,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// TweetView is a tweet as served to clients.
type TweetView struct {
	ID        int        `json:"id"`
	User      string     `json:"user"`
	Content   string     `json:"content"`
	Link      string     `json:"link,omitempty"`
	Timestamp *time.Time `json:"timestamp,omitempty"`
}

// Page is one slice of a listing.
type Page[T any] struct {
	Total  int `json:"total"`
	Offset int `json:"offset"`
	Items  []T `json:"items"`
}

func gameRefs(games []*workingset.Game) []Ref {
	refs := make([]Ref, 0, len(games))
	for _, g := range games {
		refs = append(refs, Ref{ID: g.ID, Name: g.Name})
	}
	return refs
}

func developerRefs(developers []*workingset.Developer) []Ref {
	refs := make([]Ref, 0, len(developers))
	for _, d := range developers {
		refs = append(refs, Ref{ID: d.ID, Name: d.Name})
	}
	return refs
}

func summarize(g *workingset.Game) GameSummary {
	return GameSummary{
		ID:        g.ID,
		Name:      g.Name,
		Cover:     g.Cover,
		Released:  g.ReleaseDate,
		Rating:    g.Rating,
		Genres:    g.Genres,
		Platforms: g.Platforms,
	}
}

func articleView(a *workingset.Article) ArticleView {
	return ArticleView{
		ID:           a.ID,
		Title:        a.Title,
		Outlet:       a.Outlet,
		Author:       a.Author,
		Introduction: a.Introduction,
		Timestamp:    a.Timestamp,
		Cover:        a.Cover,
		Link:         a.Link,
		Games:        gameRefs(a.Games),
	}
}

func articleViews(articles []*workingset.Article) []ArticleView {
	views := make([]ArticleView, 0, len(articles))
	for _, a := range articles {
		views = append(views, articleView(a))
	}
	return views
}
