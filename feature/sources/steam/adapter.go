package steam

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/workingset"
)

// releaseLayouts are the date formats the store uses, most common first.
var releaseLayouts = []string{"Jan 2, 2006", "2 Jan, 2006", "Jan 2006", "2006"}

// Adapter reads Steam store and news payloads.
type Adapter struct{}

// NewAdapter creates a new Steam adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Provider returns the registry provider this adapter reads.
func (a *Adapter) Provider() registry.Provider {
	return registry.ProviderSteam
}

// ExtractTitle returns the game name or news item title.
func (a *Adapter) ExtractTitle(kind registry.Kind, payload json.RawMessage) (reconcile.Title, error) {
	switch kind {
	case registry.KindGame:
		var p gamePayload
		if err := reconcile.Decode(registry.ProviderSteam, kind, payload, &p); err != nil {
			return reconcile.Title{}, err
		}
		return reconcile.Title{Name: p.Name}, nil
	case registry.KindArticle:
		var p articlePayload
		if err := reconcile.Decode(registry.ProviderSteam, kind, payload, &p); err != nil {
			return reconcile.Title{}, err
		}
		return reconcile.Title{Name: p.Title}, nil
	}
	return reconcile.Title{}, fmt.Errorf("%w: steam has no %s titles", reconcile.ErrMissingPayload, kind)
}

// BuildGame sets the summary, header image, screenshots, website, price,
// release date, genres and platforms the store supplies.
func (a *Adapter) BuildGame(ws *workingset.Set, g *workingset.Game, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	var p gamePayload
	if err := reconcile.Decode(registry.ProviderSteam, registry.KindGame, payload, &p); err != nil {
		return err
	}

	if p.ShortDescription != "" {
		g.Summary = p.ShortDescription
	}
	if p.HeaderImage != "" {
		g.Cover = p.HeaderImage
	}
	if len(p.Screenshots) > 0 {
		shots := make([]string, 0, len(p.Screenshots))
		for _, s := range p.Screenshots {
			shots = append(shots, s.PathFull)
		}
		g.Screenshots = shots
	}
	if p.Website != "" {
		g.Website = p.Website
	}
	if p.PriceOverview != nil {
		price := p.PriceOverview.Final
		g.Price = &price
	}
	if !p.ReleaseDate.ComingSoon {
		if released, ok := parseRelease(p.ReleaseDate.Date); ok {
			g.ReleaseDate = &released
		}
	}
	if len(p.Genres) > 0 {
		genres := make([]string, 0, len(p.Genres))
		for _, genre := range p.Genres {
			genres = append(genres, genre.Description)
		}
		g.Genres = genres
	}
	if len(p.Platforms) > 0 {
		var platforms []string
		for name, supported := range p.Platforms {
			if supported {
				platforms = append(platforms, name)
			}
		}
		sort.Strings(platforms)
		g.Platforms = platforms
	}
	return nil
}

func parseRelease(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	for _, layout := range releaseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// BuildArticle sets the fields of a Steam news item. The feed label is the
// outlet.
func (a *Adapter) BuildArticle(article *workingset.Article, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	var p articlePayload
	if err := reconcile.Decode(registry.ProviderSteam, registry.KindArticle, payload, &p); err != nil {
		return err
	}

	article.Title = p.Title
	article.Link = p.URL
	if p.Contents != "" {
		article.Introduction = p.Contents
	}
	if p.Author != "" {
		article.Author = p.Author
	}
	if p.FeedLabel != "" {
		article.Outlet = p.FeedLabel
	} else if article.Outlet == "" {
		article.Outlet = "Steam"
	}
	if p.Date > 0 {
		ts := time.Unix(p.Date, 0).UTC()
		article.Timestamp = &ts
	}
	return nil
}

// ValidateArticle reports whether a news item has a title, an absolute link,
// real contents and a date.
func (a *Adapter) ValidateArticle(payload json.RawMessage) bool {
	if payload == nil {
		return false
	}
	var p articlePayload
	if err := reconcile.Decode(registry.ProviderSteam, registry.KindArticle, payload, &p); err != nil {
		return false
	}
	v := validArticle{Title: p.Title, URL: p.URL, Contents: strings.TrimSpace(p.Contents), Date: p.Date}
	return reconcile.Validate(v) == nil
}
