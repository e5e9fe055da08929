package igdb

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/utils"
	"gameframe/core/workingset"
)

// Image sizes requested in place of the thumbnail the API returns.
const (
	sizeThumb      = "t_thumb"
	sizeCover      = "t_cover_big"
	sizeScreenshot = "t_screenshot_big"
	sizeLogo       = "t_logo_med"
)

// Adapter reads IGDB game and company payloads.
type Adapter struct{}

// NewAdapter creates a new IGDB adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Provider returns the registry provider this adapter reads.
func (a *Adapter) Provider() registry.Provider {
	return registry.ProviderIGDB
}

// ExtractTitle returns the game or company name.
func (a *Adapter) ExtractTitle(kind registry.Kind, payload json.RawMessage) (reconcile.Title, error) {
	switch kind {
	case registry.KindGame:
		var p gamePayload
		if err := reconcile.Decode(registry.ProviderIGDB, kind, payload, &p); err != nil {
			return reconcile.Title{}, err
		}
		return reconcile.Title{Name: p.Name}, nil
	case registry.KindDeveloper:
		var p developerPayload
		if err := reconcile.Decode(registry.ProviderIGDB, kind, payload, &p); err != nil {
			return reconcile.Title{}, err
		}
		return reconcile.Title{Name: p.Name}, nil
	}
	return reconcile.Title{}, fmt.Errorf("%w: igdb has no %s titles", reconcile.ErrMissingPayload, kind)
}

// BuildGame sets the summary, cover, screenshots, website, release date and
// rating, and credits every developer already merged.
func (a *Adapter) BuildGame(ws *workingset.Set, g *workingset.Game, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	var p gamePayload
	if err := reconcile.Decode(registry.ProviderIGDB, registry.KindGame, payload, &p); err != nil {
		return err
	}

	if p.Summary != "" {
		g.Summary = p.Summary
	}
	if p.Cover != nil {
		g.Cover = imageURL(p.Cover.URL, sizeCover)
	}
	if len(p.Screenshots) > 0 {
		shots := make([]string, 0, len(p.Screenshots))
		for _, s := range p.Screenshots {
			shots = append(shots, imageURL(s.URL, sizeScreenshot))
		}
		g.Screenshots = shots
	}
	if len(p.Websites) > 0 {
		g.Website = p.Websites[0].URL
	}
	if p.FirstReleaseDate > 0 {
		released := time.Unix(p.FirstReleaseDate, 0).UTC()
		g.ReleaseDate = &released
	}
	if p.TotalRating != nil {
		rating := *p.TotalRating
		g.Rating = &rating
	}

	for _, id := range p.Developers {
		if d, ok := ws.DeveloperByIGDB(id); ok {
			ws.LinkGameDeveloper(g, d)
		}
	}
	return nil
}

// BuildDeveloper sets the description, logo, website, country and founding
// date, and credits the developer on every game already merged.
func (a *Adapter) BuildDeveloper(ws *workingset.Set, d *workingset.Developer, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	var p developerPayload
	if err := reconcile.Decode(registry.ProviderIGDB, registry.KindDeveloper, payload, &p); err != nil {
		return err
	}

	if p.Description != "" {
		d.Description = p.Description
	}
	if p.Logo != nil {
		d.Logo = imageURL(p.Logo.URL, sizeLogo)
	}
	if p.Website != "" {
		d.Website = p.Website
	}
	if p.Country != nil {
		country := *p.Country
		d.Country = &country
	}
	if p.StartDate > 0 {
		founded := time.Unix(p.StartDate, 0).UTC()
		d.Founded = &founded
	}

	for _, id := range p.Developed {
		if g, ok := ws.GameByIGDB(id); ok {
			ws.LinkGameDeveloper(g, d)
		}
	}
	return nil
}

// CoverArea returns the pixel area of the IGDB cover, 0 when there is none.
func CoverArea(payload json.RawMessage) (string, int) {
	if payload == nil {
		return "", 0
	}
	var p gamePayload
	if err := json.Unmarshal(payload, &p); err != nil || p.Cover == nil {
		return "", 0
	}
	return imageURL(p.Cover.URL, sizeCover), p.Cover.Width * p.Cover.Height
}

// imageURL makes an image URL absolute and swaps the thumbnail size for size.
func imageURL(u, size string) string {
	return strings.Replace(utils.AbsoluteURL(u, "https"), sizeThumb, size, 1)
}
