package newsapi

import (
	"encoding/json"
	"fmt"
	"time"

	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/utils"
	"gameframe/core/workingset"
)

// TimeLayout is the publishedAt format.
const TimeLayout = "2006-01-02T15:04:05Z"

// DefaultWhitelist holds the outlets whose articles are kept.
var DefaultWhitelist = []string{
	"Nintendolife.com", "Gonintendo.com", "Playstation.com", "IGN",
	"Starwars.com", "Mmorpg.com", "Rockpapershotgun.com", "Kotaku.com",
	"Kotaku.com.au", "Gameinformer.com", "1up.com", "Mactrast.com",
	"Techtimes.com", "Pcworld.com", "Techdirt.com", "Ongamers.com",
	"Playstationlifestyle.net", "Mynintendonews.com", "Gamespot.com",
	"Multiplayer.it", "Toucharcade.com", "Shacknews.com", "Kinja.com",
	"Wccftech.com", "Gamesasylum.com", "Pcgamer.com", "Vrfocus.com",
	"Ars Technica", "Blizzardwatch.com", "Gamasutra.com", "Gamespy.com",
	"Gamesradar.com", "Gametyrant.com", "Gamingbolt.com", "Phoronix.com",
	"Gamingonlinux.com", "Tweaktown.com", "Gameplanet.co.nz",
	"Gamezebo.com", "Gamezombie.tv", "Giantbomb.com", "Gamespark.jp",
	"Stratics.com", "Escapistmagazine.com", "Linuxtoday.com",
	"Omgubuntu.co.uk", "Idownloadblog.com",
}

// Adapter reads NewsAPI articles.
type Adapter struct {
	whitelist map[string]struct{}
}

// NewAdapter creates a NewsAPI adapter accepting the given outlets. An empty
// whitelist means DefaultWhitelist.
func NewAdapter(whitelist []string) *Adapter {
	if len(whitelist) == 0 {
		whitelist = DefaultWhitelist
	}
	a := &Adapter{whitelist: make(map[string]struct{}, len(whitelist))}
	for _, outlet := range whitelist {
		a.whitelist[outlet] = struct{}{}
	}
	return a
}

// Provider returns the registry provider this adapter reads.
func (a *Adapter) Provider() registry.Provider {
	return registry.ProviderNewsAPI
}

// ExtractTitle returns the article title.
func (a *Adapter) ExtractTitle(kind registry.Kind, payload json.RawMessage) (reconcile.Title, error) {
	if kind != registry.KindArticle {
		return reconcile.Title{}, fmt.Errorf("%w: newsapi has no %s titles", reconcile.ErrMissingPayload, kind)
	}
	var p articlePayload
	if err := reconcile.Decode(registry.ProviderNewsAPI, kind, payload, &p); err != nil {
		return reconcile.Title{}, err
	}
	return reconcile.Title{Name: p.Title}, nil
}

// BuildArticle sets the title, outlet, introduction, author, timestamp,
// cover and link. Protocol-relative URLs are upgraded to http; a relative
// cover is ignored.
func (a *Adapter) BuildArticle(article *workingset.Article, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	var p articlePayload
	if err := reconcile.Decode(registry.ProviderNewsAPI, registry.KindArticle, payload, &p); err != nil {
		return err
	}

	article.Title = p.Title
	article.Link = utils.AbsoluteURL(p.URL, "http")
	if p.Source.Name != "" {
		article.Outlet = p.Source.Name
	}
	if p.Description != "" {
		article.Introduction = p.Description
	}
	if p.Author != "" {
		article.Author = p.Author
	}
	if ts, err := time.Parse(TimeLayout, p.PublishedAt); err == nil {
		article.Timestamp = &ts
	}
	if cover := utils.AbsoluteURL(p.URLToImage, "http"); cover != "" && !utils.Relative(cover) {
		article.Cover = cover
	}
	return nil
}

// ValidateArticle reports whether an article comes from a whitelisted outlet
// and carries every field, with an absolute cover.
func (a *Adapter) ValidateArticle(payload json.RawMessage) bool {
	if payload == nil {
		return false
	}
	var p articlePayload
	if err := reconcile.Decode(registry.ProviderNewsAPI, registry.KindArticle, payload, &p); err != nil {
		return false
	}
	if _, ok := a.whitelist[p.Source.Name]; !ok {
		return false
	}
	v := validArticle{
		Outlet:      p.Source.Name,
		Author:      p.Author,
		Title:       p.Title,
		Description: p.Description,
		URL:         utils.AbsoluteURL(p.URL, "http"),
		Cover:       utils.AbsoluteURL(p.URLToImage, "http"),
		PublishedAt: p.PublishedAt,
	}
	return reconcile.Validate(v) == nil
}
