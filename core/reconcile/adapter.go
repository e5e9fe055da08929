package reconcile

import (
	"encoding/json"

	"gameframe/core/registry"
	"gameframe/core/workingset"
)

// Source is a provider adapter. What a source can do is discovered by
// asserting the capability interfaces below; a missing capability is not an
// error, the engine simply does not call it.
//
// Builders must treat a nil payload as a no-op. Validators and relevance
// checks must report false for a nil payload.
type Source interface {
	Provider() registry.Provider
}

// Title is the display name a payload offers for its row.
type Title struct {
	Name string
	// Author is set for tweets, whose comparison key includes the user.
	Author string
}

// TitleExtractor reads the display name of a row from a payload.
type TitleExtractor interface {
	ExtractTitle(kind registry.Kind, payload json.RawMessage) (Title, error)
}

// GameBuilder enriches a canonical game. It receives the working set so it
// can credit developers that are already merged.
type GameBuilder interface {
	BuildGame(ws *workingset.Set, g *workingset.Game, payload json.RawMessage) error
}

// DeveloperBuilder enriches a canonical developer.
type DeveloperBuilder interface {
	BuildDeveloper(ws *workingset.Set, d *workingset.Developer, payload json.RawMessage) error
}

type ArticleBuilder interface {
	BuildArticle(a *workingset.Article, payload json.RawMessage) error
}

type VideoBuilder interface {
	BuildVideo(v *workingset.Video, payload json.RawMessage) error
}

type TweetBuilder interface {
	BuildTweet(t *workingset.Tweet, payload json.RawMessage) error
}

type ArticleValidator interface {
	ValidateArticle(payload json.RawMessage) bool
}

type VideoValidator interface {
	ValidateVideo(payload json.RawMessage) bool
}

type TweetValidator interface {
	ValidateTweet(payload json.RawMessage) bool
}

// TweetRelevance decides whether a tweet is about the game it was collected
// for. g is nil when the game is not in the working set.
type TweetRelevance interface {
	RelevantTweet(g *workingset.Game, payload json.RawMessage) bool
}

// Sources maps providers to their adapters.
type Sources struct {
	byProvider map[registry.Provider]Source
}

// NewSources registers adapters. A later adapter for the same provider
// replaces an earlier one.
func NewSources(sources ...Source) *Sources {
	s := &Sources{byProvider: make(map[registry.Provider]Source, len(sources))}
	for _, src := range sources {
		s.byProvider[src.Provider()] = src
	}
	return s
}

// Get returns the adapter of a provider.
func (s *Sources) Get(provider registry.Provider) (Source, bool) {
	src, ok := s.byProvider[provider]
	return src, ok
}

// present calls fn for every present payload that has an adapter, in the
// row's provider priority order.
func (s *Sources) present(payloads []registry.Payload, fn func(Source, json.RawMessage)) {
	for _, p := range payloads {
		if !p.Present() {
			continue
		}
		if src, ok := s.byProvider[p.Provider]; ok {
			fn(src, p.Data)
		}
	}
}

// Title returns the display name offered by the first present payload, in
// provider priority order, whose adapter can extract one.
func (s *Sources) Title(kind registry.Kind, payloads []registry.Payload) (Title, error) {
	for _, p := range payloads {
		if !p.Present() {
			continue
		}
		src, ok := s.byProvider[p.Provider]
		if !ok {
			continue
		}
		if ex, ok := src.(TitleExtractor); ok {
			return ex.ExtractTitle(kind, p.Data)
		}
	}
	return Title{}, ErrMissingPayload
}
