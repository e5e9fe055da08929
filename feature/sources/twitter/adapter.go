package twitter

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/text"
	"gameframe/core/workingset"
)

// StatusURL is the public link prefix of a tweet id.
const StatusURL = "https://twitter.com/user/status/"

// Adapter reads Twitter statuses.
type Adapter struct{}

// NewAdapter creates a new Twitter adapter.
func NewAdapter() *Adapter {
	return &Adapter{}
}

// Provider returns the registry provider this adapter reads.
func (a *Adapter) Provider() registry.Provider {
	return registry.ProviderTwitter
}

// ExtractTitle returns the tweet text with its author.
func (a *Adapter) ExtractTitle(kind registry.Kind, payload json.RawMessage) (reconcile.Title, error) {
	if kind != registry.KindTweet {
		return reconcile.Title{}, fmt.Errorf("%w: twitter has no %s titles", reconcile.ErrMissingPayload, kind)
	}
	p, err := decode(payload)
	if err != nil {
		return reconcile.Title{}, err
	}
	return reconcile.Title{Name: p.Text, Author: p.User.Name}, nil
}

func decode(payload json.RawMessage) (*tweetPayload, error) {
	var p tweetPayload
	if err := reconcile.Decode(registry.ProviderTwitter, registry.KindTweet, payload, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (p *tweetPayload) id() string {
	if p.IDStr != "" {
		return p.IDStr
	}
	return p.ID.String()
}

// BuildTweet sets the tweet id, link and timestamp.
func (a *Adapter) BuildTweet(t *workingset.Tweet, payload json.RawMessage) error {
	if payload == nil {
		return nil
	}
	p, err := decode(payload)
	if err != nil {
		return err
	}

	t.TwitterID = p.id()
	t.Link = StatusURL + t.TwitterID
	if ts, err := time.Parse(time.RubyDate, p.CreatedAt); err == nil {
		ts = ts.UTC()
		t.Timestamp = &ts
	}
	return nil
}

// ValidateTweet reports whether a tweet carries an id, text, author and date
// and is not a retweet.
func (a *Adapter) ValidateTweet(payload json.RawMessage) bool {
	if payload == nil {
		return false
	}
	p, err := decode(payload)
	if err != nil {
		return false
	}
	if len(p.RetweetedStatus) > 0 && string(p.RetweetedStatus) != "null" {
		return false
	}
	if strings.HasPrefix(p.Text, "RT @") {
		return false
	}
	v := validTweet{ID: p.id(), Text: p.Text, User: p.User.Name, CreatedAt: p.CreatedAt}
	return reconcile.Validate(v) == nil
}

// RelevantTweet reports whether a tweet is about g: the game name appears in
// the text, or every word of the game's search keywords does.
func (a *Adapter) RelevantTweet(g *workingset.Game, payload json.RawMessage) bool {
	if g == nil || payload == nil {
		return false
	}
	p, err := decode(payload)
	if err != nil {
		return false
	}
	if text.Contains(p.Text, g.Name) {
		return true
	}

	body, err := text.ConditionHeavy(p.Text)
	if err != nil {
		return false
	}
	words := make(map[string]struct{})
	for _, w := range strings.Fields(body) {
		words[w] = struct{}{}
	}
	tokens := text.KeywordTokens(text.Keywordize(g))
	if len(tokens) == 0 {
		return false
	}
	for _, tok := range tokens {
		if _, ok := words[tok]; !ok {
			return false
		}
	}
	return true
}
