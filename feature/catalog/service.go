package catalog

import (
	"errors"
	"slices"
	"strings"
	"time"

	"gameframe/core/text"
	"gameframe/core/workingset"

	"go.uber.org/zap"
)

// ErrNotFound means the requested entity is not in the catalog.
var ErrNotFound = errors.New("not found")

const (
	defaultLimit = 50
	maxLimit     = 200
)

// GameQuery filters the game listing.
type GameQuery struct {
	Search   string
	Genre    string
	Platform string
	Limit    int
	Offset   int
}

// Service answers catalog queries over a merged working set. The set must
// not be mutated while the service is in use.
type Service struct {
	ws     *workingset.Set
	logger *zap.Logger
}

// NewService creates a new catalog service.
func NewService(ws *workingset.Set, logger *zap.Logger) *Service {
	return &Service{ws: ws, logger: logger}
}

func window(total, limit, offset int) (int, int) {
	if limit <= 0 {
		limit = defaultLimit
	}
	limit = min(limit, maxLimit)
	offset = max(offset, 0)
	start := min(offset, total)
	return start, min(start+limit, total)
}

func hasFold(list []string, want string) bool {
	return slices.ContainsFunc(list, func(s string) bool { return strings.EqualFold(s, want) })
}

// Games lists the games matching q in name order.
func (s *Service) Games(q GameQuery) Page[GameSummary] {
	var matched []*workingset.Game
	for _, g := range s.ws.Games() {
		if q.Genre != "" && !hasFold(g.Genres, q.Genre) {
			continue
		}
		if q.Platform != "" && !hasFold(g.Platforms, q.Platform) {
			continue
		}
		if q.Search != "" && !text.Contains(g.Name, q.Search) {
			continue
		}
		matched = append(matched, g)
	}
	slices.SortStableFunc(matched, func(a, b *workingset.Game) int {
		return strings.Compare(a.CName, b.CName)
	})

	start, end := window(len(matched), q.Limit, q.Offset)
	page := Page[GameSummary]{Total: len(matched), Offset: start, Items: make([]GameSummary, 0, end-start)}
	for _, g := range matched[start:end] {
		page.Items = append(page.Items, summarize(g))
	}
	return page
}

// Game returns one game by any of its internal ids.
func (s *Service) Game(id int) (GameDetail, error) {
	g, ok := s.ws.Game(id)
	if !ok {
		return GameDetail{}, ErrNotFound
	}

	detail := GameDetail{
		GameSummary: summarize(g),
		SteamID:     g.SteamID,
		IGDBID:      g.IGDBID,
		Summary:     g.Summary,
		Screenshots: g.Screenshots,
		Website:     g.Website,
		Price:       g.Price,
		Developers:  developerRefs(g.Developers),
		Articles:    articleViews(g.Articles),
		Videos:      make([]VideoView, 0, len(g.Videos)),
		Tweets:      make([]TweetView, 0, len(g.Tweets)),
	}
	for _, v := range g.Videos {
		detail.Videos = append(detail.Videos, VideoView{
			ID: v.ID, Name: v.Name, Link: v.VideoLink, Thumbnail: v.Thumbnail,
			Channel: v.Channel, Timestamp: v.Timestamp,
		})
	}
	for _, t := range g.Tweets {
		detail.Tweets = append(detail.Tweets, TweetView{
			ID: t.ID, User: t.User, Content: t.Content, Link: t.Link, Timestamp: t.Timestamp,
		})
	}
	return detail, nil
}

// Developer returns one developer by any of its internal ids.
func (s *Service) Developer(id int) (DeveloperDetail, error) {
	d, ok := s.ws.Developer(id)
	if !ok {
		return DeveloperDetail{}, ErrNotFound
	}
	return DeveloperDetail{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Logo:        d.Logo,
		Website:     d.Website,
		Country:     d.Country,
		Founded:     d.Founded,
		Games:       gameRefs(d.Games),
		Articles:    articleViews(d.Articles),
	}, nil
}

// Articles lists articles newest first. Articles without a timestamp come last.
func (s *Service) Articles(limit, offset int) Page[ArticleView] {
	articles := slices.Clone(s.ws.Articles())
	slices.SortStableFunc(articles, func(a, b *workingset.Article) int {
		return compareDesc(a.Timestamp, b.Timestamp)
	})

	start, end := window(len(articles), limit, offset)
	return Page[ArticleView]{
		Total:  len(articles),
		Offset: start,
		Items:  articleViews(articles[start:end]),
	}
}

func compareDesc(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return b.Compare(*a)
}

// Stats returns the size of the catalog.
func (s *Service) Stats() workingset.Stats {
	return s.ws.Stats()
}
