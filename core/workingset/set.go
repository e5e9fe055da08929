package workingset

// Set is the canonical entity graph built during one command invocation.
// It is not safe for concurrent mutation; readers may share it once the
// merge pass that built it has returned.
type Set struct {
	loaded bool

	games        []*Game
	gamesByID    map[int]*Game
	gamesByKey   map[string]*Game
	gamesByIGDB  map[int]*Game
	gamesBySteam map[int]*Game

	developers       []*Developer
	developersByID   map[int]*Developer
	developersByKey  map[string]*Developer
	developersByIGDB map[int]*Developer

	articles      []*Article
	articlesByID  map[int]*Article
	articlesByKey map[string]*Article
	videos        []*Video
	videosByID    map[int]*Video
	videosByKey   map[string]*Video
	tweets        []*Tweet
	tweetsByID    map[int]*Tweet
	tweetsByKey   map[string]*Tweet
}

// New returns an empty, unloaded working set.
func New() *Set {
	return &Set{}
}

// Load prepares the indices. Calling it on a loaded set is a no-op.
func (s *Set) Load() {
	if s.loaded {
		return
	}
	s.games = nil
	s.gamesByID = make(map[int]*Game)
	s.gamesByKey = make(map[string]*Game)
	s.gamesByIGDB = make(map[int]*Game)
	s.gamesBySteam = make(map[int]*Game)
	s.developers = nil
	s.developersByID = make(map[int]*Developer)
	s.developersByKey = make(map[string]*Developer)
	s.developersByIGDB = make(map[int]*Developer)
	s.articles = nil
	s.articlesByID = make(map[int]*Article)
	s.articlesByKey = make(map[string]*Article)
	s.videos = nil
	s.videosByID = make(map[int]*Video)
	s.videosByKey = make(map[string]*Video)
	s.tweets = nil
	s.tweetsByID = make(map[int]*Tweet)
	s.tweetsByKey = make(map[string]*Tweet)
	s.loaded = true
}

// Loaded reports whether Load has run since the last Reset.
func (s *Set) Loaded() bool {
	return s.loaded
}

// Reset discards every entity and reloads empty indices.
func (s *Set) Reset() {
	s.loaded = false
	s.Load()
}

// BuildGame returns the game registered under key, or creates one. When the
// key already exists, id and the provider ids become aliases of the existing
// game; its name is kept and only missing provider ids are filled in.
func (s *Set) BuildGame(id int, steamID, igdbID *int, name, key string) (*Game, bool) {
	s.Load()
	g, ok := s.gamesByKey[key]
	created := !ok
	if !ok {
		g = &Game{ID: id, SteamID: steamID, IGDBID: igdbID, Name: name, CName: key}
		s.games = append(s.games, g)
		s.gamesByKey[key] = g
	}
	s.indexGame(id, steamID, igdbID, g)
	return g, created
}

// AddGame registers a game built outside BuildGame and returns the game that
// owns its key afterwards.
func (s *Set) AddGame(g *Game) *Game {
	s.Load()
	if existing, ok := s.gamesByKey[g.CName]; ok {
		s.indexGame(g.ID, g.SteamID, g.IGDBID, existing)
		return existing
	}
	s.games = append(s.games, g)
	s.gamesByKey[g.CName] = g
	s.indexGame(g.ID, g.SteamID, g.IGDBID, g)
	return g
}

func (s *Set) indexGame(id int, steamID, igdbID *int, g *Game) {
	if _, ok := s.gamesByID[id]; !ok {
		s.gamesByID[id] = g
	}
	if g.SteamID == nil {
		g.SteamID = steamID
	}
	if g.IGDBID == nil {
		g.IGDBID = igdbID
	}
	if steamID != nil {
		if _, ok := s.gamesBySteam[*steamID]; !ok {
			s.gamesBySteam[*steamID] = g
		}
	}
	if igdbID != nil {
		if _, ok := s.gamesByIGDB[*igdbID]; !ok {
			s.gamesByIGDB[*igdbID] = g
		}
	}
}

// BuildDeveloper is the developer counterpart of BuildGame.
func (s *Set) BuildDeveloper(id int, igdbID *int, name, key string) (*Developer, bool) {
	s.Load()
	d, ok := s.developersByKey[key]
	created := !ok
	if !ok {
		d = &Developer{ID: id, IGDBID: igdbID, Name: name, CName: key}
		s.developers = append(s.developers, d)
		s.developersByKey[key] = d
	}
	s.indexDeveloper(id, igdbID, d)
	return d, created
}

// AddDeveloper registers a developer built outside BuildDeveloper.
func (s *Set) AddDeveloper(d *Developer) *Developer {
	s.Load()
	if existing, ok := s.developersByKey[d.CName]; ok {
		s.indexDeveloper(d.ID, d.IGDBID, existing)
		return existing
	}
	s.developers = append(s.developers, d)
	s.developersByKey[d.CName] = d
	s.indexDeveloper(d.ID, d.IGDBID, d)
	return d
}

func (s *Set) indexDeveloper(id int, igdbID *int, d *Developer) {
	if d.IGDBID == nil {
		d.IGDBID = igdbID
	}
	if _, ok := s.developersByID[id]; !ok {
		s.developersByID[id] = d
	}
	if igdbID != nil {
		if _, ok := s.developersByIGDB[*igdbID]; !ok {
			s.developersByIGDB[*igdbID] = d
		}
	}
}

// BuildArticle returns the article registered under key, or creates one.
func (s *Set) BuildArticle(id int, title, key string) (*Article, bool) {
	s.Load()
	if a, ok := s.articlesByKey[key]; ok {
		alias(s.articlesByID, id, a)
		return a, false
	}
	a := &Article{ID: id, Title: title, CTitle: key}
	return s.AddArticle(a), true
}

// AddArticle registers an article built outside BuildArticle.
func (s *Set) AddArticle(a *Article) *Article {
	s.Load()
	if existing, ok := s.articlesByKey[a.CTitle]; ok {
		alias(s.articlesByID, a.ID, existing)
		return existing
	}
	s.articles = append(s.articles, a)
	s.articlesByKey[a.CTitle] = a
	alias(s.articlesByID, a.ID, a)
	return a
}

// BuildVideo returns the video registered under key, or creates one.
func (s *Set) BuildVideo(id int, title, key string) (*Video, bool) {
	s.Load()
	if v, ok := s.videosByKey[key]; ok {
		alias(s.videosByID, id, v)
		return v, false
	}
	v := &Video{ID: id, Name: title, CName: key}
	return s.AddVideo(v), true
}

// AddVideo registers a video built outside BuildVideo.
func (s *Set) AddVideo(v *Video) *Video {
	s.Load()
	if existing, ok := s.videosByKey[v.CName]; ok {
		alias(s.videosByID, v.ID, existing)
		return existing
	}
	s.videos = append(s.videos, v)
	s.videosByKey[v.CName] = v
	alias(s.videosByID, v.ID, v)
	return v
}

// BuildTweet returns the tweet registered under key, or creates one.
func (s *Set) BuildTweet(id int, user, content, key string) (*Tweet, bool) {
	s.Load()
	if t, ok := s.tweetsByKey[key]; ok {
		alias(s.tweetsByID, id, t)
		return t, false
	}
	t := &Tweet{ID: id, User: user, Content: content, CKey: key}
	return s.AddTweet(t), true
}

// AddTweet registers a tweet built outside BuildTweet.
func (s *Set) AddTweet(t *Tweet) *Tweet {
	s.Load()
	if existing, ok := s.tweetsByKey[t.CKey]; ok {
		alias(s.tweetsByID, t.ID, existing)
		return existing
	}
	s.tweets = append(s.tweets, t)
	s.tweetsByKey[t.CKey] = t
	alias(s.tweetsByID, t.ID, t)
	return t
}

// alias maps id to entity unless id is already taken.
func alias[T any](index map[int]*T, id int, entity *T) {
	if _, ok := index[id]; !ok {
		index[id] = entity
	}
}
