package workingset

// Game returns the game registered under the internal id, including alias ids.
func (s *Set) Game(id int) (*Game, bool) {
	g, ok := s.gamesByID[id]
	return g, ok
}

// GameByKey returns the game whose comparison key equals key.
func (s *Set) GameByKey(key string) (*Game, bool) {
	g, ok := s.gamesByKey[key]
	return g, ok
}

// GameByIGDB returns the game carrying the IGDB id.
func (s *Set) GameByIGDB(id int) (*Game, bool) {
	g, ok := s.gamesByIGDB[id]
	return g, ok
}

// GameBySteam returns the game carrying the Steam app id.
func (s *Set) GameBySteam(id int) (*Game, bool) {
	g, ok := s.gamesBySteam[id]
	return g, ok
}

func (s *Set) Developer(id int) (*Developer, bool) {
	d, ok := s.developersByID[id]
	return d, ok
}

func (s *Set) DeveloperByKey(key string) (*Developer, bool) {
	d, ok := s.developersByKey[key]
	return d, ok
}

func (s *Set) DeveloperByIGDB(id int) (*Developer, bool) {
	d, ok := s.developersByIGDB[id]
	return d, ok
}

func (s *Set) Article(id int) (*Article, bool) {
	a, ok := s.articlesByID[id]
	return a, ok
}

func (s *Set) ArticleByKey(key string) (*Article, bool) {
	a, ok := s.articlesByKey[key]
	return a, ok
}

func (s *Set) Video(id int) (*Video, bool) {
	v, ok := s.videosByID[id]
	return v, ok
}

func (s *Set) VideoByKey(key string) (*Video, bool) {
	v, ok := s.videosByKey[key]
	return v, ok
}

func (s *Set) Tweet(id int) (*Tweet, bool) {
	t, ok := s.tweetsByID[id]
	return t, ok
}

func (s *Set) TweetByKey(key string) (*Tweet, bool) {
	t, ok := s.tweetsByKey[key]
	return t, ok
}

// Games returns every canonical game in creation order.
func (s *Set) Games() []*Game { return s.games }

// Developers returns every canonical developer in creation order.
func (s *Set) Developers() []*Developer { return s.developers }

// Articles returns every canonical article in creation order.
func (s *Set) Articles() []*Article { return s.articles }

// Videos returns every canonical video in creation order.
func (s *Set) Videos() []*Video { return s.videos }

// Tweets returns every canonical tweet in creation order.
func (s *Set) Tweets() []*Tweet { return s.tweets }
