package workingset

// LinkGameDeveloper credits d on g. The game's current articles are carried
// over to the developer so the developer article list stays the union of its
// games' articles whichever side is merged first.
func (s *Set) LinkGameDeveloper(g *Game, d *Developer) {
	g.Developers = xappend(g.Developers, d)
	d.Games = xappend(d.Games, g)
	for _, a := range g.Articles {
		linkDeveloperArticle(d, a)
	}
}

// LinkArticle attaches a to g and to every developer of g.
func (s *Set) LinkArticle(g *Game, a *Article) {
	g.Articles = xappend(g.Articles, a)
	a.Games = xappend(a.Games, g)
	for _, d := range g.Developers {
		linkDeveloperArticle(d, a)
	}
}

func linkDeveloperArticle(d *Developer, a *Article) {
	d.Articles = xappend(d.Articles, a)
	a.Developers = xappend(a.Developers, d)
}

// LinkVideo attaches v to g.
func (s *Set) LinkVideo(g *Game, v *Video) {
	g.Videos = xappend(g.Videos, v)
	v.Games = xappend(v.Games, g)
}

// LinkTweet attaches t to g unless g already holds limit tweets. A tweet that
// is already linked stays linked. A limit of zero or less disables the cap.
func (s *Set) LinkTweet(g *Game, t *Tweet, limit int) bool {
	if contains(g.Tweets, t) {
		return true
	}
	if limit > 0 && len(g.Tweets) >= limit {
		return false
	}
	g.Tweets = append(g.Tweets, t)
	t.Games = xappend(t.Games, g)
	return true
}

// TrimPolicy sets the quality thresholds applied by Trim.
type TrimPolicy struct {
	MinSummary int
}

// DefaultTrimPolicy is the policy used by merge-all --trim.
var DefaultTrimPolicy = TrimPolicy{MinSummary: 10}

// TrimResult counts the entities removed by Trim.
type TrimResult struct {
	Games      int
	Developers int
}

// Trim removes games lacking a cover, screenshots, a long enough summary,
// developers or articles, and developers lacking a logo, games or articles.
// Both checks run against the graph as it was before trimming.
func (s *Set) Trim(policy TrimPolicy) TrimResult {
	var games []*Game
	for _, g := range s.games {
		if g.Cover == "" || len(g.Screenshots) == 0 || len(g.Summary) < policy.MinSummary ||
			len(g.Developers) == 0 || len(g.Articles) == 0 {
			games = append(games, g)
		}
	}
	var developers []*Developer
	for _, d := range s.developers {
		if d.Logo == "" || len(d.Games) == 0 || len(d.Articles) == 0 {
			developers = append(developers, d)
		}
	}

	for _, g := range games {
		s.removeGame(g)
	}
	for _, d := range developers {
		s.removeDeveloper(d)
	}
	return TrimResult{Games: len(games), Developers: len(developers)}
}

func (s *Set) removeGame(g *Game) {
	for _, d := range g.Developers {
		d.Games = remove(d.Games, g)
		for _, a := range g.Articles {
			if !reaches(d, a) {
				d.Articles = remove(d.Articles, a)
				a.Developers = remove(a.Developers, d)
			}
		}
	}
	for _, a := range g.Articles {
		a.Games = remove(a.Games, g)
	}
	for _, v := range g.Videos {
		v.Games = remove(v.Games, g)
	}
	for _, t := range g.Tweets {
		t.Games = remove(t.Games, g)
	}
	s.games = remove(s.games, g)
	dropValue(s.gamesByID, g)
	dropValue(s.gamesByKey, g)
	dropValue(s.gamesByIGDB, g)
	dropValue(s.gamesBySteam, g)
}

func (s *Set) removeDeveloper(d *Developer) {
	for _, g := range d.Games {
		g.Developers = remove(g.Developers, d)
	}
	for _, a := range d.Articles {
		a.Developers = remove(a.Developers, d)
	}
	s.developers = remove(s.developers, d)
	dropValue(s.developersByID, d)
	dropValue(s.developersByKey, d)
	dropValue(s.developersByIGDB, d)
}

// reaches reports whether a is still on one of d's games.
func reaches(d *Developer, a *Article) bool {
	for _, g := range d.Games {
		if contains(g.Articles, a) {
			return true
		}
	}
	return false
}

func dropValue[K comparable, V comparable](index map[K]V, value V) {
	for k, v := range index {
		if v == value {
			delete(index, k)
		}
	}
}

// Stats summarizes the size of the graph.
type Stats struct {
	Games      int
	Developers int
	Articles   int
	Videos     int
	Tweets     int

	GameDeveloperLinks    int
	GameArticleLinks      int
	DeveloperArticleLinks int
	GameVideoLinks        int
	GameTweetLinks        int
}

// Stats counts entities and relationship edges.
func (s *Set) Stats() Stats {
	st := Stats{
		Games:      len(s.games),
		Developers: len(s.developers),
		Articles:   len(s.articles),
		Videos:     len(s.videos),
		Tweets:     len(s.tweets),
	}
	for _, g := range s.games {
		st.GameDeveloperLinks += len(g.Developers)
		st.GameArticleLinks += len(g.Articles)
		st.GameVideoLinks += len(g.Videos)
		st.GameTweetLinks += len(g.Tweets)
	}
	for _, d := range s.developers {
		st.DeveloperArticleLinks += len(d.Articles)
	}
	return st
}
