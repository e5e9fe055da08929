package reconcile

import (
	"context"
	"encoding/json"
	"errors"
	"regexp"
	"strings"
	"time"

	"gameframe/core/metrics"
	"gameframe/core/registry"
	"gameframe/core/text"
	"gameframe/core/workingset"

	"go.uber.org/zap"
)

// Engine merges registry rows into a working set.
type Engine struct {
	cache     *registry.Cache
	ws        *workingset.Set
	sources   *Sources
	opts      Options
	blacklist *regexp.Regexp
	logger    *zap.Logger
	metrics   *metrics.Recorder
}

// NewEngine creates an engine. recorder may be nil.
func NewEngine(cache *registry.Cache, ws *workingset.Set, sources *Sources, opts Options, logger *zap.Logger, recorder *metrics.Recorder) *Engine {
	return &Engine{
		cache:     cache,
		ws:        ws,
		sources:   sources,
		opts:      opts,
		blacklist: compileBlacklist(opts.Blacklist),
		logger:    logger,
		metrics:   recorder,
	}
}

// WorkingSet returns the set the engine merges into.
func (e *Engine) WorkingSet() *workingset.Set {
	return e.ws
}

// Cache returns the registry cache the engine reads.
func (e *Engine) Cache() *registry.Cache {
	return e.cache
}

// compileBlacklist matches any keyword as a whole word of a conditioned title.
func compileBlacklist(keywords []string) *regexp.Regexp {
	var alts []string
	for _, kw := range keywords {
		key, err := text.Condition(kw)
		if err != nil {
			continue
		}
		alts = append(alts, regexp.QuoteMeta(key))
	}
	if len(alts) == 0 {
		return nil
	}
	return regexp.MustCompile(`\b(?:` + strings.Join(alts, "|") + `)\b`)
}

// rowResult is what visiting one registry row produced.
type rowResult struct {
	linked bool
	// err is a row-level problem: a malformed secondary payload when the row
	// still merged, or the reason it was skipped or rejected.
	err    error
	merged bool
}

// mergeRows runs visit over every row of T keyed by field. Only a registry
// failure aborts the pass; row problems are logged and counted.
func mergeRows[T registry.Row](ctx context.Context, e *Engine, field string, unload bool, visit func(T) rowResult) (Report, error) {
	var zero T
	start := time.Now()
	report := Report{Kind: zero.Kind()}

	e.ws.Load()
	ix, err := registry.Load[T](ctx, e.cache, field)
	if err != nil {
		return report, err
	}

	for row := range ix.All() {
		report.Scanned++
		if registry.Empty(row) {
			report.Skipped++
			e.metrics.Row(string(report.Kind), metrics.OutcomeSkipped)
			continue
		}

		res := visit(row)
		outcome := e.classify(&report, res)
		e.metrics.Row(string(report.Kind), outcome)

		fields := []zap.Field{
			zap.String("row", registry.Describe(row)),
			zap.String("outcome", outcome),
		}
		if res.err != nil {
			fields = append(fields, zap.Error(res.err))
		}
		if outcome == metrics.OutcomeMalformed {
			e.logger.Warn("Malformed registry row", fields...)
		} else {
			e.logger.Debug("Merged registry row", fields...)
		}
	}

	if unload {
		registry.Unload[T](e.cache, field)
	}

	report.Duration = time.Since(start)
	e.metrics.Since("merge-"+strings.ToLower(string(report.Kind)), start)
	e.logger.Info("Merge completed",
		zap.String("kind", string(report.Kind)),
		zap.Int("scanned", report.Scanned),
		zap.Int("merged", report.Merged),
		zap.Int("skipped", report.Skipped),
		zap.Int("malformed", report.Malformed),
		zap.Int("rejected", report.Rejected),
		zap.Int("linked", report.Linked),
		zap.Duration("duration", report.Duration),
	)
	return report, nil
}

func (e *Engine) classify(report *Report, res rowResult) string {
	if res.linked {
		report.Linked++
	}
	outcome := metrics.OutcomeMerged
	switch {
	case res.merged:
		report.Merged++
		if errors.Is(res.err, ErrMalformedPayload) {
			report.Malformed++
			outcome = metrics.OutcomeMalformed
		}
	case errors.Is(res.err, ErrQualityRejected):
		report.Rejected++
		outcome = metrics.OutcomeRejected
	case errors.Is(res.err, ErrMissingPayload) && !errors.Is(res.err, ErrMalformedPayload):
		report.Skipped++
		outcome = metrics.OutcomeSkipped
	default:
		report.Malformed++
		outcome = metrics.OutcomeMalformed
	}
	return outcome
}

// MergeGames merges cached games. The dedup key is the conditioned Steam
// name, or the IGDB name when Steam has nothing.
func (e *Engine) MergeGames(ctx context.Context) (Report, error) {
	return mergeRows(ctx, e, "game_id", false, func(row registry.CachedGame) rowResult {
		payloads := row.Payloads()
		title, err := e.sources.Title(registry.KindGame, payloads)
		if err != nil {
			return rowResult{err: err}
		}
		key, err := text.Condition(title.Name)
		if err != nil {
			return rowResult{err: e.malformed(payloads, registry.KindGame, err)}
		}

		g, _ := e.ws.BuildGame(row.GameID, row.SteamID, row.IGDBID, title.Name, key)
		if row.Vindex > g.Vindex {
			g.Vindex = row.Vindex
		}

		var errs []error
		e.sources.present(payloads, func(src Source, data json.RawMessage) {
			if b, ok := src.(GameBuilder); ok {
				errs = append(errs, b.BuildGame(e.ws, g, data))
			}
		})
		return rowResult{merged: true, err: errors.Join(errs...)}
	})
}

// MergeDevelopers merges cached developers. Developers are keyed by their
// name without corporate suffixes.
func (e *Engine) MergeDevelopers(ctx context.Context) (Report, error) {
	return mergeRows(ctx, e, "igdb_id", false, func(row registry.CachedDeveloper) rowResult {
		payloads := row.Payloads()
		title, err := e.sources.Title(registry.KindDeveloper, payloads)
		if err != nil {
			return rowResult{err: err}
		}
		key, err := text.ConditionDeveloper(title.Name)
		if err != nil {
			return rowResult{err: e.malformed(payloads, registry.KindDeveloper, err)}
		}

		d, _ := e.ws.BuildDeveloper(row.DeveloperID, row.IGDBID, title.Name, key)

		var errs []error
		e.sources.present(payloads, func(src Source, data json.RawMessage) {
			if b, ok := src.(DeveloperBuilder); ok {
				errs = append(errs, b.BuildDeveloper(e.ws, d, data))
			}
		})
		return rowResult{merged: true, err: errors.Join(errs...)}
	})
}

// MergeArticles merges cached articles. An article whose conditioned title
// hits the blacklist is dropped. An article collected for a merged game must
// mention that game or one of its developers in its title or introduction.
func (e *Engine) MergeArticles(ctx context.Context) (Report, error) {
	return mergeRows(ctx, e, "article_id", false, func(row registry.CachedArticle) rowResult {
		payloads := row.Payloads()
		title, err := e.sources.Title(registry.KindArticle, payloads)
		if err != nil {
			return rowResult{err: err}
		}
		key, err := text.Condition(title.Name)
		if err != nil {
			return rowResult{err: e.malformed(payloads, registry.KindArticle, err)}
		}
		if e.blacklist != nil {
			if kw := e.blacklist.FindString(key); kw != "" {
				return rowResult{err: rejected("title contains blacklisted keyword %q", kw)}
			}
		}

		candidate := &workingset.Article{ID: row.ArticleID, Title: title.Name, CTitle: key}
		buildErr := e.buildArticle(candidate, payloads)

		g, hasGame := e.ws.Game(row.GameID)
		if hasGame && !mentions(g, candidate) {
			return rowResult{err: rejected("article does not mention %q", g.Name)}
		}

		a := e.ws.AddArticle(candidate)
		if a != candidate {
			e.buildArticle(a, payloads)
		}
		if hasGame {
			e.ws.LinkArticle(g, a)
		}
		return rowResult{merged: true, linked: hasGame, err: buildErr}
	})
}

func (e *Engine) buildArticle(a *workingset.Article, payloads []registry.Payload) error {
	var errs []error
	e.sources.present(payloads, func(src Source, data json.RawMessage) {
		if b, ok := src.(ArticleBuilder); ok {
			errs = append(errs, b.BuildArticle(a, data))
		}
	})
	return errors.Join(errs...)
}

// mentions reports whether the article names the game or any developer
// credited on it.
func mentions(g *workingset.Game, a *workingset.Article) bool {
	names := []string{g.Name}
	for _, d := range g.Developers {
		names = append(names, d.CName)
	}
	for _, name := range names {
		if text.Contains(a.Title, name) || text.Contains(a.Introduction, name) {
			return true
		}
	}
	return false
}

// MergeVideos merges cached videos and releases their registry index.
func (e *Engine) MergeVideos(ctx context.Context) (Report, error) {
	return mergeRows(ctx, e, "video_id", true, func(row registry.CachedVideo) rowResult {
		payloads := row.Payloads()
		title, err := e.sources.Title(registry.KindVideo, payloads)
		if err != nil {
			return rowResult{err: err}
		}
		key, err := text.Condition(title.Name)
		if err != nil {
			return rowResult{err: e.malformed(payloads, registry.KindVideo, err)}
		}

		v, _ := e.ws.BuildVideo(row.VideoID, title.Name, key)
		var errs []error
		e.sources.present(payloads, func(src Source, data json.RawMessage) {
			if b, ok := src.(VideoBuilder); ok {
				errs = append(errs, b.BuildVideo(v, data))
			}
		})

		g, hasGame := e.ws.Game(row.GameID)
		if hasGame {
			e.ws.LinkVideo(g, v)
		}
		return rowResult{merged: true, linked: hasGame, err: errors.Join(errs...)}
	})
}

// MergeTweets merges cached tweets and releases their registry index. Every
// tweet is built, but only the first TweetCap tweets of a game are linked.
// Validity and relevance are left to the cleaner.
func (e *Engine) MergeTweets(ctx context.Context) (Report, error) {
	return mergeRows(ctx, e, "tweet_id", true, func(row registry.CachedTweet) rowResult {
		payloads := row.Payloads()
		title, err := e.sources.Title(registry.KindTweet, payloads)
		if err != nil {
			return rowResult{err: err}
		}
		user, err := text.Condition(title.Author)
		if err != nil {
			return rowResult{err: e.malformed(payloads, registry.KindTweet, err)}
		}
		content, err := text.Condition(title.Name)
		if err != nil {
			return rowResult{err: e.malformed(payloads, registry.KindTweet, err)}
		}

		t, _ := e.ws.BuildTweet(row.TweetID, title.Author, title.Name, user+"|"+content)
		var errs []error
		e.sources.present(payloads, func(src Source, data json.RawMessage) {
			if b, ok := src.(TweetBuilder); ok {
				errs = append(errs, b.BuildTweet(t, data))
			}
		})

		linked := false
		if g, ok := e.ws.Game(row.GameID); ok {
			linked = e.ws.LinkTweet(g, t, e.opts.TweetCap)
		}
		return rowResult{merged: true, linked: linked, err: errors.Join(errs...)}
	})
}

// MergeAll runs every merge in dependency order: games, developers,
// articles, videos, tweets.
func (e *Engine) MergeAll(ctx context.Context) ([]Report, error) {
	passes := []func(context.Context) (Report, error){
		e.MergeGames,
		e.MergeDevelopers,
		e.MergeArticles,
		e.MergeVideos,
		e.MergeTweets,
	}

	reports := make([]Report, 0, len(passes))
	for _, pass := range passes {
		report, err := pass(ctx)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

// malformed attributes a conditioning failure to the payload that supplied
// the display name.
func (e *Engine) malformed(payloads []registry.Payload, kind registry.Kind, err error) error {
	for _, p := range payloads {
		if p.Present() {
			return &MalformedPayloadError{Provider: p.Provider, Kind: kind, Fields: []string{"name"}, Err: err}
		}
	}
	return &MalformedPayloadError{Kind: kind, Err: err}
}
