package reconcile

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gameframe/core/metrics"
	"gameframe/core/registry"

	"go.uber.org/zap"
)

// Cleaner flags registry rows no provider accepts and deletes them once the
// operator confirms.
type Cleaner struct {
	engine *Engine
}

// NewCleaner creates a cleaner that shares the engine's registry cache,
// working set and sources.
func NewCleaner(engine *Engine) *Cleaner {
	return &Cleaner{engine: engine}
}

// verdict is the cleaner's judgement of one row.
type verdict struct {
	flagged    bool
	irrelevant bool
	reason     string
}

// PlanClean scans the registry rows of kind and returns the deletions it
// would perform. It does NOT execute them; use ApplyClean for that.
func (c *Cleaner) PlanClean(ctx context.Context, kind registry.Kind) (*CleanPlan, error) {
	switch kind {
	case registry.KindArticle:
		return scan(ctx, c, "article_id", c.judgeArticle)
	case registry.KindVideo:
		return scan(ctx, c, "video_id", c.judgeVideo)
	case registry.KindTweet:
		// Relevance is judged against the merged game.
		if len(c.engine.ws.Games()) == 0 {
			if _, err := c.engine.MergeGames(ctx); err != nil {
				return nil, err
			}
		}
		return scan(ctx, c, "tweet_id", c.judgeTweet)
	}
	return nil, fmt.Errorf("no quality criteria for %s", kind)
}

func scan[T registry.Row](ctx context.Context, c *Cleaner, field string, judge func(T) verdict) (*CleanPlan, error) {
	var zero T
	start := time.Now()
	e := c.engine

	e.ws.Load()
	ix, err := registry.Load[T](ctx, e.cache, field)
	if err != nil {
		return nil, err
	}

	plan := &CleanPlan{Kind: zero.Kind()}
	for row := range ix.All() {
		plan.Summary.TotalRows++
		v := judge(row)
		if !v.flagged {
			continue
		}
		if v.irrelevant {
			plan.Summary.Irrelevant++
		} else {
			plan.Summary.Invalid++
		}
		plan.Actions = append(plan.Actions, Action{
			Type:   ActionDeleteRegistry,
			Key:    row.RowID(),
			Reason: v.reason,
		})
		plan.Summary.DeleteActions++
		e.metrics.Row(string(plan.Kind), metrics.OutcomeFlagged)
		e.logger.Debug("Flagged registry row",
			zap.String("row", registry.Describe(row)),
			zap.String("reason", v.reason),
		)
	}

	e.metrics.Since("clean-"+strings.ToLower(string(plan.Kind)), start)
	e.logger.Info("Clean scan completed",
		zap.String("kind", string(plan.Kind)),
		zap.Int("scanned", plan.Summary.TotalRows),
		zap.Int("invalid", plan.Summary.Invalid),
		zap.Int("irrelevant", plan.Summary.Irrelevant),
		zap.Duration("duration", time.Since(start)),
	)
	return plan, nil
}

// judgeArticle flags an article that neither NewsAPI nor Steam validates.
func (c *Cleaner) judgeArticle(row registry.CachedArticle) verdict {
	payloads := row.Payloads()
	for _, p := range payloads {
		src, ok := c.engine.sources.Get(p.Provider)
		if !ok {
			continue
		}
		if v, ok := src.(ArticleValidator); ok && v.ValidateArticle(p.Data) {
			return verdict{}
		}
	}
	return verdict{flagged: true, reason: "no provider validates the article"}
}

func (c *Cleaner) judgeVideo(row registry.CachedVideo) verdict {
	for _, p := range row.Payloads() {
		src, ok := c.engine.sources.Get(p.Provider)
		if !ok {
			continue
		}
		if v, ok := src.(VideoValidator); ok && v.ValidateVideo(p.Data) {
			return verdict{}
		}
	}
	return verdict{flagged: true, reason: "no provider validates the video"}
}

// judgeTweet flags a tweet that is invalid or not about its game. A tweet
// whose game is not merged is not about it.
func (c *Cleaner) judgeTweet(row registry.CachedTweet) verdict {
	payloads := row.Payloads()
	valid := false
	for _, p := range payloads {
		src, ok := c.engine.sources.Get(p.Provider)
		if !ok {
			continue
		}
		if v, ok := src.(TweetValidator); ok && v.ValidateTweet(p.Data) {
			valid = true
			break
		}
	}
	if !valid {
		return verdict{flagged: true, reason: "no provider validates the tweet"}
	}

	g, _ := c.engine.ws.Game(row.GameID)
	for _, p := range payloads {
		src, ok := c.engine.sources.Get(p.Provider)
		if !ok {
			continue
		}
		if r, ok := src.(TweetRelevance); ok && r.RelevantTweet(g, p.Data) {
			return verdict{}
		}
	}
	if g == nil {
		return verdict{flagged: true, irrelevant: true, reason: fmt.Sprintf("game %d is not merged", row.GameID)}
	}
	return verdict{flagged: true, irrelevant: true, reason: fmt.Sprintf("tweet is not about %q", g.Name)}
}

// ApplyClean executes a clean plan. It deletes nothing and returns 0 for a
// dry run, and returns ErrAborted when the operator did not confirm.
// Deletion is one registry transaction: every flagged row goes or none does.
func (c *Cleaner) ApplyClean(ctx context.Context, plan *CleanPlan, opts CleanOptions) (executed int, err error) {
	if opts.DryRun {
		return 0, nil
	}
	if !opts.Confirmed {
		return 0, ErrAborted
	}

	var ids []int
	for _, action := range plan.Actions {
		if action.Type == ActionDeleteRegistry {
			ids = append(ids, action.Key)
		}
	}
	if len(ids) == 0 {
		return 0, nil
	}

	cache := c.engine.cache
	switch plan.Kind {
	case registry.KindArticle:
		err = registry.Delete[registry.CachedArticle](ctx, cache, ids)
	case registry.KindVideo:
		err = registry.Delete[registry.CachedVideo](ctx, cache, ids)
	case registry.KindTweet:
		err = registry.Delete[registry.CachedTweet](ctx, cache, ids)
	default:
		return 0, fmt.Errorf("cannot clean %s rows", plan.Kind)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to delete flagged %s rows: %w", plan.Kind, err)
	}

	c.engine.metrics.Deleted(string(plan.Kind), len(ids))
	return len(ids), nil
}
