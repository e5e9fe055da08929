package cmd

import (
	"context"
	"fmt"

	"gameframe/core/reconcile"
	"gameframe/core/storage"
	"gameframe/core/workingset"
	"gameframe/feature/covers"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	trimFlag   bool
	coversFlag bool
)

type pass func(*reconcile.Engine, context.Context) (reconcile.Report, error)

var (
	gamesPass      pass = (*reconcile.Engine).MergeGames
	developersPass pass = (*reconcile.Engine).MergeDevelopers
	articlesPass   pass = (*reconcile.Engine).MergeArticles
	videosPass     pass = (*reconcile.Engine).MergeVideos
	tweetsPass     pass = (*reconcile.Engine).MergeTweets
)

// mergeCommand builds a merge-<kind> command. The working set only lives for
// one invocation, so the passes a kind links against run first.
func mergeCommand(use, short string, passes ...pass) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer rt.close()

			for _, p := range passes {
				report, err := p(rt.engine, cmd.Context())
				if err != nil {
					return fmt.Errorf("%s failed: %w", use, err)
				}
				printMergeReport(rt.logger, report)
			}
			printStats(rt.logger, rt.engine.WorkingSet().Stats())
			return nil
		},
	}
}

var mergeAllCmd = &cobra.Command{
	Use:   "merge-all",
	Short: "Merge every registry kind into the working set",
	Long: `Merge games, developers, articles, videos and tweets in that order.

Examples:
  # Merge everything
  merge-all

  # Drop low-quality games and developers afterwards
  merge-all --trim

  # Choose and upload game covers
  merge-all --covers`,
	Args: cobra.NoArgs,
	RunE: runMergeAll,
}

func init() {
	RootCmd.AddCommand(
		mergeCommand("merge-games", "Merge cached games from Steam and IGDB", gamesPass),
		mergeCommand("merge-developers", "Merge cached developers from IGDB", gamesPass, developersPass),
		mergeCommand("merge-articles", "Merge cached articles from Steam news and NewsAPI", gamesPass, developersPass, articlesPass),
		mergeCommand("merge-videos", "Merge cached YouTube videos", gamesPass, videosPass),
		mergeCommand("merge-tweets", "Merge cached tweets", gamesPass, tweetsPass),
	)

	mergeAllCmd.Flags().BoolVar(&trimFlag, "trim", false, "Remove low-quality games and developers after merging")
	mergeAllCmd.Flags().BoolVar(&coversFlag, "covers", false, "Choose and upload game covers after merging")
	RootCmd.AddCommand(mergeAllCmd)
}

func runMergeAll(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	return mergeAll(cmd.Context(), rt, trimFlag || rt.cfg.Merge.Trim, coversFlag)
}

// mergeAll runs every pass, then the optional cover and trim passes.
func mergeAll(ctx context.Context, rt *runtime, trim, withCovers bool) error {
	reports, err := rt.engine.MergeAll(ctx)
	for _, report := range reports {
		printMergeReport(rt.logger, report)
	}
	if err != nil {
		return fmt.Errorf("merge-all failed: %w", err)
	}

	ws := rt.engine.WorkingSet()
	if withCovers {
		client, err := storage.NewClient(rt.cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to create storage client: %w", err)
		}
		svc := covers.NewService(client, rt.cfg.Storage.Bucket, rt.cfg.Covers, rt.engine.Cache(), rt.logger)
		if _, err := svc.Merge(ctx, ws); err != nil {
			return fmt.Errorf("cover merge failed: %w", err)
		}
	}

	if trim {
		removed := ws.Trim(workingset.DefaultTrimPolicy)
		rt.logger.Info("Trimmed working set",
			zap.Int("games", removed.Games),
			zap.Int("developers", removed.Developers),
		)
	}

	printStats(rt.logger, ws.Stats())
	return nil
}

// printMergeReport logs the outcome of one merge pass.
func printMergeReport(l *zap.Logger, r reconcile.Report) {
	l.Info("Merge report",
		zap.String("kind", string(r.Kind)),
		zap.Int("scanned", r.Scanned),
		zap.Int("skipped", r.Skipped),
		zap.Int("merged", r.Merged),
		zap.Int("malformed", r.Malformed),
		zap.Int("rejected", r.Rejected),
		zap.Int("linked", r.Linked),
		zap.Duration("duration", r.Duration),
	)
}

func printStats(l *zap.Logger, s workingset.Stats) {
	l.Info("Working set",
		zap.Int("games", s.Games),
		zap.Int("developers", s.Developers),
		zap.Int("articles", s.Articles),
		zap.Int("videos", s.Videos),
		zap.Int("tweets", s.Tweets),
		zap.Int("game_developer_links", s.GameDeveloperLinks),
		zap.Int("game_article_links", s.GameArticleLinks),
	)
}
