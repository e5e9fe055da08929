package cmd

import (
	"fmt"

	"gameframe/core/config"
	"gameframe/core/database"
	"gameframe/core/logger"
	"gameframe/core/metrics"
	"gameframe/core/reconcile"
	"gameframe/core/registry"
	"gameframe/core/workingset"
	"gameframe/feature/sources/igdb"
	"gameframe/feature/sources/newsapi"
	"gameframe/feature/sources/steam"
	"gameframe/feature/sources/twitter"
	"gameframe/feature/sources/youtube"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// runtime holds everything one command invocation shares.
type runtime struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	metrics *metrics.Recorder
	engine  *reconcile.Engine
}

// newSources registers every provider adapter in priority order.
func newSources(cfg *config.Config) *reconcile.Sources {
	return reconcile.NewSources(
		steam.NewAdapter(),
		igdb.NewAdapter(),
		newsapi.NewAdapter(cfg.Merge.OutletList()),
		youtube.NewAdapter(),
		twitter.NewAdapter(),
	)
}

// bootstrap loads the configuration, connects to the registry and builds a
// fresh engine over an empty working set.
func bootstrap(cmd *cobra.Command) (*runtime, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRun(l).With(zap.String("command", cmd.Name()))

	db, err := database.Connect(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to registry: %w", err)
	}

	rec := metrics.New(cfg.Metrics.Namespace)
	engine := reconcile.NewEngine(
		registry.New(db, l),
		workingset.New(),
		newSources(cfg),
		cfg.Merge.Options(),
		l,
		rec,
	)

	return &runtime{cfg: cfg, logger: l, db: db, metrics: rec, engine: engine}, nil
}

// close exports the metrics and flushes the logger.
func (r *runtime) close() {
	if err := r.metrics.WriteTextfile(r.cfg.Metrics.Textfile); err != nil {
		r.logger.Warn("Failed to write metrics textfile", zap.Error(err))
	}
	_ = r.logger.Sync()
}
