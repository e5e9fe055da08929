package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"gameframe/core/loader"
	"gameframe/core/logger"
	"gameframe/core/middleware/auth"
	"gameframe/core/middleware/rayid"
	"gameframe/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Merge the registry and serve the catalog API",
	Long: `Runs merge-all once, then serves the merged games, developers and
articles read-only over HTTP until interrupted.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().BoolVar(&trimFlag, "trim", false, "Remove low-quality games and developers before serving")
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	rt, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer rt.close()
	logg := rt.logger

	// 1. Build the catalog
	if err := mergeAll(cmd.Context(), rt, trimFlag || rt.cfg.Merge.Trim, false); err != nil {
		return err
	}

	// 2. Initialize Fiber App
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// 3. Register Features
	mgr := loader.NewManager()
	mgr.Register(catalog.NewFeature(rt.engine.WorkingSet(), logg))

	// 4. Middleware: ray id first so every log line carries it
	app.Use(rayid.New())
	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Debug("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(rt.metrics.Gatherer(), promhttp.HandlerOpts{})))

	app.Use(auth.New(auth.Config{
		ApiKey:      rt.cfg.Server.ApiKey,
		PublicPaths: []string{"/health", "/metrics"},
	}))

	// 5. Load Features
	loaded, err := mgr.LoadAll(app)
	if err != nil {
		return err
	}
	logg.Info("Features loaded", zap.Strings("features", loaded))

	// 6. Start Server
	errc := make(chan error, 1)
	go func() {
		logg.Info("Starting server", zap.String("addr", rt.cfg.Server.Addr()))
		errc <- app.Listen(rt.cfg.Server.Addr())
	}()

	// 7. Graceful Shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errc:
		return err
	case <-sig:
	}
	logg.Info("Shutting down server...")
	return app.Shutdown()
}
