package cmd

import (
	"fmt"
	"net/http"

	"gameframe/core/config"
	"gameframe/core/database"
	"gameframe/core/keyring"
	"gameframe/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// keysCmd is the parent command for API key management.
var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Manage provider API keys stored in the registry",
}

var keysListCmd = &cobra.Command{
	Use:   "list [provider]",
	Short: "List stored API keys (masked)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		providers := keyring.Providers
		if len(args) == 1 {
			p, err := keyring.ParseProvider(args[0])
			if err != nil {
				return err
			}
			providers = []keyring.Provider{p}
		}

		_, l, db, err := connectRegistry(cmd)
		if err != nil {
			return err
		}
		defer l.Sync()

		for _, p := range providers {
			keys, err := keyring.List(cmd.Context(), db, p)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d keys, retry after %s)\n", p, len(keys), p.Timeout())
			for _, k := range keys {
				fmt.Fprintf(cmd.OutOrStdout(), "  %d\t%s\n", k.KeyID, keyring.Mask(k.APIKey))
			}
		}
		return nil
	},
}

var keysAddCmd = &cobra.Command{
	Use:   "add <provider> <key>",
	Short: "Store a new API key",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := keyring.ParseProvider(args[0])
		if err != nil {
			return err
		}

		_, l, db, err := connectRegistry(cmd)
		if err != nil {
			return err
		}
		defer l.Sync()

		if err := keyring.Migrate(db); err != nil {
			return err
		}
		key, err := keyring.Add(cmd.Context(), db, p, args[1])
		if err != nil {
			return err
		}
		l.Info("API key added",
			zap.String("provider", string(p)),
			zap.Int("key_id", key.KeyID),
			zap.String("key", keyring.Mask(key.APIKey)),
		)
		return nil
	},
}

var keysCheckCmd = &cobra.Command{
	Use:   "check <provider>",
	Short: "Find the first stored key the provider accepts",
	Long: `Tries the stored keys of a provider in turn, paced by KEYS_RATE, until one
is accepted. Every key is tried at most once.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := keyring.ParseProvider(args[0])
		if err != nil {
			return err
		}

		cfg, l, db, err := connectRegistry(cmd)
		if err != nil {
			return err
		}
		defer l.Sync()

		ring, err := keyring.Load(cmd.Context(), db, p, cfg.Keys.Limiter())
		if err != nil {
			return err
		}
		l.Info("Checking API keys", zap.String("provider", string(p)), zap.Int("keys", ring.Len()))

		checker := keyring.NewChecker(&http.Client{Timeout: cfg.Keys.Timeout()}, nil)
		key, err := checker.FirstWorking(cmd.Context(), ring)
		if err != nil {
			return err
		}
		l.Info("API key accepted", zap.String("provider", string(p)), zap.String("key", keyring.Mask(key)))
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysListCmd, keysAddCmd, keysCheckCmd)
	RootCmd.AddCommand(keysCmd)
}

// connectRegistry opens the registry without building a merge engine.
func connectRegistry(cmd *cobra.Command) (*config.Config, *zap.Logger, *gorm.DB, error) {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	l = logger.WithRun(l).With(zap.String("command", cmd.CommandPath()))

	db, err := database.Connect(cfg.Registry)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to connect to registry: %w", err)
	}
	return cfg, l, db, nil
}
