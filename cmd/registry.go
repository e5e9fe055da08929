package cmd

import (
	"fmt"

	"gameframe/core/database"
	"gameframe/core/keyring"
	"gameframe/core/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// initRegistryCmd creates the registry and key tables.
var initRegistryCmd = &cobra.Command{
	Use:   "init-registry",
	Short: "Create or update the registry and API key tables",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, l, db, err := connectRegistry(cmd)
		if err != nil {
			return err
		}
		defer l.Sync()

		if err := registry.Migrate(db); err != nil {
			return fmt.Errorf("failed to migrate registry: %w", err)
		}
		if err := keyring.Migrate(db); err != nil {
			return err
		}

		for _, model := range registry.Models() {
			row := model.(registry.Row)
			cols, err := database.GetTableColumns(db, row.TableName())
			if err != nil {
				return err
			}
			l.Info("Registry table ready", zap.String("table", row.TableName()), zap.Int("columns", len(cols)))
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(initRegistryCmd)
}
