package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"gameframe/core/reconcile"
	"gameframe/core/registry"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	dryRunClean bool
	yesConfirm  bool
)

// cleanCommand builds a clean-<kind> command. Planning always runs; deletion
// needs an interactive "y" or --yes, and never happens with --dry-run.
func cleanCommand(kind registry.Kind) *cobra.Command {
	use := "clean-" + strings.ToLower(string(kind)) + "s"
	return &cobra.Command{
		Use:   use,
		Short: fmt.Sprintf("Delete invalid or irrelevant %s rows from the registry", strings.ToLower(string(kind))),
		Long: fmt.Sprintf(`Scan the cached %[1]s rows, report the ones that fail validation and
delete them from the registry after confirmation.

Examples:
  # Report only
  %[2]s --dry-run

  # Delete with interactive confirmation
  %[2]s

  # Delete with auto-confirm (non-interactive)
  %[2]s --yes`, strings.ToLower(string(kind)), use),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(cmd, kind)
		},
	}
}

func init() {
	for _, kind := range []registry.Kind{registry.KindArticle, registry.KindVideo, registry.KindTweet} {
		c := cleanCommand(kind)
		c.Flags().BoolVar(&dryRunClean, "dry-run", false, "Report only, never delete")
		c.Flags().BoolVar(&yesConfirm, "yes", false, "Auto-confirm deletion (non-interactive)")
		RootCmd.AddCommand(c)
	}
}

func runClean(cmd *cobra.Command, kind registry.Kind) error {
	ctx := cmd.Context()

	rt, err := bootstrap(cmd)
	if err != nil {
		return err
	}
	defer rt.close()

	cleaner := reconcile.NewCleaner(rt.engine)

	rt.logger.Info("Planning clean...", zap.String("kind", string(kind)))
	plan, err := cleaner.PlanClean(ctx, kind)
	if err != nil {
		return fmt.Errorf("failed to plan clean: %w", err)
	}
	printCleanReport(rt.logger, plan)

	if len(plan.Actions) == 0 {
		rt.logger.Info("Nothing to delete.")
		return nil
	}

	opts := reconcile.CleanOptions{DryRun: dryRunClean}
	if !dryRunClean {
		opts.Confirmed = confirmDestructiveAction(cmd.InOrStdin(), cmd.OutOrStdout(), yesConfirm, len(plan.Actions))
	}

	executed, err := cleaner.ApplyClean(ctx, plan, opts)
	switch {
	case errors.Is(err, reconcile.ErrAborted):
		rt.logger.Warn("Operation cancelled by user. No changes were made.")
		return nil
	case err != nil:
		return fmt.Errorf("failed to apply clean: %w", err)
	case dryRunClean:
		rt.logger.Info("Dry-run mode: No changes were made.")
	default:
		rt.logger.Info("Deleted registry rows", zap.String("kind", string(kind)), zap.Int("count", executed))
	}
	return nil
}

// printCleanReport logs the plan summary and a sample of its actions.
func printCleanReport(l *zap.Logger, plan *reconcile.CleanPlan) {
	s := plan.Summary

	l.Info("Clean report",
		zap.String("kind", string(plan.Kind)),
		zap.Int("total_rows", s.TotalRows),
		zap.Int("invalid", s.Invalid),
		zap.Int("irrelevant", s.Irrelevant),
		zap.Int("delete_actions", s.DeleteActions),
	)

	maxShow := min(len(plan.Actions), 5)
	for _, action := range plan.Actions[:maxShow] {
		l.Info("Sample action",
			zap.String("type", string(action.Type)),
			zap.Int("key", action.Key),
			zap.String("reason", action.Reason),
		)
	}
	if len(plan.Actions) > maxShow {
		l.Info("Additional actions not shown", zap.Int("count", len(plan.Actions)-maxShow))
	}
}

// confirmDestructiveAction asks the operator to confirm. Only a literal "y"
// confirms; anything else, including EOF, declines.
func confirmDestructiveAction(in io.Reader, out io.Writer, yes bool, count int) bool {
	if yes {
		fmt.Fprintln(out, "\n✓ Auto-confirmed via --yes flag")
		return true
	}

	fmt.Fprintf(out, "\n⚠️  Delete %d registry rows? Type 'y' to confirm: ", count)
	response, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && response == "" {
		return false
	}
	return strings.TrimRight(response, "\r\n") == "y"
}
