package main

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	kerrors "github.com/kessho-pm/kessho/internal/errors"
	"github.com/kessho-pm/kessho/internal/transaction"
	"github.com/kessho-pm/kessho/internal/txui"
)

var (
	applyWatch      bool
	applyNoProgress bool
)

var applyCmd = &cobra.Command{
	Use:   "apply <action>...",
	Short: "Build a transaction and run it",
	Long: `Build a transaction from one or more install:<id>[@<target>] or
uninstall:<id>[@<target>] arguments, then run it, rendering progress as
it executes.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runApply,
}

func init() {
	applyCmd.Flags().BoolVar(&applyWatch, "watch", false, "Show a full-screen live view while applying")
	applyCmd.Flags().BoolVar(&applyNoProgress, "no-progress", false, "Print one line per event instead of progress bars")
}

func runApply(cmd *cobra.Command, args []string) error {
	loaded, err := loadStore()
	if err != nil {
		return err
	}

	requested, err := parseActionArgs(args, loaded.RepositoryURL, loaded.Config.DefaultTarget)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	tx, err := transaction.New(ctx, loaded.Store, loaded.Resolver, requested)
	if err != nil {
		formatter := kerrors.NewFormatter(cmd.ErrOrStderr(), noColor)
		cmd.Print(formatter.Format(kerrors.Translate(err)))
		return fmt.Errorf("building transaction: %w", err)
	}

	canceler, events := tx.Process(ctx)
	go func() {
		<-ctx.Done()
		canceler.Cancel()
	}()

	results, runErr := txui.Render(events, cmd.OutOrStdout(), txui.Options{
		Watch:      applyWatch,
		NoProgress: applyNoProgress,
	})

	cmd.Println()
	txui.PrintSummary(cmd.OutOrStdout(), results)

	if runErr != nil {
		formatter := kerrors.NewFormatter(cmd.ErrOrStderr(), noColor)
		cmd.Print(formatter.Format(kerrors.Translate(runErr)))
		return fmt.Errorf("applying transaction: %w", runErr)
	}
	return nil
}
