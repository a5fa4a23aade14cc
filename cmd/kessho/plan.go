package main

import (
	"fmt"

	"github.com/spf13/cobra"

	kerrors "github.com/kessho-pm/kessho/internal/errors"
	"github.com/kessho-pm/kessho/internal/planformat"
	"github.com/kessho-pm/kessho/internal/transaction"
)

var planOutputFormat string

var planCmd = &cobra.Command{
	Use:   "plan <action>...",
	Short: "Build and print a transaction without running it",
	Long: `Build a transaction from one or more install:<id>[@<target>] or
uninstall:<id>[@<target>] arguments and print the resulting plan.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runPlan,
}

func init() {
	planCmd.Flags().StringVarP(&planOutputFormat, "format", "o", "text", "Output format: text, yaml")
	_ = planCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"text", "yaml"}, cobra.ShellCompDirectiveNoFileComp
	})
}

func runPlan(cmd *cobra.Command, args []string) error {
	loaded, err := loadStore()
	if err != nil {
		return err
	}

	requested, err := parseActionArgs(args, loaded.RepositoryURL, loaded.Config.DefaultTarget)
	if err != nil {
		return err
	}

	tx, err := transaction.New(cmd.Context(), loaded.Store, loaded.Resolver, requested)
	if err != nil {
		formatter := kerrors.NewFormatter(cmd.ErrOrStderr(), noColor)
		cmd.Print(formatter.Format(kerrors.Translate(err)))
		return fmt.Errorf("building transaction: %w", err)
	}

	switch planOutputFormat {
	case "yaml":
		data, err := planformat.Marshal(planformat.FromActions(tx.Actions()))
		if err != nil {
			return err
		}
		cmd.Print(string(data))
	default:
		printTextPlan(cmd, tx.Actions())
	}

	return nil
}

func printTextPlan(cmd *cobra.Command, actions []transaction.PackageAction) {
	if len(actions) == 0 {
		cmd.Println("No changes.")
		return
	}
	cmd.Printf("Plan: %d action(s)\n\n", len(actions))
	for _, a := range actions {
		cmd.Printf("  %s %s (%s)\n", a.Action, a.ID.ID(), a.Target)
	}
}
