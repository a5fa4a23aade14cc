package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kessho-pm/kessho/internal/pkgkey"
	"github.com/kessho-pm/kessho/internal/status"
	"github.com/kessho-pm/kessho/internal/target"
)

var statusTarget string

var statusCmd = &cobra.Command{
	Use:   "status <id>",
	Short: "Print a package's installed status",
	Args:  cobra.ExactArgs(1),
	RunE:  runStatus,
}

func init() {
	statusCmd.Flags().StringVar(&statusTarget, "target", "", "Install target (system, user); defaults to the configured default")
}

func runStatus(cmd *cobra.Command, args []string) error {
	loaded, err := loadStore()
	if err != nil {
		return err
	}

	t := loaded.Config.DefaultTarget
	if statusTarget != "" {
		t, err = target.Parse(statusTarget)
		if err != nil {
			return err
		}
	}

	key := pkgkey.New(loaded.RepositoryURL, args[0])
	st, err := loaded.Store.Status(cmd.Context(), key, t)
	if err != nil {
		return fmt.Errorf("checking status: %w", err)
	}

	cmd.Printf("%s: %s (%d)\n", args[0], st, status.Code(st, nil))
	return nil
}
