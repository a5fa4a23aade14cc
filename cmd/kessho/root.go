package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kessho-pm/kessho/internal/config"
	"github.com/kessho-pm/kessho/internal/memstore"
	"github.com/kessho-pm/kessho/internal/repodata"
)

// logLevelFlag implements pflag.Value for slog.Level.
type logLevelFlag struct {
	level slog.Level
}

func (f *logLevelFlag) String() string { return strings.ToLower(f.level.String()) }
func (f *logLevelFlag) Type() string   { return "string" }
func (f *logLevelFlag) Set(s string) error {
	switch strings.ToLower(s) {
	case "debug":
		f.level = slog.LevelDebug
	case "info":
		f.level = slog.LevelInfo
	case "warn":
		f.level = slog.LevelWarn
	case "error":
		f.level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q (valid: debug, info, warn, error)", s)
	}
	return nil
}

func (f *logLevelFlag) Level() slog.Level { return f.level }

var (
	noColor        bool
	configDir      string
	globalLogLevel = &logLevelFlag{level: slog.LevelWarn}
)

var rootCmd = &cobra.Command{
	Use:   "kessho",
	Short: "A package manager transaction planner and executor",
	Long: `kessho builds a dependency-complete, contradiction-free transaction
from a set of install/uninstall requests, then runs it as a cancellable
stream of events.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		if noColor {
			color.NoColor = true
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: globalLogLevel.Level()})))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", config.DefaultConfigDir, "Directory holding config.cue")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().Var(globalLogLevel, "log-level", "Log level (debug, info, warn, error)")
	_ = rootCmd.RegisterFlagCompletionFunc("log-level", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"debug", "info", "warn", "error"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(planCmd, applyCmd, statusCmd)
}

// loadedStore bundles everything a subcommand needs to build and run a
// transaction against the configured repository.
type loadedStore struct {
	Store         *memstore.Store
	Resolver      *memstore.Resolver
	Config        *config.Config
	RepositoryURL string
}

// loadStore reads the CLI's config and opens the reference memstore.Store
// and its matching Resolver over the configured repodata document.
func loadStore() (*loadedStore, error) {
	cfg, err := config.Load(expandConfigDir())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if !cfg.Color {
		noColor = true
		color.NoColor = true
	}

	idx, err := repodata.Load(cfg.RepodataPath)
	if err != nil {
		return nil, fmt.Errorf("loading repository data: %w", err)
	}

	receiptPath := filepath.Join(filepath.Dir(cfg.RepodataPath), "receipt.json")
	s := memstore.New(idx, receiptPath)
	return &loadedStore{
		Store:         s,
		Resolver:      memstore.NewResolver(s),
		Config:        cfg,
		RepositoryURL: idx.RepositoryURL,
	}, nil
}

func expandConfigDir() string {
	if strings.HasPrefix(configDir, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return configDir
		}
		return filepath.Join(home, configDir[2:])
	}
	return configDir
}
