// Package config loads kessho's own settings — as opposed to repository
// data, which internal/repodata handles — from a CUE document, the way
// the rest of this codebase's ambient configuration is expressed.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue/cuecontext"

	"github.com/kessho-pm/kessho/internal/target"
)

const (
	// DefaultConfigDir is the default of the CLI's --config-dir flag,
	// the directory passed to Load.
	DefaultConfigDir = "~/.config/kessho"
	// ConfigFileName is the settings file name within the config directory.
	ConfigFileName = "config.cue"
	// DefaultRepodataPath is used when a config file sets no repodataPath.
	DefaultRepodataPath = "~/.local/share/kessho/repodata.cue"
)

const schema = `
defaultTarget: "system" | "user" | *"system"
repodataPath:  string | *"~/.local/share/kessho/repodata.cue"
color:         bool | *true
`

// Config is kessho's own settings, as opposed to repository content.
type Config struct {
	// DefaultTarget is used by CLI subcommands when --target is omitted.
	DefaultTarget target.Target
	// RepodataPath points at the repodata.Index document to load.
	RepodataPath string
	// Color controls whether CLI output (errors, progress bars) is colorized.
	Color bool
}

type rawConfig struct {
	DefaultTarget string `json:"defaultTarget"`
	RepodataPath  string `json:"repodataPath"`
	Color         bool   `json:"color"`
}

// Default returns kessho's built-in settings, used when no config.cue exists.
func Default() *Config {
	return &Config{
		DefaultTarget: target.System,
		RepodataPath:  DefaultRepodataPath,
		Color:         true,
	}
}

// Load reads settings from configDir/config.cue, falling back to Default
// when the file does not exist.
func Load(configDir string) (*Config, error) {
	path := filepath.Join(configDir, ConfigFileName)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	ctx := cuecontext.New()
	schemaValue := ctx.CompileString(schema)
	if err := schemaValue.Err(); err != nil {
		return nil, fmt.Errorf("config: internal schema error: %w", err)
	}

	docValue := ctx.CompileString(string(data))
	if err := docValue.Err(); err != nil {
		return nil, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	unified := schemaValue.Unify(docValue)
	if err := unified.Err(); err != nil {
		return nil, fmt.Errorf("config: %s does not satisfy schema: %w", path, err)
	}

	var raw rawConfig
	if err := unified.Decode(&raw); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	t, err := target.Parse(raw.DefaultTarget)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}

	repodataPath, err := expandHome(raw.RepodataPath)
	if err != nil {
		return nil, err
	}

	return &Config{
		DefaultTarget: t,
		RepodataPath:  repodataPath,
		Color:         raw.Color,
	}, nil
}

func expandHome(p string) (string, error) {
	switch {
	case strings.HasPrefix(p, "~/"):
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("config: expanding %s: %w", p, err)
		}
		return filepath.Join(home, p[2:]), nil
	case p == "~":
		return os.UserHomeDir()
	default:
		return p, nil
	}
}
