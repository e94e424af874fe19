package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const manifestName = "ruletrace.toml"

// traceManifest is an optional per-project config file discovered by
// walking up from the working directory. Flags that were set explicitly on
// the command line win over it.
type traceManifest struct {
	Path   string
	Config manifestConfig
}

type manifestConfig struct {
	Trace traceSection `toml:"trace"`
}

type traceSection struct {
	Forward      *bool  `toml:"forward"`
	Backward     *bool  `toml:"backward"`
	Color        string `toml:"color"`
	SnippetWidth int    `toml:"snippet_width"`
}

func findManifest(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, manifestName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

func loadManifest(startDir string) (*traceManifest, bool, error) {
	path, ok, err := findManifest(startDir)
	if err != nil || !ok {
		return nil, false, err
	}

	var cfg manifestConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, false, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if err := validateColorMode(cfg.Trace.Color); err != nil {
		return nil, false, fmt.Errorf("%s: %w", path, err)
	}
	if cfg.Trace.SnippetWidth < 0 {
		return nil, false, fmt.Errorf("%s: snippet_width must not be negative", path)
	}

	return &traceManifest{Path: path, Config: cfg}, true, nil
}

func validateColorMode(mode string) error {
	switch mode {
	case "", "auto", "on", "off":
		return nil
	default:
		return fmt.Errorf("invalid color mode: %q (expected: auto|on|off)", mode)
	}
}
