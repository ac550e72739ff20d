// Package config loads the twigpanes YAML config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/PostHog/Twig-sub005/internal/appdirs"
	"github.com/PostHog/Twig-sub005/internal/logging"
)

// FileName is the config file looked up inside the state directory.
const FileName = "config.yaml"

// Config is the user-tunable engine configuration.
type Config struct {
	// RecentFilesCap caps every layout's MRU file list.
	RecentFilesCap int `yaml:"recent_files_cap"`

	// SnapshotDir overrides where layout snapshots are persisted.
	SnapshotDir string `yaml:"snapshot_dir"`

	Logging logging.Config `yaml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{RecentFilesCap: 10}
}

// Load reads the config from path, or from the state directory when path
// is empty. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	path = strings.TrimSpace(path)
	if path == "" {
		dir, err := appdirs.StateDir()
		if err != nil {
			return cfg, err
		}
		path = filepath.Join(dir, FileName)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.RecentFilesCap <= 0 {
		cfg.RecentFilesCap = Default().RecentFilesCap
	}
	return cfg, nil
}
