package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config is the user-editable configuration, read from
// ~/.lodestar/config.yaml when present. Every field has a working default;
// the file and all of its keys are optional.
type Config struct {
	DBPath string `yaml:"db_path"`

	// DefaultWeeklyBudgetHours seeds new goals that don't set a budget.
	DefaultWeeklyBudgetHours float64 `yaml:"default_weekly_budget_hours"`

	// LockDir holds the per-goal lock files serializing concurrent
	// reschedule commits across processes.
	LockDir string `yaml:"lock_dir"`

	NoColor bool `yaml:"no_color"`
}

// Default returns the configuration used when no file exists.
func Default() (Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Config{}, fmt.Errorf("finding home directory: %w", err)
	}
	base := filepath.Join(home, ".lodestar")
	return Config{
		DBPath:                   filepath.Join(base, "lodestar.db"),
		DefaultWeeklyBudgetHours: 10,
		LockDir:                  filepath.Join(base, "locks"),
	}, nil
}

// Load resolves the config file path (LODESTAR_CONFIG env var, else
// ~/.lodestar/config.yaml), overlays it onto the defaults, and finally
// applies the LODESTAR_DB env override.
func Load() (Config, error) {
	cfg, err := Default()
	if err != nil {
		return Config{}, err
	}

	path := os.Getenv("LODESTAR_CONFIG")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("finding home directory: %w", err)
		}
		path = filepath.Join(home, ".lodestar", "config.yaml")
	}

	cfg, err = loadFile(cfg, path)
	if err != nil {
		return Config{}, err
	}

	if dbPath := os.Getenv("LODESTAR_DB"); dbPath != "" {
		cfg.DBPath = dbPath
	}
	return cfg, nil
}

// loadFile overlays the YAML file at path onto base. A missing file is not
// an error; a malformed one is.
func loadFile(base Config, path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return base, nil
		}
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &base); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return base, nil
}
