package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFile_MissingFileKeepsDefaults(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)

	cfg, err := loadFile(base, filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, base, cfg)
}

func TestLoadFile_OverlaysValues(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"db_path: /tmp/custom.db\ndefault_weekly_budget_hours: 20\n"), 0644))

	cfg, err := loadFile(base, path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.db", cfg.DBPath)
	assert.Equal(t, 20.0, cfg.DefaultWeeklyBudgetHours)
	assert.Equal(t, base.LockDir, cfg.LockDir, "unset keys keep defaults")
}

func TestLoadFile_MalformedYAML(t *testing.T) {
	base, err := Default()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("db_path: [unclosed"), 0644))

	_, err = loadFile(base, path)
	assert.Error(t, err)
}

func TestLoad_EnvOverridesDBPath(t *testing.T) {
	t.Setenv("LODESTAR_CONFIG", filepath.Join(t.TempDir(), "absent.yaml"))
	t.Setenv("LODESTAR_DB", "/tmp/env.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/env.db", cfg.DBPath)
}
