package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, DefaultAddr, cfg.Server.Addr)
	assert.Equal(t, DefaultDBPath, cfg.Database.Path)
	assert.Greater(t, cfg.Calculator.MinBladeReading, 0.0)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easeld.yaml")
	yaml := `
server:
  addr: ":9000"
database:
  path: /tmp/recipes.db
calculator:
  min_blade: 0.1
share:
  base_url: https://easel.example
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Server.Addr)
	assert.Equal(t, "/tmp/recipes.db", cfg.Database.Path)
	assert.Equal(t, 0.1, cfg.Calculator.MinBladeReading)
	assert.Equal(t, "https://easel.example", cfg.Share.BaseURL)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "easeld.yaml")
	yaml := `
calculator:
  min_blade: -1
share:
  base_url: not-a-url
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o600))

	_, err := Load(path)
	require.Error(t, err)

	var verr *ValidationErrors
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Error(), "min_blade")
	assert.Contains(t, verr.Error(), "base_url")
}
