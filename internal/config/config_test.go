package config_test

import (
	"os"
	"path/filepath"
	"popdash/internal/config"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, "environment: production\n"))
	require.NoError(t, err)

	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
	require.Equal(t, "example2", cfg.Source.TableID)
	require.Equal(t, "Population (2020)", cfg.Source.Columns.Population)
	require.Equal(t, 30*time.Second, cfg.Source.Timeout)
	require.Equal(t, "worldbank", cfg.Stats.Provider)
	require.Len(t, cfg.Stats.Indicators, 5)
	require.Equal(t, 20, cfg.Views.TopPopulation)
	require.Equal(t, 10, cfg.Views.TopWorldShare)
	require.False(t, cfg.Views.UrbanOverFullSnapshot)
	require.Equal(t, "light", cfg.Dashboard.DefaultTheme)
	require.False(t, cfg.Archive.Enabled)
	require.Equal(t, 24*time.Hour, cfg.Archive.Interval)
}

func TestLoad_FileValues(t *testing.T) {
	cfg, err := config.Load(writeConfig(t, `
views:
  topPopulation: 5
  urbanOverFullSnapshot: true
dashboard:
  defaultTheme: dark
archive:
  enabled: true
  interval: 1h
`))
	require.NoError(t, err)

	require.Equal(t, 5, cfg.Views.TopPopulation)
	require.True(t, cfg.Views.UrbanOverFullSnapshot)
	require.Equal(t, "dark", cfg.Dashboard.DefaultTheme)
	require.True(t, cfg.Archive.Enabled)
	require.Equal(t, time.Hour, cfg.Archive.Interval)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("SOURCE_TABLE_ID", "main_table_countries_today")
	t.Setenv("STATS_PROVIDER", "snapshot")

	cfg, err := config.Load(writeConfig(t, "source:\n  tableId: example2\n"))
	require.NoError(t, err)

	require.Equal(t, "main_table_countries_today", cfg.Source.TableID)
	require.Equal(t, "snapshot", cfg.Stats.Provider)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yml"))
	require.Error(t, err)
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Defaults()
	require.NoError(t, err)
	require.Equal(t, "development", cfg.Environment)
}
