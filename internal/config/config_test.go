package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatjindal/cloud-plugin/internal/config"
)

func setTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadMissingFileReturnsEmptyConfig(t *testing.T) {
	setTempHome(t)

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CurrentEnvironment)
	assert.Empty(t, cfg.Environments)
}

func TestSetEnvironmentRoundTrip(t *testing.T) {
	home := setTempHome(t)

	err := config.SetEnvironment("staging", &config.Environment{
		URL:   "https://staging.example.com",
		Token: "tok-123",
	})
	require.NoError(t, err)

	// Token-bearing file must not be world readable.
	info, err := os.Stat(filepath.Join(home, ".config", "cloud", "config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	env, name, err := config.GetEnvironment("staging")
	require.NoError(t, err)
	assert.Equal(t, "staging", name)
	assert.Equal(t, "https://staging.example.com", env.URL)
	assert.Equal(t, "tok-123", env.Token)
}

func TestFirstEnvironmentBecomesCurrent(t *testing.T) {
	setTempHome(t)

	require.NoError(t, config.SetEnvironment("prod", &config.Environment{URL: "https://prod.example.com"}))

	// Empty name resolves through current_environment.
	env, name, err := config.GetEnvironment("")
	require.NoError(t, err)
	assert.Equal(t, "prod", name)
	assert.Equal(t, "https://prod.example.com", env.URL)
}

func TestGetEnvironmentUnknownName(t *testing.T) {
	setTempHome(t)

	_, name, err := config.GetEnvironment("nope")
	assert.Error(t, err)
	assert.Equal(t, "nope", name)
}

func TestSetCurrentEnvironment(t *testing.T) {
	setTempHome(t)

	require.NoError(t, config.SetEnvironment("a", &config.Environment{URL: "https://a.example.com"}))
	require.NoError(t, config.SetEnvironment("b", &config.Environment{URL: "https://b.example.com"}))

	require.NoError(t, config.SetCurrentEnvironment("b"))

	_, name, err := config.GetEnvironment("")
	require.NoError(t, err)
	assert.Equal(t, "b", name)

	assert.Error(t, config.SetCurrentEnvironment("missing"))
}

func TestDeleteEnvironmentClearsCurrent(t *testing.T) {
	setTempHome(t)

	require.NoError(t, config.SetEnvironment("only", &config.Environment{URL: "https://x.example.com"}))
	require.NoError(t, config.DeleteEnvironment("only"))

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Empty(t, cfg.CurrentEnvironment)
	assert.Empty(t, cfg.Environments)

	assert.Error(t, config.DeleteEnvironment("only"))
}

func TestSortedNames(t *testing.T) {
	envs := map[string]*config.Environment{
		"prod":    {},
		"default": {},
		"staging": {},
	}
	assert.Equal(t, []string{"default", "prod", "staging"}, config.SortedNames(envs))
}
