package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFileIsNotAnError(t *testing.T) {
	t.Setenv("CARREGO_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Empty(t, settings.APIBaseURL)
	assert.Nil(t, settings.Debug)
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("CARREGO_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{oops"), 0644))

	_, err := LoadSettings()

	assert.Error(t, err)
}

func TestSettingsRoundtrip(t *testing.T) {
	t.Setenv("CARREGO_HOME", t.TempDir())

	debug := true
	delay := 5
	require.NoError(t, SaveSettings(&Settings{
		APIBaseURL:      "https://staging.carrego.app/v1",
		Debug:           &debug,
		DefaultTripMode: "marine",
		ErrorClearDelay: &delay,
	}))

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.carrego.app/v1", loaded.APIBaseURL)
	require.NotNil(t, loaded.Debug)
	assert.True(t, *loaded.Debug)
	assert.Equal(t, "marine", loaded.DefaultTripMode)
	require.NotNil(t, loaded.ErrorClearDelay)
	assert.Equal(t, 5, *loaded.ErrorClearDelay)
	assert.Nil(t, loaded.MaxLogFiles, "unset fields stay unset")
}

func TestHomePrefersEnvOverride(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CARREGO_HOME", dir)

	assert.Equal(t, dir, Home())
	assert.Equal(t, filepath.Join(dir, "session.json"), GetSessionPath())
	assert.Equal(t, filepath.Join(dir, "cache.db"), GetCacheDBPath())
}
