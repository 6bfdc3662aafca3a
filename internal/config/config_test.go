package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	settings, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), settings)
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "virtualmoments.json")

	settings := DefaultSettings()
	settings.MaxConcurrentRequests = 8
	settings.GenerateCovers = true
	require.NoError(t, settings.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 8, loaded.MaxConcurrentRequests)
	assert.True(t, loaded.GenerateCovers)
	assert.Equal(t, settings.SiteBasePath, loaded.SiteBasePath)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "virtualmoments.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"scroll_pause": 0.5}`), 0644))

	settings, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500*time.Millisecond, settings.ScrollPauseDuration())
	assert.Equal(t, DefaultSettings().MaxConcurrentRequests, settings.MaxConcurrentRequests)
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "virtualmoments.json")
	require.NoError(t, os.WriteFile(path, []byte(`{`), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSettings_Durations(t *testing.T) {
	s := DefaultSettings()
	assert.Equal(t, 30*time.Second, s.RequestTimeoutDuration())
	assert.Equal(t, 500*time.Millisecond, s.RetryInitialDuration())
	assert.Equal(t, 5*time.Second, s.RetryMaxDuration())
	assert.Equal(t, 2*time.Second, s.ScrollPauseDuration())
	assert.Equal(t, 5*time.Minute, s.MaxScrollDurationValue())
}

func TestSettings_Concurrency(t *testing.T) {
	s := DefaultSettings()
	s.MaxConcurrentRequests = 0
	assert.Equal(t, 1, s.Concurrency())
	s.MaxConcurrentRequests = 6
	assert.Equal(t, 6, s.Concurrency())
}

func TestApplyEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "DEBUG")
	t.Setenv(EnvMaxConcurrent, "7")
	t.Setenv(EnvHeadless, "false")
	t.Setenv(EnvUseBrowser, "0")
	t.Setenv(EnvLogPath, "/tmp/vm.log")

	s := DefaultSettings()
	require.NoError(t, s.ApplyEnv())
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, 7, s.MaxConcurrentRequests)
	assert.False(t, s.Headless)
	assert.False(t, s.UseBrowser)
	assert.Equal(t, "/tmp/vm.log", s.LogPath)
}

func TestApplyEnv_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{EnvMaxConcurrent, "zero"},
		{EnvMaxConcurrent, "-1"},
		{EnvHeadless, "maybe"},
		{EnvUseBrowser, "sometimes"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			assert.Error(t, DefaultSettings().ApplyEnv())
		})
	}
}

func TestParseManifest(t *testing.T) {
	data := []byte(`
content:
  steam_profile_url: " https://steamcommunity.com/id/someone "
albums:
  - name: Space Trips
    games:
      - Outer Wilds
      - Elite Dangerous
  - name: "Half-Life: Stories"
    games: ["Half-Life 2"]
`)

	m, err := ParseManifest(data)
	require.NoError(t, err)
	assert.Equal(t, "https://steamcommunity.com/id/someone", m.Content.SteamProfileURL)
	require.Len(t, m.Albums, 2)
	assert.Equal(t, "Space Trips", m.Albums[0].Name)
	assert.Equal(t, []string{"Outer Wilds", "Elite Dangerous"}, m.Albums[0].Games)
	assert.Equal(t, "Half-Life: Stories", m.Albums[1].Name)
}

func TestParseManifest_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"no profile", "albums: []\n"},
		{"unnamed album", "content:\n  steam_profile_url: https://x\nalbums:\n  - games: [A]\n"},
		{"invalid yaml", "content: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseManifest([]byte(tt.data))
			assert.Error(t, err)
		})
	}

	_, err := ParseManifest([]byte("albums: []\n"))
	assert.ErrorIs(t, err, ErrNoProfileURL)
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "manifest.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
