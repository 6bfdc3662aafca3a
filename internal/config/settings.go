package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// Settings holds all configuration options.
type Settings struct {
	// Project files
	ManifestPath  string `json:"manifest_path"`
	ContentPath   string `json:"content_path"`
	PagesDir      string `json:"pages_dir"`
	AlbumTemplate string `json:"album_template"`
	IndexTemplate string `json:"index_template"`
	SiteBasePath  string `json:"site_base_path"`

	// Extraction settings
	MaxConcurrentRequests int     `json:"max_concurrent_requests"`
	RequestTimeout        float64 `json:"request_timeout"`
	MaxRetries            int     `json:"max_retries"`
	RetryInitialInterval  float64 `json:"retry_initial_interval"`
	RetryMaxInterval      float64 `json:"retry_max_interval"`
	UserAgent             string  `json:"user_agent"`

	// Browser settings
	UseBrowser        bool    `json:"use_browser"`
	Headless          bool    `json:"headless"`
	ScrollPause       float64 `json:"scroll_pause"`
	MaxScrollDuration float64 `json:"max_scroll_duration"`

	// Album cover settings
	GenerateCovers bool   `json:"generate_covers"`
	CoversDir      string `json:"covers_dir"`
	CoverSize      int    `json:"cover_size"`

	// Logging
	LogLevel string `json:"log_level"` // debug, info, warn, error
	LogPath  string `json:"log_path"`
}

// DefaultSettings returns settings with default values.
func DefaultSettings() *Settings {
	return &Settings{
		ManifestPath:  "manifest.yaml",
		ContentPath:   "content.json",
		PagesDir:      filepath.Join("web", "src", "pages"),
		AlbumTemplate: filepath.Join("web", "src", "pages", "album_template.astro"),
		IndexTemplate: filepath.Join("web", "src", "pages", "index_template.astro"),
		SiteBasePath:  "/VirtualMoments",

		MaxConcurrentRequests: 4,
		RequestTimeout:        30,
		MaxRetries:            3,
		RetryInitialInterval:  0.5,
		RetryMaxInterval:      5,
		UserAgent:             "Mozilla/5.0 (X11; Linux x86_64) VirtualMoments",

		UseBrowser:        true,
		Headless:          true,
		ScrollPause:       2,
		MaxScrollDuration: 300,

		GenerateCovers: false,
		CoversDir:      filepath.Join("web", "public", "covers"),
		CoverSize:      600,

		LogLevel: "info",
	}
}

// Load reads settings from a JSON file.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultSettings(), nil
		}
		return nil, err
	}

	settings := DefaultSettings()
	if err := json.Unmarshal(data, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// Save writes settings to a JSON file.
func (s *Settings) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// RequestTimeoutDuration returns RequestTimeout as a time.Duration.
func (s *Settings) RequestTimeoutDuration() time.Duration {
	return seconds(s.RequestTimeout)
}

// RetryInitialDuration returns RetryInitialInterval as a time.Duration.
func (s *Settings) RetryInitialDuration() time.Duration {
	return seconds(s.RetryInitialInterval)
}

// RetryMaxDuration returns RetryMaxInterval as a time.Duration.
func (s *Settings) RetryMaxDuration() time.Duration {
	return seconds(s.RetryMaxInterval)
}

// ScrollPauseDuration returns ScrollPause as a time.Duration.
func (s *Settings) ScrollPauseDuration() time.Duration {
	return seconds(s.ScrollPause)
}

// MaxScrollDurationValue returns MaxScrollDuration as a time.Duration.
func (s *Settings) MaxScrollDurationValue() time.Duration {
	return seconds(s.MaxScrollDuration)
}

// Concurrency returns the worker limit, at least 1.
func (s *Settings) Concurrency() int {
	if s.MaxConcurrentRequests < 1 {
		return 1
	}
	return s.MaxConcurrentRequests
}

func seconds(v float64) time.Duration {
	return time.Duration(v * float64(time.Second))
}
