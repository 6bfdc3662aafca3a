package extract

import (
	"github.com/handiism/virtual-moments/internal/browser"
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/http"
	"go.uber.org/zap"
)

// NewClient creates the HTTP client described by settings.
func NewClient(settings *config.Settings, logger *zap.Logger) *http.Client {
	retries := settings.MaxRetries
	if retries < 0 {
		retries = 0
	}
	return http.NewClient(http.Options{
		Timeout:   settings.RequestTimeoutDuration(),
		UserAgent: settings.UserAgent,
		Retry: http.RetryPolicy{
			MaxRetries:      uint64(retries),
			InitialInterval: settings.RetryInitialDuration(),
			MaxInterval:     settings.RetryMaxDuration(),
		},
	}, logger)
}

// NewFetcher returns the gallery fetcher selected by settings.UseBrowser:
// a scrolling Chromium fetcher, or a single request through client.
func NewFetcher(settings *config.Settings, client *http.Client, logger *zap.Logger) ProfileFetcher {
	if !settings.UseBrowser {
		return browser.NewStaticFetcher(client)
	}
	return browser.NewScrollFetcher(browser.Options{
		Headless:          settings.Headless,
		ScrollPause:       settings.ScrollPauseDuration(),
		MaxScrollDuration: settings.MaxScrollDurationValue(),
		UserAgent:         settings.UserAgent,
		InstallDriver:     true,
	}, logger)
}

// New creates a Pipeline with the client and fetcher described by settings.
func New(settings *config.Settings, logger *zap.Logger, onProgress func(ProgressEvent)) *Pipeline {
	client := NewClient(settings, logger)
	return NewPipeline(settings, NewFetcher(settings, client, logger), client, logger, onProgress)
}
