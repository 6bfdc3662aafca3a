package browser

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/playwright-community/playwright-go"
	"go.uber.org/zap"
)

// Options configures a ScrollFetcher.
type Options struct {
	// Headless runs Chromium without a window.
	Headless bool

	// ScrollPause is the wait between a scroll and the next height check.
	ScrollPause time.Duration

	// MaxScrollDuration bounds the scroll loop. Zero means no bound.
	MaxScrollDuration time.Duration

	// UserAgent overrides the browser User-Agent when set.
	UserAgent string

	// InstallDriver downloads the playwright driver and Chromium on first use.
	InstallDriver bool
}

// ScrollFetcher returns the fully loaded markup of a Steam screenshot gallery.
//
// Steam loads screenshots while the page is scrolled. ScrollFetcher opens
// the gallery in Chromium, keeps scrolling to the bottom until the document
// height stops growing and returns the final markup.
//
// Example:
//
//	fetcher := NewScrollFetcher(Options{Headless: true, ScrollPause: 2 * time.Second}, logger)
//	html, err := fetcher.FetchProfile(ctx, "https://steamcommunity.com/id/someone/screenshots/")
type ScrollFetcher struct {
	opts   Options
	logger *zap.Logger

	installOnce sync.Once
	installErr  error
}

// NewScrollFetcher creates a ScrollFetcher. A nil logger discards logs.
func NewScrollFetcher(opts Options, logger *zap.Logger) *ScrollFetcher {
	if opts.ScrollPause <= 0 {
		opts.ScrollPause = 2 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScrollFetcher{
		opts:   opts,
		logger: logger,
	}
}

// FetchProfile loads url in Chromium, scrolls until all screenshots are
// loaded and returns the page markup.
//
// If MaxScrollDuration elapses first, the markup loaded so far is returned
// and a warning is logged.
func (f *ScrollFetcher) FetchProfile(ctx context.Context, url string) (string, error) {
	if err := f.install(); err != nil {
		return "", err
	}

	pw, err := playwright.Run()
	if err != nil {
		return "", fmt.Errorf("start playwright: %w", err)
	}
	defer func() {
		if err := pw.Stop(); err != nil {
			f.logger.Warn("stop playwright", zap.Error(err))
		}
	}()

	browser, err := pw.Chromium.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(f.opts.Headless),
		Args:     []string{"--disable-gpu", "--no-sandbox", "--disable-dev-shm-usage"},
	})
	if err != nil {
		return "", fmt.Errorf("launch browser: %w", err)
	}
	defer browser.Close()

	pageOpts := playwright.BrowserNewPageOptions{}
	if f.opts.UserAgent != "" {
		pageOpts.UserAgent = playwright.String(f.opts.UserAgent)
	}
	page, err := browser.NewPage(pageOpts)
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	f.logger.Debug("opening gallery", zap.String("url", url))
	if _, err := page.Goto(url, playwright.PageGotoOptions{
		WaitUntil: playwright.WaitUntilStateNetworkidle,
	}); err != nil {
		return "", fmt.Errorf("navigate to %s: %w", url, err)
	}

	res, err := scrollUntilStable(ctx, page, f.opts.ScrollPause, f.opts.MaxScrollDuration, f.logger)
	if err != nil {
		return "", err
	}

	if res.TimedOut {
		f.logger.Warn("gallery still growing, using partial page",
			zap.String("url", url),
			zap.Duration("max_scroll_duration", f.opts.MaxScrollDuration),
			zap.Int("scrolls", res.Scrolls),
		)
	} else {
		f.logger.Info("gallery loaded",
			zap.String("url", url),
			zap.Int("scrolls", res.Scrolls),
			zap.Int("height", res.Height),
		)
	}

	return res.HTML, nil
}

func (f *ScrollFetcher) install() error {
	if !f.opts.InstallDriver {
		return nil
	}
	f.installOnce.Do(func() {
		f.logger.Info("installing playwright driver")
		if err := playwright.Install(&playwright.RunOptions{Browsers: []string{"chromium"}}); err != nil {
			f.installErr = fmt.Errorf("install playwright: %w", err)
		}
	})
	return f.installErr
}

// PageGetter fetches a page's markup. *http.Client satisfies it.
type PageGetter interface {
	GetString(ctx context.Context, url string) (string, error)
}

// StaticFetcher returns the gallery markup with a single HTTP request.
//
// Only the screenshots Steam renders server side are present, so it is
// meant for small galleries, environments without Chromium and tests.
type StaticFetcher struct {
	pages PageGetter
}

// NewStaticFetcher creates a StaticFetcher.
func NewStaticFetcher(pages PageGetter) *StaticFetcher {
	return &StaticFetcher{pages: pages}
}

// FetchProfile fetches url without running scripts.
func (f *StaticFetcher) FetchProfile(ctx context.Context, url string) (string, error) {
	return f.pages.GetString(ctx, url)
}
