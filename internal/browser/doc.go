// Package browser retrieves the markup of a Steam screenshot gallery.
//
// ScrollFetcher drives headless Chromium through playwright-go and scrolls
// until the lazily loaded gallery stops growing. StaticFetcher performs a
// single HTTP request instead.
//
// Both satisfy the profile fetcher interface of the extraction pipeline:
//
//	var fetcher interface {
//	    FetchProfile(ctx context.Context, url string) (string, error)
//	}
//	fetcher = browser.NewScrollFetcher(browser.Options{
//	    Headless:          true,
//	    ScrollPause:       2 * time.Second,
//	    MaxScrollDuration: 5 * time.Minute,
//	}, logger)
package browser
