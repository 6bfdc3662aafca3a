package steam

import (
	"context"
	"fmt"
	"net/url"
	"strings"
)

// GalleryPath is appended to a profile URL to reach its screenshot index.
const GalleryPath = "/screenshots/"

// PageGetter fetches a page's markup. *http.Client satisfies it.
type PageGetter interface {
	GetString(ctx context.Context, url string) (string, error)
}

// Source is the input of a parser: either a URL to fetch or literal markup.
// Exactly one of the two fields must be set.
type Source struct {
	URL  string
	HTML string
}

// FromURL returns a Source that fetches url.
func FromURL(url string) Source {
	return Source{URL: url}
}

// FromHTML returns a Source holding literal markup.
func FromHTML(html string) Source {
	return Source{HTML: html}
}

// Load returns the markup of the source, fetching it with pages when the
// source is a URL.
//
// Returns ErrArgument if neither or both fields are set, or if a URL source
// is given without a PageGetter.
func (s Source) Load(ctx context.Context, pages PageGetter) (string, error) {
	switch {
	case s.URL == "" && s.HTML == "":
		return "", fmt.Errorf("%w: got neither", ErrArgument)
	case s.URL != "" && s.HTML != "":
		return "", fmt.Errorf("%w: got both", ErrArgument)
	case s.HTML != "":
		return s.HTML, nil
	}

	if pages == nil {
		return "", fmt.Errorf("%w: no page getter for %s", ErrArgument, s.URL)
	}
	return pages.GetString(ctx, s.URL)
}

// GalleryURL turns a profile URL into its screenshot index URL.
//
// URLs that already contain "screenshots" are returned unchanged:
//
//	GalleryURL("https://steamcommunity.com/id/someone")              // ".../id/someone/screenshots/"
//	GalleryURL("https://steamcommunity.com/id/someone/screenshots/") // unchanged
//
// Returns ErrInvalidProfileURL for anything that is not an absolute
// http(s) URL.
func GalleryURL(profileURL string) (string, error) {
	profileURL = strings.TrimSpace(profileURL)

	u, err := url.Parse(profileURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidProfileURL, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: %q is not an absolute http(s) url", ErrInvalidProfileURL, profileURL)
	}

	if strings.Contains(profileURL, "screenshots") {
		return profileURL, nil
	}
	return strings.TrimRight(profileURL, "/") + GalleryPath, nil
}
