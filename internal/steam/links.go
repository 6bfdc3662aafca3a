package steam

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DetailLinkMarker identifies screenshot detail page URLs.
const DetailLinkMarker = "sharedfiles/filedetails"

// LinkCollector extracts screenshot detail page URLs from a gallery index.
//
// Example usage:
//
//	collector := NewLinkCollector(client)
//
//	links, err := collector.CollectDetailLinks(indexHTML)
//	for _, link := range links {
//	    fmt.Println(link) // https://steamcommunity.com/sharedfiles/filedetails/?id=...
//	}
type LinkCollector struct {
	pages PageGetter
}

// NewLinkCollector creates a LinkCollector. pages is only needed for URL
// sources and may be nil.
func NewLinkCollector(pages PageGetter) *LinkCollector {
	return &LinkCollector{pages: pages}
}

// CollectDetailLinks returns, in document order, the href of every anchor
// that contains DetailLinkMarker.
//
// Duplicates are kept. Markup without matching anchors yields an empty
// slice and no error.
func (c *LinkCollector) CollectDetailLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}

	links := []string{}
	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		if strings.Contains(href, DetailLinkMarker) {
			links = append(links, href)
		}
	})

	return links, nil
}

// Collect loads src and collects its detail links.
//
// Returns ErrArgument if src has neither or both of URL and HTML.
func (c *LinkCollector) Collect(ctx context.Context, src Source) ([]string, error) {
	html, err := src.Load(ctx, c.pages)
	if err != nil {
		return nil, err
	}
	return c.CollectDetailLinks(html)
}
