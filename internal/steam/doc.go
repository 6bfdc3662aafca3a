// Package steam provides Steam Community specific parsing for screenshot
// galleries.
//
// This package contains:
//   - GalleryURL: profile URL to screenshot index URL
//   - LinkCollector: detail page links from a gallery index
//   - DetailParser: Screenshot records from detail pages
//   - DateNormalizer: Steam capture dates to "02 January 2006"
//
// All markup selectors of the site live in this package.
//
// # Sources
//
// LinkCollector and DetailParser accept either a URL to fetch or literal
// markup through Source. Exactly one must be given:
//
//	links, err := collector.Collect(ctx, steam.FromHTML(indexHTML))
//	shot, err := parser.ParseSource(ctx, steam.FromURL(link))
//
//	_, err = parser.ParseSource(ctx, steam.Source{})
//	errors.Is(err, steam.ErrArgument) // true
//
// # Errors
//
//   - ErrArgument: neither or both of URL and markup were supplied
//   - ErrInvalidProfileURL: the profile URL is not an absolute http(s) URL
//   - *DateFormatError: a date matches neither supported layout
//   - *MetadataParseError: a detail page lacks a required element
package steam
