package steam

import (
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/handiism/virtual-moments/internal/model"
)

// Selectors of the screenshot detail page.
const (
	mediaSelector       = "img#ActualMedia"
	gameSelector        = "div.screenshotAppName a"
	descriptionSelector = "div.screenshotDescription"
	statSelector        = "div.detailsStatRight"

	// Position matters: the second stat holds the capture date.
	dateStatIndex = 1
)

// DetailParser extracts a Screenshot from a Steam screenshot detail page.
//
// Example usage:
//
//	parser := NewDetailParser(client, NewDateNormalizer())
//
//	shot, err := parser.ParseSource(ctx, FromURL(link))
//	var mpe *MetadataParseError
//	if errors.As(err, &mpe) {
//	    fmt.Println("page has no", mpe.Field)
//	}
type DetailParser struct {
	pages PageGetter
	dates *DateNormalizer
}

// NewDetailParser creates a DetailParser. pages is only needed for URL
// sources and may be nil; a nil dates uses the wall clock.
func NewDetailParser(pages PageGetter, dates *DateNormalizer) *DetailParser {
	if dates == nil {
		dates = NewDateNormalizer()
	}
	return &DetailParser{
		pages: pages,
		dates: dates,
	}
}

// Parse extracts a Screenshot from detail page markup.
//
// The image link is the src of img#ActualMedia without its query string,
// the game is the text of the app name anchor, the title is the description
// text without double quotes, and the date is the second detail stat run
// through the DateNormalizer.
//
// Returns a *MetadataParseError naming the field when the image, game or
// date element is missing or the date cannot be normalized. A missing
// description yields an empty title.
func (p *DetailParser) Parse(html string) (*model.Screenshot, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &MetadataParseError{Field: "document", Err: err}
	}

	src, ok := doc.Find(mediaSelector).First().Attr("src")
	if !ok || strings.TrimSpace(src) == "" {
		return nil, &MetadataParseError{Field: "image", Err: errMissingElement}
	}

	game := strings.TrimSpace(doc.Find(gameSelector).First().Text())
	if game == "" {
		return nil, &MetadataParseError{Field: "game", Err: errMissingElement}
	}

	var title string
	if desc := doc.Find(descriptionSelector).First(); desc.Length() > 0 {
		title = strings.TrimSpace(strings.ReplaceAll(desc.Text(), `"`, ""))
	}

	stats := doc.Find(statSelector)
	if stats.Length() <= dateStatIndex {
		return nil, &MetadataParseError{Field: "date", Err: errMissingElement}
	}
	date, err := p.dates.Normalize(stats.Eq(dateStatIndex).Text())
	if err != nil {
		return nil, &MetadataParseError{Field: "date", Err: err}
	}

	return &model.Screenshot{
		Game:  game,
		Title: title,
		Link:  model.StripQuery(strings.TrimSpace(src)),
		Date:  date,
	}, nil
}

// ParseSource loads src and parses it.
//
// Returns ErrArgument if src has neither or both of URL and HTML. Fetch
// errors are returned unchanged.
func (p *DetailParser) ParseSource(ctx context.Context, src Source) (*model.Screenshot, error) {
	html, err := src.Load(ctx, p.pages)
	if err != nil {
		return nil, err
	}
	return p.Parse(html)
}
