package render

import (
	"fmt"
	"strings"
	"time"

	ioutils "github.com/handiism/virtual-moments/internal/io"
	"github.com/handiism/virtual-moments/internal/model"
)

// Template placeholders replaced by the renderer.
const (
	PlaceholderScreenshots = "<!-- SCREENSHOTS -->"
	PlaceholderAlbums      = "<!-- ALBUMS -->"
	PlaceholderFooter      = "<!-- FOOTER -->"
)

// footerDateLayout matches the date format of the screenshots.
const footerDateLayout = "02 January 2006"

// AstroRenderer generates Astro component markup for albums.
//
// AstroRenderer fills the site's page templates: album pages get one
// <Screenshot /> per screenshot, the index page gets one <AlbumCover /> per
// album and a <Footer /> carrying the build date.
//
// Example:
//
//	r := NewAstroRenderer("/VirtualMoments")
//	page := r.AlbumPage(albumTemplate, album)
//	index := r.IndexPage(indexTemplate, albums, nil)
//
//	// Album content:
//	// <Screenshot src="https://..." alt="Campfire" date="21 January 2024" />
//	// Index content:
//	// <AlbumCover name="Space Trips" path="/VirtualMoments/space_trips/" />
type AstroRenderer struct {
	basePath string
	now      func() time.Time
}

// NewAstroRenderer creates a renderer for a site served under basePath.
func NewAstroRenderer(basePath string) *AstroRenderer {
	return &AstroRenderer{
		basePath: strings.TrimRight(basePath, "/"),
		now:      time.Now,
	}
}

// WithClock returns a copy of the renderer using now for the footer date.
func (r *AstroRenderer) WithClock(now func() time.Time) *AstroRenderer {
	cp := *r
	cp.now = now
	return &cp
}

// AlbumPath returns the site path of an album page, e.g. "/VirtualMoments/space_trips/".
func (r *AstroRenderer) AlbumPath(album *model.Album) string {
	return fmt.Sprintf("%s/%s/", r.basePath, album.PageName())
}

// CoverPath returns the site path of an album's cover image.
func (r *AstroRenderer) CoverPath(album *model.Album) string {
	return fmt.Sprintf("%s/covers/%s", r.basePath, coverFileName(album))
}

// coverFileName is the file name of an album's cover image.
func coverFileName(album *model.Album) string {
	return ioutils.SanitizeFileName(album.PageName()) + ".jpg"
}

// AlbumContent returns the <Screenshot /> components of an album.
func (r *AstroRenderer) AlbumContent(album *model.Album) string {
	var sb strings.Builder
	for _, shot := range album.Screenshots {
		sb.WriteString(fmt.Sprintf(`<Screenshot src="%s" alt="%s" date="%s" />`,
			escapeAttr(shot.Link), escapeAttr(shot.Title), escapeAttr(shot.Date)))
	}
	return sb.String()
}

// AlbumCover returns the <AlbumCover /> component of an album.
// A non-empty cover adds a cover attribute.
func (r *AstroRenderer) AlbumCover(album *model.Album, cover string) string {
	if cover == "" {
		return fmt.Sprintf(`<AlbumCover name="%s" path="%s" />`,
			escapeAttr(album.Name), escapeAttr(r.AlbumPath(album)))
	}
	return fmt.Sprintf(`<AlbumCover name="%s" path="%s" cover="%s" />`,
		escapeAttr(album.Name), escapeAttr(r.AlbumPath(album)), escapeAttr(cover))
}

// AlbumPage fills the screenshots placeholder of an album page template.
func (r *AstroRenderer) AlbumPage(template string, album *model.Album) string {
	return strings.ReplaceAll(template, PlaceholderScreenshots, r.AlbumContent(album))
}

// IndexPage fills the albums and footer placeholders of the index template.
//
// covers maps album page names to cover image paths; albums without an
// entry get no cover attribute. A nil map is allowed.
func (r *AstroRenderer) IndexPage(template string, albums []*model.Album, covers map[string]string) string {
	var sb strings.Builder
	for _, album := range albums {
		sb.WriteString(r.AlbumCover(album, covers[album.PageName()]))
	}

	page := strings.ReplaceAll(template, PlaceholderAlbums, sb.String())
	footer := fmt.Sprintf(`<Footer date="%s" />`, r.now().Format(footerDateLayout))
	return strings.ReplaceAll(page, PlaceholderFooter, footer)
}

var attrEscaper = strings.NewReplacer(`"`, "&quot;")

// escapeAttr keeps a value from closing its attribute.
func escapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
