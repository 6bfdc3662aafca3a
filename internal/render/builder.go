package render

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/handiism/virtual-moments/internal/config"
	ioutils "github.com/handiism/virtual-moments/internal/io"
	"github.com/handiism/virtual-moments/internal/model"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ImageDownloader fetches image bytes. *http.Client satisfies it.
type ImageDownloader interface {
	DownloadBytes(ctx context.Context, url string) ([]byte, error)
}

// Result summarizes a site build.
type Result struct {
	// Albums holds every rendered album, the catch-all album last.
	Albums []*model.Album

	// Pages lists the written files, index page last.
	Pages []string

	// Covers maps album page names to cover image site paths.
	Covers map[string]string
}

// Builder renders the Astro pages of the gallery.
//
// Builder reads the album and index templates, assigns screenshots to the
// manifest's albums, optionally produces album cover thumbnails and writes
// one <page>.astro per album plus index.astro.
//
// Example:
//
//	builder := NewBuilder(settings, client, logger)
//	res, err := builder.Build(ctx, manifest, screenshots)
//	fmt.Printf("Built %d albums\n", len(res.Albums))
type Builder struct {
	settings *config.Settings
	renderer *AstroRenderer
	images   ImageDownloader
	imageSvc *ioutils.ImageService
	logger   *zap.Logger
}

// NewBuilder creates a Builder. images is only used when cover generation
// is enabled and may be nil otherwise.
func NewBuilder(settings *config.Settings, images ImageDownloader, logger *zap.Logger) *Builder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Builder{
		settings: settings,
		renderer: NewAstroRenderer(settings.SiteBasePath),
		images:   images,
		imageSvc: ioutils.NewImageService(),
		logger:   logger,
	}
}

// WithRenderer replaces the page renderer.
func (b *Builder) WithRenderer(r *AstroRenderer) *Builder {
	b.renderer = r
	return b
}

// Build renders all pages for screenshots grouped per manifest.
//
// Template read errors and page write errors abort the build. Cover
// failures are logged and leave the album without a cover.
func (b *Builder) Build(ctx context.Context, manifest *config.Manifest, screenshots []*model.Screenshot) (*Result, error) {
	albumTemplate, err := os.ReadFile(b.settings.AlbumTemplate)
	if err != nil {
		return nil, fmt.Errorf("read album template: %w", err)
	}
	indexTemplate, err := os.ReadFile(b.settings.IndexTemplate)
	if err != nil {
		return nil, fmt.Errorf("read index template: %w", err)
	}

	albums := AssignAlbums(screenshots, manifest.Albums)
	res := &Result{Albums: albums, Covers: map[string]string{}}

	if b.settings.GenerateCovers {
		res.Covers = b.generateCovers(ctx, albums)
	}

	for _, album := range albums {
		path := filepath.Join(b.settings.PagesDir, album.PageName()+".astro")
		if err := ioutils.WriteFile(ctx, path, []byte(b.renderer.AlbumPage(string(albumTemplate), album))); err != nil {
			return nil, fmt.Errorf("write album page %s: %w", album.Name, err)
		}
		res.Pages = append(res.Pages, path)
		b.logger.Debug("album page written",
			zap.String("album", album.Name),
			zap.String("path", path),
			zap.Int("screenshots", len(album.Screenshots)),
		)
	}

	indexPath := filepath.Join(b.settings.PagesDir, "index.astro")
	if err := ioutils.WriteFile(ctx, indexPath, []byte(b.renderer.IndexPage(string(indexTemplate), albums, res.Covers))); err != nil {
		return nil, fmt.Errorf("write index page: %w", err)
	}
	res.Pages = append(res.Pages, indexPath)

	b.logger.Info("site built", zap.Int("albums", len(albums)), zap.Int("pages", len(res.Pages)))
	return res, nil
}

// generateCovers writes a thumbnail of each album's first screenshot and
// returns the site paths of the covers that succeeded.
func (b *Builder) generateCovers(ctx context.Context, albums []*model.Album) map[string]string {
	covers := make(map[string]string)
	if b.images == nil {
		b.logger.Warn("cover generation enabled without an image downloader")
		return covers
	}

	var mu sync.Mutex
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.settings.Concurrency())

	for _, album := range albums {
		if !album.HasScreenshots() {
			continue
		}
		g.Go(func() error {
			if err := b.generateCover(ctx, album); err != nil {
				b.logger.Warn("cover skipped", zap.String("album", album.Name), zap.Error(err))
				return nil // Continue with other albums
			}
			mu.Lock()
			covers[album.PageName()] = b.renderer.CoverPath(album)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return covers
}

func (b *Builder) generateCover(ctx context.Context, album *model.Album) error {
	data, err := b.images.DownloadBytes(ctx, album.Screenshots[0].Link)
	if err != nil {
		return err
	}

	cover, err := b.imageSvc.ResizeImage(ctx, data, b.settings.CoverSize, b.settings.CoverSize)
	if err != nil {
		return fmt.Errorf("resize: %w", err)
	}

	return ioutils.WriteFile(ctx, filepath.Join(b.settings.CoversDir, coverFileName(album)), cover)
}
