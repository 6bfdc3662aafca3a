package extract

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/model"
	"github.com/handiism/virtual-moments/internal/steam"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// ProfileFetcher returns the fully loaded markup of a gallery index.
// *browser.ScrollFetcher and *browser.StaticFetcher satisfy it.
type ProfileFetcher interface {
	FetchProfile(ctx context.Context, url string) (string, error)
}

// PageGetter fetches a detail page. *http.Client satisfies it.
type PageGetter interface {
	GetString(ctx context.Context, url string) (string, error)
}

// Result is the outcome of a pipeline run.
type Result struct {
	// Records holds the parsed screenshots in link order.
	Records []*model.Screenshot

	// Failures holds the links that could not be parsed, in link order.
	Failures []model.Failure

	// Links is the number of detail links found on the index page.
	Links int
}

// Games returns the number of distinct games among the records.
func (r *Result) Games() int {
	return model.CountGames(r.Records)
}

// Summary returns a one-line description of the run.
func (r *Result) Summary() string {
	return fmt.Sprintf("%d screenshots from %d games, %d failed", len(r.Records), r.Games(), len(r.Failures))
}

// outcome is the slot of one detail link.
type outcome struct {
	record *model.Screenshot
	err    error
}

// Pipeline extracts screenshot records from a Steam profile.
type Pipeline struct {
	settings  *config.Settings
	fetcher   ProfileFetcher
	pages     PageGetter
	collector *steam.LinkCollector
	parser    *steam.DetailParser
	logger    *zap.Logger

	done  int32
	total int32

	onProgress func(ProgressEvent)
}

// NewPipeline creates a Pipeline. fetcher loads the gallery index and pages
// fetches the detail pages. logger and onProgress may be nil.
//
// onProgress is called from worker goroutines and must be safe for
// concurrent use.
func NewPipeline(settings *config.Settings, fetcher ProfileFetcher, pages PageGetter, logger *zap.Logger, onProgress func(ProgressEvent)) *Pipeline {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{
		settings:   settings,
		fetcher:    fetcher,
		pages:      pages,
		collector:  steam.NewLinkCollector(pages),
		parser:     steam.NewDetailParser(pages, steam.NewDateNormalizer()),
		logger:     logger,
		onProgress: onProgress,
	}
}

// WithDates replaces the date normalizer used for detail pages.
func (p *Pipeline) WithDates(dates *steam.DateNormalizer) *Pipeline {
	p.parser = steam.NewDetailParser(p.pages, dates)
	return p
}

// Progress returns how many detail links are finished out of the total.
// It is safe to call while Run is in progress.
func (p *Pipeline) Progress() (done, total int32) {
	return atomic.LoadInt32(&p.done), atomic.LoadInt32(&p.total)
}

// Run extracts all screenshots of the profile at profileURL.
//
// Errors that make the run meaningless are returned with a nil Result: an
// invalid profile URL (steam.ErrInvalidProfileURL) and a failure to load or
// read the index page. Failures of single detail pages are collected in
// Result.Failures and never abort the run.
//
// If ctx is canceled, links not yet started are recorded as failures and the
// partial Result is returned together with ctx.Err().
func (p *Pipeline) Run(ctx context.Context, profileURL string) (*Result, error) {
	logger := p.logger.With(zap.String("run_id", uuid.NewString()))

	galleryURL, err := steam.GalleryURL(profileURL)
	if err != nil {
		return nil, err
	}

	p.progress(ProgressEvent{Stage: StageIndex, Message: fmt.Sprintf("Loading gallery %s", galleryURL), Level: LevelInfo})
	logger.Info("loading gallery", zap.String("url", galleryURL))

	index, err := p.fetcher.FetchProfile(ctx, galleryURL)
	if err != nil {
		p.progress(ProgressEvent{Stage: StageIndex, Message: fmt.Sprintf("Error loading gallery: %v", err), Level: LevelError})
		return nil, fmt.Errorf("fetch gallery index: %w", err)
	}

	links, err := p.collector.CollectDetailLinks(index)
	if err != nil {
		return nil, fmt.Errorf("collect detail links: %w", err)
	}

	atomic.StoreInt32(&p.done, 0)
	atomic.StoreInt32(&p.total, int32(len(links)))
	p.progress(ProgressEvent{Stage: StageLinks, Message: fmt.Sprintf("Found %d screenshots", len(links)), Level: LevelInfo})
	logger.Info("detail links collected", zap.Int("links", len(links)))

	slots := p.processLinks(ctx, logger, links)

	res := &Result{
		Records:  make([]*model.Screenshot, 0, len(links)),
		Failures: []model.Failure{},
		Links:    len(links),
	}
	for i, slot := range slots {
		if slot.err != nil {
			res.Failures = append(res.Failures, model.Failure{Link: links[i], Err: slot.err})
			continue
		}
		res.Records = append(res.Records, slot.record)
	}

	level := LevelSuccess
	if len(res.Failures) > 0 {
		level = LevelWarning
	}
	p.progress(ProgressEvent{Stage: StageDone, Message: res.Summary(), Level: level})
	logger.Info("extraction finished",
		zap.Int("screenshots", len(res.Records)),
		zap.Int("games", res.Games()),
		zap.Int("failed", len(res.Failures)),
	)

	return res, ctx.Err()
}

// processLinks fetches and parses every link with bounded concurrency.
// Each slot is written by exactly one goroutine.
func (p *Pipeline) processLinks(ctx context.Context, logger *zap.Logger, links []string) []outcome {
	slots := make([]outcome, len(links))

	// No shared context: a failed link leaves the others running.
	var g errgroup.Group
	g.SetLimit(p.settings.Concurrency())

	for i, link := range links {
		if err := ctx.Err(); err != nil {
			for j := i; j < len(links); j++ {
				slots[j].err = err
			}
			break
		}

		g.Go(func() error {
			defer atomic.AddInt32(&p.done, 1)

			shot, err := p.parser.ParseSource(ctx, steam.FromURL(link))
			if err != nil {
				slots[i].err = err
				logger.Warn("screenshot failed", zap.String("link", link), zap.Error(err))
				p.progress(ProgressEvent{Stage: StageDetails, Message: fmt.Sprintf("Error processing %s: %v", link, err), Level: LevelError})
				return nil // Continue with other links
			}

			slots[i].record = shot
			p.progress(ProgressEvent{Stage: StageDetails, Message: fmt.Sprintf("Parsed: %s (%s)", shot.Game, shot.Date), Level: LevelVerbose})
			return nil
		})
	}

	_ = g.Wait()
	return slots
}

func (p *Pipeline) progress(event ProgressEvent) {
	if p.onProgress != nil {
		p.onProgress(event)
	}
}
