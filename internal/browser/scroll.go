package browser

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const (
	scrollScript = "() => window.scrollTo(0, document.body.scrollHeight)"
	heightScript = "() => document.body.scrollHeight"
)

// scrollPage is the part of a browser page the scroll loop needs.
// playwright.Page satisfies it.
type scrollPage interface {
	Evaluate(expression string, arg ...interface{}) (interface{}, error)
	Content() (string, error)
}

// scrollResult is the outcome of scrollUntilStable.
type scrollResult struct {
	HTML     string
	Scrolls  int
	Height   int
	TimedOut bool
}

// scrollUntilStable scrolls to the bottom of page until the document height
// stays the same across one pause, then returns the page markup.
//
// maxDuration bounds the loop; when it is reached the markup loaded so far
// is returned with TimedOut set. A zero maxDuration means no bound.
func scrollUntilStable(ctx context.Context, page scrollPage, pause, maxDuration time.Duration, logger *zap.Logger) (*scrollResult, error) {
	start := time.Now()

	last, err := pageHeight(page)
	if err != nil {
		return nil, err
	}

	res := &scrollResult{Height: last}
	for {
		if _, err := page.Evaluate(scrollScript); err != nil {
			return nil, fmt.Errorf("scroll: %w", err)
		}
		res.Scrolls++

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(pause):
		}

		height, err := pageHeight(page)
		if err != nil {
			return nil, err
		}
		logger.Debug("scrolled", zap.Int("scroll", res.Scrolls), zap.Int("height", height))

		if height == last {
			break
		}
		last = height
		res.Height = height

		if maxDuration > 0 && time.Since(start) >= maxDuration {
			res.TimedOut = true
			break
		}
	}

	html, err := page.Content()
	if err != nil {
		return nil, fmt.Errorf("read page content: %w", err)
	}
	res.HTML = html

	return res, nil
}

// pageHeight returns document.body.scrollHeight.
func pageHeight(page scrollPage) (int, error) {
	v, err := page.Evaluate(heightScript)
	if err != nil {
		return 0, fmt.Errorf("measure page height: %w", err)
	}

	switch h := v.(type) {
	case int:
		return h, nil
	case int64:
		return int(h), nil
	case float64:
		return int(h), nil
	default:
		return 0, fmt.Errorf("measure page height: unexpected %T result", v)
	}
}
