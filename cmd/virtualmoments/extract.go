package main

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/handiism/virtual-moments/internal/extract"
	ioutils "github.com/handiism/virtual-moments/internal/io"
	"github.com/spf13/cobra"
)

// errFailedLinks is returned in strict mode when any screenshot failed.
type errFailedLinks int

func (e errFailedLinks) Error() string {
	return fmt.Sprintf("%d screenshot(s) failed", int(e))
}

func newExtractCmd(a *app) *cobra.Command {
	var (
		profile string
		strict  bool
	)

	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Extract screenshots into content.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := runExtract(cmd.Context(), a, cmd.OutOrStdout(), profile, strict)
			return err
		},
	}

	cmd.Flags().StringVar(&profile, "profile", "", "Steam profile URL (defaults to the manifest)")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit with an error if any screenshot failed")
	return cmd
}

// runExtract runs the pipeline and writes content.json. A partial result
// from a cancelled run is still written.
func runExtract(ctx context.Context, a *app, out io.Writer, profile string, strict bool) (*extract.Result, error) {
	profileURL, err := a.profileURL(profile)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(out, "📸 Virtual Moments")
	fmt.Fprintln(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(out)

	pipeline := extract.New(a.settings, a.logger, progressPrinter(out, a.verbose))
	res, runErr := pipeline.Run(ctx, profileURL)
	if res == nil {
		return nil, runErr
	}

	if err := ioutils.SaveContent(context.WithoutCancel(ctx), a.settings.ContentPath, res.Records); err != nil {
		return res, err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintf(out, "✨ %s\n", res.Summary())
	fmt.Fprintf(out, "   Saved to %s\n", a.settings.ContentPath)
	if len(res.Failures) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Failed screenshots:")
		for _, f := range res.Failures {
			fmt.Fprintf(out, "  %s: %s\n", f.Link, f.Reason())
		}
	}

	if runErr != nil {
		return res, runErr
	}
	if strict && len(res.Failures) > 0 {
		return res, errFailedLinks(len(res.Failures))
	}
	return res, nil
}

// progressPrinter prints pipeline events; verbose events only when verbose.
func progressPrinter(out io.Writer, verbose bool) func(extract.ProgressEvent) {
	var mu sync.Mutex
	return func(event extract.ProgressEvent) {
		if event.Level == extract.LevelVerbose && !verbose {
			return
		}

		var prefix string
		switch event.Level {
		case extract.LevelError:
			prefix = "❌ "
		case extract.LevelWarning:
			prefix = "⚠️  "
		case extract.LevelSuccess:
			prefix = "✅ "
		case extract.LevelInfo:
			prefix = "ℹ️  "
		default:
			prefix = "   "
		}

		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(out, prefix+event.Message)
	}
}
