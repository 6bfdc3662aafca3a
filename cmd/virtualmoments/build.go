package main

import (
	"context"
	"fmt"
	"io"

	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/extract"
	ioutils "github.com/handiism/virtual-moments/internal/io"
	"github.com/handiism/virtual-moments/internal/model"
	"github.com/handiism/virtual-moments/internal/render"
	"github.com/spf13/cobra"
)

func newBuildCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Render the album pages from content.json",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			screenshots, err := ioutils.LoadContent(a.settings.ContentPath)
			if err != nil {
				return err
			}
			return runBuild(cmd.Context(), a, cmd.OutOrStdout(), screenshots)
		},
	}
}

// runBuild renders the gallery pages for screenshots.
func runBuild(ctx context.Context, a *app, out io.Writer, screenshots []*model.Screenshot) error {
	manifest, err := config.LoadManifest(a.settings.ManifestPath)
	if err != nil {
		return err
	}

	var images render.ImageDownloader
	if a.settings.GenerateCovers {
		images = extract.NewClient(a.settings, a.logger)
	}

	res, err := render.NewBuilder(a.settings, images, a.logger).Build(ctx, manifest, screenshots)
	if err != nil {
		return err
	}

	for _, album := range res.Albums {
		fmt.Fprintf(out, "  %-30s %d screenshot(s)\n", album.Name, len(album.Screenshots))
	}
	fmt.Fprintf(out, "✨ Built %d album page(s) in %s\n", len(res.Albums), a.settings.PagesDir)
	return nil
}
