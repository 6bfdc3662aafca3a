package main

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"

	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/logger"
	"github.com/handiism/virtual-moments/internal/tui"
	"github.com/joho/godotenv"
)

func main() {
	var (
		configFlag   = flag.String("config", "virtualmoments.json", "Path to config file")
		manifestFlag = flag.String("manifest", "", "Path to the manifest (overrides config)")
	)
	flag.Parse()

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env: %v\n", err)
		os.Exit(1)
	}

	settings, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := settings.ApplyEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if *manifestFlag != "" {
		settings.ManifestPath = *manifestFlag
	}

	// The manifest only prefills the profile URL.
	var profileURL string
	if manifest, err := config.LoadManifest(settings.ManifestPath); err == nil {
		profileURL = manifest.Content.SteamProfileURL
	}

	// The alternate screen owns stderr, so logs only go to the log file.
	log := logger.NewFile(settings.LogLevel, settings.LogPath)
	defer log.Sync()

	if err := tui.Run(settings, profileURL, log); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
