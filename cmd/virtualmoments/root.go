package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/handiism/virtual-moments/internal/config"
	"github.com/handiism/virtual-moments/internal/logger"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	appName           = "virtualmoments"
	defaultConfigPath = "virtualmoments.json"
)

// rootFlags holds the persistent flags shared by all subcommands.
type rootFlags struct {
	configPath   string
	manifestPath string
	verbose      bool
}

// app is the state prepared for every subcommand.
type app struct {
	settings *config.Settings
	logger   *zap.Logger
	verbose  bool
}

func newRootCmd() *cobra.Command {
	var (
		flags rootFlags
		a     app
	)

	rootCmd := &cobra.Command{
		Use:           appName,
		Short:         "Build a screenshot gallery from a Steam profile",
		Long:          "Extract the screenshots of a Steam profile into content.json (extract), render the Astro album pages (build), or both (run).",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(flags)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&flags.configPath, "config", defaultConfigPath, "Path to the settings file")
	rootCmd.PersistentFlags().StringVar(&flags.manifestPath, "manifest", "", "Path to the manifest (overrides settings)")
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Show verbose output")

	rootCmd.AddCommand(
		newExtractCmd(&a),
		newBuildCmd(&a),
		newRunCmd(&a),
	)

	return rootCmd
}

// init loads .env, settings and environment overrides and creates the logger.
func (a *app) init(flags rootFlags) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	settings, err := config.Load(flags.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := settings.ApplyEnv(); err != nil {
		return err
	}

	if flags.manifestPath != "" {
		settings.ManifestPath = flags.manifestPath
	}
	if flags.verbose {
		settings.LogLevel = "debug"
	}

	a.settings = settings
	a.verbose = flags.verbose
	a.logger = logger.New(settings.LogLevel, settings.LogPath)
	return nil
}

// profileURL returns override, or the profile named by the manifest.
func (a *app) profileURL(override string) (string, error) {
	if override != "" {
		return override, nil
	}
	manifest, err := config.LoadManifest(a.settings.ManifestPath)
	if err != nil {
		return "", err
	}
	return manifest.Content.SteamProfileURL, nil
}
