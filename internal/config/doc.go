// Package config provides configuration management for virtual-moments.
//
// This package handles:
//   - Loading and saving settings from JSON files
//   - Default configuration values
//   - Environment overrides (VM_* variables, optionally from a .env file)
//   - Reading the gallery manifest (manifest.yaml)
//
// # Default Settings
//
//	settings := config.DefaultSettings()
//	// Reads manifest.yaml, writes content.json
//	// Renders pages into web/src/pages
//	// 4 concurrent detail page requests
//
// # Loading from File
//
//	settings, err := config.Load("virtualmoments.json")
//	if err != nil {
//	    // Uses defaults if file doesn't exist
//	}
//
// # Manifest
//
//	manifest, err := config.LoadManifest(settings.ManifestPath)
//	fmt.Println(manifest.Content.SteamProfileURL)
//	for _, album := range manifest.Albums {
//	    fmt.Println(album.Name, album.Games)
//	}
package config
