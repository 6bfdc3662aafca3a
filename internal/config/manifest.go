package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrNoProfileURL is returned when the manifest does not name a Steam profile.
var ErrNoProfileURL = errors.New("manifest: content.steam_profile_url is required")

// Manifest describes the gallery: where screenshots come from and how they
// are grouped into albums.
//
// Example manifest.yaml:
//
//	content:
//	  steam_profile_url: https://steamcommunity.com/id/someone
//	albums:
//	  - name: Space Trips
//	    games:
//	      - Outer Wilds
//	      - Elite Dangerous
type Manifest struct {
	Content ContentSource `yaml:"content"`
	Albums  []AlbumDef    `yaml:"albums"`
}

// ContentSource names the profile the gallery is scraped from.
type ContentSource struct {
	SteamProfileURL string `yaml:"steam_profile_url"`
}

// AlbumDef is one curated album of the manifest.
type AlbumDef struct {
	Name  string   `yaml:"name"`
	Games []string `yaml:"games"`
}

// LoadManifest reads and validates a manifest file.
//
// Unlike Load, a missing manifest is an error: there is nothing to scrape
// without a profile URL.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return ParseManifest(data)
}

// ParseManifest decodes and validates manifest YAML.
func ParseManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	m.Content.SteamProfileURL = strings.TrimSpace(m.Content.SteamProfileURL)
	if m.Content.SteamProfileURL == "" {
		return nil, ErrNoProfileURL
	}

	for i, album := range m.Albums {
		if strings.TrimSpace(album.Name) == "" {
			return nil, fmt.Errorf("manifest: album %d has no name", i+1)
		}
	}

	return &m, nil
}
