package ioutils

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/handiism/virtual-moments/internal/model"
)

// SaveContent writes screenshots to path as a JSON array, keeping their order.
//
// This is the content.json artifact consumed by the page renderer:
//
//	[
//	  {"game": "Outer Wilds", "title": "Campfire", "link": "https://...", "date": "21 January 2024"}
//	]
func SaveContent(ctx context.Context, path string, screenshots []*model.Screenshot) error {
	if screenshots == nil {
		screenshots = []*model.Screenshot{}
	}

	data, err := json.MarshalIndent(screenshots, "", "    ")
	if err != nil {
		return fmt.Errorf("encode content: %w", err)
	}

	if err := WriteFile(ctx, path, data); err != nil {
		return fmt.Errorf("write content: %w", err)
	}
	return nil
}

// LoadContent reads a content.json file written by SaveContent.
func LoadContent(path string) ([]*model.Screenshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}

	var screenshots []*model.Screenshot
	if err := json.Unmarshal(data, &screenshots); err != nil {
		return nil, fmt.Errorf("decode content %s: %w", path, err)
	}

	for i, s := range screenshots {
		if s == nil || s.Game == "" {
			return nil, fmt.Errorf("decode content %s: entry %d has no game", path, i)
		}
	}

	return screenshots, nil
}
