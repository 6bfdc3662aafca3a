// Package ioutils provides file system and image processing utilities.
//
// This package contains functions for:
//   - Writing files with their parent directories
//   - Saving and loading the content.json screenshot artifact
//   - Filename sanitization
//   - Album cover thumbnails
//
// # Content
//
//	err := ioutils.SaveContent(ctx, "content.json", result.Records)
//	screenshots, err := ioutils.LoadContent("content.json")
//
// # Image Processing
//
//	svc := ioutils.NewImageService()
//	cover, err := svc.ResizeImage(ctx, screenshotBytes, 600, 600)
package ioutils
