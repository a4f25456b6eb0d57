// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is a raster image file format.
type Format uint8

const (
	// FormatPNG is lossless PNG.
	FormatPNG Format = iota

	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP

	// FormatTIFF is TIFF with Deflate compression.
	FormatTIFF
)

// formatNames maps Format values to their canonical names.
var formatNames = [...]string{
	FormatPNG:  "png",
	FormatBMP:  "bmp",
	FormatTIFF: "tiff",
}

// String returns the canonical name of the format.
func (f Format) String() string {
	if int(f) < len(formatNames) {
		return formatNames[f]
	}
	return "unknown"
}

// UnknownFormatError is returned for unrecognized format names.
type UnknownFormatError struct {
	Name string
}

func (e *UnknownFormatError) Error() string {
	return "surface: unknown image format: " + e.Name
}

// ParseFormat parses a format name such as "png" or "tif".
// Matching is case-insensitive and ignores a leading dot.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	}
	return 0, &UnknownFormatError{Name: name}
}

// FormatFromPath picks the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Encode writes img to w in the given format.
func Encode(w io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		return png.Encode(w, img)
	case FormatBMP:
		return bmp.Encode(w, img)
	case FormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}
	return &UnknownFormatError{Name: f.String()}
}

// WriteFile encodes img to path, choosing the format from the extension.
func WriteFile(path string, img image.Image) error {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	return EncodeFile(path, img, f)
}

// EncodeFile encodes img to path in format f, whatever the extension.
func EncodeFile(path string, img image.Image, f Format) (err error) {
	file, err := os.Create(path) //nolint:gosec // path is caller-provided
	if err != nil {
		return fmt.Errorf("surface: create %s: %w", path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if err := Encode(file, img, f); err != nil {
		return fmt.Errorf("surface: encode %s: %w", f, err)
	}
	return nil
}
