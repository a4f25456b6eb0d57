// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
)

// Canvas is a 2D drawing target with an HTML canvas style path API.
//
// Path calls accumulate into a current path which Stroke outlines with the
// current stroke style. BeginPath discards the current path.
//
// Canvases are NOT thread-safe. Each canvas should be used from a single
// goroutine, or external synchronization must be used.
type Canvas interface {
	// ClearRect erases the given rectangle to the canvas background.
	ClearRect(x, y, width, height float64)

	// BeginPath starts a new, empty path.
	BeginPath()

	// MoveTo starts a new subpath at (x, y).
	MoveTo(x, y float64)

	// LineTo adds a straight line from the current point to (x, y).
	LineTo(x, y float64)

	// ClosePath connects the current point back to the subpath start.
	ClosePath()

	// SetStrokeStyle sets the color used by Stroke.
	SetStrokeStyle(c color.Color)

	// Stroke outlines the current path. The path is kept.
	Stroke()
}

// Snapshotter is an optional interface for canvases backed by pixels.
type Snapshotter interface {
	Canvas

	// Snapshot returns a copy of the current contents.
	Snapshot() *image.RGBA
}

// Closer is an optional interface for canvases holding resources.
type Closer interface {
	Canvas

	// Close releases all resources. Close is idempotent.
	Close() error
}

// toRGBA converts c to 8-bit premultiplied RGBA. A nil color is black.
func toRGBA(c color.Color) color.RGBA {
	if c == nil {
		return color.RGBA{A: 255}
	}
	return color.RGBAModel.Convert(c).(color.RGBA)
}
