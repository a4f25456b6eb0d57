// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import "image/color"

// StrokeStyle defines how to stroke a path.
type StrokeStyle struct {
	// Color is the stroke color.
	Color color.Color

	// Width is the line width in pixels.
	Width float64
}

// DefaultStrokeStyle returns a StrokeStyle with default values.
// Uses black color and 1px width, matching an HTML canvas.
func DefaultStrokeStyle() StrokeStyle {
	return StrokeStyle{
		Color: color.Black,
		Width: 1.0,
	}
}

// WithColor returns a copy with the specified color.
func (s StrokeStyle) WithColor(c color.Color) StrokeStyle {
	s.Color = c
	return s
}

// WithWidth returns a copy with the specified width.
func (s StrokeStyle) WithWidth(w float64) StrokeStyle {
	s.Width = w
	return s
}

// Point represents a 2D point with float64 coordinates.
type Point struct {
	X, Y float64
}

// Pt creates a Point from x, y coordinates.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Options configures canvas creation.
type Options struct {
	// Width is the canvas width in pixels.
	Width int

	// Height is the canvas height in pixels.
	Height int

	// LineWidth is the stroke width in pixels.
	// Default: 1
	LineWidth float64

	// Custom options for specific backends.
	Custom map[string]any
}

// DefaultOptions returns Options with default values.
func DefaultOptions(width, height int) Options {
	return Options{
		Width:     width,
		Height:    height,
		LineWidth: 1,
	}
}
