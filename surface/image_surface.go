// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

// ImageSurface is a CPU-based canvas that renders to an *image.RGBA.
//
// Strokes are expanded into filled outlines and scan converted with
// golang.org/x/image/vector, which gives anti-aliased edges. ClearRect
// resets pixels to transparent black, like an HTML canvas.
//
// Example:
//
//	s := surface.NewImageSurface(300, 300)
//	defer s.Close()
//
//	s.BeginPath()
//	s.MoveTo(10, 10)
//	s.LineTo(290, 10)
//	s.Stroke()
//
//	img := s.Snapshot()
type ImageSurface struct {
	width  int
	height int
	img    *image.RGBA

	// path is the current path built by BeginPath/MoveTo/LineTo/ClosePath
	path *Path

	style StrokeStyle

	// rast scan converts stroke outlines
	rast *vector.Rasterizer

	// closed tracks if Close has been called
	closed bool
}

// NewImageSurface creates a new CPU-based surface with the given dimensions.
// Non-positive dimensions are clamped to 1.
func NewImageSurface(width, height int) *ImageSurface {
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}
	return newImageSurface(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewImageSurfaceFromImage creates a surface backed by an existing image.
// The surface will render into the provided image directly.
func NewImageSurfaceFromImage(img *image.RGBA) *ImageSurface {
	return newImageSurface(img)
}

func newImageSurface(img *image.RGBA) *ImageSurface {
	b := img.Bounds()
	return &ImageSurface{
		width:  b.Dx(),
		height: b.Dy(),
		img:    img,
		path:   NewPath(),
		style:  DefaultStrokeStyle(),
		rast:   vector.NewRasterizer(b.Dx(), b.Dy()),
	}
}

// Width returns the surface width.
func (s *ImageSurface) Width() int {
	return s.width
}

// Height returns the surface height.
func (s *ImageSurface) Height() int {
	return s.height
}

// Clear fills the entire surface with the given color.
func (s *ImageSurface) Clear(c color.Color) {
	if s.closed {
		return
	}
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(toRGBA(c)), image.Point{}, draw.Src)
}

// ClearRect resets the pixels covered by the rectangle to transparent black.
// Partially covered pixels are cleared. Negative sizes are normalized.
func (s *ImageSurface) ClearRect(x, y, width, height float64) {
	if s.closed {
		return
	}
	b := s.img.Bounds()
	r := image.Rect(
		b.Min.X+int(math.Floor(x)),
		b.Min.Y+int(math.Floor(y)),
		b.Min.X+int(math.Ceil(x+width)),
		b.Min.Y+int(math.Ceil(y+height)),
	).Intersect(b)
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.Transparent, image.Point{}, draw.Src)
}

// BeginPath discards the current path.
func (s *ImageSurface) BeginPath() {
	s.path.Clear()
}

// MoveTo starts a new subpath at (x, y).
func (s *ImageSurface) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
}

// LineTo adds a line to (x, y).
func (s *ImageSurface) LineTo(x, y float64) {
	s.path.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (s *ImageSurface) ClosePath() {
	s.path.Close()
}

// SetStrokeStyle sets the color used by Stroke.
func (s *ImageSurface) SetStrokeStyle(c color.Color) {
	s.style.Color = c
}

// SetLineWidth sets the stroke width in pixels.
func (s *ImageSurface) SetLineWidth(w float64) {
	s.style.Width = w
}

// StrokeStyle returns the current stroke style.
func (s *ImageSurface) StrokeStyle() StrokeStyle {
	return s.style
}

// Stroke outlines the current path with the current style.
func (s *ImageSurface) Stroke() {
	s.StrokePath(s.path, s.style)
}

// StrokePath outlines path with the given style.
// The path is not modified or consumed.
func (s *ImageSurface) StrokePath(path *Path, style StrokeStyle) {
	if s.closed || path == nil || path.IsEmpty() || style.Width <= 0 {
		return
	}

	segments := path.Segments()
	if len(segments) == 0 {
		return
	}

	halfWidth := style.Width / 2
	b := s.img.Bounds()

	s.rast.Reset(b.Dx(), b.Dy())
	s.rast.DrawOp = draw.Over
	for _, seg := range segments {
		s.addSegment(seg, halfWidth)
	}
	s.rast.Draw(s.img, b, image.NewUniform(toRGBA(style.Color)), image.Point{})
}

// addSegment adds the outline of one stroked segment to the rasterizer.
// Both ends are extended by half the line width so that consecutive
// segments overlap at the joint and corners come out square.
func (s *ImageSurface) addSegment(seg Segment, halfWidth float64) {
	dx := seg.To.X - seg.From.X
	dy := seg.To.Y - seg.From.Y
	length := math.Hypot(dx, dy)

	// Unit direction; a zero-length segment becomes a square dot.
	ux, uy := 1.0, 0.0
	if length > 0 {
		ux, uy = dx/length, dy/length
	}

	// Extended endpoints and the normal offset.
	x0, y0 := seg.From.X-ux*halfWidth, seg.From.Y-uy*halfWidth
	x1, y1 := seg.To.X+ux*halfWidth, seg.To.Y+uy*halfWidth
	nx, ny := -uy*halfWidth, ux*halfWidth

	s.rast.MoveTo(float32(x0+nx), float32(y0+ny))
	s.rast.LineTo(float32(x1+nx), float32(y1+ny))
	s.rast.LineTo(float32(x1-nx), float32(y1-ny))
	s.rast.LineTo(float32(x0-nx), float32(y0-ny))
	s.rast.ClosePath()
}

// Snapshot returns a copy of the current surface contents.
func (s *ImageSurface) Snapshot() *image.RGBA {
	if s.closed {
		return nil
	}

	result := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	draw.Draw(result, result.Bounds(), s.img, s.img.Bounds().Min, draw.Src)
	return result
}

// Image returns the underlying image.RGBA.
// This is a direct reference, not a copy.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Close releases resources associated with the surface.
func (s *ImageSurface) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.img = nil
	s.rast = nil
	return nil
}

// Verify ImageSurface implements the canvas interfaces.
var (
	_ Canvas      = (*ImageSurface)(nil)
	_ Snapshotter = (*ImageSurface)(nil)
	_ Closer      = (*ImageSurface)(nil)
)
