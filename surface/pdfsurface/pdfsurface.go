// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package pdfsurface provides a vector canvas that writes PDF documents.
//
// Importing the package registers a "pdf" backend with the surface registry:
//
//	import _ "github.com/gogpu/j2d/surface/pdfsurface"
//
//	c, err := surface.NewCanvasByName("pdf", 300, 300)
//
// One canvas unit maps to one PDF point. The page origin is the top-left
// corner with Y growing downward, the same orientation as a raster canvas.
package pdfsurface

import (
	"errors"
	"fmt"
	"image/color"
	"io"

	"github.com/jung-kurt/gofpdf"

	"github.com/gogpu/j2d/surface"
)

// ErrClosed is returned when writing a surface that was already written.
var ErrClosed = errors.New("pdfsurface: surface closed")

// Surface is a surface.Canvas that records strokes into a single PDF page.
//
// gofpdf has no notion of a pending path, so path calls are buffered and
// replayed when Stroke is called.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	pdf    *gofpdf.Fpdf
	width  float64
	height float64

	path      *surface.Path
	color     color.RGBA
	lineWidth float64
	closed    bool
}

// New creates a PDF surface with a page of width x height points.
// Non-positive sizes are clamped to 1.
func New(width, height float64) *Surface {
	width = max(width, 1)
	height = max(height, 1)

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCreator("j2d", false)
	pdf.AddPage()

	s := &Surface{
		pdf:       pdf,
		width:     width,
		height:    height,
		path:      surface.NewPath(),
		color:     color.RGBA{A: 255},
		lineWidth: 1,
	}
	s.applyStyle()
	return s
}

// Width returns the page width in points.
func (s *Surface) Width() float64 {
	return s.width
}

// Height returns the page height in points.
func (s *Surface) Height() float64 {
	return s.height
}

// SetCompression toggles stream compression of the page content.
// It takes effect when the document is written.
func (s *Surface) SetCompression(compress bool) {
	s.pdf.SetCompression(compress)
}

// ClearRect paints the rectangle white, the page background.
func (s *Surface) ClearRect(x, y, width, height float64) {
	if s.closed || width <= 0 || height <= 0 {
		return
	}
	s.pdf.SetFillColor(255, 255, 255)
	s.pdf.Rect(x, y, width, height, "F")
}

// BeginPath discards the buffered path.
func (s *Surface) BeginPath() {
	s.path.Clear()
}

// MoveTo starts a new subpath at (x, y).
func (s *Surface) MoveTo(x, y float64) {
	s.path.MoveTo(x, y)
}

// LineTo adds a line to (x, y).
func (s *Surface) LineTo(x, y float64) {
	s.path.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (s *Surface) ClosePath() {
	s.path.Close()
}

// SetStrokeStyle sets the stroke color. Alpha is ignored; a nil color
// selects black.
func (s *Surface) SetStrokeStyle(c color.Color) {
	s.color = color.RGBA{A: 255}
	if c != nil {
		s.color = color.RGBAModel.Convert(c).(color.RGBA)
	}
	s.applyStyle()
}

// SetLineWidth sets the stroke width in points.
func (s *Surface) SetLineWidth(width float64) {
	if width > 0 {
		s.lineWidth = width
		s.applyStyle()
	}
}

func (s *Surface) applyStyle() {
	// Stroke colors are written unpremultiplied.
	n := color.NRGBAModel.Convert(s.color).(color.NRGBA)
	s.pdf.SetDrawColor(int(n.R), int(n.G), int(n.B))
	s.pdf.SetLineWidth(s.lineWidth)
	s.pdf.SetLineJoinStyle("miter")
}

// Stroke replays the buffered path into the page and strokes it.
// The path is kept.
func (s *Surface) Stroke() {
	if s.closed || s.path.IsEmpty() {
		return
	}

	points := s.path.Points()
	i := 0
	for _, verb := range s.path.Verbs() {
		switch verb {
		case surface.VerbMoveTo:
			s.pdf.MoveTo(points[i].X, points[i].Y)
			i++
		case surface.VerbLineTo:
			s.pdf.LineTo(points[i].X, points[i].Y)
			i++
		case surface.VerbClose:
			s.pdf.ClosePath()
		}
	}
	s.pdf.DrawPath("D")
}

// Err returns the first error gofpdf reported while drawing, if any.
func (s *Surface) Err() error {
	return s.pdf.Error()
}

// Output writes the finished document to w and closes the surface.
func (s *Surface) Output(w io.Writer) error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	if err := s.pdf.Output(w); err != nil {
		return fmt.Errorf("pdfsurface: write document: %w", err)
	}
	return nil
}

// WriteFile writes the finished document to path and closes the surface.
func (s *Surface) WriteFile(path string) error {
	if s.closed {
		return ErrClosed
	}
	s.closed = true
	if err := s.pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("pdfsurface: write %s: %w", path, err)
	}
	return nil
}

// Close discards the document. It is safe to call more than once.
func (s *Surface) Close() error {
	if !s.closed {
		s.closed = true
		s.pdf.Close()
	}
	return nil
}

func init() {
	surface.Register("pdf", func(opts surface.Options) (surface.Canvas, error) {
		s := New(float64(opts.Width), float64(opts.Height))
		if opts.LineWidth > 0 {
			s.SetLineWidth(opts.LineWidth)
		}
		return s, nil
	})
}

var (
	_ surface.Canvas = (*Surface)(nil)
	_ surface.Closer = (*Surface)(nil)
)
