// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ebitencanvas

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/gogpu/j2d/surface"
)

// DefaultLineWidth is the stroke width of a new Canvas.
const DefaultLineWidth = 1

// Canvas is a surface.Canvas drawing onto an *ebiten.Image.
type Canvas struct {
	target *ebiten.Image

	// white is the 1x1 source image sampled by every triangle.
	white *ebiten.Image

	path       vector.Path
	color      color.NRGBA
	background color.Color
	lineWidth  float32
	antiAlias  bool

	vs []ebiten.Vertex
	is []uint16
}

// New creates a canvas drawing onto target. Target may be nil and set
// later with SetTarget.
func New(target *ebiten.Image) *Canvas {
	return &Canvas{
		target:     target,
		color:      color.NRGBA{A: 255},
		background: color.Transparent,
		lineWidth:  DefaultLineWidth,
		antiAlias:  true,
	}
}

// SetTarget replaces the image the canvas draws on.
func (c *Canvas) SetTarget(target *ebiten.Image) {
	c.target = target
}

// Target returns the image the canvas draws on.
func (c *Canvas) Target() *ebiten.Image {
	return c.target
}

// SetLineWidth sets the stroke width in pixels. Non-positive widths are
// ignored.
func (c *Canvas) SetLineWidth(width float64) {
	if width > 0 {
		c.lineWidth = float32(width)
	}
}

// SetAntiAlias toggles antialiasing of stroked triangles.
func (c *Canvas) SetAntiAlias(aa bool) {
	c.antiAlias = aa
}

// SetBackground sets the color ClearRect fills with. Nil means
// transparent. The screen image shows transparent pixels as black.
func (c *Canvas) SetBackground(bg color.Color) {
	if bg == nil {
		bg = color.Transparent
	}
	c.background = bg
}

// Background returns the color ClearRect fills with.
func (c *Canvas) Background() color.Color {
	return c.background
}

// ClearRect fills the given rectangle of the target with the background
// color.
func (c *Canvas) ClearRect(x, y, width, height float64) {
	if c.target == nil {
		return
	}
	r := clearBounds(x, y, width, height).Intersect(c.target.Bounds())
	if r.Empty() {
		return
	}
	sub := c.target.SubImage(r).(*ebiten.Image)
	if _, _, _, a := c.background.RGBA(); a == 0 {
		sub.Clear()
		return
	}
	sub.Fill(c.background)
}

// clearBounds returns the pixel rectangle covering the given area.
func clearBounds(x, y, width, height float64) image.Rectangle {
	if width <= 0 || height <= 0 {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+width)), int(math.Ceil(y+height)),
	)
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.path = vector.Path{}
}

// MoveTo starts a new subpath at (x, y).
func (c *Canvas) MoveTo(x, y float64) {
	c.path.MoveTo(float32(x), float32(y))
}

// LineTo adds a line to (x, y).
func (c *Canvas) LineTo(x, y float64) {
	c.path.LineTo(float32(x), float32(y))
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.path.Close()
}

// SetStrokeStyle sets the stroke color. A nil color selects black.
func (c *Canvas) SetStrokeStyle(col color.Color) {
	c.color = color.NRGBA{A: 255}
	if col != nil {
		c.color = color.NRGBAModel.Convert(col).(color.NRGBA)
	}
}

// Stroke outlines the current path on the target. The path is kept.
func (c *Canvas) Stroke() {
	vs, is := c.triangles()
	if c.target == nil || len(is) == 0 {
		return
	}
	if c.white == nil {
		c.white = ebiten.NewImage(1, 1)
		c.white.Fill(color.White)
	}
	c.target.DrawTriangles(vs, is, c.white, &ebiten.DrawTrianglesOptions{
		AntiAlias: c.antiAlias,
	})
}

// triangles tessellates the current path outline and colors the vertices
// with the stroke color.
func (c *Canvas) triangles() ([]ebiten.Vertex, []uint16) {
	c.vs, c.is = c.path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:      c.lineWidth,
		LineJoin:   vector.LineJoinMiter,
		MiterLimit: 10,
	})

	r := float32(c.color.R) / 255
	g := float32(c.color.G) / 255
	b := float32(c.color.B) / 255
	a := float32(c.color.A) / 255
	for i := range c.vs {
		c.vs[i].SrcX = 0
		c.vs[i].SrcY = 0
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = a
	}
	return c.vs, c.is
}

var _ surface.Canvas = (*Canvas)(nil)
