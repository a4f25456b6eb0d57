package j2d

import (
	"image/color"
	"log/slog"

	"github.com/gogpu/j2d/surface"
)

// Default renderer dimensions in pixels.
const (
	DefaultWidth  = 300
	DefaultHeight = 300
)

// strokeColor is the single stroke style used for every shape.
var strokeColor = color.RGBA{A: 255}

// Canvas is the drawing surface a Renderer strokes onto.
// It mirrors the path API of an HTML canvas 2D context.
type Canvas = surface.Canvas

// Renderer strokes the shapes of a Stage onto a Canvas.
//
// A Renderer has a fixed size chosen at construction. It does not own the
// stages it renders.
//
// Renderer is NOT safe for concurrent use.
type Renderer struct {
	width  int
	height int
	canvas Canvas
	logger *slog.Logger

	// scratch holds boundary points between shapes to avoid reallocating
	scratch []Point
}

// NewRenderer creates a renderer. Without options it is 300x300 and draws on
// a new surface.ImageSurface of that size.
func NewRenderer(opts ...Option) *Renderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.canvas == nil {
		o.canvas = surface.NewImageSurface(o.width, o.height)
	}
	return &Renderer{
		width:  o.width,
		height: o.height,
		canvas: o.canvas,
		logger: o.logger,
	}
}

// Width returns the renderer width in pixels.
func (r *Renderer) Width() int {
	return r.width
}

// Height returns the renderer height in pixels.
func (r *Renderer) Height() int {
	return r.height
}

// Canvas returns the canvas the renderer draws on.
func (r *Renderer) Canvas() Canvas {
	return r.canvas
}

// Render clears the canvas and strokes every shape on the stage in insertion
// order, clearing each shape's repaint flag. It returns the number of shapes
// stroked. A nil stage draws nothing.
func (r *Renderer) Render(stage *Stage) int {
	return r.render(stage, true)
}

// RenderIncremental strokes only the shapes flagged for repaint and clears
// their flags. The canvas is not cleared, so unchanged shapes keep their
// previously drawn pixels. It returns the number of shapes stroked.
//
// Calling RenderIncremental twice without moving or rotating a shape draws
// nothing the second time.
func (r *Renderer) RenderIncremental(stage *Stage) int {
	return r.render(stage, false)
}

func (r *Renderer) render(stage *Stage, full bool) int {
	if stage == nil {
		return 0
	}

	if full {
		r.canvas.ClearRect(0, 0, float64(r.width), float64(r.height))
	}
	r.canvas.SetStrokeStyle(strokeColor)

	stroked := 0
	for _, sh := range stage.shapes {
		if !full && !sh.NeedsRepaint() {
			continue
		}
		if r.stroke(sh) {
			stroked++
		}
		sh.SetRepaint(false)
	}

	r.log().Debug("j2d: render",
		"full", full,
		"shapes", len(stage.shapes),
		"stroked", stroked)
	return stroked
}

// stroke draws the closed outline of sh. Shapes without boundary points
// issue no canvas calls.
func (r *Renderer) stroke(sh Shape) bool {
	r.scratch = appendPoints(r.scratch[:0], sh)
	if len(r.scratch) == 0 {
		return false
	}

	c := r.canvas
	c.BeginPath()
	for i, p := range r.scratch {
		if i == 0 {
			c.MoveTo(p.X, p.Y)
		} else {
			c.LineTo(p.X, p.Y)
		}
	}
	c.ClosePath()
	c.Stroke()
	return true
}

// pointAppender is implemented by the built-in shapes to skip the copy made
// by Shape.Points.
type pointAppender interface {
	appendPoints(dst []Point) []Point
}

func appendPoints(dst []Point, sh Shape) []Point {
	if pa, ok := sh.(pointAppender); ok {
		return pa.appendPoints(dst)
	}
	return append(dst, sh.Points()...)
}

func (r *Renderer) log() *slog.Logger {
	if r.logger != nil {
		return r.logger
	}
	return Logger()
}
