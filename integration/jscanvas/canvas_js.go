// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

//go:build js

package jscanvas

import (
	"image/color"

	"github.com/gopherjs/gopherjs/js"

	"github.com/gogpu/j2d/surface"
)

// Canvas is a surface.Canvas backed by a CanvasRenderingContext2D.
type Canvas struct {
	element *js.Object
	ctx     *js.Object
}

// New wraps the 2D context of a canvas element.
func New(element *js.Object) *Canvas {
	return &Canvas{
		element: element,
		ctx:     element.Call("getContext", "2d"),
	}
}

// NewFromElement looks up the canvas element with the given id in the
// current document and wraps its 2D context.
func NewFromElement(id string) *Canvas {
	return New(js.Global.Get("document").Call("getElementById", id))
}

// Width returns the width of the canvas element in pixels.
func (c *Canvas) Width() int {
	return c.element.Get("width").Int()
}

// Height returns the height of the canvas element in pixels.
func (c *Canvas) Height() int {
	return c.element.Get("height").Int()
}

// Context returns the underlying rendering context.
func (c *Canvas) Context() *js.Object {
	return c.ctx
}

// SetLineWidth sets the context's lineWidth.
func (c *Canvas) SetLineWidth(width float64) {
	c.ctx.Set("lineWidth", width)
}

func (c *Canvas) ClearRect(x, y, width, height float64) {
	c.ctx.Call("clearRect", x, y, width, height)
}

func (c *Canvas) BeginPath() {
	c.ctx.Call("beginPath")
}

func (c *Canvas) MoveTo(x, y float64) {
	c.ctx.Call("moveTo", x, y)
}

func (c *Canvas) LineTo(x, y float64) {
	c.ctx.Call("lineTo", x, y)
}

func (c *Canvas) ClosePath() {
	c.ctx.Call("closePath")
}

func (c *Canvas) SetStrokeStyle(col color.Color) {
	c.ctx.Set("strokeStyle", CSSColor(col))
}

func (c *Canvas) Stroke() {
	c.ctx.Call("stroke")
}

var _ surface.Canvas = (*Canvas)(nil)
