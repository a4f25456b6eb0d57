// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package jscanvas draws j2d scenes into an HTML5 canvas element.
//
// The Canvas type forwards every surface.Canvas call to the element's 2D
// rendering context and is only built for GopherJS (build tag js):
//
//	c := jscanvas.NewFromElement("scene")
//	r := j2d.NewRenderer(j2d.WithSize(c.Width(), c.Height()), j2d.WithCanvas(c))
//	r.Render(stage)
//
// CSSColor, which converts Go colors to CSS color strings, is available on
// every platform.
package jscanvas
