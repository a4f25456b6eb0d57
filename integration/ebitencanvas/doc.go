// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package ebitencanvas draws j2d scenes into Ebitengine windows.
//
// Canvas implements surface.Canvas on top of an *ebiten.Image. Paths are
// tessellated on the CPU with the ebiten vector package and submitted as
// triangles, so strokes come out antialiased at any line width.
//
// # Usage
//
// Point the canvas at the screen image in the game's Draw method:
//
//	func (g *Game) Draw(screen *ebiten.Image) {
//	    g.canvas.SetTarget(screen)
//	    g.renderer.Render(g.stage)
//	}
//
// The renderer is created once with j2d.WithCanvas(g.canvas).
//
// # Thread Safety
//
// Canvas is NOT safe for concurrent use. Ebitengine calls Draw on a single
// goroutine, which is where the canvas should be used.
package ebitencanvas
