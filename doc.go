// Package j2d provides a minimal 2D vector-graphics scene library.
//
// # Overview
//
// j2d models a flat scene of outlined shapes. Callers build shapes from
// points, add them to a [Stage], and hand the stage to a [Renderer] every
// frame. The renderer strokes each shape's boundary as a closed polyline onto
// a [Canvas], the small drawing surface abstraction the library depends on.
//
// # Quick Start
//
//	import "github.com/gogpu/j2d"
//
//	stage := j2d.NewStage()
//	tri := j2d.NewTriangle(j2d.Pt(10, 10), j2d.Pt(60, 10), j2d.Pt(10, 60))
//	box := j2d.NewSquare(j2d.Pt(150, 150), 40)
//	stage.Add(tri, box)
//
//	r := j2d.NewRenderer(j2d.WithSize(300, 300))
//	r.Render(stage)
//
//	// Next frame: only shapes that moved are redrawn.
//	box.Rotate(15)
//	r.RenderIncremental(stage)
//
// # Repaint Protocol
//
// Every shape carries a repaint flag. New shapes start with it set, zero
// values included. [Shape.Move] and
// [Shape.Rotate] set it again, and the renderer clears it after stroking the
// shape. [Renderer.Render] clears the whole canvas and strokes every shape;
// [Renderer.RenderIncremental] leaves the canvas as is and strokes only
// flagged shapes.
//
// # Coordinate System
//
// Coordinates follow the canvas in use. For the raster surfaces shipped with
// this module the origin is top-left and Y grows down, so a positive rotation
// angle turns clockwise on screen. Angles passed to the public API are in
// degrees.
//
// # Architecture
//
//   - Public API: Point, Vector, Line, LineSegment, Shape, Stage, Renderer
//   - surface: CPU raster canvas, encoders, named canvas registry
//   - surface/pdfsurface: vector PDF canvas
//   - recording: command-capturing canvas with playback
//   - integration: ebiten and browser canvas adapters
package j2d

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
