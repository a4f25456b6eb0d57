// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recording provides a canvas that records drawing operations.
//
// A Recorder implements surface.Canvas and captures every call as a typed
// command instead of drawing it. The resulting Recording can be inspected,
// counted, or played back onto any other canvas, so a scene rendered once
// can be exported to several backends.
//
// # Basic Usage
//
//	rec := recording.NewRecorder(300, 300)
//
//	r := j2d.NewRenderer(j2d.WithCanvas(rec))
//	r.Render(stage)
//
//	// Inspect what was drawn
//	strokes := rec.Count(recording.CmdStroke)
//
//	// Replay onto a raster surface
//	img := surface.NewImageSurface(300, 300)
//	if err := rec.FinishRecording().Playback(img); err != nil {
//	    ...
//	}
//
// Commands are plain structs, so recordings compare cleanly with
// reflect.DeepEqual or a diff library in tests.
package recording
