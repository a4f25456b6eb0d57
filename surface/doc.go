// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the canvas abstraction j2d renders onto.
//
// Canvas decouples the renderer's path calls from their implementation.
// The same scene can be stroked onto:
//
//   - a CPU raster image (ImageSurface)
//   - a PDF page (surface/pdfsurface)
//   - a command recording (recording)
//   - a game window or browser canvas (integration/...)
//
// # Registry
//
// Canvas implementations can register themselves by name:
//
//	surface.Register("pdf", func(opts surface.Options) (surface.Canvas, error) {
//	    return pdfsurface.New(float64(opts.Width), float64(opts.Height)), nil
//	})
//
//	// Later:
//	c, err := surface.NewCanvasByName("pdf", 800, 600)
//
// # Usage
//
//	s := surface.NewImageSurface(300, 300)
//	defer s.Close()
//
//	s.BeginPath()
//	s.MoveTo(10, 10)
//	s.LineTo(100, 10)
//	s.LineTo(55, 90)
//	s.ClosePath()
//	s.SetStrokeStyle(color.Black)
//	s.Stroke()
//
//	err := surface.WriteFile("out.png", s.Image())
package surface
