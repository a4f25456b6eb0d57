package j2d

import "log/slog"

// Option configures a Renderer during creation.
//
// Example:
//
//	// Default 300x300 raster canvas
//	r := j2d.NewRenderer()
//
//	// Custom canvas (dependency injection)
//	r := j2d.NewRenderer(j2d.WithSize(640, 480), j2d.WithCanvas(pdf))
type Option func(*options)

// options holds optional configuration for Renderer creation.
type options struct {
	width  int
	height int
	canvas Canvas
	logger *slog.Logger
}

// defaultOptions returns the default renderer options.
func defaultOptions() options {
	return options{
		width:  DefaultWidth,
		height: DefaultHeight,
		canvas: nil, // Will be created if nil
	}
}

// WithSize sets the renderer size in pixels.
// Non-positive values fall back to the defaults.
func WithSize(width, height int) Option {
	return func(o *options) {
		if width > 0 {
			o.width = width
		}
		if height > 0 {
			o.height = height
		}
	}
}

// WithCanvas sets the canvas the renderer draws on.
// The canvas should be at least as large as the renderer size, since a full
// render clears exactly that region.
func WithCanvas(c Canvas) Option {
	return func(o *options) {
		o.canvas = c
	}
}

// WithLogger sets a logger for this renderer only.
// Without it the renderer uses the package logger from Logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}
