// Command j2ddemo renders a sample j2d stage to an image or PDF file.
//
// Frame 0 is a full render. Every later frame rotates the shapes and
// redraws only what changed, so the output shows the trail of all frames.
//
// Usage:
//
//	j2ddemo [-config j2d.yaml] [-width 300] [-height 300] [-frames 1]
//	        [-angle 15] [-output j2d.png] [-format png|bmp|tiff|pdf]
//	        [-log-level info] [-log-file path]
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/j2d"
	"github.com/gogpu/j2d/internal/config"
	"github.com/gogpu/j2d/internal/logging"
	"github.com/gogpu/j2d/internal/scene"
	"github.com/gogpu/j2d/surface"
	"github.com/gogpu/j2d/surface/pdfsurface"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "j2ddemo:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) (err error) {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}

	logger, closer := logging.New(stderr, logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	defer func() {
		if cerr := closer.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log: %w", cerr)
		}
	}()
	j2d.SetLogger(logger.With("component", "j2d"))
	defer j2d.SetLogger(nil)

	format, _ := cfg.OutputFormat()
	backend := "image"
	if format == "pdf" {
		backend = "pdf"
	}

	canvas, err := surface.NewCanvasByNameWithOptions(backend, surface.Options{
		Width:     cfg.Width,
		Height:    cfg.Height,
		LineWidth: cfg.LineWidth,
	})
	if err != nil {
		return err
	}

	stage := scene.Sample(float64(cfg.Width), float64(cfg.Height))
	r := j2d.NewRenderer(
		j2d.WithSize(cfg.Width, cfg.Height),
		j2d.WithCanvas(canvas),
	)

	stroked := r.Render(stage)
	for frame := 1; frame < cfg.Frames; frame++ {
		if err := scene.RotateAll(stage, cfg.Angle); err != nil {
			return err
		}
		stroked += r.RenderIncremental(stage)
	}

	if err := save(canvas, cfg.Output, format); err != nil {
		return err
	}
	logger.Info("saved",
		"path", cfg.Output,
		"format", format,
		"size", fmt.Sprintf("%dx%d", cfg.Width, cfg.Height),
		"frames", cfg.Frames,
		"stroked", stroked)
	return nil
}

// parseConfig resolves defaults, the config file, the environment and
// finally the flags that were set explicitly.
func parseConfig(args []string, stderr io.Writer) (config.Config, error) {
	fs := flag.NewFlagSet("j2ddemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := config.Defaults()
	var (
		path      = fs.String("config", "", "YAML config file")
		width     = fs.Int("width", def.Width, "image width")
		height    = fs.Int("height", def.Height, "image height")
		frames    = fs.Int("frames", def.Frames, "number of frames to render")
		angle     = fs.Float64("angle", def.Angle, "rotation per frame in degrees")
		lineWidth = fs.Float64("line-width", def.LineWidth, "stroke width")
		output    = fs.String("output", def.Output, "output file")
		format    = fs.String("format", "", "output format (png, bmp, tiff, pdf); default from -output")
		logLevel  = fs.String("log-level", def.Logging.Level, "log level")
		logFile   = fs.String("log-file", "", "rotated log file")
	)
	if err := fs.Parse(args); err != nil {
		return def, err
	}

	cfg, err := config.Load(*path)
	if err != nil {
		return cfg, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "frames":
			cfg.Frames = *frames
		case "angle":
			cfg.Angle = *angle
		case "line-width":
			cfg.LineWidth = *lineWidth
		case "output":
			cfg.Output = *output
		case "format":
			cfg.Format = *format
		case "log-level":
			cfg.Logging.Level = *logLevel
		case "log-file":
			cfg.Logging.File = *logFile
		}
	})
	return cfg, cfg.Validate()
}

func save(canvas surface.Canvas, path, format string) error {
	switch c := canvas.(type) {
	case *pdfsurface.Surface:
		return c.WriteFile(path)
	case *surface.ImageSurface:
		f, err := surface.ParseFormat(format)
		if err != nil {
			return err
		}
		return surface.EncodeFile(path, c.Image(), f)
	}
	return fmt.Errorf("cannot save canvas of type %T", canvas)
}
