// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import (
	"errors"
	"image/color"

	"github.com/gogpu/j2d/surface"
)

// ErrNilCanvas is returned when playing back onto a nil canvas.
var ErrNilCanvas = errors.New("recording: nil canvas")

// Recorder is a surface.Canvas that records calls as commands.
//
// Recorder is NOT safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
}

// NewRecorder creates a recorder for a canvas of the given size.
// The size is informational; no call is clipped.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 64),
	}
}

// Width returns the width of the recording canvas.
func (r *Recorder) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recorder) Height() int {
	return r.height
}

// ClearRect records a ClearRectCommand.
func (r *Recorder) ClearRect(x, y, width, height float64) {
	r.commands = append(r.commands, ClearRectCommand{X: x, Y: y, Width: width, Height: height})
}

// BeginPath records a BeginPathCommand.
func (r *Recorder) BeginPath() {
	r.commands = append(r.commands, BeginPathCommand{})
}

// MoveTo records a MoveToCommand.
func (r *Recorder) MoveTo(x, y float64) {
	r.commands = append(r.commands, MoveToCommand{X: x, Y: y})
}

// LineTo records a LineToCommand.
func (r *Recorder) LineTo(x, y float64) {
	r.commands = append(r.commands, LineToCommand{X: x, Y: y})
}

// ClosePath records a ClosePathCommand.
func (r *Recorder) ClosePath() {
	r.commands = append(r.commands, ClosePathCommand{})
}

// SetStrokeStyle records a SetStrokeStyleCommand. A nil color is recorded
// as opaque black.
func (r *Recorder) SetStrokeStyle(c color.Color) {
	rgba := color.RGBA{A: 255}
	if c != nil {
		rgba = color.RGBAModel.Convert(c).(color.RGBA)
	}
	r.commands = append(r.commands, SetStrokeStyleCommand{Color: rgba})
}

// Stroke records a StrokeCommand.
func (r *Recorder) Stroke() {
	r.commands = append(r.commands, StrokeCommand{})
}

// Commands returns a copy of the commands recorded so far.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Count returns how many commands of type t were recorded.
func (r *Recorder) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Reset discards all recorded commands.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording containing all recorded
// commands. The Recorder may keep recording; later commands are not part of
// the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: r.Commands(),
	}
}

// Recording is an immutable container for recorded drawing commands.
// It can be replayed to any surface.Canvas.
type Recording struct {
	width, height int
	commands      []Command
}

// Width returns the width of the recording canvas.
func (r *Recording) Width() int {
	return r.width
}

// Height returns the height of the recording canvas.
func (r *Recording) Height() int {
	return r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Counts returns the number of commands per type.
func (r *Recording) Counts() map[CommandType]int {
	counts := make(map[CommandType]int)
	for _, c := range r.commands {
		counts[c.Type()]++
	}
	return counts
}

// Playback replays the recording onto target in order.
func (r *Recording) Playback(target surface.Canvas) error {
	if target == nil {
		return ErrNilCanvas
	}

	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case ClearRectCommand:
			target.ClearRect(c.X, c.Y, c.Width, c.Height)
		case BeginPathCommand:
			target.BeginPath()
		case MoveToCommand:
			target.MoveTo(c.X, c.Y)
		case LineToCommand:
			target.LineTo(c.X, c.Y)
		case ClosePathCommand:
			target.ClosePath()
		case SetStrokeStyleCommand:
			target.SetStrokeStyle(c.Color)
		case StrokeCommand:
			target.Stroke()
		}
	}
	return nil
}

// Verify Recorder implements surface.Canvas.
var _ surface.Canvas = (*Recorder)(nil)
