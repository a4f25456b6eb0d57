// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recording

import "image/color"

// CommandType identifies the type of a command.
// Each command type corresponds to one surface.Canvas method.
type CommandType uint8

const (
	CmdClearRect      CommandType = iota // Clear a rectangle
	CmdBeginPath                         // Start a new path
	CmdMoveTo                            // Start a subpath
	CmdLineTo                            // Add a line
	CmdClosePath                         // Close the subpath
	CmdSetStrokeStyle                    // Set stroke color
	CmdStroke                            // Stroke the path
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdClearRect:      "ClearRect",
	CmdBeginPath:      "BeginPath",
	CmdMoveTo:         "MoveTo",
	CmdLineTo:         "LineTo",
	CmdClosePath:      "ClosePath",
	CmdSetStrokeStyle: "SetStrokeStyle",
	CmdStroke:         "Stroke",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// ClearRectCommand erases a rectangle.
type ClearRectCommand struct {
	X, Y, Width, Height float64
}

// Type implements Command.
func (ClearRectCommand) Type() CommandType { return CmdClearRect }

// BeginPathCommand starts a new path.
type BeginPathCommand struct{}

// Type implements Command.
func (BeginPathCommand) Type() CommandType { return CmdBeginPath }

// MoveToCommand starts a subpath at (X, Y).
type MoveToCommand struct {
	X, Y float64
}

// Type implements Command.
func (MoveToCommand) Type() CommandType { return CmdMoveTo }

// LineToCommand adds a line to (X, Y).
type LineToCommand struct {
	X, Y float64
}

// Type implements Command.
func (LineToCommand) Type() CommandType { return CmdLineTo }

// ClosePathCommand closes the current subpath.
type ClosePathCommand struct{}

// Type implements Command.
func (ClosePathCommand) Type() CommandType { return CmdClosePath }

// SetStrokeStyleCommand sets the stroke color.
// The color is stored as 8-bit RGBA so recordings compare by value.
type SetStrokeStyleCommand struct {
	Color color.RGBA
}

// Type implements Command.
func (SetStrokeStyleCommand) Type() CommandType { return CmdSetStrokeStyle }

// StrokeCommand strokes the current path.
type StrokeCommand struct{}

// Type implements Command.
func (StrokeCommand) Type() CommandType { return CmdStroke }
