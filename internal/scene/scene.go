// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package scene builds the sample stage shared by the j2d commands.
package scene

import (
	"errors"

	"github.com/gogpu/j2d"
)

// Sample lays out one shape of each kind on a w x h canvas: a triangle
// and a rectangle on top, a square and a circle below.
func Sample(w, h float64) *j2d.Stage {
	side := min(w, h)
	stage := j2d.NewStage()
	stage.Add(
		j2d.NewTriangle(j2d.Pt(w*0.15, h*0.40), j2d.Pt(w*0.45, h*0.40), j2d.Pt(w*0.30, h*0.10)),
		j2d.NewRectangle(j2d.Pt(w*0.55, h*0.15), j2d.Pt(w*0.85, h*0.35)),
		j2d.NewSquare(j2d.Pt(w*0.30, h*0.70), side*0.2),
		j2d.NewCircle(j2d.Pt(w*0.70, h*0.70), side*0.1),
	)
	return stage
}

// RotateAll turns every shape on the stage by angle degrees about its own
// position. Shapes without a pivot or with too few points are skipped.
func RotateAll(stage *j2d.Stage, angle float64) error {
	for _, sh := range stage.Shapes() {
		err := sh.Rotate(angle)
		if errors.Is(err, j2d.ErrUnsupportedShape) || errors.Is(err, j2d.ErrDegenerateShape) {
			continue
		}
		if err != nil {
			return err
		}
	}
	return nil
}
