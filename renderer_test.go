package j2d

import (
	"image/color"
	"testing"

	"gopkg.in/d4l3k/messagediff.v1"

	"github.com/gogpu/j2d/recording"
	"github.com/gogpu/j2d/surface"
)

func newRecordingRenderer() (*Renderer, *recording.Recorder) {
	rec := recording.NewRecorder(DefaultWidth, DefaultHeight)
	return NewRenderer(WithCanvas(rec)), rec
}

var black = color.RGBA{A: 255}

func TestNewRenderer_Defaults(t *testing.T) {
	r := NewRenderer()
	if r.Width() != 300 || r.Height() != 300 {
		t.Errorf("size = %dx%d, want 300x300", r.Width(), r.Height())
	}
	img, ok := r.Canvas().(*surface.ImageSurface)
	if !ok {
		t.Fatalf("default canvas is %T, want *surface.ImageSurface", r.Canvas())
	}
	if img.Width() != 300 || img.Height() != 300 {
		t.Errorf("canvas size = %dx%d, want 300x300", img.Width(), img.Height())
	}
}

func TestRenderer_RenderCommands(t *testing.T) {
	r, rec := newRecordingRenderer()

	stage := NewStage()
	stage.Add(
		NewTriangle(Pt(0, 0), Pt(10, 0), Pt(5, 10)),
		NewRectangle(Pt(20, 20), Pt(30, 25)),
	)

	if got := r.Render(stage); got != 2 {
		t.Errorf("Render() = %d, want 2", got)
	}

	want := []recording.Command{
		recording.ClearRectCommand{X: 0, Y: 0, Width: 300, Height: 300},
		recording.SetStrokeStyleCommand{Color: black},

		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 0, Y: 0},
		recording.LineToCommand{X: 10, Y: 0},
		recording.LineToCommand{X: 5, Y: 10},
		recording.ClosePathCommand{},
		recording.StrokeCommand{},

		recording.BeginPathCommand{},
		recording.MoveToCommand{X: 20, Y: 20},
		recording.LineToCommand{X: 30, Y: 20},
		recording.LineToCommand{X: 30, Y: 25},
		recording.LineToCommand{X: 20, Y: 25},
		recording.ClosePathCommand{},
		recording.StrokeCommand{},
	}
	if diff, equal := messagediff.PrettyDiff(rec.Commands(), want); !equal {
		t.Errorf("Render() commands diff:\n%s", diff)
	}
	if stage.Dirty() != 0 {
		t.Errorf("Dirty() after Render = %d, want 0", stage.Dirty())
	}
}

func TestRenderer_RenderDrawsCleanShapes(t *testing.T) {
	r, rec := newRecordingRenderer()

	tri := NewTriangle(Pt(0, 0), Pt(10, 0), Pt(5, 10))
	tri.SetRepaint(false)
	stage := NewStage()
	stage.Add(tri)

	if got := r.Render(stage); got != 1 {
		t.Errorf("Render() = %d, want 1", got)
	}
	if rec.Count(recording.CmdStroke) != 1 {
		t.Errorf("Stroke calls = %d, want 1", rec.Count(recording.CmdStroke))
	}
}

func TestRenderer_RenderIncremental(t *testing.T) {
	r, rec := newRecordingRenderer()

	a := NewTriangle(Pt(0, 0), Pt(10, 0), Pt(5, 10))
	b := NewSquare(Pt(50, 50), 10)
	stage := NewStage()
	stage.Add(a, b)

	// First pass draws everything that is new.
	if got := r.RenderIncremental(stage); got != 2 {
		t.Errorf("first RenderIncremental() = %d, want 2", got)
	}
	if rec.Count(recording.CmdClearRect) != 0 {
		t.Error("RenderIncremental cleared the canvas")
	}

	// Nothing changed: no strokes.
	rec.Reset()
	if got := r.RenderIncremental(stage); got != 0 {
		t.Errorf("second RenderIncremental() = %d, want 0", got)
	}
	if rec.Count(recording.CmdStroke) != 0 || rec.Count(recording.CmdBeginPath) != 0 {
		t.Errorf("idle RenderIncremental issued commands: %v", rec.Commands())
	}

	// Moving one shape redraws only that shape.
	rec.Reset()
	b.Move(Vec(5, 0))
	if got := r.RenderIncremental(stage); got != 1 {
		t.Errorf("RenderIncremental() after Move = %d, want 1", got)
	}
	cmds := rec.FinishRecording().Commands()
	mv, ok := cmds[2].(recording.MoveToCommand)
	if !ok {
		t.Fatalf("command 2 = %T, want MoveToCommand", cmds[2])
	}
	if mv.X != 50 || mv.Y != 45 {
		t.Errorf("redrawn shape starts at (%v, %v), want (50, 45)", mv.X, mv.Y)
	}
	if a.NeedsRepaint() || b.NeedsRepaint() {
		t.Error("repaint flags not cleared")
	}
}

func TestRenderer_SkipsShapesWithoutPoints(t *testing.T) {
	r, rec := newRecordingRenderer()

	c := NewCircle(Pt(10, 10), 5)
	stage := NewStage()
	stage.Add(c)

	if got := r.Render(stage); got != 0 {
		t.Errorf("Render() = %d, want 0", got)
	}
	if rec.Count(recording.CmdBeginPath) != 0 || rec.Count(recording.CmdStroke) != 0 {
		t.Errorf("circle produced path commands: %v", rec.Commands())
	}
	if c.NeedsRepaint() {
		t.Error("repaint flag not cleared for circle")
	}
}

func TestRenderer_ZeroValueShapes(t *testing.T) {
	r, rec := newRecordingRenderer()

	tri := &Triangle{}
	stage := NewStage()
	stage.Add(tri, &Square{})

	if got := r.RenderIncremental(stage); got != 0 {
		t.Errorf("RenderIncremental() = %d, want 0", got)
	}
	if rec.Count(recording.CmdStroke) != 0 {
		t.Errorf("zero shapes produced strokes: %v", rec.Commands())
	}
	if stage.Dirty() != 0 {
		t.Errorf("Dirty() = %d after render, want 0", stage.Dirty())
	}
}

func TestRenderer_NilStage(t *testing.T) {
	r, rec := newRecordingRenderer()
	if got := r.Render(nil); got != 0 {
		t.Errorf("Render(nil) = %d, want 0", got)
	}
	if got := r.RenderIncremental(nil); got != 0 {
		t.Errorf("RenderIncremental(nil) = %d, want 0", got)
	}
	if rec.Len() != 0 {
		t.Errorf("nil stage issued %d commands", rec.Len())
	}
}

func TestRenderer_EmptyStage(t *testing.T) {
	r, rec := newRecordingRenderer()
	r.Render(NewStage())

	want := []recording.Command{
		recording.ClearRectCommand{X: 0, Y: 0, Width: 300, Height: 300},
		recording.SetStrokeStyleCommand{Color: black},
	}
	if diff, equal := messagediff.PrettyDiff(rec.Commands(), want); !equal {
		t.Errorf("empty stage commands diff:\n%s", diff)
	}
}

func TestRenderer_SharedShapeDrawnOnce(t *testing.T) {
	r, rec := newRecordingRenderer()

	a := NewTriangle(Pt(0, 0), Pt(10, 0), Pt(5, 10))
	stage := NewStage()
	stage.Add(a, a)

	// The first occurrence clears the flag, so the second is skipped.
	if got := r.RenderIncremental(stage); got != 1 {
		t.Errorf("RenderIncremental() = %d, want 1", got)
	}
	if rec.Count(recording.CmdStroke) != 1 {
		t.Errorf("Stroke calls = %d, want 1", rec.Count(recording.CmdStroke))
	}

	rec.Reset()
	if got := r.Render(stage); got != 2 {
		t.Errorf("Render() = %d, want 2", got)
	}
}

func TestRenderer_CustomSize(t *testing.T) {
	rec := recording.NewRecorder(640, 480)
	r := NewRenderer(WithSize(640, 480), WithCanvas(rec))
	r.Render(NewStage())

	want := recording.ClearRectCommand{X: 0, Y: 0, Width: 640, Height: 480}
	if got := rec.Commands()[0]; got != want {
		t.Errorf("first command = %#v, want %#v", got, want)
	}
}

func TestRenderer_ImageSurfacePixels(t *testing.T) {
	r := NewRenderer(WithSize(100, 100))
	img := r.Canvas().(*surface.ImageSurface)

	stage := NewStage()
	stage.Add(NewRectangle(Pt(20.5, 20.5), Pt(80.5, 60.5)))
	r.Render(stage)

	tests := []struct {
		name    string
		x, y    int
		stroked bool
	}{
		{"top edge", 50, 20, true},
		{"bottom edge", 50, 60, true},
		{"left edge", 20, 40, true},
		{"right edge", 80, 40, true},
		{"interior", 50, 40, false},
		{"outside", 5, 5, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := img.Image().RGBAAt(tt.x, tt.y)
			if tt.stroked && c.A < 250 {
				t.Errorf("pixel (%d,%d) = %v, want opaque", tt.x, tt.y, c)
			}
			if !tt.stroked && c.A != 0 {
				t.Errorf("pixel (%d,%d) = %v, want transparent", tt.x, tt.y, c)
			}
			if c.R != 0 || c.G != 0 || c.B != 0 {
				t.Errorf("pixel (%d,%d) = %v, want black", tt.x, tt.y, c)
			}
		})
	}
}

func TestRenderer_FullRenderErasesOldPosition(t *testing.T) {
	r := NewRenderer(WithSize(100, 100))
	img := r.Canvas().(*surface.ImageSurface)

	sq := NewRectangle(Pt(10.5, 10.5), Pt(30.5, 30.5))
	stage := NewStage()
	stage.Add(sq)
	r.Render(stage)

	if img.Image().RGBAAt(20, 10).A == 0 {
		t.Fatal("top edge not drawn")
	}

	sq.Move(Vec(50, 50))

	// Incremental keeps the stale outline.
	r.RenderIncremental(stage)
	if img.Image().RGBAAt(20, 10).A == 0 {
		t.Error("RenderIncremental erased the previous outline")
	}
	if img.Image().RGBAAt(70, 60).A == 0 {
		t.Error("moved outline not drawn")
	}

	// A full render starts from a clear canvas.
	r.Render(stage)
	if a := img.Image().RGBAAt(20, 10).A; a != 0 {
		t.Errorf("stale outline alpha = %d after Render, want 0", a)
	}
	if img.Image().RGBAAt(70, 60).A == 0 {
		t.Error("moved outline missing after Render")
	}
}
