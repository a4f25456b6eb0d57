// Command j2dwindow shows the sample j2d stage spinning in a window.
//
// Every tick the shapes are rotated and the whole stage is re-rendered
// onto the screen image.
package main

import (
	"flag"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/j2d"
	"github.com/gogpu/j2d/integration/ebitencanvas"
	"github.com/gogpu/j2d/internal/scene"
)

// game implements ebiten.Game.
type game struct {
	width, height int

	// degrees per second
	speed float64

	stage    *j2d.Stage
	canvas   *ebitencanvas.Canvas
	renderer *j2d.Renderer
}

func newGame(width, height int, speed, lineWidth float64) *game {
	canvas := ebitencanvas.New(nil)
	canvas.SetLineWidth(lineWidth)
	canvas.SetBackground(color.White)
	return &game{
		width:  width,
		height: height,
		speed:  speed,
		stage:  scene.Sample(float64(width), float64(height)),
		canvas: canvas,
		renderer: j2d.NewRenderer(
			j2d.WithSize(width, height),
			j2d.WithCanvas(canvas),
		),
	}
}

func (g *game) Update() error {
	return scene.RotateAll(g.stage, g.speed/float64(ebiten.TPS()))
}

func (g *game) Draw(screen *ebiten.Image) {
	g.canvas.SetTarget(screen)
	g.renderer.Render(g.stage)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func main() {
	var (
		width     = flag.Int("width", j2d.DefaultWidth, "window width")
		height    = flag.Int("height", j2d.DefaultHeight, "window height")
		speed     = flag.Float64("speed", 90, "rotation speed in degrees per second")
		lineWidth = flag.Float64("line-width", 1, "stroke width")
	)
	flag.Parse()

	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowTitle("j2d")
	if err := ebiten.RunGame(newGame(*width, *height, *speed, *lineWidth)); err != nil {
		log.Fatal(err)
	}
}
