package j2d

// Kind identifies a shape variant.
type Kind uint8

const (
	// KindTriangle is a three-point polygon.
	KindTriangle Kind = iota

	// KindRectangle is an axis-aligned four-point polygon built from two
	// opposite corners.
	KindRectangle

	// KindSquare is a rectangle built from a center and a side length.
	KindSquare

	// KindCircle is reserved. Circles carry no boundary geometry.
	KindCircle
)

// kindNames maps Kind values to their string representation.
var kindNames = [...]string{
	KindTriangle:  "Triangle",
	KindRectangle: "Rectangle",
	KindSquare:    "Square",
	KindCircle:    "Circle",
}

// String returns the string representation of a Kind.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Unknown"
}

// Shape is an outline the Renderer can stroke.
//
// A shape owns its boundary points. They are listed in traversal order and
// the outline is implicitly closed from the last point back to the first.
//
// Shapes are NOT safe for concurrent use. Do not transform a shape while a
// render pass is reading it.
type Shape interface {
	// Kind returns the shape variant.
	Kind() Kind

	// Points returns a copy of the boundary points in traversal order.
	Points() []Point

	// Position returns the pivot used by Rotate. Kinds without a defined
	// pivot return an *UnsupportedShapeError, shapes with too few points a
	// *DegenerateShapeError.
	Position() (Point, error)

	// Move translates every boundary point by v and flags the shape for
	// repaint.
	Move(v Vector)

	// Rotate turns every boundary point by angle degrees about Position and
	// flags the shape for repaint. The shape is left unchanged on error.
	Rotate(angle float64) error

	// NeedsRepaint reports whether the shape changed since it was last
	// stroked.
	NeedsRepaint() bool

	// SetRepaint sets the repaint flag. The Renderer clears it after
	// stroking the shape.
	SetRepaint(repaint bool)
}

// positioner is implemented by every shape variant.
type positioner interface {
	Position() (Point, error)
}

// graphics holds the state shared by all shape variants.
//
// The repaint flag is stored inverted so a zero value starts dirty.
type graphics struct {
	points []Point
	clean  bool
}

func newGraphics(points ...Point) graphics {
	return graphics{points: points}
}

// Points returns a copy of the boundary points.
func (g *graphics) Points() []Point {
	out := make([]Point, len(g.points))
	copy(out, g.points)
	return out
}

// Len returns the number of boundary points.
func (g *graphics) Len() int {
	return len(g.points)
}

// Move translates every boundary point by v.
func (g *graphics) Move(v Vector) {
	for i := range g.points {
		Translate(&g.points[i], v)
	}
	g.clean = false
}

// NeedsRepaint reports whether the shape is flagged for repaint.
func (g *graphics) NeedsRepaint() bool {
	return !g.clean
}

// SetRepaint sets the repaint flag.
func (g *graphics) SetRepaint(repaint bool) {
	g.clean = !repaint
}

// rotate turns the boundary about the pivot reported by p.
func (g *graphics) rotate(p positioner, angle float64) error {
	origin, err := p.Position()
	if err != nil {
		return err
	}
	for i := range g.points {
		Rotate(&g.points[i], angle, origin)
	}
	g.clean = false
	return nil
}

// corners returns the boundary points, or a *DegenerateShapeError when
// there are fewer than want.
func (g *graphics) corners(kind Kind, op string, want int) ([]Point, error) {
	if len(g.points) < want {
		return nil, &DegenerateShapeError{Kind: kind, Op: op, Points: len(g.points), Want: want}
	}
	return g.points, nil
}

func (g *graphics) appendPoints(dst []Point) []Point {
	return append(dst, g.points...)
}
