package j2d

// Circle is a reserved shape variant.
//
// A Circle records its center and radius but has no boundary points, so the
// Renderer draws nothing for it. Position and Rotate return an
// *UnsupportedShapeError.
type Circle struct {
	graphics
	center Point
	radius float64
}

// NewCircle creates a circle. It is accepted by Stage but never stroked.
func NewCircle(center Point, radius float64) *Circle {
	return &Circle{
		graphics: newGraphics(),
		center:   center,
		radius:   radius,
	}
}

// Kind returns KindCircle.
func (c *Circle) Kind() Kind {
	return KindCircle
}

// Center returns the circle's center.
func (c *Circle) Center() Point {
	return c.center
}

// Radius returns the circle's radius.
func (c *Circle) Radius() float64 {
	return c.radius
}

// Move translates the center and flags the circle for repaint.
func (c *Circle) Move(v Vector) {
	Translate(&c.center, v)
	c.graphics.Move(v)
}

// Position is not defined for circles.
func (c *Circle) Position() (Point, error) {
	return Point{}, &UnsupportedShapeError{Kind: KindCircle, Op: "position"}
}

// Rotate is not defined for circles. The circle is left unchanged.
func (c *Circle) Rotate(float64) error {
	return &UnsupportedShapeError{Kind: KindCircle, Op: "rotate"}
}

var _ Shape = (*Circle)(nil)
