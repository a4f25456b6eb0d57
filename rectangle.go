package j2d

// Rectangle is a four-point outline built from two opposite corners.
type Rectangle struct {
	graphics
}

// NewRectangle creates an axis-aligned rectangle from corners a and b.
//
// The boundary is a → (b.X, a.Y) → b → (a.X, b.Y). Corners are not
// normalized: pass a as the top-left and b as the bottom-right corner to get
// a clockwise outline on a Y-down canvas.
func NewRectangle(a, b Point) *Rectangle {
	return &Rectangle{graphics: newGraphics(a, Pt(b.X, a.Y), b, Pt(a.X, b.Y))}
}

// Kind returns KindRectangle.
func (r *Rectangle) Kind() Kind {
	return KindRectangle
}

// Position returns the midpoint of the first and third boundary points.
// Those are opposite corners, so this is the center for any rotation.
// A zero Rectangle or Square returns a *DegenerateShapeError.
func (r *Rectangle) Position() (Point, error) {
	p, err := r.corners(KindRectangle, "position", 4)
	if err != nil {
		return Point{}, err
	}
	a, c := p[0], p[2]
	return Point{X: (a.X + c.X) / 2, Y: (a.Y + c.Y) / 2}, nil
}

// Rotate turns the rectangle by angle degrees about its center.
func (r *Rectangle) Rotate(angle float64) error {
	return r.rotate(r, angle)
}

// Square is a Rectangle built from its center and side length.
type Square struct {
	Rectangle
	size float64
}

// NewSquare creates a square of the given side length centered on center.
// The caller's point is not modified.
func NewSquare(center Point, size float64) *Square {
	half := size / 2
	a := Translated(center, Vec(-half, -half))
	b := Translated(center, Vec(half, half))
	return &Square{Rectangle: *NewRectangle(a, b), size: size}
}

// Kind returns KindSquare.
func (s *Square) Kind() Kind {
	return KindSquare
}

// Size returns the side length the square was created with.
func (s *Square) Size() float64 {
	return s.size
}

var (
	_ Shape = (*Rectangle)(nil)
	_ Shape = (*Square)(nil)
)
