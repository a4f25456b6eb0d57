package j2d

// Triangle is a closed outline through three points.
type Triangle struct {
	graphics
}

// NewTriangle creates a triangle with boundary a → b → c.
func NewTriangle(a, b, c Point) *Triangle {
	return &Triangle{graphics: newGraphics(a, b, c)}
}

// Kind returns KindTriangle.
func (t *Triangle) Kind() Kind {
	return KindTriangle
}

// Position returns the centroid, the mean of the three points.
// A zero Triangle has no points and returns a *DegenerateShapeError.
func (t *Triangle) Position() (Point, error) {
	p, err := t.corners(KindTriangle, "position", 3)
	if err != nil {
		return Point{}, err
	}
	return Point{
		X: (p[0].X + p[1].X + p[2].X) / 3,
		Y: (p[0].Y + p[1].Y + p[2].Y) / 3,
	}, nil
}

// Rotate turns the triangle by angle degrees about its centroid.
func (t *Triangle) Rotate(angle float64) error {
	return t.rotate(t, angle)
}

var _ Shape = (*Triangle)(nil)
