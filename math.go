package j2d

import "math"

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * (180 / math.Pi)
}

// VectorBetween returns the displacement from a to b.
func VectorBetween(a, b Point) Vector {
	return Vector{X: b.X - a.X, Y: b.Y - a.Y}
}

// Translate moves p by v in place.
// Use Translated to keep the original point.
func Translate(p *Point, v Vector) {
	p.X += v.X
	p.Y += v.Y
}

// Translated returns p moved by v.
func Translated(p Point, v Vector) Point {
	Translate(&p, v)
	return p
}

// Rotate rotates p in place by angle degrees about origin.
// Positive angles turn from +X toward +Y.
func Rotate(p *Point, angle float64, origin Point) {
	rad := DegToRad(angle)
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	// Both coordinates are computed from the pre-rotation values.
	x0, y0 := p.X, p.Y

	p.X = cos*(x0-origin.X) - sin*(y0-origin.Y) + origin.X
	p.Y = sin*(x0-origin.X) + cos*(y0-origin.Y) + origin.Y
}

// Rotated returns p rotated by angle degrees about origin.
func Rotated(p Point, angle float64, origin Point) Point {
	Rotate(&p, angle, origin)
	return p
}

// RotateAboutOrigin rotates p in place by angle degrees about (0, 0).
func RotateAboutOrigin(p *Point, angle float64) {
	Rotate(p, angle, Point{})
}
