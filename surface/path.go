// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

// Verb is a path construction command.
type Verb uint8

const (
	// VerbMoveTo starts a new subpath.
	VerbMoveTo Verb = iota

	// VerbLineTo adds a straight line.
	VerbLineTo

	// VerbClose closes the current subpath.
	VerbClose
)

// Path represents a polyline path made of one or more subpaths.
//
// Example:
//
//	p := surface.NewPath()
//	p.MoveTo(100, 100)
//	p.LineTo(200, 100)
//	p.LineTo(150, 200)
//	p.Close()
type Path struct {
	verbs  []Verb
	points []Point
	start  Point
	cur    Point
}

// Segment is a straight line between two points of a path.
type Segment struct {
	From, To Point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		verbs:  make([]Verb, 0, 16),
		points: make([]Point, 0, 16),
	}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.start = Point{X: x, Y: y}
	p.cur = p.start
}

// LineTo adds a line from the current point to (x, y).
// On an empty path it behaves like MoveTo.
func (p *Path) LineTo(x, y float64) {
	if len(p.verbs) == 0 {
		p.MoveTo(x, y)
		return
	}
	p.verbs = append(p.verbs, VerbLineTo)
	p.points = append(p.points, Point{X: x, Y: y})
	p.cur = Point{X: x, Y: y}
}

// Close closes the current subpath by connecting to the start point.
func (p *Path) Close() {
	if len(p.verbs) == 0 {
		return
	}
	p.verbs = append(p.verbs, VerbClose)
	p.cur = p.start
}

// Clear removes all elements from the path.
func (p *Path) Clear() {
	p.verbs = p.verbs[:0]
	p.points = p.points[:0]
	p.start = Point{}
	p.cur = Point{}
}

// IsEmpty returns true if the path has no elements.
func (p *Path) IsEmpty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb slice. Each MoveTo and LineTo verb consumes one
// entry of Points; Close consumes none.
func (p *Path) Verbs() []Verb {
	return p.verbs
}

// Points returns the points slice.
func (p *Path) Points() []Point {
	return p.points
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.cur
}

// Clone creates a deep copy of the path.
func (p *Path) Clone() *Path {
	clone := &Path{
		verbs:  make([]Verb, len(p.verbs)),
		points: make([]Point, len(p.points)),
		start:  p.start,
		cur:    p.cur,
	}
	copy(clone.verbs, p.verbs)
	copy(clone.points, p.points)
	return clone
}

// Rectangle adds a closed rectangle to the path.
func (p *Path) Rectangle(x, y, w, h float64) {
	p.MoveTo(x, y)
	p.LineTo(x+w, y)
	p.LineTo(x+w, y+h)
	p.LineTo(x, y+h)
	p.Close()
}

// Segments flattens the path into line segments. Close adds the segment
// back to the subpath start unless the current point is already there.
func (p *Path) Segments() []Segment {
	var (
		segs       []Segment
		start, cur Point
		idx        int
	)
	for _, verb := range p.verbs {
		switch verb {
		case VerbMoveTo:
			start = p.points[idx]
			cur = start
			idx++
		case VerbLineTo:
			next := p.points[idx]
			segs = append(segs, Segment{From: cur, To: next})
			cur = next
			idx++
		case VerbClose:
			if cur != start {
				segs = append(segs, Segment{From: cur, To: start})
			}
			cur = start
		}
	}
	return segs
}

// Bounds returns the axis-aligned bounding box of the path.
// Returns an empty rectangle if the path is empty.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64) {
	if len(p.points) == 0 {
		return 0, 0, 0, 0
	}

	minX, minY = p.points[0].X, p.points[0].Y
	maxX, maxY = minX, minY

	for _, pt := range p.points[1:] {
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}

	return minX, minY, maxX, maxY
}
