package j2d

// Stage is the ordered list of shapes that make up a scene.
//
// Shapes are rendered in insertion order. A Stage is append-only and is NOT
// safe for concurrent use.
type Stage struct {
	shapes []Shape
}

// NewStage creates an empty stage.
func NewStage() *Stage {
	return &Stage{}
}

// Add appends shapes to the stage in order. Nil shapes are ignored.
// The same shape may be added more than once.
func (s *Stage) Add(shapes ...Shape) {
	for _, sh := range shapes {
		if sh == nil {
			Logger().Debug("j2d: stage ignored nil shape", "index", len(s.shapes))
			continue
		}
		s.shapes = append(s.shapes, sh)
	}
}

// Len returns the number of shapes on the stage.
func (s *Stage) Len() int {
	return len(s.shapes)
}

// At returns the i-th shape in insertion order.
// It panics if i is out of range.
func (s *Stage) At(i int) Shape {
	return s.shapes[i]
}

// Shapes returns a copy of the shape list.
func (s *Stage) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Dirty returns the number of shapes flagged for repaint.
func (s *Stage) Dirty() int {
	n := 0
	for _, sh := range s.shapes {
		if sh.NeedsRepaint() {
			n++
		}
	}
	return n
}
