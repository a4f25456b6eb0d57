package j2d

import "testing"

func TestStage_Add(t *testing.T) {
	s := NewStage()
	if s.Len() != 0 {
		t.Fatalf("new stage Len() = %d, want 0", s.Len())
	}

	a := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	b := NewRectangle(Pt(0, 0), Pt(1, 1))
	s.Add(a)
	s.Add(b, nil, a)

	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	want := []Shape{a, b, a}
	for i, sh := range s.Shapes() {
		if sh != want[i] {
			t.Errorf("shape %d = %v, want %v", i, sh, want[i])
		}
		if s.At(i) != want[i] {
			t.Errorf("At(%d) = %v, want %v", i, s.At(i), want[i])
		}
	}
}

func TestStage_ShapesIsCopy(t *testing.T) {
	s := NewStage()
	a := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	s.Add(a)

	shapes := s.Shapes()
	shapes[0] = nil

	if s.At(0) != a {
		t.Error("mutating Shapes() result changed the stage")
	}
}

func TestStage_Dirty(t *testing.T) {
	s := NewStage()
	a := NewTriangle(Pt(0, 0), Pt(1, 0), Pt(0, 1))
	b := NewSquare(Pt(5, 5), 2)
	s.Add(a, b)

	if got := s.Dirty(); got != 2 {
		t.Errorf("Dirty() = %d, want 2", got)
	}
	a.SetRepaint(false)
	if got := s.Dirty(); got != 1 {
		t.Errorf("Dirty() = %d, want 1", got)
	}
}
