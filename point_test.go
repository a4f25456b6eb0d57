package j2d

import (
	"math"
	"testing"
)

func TestPoint_Clone(t *testing.T) {
	p := Pt(1, 2)
	c := p.Clone()
	if c != p {
		t.Errorf("Clone() = %v, want %v", c, p)
	}
	c.Y = 42
	if p.Y != 2 {
		t.Error("mutating the clone changed the original")
	}
}

func TestPoint_Coords(t *testing.T) {
	x, y := Pt(-3, 7.5).Coords()
	if x != -3 || y != 7.5 {
		t.Errorf("Coords() = (%v, %v), want (-3, 7.5)", x, y)
	}
}

func TestPoint_AddSub(t *testing.T) {
	p := Pt(1, 2)
	q := p.Add(Vec(3, -1))
	if q != Pt(4, 1) {
		t.Errorf("Add() = %v, want (4, 1)", q)
	}
	if v := q.Sub(p); v != Vec(3, -1) {
		t.Errorf("Sub() = %v, want (3, -1)", v)
	}
}

func TestPoint_Distance(t *testing.T) {
	tests := []struct {
		name string
		p, q Point
		want float64
	}{
		{"same", Pt(1, 1), Pt(1, 1), 0},
		{"3-4-5", Pt(0, 0), Pt(3, 4), 5},
		{"negative", Pt(-1, -1), Pt(2, 3), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Distance(tt.q); math.Abs(got-tt.want) > 1e-10 {
				t.Errorf("Distance() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPoint_Approx(t *testing.T) {
	if !Pt(1, 1).Approx(Pt(1+1e-12, 1), 1e-9) {
		t.Error("expected points within epsilon to be approximately equal")
	}
	if Pt(1, 1).Approx(Pt(1.1, 1), 1e-9) {
		t.Error("expected distant points not to be approximately equal")
	}
}
