package j2d

import (
	"math"
	"testing"
)

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg, want float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
		{360, 2 * math.Pi},
	}
	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestRadToDeg(t *testing.T) {
	if got := RadToDeg(math.Pi); math.Abs(got-180) > 1e-12 {
		t.Errorf("RadToDeg(Pi) = %v, want 180", got)
	}
}

func TestDegRadRoundTrip(t *testing.T) {
	for _, deg := range []float64{-720, -33.3, 0, 1, 45, 123.456, 359.9} {
		if got := RadToDeg(DegToRad(deg)); math.Abs(got-deg) > 1e-9 {
			t.Errorf("RadToDeg(DegToRad(%v)) = %v", deg, got)
		}
	}
}

func TestVectorBetween(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, -2)
	v := VectorBetween(a, b)
	if v != Vec(3, -4) {
		t.Errorf("VectorBetween() = %v, want (3, -4)", v)
	}
	if got := Translated(a, v); got != b {
		t.Errorf("a translated by VectorBetween(a, b) = %v, want %v", got, b)
	}
}

func TestTranslate(t *testing.T) {
	p := Pt(1, 1)
	Translate(&p, Vec(2, -3))
	if p != Pt(3, -2) {
		t.Errorf("Translate() = %v, want (3, -2)", p)
	}

	orig := Pt(5, 5)
	moved := Translated(orig, Vec(1, 1))
	if orig != Pt(5, 5) {
		t.Error("Translated modified its argument")
	}
	if moved != Pt(6, 6) {
		t.Errorf("Translated() = %v, want (6, 6)", moved)
	}
}

func TestRotate(t *testing.T) {
	tests := []struct {
		name   string
		p      Point
		angle  float64
		origin Point
		want   Point
	}{
		{"90 about origin", Pt(1, 0), 90, Pt(0, 0), Pt(0, 1)},
		{"180 about origin", Pt(1, 0), 180, Pt(0, 0), Pt(-1, 0)},
		{"-90 about origin", Pt(1, 0), -90, Pt(0, 0), Pt(0, -1)},
		{"90 about point", Pt(2, 1), 90, Pt(1, 1), Pt(1, 2)},
		{"zero", Pt(3, 4), 0, Pt(1, 1), Pt(3, 4)},
		{"full turn", Pt(3, 4), 360, Pt(1, 1), Pt(3, 4)},
		{"origin itself", Pt(1, 1), 37, Pt(1, 1), Pt(1, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.p
			Rotate(&p, tt.angle, tt.origin)
			if !p.Approx(tt.want, 1e-9) {
				t.Errorf("Rotate(%v, %v, %v) = %v, want %v", tt.p, tt.angle, tt.origin, p, tt.want)
			}
		})
	}
}

func TestRotate_Inverse(t *testing.T) {
	origin := Pt(10, -5)
	for _, angle := range []float64{15, 45, 90, 137, 270} {
		p := Pt(3, 7)
		Rotate(&p, angle, origin)
		Rotate(&p, -angle, origin)
		if !p.Approx(Pt(3, 7), 1e-9) {
			t.Errorf("rotate by %v then %v = %v, want (3, 7)", angle, -angle, p)
		}
	}
}

func TestRotate_PreservesDistance(t *testing.T) {
	origin := Pt(2, 2)
	p := Pt(5, 6)
	d := p.Distance(origin)

	got := Rotated(p, 33, origin)
	if math.Abs(got.Distance(origin)-d) > 1e-9 {
		t.Errorf("distance after rotation = %v, want %v", got.Distance(origin), d)
	}
	if p != Pt(5, 6) {
		t.Error("Rotated modified its argument")
	}
}

func TestRotateAboutOrigin(t *testing.T) {
	p := Pt(0, 2)
	RotateAboutOrigin(&p, 90)
	if !p.Approx(Pt(-2, 0), 1e-9) {
		t.Errorf("RotateAboutOrigin() = %v, want (-2, 0)", p)
	}
}
