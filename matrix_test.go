package vpath

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
)

func matrixNear(a, b Matrix, eps float64) bool {
	return math.Abs(a.A-b.A) <= eps && math.Abs(a.B-b.B) <= eps && math.Abs(a.C-b.C) <= eps &&
		math.Abs(a.D-b.D) <= eps && math.Abs(a.E-b.E) <= eps && math.Abs(a.F-b.F) <= eps
}

func TestIsIdentity(t *testing.T) {
	tests := []struct {
		name string
		m    Matrix
		want bool
	}{
		{"identity", Identity(), true},
		{"scale 1,1", Scale(1, 1), true},
		{"zero translation", Translate(0, 0), true},
		{"rotation 0", Rotate(0), true},
		{"translation", Translate(1, 0), false},
		{"uniform scale", Scale(2, 2), false},
		{"shear", Shear(0.5, 0), false},
		{"zero matrix", Matrix{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.m.IsIdentity(); got != tt.want {
				t.Errorf("Matrix%+v.IsIdentity() = %v, want %v", tt.m, got, tt.want)
			}
		})
	}
}

func TestTransformPoint(t *testing.T) {
	const epsilon = 1e-12

	tests := []struct {
		name string
		m    Matrix
		in   Point
		want Point
	}{
		{"identity", Identity(), Pt(3, 4), Pt(3, 4)},
		{"translate", Translate(10, -5), Pt(1, 1), Pt(11, -4)},
		{"scale", Scale(2, 3), Pt(1, 1), Pt(2, 3)},
		{"rotate 90deg", Rotate(math.Pi / 2), Pt(1, 0), Pt(0, 1)},
		{"shear x", Shear(1, 0), Pt(1, 2), Pt(3, 2)},
		{"scale then translate", Translate(10, 20).Multiply(Scale(2, 2)), Pt(1, 1), Pt(12, 22)},
		{"translate then scale", Scale(2, 2).Multiply(Translate(10, 20)), Pt(1, 1), Pt(22, 42)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.m.TransformPoint(tt.in)
			if got.Distance(tt.want) > epsilon {
				t.Errorf("Matrix%+v.TransformPoint(%v) = %v, want %v", tt.m, tt.in, got, tt.want)
			}
		})
	}
}

func TestInvert(t *testing.T) {
	const epsilon = 1e-10

	matrices := []Matrix{
		Identity(),
		Translate(5, 10),
		Scale(2, 3),
		Rotate(math.Pi / 3),
		Shear(0.5, 0.25),
		Scale(2, 2).Multiply(Translate(10, 20)).Multiply(Rotate(1.1)),
	}
	for _, m := range matrices {
		inv, ok := m.Invert()
		if !ok {
			t.Errorf("Matrix%+v should be invertible", m)
			continue
		}
		if got := m.Multiply(inv); !matrixNear(got, Identity(), epsilon) {
			t.Errorf("Matrix%+v * inverse = %+v, want identity", m, got)
		}
		if got := inv.Multiply(m); !matrixNear(got, Identity(), epsilon) {
			t.Errorf("inverse * Matrix%+v = %+v, want identity", m, got)
		}
	}
}

func TestInvertSingular(t *testing.T) {
	for _, m := range []Matrix{{}, Scale(0, 1), Scale(1, 0), {A: 1, B: 2, D: 2, E: 4}} {
		inv, ok := m.Invert()
		if ok {
			t.Errorf("Matrix%+v should be singular", m)
		}
		if !inv.IsIdentity() {
			t.Errorf("singular Matrix%+v: Invert returned %+v, want identity", m, inv)
		}
	}
}

func TestAff3RoundTrip(t *testing.T) {
	m := Translate(3, 4).Multiply(Rotate(0.7)).Multiply(Scale(2, 0.5))
	a := m.Aff3()
	if a[0] != m.A || a[1] != m.B || a[2] != m.C || a[3] != m.D || a[4] != m.E || a[5] != m.F {
		t.Errorf("Aff3() = %v, want row-major %+v", a, m)
	}
	if got := MatrixFromAff3(a); got != m {
		t.Errorf("MatrixFromAff3(Aff3()) = %+v, want %+v", got, m)
	}

	shear := MatrixFromAff3(f64.Aff3{1, 0.5, 0, 0, 1, 0})
	if shear != Shear(0.5, 0) {
		t.Errorf("MatrixFromAff3 shear = %+v, want %+v", shear, Shear(0.5, 0))
	}
}

func TestMultiplyAssociative(t *testing.T) {
	a := Rotate(0.3)
	b := Translate(7, -2)
	c := Scale(1.5, 4)

	left := a.Multiply(b).Multiply(c)
	right := a.Multiply(b.Multiply(c))
	if !matrixNear(left, right, 1e-12) {
		t.Errorf("(a*b)*c = %+v, a*(b*c) = %+v", left, right)
	}
}

func TestRotatePreservesLength(t *testing.T) {
	p := Pt(3, 4)
	for deg := 0; deg < 360; deg += 15 {
		angle := float64(deg) * math.Pi / 180
		got := Rotate(angle).TransformPoint(p).Length()
		if math.Abs(got-5) > 1e-10 {
			t.Errorf("Rotate(%d deg): |p| = %v, want 5", deg, got)
		}
		if q := p.Rotate(angle); q.Distance(Rotate(angle).TransformPoint(p)) > 1e-10 {
			t.Errorf("Point.Rotate(%d deg) = %v disagrees with matrix rotation", deg, q)
		}
	}
}
