package vpath

import (
	"math"
	"testing"
)

func TestPointRotate(t *testing.T) {
	tests := []struct {
		name  string
		p     Point
		angle float64
		want  Point
	}{
		{"zero", Pt(3, 4), 0, Pt(3, 4)},
		{"quarter", Pt(1, 0), math.Pi / 2, Pt(0, 1)},
		{"half", Pt(2, 1), math.Pi, Pt(-2, -1)},
		{"negative quarter", Pt(0, 5), -math.Pi / 2, Pt(5, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Rotate(tt.angle)
			if !near(got, tt.want, epsilon) {
				t.Errorf("%v.Rotate(%v) = %v, want %v", tt.p, tt.angle, got, tt.want)
			}
			if math.Abs(got.Length()-tt.p.Length()) > epsilon {
				t.Errorf("Rotate changed the length: %v != %v", got.Length(), tt.p.Length())
			}
		})
	}
}

func TestPointRotateMatchesMatrix(t *testing.T) {
	p := Pt(7, -2)
	for _, angle := range []float64{0.3, 1.2, -2.5} {
		if got, want := p.Rotate(angle), Rotate(angle).TransformPoint(p); !near(got, want, epsilon) {
			t.Errorf("Rotate(%v) = %v, matrix gives %v", angle, got, want)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	a, b := Pt(1, 2), Pt(4, 6)
	if got := a.Add(b); got != Pt(5, 8) {
		t.Errorf("Add = %v", got)
	}
	if got := b.Sub(a); got != Pt(3, 4) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(3); got != Pt(3, 6) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Distance = %v, want 5", got)
	}
	if got := a.Lerp(b, 0.5); got != Pt(2.5, 4) {
		t.Errorf("Lerp = %v, want (2.5, 4)", got)
	}
}
