// Package flatten approximates cubic Bezier curves by line segments.
package flatten

import "math"

// Point represents a 2D point (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// DefaultTolerance is the maximum distance between a curve and its
// flattened approximation.
const DefaultTolerance = 0.05

// maxDepth bounds the subdivision so degenerate or huge curves terminate.
const maxDepth = 16

func (p Point) lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

func (p Point) sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

func (p Point) dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Cubic appends the end points of the line segments approximating the cubic
// Bezier p0..p3 to dst. p0 itself is not appended.
func Cubic(dst []Point, p0, p1, p2, p3 Point, tolerance float64) []Point {
	tolerance = sanitize(tolerance)
	return cubicRec(dst, p0, p1, p2, p3, tolerance, 0)
}

func cubicRec(dst []Point, p0, p1, p2, p3 Point, tolerance float64, depth int) []Point {
	if depth >= maxDepth || flat(p0, p1, p2, p3, tolerance) {
		return append(dst, p3)
	}
	l, r := split(p0, p1, p2, p3)
	dst = cubicRec(dst, l[0], l[1], l[2], l[3], tolerance, depth+1)
	return cubicRec(dst, r[0], r[1], r[2], r[3], tolerance, depth+1)
}

// CubicLength returns the arc length of the cubic Bezier p0..p3, measured
// along its flattening. It does not allocate.
func CubicLength(p0, p1, p2, p3 Point, tolerance float64) float64 {
	tolerance = sanitize(tolerance)
	return cubicLengthRec(p0, p1, p2, p3, tolerance, 0)
}

func cubicLengthRec(p0, p1, p2, p3 Point, tolerance float64, depth int) float64 {
	if depth >= maxDepth || flat(p0, p1, p2, p3, tolerance) {
		return p0.Distance(p3)
	}
	l, r := split(p0, p1, p2, p3)
	return cubicLengthRec(l[0], l[1], l[2], l[3], tolerance, depth+1) +
		cubicLengthRec(r[0], r[1], r[2], r[3], tolerance, depth+1)
}

// split subdivides the curve at t=0.5 using de Casteljau's algorithm.
func split(p0, p1, p2, p3 Point) (left, right [4]Point) {
	q0 := p0.lerp(p1, 0.5)
	q1 := p1.lerp(p2, 0.5)
	q2 := p2.lerp(p3, 0.5)
	r0 := q0.lerp(q1, 0.5)
	r1 := q1.lerp(q2, 0.5)
	s := r0.lerp(r1, 0.5)
	return [4]Point{p0, q0, r0, s}, [4]Point{s, r1, q2, p3}
}

// flat reports whether both control points lie within tolerance of the
// chord p0-p3.
func flat(p0, p1, p2, p3 Point, tolerance float64) bool {
	return math.Max(distanceToLine(p1, p0, p3), distanceToLine(p2, p0, p3)) < tolerance
}

func sanitize(tolerance float64) float64 {
	if !(tolerance > 0) || math.IsInf(tolerance, 0) {
		return DefaultTolerance
	}
	return tolerance
}

// distanceToLine calculates the perpendicular distance from point p to line segment (a, b).
func distanceToLine(p, a, b Point) float64 {
	ab := b.sub(a)
	abLen2 := ab.dot(ab)
	if abLen2 < 1e-20 {
		return p.Distance(a)
	}

	t := p.sub(a).dot(ab) / abLen2
	switch {
	case t < 0:
		return p.Distance(a)
	case t > 1:
		return p.Distance(b)
	}
	return p.Distance(a.lerp(b, t))
}
