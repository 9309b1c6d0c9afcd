package vpath

import "math"

// arcTo appends the arc of the ellipse inscribed in r that starts at
// startAngle and runs sweep degrees.
//
// Angles are in degrees with 0 at 3 o'clock; positive values turn
// counter-clockwise on screen. The sweep is clamped to one revolution and
// approximated by one cubic per 90 degrees or less.
func (d *pathData) arcTo(r Rect, startAngle, sweep float64, forceMoveTo bool) {
	if !finite(startAngle) {
		logSkipped("ArcTo", "startAngle", startAngle)
		return
	}
	if math.IsNaN(sweep) {
		sweep = 0
	}
	sweep = max(-360, min(sweep, 360))

	c := r.Center()
	rx, ry := r.W/2, r.H/2
	at := func(rad float64) (Point, float64, float64) {
		sin, cos := math.Sincos(rad)
		return Point{c.X + rx*cos, c.Y - ry*sin}, sin, cos
	}

	a0 := startAngle / 180 * math.Pi
	start, _, _ := at(a0)
	if forceMoveTo || !d.open {
		d.moveTo(start)
	} else {
		d.lineTo(start)
	}
	if sweep == 0 {
		return
	}

	// The epsilon keeps an exact quarter from turning into two segments.
	n := int(math.Ceil(math.Abs(sweep)/90 - 1e-9))
	delta := sweep / float64(n) * math.Pi / 180
	k := 4.0 / 3.0 * math.Tan(delta/4)

	d.reserve(len(d.points)+3*n, len(d.elements)+n)
	for i := range n {
		a1 := a0 + float64(i)*delta
		p1, s1, c1 := at(a1)
		p2, s2, c2 := at(a1 + delta)
		d.cubicTo(
			Point{p1.X - k*rx*s1, p1.Y - k*ry*c1},
			Point{p2.X + k*rx*s2, p2.Y + k*ry*c2},
			p2,
		)
	}
}
