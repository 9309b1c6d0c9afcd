package vpath

import "github.com/gogpu/vpath/internal/flatten"

// Path operations for area, flattening and direction reversal. Area treats
// open contours as closed by a straight edge back to their start, the way a
// rasterizer fills them.

// contour is a run of elements starting at a MoveTo.
type contour struct {
	el, pt int // index of the MoveTo element and its point
	n      int // number of elements, including a trailing Close
	np     int // number of points
	closed bool
}

// contours splits d into its contours.
func (d *pathData) contours() []contour {
	var out []contour
	pt := 0
	for i, e := range d.elements {
		if e == MoveTo {
			out = append(out, contour{el: i, pt: pt})
		}
		c := &out[len(out)-1]
		c.n++
		c.np += e.Arity()
		if e == Close {
			c.closed = true
		}
		pt += e.Arity()
	}
	return out
}

// Area returns the signed area enclosed by the path.
// Positive for clockwise contours (y down), negative for counter-clockwise.
// Curves contribute their exact area by Green's theorem.
func (p *Path) Area() float64 {
	d := p.read()
	if d == nil {
		return 0
	}

	var area float64
	for _, c := range d.contours() {
		start := d.points[c.pt]
		cur := start
		i := c.pt + 1
		for _, e := range d.elements[c.el+1 : c.el+c.n] {
			switch e {
			case LineTo:
				area += lineArea(cur, d.points[i])
				cur = d.points[i]
			case CubicTo:
				area += cubicArea(cur, d.points[i], d.points[i+1], d.points[i+2])
				cur = d.points[i+2]
			}
			i += e.Arity()
		}
		area += lineArea(cur, start)
	}
	return area
}

// lineArea is the shoelace contribution of a line segment.
func lineArea(p0, p1 Point) float64 {
	return 0.5 * (p0.X*p1.Y - p1.X*p0.Y)
}

// cubicArea is the contribution of a cubic Bezier, integrated from its
// parametric form.
func cubicArea(p0, p1, p2, p3 Point) float64 {
	return (p0.X*(6*p1.Y+3*p2.Y+p3.Y) +
		3*p1.X*(-2*p0.Y+p2.Y+p3.Y) +
		3*p2.X*(-p0.Y-p1.Y+2*p3.Y) +
		p3.X*(-p0.Y-3*p1.Y-6*p2.Y)) / 20.0
}

// Flatten converts the path to polylines, one per contour, with curves
// approximated to within tolerance. A non-positive tolerance selects the
// path's own. Closed contours repeat their start point at the end.
func (p *Path) Flatten(tolerance float64) [][]Point {
	d := p.read()
	if d == nil {
		return nil
	}
	if !(tolerance > 0) {
		tolerance = d.tolerance
	}

	var out [][]Point
	var buf []flatten.Point
	for _, c := range d.contours() {
		start := d.points[c.pt]
		poly := make([]Point, 1, c.np+1)
		poly[0] = start
		cur := start
		i := c.pt + 1
		for _, e := range d.elements[c.el+1 : c.el+c.n] {
			switch e {
			case LineTo:
				cur = d.points[i]
				poly = append(poly, cur)
			case CubicTo:
				buf = flatten.Cubic(buf[:0], flatten.Point(cur), flatten.Point(d.points[i]),
					flatten.Point(d.points[i+1]), flatten.Point(d.points[i+2]), tolerance)
				for _, q := range buf {
					poly = append(poly, Point(q))
				}
				cur = d.points[i+2]
			case Close:
				if cur != start {
					poly = append(poly, start)
				}
				cur = start
			}
			i += e.Arity()
		}
		out = append(out, poly)
	}
	return out
}

// Reverse reverses the direction of every contour in place. Each contour
// keeps its position in the path and whether it is closed.
func (p *Path) Reverse() {
	if p.Empty() {
		return
	}
	p.write().reverse()
}

func (d *pathData) reverse() {
	elements := make([]Element, 0, cap(d.elements))
	points := make([]Point, 0, cap(d.points))

	for _, c := range d.contours() {
		els := d.elements[c.el : c.el+c.n]
		pts := d.points[c.pt : c.pt+c.np]

		points = append(points, pts[len(pts)-1])
		elements = append(elements, MoveTo)

		// Walk the drawing elements backwards; j is one past the end
		// point of element k, so the element starts at pts[j-1-arity].
		j := len(pts)
		for k := len(els) - 1; k > 0; k-- {
			switch e := els[k]; e {
			case LineTo:
				points = append(points, pts[j-2])
				elements = append(elements, LineTo)
			case CubicTo:
				points = append(points, pts[j-2], pts[j-3], pts[j-4])
				elements = append(elements, CubicTo)
			}
			j -= els[k].Arity()
		}
		if c.closed {
			elements = append(elements, Close)
		}
		d.start = points[len(points)-len(pts)]
	}

	d.elements = elements
	d.points = points
	d.length.invalidate()
}
