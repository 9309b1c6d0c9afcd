package vpath

import (
	"math"
	"slices"
	"sync/atomic"

	"github.com/gogpu/vpath/internal/flatten"
)

// lengthCache memoizes the total length of a path.
// The fields are atomic because Length may be called concurrently on
// storage shared by several handles; every caller stores the same value.
type lengthCache struct {
	bits  atomic.Uint64
	valid atomic.Bool
}

func (c *lengthCache) load() (float64, bool) {
	if !c.valid.Load() {
		return 0, false
	}
	return math.Float64frombits(c.bits.Load()), true
}

func (c *lengthCache) store(v float64) {
	c.bits.Store(math.Float64bits(v))
	c.valid.Store(true)
}

func (c *lengthCache) invalidate() {
	c.valid.Store(false)
}

// pathData is the mutable payload shared by Path handles.
//
// Invariants:
//   - the arities of elements sum to len(points)
//   - segments equals the number of MoveTo elements
//   - every LineTo, CubicTo and Close follows a MoveTo of the same contour
type pathData struct {
	elements  []Element
	points    []Point
	segments  int
	start     Point // most recent MoveTo
	open      bool  // a contour is accepting drawing elements
	tolerance float64
	length    lengthCache
}

func newPathData(o pathOptions) *pathData {
	return &pathData{
		elements:  make([]Element, 0, o.elements),
		points:    make([]Point, 0, o.points),
		tolerance: o.tolerance,
	}
}

// Clone returns an independent copy, keeping the spare capacity so the
// writer that triggered the copy can keep appending without regrowing.
func (d *pathData) Clone() *pathData {
	c := &pathData{
		elements:  append(make([]Element, 0, cap(d.elements)), d.elements...),
		points:    append(make([]Point, 0, cap(d.points)), d.points...),
		segments:  d.segments,
		start:     d.start,
		open:      d.open,
		tolerance: d.tolerance,
	}
	if v, ok := d.length.load(); ok {
		c.length.store(v)
	}
	return c
}

// current returns the point the next drawing element starts from.
func (d *pathData) current() (Point, bool) {
	if len(d.points) == 0 {
		return Point{}, false
	}
	if d.elements[len(d.elements)-1] == Close {
		return d.start, true
	}
	return d.points[len(d.points)-1], true
}

func (d *pathData) moveTo(p Point) {
	d.elements = append(d.elements, MoveTo)
	d.points = append(d.points, p)
	d.segments++
	d.start = p
	d.open = true
	d.length.invalidate()
}

// ensureOpen synthesizes a MoveTo when a drawing element arrives with no
// open contour. The new contour starts at the current point, or at the
// origin for a path without points.
func (d *pathData) ensureOpen() {
	if d.open {
		return
	}
	p, _ := d.current()
	d.moveTo(p)
}

func (d *pathData) lineTo(p Point) {
	d.ensureOpen()
	d.elements = append(d.elements, LineTo)
	d.points = append(d.points, p)
	d.length.invalidate()
}

func (d *pathData) cubicTo(c1, c2, e Point) {
	d.ensureOpen()
	d.elements = append(d.elements, CubicTo)
	d.points = append(d.points, c1, c2, e)
	d.length.invalidate()
}

// close ends the open contour. A contour holding only its MoveTo has
// nothing to close and is left open.
func (d *pathData) close() {
	if !d.open || d.elements[len(d.elements)-1] == MoveTo {
		return
	}
	d.elements = append(d.elements, Close)
	d.open = false
	d.length.invalidate()
}

func (d *pathData) reset() {
	d.elements = d.elements[:0]
	d.points = d.points[:0]
	d.segments = 0
	d.start = Point{}
	d.open = false
	d.length.store(0)
}

func (d *pathData) reserve(points, elements int) {
	if n := points - len(d.points); n > 0 {
		d.points = slices.Grow(d.points, n)
	}
	if n := elements - len(d.elements); n > 0 {
		d.elements = slices.Grow(d.elements, n)
	}
}

func (d *pathData) transform(m Matrix) {
	for i, p := range d.points {
		d.points[i] = m.TransformPoint(p)
	}
	d.start = m.TransformPoint(d.start)
	d.length.invalidate()
}

// appendPath appends o's contours verbatim. o may be d itself.
func (d *pathData) appendPath(o *pathData) {
	if len(o.elements) == 0 {
		return
	}
	start, open, segments := o.start, o.open, o.segments
	d.elements = append(d.elements, o.elements...)
	d.points = append(d.points, o.points...)
	d.segments += segments
	d.start = start
	d.open = open
	d.length.invalidate()
}

// totalLength returns the summed length of all contours. Lines are exact,
// cubics are flattened to the path tolerance and Close contributes the
// straight edge back to the contour start.
func (d *pathData) totalLength() float64 {
	if v, ok := d.length.load(); ok {
		return v
	}

	var total float64
	var cur, start Point
	i := 0
	for _, e := range d.elements {
		switch e {
		case MoveTo:
			cur = d.points[i]
			start = cur
		case LineTo:
			total += cur.Distance(d.points[i])
			cur = d.points[i]
		case CubicTo:
			total += flatten.CubicLength(
				flatten.Point(cur),
				flatten.Point(d.points[i]),
				flatten.Point(d.points[i+1]),
				flatten.Point(d.points[i+2]),
				d.tolerance,
			)
			cur = d.points[i+2]
		case Close:
			total += cur.Distance(start)
			cur = start
		}
		i += e.Arity()
	}

	d.length.store(total)
	return total
}

// bounds returns the bounding box of all points, control points included.
func (d *pathData) bounds() Rect {
	if len(d.points) == 0 {
		return Rect{}
	}
	minX, minY := d.points[0].X, d.points[0].Y
	maxX, maxY := minX, minY
	for _, p := range d.points[1:] {
		minX = min(minX, p.X)
		minY = min(minY, p.Y)
		maxX = max(maxX, p.X)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}
