package vpath

import (
	"slices"

	"github.com/gogpu/vpath/internal/cow"
)

// Path is a copy-on-write 2D path: an ordered list of elements
// (MoveTo, LineTo, CubicTo, Close) and the points they consume.
//
// Copies made with [Path.Copy] share storage until one of them is mutated;
// the mutating handle then takes a private copy. Plain struct assignment
// does not register a new owner, so duplicate handles with Copy.
//
// The zero Path is ready to use and has no storage (see [Path.Null]).
// Storage is allocated by the first mutating call.
//
// A Path may be read from several goroutines at once, including
// [Path.Length]. Mutations of one handle must not run concurrently.
type Path struct {
	d cow.Value[*pathData]
}

// NewPath creates an empty path with allocated storage.
func NewPath(opts ...PathOption) *Path {
	o := defaultPathOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Path{d: cow.New(newPathData(o))}
}

// read returns the payload, or nil for a path without storage.
func (p *Path) read() *pathData {
	d, err := p.d.Read()
	if err != nil {
		return nil
	}
	return d
}

// write returns a payload owned by p alone, allocating or detaching as
// needed.
func (p *Path) write() *pathData {
	if p.d.Null() {
		p.d = cow.New(newPathData(defaultPathOptions()))
	} else if !p.d.Unique() && debugEnabled() {
		Logger().Debug("vpath: detaching shared path storage", "refs", p.d.RefCount())
	}
	// Cannot fail: storage exists at this point.
	d, _ := p.d.Write()
	return d
}

// Copy returns a new handle sharing p's storage. No geometry is copied
// until one of the handles is mutated.
func (p *Path) Copy() *Path {
	return &Path{d: p.d.Copy()}
}

// Release drops p's reference to its storage, leaving p null.
// Calling Release lets remaining copies mutate in place again instead of
// detaching.
func (p *Path) Release() {
	p.d.Release()
}

// Null reports whether the path has no storage. A null path is also empty.
func (p *Path) Null() bool {
	return p.d.Null()
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	d := p.read()
	return d == nil || len(d.elements) == 0
}

// Unique reports whether p is the only handle to its storage.
func (p *Path) Unique() bool {
	return p.d.Unique()
}

// RefCount returns the number of handles sharing p's storage,
// or 0 for a null path.
func (p *Path) RefCount() int {
	return p.d.RefCount()
}

// Segments returns the number of contours (MoveTo elements).
func (p *Path) Segments() int {
	if d := p.read(); d != nil {
		return d.segments
	}
	return 0
}

// Elements returns the elements in drawing order.
// The slice is shared with the path and must not be modified.
func (p *Path) Elements() []Element {
	if d := p.read(); d != nil {
		return d.elements
	}
	return nil
}

// Points returns the points consumed by the elements, in order.
// The slice is shared with the path and must not be modified.
func (p *Path) Points() []Point {
	if d := p.read(); d != nil {
		return d.points
	}
	return nil
}

// CurrentPoint returns the point the next drawing element starts from.
// The second result is false for a path without points.
func (p *Path) CurrentPoint() (Point, bool) {
	if d := p.read(); d != nil {
		return d.current()
	}
	return Point{}, false
}

// Length returns the total length of all contours. Curves are measured
// along their flattening; Close counts the edge back to the contour start.
// The result is cached until the next mutation.
func (p *Path) Length() float64 {
	if d := p.read(); d != nil {
		return d.totalLength()
	}
	return 0
}

// Bounds returns the bounding box of all points, control points included.
func (p *Path) Bounds() Rect {
	if d := p.read(); d != nil {
		return d.bounds()
	}
	return Rect{}
}

// Equal reports whether both paths hold the same elements and points.
// Storage, capacity and cached lengths are not compared.
func (p *Path) Equal(other *Path) bool {
	return slices.Equal(p.Elements(), other.Elements()) &&
		slices.Equal(p.Points(), other.Points())
}

// MoveTo starts a new contour at (x, y).
func (p *Path) MoveTo(x, y float64) {
	p.write().moveTo(Point{x, y})
}

// MoveToPoint starts a new contour at pt.
func (p *Path) MoveToPoint(pt Point) {
	p.write().moveTo(pt)
}

// LineTo draws a line to (x, y).
// Without an open contour, one is started at the current point first.
func (p *Path) LineTo(x, y float64) {
	p.write().lineTo(Point{x, y})
}

// LineToPoint draws a line to pt.
func (p *Path) LineToPoint(pt Point) {
	p.write().lineTo(pt)
}

// CubicTo draws a cubic Bezier curve to (x, y) with control points
// (c1x, c1y) and (c2x, c2y).
// Without an open contour, one is started at the current point first.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.write().cubicTo(Point{c1x, c1y}, Point{c2x, c2y}, Point{x, y})
}

// CubicToPoints draws a cubic Bezier curve to end.
func (p *Path) CubicToPoints(c1, c2, end Point) {
	p.write().cubicTo(c1, c2, end)
}

// Close closes the open contour. It does nothing when no contour is open
// or the contour has no drawing elements yet.
func (p *Path) Close() {
	p.write().close()
}

// Reset removes all elements but keeps the storage and its capacity.
func (p *Path) Reset() {
	p.write().reset()
}

// Reserve makes room for at least the given total number of points and
// elements. It never changes the contents.
func (p *Path) Reserve(points, elements int) {
	p.write().reserve(points, elements)
}

// Transform applies m to every point of the path.
func (p *Path) Transform(m Matrix) {
	p.write().transform(m)
}

// ArcTo appends an arc of the ellipse inscribed in rect, starting at
// startAngle and running sweepLength degrees (0 is 3 o'clock, positive is
// counter-clockwise on screen). If forceMoveTo is set, or no contour is
// open, the arc starts a new contour; otherwise a line joins the current
// point to the start of the arc.
func (p *Path) ArcTo(rect Rect, startAngle, sweepLength float64, forceMoveTo bool) {
	p.write().arcTo(rect, startAngle, sweepLength, forceMoveTo)
}

// AddRect adds rect as a closed contour.
func (p *Path) AddRect(rect Rect, dir Direction) {
	p.write().addRect(rect, dir)
}

// AddRoundRect adds rect with corners rounded by radii rx and ry, clamped to
// half the width and height. A zero radius adds a plain rectangle.
func (p *Path) AddRoundRect(rect Rect, rx, ry float64, dir Direction) {
	p.write().addRoundRect(rect, rx, ry, dir)
}

// AddRoundRectRoundness adds rect with both corner radii set to
// roundness * min(width, height) / 2, roundness clamped to [0, 1].
func (p *Path) AddRoundRectRoundness(rect Rect, roundness float64, dir Direction) {
	p.write().addRoundRectRoundness(rect, roundness, dir)
}

// AddOval adds the ellipse inscribed in rect.
func (p *Path) AddOval(rect Rect, dir Direction) {
	p.write().addOval(rect, dir)
}

// AddCircle adds a circle of the given radius centered on (cx, cy).
func (p *Path) AddCircle(cx, cy, radius float64, dir Direction) {
	p.write().addCircle(cx, cy, radius, dir)
}

// AddPolygon adds a regular polygon with floor(points) vertices.
// roundness in [0, 1] rounds the corners.
func (p *Path) AddPolygon(points, radius, roundness, startAngle, cx, cy float64, dir Direction) {
	p.write().addPolygon(points, radius, roundness, startAngle, cx, cy, dir)
}

// AddPolystar adds a star with the given number of points. Each tier of
// vertices is rounded by its own roundness in [0, 1].
func (p *Path) AddPolystar(points, innerRadius, outerRadius, innerRoundness, outerRoundness, startAngle, cx, cy float64, dir Direction) {
	p.write().addPolystar(points, innerRadius, outerRadius, innerRoundness, outerRoundness, startAngle, cx, cy, dir)
}

// AddPath appends the contours of other. A path without storage becomes a
// shared copy of other instead, without copying any geometry.
func (p *Path) AddPath(other *Path) {
	if other == nil || other.Empty() {
		return
	}
	if p.Null() {
		p.d.Assign(&other.d)
		return
	}
	src := other.read()
	p.write().appendPath(src)
}

// CloneFrom replaces p's contents with a private copy of src's geometry,
// reusing p's storage.
func (p *Path) CloneFrom(src *Path) {
	if p == src {
		return
	}
	p.Reset()
	p.AddPath(src)
}
