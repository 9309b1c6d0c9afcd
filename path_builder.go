package vpath

// Builder provides a fluent interface for path construction.
// All methods return the builder for chaining.
//
// Shapes added through the builder use the CW direction unless the
// builder's direction is changed with [Builder.Direction].
type Builder struct {
	path *Path
	dir  Direction
}

// BuildPath starts a new path builder.
func BuildPath(opts ...PathOption) *Builder {
	return &Builder{path: NewPath(opts...)}
}

// Direction sets the winding direction of subsequently added shapes.
func (b *Builder) Direction(dir Direction) *Builder {
	b.dir = dir
	return b
}

// MoveTo starts a new contour.
func (b *Builder) MoveTo(x, y float64) *Builder {
	b.path.MoveTo(x, y)
	return b
}

// LineTo draws a line to a position.
func (b *Builder) LineTo(x, y float64) *Builder {
	b.path.LineTo(x, y)
	return b
}

// QuadTo draws a quadratic Bezier curve.
func (b *Builder) QuadTo(cx, cy, x, y float64) *Builder {
	b.path.QuadTo(cx, cy, x, y)
	return b
}

// CubicTo draws a cubic Bezier curve.
func (b *Builder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Builder {
	b.path.CubicTo(c1x, c1y, c2x, c2y, x, y)
	return b
}

// Arc appends an elliptical arc, see [Path.ArcTo].
func (b *Builder) Arc(rect Rect, startAngle, sweep float64, forceMoveTo bool) *Builder {
	b.path.ArcTo(rect, startAngle, sweep, forceMoveTo)
	return b
}

// Close closes the current contour.
func (b *Builder) Close() *Builder {
	b.path.Close()
	return b
}

// Rect adds a rectangle to the path.
func (b *Builder) Rect(x, y, w, h float64) *Builder {
	b.path.AddRect(NewRect(x, y, w, h), b.dir)
	return b
}

// RoundRect adds a rectangle with circular corners of radius r.
func (b *Builder) RoundRect(x, y, w, h, r float64) *Builder {
	b.path.AddRoundRect(NewRect(x, y, w, h), r, r, b.dir)
	return b
}

// Circle adds a circle to the path.
func (b *Builder) Circle(cx, cy, r float64) *Builder {
	b.path.AddCircle(cx, cy, r, b.dir)
	return b
}

// Ellipse adds an ellipse to the path.
func (b *Builder) Ellipse(cx, cy, rx, ry float64) *Builder {
	b.path.AddOval(RectFromCenter(cx, cy, 2*rx, 2*ry), b.dir)
	return b
}

// Polygon adds a regular polygon with its first vertex pointing up.
func (b *Builder) Polygon(cx, cy, radius float64, sides int) *Builder {
	b.path.AddPolygon(float64(sides), radius, 0, 0, cx, cy, b.dir)
	return b
}

// Star adds a star shape with its first outer point pointing up.
func (b *Builder) Star(cx, cy, outerRadius, innerRadius float64, points int) *Builder {
	b.path.AddPolystar(float64(points), innerRadius, outerRadius, 0, 0, 0, cx, cy, b.dir)
	return b
}

// Transform applies m to everything built so far.
func (b *Builder) Transform(m Matrix) *Builder {
	b.path.Transform(m)
	return b
}

// Build returns the constructed path.
func (b *Builder) Build() *Path {
	return b.path
}
