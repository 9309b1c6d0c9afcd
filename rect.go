package vpath

// Rect is an axis-aligned rectangle with its origin at the top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// NewRect creates a rectangle from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a rectangle of size w x h centered on (cx, cy).
func RectFromCenter(cx, cy, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return !(r.W > 0) || !(r.H > 0)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }
