package vpath

// Element is a single drawing command of a path.
// The points it consumes are stored separately, see [Path.Points].
type Element uint8

const (
	// MoveTo starts a new contour at one point.
	MoveTo Element = iota
	// LineTo draws a straight line to one point.
	LineTo
	// CubicTo draws a cubic Bezier curve using two control points and an
	// end point.
	CubicTo
	// Close draws a straight line back to the start of the contour.
	// It consumes no points.
	Close
)

// Arity returns the number of points the element consumes.
func (e Element) Arity() int {
	switch e {
	case MoveTo, LineTo:
		return 1
	case CubicTo:
		return 3
	default:
		return 0
	}
}

// String returns the element name.
func (e Element) String() string {
	switch e {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case CubicTo:
		return "CubicTo"
	case Close:
		return "Close"
	default:
		return "Element(?)"
	}
}

// Direction is the winding direction used by the shape builders.
type Direction uint8

const (
	// CW traverses a shape clockwise on screen (y down).
	CW Direction = iota
	// CCW traverses a shape counter-clockwise on screen.
	CCW
)

// String returns "CW" or "CCW".
func (d Direction) String() string {
	if d == CCW {
		return "CCW"
	}
	return "CW"
}

// sign returns 1 for CW and -1 for CCW.
func (d Direction) sign() float64 {
	if d == CCW {
		return -1
	}
	return 1
}
