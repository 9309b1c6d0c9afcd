// Package vpath provides a copy-on-write 2D path for vector animation
// renderers.
//
// # Overview
//
// A [Path] records drawing elements (MoveTo, LineTo, CubicTo, Close) and the
// points they consume in two parallel slices. It is the intermediate form
// handed to a rasterizer or stroker: read it with [Path.Elements] and
// [Path.Points], or replay it into a [Sink] with [Path.Walk].
//
// # Copy-on-write
//
// Copies are cheap. [Path.Copy] shares storage with the original and bumps a
// reference count; the first mutation of a shared path clones the geometry
// into a private buffer. A zero Path has no storage at all until it is
// first mutated.
//
//	star := vpath.NewPath()
//	star.AddPolystar(5, 20, 50, 0, 0, 0, 100, 100, vpath.CW)
//
//	frame := star.Copy()               // shares storage
//	frame.Transform(vpath.Scale(2, 2)) // frame detaches, star is unchanged
//
// # Shapes
//
// Rectangles, rounded rectangles, ovals, circles, elliptical arcs, regular
// polygons and stars are generated from lines and cubic Bezier curves.
// Each shape builder takes a [Direction] controlling its winding.
// Glyph outlines can be imported from golang.org/x/image/font/sfnt and
// github.com/go-text/typesetting fonts.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Arc angles in degrees, 0 is 3 o'clock, positive is counter-clockwise
//     on screen
//   - Polygon and star start angles in degrees, 0 is 12 o'clock
//
// # Degenerate input
//
// Shape builders are total: empty rectangles, non-positive radii or point
// counts add nothing or a degenerate contour, never NaN coordinates.
// Skipped calls are reported at debug level through [SetLogger].
package vpath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"
)
