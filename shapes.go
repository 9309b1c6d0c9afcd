package vpath

import (
	"math"
	"slices"
)

// kappa is the handle length, relative to the radius, of a cubic Bezier
// approximating a quarter circle: 4/3 * (sqrt(2) - 1).
const kappa = 0.5522847498307936

// addRect adds the four corners of r as a closed contour: top-left,
// top-right, bottom-right, bottom-left for CW and the exact reverse for CCW.
func (d *pathData) addRect(r Rect, dir Direction) {
	if r.W == 0 && r.H == 0 {
		logSkipped("AddRect", "rect", r)
		return
	}

	corners := [4]Point{
		{r.X, r.Y},
		{r.Right(), r.Y},
		{r.Right(), r.Bottom()},
		{r.X, r.Bottom()},
	}
	if dir == CCW {
		slices.Reverse(corners[:])
	}

	d.reserve(len(d.points)+4, len(d.elements)+5)
	d.moveTo(corners[0])
	for _, c := range corners[1:] {
		d.lineTo(c)
	}
	d.close()
}

// addRoundRect adds r with every corner replaced by a quarter ellipse of
// radii rx, ry. The radii are clamped to half the width and height.
func (d *pathData) addRoundRect(r Rect, rx, ry float64, dir Direction) {
	rx = min(rx, r.W/2)
	ry = min(ry, r.H/2)
	if !(rx > 0) || !(ry > 0) {
		d.addRect(r, dir)
		return
	}

	x, y, w, h := r.X, r.Y, r.W, r.H
	dx, dy := 2*rx, 2*ry

	d.reserve(len(d.points)+17, len(d.elements)+10)
	d.moveTo(Point{x + w, y + ry})
	if dir == CW {
		d.arcTo(Rect{x + w - dx, y + h - dy, dx, dy}, 0, -90, false)
		d.arcTo(Rect{x, y + h - dy, dx, dy}, -90, -90, false)
		d.arcTo(Rect{x, y, dx, dy}, -180, -90, false)
		d.arcTo(Rect{x + w - dx, y, dx, dy}, -270, -90, false)
	} else {
		d.arcTo(Rect{x + w - dx, y, dx, dy}, 0, 90, false)
		d.arcTo(Rect{x, y, dx, dy}, 90, 90, false)
		d.arcTo(Rect{x, y + h - dy, dx, dy}, 180, 90, false)
		d.arcTo(Rect{x + w - dx, y + h - dy, dx, dy}, 270, 90, false)
	}
	d.close()
}

// addRoundRectRoundness derives equal corner radii from a roundness in
// [0, 1], where 1 rounds the shorter side completely.
func (d *pathData) addRoundRectRoundness(r Rect, roundness float64, dir Direction) {
	radius := clamp01(roundness) * min(r.W, r.H) / 2
	d.addRoundRect(r, radius, radius, dir)
}

// addOval adds the ellipse inscribed in r, starting at 12 o'clock, as four
// quarter cubics.
func (d *pathData) addOval(r Rect, dir Direction) {
	if r.Empty() {
		logSkipped("AddOval", "rect", r)
		return
	}

	x, y, w, h := r.X, r.Y, r.W, r.H
	w2, h2 := w/2, h/2
	w2k, h2k := w2*kappa, h2*kappa

	d.reserve(len(d.points)+13, len(d.elements)+6)
	d.moveTo(Point{x + w2, y})
	if dir == CW {
		d.cubicTo(Point{x + w2 + w2k, y}, Point{x + w, y + h2 - h2k}, Point{x + w, y + h2})
		d.cubicTo(Point{x + w, y + h2 + h2k}, Point{x + w2 + w2k, y + h}, Point{x + w2, y + h})
		d.cubicTo(Point{x + w2 - w2k, y + h}, Point{x, y + h2 + h2k}, Point{x, y + h2})
		d.cubicTo(Point{x, y + h2 - h2k}, Point{x + w2 - w2k, y}, Point{x + w2, y})
	} else {
		d.cubicTo(Point{x + w2 - w2k, y}, Point{x, y + h2 - h2k}, Point{x, y + h2})
		d.cubicTo(Point{x, y + h2 + h2k}, Point{x + w2 - w2k, y + h}, Point{x + w2, y + h})
		d.cubicTo(Point{x + w2 + w2k, y + h}, Point{x + w, y + h2 + h2k}, Point{x + w, y + h2})
		d.cubicTo(Point{x + w, y + h2 - h2k}, Point{x + w2 + w2k, y}, Point{x + w2, y})
	}
	d.close()
}

func (d *pathData) addCircle(cx, cy, radius float64, dir Direction) {
	if !(radius > 0) {
		logSkipped("AddCircle", "radius", radius)
		return
	}
	d.addOval(Rect{cx - radius, cy - radius, 2 * radius, 2 * radius}, dir)
}

func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	return math.Min(v, 1)
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
