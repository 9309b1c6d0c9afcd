package vpath

import "math"

// Handle length factors for rounded polygon and star corners, as used by
// animation tools that export polystar shapes.
const (
	polygonRoundness  = 0.25
	polystarRoundness = 0.47829 / 0.28
)

// addPolygon adds a regular polygon with floor(points) vertices on a circle
// of the given radius around (cx, cy). The first vertex sits at startAngle
// degrees measured clockwise from 12 o'clock.
func (d *pathData) addPolygon(points, radius, roundness, startAngle, cx, cy float64, dir Direction) {
	n := math.Floor(points)
	if !(n >= 1) || math.IsInf(n, 0) || !finite(startAngle) {
		logSkipped("AddPolygon", "points", points, "startAngle", startAngle)
		return
	}
	roundness = clamp01(roundness)

	numPoints := int(n)
	angleDir := dir.sign()
	anglePerPoint := 2 * math.Pi / n
	angle := (startAngle - 90) / 180 * math.Pi

	sin, cos := math.Sincos(angle)
	x, y := radius*cos, radius*sin
	angle += anglePerPoint * angleDir

	if roundness == 0 {
		d.reserve(len(d.points)+numPoints+1, len(d.elements)+numPoints+2)
	} else {
		d.reserve(len(d.points)+3*numPoints+1, len(d.elements)+numPoints+2)
	}

	d.moveTo(Point{x + cx, y + cy})
	for range numPoints {
		px, py := x, y
		sin, cos = math.Sincos(angle)
		x, y = radius*cos, radius*sin

		if roundness == 0 {
			d.lineTo(Point{x + cx, y + cy})
		} else {
			limit := math.Hypot(x-px, y-py) / 2
			h := min(math.Abs(radius*roundness*polygonRoundness), limit)
			d.roundedEdge(px, py, x, y, h, h, cx, cy, angleDir)
		}
		angle += anglePerPoint * angleDir
	}
	d.close()
}

// addPolystar adds a star alternating outer and inner vertices. Fractional
// point counts end with a partial point whose radius and angle are
// interpolated between the two tiers.
func (d *pathData) addPolystar(points, innerRadius, outerRadius, innerRoundness, outerRoundness, startAngle, cx, cy float64, dir Direction) {
	anglePerPoint := 2 * math.Pi / points
	if !(points > 0) || !finite(points) || !finite(anglePerPoint) || !finite(startAngle) {
		logSkipped("AddPolystar", "points", points, "startAngle", startAngle)
		return
	}
	innerRoundness = clamp01(innerRoundness)
	outerRoundness = clamp01(outerRoundness)

	angleDir := dir.sign()
	halfAnglePerPoint := anglePerPoint / 2
	partial := points - math.Floor(points)
	hasPartial := partial != 0
	numPoints := int(math.Ceil(points)) * 2
	angle := (startAngle - 90) / 180 * math.Pi

	var x, y, partialRadius float64
	if hasPartial {
		angle += halfAnglePerPoint * (1 - partial) * angleDir
		partialRadius = innerRadius + partial*(outerRadius-innerRadius)
		sin, cos := math.Sincos(angle)
		x, y = partialRadius*cos, partialRadius*sin
		angle += anglePerPoint * partial / 2 * angleDir
	} else {
		sin, cos := math.Sincos(angle)
		x, y = outerRadius*cos, outerRadius*sin
		angle += halfAnglePerPoint * angleDir
	}

	rounded := innerRoundness != 0 || outerRoundness != 0
	if rounded {
		d.reserve(len(d.points)+3*numPoints+1, len(d.elements)+numPoints+2)
	} else {
		d.reserve(len(d.points)+numPoints+1, len(d.elements)+numPoints+2)
	}

	d.moveTo(Point{x + cx, y + cy})
	outer := false
	for i := range numPoints {
		radius := innerRadius
		if outer {
			radius = outerRadius
		}
		dTheta := halfAnglePerPoint
		if hasPartial && i == numPoints-2 {
			dTheta = anglePerPoint * partial / 2
		}
		if hasPartial && i == numPoints-1 {
			radius = partialRadius
		}

		px, py := x, y
		sin, cos := math.Sincos(angle)
		x, y = radius*cos, radius*sin

		if !rounded {
			d.lineTo(Point{x + cx, y + cy})
		} else {
			r1, rad1 := outerRoundness, outerRadius
			r2, rad2 := innerRoundness, innerRadius
			if outer {
				r1, rad1, r2, rad2 = r2, rad2, r1, rad1
			}
			h1 := math.Abs(rad1 * r1 * polystarRoundness / points)
			h2 := math.Abs(rad2 * r2 * polystarRoundness / points)
			if hasPartial && (i == 0 || i == numPoints-1) {
				h1 *= partial
				h2 *= partial
			}
			limit := math.Hypot(x-px, y-py) / 2
			d.roundedEdge(px, py, x, y, min(h1, limit), min(h2, limit), cx, cy, angleDir)
		}

		angle += dTheta * angleDir
		outer = !outer
	}
	d.close()
}

// roundedEdge joins two vertices, given relative to (cx, cy), with a cubic
// whose handles leave each vertex tangentially to its circle.
func (d *pathData) roundedEdge(px, py, x, y, h1, h2, cx, cy, angleDir float64) {
	s1, c1 := math.Sincos(math.Atan2(py, px) - math.Pi/2*angleDir)
	s2, c2 := math.Sincos(math.Atan2(y, x) - math.Pi/2*angleDir)
	d.cubicTo(
		Point{px - h1*c1 + cx, py - h1*s1 + cy},
		Point{x + h2*c2 + cx, y + h2*s2 + cy},
		Point{x + cx, y + cy},
	)
}
