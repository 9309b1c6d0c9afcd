package vpath

import "math"

// Dash is a dash pattern: alternating dash and gap lengths, starting with
// a dash. An odd number of lengths is repeated once to make the pattern
// even, so [5] means 5 on, 5 off.
type Dash struct {
	Array  []float64
	Offset float64
}

// NewDash creates a dash pattern from alternating dash/gap lengths.
// Negative lengths are taken as their absolute value.
//
// Returns nil, meaning a solid line, if no length is positive.
func NewDash(lengths ...float64) *Dash {
	var positive bool
	array := make([]float64, len(lengths))
	for i, l := range lengths {
		array[i] = math.Abs(l)
		positive = positive || array[i] > 0
	}
	if !positive {
		return nil
	}
	return &Dash{Array: array}
}

// WithOffset returns a copy of d starting offset units into the pattern.
func (d *Dash) WithOffset(offset float64) *Dash {
	if d == nil {
		return nil
	}
	return &Dash{Array: d.Array, Offset: offset}
}

// Scale returns a copy of d with every length and the offset multiplied by
// factor, for dashing a path that was transformed by a uniform scale.
func (d *Dash) Scale(factor float64) *Dash {
	if d == nil || !(factor > 0) {
		return d
	}
	array := make([]float64, len(d.Array))
	for i, l := range d.Array {
		array[i] = l * factor
	}
	return &Dash{Array: array, Offset: d.Offset * factor}
}

// IsDashed reports whether d describes a usable dash pattern: at least one
// positive length and every length finite and non-negative. Anything else,
// nil included, means a solid line.
func (d *Dash) IsDashed() bool {
	if d == nil || len(d.Array) == 0 {
		return false
	}
	var positive bool
	for _, l := range d.Array {
		if !(l >= 0) || math.IsInf(l, 0) {
			return false
		}
		positive = positive || l > 0
	}
	return positive
}

// pattern returns the even-length cycle.
func (d *Dash) pattern() []float64 {
	if len(d.Array)%2 == 0 {
		return d.Array
	}
	return append(append(make([]float64, 0, 2*len(d.Array)), d.Array...), d.Array...)
}

// PatternLength returns the length of one complete cycle.
func (d *Dash) PatternLength() float64 {
	if d == nil {
		return 0
	}
	var total float64
	for _, l := range d.pattern() {
		total += l
	}
	return total
}

// NormalizedOffset returns the offset wrapped into [0, PatternLength).
func (d *Dash) NormalizedOffset() float64 {
	n := d.PatternLength()
	if !(n > 0) || math.IsInf(n, 0) {
		return 0
	}
	offset := math.Mod(d.Offset, n)
	if math.IsNaN(offset) {
		return 0
	}
	if offset < 0 {
		offset += n
	}
	return offset
}

// Dashed returns a new path holding the "on" intervals of d laid along
// every contour of p. Each contour restarts the pattern at the offset.
// Curves are flattened to the path tolerance, so the result has only
// MoveTo and LineTo elements. A dash that is not [Dash.IsDashed], or whose
// cycle is shorter than the path tolerance, returns a copy of p.
func (p *Path) Dashed(d *Dash) *Path {
	if !d.IsDashed() {
		return p.Copy()
	}
	if data := p.read(); data != nil && d.PatternLength() < data.tolerance {
		logSkipped("Dashed", "pattern", d.PatternLength(), "tolerance", data.tolerance)
		return p.Copy()
	}
	pattern := d.pattern()
	offset := d.NormalizedOffset()

	out := NewPath()
	for _, poly := range p.Flatten(0) {
		dashPolyline(out.write(), poly, pattern, offset)
	}
	return out
}

func dashPolyline(out *pathData, poly []Point, pattern []float64, offset float64) {
	// Skip into the pattern by offset.
	i, rem := 0, pattern[0]
	for offset > 0 {
		if offset < rem {
			rem -= offset
			break
		}
		offset -= rem
		i = (i + 1) % len(pattern)
		rem = pattern[i]
	}

	drawing := false
	for k := 1; k < len(poly); k++ {
		a, b := poly[k-1], poly[k]
		segLen := a.Distance(b)
		if segLen == 0 {
			continue
		}
		for pos := 0.0; pos < segLen; {
			step := min(rem, segLen-pos)
			on := i%2 == 0
			if on && !drawing {
				out.moveTo(a.Lerp(b, pos/segLen))
				drawing = true
			}
			pos += step
			rem -= step
			if on && step > 0 {
				out.lineTo(a.Lerp(b, pos/segLen))
			}
			if rem <= 0 {
				i = (i + 1) % len(pattern)
				rem = pattern[i]
				drawing = false
			}
		}
	}
}
