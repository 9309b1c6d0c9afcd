package vpath

// Sink receives a path element by element. Its method set matches
// golang.org/x/image/vector.Rasterizer, so a rasterizer can be passed
// directly to [Path.Walk].
type Sink interface {
	MoveTo(x, y float32)
	LineTo(x, y float32)
	CubeTo(c1x, c1y, c2x, c2y, x, y float32)
	ClosePath()
}

// Walk replays the path into s.
func (p *Path) Walk(s Sink) {
	d := p.read()
	if d == nil {
		return
	}

	pts := d.points
	i := 0
	for _, e := range d.elements {
		switch e {
		case MoveTo:
			s.MoveTo(float32(pts[i].X), float32(pts[i].Y))
		case LineTo:
			s.LineTo(float32(pts[i].X), float32(pts[i].Y))
		case CubicTo:
			s.CubeTo(
				float32(pts[i].X), float32(pts[i].Y),
				float32(pts[i+1].X), float32(pts[i+1].Y),
				float32(pts[i+2].X), float32(pts[i+2].Y),
			)
		case Close:
			s.ClosePath()
		}
		i += e.Arity()
	}
}
