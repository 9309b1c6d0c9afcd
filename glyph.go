package vpath

import (
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"
)

// ErrNoOutline is returned when a glyph is stored as a bitmap or SVG
// document instead of an outline.
var ErrNoOutline = errors.New("vpath: glyph has no outline")

// QuadTo draws a quadratic Bezier curve to (x, y), stored as the
// equivalent cubic.
func (p *Path) QuadTo(cx, cy, x, y float64) {
	p.write().quadTo(Point{cx, cy}, Point{x, y})
}

// quadTo raises the quadratic curve from the current point to a cubic.
func (d *pathData) quadTo(c, end Point) {
	d.ensureOpen()
	start, _ := d.current()
	d.cubicTo(start.Lerp(c, 2.0/3), end.Lerp(c, 2.0/3), end)
}

// AddSFNTGlyph appends the outline of glyph gid rendered at ppem, with the
// glyph origin placed at origin. sfnt coordinates already have y pointing
// down. Every contour of the glyph is closed.
func (p *Path) AddSFNTGlyph(f *sfnt.Font, buf *sfnt.Buffer, gid sfnt.GlyphIndex, ppem fixed.Int26_6, origin Point) error {
	segments, err := f.LoadGlyph(buf, gid, ppem, nil)
	if err != nil {
		return fmt.Errorf("vpath: load glyph %d: %w", gid, err)
	}
	if len(segments) == 0 {
		return nil
	}

	at := func(a fixed.Point26_6) Point {
		return Point{origin.X + float64(a.X)/64, origin.Y + float64(a.Y)/64}
	}

	d := p.write()
	d.reserve(len(d.points)+3*len(segments), len(d.elements)+2*len(segments))
	started := false
	for _, s := range segments {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if started {
				d.close()
			}
			d.moveTo(at(s.Args[0]))
			started = true
		case sfnt.SegmentOpLineTo:
			d.lineTo(at(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			d.quadTo(at(s.Args[0]), at(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			d.cubicTo(at(s.Args[0]), at(s.Args[1]), at(s.Args[2]))
		}
	}
	d.close()
	return nil
}

// AddGlyphOutline appends a go-text glyph outline. Outline coordinates are
// in font units with y up; they are multiplied by scale and flipped so the
// glyph origin lands on origin.
func (p *Path) AddGlyphOutline(outline font.GlyphOutline, scale float64, origin Point) {
	if len(outline.Segments) == 0 {
		return
	}

	at := func(a opentype.SegmentPoint) Point {
		return Point{origin.X + float64(a.X)*scale, origin.Y - float64(a.Y)*scale}
	}

	d := p.write()
	d.reserve(len(d.points)+3*len(outline.Segments), len(d.elements)+2*len(outline.Segments))
	started := false
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			if started {
				d.close()
			}
			d.moveTo(at(s.Args[0]))
			started = true
		case opentype.SegmentOpLineTo:
			d.lineTo(at(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			d.quadTo(at(s.Args[0]), at(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			d.cubicTo(at(s.Args[0]), at(s.Args[1]), at(s.Args[2]))
		}
	}
	d.close()
}

// AddGlyph appends glyph gid of face scaled to size pixels per em.
func (p *Path) AddGlyph(face *font.Face, gid font.GID, size float64, origin Point) error {
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return ErrNoOutline
	}
	p.AddGlyphOutline(outline, glyphScale(face, size), origin)
	return nil
}

// AddText appends the outlines of s laid out on a single line starting at
// origin, which is on the baseline. s is NFC-normalized first so combining
// sequences use precomposed glyphs. Runes missing from the face and
// non-outline glyphs are skipped. It returns the horizontal advance.
func (p *Path) AddText(face *font.Face, s string, size float64, origin Point) float64 {
	scale := glyphScale(face, size)
	x := origin.X
	for _, r := range norm.NFC.String(s) {
		gid, ok := face.NominalGlyph(r)
		if !ok {
			continue
		}
		if outline, ok := face.GlyphData(gid).(font.GlyphOutline); ok {
			p.AddGlyphOutline(outline, scale, Point{x, origin.Y})
		}
		x += float64(face.HorizontalAdvance(gid)) * scale
	}
	return x - origin.X
}

func glyphScale(face *font.Face, size float64) float64 {
	upem := face.Upem()
	if upem == 0 {
		return 0
	}
	return size / float64(upem)
}
