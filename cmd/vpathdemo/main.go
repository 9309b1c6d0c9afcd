// Command vpathdemo renders a frame of animated vpath shapes to a PNG file.
package main

import (
	"bytes"
	"flag"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/vpath"
	"github.com/gogpu/vpath/cache"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
)

// starKey identifies a cached star shape.
type starKey struct {
	points       float64
	inner, outer float64
	roundness    float64
}

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 600, "image height")
		output  = flag.String("output", "demo.png", "output file")
		frame   = flag.Float64("frame", 0, "animation progress in [0, 1]")
		verbose = flag.Bool("v", false, "log path construction at debug level")
	)
	flag.Parse()

	if *verbose {
		vpath.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	dst := image.NewRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{0x1a, 0x24, 0x3a, 0xff}), image.Point{}, draw.Src)

	shapes := cache.New[starKey](8)
	t := math.Max(0, math.Min(*frame, 1))

	drawShapesDemo(dst, t)
	drawStarsDemo(dst, shapes, t)
	drawPathDemo(dst, t)
	if err := drawTextDemo(dst, *height, t); err != nil {
		log.Fatalf("Failed to draw text: %v", err)
	}

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		log.Fatalf("Failed to save: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	st := shapes.Stats()
	log.Printf("Demo saved to %s (%dx%d), star cache %d hits / %d misses\n",
		*output, *width, *height, st.Hits, st.Misses)
}

// fill rasterizes p with the nonzero rule and composites c over dst.
func fill(dst *image.RGBA, p *vpath.Path, c color.Color) {
	b := dst.Bounds()
	r := vector.NewRasterizer(b.Dx(), b.Dy())
	p.Walk(r)
	r.Draw(dst, b, image.NewUniform(c), image.Point{})
}

func drawShapesDemo(dst *image.RGBA, t float64) {
	// Circles
	for i, c := range []color.RGBA{
		{0xcc, 0x40, 0x40, 0xcc},
		{0x40, 0xcc, 0x40, 0xcc},
		{0x40, 0x40, 0xcc, 0xcc},
	} {
		var p vpath.Path
		angle := float64(i)*2*math.Pi/3 + t*2*math.Pi
		p.AddCircle(175+40*math.Cos(angle), 170+40*math.Sin(angle), 60, vpath.CW)
		fill(dst, &p, c)
	}

	// Rounded rectangle with a rectangular hole
	var p vpath.Path
	p.AddRoundRectRoundness(vpath.NewRect(350, 100, 160, 100), 0.3+0.7*t, vpath.CW)
	p.AddRect(vpath.NewRect(390, 130, 80, 40), vpath.CCW)
	fill(dst, &p, color.RGBA{0xff, 0xcc, 0x00, 0xff})
}

func drawStarsDemo(dst *image.RGBA, shapes *cache.Shapes[starKey], t float64) {
	// Keyframes share geometry through the cache; each copy is only
	// detached when it is moved into place.
	for i := range 8 {
		key := starKey{points: float64(5 + i%3), inner: 15, outer: 35, roundness: 0.4 * float64(i%2)}
		star := shapes.GetOrBuild(key, func(p *vpath.Path) {
			p.AddPolystar(key.points, key.inner, key.outer, key.roundness, key.roundness, 0, 0, 0, vpath.CW)
		})

		angle := float64(i)*math.Pi/4 + t*math.Pi
		m := vpath.Translate(620+120*math.Cos(angle), 170+120*math.Sin(angle)).
			Multiply(vpath.Rotate(angle))
		star.Transform(m)

		hue := float64(i) / 8
		fill(dst, star, color.RGBA{uint8(255 * hue), 0xb0, uint8(255 * (1 - hue)), 0xff})
		star.Release()
	}
}

func drawPathDemo(dst *image.RGBA, t float64) {
	// Wave band built from two mirrored cubic runs
	p := vpath.BuildPath().
		MoveTo(0, 0).
		CubicTo(50, -50, 100, 50, 150, 0).
		CubicTo(200, -30, 250, 30, 300, 0).
		LineTo(300, 12).
		CubicTo(250, 42, 200, -18, 150, 12).
		CubicTo(100, 62, 50, -38, 0, 12).
		Close().
		Transform(vpath.Translate(100, 400)).
		Build()
	fill(dst, p, color.RGBA{0xff, 0x80, 0x00, 0xff})

	// Pie slice growing with the frame
	var pie vpath.Path
	pie.MoveTo(550, 420)
	pie.ArcTo(vpath.NewRect(480, 350, 140, 140), 90, -(30 + 300*t), false)
	pie.Close()
	fill(dst, &pie, color.RGBA{0x80, 0xd0, 0xff, 0xff})

	// Translucent rounded hexagon
	var hex vpath.Path
	hex.AddPolygon(6, 45, 0.5, 30*t, 700, 420, vpath.CW)
	fill(dst, &hex, color.NRGBA{0xff, 0xff, 0xff, 0x60})

	// Dashed ring around it; each dash fills as a thin circular segment
	var ring vpath.Path
	ring.AddCircle(700, 420, 80, vpath.CW)
	dashes := ring.Dashed(vpath.NewDash(40, 12).WithOffset(60 * t))
	fill(dst, dashes, color.RGBA{0xff, 0x60, 0xa0, 0xff})
}

func drawTextDemo(dst *image.RGBA, height int, t float64) error {
	face, err := font.ParseTTF(bytes.NewReader(goregular.TTF))
	if err != nil {
		return err
	}

	baseline := float64(height) - 60
	var p vpath.Path
	p.AddText(face, "vpath "+vpath.Version, 40, vpath.Pt(100, baseline))

	// Slant grows with the frame, pivoting on the baseline.
	slant := vpath.Translate(0, baseline).
		Multiply(vpath.Shear(-0.3*t, 0)).
		Multiply(vpath.Translate(0, -baseline))
	if !slant.IsIdentity() {
		p.Transform(slant)
	}
	fill(dst, &p, color.White)
	log.Printf("Text path: %d contours, length %.1f\n", p.Segments(), p.Length())
	return nil
}
