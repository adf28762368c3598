package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/jbeda/geom"
	"golang.org/x/image/vector"

	"github.com/wesen/hexrender/pkg/layout"
)

// kappa places cubic control points so four Béziers approximate a circle.
const kappa = 0.5522847498307936

// Draw renders f onto a new transparent canvas of f.Width × f.Height.
// Segments are drawn in trace order, then vertex dots, then the start marker.
func Draw(f layout.Frame, s Style) *image.RGBA {
	img := image.NewRGBA(f.Bounds())
	if s.Antialias {
		drawSmooth(img, f.Points, s)
	} else {
		drawSolid(img, f.Points, s)
	}
	return img
}

func drawSmooth(img *image.RGBA, pts []geom.Coord, s Style) {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	z := vector.NewRasterizer(w, h)
	fill := func(c color.Color) {
		z.Draw(img, img.Rect, image.NewUniform(c), image.Point{})
		z.Reset(w, h)
	}

	n := len(pts) - 1
	if half := s.StrokeWidth / 2; half > 0 {
		for i := 0; i < n; i++ {
			capsule(z, pts[i], pts[i+1], half)
			fill(SegmentColor(s.Palette, i, n))
		}
	}
	if s.DotRadius > 0 {
		for _, p := range pts {
			circle(z, p, s.DotRadius)
		}
		fill(s.DotColor)
	}
	if s.StartRadius > 0 && len(pts) > 0 {
		circle(z, pts[0], s.StartRadius)
		fill(s.StartColor)
	}
}

func drawSolid(img *image.RGBA, pts []geom.Coord, s Style) {
	stamp := func(at image.Point, offs []image.Point, c color.RGBA) {
		for _, o := range offs {
			img.SetRGBA(at.X+o.X, at.Y+o.Y, c)
		}
	}

	n := len(pts) - 1
	if s.StrokeWidth > 0 {
		pen := disc(s.StrokeWidth / 2)
		for i := 0; i < n; i++ {
			c := SegmentColor(s.Palette, i, n)
			for _, p := range Bresenham(pixel(pts[i]), pixel(pts[i+1])) {
				stamp(p, pen, c)
			}
		}
	}
	if s.DotRadius > 0 {
		dot := disc(s.DotRadius)
		c := opaque(s.DotColor)
		for _, p := range pts {
			stamp(pixel(p), dot, c)
		}
	}
	if s.StartRadius > 0 && len(pts) > 0 {
		stamp(pixel(pts[0]), disc(s.StartRadius), opaque(s.StartColor))
	}
}

// pixel returns the pixel whose area contains c.
func pixel(c geom.Coord) image.Point {
	return image.Pt(int(math.Floor(c.X)), int(math.Floor(c.Y)))
}

// capsule adds the outline of a round-capped stroke from a to b with the
// given half width. All capsules wind the same way, so overlapping outlines
// in one rasterizer never cancel.
func capsule(z *vector.Rasterizer, a, b geom.Coord, half float64) {
	d := b.Minus(a)
	if d.Magnitude() == 0 {
		circle(z, a, half)
		return
	}
	along := d.Unit().Times(half)
	side := geom.Coord{X: along.Y, Y: -along.X}

	moveTo(z, a.Plus(side))
	lineTo(z, b.Plus(side))
	quarter(z, b.Plus(side).Plus(along.Times(kappa)), b.Plus(along).Plus(side.Times(kappa)), b.Plus(along))
	quarter(z, b.Plus(along).Minus(side.Times(kappa)), b.Minus(side).Plus(along.Times(kappa)), b.Minus(side))
	lineTo(z, a.Minus(side))
	quarter(z, a.Minus(side).Minus(along.Times(kappa)), a.Minus(along).Minus(side.Times(kappa)), a.Minus(along))
	quarter(z, a.Minus(along).Plus(side.Times(kappa)), a.Plus(side).Minus(along.Times(kappa)), a.Plus(side))
	z.ClosePath()
}

// circle adds a closed circular outline, wound the same way as capsule.
func circle(z *vector.Rasterizer, c geom.Coord, r float64) {
	x := geom.Coord{X: r}
	y := geom.Coord{Y: r}

	moveTo(z, c.Minus(y))
	quarter(z, c.Minus(y).Plus(x.Times(kappa)), c.Plus(x).Minus(y.Times(kappa)), c.Plus(x))
	quarter(z, c.Plus(x).Plus(y.Times(kappa)), c.Plus(y).Plus(x.Times(kappa)), c.Plus(y))
	quarter(z, c.Plus(y).Minus(x.Times(kappa)), c.Minus(x).Plus(y.Times(kappa)), c.Minus(x))
	quarter(z, c.Minus(x).Minus(y.Times(kappa)), c.Minus(y).Minus(x.Times(kappa)), c.Minus(y))
	z.ClosePath()
}

func moveTo(z *vector.Rasterizer, p geom.Coord) { z.MoveTo(float32(p.X), float32(p.Y)) }

func lineTo(z *vector.Rasterizer, p geom.Coord) { z.LineTo(float32(p.X), float32(p.Y)) }

func quarter(z *vector.Rasterizer, c1, c2, p geom.Coord) {
	z.CubeTo(float32(c1.X), float32(c1.Y), float32(c2.X), float32(c2.Y), float32(p.X), float32(p.Y))
}
