// Package layout maps a lattice trace to pixel space and sizes the canvas
// that holds it.
package layout

import (
	"image"
	"math"

	"github.com/jbeda/geom"
	"github.com/wesen/hexrender/pkg/pattern"
)

// Frame is a trace projected to pixels, translated so the whole drawing sits
// inside a Width×Height canvas with Margin pixels free on every side.
type Frame struct {
	Points        []geom.Coord
	Width, Height int
	Margin        float64
	// Content is the bounding box of Points, in canvas pixels.
	Content geom.Rect
}

// Size returns the canvas size.
func (f Frame) Size() image.Point { return image.Pt(f.Width, f.Height) }

// Bounds returns the canvas rectangle anchored at the origin.
func (f Frame) Bounds() image.Rectangle { return image.Rect(0, 0, f.Width, f.Height) }

// Project returns the pixel position of every trace point at the given scale
// (pixels per lattice edge), before any translation.
func Project(t pattern.Trace, scale float64) []geom.Coord {
	pts := make([]geom.Coord, len(t.Points))
	for i, p := range t.Points {
		c := p.Cartesian()
		pts[i] = geom.Coord{X: c.X * scale, Y: c.Y * scale}
	}
	return pts
}

// Measure returns the canvas size Compute would produce for t, before
// converting to int. Use it to reject a canvas before anything is
// allocated.
func Measure(t pattern.Trace, scale, margin float64) (w, h float64) {
	margin = clampMargin(margin)
	return canvas(bounds(Project(t, scale)), margin)
}

// Compute projects t and sizes the canvas. The canvas is
// ceil(contentW + 2·margin) by ceil(contentH + 2·margin). A margin below one
// pixel, or NaN, is raised to one so the canvas is never empty.
//
// Compute does not guard against sizes that overflow int; check with
// Measure first when scale or margin come from outside.
func Compute(t pattern.Trace, scale, margin float64) Frame {
	margin = clampMargin(margin)
	pts := Project(t, scale)
	if len(pts) == 0 {
		pts = []geom.Coord{{}}
	}
	bbox := bounds(pts)

	dx := margin - bbox.Min.X
	dy := margin - bbox.Min.Y
	for i := range pts {
		pts[i] = geom.Coord{X: pts[i].X + dx, Y: pts[i].Y + dy}
	}

	w, h := canvas(bbox, margin)
	return Frame{
		Points: pts,
		Width:  int(w),
		Height: int(h),
		Margin: margin,
		Content: geom.Rect{
			Min: geom.Coord{X: margin, Y: margin},
			Max: geom.Coord{X: margin + bbox.Width(), Y: margin + bbox.Height()},
		},
	}
}

func clampMargin(m float64) float64 {
	if !(m >= 1) {
		return 1
	}
	return m
}

// bounds is the bounding box of pts; an empty slice gives the zero Rect.
func bounds(pts []geom.Coord) geom.Rect {
	if len(pts) == 0 {
		return geom.Rect{}
	}
	bbox := geom.Rect{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		bbox.ExpandToContainCoord(p)
	}
	return bbox
}

func canvas(bbox geom.Rect, margin float64) (w, h float64) {
	return math.Ceil(bbox.Width() + 2*margin), math.Ceil(bbox.Height() + 2*margin)
}
