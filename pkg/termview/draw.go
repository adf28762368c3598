package termview

import (
	"image"

	"github.com/wesen/hexrender/pkg/hexgrid"
	"github.com/wesen/hexrender/pkg/pattern"
	"github.com/wesen/hexrender/pkg/raster"
)

// Style keys used by Draw. Segment i of a trace uses SegmentKey(i).
const (
	BG StyleKey = iota
	Lattice
	Vertex
	Start
	segmentBase
)

// SegmentKey returns the style key of the i-th segment.
func SegmentKey(i int) StyleKey { return segmentBase + StyleKey(i) }

// Glyphs.
const (
	latticeGlyph = '·'
	vertexGlyph  = '•'
	startGlyph   = '◆'
)

// cell projects a lattice point onto the character grid. Text cells are
// about twice as tall as they are wide, so one lattice row spans spacing
// rows and one east step spans 2·spacing columns.
func cell(a hexgrid.Axial, spacing int) image.Point {
	return image.Pt(spacing*(2*a.Q+a.R), spacing*a.R)
}

// Draw renders t into a new buffer with one lattice column (2·spacing cells)
// of free space left and right and one lattice row above and below. Spacing
// below 1 is treated as 1.
func Draw(t pattern.Trace, spacing int) *Buffer {
	spacing = max(spacing, 1)
	pts := t.Points
	if len(pts) == 0 {
		pts = []hexgrid.Axial{hexgrid.Origin}
	}

	cells := make([]image.Point, len(pts))
	bounds := image.Rectangle{Min: cell(pts[0], spacing), Max: cell(pts[0], spacing)}
	for i, p := range pts {
		c := cell(p, spacing)
		cells[i] = c
		bounds.Min.X, bounds.Min.Y = min(bounds.Min.X, c.X), min(bounds.Min.Y, c.Y)
		bounds.Max.X, bounds.Max.Y = max(bounds.Max.X, c.X), max(bounds.Max.Y, c.Y)
	}

	padX, padY := 2*spacing, spacing
	off := image.Pt(padX-bounds.Min.X, padY-bounds.Min.Y)
	buf := New(bounds.Dx()+1+2*padX, bounds.Dy()+1+2*padY, BG)

	DrawLattice(buf, off, spacing, Lattice)
	for i := 1; i < len(cells); i++ {
		DrawSegment(buf, cells[i-1].Add(off), cells[i].Add(off), SegmentKey(i-1))
	}
	for _, c := range cells[1:] {
		c = c.Add(off)
		buf.Set(c.X, c.Y, vertexGlyph, Vertex)
	}
	c := cells[0].Add(off)
	buf.Set(c.X, c.Y, startGlyph, Start)
	return buf
}

// DrawSegment draws the cells strictly between a and b with a line glyph
// matching the segment direction. The endpoints are left for vertex glyphs.
func DrawSegment(buf *Buffer, a, b image.Point, style StyleKey) {
	pts := raster.Bresenham(a, b)
	d := b.Sub(a)
	ch := LineChar(d.X, d.Y)
	for i := 1; i < len(pts)-1; i++ {
		buf.Set(pts[i].X, pts[i].Y, ch, style)
	}
}

// DrawLattice puts a dot on every lattice point that falls inside buf,
// where origin is the cell of the lattice origin.
func DrawLattice(buf *Buffer, origin image.Point, spacing int, style StyleKey) {
	for y := 0; y < buf.H; y++ {
		dy := y - origin.Y
		if mod(dy, spacing) != 0 {
			continue
		}
		r := dy / spacing
		for x := 0; x < buf.W; x++ {
			dx := x - origin.X
			// dx = spacing·(2q + r)
			if mod(dx, spacing) == 0 && mod(dx/spacing-r, 2) == 0 {
				buf.Set(x, y, latticeGlyph, style)
			}
		}
	}
}

// mod returns a non-negative modulus.
func mod(a, m int) int {
	if m == 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
