// Package termview previews a pattern trace in the terminal: lattice dots,
// box-drawing strokes between vertices and a marker on the start point.
//
// Drawing goes into a Buffer of glyphs tagged with a StyleKey (lattice,
// vertex, start or the segment index). Colours are only attached by
// Render, so the same preview can be printed plain in tests and coloured
// with the raster palette on a terminal.
//
// Every glyph used is one column wide.
package termview

import "strings"

// StyleKey tags a cell with what it shows: a lattice dot, a vertex, the
// start marker or stroke i (see SegmentKey).
type StyleKey int

// Cell is one terminal column of the preview.
type Cell struct {
	Ch    rune
	Style StyleKey
}

// Buffer is the preview canvas, W columns by H rows, indexed [row][col].
type Buffer struct {
	W, H  int
	Cells [][]Cell
}

// New returns a blank preview canvas whose cells are spaces tagged bg.
// A negative size gives an empty canvas.
func New(w, h int, bg StyleKey) *Buffer {
	w, h = max(w, 0), max(h, 0)
	b := &Buffer{W: w, H: h, Cells: make([][]Cell, h)}
	for y := range b.Cells {
		b.Cells[y] = make([]Cell, w)
	}
	b.Fill(bg)
	return b
}

// InBounds reports whether column x, row y is on the canvas.
func (b *Buffer) InBounds(x, y int) bool {
	return x >= 0 && x < b.W && y >= 0 && y < b.H
}

// Set puts one glyph on the canvas. Strokes that run past an edge are
// clipped silently.
func (b *Buffer) Set(x, y int, ch rune, style StyleKey) {
	if b.InBounds(x, y) {
		b.Cells[y][x] = Cell{Ch: ch, Style: style}
	}
}

// At returns the glyph at column x, row y; off-canvas positions give the
// zero Cell.
func (b *Buffer) At(x, y int) Cell {
	if !b.InBounds(x, y) {
		return Cell{}
	}
	return b.Cells[y][x]
}

// SetString writes a label rune by rune from column x, clipping at the
// right edge.
func (b *Buffer) SetString(x, y int, s string, style StyleKey) {
	i := 0
	for _, ch := range s {
		b.Set(x+i, y, ch, style)
		i++
	}
}

// Fill blanks the whole canvas with spaces tagged style.
func (b *Buffer) Fill(style StyleKey) {
	for y := range b.Cells {
		for x := range b.Cells[y] {
			b.Cells[y][x] = Cell{Ch: ' ', Style: style}
		}
	}
}

// Plain returns the preview as bare glyphs, one line per row.
func (b *Buffer) Plain() string {
	lines := make([]string, b.H)
	for y, row := range b.Cells {
		rs := make([]rune, len(row))
		for x, c := range row {
			rs[x] = c.Ch
		}
		lines[y] = string(rs)
	}
	return strings.Join(lines, "\n")
}
