package termview

// LineChar returns the box-drawing character for a segment heading
// (dx, dy). On the lattice grid every diagonal step is one of the two
// 45° glyphs.
func LineChar(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return vertexGlyph
	case dx == 0:
		return '│'
	case dy == 0:
		return '─'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}
