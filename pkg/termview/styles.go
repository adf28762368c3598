package termview

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/wesen/hexrender/pkg/raster"
)

// c is shorthand for lipgloss.Color.
func c(hex string) color.Color { return lipgloss.Color(hex) }

var (
	colorLattice = c("#3a3a4a")
	colorVertex  = c("#dddddd")
)

// Styles returns the style map for a trace with the given number of
// segments. Segment colours follow the palette the same way the raster
// renderer blends them.
func Styles(s raster.Style, segments int) map[StyleKey]lipgloss.Style {
	styles := map[StyleKey]lipgloss.Style{
		Lattice: lipgloss.NewStyle().Foreground(colorLattice),
		Vertex:  lipgloss.NewStyle().Foreground(colorVertex),
		Start:   lipgloss.NewStyle().Foreground(colorVertex).Bold(true),
	}
	if s.DotColor != nil {
		styles[Vertex] = lipgloss.NewStyle().Foreground(s.DotColor)
	}
	if s.StartColor != nil {
		styles[Start] = lipgloss.NewStyle().Foreground(s.StartColor).Bold(true)
	}
	for i := 0; i < segments; i++ {
		styles[SegmentKey(i)] = lipgloss.NewStyle().Foreground(raster.SegmentColor(s.Palette, i, segments))
	}
	return styles
}

// DefaultStyles is Styles for raster.DefaultStyle.
func DefaultStyles(segments int) map[StyleKey]lipgloss.Style {
	return Styles(raster.DefaultStyle(), segments)
}
