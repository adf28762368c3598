// Package raster draws a laid-out trace as a thick polyline onto an RGBA
// canvas.
//
// Two modes are supported. The default fills each segment as a round-capped
// capsule with golang.org/x/image/vector, which antialiases edges and gives
// every joint the same round shape. Solid mode walks the centreline with
// Bresenham and stamps an integer disc at each pixel. Both are deterministic:
// the same frame and style always produce identical pixels.
package raster

import (
	"errors"
	"fmt"
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Style describes how a trace is drawn. All sizes are in pixels.
type Style struct {
	StrokeWidth float64
	// Palette is blended across the segments in trace order: the first
	// segment gets Palette[0], the last gets Palette[len-1].
	Palette   []color.Color
	Antialias bool

	// DotRadius > 0 draws a dot on every vertex.
	DotRadius float64
	DotColor  color.Color

	// StartRadius > 0 marks the first point of the trace.
	StartRadius float64
	StartColor  color.Color

	// Padding is extra free space around the drawing, beyond what the
	// stroke and markers need.
	Padding float64
}

// DefaultStyle is the preset used when nothing else is configured.
func DefaultStyle() Style {
	return Style{
		StrokeWidth: 5,
		Palette:     []color.Color{hex("#ff6bff"), hex("#a81ee3"), hex("#6490ed")},
		Antialias:   true,
		DotRadius:   0,
		DotColor:    hex("#dddddd"),
		StartRadius: 6,
		StartColor:  hex("#ff6bff"),
		Padding:     8,
	}
}

// Margin is how far the drawing must stay from the canvas edge so no stroke
// or marker is clipped.
func (s Style) Margin() float64 {
	reach := max(s.StrokeWidth/2, s.DotRadius, s.StartRadius, 0)
	return math.Ceil(reach) + max(s.Padding, 0)
}

// Validate reports a style that cannot be drawn. Every size must be a
// finite, non-negative number.
func (s Style) Validate() error {
	var errs []error
	sizes := []struct {
		name string
		v    float64
	}{
		{"stroke width", s.StrokeWidth},
		{"dot radius", s.DotRadius},
		{"start radius", s.StartRadius},
		{"padding", s.Padding},
	}
	for _, sz := range sizes {
		if !(sz.v >= 0) || math.IsInf(sz.v, 0) {
			errs = append(errs, fmt.Errorf("%s %v must be finite and non-negative", sz.name, sz.v))
		}
	}
	if len(s.Palette) == 0 {
		errs = append(errs, errors.New("palette is empty"))
	}
	for i, c := range s.Palette {
		if c == nil {
			errs = append(errs, fmt.Errorf("palette[%d] is nil", i))
		}
	}
	if s.DotRadius > 0 && s.DotColor == nil {
		errs = append(errs, errors.New("dot color is nil"))
	}
	if s.StartRadius > 0 && s.StartColor == nil {
		errs = append(errs, errors.New("start color is nil"))
	}
	return errors.Join(errs...)
}

// ParseColor parses a "#rrggbb" string.
func ParseColor(s string) (color.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return nil, err
	}
	return toRGBA(c), nil
}

func hex(s string) color.Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func toRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}
