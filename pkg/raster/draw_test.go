package raster

import (
	"bytes"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/wesen/hexrender/pkg/layout"
	"github.com/wesen/hexrender/pkg/pattern"
)

var (
	red         = color.RGBA{R: 0xff, A: 0xff}
	green       = color.RGBA{G: 0xff, A: 0xff}
	blue        = color.RGBA{B: 0xff, A: 0xff}
	transparent = color.RGBA{}
)

// flatStyle draws a 5px red stroke with a 10px margin and no markers.
func flatStyle(antialias bool) Style {
	return Style{
		StrokeWidth: 5,
		Palette:     []color.Color{red},
		Antialias:   antialias,
		Padding:     7,
	}
}

func frameFor(t *testing.T, start, angles string, scale float64, s Style) layout.Frame {
	t.Helper()
	p, err := pattern.Parse(start, angles)
	if err != nil {
		t.Fatal(err)
	}
	return layout.Compute(pattern.Build(p), scale, s.Margin())
}

func TestDrawCanvasSize(t *testing.T) {
	s := DefaultStyle()
	f := frameFor(t, "SOUTH_WEST", "qaeaqwqaeaqa", 50, s)
	img := Draw(f, s)
	if img.Rect != image.Rect(0, 0, f.Width, f.Height) {
		t.Fatalf("canvas = %v, want %dx%d", img.Rect, f.Width, f.Height)
	}
	for _, p := range []image.Point{{0, 0}, {f.Width - 1, 0}, {0, f.Height - 1}, {f.Width - 1, f.Height - 1}} {
		if c := img.RGBAAt(p.X, p.Y); c != transparent {
			t.Errorf("corner %v = %v, want transparent", p, c)
		}
	}
}

func TestDrawSinglePoint(t *testing.T) {
	s := DefaultStyle()
	f := frameFor(t, "EAST", "", 50, s)
	img := Draw(f, s)
	m := int(s.Margin())
	if img.Rect.Dx() != 2*m || img.Rect.Dy() != 2*m {
		t.Fatalf("single point canvas = %v, want %dx%d", img.Rect, 2*m, 2*m)
	}
	if c := img.RGBAAt(m, m); c.A == 0 {
		t.Error("start marker not drawn at the only point")
	}
}

func TestDrawHorizontalStroke(t *testing.T) {
	for _, aa := range []bool{true, false} {
		s := flatStyle(aa)
		f := frameFor(t, "EAST", "w", 50, s)
		// Points sit at (10,10) and (60,10).
		img := Draw(f, s)
		if c := img.RGBAAt(35, 10); c != red {
			t.Errorf("aa=%v: centre of stroke = %v, want red", aa, c)
		}
		if c := img.RGBAAt(35, 11); c != red {
			t.Errorf("aa=%v: inside stroke = %v, want red", aa, c)
		}
		if c := img.RGBAAt(35, 13); c != transparent {
			t.Errorf("aa=%v: below stroke = %v, want transparent", aa, c)
		}
		if c := img.RGBAAt(35, 2); c != transparent {
			t.Errorf("aa=%v: margin = %v, want transparent", aa, c)
		}
	}
}

func TestDrawMarkersOnTop(t *testing.T) {
	for _, aa := range []bool{true, false} {
		s := flatStyle(aa)
		s.DotRadius = 3
		s.DotColor = green
		s.StartRadius = 4
		s.StartColor = blue
		f := frameFor(t, "EAST", "w", 50, s)
		img := Draw(f, s)

		start := pixel(f.Points[0])
		end := pixel(f.Points[1])
		if c := img.RGBAAt(start.X, start.Y); c != blue {
			t.Errorf("aa=%v: start marker = %v, want blue", aa, c)
		}
		if c := img.RGBAAt(end.X, end.Y); c != green {
			t.Errorf("aa=%v: end dot = %v, want green", aa, c)
		}
	}
}

func TestDrawZeroStrokeIsEmpty(t *testing.T) {
	s := flatStyle(true)
	s.StrokeWidth = 0
	f := frameFor(t, "EAST", "w", 50, s)
	img := Draw(f, s)
	for _, px := range img.Pix {
		if px != 0 {
			t.Fatal("expected an empty canvas with zero stroke and no markers")
		}
	}
}

func TestDrawIdempotent(t *testing.T) {
	for _, aa := range []bool{true, false} {
		s := DefaultStyle()
		s.Antialias = aa
		s.DotRadius = 2
		f := frameFor(t, "NORTH_WEST", "aqaaedwdwdwdwqaaqeewedaeaweqqa", 30, s)
		a := Draw(f, s)
		b := Draw(f, s)
		if !bytes.Equal(a.Pix, b.Pix) {
			t.Errorf("aa=%v: two renders of the same frame differ", aa)
		}
	}
}

func TestDrawPaintsEveryVertex(t *testing.T) {
	s := DefaultStyle()
	s.Padding = 0
	f := frameFor(t, "NORTH_EAST", "eeeee", 40, s)
	img := Draw(f, s)
	for i, p := range f.Points {
		px := pixel(p)
		if c := img.RGBAAt(px.X, px.Y); c.A == 0 {
			t.Errorf("point %d at %v not painted", i, px)
		}
	}
}

// ── Style ──

func TestDefaultStyleMargin(t *testing.T) {
	s := DefaultStyle()
	if got := s.Margin(); got != 14 {
		t.Errorf("default margin = %v, want 14", got)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default style invalid: %v", err)
	}
}

func TestMarginCoversLargestMarker(t *testing.T) {
	s := Style{StrokeWidth: 3, DotRadius: 4.2, StartRadius: 2, Padding: 1}
	if got := s.Margin(); got != 6 {
		t.Errorf("margin = %v, want 6", got)
	}
}

func TestValidate(t *testing.T) {
	bad := []Style{
		{StrokeWidth: -1, Palette: []color.Color{red}},
		{StrokeWidth: 1},
		{StrokeWidth: 1, Palette: []color.Color{nil}},
		{StrokeWidth: 1, Palette: []color.Color{red}, Padding: -2},
		{StrokeWidth: 1, Palette: []color.Color{red}, StartRadius: 3},
		{StrokeWidth: math.NaN(), Palette: []color.Color{red}},
		{StrokeWidth: math.Inf(1), Palette: []color.Color{red}},
		{StrokeWidth: 1, Palette: []color.Color{red}, DotColor: red, DotRadius: math.NaN()},
		{StrokeWidth: 1, Palette: []color.Color{red}, DotColor: red, DotRadius: math.Inf(1)},
		{StrokeWidth: 1, Palette: []color.Color{red}, StartColor: red, StartRadius: math.NaN()},
		{StrokeWidth: 1, Palette: []color.Color{red}, StartColor: red, StartRadius: math.Inf(1)},
		{StrokeWidth: 1, Palette: []color.Color{red}, Padding: math.NaN()},
		{StrokeWidth: 1, Palette: []color.Color{red}, Padding: math.Inf(1)},
	}
	for i, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("style %d: expected error", i)
		}
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#a81ee3")
	if err != nil {
		t.Fatal(err)
	}
	if c != (color.RGBA{R: 0xa8, G: 0x1e, B: 0xe3, A: 0xff}) {
		t.Errorf("ParseColor = %v", c)
	}
	if _, err := ParseColor("purple"); err == nil {
		t.Error("expected error for non-hex colour")
	}
}

// ── SegmentColor ──

func TestSegmentColorStops(t *testing.T) {
	pal := []color.Color{red, blue}
	if c := SegmentColor(pal, 0, 5); c != red {
		t.Errorf("first segment = %v, want red", c)
	}
	if c := SegmentColor(pal, 4, 5); c != blue {
		t.Errorf("last segment = %v, want blue", c)
	}
	mid := SegmentColor(pal, 2, 5)
	if mid == red || mid == blue || mid.A != 0xff {
		t.Errorf("middle segment = %v, want an opaque blend", mid)
	}
}

func TestSegmentColorThreeStops(t *testing.T) {
	pal := []color.Color{red, green, blue}
	if c := SegmentColor(pal, 2, 5); c != green {
		t.Errorf("middle of three stops = %v, want green", c)
	}
}

func TestSegmentColorFlat(t *testing.T) {
	half := color.NRGBA{R: 0xff, A: 0x80}
	for i := 0; i < 4; i++ {
		if c := SegmentColor([]color.Color{half}, i, 4); c != red {
			t.Errorf("segment %d = %v, want opaque red", i, c)
		}
	}
	if c := SegmentColor(nil, 0, 1); c != (color.RGBA{A: 0xff}) {
		t.Errorf("empty palette = %v, want opaque black", c)
	}
}

func BenchmarkDrawSmooth(b *testing.B) {
	p, _ := pattern.Parse("NORTH_WEST", "aqaaedwdwdwdwqaaqeewedaeaweqqa")
	s := DefaultStyle()
	f := layout.Compute(pattern.Build(p), 50, s.Margin())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Draw(f, s)
	}
}
