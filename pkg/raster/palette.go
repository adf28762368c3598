package raster

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// SegmentColor returns the colour of segment i out of n, blending the
// palette stops in CIE-L*a*b*. The result is always opaque.
func SegmentColor(palette []color.Color, i, n int) color.RGBA {
	switch len(palette) {
	case 0:
		return color.RGBA{A: 0xff}
	case 1:
		return opaque(palette[0])
	}
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}
	t = math.Min(math.Max(t, 0), 1)

	f := t * float64(len(palette)-1)
	k := min(int(f), len(palette)-2)
	local := f - float64(k)
	if local == 0 {
		return opaque(palette[k])
	}
	if local == 1 {
		return opaque(palette[k+1])
	}

	a, _ := colorful.MakeColor(opaque(palette[k]))
	b, _ := colorful.MakeColor(opaque(palette[k+1]))
	return toRGBA(a.BlendLab(b, local))
}

// opaque drops any alpha from c.
func opaque(c color.Color) color.RGBA {
	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	return color.RGBA{R: nc.R, G: nc.G, B: nc.B, A: 0xff}
}
