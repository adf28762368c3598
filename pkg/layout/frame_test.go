package layout

import (
	"image"
	"math"
	"testing"

	"github.com/wesen/hexrender/pkg/pattern"
)

const eps = 1e-9

func trace(t *testing.T, start, angles string) pattern.Trace {
	t.Helper()
	p, err := pattern.Parse(start, angles)
	if err != nil {
		t.Fatal(err)
	}
	return pattern.Build(p)
}

func TestComputeSinglePoint(t *testing.T) {
	f := Compute(trace(t, "EAST", ""), 50, 12)
	if f.Width != 24 || f.Height != 24 {
		t.Fatalf("single point canvas: expected 24x24, got %dx%d", f.Width, f.Height)
	}
	if len(f.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(f.Points))
	}
	if p := f.Points[0]; p.X != 12 || p.Y != 12 {
		t.Errorf("point at %v, want (12,12)", p)
	}
}

func TestComputeHorizontalSegment(t *testing.T) {
	f := Compute(trace(t, "EAST", "w"), 50, 10)
	if f.Width != 70 || f.Height != 20 {
		t.Fatalf("expected 70x20, got %dx%d", f.Width, f.Height)
	}
	if f.Points[0].X != 10 || f.Points[1].X != 60 {
		t.Errorf("x positions %v, %v; want 10, 60", f.Points[0].X, f.Points[1].X)
	}
	if f.Size() != image.Pt(70, 20) {
		t.Errorf("Size() = %v", f.Size())
	}
	if f.Bounds() != image.Rect(0, 0, 70, 20) {
		t.Errorf("Bounds() = %v", f.Bounds())
	}
}

func TestComputeDiagonalHeight(t *testing.T) {
	// One step south-east drops by scale·√3/2.
	f := Compute(trace(t, "EAST", "e"), 100, 5)
	wantH := int(math.Ceil(100*math.Sqrt(3)/2 + 10))
	if f.Height != wantH {
		t.Errorf("height = %d, want %d", f.Height, wantH)
	}
	if f.Width != 60 {
		t.Errorf("width = %d, want 60", f.Width)
	}
}

func TestComputeNegativeCoordinatesTranslated(t *testing.T) {
	// West then north-west walks into negative lattice space.
	f := Compute(trace(t, "WEST", "wewq"), 40, 8)
	for i, p := range f.Points {
		if p.X < 8-eps || p.Y < 8-eps {
			t.Errorf("point %d at %v lies inside the margin", i, p)
		}
	}
}

func TestComputePointsInsideMargins(t *testing.T) {
	cases := []struct{ start, angles string }{
		{"EAST", ""},
		{"EAST", "w"},
		{"NORTH_EAST", "ee"},
		{"WEST", "qqq"},
		{"SOUTH_WEST", "qaeaqwqaeaqa"},
		{"NORTH_WEST", "eeeeee"},
		{"SOUTH_EAST", "aqaaedwdwdwdwqaaqeewedaeaweqqa"},
	}
	for _, scale := range []float64{1, 7.5, 50} {
		for _, margin := range []float64{1, 3.5, 15} {
			for _, tc := range cases {
				f := Compute(trace(t, tc.start, tc.angles), scale, margin)
				if f.Width <= 0 || f.Height <= 0 {
					t.Fatalf("%v: non-positive canvas %dx%d", tc, f.Width, f.Height)
				}
				for _, p := range f.Points {
					if p.X < margin-eps || p.X > float64(f.Width)-margin+eps ||
						p.Y < margin-eps || p.Y > float64(f.Height)-margin+eps {
						t.Errorf("%v scale=%v margin=%v: point %v outside [%v,%d-m]x[%v,%d-m]",
							tc, scale, margin, p, margin, f.Width, margin, f.Height)
					}
				}
			}
		}
	}
}

func TestComputeClampsMargin(t *testing.T) {
	f := Compute(trace(t, "EAST", ""), 50, 0)
	if f.Width != 2 || f.Height != 2 {
		t.Errorf("zero margin: expected 2x2, got %dx%d", f.Width, f.Height)
	}
	if f.Margin != 1 {
		t.Errorf("margin = %v, want 1", f.Margin)
	}
}

func TestComputeContent(t *testing.T) {
	f := Compute(trace(t, "EAST", "w"), 50, 10)
	if f.Content.Min.X != 10 || f.Content.Max.X != 60 {
		t.Errorf("content x range = [%v,%v], want [10,60]", f.Content.Min.X, f.Content.Max.X)
	}
	if f.Content.Width() != 50 || f.Content.Height() != 0 {
		t.Errorf("content size = %vx%v", f.Content.Width(), f.Content.Height())
	}
}

func TestComputeClampsNaNMargin(t *testing.T) {
	f := Compute(trace(t, "EAST", "w"), 50, math.NaN())
	if f.Margin != 1 {
		t.Errorf("margin = %v, want 1", f.Margin)
	}
	if f.Width != 52 || f.Height != 2 {
		t.Errorf("expected 52x2, got %dx%d", f.Width, f.Height)
	}
}

func TestMeasureMatchesCompute(t *testing.T) {
	cases := []struct{ start, angles string }{
		{"EAST", ""},
		{"NORTH_EAST", "ee"},
		{"SOUTH_WEST", "qaeaqwqaeaqa"},
	}
	for _, tc := range cases {
		tr := trace(t, tc.start, tc.angles)
		f := Compute(tr, 33, 7)
		w, h := Measure(tr, 33, 7)
		if int(w) != f.Width || int(h) != f.Height {
			t.Errorf("%v: Measure = %vx%v, Compute = %dx%d", tc, w, h, f.Width, f.Height)
		}
	}
}

func TestMeasureHugeScale(t *testing.T) {
	w, h := Measure(trace(t, "EAST", "w"), 1e17, 14)
	if w < 1e17 || h != 28 {
		t.Errorf("Measure = %vx%v", w, h)
	}
}
