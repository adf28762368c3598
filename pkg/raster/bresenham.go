package raster

import "image"

// Bresenham returns the integer points on the line from a to b using
// Bresenham's line algorithm. The result always includes both endpoints.
// The loop is capped at dx+dy+2 iterations to prevent infinite loops.
func Bresenham(a, b image.Point) []image.Point {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)
	sx, sy := 1, 1
	if a.X > b.X {
		sx = -1
	}
	if a.Y > b.Y {
		sy = -1
	}
	err := dx - dy
	p := a

	pts := make([]image.Point, 0, dx+dy+1)
	for range dx + dy + 2 {
		pts = append(pts, p)
		if p == b {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			p.X += sx
		}
		if e2 < dx {
			err += dx
			p.Y += sy
		}
	}
	return pts
}

// disc returns the pixel offsets within radius r of the origin. A radius
// under one pixel still yields the centre pixel.
func disc(r float64) []image.Point {
	ri := int(r)
	r2 := r * r
	offs := []image.Point{{}}
	for y := -ri; y <= ri; y++ {
		for x := -ri; x <= ri; x++ {
			if (x != 0 || y != 0) && float64(x*x+y*y) <= r2 {
				offs = append(offs, image.Pt(x, y))
			}
		}
	}
	return offs
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
