package hexgrid

import (
	"math"

	"github.com/jbeda/geom"
)

// Axial is an integer lattice coordinate. The redundant cube axis is S().
type Axial struct {
	Q, R int
}

// Origin is the lattice point every trace starts from.
var Origin = Axial{}

// Add returns a+b.
func (a Axial) Add(b Axial) Axial { return Axial{Q: a.Q + b.Q, R: a.R + b.R} }

// S returns the derived third cube coordinate, so that Q+R+S == 0.
func (a Axial) S() int { return -a.Q - a.R }

// Distance returns the number of lattice steps between a and b.
func Distance(a, b Axial) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S() - b.S())
	return max(dq, dr, ds)
}

var halfSqrt3 = math.Sqrt(3) / 2

// Cartesian projects a onto the plane with unit edge length. East is +X and
// South is +Y, matching image coordinates.
func (a Axial) Cartesian() geom.Coord {
	return geom.Coord{
		X: float64(a.Q) + float64(a.R)/2,
		Y: float64(a.R) * halfSqrt3,
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
