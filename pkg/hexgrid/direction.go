// Package hexgrid models the six headings and six relative turns of a
// triangular lattice, and the integer axial coordinates a pen walks on.
//
// Directions are ordered clockwise in screen space (y grows downward), so a
// turn is plain index arithmetic modulo 6. Values outside the enumerations
// are never produced by this package: the parse functions are the only
// entry point for external strings.
package hexgrid

import (
	"errors"
	"fmt"
)

// Direction is an absolute heading on the lattice.
type Direction uint8

const (
	NorthEast Direction = iota
	East
	SouthEast
	SouthWest
	West
	NorthWest
	directionCount // sentinel
)

// Directions lists every heading in clockwise order starting at NorthEast.
var Directions = [directionCount]Direction{NorthEast, East, SouthEast, SouthWest, West, NorthWest}

var directionNames = [directionCount]string{
	NorthEast: "NORTH_EAST",
	East:      "EAST",
	SouthEast: "SOUTH_EAST",
	SouthWest: "SOUTH_WEST",
	West:      "WEST",
	NorthWest: "NORTH_WEST",
}

// String returns the registry name of d (e.g. "NORTH_EAST").
func (d Direction) String() string {
	if d < directionCount {
		return directionNames[d]
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// ErrUnknownDirection is returned by ParseDirection for any name that is not
// one of the six registry names.
var ErrUnknownDirection = errors.New("unknown direction")

// ParseDirection maps a registry name to its Direction. Matching is exact and
// case-sensitive.
func ParseDirection(name string) (Direction, error) {
	for d, n := range directionNames {
		if n == name {
			return Direction(d), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
}

// Rotate turns d by a. Every combination of valid values is defined; a
// value outside the enumerations is a programming error and panics.
func Rotate(d Direction, a Angle) Direction {
	if d >= directionCount || a >= angleCount {
		panic(fmt.Sprintf("hexgrid: Rotate(%v, %v) out of range", d, a))
	}
	return Direction((uint8(d) + uint8(a)) % uint8(directionCount))
}

// unit steps indexed by Direction, pointy-side axial convention.
var unitSteps = [directionCount]Axial{
	NorthEast: {Q: 1, R: -1},
	East:      {Q: 1, R: 0},
	SouthEast: {Q: 0, R: 1},
	SouthWest: {Q: -1, R: 1},
	West:      {Q: -1, R: 0},
	NorthWest: {Q: 0, R: -1},
}

// UnitVector returns the lattice displacement of one step heading d. It
// panics if d is not one of the six directions.
func UnitVector(d Direction) Axial {
	return unitSteps[d]
}
