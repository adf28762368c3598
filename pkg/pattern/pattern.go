// Package pattern walks a start heading and a sequence of relative turns
// across the hex lattice, producing the ordered list of visited points.
package pattern

import (
	"fmt"

	"github.com/wesen/hexrender/pkg/hexgrid"
)

// Pattern is a start heading plus the turns taken from it.
type Pattern struct {
	Start  hexgrid.Direction
	Angles []hexgrid.Angle
}

// Parse builds a Pattern from registry strings. It is the only place
// external text becomes a Pattern.
func Parse(start, angles string) (Pattern, error) {
	d, err := hexgrid.ParseDirection(start)
	if err != nil {
		return Pattern{}, fmt.Errorf("start: %w", err)
	}
	as, err := hexgrid.ParseAngles(angles)
	if err != nil {
		return Pattern{}, fmt.Errorf("angles: %w", err)
	}
	return Pattern{Start: d, Angles: as}, nil
}

// String formats p the way it appears in a registry dump, e.g. "WEST qqq".
func (p Pattern) String() string {
	return p.Start.String() + " " + hexgrid.FormatAngles(p.Angles)
}

// Convention decides what happens before the first turn.
type Convention int

const (
	// TurnFirst rotates by each angle and then steps, starting from the
	// origin with heading Start. An empty pattern is a single point, and
	// Start with "w" steps once toward Start.
	TurnFirst Convention = iota

	// LeadStroke first steps once toward Start unturned, then continues
	// as TurnFirst. This is how patterns are drawn in-game: n angles give
	// n+1 strokes.
	LeadStroke
)

// DefaultConvention is the first-step convention used by Build.
const DefaultConvention = TurnFirst

func (c Convention) String() string {
	switch c {
	case TurnFirst:
		return "turn-first"
	case LeadStroke:
		return "lead-stroke"
	}
	return fmt.Sprintf("Convention(%d)", int(c))
}
