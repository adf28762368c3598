package pattern

import "github.com/wesen/hexrender/pkg/hexgrid"

// Trace is the ordered list of lattice points a Pattern visits. Consecutive
// points are always exactly one lattice step apart.
type Trace struct {
	Points []hexgrid.Axial
	// Heading is the direction of the last step, or Start when no step
	// was taken.
	Heading hexgrid.Direction
}

// Segments returns the number of strokes in t.
func (t Trace) Segments() int {
	if len(t.Points) == 0 {
		return 0
	}
	return len(t.Points) - 1
}

// Last returns the final point of t.
func (t Trace) Last() hexgrid.Axial {
	if len(t.Points) == 0 {
		return hexgrid.Origin
	}
	return t.Points[len(t.Points)-1]
}

// Build walks p using DefaultConvention.
func Build(p Pattern) Trace {
	return BuildWith(p, DefaultConvention)
}

// BuildWith walks p using convention c.
func BuildWith(p Pattern, c Convention) Trace {
	n := len(p.Angles) + 1
	if c == LeadStroke {
		n++
	}
	pts := make([]hexgrid.Axial, 1, n)
	pts[0] = hexgrid.Origin

	heading := p.Start
	pos := hexgrid.Origin
	if c == LeadStroke {
		pos = pos.Add(hexgrid.UnitVector(heading))
		pts = append(pts, pos)
	}
	for _, a := range p.Angles {
		heading = hexgrid.Rotate(heading, a)
		pos = pos.Add(hexgrid.UnitVector(heading))
		pts = append(pts, pos)
	}
	return Trace{Points: pts, Heading: heading}
}
