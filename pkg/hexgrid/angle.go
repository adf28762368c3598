package hexgrid

import (
	"errors"
	"fmt"
	"strings"
)

// Angle is a turn relative to the current heading, measured in clockwise
// sixths of a full turn.
type Angle uint8

const (
	Forward Angle = iota
	Right
	BackRight
	Back
	BackLeft
	Left
	angleCount // sentinel
)

// Angles lists every turn in cyclic order starting at Forward.
var Angles = [angleCount]Angle{Forward, Right, BackRight, Back, BackLeft, Left}

// angleCodes are the single-letter codes used in registry "angles" strings.
const angleCodes = "wedsaq"

var angleNames = [angleCount]string{
	Forward:   "Forward",
	Right:     "Right",
	BackRight: "BackRight",
	Back:      "Back",
	BackLeft:  "BackLeft",
	Left:      "Left",
}

func (a Angle) String() string {
	if a < angleCount {
		return angleNames[a]
	}
	return fmt.Sprintf("Angle(%d)", uint8(a))
}

// Code returns the single-letter registry code of a.
func (a Angle) Code() byte {
	return angleCodes[a%angleCount]
}

// ErrUnknownAngle is returned when an angle string contains a character that
// is not one of "wedsaq".
var ErrUnknownAngle = errors.New("unknown angle code")

// ParseAngle maps one registry code to its Angle.
func ParseAngle(code rune) (Angle, error) {
	if i := strings.IndexRune(angleCodes, code); i >= 0 {
		return Angle(i), nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAngle, code)
}

// ParseAngles parses a full registry angle string. The empty string is valid
// and yields an empty slice. The error names the first bad character and its
// byte offset.
func ParseAngles(s string) ([]Angle, error) {
	angles := make([]Angle, 0, len(s))
	for i, r := range s {
		a, err := ParseAngle(r)
		if err != nil {
			return nil, fmt.Errorf("offset %d: %w", i, err)
		}
		angles = append(angles, a)
	}
	return angles, nil
}

// FormatAngles is the inverse of ParseAngles.
func FormatAngles(angles []Angle) string {
	b := make([]byte, len(angles))
	for i, a := range angles {
		b[i] = a.Code()
	}
	return string(b)
}
