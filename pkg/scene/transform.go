package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/scenegen/pkg/math"
)

// ErrInvalidTransform is returned when a TRANSFORM line cannot be parsed.
var ErrInvalidTransform = errors.New("invalid TRANSFORM line")

// transformFields is the keyword plus nine numeric fields.
const transformFields = 10

// Transform is an entity's placement: position, Euler rotation in degrees,
// and non-uniform scale.
type Transform struct {
	Position math.Vec3
	Rotation math.Vec3
	Scale    math.Vec3
}

// String renders the TRANSFORM line without terminator. Position and rotation
// carry two decimals; scale uses the shortest exact form.
func (t Transform) String() string {
	return fmt.Sprintf("%s %.2f %.2f %.2f %.2f %.2f %.2f %s %s %s",
		KeywordTransform,
		t.Position.X, t.Position.Y, t.Position.Z,
		t.Rotation.X, t.Rotation.Y, t.Rotation.Z,
		formatCompact(t.Scale.X), formatCompact(t.Scale.Y), formatCompact(t.Scale.Z),
	)
}

// ParseTransform parses a TRANSFORM line.
func ParseTransform(line string) (Transform, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != KeywordTransform {
		return Transform{}, fmt.Errorf("%w: missing %s keyword", ErrInvalidTransform, KeywordTransform)
	}
	if len(fields) != transformFields {
		return Transform{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidTransform, transformFields-1, len(fields)-1)
	}

	var vals [9]float64
	for i := range vals {
		v, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return Transform{}, fmt.Errorf("%w: field %d: %v", ErrInvalidTransform, i+1, err)
		}
		vals[i] = v
	}

	return Transform{
		Position: math.Vec3{X: vals[0], Y: vals[1], Z: vals[2]},
		Rotation: math.Vec3{X: vals[3], Y: vals[4], Z: vals[5]},
		Scale:    math.Vec3{X: vals[6], Y: vals[7], Z: vals[8]},
	}, nil
}

// formatCompact formats f with the fewest digits that round-trip.
func formatCompact(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatDecimal formats f like formatCompact but always keeps a decimal point,
// so 1 renders as "1.0".
func formatDecimal(f float64) string {
	s := formatCompact(f)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
