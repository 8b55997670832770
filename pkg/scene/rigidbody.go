package scene

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/Faultbox/scenegen/pkg/math"
)

// ErrInvalidRigidbody is returned when a RIGIDBODY line cannot be parsed.
var ErrInvalidRigidbody = errors.New("invalid RIGIDBODY line")

// BodyMode selects how the physics world simulates a body.
type BodyMode string

// Body modes.
const (
	BodyDynamic BodyMode = "DYNAMIC"
	BodyStatic  BodyMode = "STATIC"
)

// Valid reports whether m is a known mode.
func (m BodyMode) Valid() bool {
	return m == BodyDynamic || m == BodyStatic
}

const (
	shapeCapsule  = "CAPSULE"
	keywordOffset = "OFFSET"
	capsuleFields = 10
)

// Capsule is a capsule collider attached to an entity.
type Capsule struct {
	Radius     float64
	Height     float64
	HalfHeight float64
	Offset     math.Vec3
	Mode       BodyMode
}

// DefaultCapsule is the collider the tools attach to managed Dummy entities.
var DefaultCapsule = Capsule{
	Radius:     1.0,
	Height:     1.0,
	HalfHeight: 1.8,
	Offset:     math.Vec3{X: 0, Y: 2, Z: 0},
	Mode:       BodyDynamic,
}

// DefaultRigidbodyLine is DefaultCapsule rendered as a line:
// "RIGIDBODY CAPSULE 1.0 1.0 1.8 OFFSET 0.0 2.0 0.0 DYNAMIC".
var DefaultRigidbodyLine = DefaultCapsule.String()

// String renders the RIGIDBODY line without terminator.
func (c Capsule) String() string {
	return strings.Join([]string{
		KeywordRigidbody, shapeCapsule,
		formatDecimal(c.Radius), formatDecimal(c.Height), formatDecimal(c.HalfHeight),
		keywordOffset,
		formatDecimal(c.Offset.X), formatDecimal(c.Offset.Y), formatDecimal(c.Offset.Z),
		string(c.Mode),
	}, " ")
}

// ParseCapsule parses a "RIGIDBODY CAPSULE ..." line.
func ParseCapsule(line string) (Capsule, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 || fields[0] != KeywordRigidbody || fields[1] != shapeCapsule {
		return Capsule{}, fmt.Errorf("%w: not a capsule rigidbody", ErrInvalidRigidbody)
	}
	if len(fields) != capsuleFields {
		return Capsule{}, fmt.Errorf("%w: expected %d fields, got %d", ErrInvalidRigidbody, capsuleFields, len(fields))
	}
	if fields[5] != keywordOffset {
		return Capsule{}, fmt.Errorf("%w: expected %s, got %q", ErrInvalidRigidbody, keywordOffset, fields[5])
	}

	var vals [6]float64
	for i, idx := range []int{2, 3, 4, 6, 7, 8} {
		v, err := strconv.ParseFloat(fields[idx], 64)
		if err != nil {
			return Capsule{}, fmt.Errorf("%w: field %d: %v", ErrInvalidRigidbody, idx, err)
		}
		vals[i] = v
	}

	mode := BodyMode(fields[9])
	if !mode.Valid() {
		return Capsule{}, fmt.Errorf("%w: unknown mode %q", ErrInvalidRigidbody, fields[9])
	}

	return Capsule{
		Radius:     vals[0],
		Height:     vals[1],
		HalfHeight: vals[2],
		Offset:     math.Vec3{X: vals[3], Y: vals[4], Z: vals[5]},
		Mode:       mode,
	}, nil
}
