package math

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// samplePrecision is the number of decimals sampled values carry.
// Scene files store two decimals, so sampling on that grid keeps the
// written value inside the range after formatting.
const samplePrecision = 2

// Range is a uniform sampling interval. Max is included unless Exclusive is set.
type Range struct {
	Min       float64 `yaml:"min"`
	Max       float64 `yaml:"max" validate:"gtefield=Min"`
	Exclusive bool    `yaml:"exclusive,omitempty"`
}

// NewRange returns the closed interval [lo, hi].
func NewRange(lo, hi float64) Range {
	return Range{Min: lo, Max: hi}
}

// NewHalfOpenRange returns the interval [lo, hi).
func NewHalfOpenRange(lo, hi float64) Range {
	return Range{Min: lo, Max: hi, Exclusive: true}
}

// String returns the range in interval notation.
func (r Range) String() string {
	closing := "]"
	if r.Exclusive {
		closing = ")"
	}
	return fmt.Sprintf("[%g,%g%s", r.Min, r.Max, closing)
}

// Empty reports whether no value lies in the range, as in [5,5).
func (r Range) Empty() bool {
	if r.Exclusive {
		return r.Max <= r.Min
	}
	return r.Max < r.Min
}

// Contains reports whether f lies in the range.
func (r Range) Contains(f float64) bool {
	if f < r.Min {
		return false
	}
	if r.Exclusive {
		return f < r.Max
	}
	return f <= r.Max
}

// Sample draws a uniformly distributed value from the range on a 0.01 grid.
// An empty range has nothing to draw from and yields Min.
func (r Range) Sample(rng *rand.Rand) float64 {
	scale := math.Pow(10, samplePrecision)
	steps := int(math.Floor((r.Max-r.Min)*scale + 1e-9))
	if steps <= 0 {
		return r.Min
	}
	if !r.Exclusive {
		steps++
	}
	v := r.Min + float64(rng.IntN(steps))/scale
	return roundTo(v, samplePrecision)
}

// Box is an axis-aligned sampling volume.
type Box struct {
	X Range `yaml:"x"`
	Y Range `yaml:"y"`
	Z Range `yaml:"z"`
}

// Sample draws each axis independently.
func (b Box) Sample(rng *rand.Rand) Vec3 {
	return Vec3{X: b.X.Sample(rng), Y: b.Y.Sample(rng), Z: b.Z.Sample(rng)}
}

// Contains reports whether every component of v lies in its axis range.
func (b Box) Contains(v Vec3) bool {
	return b.X.Contains(v.X) && b.Y.Contains(v.Y) && b.Z.Contains(v.Z)
}

// Cube returns a box using the same range on every axis.
func Cube(r Range) Box {
	return Box{X: r, Y: r, Z: r}
}
