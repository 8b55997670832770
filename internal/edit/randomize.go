package edit

import (
	"math/rand/v2"

	"github.com/Faultbox/scenegen/pkg/math"
	"github.com/Faultbox/scenegen/pkg/scene"
)

// Randomize renames every Dummy-prefixed entity to Dummy1, Dummy2, ... in file
// order, whatever its old suffix. When the entity line is directly followed by
// a TRANSFORM line, that line is replaced with a freshly sampled transform.
// Entities without a following TRANSFORM keep their name change only.
// Rewritten lines keep the terminator of the line they replace. It returns
// the edited lines and the number of entities renamed.
func Randomize(lines []string, opts RandomizeOptions, rng *rand.Rand) ([]string, int) {
	fallback := scene.DetectLineEnding(lines)
	out := make([]string, 0, len(lines))
	counter := 0

	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !scene.IsDummyEntity(line) {
			out = append(out, line)
			continue
		}

		counter++
		out = append(out, scene.WithEnding(scene.EntityLine(scene.DummyName(counter)), scene.EndingOr(line, fallback)))

		if i+1 < len(lines) && scene.IsTransform(lines[i+1]) {
			tr := scene.Transform{
				Position: opts.Position.Sample(rng),
				Rotation: math.Cube(opts.Rotation).Sample(rng),
				Scale:    math.Splat(opts.Scale),
			}
			out = append(out, scene.WithEnding(tr.String(), scene.EndingOr(lines[i+1], fallback)))
			i++
		}
	}

	return out, counter
}
