package edit

import (
	"math/rand/v2"

	"github.com/Faultbox/scenegen/pkg/math"
	"github.com/Faultbox/scenegen/pkg/scene"
)

// MaxDummyIndex returns the highest N among "NEW_ENTITY Dummy<N>" lines.
// Lines with a non-numeric suffix are ignored. It returns 0 when none match.
func MaxDummyIndex(lines []string) int {
	maxIndex := 0
	for _, line := range lines {
		if n, ok := scene.DummyIndex(line); ok && n > maxIndex {
			maxIndex = n
		}
	}
	return maxIndex
}

// DummyBlocks renders opts.Count Dummy entity blocks numbered from start,
// terminating every line with opts.LineEnding (Newline when empty).
// The result starts with a blank separator line so it can be appended to a
// file whose last line has no terminator.
func DummyBlocks(start int, opts AppendOptions, rng *rand.Rand) []string {
	if opts.Count <= 0 {
		return nil
	}
	eol := opts.LineEnding
	if eol == "" {
		eol = scene.Newline
	}

	out := make([]string, 0, 1+opts.Count*6)
	out = append(out, eol)
	for i := 0; i < opts.Count; i++ {
		tr := scene.Transform{
			Position: opts.Position.Sample(rng),
			Rotation: math.Cube(opts.Template.Rotation).Sample(rng),
			Scale:    math.Splat(opts.Template.Scale),
		}
		out = append(out,
			scene.WithEnding(scene.EntityLine(scene.DummyName(start+i)), eol),
			scene.WithEnding(tr.String(), eol),
			scene.WithEnding(opts.Template.Renderer, eol),
			scene.WithEnding(opts.Template.Material, eol),
			scene.WithEnding(opts.Template.Rigidbody, eol),
			eol,
		)
	}
	return out
}

// AppendDummies returns lines followed by opts.Count new Dummy blocks whose
// indices continue from MaxDummyIndex(lines). Without an explicit
// opts.LineEnding the blocks use the file's own terminator.
// It also returns the first new index.
func AppendDummies(lines []string, opts AppendOptions, rng *rand.Rand) ([]string, int) {
	if opts.LineEnding == "" {
		opts.LineEnding = scene.DetectLineEnding(lines)
	}
	start := MaxDummyIndex(lines) + 1
	blocks := DummyBlocks(start, opts, rng)

	out := make([]string, 0, len(lines)+len(blocks))
	out = append(out, lines...)
	out = append(out, blocks...)
	return out, start
}
