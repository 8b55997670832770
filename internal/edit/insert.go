package edit

import "github.com/Faultbox/scenegen/pkg/scene"

// InsertRigidbodies adds rigidbody after every MATERIAL PHONG line of a Dummy
// block that is not already followed by a RIGIDBODY line of any kind.
// VideoDummy blocks and all other entities are left alone. Inserted lines take
// the MATERIAL line's terminator. It returns the edited lines and the number of
// insertions; running it again inserts nothing.
func InsertRigidbodies(lines []string, rigidbody string) ([]string, int) {
	fallback := scene.DetectLineEnding(lines)
	out := make([]string, 0, len(lines))
	inserted := 0
	inDummy := false

	for i, line := range lines {
		switch {
		case scene.IsDummyEntity(line) && !scene.IsVideoDummyEntity(line):
			inDummy = true
		case scene.IsEntity(line):
			inDummy = false
		}

		if !inDummy || !scene.IsMaterialPhong(line) {
			out = append(out, line)
			continue
		}

		if i+1 < len(lines) && scene.IsRigidbody(lines[i+1]) {
			out = append(out, line)
			continue
		}

		eol := scene.EndingOr(line, fallback)
		out = append(out, scene.WithEnding(line, eol), scene.WithEnding(rigidbody, eol))
		inserted++
	}

	return out, inserted
}
