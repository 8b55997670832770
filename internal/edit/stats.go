package edit

import (
	"strings"

	"github.com/Faultbox/scenegen/pkg/scene"
)

// Summary describes a scene file without modifying it.
type Summary struct {
	Lines            int
	Comments         int
	Entities         int
	Dummies          int // Dummy-prefixed entities, any suffix
	NumberedDummies  int // Dummy<digits> entities
	VideoDummies     int
	MaxDummyIndex    int
	Rigidbodies      int // lines containing the rigidbody signature
	MissingRigidbody int // Dummy MATERIAL PHONG lines InsertRigidbodies would fill
	MissingTransform int // Dummy entities not directly followed by TRANSFORM
}

// Stats scans lines and counts what each edit would act on.
func Stats(lines []string, signature string) Summary {
	s := Summary{Lines: len(lines)}

	for i, line := range lines {
		if scene.IsComment(line) {
			s.Comments++
			continue
		}
		if strings.Contains(line, signature) {
			s.Rigidbodies++
		}
		if !scene.IsEntity(line) {
			continue
		}
		s.Entities++
		switch {
		case scene.IsVideoDummyEntity(line):
			s.VideoDummies++
		case scene.IsDummyEntity(line):
			s.Dummies++
			if n, ok := scene.DummyIndex(line); ok {
				s.NumberedDummies++
				if n > s.MaxDummyIndex {
					s.MaxDummyIndex = n
				}
			}
			if i+1 >= len(lines) || !scene.IsTransform(lines[i+1]) {
				s.MissingTransform++
			}
		}
	}

	_, s.MissingRigidbody = InsertRigidbodies(lines, signature)
	return s
}
